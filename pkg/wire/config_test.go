package wire

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unsetenv makes a variable truly absent for one test; t.Setenv registers
// the restore, Unsetenv removes the value it just set.
func unsetenv(t *testing.T, key string) {
	t.Setenv(key, "placeholder")
	os.Unsetenv(key)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("FIRESTORE_PROJECT_ID", "my-proj")
	t.Setenv("FIRESTORE_EMULATOR_HOST", "localhost:8080")
	unsetenv(t, "FIRESTORE_DATABASE_ID")
	unsetenv(t, "FIRESTORE_CREDENTIALS_FILE")
	unsetenv(t, "FIRESTORE_DEBUG")

	config, err := LoadConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "my-proj", config.ProjectID)
	assert.Equal(t, "(default)", config.DatabaseID, "database id defaults")
	assert.Equal(t, "localhost:8080", config.EmulatorHost)
	assert.Equal(t, "", config.CredentialsFile)
	assert.False(t, config.Debug)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("FIRESTORE_PROJECT_ID", "my-proj")
	t.Setenv("FIRESTORE_DATABASE_ID", "backup")
	t.Setenv("FIRESTORE_CREDENTIALS_FILE", "/secrets/sa.json")
	t.Setenv("FIRESTORE_DEBUG", "true")

	config, err := LoadConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "backup", config.DatabaseID)
	assert.Equal(t, "/secrets/sa.json", config.CredentialsFile)
	assert.True(t, config.Debug)
}

func TestLoadConfigMissingProject(t *testing.T) {
	// required only triggers on unset variables, not empty ones
	unsetenv(t, "FIRESTORE_PROJECT_ID")

	_, err := LoadConfig(context.Background())
	assert.NotNil(t, err)
}
