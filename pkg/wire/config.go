package wire

import (
	"context"

	"github.com/sethvargo/go-envconfig"

	"github.com/ceskydata/firemodel/internal/logging"
)

//Config Connection settings consumers hand to a transport. The model itself
//never dials anything; this is carried data. EmulatorHost follows the
//host:port convention of FIRESTORE_EMULATOR_HOST and, when set, wins over
//CredentialsFile.
type Config struct {
	ProjectID       string `env:"FIRESTORE_PROJECT_ID, required"`
	DatabaseID      string `env:"FIRESTORE_DATABASE_ID, default=(default)"`
	CredentialsFile string `env:"FIRESTORE_CREDENTIALS_FILE"`
	EmulatorHost    string `env:"FIRESTORE_EMULATOR_HOST"`
	Debug           bool   `env:"FIRESTORE_DEBUG, default=false"`
}

//LoadConfig Load connection config from the environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	logger := logging.FromContext(ctx)

	var config Config
	if err := envconfig.Process(ctx, &config); err != nil {
		logger.Debugf("Could not load Config: %v", err)
		return nil, err
	}

	return &config, nil
}
