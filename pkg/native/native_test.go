package native

import (
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"google.golang.org/genproto/googleapis/type/latlng"

	"github.com/ceskydata/firemodel/pkg/wire"
)

func TestToNative(t *testing.T) {
	got, err := ToNative(wire.String("Praha"))
	assert.Nil(t, err)
	assert.Equal(t, "Praha", got)

	got, err = ToNative(wire.Integer(42))
	assert.Nil(t, err)
	assert.Equal(t, int64(42), got)

	got, err = ToNative(wire.Null())
	assert.Nil(t, err)
	assert.Nil(t, got)

	got, err = ToNative(wire.Timestamp("2021-02-18T10:00:00Z"))
	assert.Nil(t, err)
	assert.Equal(t, time.Date(2021, 2, 18, 10, 0, 0, 0, time.UTC), got)

	got, err = ToNative(wire.GeoPointValue(50.0755, 14.4378))
	assert.Nil(t, err)
	assert.Equal(t, &latlng.LatLng{Latitude: 50.0755, Longitude: 14.4378}, got)

	// references come back as their raw resource name
	got, err = ToNative(wire.ReferenceValue(wire.NewReference("projects/p/databases/(default)/documents/cities/LA")))
	assert.Nil(t, err)
	assert.Equal(t, "projects/p/databases/(default)/documents/cities/LA", got)

	got, err = ToNative(wire.Array(wire.Integer(1), wire.String("x")))
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{int64(1), "x"}, got)

	got, err = ToNative(wire.Map(wire.NewFieldMap().Set("a", wire.Boolean(true))))
	assert.Nil(t, err)
	assert.Equal(t, map[string]interface{}{"a": true}, got)

	_, err = ToNative(wire.Value{})
	assert.NotNil(t, err)

	_, err = ToNative(wire.Timestamp("not-a-time"))
	assert.NotNil(t, err)
}

func TestFromNative(t *testing.T) {
	got, err := FromNative(nil)
	assert.Nil(t, err)
	assert.Equal(t, wire.KindNull, got.Kind())

	got, err = FromNative(7)
	assert.Nil(t, err)
	assert.Equal(t, int64(7), *got.Integer)

	got, err = FromNative(float32(1.5))
	assert.Nil(t, err)
	assert.Equal(t, 1.5, *got.Double)

	got, err = FromNative(time.Date(2021, 2, 18, 10, 0, 0, 500000000, time.UTC))
	assert.Nil(t, err)
	assert.Equal(t, "2021-02-18T10:00:00.5Z", *got.Timestamp)

	got, err = FromNative(&latlng.LatLng{Latitude: 50.0755, Longitude: 14.4378})
	assert.Nil(t, err)
	assert.Equal(t, 50.0755, got.GeoPoint.Latitude)

	// snapshot data resolves references into live refs, their Path is the
	// full resource name
	docRef := &firestore.DocumentRef{
		Path: "projects/p/databases/(default)/documents/cities/LA",
		ID:   "LA",
	}
	got, err = FromNative(docRef)
	assert.Nil(t, err)
	assert.Equal(t, wire.KindReference, got.Kind())
	id, err := got.Reference.ID()
	assert.Nil(t, err)
	assert.Equal(t, "LA", id)

	_, err = FromNative([]byte{1, 2})
	assert.NotNil(t, err, "bytes have no wire variant")

	_, err = FromNative(struct{}{})
	assert.NotNil(t, err, "unsupported native type")
}

func TestFromNativeMapSorted(t *testing.T) {
	got, err := FromNative(map[string]interface{}{
		"zulu":  int64(1),
		"alpha": "x",
		"mike":  true,
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, got.Map.Keys())
}

func TestNativeRoundTrip(t *testing.T) {
	// keys pre-sorted, Go maps have no order to carry back
	original := wire.Map(wire.NewFieldMap().
		Set("capital", wire.Boolean(true)).
		Set("location", wire.GeoPointValue(50.0755, 14.4378)).
		Set("name", wire.String("Praha")).
		Set("population", wire.Integer(1309000)).
		Set("tags", wire.Array(wire.String("eu"), wire.Null())).
		Set("updated", wire.Timestamp("2021-02-18T10:00:00Z")))

	data, err := ToNative(original)
	if err != nil {
		t.Fatal(err)
	}

	back, err := FromNative(data)
	if err != nil {
		t.Fatal(err)
	}

	diff := cmp.Diff(original, back)
	if diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%v", diff)
	}
}

func TestFromSnapshotData(t *testing.T) {
	fields, err := FromSnapshotData(map[string]interface{}{
		"name":       "Praha",
		"population": int64(1309000),
	})
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 2, fields.Len())
	name, ok := fields.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Praha", *name.String)
}
