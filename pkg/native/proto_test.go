package native

import (
	"testing"

	pb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ceskydata/firemodel/pkg/wire"
)

func TestProtoRoundTrip(t *testing.T) {
	// keys are pre-sorted, proto maps carry no order and come back sorted
	original := wire.Map(wire.NewFieldMap().
		Set("capital", wire.Boolean(false)).
		Set("density", wire.Double(3275.5)).
		Set("location", wire.GeoPointValue(34.0522, -118.2437)).
		Set("mayor", wire.Null()).
		Set("name", wire.String("Los Angeles")).
		Set("population", wire.Integer(3979576)).
		Set("state", wire.ReferenceValue(wire.NewReference("projects/p/databases/(default)/documents/states/CA"))).
		Set("tags", wire.Array(wire.String("west"), wire.Integer(1))).
		Set("updated", wire.Timestamp("2021-02-18T10:00:00Z")))

	converted, err := ToProto(original)
	if err != nil {
		t.Fatal(err)
	}

	back, err := FromProto(converted)
	if err != nil {
		t.Fatal(err)
	}

	diff := cmp.Diff(original, back)
	if diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%v", diff)
	}
}

func TestToProtoVariants(t *testing.T) {
	converted, err := ToProto(wire.Integer(42))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int64(42), converted.GetIntegerValue())

	converted, err = ToProto(wire.GeoPointValue(50.0755, 14.4378))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, 50.0755, converted.GetGeoPointValue().GetLatitude())
	assert.Equal(t, 14.4378, converted.GetGeoPointValue().GetLongitude())

	converted, err = ToProto(wire.Timestamp("2021-02-18T10:00:00.5Z"))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, int64(1613642400), converted.GetTimestampValue().GetSeconds())
	assert.Equal(t, int32(500000000), converted.GetTimestampValue().GetNanos())
}

func TestToProtoRejected(t *testing.T) {
	_, err := ToProto(wire.Value{})
	assert.NotNil(t, err, "zero value has no variant")

	_, err = ToProto(wire.Timestamp("yesterday"))
	assert.NotNil(t, err, "timestamps are parsed at the proto boundary")

	_, err = ToProto(wire.Array(wire.Value{}))
	assert.NotNil(t, err, "nested invalid values fail the whole conversion")
}

func TestFromProtoRejected(t *testing.T) {
	_, err := FromProto(nil)
	assert.NotNil(t, err)

	_, err = FromProto(&pb.Value{})
	assert.NotNil(t, err, "proto value without a variant")

	_, err = FromProto(&pb.Value{ValueType: &pb.Value_BytesValue{BytesValue: []byte{1, 2}}})
	assert.NotNil(t, err, "bytes have no wire variant")
}

func TestProtoDocumentRoundTrip(t *testing.T) {
	original := wire.Document{
		Name: "projects/p/databases/(default)/documents/cities/LA",
		Fields: wire.NewFieldMap().
			Set("name", wire.String("Los Angeles")).
			Set("population", wire.Integer(3979576)),
		CreateTime: "2021-02-18T09:00:00.000001Z",
		UpdateTime: "2021-02-18T10:00:00Z",
	}

	converted, err := ToProtoDocument(original)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, original.Name, converted.GetName())
	assert.Equal(t, int64(1613638800), converted.GetCreateTime().GetSeconds())

	back, err := FromProtoDocument(converted)
	if err != nil {
		t.Fatal(err)
	}

	diff := cmp.Diff(original, back)
	if diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%v", diff)
	}
}
