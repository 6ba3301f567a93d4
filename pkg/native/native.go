// Package native bridges the wire model to the official Firestore SDK: its
// protobuf values, the Go value space of DocumentSnapshot.Data, and client
// construction from the shared connection config.
package native

import (
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"

	"github.com/ceskydata/firemodel/pkg/wire"
)

//ToNative Converts a wire value into the Go value space the SDK uses for
//snapshot data: string, int64, float64, bool, nil, time.Time, *latlng.LatLng,
//map[string]interface{} and []interface{}. References come back as their raw
//resource name string, resolving them into live document refs needs a client
//(see DocRef). Map key order is lost, Go maps do not keep one.
func ToNative(v wire.Value) (interface{}, error) {
	switch v.Kind() {
	case wire.KindString:
		return *v.String, nil
	case wire.KindInteger:
		return *v.Integer, nil
	case wire.KindDouble:
		return *v.Double, nil
	case wire.KindBoolean:
		return *v.Boolean, nil
	case wire.KindNull:
		return nil, nil
	case wire.KindTimestamp:
		t, err := time.Parse(time.RFC3339Nano, *v.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("timestamp %q: %w", *v.Timestamp, err)
		}
		return t, nil
	case wire.KindGeoPoint:
		return &latlng.LatLng{Latitude: v.GeoPoint.Latitude, Longitude: v.GeoPoint.Longitude}, nil
	case wire.KindReference:
		return v.Reference.Raw(), nil
	case wire.KindMap:
		out := make(map[string]interface{}, v.Map.Len())
		var convErr error
		v.Map.Range(func(key string, field wire.Value) bool {
			converted, err := ToNative(field)
			if err != nil {
				convErr = fmt.Errorf("field %q: %w", key, err)
				return false
			}
			out[key] = converted
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return out, nil
	case wire.KindArray:
		out := make([]interface{}, len(v.Array))
		for i, element := range v.Array {
			converted, err := ToNative(element)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = converted
		}
		return out, nil
	default:
		return nil, &wire.InvalidValueError{Reason: "not exactly one variant populated"}
	}
}

//FromNative Converts a Go value as produced by DocumentSnapshot.Data into a
//wire value. Document refs become reference values via their resource name,
//integers widen to int64, maps are emitted with sorted keys for determinism.
//Bytes have no wire variant and fail the conversion.
func FromNative(x interface{}) (wire.Value, error) {
	switch value := x.(type) {
	case nil:
		return wire.Null(), nil
	case string:
		return wire.String(value), nil
	case bool:
		return wire.Boolean(value), nil
	case int:
		return wire.Integer(int64(value)), nil
	case int32:
		return wire.Integer(int64(value)), nil
	case int64:
		return wire.Integer(value), nil
	case float32:
		return wire.Double(float64(value)), nil
	case float64:
		return wire.Double(value), nil
	case time.Time:
		return wire.Timestamp(value.UTC().Format(time.RFC3339Nano)), nil
	case *latlng.LatLng:
		return wire.GeoPointValue(value.GetLatitude(), value.GetLongitude()), nil
	case *firestore.DocumentRef:
		return wire.ReferenceValue(wire.NewReference(value.Path)), nil
	case []byte:
		return wire.Value{}, fmt.Errorf("bytes values have no wire representation")
	case []interface{}:
		values := make([]wire.Value, len(value))
		for i, element := range value {
			converted, err := FromNative(element)
			if err != nil {
				return wire.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			values[i] = converted
		}
		return wire.Array(values...), nil
	case map[string]interface{}:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fields := wire.NewFieldMap()
		for _, key := range keys {
			converted, err := FromNative(value[key])
			if err != nil {
				return wire.Value{}, fmt.Errorf("field %q: %w", key, err)
			}
			fields.Set(key, converted)
		}
		return wire.Map(fields), nil
	default:
		return wire.Value{}, fmt.Errorf("unsupported native type %T", x)
	}
}

//FromSnapshotData Converts a whole snapshot data map into a wire field map,
//keys sorted.
func FromSnapshotData(data map[string]interface{}) (*wire.FieldMap, error) {
	converted, err := FromNative(data)
	if err != nil {
		return nil, err
	}
	return converted.Map, nil
}
