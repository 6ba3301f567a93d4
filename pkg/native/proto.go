package native

import (
	"fmt"
	"sort"
	"time"

	pb "cloud.google.com/go/firestore/apiv1/firestorepb"
	"google.golang.org/genproto/googleapis/type/latlng"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/ceskydata/firemodel/pkg/wire"
)

//ToProto Converts a wire value into the SDK's protobuf value. Timestamps are
//parsed here; RFC 3339 text that does not parse fails the conversion.
func ToProto(v wire.Value) (*pb.Value, error) {
	switch v.Kind() {
	case wire.KindString:
		return &pb.Value{ValueType: &pb.Value_StringValue{StringValue: *v.String}}, nil
	case wire.KindInteger:
		return &pb.Value{ValueType: &pb.Value_IntegerValue{IntegerValue: *v.Integer}}, nil
	case wire.KindDouble:
		return &pb.Value{ValueType: &pb.Value_DoubleValue{DoubleValue: *v.Double}}, nil
	case wire.KindBoolean:
		return &pb.Value{ValueType: &pb.Value_BooleanValue{BooleanValue: *v.Boolean}}, nil
	case wire.KindNull:
		return &pb.Value{ValueType: &pb.Value_NullValue{NullValue: structpb.NullValue_NULL_VALUE}}, nil
	case wire.KindTimestamp:
		t, err := time.Parse(time.RFC3339Nano, *v.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("timestamp %q: %w", *v.Timestamp, err)
		}
		return &pb.Value{ValueType: &pb.Value_TimestampValue{TimestampValue: timestamppb.New(t)}}, nil
	case wire.KindGeoPoint:
		return &pb.Value{ValueType: &pb.Value_GeoPointValue{GeoPointValue: &latlng.LatLng{
			Latitude:  v.GeoPoint.Latitude,
			Longitude: v.GeoPoint.Longitude,
		}}}, nil
	case wire.KindReference:
		return &pb.Value{ValueType: &pb.Value_ReferenceValue{ReferenceValue: v.Reference.Raw()}}, nil
	case wire.KindMap:
		fields, err := fieldsToProto(v.Map)
		if err != nil {
			return nil, err
		}
		return &pb.Value{ValueType: &pb.Value_MapValue{MapValue: &pb.MapValue{Fields: fields}}}, nil
	case wire.KindArray:
		values := make([]*pb.Value, len(v.Array))
		for i, element := range v.Array {
			converted, err := ToProto(element)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			values[i] = converted
		}
		return &pb.Value{ValueType: &pb.Value_ArrayValue{ArrayValue: &pb.ArrayValue{Values: values}}}, nil
	default:
		return nil, &wire.InvalidValueError{Reason: "not exactly one variant populated"}
	}
}

//FromProto Converts the SDK's protobuf value into a wire value. Map keys come
//back sorted, protobuf maps carry no order to preserve. Bytes values have no
//wire variant and fail the conversion.
func FromProto(pv *pb.Value) (wire.Value, error) {
	if pv == nil {
		return wire.Value{}, &wire.InvalidValueError{Reason: "nil proto value"}
	}

	switch vt := pv.GetValueType().(type) {
	case *pb.Value_StringValue:
		return wire.String(vt.StringValue), nil
	case *pb.Value_IntegerValue:
		return wire.Integer(vt.IntegerValue), nil
	case *pb.Value_DoubleValue:
		return wire.Double(vt.DoubleValue), nil
	case *pb.Value_BooleanValue:
		return wire.Boolean(vt.BooleanValue), nil
	case *pb.Value_NullValue:
		return wire.Null(), nil
	case *pb.Value_TimestampValue:
		return wire.Timestamp(vt.TimestampValue.AsTime().Format(time.RFC3339Nano)), nil
	case *pb.Value_GeoPointValue:
		return wire.GeoPointValue(vt.GeoPointValue.GetLatitude(), vt.GeoPointValue.GetLongitude()), nil
	case *pb.Value_ReferenceValue:
		return wire.ReferenceValue(wire.NewReference(vt.ReferenceValue)), nil
	case *pb.Value_MapValue:
		fields, err := fieldsFromProto(vt.MapValue.GetFields())
		if err != nil {
			return wire.Value{}, err
		}
		return wire.Map(fields), nil
	case *pb.Value_ArrayValue:
		elements := vt.ArrayValue.GetValues()
		values := make([]wire.Value, len(elements))
		for i, element := range elements {
			converted, err := FromProto(element)
			if err != nil {
				return wire.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			values[i] = converted
		}
		return wire.Array(values...), nil
	case *pb.Value_BytesValue:
		return wire.Value{}, fmt.Errorf("bytes values have no wire representation")
	case nil:
		return wire.Value{}, &wire.InvalidValueError{Reason: "no variant set"}
	default:
		return wire.Value{}, fmt.Errorf("unsupported proto value type %T", vt)
	}
}

//ToProtoDocument Converts a wire document into the SDK's protobuf document.
func ToProtoDocument(d wire.Document) (*pb.Document, error) {
	fields, err := fieldsToProto(d.Fields)
	if err != nil {
		return nil, err
	}
	out := &pb.Document{Name: d.Name, Fields: fields}

	if d.CreateTime != "" {
		t, err := time.Parse(time.RFC3339Nano, d.CreateTime)
		if err != nil {
			return nil, fmt.Errorf("createTime: %w", err)
		}
		out.CreateTime = timestamppb.New(t)
	}
	if d.UpdateTime != "" {
		t, err := time.Parse(time.RFC3339Nano, d.UpdateTime)
		if err != nil {
			return nil, fmt.Errorf("updateTime: %w", err)
		}
		out.UpdateTime = timestamppb.New(t)
	}

	return out, nil
}

//FromProtoDocument Converts the SDK's protobuf document into a wire document.
func FromProtoDocument(pd *pb.Document) (wire.Document, error) {
	if pd == nil {
		return wire.Document{}, fmt.Errorf("nil proto document")
	}

	fields, err := fieldsFromProto(pd.GetFields())
	if err != nil {
		return wire.Document{}, err
	}

	out := wire.Document{Name: pd.GetName(), Fields: fields}
	if pd.GetCreateTime() != nil {
		out.CreateTime = pd.GetCreateTime().AsTime().Format(time.RFC3339Nano)
	}
	if pd.GetUpdateTime() != nil {
		out.UpdateTime = pd.GetUpdateTime().AsTime().Format(time.RFC3339Nano)
	}
	return out, nil
}

func fieldsToProto(m *wire.FieldMap) (map[string]*pb.Value, error) {
	fields := make(map[string]*pb.Value, m.Len())
	var convErr error
	m.Range(func(key string, v wire.Value) bool {
		converted, err := ToProto(v)
		if err != nil {
			convErr = fmt.Errorf("field %q: %w", key, err)
			return false
		}
		fields[key] = converted
		return true
	})
	if convErr != nil {
		return nil, convErr
	}
	return fields, nil
}

func fieldsFromProto(fields map[string]*pb.Value) (*wire.FieldMap, error) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	m := wire.NewFieldMap()
	for _, key := range keys {
		converted, err := FromProto(fields[key])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		m.Set(key, converted)
	}
	return m, nil
}
