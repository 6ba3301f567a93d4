package wire

// Kind identifies which variant of a Value is populated.
type Kind int

// The closed set of wire value variants. There is no bytes variant in this
// model; nodes carrying one are rejected by the codec like any other unknown
// wrapper.
const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindDouble
	KindBoolean
	KindNull
	KindTimestamp
	KindGeoPoint
	KindReference
	KindMap
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	case KindTimestamp:
		return "timestamp"
	case KindGeoPoint:
		return "geoPoint"
	case KindReference:
		return "reference"
	case KindMap:
		return "map"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// GeoPoint is the payload of a geoPointValue. Latitude is expected in
// [-90, 90] and longitude in [-180, 180]; the model carries the numbers as
// given and leaves range enforcement to whatever boundary produced them.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Value is one node of the recursive wire value union. Exactly one variant
// field must be populated; Null counts as populated when true, Array when
// non-nil. A Value with zero or several populated variants has Kind
// KindInvalid and will not encode.
//
// Timestamps stay RFC 3339 text here. Parsing them into time.Time is the
// job of the proto bridge, not the wire model.
type Value struct {
	String    *string
	Integer   *int64
	Double    *float64
	Boolean   *bool
	Null      bool
	Timestamp *string
	GeoPoint  *GeoPoint
	Reference *Reference
	Map       *FieldMap
	Array     []Value
}

// String makes a stringValue node.
func String(s string) Value {
	return Value{String: &s}
}

// Integer makes an integerValue node.
func Integer(i int64) Value {
	return Value{Integer: &i}
}

// Double makes a doubleValue node.
func Double(f float64) Value {
	return Value{Double: &f}
}

// Boolean makes a booleanValue node.
func Boolean(b bool) Value {
	return Value{Boolean: &b}
}

// Null makes a nullValue node.
func Null() Value {
	return Value{Null: true}
}

// Timestamp makes a timestampValue node from RFC 3339 text. The text is not
// parsed here.
func Timestamp(rfc3339 string) Value {
	return Value{Timestamp: &rfc3339}
}

// GeoPointValue makes a geoPointValue node.
func GeoPointValue(latitude, longitude float64) Value {
	return Value{GeoPoint: &GeoPoint{Latitude: latitude, Longitude: longitude}}
}

// ReferenceValue makes a referenceValue node.
func ReferenceValue(ref Reference) Value {
	return Value{Reference: &ref}
}

// Map makes a mapValue node. Passing nil yields an invalid value; use
// NewFieldMap for an empty map.
func Map(fields *FieldMap) Value {
	return Value{Map: fields}
}

// Array makes an arrayValue node. An empty call yields a valid empty array.
func Array(values ...Value) Value {
	if values == nil {
		values = []Value{}
	}
	return Value{Array: values}
}

// Kind reports the populated variant, or KindInvalid when none or more than
// one is populated.
func (v Value) Kind() Kind {
	kind := KindInvalid
	populated := 0
	mark := func(k Kind) {
		kind = k
		populated++
	}

	if v.String != nil {
		mark(KindString)
	}
	if v.Integer != nil {
		mark(KindInteger)
	}
	if v.Double != nil {
		mark(KindDouble)
	}
	if v.Boolean != nil {
		mark(KindBoolean)
	}
	if v.Null {
		mark(KindNull)
	}
	if v.Timestamp != nil {
		mark(KindTimestamp)
	}
	if v.GeoPoint != nil {
		mark(KindGeoPoint)
	}
	if v.Reference != nil {
		mark(KindReference)
	}
	if v.Map != nil {
		mark(KindMap)
	}
	if v.Array != nil {
		mark(KindArray)
	}

	if populated != 1 {
		return KindInvalid
	}
	return kind
}

// tags lists the wire wrapper keys of all populated variants, in declaration
// order. Used to build codec error messages.
func (v Value) tags() []string {
	var tags []string
	if v.String != nil {
		tags = append(tags, tagString)
	}
	if v.Integer != nil {
		tags = append(tags, tagInteger)
	}
	if v.Double != nil {
		tags = append(tags, tagDouble)
	}
	if v.Boolean != nil {
		tags = append(tags, tagBoolean)
	}
	if v.Null {
		tags = append(tags, tagNull)
	}
	if v.Timestamp != nil {
		tags = append(tags, tagTimestamp)
	}
	if v.GeoPoint != nil {
		tags = append(tags, tagGeoPoint)
	}
	if v.Reference != nil {
		tags = append(tags, tagReference)
	}
	if v.Map != nil {
		tags = append(tags, tagMap)
	}
	if v.Array != nil {
		tags = append(tags, tagArray)
	}
	return tags
}

// Equal reports structural equality: same variant, equal payload, recursing
// through maps (including key order) and arrays. Invalid values equal
// nothing, not even each other. go-cmp picks this method up, so cmp.Diff on
// values and field maps compares wire semantics rather than pointers.
func (v Value) Equal(o Value) bool {
	kind := v.Kind()
	if kind != o.Kind() {
		return false
	}

	switch kind {
	case KindString:
		return *v.String == *o.String
	case KindInteger:
		return *v.Integer == *o.Integer
	case KindDouble:
		return *v.Double == *o.Double
	case KindBoolean:
		return *v.Boolean == *o.Boolean
	case KindNull:
		return true
	case KindTimestamp:
		return *v.Timestamp == *o.Timestamp
	case KindGeoPoint:
		return *v.GeoPoint == *o.GeoPoint
	case KindReference:
		return v.Reference.Raw() == o.Reference.Raw()
	case KindMap:
		return v.Map.Equal(o.Map)
	case KindArray:
		if len(v.Array) != len(o.Array) {
			return false
		}
		for i := range v.Array {
			if !v.Array[i].Equal(o.Array[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
