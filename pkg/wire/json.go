package wire

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Wire wrapper keys, one per variant. The set is closed; anything else on a
// value node is rejected.
const (
	tagString    = "stringValue"
	tagInteger   = "integerValue"
	tagDouble    = "doubleValue"
	tagBoolean   = "booleanValue"
	tagNull      = "nullValue"
	tagTimestamp = "timestampValue"
	tagGeoPoint  = "geoPointValue"
	tagReference = "referenceValue"
	tagMap       = "mapValue"
	tagArray     = "arrayValue"
)

type mapPayload struct {
	Fields *FieldMap `json:"fields"`
}

type arrayPayload struct {
	Values []Value `json:"values"`
}

//MarshalJSON Encodes the value as a single-wrapper-key object. A value with
//zero or several populated variants fails with InvalidValueError instead of
//guessing.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind() {
	case KindString:
		return wrapTag(tagString, *v.String)
	case KindInteger:
		// Emitted as a JSON number. The REST string form is accepted on
		// decode only.
		return wrapTag(tagInteger, *v.Integer)
	case KindDouble:
		return wrapTag(tagDouble, *v.Double)
	case KindBoolean:
		return wrapTag(tagBoolean, *v.Boolean)
	case KindNull:
		return []byte(`{"nullValue":null}`), nil
	case KindTimestamp:
		return wrapTag(tagTimestamp, *v.Timestamp)
	case KindGeoPoint:
		return wrapTag(tagGeoPoint, *v.GeoPoint)
	case KindReference:
		return wrapTag(tagReference, v.Reference.Raw())
	case KindMap:
		return wrapTag(tagMap, mapPayload{Fields: v.Map})
	case KindArray:
		return wrapTag(tagArray, arrayPayload{Values: v.Array})
	default:
		return nil, invalidVariants(v.tags())
	}
}

//UnmarshalJSON Decodes a single-wrapper-key object, rejecting nodes with no
//recognized wrapper, several wrappers, or an unknown one. On any error the
//receiver is left unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	var node map[string]json.RawMessage
	if err := json.Unmarshal(data, &node); err != nil {
		return &InvalidValueError{Reason: "not an object: " + err.Error()}
	}
	if len(node) == 0 {
		return invalidVariants(nil)
	}
	if len(node) > 1 {
		tags := make([]string, 0, len(node))
		for tag := range node {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		return invalidVariants(tags)
	}

	for tag, payload := range node {
		decoded, err := decodeVariant(tag, payload)
		if err != nil {
			return err
		}
		*v = decoded
	}
	return nil
}

func invalidVariants(tags []string) *InvalidValueError {
	if len(tags) == 0 {
		return &InvalidValueError{Reason: "no variant set"}
	}
	return &InvalidValueError{Reason: "multiple variants set: " + strings.Join(tags, ", ")}
}

func decodeVariant(tag string, payload json.RawMessage) (Value, error) {
	var v Value

	// Only nullValue carries a JSON null. Anywhere else json.Unmarshal would
	// treat it as a no-op and pass the variant's zero payload off as decoded.
	if tag != tagNull && bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		return v, &InvalidValueError{Reason: tag + ": payload must not be null"}
	}

	switch tag {
	case tagString:
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return v, payloadError(tag, err)
		}
		v.String = &s

	case tagInteger:
		// The REST API writes int64 as a JSON string, trigger events and
		// this model write a number. Accept both.
		var i int64
		if err := json.Unmarshal(payload, &i); err != nil {
			var s string
			if err := json.Unmarshal(payload, &s); err != nil {
				return v, &InvalidValueError{Reason: tag + ": not a number or a numeric string"}
			}
			parsed, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return v, payloadError(tag, err)
			}
			i = parsed
		}
		v.Integer = &i

	case tagDouble:
		var f float64
		if err := json.Unmarshal(payload, &f); err != nil {
			return v, payloadError(tag, err)
		}
		v.Double = &f

	case tagBoolean:
		var b bool
		if err := json.Unmarshal(payload, &b); err != nil {
			return v, payloadError(tag, err)
		}
		v.Boolean = &b

	case tagNull:
		if !bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
			return v, &InvalidValueError{Reason: tag + ": payload must be null"}
		}
		v.Null = true

	case tagTimestamp:
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return v, payloadError(tag, err)
		}
		v.Timestamp = &s

	case tagGeoPoint:
		var g GeoPoint
		if err := json.Unmarshal(payload, &g); err != nil {
			return v, payloadError(tag, err)
		}
		v.GeoPoint = &g

	case tagReference:
		var s string
		if err := json.Unmarshal(payload, &s); err != nil {
			return v, payloadError(tag, err)
		}
		ref := NewReference(s)
		v.Reference = &ref

	case tagMap:
		var m mapPayload
		if err := json.Unmarshal(payload, &m); err != nil {
			return v, payloadError(tag, err)
		}
		if m.Fields == nil {
			// {"mapValue":{}} is an empty map on the wire.
			m.Fields = NewFieldMap()
		}
		v.Map = m.Fields

	case tagArray:
		// Elements are decoded one by one; a bulk []Value decode would let
		// the standard library turn a literal null element into a zero Value
		// without consulting the codec.
		var a struct {
			Values []json.RawMessage `json:"values"`
		}
		if err := json.Unmarshal(payload, &a); err != nil {
			return v, payloadError(tag, err)
		}
		values := make([]Value, len(a.Values))
		for i, raw := range a.Values {
			if err := json.Unmarshal(raw, &values[i]); err != nil {
				return v, err
			}
		}
		v.Array = values

	default:
		return v, &InvalidValueError{Reason: "unknown variant " + strconv.Quote(tag)}
	}

	return v, nil
}

func payloadError(tag string, err error) *InvalidValueError {
	return &InvalidValueError{Reason: tag + ": " + err.Error()}
}

func wrapTag(tag string, payload interface{}) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(strconv.Quote(tag))
	buf.WriteByte(':')
	buf.Write(encoded)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

//MarshalJSON Encodes the fields as a JSON object in insertion order, which
//the standard map type would not preserve.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		encodedValue, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(encodedValue)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

//UnmarshalJSON Decodes a fields object token by token so the source key
//order survives. Duplicate keys are rejected rather than silently collapsed.
func (m *FieldMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return &InvalidValueError{Reason: "fields: " + err.Error()}
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &InvalidValueError{Reason: "fields: not an object"}
	}

	decoded := FieldMap{values: map[string]Value{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return &InvalidValueError{Reason: "fields: " + err.Error()}
		}
		key, ok := keyTok.(string)
		if !ok {
			return &InvalidValueError{Reason: "fields: non-string key"}
		}
		if _, dup := decoded.values[key]; dup {
			return &InvalidValueError{Reason: "fields: duplicate key " + strconv.Quote(key)}
		}

		var v Value
		if err := dec.Decode(&v); err != nil {
			return err
		}
		decoded.keys = append(decoded.keys, key)
		decoded.values[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return &InvalidValueError{Reason: "fields: " + err.Error()}
	}

	*m = decoded
	return nil
}

//MarshalJSON Encodes the reference as its raw string.
func (r Reference) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.raw)
}

//UnmarshalJSON Accepts any string; validation stays lazy.
func (r *Reference) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	r.raw = s
	return nil
}
