package wire

// FieldMap is the fields object of a mapValue or document: string keys to
// wire values, with the insertion order of keys preserved. A plain Go map
// would lose the order the server sent, so keys are tracked separately.
//
// The zero FieldMap is usable; Set allocates lazily. A nil *FieldMap reads
// as an empty map, but like a nil Go map it cannot be written through.
// FieldMap is not safe for concurrent mutation.
type FieldMap struct {
	keys   []string
	values map[string]Value
}

// NewFieldMap returns an empty field map.
func NewFieldMap() *FieldMap {
	return &FieldMap{values: map[string]Value{}}
}

// Set stores v under key. A new key is appended to the order; setting an
// existing key overwrites in place and keeps its position. Returns m so
// literals can be built by chaining. The receiver must be non-nil.
func (m *FieldMap) Set(key string, v Value) *FieldMap {
	if m.values == nil {
		m.values = map[string]Value{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	return m
}

// Get returns the value stored under key.
func (m *FieldMap) Get(key string) (Value, bool) {
	if m == nil || m.values == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Delete removes key, preserving the order of the remaining keys. Removing a
// missing key is a no-op.
func (m *FieldMap) Delete(key string) {
	if m == nil || m.values == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the field names in insertion order. The slice is a copy.
func (m *FieldMap) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Range calls fn for every field in insertion order until fn returns false.
func (m *FieldMap) Range(fn func(key string, v Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// Equal reports whether two field maps hold equal values under the same keys
// in the same order. A nil map equals an empty one.
func (m *FieldMap) Equal(o *FieldMap) bool {
	if m.Len() != o.Len() {
		return false
	}
	if m == nil || o == nil {
		return true
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		if !m.values[k].Equal(o.values[k]) {
			return false
		}
	}
	return true
}
