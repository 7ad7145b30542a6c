package yamlvalue

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds, covering the full YAML scalar and collection surface
// the tool operates on.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindReal
	KindString
	KindArray
	KindMap
)

// String returns the lowercase kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// IsScalar reports whether the kind is a leaf (non-collection) kind.
func (k Kind) IsScalar() bool {
	return k != KindArray && k != KindMap
}

// Value is a node in a YAML value tree. Values are immutable by
// convention once built; the diff algorithms share subtrees between
// inputs and results and never write through them. Map values keep
// their keys in insertion order.
type Value struct {
	kind    Kind
	boolVal bool
	intVal  int64
	realVal float64
	strVal  string
	items   []*Value
	keys    []string
	fields  map[string]*Value
}

// nullValue is shared by all Null() calls. Null values carry no state
// and have no mutating operations, so a singleton is safe.
//
//nolint:gochecknoglobals // Immutable sentinel value.
var nullValue = &Value{kind: KindNull}

// Null returns the null value.
func Null() *Value {
	return nullValue
}

// Bool returns a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int returns an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Real returns a floating-point value.
func Real(v float64) *Value {
	return &Value{kind: KindReal, realVal: v}
}

// String returns a string value.
func String(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array returns an array value holding the given items.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, items: items}
}

// Map returns an empty map value. Populate it with Set.
func Map() *Value {
	return &Value{kind: KindMap, fields: map[string]*Value{}}
}

// Kind returns the variant tag of the value. A nil Value is null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}

	return v.kind
}

// IsNull reports whether the value is null.
func (v *Value) IsNull() bool {
	return v.Kind() == KindNull
}

// Bool returns the boolean payload, or false for other kinds.
func (v *Value) Bool() bool {
	if v == nil {
		return false
	}

	return v.boolVal
}

// Int returns the integer payload, or 0 for other kinds.
func (v *Value) Int() int64 {
	if v == nil {
		return 0
	}

	return v.intVal
}

// Real returns the floating-point payload, or 0 for other kinds.
func (v *Value) Real() float64 {
	if v == nil {
		return 0
	}

	return v.realVal
}

// Str returns the string payload, or "" for other kinds.
func (v *Value) Str() string {
	if v == nil {
		return ""
	}

	return v.strVal
}

// Items returns the array elements. The returned slice must not be
// modified.
func (v *Value) Items() []*Value {
	if v == nil {
		return nil
	}

	return v.items
}

// Keys returns the map keys in insertion order. The returned slice
// must not be modified.
func (v *Value) Keys() []string {
	if v == nil {
		return nil
	}

	return v.keys
}

// Get returns the map entry for key and whether it exists.
func (v *Value) Get(key string) (*Value, bool) {
	if v == nil || v.kind != KindMap {
		return nil, false
	}

	child, ok := v.fields[key]

	return child, ok
}

// GetOrNull returns the map entry for key, or the null value when the
// key is absent. This is the substitution rule the reducer relies on:
// a missing key participates as null.
func (v *Value) GetOrNull(key string) *Value {
	child, ok := v.Get(key)
	if !ok {
		return Null()
	}

	return child
}

// Len returns the number of array elements or map entries, and 0 for
// scalar kinds.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.items)
	case KindMap:
		return len(v.keys)
	default:
		return 0
	}
}

// Set stores child under key, preserving first-insertion key order.
// It panics when called on a non-map value; maps are the only kind
// built incrementally.
func (v *Value) Set(key string, child *Value) {
	if v == nil || v.kind != KindMap {
		panic("yamlvalue: Set called on non-map value")
	}

	if _, exists := v.fields[key]; !exists {
		v.keys = append(v.keys, key)
	}

	v.fields[key] = child
}
