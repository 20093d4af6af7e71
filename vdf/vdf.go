// Package vdf holds the property-tree data model decoded from Steam's
// binary VDF caches: a tagged value that is either an unsigned
// integer, a string, or a nested string-keyed map of further values.
package vdf

import "strconv"

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUint32
	KindUint64
	KindString
	KindMap
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindString:
		return "string"
	case KindMap:
		return "map"
	default:
		return "invalid"
	}
}

// Map is a property map. Keys are unique within one map; insertion
// overwrites, so a duplicate key in the encoded stream resolves to the
// last occurrence.
type Map map[string]Value

// Value is one node of a decoded property tree. The zero Value has
// KindInvalid and matches no typed accessor.
type Value struct {
	kind Kind
	num  uint64
	str  string
	m    Map
}

// Uint32 returns a uint32 Value.
func Uint32(v uint32) Value {
	return Value{kind: KindUint32, num: uint64(v)}
}

// Uint64 returns a uint64 Value.
func Uint64(v uint64) Value {
	return Value{kind: KindUint64, num: v}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// MapValue wraps m as a Value.
func MapValue(m Map) Value {
	return Value{kind: KindMap, m: m}
}

// Kind returns the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// AsUint32 returns the uint32 payload when v holds one.
func (v Value) AsUint32() (uint32, bool) {
	if v.kind != KindUint32 {
		return 0, false
	}
	return uint32(v.num), true
}

// AsUint64 returns the uint64 payload when v holds one.
func (v Value) AsUint64() (uint64, bool) {
	if v.kind != KindUint64 {
		return 0, false
	}
	return v.num, true
}

// AsString returns the string payload when v holds one.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsMap returns the nested map when v holds one.
func (v Value) AsMap() (Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// String renders a leaf for display. Maps render as "(map)" and the
// zero Value as "None".
func (v Value) String() string {
	switch v.kind {
	case KindUint32, KindUint64:
		return strconv.FormatUint(v.num, 10)
	case KindString:
		return v.str
	case KindMap:
		return "(map)"
	default:
		return "None"
	}
}
