package vdf

// Lookup walks path through nested maps and returns the value at the
// end of it. An empty path finds nothing, as does a path that passes
// through a leaf before its final segment (a terminal value has no
// children). The final value may itself be a map.
func (m Map) Lookup(path ...string) (Value, bool) {
	if len(path) == 0 {
		return Value{}, false
	}
	current := m
	for i, segment := range path {
		v, ok := current[segment]
		if !ok {
			return Value{}, false
		}
		if i == len(path)-1 {
			return v, true
		}
		current, ok = v.AsMap()
		if !ok {
			return Value{}, false
		}
	}
	return Value{}, false
}

// LookupString returns the string at path, if the path resolves to a
// string leaf. No coercion is performed.
func (m Map) LookupString(path ...string) (string, bool) {
	v, ok := m.Lookup(path...)
	if !ok {
		return "", false
	}
	return v.AsString()
}

// LookupUint32 returns the uint32 at path.
func (m Map) LookupUint32(path ...string) (uint32, bool) {
	v, ok := m.Lookup(path...)
	if !ok {
		return 0, false
	}
	return v.AsUint32()
}

// LookupUint64 returns the uint64 at path.
func (m Map) LookupUint64(path ...string) (uint64, bool) {
	v, ok := m.Lookup(path...)
	if !ok {
		return 0, false
	}
	return v.AsUint64()
}

// LookupMap returns the nested map at path.
func (m Map) LookupMap(path ...string) (Map, bool) {
	v, ok := m.Lookup(path...)
	if !ok {
		return nil, false
	}
	return v.AsMap()
}
