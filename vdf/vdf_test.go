package vdf

import "testing"

func TestValueKinds(t *testing.T) {
	cases := []struct {
		v    Value
		kind Kind
		str  string
	}{
		{Uint32(7), KindUint32, "7"},
		{Uint64(1 << 40), KindUint64, "1099511627776"},
		{String("x"), KindString, "x"},
		{MapValue(Map{}), KindMap, "(map)"},
		{Value{}, KindInvalid, "None"},
	}
	for _, tc := range cases {
		if tc.v.Kind() != tc.kind {
			t.Fatalf("Kind = %v, want %v", tc.v.Kind(), tc.kind)
		}
		if tc.v.String() != tc.str {
			t.Fatalf("String = %q, want %q", tc.v.String(), tc.str)
		}
	}
}

func TestTypedAccessorsRejectOtherKinds(t *testing.T) {
	v := Uint32(7)
	if _, ok := v.AsString(); ok {
		t.Fatal("AsString on uint32 should fail")
	}
	if _, ok := v.AsUint64(); ok {
		t.Fatal("AsUint64 on uint32 should fail")
	}
	if _, ok := v.AsMap(); ok {
		t.Fatal("AsMap on uint32 should fail")
	}
	if n, ok := v.AsUint32(); !ok || n != 7 {
		t.Fatalf("AsUint32 = %v, %v", n, ok)
	}
}

func TestKindString(t *testing.T) {
	want := map[Kind]string{
		KindInvalid: "invalid",
		KindUint32:  "uint32",
		KindUint64:  "uint64",
		KindString:  "string",
		KindMap:     "map",
	}
	for k, s := range want {
		if k.String() != s {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, k.String(), s)
		}
	}
}
