package decode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/steamutil/vdfkit/internal/buf"
	"github.com/steamutil/vdfkit/internal/format"
	"github.com/steamutil/vdfkit/vdf"
)

type streamWriter struct {
	bytes.Buffer
}

func (w *streamWriter) cstring(s string) {
	w.WriteString(s)
	w.WriteByte(0)
}

func (w *streamWriter) begin(key string) {
	w.WriteByte(format.TagMapBegin)
	w.cstring(key)
}

func (w *streamWriter) end() {
	w.WriteByte(format.TagMapEnd)
}

func (w *streamWriter) str(key, val string) {
	w.WriteByte(format.TagString)
	w.cstring(key)
	w.cstring(val)
}

func (w *streamWriter) u32(key string, val uint32) {
	w.WriteByte(format.TagUint32)
	w.cstring(key)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], val)
	w.Write(b[:])
}

func (w *streamWriter) u64(key string, val uint64) {
	w.WriteByte(format.TagUint64)
	w.cstring(key)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], val)
	w.Write(b[:])
}

func decodeString(t *testing.T, w *streamWriter) vdf.Map {
	t.Helper()
	c := buf.NewCursor(w.Bytes())
	m, err := Tree(c)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("Tree left %d bytes unread", c.Remaining())
	}
	return m
}

func TestTreeHandBuilt(t *testing.T) {
	// { "a": Uint32(7), "b": { "c": String("x") } }
	var w streamWriter
	w.u32("a", 7)
	w.begin("b")
	w.str("c", "x")
	w.end()
	w.end() // closes the root

	m := decodeString(t, &w)
	if n, ok := m.LookupUint32("a"); !ok || n != 7 {
		t.Fatalf("lookup a = %d, %v", n, ok)
	}
	if s, ok := m.LookupString("b", "c"); !ok || s != "x" {
		t.Fatalf("lookup b/c = %q, %v", s, ok)
	}
	if v, ok := m.Lookup("b"); !ok || v.Kind() != vdf.KindMap {
		t.Fatalf("lookup b = %v, %v", v, ok)
	}
	if _, ok := m.Lookup("a", "z"); ok {
		t.Fatal("lookup through a leaf should find nothing")
	}
	if _, ok := m.Lookup("missing"); ok {
		t.Fatal("lookup of a missing key should find nothing")
	}
}

func TestTreeUint64Leaf(t *testing.T) {
	var w streamWriter
	w.u64("token", 0xdeadbeefcafe)
	w.end()

	m := decodeString(t, &w)
	if n, ok := m.LookupUint64("token"); !ok || n != 0xdeadbeefcafe {
		t.Fatalf("uint64 leaf = %d, %v", n, ok)
	}
}

func TestTreeNestingDepth(t *testing.T) {
	// d nested maps terminate with stack depth 0 and reproduce the
	// encoded depth exactly.
	for _, depth := range []int{0, 1, 2, 8, 64} {
		var w streamWriter
		for i := 0; i < depth; i++ {
			w.begin("n")
		}
		for i := 0; i < depth; i++ {
			w.end()
		}
		w.end()

		m := decodeString(t, &w)
		for i := 0; i < depth; i++ {
			v, ok := m.Lookup("n")
			if !ok || v.Kind() != vdf.KindMap {
				t.Fatalf("depth %d: level %d missing", depth, i)
			}
			m, _ = v.AsMap()
		}
		if len(m) != 0 {
			t.Fatalf("depth %d: innermost map not empty", depth)
		}
	}
}

func TestTreeMissingEndIsTruncated(t *testing.T) {
	var w streamWriter
	w.begin("open")
	w.str("k", "v")
	// No end tags at all: the stack never empties.
	_, err := Tree(buf.NewCursor(w.Bytes()))
	if !errors.Is(err, format.ErrTruncated) {
		t.Fatalf("error = %v, want ErrTruncated", err)
	}
}

func TestTreeTruncatedMidField(t *testing.T) {
	var w streamWriter
	w.u32("a", 7)
	full := w.Bytes()
	for cut := 1; cut < len(full); cut++ {
		_, err := Tree(buf.NewCursor(full[:cut]))
		if !errors.Is(err, format.ErrTruncated) {
			t.Fatalf("cut at %d: error = %v, want ErrTruncated", cut, err)
		}
	}
}

func TestTreeUnknownTag(t *testing.T) {
	var w streamWriter
	w.str("k", "v")
	w.WriteByte(0x03)
	w.cstring("junk")
	w.end()

	_, err := Tree(buf.NewCursor(w.Bytes()))
	if !errors.Is(err, format.ErrUnknownTag) {
		t.Fatalf("error = %v, want ErrUnknownTag", err)
	}
}

func TestTreeInvalidUTF8Key(t *testing.T) {
	var w streamWriter
	w.WriteByte(format.TagString)
	w.Write([]byte{0xff, 0xfe, 0x00})
	w.cstring("v")
	w.end()

	_, err := Tree(buf.NewCursor(w.Bytes()))
	if !errors.Is(err, format.ErrInvalidString) {
		t.Fatalf("error = %v, want ErrInvalidString", err)
	}
}

func TestTreeDuplicateKeyLastWins(t *testing.T) {
	var w streamWriter
	w.str("k", "first")
	w.str("k", "second")
	w.end()

	m := decodeString(t, &w)
	if len(m) != 1 {
		t.Fatalf("map has %d keys, want 1", len(m))
	}
	if s, _ := m.LookupString("k"); s != "second" {
		t.Fatalf("duplicate key = %q, want last write", s)
	}
}

func TestTreeDuplicateNamesAcrossLevels(t *testing.T) {
	// The same key name at different nesting levels must land in
	// different maps.
	var w streamWriter
	w.begin("common")
	w.str("name", "inner")
	w.end()
	w.str("name", "outer")
	w.end()

	m := decodeString(t, &w)
	if s, _ := m.LookupString("name"); s != "outer" {
		t.Fatalf("outer name = %q", s)
	}
	if s, _ := m.LookupString("common", "name"); s != "inner" {
		t.Fatalf("inner name = %q", s)
	}
}

func TestTreeStopsAtRootClose(t *testing.T) {
	// Bytes after the root's closing tag belong to the next record and
	// must stay unread.
	var w streamWriter
	w.str("k", "v")
	w.end()
	trailing := strings.Repeat("\x01", 5)
	w.WriteString(trailing)

	c := buf.NewCursor(w.Bytes())
	if _, err := Tree(c); err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if c.Remaining() != len(trailing) {
		t.Fatalf("Remaining = %d, want %d", c.Remaining(), len(trailing))
	}
}
