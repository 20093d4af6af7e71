// Package cachetest builds syntactically valid appinfo/packageinfo
// cache bytes for tests. It is the only place that knows how to encode
// the format; the library itself is read-only.
package cachetest

import (
	"bytes"
	"encoding/binary"

	"github.com/steamutil/vdfkit/internal/format"
)

// TreeWriter accumulates the tagged-value stream of one record's
// property tree.
type TreeWriter struct {
	buf bytes.Buffer
}

func (t *TreeWriter) cstring(s string) {
	t.buf.WriteString(s)
	t.buf.WriteByte(0)
}

// Begin opens a nested map under key.
func (t *TreeWriter) Begin(key string) *TreeWriter {
	t.buf.WriteByte(format.TagMapBegin)
	t.cstring(key)
	return t
}

// End closes the innermost open map.
func (t *TreeWriter) End() *TreeWriter {
	t.buf.WriteByte(format.TagMapEnd)
	return t
}

// Str writes a string leaf.
func (t *TreeWriter) Str(key, val string) *TreeWriter {
	t.buf.WriteByte(format.TagString)
	t.cstring(key)
	t.cstring(val)
	return t
}

// U32 writes a uint32 leaf.
func (t *TreeWriter) U32(key string, val uint32) *TreeWriter {
	t.buf.WriteByte(format.TagUint32)
	t.cstring(key)
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], val)
	t.buf.Write(b[:])
	return t
}

// U64 writes a uint64 leaf.
func (t *TreeWriter) U64(key string, val uint64) *TreeWriter {
	t.buf.WriteByte(format.TagUint64)
	t.cstring(key)
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], val)
	t.buf.Write(b[:])
	return t
}

// Raw appends arbitrary bytes, for malformed-stream tests.
func (t *TreeWriter) Raw(b ...byte) *TreeWriter {
	t.buf.Write(b)
	return t
}

// Stream returns the accumulated tags without closing the root map,
// for unbalanced-stream tests.
func (t *TreeWriter) Stream() []byte {
	return append([]byte(nil), t.buf.Bytes()...)
}

// Record returns the framed tree: the accumulated stream followed by
// the end tag that closes the record's root map.
func (t *TreeWriter) Record() []byte {
	out := make([]byte, 0, t.buf.Len()+1)
	out = append(out, t.buf.Bytes()...)
	return append(out, format.TagMapEnd)
}

// App describes one app record to encode.
type App struct {
	ID           uint32
	State        uint32
	LastUpdated  uint32
	AccessToken  uint64
	Checksum     [format.ChecksumSize]byte
	ChangeNumber uint32
	Tree         []byte // framed tree from TreeWriter.Record
}

// Package describes one package record to encode.
type Package struct {
	ID           uint32
	Preamble     []byte // nil means zeros of the version's length
	ChangeNumber uint32
	Tree         []byte
}

func header(major, minor uint8, magic uint16) *bytes.Buffer {
	var b bytes.Buffer
	b.WriteByte(major)
	var sig [2]byte
	binary.BigEndian.PutUint16(sig[:], magic)
	b.Write(sig[:])
	b.WriteByte(minor)
	var fv [4]byte
	binary.LittleEndian.PutUint32(fv[:], format.FormatVersion)
	b.Write(fv[:])
	return &b
}

func putU32(b *bytes.Buffer, v uint32) {
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], v)
	b.Write(raw[:])
}

func putU64(b *bytes.Buffer, v uint64) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], v)
	b.Write(raw[:])
}

// AppCache encodes a full appinfo cache: header, the given records,
// and the zero sentinel id.
func AppCache(major, minor uint8, recs ...App) []byte {
	b := header(major, minor, format.MagicApps)
	for _, r := range recs {
		putU32(b, r.ID)
		var body bytes.Buffer
		putU32(&body, r.State)
		putU32(&body, r.LastUpdated)
		putU64(&body, r.AccessToken)
		body.Write(r.Checksum[:])
		putU32(&body, r.ChangeNumber)
		body.Write(r.Tree)
		putU32(b, uint32(body.Len()))
		b.Write(body.Bytes())
	}
	putU32(b, format.SentinelApps)
	return b.Bytes()
}

// PackageCache encodes a full packageinfo cache: header, the given
// records, and the all-ones sentinel id. Records carry no byte length;
// the preamble defaults to zeros of the length the major version
// implies.
func PackageCache(major, minor uint8, recs ...Package) []byte {
	b := header(major, minor, format.MagicPackages)
	for _, r := range recs {
		putU32(b, r.ID)
		pre := r.Preamble
		if pre == nil {
			pre = make([]byte, format.PackagePreamble(major))
		}
		b.Write(pre)
		putU32(b, r.ChangeNumber)
		b.Write(r.Tree)
	}
	putU32(b, format.SentinelPackages)
	return b.Bytes()
}

// WrappedTree frames fill inside the single synthetic top-level key
// that package records carry on disk.
func WrappedTree(wrapperKey string, fill func(*TreeWriter)) []byte {
	var t TreeWriter
	t.Begin(wrapperKey)
	if fill != nil {
		fill(&t)
	}
	t.End()
	return t.Record()
}
