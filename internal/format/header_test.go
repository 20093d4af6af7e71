package format

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/steamutil/vdfkit/internal/buf"
)

func header(major uint8, magic uint16, minor uint8, fv uint32) []byte {
	b := make([]byte, HeaderSize)
	b[0] = major
	binary.BigEndian.PutUint16(b[1:], magic)
	b[3] = minor
	binary.LittleEndian.PutUint32(b[4:], fv)
	return b
}

func TestParseHeaderSuccess(t *testing.T) {
	for _, major := range []uint8{Major24, Major26, Major27, Major28} {
		for _, minor := range []uint8{Minor6, Minor7} {
			c := buf.NewCursor(header(major, MagicApps, minor, FormatVersion))
			hdr, err := ParseHeader(c, MagicApps)
			if err != nil {
				t.Fatalf("ParseHeader(0x%02x, 0x%02x): %v", major, minor, err)
			}
			if hdr.Major != major || hdr.Minor != minor || hdr.Magic != MagicApps {
				t.Fatalf("header mismatch: %+v", hdr)
			}
			if c.Offset() != HeaderSize {
				t.Fatalf("consumed %d bytes, want %d", c.Offset(), HeaderSize)
			}
		}
	}
}

func TestParseHeaderErrors(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{"unknown major", header(0x23, MagicApps, Minor6, 1), ErrUnsupportedVersion},
		{"wrong magic", header(Major27, MagicPackages, Minor6, 1), ErrBadMagic},
		{"unknown minor", header(Major27, MagicApps, 0x05, 1), ErrUnsupportedVersion},
		{"format version", header(Major27, MagicApps, Minor6, 2), ErrBadFormatVersion},
		{"truncated", header(Major27, MagicApps, Minor6, 1)[:3], ErrTruncated},
		{"empty", nil, ErrTruncated},
	}
	for _, tc := range cases {
		_, err := ParseHeader(buf.NewCursor(tc.data), MagicApps)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestPackagePreambleByVersion(t *testing.T) {
	if got := PackagePreamble(Major28); got != PackagePreambleSize28 {
		t.Fatalf("PackagePreamble(0x28) = %d, want %d", got, PackagePreambleSize28)
	}
	for _, major := range []uint8{Major24, Major26, Major27} {
		if got := PackagePreamble(major); got != PackagePreambleSize {
			t.Fatalf("PackagePreamble(0x%02x) = %d, want %d", major, got, PackagePreambleSize)
		}
	}
}
