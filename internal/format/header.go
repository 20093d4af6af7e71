package format

import (
	"fmt"

	"github.com/steamutil/vdfkit/internal/buf"
)

// Header captures the file header shared by both cache kinds. The two
// caches differ only in the magic constant and the record sentinel.
//
//	Offset  Size  Description
//	------  ----  -------------------------------------------
//	 0x00    1    Major version tag (0x24/0x26/0x27/0x28)
//	 0x01    2    Magic signature, big-endian ("DV" or "UV")
//	 0x03    1    Minor version tag (0x06/0x07)
//	 0x04    4    Format version, little-endian (must be 1)
type Header struct {
	Major uint8
	Magic uint16
	Minor uint8
}

// ParseHeader consumes and validates a file header from c, requiring
// the given magic signature.
func ParseHeader(c *buf.Cursor, magic uint16) (Header, error) {
	major, err := c.U8()
	if err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	if !KnownMajor(major) {
		return Header{}, fmt.Errorf("header: major version 0x%02x: %w", major, ErrUnsupportedVersion)
	}
	sig, err := c.U16BE()
	if err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	if sig != magic {
		return Header{}, fmt.Errorf("header: signature 0x%04x, want 0x%04x: %w", sig, magic, ErrBadMagic)
	}
	minor, err := c.U8()
	if err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	if !KnownMinor(minor) {
		return Header{}, fmt.Errorf("header: minor version 0x%02x: %w", minor, ErrUnsupportedVersion)
	}
	fv, err := c.U32LE()
	if err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	if fv != FormatVersion {
		return Header{}, fmt.Errorf("header: format version %d: %w", fv, ErrBadFormatVersion)
	}
	return Header{Major: major, Magic: sig, Minor: minor}, nil
}
