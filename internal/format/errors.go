package format

import (
	"errors"

	"github.com/steamutil/vdfkit/internal/buf"
)

var (
	// ErrUnsupportedVersion indicates a major or minor version tag
	// outside the known allow-list.
	ErrUnsupportedVersion = errors.New("format: unsupported version")
	// ErrBadMagic indicates the magic signature did not match the
	// expected cache kind.
	ErrBadMagic = errors.New("format: magic signature mismatch")
	// ErrBadFormatVersion indicates the header's format version was
	// not 1.
	ErrBadFormatVersion = errors.New("format: bad format version")
	// ErrUnknownTag indicates a tag byte with no defined payload
	// layout; decoding cannot safely continue past it.
	ErrUnknownTag = errors.New("format: unknown tag byte")
	// ErrWrapper indicates a package record tree did not contain
	// exactly one synthetic top-level key to strip.
	ErrWrapper = errors.New("format: malformed wrapper map")

	// ErrTruncated and ErrInvalidString originate in the cursor and
	// are part of this package's taxonomy.
	ErrTruncated     = buf.ErrTruncated
	ErrInvalidString = buf.ErrInvalidString
)
