package appcache

import (
	"fmt"

	"github.com/steamutil/vdfkit/internal/buf"
	"github.com/steamutil/vdfkit/internal/decode"
	"github.com/steamutil/vdfkit/internal/format"
	"github.com/steamutil/vdfkit/vdf"
)

// decodeApp decodes one app record body: a fixed 40-byte preamble
// followed by the property tree. The caller has already sliced body to
// the record's declared byte length, so anything left over after the
// tree closes means the stream lost field alignment.
func decodeApp(id uint32, body []byte) (AppRecord, error) {
	c := buf.NewCursor(body)
	rec := AppRecord{ID: id}
	var err error
	if rec.State, err = c.U32LE(); err != nil {
		return AppRecord{}, fmt.Errorf("preamble: %w", err)
	}
	if rec.LastUpdated, err = c.U32LE(); err != nil {
		return AppRecord{}, fmt.Errorf("preamble: %w", err)
	}
	if rec.AccessToken, err = c.U64LE(); err != nil {
		return AppRecord{}, fmt.Errorf("preamble: %w", err)
	}
	sum, err := c.Bytes(format.ChecksumSize)
	if err != nil {
		return AppRecord{}, fmt.Errorf("preamble: %w", err)
	}
	copy(rec.Checksum[:], sum)
	if rec.ChangeNumber, err = c.U32LE(); err != nil {
		return AppRecord{}, fmt.Errorf("preamble: %w", err)
	}
	if rec.Props, err = decode.Tree(c); err != nil {
		return AppRecord{}, err
	}
	if c.Remaining() != 0 {
		return AppRecord{}, fmt.Errorf("%d bytes beyond the closed tree: %w", c.Remaining(), format.ErrTruncated)
	}
	return rec, nil
}

// decodePackage decodes one package record in place: a version-sized
// opaque preamble, the change number, then the property tree. There is
// no length prefix, so the cursor position after the tree closes is
// where the next record starts.
func decodePackage(id uint32, c *buf.Cursor, major uint8) (PackageRecord, error) {
	rec := PackageRecord{ID: id}
	if err := c.Skip(format.PackagePreamble(major)); err != nil {
		return PackageRecord{}, fmt.Errorf("preamble: %w", err)
	}
	var err error
	if rec.ChangeNumber, err = c.U32LE(); err != nil {
		return PackageRecord{}, fmt.Errorf("preamble: %w", err)
	}
	raw, err := decode.Tree(c)
	if err != nil {
		return PackageRecord{}, err
	}
	if rec.Props, err = unwrap(raw); err != nil {
		return PackageRecord{}, err
	}
	return rec, nil
}

// unwrap strips the single synthetic top-level key of a package tree.
func unwrap(raw vdf.Map) (vdf.Map, error) {
	if len(raw) != 1 {
		return nil, fmt.Errorf("%d top-level keys: %w", len(raw), format.ErrWrapper)
	}
	for key, v := range raw {
		inner, ok := v.AsMap()
		if !ok {
			return nil, fmt.Errorf("wrapper %q is not a map: %w", key, format.ErrWrapper)
		}
		return inner, nil
	}
	return nil, format.ErrWrapper
}
