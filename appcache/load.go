package appcache

import (
	"fmt"

	"github.com/steamutil/vdfkit/internal/buf"
	"github.com/steamutil/vdfkit/internal/format"
	"github.com/steamutil/vdfkit/internal/mmfile"
)

// LoadApps reads and decodes an appinfo.vdf cache from path.
func LoadApps(path string) ([]AppRecord, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return ParseApps(data)
}

// LoadPackages reads and decodes a packageinfo.vdf cache from path.
func LoadPackages(path string) ([]PackageRecord, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer cleanup()
	return ParsePackages(data)
}

// ParseApps decodes an appinfo cache from an in-memory buffer. Records
// are returned in file order; a valid header followed directly by the
// sentinel id yields an empty, non-nil slice.
func ParseApps(data []byte) ([]AppRecord, error) {
	c := buf.NewCursor(data)
	if _, err := format.ParseHeader(c, format.MagicApps); err != nil {
		return nil, fmt.Errorf("appinfo: %w", err)
	}
	recs := []AppRecord{}
	for {
		id, err := c.U32LE()
		if err != nil {
			return nil, fmt.Errorf("appinfo: record id: %w", err)
		}
		if id == format.SentinelApps {
			return recs, nil
		}
		size, err := c.U32LE()
		if err != nil {
			return nil, fmt.Errorf("appinfo: app %d: record length: %w", id, err)
		}
		body, err := c.Bytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("appinfo: app %d: %w", id, err)
		}
		rec, err := decodeApp(id, body)
		if err != nil {
			return nil, fmt.Errorf("appinfo: app %d: %w", id, err)
		}
		recs = append(recs, rec)
	}
}

// ParsePackages decodes a packageinfo cache from an in-memory buffer.
// Package records carry no length prefix; each record ends where its
// tree closes and the next id follows immediately.
func ParsePackages(data []byte) ([]PackageRecord, error) {
	c := buf.NewCursor(data)
	hdr, err := format.ParseHeader(c, format.MagicPackages)
	if err != nil {
		return nil, fmt.Errorf("packageinfo: %w", err)
	}
	recs := []PackageRecord{}
	for {
		id, err := c.U32LE()
		if err != nil {
			return nil, fmt.Errorf("packageinfo: record id: %w", err)
		}
		if id == format.SentinelPackages {
			return recs, nil
		}
		rec, err := decodePackage(id, c, hdr.Major)
		if err != nil {
			return nil, fmt.Errorf("packageinfo: package %d: %w", id, err)
		}
		recs = append(recs, rec)
	}
}
