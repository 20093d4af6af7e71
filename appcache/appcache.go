// Package appcache decodes the two binary metadata caches a Steam
// installation keeps under appcache/: appinfo.vdf (per-app records)
// and packageinfo.vdf (per-package records). Each record owns one
// immutable property tree; callers query it through the vdf package's
// path lookups.
//
// A cache is decoded in a single synchronous pass over an in-memory
// buffer. Any decode failure aborts the whole load; the format has no
// per-record resynchronization markers, so there are no partial
// results. Loads share no state and may run in parallel on independent
// files.
package appcache

import (
	"github.com/steamutil/vdfkit/internal/format"
	"github.com/steamutil/vdfkit/vdf"
)

// Error kinds returned by Load and Parse calls. Match with errors.Is;
// every returned error wraps exactly one of these or an I/O error from
// opening the file.
var (
	ErrUnsupportedVersion = format.ErrUnsupportedVersion
	ErrBadMagic           = format.ErrBadMagic
	ErrBadFormatVersion   = format.ErrBadFormatVersion
	ErrTruncated          = format.ErrTruncated
	ErrUnknownTag         = format.ErrUnknownTag
	ErrInvalidString      = format.ErrInvalidString
	ErrWrapper            = format.ErrWrapper
)

// ChecksumSize is the length of the raw checksum in an app record
// preamble. The checksum is carried opaque and never verified.
const ChecksumSize = format.ChecksumSize

// AppRecord is one decoded appinfo.vdf entry. The property tree keeps
// the on-disk top-level "appinfo" key.
type AppRecord struct {
	ID           uint32
	State        uint32
	LastUpdated  uint32
	AccessToken  uint64
	Checksum     [ChecksumSize]byte
	ChangeNumber uint32
	Props        vdf.Map
}

// PackageRecord is one decoded packageinfo.vdf entry. On disk the tree
// is nested under a single synthetic wrapper key (the package id as
// text); Props is the map beneath it.
type PackageRecord struct {
	ID           uint32
	ChangeNumber uint32
	Props        vdf.Map
}
