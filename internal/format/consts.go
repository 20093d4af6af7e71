// Package format defines the on-disk constants of the Steam appcache
// binary VDF files (appinfo.vdf and packageinfo.vdf) and validates
// their shared file header.
package format

// Tag bytes discriminating each field in the tree-encoded region of a
// record.
const (
	TagMapBegin = 0x00 // key string follows, opens a nested map
	TagString   = 0x01 // key string + value string
	TagUint32   = 0x02 // key string + 4 bytes little-endian
	TagUint64   = 0x07 // key string + 8 bytes little-endian
	TagMapEnd   = 0x08 // closes the innermost open map
)

// Magic signatures, stored big-endian at offset 1 of the file.
const (
	MagicApps     = 0x4456 // "DV"
	MagicPackages = 0x5556 // "UV"
)

// Known major version tags (first byte of the file). 0x28 changes the
// package record preamble length.
const (
	Major24 = 0x24
	Major26 = 0x26
	Major27 = 0x27
	Major28 = 0x28
)

// Known minor version tags (byte after the magic).
const (
	Minor6 = 0x06
	Minor7 = 0x07
)

// FormatVersion is the only accepted value of the trailing uint32 in
// the header.
const FormatVersion = 1

// Sentinel record ids terminating the record loop. The two caches use
// different sentinels.
const (
	SentinelApps     = 0x00000000
	SentinelPackages = 0xFFFFFFFF
)

// Record preamble sizes.
const (
	ChecksumSize = 20

	// AppPreambleSize covers state, last_updated, access_token,
	// checksum and change_number.
	AppPreambleSize = 4 + 4 + 8 + ChecksumSize + 4

	// Package preambles are opaque; only their length matters, and it
	// depends on the major version tag. The trailing change_number is
	// not included here.
	PackagePreambleSize   = 20
	PackagePreambleSize28 = 28
)

// HeaderSize is the byte length of the file header: major version,
// big-endian magic, minor version, little-endian format version.
const HeaderSize = 1 + 2 + 1 + 4

// KnownMajor reports whether v is an accepted major version tag.
func KnownMajor(v uint8) bool {
	switch v {
	case Major24, Major26, Major27, Major28:
		return true
	}
	return false
}

// KnownMinor reports whether v is an accepted minor version tag.
func KnownMinor(v uint8) bool {
	return v == Minor6 || v == Minor7
}

// PackagePreamble returns the opaque package preamble length for a
// major version tag.
func PackagePreamble(major uint8) int {
	if major == Major28 {
		return PackagePreambleSize28
	}
	return PackagePreambleSize
}
