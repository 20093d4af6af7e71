// Package decode turns the flat tagged byte stream of one cache
// record into a property tree.
package decode

import (
	"fmt"

	"github.com/steamutil/vdfkit/internal/buf"
	"github.com/steamutil/vdfkit/internal/format"
	"github.com/steamutil/vdfkit/vdf"
)

// Tree decodes one record's tagged-value stream from c into a root
// map. The decoder keeps an explicit stack of the currently open maps,
// seeded with the root; every map-begin tag pushes, every map-end tag
// pops, and decoding stops when the root itself is popped. The stream
// therefore closes the root with one final map-end tag beyond the ones
// that match its own map-begin tags.
//
// Running out of bytes while maps are still open is a truncation
// error. A tag byte outside the known set has no defined payload
// layout, so decoding fails hard rather than guessing at field
// boundaries.
func Tree(c *buf.Cursor) (vdf.Map, error) {
	root := vdf.Map{}
	stack := []vdf.Map{root}
	for len(stack) > 0 {
		tag, err := c.U8()
		if err != nil {
			return nil, fmt.Errorf("tree: %d open maps: %w", len(stack), err)
		}
		top := stack[len(stack)-1]
		switch tag {
		case format.TagMapBegin:
			key, err := c.CString()
			if err != nil {
				return nil, fmt.Errorf("tree: map key: %w", err)
			}
			child := vdf.Map{}
			top[key] = vdf.MapValue(child)
			stack = append(stack, child)
		case format.TagMapEnd:
			stack = stack[:len(stack)-1]
		case format.TagString:
			key, err := c.CString()
			if err != nil {
				return nil, fmt.Errorf("tree: string key: %w", err)
			}
			val, err := c.CString()
			if err != nil {
				return nil, fmt.Errorf("tree: value of %q: %w", key, err)
			}
			top[key] = vdf.String(val)
		case format.TagUint32:
			key, err := c.CString()
			if err != nil {
				return nil, fmt.Errorf("tree: uint32 key: %w", err)
			}
			val, err := c.U32LE()
			if err != nil {
				return nil, fmt.Errorf("tree: value of %q: %w", key, err)
			}
			top[key] = vdf.Uint32(val)
		case format.TagUint64:
			key, err := c.CString()
			if err != nil {
				return nil, fmt.Errorf("tree: uint64 key: %w", err)
			}
			val, err := c.U64LE()
			if err != nil {
				return nil, fmt.Errorf("tree: value of %q: %w", key, err)
			}
			top[key] = vdf.Uint64(val)
		default:
			return nil, fmt.Errorf("tree: tag 0x%02x at offset %d: %w", tag, c.Offset()-1, format.ErrUnknownTag)
		}
	}
	return root, nil
}
