// Package printer renders decoded property trees as indented text or
// JSON.
package printer

import (
	"io"

	"github.com/steamutil/vdfkit/vdf"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many map levels are descended (0 = unlimited).
	// Maps below the limit print as "(map)" without their contents.
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowValueKinds includes the leaf kind next to each value.
	// Default: false
	ShowValueKinds bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		MaxDepth:   0,
	}
}

// Printer handles formatted output of property trees.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{writer: w, opts: opts}
}

// PrintTree prints every entry of m, recursing into nested maps up to
// the configured depth.
func (p *Printer) PrintTree(m vdf.Map) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(m)
	default:
		return p.printTreeText(m, 0)
	}
}

// PrintPath resolves path in m and prints the result: a leaf prints
// its value, a map prints its whole subtree, and an unresolved path
// prints "None".
func (p *Printer) PrintPath(m vdf.Map, path ...string) error {
	v, ok := m.Lookup(path...)
	if !ok {
		return p.printMissing()
	}
	if nested, isMap := v.AsMap(); isMap {
		return p.PrintTree(nested)
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printValueJSON(v)
	default:
		return p.printValueText(v)
	}
}

// FormatValue renders a lookup result as a single line: the leaf
// value, "(map)" for maps, "None" when the lookup failed.
func FormatValue(v vdf.Value, ok bool) string {
	if !ok {
		return "None"
	}
	return v.String()
}
