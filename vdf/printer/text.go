package printer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/steamutil/vdfkit/vdf"
)

// sortedKeys returns map keys in lexical order. Map order is not
// significant in the format, so output order is pinned for stable
// diffs.
func sortedKeys(m vdf.Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Printer) printTreeText(m vdf.Map, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)
	for _, key := range sortedKeys(m) {
		v := m[key]
		if nested, ok := v.AsMap(); ok {
			if _, err := fmt.Fprintf(p.writer, "%s%s (map)\n", indent, key); err != nil {
				return err
			}
			if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
				continue
			}
			if err := p.printTreeText(nested, depth+1); err != nil {
				return err
			}
			continue
		}
		if p.opts.ShowValueKinds {
			if _, err := fmt.Fprintf(p.writer, "%s%s [%s] = %s\n", indent, key, v.Kind(), v); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(p.writer, "%s%s = %s\n", indent, key, v); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printValueText(v vdf.Value) error {
	_, err := fmt.Fprintf(p.writer, "%s\n", v)
	return err
}

func (p *Printer) printMissing() error {
	if p.opts.Format == FormatJSON {
		_, err := fmt.Fprintln(p.writer, "null")
		return err
	}
	_, err := fmt.Fprintln(p.writer, "None")
	return err
}
