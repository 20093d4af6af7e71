package printer

import (
	"encoding/json"

	"github.com/steamutil/vdfkit/vdf"
)

// jsonValue converts a Value into the structure encoding/json expects.
// Uint64 values survive as json.Number-compatible integers because the
// encoder writes Go integers verbatim.
func jsonValue(v vdf.Value) any {
	switch v.Kind() {
	case vdf.KindMap:
		m, _ := v.AsMap()
		return jsonMap(m)
	case vdf.KindString:
		s, _ := v.AsString()
		return s
	case vdf.KindUint32:
		n, _ := v.AsUint32()
		return n
	case vdf.KindUint64:
		n, _ := v.AsUint64()
		return n
	default:
		return nil
	}
}

func jsonMap(m vdf.Map) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = jsonValue(v)
	}
	return out
}

func (p *Printer) printTreeJSON(m vdf.Map) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonMap(m))
}

func (p *Printer) printValueJSON(v vdf.Value) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonValue(v))
}
