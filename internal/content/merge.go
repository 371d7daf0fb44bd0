package content

// Document is the site-wide content JSON.
type Document map[string]any

// Merge overlays over onto base. Objects merge key by key, arrays and scalars
// from over replace, and a null in over keeps the base value. Neither input
// is modified.
func Merge(base, over map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(over))
	for k, v := range base {
		out[k] = clone(v)
	}
	for k, v := range over {
		if v == nil {
			continue
		}
		bm, baseIsMap := out[k].(map[string]any)
		om, overIsMap := v.(map[string]any)
		if baseIsMap && overIsMap {
			out[k] = Merge(bm, om)
			continue
		}
		out[k] = clone(v)
	}
	return out
}

func clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			m[k] = clone(vv)
		}
		return m
	case Document:
		return clone(map[string]any(t))
	case []any:
		s := make([]any, len(t))
		for i, vv := range t {
			s[i] = clone(vv)
		}
		return s
	default:
		return v
	}
}
