package merge

import (
	"encoding/json"
	"os"
)

// Deep combines two JSON object trees. For each key in overlay: if the value
// is a JSON object it is merged recursively into the corresponding base value
// (an absent or non-object base value is treated as an empty object); any
// other value (primitive, null, or array) replaces the base value wholesale.
// Keys present only in base are preserved. Neither input is mutated.
func Deep(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = clone(v)
	}
	for k, v := range overlay {
		if obj, ok := v.(map[string]any); ok {
			sub, _ := base[k].(map[string]any)
			merged[k] = Deep(sub, obj)
			continue
		}
		merged[k] = clone(v)
	}
	return merged
}

// IntoFile merges overlay into the JSON object stored at path. A missing or
// unparseable file is treated as an empty base, so the result degenerates to
// a structural copy of overlay.
func IntoFile(path string, overlay map[string]any) map[string]any {
	return Deep(FileBase(path), overlay)
}

// FileBase reads the JSON object at path for use as a merge base. Read or
// parse failures, or a non-object top level, yield nil (empty base).
func FileBase(path string) map[string]any {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	obj, _ := v.(map[string]any)
	return obj
}

func clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = clone(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = clone(e)
		}
		return out
	default:
		return t
	}
}
