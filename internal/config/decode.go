package config

import (
	"fmt"
	"math"
)

// decoder reads typed values out of a loosely typed configuration map and
// collects type errors instead of stopping at the first one.
type decoder struct {
	errs []error
}

func (d *decoder) mismatch(path, want string, value any) {
	d.errs = append(d.errs, &ValidationError{
		Path:    path,
		Message: fmt.Sprintf("expected %s, got %T", want, value),
		Value:   value,
		Code:    ErrCodeTypeMismatch,
	})
}

func (d *decoder) section(data map[string]any, key string) (map[string]any, bool) {
	raw, ok := data[key]
	if !ok {
		return nil, false
	}
	m, ok := raw.(map[string]any)
	if !ok {
		d.mismatch(key, "table", raw)
		return nil, false
	}
	return m, true
}

func (d *decoder) intField(m map[string]any, path, key string, dst *int) {
	raw, ok := m[key]
	if !ok {
		return
	}
	switch v := raw.(type) {
	case int:
		*dst = v
	case int64:
		*dst = int(v)
	case float64:
		if v != math.Trunc(v) {
			d.mismatch(path, "integer", raw)
			return
		}
		*dst = int(v)
	default:
		d.mismatch(path, "integer", raw)
	}
}

func (d *decoder) boolField(m map[string]any, path, key string, dst *bool) {
	raw, ok := m[key]
	if !ok {
		return
	}
	v, ok := raw.(bool)
	if !ok {
		d.mismatch(path, "boolean", raw)
		return
	}
	*dst = v
}

func (d *decoder) stringField(m map[string]any, path, key string, dst *string) {
	raw, ok := m[key]
	if !ok {
		return
	}
	v, ok := raw.(string)
	if !ok {
		d.mismatch(path, "string", raw)
		return
	}
	*dst = v
}

func (d *decoder) stringMap(m map[string]any, path, key string, dst map[string]string) {
	raw, ok := m[key]
	if !ok {
		return
	}
	table, ok := raw.(map[string]any)
	if !ok {
		d.mismatch(path, "table", raw)
		return
	}
	for k, v := range table {
		s, ok := v.(string)
		if !ok {
			d.mismatch(path+"."+k, "string", v)
			continue
		}
		dst[k] = s
	}
}

func (d *decoder) stringList(raw any, path string) []string {
	list, ok := raw.([]any)
	if !ok {
		d.mismatch(path, "array", raw)
		return nil
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			d.mismatch(fmt.Sprintf("%s[%d]", path, i), "string", item)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (d *decoder) groups(sx map[string]any) []SyntaxGroup {
	raw, ok := sx["groups"]
	if !ok {
		return nil
	}
	list, ok := raw.([]any)
	if !ok {
		d.mismatch("syntax.groups", "array of tables", raw)
		return nil
	}

	groups := make([]SyntaxGroup, 0, len(list))
	for i, item := range list {
		path := fmt.Sprintf("syntax.groups[%d]", i)
		table, ok := item.(map[string]any)
		if !ok {
			d.mismatch(path, "table", item)
			continue
		}
		var g SyntaxGroup
		d.stringField(table, path+".color", "color", &g.Color)
		if s, ok := table["symbols"]; ok {
			g.Symbols = d.stringList(s, path+".symbols")
		}
		if w, ok := table["words"]; ok {
			g.Words = d.stringList(w, path+".words")
		}
		groups = append(groups, g)
	}
	return groups
}
