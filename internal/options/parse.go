package options

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/uvi-dev/uvi/internal/errdef"
)

// FromMap overlays raw bindings on the template defaults.
func FromMap(m map[string]any) (Options, error) {
	return Apply(Default(), m)
}

// Apply overlays raw bindings on base. Unknown keys are ignored and nil
// values leave the base binding untouched. Booleans become y/n.
func Apply(base Options, m map[string]any) (Options, error) {
	m = unwrapContext(m)
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := base
	for _, k := range keys {
		f, ok := lookupField(strings.TrimSpace(k))
		if !ok {
			continue
		}
		raw := m[k]
		if raw == nil {
			continue
		}
		v, err := scalar(raw)
		if err != nil {
			return Options{}, errdef.Wrap(errdef.CodeConfig, err, "option %s", f.key)
		}
		f.set(&out, v)
	}
	return out, nil
}

// unwrapContext accepts the flat mapping as well as the replay layout
// ({"cookiecutter": {...}}) and the user config layout
// ({"default_context": {...}}).
func unwrapContext(m map[string]any) map[string]any {
	for _, key := range []string{contextKeyReplay, contextKeyUser} {
		if inner, ok := asMap(m[key]); ok {
			return inner
		}
	}
	return m
}

func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func scalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case bool:
		if t {
			return string(Yes), nil
		}
		return string(No), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}
