// Package theme loads palettes and named style objects from YAML and
// registers them as a sheet.
//
// A theme file holds one or more YAML documents:
//
//	palette:
//	  primary: "#0b5fff"
//	  gap: 16px
//	styles:
//	  button:
//	    color: $primary
//	    ":hover":
//	      opacity: 0.8
//
// Later documents override palette entries and styles of earlier ones.
package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	gostyle "github.com/reoring/gostyle"
	"github.com/reoring/gostyle/sheet"
)

var (
	// ErrUnknownReference is returned for a $name with no palette entry.
	ErrUnknownReference = errors.New("theme: unknown palette reference")
	// ErrReferenceCycle is returned when palette entries refer to each other.
	ErrReferenceCycle = errors.New("theme: palette reference cycle")
)

var refPattern = regexp.MustCompile(`\$([a-zA-Z_][a-zA-Z0-9_-]*)`)

// Theme is a loaded palette plus its registered styles.
type Theme struct {
	palette map[string]string
	styles  map[string]gostyle.StyleObject
	sheet   sheet.Sheet
}

// LoadFile reads path and calls Load.
func LoadFile(path string, sys gostyle.StyleSystem) (*Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return Load(b, sys)
}

// Load parses data, substitutes palette references in string values and
// registers every style with sys.
func Load(data []byte, sys gostyle.StyleSystem) (*Theme, error) {
	rawPalette := map[string]string{}
	rawStyles := map[string]map[string]any{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	for doc := 0; ; doc++ {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("theme: document %d: %w", doc, err)
		}
		if node == nil {
			continue
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			return nil, fmt.Errorf("theme: document %d: expected a mapping", doc)
		}
		for k, v := range m {
			switch k {
			case "palette":
				p, ok := v.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("theme: document %d: palette must be a mapping", doc)
				}
				for name, val := range p {
					s, ok := scalarString(val)
					if !ok {
						return nil, fmt.Errorf("theme: palette %q: expected a scalar value", name)
					}
					rawPalette[name] = s
				}
			case "styles":
				st, ok := v.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("theme: document %d: styles must be a mapping", doc)
				}
				for name, val := range st {
					obj, ok := val.(map[string]any)
					if !ok {
						return nil, fmt.Errorf("theme: style %q: expected a mapping", name)
					}
					rawStyles[name] = obj
				}
			default:
				return nil, fmt.Errorf("theme: document %d: unknown key %q", doc, k)
			}
		}
	}

	palette, err := resolvePalette(rawPalette)
	if err != nil {
		return nil, err
	}
	styles := make(map[string]gostyle.StyleObject, len(rawStyles))
	for name, obj := range rawStyles {
		sub, err := substitute(obj, palette)
		if err != nil {
			return nil, fmt.Errorf("theme: style %q: %w", name, err)
		}
		so := gostyle.StyleObject(sub.(map[string]any))
		if err := gostyle.ValidateObject(so); err != nil {
			return nil, fmt.Errorf("theme: style %q: %w", name, err)
		}
		styles[name] = so
	}
	return &Theme{palette: palette, styles: styles, sheet: sheet.Create(sys, styles)}, nil
}

// Sheet returns the registered styles.
func (t *Theme) Sheet() sheet.Sheet { return t.sheet }

// Palette returns a copy of the resolved palette.
func (t *Theme) Palette() map[string]string {
	out := make(map[string]string, len(t.palette))
	for k, v := range t.palette {
		out[k] = v
	}
	return out
}

// Color returns the resolved palette entry for name.
func (t *Theme) Color(name string) (string, bool) {
	v, ok := t.palette[name]
	return v, ok
}

// Style returns the substituted style object for name.
func (t *Theme) Style(name string) (gostyle.StyleObject, bool) {
	v, ok := t.styles[name]
	return v, ok
}

// resolvePalette expands references between palette entries.
func resolvePalette(raw map[string]string) (map[string]string, error) {
	out := make(map[string]string, len(raw))
	state := map[string]int{} // 1 visiting, 2 done
	var visit func(name string, chain []string) (string, error)
	visit = func(name string, chain []string) (string, error) {
		switch state[name] {
		case 2:
			return out[name], nil
		case 1:
			return "", fmt.Errorf("%w: %v", ErrReferenceCycle, append(chain, name))
		}
		val, ok := raw[name]
		if !ok {
			return "", fmt.Errorf("%w: $%s", ErrUnknownReference, name)
		}
		state[name] = 1
		var firstErr error
		res := refPattern.ReplaceAllStringFunc(val, func(m string) string {
			if firstErr != nil {
				return m
			}
			v, err := visit(m[1:], append(chain, name))
			if err != nil {
				firstErr = err
				return m
			}
			return v
		})
		if firstErr != nil {
			return "", firstErr
		}
		state[name] = 2
		out[name] = res
		return res, nil
	}

	names := make([]string, 0, len(raw))
	for k := range raw {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, n := range names {
		if _, err := visit(n, nil); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// substitute replaces $name references in every string of v.
func substitute(v any, palette map[string]string) (any, error) {
	switch t := v.(type) {
	case string:
		var missing string
		res := refPattern.ReplaceAllStringFunc(t, func(m string) string {
			if p, ok := palette[m[1:]]; ok {
				return p
			}
			if missing == "" {
				missing = m
			}
			return m
		})
		if missing != "" {
			return nil, fmt.Errorf("%w: %s", ErrUnknownReference, missing)
		}
		return res, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			s, err := substitute(vv, palette)
			if err != nil {
				return nil, err
			}
			out[k] = s
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i := range t {
			s, err := substitute(t[i], palette)
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return out, nil
	default:
		return v, nil
	}
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(t), true
	}
	return "", false
}
