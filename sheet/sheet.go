// Package sheet groups named style objects into registered sheets and
// provides a fluent builder for style objects.
package sheet

import (
	"sort"

	gostyle "github.com/reoring/gostyle"
)

// Sheet is an immutable set of named registered styles.
type Sheet struct {
	styles map[string]gostyle.RegisteredStyle
	keys   []string
}

// Create registers every definition with sys. Keys are registered in sorted
// order; systems implementing gostyle.NamedRegistrar embed the key in the
// class name.
func Create(sys gostyle.StyleSystem, defs map[string]gostyle.StyleObject) Sheet {
	keys := make([]string, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	named, _ := sys.(gostyle.NamedRegistrar)
	styles := make(map[string]gostyle.RegisteredStyle, len(defs))
	for _, k := range keys {
		if named != nil {
			styles[k] = named.RegisterNamed(k, defs[k])
		} else {
			styles[k] = sys.Register(defs[k])
		}
	}
	return Sheet{styles: styles, keys: keys}
}

// Get returns the descriptor for key, or Empty when key is unknown.
func (s Sheet) Get(key string) gostyle.Descriptor {
	r, ok := s.styles[key]
	if !ok {
		return gostyle.Empty()
	}
	return gostyle.Registered(r)
}

// Pick returns a list descriptor of the given keys in order.
func (s Sheet) Pick(keys ...string) gostyle.Descriptor {
	ds := make([]gostyle.Descriptor, len(keys))
	for i, k := range keys {
		ds[i] = s.Get(k)
	}
	return gostyle.List(ds...)
}

// Style returns the registered handle for key.
func (s Sheet) Style(key string) (gostyle.RegisteredStyle, bool) {
	r, ok := s.styles[key]
	return r, ok
}

// Names returns the sheet keys in sorted order.
func (s Sheet) Names() []string { return append([]string(nil), s.keys...) }

// Len returns the number of styles.
func (s Sheet) Len() int { return len(s.keys) }
