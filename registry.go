package gostyle

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	j "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// StyleSystem interns style objects and combines registered styles into a
// class name. Combine must be deterministic for a given ordered input, and
// later styles override earlier ones per property.
type StyleSystem interface {
	Register(obj StyleObject) RegisteredStyle
	Combine(styles ...RegisteredStyle) string
}

// NamedRegistrar is implemented by style systems that can embed a readable
// key in registered names.
type NamedRegistrar interface {
	RegisterNamed(key string, obj StyleObject) RegisteredStyle
}

// CombinedSeparator joins the names of combined styles.
const CombinedSeparator = "-o_O-"

// Registry is the default StyleSystem. It interns style objects under a
// structural hash and renders one CSS rule set per combined class name.
// It is safe for concurrent use. A zero Registry is not usable; call NewRegistry.
type Registry struct {
	mu       sync.RWMutex
	defs     map[string]StyleObject
	injected map[string]struct{}
	blocks   []string

	flight singleflight.Group

	logger    *zap.Logger
	important bool
	prefix    string
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for dropped declarations.
func WithLogger(l *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithImportant appends !important to every rendered declaration.
func WithImportant(on bool) RegistryOption { return func(r *Registry) { r.important = on } }

// WithPrefix sets the prefix of hash-derived class names (default "s_").
func WithPrefix(p string) RegistryOption { return func(r *Registry) { r.prefix = p } }

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		defs:     make(map[string]StyleObject),
		injected: make(map[string]struct{}),
		logger:   zap.NewNop(),
		prefix:   "s_",
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Register interns obj and returns its handle. Structurally equal objects
// yield the same handle.
func (r *Registry) Register(obj StyleObject) RegisteredStyle {
	return r.intern(r.prefix+r.hash(obj), obj)
}

// RegisterNamed interns obj under "<key>_<hash>".
func (r *Registry) RegisterNamed(key string, obj StyleObject) RegisteredStyle {
	if key == "" {
		return r.Register(obj)
	}
	return r.intern(sanitizeClass(key)+"_"+r.hash(obj), obj)
}

func (r *Registry) intern(name string, obj StyleObject) RegisteredStyle {
	r.mu.RLock()
	def, ok := r.defs[name]
	r.mu.RUnlock()
	if ok {
		return RegisteredStyle{Name: name, Definition: def}
	}
	def = cloneObject(obj)
	r.mu.Lock()
	if existing, ok := r.defs[name]; ok {
		def = existing
	} else {
		r.defs[name] = def
	}
	r.mu.Unlock()
	return RegisteredStyle{Name: name, Definition: def}
}

// Combine returns the class name for styles in order and makes sure the
// merged rule set for that name has been rendered.
func (r *Registry) Combine(styles ...RegisteredStyle) string {
	names := make([]string, 0, len(styles))
	kept := make([]RegisteredStyle, 0, len(styles))
	for _, s := range styles {
		if s.Name == "" {
			if s.Definition == nil {
				continue
			}
			s = r.Register(s.Definition)
		}
		names = append(names, s.Name)
		kept = append(kept, s)
	}
	if len(names) == 0 {
		return ""
	}
	className := strings.Join(names, CombinedSeparator)

	r.mu.RLock()
	_, done := r.injected[className]
	r.mu.RUnlock()
	if done {
		return className
	}
	_, _, _ = r.flight.Do(className, func() (any, error) {
		r.mu.RLock()
		_, done := r.injected[className]
		r.mu.RUnlock()
		if done {
			return nil, nil
		}
		defs := make([]StyleObject, len(kept))
		for i, s := range kept {
			defs[i] = r.definition(s)
		}
		block := r.render(className, defs...)
		r.mu.Lock()
		if _, dup := r.injected[className]; !dup {
			r.injected[className] = struct{}{}
			if block != "" {
				r.blocks = append(r.blocks, block)
			}
		}
		r.mu.Unlock()
		return nil, nil
	})
	return className
}

func (r *Registry) definition(s RegisteredStyle) StyleObject {
	if s.Definition != nil {
		return s.Definition
	}
	r.mu.RLock()
	def := r.defs[s.Name]
	r.mu.RUnlock()
	if def == nil {
		r.logger.Debug("combining unknown style", zap.String("name", s.Name))
	}
	return def
}

// Definition returns the interned definition registered under name.
func (r *Registry) Definition(name string) (StyleObject, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Len returns the number of interned definitions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}

// CSS returns every rendered rule set in injection order.
func (r *Registry) CSS() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return strings.Join(r.blocks, "\n")
}

// WriteCSS writes CSS() to w.
func (r *Registry) WriteCSS(w io.Writer) error {
	css := r.CSS()
	if css == "" {
		return nil
	}
	_, err := io.WriteString(w, css+"\n")
	return err
}

// Reset drops all definitions and rendered rules.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.defs = make(map[string]StyleObject)
	r.injected = make(map[string]struct{})
	r.blocks = nil
	r.mu.Unlock()
}

// hash returns a base36 FNV-1a digest of the canonical JSON form of obj.
// go-json sorts map keys, so structurally equal objects hash equally.
func (r *Registry) hash(obj StyleObject) string {
	h := fnv.New64a()
	b, err := j.Marshal(canonical(obj))
	if err != nil {
		// canonical leaves nothing go-json rejects; keep the name stable anyway
		r.logger.Debug("style object is not JSON encodable", zap.Error(err))
		b = []byte("!" + err.Error())
	}
	_, _ = h.Write(b)
	return strconv.FormatUint(h.Sum64(), 36)
}

// canonical rewrites obj into plain JSON values: json.Number becomes float64
// so decoded and literal objects hash the same, Stringers become their text
// and values with no JSON form (funcs, channels, pointers) become their type
// name, never an address.
func canonical(v any) any {
	switch t := v.(type) {
	case nil, string, bool:
		return v
	case StyleObject:
		return canonicalMap(t)
	case map[string]any:
		return canonicalMap(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = canonical(t[i])
		}
		return out
	case json.Number:
		if f, err := t.Float64(); err == nil {
			return f
		}
		return string(t)
	case fmt.Stringer:
		return t.String()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return f
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = canonical(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			out := make(map[string]any, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				out[iter.Key().String()] = canonical(iter.Value().Interface())
			}
			return out
		}
	}
	return "<" + fmt.Sprintf("%T", v) + ">"
}

func canonicalMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = canonical(v)
	}
	return out
}

func cloneObject(obj StyleObject) StyleObject {
	if obj == nil {
		return StyleObject{}
	}
	return StyleObject(cloneMap(obj))
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch t := v.(type) {
		case StyleObject:
			out[k] = cloneMap(t)
		case map[string]any:
			out[k] = cloneMap(t)
		case []any:
			out[k] = append([]any(nil), t...)
		case []string:
			out[k] = append([]string(nil), t...)
		default:
			out[k] = v
		}
	}
	return out
}

// sanitizeClass keeps characters valid in an unescaped CSS class name.
func sanitizeClass(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-', c == '_':
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
