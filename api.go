package gostyle

import (
	"sync"

	"go.uber.org/zap"
)

// Resolver flattens descriptors and turns them into one class-name string
// using a StyleSystem. A Resolver holds no per-call state and is safe for
// concurrent use when its StyleSystem is.
type Resolver struct {
	sys    StyleSystem
	dedupe bool
	logger *zap.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithDedupe drops repeated literal class names, keeping the first.
func WithDedupe(on bool) ResolverOption { return func(r *Resolver) { r.dedupe = on } }

// WithResolverLogger sets the logger used for ignored inputs.
func WithResolverLogger(l *zap.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a Resolver over sys. A nil sys uses Default().
func NewResolver(sys StyleSystem, opts ...ResolverOption) *Resolver {
	if sys == nil {
		sys = Default()
	}
	r := &Resolver{sys: sys, logger: zap.NewNop()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// StyleSystem returns the system the resolver registers and combines with.
func (r *Resolver) StyleSystem() StyleSystem { return r.sys }

type accumulator struct {
	classes    []string
	registered []RegisteredStyle
}

// Resolve walks ds in order, flattening lists in place, and returns the
// combined style class followed by the literal class names.
func (r *Resolver) Resolve(ds ...Descriptor) string {
	var acc accumulator
	r.walk(&acc, ds)
	return r.finish(&acc)
}

// ResolveAny is Resolve over untyped values classified with FromAny.
func (r *Resolver) ResolveAny(vs ...any) string {
	var acc accumulator
	for _, v := range vs {
		r.walk(&acc, []Descriptor{FromAny(v)})
	}
	return r.finish(&acc)
}

// ResolveStrict is ResolveAny with a stricter contract: unclassifiable values,
// nested blocks under non-selector keys and values without a CSS form are
// returned as Issues instead of being dropped.
func (r *Resolver) ResolveStrict(vs ...any) (string, error) {
	var iss Issues
	ds := make([]Descriptor, len(vs))
	for i, v := range vs {
		ds[i] = classify(v, RootPath().Index(i), &iss)
		validateDescriptor(ds[i], RootPath().Index(i), &iss)
	}
	if len(iss) > 0 {
		return "", iss
	}
	return r.Resolve(ds...), nil
}

func (r *Resolver) walk(acc *accumulator, ds []Descriptor) {
	for _, d := range ds {
		switch d.kind {
		case KindEmpty:
		case KindClassName:
			acc.classes = append(acc.classes, d.class)
		case KindList:
			r.walk(acc, d.list)
		case KindRegistered:
			acc.registered = append(acc.registered, d.reg)
		case KindObject:
			acc.registered = append(acc.registered, r.sys.Register(d.obj))
		default:
			r.logger.Debug("ignoring descriptor", zap.Stringer("kind", d.kind))
		}
	}
}

func (r *Resolver) finish(acc *accumulator) string {
	styles := r.sys.Combine(acc.registered...)
	classes := acc.classes
	if r.dedupe {
		classes = dedupe(classes)
	}
	return joinClasses(styles, classes)
}

// joinClasses puts the style-system class first; a single space separates
// non-empty segments.
func joinClasses(styles string, classes []string) string {
	n := len(styles)
	for _, c := range classes {
		n += len(c) + 1
	}
	b := make([]byte, 0, n)
	b = append(b, styles...)
	for _, c := range classes {
		if len(b) > 0 {
			b = append(b, ' ')
		}
		b = append(b, c...)
	}
	return string(b)
}

func dedupe(classes []string) []string {
	seen := make(map[string]struct{}, len(classes))
	out := classes[:0:0]
	for _, c := range classes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func validateDescriptor(d Descriptor, at PathRef, iss *Issues) {
	switch d.kind {
	case KindObject:
		validateObject(d.obj, at, iss)
	case KindRegistered:
		if d.reg.Definition != nil {
			validateObject(d.reg.Definition, at.Field(MarkerKey), iss)
		}
	case KindList:
		for i, c := range d.list {
			validateDescriptor(c, at.Index(i), iss)
		}
	}
}

var (
	defaultMu     sync.RWMutex
	defaultSystem StyleSystem = NewRegistry()
)

// Default returns the process-wide StyleSystem used by the package-level
// helpers. Applications that need isolation should create their own Registry
// and pass it to NewResolver instead.
func Default() StyleSystem {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultSystem
}

// SetDefault replaces the process-wide StyleSystem; nil values are ignored.
func SetDefault(sys StyleSystem) {
	if sys == nil {
		return
	}
	defaultMu.Lock()
	defaultSystem = sys
	defaultMu.Unlock()
}

// Resolve resolves ds against Default().
func Resolve(ds ...Descriptor) string { return NewResolver(Default()).Resolve(ds...) }

// ResolveAny resolves untyped values against Default().
func ResolveAny(vs ...any) string { return NewResolver(Default()).ResolveAny(vs...) }

// CSS returns the stylesheet of Default() when it can render one.
func CSS() string {
	if s, ok := Default().(interface{ CSS() string }); ok {
		return s.CSS()
	}
	return ""
}
