package gostyle

// StyleObject maps style property names to values. Values are strings,
// numbers, fallback slices, or nested StyleObject (map[string]any) blocks
// under selector keys such as ":hover" or "@media (max-width: 900px)".
type StyleObject map[string]any

// Keys used when a RegisteredStyle travels as a plain map (JSON documents,
// untyped values). A map carrying MarkerKey is treated as registered.
const (
	MarkerKey = "_definition"
	NameKey   = "_name"
)

// RegisteredStyle is a handle for a StyleObject interned by a StyleSystem.
// Definition is shared with the registry and must not be mutated.
type RegisteredStyle struct {
	Name       string
	Definition StyleObject
}

// IsZero reports whether r is the zero handle.
func (r RegisteredStyle) IsZero() bool { return r.Name == "" && r.Definition == nil }

// Map returns the marker-carrying map form of r.
func (r RegisteredStyle) Map() map[string]any {
	return map[string]any{NameKey: r.Name, MarkerKey: map[string]any(r.Definition)}
}

// Kind identifies a Descriptor variant.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindClassName
	KindObject
	KindRegistered
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindClassName:
		return "class"
	case KindObject:
		return "object"
	case KindRegistered:
		return "registered"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Descriptor is one style descriptor: a literal class name, a style object,
// a registered style, a list of descriptors, or nothing. The zero value is
// an empty descriptor.
type Descriptor struct {
	kind  Kind
	class string
	obj   StyleObject
	reg   RegisteredStyle
	list  []Descriptor
}

// Empty returns the empty descriptor.
func Empty() Descriptor { return Descriptor{} }

// Class returns a literal class-name descriptor. An empty name is Empty.
func Class(name string) Descriptor {
	if name == "" {
		return Descriptor{}
	}
	return Descriptor{kind: KindClassName, class: name}
}

// Classes returns a list of literal class names.
func Classes(names ...string) Descriptor {
	ds := make([]Descriptor, len(names))
	for i, n := range names {
		ds[i] = Class(n)
	}
	return Descriptor{kind: KindList, list: ds}
}

// Object returns a descriptor for an unregistered style object. A nil map is
// Empty; an empty non-nil map still registers (as an empty rule).
func Object(obj StyleObject) Descriptor {
	if obj == nil {
		return Descriptor{}
	}
	return Descriptor{kind: KindObject, obj: obj}
}

// Registered returns a descriptor for an already registered style.
func Registered(r RegisteredStyle) Descriptor {
	if r.IsZero() {
		return Descriptor{}
	}
	return Descriptor{kind: KindRegistered, reg: r}
}

// List returns a nested list of descriptors.
func List(ds ...Descriptor) Descriptor { return Descriptor{kind: KindList, list: ds} }

// When returns d if cond holds and Empty otherwise.
func When(cond bool, d Descriptor) Descriptor {
	if !cond {
		return Descriptor{}
	}
	return d
}

// Kind reports the variant of d.
func (d Descriptor) Kind() Kind { return d.kind }

// IsEmpty reports whether d contributes nothing by itself.
func (d Descriptor) IsEmpty() bool { return d.kind == KindEmpty }

// ClassName returns the literal class for KindClassName descriptors.
func (d Descriptor) ClassName() (string, bool) { return d.class, d.kind == KindClassName }

// StyleObject returns the object for KindObject descriptors.
func (d Descriptor) StyleObject() (StyleObject, bool) { return d.obj, d.kind == KindObject }

// RegisteredStyle returns the handle for KindRegistered descriptors.
func (d Descriptor) RegisteredStyle() (RegisteredStyle, bool) { return d.reg, d.kind == KindRegistered }

// Items returns the children of KindList descriptors.
func (d Descriptor) Items() ([]Descriptor, bool) { return d.list, d.kind == KindList }
