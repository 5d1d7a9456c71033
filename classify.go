package gostyle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/gostyle/codec"
)

// FromAny classifies an untyped value into a Descriptor. It keeps the
// permissive behavior of untyped style props:
//
//   - nil, false and "" are Empty
//   - strings are class names; []string and []any are lists
//   - maps carrying MarkerKey are registered styles, other maps are style objects
//   - anything else (numbers, true, functions) is ignored as Empty
func FromAny(v any) Descriptor {
	return classify(v, RootPath(), nil)
}

// ClassifyAny is the strict form of FromAny: values FromAny would silently
// drop are reported as Issues with their JSON Pointer path.
func ClassifyAny(v any) (Descriptor, error) {
	var iss Issues
	d := classify(v, RootPath(), &iss)
	if len(iss) > 0 {
		return Descriptor{}, iss
	}
	return d, nil
}

func classify(v any, at PathRef, iss *Issues) Descriptor {
	switch t := v.(type) {
	case nil:
		return Descriptor{}
	case Descriptor:
		return t
	case []Descriptor:
		return List(t...)
	case string:
		return Class(t)
	case []string:
		return Classes(t...)
	case bool:
		if t && iss != nil {
			*iss = append(*iss, at.Issue(CodeInvalidDescriptor, "boolean true is not a style descriptor", "type", "bool"))
		}
		return Descriptor{}
	case RegisteredStyle:
		return Registered(t)
	case *RegisteredStyle:
		if t == nil {
			return Descriptor{}
		}
		return Registered(*t)
	case StyleObject:
		return classifyMap(t, at, iss)
	case map[string]any:
		return classifyMap(t, at, iss)
	case map[string]string:
		obj := make(StyleObject, len(t))
		for k, s := range t {
			obj[k] = s
		}
		return Object(obj)
	case []any:
		ds := make([]Descriptor, len(t))
		for i, it := range t {
			ds[i] = classify(it, at.Index(i), iss)
		}
		return List(ds...)
	default:
		if iss != nil {
			*iss = append(*iss, at.Issue(CodeInvalidDescriptor, "unsupported descriptor type", "type", fmt.Sprintf("%T", v)))
		}
		return Descriptor{}
	}
}

func classifyMap(m map[string]any, at PathRef, iss *Issues) Descriptor {
	raw, marked := m[MarkerKey]
	if !marked {
		return Object(StyleObject(m))
	}
	name, _ := m[NameKey].(string)
	var def StyleObject
	switch d := raw.(type) {
	case StyleObject:
		def = d
	case map[string]any:
		def = StyleObject(d)
	default:
		if iss != nil {
			*iss = append(*iss, at.Field(MarkerKey).Issue(CodeInvalidDescriptor, "registered style definition must be an object", "type", fmt.Sprintf("%T", raw)))
		}
	}
	if name == "" && def == nil {
		return Descriptor{}
	}
	return Descriptor{kind: KindRegistered, reg: RegisteredStyle{Name: name, Definition: def}}
}

// IsSelectorKey reports whether key introduces a nested conditional block:
// a pseudo-class/element (":hover", "::placeholder") or a media query.
func IsSelectorKey(key string) bool {
	return strings.HasPrefix(key, ":") || IsMediaKey(key)
}

// IsMediaKey reports whether key is an "@media ..." block.
func IsMediaKey(key string) bool { return strings.HasPrefix(key, "@media") }

// ValidateObject reports the declarations of obj that would be dropped when
// rendered: nested blocks under non-selector keys and values without a CSS form.
func ValidateObject(obj StyleObject) error {
	var iss Issues
	validateObject(obj, RootPath(), &iss)
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func validateObject(obj map[string]any, at PathRef, iss *Issues) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		p := at.Field(k)
		if nested, ok := asObject(obj[k]); ok {
			if !IsSelectorKey(k) {
				*iss = append(*iss, p.Issue(CodeUnknownSelector, "nested block under a non-selector key", "key", k))
				continue
			}
			validateObject(nested, p, iss)
			continue
		}
		switch obj[k].(type) {
		case nil, bool:
			continue
		}
		if _, err := codec.Values(k, obj[k]); err != nil {
			it := p.Issue(CodeInvalidValue, "value has no CSS form", "type", fmt.Sprintf("%T", obj[k]))
			it.Cause = err
			*iss = append(*iss, it)
		}
	}
}

// asObject returns v as a nested block when it is a map.
func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case StyleObject:
		return t, true
	case map[string]any:
		return t, true
	}
	return nil, false
}
