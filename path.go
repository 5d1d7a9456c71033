package gostyle

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// RootPath returns the empty pointer ("/").
func RootPath() PathRef { return &pathRef{} }

type pathRef struct {
	parts []string
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return &pathRef{parts: append(append([]string{}, p.parts...), pointerEscaper.Replace(name))}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	var m map[string]any
	if len(kv) > 1 {
		m = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			m[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m, Offset: -1}
}
