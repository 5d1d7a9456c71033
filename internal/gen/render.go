// Package gen renders Go source exposing the class names of a sheet.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"

	"github.com/reoring/gostyle/sheet"
)

var fileTmpl = template.Must(template.New("file").Parse(`// Code generated by gostyle gen. DO NOT EDIT.

package {{.Package}}
{{if .Consts}}
// Class names of the registered styles.
const (
{{- range .Consts}}
	{{.Ident}} = {{printf "%q" .Class}} // {{.Key}}
{{- end}}
)
{{end}}`))

type constant struct {
	Ident string
	Class string
	Key   string
}

// RenderConstants returns formatted Go source declaring one exported
// constant per sheet key, in key order.
func RenderConstants(pkg string, s sheet.Sheet) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("gen: invalid package name %q", pkg)
	}
	seen := map[string]string{}
	var consts []constant
	for _, key := range s.Names() {
		ident := Ident(key)
		if prev, dup := seen[ident]; dup {
			return nil, fmt.Errorf("gen: keys %q and %q both map to %s", prev, key, ident)
		}
		seen[ident] = key
		r, _ := s.Style(key)
		consts = append(consts, constant{Ident: ident, Class: r.Name, Key: key})
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, struct {
		Package string
		Consts  []constant
	}{pkg, consts}); err != nil {
		return nil, err
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w", err)
	}
	return out, nil
}

// Ident converts a sheet key into an exported Go identifier:
// "buttonRow" -> "ButtonRow", "dark-card" -> "DarkCard", "2col" -> "S2col".
func Ident(key string) string {
	var b strings.Builder
	upper := true
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s == "" || !unicode.IsLetter([]rune(s)[0]) {
		s = "S" + s
	}
	return s
}
