package sheet

import (
	"strconv"
	"strings"

	gostyle "github.com/reoring/gostyle"
)

// Breakpoints shared by responsive styles.
const (
	IsSmallScreen = "(max-width: 900px)"
	IsLargeScreen = "(min-width: 901px)"
)

// Media returns the style object key for a media query.
func Media(query string) string { return "@media " + query }

// RuleBuilder assembles a style object fluently.
type RuleBuilder struct {
	obj gostyle.StyleObject
}

// Rule starts an empty style object.
func Rule() *RuleBuilder { return &RuleBuilder{obj: gostyle.StyleObject{}} }

// Set assigns a declaration; later calls override earlier ones.
func (b *RuleBuilder) Set(prop string, v any) *RuleBuilder {
	b.obj[prop] = v
	return b
}

// Px assigns a length in pixels regardless of the property's unit rules.
func (b *RuleBuilder) Px(prop string, n float64) *RuleBuilder {
	b.obj[prop] = strconv.FormatFloat(n, 'f', -1, 64) + "px"
	return b
}

// Pseudo nests a block under a pseudo-class or pseudo-element selector.
// A missing leading colon is added.
func (b *RuleBuilder) Pseudo(selector string, nested *RuleBuilder) *RuleBuilder {
	if !strings.HasPrefix(selector, ":") {
		selector = ":" + selector
	}
	return b.nest(selector, nested)
}

// Hover nests a ":hover" block.
func (b *RuleBuilder) Hover(nested *RuleBuilder) *RuleBuilder { return b.nest(":hover", nested) }

// Focus nests a ":focus" block.
func (b *RuleBuilder) Focus(nested *RuleBuilder) *RuleBuilder { return b.nest(":focus", nested) }

// Media nests a block under "@media <query>".
func (b *RuleBuilder) Media(query string, nested *RuleBuilder) *RuleBuilder {
	return b.nest(Media(query), nested)
}

func (b *RuleBuilder) nest(key string, nested *RuleBuilder) *RuleBuilder {
	if nested == nil {
		return b
	}
	b.obj[key] = nested.Build()
	return b
}

// Merge copies obj's top-level entries over the current ones.
func (b *RuleBuilder) Merge(obj gostyle.StyleObject) *RuleBuilder {
	for k, v := range obj {
		b.obj[k] = v
	}
	return b
}

// Build returns a copy of the style object; the builder stays usable.
func (b *RuleBuilder) Build() gostyle.StyleObject {
	out := make(gostyle.StyleObject, len(b.obj))
	for k, v := range b.obj {
		out[k] = v
	}
	return out
}
