package gostyle

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/reoring/gostyle/codec"
)

const importantSuffix = "!important"

// ruleBlock is a merged style object that remembers declaration order.
// Keys are CSS property names (or selector keys); a key moves to the end
// when a later object overrides it.
type ruleBlock struct {
	keys []string
	vals map[string]any // nested selector blocks are *ruleBlock
}

func newRuleBlock() *ruleBlock { return &ruleBlock{vals: map[string]any{}} }

func (b *ruleBlock) set(key string, v any) {
	if _, ok := b.vals[key]; ok {
		for i, k := range b.keys {
			if k == key {
				b.keys = append(b.keys[:i], b.keys[i+1:]...)
				break
			}
		}
	}
	b.keys = append(b.keys, key)
	b.vals[key] = v
}

// merge overlays src. Keys of src apply in sorted order; property spellings
// are normalized so "marginTop" and "margin-top" override each other.
// Nested selector blocks merge recursively.
func (b *ruleBlock) merge(src map[string]any) {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := src[k]
		if nested, ok := asObject(v); ok && IsSelectorKey(k) {
			cur, ok := b.vals[k].(*ruleBlock)
			if !ok {
				cur = newRuleBlock()
			}
			cur.merge(nested)
			b.set(k, cur)
			continue
		}
		if _, ok := asObject(v); ok {
			b.set(k, v)
			continue
		}
		b.set(codec.Property(k), v)
	}
}

// render produces the rule sets of the merged definitions for ".className",
// one rule per line. Declarations keep merge order; pseudo selectors and
// media queries follow.
func (r *Registry) render(className string, defs ...StyleObject) string {
	b := newRuleBlock()
	for _, d := range defs {
		b.merge(d)
	}
	var rules []string
	r.renderBlock(&rules, "."+className, "", b)
	return strings.Join(rules, "\n")
}

func (r *Registry) renderBlock(rules *[]string, selector, media string, b *ruleBlock) {
	var decls []string
	var pseudos, medias []string
	for _, k := range b.keys {
		v := b.vals[k]
		if _, ok := v.(*ruleBlock); ok {
			if IsMediaKey(k) {
				medias = append(medias, k)
			} else {
				pseudos = append(pseudos, k)
			}
			continue
		}
		if _, ok := asObject(v); ok {
			r.logger.Debug("dropping nested block under non-selector key", zap.String("selector", selector), zap.String("key", k))
			continue
		}
		if v == nil {
			continue
		}
		if _, isBool := v.(bool); isBool {
			continue
		}
		vals, err := codec.Values(k, v)
		if err != nil {
			r.logger.Debug("dropping declaration", zap.String("selector", selector), zap.String("property", k), zap.Error(err))
			continue
		}
		for _, s := range vals {
			if r.important && !strings.HasSuffix(s, importantSuffix) {
				s += " " + importantSuffix
			}
			decls = append(decls, k+":"+s+";")
		}
	}

	if len(decls) > 0 {
		rule := selector + "{" + strings.Join(decls, "") + "}"
		if media != "" {
			rule = "@media " + media + "{" + rule + "}"
		}
		*rules = append(*rules, rule)
	}
	for _, k := range pseudos {
		r.renderBlock(rules, selector+k, media, b.vals[k].(*ruleBlock))
	}
	for _, k := range medias {
		q := strings.TrimSpace(strings.TrimPrefix(k, "@media"))
		if media != "" {
			q = media + " and " + q
		}
		r.renderBlock(rules, selector, q, b.vals[k].(*ruleBlock))
	}
}
