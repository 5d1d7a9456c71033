package sheet_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gostyle "github.com/reoring/gostyle"
	"github.com/reoring/gostyle/sheet"
)

// plainSystem implements only gostyle.StyleSystem.
type plainSystem struct{ reg *gostyle.Registry }

func (p plainSystem) Register(obj gostyle.StyleObject) gostyle.RegisteredStyle {
	return p.reg.Register(obj)
}
func (p plainSystem) Combine(styles ...gostyle.RegisteredStyle) string {
	return p.reg.Combine(styles...)
}

func TestCreate_NamedKeys(t *testing.T) {
	reg := gostyle.NewRegistry()
	s := sheet.Create(reg, map[string]gostyle.StyleObject{
		"root":      {"gap": 16},
		"buttonRow": {"flexWrap": "wrap", "gap": 16},
	})
	if diff := cmp.Diff([]string{"buttonRow", "root"}, s.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	root, ok := s.Style("root")
	if !ok || !strings.HasPrefix(root.Name, "root_") {
		t.Fatalf("unexpected root handle %+v", root)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d", s.Len())
	}
	if !s.Get("missing").IsEmpty() {
		t.Fatalf("missing key must be empty")
	}
}

func TestCreate_PlainSystem(t *testing.T) {
	s := sheet.Create(plainSystem{gostyle.NewRegistry()}, map[string]gostyle.StyleObject{"root": {"gap": 16}})
	root, _ := s.Style("root")
	if !strings.HasPrefix(root.Name, "s_") {
		t.Fatalf("plain systems use hash names, got %q", root.Name)
	}
}

func TestSheet_ResolveLikeStyleSheetCreate(t *testing.T) {
	reg := gostyle.NewRegistry()
	r := gostyle.NewResolver(reg)
	styles := sheet.Create(reg, map[string]gostyle.StyleObject{
		"body":   sheet.Rule().Set("fontSize", 14).Set("lineHeight", "20px").Build(),
		"column": sheet.Rule().Set("flexDirection", "column").Build(),
	})
	cls := r.Resolve(styles.Pick("body", "column"), gostyle.Class("extra"))
	body, _ := styles.Style("body")
	column, _ := styles.Style("column")
	if want := body.Name + gostyle.CombinedSeparator + column.Name + " extra"; cls != want {
		t.Fatalf("got %q want %q", cls, want)
	}
	if !strings.Contains(reg.CSS(), "{font-size:14px;line-height:20px;flex-direction:column;}") {
		t.Fatalf("unexpected css:\n%s", reg.CSS())
	}
}

func TestRuleBuilder(t *testing.T) {
	got := sheet.Rule().
		Set("color", "red").
		Px("lineHeight", 28).
		Hover(sheet.Rule().Set("color", "blue")).
		Focus(nil).
		Pseudo("not(:last-child)", sheet.Rule().Set("marginRight", 8)).
		Media(sheet.IsSmallScreen, sheet.Rule().Set("display", "none")).
		Merge(gostyle.StyleObject{"color": "black"}).
		Build()
	want := gostyle.StyleObject{
		"color":                     "black",
		"lineHeight":                "28px",
		":hover":                    gostyle.StyleObject{"color": "blue"},
		":not(:last-child)":         gostyle.StyleObject{"marginRight": 8},
		"@media (max-width: 900px)": gostyle.StyleObject{"display": "none"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rule mismatch (-want +got):\n%s", diff)
	}
}
