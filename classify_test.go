package gostyle_test

import (
	"encoding/json"
	"testing"

	gostyle "github.com/reoring/gostyle"
)

func TestFromAny_Kinds(t *testing.T) {
	reg := gostyle.RegisteredStyle{Name: "n1", Definition: gostyle.StyleObject{"color": "red"}}
	cases := []struct {
		name string
		in   any
		want gostyle.Kind
	}{
		{"nil", nil, gostyle.KindEmpty},
		{"false", false, gostyle.KindEmpty},
		{"true", true, gostyle.KindEmpty},
		{"empty string", "", gostyle.KindEmpty},
		{"number", 12, gostyle.KindEmpty},
		{"json number", json.Number("1"), gostyle.KindEmpty},
		{"func", func() {}, gostyle.KindEmpty},
		{"nil registered pointer", (*gostyle.RegisteredStyle)(nil), gostyle.KindEmpty},
		{"class", "btn", gostyle.KindClassName},
		{"style object", gostyle.StyleObject{"margin": 4}, gostyle.KindObject},
		{"plain map", map[string]any{"margin": 4}, gostyle.KindObject},
		{"string map", map[string]string{"color": "red"}, gostyle.KindObject},
		{"registered", reg, gostyle.KindRegistered},
		{"registered pointer", &reg, gostyle.KindRegistered},
		{"marker map", reg.Map(), gostyle.KindRegistered},
		{"list", []any{"a", nil}, gostyle.KindList},
		{"string list", []string{"a", "b"}, gostyle.KindList},
		{"descriptor", gostyle.Class("x"), gostyle.KindClassName},
		{"descriptor list", []gostyle.Descriptor{gostyle.Class("x")}, gostyle.KindList},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := gostyle.FromAny(c.in).Kind(); got != c.want {
				t.Fatalf("FromAny(%v) kind = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestFromAny_MarkerHeuristic(t *testing.T) {
	// A plain object that happens to carry the marker key is treated as registered.
	d := gostyle.FromAny(map[string]any{"_name": "card_1", "_definition": map[string]any{"gap": 8}})
	r, ok := d.RegisteredStyle()
	if !ok || r.Name != "card_1" || r.Definition["gap"] != 8 {
		t.Fatalf("unexpected classification: %v %+v", d.Kind(), r)
	}

	// A malformed definition still classifies as registered when it has a name.
	d = gostyle.FromAny(map[string]any{"_name": "odd", "_definition": "nope"})
	if d.Kind() != gostyle.KindRegistered {
		t.Fatalf("expected registered, got %v", d.Kind())
	}
	if _, err := gostyle.ClassifyAny(map[string]any{"_name": "odd", "_definition": "nope"}); err == nil {
		t.Fatalf("strict classification should reject a malformed definition")
	}
}

func TestClassifyAny_ReportsPaths(t *testing.T) {
	_, err := gostyle.ClassifyAny([]any{"a", []any{nil, 3.5}, true})
	iss, ok := gostyle.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected 2 issues, got %v", err)
	}
	if iss[0].Path != "/1/1" || iss[0].Params["type"] != "float64" {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
	if iss[1].Path != "/2" || iss[1].Code != gostyle.CodeInvalidDescriptor {
		t.Fatalf("unexpected issue: %+v", iss[1])
	}

	d, err := gostyle.ClassifyAny([]any{"a", false, nil})
	if err != nil || d.Kind() != gostyle.KindList {
		t.Fatalf("falsy values are valid: %v %v", d.Kind(), err)
	}
}

func TestValidateObject(t *testing.T) {
	ok := gostyle.StyleObject{
		"margin":                    4,
		"display":                   []any{"-webkit-box", "flex"},
		":not(:last-child)":         map[string]any{"marginBottom": 8},
		"@media (max-width: 900px)": map[string]any{"gap": json.Number("4")},
		"color":                     nil,
		"flag":                      true,
	}
	if err := gostyle.ValidateObject(ok); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	err := gostyle.ValidateObject(gostyle.StyleObject{
		"child":  map[string]any{"color": "red"},
		"bold":   complex(1, 2),
		":hover": map[string]any{"color": struct{}{}},
	})
	iss, _ := gostyle.AsIssues(err)
	if len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %v", iss)
	}
	want := []struct{ path, code string }{
		{"/:hover/color", gostyle.CodeInvalidValue},
		{"/bold", gostyle.CodeInvalidValue},
		{"/child", gostyle.CodeUnknownSelector},
	}
	for i, w := range want {
		if iss[i].Path != w.path || iss[i].Code != w.code {
			t.Fatalf("issue %d = %+v, want %s at %s", i, iss[i], w.code, w.path)
		}
	}
}

func TestDescriptorAccessors(t *testing.T) {
	if name, ok := gostyle.Class("a").ClassName(); !ok || name != "a" {
		t.Fatalf("class accessor")
	}
	if _, ok := gostyle.Class("a").StyleObject(); ok {
		t.Fatalf("class is not an object")
	}
	if !gostyle.Object(nil).IsEmpty() || !gostyle.Registered(gostyle.RegisteredStyle{}).IsEmpty() {
		t.Fatalf("nil object and zero handle are empty")
	}
	items, ok := gostyle.Classes("a", "", "b").Items()
	if !ok || len(items) != 3 || !items[1].IsEmpty() {
		t.Fatalf("unexpected items %v", items)
	}
	if gostyle.KindList.String() != "list" || gostyle.Kind(99).String() != "unknown" {
		t.Fatalf("kind strings")
	}
}
