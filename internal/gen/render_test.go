package gen

import (
	"strings"
	"testing"

	gostyle "github.com/reoring/gostyle"
	"github.com/reoring/gostyle/sheet"
)

func TestIdent(t *testing.T) {
	cases := map[string]string{
		"buttonRow": "ButtonRow",
		"dark-card": "DarkCard",
		"2col":      "S2col",
		"a_b":       "AB",
		"":          "S",
	}
	for in, want := range cases {
		if got := Ident(in); got != want {
			t.Errorf("Ident(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderConstants(t *testing.T) {
	reg := gostyle.NewRegistry()
	s := sheet.Create(reg, map[string]gostyle.StyleObject{
		"root":      {"gap": 16},
		"buttonRow": {"display": "flex"},
	})
	out, err := RenderConstants("ui", s)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	src := string(out)
	row, _ := s.Style("buttonRow")
	for _, want := range []string{
		"// Code generated by gostyle gen. DO NOT EDIT.",
		"package ui",
		"ButtonRow = \"" + row.Name + "\" // buttonRow",
	} {
		if !strings.Contains(src, want) {
			t.Fatalf("output missing %q:\n%s", want, src)
		}
	}
	if strings.Index(src, "ButtonRow") > strings.Index(src, "Root") {
		t.Fatalf("constants not in key order:\n%s", src)
	}
}

func TestRenderConstants_Errors(t *testing.T) {
	reg := gostyle.NewRegistry()
	if _, err := RenderConstants("not a pkg", sheet.Sheet{}); err == nil {
		t.Fatalf("expected invalid package error")
	}
	s := sheet.Create(reg, map[string]gostyle.StyleObject{
		"dark-card": {"color": "black"},
		"darkCard":  {"color": "gray"},
	})
	if _, err := RenderConstants("ui", s); err == nil || !strings.Contains(err.Error(), "DarkCard") {
		t.Fatalf("expected collision error, got %v", err)
	}
}

func TestRenderConstants_EmptySheet(t *testing.T) {
	out, err := RenderConstants("ui", sheet.Sheet{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(string(out), "const") {
		t.Fatalf("empty sheet should not declare constants:\n%s", out)
	}
}
