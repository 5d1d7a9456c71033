package theme_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	gostyle "github.com/reoring/gostyle"
	"github.com/reoring/gostyle/theme"
)

const dashboard = `
palette:
  primary: "#0b5fff"
  border: 1px solid $primary
  gap: 16
styles:
  button:
    color: $primary
    border: $border
    ":hover":
      opacity: 0.8
  row:
    display: flex
    gap: $gap
---
palette:
  primary: "#222"
styles:
  muted:
    color: "#999"
    "@media (max-width: 900px)":
      display: none
`

func TestLoad_MultiDocument(t *testing.T) {
	reg := gostyle.NewRegistry()
	th, err := theme.Load([]byte(dashboard), reg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := map[string]string{"primary": "#222", "border": "1px solid #222", "gap": "16"}
	if diff := cmp.Diff(want, th.Palette()); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"button", "muted", "row"}, th.Sheet().Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	btn, ok := th.Style("button")
	if !ok {
		t.Fatalf("button missing")
	}
	wantBtn := gostyle.StyleObject{
		"color":  "#222",
		"border": "1px solid #222",
		":hover": map[string]any{"opacity": 0.8},
	}
	if diff := cmp.Diff(wantBtn, btn); diff != "" {
		t.Fatalf("button mismatch (-want +got):\n%s", diff)
	}
	if c, ok := th.Color("primary"); !ok || c != "#222" {
		t.Fatalf("color = %q, %v", c, ok)
	}
}

func TestLoad_ResolvesThroughSheet(t *testing.T) {
	reg := gostyle.NewRegistry()
	th, err := theme.Load([]byte(dashboard), reg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cls := gostyle.NewResolver(reg).Resolve(th.Sheet().Get("muted"))
	if !strings.HasPrefix(cls, "muted_") {
		t.Fatalf("unexpected class %q", cls)
	}
	css := reg.CSS()
	if !strings.Contains(css, "@media (max-width: 900px){."+cls+"{display:none;}}") {
		t.Fatalf("missing media rule:\n%s", css)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
		sub  string
	}{
		{name: "unknown reference", doc: "styles:\n  a:\n    color: $nope\n", want: theme.ErrUnknownReference},
		{name: "cycle", doc: "palette:\n  a: $b\n  b: $a\n", want: theme.ErrReferenceCycle},
		{name: "unknown key", doc: "colors: {}\n", sub: "unknown key"},
		{name: "style not mapping", doc: "styles:\n  a: red\n", sub: "expected a mapping"},
		{name: "bad nesting", doc: "styles:\n  a:\n    color:\n      x: 1\n", sub: "unknown_selector"},
		{name: "malformed", doc: "styles: [\n", sub: "document 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := theme.Load([]byte(tc.doc), gostyle.NewRegistry())
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
			if tc.sub != "" && !strings.Contains(err.Error(), tc.sub) {
				t.Fatalf("error %q does not mention %q", err, tc.sub)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(p, []byte("styles:\n  a:\n    color: red\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	th, err := theme.LoadFile(p, gostyle.NewRegistry())
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if th.Sheet().Len() != 1 {
		t.Fatalf("len = %d", th.Sheet().Len())
	}
	if _, err := theme.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), gostyle.NewRegistry()); err == nil {
		t.Fatalf("expected read error")
	}
}
