package codec

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestProperty(t *testing.T) {
	cases := map[string]string{
		"color":               "color",
		"marginTop":           "margin-top",
		"borderTopLeftRadius": "border-top-left-radius",
		"WebkitTransition":    "-webkit-transition",
		"MozAppearance":       "-moz-appearance",
		"msFlex":              "-ms-flex",
		"OTransform":          "-o-transform",
		"order":               "order",
		"outline":             "outline",
		"--brand-color":       "--brand-color",
		"font-size":           "font-size",
		"":                    "",
	}
	for in, want := range cases {
		if got := Property(in); got != want {
			t.Errorf("Property(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValue_Units(t *testing.T) {
	cases := []struct {
		prop string
		in   any
		want string
	}{
		{"margin", 4, "4px"},
		{"margin", 0, "0"},
		{"width", 12.5, "12.5px"},
		{"lineHeight", 1.5, "1.5"},
		{"line-height", 2, "2"},
		{"zIndex", int64(10), "10"},
		{"opacity", float32(0.5), "0.5"},
		{"fontWeight", 700, "700"},
		{"gap", uint8(16), "16px"},
		{"margin", json.Number("8"), "8px"},
		{"color", "red", "red"},
		{"lineHeight", "20px", "20px"},
		{"--space", 3, "3"},
	}
	for _, c := range cases {
		got, err := Value(c.prop, c.in)
		if err != nil {
			t.Fatalf("Value(%q, %v) err: %v", c.prop, c.in, err)
		}
		if got != c.want {
			t.Errorf("Value(%q, %v) = %q, want %q", c.prop, c.in, got, c.want)
		}
	}
}

func TestValue_Unsupported(t *testing.T) {
	_, err := Value("color", func() {})
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue, got %v", err)
	}
	_, err = Value("margin", json.Number("abc"))
	if !errors.Is(err, ErrUnsupportedValue) {
		t.Fatalf("expected ErrUnsupportedValue for bad number, got %v", err)
	}
}

func TestValues_Fallbacks(t *testing.T) {
	got, err := Values("display", []any{"-webkit-box", "flex"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff([]string{"-webkit-box", "flex"}, got); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}
	got, err = Values("margin", 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if diff := cmp.Diff([]string{"2px"}, got); diff != "" {
		t.Fatalf("single mismatch (-want +got):\n%s", diff)
	}
	if _, err := Values("margin", []any{1, struct{}{}}); err == nil {
		t.Fatalf("expected error for unsupported element")
	}
}
