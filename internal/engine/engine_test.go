package engine_test

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	eng "github.com/reoring/gostyle/internal/engine"
	jsonsrc "github.com/reoring/gostyle/source/json"
)

func TestDecodeTree(t *testing.T) {
	got, err := eng.DecodeTree(jsonsrc.NewBytes([]byte(`["a", {"margin": 4, ":hover": {"color": "red"}}, [], null, true]`)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []any{
		"a",
		map[string]any{"margin": json.Number("4"), ":hover": map[string]any{"color": "red"}},
		[]any{},
		nil,
		true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeTree_Errors(t *testing.T) {
	if _, err := eng.DecodeTree(jsonsrc.NewBytes(nil)); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("empty input: %v", err)
	}
	if _, err := eng.DecodeTree(jsonsrc.NewBytes([]byte(`"a" "b"`))); !errors.Is(err, eng.ErrTrailingData) {
		t.Fatalf("trailing data: %v", err)
	}
}

func TestEnforce_DuplicateWarnCollects(t *testing.T) {
	var got []eng.SimpleIssue
	src := eng.WrapWithEnforcement(jsonsrc.NewBytes([]byte(`{"a":{"b":1,"b":2},"a":3}`)), eng.EnforceOptions{
		OnDuplicate: eng.DupWarn,
		IssueSink:   func(si eng.SimpleIssue) { got = append(got, si) },
	})
	if _, err := eng.DecodeTree(src); err != nil {
		t.Fatalf("warn mode must not fail: %v", err)
	}
	want := []eng.SimpleIssue{
		{Code: "duplicate_key", Path: "/a/b", Message: "key 'b' duplicated"},
		{Code: "duplicate_key", Path: "/a", Message: "key 'a' duplicated"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestEnforce_EscapedPointer(t *testing.T) {
	src := eng.WrapWithEnforcement(jsonsrc.NewBytes([]byte(`{"a/b":{"x":1,"x":2}}`)), eng.EnforceOptions{OnDuplicate: eng.DupError})
	_, err := eng.DecodeTree(src)
	var ie eng.IssueError
	if !errors.As(err, &ie) || ie.Path != "/a~1b/x" {
		t.Fatalf("expected escaped pointer, got %v", err)
	}
}

func TestEnforceOptions_Enabled(t *testing.T) {
	if (eng.EnforceOptions{}).Enabled() {
		t.Fatalf("zero options are disabled")
	}
	if !(eng.EnforceOptions{MaxDepth: 1}).Enabled() {
		t.Fatalf("depth enables enforcement")
	}
}
