package gostyle

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidDescriptor   = "invalid_descriptor"
	CodeInvalidValue        = "invalid_value"
	CodeUnknownSelector     = "unknown_selector"
	CodeDuplicateKey        = "duplicate_key"
	CodeParseError          = "parse_error"
	CodeTruncated           = "truncated"
	CodeRegistryUnavailable = "registry_unavailable"
)

// Issue describes one problem found while classifying or decoding descriptors.
type Issue struct {
	Path    string // JSON Pointer into the descriptor input (for example: /2/0/margin).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected shape, offending type, etc.
	Cause   error  // Optional: underlying error.
	Offset  int64  // Byte offset in a decoded document (-1 when unknown).
	// Params carries structured parameters (e.g., {"type":"int"}).
	Params map[string]any
}

// Issues is a collection of problems that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
