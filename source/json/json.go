// Package json reads descriptor documents with encoding/json's streaming
// decoder. Tokens carry byte offsets, so MaxBytes limits and issue offsets
// work with this driver.
package json

import (
	"bytes"
	"encoding/json"
	"io"

	eng "github.com/reoring/gostyle/internal/engine"
)

// NewReader streams a descriptor document from r.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return eng.Shape(func() (any, error) { return dec.Token() }, delim, dec.InputOffset)
}

// NewBytes streams a descriptor document held in memory.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func delim(t any) (byte, bool) {
	d, ok := t.(json.Delim)
	return byte(d), ok
}
