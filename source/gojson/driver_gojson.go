// Package gojson provides a descriptor JSON driver backed by goccy/go-json.
package gojson

import (
	"bytes"
	"io"

	j "github.com/goccy/go-json"

	gostyle "github.com/reoring/gostyle"
	eng "github.com/reoring/gostyle/internal/engine"
)

// Driver returns a gostyle.JSONDriver backed by goccy/go-json.
func Driver() gostyle.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) gostyle.Source { return gostyle.SourceFromEngine(NewReader(r)) }
func (driverGoJSON) NewBytes(b []byte) gostyle.Source    { return gostyle.SourceFromEngine(NewBytes(b)) }
func (driverGoJSON) Name() string                        { return "go-json" }

// NewReader streams a descriptor document from r. go-json does not report
// input offsets, so MaxBytes is not enforced and issues carry offset -1.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return eng.Shape(func() (any, error) { return dec.Token() }, delim, nil)
}

// NewBytes streams a descriptor document held in memory.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func delim(t any) (byte, bool) {
	d, ok := t.(j.Delim)
	return byte(d), ok
}
