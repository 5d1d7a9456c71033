package gostyle

import (
	"context"
	"errors"
	"io"
	"sync"

	eng "github.com/reoring/gostyle/internal/engine"
	jsonsrc "github.com/reoring/gostyle/source/json"
)

// TokenKind enumerates JSON token kinds.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token describes a token in a descriptor document. Offset records the byte
// position when known (-1 otherwise).
type Token struct {
	Kind   TokenKind
	String string // Stored for key/string tokens.
	Number string // Stored as text.
	Bool   bool
	Offset int64
}

// Source is a stream of JSON tokens holding a descriptor document.
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONDriver turns JSON input into a Source. The default implementation is
// based on encoding/json; importing gostyle/source switches to go-json.
type JSONDriver interface {
	NewReader(r io.Reader) Source
	NewBytes(b []byte) Source
	Name() string
}

var (
	jsonDriverMu      sync.RWMutex
	currentJSONDriver JSONDriver = defaultJSONDriver{}
)

// SetJSONDriver replaces the global JSON driver; nil values are ignored.
func SetJSONDriver(d JSONDriver) {
	if d == nil {
		return
	}
	jsonDriverMu.Lock()
	currentJSONDriver = d
	jsonDriverMu.Unlock()
}

// UseDefaultJSONDriver restores the encoding/json driver.
func UseDefaultJSONDriver() {
	jsonDriverMu.Lock()
	currentJSONDriver = defaultJSONDriver{}
	jsonDriverMu.Unlock()
}

// CurrentJSONDriver returns the driver used by JSONBytes and JSONReader.
func CurrentJSONDriver() JSONDriver {
	jsonDriverMu.RLock()
	defer jsonDriverMu.RUnlock()
	return currentJSONDriver
}

type defaultJSONDriver struct{}

func (defaultJSONDriver) NewReader(r io.Reader) Source { return SourceFromEngine(jsonsrc.NewReader(r)) }
func (defaultJSONDriver) NewBytes(b []byte) Source    { return SourceFromEngine(jsonsrc.NewBytes(b)) }
func (defaultJSONDriver) Name() string                { return "encoding/json" }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return CurrentJSONDriver().NewReader(r) }

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return CurrentJSONDriver().NewBytes(b) }

// SourceFromEngine wraps an engine.TokenSource as a Source.
func SourceFromEngine(inner eng.TokenSource) Source { return &engineSourceAdapter{inner: inner} }

// Severity expresses how a detected problem is handled.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// DecodeOpt bundles descriptor decoding options.
type DecodeOpt struct {
	MaxDepth       int
	MaxBytes       int64
	OnDuplicateKey Severity
	// Strict reports unclassifiable values and undeliverable declarations
	// as Issues instead of dropping them.
	Strict bool
	// Warnings receives non-fatal issues (duplicate keys under Warn).
	Warnings func(Issue)
}

// DecodeDescriptors reads one JSON document from src and classifies it.
// Arrays are lists, strings class names, objects style objects (or
// registered styles when they carry MarkerKey); null and false are empty.
func DecodeDescriptors(ctx context.Context, src Source, opt DecodeOpt) (Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return Descriptor{}, err
	}
	ts := engineTokenSource(src)
	eopt := eng.EnforceOptions{
		OnDuplicate: eng.DuplicateStrictness(opt.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
	}
	if opt.Warnings != nil {
		eopt.IssueSink = func(si eng.SimpleIssue) {
			if si.Code == CodeDuplicateKey && opt.OnDuplicateKey == Warn {
				opt.Warnings(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: src.Location()})
			}
		}
	}
	if eopt.Enabled() {
		ts = eng.WrapWithEnforcement(ts, eopt)
	}

	tree, err := eng.DecodeTree(ts)
	if err != nil {
		return Descriptor{}, decodeIssues(err, src.Location())
	}
	if err := ctx.Err(); err != nil {
		return Descriptor{}, err
	}
	if !opt.Strict {
		return FromAny(tree), nil
	}
	var iss Issues
	d := classify(tree, RootPath(), &iss)
	validateDescriptor(d, RootPath(), &iss)
	if len(iss) > 0 {
		return Descriptor{}, iss
	}
	return d, nil
}

// DecodeJSON is DecodeDescriptors over JSONBytes(data).
func DecodeJSON(ctx context.Context, data []byte, opt DecodeOpt) (Descriptor, error) {
	return DecodeDescriptors(ctx, JSONBytes(data), opt)
}

func decodeIssues(err error, offset int64) error {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{Issue{Path: ie.Path, Code: ie.Code, Message: ie.Message, Offset: offset}}
	}
	return Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err, Offset: offset}}
}

type engineSourceAdapter struct {
	inner eng.TokenSource
}

func (s *engineSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (s *engineSourceAdapter) Location() int64 { return s.inner.Location() }

// engineTokenSource unwraps adapters produced by SourceFromEngine and wraps
// any other Source.
func engineTokenSource(s Source) eng.TokenSource {
	if ea, ok := s.(*engineSourceAdapter); ok {
		return ea.inner
	}
	return publicSourceAdapter{s}
}

type publicSourceAdapter struct{ s Source }

func (p publicSourceAdapter) NextToken() (eng.Token, error) {
	t, err := p.s.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{Kind: eng.Kind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}
func (p publicSourceAdapter) Location() int64 { return p.s.Location() }
