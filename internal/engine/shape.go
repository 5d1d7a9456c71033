package engine

import "strconv"

// RawNext yields the next raw token of a streaming JSON decoder in the
// encoding/json Token form: a delimiter, string, bool, number or nil.
type RawNext func() (any, error)

// Shape turns a raw decoder stream into a TokenSource. delim recognizes the
// decoder's delimiter type; offset reports the input offset and may be nil
// when the decoder does not expose one.
//
// Raw streams do not mark object keys, so Shape tracks whether the innermost
// object expects a key and emits KindKey for strings in that position.
func Shape(next RawNext, delim func(any) (byte, bool), offset func() int64) TokenSource {
	return &shaped{next: next, delim: delim, offset: offset}
}

type shaped struct {
	next   RawNext
	delim  func(any) (byte, bool)
	offset func() int64
	// wantKey has one entry per open container; arrays are always false.
	wantKey []bool
	objects []bool
}

func (s *shaped) Location() int64 {
	if s.offset == nil {
		return -1
	}
	return s.offset()
}

func (s *shaped) NextToken() (Token, error) {
	raw, err := s.next()
	if err != nil {
		return Token{}, err
	}
	tok := Token{Offset: s.Location()}
	if d, ok := s.delim(raw); ok {
		switch d {
		case '{':
			s.open(true)
			tok.Kind = KindBeginObject
		case '[':
			s.open(false)
			tok.Kind = KindBeginArray
		case '}':
			s.close()
			tok.Kind = KindEndObject
		default:
			s.close()
			tok.Kind = KindEndArray
		}
		return tok, nil
	}

	switch v := raw.(type) {
	case string:
		if n := len(s.wantKey); n > 0 && s.wantKey[n-1] {
			s.wantKey[n-1] = false
			tok.Kind, tok.String = KindKey, v
			return tok, nil
		}
		tok.Kind, tok.String = KindString, v
	case bool:
		tok.Kind, tok.Bool = KindBool, v
	case nil:
		tok.Kind = KindNull
	case float64:
		tok.Kind, tok.Number = KindNumber, strconv.FormatFloat(v, 'g', -1, 64)
	case interface{ String() string }:
		// json.Number from either decoder
		tok.Kind, tok.Number = KindNumber, v.String()
	default:
		tok.Kind = KindNull
	}
	s.valueDone()
	return tok, nil
}

func (s *shaped) open(object bool) {
	s.wantKey = append(s.wantKey, object)
	s.objects = append(s.objects, object)
}

func (s *shaped) close() {
	if n := len(s.wantKey); n > 0 {
		s.wantKey = s.wantKey[:n-1]
		s.objects = s.objects[:n-1]
	}
	s.valueDone()
}

// valueDone re-arms key expectation after a member value completes.
func (s *shaped) valueDone() {
	if n := len(s.objects); n > 0 && s.objects[n-1] {
		s.wantKey[n-1] = true
	}
}
