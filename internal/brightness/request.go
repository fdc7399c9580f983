// Package brightness parses brightness requests and resolves them against a
// device's current and maximum raw brightness.
package brightness

import (
	"errors"
	"fmt"
	"strconv"
)

// A Request is a parsed brightness argument such as "40", "+5", or "-10%".
type Request struct {
	Magnitude int64
	Relative  bool // text began with an explicit sign
	Percent   bool // text ended with '%'
}

func (r Request) String() string {
	var s string
	if r.Relative && r.Magnitude >= 0 {
		s = "+"
	}
	s += strconv.FormatInt(r.Magnitude, 10)
	if r.Percent {
		s += "%"
	}
	return s
}

// ParseErrorKind classifies a ParseError.
type ParseErrorKind int

const (
	NotANumber ParseErrorKind = iota
	TrailingGarbage
	ZeroDelta
)

var (
	ErrNotANumber      = errors.New("not a number")
	ErrTrailingGarbage = errors.New("trailing characters after number")
	ErrZeroDelta       = errors.New("relative change of zero")
)

func (k ParseErrorKind) sentinel() error {
	switch k {
	case NotANumber:
		return ErrNotANumber
	case TrailingGarbage:
		return ErrTrailingGarbage
	case ZeroDelta:
		return ErrZeroDelta
	}
	panic("unreachable")
}

// A ParseError reports a malformed brightness argument.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Err   error // underlying cause, if any
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("bad brightness value %q: %s", e.Input, e.Kind.sentinel())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Is(target error) bool { return target == e.Kind.sentinel() }

func (e *ParseError) Unwrap() error { return e.Err }

// Parse parses text as an optional leading '+' or '-', a decimal integer,
// and an optional trailing '%'. A signed zero is rejected since a relative
// change of nothing is almost certainly a mistake; an unsigned "0" is a
// valid absolute value.
func Parse(text string) (Request, error) {
	var req Request
	i := 0
	if len(text) > 0 && (text[0] == '+' || text[0] == '-') {
		req.Relative = true
		i++
	}
	start := i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == start {
		return Request{}, &ParseError{Kind: NotANumber, Input: text}
	}
	n, err := strconv.ParseInt(text[:i], 10, 64)
	if err != nil {
		return Request{}, &ParseError{Kind: NotANumber, Input: text, Err: err}
	}
	req.Magnitude = n

	switch text[i:] {
	case "":
	case "%":
		req.Percent = true
	default:
		return Request{}, &ParseError{Kind: TrailingGarbage, Input: text}
	}

	if req.Relative && req.Magnitude == 0 {
		return Request{}, &ParseError{Kind: ZeroDelta, Input: text}
	}
	return req, nil
}
