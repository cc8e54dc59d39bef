package sqm

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every error that [Parse] returns. Use [errors.Is]
// with the more specific values below to tell them apart.
var ErrSyntax = errors.New("syntax error")

var (
	ErrMissingKey     = syntaxError("object/array key is undefined")
	ErrMissingValue   = syntaxError("missing '=' in assignment")
	ErrUnmatchedClose = syntaxError("unmatched '};'")
	ErrUnclosed       = syntaxError("unclosed object or array")
	ErrUnrecognized   = syntaxError("unrecognized line")
	ErrNotObject      = syntaxError("cannot write a key inside an array")
)

type wrappedError struct {
	msg string
	err error
}

func syntaxError(msg string) error {
	return wrappedError{msg, ErrSyntax}
}

func (e wrappedError) Error() string {
	return e.msg
}

func (e wrappedError) Unwrap() error {
	return e.err
}

// A ParseError reports the line that stopped a parse.
type ParseError struct {
	// Lno is the 1-based line number.
	Lno int
	// Line is the trimmed text of the line.
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d: unable to parse %q: %v", e.Lno, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
