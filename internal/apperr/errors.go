package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is the single user-facing failure for malformed input.
// Both *LexError and *ParseError match it with errors.Is.
var ErrInvalidExpression = errors.New("invalid expression")

// EndOfInput is the position reported when the input ended too early.
const EndOfInput = -1

// LexError reports a character that starts no known token.
type LexError struct {
	Pos int
}

func (e *LexError) Error() string {
	return invalidAt(e.Pos)
}

func (e *LexError) Unwrap() error {
	return ErrInvalidExpression
}

func NewLex(pos int) *LexError {
	return &LexError{Pos: pos}
}

// ParseError reports malformed grammar. Pos is EndOfInput when the tokens ran out.
type ParseError struct {
	Pos int
}

func (e *ParseError) Error() string {
	return invalidAt(e.Pos)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidExpression
}

func NewParse(pos int) *ParseError {
	return &ParseError{Pos: pos}
}

func NewParseAtEnd() *ParseError {
	return &ParseError{Pos: EndOfInput}
}

// EvalError means the tree referenced a variable the assignment does not bind.
type EvalError struct {
	Variable string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Variable)
}

func NewUnbound(name string) *EvalError {
	return &EvalError{Variable: name}
}

// ResourceError is returned instead of enumerating 2^Variables rows past the limit.
type ResourceError struct {
	Variables int
	Limit     int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("too many variables: %d exceeds limit of %d", e.Variables, e.Limit)
}

func NewResource(variables, limit int) *ResourceError {
	return &ResourceError{Variables: variables, Limit: limit}
}

// Position extracts the source position from a lexing or parsing failure.
func Position(err error) (int, bool) {
	var le *LexError
	if errors.As(err, &le) {
		return le.Pos, true
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Pos, true
	}
	return 0, false
}

func invalidAt(pos int) string {
	if pos == EndOfInput {
		return ErrInvalidExpression.Error() + " at end of input"
	}
	return fmt.Sprintf("%s at position %d", ErrInvalidExpression, pos)
}
