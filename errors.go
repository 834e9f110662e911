package rexp

import (
	"errors"

	"github.com/nlstn/go-rexp/internal/datatype"
	"github.com/nlstn/go-rexp/internal/expr"
)

// Sentinel errors for each failure class. Every error returned by this
// package wraps one of these, so callers can use errors.Is() to classify it
// and errors.As() with the typed errors below to read the details.
var (
	// ErrLex indicates a character that cannot start any token, or an
	// unterminated string.
	ErrLex = expr.ErrLex

	// ErrSyntax indicates a token sequence that does not match the grammar.
	ErrSyntax = expr.ErrSyntax

	// ErrSemantic indicates well-formed input with a meaningless value,
	// such as a NaN interval margin.
	ErrSemantic = expr.ErrSemantic

	// ErrLookup indicates a missing call argument.
	ErrLookup = expr.ErrLookup

	// ErrUnsupportedClass indicates an R column class with no data type.
	ErrUnsupportedClass = datatype.ErrUnsupportedClass
)

// LexError reports the offending character and its offset.
type LexError = expr.LexError

// SyntaxError reports what the parser expected, what it found, and where.
type SyntaxError = expr.SyntaxError

// SemanticError reports a value that parsed but cannot be used.
type SemanticError = expr.SemanticError

// LookupError reports a call argument that could not be found by tag or position.
type LookupError = expr.LookupError

// errorType classifies an error for metrics and logs.
func errorType(err error) string {
	switch {
	case errors.Is(err, ErrLex):
		return "lex"
	case errors.Is(err, ErrSyntax):
		return "syntax"
	case errors.Is(err, ErrSemantic):
		return "semantic"
	case errors.Is(err, ErrLookup):
		return "lookup"
	case errors.Is(err, ErrUnsupportedClass):
		return "unsupported_class"
	}
	return "unknown"
}
