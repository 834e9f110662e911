package expr

import (
	"errors"
	"fmt"
)

// Error classes. Every error returned by this package wraps exactly one of
// these, so callers can branch with errors.Is and read details with errors.As.
var (
	ErrLex      = errors.New("lexical error")
	ErrSyntax   = errors.New("syntax error")
	ErrSemantic = errors.New("semantic error")
	ErrLookup   = errors.New("lookup error")
)

// LexError reports a character the tokenizer cannot start a token with.
type LexError struct {
	Char    rune
	Offset  int
	Message string
}

func (e *LexError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("lexical error at position %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("lexical error at position %d: unexpected character %q", e.Offset, e.Char)
}

func (e *LexError) Unwrap() error { return ErrLex }

// SyntaxError reports a grammar violation.
type SyntaxError struct {
	Offset   int
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: expected %s, found %s", e.Offset, e.Expected, e.Found)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// SemanticError reports well-formed input with an unusable value.
type SemanticError struct {
	Offset  int
	Message string
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("semantic error at position %d: %s", e.Offset, e.Message)
}

func (e *SemanticError) Unwrap() error { return ErrSemantic }

// LookupError reports a failed argument query on an already built Call.
// Tag is set when ByTag is true, Index otherwise.
type LookupError struct {
	Function string
	ByTag    bool
	Tag      string
	Index    int
}

func (e *LookupError) Error() string {
	if e.ByTag {
		return fmt.Sprintf("function %s has no argument tagged %q", e.Function, e.Tag)
	}
	return fmt.Sprintf("function %s has no argument at index %d", e.Function, e.Index)
}

func (e *LookupError) Unwrap() error { return ErrLookup }

func syntaxErrorf(tok *Token, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Offset:   tok.Pos,
		Expected: fmt.Sprintf(format, args...),
		Found:    tok.describe(),
	}
}
