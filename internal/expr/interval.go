package expr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	infinity   = "Inf"
	notANumber = "NaN"
)

// ParseInterval parses an interval literal such as "(-10.0E+0, +10.0E-0]".
// Parentheses mark open margins and brackets closed ones; a signed Inf margin
// is unbounded.
func ParseInterval(input string) (*IntervalBound, error) {
	start := strings.IndexFunc(input, func(r rune) bool { return !unicode.IsSpace(r) })
	if start < 0 {
		return nil, &SyntaxError{Offset: len(input), Expected: "'(' or '['", Found: "end of input"}
	}
	end := strings.LastIndexFunc(input, func(r rune) bool { return !unicode.IsSpace(r) })

	interval := &IntervalBound{}

	switch input[start] {
	case '(':
		interval.LeftClosure = Open
	case '[':
		interval.LeftClosure = Closed
	default:
		return nil, &SyntaxError{Offset: start, Expected: "'(' or '['", Found: describeChar(input, start)}
	}

	if end == start {
		return nil, &SyntaxError{Offset: len(input), Expected: "interval margins", Found: "end of input"}
	}

	switch input[end] {
	case ')':
		interval.RightClosure = Open
	case ']':
		interval.RightClosure = Closed
	default:
		return nil, &SyntaxError{Offset: end, Expected: "')' or ']'", Found: describeChar(input, end)}
	}

	body := input[start+1 : end]
	comma := strings.IndexByte(body, ',')
	if comma < 0 {
		return nil, &SyntaxError{Offset: end, Expected: "','", Found: describeChar(input, end)}
	}
	if extra := strings.IndexByte(body[comma+1:], ','); extra >= 0 {
		offset := start + 1 + comma + 1 + extra
		return nil, &SyntaxError{Offset: offset, Expected: "')' or ']'", Found: "','"}
	}

	var err error
	if interval.Left, err = parseMargin(body[:comma], start+1); err != nil {
		return nil, err
	}
	if interval.Right, err = parseMargin(body[comma+1:], start+1+comma+1); err != nil {
		return nil, err
	}

	return interval, nil
}

// parseMargin parses one signed margin. offset is the position of text in the input.
func parseMargin(text string, offset int) (decimal.NullDecimal, error) {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	offset += len(text) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)

	if trimmed == "" {
		return decimal.NullDecimal{}, &SyntaxError{Offset: offset, Expected: "number", Found: "empty margin"}
	}

	unsigned := trimmed
	if unsigned[0] == '+' || unsigned[0] == '-' {
		unsigned = unsigned[1:]
	}

	switch unsigned {
	case infinity:
		return decimal.NullDecimal{}, nil
	case notANumber:
		return decimal.NullDecimal{}, &SemanticError{Offset: offset, Message: "interval margin is not a number"}
	}

	// The margin must be exactly one number token
	token, err := NewTokenizer(unsigned).NextToken()
	if err != nil || token.Type != TokenNumber || len(token.Value) != len(unsigned) {
		return decimal.NullDecimal{}, &SyntaxError{Offset: offset, Expected: "number", Found: fmt.Sprintf("'%s'", trimmed)}
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.NullDecimal{}, &SyntaxError{Offset: offset, Expected: "number", Found: fmt.Sprintf("'%s'", trimmed)}
	}

	return decimal.NewNullDecimal(value), nil
}

func describeChar(input string, i int) string {
	r, _ := utf8.DecodeRuneInString(input[i:])
	return fmt.Sprintf("'%c'", r)
}
