package expr

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdentifier
	TokenString
	TokenNumber
	TokenBoolean
	TokenOperator
	TokenLParen
	TokenRParen
	TokenComma
	TokenAssign
)

var tokenTypeNames = [...]string{
	TokenEOF:        "end of input",
	TokenIdentifier: "identifier",
	TokenString:     "string",
	TokenNumber:     "number",
	TokenBoolean:    "boolean",
	TokenOperator:   "operator",
	TokenLParen:     "'('",
	TokenRParen:     "')'",
	TokenComma:      "','",
	TokenAssign:     "'='",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token represents a single token of an expression. Value holds the raw text,
// except for strings where the surrounding quotes are removed.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// is reports whether the token has the given type and value
func (t *Token) is(tokenType TokenType, value string) bool {
	return t.Type == tokenType && t.Value == value
}

// describe renders the token for error messages
func (t *Token) describe() string {
	switch t.Type {
	case TokenEOF, TokenLParen, TokenRParen, TokenComma, TokenAssign:
		return t.Type.String()
	case TokenString:
		return fmt.Sprintf("string %q", t.Value)
	default:
		return fmt.Sprintf("%s '%s'", t.Type, t.Value)
	}
}

// Tokenizer tokenizes R expressions
type Tokenizer struct {
	input string
	pos   int
	ch    rune
	width int
}

// NewTokenizer creates a new tokenizer
func NewTokenizer(input string) *Tokenizer {
	t := &Tokenizer{input: input}
	t.decode()
	return t
}

// decode loads the rune at the current position
func (t *Tokenizer) decode() {
	if t.pos >= len(t.input) {
		t.ch, t.width = 0, 0
		return
	}
	t.ch, t.width = utf8.DecodeRuneInString(t.input[t.pos:])
}

// advance moves to the next character
func (t *Tokenizer) advance() {
	t.pos += t.width
	t.decode()
}

// peek looks ahead without advancing
func (t *Tokenizer) peek() rune {
	next := t.pos + t.width
	if next >= len(t.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(t.input[next:])
	return r
}

func (t *Tokenizer) atEOF() bool {
	return t.pos >= len(t.input)
}

// skipWhitespace skips whitespace characters
func (t *Tokenizer) skipWhitespace() {
	for !t.atEOF() && unicode.IsSpace(t.ch) {
		t.advance()
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// readString reads a double-quoted string. There is no escape processing.
func (t *Tokenizer) readString() (string, error) {
	start := t.pos
	t.advance() // skip opening quote

	var result strings.Builder
	for !t.atEOF() && t.ch != '"' {
		result.WriteRune(t.ch)
		t.advance()
	}

	if t.atEOF() {
		return "", &LexError{Char: '"', Offset: start, Message: "unterminated string literal"}
	}
	t.advance() // skip closing quote

	return result.String(), nil
}

// readNumber reads an unsigned number
func (t *Tokenizer) readNumber() string {
	start := t.pos

	for isDigit(t.ch) {
		t.advance()
	}

	if t.ch == '.' {
		t.advance()
		for isDigit(t.ch) {
			t.advance()
		}
	}

	// The exponent is only consumed when digits follow, so "1e" lexes as 1 and e
	if t.ch == 'e' || t.ch == 'E' {
		next := t.peek()
		if isDigit(next) || ((next == '+' || next == '-') && t.exponentDigitFollowsSign()) {
			t.advance()
			if t.ch == '+' || t.ch == '-' {
				t.advance()
			}
			for isDigit(t.ch) {
				t.advance()
			}
		}
	}

	return t.input[start:t.pos]
}

// exponentDigitFollowsSign checks for a digit two characters ahead
func (t *Tokenizer) exponentDigitFollowsSign() bool {
	i := t.pos + t.width + 1
	return i < len(t.input) && isDigit(rune(t.input[i]))
}

func isIdentifierRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_'
}

// readIdentifier reads an identifier or keyword
func (t *Tokenizer) readIdentifier() string {
	start := t.pos
	for !t.atEOF() && isIdentifierRune(t.ch) {
		t.advance()
	}
	return t.input[start:t.pos]
}

// NextToken returns the next token
func (t *Tokenizer) NextToken() (*Token, error) {
	t.skipWhitespace()

	if t.atEOF() {
		return &Token{Type: TokenEOF, Pos: t.pos}, nil
	}

	pos := t.pos

	if t.ch == '"' {
		value, err := t.readString()
		if err != nil {
			return nil, err
		}
		return &Token{Type: TokenString, Value: value, Pos: pos}, nil
	}

	if isDigit(t.ch) || (t.ch == '.' && isDigit(t.peek())) {
		return &Token{Type: TokenNumber, Value: t.readNumber(), Pos: pos}, nil
	}

	if token := t.tokenizeSpecialChar(pos); token != nil {
		return token, nil
	}

	if unicode.IsLetter(t.ch) || t.ch == '.' || t.ch == '_' {
		return t.tokenizeIdentifierOrKeyword(pos), nil
	}

	return nil, &LexError{Char: t.ch, Offset: t.pos}
}

// tokenizeSpecialChar tokenizes punctuation and operators
func (t *Tokenizer) tokenizeSpecialChar(pos int) *Token {
	switch t.ch {
	case '(':
		t.advance()
		return &Token{Type: TokenLParen, Value: "(", Pos: pos}
	case ')':
		t.advance()
		return &Token{Type: TokenRParen, Value: ")", Pos: pos}
	case ',':
		t.advance()
		return &Token{Type: TokenComma, Value: ",", Pos: pos}
	case '+', '-', '*', '/', '^', '&', '|':
		op := string(t.ch)
		t.advance()
		return &Token{Type: TokenOperator, Value: op, Pos: pos}
	case '<', '>':
		op := string(t.ch)
		t.advance()
		if t.ch == '=' {
			t.advance()
			op += "="
		}
		return &Token{Type: TokenOperator, Value: op, Pos: pos}
	case '=':
		t.advance()
		if t.ch == '=' {
			t.advance()
			return &Token{Type: TokenOperator, Value: "==", Pos: pos}
		}
		return &Token{Type: TokenAssign, Value: "=", Pos: pos}
	case '!':
		// A lone '!' is not part of the operator set
		if t.peek() == '=' {
			t.advance()
			t.advance()
			return &Token{Type: TokenOperator, Value: "!=", Pos: pos}
		}
	}
	return nil
}

// tokenizeIdentifierOrKeyword tokenizes identifiers and the boolean keywords.
// if and else stay identifiers; the parser recognizes them by position.
func (t *Tokenizer) tokenizeIdentifierOrKeyword(pos int) *Token {
	value := t.readIdentifier()

	switch value {
	case "TRUE", "FALSE":
		return &Token{Type: TokenBoolean, Value: value, Pos: pos}
	}

	return &Token{Type: TokenIdentifier, Value: value, Pos: pos}
}

// TokenizeAll returns all tokens from the input, ending with TokenEOF
func (t *Tokenizer) TokenizeAll() ([]*Token, error) {
	var tokens []*Token

	for {
		token, err := t.NextToken()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)

		if token.Type == TokenEOF {
			break
		}
	}

	return tokens, nil
}
