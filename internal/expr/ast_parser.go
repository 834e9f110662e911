package expr

// ASTParser parses R expressions into a Node tree.
//
// Precedence, loosest first:
//
//	|                      left
//	&                      left
//	< > <= >= == !=        left
//	+ - (binary)           left
//	* /                    left
//	- (prefix)             binds to a power expression
//	^                      right, exponent re-enters at prefix level
//
// if (cond) expr else expr is parsed as a primary.
type ASTParser struct {
	tokens  []*Token
	current int
	flatten bool
}

// NewASTParser creates a new AST parser. When flatten is set, runs of the
// same & or | operator collapse into a single NAryOp.
func NewASTParser(tokens []*Token, flatten bool) *ASTParser {
	return &ASTParser{
		tokens:  tokens,
		current: 0,
		flatten: flatten,
	}
}

// currentToken returns the current token
func (p *ASTParser) currentToken() *Token {
	return p.peekToken(0)
}

// peekToken returns the token n positions after the current one
func (p *ASTParser) peekToken(n int) *Token {
	i := p.current + n
	if i >= len(p.tokens) {
		pos := 0
		if len(p.tokens) > 0 {
			pos = p.tokens[len(p.tokens)-1].Pos
		}
		return &Token{Type: TokenEOF, Pos: pos}
	}
	return p.tokens[i]
}

// advance moves to the next token
func (p *ASTParser) advance() *Token {
	token := p.currentToken()
	if p.current < len(p.tokens) {
		p.current++
	}
	return token
}

// expect checks if the current token matches the expected type and advances
func (p *ASTParser) expect(tokenType TokenType) (*Token, error) {
	token := p.currentToken()
	if token.Type != tokenType {
		return nil, syntaxErrorf(token, "%s", tokenType)
	}
	return p.advance(), nil
}

// expectKeyword consumes an identifier token with the given text
func (p *ASTParser) expectKeyword(keyword string) error {
	token := p.currentToken()
	if !token.is(TokenIdentifier, keyword) {
		return syntaxErrorf(token, "'%s'", keyword)
	}
	p.advance()
	return nil
}

// Parse parses the tokens into an AST
func (p *ASTParser) Parse() (Node, error) {
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	// Verify all tokens were consumed (except EOF)
	if token := p.currentToken(); token.Type != TokenEOF {
		return nil, syntaxErrorf(token, "end of input")
	}

	return node, nil
}

// ParseExpression tokenizes and parses input in one step
func ParseExpression(input string, flatten bool) (Node, error) {
	tokens, err := NewTokenizer(input).TokenizeAll()
	if err != nil {
		return nil, err
	}

	return NewASTParser(tokens, flatten).Parse()
}
