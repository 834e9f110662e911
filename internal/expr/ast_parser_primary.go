package expr

import "github.com/nlstn/go-rexp/internal/datatype"

// parsePrimary handles literals, variables, calls, conditionals and grouped expressions
func (p *ASTParser) parsePrimary() (Node, error) {
	token := p.currentToken()

	switch token.Type {
	case TokenLParen:
		return p.parseGroupedExpression()
	case TokenNumber:
		p.advance()
		return numberLiteral(token.Value), nil
	case TokenString:
		p.advance()
		return &Literal{Text: token.Value, quoted: true}, nil
	case TokenBoolean:
		p.advance()
		text := "false"
		if token.Value == "TRUE" {
			text = "true"
		}
		return &Literal{Text: text, Type: datatype.Boolean}, nil
	case TokenIdentifier:
		return p.parseIdentifier(token)
	}

	return nil, syntaxErrorf(token, "expression")
}

// parseGroupedExpression parses (expr). No node is kept for the parentheses.
func (p *ASTParser) parseGroupedExpression() (Node, error) {
	p.advance() // consume '('
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIdentifier parses a variable reference, a call or a conditional
func (p *ASTParser) parseIdentifier(token *Token) (Node, error) {
	switch token.Value {
	case "if":
		return p.parseConditional()
	case "else":
		return nil, syntaxErrorf(token, "expression")
	}

	p.advance()

	if p.currentToken().Type == TokenLParen {
		return p.parseCall(token.Value)
	}

	return &VariableRef{Name: token.Value}, nil
}

// parseConditional parses if (cond) expr else expr. The else branch is a
// full expression, so else if chains nest to the right.
func (p *ASTParser) parseConditional() (Node, error) {
	p.advance() // consume 'if'

	if _, err := p.expect(TokenLParen); err != nil {
		return nil, err
	}
	condition, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return nil, err
	}

	then, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword("else"); err != nil {
		return nil, err
	}

	otherwise, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	return &Conditional{
		Condition: condition,
		Then:      then,
		Else:      otherwise,
	}, nil
}

// parseCall parses name(arg, tag = arg, "tag" = arg)
func (p *ASTParser) parseCall(name string) (Node, error) {
	p.advance() // consume '('

	var args []Argument

	if p.currentToken().Type != TokenRParen {
		for {
			arg, err := p.parseArgument()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.currentToken().Type != TokenComma {
				break
			}
			p.advance()
		}
	}

	if p.currentToken().Type != TokenRParen {
		return nil, syntaxErrorf(p.currentToken(), "',' or ')' in call to %s", name)
	}
	p.advance()

	return &Call{
		Name:      name,
		Function:  remapFunction(name, len(args)),
		Arguments: args,
	}, nil
}

// parseArgument parses one call argument, tagged when an identifier or
// string is followed by '='
func (p *ASTParser) parseArgument() (Argument, error) {
	token := p.currentToken()

	var arg Argument
	if (token.Type == TokenIdentifier || token.Type == TokenString) && p.peekToken(1).Type == TokenAssign {
		p.advance()
		p.advance()
		arg.Tag = token.Value
		arg.Tagged = true
		arg.quotedTag = token.Type == TokenString
	}

	expr, err := p.parseOr()
	if err != nil {
		return Argument{}, err
	}
	arg.Expr = expr

	return arg, nil
}
