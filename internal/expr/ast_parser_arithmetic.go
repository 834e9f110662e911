package expr

import (
	"strings"

	"github.com/nlstn/go-rexp/internal/datatype"
)

var comparisonOperators = map[string]bool{
	"<":  true,
	">":  true,
	"<=": true,
	">=": true,
	"==": true,
	"!=": true,
}

// parseComparison handles comparison expressions. Chains such as a < b < c
// nest to the left like the arithmetic tiers.
func (p *ASTParser) parseComparison() (Node, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for p.currentToken().Type == TokenOperator && comparisonOperators[p.currentToken().Value] {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Operator: op.Value,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

// parseAdditive handles binary + and -
func (p *ASTParser) parseAdditive() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.currentToken().is(TokenOperator, "+") || p.currentToken().is(TokenOperator, "-") {
		op := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Operator: op.Value,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

// parseTerm handles multiplication and division
func (p *ASTParser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for p.currentToken().is(TokenOperator, "*") || p.currentToken().is(TokenOperator, "/") {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Operator: op.Value,
			Left:     left,
			Right:    right,
		}
	}

	return left, nil
}

// parseUnary handles prefix signs. Minus becomes a multiplication by -1
// because the markup has no negation function. The operand is a whole
// power expression, so -2^2 is -(2^2).
func (p *ASTParser) parseUnary() (Node, error) {
	token := p.currentToken()

	switch {
	case token.is(TokenOperator, "-"):
		p.advance()
		operand, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return negate(operand), nil
	case token.is(TokenOperator, "+"):
		p.advance()
		return p.parsePower()
	}

	return p.parsePower()
}

func negate(operand Node) Node {
	return &BinaryOp{
		Operator: "*",
		Left:     &Literal{Text: "-1"},
		Right:    operand,
	}
}

// parsePower handles right-associative exponentiation
func (p *ASTParser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	if !p.currentToken().is(TokenOperator, "^") {
		return base, nil
	}
	p.advance()

	exponent, err := p.parseExponent()
	if err != nil {
		return nil, err
	}

	return &BinaryOp{
		Operator: "^",
		Left:     base,
		Right:    exponent,
	}, nil
}

// parseExponent parses the right operand of ^. A sign directly in front of a
// number folds into a signed literal (2^-3 keeps the constant -3), unless the
// number is itself raised to a power.
func (p *ASTParser) parseExponent() (Node, error) {
	sign := p.currentToken()
	if sign.is(TokenOperator, "-") || sign.is(TokenOperator, "+") {
		number := p.peekToken(1)
		if number.Type == TokenNumber && !p.peekToken(2).is(TokenOperator, "^") {
			p.advance()
			p.advance()
			text := number.Value
			if sign.Value == "-" {
				text = "-" + text
			}
			return numberLiteral(text), nil
		}
	}

	return p.parseUnary()
}

// numberLiteral builds a numeric literal, typed double when the text has a
// decimal point or an exponent
func numberLiteral(text string) *Literal {
	lit := &Literal{Text: text}
	if strings.ContainsAny(text, ".eE") {
		lit.Type = datatype.Double
	}
	return lit
}
