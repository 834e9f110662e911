package expr

// parseOr handles | expressions (lowest precedence)
func (p *ASTParser) parseOr() (Node, error) {
	return p.parseChain("|", p.parseAnd)
}

// parseAnd handles & expressions
func (p *ASTParser) parseAnd() (Node, error) {
	return p.parseChain("&", p.parseComparison)
}

// parseChain parses operand (op operand)*. Without flattening the result is a
// left-nested BinaryOp chain. With flattening, operands that are themselves
// runs of op (from parentheses) are spliced into the surrounding run.
func (p *ASTParser) parseChain(op string, operand func() (Node, error)) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	if !p.flatten {
		for p.currentToken().is(TokenOperator, op) {
			p.advance()
			right, err := operand()
			if err != nil {
				return nil, err
			}
			left = &BinaryOp{
				Operator: op,
				Left:     left,
				Right:    right,
			}
		}
		return left, nil
	}

	if !p.currentToken().is(TokenOperator, op) {
		return left, nil
	}

	operands := appendRun(nil, op, left)
	for p.currentToken().is(TokenOperator, op) {
		p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		operands = appendRun(operands, op, right)
	}

	return newRun(op, operands), nil
}

// appendRun appends n to operands, splicing n when it is a run of op
func appendRun(operands []Node, op string, n Node) []Node {
	switch e := n.(type) {
	case *NAryOp:
		if e.Operator == op {
			return append(operands, e.Operands...)
		}
	case *BinaryOp:
		if e.Operator == op {
			return append(operands, e.Left, e.Right)
		}
	}
	return append(operands, n)
}

// newRun builds the node for a flattened run
func newRun(op string, operands []Node) Node {
	if len(operands) == 2 {
		return &BinaryOp{
			Operator: op,
			Left:     operands[0],
			Right:    operands[1],
		}
	}
	return &NAryOp{
		Operator: op,
		Operands: operands,
	}
}
