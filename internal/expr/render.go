package expr

import (
	"strings"

	"github.com/nlstn/go-rexp/internal/datatype"
	"github.com/shopspring/decimal"
)

// Rendering precedence, higher binds tighter
const (
	precConditional = iota
	precOr
	precAnd
	precComparison
	precAdditive
	precMultiplicative
	precUnary
	precPower
	precPrimary
)

func operatorPrecedence(op string) int {
	switch op {
	case "|":
		return precOr
	case "&":
		return precAnd
	case "+", "-":
		return precAdditive
	case "*", "/":
		return precMultiplicative
	case "^":
		return precPower
	}
	if comparisonOperators[op] {
		return precComparison
	}
	return precPrimary
}

func precedence(n Node) int {
	switch e := n.(type) {
	case *BinaryOp:
		return operatorPrecedence(e.Operator)
	case *NAryOp:
		return operatorPrecedence(e.Operator)
	case *Conditional:
		// the else branch extends to the end, so a conditional operand always needs parentheses
		return precConditional
	case *Literal:
		if !e.quoted && strings.HasPrefix(e.Text, "-") {
			return precUnary
		}
	}
	return precPrimary
}

// renderOperand renders n, parenthesized when it binds looser than min
func renderOperand(n Node, min int) string {
	s := n.String()
	if precedence(n) < min {
		return "(" + s + ")"
	}
	return s
}

func (e *Literal) String() string {
	switch {
	case e.quoted:
		return `"` + e.Text + `"`
	case e.Type == datatype.Boolean:
		return strings.ToUpper(e.Text)
	}
	return e.Text
}

func (e *VariableRef) String() string {
	return e.Name
}

func (e *BinaryOp) String() string {
	prec := operatorPrecedence(e.Operator)
	if e.Operator == "^" {
		return renderOperand(e.Left, prec+1) + "^" + renderOperand(e.Right, precUnary)
	}
	return renderOperand(e.Left, prec) + " " + e.Operator + " " + renderOperand(e.Right, prec+1)
}

func (e *NAryOp) String() string {
	prec := operatorPrecedence(e.Operator)
	parts := make([]string, len(e.Operands))
	for i, operand := range e.Operands {
		parts[i] = renderOperand(operand, prec+1)
	}
	return strings.Join(parts, " "+e.Operator+" ")
}

func (e *Conditional) String() string {
	return "if (" + e.Condition.String() + ") " + e.Then.String() + " else " + e.Else.String()
}

func (e *Call) String() string {
	parts := make([]string, len(e.Arguments))
	for i, arg := range e.Arguments {
		parts[i] = arg.Format()
	}
	return e.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Format renders the argument as "tag = expr", or just the expression when untagged
func (a Argument) Format() string {
	if !a.Tagged {
		return a.FormatExpression()
	}
	return a.formatTag() + " = " + a.FormatExpression()
}

func (a Argument) formatTag() string {
	if a.quotedTag {
		return `"` + a.Tag + `"`
	}
	return a.Tag
}

// FormatExpression renders only the argument's expression
func (a Argument) FormatExpression() string {
	if a.Expr == nil {
		return ""
	}
	return a.Expr.String()
}

func (e *IntervalBound) String() string {
	var sb strings.Builder
	if e.LeftClosure == Closed {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	sb.WriteString(formatMargin(e.Left, "-Inf"))
	sb.WriteString(", ")
	sb.WriteString(formatMargin(e.Right, "Inf"))
	if e.RightClosure == Closed {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}

func formatMargin(m decimal.NullDecimal, unbounded string) string {
	if !m.Valid {
		return unbounded
	}
	return m.Decimal.String()
}

// FormatApply renders a tree in functional markup form, with every operator
// spelled as its function name, e.g. or(and(greaterOrEqual(a, 0.0), b), c)
func FormatApply(n Node) string {
	var sb strings.Builder
	writeApply(&sb, n)
	return sb.String()
}

func writeApply(sb *strings.Builder, n Node) {
	switch e := n.(type) {
	case *Literal:
		sb.WriteString(e.applyText())
	case *VariableRef:
		sb.WriteString(e.Name)
	case *BinaryOp:
		writeApplyCall(sb, e.Function(), e.Left, e.Right)
	case *NAryOp:
		writeApplyCall(sb, e.Function(), e.Operands...)
	case *Conditional:
		writeApplyCall(sb, e.Function(), e.Condition, e.Then, e.Else)
	case *Call:
		sb.WriteString(e.Function)
		sb.WriteByte('(')
		for i, arg := range e.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			if arg.Tagged {
				sb.WriteString(arg.formatTag())
				sb.WriteString(" = ")
			}
			writeApply(sb, arg.Expr)
		}
		sb.WriteByte(')')
	case *IntervalBound:
		sb.WriteString(e.String())
	}
}

func writeApplyCall(sb *strings.Builder, fn string, operands ...Node) {
	sb.WriteString(fn)
	sb.WriteByte('(')
	for i, operand := range operands {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeApply(sb, operand)
	}
	sb.WriteByte(')')
}

// applyText renders the literal as a markup constant
func (e *Literal) applyText() string {
	if e.quoted {
		return `"` + e.Text + `"`
	}
	return e.Text
}
