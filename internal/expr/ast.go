package expr

import (
	"github.com/nlstn/go-rexp/internal/datatype"
	"github.com/shopspring/decimal"
)

// Node represents a node in the expression tree. The set of implementations
// is closed: Literal, VariableRef, BinaryOp, NAryOp, Conditional, Call and
// IntervalBound. Trees are never mutated after the parser returns them.
type Node interface {
	node()
	// String renders the node back to R source
	String() string
}

// Literal represents a constant. Type is datatype.Double for numbers written
// with a decimal point or exponent, datatype.Boolean for TRUE and FALSE, and
// datatype.Unknown for plain integers and strings.
type Literal struct {
	Text string
	Type datatype.DataType

	quoted bool
}

func (e *Literal) node() {}

// IsString reports whether the literal was written as a quoted string
func (e *Literal) IsString() bool {
	return e.quoted
}

// Decimal returns the exact numeric value of the literal
func (e *Literal) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(e.Text)
}

// VariableRef represents a reference to a model field
type VariableRef struct {
	Name string
}

func (e *VariableRef) node() {}

// BinaryOp represents an infix operation (e.g., A + B, x <= 0)
type BinaryOp struct {
	Operator string
	Left     Node
	Right    Node
}

func (e *BinaryOp) node() {}

// Function returns the markup function the operator maps to
func (e *BinaryOp) Function() string {
	return operatorFunction(e.Operator)
}

// NAryOp represents a flattened run of one commutative operator (& or |)
type NAryOp struct {
	Operator string
	Operands []Node
}

func (e *NAryOp) node() {}

// Function returns the markup function the operator maps to
func (e *NAryOp) Function() string {
	return operatorFunction(e.Operator)
}

// Conditional represents if (Condition) Then else Else
type Conditional struct {
	Condition Node
	Then      Node
	Else      Node
}

func (e *Conditional) node() {}

// Function returns the markup function for conditionals
func (e *Conditional) Function() string {
	return "if"
}

// Argument is one argument of a Call. Tag is stored unquoted.
type Argument struct {
	Tag    string
	Tagged bool
	Expr   Node

	quotedTag bool
}

// Call represents a function call. Name is the function as written;
// Function is the name after the fixed remap table.
type Call struct {
	Name      string
	Function  string
	Arguments []Argument
}

func (e *Call) node() {}

// Builtin reports whether the call maps onto a markup built-in function
func (e *Call) Builtin() bool {
	_, ok := builtinFunction(e.Name, len(e.Arguments))
	return ok
}

// ArgumentByTag returns the first argument whose tag equals name
func (e *Call) ArgumentByTag(name string) (Argument, error) {
	for _, arg := range e.Arguments {
		if arg.Tagged && arg.Tag == name {
			return arg, nil
		}
	}
	return Argument{}, &LookupError{Function: e.Name, ByTag: true, Tag: name}
}

// ArgumentAt returns the argument at a zero-based position, counting tagged
// and untagged arguments alike
func (e *Call) ArgumentAt(index int) (Argument, error) {
	if index < 0 || index >= len(e.Arguments) {
		return Argument{}, &LookupError{Function: e.Name, Index: index}
	}
	return e.Arguments[index], nil
}

// Closure tells whether an interval margin is part of the interval
type Closure int

const (
	Open Closure = iota
	Closed
)

func (c Closure) String() string {
	if c == Closed {
		return "closed"
	}
	return "open"
}

// IntervalBound represents an interval literal. A margin that is not Valid
// is unbounded on that side.
type IntervalBound struct {
	LeftClosure  Closure
	RightClosure Closure
	Left         decimal.NullDecimal
	Right        decimal.NullDecimal
}

func (e *IntervalBound) node() {}

var closureNames = [2][2]string{
	Open:   {Open: "openOpen", Closed: "openClosed"},
	Closed: {Open: "closedOpen", Closed: "closedClosed"},
}

// Closure returns the markup closure name (e.g., "openClosed")
func (e *IntervalBound) Closure() string {
	return closureNames[e.LeftClosure][e.RightClosure]
}

// LeftMargin returns the left margin as a float64, or nil when unbounded
func (e *IntervalBound) LeftMargin() *float64 {
	return marginFloat(e.Left)
}

// RightMargin returns the right margin as a float64, or nil when unbounded
func (e *IntervalBound) RightMargin() *float64 {
	return marginFloat(e.Right)
}

func marginFloat(m decimal.NullDecimal) *float64 {
	if !m.Valid {
		return nil
	}
	f := m.Decimal.InexactFloat64()
	return &f
}
