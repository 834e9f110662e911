package expr

// Description is a serializable view of a tree, used by tools that print
// parse results as YAML or JSON.
type Description struct {
	Kind     string         `json:"kind" yaml:"kind"`
	Function string         `json:"function,omitempty" yaml:"function,omitempty"`
	Name     string         `json:"name,omitempty" yaml:"name,omitempty"`
	Value    string         `json:"value,omitempty" yaml:"value,omitempty"`
	Type     string         `json:"type,omitempty" yaml:"type,omitempty"`
	Tag      string         `json:"tag,omitempty" yaml:"tag,omitempty"`
	Closure  string         `json:"closure,omitempty" yaml:"closure,omitempty"`
	Left     *string        `json:"left,omitempty" yaml:"left,omitempty"`
	Right    *string        `json:"right,omitempty" yaml:"right,omitempty"`
	Operands []*Description `json:"operands,omitempty" yaml:"operands,omitempty"`
}

// Node kinds used in descriptions
const (
	KindLiteral     = "literal"
	KindVariable    = "variable"
	KindBinary      = "binary"
	KindNAry        = "nary"
	KindConditional = "conditional"
	KindCall        = "call"
	KindInterval    = "interval"
)

// Describe converts a tree into its Description
func Describe(n Node) *Description {
	switch e := n.(type) {
	case *Literal:
		d := &Description{Kind: KindLiteral, Value: e.Text}
		if e.Type.IsKnown() {
			d.Type = e.Type.String()
		}
		return d
	case *VariableRef:
		return &Description{Kind: KindVariable, Name: e.Name}
	case *BinaryOp:
		return &Description{
			Kind:     KindBinary,
			Function: e.Function(),
			Operands: []*Description{Describe(e.Left), Describe(e.Right)},
		}
	case *NAryOp:
		operands := make([]*Description, len(e.Operands))
		for i, operand := range e.Operands {
			operands[i] = Describe(operand)
		}
		return &Description{Kind: KindNAry, Function: e.Function(), Operands: operands}
	case *Conditional:
		return &Description{
			Kind:     KindConditional,
			Function: e.Function(),
			Operands: []*Description{Describe(e.Condition), Describe(e.Then), Describe(e.Else)},
		}
	case *Call:
		operands := make([]*Description, len(e.Arguments))
		for i, arg := range e.Arguments {
			operands[i] = Describe(arg.Expr)
			if arg.Tagged {
				operands[i].Tag = arg.Tag
			}
		}
		return &Description{Kind: KindCall, Name: e.Name, Function: e.Function, Operands: operands}
	case *IntervalBound:
		d := &Description{Kind: KindInterval, Closure: e.Closure()}
		if e.Left.Valid {
			s := e.Left.Decimal.String()
			d.Left = &s
		}
		if e.Right.Valid {
			s := e.Right.Decimal.String()
			d.Right = &s
		}
		return d
	}
	return nil
}
