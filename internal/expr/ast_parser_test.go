package expr

import (
	"testing"

	"github.com/nlstn/go-rexp/internal/datatype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string, flatten bool) Node {
	t.Helper()
	node, err := ParseExpression(input, flatten)
	require.NoError(t, err, "parsing %q", input)
	require.NotNil(t, node)
	return node
}

func TestASTParser_Translate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Power of sum with natural log",
			input:    "(1.0 + log(A / B)) ^ 2",
			expected: "pow(+(1.0, ln(/(A, B))), 2)",
		},
		{
			name:     "Missing value test",
			input:    "if(is.na(x)) TRUE else FALSE",
			expected: "if(isMissing(x), true, false)",
		},
		{
			name:     "And binds tighter than or",
			input:    "a >= 0.0 & b >= 0.0 | c <= 0.0",
			expected: "or(and(greaterOrEqual(a, 0.0), greaterOrEqual(b, 0.0)), lessOrEqual(c, 0.0))",
		},
		{
			name:     "Else if chain nests right",
			input:    `if(x < 0) "negative" else if(x > 0) "positive" else "zero"`,
			expected: `if(lessThan(x, 0), "negative", if(greaterThan(x, 0), "positive", "zero"))`,
		},
		{
			name:     "Additive chain is left associative",
			input:    "A + B - X + C",
			expected: "+(-(+(A, B), X), C)",
		},
		{
			name:     "Multiplicative chain is left associative",
			input:    "a / b * c / d",
			expected: "/(*(/(a, b), c), d)",
		},
		{
			name:     "Power is right associative",
			input:    "2^3^2",
			expected: "pow(2, pow(3, 2))",
		},
		{
			name:     "Unary minus wraps the power",
			input:    "-2^-3",
			expected: "*(-1, pow(2, -3))",
		},
		{
			name:     "Unary minus power then multiply",
			input:    "-2^-2*1.5",
			expected: "*(*(-1, pow(2, -2)), 1.5)",
		},
		{
			name:     "Negated variable in exponent",
			input:    "2^-x",
			expected: "pow(2, *(-1, x))",
		},
		{
			name:     "Signed exponent that is itself a power",
			input:    "2^-3^2",
			expected: "pow(2, *(-1, pow(3, 2)))",
		},
		{
			name:     "Unary minus binds tighter than multiplication",
			input:    "-x * y",
			expected: "*(*(-1, x), y)",
		},
		{
			name:     "Subtracting a negation",
			input:    "a - -b",
			expected: "-(a, *(-1, b))",
		},
		{
			name:     "Unary plus is dropped",
			input:    "+x + 2^+3",
			expected: "+(x, pow(2, 3))",
		},
		{
			name:     "Or of true and and",
			input:    "TRUE | TRUE & FALSE",
			expected: "or(true, and(true, false))",
		},
		{
			name:     "Parentheses override precedence",
			input:    "(TRUE | TRUE) & FALSE",
			expected: "and(or(true, true), false)",
		},
		{
			name:     "Comparison chain nests left",
			input:    "a < b < c",
			expected: "lessThan(lessThan(a, b), c)",
		},
		{
			name:     "Not equal",
			input:    "x != 1 & y == 2",
			expected: "and(notEqual(x, 1), equal(y, 2))",
		},
		{
			name:     "Conditional as operand",
			input:    "1 + if (a) 2 else 3",
			expected: "+(1, if(a, 2, 3))",
		},
		{
			name:     "Else branch takes the rest of the expression",
			input:    "if (a) 2 else 3 + 4",
			expected: "if(a, 2, +(3, 4))",
		},
		{
			name:     "Nested conditional in then branch",
			input:    "if (a) if (b) 1 else 2 else 3",
			expected: "if(a, if(b, 1, 2), 3)",
		},
		{
			name:     "Two argument log is not remapped",
			input:    "log(x, 10) + log10(y)",
			expected: "+(log(x, 10), log10(y))",
		},
		{
			name:     "Ceiling remaps to ceil",
			input:    "ceiling(x) - floor(x)",
			expected: "-(ceil(x), floor(x))",
		},
		{
			name:     "Empty argument list",
			input:    "f()",
			expected: "f()",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mustParse(t, tt.input, false)
			assert.Equal(t, tt.expected, FormatApply(node))
		})
	}
}

func TestASTParser_Flatten(t *testing.T) {
	input := "(x == 0) | ((x == 1) | (x == 2)) | x == 3"

	nested := mustParse(t, input, false)
	top, ok := nested.(*BinaryOp)
	require.True(t, ok, "expected *BinaryOp, got %T", nested)
	assert.Equal(t, "|", top.Operator)
	assert.Equal(t, "or", top.Function())
	left, ok := top.Left.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "|", left.Operator)
	assert.Equal(t, "equal(x, 3)", FormatApply(top.Right))

	flat := mustParse(t, input, true)
	run, ok := flat.(*NAryOp)
	require.True(t, ok, "expected *NAryOp, got %T", flat)
	assert.Equal(t, "or", run.Function())
	require.Len(t, run.Operands, 4)
	for i, operand := range run.Operands {
		op, ok := operand.(*BinaryOp)
		require.True(t, ok)
		assert.Equal(t, "==", op.Operator, "operand %d", i)
	}
	assert.Equal(t, "or(equal(x, 0), equal(x, 1), equal(x, 2), equal(x, 3))", FormatApply(flat))
}

func TestASTParser_FlattenDoesNotCrossOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a & b & c | d | e", "or(and(a, b, c), d, e)"},
		{"a | (b & c & d) | e", "or(a, and(b, c, d), e)"},
		{"(a | b) & (c | d)", "and(or(a, b), or(c, d))"},
		{"a | b", "or(a, b)"},
		{"((a | b | c))", "or(a, b, c)"},
		{"a + b + c", "+(+(a, b), c)"},
		{"a < b < c", "lessThan(lessThan(a, b), c)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatApply(mustParse(t, tt.input, true)))
		})
	}

	// A run of two stays binary
	_, ok := mustParse(t, "a | b", true).(*BinaryOp)
	assert.True(t, ok)
}

func TestASTParser_Literals(t *testing.T) {
	tests := []struct {
		input    string
		text     string
		dataType datatype.DataType
		isString bool
	}{
		{input: "2", text: "2", dataType: datatype.Unknown},
		{input: "1.0", text: "1.0", dataType: datatype.Double},
		{input: "1e5", text: "1e5", dataType: datatype.Double},
		{input: "TRUE", text: "true", dataType: datatype.Boolean},
		{input: "FALSE", text: "false", dataType: datatype.Boolean},
		{input: `"negative"`, text: "negative", dataType: datatype.Unknown, isString: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit, ok := mustParse(t, tt.input, false).(*Literal)
			require.True(t, ok)
			assert.Equal(t, tt.text, lit.Text)
			assert.Equal(t, tt.dataType, lit.Type)
			assert.Equal(t, tt.isString, lit.IsString())
		})
	}
}

func TestASTParser_CanonicalNegation(t *testing.T) {
	node := mustParse(t, "-2^-3", false)

	mul, ok := node.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Operator)

	minusOne, ok := mul.Left.(*Literal)
	require.True(t, ok)
	assert.Equal(t, "-1", minusOne.Text)
	assert.Equal(t, datatype.Unknown, minusOne.Type)

	pow, ok := mul.Right.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "pow", pow.Function())

	exponent, ok := pow.Right.(*Literal)
	require.True(t, ok)
	assert.Equal(t, "-3", exponent.Text)
	assert.Equal(t, datatype.Unknown, exponent.Type)
}

func TestASTParser_VariableNamesKeepCase(t *testing.T) {
	node := mustParse(t, "Sepal.Length * sepal_width", false)
	assert.Equal(t, "*(Sepal.Length, sepal_width)", FormatApply(node))

	op := node.(*BinaryOp)
	assert.Equal(t, &VariableRef{Name: "Sepal.Length"}, op.Left)
}

func TestASTParser_FunctionArguments(t *testing.T) {
	node := mustParse(t, `parent(first = child(A, log(A)), child(1 + B, right = 0), "third" = child(left = 0, c(A, B, C)))`, false)

	parent, ok := node.(*Call)
	require.True(t, ok)
	assert.Equal(t, "parent", parent.Name)
	assert.Equal(t, "parent", parent.Function)
	assert.False(t, parent.Builtin())
	require.Len(t, parent.Arguments, 3)

	first, err := parent.ArgumentByTag("first")
	require.NoError(t, err)

	_, err = parent.ArgumentByTag("second")
	require.ErrorIs(t, err, ErrLookup)
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "second", lookupErr.Tag)

	second, err := parent.ArgumentAt(1)
	require.NoError(t, err)

	third, err := parent.ArgumentByTag("third")
	require.NoError(t, err)

	assert.Equal(t, "first = child(A, log(A))", first.Format())
	assert.Equal(t, "child(A, log(A))", first.FormatExpression())

	assert.Equal(t, "child(1 + B, right = 0)", second.Format())
	assert.Equal(t, "child(1 + B, right = 0)", second.FormatExpression())
	assert.False(t, second.Tagged)

	assert.Equal(t, `"third" = child(left = 0, c(A, B, C))`, third.Format())
	assert.Equal(t, "child(left = 0, c(A, B, C))", third.FormatExpression())
	assert.Equal(t, "third", third.Tag)

	child := first.Expr.(*Call)
	require.Len(t, child.Arguments, 2)
	assert.Equal(t, &VariableRef{Name: "A"}, child.Arguments[0].Expr)
	ln := child.Arguments[1].Expr.(*Call)
	assert.Equal(t, "log", ln.Name)
	assert.Equal(t, "ln", ln.Function)
	assert.True(t, ln.Builtin())

	child = second.Expr.(*Call)
	assert.False(t, child.Arguments[0].Tagged)
	assert.Equal(t, "+(1, B)", FormatApply(child.Arguments[0].Expr))
	assert.Equal(t, "right", child.Arguments[1].Tag)

	child = third.Expr.(*Call)
	assert.Equal(t, "left", child.Arguments[0].Tag)
	c := child.Arguments[1].Expr.(*Call)
	assert.Len(t, c.Arguments, 3)

	_, err = parent.ArgumentAt(3)
	assert.ErrorIs(t, err, ErrLookup)
	_, err = parent.ArgumentAt(-1)
	assert.ErrorIs(t, err, ErrLookup)
}

func TestLookupError_Message(t *testing.T) {
	call := mustParse(t, "f(a = 1, 2)", false).(*Call)

	_, err := call.ArgumentByTag("b")
	require.Error(t, err)
	assert.Equal(t, `function f has no argument tagged "b"`, err.Error())

	for _, index := range []int{-1, 2} {
		_, err = call.ArgumentAt(index)
		require.Error(t, err)
		var lookupErr *LookupError
		require.ErrorAs(t, err, &lookupErr)
		assert.False(t, lookupErr.ByTag)
		assert.Equal(t, index, lookupErr.Index)
		assert.Contains(t, err.Error(), "has no argument at index")
	}
}

func TestLiteral_Decimal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{input: "1.0", expected: "1"},
		{input: "1e5", expected: "100000"},
		{input: "2.5e-3", expected: "0.0025"},
		{input: `"abc"`, wantErr: true},
		{input: "TRUE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit, ok := mustParse(t, tt.input, false).(*Literal)
			require.True(t, ok)

			value, err := lit.Decimal()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, value.Equal(decimal.RequireFromString(tt.expected)), "got %s", value)
		})
	}
}

func TestASTParser_ArgumentLookupOnUntagged(t *testing.T) {
	call := mustParse(t, "f(a = 1, 2)", false).(*Call)

	_, err := call.ArgumentByTag("")
	assert.ErrorIs(t, err, ErrLookup)

	arg, err := call.ArgumentAt(1)
	require.NoError(t, err)
	assert.False(t, arg.Tagged)
	assert.Equal(t, "2", arg.Format())
}

func TestASTParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		offset   int
		expected string
	}{
		{name: "Empty input", input: "", offset: 0, expected: "expression"},
		{name: "Missing operand", input: "1 +", offset: 3, expected: "expression"},
		{name: "Missing left operand", input: "* 2", offset: 0, expected: "expression"},
		{name: "Unmatched open parenthesis", input: "(1 + 2", offset: 6, expected: "')'"},
		{name: "Unmatched close parenthesis", input: "1 + 2)", offset: 5, expected: "end of input"},
		{name: "If without else", input: "if (x) 1", offset: 8, expected: "'else'"},
		{name: "If without parentheses", input: "if x 1 else 2", offset: 3, expected: "'('"},
		{name: "Else without if", input: "else 1", offset: 0, expected: "expression"},
		{name: "Trailing comma in call", input: "f(a,)", offset: 4, expected: "expression"},
		{name: "Missing comma in call", input: "f(a b)", offset: 4, expected: "',' or ')' in call to f"},
		{name: "Unclosed call", input: "f(a", offset: 3, expected: "',' or ')' in call to f"},
		{name: "Dangling power", input: "2 ^", offset: 3, expected: "expression"},
		{name: "Double minus", input: "--2", offset: 1, expected: "expression"},
		{name: "Trailing tokens", input: "a b", offset: 2, expected: "end of input"},
		{name: "Assignment outside call", input: "a = 1", offset: 2, expected: "end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseExpression(tt.input, false)
			assert.Nil(t, node)
			require.ErrorIs(t, err, ErrSyntax)

			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tt.offset, syntaxErr.Offset)
			assert.Equal(t, tt.expected, syntaxErr.Expected)
			assert.NotEmpty(t, syntaxErr.Found)
		})
	}
}

func TestASTParser_LexErrorsPropagate(t *testing.T) {
	_, err := ParseExpression("a # b", true)
	require.ErrorIs(t, err, ErrLex)
	assert.NotErrorIs(t, err, ErrSyntax)
}
