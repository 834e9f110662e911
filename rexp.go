// Package rexp translates R model expressions into a typed expression tree.
//
// Three kinds of source text are supported: arithmetic and logical
// expressions as they appear in derived fields of fitted R models
// (ParseExpression), interval literals such as "(0, 1]" produced by cut()
// (ParseInterval), and interaction terms such as "a:b" taken from model
// formulas (SplitInteractionTerm).
//
// The pure functions are safe for concurrent use and keep no state. A
// Translator adds caching, tracing, metrics and logging on top of them.
package rexp

import (
	"github.com/nlstn/go-rexp/internal/datatype"
	"github.com/nlstn/go-rexp/internal/expr"
	"github.com/nlstn/go-rexp/internal/formula"
)

// Node is a node of a translated expression tree. The set of node types is
// closed; use a type switch over the types below to inspect a tree.
type Node = expr.Node

// Literal re-exports the constant node type.
type Literal = expr.Literal

// VariableRef re-exports the field reference node type.
type VariableRef = expr.VariableRef

// BinaryOp re-exports the binary operator node type.
type BinaryOp = expr.BinaryOp

// NAryOp re-exports the flattened logical operator node type.
type NAryOp = expr.NAryOp

// Conditional re-exports the if/else node type.
type Conditional = expr.Conditional

// Call re-exports the function call node type.
type Call = expr.Call

// Argument re-exports the call argument type.
type Argument = expr.Argument

// IntervalBound re-exports the parsed interval literal type.
type IntervalBound = expr.IntervalBound

// Closure re-exports the interval endpoint closure type.
type Closure = expr.Closure

// Interval endpoint closures.
const (
	Open   = expr.Open
	Closed = expr.Closed
)

// DataType re-exports the data type tag carried by literals.
type DataType = datatype.DataType

// Data types carried by literals and derived from R classes.
const (
	TypeUnknown = datatype.Unknown
	TypeString  = datatype.String
	TypeInteger = datatype.Integer
	TypeDouble  = datatype.Double
	TypeBoolean = datatype.Boolean
)

// Description re-exports the serializable view of a tree.
type Description = expr.Description

// Token is a single lexical token of an expression.
type Token = expr.Token

// Tokenize splits an expression into its tokens. The last token always marks
// the end of input.
func Tokenize(text string) ([]*Token, error) {
	return expr.NewTokenizer(text).TokenizeAll()
}

// ParseExpression translates an R expression into a tree.
//
// When flatten is true, chains of the same logical operator (& or |) are
// collected into a single NAryOp; otherwise they nest as left-associated
// BinaryOps. Grouping parentheses never produce a node.
func ParseExpression(text string, flatten bool) (Node, error) {
	return expr.ParseExpression(text, flatten)
}

// ParseInterval parses an interval literal such as "(-10.0E+0, +10.0E-0]".
// An infinite margin ("Inf", "-Inf", "+Inf") is returned as unbounded.
func ParseInterval(text string) (*IntervalBound, error) {
	return expr.ParseInterval(text)
}

// SplitInteractionTerm splits a formula interaction term such as "A:B" into
// its variable names. A double colon ("pkg::fn") is kept as literal text and
// pieces are not trimmed.
func SplitInteractionTerm(text string) []string {
	return formula.SplitInteractionTerm(text)
}

// FormatApply renders a tree in functional form, e.g. "and(a, b)".
func FormatApply(n Node) string {
	return expr.FormatApply(n)
}

// Describe converts a tree into its serializable Description.
func Describe(n Node) *Description {
	return expr.Describe(n)
}

// Fingerprint returns a structural hash of a tree. Equal trees have equal
// fingerprints regardless of the whitespace of their source text.
func Fingerprint(n Node) uint64 {
	return expr.Fingerprint(n)
}

// DataTypeFromRClass maps an R column class ("factor", "numeric", "logical")
// to its data type.
func DataTypeFromRClass(class string) (DataType, error) {
	return datatype.FromRClass(class)
}
