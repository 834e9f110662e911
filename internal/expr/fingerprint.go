package expr

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a content hash of the tree. Structurally equal trees,
// including literal types and argument tags, hash to the same value, so the
// result can key caches of artifacts derived from a tree.
func Fingerprint(n Node) uint64 {
	d := xxhash.New()
	writeFingerprint(d, n)
	return d.Sum64()
}

// writeField writes a length-prefixed string so adjacent fields cannot run together
func writeField(d *xxhash.Digest, s string) {
	_, _ = d.WriteString(strconv.Itoa(len(s)))
	_, _ = d.WriteString(":")
	_, _ = d.WriteString(s)
}

func writeFingerprint(d *xxhash.Digest, n Node) {
	switch e := n.(type) {
	case *Literal:
		writeField(d, "lit")
		writeField(d, e.Text)
		writeField(d, string(e.Type))
		writeField(d, strconv.FormatBool(e.quoted))
	case *VariableRef:
		writeField(d, "ref")
		writeField(d, e.Name)
	case *BinaryOp:
		writeField(d, "bin")
		writeField(d, e.Operator)
		writeFingerprint(d, e.Left)
		writeFingerprint(d, e.Right)
	case *NAryOp:
		writeField(d, "nary")
		writeField(d, e.Operator)
		writeField(d, strconv.Itoa(len(e.Operands)))
		for _, operand := range e.Operands {
			writeFingerprint(d, operand)
		}
	case *Conditional:
		writeField(d, "if")
		writeFingerprint(d, e.Condition)
		writeFingerprint(d, e.Then)
		writeFingerprint(d, e.Else)
	case *Call:
		writeField(d, "call")
		writeField(d, e.Function)
		writeField(d, strconv.Itoa(len(e.Arguments)))
		for _, arg := range e.Arguments {
			writeField(d, strconv.FormatBool(arg.Tagged))
			writeField(d, arg.Tag)
			writeFingerprint(d, arg.Expr)
		}
	case *IntervalBound:
		writeField(d, "interval")
		writeField(d, e.String())
	default:
		writeField(d, "nil")
	}
}
