// Package formula handles the variable names that appear in R model formulas.
package formula

import "strings"

// SplitInteractionTerm splits an interaction term such as "A:B" into its
// variable names. A single ':' separates names, while a run of exactly two
// (as in the namespace operator pkg::fn) is kept as literal text.
//
//	SplitInteractionTerm(":")      -> ["", ""]
//	SplitInteractionTerm("::")     -> ["::"]
//	SplitInteractionTerm("A::B:C") -> ["A::B", "C"]
func SplitInteractionTerm(term string) []string {
	var (
		result  []string
		segment strings.Builder
	)

	for i := 0; i < len(term); {
		switch {
		case term[i] == ':' && i+1 < len(term) && term[i+1] == ':':
			segment.WriteString("::")
			i += 2
		case term[i] == ':':
			result = append(result, segment.String())
			segment.Reset()
			i++
		default:
			segment.WriteByte(term[i])
			i++
		}
	}

	return append(result, segment.String())
}
