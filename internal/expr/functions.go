package expr

// operatorFunctions maps infix operators to markup function names
var operatorFunctions = map[string]string{
	"+":  "+",
	"-":  "-",
	"*":  "*",
	"/":  "/",
	"^":  "pow",
	"<":  "lessThan",
	">":  "greaterThan",
	"<=": "lessOrEqual",
	">=": "greaterOrEqual",
	"==": "equal",
	"!=": "notEqual",
	"&":  "and",
	"|":  "or",
}

func operatorFunction(op string) string {
	if fn, ok := operatorFunctions[op]; ok {
		return fn
	}
	return op
}

// builtinFunctions maps R functions onto markup built-ins. The table is fixed.
var builtinFunctions = map[string]string{
	"abs":     "abs",
	"ceiling": "ceil",
	"exp":     "exp",
	"floor":   "floor",
	"is.na":   "isMissing",
	"log10":   "log10",
	"round":   "round",
	"sqrt":    "sqrt",
}

// builtinFunction resolves a call by name and arity
func builtinFunction(name string, argc int) (string, bool) {
	// log(x, base) has no markup counterpart
	if name == "log" {
		return "ln", argc == 1
	}
	fn, ok := builtinFunctions[name]
	return fn, ok
}

// remapFunction returns the function name stored on a Call
func remapFunction(name string, argc int) string {
	if fn, ok := builtinFunction(name, argc); ok {
		return fn
	}
	return name
}
