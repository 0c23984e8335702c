package rules

// Registry is the name-to-implementation dispatch table the checking
// engine consults for every step (spec.md §4.D): the Alethe rule name
// written in the proof script, looked up against the Go function that
// checks it. "lia_generic" is deliberately absent here: it needs the
// external-solver bridge and a broader context than RuleArgs carries, and
// is special-cased by the engine (see internal/lia).
var Registry = map[string]RuleFunc{
	"la_rw_eq":      LaRwEq,
	"la_disequality": LaDisequality,
	"la_tautology":  LaTautology,
	"la_generic":    LaGeneric,
	"resolution":    Resolution,
}

// Lookup returns the rule function registered under name, or (nil, false)
// if no such rule is known.
func Lookup(name string) (RuleFunc, bool) {
	f, ok := Registry[name]
	return f, ok
}
