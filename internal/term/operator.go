package term

// Operator is the closed set of built-in operators a Term's Op node can
// carry. Function applications (Kind == AppNode) do not use this type; their
// head is itself a Term.
type Operator int

const (
	// Boolean connectives.
	And Operator = iota
	Or
	Not
	Implies
	Ite

	// Relations.
	Equals
	Distinct
	LessThan
	LessEq
	GreaterThan
	GreaterEq

	// Arithmetic.
	Add
	Sub
	Mult
	Div
)

var operatorNames = map[Operator]string{
	And:         "and",
	Or:          "or",
	Not:         "not",
	Implies:     "=>",
	Ite:         "ite",
	Equals:      "=",
	Distinct:    "distinct",
	LessThan:    "<",
	LessEq:      "<=",
	GreaterThan: ">",
	GreaterEq:   ">=",
	Add:         "+",
	Sub:         "-",
	Mult:        "*",
	Div:         "/",
}

var namesToOperator = func() map[string]Operator {
	m := make(map[string]Operator, len(operatorNames))
	for op, name := range operatorNames {
		m[name] = op
	}
	return m
}()

func (op Operator) String() string {
	if name, ok := operatorNames[op]; ok {
		return name
	}
	return "<unknown-operator>"
}

// LookupOperator returns the Operator named by a symbol, if any. Function
// symbols that aren't in the closed set (e.g. user-declared functions) are
// not operators and must be resolved as applications instead.
func LookupOperator(symbol string) (Operator, bool) {
	op, ok := namesToOperator[symbol]
	return op, ok
}

// IsRelation reports whether op compares two numeric terms.
func IsRelation(op Operator) bool {
	switch op {
	case Equals, LessThan, LessEq, GreaterThan, GreaterEq:
		return true
	default:
		return false
	}
}
