package term

// RemoveNegation returns the child of t if t is (not x), and nil
// otherwise. Structural helpers return a neutral "not matched" outcome
// rather than an error (spec.md §4.A), as do AsFraction and AsSignedNumber
// below; callers that need an error build it themselves (e.g. la_generic's
// ExpectedAnyNumberError).
func (t *Term) RemoveNegation() *Term {
	if t.Kind == OpNode && t.Op == Not && len(t.Args) == 1 {
		return t.Args[0]
	}
	return nil
}

// AsFraction returns the rational value of t if it is a numeric literal,
// and (nil, false) otherwise.
func (t *Term) AsFraction() (*Rat, bool) {
	if t.Kind == ConstNum {
		return t.NumVal, true
	}
	return nil, false
}

// AsSignedNumber is like AsFraction, but also unwraps a single-argument
// "(- x)" (unary minus) around a numeric literal.
func (t *Term) AsSignedNumber() (*Rat, bool) {
	if r, ok := t.AsFraction(); ok {
		return r, true
	}
	if t.Kind == OpNode && t.Op == Sub && len(t.Args) == 1 {
		if r, ok := t.Args[0].AsFraction(); ok {
			return r.Neg(), true
		}
	}
	return nil, false
}

// IsOp reports whether t is an application of op, whatever its number of
// arguments.
func (t *Term) IsOp(op Operator) bool {
	return t.Kind == OpNode && t.Op == op
}
