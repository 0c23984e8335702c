// Linear-arithmetic rule suite (spec.md §4.F): la_rw_eq, la_disequality,
// la_tautology and la_generic, plus the strengthen helper. All four are a
// direct translation of carcara's rules/linear_arithmetic.rs
// (_examples/original_source/alethe-proof-checker/src/checker/rules/
// linear_arithmetic.rs); comments below call out the line ranges they
// come from.
package rules

import (
	"github.com/kanso-lang/alethe/internal/la"
	"github.com/kanso-lang/alethe/internal/pattern"
	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// LaRwEq implements the "la_rw_eq" rule (linear_arithmetic.rs:13-23).
func LaRwEq(a RuleArgs) error {
	if err := assertClauseLen(a.Conclusion, 1); err != nil {
		return err
	}

	shape := pattern.Op(term.Equals,
		pattern.Op(term.Equals, pattern.Capture("t1"), pattern.Capture("u1")),
		pattern.Op(term.And,
			pattern.Op(term.LessEq, pattern.Capture("t2"), pattern.Capture("u2")),
			pattern.Op(term.LessEq, pattern.Capture("u3"), pattern.Capture("t3")),
		),
	)
	b, ok := pattern.Match(shape, a.Conclusion[0])
	if !ok {
		return &TermDoesNotMatchError{Shape: "(= (= t u) (and (<= t u) (<= u t)))", Term: a.Conclusion[0]}
	}
	if err := assertEq(b.Get("t1"), b.Get("t2")); err != nil {
		return err
	}
	if err := assertEq(b.Get("t2"), b.Get("t3")); err != nil {
		return err
	}
	if err := assertEq(b.Get("u1"), b.Get("u2")); err != nil {
		return err
	}
	return assertEq(b.Get("u2"), b.Get("u3"))
}

// LaDisequality implements the "la_disequality" rule
// (linear_arithmetic.rs:368-378).
func LaDisequality(a RuleArgs) error {
	if err := assertClauseLen(a.Conclusion, 1); err != nil {
		return err
	}

	shape := pattern.Op(term.Or,
		pattern.Op(term.Equals, pattern.Capture("t1_1"), pattern.Capture("t2_1")),
		pattern.Not(pattern.Op(term.LessEq, pattern.Capture("t1_2"), pattern.Capture("t2_2"))),
		pattern.Not(pattern.Op(term.LessEq, pattern.Capture("t2_3"), pattern.Capture("t1_3"))),
	)
	b, ok := pattern.Match(shape, a.Conclusion[0])
	if !ok {
		return &TermDoesNotMatchError{Shape: "(or (= t1 t2) (not (<= t1 t2)) (not (<= t2 t1)))", Term: a.Conclusion[0]}
	}
	if err := assertEq(b.Get("t1_1"), b.Get("t1_2")); err != nil {
		return err
	}
	if err := assertEq(b.Get("t1_2"), b.Get("t1_3")); err != nil {
		return err
	}
	if err := assertEq(b.Get("t2_1"), b.Get("t2_2")); err != nil {
		return err
	}
	return assertEq(b.Get("t2_2"), b.Get("t2_3"))
}

// negateDisequality returns the negation of a disequality term, expressed
// as an operator and two linear combinations of its sides. The term may
// be a direct application of <, >, <=, >=, the negation of one of those,
// or the negation of an equality (linear_arithmetic.rs:25-62).
func negateDisequality(t *term.Term) (term.Operator, *la.LinearComb, *la.LinearComb, error) {
	negateOperator := func(op term.Operator) (term.Operator, bool) {
		switch op {
		case term.LessThan:
			return term.GreaterEq, true
		case term.GreaterThan:
			return term.LessEq, true
		case term.LessEq:
			return term.GreaterThan, true
		case term.GreaterEq:
			return term.LessThan, true
		default:
			return 0, false
		}
	}

	var op term.Operator
	var args []*term.Term
	switch {
	case t.RemoveNegation() != nil:
		inner := t.RemoveNegation()
		if inner.Kind == term.OpNode && isDisequalityOperator(inner.Op) {
			op, args = inner.Op, inner.Args
		}
	case t.Kind == term.OpNode:
		if negated, ok := negateOperator(t.Op); ok {
			op, args = negated, t.Args
		}
	}

	if args == nil {
		return 0, nil, nil, &InvalidDisequalityOpError{Term: t}
	}
	if len(args) != 2 {
		return 0, nil, nil, &TooManyArgsInDisequalityError{Term: t}
	}
	return op, la.FromTerm(args[0]), la.FromTerm(args[1]), nil
}

func isDisequalityOperator(op term.Operator) bool {
	switch op {
	case term.GreaterEq, term.LessEq, term.GreaterThan, term.LessThan, term.Equals:
		return true
	default:
		return false
	}
}

// strengthen applies the integer-strengthening procedure of
// linear_arithmetic.rs:215-271. It mutates neither op nor d in place;
// instead it returns the possibly-updated operator and a possibly-updated
// combination, mirroring the Rust function's signature (which does mutate
// `disequality` in place, but is otherwise identical in control flow).
func strengthen(op term.Operator, d *la.LinearComb, a *term.Rat) (term.Operator, *la.LinearComb) {
	var isInteger bool
	switch {
	case a.IsZero():
		isInteger = true
	case a.IsOne():
		isInteger = d.Constant.IsIntegerRaw()
	default:
		isInteger = d.Constant.RawMul(a).IsIntegerRaw()
	}

	switch {
	case op == term.GreaterEq && isInteger:
		return op, d

	case op == term.GreaterThan && isInteger:
		gcd, ok := d.CoefficientsGCD()
		increment := term.RatOne()
		if ok {
			increment = term.RatFromBigInt(gcd)
		}
		result := d.Clone()
		result.Constant = result.Constant.Floor().RawAdd(increment)
		return term.GreaterEq, result

	case op == term.GreaterThan || op == term.GreaterEq:
		result := d.Clone()
		result.Constant = result.Constant.Floor().RawAdd(term.RatOne())
		return term.GreaterEq, result

	case op == term.LessThan || op == term.LessEq:
		panic("strengthen: <, <= are unreachable; la_generic flips them before calling strengthen")

	default:
		return op, d
	}
}

// LaGeneric implements the "la_generic" rule (linear_arithmetic.rs:273-355).
func LaGeneric(ra RuleArgs) error {
	if err := assertNumArgs(len(ra.Args), len(ra.Conclusion)); err != nil {
		return err
	}

	coeffs := make([]*term.Rat, len(ra.Args))
	for i, arg := range ra.Args {
		switch arg.Kind {
		case proof.ArgTerm:
			r, ok := arg.Term.AsSignedNumber()
			if !ok {
				return &ExpectedAnyNumberError{Term: arg.Term}
			}
			coeffs[i] = r
		case proof.ArgAssign:
			return &ExpectedTermStyleArgError{Name: arg.Name, Value: arg.Value}
		}
	}

	accOp := term.Equals
	acc := la.New()

	for i, phi := range ra.Conclusion {
		a := coeffs[i]

		// Steps 1 and 2: negate, then move everything to the left.
		op, s1, s2, err := negateDisequality(phi)
		if err != nil {
			return err
		}
		d := s1.Sub(s2)
		d.Constant = d.Constant.Neg()

		// Step 3: flip < and <= into > and >=.
		switch op {
		case term.LessThan:
			d = d.Neg()
			op = term.GreaterThan
		case term.LessEq:
			d = d.Neg()
			op = term.GreaterEq
		}

		// Step 4: strengthen.
		op, d = strengthen(op, d, a)

		// Step 5: multiply by |a| (or a itself for Equals).
		factor := a.Abs()
		if op == term.Equals {
			factor = a
		}
		d = d.Mul(factor)

		// Step 6: accumulate.
		acc = acc.Add(d)
		switch {
		case op == term.GreaterEq:
			accOp = term.GreaterEq
		case accOp == term.Equals && op == term.GreaterThan:
			accOp = term.GreaterThan
		}
	}

	// Step 7: the accumulated disequality must be contradictory.
	isTrue := isDisequalityTrue(accOp, acc.Constant)
	if !acc.IsEmpty() || isTrue {
		return &DisequalityIsNotContradictionError{Op: accOp, Constant: acc.Constant}
	}
	return nil
}

// isDisequalityTrue reports whether "0 op constant" holds.
func isDisequalityTrue(op term.Operator, constant *term.Rat) bool {
	switch constant.Sign() {
	case 1: // 0 < constant
		return op == term.LessThan || op == term.LessEq
	case 0:
		return op == term.LessEq || op == term.GreaterEq || op == term.Equals
	default: // constant < 0, i.e. 0 > constant
		return op == term.GreaterThan || op == term.GreaterEq
	}
}

func assertLessThan(a, b *term.Term) error {
	av, aok := a.AsSignedNumber()
	bv, bok := b.AsSignedNumber()
	if !aok || !bok || !av.Less(bv) {
		return &ExpectedLessThanError{A: a, B: b}
	}
	return nil
}

func assertLessEq(a, b *term.Term) error {
	av, aok := a.AsSignedNumber()
	bv, bok := b.AsSignedNumber()
	if !aok || !bok || !av.LessEq(bv) {
		return &ExpectedLessEqError{A: a, B: b}
	}
	return nil
}

// LaTautology implements the "la_tautology" rule
// (linear_arithmetic.rs:396-468).
func LaTautology(ra RuleArgs) error {
	if err := assertClauseLen(ra.Conclusion, 1); err != nil {
		return err
	}
	conclusion := ra.Conclusion[0]

	if orShape, ok := pattern.Match(pattern.Op(term.Or, pattern.Capture("phi1"), pattern.Capture("phi2")), conclusion); ok {
		first, second := orShape.Get("phi1"), orShape.Get("phi2")

		type caseMatch struct {
			s1, d1, s2, d2 *term.Term
			ok             bool
		}
		tryCase := func(firstPat, secondPat pattern.Pattern) caseMatch {
			fb, fok := pattern.Match(firstPat, first)
			sb, sok := pattern.Match(secondPat, second)
			if !fok || !sok {
				return caseMatch{}
			}
			return caseMatch{s1: fb.Get("s"), d1: fb.Get("d1"), s2: sb.Get("s"), d2: sb.Get("d2"), ok: true}
		}

		leFirst := pattern.Not(pattern.Op(term.LessEq, pattern.Capture("s"), pattern.Capture("d1")))
		leSecond := pattern.Op(term.LessEq, pattern.Capture("s"), pattern.Capture("d2"))
		if m := tryCase(leFirst, leSecond); m.ok {
			if err := assertEq(m.s1, m.s2); err != nil {
				return err
			}
			return assertLessEq(m.d1, m.d2)
		}

		leFirst2 := pattern.Op(term.LessEq, pattern.Capture("s"), pattern.Capture("d1"))
		leSecond2 := pattern.Not(pattern.Op(term.LessEq, pattern.Capture("s"), pattern.Capture("d2")))
		if m := tryCase(leFirst2, leSecond2); m.ok {
			if err := assertEq(m.s1, m.s2); err != nil {
				return err
			}
			return assertEq(m.d1, m.d2)
		}

		geFirst := pattern.Not(pattern.Op(term.GreaterEq, pattern.Capture("s"), pattern.Capture("d1")))
		geSecond := pattern.Op(term.GreaterEq, pattern.Capture("s"), pattern.Capture("d2"))
		if m := tryCase(geFirst, geSecond); m.ok {
			if err := assertEq(m.s1, m.s2); err != nil {
				return err
			}
			return assertLessEq(m.d2, m.d1)
		}

		geFirst2 := pattern.Op(term.GreaterEq, pattern.Capture("s"), pattern.Capture("d1"))
		geSecond2 := pattern.Not(pattern.Op(term.GreaterEq, pattern.Capture("s"), pattern.Capture("d2")))
		if m := tryCase(geFirst2, geSecond2); m.ok {
			if err := assertEq(m.s1, m.s2); err != nil {
				return err
			}
			return assertEq(m.d1, m.d2)
		}

		leNotFirst := pattern.Not(pattern.Op(term.LessEq, pattern.Capture("s"), pattern.Capture("d1")))
		geNotSecond := pattern.Not(pattern.Op(term.GreaterEq, pattern.Capture("s"), pattern.Capture("d2")))
		if m := tryCase(leNotFirst, geNotSecond); m.ok {
			if err := assertEq(m.s1, m.s2); err != nil {
				return err
			}
			return assertLessThan(m.d1, m.d2)
		}

		return &NotValidTautologyCaseError{Term: conclusion}
	}

	// First form: steps 1-3 of la_generic, then require the result to be
	// tautological rather than contradictory.
	op, s1, s2, err := negateDisequality(conclusion)
	if err != nil {
		return err
	}
	d := s1.Sub(s2)
	d.Constant = d.Constant.Neg()

	switch op {
	case term.LessThan:
		d = d.Neg()
		op = term.GreaterThan
	case term.LessEq:
		d = d.Neg()
		op = term.GreaterEq
	}

	isTrue := d.IsEmpty() && (d.Constant.IsPositive() || (op == term.GreaterThan && d.Constant.IsZero()))
	if !isTrue {
		return &DisequalityIsNotTautologyError{Op: op, Comb: d}
	}
	return nil
}
