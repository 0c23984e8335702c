// Package la implements the linear-combination data structure used by the
// linear-arithmetic rule suite (spec.md §4.C). It is grounded directly on
// carcara's LinearComb (_examples/original_source/alethe-proof-checker/src/
// checker/rules/linear_arithmetic.rs, lines 64-213): a map from
// non-constant terms to rational coefficients, plus a constant, all built
// using raw (non-reducing) rational arithmetic.
package la

import (
	"math/big"

	"github.com/kanso-lang/alethe/internal/term"
)

// LinearComb maps non-constant terms to their non-zero coefficients, plus
// a constant. The invariant "no entry maps to zero" is maintained by
// insert: a coefficient that sums to zero removes its key rather than
// storing a zero.
type LinearComb struct {
	coeffs   map[*term.Term]*term.Rat
	Constant *term.Rat
}

// New returns the empty linear combination (all coefficients zero,
// constant zero).
func New() *LinearComb {
	return &LinearComb{coeffs: make(map[*term.Term]*term.Rat), Constant: term.RatZero()}
}

// Coefficients exposes the underlying map for callers that need to range
// over it (e.g. CoefficientsGCD, la_generic's contradiction check). The
// map must not be mutated directly; use Insert.
func (l *LinearComb) Coefficients() map[*term.Term]*term.Rat { return l.coeffs }

// Insert adds value into the coefficient for key, removing the key
// entirely if the resulting coefficient is zero.
func (l *LinearComb) Insert(key *term.Term, value *term.Rat) {
	if existing, ok := l.coeffs[key]; ok {
		sum := existing.RawAdd(value)
		if sum.IsZero() {
			delete(l.coeffs, key)
		} else {
			l.coeffs[key] = sum
		}
		return
	}
	if !value.IsZero() {
		l.coeffs[key] = value
	}
}

// addTerm flattens t (which may be a nested Add/Sub/Mult-by-literal
// expression) and folds it into l, multiplying each atom's coefficient by
// coeff. It is only meant to be called from FromTerm. No memoization is
// used across calls: spec.md §4.C notes a cache was measured to more than
// double la_generic's average latency, so the naive re-traversal is kept
// deliberately, matching the original implementation's documented choice.
func (l *LinearComb) addTerm(t *term.Term, coeff *term.Rat) {
	switch {
	case t.IsOp(term.Add):
		for _, a := range t.Args {
			l.addTerm(a, coeff)
		}
	case t.IsOp(term.Sub) && len(t.Args) == 1:
		l.addTerm(t.Args[0], coeff.Neg())
	case t.IsOp(term.Sub):
		l.addTerm(t.Args[0], coeff)
		for _, a := range t.Args[1:] {
			l.addTerm(a, coeff.Neg())
		}
	case t.IsOp(term.Mult) && len(t.Args) == 2:
		a0, a0IsLit := t.Args[0].AsFraction()
		a1, a1IsLit := t.Args[1].AsFraction()
		switch {
		case !a0IsLit && a1IsLit:
			l.addTerm(t.Args[0], coeff.RawMul(a1))
		case a0IsLit:
			l.addTerm(t.Args[1], coeff.RawMul(a0))
		default:
			l.Insert(t, coeff)
		}
	default:
		if r, ok := t.AsFraction(); ok {
			l.Constant = l.Constant.RawAdd(coeff.RawMul(r))
		} else {
			l.Insert(t, coeff)
		}
	}
}

// FromTerm builds a linear combination from a term, flattening nested
// Add/Sub/Mult-by-literal expressions and accumulating each atom's
// coefficient starting from 1.
func FromTerm(t *term.Term) *LinearComb {
	l := New()
	l.addTerm(t, term.RatOne())
	return l
}

// Add returns l + other as a new combination; l and other are not
// mutated.
func (l *LinearComb) Add(other *LinearComb) *LinearComb {
	result := l.Clone()
	for key, coeff := range other.coeffs {
		result.Insert(key, coeff)
	}
	result.Constant = result.Constant.RawAdd(other.Constant)
	return result
}

// Neg returns -l as a new combination.
func (l *LinearComb) Neg() *LinearComb {
	result := New()
	for key, coeff := range l.coeffs {
		result.coeffs[key] = coeff.Neg()
	}
	result.Constant = l.Constant.Neg()
	return result
}

// Sub returns l - other as a new combination, implemented as l + (-other)
// per spec.md §4.C.
func (l *LinearComb) Sub(other *LinearComb) *LinearComb {
	return l.Add(other.Neg())
}

// Mul returns l * scalar as a new combination. Multiplying by zero clears
// the combination; multiplying by one is a no-op (modulo the copy).
func (l *LinearComb) Mul(scalar *term.Rat) *LinearComb {
	if scalar.IsZero() {
		return New()
	}
	if scalar.IsOne() {
		return l.Clone()
	}
	result := New()
	for key, coeff := range l.coeffs {
		result.coeffs[key] = coeff.RawMul(scalar)
	}
	result.Constant = l.Constant.RawMul(scalar)
	return result
}

// Clone returns a shallow copy of l (coefficients and constant are
// immutable Rats, so sharing them across the copy is safe).
func (l *LinearComb) Clone() *LinearComb {
	result := New()
	for key, coeff := range l.coeffs {
		result.coeffs[key] = coeff
	}
	result.Constant = l.Constant
	return result
}

// IsEmpty reports whether l has no non-constant terms (i.e. it denotes a
// plain constant).
func (l *LinearComb) IsEmpty() bool { return len(l.coeffs) == 0 }

// CoefficientsGCD returns the GCD of the absolute values of the constant
// and every coefficient, or (nil, false) if any of those values is not an
// integer. An all-zero combination returns 1, never 0, matching carcara's
// `std::cmp::max(BigInt::one(), result)`.
func (l *LinearComb) CoefficientsGCD() (*big.Int, bool) {
	if !l.Constant.IsIntegerRaw() {
		return nil, false
	}
	constInt, _ := l.Constant.ToBigInt()
	result := new(big.Int).Abs(constInt)

	for _, coeff := range l.coeffs {
		if !coeff.IsIntegerRaw() {
			return nil, false
		}
		coeffInt, _ := coeff.ToBigInt()
		result = new(big.Int).GCD(nil, nil, result, new(big.Int).Abs(coeffInt))
	}

	one := big.NewInt(1)
	if result.Cmp(one) < 0 {
		return one, true
	}
	return result, true
}
