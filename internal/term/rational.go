package term

import (
	"fmt"
	"math/big"
	"strings"
)

// Rat is an exact rational number, represented as a numerator/denominator
// pair of arbitrary-precision integers. Unlike math/big.Rat, Rat is never
// reduced to lowest terms by its arithmetic operations: per spec.md §4.C
// and §9, the checker performs raw (unreduced) arithmetic throughout,
// because a prior implementation that normalized after every operation
// measured worse average latency on the "la_generic" rule. Integrality is
// therefore tested by explicit divisibility of Num by Den, never by
// trusting a canonical form.
//
// Den is always positive; Num carries the sign. This normalization happens
// once, at construction, and is not a GCD reduction.
type Rat struct {
	Num *big.Int
	Den *big.Int
}

func newRat(num, den *big.Int) *Rat {
	if den.Sign() == 0 {
		panic("term: rational with zero denominator")
	}
	if den.Sign() < 0 {
		num = new(big.Int).Neg(num)
		den = new(big.Int).Neg(den)
	}
	return &Rat{Num: num, Den: den}
}

// NewRat builds a Rat from an integer numerator and denominator, without
// reducing the fraction.
func NewRat(num, den int64) *Rat {
	return newRat(big.NewInt(num), big.NewInt(den))
}

// RatFromBigInt builds a Rat equal to an integer.
func RatFromBigInt(n *big.Int) *Rat {
	return newRat(new(big.Int).Set(n), big.NewInt(1))
}

// RatFromInt64 builds a Rat equal to an integer.
func RatFromInt64(n int64) *Rat {
	return NewRat(n, 1)
}

func RatZero() *Rat { return RatFromInt64(0) }
func RatOne() *Rat  { return RatFromInt64(1) }

// ParseRatLiteral parses an SMT-LIB numeral or decimal literal ("5",
// "5.0", "5.25") into a Rat. It does not handle a leading unary minus;
// callers unwrap "(- x)" themselves (see AsSignedNumber).
func ParseRatLiteral(s string) (*Rat, bool) {
	if s == "" {
		return nil, false
	}
	if !strings.Contains(s, ".") {
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, false
		}
		return RatFromBigInt(n), true
	}

	parts := strings.SplitN(s, ".", 2)
	if len(parts) != 2 {
		return nil, false
	}
	whole, frac := parts[0], parts[1]
	if whole == "" {
		whole = "0"
	}
	digits := whole + frac
	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, false
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(frac))), nil)
	return newRat(n, den), true
}

func (r *Rat) clone() *Rat {
	return &Rat{Num: new(big.Int).Set(r.Num), Den: new(big.Int).Set(r.Den)}
}

// RawAdd returns r + other, without reducing the result.
func (r *Rat) RawAdd(other *Rat) *Rat {
	num := new(big.Int).Add(
		new(big.Int).Mul(r.Num, other.Den),
		new(big.Int).Mul(other.Num, r.Den),
	)
	den := new(big.Int).Mul(r.Den, other.Den)
	return newRat(num, den)
}

// RawSub returns r - other, without reducing the result.
func (r *Rat) RawSub(other *Rat) *Rat {
	return r.RawAdd(other.Neg())
}

// RawMul returns r * other, without reducing the result.
func (r *Rat) RawMul(other *Rat) *Rat {
	num := new(big.Int).Mul(r.Num, other.Num)
	den := new(big.Int).Mul(r.Den, other.Den)
	return newRat(num, den)
}

// Neg returns -r.
func (r *Rat) Neg() *Rat {
	return &Rat{Num: new(big.Int).Neg(r.Num), Den: new(big.Int).Set(r.Den)}
}

// Abs returns |r|.
func (r *Rat) Abs() *Rat {
	if r.Num.Sign() < 0 {
		return r.Neg()
	}
	return r.clone()
}

// Sign returns -1, 0 or 1.
func (r *Rat) Sign() int { return r.Num.Sign() }

func (r *Rat) IsZero() bool { return r.Num.Sign() == 0 }

func (r *Rat) IsOne() bool {
	return r.Num.Cmp(r.Den) == 0
}

func (r *Rat) IsPositive() bool { return r.Num.Sign() > 0 }
func (r *Rat) IsNegative() bool { return r.Num.Sign() < 0 }

// Cmp compares r and other, returning -1, 0 or 1. Both denominators are
// positive by construction, so cross-multiplication preserves order.
func (r *Rat) Cmp(other *Rat) int {
	lhs := new(big.Int).Mul(r.Num, other.Den)
	rhs := new(big.Int).Mul(other.Num, r.Den)
	return lhs.Cmp(rhs)
}

func (r *Rat) Less(other *Rat) bool    { return r.Cmp(other) < 0 }
func (r *Rat) LessEq(other *Rat) bool  { return r.Cmp(other) <= 0 }
func (r *Rat) Greater(other *Rat) bool { return r.Cmp(other) > 0 }

// IsIntegerRaw reports whether r denotes an integer, tested by explicit
// divisibility of the (unreduced) numerator by the denominator rather than
// by assuming the fraction is already in lowest terms.
func (r *Rat) IsIntegerRaw() bool {
	return new(big.Int).Mod(r.Num, r.Den).Sign() == 0
}

// Floor returns the greatest integer <= r, as an integral Rat.
func (r *Rat) Floor() *Rat {
	q := new(big.Int)
	m := new(big.Int)
	q.DivMod(r.Num, r.Den, m) // Euclidean division: 0 <= m < Den, matches floor for positive Den
	return RatFromBigInt(q)
}

// ToBigInt returns the integer value of r and true, if r is an integer
// under IsIntegerRaw; otherwise it returns (nil, false).
func (r *Rat) ToBigInt() (*big.Int, bool) {
	if !r.IsIntegerRaw() {
		return nil, false
	}
	return new(big.Int).Div(r.Num, r.Den), true
}

func (r *Rat) String() string {
	if r.Den.Cmp(big.NewInt(1)) == 0 {
		return r.Num.String()
	}
	return fmt.Sprintf("%s/%s", r.Num.String(), r.Den.String())
}

// Key returns a canonical-for-hashing (but not reduced) string, used only
// to intern literal terms that came from identical source text.
func (r *Rat) Key() string {
	return r.Num.String() + "/" + r.Den.String()
}
