package la

import (
	"math/big"
	"testing"

	"github.com/kanso-lang/alethe/internal/term"
	"github.com/stretchr/testify/assert"
)

func TestFromTermFlattensAddSubMul(t *testing.T) {
	pool := term.NewPool()
	a := pool.Var("a", "Real")
	b := pool.Var("b", "Real")

	// a + 2*b - 3
	expr := pool.Op(term.Sub,
		pool.Op(term.Add, a, pool.Op(term.Mult, pool.Num(term.NewRat(2, 1)), b)),
		pool.Num(term.NewRat(3, 1)),
	)

	lc := FromTerm(expr)
	assert.Equal(t, 0, lc.Coefficients()[a].Cmp(term.RatOne()))
	assert.Equal(t, 0, lc.Coefficients()[b].Cmp(term.NewRat(2, 1)))
	assert.Equal(t, 0, lc.Constant.Cmp(term.NewRat(-3, 1)))
}

func TestFromTermIsAdditive(t *testing.T) {
	pool := term.NewPool()
	a := pool.Var("a", "Real")
	b := pool.Var("b", "Real")

	u := pool.Op(term.Add, a, pool.Num(term.NewRat(1, 1)))
	v := pool.Op(term.Mult, pool.Num(term.NewRat(2, 1)), b)
	sum := pool.Op(term.Add, u, v)

	combined := FromTerm(sum)
	separate := FromTerm(u).Add(FromTerm(v))

	assert.Equal(t, len(combined.Coefficients()), len(separate.Coefficients()))
	for key, coeff := range combined.Coefficients() {
		other, ok := separate.Coefficients()[key]
		assert.True(t, ok)
		assert.Equal(t, 0, coeff.Cmp(other))
	}
	assert.Equal(t, 0, combined.Constant.Cmp(separate.Constant))
}

func TestInsertRemovesZeroCoefficient(t *testing.T) {
	pool := term.NewPool()
	a := pool.Var("a", "Real")

	lc := New()
	lc.Insert(a, term.NewRat(3, 1))
	lc.Insert(a, term.NewRat(-3, 1))

	_, present := lc.Coefficients()[a]
	assert.False(t, present)
}

func TestMulByZeroAndOne(t *testing.T) {
	pool := term.NewPool()
	a := pool.Var("a", "Real")
	lc := FromTerm(pool.Op(term.Add, a, pool.Num(term.NewRat(5, 1))))

	zeroed := lc.Mul(term.RatZero())
	assert.True(t, zeroed.IsEmpty())
	assert.True(t, zeroed.Constant.IsZero())

	same := lc.Mul(term.RatOne())
	assert.Equal(t, 0, same.Constant.Cmp(lc.Constant))
	assert.Equal(t, 0, same.Coefficients()[a].Cmp(lc.Coefficients()[a]))
}

func TestCoefficientsGCD(t *testing.T) {
	pool := term.NewPool()
	a := pool.Var("a", "Int")
	b := pool.Var("b", "Int")

	lc := New()
	lc.Insert(a, term.NewRat(4, 1))
	lc.Insert(b, term.NewRat(6, 1))
	lc.Constant = term.NewRat(10, 1)

	gcd, ok := lc.CoefficientsGCD()
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(2), gcd)
}

func TestCoefficientsGCDAllZeroIsOne(t *testing.T) {
	lc := New()
	gcd, ok := lc.CoefficientsGCD()
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(1), gcd)
}

func TestCoefficientsGCDNonIntegerIsNone(t *testing.T) {
	pool := term.NewPool()
	a := pool.Var("a", "Real")

	lc := New()
	lc.Insert(a, term.NewRat(1, 2))
	_, ok := lc.CoefficientsGCD()
	assert.False(t, ok)
}
