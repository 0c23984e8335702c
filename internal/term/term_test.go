package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashConsingIdentity(t *testing.T) {
	pool := NewPool()
	a := pool.Var("a", "Int")
	b := pool.Var("b", "Int")

	x1 := pool.Op(LessEq, a, b)
	x2 := pool.Op(LessEq, a, b)
	assert.Same(t, x1, x2, "structurally equal terms must be the same pointer")

	y := pool.Op(LessEq, b, a)
	assert.NotSame(t, x1, y, "argument order matters")
}

func TestVarInterningBySortAndName(t *testing.T) {
	pool := NewPool()
	a1 := pool.Var("a", "Int")
	a2 := pool.Var("a", "Int")
	assert.Same(t, a1, a2)

	aReal := pool.Var("a", "Real")
	assert.NotSame(t, a1, aReal)
}

func TestBoolSingletons(t *testing.T) {
	pool := NewPool()
	assert.Same(t, pool.BoolTrue(), pool.Bool(true))
	assert.Same(t, pool.BoolFalse(), pool.Bool(false))
	assert.NotSame(t, pool.BoolTrue(), pool.BoolFalse())
}

func TestRemoveNegation(t *testing.T) {
	pool := NewPool()
	a := pool.Var("a", "Bool")
	notA := pool.Op(Not, a)

	assert.Same(t, a, notA.RemoveNegation())
	assert.Nil(t, a.RemoveNegation())
}

func TestAsSignedNumber(t *testing.T) {
	pool := NewPool()
	lit := pool.Num(NewRat(5, 1))
	neg := pool.Op(Sub, lit)

	r, ok := lit.AsSignedNumber()
	assert.True(t, ok)
	assert.Equal(t, 0, r.Cmp(NewRat(5, 1)))

	r, ok = neg.AsSignedNumber()
	assert.True(t, ok)
	assert.Equal(t, 0, r.Cmp(NewRat(-5, 1)))

	notNumber := pool.Var("x", "Int")
	_, ok = notNumber.AsSignedNumber()
	assert.False(t, ok)
}

func TestTermString(t *testing.T) {
	pool := NewPool()
	a := pool.Var("a", "Int")
	b := pool.Var("b", "Int")
	term := pool.Op(LessEq, a, pool.Op(Add, b, pool.Num(NewRat(1, 1))))
	assert.Equal(t, "(<= a (+ b 1))", term.String())
}
