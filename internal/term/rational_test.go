package term

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRatLiteral(t *testing.T) {
	cases := []struct {
		text string
		num  int64
		den  int64
	}{
		{"5", 5, 1},
		{"0", 0, 1},
		{"5.0", 50, 10},
		{"5.25", 525, 100},
		{".5", 5, 10},
	}
	for _, c := range cases {
		r, ok := ParseRatLiteral(c.text)
		assert.True(t, ok, c.text)
		assert.Equal(t, big.NewInt(c.num), r.Num, c.text)
		assert.Equal(t, big.NewInt(c.den), r.Den, c.text)
	}
}

func TestRawArithmeticDoesNotReduce(t *testing.T) {
	// 1/2 + 1/2 should stay as 4/4, not reduce to 1/1, because RawAdd never
	// divides by the GCD (spec.md §4.C, §9).
	half := NewRat(1, 2)
	sum := half.RawAdd(half)
	assert.Equal(t, big.NewInt(4), sum.Num)
	assert.Equal(t, big.NewInt(4), sum.Den)
	assert.True(t, sum.IsIntegerRaw())

	oneInt, ok := sum.ToBigInt()
	assert.True(t, ok)
	assert.Equal(t, big.NewInt(1), oneInt)
}

func TestIsIntegerRawUsesDivisibility(t *testing.T) {
	assert.True(t, NewRat(6, 3).IsIntegerRaw())
	assert.False(t, NewRat(5, 3).IsIntegerRaw())
	assert.True(t, NewRat(0, 7).IsIntegerRaw())
}

func TestFloor(t *testing.T) {
	assert.Equal(t, big.NewInt(1), NewRat(3, 2).Floor().Num)
	assert.Equal(t, big.NewInt(-2), NewRat(-3, 2).Floor().Num)
	assert.Equal(t, big.NewInt(5), NewRat(5, 1).Floor().Num)
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, NewRat(1, 2).Cmp(NewRat(2, 3)))
	assert.Equal(t, 0, NewRat(2, 4).Cmp(NewRat(1, 2)))
	assert.Equal(t, 1, NewRat(3, 2).Cmp(NewRat(1, 2)))
}

func TestNegAndAbs(t *testing.T) {
	r := NewRat(-3, 2)
	assert.True(t, r.Neg().IsPositive())
	assert.True(t, r.Abs().IsPositive())
}

func TestMulZeroAndOne(t *testing.T) {
	r := NewRat(7, 3)
	assert.True(t, r.RawMul(RatZero()).IsZero())
	product := r.RawMul(RatOne())
	assert.Equal(t, 0, product.Cmp(r))
}
