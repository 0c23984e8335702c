package rules

import (
	"testing"

	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
	"github.com/stretchr/testify/assert"
)

func TestResolutionSimplePair(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	q := pool.Var("q", "Bool")

	// premise 1: (or p q)   premise 2: (not p)   resolvent: (q)
	premise1 := &proof.Step{ID: "t1", Clause: []*term.Term{p, q}}
	premise2 := &proof.Assume{ID: "t2", Term: pool.Op(term.Not, p)}

	err := Resolution(RuleArgs{
		Conclusion: []*term.Term{q},
		Premises:   []proof.Command{premise1, premise2},
	})
	assert.NoError(t, err)
}

func TestResolutionBothPolaritiesCancel(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	q := pool.Var("q", "Bool")
	r := pool.Var("r", "Bool")

	premise1 := &proof.Step{ID: "t1", Clause: []*term.Term{p, q}}
	premise2 := &proof.Step{ID: "t2", Clause: []*term.Term{pool.Op(term.Not, p), r}}

	// p appears as both positive (t1) and negative (t2): it must not
	// survive into the conclusion.
	err := Resolution(RuleArgs{
		Conclusion: []*term.Term{q, r},
		Premises:   []proof.Command{premise1, premise2},
	})
	assert.NoError(t, err)
}

func TestResolutionRejectsSurvivingResolvedTerm(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	q := pool.Var("q", "Bool")

	premise1 := &proof.Step{ID: "t1", Clause: []*term.Term{p, q}}
	premise2 := &proof.Assume{ID: "t2", Term: pool.Op(term.Not, p)}

	err := Resolution(RuleArgs{
		Conclusion: []*term.Term{p, q},
		Premises:   []proof.Command{premise1, premise2},
	})
	assert.Error(t, err)
}

func TestResolutionWrongClauseLength(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	q := pool.Var("q", "Bool")

	premise1 := &proof.Step{ID: "t1", Clause: []*term.Term{p, q}}
	premise2 := &proof.Assume{ID: "t2", Term: pool.Op(term.Not, p)}

	err := Resolution(RuleArgs{
		Conclusion: []*term.Term{},
		Premises:   []proof.Command{premise1, premise2},
	})
	assert.Error(t, err)
}
