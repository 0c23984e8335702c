package parser

import (
	"testing"

	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
	"github.com/stretchr/testify/assert"
)

func TestParseProblemRetainsDeclsAndAsserts(t *testing.T) {
	pool := term.NewPool()
	src := `
(set-logic QF_LRA)
(declare-sort U 0)
(declare-fun a () Real)
(declare-fun b () Real)
(declare-const c Real)
(assert (< (+ a b) 1.0))
(assert (> (+ a b) 0.0))
(check-sat)
(exit)
`
	prelude, premises, env, err := ParseProblem(pool, "problem.smt2", src)
	assert.NoError(t, err)
	assert.Len(t, prelude.Sorts, 1)
	assert.Equal(t, "U", prelude.Sorts[0].Name)
	assert.Len(t, prelude.Funs, 3)
	assert.Len(t, premises, 2)
	assert.NotNil(t, env)

	assert.True(t, premises[0].IsOp(term.LessThan))
	assert.True(t, premises[1].IsOp(term.GreaterThan))
}

func TestParseProblemRejectsMalformedDeclareSort(t *testing.T) {
	pool := term.NewPool()
	_, _, _, err := ParseProblem(pool, "bad.smt2", "(declare-sort U)\n")
	assert.Error(t, err)
}

func TestParseProblemRejectsUnknownCommand(t *testing.T) {
	pool := term.NewPool()
	_, _, _, err := ParseProblem(pool, "bad.smt2", "(push 1)\n")
	assert.Error(t, err)
}

func TestParseProofResolvesResolutionChain(t *testing.T) {
	pool := term.NewPool()
	_, premises, env, err := ParseProblem(pool, "problem.smt2", "(declare-fun p () Bool)\n(declare-fun q () Bool)\n")
	assert.NoError(t, err)

	src := `
(assume h1 (or p q))
(assume h2 (not p))
(step t1 (cl q) :rule resolution :premises (h1 h2))
`
	p, err := ParseProof(pool, env, premises, "proof.alethe", src)
	assert.NoError(t, err)
	assert.Len(t, p.Commands, 3)

	step, ok := p.Commands[2].(*proof.Step)
	assert.True(t, ok)
	assert.Equal(t, "resolution", step.Rule)
	assert.Equal(t, []proof.PremiseRef{{DepthDelta: 0, Index: 0}, {DepthDelta: 0, Index: 1}}, step.Premises)
	assert.Len(t, step.Clause, 1)
}

func TestParseProofSubproofDischargeReferencesOwnScope(t *testing.T) {
	pool := term.NewPool()
	_, premises, env, err := ParseProblem(pool, "problem.smt2", "(declare-fun p () Bool)\n(declare-fun q () Bool)\n")
	assert.NoError(t, err)

	src := `
(subproof sp1
  (assume h1 p)
  (step t1 (cl (not p) q) :rule la_tautology)
  (step t2 (cl q) :rule resolution :premises (h1 t1) :discharge (h1))
)
`
	p, err := ParseProof(pool, env, premises, "proof.alethe", src)
	assert.NoError(t, err)
	assert.Len(t, p.Commands, 1)

	sub, ok := p.Commands[0].(*proof.Subproof)
	assert.True(t, ok)
	assert.Len(t, sub.Commands, 3)

	closing, ok := sub.Commands[2].(*proof.Step)
	assert.True(t, ok)
	assert.Len(t, closing.Discharge, 1)
	assert.Equal(t, proof.PremiseRef{DepthDelta: 0, Index: 0}, closing.Discharge[0])
}

func TestParseProofRejectsUndefinedPremiseRef(t *testing.T) {
	pool := term.NewPool()
	_, premises, env, err := ParseProblem(pool, "problem.smt2", "(declare-fun p () Bool)\n")
	assert.NoError(t, err)

	src := `(step t1 (cl p) :rule resolution :premises (nope))`
	_, err = ParseProof(pool, env, premises, "proof.alethe", src)
	assert.Error(t, err)
}

func TestParseProofBuildsArgsWithAssignments(t *testing.T) {
	pool := term.NewPool()
	_, premises, env, err := ParseProblem(pool, "problem.smt2", "(declare-fun x () Real)\n")
	assert.NoError(t, err)

	src := `(step t1 (cl (= x 1)) :rule hole :args ((x := 1)))`
	p, err := ParseProof(pool, env, premises, "proof.alethe", src)
	assert.NoError(t, err)

	step := p.Commands[0].(*proof.Step)
	assert.Len(t, step.Args, 1)
	assert.Equal(t, proof.ArgAssign, step.Args[0].Kind)
	assert.Equal(t, "x", step.Args[0].Name)
}

func TestParseProofParsesGCDStrengtheningExample(t *testing.T) {
	pool := term.NewPool()
	_, premises, env, err := ParseProblem(pool, "problem.smt2", "(declare-fun a () Int)\n(declare-fun b () Int)\n")
	assert.NoError(t, err)

	src := `(step t1 (cl (<= (+ a (* 2 b)) 7)) :rule la_generic :args (1))`
	p, err := ParseProof(pool, env, premises, "proof.alethe", src)
	assert.NoError(t, err)
	assert.Len(t, p.Commands, 1)

	step := p.Commands[0].(*proof.Step)
	assert.Equal(t, "la_generic", step.Rule)
	assert.True(t, step.Clause[0].IsOp(term.LessEq))
}
