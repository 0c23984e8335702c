package lia

import (
	"context"
	"testing"

	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
	"github.com/stretchr/testify/assert"
)

type fakeSolver struct {
	stdout string
	err    error
}

func (f *fakeSolver) Solve(ctx context.Context, problem string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.stdout), nil
}

func TestGetCvc5ProofRejectsNonUnsat(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	solver := &fakeSolver{stdout: "sat\n"}
	_, err := GetCvc5Proof(context.Background(), solver, pool, "(set-option :produce-proofs true)\n", []*term.Term{p})
	assert.Error(t, err)
	var notUnsat *Cvc5OutputNotUnsatError
	assert.ErrorAs(t, err, &notUnsat)
}

func TestGetCvc5ProofParsesAndChecksReturnedProof(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	solver := &fakeSolver{stdout: "unsat\n(assume h1 (not p))\n(step t1 (cl (not p)) :rule resolution :premises (h1))\n"}
	commands, err := GetCvc5Proof(context.Background(), solver, pool, "(set-option :produce-proofs true)\n", []*term.Term{p})
	assert.NoError(t, err)
	assert.Len(t, commands, 2)
}

func TestSolveOrWarnReportsSpawnFailureAsWarning(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	solver := &fakeSolver{err: &FailedSpawnCvc5Error{Cause: assertErr{}}}
	prelude := &proof.Prelude{}
	commands, warning := SolveOrWarn(context.Background(), solver, pool, prelude, []*term.Term{p})
	assert.Nil(t, commands)
	assert.NotEmpty(t, warning)
}

type assertErr struct{}

func (assertErr) Error() string { return "boom" }
