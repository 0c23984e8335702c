package checker

import (
	"testing"
	"time"

	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
	"github.com/stretchr/testify/assert"
)

type fakeRecorder struct {
	calls []string
}

func (f *fakeRecorder) RecordStep(rule string, d time.Duration) {
	f.calls = append(f.calls, rule)
}

func TestCheckResolutionChain(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")

	rec := &fakeRecorder{}
	c := New(pool, Config{Strict: true, Statistics: rec})

	realProof := &proof.Proof{
		Premises: []*term.Term{p, pool.Op(term.Not, p)},
		Commands: []proof.Command{
			&proof.Assume{ID: "a0", Term: p},
			&proof.Assume{ID: "a1", Term: pool.Op(term.Not, p)},
			&proof.Step{
				ID:     "t1",
				Clause: []*term.Term{},
				Rule:   "resolution",
				Premises: []proof.PremiseRef{
					{DepthDelta: 0, Index: 0},
					{DepthDelta: 0, Index: 1},
				},
			},
		},
	}
	err := c.Check(realProof)
	assert.NoError(t, err)
	assert.Equal(t, []string{"resolution"}, rec.calls)
}

func TestCheckUnknownRuleStrict(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")

	proofScript := &proof.Proof{
		Commands: []proof.Command{
			&proof.Step{ID: "t1", Clause: []*term.Term{p}, Rule: "not_a_real_rule"},
		},
	}
	c := New(pool, Config{Strict: true})
	err := c.Check(proofScript)
	assert.Error(t, err)
}

func TestCheckUnknownRuleSkipped(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")

	proofScript := &proof.Proof{
		Commands: []proof.Command{
			&proof.Step{ID: "t1", Clause: []*term.Term{p}, Rule: "not_a_real_rule"},
		},
	}
	c := New(pool, Config{Strict: false, SkipUnknownRules: true})
	err := c.Check(proofScript)
	assert.NoError(t, err)
}

func TestCheckSubproofDischarge(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	q := pool.Var("q", "Bool")

	sub := &proof.Subproof{
		ID:          "s1",
		Assignments: []proof.ContextBinding{{Name: "h1", Value: p}},
		Commands: []proof.Command{
			&proof.Assume{ID: "h1", Term: p},
			&proof.Step{
				ID:        "s1.t1",
				Clause:    []*term.Term{pool.Op(term.Not, p), q},
				Rule:      "subproof",
				Discharge: []proof.PremiseRef{{DepthDelta: 0, Index: 0}},
			},
		},
	}
	proofScript := &proof.Proof{Commands: []proof.Command{sub}}
	c := New(pool, Config{Strict: false, SkipUnknownRules: true})
	err := c.Check(proofScript)
	assert.NoError(t, err)
}

func TestCheckSubproofDischargeNonAssumeRejected(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	q := pool.Var("q", "Bool")

	sub := &proof.Subproof{
		ID:          "s1",
		Assignments: []proof.ContextBinding{{Name: "h1", Value: p}},
		Commands: []proof.Command{
			&proof.Assume{ID: "h1", Term: p},
			&proof.Step{ID: "h2", Clause: []*term.Term{q}, Rule: "assumed_ok"},
			&proof.Step{
				ID:        "s1.t1",
				Clause:    []*term.Term{pool.Op(term.Not, p), q},
				Rule:      "subproof",
				Discharge: []proof.PremiseRef{{DepthDelta: 0, Index: 1}},
			},
		},
	}
	proofScript := &proof.Proof{Commands: []proof.Command{sub}}
	c := New(pool, Config{Strict: false, SkipUnknownRules: true})
	err := c.Check(proofScript)
	assert.Error(t, err)
}

func TestCheckAssumeNotInPremisesRejected(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")

	proofScript := &proof.Proof{
		Commands: []proof.Command{
			&proof.Assume{ID: "a0", Term: p},
		},
	}
	c := New(pool, Config{Strict: true})
	err := c.Check(proofScript)
	assert.Error(t, err)
	var target *AssumeNotFoundError
	assert.ErrorAs(t, err, &target)
}

func TestCheckAssumeMatchesSubproofBinding(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")

	sub := &proof.Subproof{
		ID:          "s1",
		Assignments: []proof.ContextBinding{{Name: "x", Value: p}},
		Commands: []proof.Command{
			&proof.Assume{ID: "h1", Term: p},
		},
	}
	proofScript := &proof.Proof{Commands: []proof.Command{sub}}
	c := New(pool, Config{Strict: true})
	err := c.Check(proofScript)
	assert.NoError(t, err)
}

func TestCheckAssumeInSubproofNotInBindingsRejected(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	q := pool.Var("q", "Bool")

	sub := &proof.Subproof{
		ID:          "s1",
		Assignments: []proof.ContextBinding{{Name: "x", Value: p}},
		Commands: []proof.Command{
			&proof.Assume{ID: "h1", Term: q},
		},
	}
	proofScript := &proof.Proof{Commands: []proof.Command{sub}}
	c := New(pool, Config{Strict: true})
	err := c.Check(proofScript)
	assert.Error(t, err)
	var target *AssumeNotFoundError
	assert.ErrorAs(t, err, &target)
}

// fakeBridge is a test double for LiaBridge: it either returns a canned
// elaboration or a warning, letting dispatch's lia_generic wiring be
// exercised without spawning a real cvc5 process.
type fakeBridge struct {
	elaboration []proof.Command
	warning     string
}

func (f *fakeBridge) Resolve(pool *term.Pool, prelude *proof.Prelude, conclusion []*term.Term) ([]proof.Command, string) {
	return f.elaboration, f.warning
}

func TestCheckLiaGenericDelegatesToBridge(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")
	q := pool.Var("q", "Bool")

	sub := &proof.Subproof{
		ID:          "lia.1",
		Assignments: []proof.ContextBinding{{Name: "h0", Value: p}},
		Commands: []proof.Command{
			&proof.Assume{ID: "h0", Term: p},
			&proof.Step{
				ID:       "h1",
				Clause:   []*term.Term{q},
				Rule:     "hole",
				Premises: []proof.PremiseRef{{DepthDelta: 0, Index: 0}},
			},
		},
	}
	bridge := &fakeBridge{
		elaboration: []proof.Command{
			sub,
			&proof.Step{
				ID:       "h2",
				Clause:   []*term.Term{q},
				Rule:     "hole",
				Premises: []proof.PremiseRef{{DepthDelta: 0, Index: 0}},
			},
		},
	}

	proofScript := &proof.Proof{
		Commands: []proof.Command{
			&proof.Step{ID: "t1", Clause: []*term.Term{q}, Rule: "lia_generic"},
		},
	}
	c := New(pool, Config{CheckLiaGenericUsingCvc5: true, LiaBridge: bridge})
	err := c.Check(proofScript)
	assert.NoError(t, err)
}

func TestCheckLiaGenericAcceptsOnBridgeWarning(t *testing.T) {
	pool := term.NewPool()
	q := pool.Var("q", "Bool")

	bridge := &fakeBridge{warning: "cvc5 timed out"}
	proofScript := &proof.Proof{
		Commands: []proof.Command{
			&proof.Step{ID: "t1", Clause: []*term.Term{q}, Rule: "lia_generic"},
		},
	}
	c := New(pool, Config{CheckLiaGenericUsingCvc5: true, LiaBridge: bridge})
	err := c.Check(proofScript)
	assert.NoError(t, err)
}

func TestCheckLiaGenericWithoutBridgeFails(t *testing.T) {
	pool := term.NewPool()
	q := pool.Var("q", "Bool")

	proofScript := &proof.Proof{
		Commands: []proof.Command{
			&proof.Step{ID: "t1", Clause: []*term.Term{q}, Rule: "lia_generic"},
		},
	}
	c := New(pool, Config{CheckLiaGenericUsingCvc5: true})
	err := c.Check(proofScript)
	assert.Error(t, err)
}

func TestCheckInvalidPremiseRef(t *testing.T) {
	pool := term.NewPool()
	p := pool.Var("p", "Bool")

	proofScript := &proof.Proof{
		Commands: []proof.Command{
			&proof.Step{
				ID:       "t1",
				Clause:   []*term.Term{p},
				Rule:     "resolution",
				Premises: []proof.PremiseRef{{DepthDelta: 0, Index: 5}},
			},
		},
	}
	c := New(pool, Config{Strict: true})
	err := c.Check(proofScript)
	assert.Error(t, err)
}
