package lia

import (
	"context"
	"fmt"

	"github.com/kanso-lang/alethe/internal/checker"
	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// Bridge implements checker.LiaBridge, giving a Checker a way to delegate
// "lia_generic" steps to an external solver without this package's callers
// (e.g. main.go) needing to know about SolveOrWarn/Elaborate directly.
type Bridge struct {
	Solver Solver
	// Ctx is used for every Solve call; defaults to context.Background()
	// when nil.
	Ctx context.Context

	n int
}

// NewBridge returns a Bridge delegating to solver.
func NewBridge(solver Solver) *Bridge {
	return &Bridge{Solver: solver}
}

// Resolve implements checker.LiaBridge.
func (b *Bridge) Resolve(pool *term.Pool, prelude *proof.Prelude, conclusion []*term.Term) ([]proof.Command, string) {
	ctx := b.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	cvc5Commands, warning := SolveOrWarn(ctx, b.Solver, pool, prelude, conclusion)
	if warning != "" {
		return nil, warning
	}

	b.n++
	rootID := fmt.Sprintf("lia.%d", b.n)
	elaborated, err := Elaborate(pool, rootID, cvc5Commands, conclusion)
	if err != nil {
		return nil, fmt.Sprintf("failed to elaborate lia_generic step: %v", err)
	}
	return elaborated, ""
}

var _ checker.LiaBridge = (*Bridge)(nil)
