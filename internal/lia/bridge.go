package lia

import (
	"bytes"
	"context"
	"fmt"

	"github.com/kanso-lang/alethe/internal/checker"
	"github.com/kanso-lang/alethe/internal/checklog"
	"github.com/kanso-lang/alethe/internal/parser"
	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// BuildProblem constructs the SMT-LIB instance handed to the external
// solver for a lia_generic step: the retained prelude declarations
// followed by the negated clause (carcara's get_problem_string).
func BuildProblem(prelude *proof.Prelude, conclusion []*term.Term) (string, error) {
	var buf bytes.Buffer
	buf.WriteString("(set-option :produce-proofs true)\n")
	buf.WriteString(prelude.String())
	if err := PrintLiaSMTInstance(&buf, conclusion); err != nil {
		return "", err
	}
	buf.WriteString("(check-sat)\n(get-proof)\n(exit)\n")
	return buf.String(), nil
}

// GetCvc5Proof runs problem through solver, expects an "unsat" verdict,
// and reparses and rechecks the Alethe proof it returns with a
// non-strict, non-recursive engine configuration (mirroring carcara's
// parse_and_check_cvc5_proof). conclusion is the lia_generic step's own
// clause; the negation of each of its literals is what PrintLiaSMTInstance
// asserted into the problem, so those negated terms are the premise set
// the returned proof's own Assume commands are checked against. On
// success it returns the returned proof's commands, ready to pass to
// Elaborate.
func GetCvc5Proof(ctx context.Context, solver Solver, pool *term.Pool, problem string, conclusion []*term.Term) ([]proof.Command, error) {
	stdout, err := solver.Solve(ctx, problem)
	if err != nil {
		return nil, err
	}

	line, rest, ok := splitFirstLine(stdout)
	if !ok {
		return nil, &Cvc5GaveInvalidOutputError{}
	}
	if line != "unsat" {
		return nil, &Cvc5OutputNotUnsatError{FirstLine: line}
	}

	premises := make([]*term.Term, len(conclusion))
	for i, t := range conclusion {
		premises[i] = pool.Op(term.Not, t)
	}

	returnedProof, err := parser.ParseProof(pool, parser.NewEnv(), premises, "cvc5-output", rest)
	if err != nil {
		return nil, &InnerProofError{Cause: err}
	}

	innerChecker := checker.New(pool, checker.Config{
		Strict:                   false,
		SkipUnknownRules:         false,
		CheckLiaGenericUsingCvc5: false,
	})
	if err := innerChecker.Check(returnedProof); err != nil {
		return nil, &InnerProofError{Cause: err}
	}
	return returnedProof.Commands, nil
}

// SolveOrWarn runs the bridge and reports whether the step should be
// treated as checked. On a solver-level failure (spawn failure, timeout,
// non-unsat verdict) it returns (nil, warning), matching lia_generic.rs's
// policy of accepting the step with a warning rather than failing the
// whole proof when the external oracle is unavailable (spec.md §4.H,
// §7 propagation policy).
func SolveOrWarn(ctx context.Context, solver Solver, pool *term.Pool, prelude *proof.Prelude, conclusion []*term.Term) ([]proof.Command, string) {
	problem, err := BuildProblem(prelude, conclusion)
	if err != nil {
		warning := fmt.Sprintf("failed to check lia_generic step using cvc5: %v", err)
		checklog.Warnf("%s", warning)
		return nil, warning
	}
	commands, err := GetCvc5Proof(ctx, solver, pool, problem, conclusion)
	if err != nil {
		warning := fmt.Sprintf("failed to check lia_generic step using cvc5: %v", err)
		checklog.Warnf("%s", warning)
		return nil, warning
	}
	return commands, ""
}
