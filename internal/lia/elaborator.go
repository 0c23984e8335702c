package lia

import (
	"fmt"

	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// idGen hands out fresh, root-scoped command ids, the same naming scheme
// as carcara's Elaborator::get_new_id ("{root}.{n}").
type idGen struct {
	root string
	n    int
}

func newIDGen(root string) *idGen { return &idGen{root: root} }

func (g *idGen) next() string {
	g.n++
	return fmt.Sprintf("%s.%d", g.root, g.n)
}

// Elaborate builds the replacement commands for a lia_generic step whose
// obligation was discharged by an external solver: an accumulator
// subproof assuming the negation of each clause term not already assumed
// by cvc5's own returned proof, followed by not_not/false/resolution glue
// steps that re-derive the original conclusion from it. This is the Go
// translation of carcara's insert_cvc5_proof
// (_examples/original_source/alethe-proof-checker/src/checker/lia_generic.rs,
// lines 149-281).
//
// The returned slice is meant to replace the original lia_generic step in
// its host scope, starting at the position the step occupied; premise
// references among the returned commands are numbered as if the slice
// were spliced at index 0 of a fresh scope, so a caller inserting it at a
// non-zero offset must shift every PremiseRef.Index in the result by that
// offset (this mirrors carcara's own update_premises pass, simplified
// here to a single flat renumbering instead of threading the splice
// offset through the whole host proof).
//
// The final step is named "hole": carcara's own comment marks this as an
// unfinished discharge ("TODO: Implement this properly"), acknowledging
// it does not fully justify the step to a downstream checker on its own
// (spec.md §4.H, Open Questions).
func Elaborate(pool *term.Pool, rootID string, cvc5Commands []proof.Command, conclusion []*term.Term) ([]proof.Command, error) {
	ids := newIDGen(rootID)
	subproofID := ids.next()

	alreadyAssumed := make(map[*term.Term]bool)
	for _, c := range cvc5Commands {
		a, ok := c.(*proof.Assume)
		if !ok {
			continue
		}
		inner := a.Term.RemoveNegation()
		if inner == nil {
			return nil, fmt.Errorf("lia: cvc5 assumption %q is not a negation", a.Term)
		}
		alreadyAssumed[inner] = true
	}

	var innerCommands []proof.Command
	for _, t := range conclusion {
		if !alreadyAssumed[t] {
			innerCommands = append(innerCommands, &proof.Assume{ID: ids.next(), Term: pool.Op(term.Not, t)})
		}
	}
	numAdded := len(innerCommands)

	var clause []*term.Term
	var discharge []proof.PremiseRef
	for i, c := range cvc5Commands {
		if a, ok := c.(*proof.Assume); ok {
			clause = append(clause, pool.Op(term.Not, a.Term))
			discharge = append(discharge, proof.PremiseRef{DepthDelta: 0, Index: numAdded + i})
		}
	}
	clause = append(clause, pool.BoolFalse())

	rescoped, err := rescopeCommands(cvc5Commands, 1, numAdded, subproofID)
	if err != nil {
		return nil, err
	}
	innerCommands = append(innerCommands, rescoped...)

	closing := &proof.Step{
		ID:        ids.next(),
		Clause:    append([]*term.Term(nil), clause...),
		Rule:      "subproof",
		Discharge: discharge,
	}
	innerCommands = append(innerCommands, closing)

	// Every Assume gathered into this accumulator subproof (the negated
	// clause literals not already assumed by cvc5, plus cvc5's own
	// rescoped assumptions) is trusted by construction: they are exactly
	// the hypotheses this elaboration exists to discharge, not claims a
	// downstream checker should re-derive. Recording them as context
	// bindings lets the engine's ordinary Assume validation (spec.md
	// §4.E) accept them without a special case.
	var assignments []proof.ContextBinding
	for _, c := range innerCommands {
		if a, ok := c.(*proof.Assume); ok {
			assignments = append(assignments, proof.ContextBinding{Name: a.ID, Value: a.Term})
		}
	}
	subproof := &proof.Subproof{ID: subproofID, Commands: innerCommands, Assignments: assignments}

	result := []proof.Command{subproof}
	var premisesForResolution []proof.PremiseRef
	premisesForResolution = append(premisesForResolution, proof.PremiseRef{DepthDelta: 0, Index: 0})

	nonFalseClause := clause[:len(clause)-1]
	for _, t := range nonFalseClause {
		doubleNegated := t
		if n1 := t.RemoveNegation(); n1 != nil {
			if n2 := n1.RemoveNegation(); n2 != nil {
				doubleNegated = n2
			}
		}
		step := &proof.Step{
			ID:     ids.next(),
			Clause: []*term.Term{pool.Op(term.Not, t), doubleNegated},
			Rule:   "not_not",
		}
		result = append(result, step)
		premisesForResolution = append(premisesForResolution, proof.PremiseRef{DepthDelta: 0, Index: len(result) - 1})
	}

	falseStep := &proof.Step{
		ID:     ids.next(),
		Clause: []*term.Term{pool.Op(term.Not, pool.BoolFalse())},
		Rule:   "false",
	}
	result = append(result, falseStep)
	premisesForResolution = append(premisesForResolution, proof.PremiseRef{DepthDelta: 0, Index: len(result) - 1})

	resolvedClause := make([]*term.Term, len(nonFalseClause))
	for i, t := range nonFalseClause {
		if n1 := t.RemoveNegation(); n1 != nil {
			if n2 := n1.RemoveNegation(); n2 != nil {
				resolvedClause[i] = n2
				continue
			}
		}
		resolvedClause[i] = t
	}

	resolutionStep := &proof.Step{
		ID:       ids.next(),
		Clause:   resolvedClause,
		Rule:     "resolution",
		Premises: premisesForResolution,
	}
	result = append(result, resolutionStep)
	resolutionIndex := len(result) - 1

	holeStep := &proof.Step{
		ID:       ids.next(),
		Clause:   append([]*term.Term(nil), conclusion...),
		Rule:     "hole", // acknowledged incomplete discharge, see doc comment
		Premises: []proof.PremiseRef{{DepthDelta: 0, Index: resolutionIndex}},
	}
	result = append(result, holeStep)

	return result, nil
}

// rescopeCommands renames every command id to "{newRoot}.{old id}" and
// shifts every Step's premise references by (depthDelta, indexDelta),
// recursing into nested subproofs with a zero index delta (their own
// commands are addressed relative to their own scope, unaffected by
// shifts in an enclosing one). Mirrors carcara's update_premises.
func rescopeCommands(commands []proof.Command, depthDelta, indexDelta int, newRoot string) ([]proof.Command, error) {
	out := make([]proof.Command, len(commands))
	for i, c := range commands {
		switch v := c.(type) {
		case *proof.Assume:
			out[i] = &proof.Assume{ID: fmt.Sprintf("%s.%s", newRoot, v.ID), Term: v.Term}
		case *proof.Step:
			shifted := make([]proof.PremiseRef, len(v.Premises))
			for j, p := range v.Premises {
				shifted[j] = proof.PremiseRef{DepthDelta: p.DepthDelta + depthDelta, Index: p.Index + indexDelta}
			}
			out[i] = &proof.Step{
				ID:        fmt.Sprintf("%s.%s", newRoot, v.ID),
				Clause:    v.Clause,
				Rule:      v.Rule,
				Premises:  shifted,
				Args:      v.Args,
				Discharge: v.Discharge,
			}
		case *proof.Subproof:
			nested, err := rescopeCommands(v.Commands, depthDelta, 0, newRoot)
			if err != nil {
				return nil, err
			}
			out[i] = &proof.Subproof{
				ID:          fmt.Sprintf("%s.%s", newRoot, v.ID),
				Commands:    nested,
				Assignments: v.Assignments,
			}
		default:
			return nil, fmt.Errorf("lia: unrecognized command type in cvc5 proof")
		}
	}
	return out, nil
}
