// Package checker implements the proof-checking engine (spec.md §5): it
// walks a Proof's commands in order, resolves premise references (including
// references into enclosing subproof scopes), and dispatches each Step to
// its named rule. This generalizes the flat traversal of carcara's
// ProofChecker::check (_examples/original_source/src/checker/mod.rs) to
// Alethe's full command set (Assume/Step/Subproof).
package checker

import (
	"fmt"
	"time"

	"github.com/kanso-lang/alethe/internal/checker/rules"
	"github.com/kanso-lang/alethe/internal/checklog"
	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// Checker verifies one proof against one term pool. It holds no
// concurrency-safety guarantees: spec.md §5 scopes one Checker to one Pool
// to one goroutine.
type Checker struct {
	pool *term.Pool
	cfg  Config
}

// New creates a Checker for proofs built over pool.
func New(pool *term.Pool, cfg Config) *Checker {
	return &Checker{pool: pool, cfg: cfg}
}

// scope is one nesting level of command resolution: the root proof, or one
// open subproof. Premise references address a scope by how many levels up
// the enclosing stack they walk (PremiseRef.DepthDelta), then by index
// within that scope's command list. allowedAssumes holds the set of terms
// an Assume within this scope is permitted to introduce: the proof's
// asserted premises at the root scope, or a subproof's own context
// bindings when nested (spec.md §4.E).
type scope struct {
	commands       []proof.Command
	allowedAssumes map[*term.Term]bool
}

// Check walks p's top-level commands and returns the first error
// encountered (wrapped with the failing step's ID and rule name, or the
// failing subproof's ID), or nil if every step checks out.
func (c *Checker) Check(p *proof.Proof) error {
	premises := make(map[*term.Term]bool, len(p.Premises))
	for _, t := range p.Premises {
		premises[t] = true
	}
	root := &scope{commands: p.Commands, allowedAssumes: premises}
	return c.checkCommands(p.Commands, []*scope{root})
}

func (c *Checker) checkCommands(commands []proof.Command, stack []*scope) error {
	current := stack[len(stack)-1]
	for _, cmd := range commands {
		switch v := cmd.(type) {
		case *proof.Assume:
			if !current.allowedAssumes[v.Term] {
				return fmt.Errorf("assume %q: %w", v.ID, &AssumeNotFoundError{Term: v.Term})
			}
		case *proof.Subproof:
			bindings := make(map[*term.Term]bool, len(v.Assignments))
			for _, a := range v.Assignments {
				bindings[a.Value] = true
			}
			inner := &scope{commands: v.Commands, allowedAssumes: bindings}
			if err := c.checkCommands(v.Commands, append(stack, inner)); err != nil {
				return fmt.Errorf("subproof %q: %w", v.ID, err)
			}
			if err := c.checkDischarge(v); err != nil {
				return err
			}
		case *proof.Step:
			if err := c.checkStep(v, stack); err != nil {
				return fmt.Errorf("step %q (rule %q): %w", v.ID, v.Rule, err)
			}
		}
	}
	return nil
}

func (c *Checker) checkStep(s *proof.Step, stack []*scope) error {
	premises := make([]proof.Command, len(s.Premises))
	for i, ref := range s.Premises {
		cmd, err := resolvePremise(stack, ref)
		if err != nil {
			return err
		}
		premises[i] = cmd
	}

	start := time.Now()
	err := c.dispatch(s, premises)
	if c.cfg.Statistics != nil {
		c.cfg.Statistics.RecordStep(s.Rule, time.Since(start))
	}
	return err
}

func (c *Checker) dispatch(s *proof.Step, premises []proof.Command) error {
	if s.Rule == "lia_generic" {
		if !c.cfg.CheckLiaGenericUsingCvc5 {
			return nil
		}
		if c.cfg.LiaBridge == nil {
			return &LiaGenericRequiresBridgeError{StepID: s.ID}
		}
		return c.checkLiaGeneric(s)
	}

	rule, ok := rules.Lookup(s.Rule)
	if !ok {
		if c.cfg.Strict || !c.cfg.SkipUnknownRules {
			return &UnknownRuleError{Rule: s.Rule}
		}
		checklog.Warnf("encountered unknown rule %q, trusting step %q", s.Rule, s.ID)
		return nil
	}

	return rule(rules.RuleArgs{
		Conclusion: s.Clause,
		Premises:   premises,
		Args:       s.Args,
		Pool:       c.pool,
	})
}

// checkLiaGeneric delegates s to the configured LiaBridge and verifies the
// elaborated refutation it returns, re-entering the engine recursively
// over that elaboration (spec.md §2's "lia_generic uses external solver
// and re-enters Engine recursively", §4.H). The elaboration is checked as
// its own self-contained scope rather than spliced into the host command
// list: PremiseRefs elsewhere in the host proof are resolved to absolute
// (depth, index) pairs once, at parse time, so mutating the host's
// command list mid-check would invalidate every reference already
// computed for commands that follow this step. The elaboration's own
// glue rules ("not_not", "false", the discharge-marking "subproof" rule
// name Elaborate emits) are not part of this checker's verified rule
// set, so the recheck runs non-strict: only the "resolution" step tying
// the glue together, and the subproof's discharge obligations, are
// actually verified; the rest is trusted the same way carcara trusts its
// own "hole" step (spec.md §4.H, final sentence).
func (c *Checker) checkLiaGeneric(s *proof.Step) error {
	elaboration, warning := c.cfg.LiaBridge.Resolve(c.pool, c.cfg.Prelude, s.Clause)
	if warning != "" {
		checklog.Warnf("%s", warning)
		return nil
	}
	if len(elaboration) == 0 {
		return &LiaGenericRequiresBridgeError{StepID: s.ID}
	}

	inner := New(c.pool, Config{Strict: false, SkipUnknownRules: true})
	root := &scope{commands: elaboration}
	if err := inner.checkCommands(elaboration, []*scope{root}); err != nil {
		return fmt.Errorf("lia_generic elaboration: %w", err)
	}

	last := proof.ClauseOf(elaboration[len(elaboration)-1])
	if !sameClause(last, s.Clause) {
		return &LiaElaborationMismatchError{StepID: s.ID}
	}
	return nil
}

func sameClause(a, b []*term.Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkDischarge verifies that, if a subproof's closing command is a Step
// with discharge obligations, each discharged reference resolves to an
// Assume within that subproof's own scope (spec.md §4.E).
func (c *Checker) checkDischarge(sub *proof.Subproof) error {
	if len(sub.Commands) == 0 {
		return nil
	}
	closing, ok := sub.Commands[len(sub.Commands)-1].(*proof.Step)
	if !ok {
		return nil
	}
	inner := []*scope{{commands: sub.Commands}}
	for _, ref := range closing.Discharge {
		cmd, err := resolvePremise(inner, ref)
		if err != nil {
			return err
		}
		if _, ok := cmd.(*proof.Assume); !ok {
			return &DischargeNotAssumeError{SubproofID: sub.ID, Ref: ref}
		}
	}
	return nil
}

func resolvePremise(stack []*scope, ref proof.PremiseRef) (proof.Command, error) {
	level := len(stack) - 1 - ref.DepthDelta
	if level < 0 || level >= len(stack) {
		return nil, &InvalidPremiseRefError{Ref: ref}
	}
	target := stack[level]
	if ref.Index < 0 || ref.Index >= len(target.commands) {
		return nil, &InvalidPremiseRefError{Ref: ref}
	}
	return target.commands[ref.Index], nil
}
