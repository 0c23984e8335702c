// Package rules implements the rule registry (spec.md §4.D) and the rule
// functions themselves: the linear-arithmetic suite (§4.F) and resolution
// (§4.G). Every rule has the uniform signature RuleFunc, mirroring
// carcara's `Rule` calling convention
// (_examples/original_source/src/checker/mod.rs, type Rule).
package rules

import (
	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// RuleArgs bundles everything a rule function needs to check one step:
// the clause it must derive, the resolved premise commands, its
// declared arguments, and the term pool (rules that build new terms, such
// as none in this suite but kept for uniformity with the engine's other
// call sites, intern through it).
type RuleArgs struct {
	Conclusion []*term.Term
	Premises   []proof.Command
	Args       []proof.Arg
	Pool       *term.Pool
}

// RuleFunc checks one step and returns nil if it is a valid instance of
// the rule, or a typed error (see errors.go) otherwise.
type RuleFunc func(RuleArgs) error
