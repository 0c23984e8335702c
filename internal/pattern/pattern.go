// Package pattern implements the declarative structural matcher described
// in spec.md §4.B: given a shape built out of a small set of combinators,
// it matches a candidate term and returns the captured sub-terms, or
// reports failure. It is the idiomatic-Go translation of the match_term!
// and match_op! macros in carcara (_examples/original_source), which rely
// on Rust's macro system to build nested-tuple destructuring; Go has no
// macros, so the same declarative intent is expressed as composable
// Pattern values built from ordinary functions instead.
//
// A capture name used in more than one position of a pattern is *not*
// unified automatically — each occurrence simply overwrites the same slot
// in Bindings. Rules that need two positions to denote the same term
// capture them under different names and assert the equality themselves
// (spec.md §4.B: "Rules interpret matched tuples and assert the required
// identities themselves").
package pattern

import "github.com/kanso-lang/alethe/internal/term"

// Bindings maps capture names to the sub-terms a pattern matched them
// against.
type Bindings map[string]*term.Term

// Get returns a captured term, or nil if name was never captured.
func (b Bindings) Get(name string) *term.Term { return b[name] }

// Pattern is a single node of a declarative term shape.
type Pattern interface {
	match(t *term.Term, b Bindings) bool
}

// Match attempts to match p against t, returning the captures made and
// whether the match succeeded. On failure the returned Bindings may be
// partially populated and must be ignored.
func Match(p Pattern, t *term.Term) (Bindings, bool) {
	b := make(Bindings)
	ok := p.match(t, b)
	return b, ok
}

// Capture matches any term and records it under name.
func Capture(name string) Pattern { return capturePattern{name} }

type capturePattern struct{ name string }

func (c capturePattern) match(t *term.Term, b Bindings) bool {
	b[c.name] = t
	return true
}

// Any matches any term without capturing it.
func Any() Pattern { return anyPattern{} }

type anyPattern struct{}

func (anyPattern) match(*term.Term, Bindings) bool { return true }

// Op matches an operator application with exactly the given operator and
// argument patterns, in order.
func Op(op term.Operator, args ...Pattern) Pattern {
	return opPattern{op: op, args: args}
}

type opPattern struct {
	op   term.Operator
	args []Pattern
}

func (p opPattern) match(t *term.Term, b Bindings) bool {
	if t.Kind != term.OpNode || t.Op != p.op || len(t.Args) != len(p.args) {
		return false
	}
	for i, argPat := range p.args {
		if !argPat.match(t.Args[i], b) {
			return false
		}
	}
	return true
}

// Not matches "(not inner)".
func Not(inner Pattern) Pattern { return Op(term.Not, inner) }
