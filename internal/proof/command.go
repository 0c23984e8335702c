// Package proof defines the in-memory representation of an Alethe proof
// script: premises, the ordered command list, and the sum type of
// commands (spec.md §3, "Proof").
package proof

import "github.com/kanso-lang/alethe/internal/term"

// PremiseRef locates a command relative to the scope a Step appears in.
// DepthDelta == 0 means the enclosing scope; a positive delta resolves
// upward through enclosing sub-proofs. Index is the command's position
// within that scope (spec.md §3, "Premise reference").
type PremiseRef struct {
	DepthDelta int
	Index      int
}

// ArgKind discriminates the two forms a ProofArg may take.
type ArgKind int

const (
	ArgTerm ArgKind = iota
	ArgAssign
)

// Arg is either a bare term or a named assignment (name := value); rules
// declare which form they expect for each of their arguments.
type Arg struct {
	Kind  ArgKind
	Term  *term.Term // ArgTerm
	Name  string     // ArgAssign
	Value *term.Term // ArgAssign
}

// Command is the sum type of Assume, Step and Subproof. It is a closed
// set (spec.md §9, "Tagged variants"); exhaustive type switches are
// expected everywhere a Command is consumed.
type Command interface {
	CommandID() string
	command()
}

// Assume is a leaf command introducing a premise into scope.
type Assume struct {
	ID   string
	Term *term.Term
}

func (a *Assume) CommandID() string { return a.ID }
func (*Assume) command()            {}

// Step derives a clause from premises via a named rule.
type Step struct {
	ID        string
	Clause    []*term.Term
	Rule      string
	Premises  []PremiseRef
	Args      []Arg
	Discharge []PremiseRef
}

func (s *Step) CommandID() string { return s.ID }
func (*Step) command()            {}

// ContextBinding is a (name, value) pair introduced by a Subproof's
// anchor, e.g. to name a Skolem constant or share a let-bound term with
// the enclosing scope.
type ContextBinding struct {
	Name  string
	Value *term.Term
}

// Subproof is a nested scope. Its last command's clause is exported to the
// enclosing scope; discharge obligations on the closing step are checked
// against that scope's open assumptions (spec.md §4.E).
type Subproof struct {
	ID          string
	Commands    []Command
	Assignments []ContextBinding
}

func (s *Subproof) CommandID() string { return s.ID }
func (*Subproof) command()            {}

// Conclusion returns the exported clause of a subproof: its last command's
// clause (or, if the last command is itself an Assume, its singleton
// clause).
func (s *Subproof) Conclusion() []*term.Term {
	if len(s.Commands) == 0 {
		return nil
	}
	return ClauseOf(s.Commands[len(s.Commands)-1])
}

// ClauseOf returns the clause a command denotes: a Step's clause, an
// Assume's singleton clause, or a Subproof's exported conclusion.
func ClauseOf(c Command) []*term.Term {
	switch cmd := c.(type) {
	case *Assume:
		return []*term.Term{cmd.Term}
	case *Step:
		return cmd.Clause
	case *Subproof:
		return cmd.Conclusion()
	default:
		return nil
	}
}

// Proof is a full proof script: the asserted hypotheses plus the ordered
// command sequence.
type Proof struct {
	Premises []*term.Term
	Commands []Command
}
