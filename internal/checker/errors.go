package checker

import (
	"fmt"

	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// UnknownRuleError is returned in strict mode (or when SkipUnknownRules is
// false) for a step naming a rule the checker has no implementation for.
type UnknownRuleError struct{ Rule string }

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.Rule)
}

// AssumeNotFoundError is returned for an Assume command whose term is
// neither one of the proof's asserted premises (at the top level) nor a
// context binding introduced by the enclosing sub-proof (spec.md §4.E:
// "verify that term is in the enclosing premise set ... or matches some
// context-introduced binding ... otherwise fail AssumeNotFound").
type AssumeNotFoundError struct{ Term *term.Term }

func (e *AssumeNotFoundError) Error() string {
	return fmt.Sprintf("assumed term %q is not an asserted premise or context binding in scope", e.Term)
}

// LiaElaborationMismatchError is returned when the external-solver
// bridge's elaborated replacement for a lia_generic step concludes a
// different clause than the step itself claims; this should be
// unreachable given Elaborate's construction, but is checked defensively
// rather than trusted blindly.
type LiaElaborationMismatchError struct{ StepID string }

func (e *LiaElaborationMismatchError) Error() string {
	return fmt.Sprintf("step %q: lia_generic elaboration concludes a different clause than the step", e.StepID)
}

// InvalidPremiseRefError is returned when a step's premise reference does
// not resolve to an existing command: its depth delta walks past the root
// scope, or its index is out of range for the resolved scope.
type InvalidPremiseRefError struct{ Ref proof.PremiseRef }

func (e *InvalidPremiseRefError) Error() string {
	return fmt.Sprintf("premise reference (depth %d, index %d) does not resolve", e.Ref.DepthDelta, e.Ref.Index)
}

// LiaGenericRequiresBridgeError is returned for a "lia_generic" step when
// Config.CheckLiaGenericUsingCvc5 is true but no bridge was wired in, or
// the bridge returned neither an elaboration nor a warning: such a step
// cannot be checked internally (spec.md §4.H), only delegated.
type LiaGenericRequiresBridgeError struct{ StepID string }

func (e *LiaGenericRequiresBridgeError) Error() string {
	return fmt.Sprintf("step %q: lia_generic requires the external-solver bridge", e.StepID)
}

// DischargeNotAssumeError is returned when a subproof's closing step
// discharges a premise reference that does not resolve to an Assume within
// that subproof's own scope.
type DischargeNotAssumeError struct {
	SubproofID string
	Ref        proof.PremiseRef
}

func (e *DischargeNotAssumeError) Error() string {
	return fmt.Sprintf("subproof %q: discharged reference (depth %d, index %d) is not an assumption in scope",
		e.SubproofID, e.Ref.DepthDelta, e.Ref.Index)
}
