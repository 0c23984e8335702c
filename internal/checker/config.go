package checker

import (
	"time"

	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// StepRecorder receives per-step timing, letting a caller (e.g.
// internal/bench) observe the checker's progress without the engine
// depending on the benchmarking package.
type StepRecorder interface {
	RecordStep(rule string, d time.Duration)
}

// LiaBridge delegates a "lia_generic" step to an external solver
// (spec.md §4.H) and returns the elaborated refutation commands that
// justify it, or a non-empty warning if the external oracle could not be
// reached or did not confirm unsatisfiability — matching §7's policy of
// accepting the step unchanged rather than failing the whole proof.
// Defined here (rather than implemented in this package) so a Checker can
// depend on the bridge without this package importing internal/lia, which
// itself imports internal/checker to recheck the solver's returned proof.
type LiaBridge interface {
	Resolve(pool *term.Pool, prelude *proof.Prelude, conclusion []*term.Term) (elaboration []proof.Command, warning string)
}

// Config controls how a Checker behaves (spec.md §5).
type Config struct {
	// Strict makes an unknown rule name a hard failure.
	Strict bool
	// SkipUnknownRules, when Strict is false, lets the checker tolerate
	// rule names it does not recognize by trusting the step's conclusion
	// instead of failing the whole proof.
	SkipUnknownRules bool
	// CheckLiaGenericUsingCvc5 enables the external-solver bridge for the
	// "lia_generic" rule (spec.md §4.H). When false, lia_generic steps are
	// trusted without verification, matching carcara's stubbed-out
	// handling before the bridge was wired in
	// (original_source/alethe-proof-checker/src/checker/rules/linear_arithmetic.rs,
	// the lia_generic entry).
	CheckLiaGenericUsingCvc5 bool
	// LiaBridge performs the actual delegation when CheckLiaGenericUsingCvc5
	// is set; a nil bridge leaves a "lia_generic" step unverifiable
	// (LiaGenericRequiresBridgeError). internal/lia's Bridge type implements
	// this.
	LiaBridge LiaBridge
	// Prelude carries the retained sort/function declarations a lia_generic
	// step's SMT-LIB instance needs re-emitted to the external solver
	// (spec.md §3, "prelude").
	Prelude *proof.Prelude
	// Statistics, if set, receives per-step timing.
	Statistics StepRecorder
}
