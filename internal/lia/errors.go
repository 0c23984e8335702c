// Package lia implements the external-solver bridge for the "lia_generic"
// rule (spec.md §4.H): steps whose linear-integer-arithmetic reasoning is
// too broad for la_generic/la_tautology to check directly are instead
// handed to cvc5, and its Alethe proof is reparsed, rechecked, and
// elaborated into replacement commands that the checker verifies as their
// own scope (they are not spliced into the host proof). It is the Go translation of carcara's
// checker/lia_generic.rs
// (_examples/original_source/alethe-proof-checker/src/checker/lia_generic.rs).
package lia

import "fmt"

// FailedSpawnCvc5Error wraps an error starting the cvc5 subprocess.
type FailedSpawnCvc5Error struct{ Cause error }

func (e *FailedSpawnCvc5Error) Error() string {
	return fmt.Sprintf("failed to spawn cvc5: %v", e.Cause)
}
func (e *FailedSpawnCvc5Error) Unwrap() error { return e.Cause }

// FailedWriteToCvc5StdinError wraps an error writing the problem to cvc5's
// stdin.
type FailedWriteToCvc5StdinError struct{ Cause error }

func (e *FailedWriteToCvc5StdinError) Error() string {
	return fmt.Sprintf("failed to write to cvc5 stdin: %v", e.Cause)
}
func (e *FailedWriteToCvc5StdinError) Unwrap() error { return e.Cause }

// FailedWaitForCvc5Error wraps an error waiting for cvc5 to exit.
type FailedWaitForCvc5Error struct{ Cause error }

func (e *FailedWaitForCvc5Error) Error() string {
	return fmt.Sprintf("failed waiting for cvc5: %v", e.Cause)
}
func (e *FailedWaitForCvc5Error) Unwrap() error { return e.Cause }

// Cvc5TimeoutError is returned when cvc5 reports it hit its time limit.
type Cvc5TimeoutError struct{}

func (e *Cvc5TimeoutError) Error() string { return "cvc5 timed out" }

// Cvc5NonZeroExitCodeError is returned when cvc5 exits with a non-zero
// status for a reason other than a timeout.
type Cvc5NonZeroExitCodeError struct{ Code int }

func (e *Cvc5NonZeroExitCodeError) Error() string {
	return fmt.Sprintf("cvc5 exited with status %d", e.Code)
}

// Cvc5OutputNotUnsatError is returned when cvc5's first output line is not
// "unsat" (e.g. "sat" or "unknown"): the lia_generic step cannot be
// verified this way.
type Cvc5OutputNotUnsatError struct{ FirstLine string }

func (e *Cvc5OutputNotUnsatError) Error() string {
	return fmt.Sprintf("cvc5 did not report unsat (got %q)", e.FirstLine)
}

// Cvc5GaveInvalidOutputError is returned when cvc5's stdout is empty, so
// there is no first line to read a verdict from.
type Cvc5GaveInvalidOutputError struct{}

func (e *Cvc5GaveInvalidOutputError) Error() string { return "cvc5 produced no output" }

// InnerProofError wraps a failure parsing or rechecking the proof cvc5
// returned.
type InnerProofError struct{ Cause error }

func (e *InnerProofError) Error() string {
	return fmt.Sprintf("cvc5's returned proof did not check: %v", e.Cause)
}
func (e *InnerProofError) Unwrap() error { return e.Cause }
