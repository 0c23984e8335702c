package rules

import (
	"fmt"

	"github.com/kanso-lang/alethe/internal/la"
	"github.com/kanso-lang/alethe/internal/term"
)

// The error types below are the per-rule error taxonomy of spec.md §7
// ("Structural" and "Arithmetic" kinds). Each is a distinct Go type so
// callers can recover the offending term/value with errors.As, the same
// way carcara's CheckerError enum carries structured payloads per variant.

type ClauseLengthMismatchError struct{ Expected, Actual int }

func (e *ClauseLengthMismatchError) Error() string {
	return fmt.Sprintf("expected clause of length %d, got %d", e.Expected, e.Actual)
}

type WrongNumberOfArgsError struct{ Expected, Actual int }

func (e *WrongNumberOfArgsError) Error() string {
	return fmt.Sprintf("expected %d arguments, got %d", e.Expected, e.Actual)
}

type TermDoesNotMatchError struct {
	Shape string
	Term  *term.Term
}

func (e *TermDoesNotMatchError) Error() string {
	return fmt.Sprintf("term %q does not match expected shape %q", e.Term, e.Shape)
}

type NotEqualError struct{ A, B *term.Term }

func (e *NotEqualError) Error() string {
	return fmt.Sprintf("expected %q and %q to be the same term", e.A, e.B)
}

type InvalidDisequalityOpError struct{ Term *term.Term }

func (e *InvalidDisequalityOpError) Error() string {
	return fmt.Sprintf("term %q is not a valid disequality", e.Term)
}

type TooManyArgsInDisequalityError struct{ Term *term.Term }

func (e *TooManyArgsInDisequalityError) Error() string {
	return fmt.Sprintf("disequality %q does not have exactly two arguments", e.Term)
}

type ExpectedAnyNumberError struct{ Term *term.Term }

func (e *ExpectedAnyNumberError) Error() string {
	return fmt.Sprintf("expected %q to be a numeric literal", e.Term)
}

type ExpectedTermStyleArgError struct {
	Name  string
	Value *term.Term
}

func (e *ExpectedTermStyleArgError) Error() string {
	return fmt.Sprintf("expected a plain term argument, got assignment %s := %q", e.Name, e.Value)
}

type DisequalityIsNotContradictionError struct {
	Op       term.Operator
	Constant *term.Rat
}

func (e *DisequalityIsNotContradictionError) Error() string {
	return fmt.Sprintf("accumulated disequality \"0 %s %s\" is not contradictory", e.Op, e.Constant)
}

type DisequalityIsNotTautologyError struct {
	Op   term.Operator
	Comb *la.LinearComb
}

func (e *DisequalityIsNotTautologyError) Error() string {
	return fmt.Sprintf("disequality is not a tautology under operator %s", e.Op)
}

type ExpectedLessThanError struct{ A, B *term.Term }

func (e *ExpectedLessThanError) Error() string {
	return fmt.Sprintf("expected %q < %q", e.A, e.B)
}

type ExpectedLessEqError struct{ A, B *term.Term }

func (e *ExpectedLessEqError) Error() string {
	return fmt.Sprintf("expected %q <= %q", e.A, e.B)
}

type NotValidTautologyCaseError struct{ Term *term.Term }

func (e *NotValidTautologyCaseError) Error() string {
	return fmt.Sprintf("clause %q does not match any la_tautology case", e.Term)
}

// assertClauseLen checks that the conclusion has exactly n terms.
func assertClauseLen(conclusion []*term.Term, n int) error {
	if len(conclusion) != n {
		return &ClauseLengthMismatchError{Expected: n, Actual: len(conclusion)}
	}
	return nil
}

// assertNumArgs checks that args has exactly n elements.
func assertNumArgs(numArgs, n int) error {
	if numArgs != n {
		return &WrongNumberOfArgsError{Expected: n, Actual: numArgs}
	}
	return nil
}

func assertEq(a, b *term.Term) error {
	if a != b {
		return &NotEqualError{A: a, B: b}
	}
	return nil
}
