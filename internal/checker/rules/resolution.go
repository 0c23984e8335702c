package rules

import (
	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// polarity is the polarity a term was encountered under while scanning a
// premise clause (src/checker/mod.rs, rules::resolution).
type polarity int

const (
	positive polarity = iota
	negative
	both
)

// toPositive strips a single leading negation from t, returning the
// stripped term and the polarity it was found under. It assumes t has at
// most one leading "not" (never "(not (not ...))").
func toPositive(t *term.Term) (*term.Term, polarity) {
	if inner := t.RemoveNegation(); inner != nil {
		return inner, negative
	}
	return t, positive
}

// Resolution implements the "resolution" rule: the conclusion must be
// exactly the set of terms that appear, across all premises, under a
// single polarity, each kept in the polarity it was found under. A term
// that appears under both polarities in the premises is resolved away and
// must not appear in the conclusion.
func Resolution(a RuleArgs) error {
	encountered := make(map[*term.Term]polarity)

	for _, premise := range a.Premises {
		for _, t := range proof.ClauseOf(premise) {
			pos, pol := toPositive(t)
			if existing, ok := encountered[pos]; ok {
				if existing != both && existing != pol {
					encountered[pos] = both
				}
			} else {
				encountered[pos] = pol
			}
		}
	}

	expectedLen := 0
	for _, pol := range encountered {
		if pol != both {
			expectedLen++
		}
	}
	if len(a.Conclusion) != expectedLen {
		return &ClauseLengthMismatchError{Expected: expectedLen, Actual: len(a.Conclusion)}
	}

	for _, t := range a.Conclusion {
		pos, pol := toPositive(t)
		if existing, ok := encountered[pos]; !ok || existing != pol {
			return &TermDoesNotMatchError{Shape: "resolvent of its premises", Term: t}
		}
	}
	return nil
}
