package lia

import (
	"fmt"
	"io"

	"github.com/kanso-lang/alethe/internal/term"
)

// PrintLiaSMTInstance writes the negation of each disjunct of a
// lia_generic step's conclusion as a separate assertion: if cvc5 finds
// that conjunction of negations unsatisfiable, the original clause (their
// disjunction) is valid. Mirrors carcara's write_lia_smt_instance.
func PrintLiaSMTInstance(w io.Writer, conclusion []*term.Term) error {
	for _, t := range conclusion {
		if _, err := fmt.Fprintf(w, "(assert (not %s))\n", t); err != nil {
			return err
		}
	}
	return nil
}
