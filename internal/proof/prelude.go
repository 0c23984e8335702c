package proof

import (
	"fmt"
	"strings"
)

// SortDecl is a declared uninterpreted sort ("declare-sort name arity").
type SortDecl struct {
	Name  string
	Arity int
}

// FunDecl is a declared function or constant symbol ("declare-fun name
// (params) result").
type FunDecl struct {
	Name       string
	ParamSorts []string
	ResultSort string
}

// Prelude holds the declarations retained from the problem's SMT-LIB
// commands (spec.md §6: "only the declarations and asserts are retained
// into the prelude and premise set"). It is re-emitted verbatim when the
// lia_generic bridge constructs a problem string for the external solver.
type Prelude struct {
	Sorts []SortDecl
	Funs  []FunDecl
}

// String renders the prelude back to SMT-LIB syntax.
func (p *Prelude) String() string {
	var b strings.Builder
	for _, s := range p.Sorts {
		fmt.Fprintf(&b, "(declare-sort %s %d)\n", s.Name, s.Arity)
	}
	for _, f := range p.Funs {
		fmt.Fprintf(&b, "(declare-fun %s (%s) %s)\n", f.Name, strings.Join(f.ParamSorts, " "), f.ResultSort)
	}
	return b.String()
}
