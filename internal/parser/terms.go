package parser

import (
	"github.com/kanso-lang/alethe/internal/term"
)

// env tracks declared symbol sorts (from declare-fun/declare-const).
// toTerm interns each symbol as a term.Var with the sort recorded here, or
// with the empty sort for a symbol the env does not declare.
type env struct {
	sorts map[string]string
}

func newEnv() *env { return &env{sorts: make(map[string]string)} }

// NewEnv returns an empty symbol environment, for parsing proof text that
// declares no new symbols of its own (e.g. an external solver's returned
// proof, which only refers to symbols the host problem already declared).
func NewEnv() *Env { return newEnv() }

// Env is the exported name for the symbol environment built by
// ParseProblem and threaded into ParseProof.
type Env = env

func (e *env) declare(name, sort string) { e.sorts[name] = sort }

var operatorKeywords = map[string]term.Operator{
	"and": term.And, "or": term.Or, "not": term.Not, "=>": term.Implies,
	"ite": term.Ite, "=": term.Equals, "distinct": term.Distinct,
	"<": term.LessThan, "<=": term.LessEq, ">": term.GreaterThan, ">=": term.GreaterEq,
	"+": term.Add, "-": term.Sub, "*": term.Mult, "/": term.Div,
}

// toTerm converts a parsed s-expression into an interned term.Term.
func toTerm(pool *term.Pool, e *env, s SExpr) (*term.Term, error) {
	if !s.IsList {
		return atomToTerm(pool, e, s)
	}
	if len(s.List) == 0 {
		return nil, errAt(s, "empty term")
	}

	head := s.List[0]
	switch {
	case head.Atom == "forall" || head.Atom == "exists" || head.Atom == "let":
		return toBinder(pool, e, head.Atom, s)
	case !head.IsList:
		if op, ok := operatorKeywords[head.Atom]; ok {
			args, err := toTermList(pool, e, s.List[1:])
			if err != nil {
				return nil, err
			}
			return pool.Op(op, args...), nil
		}
		args, err := toTermList(pool, e, s.List[1:])
		if err != nil {
			return nil, err
		}
		fn := pool.Var(head.Atom, e.sorts[head.Atom])
		return pool.App(fn, args...), nil
	default:
		return nil, errAt(head, "expected an operator or function symbol")
	}
}

func toTermList(pool *term.Pool, e *env, list []SExpr) ([]*term.Term, error) {
	out := make([]*term.Term, len(list))
	for i, s := range list {
		t, err := toTerm(pool, e, s)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func atomToTerm(pool *term.Pool, e *env, s SExpr) (*term.Term, error) {
	switch s.Kind {
	case "Numeral", "Decimal":
		r, ok := term.ParseRatLiteral(s.Atom)
		if !ok {
			return nil, errAt(s, "invalid numeric literal %q", s.Atom)
		}
		return pool.Num(r), nil
	case "String":
		return pool.Str(s.Atom[1 : len(s.Atom)-1]), nil
	default:
		switch s.Atom {
		case "true":
			return pool.Bool(true), nil
		case "false":
			return pool.Bool(false), nil
		default:
			return pool.Var(s.Atom, e.sorts[s.Atom]), nil
		}
	}
}

func toBinder(pool *term.Pool, e *env, kind string, s SExpr) (*term.Term, error) {
	if len(s.List) != 3 || !s.List[1].IsList {
		return nil, errAt(s, "%s expects a binding list and a body", kind)
	}

	var binderKind term.BinderKind
	switch kind {
	case "forall":
		binderKind = term.Forall
	case "exists":
		binderKind = term.Exists
	case "let":
		binderKind = term.Let
	}

	bindings := make([]term.Binding, 0, len(s.List[1].List))
	for _, b := range s.List[1].List {
		if !b.IsList || len(b.List) != 2 {
			return nil, errAt(b, "expected a (name sort-or-term) binding")
		}
		name := b.List[0].Atom
		if kind == "let" {
			value, err := toTerm(pool, e, b.List[1])
			if err != nil {
				return nil, err
			}
			bindings = append(bindings, term.Binding{Name: name, Value: value})
		} else {
			bindings = append(bindings, term.Binding{Name: name, Sort: b.List[1].Atom})
		}
	}

	body, err := toTerm(pool, e, s.List[2])
	if err != nil {
		return nil, err
	}
	return pool.Binder(binderKind, bindings, body), nil
}
