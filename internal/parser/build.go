package parser

import (
	"fmt"
	"strconv"

	"github.com/kanso-lang/alethe/internal/proof"
	"github.com/kanso-lang/alethe/internal/term"
)

// ParseError reports a malformed command at a given source position.
type ParseError struct {
	Pos     lexerPosition
	Message string
}

type lexerPosition struct {
	Filename string
	Line     int
	Column   int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

func errAt(e SExpr, format string, args ...interface{}) error {
	return &ParseError{
		Pos:     lexerPosition{Filename: e.Position.Filename, Line: e.Position.Line, Column: e.Position.Column},
		Message: fmt.Sprintf(format, args...),
	}
}

// ParseProblem reads SMT-LIB commands (declare-sort, declare-fun, assert;
// set-logic/set-option/check-sat/exit are recognized and ignored) and
// returns the retained prelude and the list of asserted premise terms
// (spec.md §6, "only the declarations and asserts are retained into the
// prelude and premise set").
func ParseProblem(pool *term.Pool, filename, src string) (*proof.Prelude, []*term.Term, *Env, error) {
	exprs, err := ParseAll(filename, src)
	if err != nil {
		return nil, nil, nil, err
	}

	prelude := &proof.Prelude{}
	var premises []*term.Term
	env := newEnv()

	for _, e := range exprs {
		if !e.IsList || len(e.List) == 0 {
			return nil, nil, nil, errAt(e, "expected a command")
		}
		head := e.List[0]
		switch head.Atom {
		case "set-logic", "set-option", "set-info", "check-sat", "exit", "get-proof":
			continue
		case "declare-sort":
			if len(e.List) != 3 {
				return nil, nil, nil, errAt(e, "declare-sort expects 2 arguments")
			}
			arity, err := strconv.Atoi(e.List[2].Atom)
			if err != nil {
				return nil, nil, nil, errAt(e.List[2], "expected an arity")
			}
			prelude.Sorts = append(prelude.Sorts, proof.SortDecl{Name: e.List[1].Atom, Arity: arity})
		case "declare-fun", "declare-const":
			name, params, result, err := parseFunDecl(head.Atom, e)
			if err != nil {
				return nil, nil, nil, err
			}
			prelude.Funs = append(prelude.Funs, proof.FunDecl{Name: name, ParamSorts: params, ResultSort: result})
			env.declare(name, result)
		case "assert":
			if len(e.List) != 2 {
				return nil, nil, nil, errAt(e, "assert expects 1 argument")
			}
			t, err := toTerm(pool, env, e.List[1])
			if err != nil {
				return nil, nil, nil, err
			}
			premises = append(premises, t)
		default:
			return nil, nil, nil, errAt(head, "unrecognized problem command %q", head.Atom)
		}
	}
	return prelude, premises, env, nil
}

func parseFunDecl(keyword string, e SExpr) (name string, params []string, result string, err error) {
	if keyword == "declare-const" {
		if len(e.List) != 3 {
			return "", nil, "", errAt(e, "declare-const expects 2 arguments")
		}
		return e.List[1].Atom, nil, e.List[2].Atom, nil
	}
	if len(e.List) != 4 {
		return "", nil, "", errAt(e, "declare-fun expects 3 arguments")
	}
	if !e.List[2].IsList {
		return "", nil, "", errAt(e.List[2], "expected a parameter sort list")
	}
	for _, p := range e.List[2].List {
		params = append(params, p.Atom)
	}
	return e.List[1].Atom, params, e.List[3].Atom, nil
}

// ParseProof reads an Alethe proof script: a sequence of (assume ...),
// (step ...) and (subproof <id> <commands...>) commands; the subproof form
// is a nested simplification of Alethe's anchor-based concrete syntax, and
// the Subproof it builds carries no context bindings. premises is the problem's asserted hypothesis set, as
// returned by ParseProblem, and is carried into the returned Proof
// unchanged so the checker can validate top-level Assume commands against
// it (spec.md §3, §4.E).
func ParseProof(pool *term.Pool, env *Env, premises []*term.Term, filename, src string) (*proof.Proof, error) {
	exprs, err := ParseAll(filename, src)
	if err != nil {
		return nil, err
	}
	ids := newIDScope(nil)
	commands, err := buildCommands(pool, env, ids, exprs)
	if err != nil {
		return nil, err
	}
	return &proof.Proof{Premises: premises, Commands: commands}, nil
}

// idScope tracks, for the current nesting level, which command index each
// command id was assigned, so that step/discharge references (written as
// ids in the concrete syntax) resolve to (depth_delta, index) pairs at
// parse time (spec.md §6).
type idScope struct {
	parent  *idScope
	indexOf map[string]int
}

func newIDScope(parent *idScope) *idScope {
	return &idScope{parent: parent, indexOf: make(map[string]int)}
}

func (s *idScope) define(id string, index int) { s.indexOf[id] = index }

// resolve finds id starting from this scope and walking outward, returning
// the depth delta (0 = this scope) and index.
func (s *idScope) resolve(id string) (proof.PremiseRef, bool) {
	depth := 0
	for scope := s; scope != nil; scope = scope.parent {
		if idx, ok := scope.indexOf[id]; ok {
			return proof.PremiseRef{DepthDelta: depth, Index: idx}, true
		}
		depth++
	}
	return proof.PremiseRef{}, false
}

func buildCommands(pool *term.Pool, tenv *env, ids *idScope, exprs []SExpr) ([]proof.Command, error) {
	var commands []proof.Command
	for _, e := range exprs {
		if !e.IsList || len(e.List) == 0 {
			return nil, errAt(e, "expected a command")
		}
		head := e.List[0].Atom
		switch head {
		case "assume":
			if len(e.List) != 3 {
				return nil, errAt(e, "assume expects an id and a term")
			}
			t, err := toTerm(pool, tenv, e.List[2])
			if err != nil {
				return nil, err
			}
			id := e.List[1].Atom
			ids.define(id, len(commands))
			commands = append(commands, &proof.Assume{ID: id, Term: t})
		case "step":
			step, err := buildStep(pool, tenv, ids, e)
			if err != nil {
				return nil, err
			}
			ids.define(step.ID, len(commands))
			commands = append(commands, step)
		case "subproof":
			if len(e.List) < 2 {
				return nil, errAt(e, "subproof expects an id")
			}
			id := e.List[1].Atom
			inner := newIDScope(ids)
			innerCommands, err := buildCommands(pool, tenv, inner, e.List[2:])
			if err != nil {
				return nil, err
			}
			ids.define(id, len(commands))
			commands = append(commands, &proof.Subproof{ID: id, Commands: innerCommands})
		default:
			return nil, errAt(e.List[0], "unrecognized proof command %q", head)
		}
	}
	return commands, nil
}

func buildStep(pool *term.Pool, tenv *env, ids *idScope, e SExpr) (*proof.Step, error) {
	if len(e.List) < 3 {
		return nil, errAt(e, "step expects an id and a clause")
	}
	id := e.List[1].Atom
	clauseExpr := e.List[2]
	if !clauseExpr.IsList || len(clauseExpr.List) == 0 || clauseExpr.List[0].Atom != "cl" {
		return nil, errAt(clauseExpr, "expected (cl <terms...>)")
	}
	clause := make([]*term.Term, 0, len(clauseExpr.List)-1)
	for _, t := range clauseExpr.List[1:] {
		built, err := toTerm(pool, tenv, t)
		if err != nil {
			return nil, err
		}
		clause = append(clause, built)
	}

	step := &proof.Step{ID: id, Clause: clause}
	i := 3
	for i < len(e.List) {
		kw := e.List[i]
		switch kw.Atom {
		case ":rule":
			if i+1 >= len(e.List) {
				return nil, errAt(kw, ":rule expects a name")
			}
			step.Rule = e.List[i+1].Atom
			i += 2
		case ":premises":
			refs, err := resolveRefList(ids, e.List[i+1])
			if err != nil {
				return nil, err
			}
			step.Premises = refs
			i += 2
		case ":discharge":
			refs, err := resolveRefList(ids, e.List[i+1])
			if err != nil {
				return nil, err
			}
			step.Discharge = refs
			i += 2
		case ":args":
			args, err := buildArgs(pool, tenv, e.List[i+1])
			if err != nil {
				return nil, err
			}
			step.Args = args
			i += 2
		default:
			return nil, errAt(kw, "unrecognized step attribute %q", kw.Atom)
		}
	}
	return step, nil
}

func resolveRefList(ids *idScope, list SExpr) ([]proof.PremiseRef, error) {
	if !list.IsList {
		return nil, errAt(list, "expected a list of ids")
	}
	refs := make([]proof.PremiseRef, 0, len(list.List))
	for _, item := range list.List {
		ref, ok := ids.resolve(item.Atom)
		if !ok {
			return nil, errAt(item, "undefined reference %q", item.Atom)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func buildArgs(pool *term.Pool, tenv *env, list SExpr) ([]proof.Arg, error) {
	if !list.IsList {
		return nil, errAt(list, "expected an argument list")
	}
	args := make([]proof.Arg, 0, len(list.List))
	for _, item := range list.List {
		if item.IsList && len(item.List) == 3 && item.List[1].Atom == ":=" {
			value, err := toTerm(pool, tenv, item.List[2])
			if err != nil {
				return nil, err
			}
			args = append(args, proof.Arg{Kind: proof.ArgAssign, Name: item.List[0].Atom, Value: value})
			continue
		}
		t, err := toTerm(pool, tenv, item)
		if err != nil {
			return nil, err
		}
		args = append(args, proof.Arg{Kind: proof.ArgTerm, Term: t})
	}
	return args, nil
}
