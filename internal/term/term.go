package term

import (
	"fmt"
	"strings"
)

// Kind discriminates the closed set of term shapes described in spec.md §3.
type Kind int

const (
	ConstBool Kind = iota
	ConstNum
	ConstString
	VarNode
	OpNode
	AppNode
	BinderNode
)

// BinderKind distinguishes the binders a BinderNode term may carry.
type BinderKind int

const (
	Forall BinderKind = iota
	Exists
	Let
)

// Binding is one (name [sort] [value]) pair under a binder. Quantifier
// bindings carry a Sort and no Value; "let" bindings carry a Value and no
// Sort.
type Binding struct {
	Name  string
	Sort  string
	Value *Term
}

// Term is an immutable, hash-consed node in the syntax tree of an SMT
// formula or proof term. Two Terms that are structurally equal are always
// the same pointer once both have been interned by the same Pool; callers are
// expected to compare Terms by identity (==), never structurally.
//
// A Term's children, when it has any, must already be interned: the Pool
// never reaches inside a Term to intern its Args after the fact (spec.md
// §3, "Term pool").
type Term struct {
	Kind Kind

	BoolVal bool
	NumVal  *Rat
	StrVal  string

	Name string // VarNode
	Sort string // VarNode

	Op   Operator // OpNode
	Args []*Term  // OpNode, AppNode

	Head *Term // AppNode: the applied function symbol, itself a VarNode

	Binder   BinderKind
	Bindings []Binding
	Body     *Term

	key string
}

// computeKey computes the structural cache key used by the Pool to hash-cons this
// shape. It assumes all child Terms are already interned pointers, so
// their identity (not their structure) is embedded in the key.
func (t *Term) computeKey() string {
	var b strings.Builder
	switch t.Kind {
	case ConstBool:
		fmt.Fprintf(&b, "bool:%v", t.BoolVal)
	case ConstNum:
		fmt.Fprintf(&b, "num:%s", t.NumVal.Key())
	case ConstString:
		fmt.Fprintf(&b, "str:%q", t.StrVal)
	case VarNode:
		fmt.Fprintf(&b, "var:%s:%s", t.Name, t.Sort)
	case OpNode:
		fmt.Fprintf(&b, "op:%d", t.Op)
		for _, a := range t.Args {
			fmt.Fprintf(&b, ":%p", a)
		}
	case AppNode:
		fmt.Fprintf(&b, "app:%p", t.Head)
		for _, a := range t.Args {
			fmt.Fprintf(&b, ":%p", a)
		}
	case BinderNode:
		fmt.Fprintf(&b, "binder:%d", t.Binder)
		for _, bind := range t.Bindings {
			fmt.Fprintf(&b, ":%s:%s:%p", bind.Name, bind.Sort, bind.Value)
		}
		fmt.Fprintf(&b, ":%p", t.Body)
	}
	return b.String()
}

// String renders a Term back to SMT-LIB-ish syntax, for error messages and
// the lia_generic problem printer.
func (t *Term) String() string {
	switch t.Kind {
	case ConstBool:
		if t.BoolVal {
			return "true"
		}
		return "false"
	case ConstNum:
		return t.NumVal.String()
	case ConstString:
		return fmt.Sprintf("%q", t.StrVal)
	case VarNode:
		return t.Name
	case OpNode:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = a.String()
		}
		return "(" + t.Op.String() + " " + strings.Join(parts, " ") + ")"
	case AppNode:
		parts := make([]string, len(t.Args))
		for i, a := range t.Args {
			parts[i] = a.String()
		}
		return "(" + t.Head.String() + " " + strings.Join(parts, " ") + ")"
	case BinderNode:
		kw := map[BinderKind]string{Forall: "forall", Exists: "exists", Let: "let"}[t.Binder]
		parts := make([]string, len(t.Bindings))
		for i, bind := range t.Bindings {
			if t.Binder == Let {
				parts[i] = fmt.Sprintf("(%s %s)", bind.Name, bind.Value.String())
			} else {
				parts[i] = fmt.Sprintf("(%s %s)", bind.Name, bind.Sort)
			}
		}
		return fmt.Sprintf("(%s (%s) %s)", kw, strings.Join(parts, " "), t.Body.String())
	default:
		return "<bad-term>"
	}
}
