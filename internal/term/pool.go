package term

// Pool is the single owner and creator of all Terms used by one checker
// run. It hash-conses terms: a logically equal term is only ever stored
// once, and downstream code compares terms by pointer identity. A Pool is
// not safe for concurrent use; spec.md §5 scopes one Pool to one Checker
// to one goroutine.
type Pool struct {
	terms map[string]*Term

	boolTrue  *Term
	boolFalse *Term
}

// NewPool creates an empty term pool.
func NewPool() *Pool {
	p := &Pool{terms: make(map[string]*Term)}
	p.boolTrue = p.intern(&Term{Kind: ConstBool, BoolVal: true})
	p.boolFalse = p.intern(&Term{Kind: ConstBool, BoolVal: false})
	return p
}

// intern returns the canonical Term for t's shape, computing t's key from
// its (already-interned) children. Callers must not mutate t after
// calling intern.
func (p *Pool) intern(t *Term) *Term {
	key := t.computeKey()
	if existing, ok := p.terms[key]; ok {
		return existing
	}
	t.key = key
	p.terms[key] = t
	return t
}

func (p *Pool) BoolTrue() *Term  { return p.boolTrue }
func (p *Pool) BoolFalse() *Term { return p.boolFalse }

// Bool interns the boolean constant with the given value.
func (p *Pool) Bool(v bool) *Term {
	if v {
		return p.boolTrue
	}
	return p.boolFalse
}

// Num interns a numeric literal.
func (p *Pool) Num(r *Rat) *Term {
	return p.intern(&Term{Kind: ConstNum, NumVal: r})
}

// Str interns a string literal.
func (p *Pool) Str(s string) *Term {
	return p.intern(&Term{Kind: ConstString, StrVal: s})
}

// Var interns a declared constant/variable symbol with its sort.
func (p *Pool) Var(name, sort string) *Term {
	return p.intern(&Term{Kind: VarNode, Name: name, Sort: sort})
}

// Op interns an operator application. args must already be interned.
func (p *Pool) Op(op Operator, args ...*Term) *Term {
	return p.intern(&Term{Kind: OpNode, Op: op, Args: args})
}

// App interns a function application. head and args must already be
// interned.
func (p *Pool) App(head *Term, args ...*Term) *Term {
	return p.intern(&Term{Kind: AppNode, Head: head, Args: args})
}

// Binder interns a quantifier or let term. body and any binding values
// must already be interned.
func (p *Pool) Binder(kind BinderKind, bindings []Binding, body *Term) *Term {
	return p.intern(&Term{Kind: BinderNode, Binder: kind, Bindings: bindings, Body: body})
}

// Size reports how many distinct terms the pool has interned, mostly for
// statistics/debugging.
func (p *Pool) Size() int { return len(p.terms) }
