package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)



// SExpr is a parsed s-expression: either an atom (a token's literal text)
// or a list of nested s-expressions.
type SExpr struct {
	Atom     string
	Kind     string // the lexer rule name that produced Atom; "" for a List
	List     []SExpr
	IsList   bool
	Position lexer.Position
}

func (e SExpr) String() string {
	if !e.IsList {
		return e.Atom
	}
	parts := make([]string, len(e.List))
	for i, c := range e.List {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// reader consumes a flat token stream and builds a tree of SExprs.
type reader struct {
	tokens []lexer.Token
	pos    int
}

// tokenize runs the lexer over src.
func tokenize(filename string, src string) ([]lexer.Token, error) {
	lex, err := SExprLexer.Lex(filename, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	var out []lexer.Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.EOF() {
			break
		}
		out = append(out, tok)
	}
	return out, nil
}

// symbolName resolves a token's type to the rule name it was produced
// from, since participle represents token kinds as an integer keyed
// against the lexer definition's symbol table.
func symbolName(def lexer.Definition, tok lexer.Token) string {
	for name, id := range def.Symbols() {
		if id == tok.Type {
			return name
		}
	}
	return ""
}

// filterTrivia removes whitespace and comment tokens from a token slice.
func filterTrivia(def lexer.Definition, tokens []lexer.Token) []lexer.Token {
	out := tokens[:0]
	for _, tok := range tokens {
		switch symbolName(def, tok) {
		case "Whitespace", "Comment":
			continue
		default:
			out = append(out, tok)
		}
	}
	return out
}

// ParseAll tokenizes src and reads every top-level s-expression in it.
func ParseAll(filename, src string) ([]SExpr, error) {
	raw, err := tokenize(filename, src)
	if err != nil {
		return nil, err
	}
	tokens := filterTrivia(SExprLexer, raw)

	r := &reader{tokens: tokens}
	var exprs []SExpr
	for !r.atEnd() {
		e, err := r.readExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func (r *reader) atEnd() bool { return r.pos >= len(r.tokens) }

func (r *reader) peek() (lexer.Token, bool) {
	if r.atEnd() {
		return lexer.Token{}, false
	}
	return r.tokens[r.pos], true
}

func (r *reader) next() (lexer.Token, bool) {
	tok, ok := r.peek()
	if ok {
		r.pos++
	}
	return tok, ok
}

func (r *reader) readExpr() (SExpr, error) {
	tok, ok := r.next()
	if !ok {
		return SExpr{}, fmt.Errorf("parser: unexpected end of input")
	}
	kind := symbolName(SExprLexer, tok)
	switch kind {
	case "LParen":
		var list []SExpr
		for {
			next, ok := r.peek()
			if !ok {
				return SExpr{}, fmt.Errorf("parser: unterminated list starting at %s", tok.Pos)
			}
			if symbolName(SExprLexer, next) == "RParen" {
				r.pos++
				return SExpr{IsList: true, List: list, Position: tok.Pos}, nil
			}
			child, err := r.readExpr()
			if err != nil {
				return SExpr{}, err
			}
			list = append(list, child)
		}
	case "RParen":
		return SExpr{}, fmt.Errorf("parser: unexpected %q at %s", tok.Value, tok.Pos)
	default:
		return SExpr{Atom: tok.Value, Kind: kind, Position: tok.Pos}, nil
	}
}
