// Package parser turns SMT-LIB problem text and Alethe proof text into the
// in-memory term.Term / proof.Proof model. spec.md frames parsing as an
// "external collaborator" outside the checker's scope, but without it the
// rest of the module has no way to exercise real proof scripts end to end;
// SPEC_FULL.md elaborates on this decision. The tokenizer below reuses
// participle/v2's lexer subpackage the way the teacher repo tokenizes
// Kanso source (_examples/kanso-lang-kanso/grammar/lexer.go), paired with
// a hand-written recursive-descent reader for the recursive s-expression
// structure (sexpr.go) the way the teacher hand-rolls its own parser for
// the same reason (_examples/kanso-lang-kanso/internal/parser/scanner.go,
// parser_pratt.go): participle's declarative struct-tag grammars do not
// fit an arbitrary-arity recursive tree well.
package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// SExprLexer tokenizes SMT-LIB / Alethe s-expression syntax.
var SExprLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `;[^\n]*`, nil},
		{"LParen", `\(`, nil},
		{"RParen", `\)`, nil},
		{"Decimal", `[0-9]+\.[0-9]+`, nil},
		{"Numeral", `[0-9]+`, nil},
		{"String", `"(\\.|[^"\\])*"`, nil},
		{"Keyword", `:=|:[a-zA-Z_][a-zA-Z0-9_.]*`, nil},
		{"Symbol", `[a-zA-Z_+\-*/<>=!.$%&^~][a-zA-Z0-9_+\-*/<>=!.$%&^~]*`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
