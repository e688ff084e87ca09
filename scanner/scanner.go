/*
Package scanner defines an interface for scanners producing the tokens of grammar
notation and of input sentences.

Grammar symbols are opaque strings, separated by whitespace. The only structural
token within a right-hand side is the alternative separator '|'. The default
scanner implementation is an adapter for lexmachine, living in sub-package
`lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/cfgo"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgo.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cfgo.scanner")
}

// Token categories produced by the scanners of this module.
const (
	EOF    cfgo.TokType = -1 // end of input
	Symbol cfgo.TokType = 1  // a grammar symbol or a sentence word
	Bar    cfgo.TokType = 2  // alternative separator '|'
)

// TokTypeString returns a readable name for a token category.
func TokTypeString(tt cfgo.TokType) string {
	switch tt {
	case EOF:
		return "<eof>"
	case Symbol:
		return "SYMBOL"
	case Bar:
		return "BAR"
	}
	return fmt.Sprintf("<%d>", tt)
}

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() cfgo.Token
	SetErrorHandler(func(error))
}

// Drain reads tokens from a tokenizer until it reports EOF.
// The EOF token is not part of the result.
func Drain(t Tokenizer) []cfgo.Token {
	var tokens []cfgo.Token
	for {
		token := t.NextToken()
		if token.TokType() == EOF {
			break
		}
		tracer().Debugf("token %s %q %v", TokTypeString(token.TokType()), token.Lexeme(), token.Span())
		tokens = append(tokens, token)
	}
	return tokens
}

// LogError is the default error reporting function for scanners.
func LogError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   cfgo.TokType
	lexeme string
	span   cfgo.Span
}

var _ cfgo.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ cfgo.TokType, lexeme string, span cfgo.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() cfgo.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() cfgo.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%s(%q)%v", TokTypeString(t.kind), t.lexeme, t.span)
}
