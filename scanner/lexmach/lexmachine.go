package lexmach

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cfgo"
	"github.com/npillmayer/cfgo/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// tracer traces with key 'cfgo.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cfgo.scanner")
}

// Lexer wraps a compiled lexmachine DFA. A Lexer is read-only after
// construction and may be shared between goroutines; every call to Scanner
// creates an independent scanner.
type Lexer struct {
	dfa *lexmachine.Lexer
}

// NewLexer compiles a lexmachine DFA. init adds the patterns and actions,
// literals maps literal strings ('|', …) to the token type they produce.
// Literals are added after the patterns of init.
//
// NewLexer will return an error if compiling the DFA failed.
func NewLexer(init func(*lexmachine.Lexer), literals map[string]cfgo.TokType) (*Lexer, error) {
	lx := &Lexer{dfa: lexmachine.NewLexer()}
	init(lx.dfa)
	for lit, tt := range literals {
		pattern := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		lx.dfa.Add([]byte(pattern), MakeToken(lit, tt))
	}
	if err := lx.dfa.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return lx, nil
}

// Scanner creates a scanner for a given input. The scanner implements the
// scanner.Tokenizer interface.
func (lx *Lexer) Scanner(input string) (*Scanner, error) {
	s, err := lx.dfa.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	return &Scanner{lms: s, onError: scanner.LogError}, nil
}

// Tokenize scans an input completely and returns its tokens, without EOF.
// Input the DFA cannot match is skipped and results in an error, after all
// of the input has been scanned.
func (lx *Lexer) Tokenize(input string) ([]cfgo.Token, error) {
	sc, err := lx.Scanner(input)
	if err != nil {
		return nil, err
	}
	var first error
	sc.SetErrorHandler(func(e error) {
		scanner.LogError(e)
		if first == nil {
			first = e
		}
	})
	tokens := scanner.Drain(sc)
	if first != nil {
		return tokens, fmt.Errorf("cannot tokenize %q: %w", input, first)
	}
	return tokens, nil
}

// Scanner reads tokens from a lexmachine scanner.
type Scanner struct {
	lms     *lexmachine.Scanner
	onError func(error)
}

var _ scanner.Tokenizer = (*Scanner)(nil)

// SetErrorHandler sets an error handler for the scanner. A nil handler
// resets to the default, which traces errors.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		h = scanner.LogError
	}
	sc.onError = h
}

// NextToken is part of the Tokenizer interface. Unconsumable input is reported
// to the error handler and skipped. Spans of tokens are byte offsets into the
// input.
func (sc *Scanner) NextToken() cfgo.Token {
	tok, err, eof := sc.lms.Next()
	for err != nil {
		sc.onError(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			sc.lms.TC = ui.FailTC
		}
		tok, err, eof = sc.lms.Next()
	}
	if eof {
		return scanner.MakeDefaultToken(scanner.EOF, "", cfgo.Span{})
	}
	t := tok.(*lexmachine.Token)
	from := uint64(t.TC)
	return scanner.MakeDefaultToken(cfgo.TokType(t.Type), string(t.Lexeme),
		cfgo.Span{from, from + uint64(len(t.Lexeme))})
}

// --- Actions ---------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token
// of type tt. name is for tracing only.
func MakeToken(name string, tt cfgo.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		tracer().Debugf("match %s at %d", name, m.TC)
		return s.Token(int(tt), string(m.Bytes), m), nil
	}
}
