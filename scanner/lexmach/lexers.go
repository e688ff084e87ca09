package lexmach

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/cfgo"
	"github.com/npillmayer/cfgo/scanner"
	"github.com/timtadh/lexmachine"
)

// The DFAs are compiled once and shared read-only afterwards.
var (
	initRules     sync.Once
	ruleLexer     *Lexer
	rulesErr      error
	initSentences sync.Once
	sentLexer     *Lexer
	sentErr       error
)

// ASCII white space. The lexmachine regex syntax knows escapes for \n, \r
// and \t only, so the bytes are put into the patterns literally.
const (
	blankBytes = " \t\n\v\f\r"
	blanks     = "[" + blankBytes + "]+"
)

// blankUnicodeSpace replaces every non-ASCII white space rune of input by as
// many blanks as its UTF-8 encoding has bytes. Byte offsets of the remaining
// runes do not change.
func blankUnicodeSpace(input string) string {
	var sb strings.Builder
	sb.Grow(len(input))
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		if r >= utf8.RuneSelf && unicode.IsSpace(r) {
			sb.WriteString(strings.Repeat(" ", size))
		} else {
			sb.WriteString(input[i : i+size])
		}
		i += size
	}
	return sb.String()
}

// RuleLexer returns a lexer for the right-hand side of a grammar rule.
// It produces Symbol tokens for every run of non-blank characters other
// than '|', and Bar tokens for '|'.
func RuleLexer() (*Lexer, error) {
	initRules.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(blanks), Skip)
			lexer.Add([]byte("[^"+blankBytes+"\\|]+"), MakeToken("SYMBOL", scanner.Symbol))
		}
		ruleLexer, rulesErr = NewLexer(init, map[string]cfgo.TokType{"|": scanner.Bar})
	})
	return ruleLexer, rulesErr
}

// SentenceLexer returns a lexer splitting input sentences at whitespace.
// Every word is a Symbol token.
func SentenceLexer() (*Lexer, error) {
	initSentences.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(blanks), Skip)
			lexer.Add([]byte("[^"+blankBytes+"]+"), MakeToken("SYMBOL", scanner.Symbol))
		}
		sentLexer, sentErr = NewLexer(init, nil)
	})
	return sentLexer, sentErr
}

// SplitAlternatives tokenizes the right-hand side of a rule and returns the
// symbol lexemes of each alternative. An input without any '|' yields exactly
// one alternative; empty alternatives are returned as empty slices.
func SplitAlternatives(rhs string) ([][]string, error) {
	lm, err := RuleLexer()
	if err != nil {
		return nil, err
	}
	tokens, err := lm.Tokenize(blankUnicodeSpace(rhs))
	if err != nil {
		return nil, err
	}
	alts := [][]string{{}}
	for _, t := range tokens {
		switch t.TokType() {
		case scanner.Bar:
			alts = append(alts, []string{})
		case scanner.Symbol:
			last := len(alts) - 1
			alts[last] = append(alts[last], t.Lexeme())
		}
	}
	return alts, nil
}

// Words tokenizes a sentence at whitespace. Empty words do not occur.
func Words(sentence string) ([]cfgo.Token, error) {
	lm, err := SentenceLexer()
	if err != nil {
		return nil, err
	}
	return lm.Tokenize(blankUnicodeSpace(sentence))
}
