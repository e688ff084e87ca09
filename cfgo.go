package cfgo

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Scanners of package scanner define
// the categories they produce.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and reflect
// terminals of a grammar or pieces of grammar notation.
//
// An example would be a token for the word "dog" in the sentence "the dog barks":
//
//    TokType = Word        // identifier for this kind of tokens
//    Lexeme  = "dog"       // lexeme how it appeared in the input stream
//    Span    = 4…7         // occured from byte position 4 in the input stream
//
// Grammar symbols are opaque strings, therefore tokens carry no converted value.
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// Lexemes extracts the lexemes of a sequence of tokens.
func Lexemes(tokens []Token) []string {
	lx := make([]string, len(tokens))
	for i, t := range tokens {
		lx[i] = t.Lexeme()
	}
	return lx
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. Depending on
// context a span either counts bytes (scanner output) or token positions
// (nodes of a derivation tree). A span denotes a start position and the
// position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
