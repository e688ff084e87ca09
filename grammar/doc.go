/*
Package grammar implements the model of context-free grammars used throughout
cfgo, together with the textual grammar notation.

Grammar Notation

Grammars are written one rule per line, alternatives separated by '|':

    # balanced a's and b's
    S -> a S b | ε

Right-hand side symbols are separated by whitespace. Blank lines and lines starting
with '#' are ignored. An empty alternative, or an alternative consisting only of
one of the epsilon aliases ε, EPS, EPSILON or epsilon, denotes the empty string.
The start symbol is the left-hand side of the first rule, unless clients
override it.

A symbol is a non-terminal iff it occurs as a left-hand side; every other symbol
is a terminal. This classification is never stored, but derived from the rules of
a grammar.

Building a Grammar

Grammars may as well be specified using a grammar builder object:

    b := grammar.NewBuilder()
    b.LHS("S").Sym("a", "S", "b").End()  // S  ->  a S b
    b.LHS("S").Epsilon()                 // S  ->  ε
    g, err := b.Grammar()

Grammars are immutable once built. Transformations create new grammars.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgo.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("cfgo.grammar")
}
