/*
Package cyk implements a Cocke–Younger–Kasami recognizer for grammars in
Chomsky Normal Form.

The parser fills a triangular chart, where cell (i, l) holds every
non-terminal deriving the l input tokens starting at position i. Along with
each entry the parser records a backpointer, telling how this entry has first
been derived. Backpointers are used to reconstruct one derivation tree after
a sentence has been accepted.

For ambiguous sentences the first derivation found wins: split points are
tried from left to right, and symbols within a chart cell in lexical order.
No attempt is made to select a 'best' derivation.

    g, _ := grammar.Parse("S -> a S b | ε")
    cnf, _ := normalize.CNF(g)
    p := cyk.NewParser(cnf)
    tokens, _ := lexmach.Words("a a b b")
    if p.Parse(tokens) {
        fmt.Println(p.Derivation())  // (S (X_1 (T_a a) (S (T_a a) (T_b b))) (T_b b))
    }

Setting the global configuration flag 'cyk-trace-chart' will trace every row
of the chart after a parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgo.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("cfgo.cyk")
}
