/*
Package engine offers the two operations of the grammar engine: normalizing a
grammar and parsing a sentence with respect to a grammar.

Both operations take the grammar in its textual notation (see package grammar)
and return plain result structs, which may be serialized to JSON as they are.
Each call works on its own copies of all intermediate data, so calls may run
concurrently.

    n, err := engine.Normalize("S -> A | a b\nA -> a", engine.StartSymbol("S"))
    r, err := engine.Parse("S -> a S b | ε", "a a b b")
    if r.Accepted {
        fmt.Println(*r.Derivation)
    }

Configuration

The default epsilon token may be set with global configuration key
'epsilon-token'. Tracing of CYK charts is switched on with 'cyk-trace-chart'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgo.engine'.
func tracer() tracing.Trace {
	return tracing.Select("cfgo.engine")
}
