/*
Command cfgo normalizes context-free grammars and parses sentences with the
CYK algorithm.

    cfgo normalize -g expr.cfg
    cfgo parse -g balanced.cfg --tree a a b b
    echo 'S -> a S b | ε' | cfgo parse --json a b
    cfgo repl -g balanced.cfg

Grammars are read from the file given with -g, or from stdin. The REPL accepts
grammar rules with ':grammar' and parses every other input line as a sentence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgo.cli'.
func tracer() tracing.Trace {
	return tracing.Select("cfgo.cli")
}
