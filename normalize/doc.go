/*
Package normalize implements transformations of context-free grammars.

Reduction

Reduce runs three stages one after the other:

■ EliminateEpsilon removes empty alternatives. If the start symbol derived ε in the
input grammar, it keeps a single ε-alternative; no other non-terminal has one afterwards.

■ EliminateUnits replaces chains of unit rules A → B by the non-unit
alternatives of every non-terminal reachable by such chains.

■ RemoveUseless drops non-terminals which either cannot derive a terminal string
or cannot be reached from the start symbol.

Chomsky Normal Form

ToCNF converts a reduced grammar to Chomsky Normal Form, where every rule has the
form A → B C or A → a, with the exception of a possible start rule S → ε.
Terminals within longer alternatives are replaced by wrapper non-terminals T_a → a,
and alternatives with more than two symbols are split into a left-branching chain
of helper non-terminals X_1, X_2, …. Generated names never clash with existing
symbols.

Every transformation returns a new grammar and a list of human-readable steps.
Input grammars are never modified. All working state, including the table of
generated names, lives within a single call.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package normalize

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgo.normalize'.
func tracer() tracing.Trace {
	return tracing.Select("cfgo.normalize")
}

// Steps collects human-readable descriptions of transformation steps.
type Steps []string

// Addf appends a step description.
func (s *Steps) Addf(format string, args ...interface{}) {
	step := fmt.Sprintf(format, args...)
	tracer().Debugf("step: %s", step)
	*s = append(*s, step)
}
