package normalize

import (
	"github.com/npillmayer/cfgo/grammar"
)

// Reduce runs epsilon elimination, unit elimination and useless-symbol removal,
// in this order. The steps of all three stages are concatenated.
func Reduce(g *grammar.Grammar) (*grammar.Grammar, Steps) {
	g1, s1 := EliminateEpsilon(g)
	g2, s2 := EliminateUnits(g1)
	g3, s3 := RemoveUseless(g2)
	g3.Dump()
	steps := make(Steps, 0, len(s1)+len(s2)+len(s3))
	steps = append(steps, s1...)
	steps = append(steps, s2...)
	return g3, append(steps, s3...)
}

// CNF reduces g and converts the result to Chomsky Normal Form.
func CNF(g *grammar.Grammar) (*grammar.Grammar, Steps) {
	reduced, steps := Reduce(g)
	cnf, s4 := ToCNF(reduced)
	cnf.Dump()
	return cnf, append(steps, s4...)
}
