package normalize

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cfgo/grammar"
)

// isUnit is true for alternatives consisting of a single non-terminal.
func isUnit(g *grammar.Grammar, alt grammar.Alternative) bool {
	return len(alt) == 1 && g.IsNonterminal(alt[0])
}

// UnitClosure computes, for every non-terminal A, the set of non-terminals
// reachable from A by zero or more unit rules. Every closure contains A itself.
func UnitClosure(g *grammar.Grammar) map[string]*treeset.Set {
	closure := make(map[string]*treeset.Set)
	g.EachNonterminal(func(A string) {
		closure[A] = grammar.NewSymbolSet(A)
	})
	changed := true
	for changed {
		changed = false
		for _, A := range g.Nonterminals() {
			for _, alt := range g.Alternatives(A) {
				if !isUnit(g, alt) {
					continue
				}
				before := closure[A].Size()
				closure[A].Add(closure[alt[0]].Values()...)
				if closure[A].Size() > before {
					changed = true
				}
			}
		}
	}
	return closure
}

// EliminateUnits returns a grammar without unit rules. The alternatives of a
// non-terminal A are the non-unit alternatives of all non-terminals in the unit
// closure of A. Terminal rules A → a are not unit rules and are kept as they are.
func EliminateUnits(g *grammar.Grammar) (*grammar.Grammar, Steps) {
	var steps Steps
	closure := UnitClosure(g)
	b := grammar.NewBuilder().Start(g.Start())
	g.EachNonterminal(func(A string) {
		b.Declare(A)
		C := closure[A]
		if C.Size() > 1 {
			steps.Addf("unit closure of %s: %v", A, grammar.Symbols(C))
		}
		for _, x := range C.Values() {
			for _, alt := range g.Alternatives(x.(string)) {
				if !isUnit(g, alt) {
					b.Add(A, alt)
				}
			}
		}
	})
	steps.Addf("unit productions eliminated")
	g2, _ := b.Grammar()
	tracer().Infof("unit elimination: %d rules -> %d rules", g.RuleCount(), g2.RuleCount())
	return g2, steps
}
