package normalize

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cfgo/grammar"
)

// Generating computes the set of non-terminals which derive some terminal
// string (including ε).
func Generating(g *grammar.Grammar) *treeset.Set {
	G := grammar.NewSymbolSet()
	generates := func(alt grammar.Alternative) bool {
		for _, sym := range alt {
			if g.IsNonterminal(sym) && !G.Contains(sym) {
				return false
			}
		}
		return true
	}
	changed := true
	for changed {
		changed = false
		for _, A := range g.Nonterminals() {
			if G.Contains(A) {
				continue
			}
			for _, alt := range g.Alternatives(A) {
				if generates(alt) {
					G.Add(A)
					changed = true
					break
				}
			}
		}
	}
	return G
}

// Reachable computes the set of non-terminals occuring in some sentential form
// derivable from the start symbol.
func Reachable(g *grammar.Grammar) *treeset.Set {
	R := grammar.NewSymbolSet(g.Start())
	worklist := arraylist.New()
	worklist.Add(g.Start())
	for !worklist.Empty() {
		x, _ := worklist.Get(0)
		worklist.Remove(0)
		for _, alt := range g.Alternatives(x.(string)) {
			for _, sym := range alt {
				if g.IsNonterminal(sym) && !R.Contains(sym) {
					R.Add(sym)
					worklist.Add(sym)
				}
			}
		}
	}
	return R
}

// RemoveUseless drops all non-terminals of g which are not generating or not
// reachable. Both properties are computed on g itself, then intersected.
// Alternatives referencing a dropped non-terminal are removed as well, and
// non-terminals left without alternatives are dropped.
//
// The start symbol is always retained, possibly without alternatives.
func RemoveUseless(g *grammar.Grammar) (*grammar.Grammar, Steps) {
	var steps Steps
	G := Generating(g)
	steps.Addf("generating: %v", grammar.Symbols(G))
	R := Reachable(g)
	steps.Addf("reachable: %v", grammar.Symbols(R))
	keep := grammar.NewSymbolSet()
	for _, x := range G.Values() {
		if R.Contains(x) {
			keep.Add(x)
		}
	}
	tracer().Debugf("useful non-terminals: %v", grammar.Symbols(keep))
	survives := func(alt grammar.Alternative) bool {
		for _, sym := range alt {
			if g.IsNonterminal(sym) && !keep.Contains(sym) {
				return false
			}
		}
		return true
	}
	b := grammar.NewBuilder().Start(g.Start()).Declare(g.Start())
	g.EachNonterminal(func(A string) {
		if !keep.Contains(A) {
			if A != g.Start() {
				steps.Addf("%s removed", A)
			}
			return
		}
		cnt := 0
		for _, alt := range g.Alternatives(A) {
			if survives(alt) {
				b.Add(A, alt)
				cnt++
			}
		}
		if cnt == 0 && A != g.Start() {
			steps.Addf("%s removed (no remaining productions)", A)
		}
	})
	steps.Addf("useless symbols removed")
	g2, _ := b.Grammar()
	tracer().Infof("useless-symbol removal: %d rules -> %d rules", g.RuleCount(), g2.RuleCount())
	return g2, steps
}
