package normalize

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cfgo/grammar"
)

// Nullable computes the set of non-terminals of g which derive ε.
// Non-terminals are added in the order they are discovered; this order is
// reported as steps.
func Nullable(g *grammar.Grammar) (*treeset.Set, Steps) {
	var steps Steps
	N := grammar.NewSymbolSet()
	changed := true
	for changed {
		changed = false
		for _, A := range g.Nonterminals() {
			if N.Contains(A) {
				continue
			}
			for _, alt := range g.Alternatives(A) {
				if allNullable(alt, N) {
					N.Add(A)
					changed = true
					steps.Addf("%s is nullable", A)
					break
				}
			}
		}
	}
	return N, steps
}

func allNullable(alt grammar.Alternative, N *treeset.Set) bool {
	for _, sym := range alt {
		if !N.Contains(sym) {
			return false
		}
	}
	return true // true for ε, too
}

// EliminateEpsilon returns a grammar without ε-alternatives, deriving the same
// language as g. For every alternative, all variants with any combination of
// nullable symbols left out are added.
//
// If the start symbol of g is nullable, the result keeps exactly one
// ε-alternative for it, so the empty string is still derivable. No other
// non-terminal keeps an ε-alternative.
func EliminateEpsilon(g *grammar.Grammar) (*grammar.Grammar, Steps) {
	N, steps := Nullable(g)
	S := g.Start()
	b := grammar.NewBuilder().Start(S)
	g.EachNonterminal(func(A string) {
		b.Declare(A)
	})
	g.EachRule(func(A string, alt grammar.Alternative) {
		if alt.IsEmpty() {
			return
		}
		for _, v := range variants(alt, N) {
			if !v.IsEmpty() {
				b.Add(A, v)
			}
		}
	})
	if N.Contains(S) {
		b.Add(S, grammar.Alternative{})
		steps.Addf("%s -> %s (kept, start symbol derives %s)", S, grammar.DefaultEpsilon, grammar.DefaultEpsilon)
	}
	steps.Addf("epsilon productions eliminated")
	g2, _ := b.Grammar() // cannot fail: all non-terminals of g have been declared
	tracer().Infof("epsilon elimination: %d rules -> %d rules", g.RuleCount(), g2.RuleCount())
	return g2, steps
}

// variants returns alt with every subset of its nullable occurrences removed,
// including alt itself.
func variants(alt grammar.Alternative, N *treeset.Set) []grammar.Alternative {
	var positions []int
	for i, sym := range alt {
		if N.Contains(sym) {
			positions = append(positions, i)
		}
	}
	vs := make([]grammar.Alternative, 0, 1<<len(positions))
	for mask := 0; mask < 1<<len(positions); mask++ {
		drop := make(map[int]bool, len(positions))
		for j, pos := range positions {
			if mask&(1<<j) != 0 {
				drop[pos] = true
			}
		}
		v := make(grammar.Alternative, 0, len(alt))
		for i, sym := range alt {
			if !drop[i] {
				v = append(v, sym)
			}
		}
		vs = append(vs, v)
	}
	return vs
}
