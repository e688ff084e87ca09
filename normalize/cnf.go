package normalize

import (
	"github.com/npillmayer/cfgo/grammar"
)

// ToCNF converts a grammar to Chomsky Normal Form. g is expected to be free of
// ε-alternatives (except for the start symbol) and of unit rules, as is the
// output of Reduce.
//
// Alternatives of length ≤ 1 are copied unchanged. In longer alternatives every
// terminal a is replaced by a wrapper non-terminal T_a with the single rule T_a → a.
// Alternatives longer than two symbols are then binarized from left to right:
//
//    A → s1 s2 s3 s4   ⇒   X_1 → s1 s2,  X_2 → X_1 s3,  A → X_2 s4
//
// Each helper X_n has exactly one rule.
func ToCNF(g *grammar.Grammar) (*grammar.Grammar, Steps) {
	var steps Steps
	names := newNameTable(g)
	//
	// pass 1: isolate terminals
	wrappers := make(map[string]string)
	b1 := grammar.NewBuilder().Start(g.Start())
	g.EachNonterminal(func(A string) {
		b1.Declare(A)
	})
	g.EachRule(func(A string, alt grammar.Alternative) {
		if len(alt) < 2 {
			b1.Add(A, alt)
			return
		}
		isolated := make(grammar.Alternative, len(alt))
		for i, sym := range alt {
			if g.IsNonterminal(sym) {
				isolated[i] = sym
				continue
			}
			T, ok := wrappers[sym]
			if !ok {
				T = names.wrapper(sym)
				wrappers[sym] = T
				b1.Add(T, grammar.Alternative{sym})
				steps.Addf("new symbol %s -> %s", T, sym)
			}
			isolated[i] = T
		}
		b1.Add(A, isolated)
	})
	g1, _ := b1.Grammar()
	//
	// pass 2: binarize
	b2 := grammar.NewBuilder().Start(g.Start())
	g1.EachNonterminal(func(A string) {
		b2.Declare(A)
	})
	g1.EachRule(func(A string, alt grammar.Alternative) {
		if len(alt) <= 2 {
			b2.Add(A, alt)
			return
		}
		left := alt[0]
		for _, sym := range alt[1 : len(alt)-1] {
			X := names.helper()
			b2.Add(X, grammar.Alternative{left, sym})
			steps.Addf("new symbol %s -> %s %s", X, left, sym)
			left = X
		}
		b2.Add(A, grammar.Alternative{left, alt[len(alt)-1]})
	})
	steps.Addf("grammar binarized (CNF)")
	cnf, _ := b2.Grammar()
	tracer().Infof("CNF conversion: %d rules -> %d rules", g.RuleCount(), cnf.RuleCount())
	return cnf, steps
}

// IsCNF checks whether every rule of g has the form A → B C with non-terminals
// B and C, or A → a with a terminal a. The start symbol may have an ε-rule.
func IsCNF(g *grammar.Grammar) bool {
	ok := true
	g.EachRule(func(A string, alt grammar.Alternative) {
		switch len(alt) {
		case 0:
			ok = ok && A == g.Start()
		case 1:
			ok = ok && g.IsTerminal(alt[0])
		case 2:
			ok = ok && g.IsNonterminal(alt[0]) && g.IsNonterminal(alt[1])
		default:
			ok = false
		}
	})
	return ok
}
