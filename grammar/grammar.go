package grammar

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// --- Alternatives ----------------------------------------------------------

// Alternative is the right-hand side of a rule: an ordered sequence of symbols.
// An empty alternative derives the empty string.
type Alternative []string

// IsEmpty is true for an epsilon-alternative.
func (a Alternative) IsEmpty() bool {
	return len(a) == 0
}

// Format renders an alternative, with the empty alternative rendered as
// the given epsilon token.
func (a Alternative) Format(epsilon string) string {
	if len(a) == 0 {
		return epsilon
	}
	return strings.Join(a, " ")
}

func (a Alternative) String() string {
	return a.Format(DefaultEpsilon)
}

func (a Alternative) clone() Alternative {
	return append(Alternative{}, a...)
}

// CompareAlternatives is a comparator for alternatives, suitable for gods
// containers. Symbols are compared one after another; a proper prefix sorts
// before its extensions, so the empty alternative is the least one.
func CompareAlternatives(x, y interface{}) int {
	a, b := x.(Alternative), y.(Alternative)
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := utils.StringComparator(a[i], b[i]); c != 0 {
			return c
		}
	}
	return utils.IntComparator(len(a), len(b))
}

// NewAlternativeSet creates an empty, sorted set of alternatives.
func NewAlternativeSet() *treeset.Set {
	return treeset.NewWith(CompareAlternatives)
}

// NewSymbolSet creates an empty, sorted set of symbols.
func NewSymbolSet(syms ...string) *treeset.Set {
	S := treeset.NewWithStringComparator()
	for _, sym := range syms {
		S.Add(sym)
	}
	return S
}

// Symbols returns the content of a symbol set as a sorted slice.
func Symbols(S *treeset.Set) []string {
	syms := make([]string, 0, S.Size())
	for _, x := range S.Values() {
		syms = append(syms, x.(string))
	}
	return syms
}

// === Grammars ==============================================================

// Grammar is a context-free grammar: a start symbol and a mapping from
// non-terminals to sets of alternatives. The start symbol is always a
// non-terminal, possibly without any alternatives.
//
// Grammars are immutable. Accessors return copies.
type Grammar struct {
	start string
	rules map[string]*treeset.Set // of Alternative
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// IsNonterminal returns true if sym is the left-hand side of some rule
// (or the start symbol).
func (g *Grammar) IsNonterminal(sym string) bool {
	_, ok := g.rules[sym]
	return ok
}

// IsTerminal returns true if sym is not a non-terminal of g.
func (g *Grammar) IsTerminal(sym string) bool {
	return !g.IsNonterminal(sym)
}

// Nonterminals returns all non-terminals of g in sorted order.
func (g *Grammar) Nonterminals() []string {
	N := maps.Keys(g.rules)
	slices.Sort(N)
	return N
}

// Terminals returns all terminals occuring in the rules of g, in sorted order.
func (g *Grammar) Terminals() []string {
	T := make(map[string]struct{})
	g.EachRule(func(A string, alt Alternative) {
		for _, sym := range alt {
			if g.IsTerminal(sym) {
				T[sym] = struct{}{}
			}
		}
	})
	terminals := maps.Keys(T)
	slices.Sort(terminals)
	return terminals
}

// Alternatives returns the alternatives for non-terminal A in sorted order.
// For terminals it returns nil.
func (g *Grammar) Alternatives(A string) []Alternative {
	R, ok := g.rules[A]
	if !ok {
		return nil
	}
	alts := make([]Alternative, 0, R.Size())
	for _, x := range R.Values() {
		alts = append(alts, x.(Alternative).clone())
	}
	return alts
}

// HasAlternative checks whether A → alt is a rule of g.
func (g *Grammar) HasAlternative(A string, alt Alternative) bool {
	R, ok := g.rules[A]
	return ok && R.Contains(alt)
}

// HasEmptyAlternative checks whether A → ε is a rule of g.
func (g *Grammar) HasEmptyAlternative(A string) bool {
	return g.HasAlternative(A, Alternative{})
}

// RuleCount returns the number of rules (LHS/alternative pairs).
func (g *Grammar) RuleCount() int {
	cnt := 0
	for _, R := range g.rules {
		cnt += R.Size()
	}
	return cnt
}

// EachNonterminal calls f for every non-terminal, in sorted order.
func (g *Grammar) EachNonterminal(f func(A string)) {
	for _, A := range g.Nonterminals() {
		f(A)
	}
}

// EachRule calls f for every rule, ordered by non-terminal, then by alternative.
func (g *Grammar) EachRule(f func(A string, alt Alternative)) {
	for _, A := range g.Nonterminals() {
		for _, x := range g.rules[A].Values() {
			f(A, x.(Alternative).clone())
		}
	}
}

// Fingerprint returns a structural hash of g. Grammars with equal start symbols
// and identical alternative sets have equal fingerprints.
func (g *Grammar) Fingerprint() string {
	type rule struct {
		LHS string
		RHS []string
	}
	fp := struct {
		Start string
		Rules []rule
	}{Start: g.start}
	for _, A := range g.Nonterminals() {
		fp.Rules = append(fp.Rules, rule{LHS: A}) // non-terminals without rules count, too
		for _, x := range g.rules[A].Values() {
			fp.Rules = append(fp.Rules, rule{LHS: A, RHS: append([]string{"→"}, x.(Alternative)...)})
		}
	}
	h, err := structhash.Hash(fp, 1)
	if err != nil { // structhash fails for unsupported types only
		panic(fmt.Sprintf("cannot hash grammar: %v", err))
	}
	return h
}

// Dump is a debugging helper, tracing the rules of g at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar, start = %s -------------", g.start)
	for _, line := range strings.Split(g.Format(DefaultEpsilon), "\n") {
		tracer().Debugf("  %s", line)
	}
	tracer().Debugf("-------------------------------------")
}
