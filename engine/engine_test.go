package engine_test

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/cfgo/engine"
	"github.com/npillmayer/cfgo/grammar"
	"github.com/npillmayer/cfgo/normalize"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseBalanced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	r, err := engine.Parse("S -> a S b | ε", "a a b b")
	require.NoError(t, err)
	assert.True(t, r.Accepted)
	require.NotNil(t, r.Derivation)
	assert.Equal(t, "(S (X_1 (T_a a) (S (T_a a) (T_b b))) (T_b b))", *r.Derivation)
	assert.Equal(t, []string{"a", "a", "b", "b"}, r.Tokens)
	assert.Len(t, r.Chart, 4)
	assert.Equal(t, []string{"S"}, r.Chart[3][0])
	//
	r, err = engine.Parse("S -> a S b | ε", "a b b")
	require.NoError(t, err)
	assert.False(t, r.Accepted)
	assert.Nil(t, r.Derivation)
	assert.Len(t, r.Chart, 3)
}

func TestParseEmptySentence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	r, err := engine.Parse("S -> a S b | ε", "  ")
	require.NoError(t, err)
	assert.True(t, r.Accepted)
	require.NotNil(t, r.Derivation)
	assert.Equal(t, "ε", *r.Derivation)
	assert.Empty(t, r.Chart)
	assert.Empty(t, r.Tokens)
	//
	r, err = engine.Parse("S -> a S b | EPS", "", engine.EpsilonToken("EPS"))
	require.NoError(t, err)
	require.NotNil(t, r.Derivation)
	assert.Equal(t, "EPS", *r.Derivation)
	assert.Contains(t, r.CNFGrammarText, "S -> EPS | ")
	//
	r, err = engine.Parse("S -> a b", "")
	require.NoError(t, err)
	assert.False(t, r.Accepted)
	assert.Nil(t, r.Derivation)
}

func TestFormFeedSeparatesSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	r, err := engine.Parse("S -> a\fb", "a\fb")
	require.NoError(t, err)
	assert.True(t, r.Accepted)
	assert.Equal(t, []string{"a", "b"}, r.Tokens)
	assert.Equal(t, "S -> T_a T_b\nT_a -> a\nT_b -> b", r.CNFGrammarText)
}

func TestEpsilonTokenAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	r, err := engine.Parse("S -> a S b | nil", "a b", engine.EpsilonToken("nil"))
	require.NoError(t, err)
	assert.True(t, r.Accepted)
	// without the option, 'nil' is a terminal
	r, err = engine.Parse("S -> a S b | nil", "a b")
	require.NoError(t, err)
	assert.False(t, r.Accepted)
	r, err = engine.Parse("S -> a S b | nil", "a nil b")
	require.NoError(t, err)
	assert.True(t, r.Accepted)
}

func TestStartSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	text := "S -> A A\nA -> a"
	r, err := engine.Parse(text, "a", engine.StartSymbol("A"))
	require.NoError(t, err)
	assert.True(t, r.Accepted)
	assert.Equal(t, "(A a)", *r.Derivation)
	n, err := engine.Normalize(text, engine.StartSymbol("A"))
	require.NoError(t, err)
	assert.Equal(t, "A", n.Start)
	assert.Equal(t, "A -> a", n.NormalizedGrammarText)
	assert.Equal(t, []string{"A"}, n.Nonterminals)
}

func TestNormalizeScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	n, err := engine.Normalize("S -> A\nA -> B\nB -> x")
	require.NoError(t, err)
	// A and B are unreachable after unit elimination
	assert.Equal(t, "S -> x", n.NormalizedGrammarText)
	assert.Equal(t, []string{"x"}, n.Terminals)
	assert.Contains(t, n.Steps, "unit productions eliminated")
	//
	n, err = engine.Normalize("S -> A B\nA -> a\nB -> b\nC -> c")
	require.NoError(t, err)
	assert.Equal(t, "S -> A B\nA -> a\nB -> b", n.NormalizedGrammarText)
	assert.Equal(t, []string{"A", "B", "S"}, n.Nonterminals)
	assert.Equal(t, []string{"a", "b"}, n.Terminals)
	assert.Contains(t, n.Steps, "C removed")
	assert.NotContains(t, n.NormalizedGrammarText, "C ->")
}

func TestErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	_, err := engine.Normalize("S -> a\nthis is no rule")
	require.Error(t, err)
	var serr *grammar.SyntaxError
	require.True(t, errors.As(err, &serr), "error must be a SyntaxError")
	assert.Equal(t, 2, serr.Line)
	//
	_, err = engine.Parse("# only a comment\n\n", "a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, grammar.ErrEmptyGrammar))
	//
	_, err = engine.Parse(" -> a", "a")
	require.True(t, errors.As(err, &serr))
}

func TestJSONFieldNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	r, err := engine.Parse("S -> a b", "a c")
	require.NoError(t, err)
	data, err := json.Marshal(r)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))
	for _, key := range []string{"accepted", "chart", "derivation", "cnfGrammarText", "steps", "tokens"} {
		assert.Contains(t, m, key)
	}
	assert.Len(t, m, 6)
	assert.Nil(t, m["derivation"])
	n, err := engine.Normalize("S -> a b")
	require.NoError(t, err)
	data, err = json.Marshal(n)
	require.NoError(t, err)
	m = nil
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "S -> a b", m["normalizedGrammarText"])
	assert.Len(t, m, 5)
}

// The printed normalized grammar reads back as the same grammar. Normalizing
// it a second time is not required to be a no-op: unit elimination copies the
// start symbol's ε-rule to non-terminals with a unit rule to it.
func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	for _, text := range append(testGrammars, "S -> S a\nB -> b") {
		n, err := engine.Normalize(text)
		require.NoError(t, err)
		g, err := grammar.Parse(n.NormalizedGrammarText)
		require.NoError(t, err)
		assert.Equal(t, n.Grammar.Fingerprint(), g.Fingerprint(),
			"round trip changed grammar\n%s\n----\n%s", n.NormalizedGrammarText, g)
	}
}

func TestConcurrentCalls(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	const text = "E -> E + T | T\nT -> T * F | F\nF -> ( E ) | x"
	first, err := engine.Parse(text, "x + x * ( x + x )")
	require.NoError(t, err)
	require.True(t, first.Accepted)
	var wg sync.WaitGroup
	results := make([]*engine.ParseResult, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = engine.Parse(text, "x + x * ( x + x )")
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, *first.Derivation, *r.Derivation)
		assert.Equal(t, first.CNFGrammarText, r.CNFGrammarText)
		assert.Equal(t, first.Steps, r.Steps)
	}
}

// --- Language equivalence --------------------------------------------------

var testGrammars = []string{
	"S -> a S b | ε",
	"S -> A B | ε\nA -> a A | ε\nB -> b | A",
	"S -> S S | ( S ) | ε",
	"S -> A\nA -> B | a\nB -> S | b b",
	"E -> E + T | T\nT -> T * F | F\nF -> ( E ) | x",
	"S -> A b A\nA -> a | ε\nC -> c",
	"S -> A\nA -> a | ε",
	"S -> a | A b\nA -> A a",
	"S -> a S b | c D\nD -> d | S",
	"S -> B a A | ε\nA -> B | b\nB -> S b | ε | S",
}

// derives is an independent recognizer over an arbitrary grammar: it computes
// the set of (A, i, j) with A ⇒* w[i:j] by fixpoint iteration.
func derives(g *grammar.Grammar, w []string) bool {
	type key struct {
		A    string
		i, j int
	}
	n := len(w)
	d := make(map[key]bool)
	var match func(alt grammar.Alternative, i, j int) bool
	match = func(alt grammar.Alternative, i, j int) bool {
		if len(alt) == 0 {
			return i == j
		}
		X := alt[0]
		for k := i; k <= j; k++ {
			ok := false
			if g.IsNonterminal(X) {
				ok = d[key{X, i, k}]
			} else {
				ok = k == i+1 && w[i] == X
			}
			if ok && match(alt[1:], k, j) {
				return true
			}
		}
		return false
	}
	changed := true
	for changed {
		changed = false
		for _, A := range g.Nonterminals() {
			for i := 0; i <= n; i++ {
				for j := i; j <= n; j++ {
					if d[key{A, i, j}] {
						continue
					}
					for _, alt := range g.Alternatives(A) {
						if match(alt, i, j) {
							d[key{A, i, j}] = true
							changed = true
							break
						}
					}
				}
			}
		}
	}
	return d[key{g.Start(), 0, n}]
}

// sentences enumerates all words over alphabet with length ≤ maxlen.
func sentences(alphabet []string, maxlen int) [][]string {
	all := [][]string{{}}
	level := [][]string{{}}
	for l := 1; l <= maxlen; l++ {
		var next [][]string
		for _, w := range level {
			for _, a := range alphabet {
				v := append(append([]string{}, w...), a)
				next = append(next, v)
			}
		}
		all = append(all, next...)
		level = next
	}
	return all
}

func TestLanguageEquivalence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	for _, text := range testGrammars {
		g, err := grammar.Parse(text)
		require.NoError(t, err)
		maxlen := 4
		if len(g.Terminals()) > 3 {
			maxlen = 3
		}
		for _, w := range sentences(g.Terminals(), maxlen) {
			sentence := strings.Join(w, " ")
			r, err := engine.Parse(text, sentence)
			require.NoError(t, err)
			if !assert.Equal(t, derives(g, w), r.Accepted, "grammar\n%s\nsentence %q", text, sentence) {
				return
			}
		}
	}
}

func TestEmptyInputMatchesNullability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	for _, text := range testGrammars {
		g, err := grammar.Parse(text)
		require.NoError(t, err)
		N, _ := normalize.Nullable(g)
		r, err := engine.Parse(text, "")
		require.NoError(t, err)
		assert.Equal(t, N.Contains(g.Start()), r.Accepted, "grammar\n%s", text)
	}
}

func TestUselessRemovalKeepsLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.engine")
	defer teardown()
	//
	for _, text := range testGrammars {
		g, err := grammar.Parse(text)
		require.NoError(t, err)
		h, _ := normalize.RemoveUseless(g)
		for _, w := range sentences(g.Terminals(), 3) {
			assert.Equal(t, derives(g, w), derives(h, w), "grammar\n%s\nsentence %v", text, w)
		}
	}
}
