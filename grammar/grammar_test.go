package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.grammar")
	defer teardown()
	//
	b := NewBuilder()
	b.LHS("S").Sym("A", "B").End()
	b.LHS("A").Sym("a").End()
	b.LHS("A").Sym("a").End() // duplicate
	b.LHS("B").Epsilon()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	g.Dump()
	if g.Start() != "S" {
		t.Errorf("expected start symbol S, is %s", g.Start())
	}
	if g.RuleCount() != 3 {
		t.Errorf("expected 3 rules, have %d", g.RuleCount())
	}
	if !g.HasEmptyAlternative("B") {
		t.Errorf("expected B -> ε to be a rule")
	}
	if nt := g.Nonterminals(); len(nt) != 3 || nt[0] != "A" || nt[2] != "S" {
		t.Errorf("unexpected non-terminals %v", nt)
	}
	if ts := g.Terminals(); len(ts) != 1 || ts[0] != "a" {
		t.Errorf("unexpected terminals %v", ts)
	}
}

func TestBuilderEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.grammar")
	defer teardown()
	//
	_, err := NewBuilder().Grammar()
	if !errors.Is(err, ErrEmptyGrammar) {
		t.Errorf("expected empty grammar error, got %v", err)
	}
}

func TestImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.grammar")
	defer teardown()
	//
	b := NewBuilder()
	b.LHS("S").Sym("a", "b").End()
	g, _ := b.Grammar()
	b.LHS("S").Sym("c").End()
	if g.RuleCount() != 1 {
		t.Errorf("grammar changed after builder has been re-used")
	}
	alts := g.Alternatives("S")
	alts[0][0] = "x"
	if !g.HasAlternative("S", Alternative{"a", "b"}) {
		t.Errorf("grammar changed by modifying a returned alternative")
	}
}

func TestAlternativeOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.grammar")
	defer teardown()
	//
	b := NewBuilder()
	b.LHS("S").Sym("b").End()
	b.LHS("S").Sym("a", "b").End()
	b.LHS("S").Epsilon()
	b.LHS("S").Sym("a").End()
	g, _ := b.Grammar()
	expected := []string{"ε", "a", "a b", "b"}
	alts := g.Alternatives("S")
	if len(alts) != len(expected) {
		t.Fatalf("expected %d alternatives, have %d", len(expected), len(alts))
	}
	for i, alt := range alts {
		if alt.String() != expected[i] {
			t.Errorf("expected alternative #%d to be %q, is %q", i, expected[i], alt)
		}
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.grammar")
	defer teardown()
	//
	b1 := NewBuilder()
	b1.LHS("S").Sym("a").End()
	b1.LHS("S").Sym("A").End()
	b1.LHS("A").Epsilon()
	g1, _ := b1.Grammar()
	b2 := NewBuilder()
	b2.LHS("S").Sym("A").End()
	b2.LHS("A").Epsilon()
	b2.LHS("S").Sym("a").End()
	g2, _ := b2.Grammar()
	if g1.Fingerprint() != g2.Fingerprint() {
		t.Errorf("expected equal fingerprints for grammars differing in rule order only")
	}
	b2.LHS("A").Sym("a").End()
	g3, _ := b2.Grammar()
	if g1.Fingerprint() == g3.Fingerprint() {
		t.Errorf("expected different fingerprints for different grammars")
	}
	g4, _ := b2.Start("A").Grammar()
	if g3.Fingerprint() == g4.Fingerprint() {
		t.Errorf("expected different fingerprints for different start symbols")
	}
}

func TestSymbolListing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.grammar")
	defer teardown()
	//
	b := NewBuilder().Start("Z")
	b.LHS("Z").Sym("y", "M", "x").End()
	b.LHS("M").Sym("z", "x", "D").End()
	b.Declare("D") // no alternatives
	b.LHS("B").Sym("w").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	nt := g.Nonterminals()
	if len(nt) != 4 || nt[0] != "B" || nt[1] != "D" || nt[2] != "M" || nt[3] != "Z" {
		t.Errorf("expected non-terminals [B D M Z], have %v", nt)
	}
	ts := g.Terminals()
	if len(ts) != 4 || ts[0] != "w" || ts[1] != "x" || ts[2] != "y" || ts[3] != "z" {
		t.Errorf("expected terminals [w x y z], have %v", ts)
	}
}
