package lexmach

import (
	"testing"

	"github.com/npillmayer/cfgo"
	"github.com/npillmayer/cfgo/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var sentences = []string{
	"",
	"a",
	"a a b b",
	"  the   dog\tbarks \n",
	"( x + y ) * ε",
}

var wordCounts = []int{0, 1, 4, 3, 7}

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.scanner")
	defer teardown()
	//
	for i, input := range sentences {
		t.Logf("------+-----------------+--------")
		tokens, err := Words(input)
		if err != nil {
			t.Fatal(err)
		}
		for _, token := range tokens {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			if token.TokType() != scanner.Symbol {
				t.Errorf("expected token %q to be a symbol", token.Lexeme())
			}
		}
		if len(tokens) != wordCounts[i] {
			t.Errorf("Expected word count for #%d to be %d, is %d", i, wordCounts[i], len(tokens))
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestWordSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.scanner")
	defer teardown()
	//
	tokens, err := Words("ab  cde")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, have %d", len(tokens))
	}
	if tokens[1].Span() != (cfgo.Span{4, 7}) {
		t.Errorf("expected 2nd token to span (4…7), is %v", tokens[1].Span())
	}
}

func TestSplitAlternatives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.scanner")
	defer teardown()
	//
	for i, c := range []struct {
		rhs  string
		alts [][]string
	}{
		{rhs: "a S b | ε", alts: [][]string{{"a", "S", "b"}, {"ε"}}},
		{rhs: "x", alts: [][]string{{"x"}}},
		{rhs: "", alts: [][]string{{}}},
		{rhs: "a | | b", alts: [][]string{{"a"}, {}, {"b"}}},
		{rhs: "a|b", alts: [][]string{{"a"}, {"b"}}},
		{rhs: "'+' ( )", alts: [][]string{{"'+'", "(", ")"}}},
	} {
		alts, err := SplitAlternatives(c.rhs)
		if err != nil {
			t.Fatal(err)
		}
		if len(alts) != len(c.alts) {
			t.Errorf("case %d: expected %d alternatives, have %d: %v", i, len(c.alts), len(alts), alts)
			continue
		}
		for j := range alts {
			if len(alts[j]) != len(c.alts[j]) {
				t.Errorf("case %d: alternative %d is %v, expected %v", i, j, alts[j], c.alts[j])
				continue
			}
			for k := range alts[j] {
				if alts[j][k] != c.alts[j][k] {
					t.Errorf("case %d: alternative %d is %v, expected %v", i, j, alts[j], c.alts[j])
				}
			}
		}
	}
}

func TestWordsAllWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.scanner")
	defer teardown()
	//
	input := "a\fb\vc\u00a0d\u3000e"
	tokens, err := Words(input)
	if err != nil {
		t.Fatal(err)
	}
	lexemes := cfgo.Lexemes(tokens)
	if len(lexemes) != 5 {
		t.Fatalf("expected 5 words, have %q", lexemes)
	}
	for i, w := range []string{"a", "b", "c", "d", "e"} {
		if lexemes[i] != w {
			t.Errorf("expected word #%d to be %q, is %q", i, w, lexemes[i])
		}
	}
	// U+00A0 takes 2 bytes, d starts at byte 7
	if tokens[3].Span() != (cfgo.Span{7, 8}) {
		t.Errorf("expected d to span (7…8), is %v", tokens[3].Span())
	}
	alts, err := SplitAlternatives("x\fy| z\vw")
	if err != nil {
		t.Fatal(err)
	}
	if len(alts) != 2 || len(alts[0]) != 2 || len(alts[1]) != 2 || alts[1][0] != "z" {
		t.Errorf("expected [[x y] [z w]], have %q", alts)
	}
}

func TestBlankUnicodeSpace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgo.scanner")
	defer teardown()
	//
	for _, c := range []struct{ in, out string }{
		{in: "a b", out: "a b"},
		{in: "a\u00a0b", out: "a  b"},
		{in: "ε\u3000ε", out: "ε   ε"},
		{in: "x\xffy", out: "x\xffy"},
	} {
		if out := blankUnicodeSpace(c.in); out != c.out || len(out) != len(c.in) {
			t.Errorf("blanking %q: expected %q, have %q", c.in, c.out, out)
		}
	}
}
