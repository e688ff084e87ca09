package grammar

import (
	"strings"

	"github.com/npillmayer/cfgo/scanner/lexmach"
)

// DefaultEpsilon is the token used to print empty alternatives.
const DefaultEpsilon = "ε"

// NoProductions is printed as the right-hand side of non-terminals without
// alternatives. It is informational only and will not be read back as such.
const NoProductions = "/* no productions */"

// Arrow separates left-hand side and right-hand side of a rule.
const Arrow = "->"

// EpsilonAliases are the tokens which denote an empty alternative.
var EpsilonAliases = []string{"ε", "EPS", "EPSILON", "epsilon"}

// --- Reading grammars ------------------------------------------------------

// ParseOption configures reading of grammar text.
type ParseOption func(*parseConfig)

type parseConfig struct {
	start   string
	aliases map[string]bool
}

// WithStart overrides the start symbol. Without it, the left-hand side of the
// first rule is the start symbol.
func WithStart(S string) ParseOption {
	return func(c *parseConfig) {
		c.start = S
	}
}

// WithEpsilonAlias adds a token to the set of epsilon aliases.
func WithEpsilonAlias(eps string) ParseOption {
	return func(c *parseConfig) {
		if eps != "" {
			c.aliases[eps] = true
		}
	}
}

// Parse reads a grammar from its textual notation. It returns a *SyntaxError
// for lines without an arrow or with an empty left-hand side, and
// ErrEmptyGrammar if the text contains no rule.
func Parse(text string, opts ...ParseOption) (*Grammar, error) {
	c := &parseConfig{aliases: make(map[string]bool)}
	for _, eps := range EpsilonAliases {
		c.aliases[eps] = true
	}
	for _, opt := range opts {
		opt(c)
	}
	b := NewBuilder()
	for n, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pos := strings.Index(line, Arrow)
		if pos < 0 {
			err := &SyntaxError{Line: n + 1, Text: line, Reason: "missing '" + Arrow + "'"}
			tracer().Errorf(err.Error())
			return nil, err
		}
		lhs := strings.TrimSpace(line[:pos])
		if lhs == "" {
			err := &SyntaxError{Line: n + 1, Text: line, Reason: "missing left-hand side"}
			tracer().Errorf(err.Error())
			return nil, err
		}
		rhs := line[pos+len(Arrow):]
		if strings.TrimSpace(rhs) == NoProductions {
			b.Declare(lhs)
			continue
		}
		alts, err := lexmach.SplitAlternatives(rhs)
		if err != nil {
			tracer().Errorf("cannot tokenize line %d: %v", n+1, err)
			return nil, &SyntaxError{Line: n + 1, Text: line, Reason: err.Error()}
		}
		for _, alt := range alts {
			if len(alt) == 1 && c.aliases[alt[0]] {
				alt = nil
			}
			b.Add(lhs, Alternative(alt))
		}
	}
	if c.start != "" {
		b.Start(c.start)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("read grammar with %d rules, start symbol is %s", g.RuleCount(), g.Start())
	return g, nil
}

// --- Printing grammars -----------------------------------------------------

// Format prints g in its textual notation, one line per non-terminal. The start
// symbol comes first, all other non-terminals follow in sorted order. Empty
// alternatives are rendered as the epsilon token.
func (g *Grammar) Format(epsilon string) string {
	var b strings.Builder
	writeRule := func(A string) {
		b.WriteString(A)
		b.WriteString(" " + Arrow + " ")
		R := g.rules[A]
		if R.Empty() {
			b.WriteString(NoProductions)
			return
		}
		for i, x := range R.Values() {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(x.(Alternative).Format(epsilon))
		}
	}
	writeRule(g.start)
	for _, A := range g.Nonterminals() {
		if A == g.start {
			continue
		}
		b.WriteString("\n")
		writeRule(A)
	}
	return b.String()
}

func (g *Grammar) String() string {
	return g.Format(DefaultEpsilon)
}
