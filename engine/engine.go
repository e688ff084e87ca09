package engine

import (
	"fmt"

	"github.com/npillmayer/cfgo"
	"github.com/npillmayer/cfgo/cyk"
	"github.com/npillmayer/cfgo/grammar"
	"github.com/npillmayer/cfgo/normalize"
	"github.com/npillmayer/cfgo/scanner/lexmach"
	"github.com/npillmayer/schuko/gconf"
)

// Option configures a call to Normalize or Parse.
type Option func(*config)

type config struct {
	start   string
	epsilon string
}

// StartSymbol overrides the start symbol of a grammar, which otherwise is the
// left-hand side of the first rule.
func StartSymbol(S string) Option {
	return func(c *config) {
		c.start = S
	}
}

// EpsilonToken sets the token for empty alternatives. It is accepted in grammar
// text in addition to the standard aliases, and used for printing grammars and
// the derivation of an empty sentence. An empty token is ignored.
func EpsilonToken(eps string) Option {
	return func(c *config) {
		if eps != "" {
			c.epsilon = eps
		}
	}
}

func configure(opts []Option) *config {
	c := &config{epsilon: grammar.DefaultEpsilon}
	if eps := gconf.GetString("epsilon-token"); eps != "" {
		c.epsilon = eps
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) parseGrammar(text string) (*grammar.Grammar, error) {
	popts := []grammar.ParseOption{grammar.WithEpsilonAlias(c.epsilon)}
	if c.start != "" {
		popts = append(popts, grammar.WithStart(c.start))
	}
	g, err := grammar.Parse(text, popts...)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar: %w", err)
	}
	return g, nil
}

// --- Normalize -------------------------------------------------------------

// Normalization is the result of Normalize.
type Normalization struct {
	NormalizedGrammarText string           `json:"normalizedGrammarText"`
	Steps                 []string         `json:"steps"`
	Nonterminals          []string         `json:"nonterminals"`
	Terminals             []string         `json:"terminals"`
	Start                 string           `json:"start"`
	Grammar               *grammar.Grammar `json:"-"`
}

// Normalize reads a grammar and removes ε-productions, unit productions and
// useless symbols, in this order.
//
// Errors are *grammar.SyntaxError for malformed rules and
// grammar.ErrEmptyGrammar for a text without rules, both wrapped.
func Normalize(grammarText string, opts ...Option) (*Normalization, error) {
	c := configure(opts)
	g, err := c.parseGrammar(grammarText)
	if err != nil {
		return nil, err
	}
	reduced, steps := normalize.Reduce(g)
	tracer().Infof("normalized grammar with %d rules", reduced.RuleCount())
	return &Normalization{
		NormalizedGrammarText: reduced.Format(c.epsilon),
		Steps:                 nonNil(steps),
		Nonterminals:          reduced.Nonterminals(),
		Terminals:             nonNil(reduced.Terminals()),
		Start:                 reduced.Start(),
		Grammar:               reduced,
	}, nil
}

// --- Parse -----------------------------------------------------------------

// ParseResult is the result of Parse. Derivation is nil if the sentence has
// not been accepted.
type ParseResult struct {
	Accepted       bool             `json:"accepted"`
	Chart          [][][]string     `json:"chart"`
	Derivation     *string          `json:"derivation"`
	CNFGrammarText string           `json:"cnfGrammarText"`
	Steps          []string         `json:"steps"`
	Tokens         []string         `json:"tokens"`
	Tree           *cyk.Node        `json:"-"`
	CNF            *grammar.Grammar `json:"-"`
}

// Parse reads a grammar, converts it to Chomsky Normal Form and checks if the
// sentence is derivable from the start symbol. The sentence is split into
// tokens at whitespace. If the sentence is accepted, the result carries one
// derivation in bracket notation, e.g. "(S (A a) (B b))". The empty sentence
// is derived as the epsilon token.
//
// Errors are the same as for Normalize.
func Parse(grammarText, sentence string, opts ...Option) (*ParseResult, error) {
	c := configure(opts)
	g, err := c.parseGrammar(grammarText)
	if err != nil {
		return nil, err
	}
	tokens, err := lexmach.Words(sentence)
	if err != nil {
		return nil, fmt.Errorf("cannot split sentence: %w", err)
	}
	cnf, steps := normalize.CNF(g)
	p := cyk.NewParser(cnf)
	r := &ParseResult{
		Accepted:       p.Parse(tokens),
		Chart:          p.Chart(),
		CNFGrammarText: cnf.Format(c.epsilon),
		Steps:          nonNil(steps),
		Tokens:         nonNil(cfgo.Lexemes(tokens)),
		CNF:            cnf,
	}
	if r.Accepted {
		r.Tree = p.Derivation()
		d := c.epsilon
		if len(tokens) > 0 {
			d = r.Tree.Format(c.epsilon)
		}
		r.Derivation = &d
	}
	tracer().Infof("parse of %d tokens: accepted = %v", len(tokens), r.Accepted)
	return r, nil
}

// nonNil lets empty lists serialize as [] instead of null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
