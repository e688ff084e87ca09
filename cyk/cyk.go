package cyk

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cfgo"
	"github.com/npillmayer/cfgo/grammar"
	"github.com/npillmayer/cfgo/sparse"
	"github.com/npillmayer/schuko/gconf"
)

// Parser is a CYK parser for a CNF grammar. Indexes for the grammar are
// built once by NewParser; the chart and the backpointers are re-created
// for every call to Parse.
//
// A Parser is not safe for concurrent use. Create one parser per goroutine;
// the grammar may be shared.
type Parser struct {
	g          *grammar.Grammar
	terminals  map[string]*treeset.Set // a → { A | A → a }
	pairs      map[pair]*treeset.Set   // (B,C) → { A | A → B C }
	traceChart bool
	tokens     []cfgo.Token
	chart      *sparse.SymbolMatrix    // row = offset, column = length
	backptrs   map[entry]backpointer
	accepted   bool
}

type pair struct {
	B, C string
}

// entry is a non-terminal A in chart cell (i, l).
type entry struct {
	i, l int
	A    string
}

// backpointer records how an entry has been derived. Leaves have k = 0.
type backpointer struct {
	k    int
	B, C string
}

func (bp backpointer) isLeaf() bool {
	return bp.k == 0
}

// Option configures a parser.
type Option func(p *Parser)

// TraceChart sets tracing of the chart after each parse. The default is
// taken from the global configuration flag 'cyk-trace-chart'.
func TraceChart(b bool) Option {
	return func(p *Parser) {
		p.traceChart = b
	}
}

// NewParser creates a parser for grammar g, which is expected to be in CNF.
// Rules not in CNF are ignored, with the exception of an ε-rule for the start
// symbol, which is used to accept the empty input.
func NewParser(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{
		g:          g,
		terminals:  make(map[string]*treeset.Set),
		pairs:      make(map[pair]*treeset.Set),
		traceChart: gconf.GetBool("cyk-trace-chart"),
	}
	for _, opt := range opts {
		opt(p)
	}
	g.EachRule(func(A string, alt grammar.Alternative) {
		switch {
		case len(alt) == 1 && g.IsTerminal(alt[0]):
			index(p.terminals, alt[0]).Add(A)
		case len(alt) == 2:
			pr := pair{alt[0], alt[1]}
			if _, ok := p.pairs[pr]; !ok {
				p.pairs[pr] = grammar.NewSymbolSet()
			}
			p.pairs[pr].Add(A)
		case len(alt) != 0:
			tracer().Infof("ignoring non-CNF rule %s -> %s", A, alt)
		}
	})
	tracer().Debugf("CYK index: %d terminals, %d pairs", len(p.terminals), len(p.pairs))
	return p
}

func index(m map[string]*treeset.Set, key string) *treeset.Set {
	S, ok := m[key]
	if !ok {
		S = grammar.NewSymbolSet()
		m[key] = S
	}
	return S
}

// Parse runs the CYK algorithm on a sequence of tokens, which are matched
// against terminals by their lexemes. Returns true if the sentence is
// accepted, i.e. derivable from the start symbol of the grammar.
//
// An empty token sequence is accepted if and only if the start symbol has an
// ε-alternative; no chart is built in this case.
func (p *Parser) Parse(tokens []cfgo.Token) bool {
	p.tokens = tokens
	p.backptrs = make(map[entry]backpointer)
	n := len(tokens)
	S := p.g.Start()
	if n == 0 {
		p.chart = sparse.NewSymbolMatrix(0, 0)
		p.accepted = p.g.HasEmptyAlternative(S)
		tracer().Infof("empty input, accepted = %v", p.accepted)
		return p.accepted
	}
	p.chart = sparse.NewSymbolMatrix(n, n+1)
	for i, token := range tokens {
		if T, ok := p.terminals[token.Lexeme()]; ok {
			for _, A := range T.Values() {
				p.add(i, 1, A.(string), backpointer{})
			}
		} else {
			tracer().Debugf("no rule for token %q at position %d", token.Lexeme(), i)
		}
	}
	for l := 2; l <= n; l++ {
		for i := 0; i+l <= n; i++ {
			for k := 1; k < l; k++ {
				p.combine(i, l, k)
			}
		}
	}
	p.accepted = p.chart.Contains(0, n, S)
	if p.traceChart {
		p.dumpChart()
	}
	tracer().Infof("CYK parse of %d tokens, accepted = %v", n, p.accepted)
	return p.accepted
}

// combine adds every A → B C to cell (i,l), where B is in cell (i,k) and C is
// in cell (i+k,l-k).
func (p *Parser) combine(i, l, k int) {
	if p.chart.Size(i, k) == 0 || p.chart.Size(i+k, l-k) == 0 {
		return
	}
	for _, B := range p.chart.Symbols(i, k) {
		for _, C := range p.chart.Symbols(i+k, l-k) {
			R, ok := p.pairs[pair{B, C}]
			if !ok {
				continue
			}
			for _, A := range R.Values() {
				p.add(i, l, A.(string), backpointer{k: k, B: B, C: C})
			}
		}
	}
}

// add inserts A into cell (i,l). The first backpointer for an entry is kept.
func (p *Parser) add(i, l int, A string, bp backpointer) {
	if p.chart.Add(i, l, A) {
		p.backptrs[entry{i, l, A}] = bp
	}
}

// Accepted returns the result of the last parse.
func (p *Parser) Accepted() bool {
	return p.accepted
}

// Chart returns the chart of the last parse. Element [l-1][i] holds the sorted
// non-terminals deriving the l tokens starting at position i. For an empty
// input the chart is empty.
func (p *Parser) Chart() [][][]string {
	if p.chart == nil {
		return [][][]string{}
	}
	n := p.chart.M()
	chart := make([][][]string, 0, n)
	for l := 1; l <= n; l++ {
		row := make([][]string, n-l+1)
		for i := range row {
			row[i] = p.chart.Symbols(i, l)
		}
		chart = append(chart, row)
	}
	return chart
}

func (p *Parser) dumpChart() {
	tracer().Debugf("--- Chart ------------------------------------------")
	for l, row := range p.Chart() {
		tracer().Debugf("[%2d] %v", l+1, row)
	}
	tracer().Debugf("%d non-empty cells", p.chart.ValueCount())
}
