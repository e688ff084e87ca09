package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// Builder is a helper type to construct grammars.
//
//    b := NewBuilder()
//    b.LHS("S").Sym("A", "B").End()  // S  ->  A B
//    b.LHS("A").Sym("a").End()       // A  ->  a
//    b.LHS("B").Epsilon()            // B  ->  ε
//    g, err := b.Grammar()
//
// The first left-hand side added becomes the start symbol, unless Start is called.
// A Builder may be re-used after Grammar has been called; grammars already
// created are not affected.
type Builder struct {
	start string
	order []string
	rules map[string]*treeset.Set
}

// NewBuilder creates an empty grammar builder.
func NewBuilder() *Builder {
	return &Builder{rules: make(map[string]*treeset.Set)}
}

// Start sets the start symbol explicitly.
func (b *Builder) Start(S string) *Builder {
	b.start = S
	return b
}

// Declare registers a non-terminal, without adding an alternative for it.
func (b *Builder) Declare(A string) *Builder {
	b.ruleset(A)
	return b
}

// Add adds a rule A → alt. Duplicates are ignored.
func (b *Builder) Add(A string, alt Alternative) *Builder {
	b.ruleset(A).Add(alt.clone())
	return b
}

// LHS starts a new rule for non-terminal A.
func (b *Builder) LHS(A string) *RuleBuilder {
	return &RuleBuilder{b: b, lhs: A}
}

func (b *Builder) ruleset(A string) *treeset.Set {
	R, ok := b.rules[A]
	if !ok {
		R = NewAlternativeSet()
		b.rules[A] = R
		b.order = append(b.order, A)
	}
	return R
}

// Grammar returns the grammar built so far. It returns ErrEmptyGrammar if no
// non-terminal has been added.
func (b *Builder) Grammar() (*Grammar, error) {
	if len(b.rules) == 0 {
		tracer().Errorf("cannot create grammar without rules")
		return nil, ErrEmptyGrammar
	}
	g := &Grammar{
		start: b.start,
		rules: make(map[string]*treeset.Set, len(b.rules)+1),
	}
	if g.start == "" {
		g.start = b.order[0]
	}
	for A, R := range b.rules {
		C := NewAlternativeSet()
		C.Add(R.Values()...)
		g.rules[A] = C
	}
	if _, ok := g.rules[g.start]; !ok { // start symbol without rules is dead, but present
		g.rules[g.start] = NewAlternativeSet()
	}
	return g, nil
}

// RuleBuilder collects the right-hand side of a single rule.
type RuleBuilder struct {
	b   *Builder
	lhs string
	rhs Alternative
}

// Sym appends symbols to the right-hand side.
func (r *RuleBuilder) Sym(syms ...string) *RuleBuilder {
	r.rhs = append(r.rhs, syms...)
	return r
}

// End completes the rule and adds it to the grammar builder.
func (r *RuleBuilder) End() Alternative {
	alt := r.rhs.clone()
	r.b.Add(r.lhs, alt)
	return alt
}

// Epsilon adds an epsilon-rule for the left-hand side. Symbols collected
// with Sym are discarded.
func (r *RuleBuilder) Epsilon() Alternative {
	r.rhs = nil
	return r.End()
}
