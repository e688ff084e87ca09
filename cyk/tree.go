package cyk

import (
	"strings"

	"github.com/npillmayer/cfgo"
	"github.com/npillmayer/cfgo/grammar"
)

// --- Derivation listener ---------------------------------------------------

// Listener is a type for walking a derivation tree.
//
// Reduce is called for every inner node A → B C, with rhs holding the nodes for
// B and C, and for an accepted empty input, with rhs being empty. Terminal is
// called for every leaf A → a. Spans count token positions.
type Listener interface {
	Reduce(A string, rhs []*RuleNode, span cfgo.Span, level int) interface{}
	Terminal(A string, token cfgo.Token, span cfgo.Span, level int) interface{}
}

// RuleNode represents a node occuring during a derivation walk.
type RuleNode struct {
	sym    string
	Extent cfgo.Span   // span of input tokens this node derives
	Value  interface{} // user defined value
}

// Symbol returns the non-terminal a RuleNode refers to.
func (rnode *RuleNode) Symbol() string {
	return rnode.sym
}

// --- Tree Walker -----------------------------------------------------------

// WalkDerivation walks the derivation of the last parse, bottom-up.
// It uses a listener, which gets called for every leaf and every inner node.
// Returns the root node, or nil if the last parse did not accept its input.
func (p *Parser) WalkDerivation(listener Listener) *RuleNode {
	if !p.accepted {
		return nil
	}
	S := p.g.Start()
	n := len(p.tokens)
	if n == 0 {
		span := cfgo.Span{0, 0}
		value := listener.Reduce(S, []*RuleNode{}, span, 0)
		return &RuleNode{sym: S, Extent: span, Value: value}
	}
	tracer().Debugf("=== Walk ===============================")
	return p.walk(0, n, S, listener, 0)
}

// walk expands chart entry (i, l, A). Recursion depth is bounded by l.
func (p *Parser) walk(i, l int, A string, listener Listener, level int) *RuleNode {
	bp := p.backptrs[entry{i, l, A}]
	var extent cfgo.Span
	var value interface{}
	if bp.isLeaf() {
		extent = cfgo.Span{uint64(i), uint64(i + 1)}
		tracer().Debugf("Tree node    %d: %s", i, A)
		value = listener.Terminal(A, p.tokens[i], extent, level)
	} else {
		left := p.walk(i, bp.k, bp.B, listener, level+1)
		right := p.walk(i+bp.k, l-bp.k, bp.C, listener, level+1)
		extent = left.Extent.Extend(right.Extent)
		value = listener.Reduce(A, []*RuleNode{left, right}, extent, level)
		tracer().Debugf("Tree node    %d|-----%s-----|%d", extent.From(), A, extent.To())
	}
	return &RuleNode{sym: A, Extent: extent, Value: value}
}

// Derivation returns the derivation tree of the last parse, or nil if the
// input has not been accepted.
func (p *Parser) Derivation() *Node {
	tb := NewTreeBuilder()
	if p.WalkDerivation(tb) == nil {
		return nil
	}
	return tb.Tree()
}

// --- Tree building listener ------------------------------------------------

// Node is a node of a derivation tree. Leaves carry the terminal they derive,
// inner nodes have exactly two children. A node without children and without
// a terminal derives ε.
type Node struct {
	Symbol   string
	Terminal string
	Children []*Node
	Extent   cfgo.Span
}

// IsLeaf is true for nodes deriving a single terminal.
func (node *Node) IsLeaf() bool {
	return len(node.Children) == 0 && node.Terminal != ""
}

// String returns the tree in bracket notation, e.g. "(S (A a) (B b))".
func (node *Node) String() string {
	return node.Format(grammar.DefaultEpsilon)
}

// Format returns the tree in bracket notation, printing nodes deriving ε with
// the given marker.
func (node *Node) Format(epsilon string) string {
	var b strings.Builder
	node.format(&b, epsilon)
	return b.String()
}

func (node *Node) format(b *strings.Builder, epsilon string) {
	b.WriteByte('(')
	b.WriteString(node.Symbol)
	b.WriteByte(' ')
	switch {
	case node.IsLeaf():
		b.WriteString(node.Terminal)
	case len(node.Children) == 0:
		b.WriteString(epsilon)
	default:
		for i, ch := range node.Children {
			if i > 0 {
				b.WriteByte(' ')
			}
			ch.format(b, epsilon)
		}
	}
	b.WriteByte(')')
}

// Walk calls f for node and all of its descendents, depth first, parents
// before children.
func (node *Node) Walk(f func(node *Node, level int)) {
	node.walk(f, 0)
}

func (node *Node) walk(f func(*Node, int), level int) {
	f(node, level)
	for _, ch := range node.Children {
		ch.walk(f, level+1)
	}
}

// TreeBuilder is a Listener which creates a derivation tree of Nodes.
// The common usage pattern is calling parser.Derivation(), which uses
// a TreeBuilder internally.
type TreeBuilder struct {
	root *Node
}

// NewTreeBuilder creates a TreeBuilder.
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{}
}

// Tree returns the derivation tree after walking the derivation.
func (tb *TreeBuilder) Tree() *Node {
	return tb.root
}

// Reduce is a listener method, called for inner nodes.
func (tb *TreeBuilder) Reduce(A string, rhs []*RuleNode, span cfgo.Span, level int) interface{} {
	node := &Node{Symbol: A, Extent: span, Children: make([]*Node, len(rhs))}
	for i, r := range rhs {
		node.Children[i] = r.Value.(*Node)
	}
	return tb.top(node, level)
}

// Terminal is a listener method, called for leaves.
func (tb *TreeBuilder) Terminal(A string, token cfgo.Token, span cfgo.Span, level int) interface{} {
	node := &Node{Symbol: A, Terminal: token.Lexeme(), Extent: span}
	return tb.top(node, level)
}

func (tb *TreeBuilder) top(node *Node, level int) *Node {
	if level == 0 {
		tb.root = node
	}
	return node
}

var _ Listener = &TreeBuilder{}
