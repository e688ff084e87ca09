package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/cfgo/cyk"
	"github.com/npillmayer/cfgo/engine"
	"github.com/olekukonko/tablewriter"
	"github.com/pterm/pterm"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSteps(steps []string) {
	for i, step := range steps {
		pterm.Println(fmt.Sprintf("%3d  %s", i+1, step))
	}
}

// renderChart prints the CYK chart as a table: one row per span length,
// one column per start position.
func renderChart(w io.Writer, r *engine.ParseResult) {
	if len(r.Tokens) == 0 {
		fmt.Fprintln(w, "(empty input, no chart)")
		return
	}
	table := tablewriter.NewWriter(w)
	header := make([]string, len(r.Tokens)+1)
	header[0] = "len"
	for i, t := range r.Tokens {
		header[i+1] = fmt.Sprintf("%d: %s", i, t)
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for l, row := range r.Chart {
		cells := make([]string, len(r.Tokens)+1)
		cells[0] = fmt.Sprintf("%d", l+1)
		for i, syms := range row {
			cells[i+1] = strings.Join(syms, " ")
		}
		table.Append(cells)
	}
	table.Render()
}

// renderTree prints a derivation tree on the terminal.
func renderTree(tree *cyk.Node) {
	root := pterm.NewTreeFromLeveledList(leveledTree(tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledTree(tree *cyk.Node) pterm.LeveledList {
	ll := pterm.LeveledList{}
	tree.Walk(func(node *cyk.Node, level int) {
		text := node.Symbol
		if node.IsLeaf() {
			text = fmt.Sprintf("%s ➞ %s", node.Symbol, node.Terminal)
		}
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	})
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return ll
}
