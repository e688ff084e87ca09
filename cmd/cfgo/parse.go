package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cfgo/engine"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	chart *bool
	tree  *bool
	cnf   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <sentence…>",
		Short:   "Parse a sentence with the CYK algorithm",
		Example: `  cfgo parse -g balanced.cfg --tree a a b b`,
		RunE:    runParse,
	}
	parseFlags.chart = cmd.Flags().Bool("chart", false, "print the CYK chart")
	parseFlags.tree = cmd.Flags().Bool("tree", false, "print the derivation as a tree")
	parseFlags.cnf = cmd.Flags().Bool("cnf", false, "print the grammar in Chomsky Normal Form")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := readGrammar(cmd)
	if err != nil {
		return err
	}
	sentence := strings.Join(args, " ")
	r, err := engine.Parse(text, sentence, engineOptions()...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if *rootFlags.json {
		return writeJSON(out, r)
	}
	if *parseFlags.cnf {
		fmt.Fprintln(out, r.CNFGrammarText)
	}
	if *parseFlags.chart {
		renderChart(out, r)
	}
	if !r.Accepted {
		return fmt.Errorf("sentence %q not accepted", sentence)
	}
	if *parseFlags.tree && r.Tree != nil && len(r.Tokens) > 0 {
		renderTree(r.Tree)
	} else {
		pterm.Info.Println(*r.Derivation)
	}
	return nil
}
