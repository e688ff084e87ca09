package main

import (
	"fmt"

	"github.com/npillmayer/cfgo/engine"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var normalizeFlags = struct {
	steps *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "normalize",
		Short:   "Remove ε-productions, unit productions and useless symbols from a grammar",
		Example: `  cat grammar.cfg | cfgo normalize --steps`,
		Args:    cobra.NoArgs,
		RunE:    runNormalize,
	}
	normalizeFlags.steps = cmd.Flags().Bool("steps", false, "print the transformation steps")
	rootCmd.AddCommand(cmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	text, err := readGrammar(cmd)
	if err != nil {
		return err
	}
	n, err := engine.Normalize(text, engineOptions()...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if *rootFlags.json {
		return writeJSON(out, n)
	}
	if *normalizeFlags.steps {
		printSteps(n.Steps)
	}
	fmt.Fprintln(out, n.NormalizedGrammarText)
	pterm.Info.Println(fmt.Sprintf("start symbol %s, %d non-terminals, %d terminals, fingerprint %s",
		n.Start, len(n.Nonterminals), len(n.Terminals), n.Grammar.Fingerprint()))
	return nil
}
