package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/cfgo/engine"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	trace   *string
	grammar *string
	start   *string
	epsilon *string
	json    *bool
}{}

// tracing keys of the packages of this module
var traceKeys = []string{
	"cfgo.cli", "cfgo.engine", "cfgo.grammar", "cfgo.scanner", "cfgo.normalize", "cfgo.cyk",
}

var rootCmd = &cobra.Command{
	Use:   "cfgo",
	Short: "Normalize context-free grammars and parse sentences with CYK",
	Long: `cfgo provides three features:
- Normalizes a grammar: removes ε-productions, unit productions and useless symbols.
- Parses a sentence with the CYK algorithm, after converting the grammar to
  Chomsky Normal Form.
- An interactive mode for experimenting with grammars and sentences.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setupTracing,
}

func init() {
	pflags := rootCmd.PersistentFlags()
	rootFlags.trace = pflags.String("trace", "Error", "trace level [Debug|Info|Error]")
	rootFlags.grammar = pflags.StringP("grammar", "g", "", "grammar file path (default stdin)")
	rootFlags.start = pflags.StringP("start", "s", "", "start symbol (default: LHS of first rule)")
	rootFlags.epsilon = pflags.StringP("epsilon", "e", "", "token for empty alternatives (default ε)")
	rootFlags.json = pflags.Bool("json", false, "print results as JSON")
}

// Execute runs the root command. Errors are reported to the user before
// returning them.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	return nil
}

func setupTracing(cmd *cobra.Command, args []string) error {
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.TraceLevelFromString(*rootFlags.trace)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", *rootFlags.trace)
	return nil
}

// engineOptions collects the options from the command line flags.
func engineOptions() []engine.Option {
	var opts []engine.Option
	if *rootFlags.start != "" {
		opts = append(opts, engine.StartSymbol(*rootFlags.start))
	}
	if *rootFlags.epsilon != "" {
		opts = append(opts, engine.EpsilonToken(*rootFlags.epsilon))
	}
	return opts
}

// readGrammar reads the grammar text from the file given with --grammar,
// or from stdin.
func readGrammar(cmd *cobra.Command) (string, error) {
	var src io.Reader = cmd.InOrStdin()
	if *rootFlags.grammar != "" {
		f, err := os.Open(*rootFlags.grammar)
		if err != nil {
			return "", fmt.Errorf("cannot open grammar file %s: %w", *rootFlags.grammar, err)
		}
		defer f.Close()
		src = f
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("cannot read grammar: %w", err)
	}
	return string(data), nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
