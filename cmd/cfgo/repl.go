package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/cfgo/engine"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively edit a grammar and parse sentences",
		Long: `Starts an interactive session. Input lines are sentences to parse,
except for commands:

  :grammar <rule>   append a rule, e.g. ':grammar S -> a S b | ε'
  :clear            remove all rules
  :show             print the grammar
  :normalize        print the normalized grammar
  :cnf              print the grammar in Chomsky Normal Form
  :start <symbol>   set the start symbol
  :chart            toggle printing of CYK charts
  :quit             leave the session (as does <ctrl>D)`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	intp := &Intp{start: *rootFlags.start, epsilon: *rootFlags.epsilon}
	if *rootFlags.grammar != "" {
		text, err := readGrammar(cmd)
		if err != nil {
			return err
		}
		intp.rules = splitRules(text)
	}
	repl, err := readline.New("cfgo> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return err
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to cfgo") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")    // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp struct {
	rules     []string // rules of the grammar, one per line
	start     string
	epsilon   string
	showChart bool
	repl      *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a command or parses a sentence, given on a line by itself.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		return false, intp.parse(line)
	}
	cmd, arg := line, ""
	if pos := strings.IndexAny(line, " \t"); pos > 0 {
		cmd, arg = line[:pos], strings.TrimSpace(line[pos:])
	}
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":grammar", ":g":
		if arg == "" {
			return false, fmt.Errorf("usage: :grammar <rule>")
		}
		if _, err := engine.Normalize(arg, intp.options()...); err != nil { // syntax check
			return false, err
		}
		intp.rules = append(intp.rules, arg)
	case ":clear":
		intp.rules = nil
	case ":show":
		if len(intp.rules) == 0 {
			pterm.Info.Println("grammar is empty")
		}
		for _, rule := range intp.rules {
			pterm.Println(rule)
		}
	case ":start":
		intp.start = arg
	case ":chart":
		intp.showChart = !intp.showChart
	case ":normalize", ":n":
		n, err := engine.Normalize(intp.text(), intp.options()...)
		if err != nil {
			return false, err
		}
		printSteps(n.Steps)
		pterm.Println(n.NormalizedGrammarText)
	case ":cnf":
		r, err := engine.Parse(intp.text(), "", intp.options()...)
		if err != nil {
			return false, err
		}
		pterm.Println(r.CNFGrammarText)
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}

func (intp *Intp) parse(sentence string) error {
	r, err := engine.Parse(intp.text(), sentence, intp.options()...)
	if err != nil {
		return err
	}
	if intp.showChart {
		renderChart(os.Stdout, r)
	}
	if !r.Accepted {
		return fmt.Errorf("not accepted: %s", sentence)
	}
	if r.Tree != nil && len(r.Tokens) > 0 {
		renderTree(r.Tree)
	}
	pterm.Info.Println(*r.Derivation)
	return nil
}

func (intp *Intp) text() string {
	return strings.Join(intp.rules, "\n")
}

func (intp *Intp) options() []engine.Option {
	var opts []engine.Option
	if intp.start != "" {
		opts = append(opts, engine.StartSymbol(intp.start))
	}
	if intp.epsilon != "" {
		opts = append(opts, engine.EpsilonToken(intp.epsilon))
	}
	return opts
}

// splitRules splits grammar text into rule lines, dropping blank lines and
// comments.
func splitRules(text string) []string {
	var rules []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" && !strings.HasPrefix(line, "#") {
			rules = append(rules, line)
		}
	}
	return rules
}
