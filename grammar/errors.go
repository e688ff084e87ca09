package grammar

import (
	"errors"
	"fmt"
)

// ErrEmptyGrammar is returned if a grammar text contains no rule at all.
var ErrEmptyGrammar = errors.New("empty grammar: no productions found")

// SyntaxError is returned for grammar text lines which cannot be read as a rule.
type SyntaxError struct {
	Line   int    // 1-based line number
	Text   string // offending line, trimmed
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("grammar syntax error in line %d (%s): %q", e.Line, e.Reason, e.Text)
}
