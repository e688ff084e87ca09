package normalize

import (
	"fmt"

	"github.com/npillmayer/cfgo/grammar"
)

// nameTable hands out names for synthetic non-terminals. It knows every symbol
// of the grammar it has been created for and every name handed out so far.
// A name table belongs to a single conversion run.
type nameTable struct {
	taken   map[string]bool
	counter int // serial for helper non-terminals
}

func newNameTable(g *grammar.Grammar) *nameTable {
	nt := &nameTable{taken: make(map[string]bool)}
	for _, A := range g.Nonterminals() {
		nt.taken[A] = true
	}
	for _, a := range g.Terminals() {
		nt.taken[a] = true
	}
	return nt
}

// define reserves a name. It returns false if the name is already taken.
func (nt *nameTable) define(name string) bool {
	if nt.taken[name] {
		return false
	}
	nt.taken[name] = true
	return true
}

// wrapper returns a fresh name for a non-terminal wrapping terminal a:
// T_a, or T_a_1, T_a_2, … if T_a is taken.
func (nt *nameTable) wrapper(a string) string {
	name := "T_" + a
	for i := 1; !nt.define(name); i++ {
		name = fmt.Sprintf("T_%s_%d", a, i)
	}
	return name
}

// helper returns a fresh name X_n for a binarization helper.
func (nt *nameTable) helper() string {
	for {
		nt.counter++
		name := fmt.Sprintf("X_%d", nt.counter)
		if nt.define(name) {
			return name
		}
	}
}
