/*
Package sparse implements a simple type for sparse matrices of symbol sets.
It is used for CYK parse charts, where most cells of the upper triangle stay
empty for all but the most ambiguous grammars.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolMatrix is a type for a sparse matrix of symbol sets. Construct with
//
//     M := NewSymbolMatrix(10, 10)
//
// Now
//
//     M.Add(2, 3, "A")               // add a symbol to cell (2,3)
//     M.Add(2, 3, "B")               // add a second symbol
//     cnt := M.ValueCount()          // returns 1 (one position set)
//     syms := M.Symbols(2, 3)        // returns [A B]
//     syms = M.Symbols(5, 5)         // returns an empty slice
//
// Symbols cannot be deleted.
type SymbolMatrix struct {
	values []triplet
	rowcnt int
	colcnt int
}

// Triplet values to store. values of a matrix are kept in row-major order.
type triplet struct {
	row, col int
	value    *treeset.Set
}

// NewSymbolMatrix creates a new matrix for symbol sets, size m x n.
func NewSymbolMatrix(m, n int) *SymbolMatrix {
	return &SymbolMatrix{
		values: []triplet{},
		rowcnt: m,
		colcnt: n,
	}
}

// M returns the row count.
func (m *SymbolMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *SymbolMatrix) N() int {
	return m.colcnt
}

// ValueCount returns the number of non-empty cells in the matrix.
func (m *SymbolMatrix) ValueCount() int {
	return len(m.values)
}

// Contains is true if symbol sym is stored at position (i,j).
func (m *SymbolMatrix) Contains(i, j int, sym string) bool {
	if k, found := m.find(i, j); found {
		return m.values[k].value.Contains(sym)
	}
	return false
}

// Symbols returns the sorted symbols at position (i,j). The result is a copy.
func (m *SymbolMatrix) Symbols(i, j int) []string {
	k, found := m.find(i, j)
	if !found {
		return []string{}
	}
	return symbols(m.values[k].value)
}

// Size returns the number of symbols at position (i,j).
func (m *SymbolMatrix) Size(i, j int) int {
	if k, found := m.find(i, j); found {
		return m.values[k].value.Size()
	}
	return 0
}

// Add a symbol to the set at position (i,j). Returns true if sym has not been
// present before. Panics if (i,j) is out of range.
func (m *SymbolMatrix) Add(i, j int, sym string) bool {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse: position (%d,%d) out of range for %dx%d matrix", i, j, m.rowcnt, m.colcnt))
	}
	at, found := m.find(i, j)
	if found {
		if m.values[at].value.Contains(sym) {
			return false
		}
		m.values[at].value.Add(sym)
		return true
	}
	tnew := triplet{row: i, col: j, value: treeset.NewWithStringComparator(sym)}
	// the following 3 lines have to work for at being the right edge of values or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return true
}

// Each calls f for every non-empty cell, in row-major order.
func (m *SymbolMatrix) Each(f func(i, j int, syms []string)) {
	for _, t := range m.values {
		f(t.row, t.col, symbols(t.value))
	}
}

// find locates position (i,j). If it is not stored, find returns the index
// where a triplet for (i,j) would have to be inserted.
func (m *SymbolMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(k int) bool {
		return !m.values[k].storedLeftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].storedAt(i, j)
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}

func (t triplet) String() string {
	return fmt.Sprintf("(%d,%d)=%v", t.row, t.col, symbols(t.value))
}

func symbols(S *treeset.Set) []string {
	syms := make([]string, 0, S.Size())
	for _, x := range S.Values() {
		syms = append(syms, x.(string))
	}
	return syms
}
