// Package cnf reads DIMACS CNF files into a canonical Model: the file-format
// level of the solver's input, independent of any in-memory solver
// representation (see spec.md §4.B). The sat package turns a Model into its
// own Structure-of-Arrays store; this package never imports sat.
package cnf

import "fmt"

// Model is the canonical, parsed form of a DIMACS CNF instance.
type Model struct {
	// Variables enumerates the variable ids in scope for this instance, in
	// ascending order, 1..DeclaredVariables. Declaring the full range (and
	// not just the ids that happen to occur in a clause) lets a variable
	// that appears in no clause still get a store record, matching the
	// boundary behaviour in spec.md §8 ("A variable appearing in no clause
	// may remain unassigned in the reported solution").
	Variables []int

	// Clauses is the ordered list of clauses as they appeared in the file.
	// Each clause is a non-empty slice of non-zero signed DIMACS literals;
	// a negative value -k denotes the negative literal of variable k.
	Clauses [][]int

	// DeclaredVariables and DeclaredClauses are the M and N values from the
	// "p cnf M N" header line.
	DeclaredVariables int
	DeclaredClauses   int

	// VariableMetadata optionally carries an opaque provenance value per
	// DIMACS variable number, keyed the same way as Variables (spec.md §3's
	// "optional opaque metadata slot"). The DIMACS parser never populates
	// this; it exists for a caller that constructs a Model directly from an
	// upstream compiler's own variable records.
	VariableMetadata map[int]any

	// ClauseMetadata optionally carries one opaque provenance value per
	// entry of Clauses, in the same order. Left nil or short, missing
	// entries are treated as having no metadata.
	ClauseMetadata []any
}

// NumVariables returns the number of variables declared by the header.
func (m *Model) NumVariables() int {
	return m.DeclaredVariables
}

// NumClauses returns the number of clauses actually parsed.
func (m *Model) NumClauses() int {
	return len(m.Clauses)
}

func (m *Model) String() string {
	return fmt.Sprintf("Model{variables=%d, clauses=%d}", m.DeclaredVariables, len(m.Clauses))
}
