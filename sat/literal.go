// Package sat implements the CDCL (Conflict-Driven Clause Learning) SAT
// solver: a Structure-of-Arrays variable/clause store, two-watched-literal
// propagation, 1-UIP conflict analysis, VSIDS decisions, and geometric
// restarts, combined by a top-level driver that can enumerate up to N
// satisfying assignments (or prove unsatisfiability).
package sat

import "fmt"

// Polarity is a literal's sign: it either asserts its variable (Positive) or
// its negation (Negative).
type Polarity int8

const (
	Negative Polarity = 0
	Positive Polarity = 1
)

func (p Polarity) String() string {
	if p == Positive {
		return "+"
	}
	return "-"
}

// Literal is a variable identity (a positive integer, 1-based, matching the
// DIMACS numbering — distinct from the store's internal VarID used for
// O(1) indexing) together with a polarity.
//
// Per spec.md §9 Open Question 1, Literal equality and ordering are defined
// on the variable identity alone: use Equal/Less below, never Go's native
// "==", for the spec's notion of literal equality. Native "==" on a Literal
// value still compares the full packed (variable, polarity) pair and is
// used internally wherever code needs to know it is looking at the exact
// same signed literal (for example, "is this the literal that was just
// negated back into the clause") rather than the spec's relaxed equality.
type Literal int32

// NewLiteral constructs the literal of variable v (a positive integer) with
// the given polarity.
func NewLiteral(v int, p Polarity) Literal {
	return Literal(v)<<1 | Literal(p)
}

// PositiveLiteral returns the positive literal of variable v.
func PositiveLiteral(v int) Literal { return NewLiteral(v, Positive) }

// NegativeLiteral returns the negative literal of variable v.
func NegativeLiteral(v int) Literal { return NewLiteral(v, Negative) }

// Var returns the literal's variable identity.
func (l Literal) Var() int { return int(l >> 1) }

// LitPolarity returns the literal's polarity.
func (l Literal) LitPolarity() Polarity { return Polarity(l & 1) }

// IsPositive reports whether the literal asserts its variable (as opposed
// to its negation).
func (l Literal) IsPositive() bool { return l.LitPolarity() == Positive }

// Negation returns the literal with the opposite polarity of the same
// variable.
func (l Literal) Negation() Literal { return l ^ 1 }

// Equal implements the spec's variable-identity-only literal equality
// (Open Question 1).
func Equal(a, b Literal) bool { return a.Var() == b.Var() }

// Less implements the spec's variable-identity-only literal ordering
// (Open Question 1), used to sort learned clauses canonically.
func Less(a, b Literal) bool { return a.Var() < b.Var() }

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.Var())
	}
	return fmt.Sprintf("-%d", l.Var())
}
