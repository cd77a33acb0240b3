package sat

// Solution is one satisfying assignment: one literal per declared variable,
// ordered by ascending variable number, each carrying the polarity it holds
// in this assignment (spec.md §4.J: "the ordered list of literals with
// polarity reflecting the final assignment").
type Solution []Literal

// String renders a solution as space-separated signed DIMACS literals,
// e.g. "1 -2 -3".
func (s Solution) String() string {
	b := make([]byte, 0, len(s)*3)
	for i, l := range s {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, []byte(l.String())...)
	}
	return string(b)
}
