package sat

import "sort"

// analyze performs first-UIP conflict analysis (spec.md §4.F): starting
// from the conflicting clause, it resolves backward along the trail,
// absorbing each antecedent clause's literals, until exactly one literal
// assigned at the current decision level remains — the Unique Implication
// Point. It returns the learned clause, sorted into canonical variable
// order, and the decision level to backjump to. The caller (solver.go)
// installs the clause via addClause, which finds its asserting literal
// itself rather than relying on any particular position in the slice.
func (e *engine) analyze(conflict ClauseID) ([]clauseLit, int) {
	currentLevel := e.trail.decisionLevel()

	seen := e.vars.seen
	seen.Clear()
	learned := []clauseLit{{}} // index 0 reserved for the UIP literal
	backtrackLevel := 0
	nImplicationPoints := 0

	confl := conflict
	var uip VarID
	nextTrailIdx := e.trail.len() - 1

	for {
		for _, cl := range e.clauses.Literals(confl) {
			if cl.varID == uip {
				continue
			}
			off := e.vars.offset(cl.varID)
			if seen.Contains(off) {
				continue
			}
			seen.Add(off)

			if lvl := e.vars.Level(cl.varID); lvl == currentLevel {
				nImplicationPoints++
			} else {
				learned = append(learned, cl)
				if lvl > backtrackLevel {
					backtrackLevel = lvl
				}
			}
		}

		// Walk the trail backward to the next variable seen above; its
		// reason clause is what gets resolved against next.
		var v VarID
		for {
			v = e.trail.at(nextTrailIdx)
			nextTrailIdx--
			if seen.Contains(e.vars.offset(v)) {
				break
			}
		}
		uip = v
		confl = e.vars.Reason(v)

		nImplicationPoints--
		if nImplicationPoints <= 0 {
			break
		}
	}

	// The UIP's own literal closes the learned clause: the polarity that
	// is currently falsified by its assignment, matching every other
	// literal already gathered above.
	canonical := e.vars.Literal(uip)
	polarity := Positive
	if e.vars.Assignment(uip) == On {
		polarity = Negative
	}
	learned[0] = clauseLit{literal: NewLiteral(canonical.Var(), polarity), varID: uip}

	sort.Slice(learned, func(i, j int) bool { return Less(learned[i].literal, learned[j].literal) })
	return learned, backtrackLevel
}
