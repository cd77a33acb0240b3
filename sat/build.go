package sat

import "github.com/fabsolve/cdclsat/cnf"

// buildFromModel performs store initialisation (spec.md §4.C): one variable
// record per declared variable id, one clause record (with its watcher) per
// input clause, and a VSIDS warm start that bumps every variable's activity
// by one for each of its occurrences in an input clause. It returns the populated engine, the
// decision heuristic seeded with that warm start, a map from DIMACS variable
// number to the store's VarID, and whether the model is already
// root-level unsatisfiable (an empty clause, or a clause falsified outright
// by unit clauses built earlier in the file).
func buildFromModel(m *cnf.Model, cfg Config) (*engine, *vsids, map[int]VarID, bool) {
	e := newEngine()
	e.vars.reserve(len(m.Variables))
	e.clauses.reserve(len(m.Clauses))

	h := newVSIDS(cfg.VSIDSIncrement, cfg.PhaseSaving)

	varIDs := make(map[int]VarID, len(m.Variables))
	for _, vnum := range m.Variables {
		id := e.vars.insert(PositiveLiteral(vnum), m.VariableMetadata[vnum])
		varIDs[vnum] = id
		h.addVar()
	}

	e.watch = newWatchLists(e.vars.Len())
	occurrences := make([]float64, e.vars.Len())

	rootConflict := false
	for ci, clause := range m.Clauses {
		lits := make([]clauseLit, len(clause))
		for i, dimacsLit := range clause {
			vnum := dimacsLit
			polarity := Positive
			if dimacsLit < 0 {
				vnum = -dimacsLit
				polarity = Negative
			}
			id := varIDs[vnum]
			lits[i] = clauseLit{literal: NewLiteral(vnum, polarity), varID: id}
			occurrences[e.vars.offset(id)]++
		}

		var meta Metadata
		if ci < len(m.ClauseMetadata) {
			meta = m.ClauseMetadata[ci]
		}
		cid, unitVar, result := e.addClause(lits, false, meta)
		switch result {
		case addClauseUnit:
			lit := lookup(lits, unitVar).literal
			e.enqueue(unitVar, FromBool(lit.IsPositive()), cid)
		case addClauseConflict:
			rootConflict = true
		}
	}

	for off, occ := range occurrences {
		if occ > 0 {
			h.warmStart(e.vars, off, occ)
		}
	}

	return e, h, varIDs, rootConflict
}
