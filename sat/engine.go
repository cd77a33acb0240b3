package sat

// engine bundles the mutable search state shared by propagation, conflict
// analysis, backtracking, and decision-making (spec.md §4.B/§4.C): the
// variable and clause stores, the two-watched-literal index, and the trail.
// Solver (solver.go) embeds an engine and layers configuration, statistics,
// and the top-level driver loop on top of it.
type engine struct {
	vars    *variableStore
	clauses *clauseStore
	watch   *watchLists
	trail   trail
	qhead   int // next unprocessed trail position (spec.md §4.E propagation queue)
}

func newEngine() *engine {
	return &engine{
		vars:    newVariableStore(),
		clauses: newClauseStore(),
	}
}

// partialAssignment renders the current trail as literals, in trail order,
// for inclusion in a *SolverError (spec.md §7: "surfaced upward with the
// partial trail for debugging").
func (e *engine) partialAssignment() []Literal {
	lits := make([]Literal, e.trail.len())
	for i := range lits {
		v := e.trail.at(i)
		canonical := e.vars.Literal(v)
		if e.vars.Assignment(v) == Off {
			canonical = canonical.Negation()
		}
		lits[i] = canonical
	}
	return lits
}

// removeClause unregisters id from every watch list it currently appears on
// and erases its record from the clause store. The caller is responsible
// for establishing that id is safe to remove (spec.md §9 Open Question 5:
// never a clause that is still some variable's reason — see
// variableStore-based locked check in reduce.go).
func (e *engine) removeClause(id ClauseID) {
	w := e.clauses.Watcher(id)
	for _, v := range w.WatchedIDs() {
		off := e.vars.offset(v)
		lit := lookup(e.clauses.Literals(id), v).literal
		list := e.watch.triggered(off, FromBool(lit.IsPositive()).Opposite())
		for i, cid := range *list {
			if cid == id {
				n := len(*list)
				(*list)[i] = (*list)[n-1]
				*list = (*list)[:n-1]
				break
			}
		}
	}
	e.clauses.erase(id)
}

// enqueue assigns v per spec.md §4.E/§4.J: it records the assignment, the
// current decision level, and the antecedent clause (the zero ClauseID for
// a decision), then pushes v onto the trail for propagation to pick up.
func (e *engine) enqueue(v VarID, val Assignment, reason ClauseID) {
	e.vars.SetAssignment(v, val)
	e.vars.SetLevel(v, e.trail.decisionLevel())
	e.vars.SetReason(v, reason)
	e.trail.push(v)
}
