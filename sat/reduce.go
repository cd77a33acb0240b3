package sat

// learnedClauses tracks learned clause ids in insertion order (oldest
// first) so reduceLearnedClauses can evict the longest-standing ones first
// once the database grows past its cap — spec.md §9 Open Question 5's
// Config.ReduceLearnedClauses opt-in, grounded in the teacher's
// ReduceDB/locked (internal/sat/solver.go, internal/sat/clauses.go), here
// using age instead of activity as the eviction order.
type learnedClauses struct {
	ids *ringQueue[ClauseID]
	cap int
}

func newLearnedClauses(initialClauses int) *learnedClauses {
	cap := initialClauses / 3
	if cap < 100 {
		cap = 100
	}
	return &learnedClauses{ids: newRingQueue[ClauseID](64), cap: cap}
}

func (l *learnedClauses) track(id ClauseID) {
	l.ids.Push(id)
}

// grow widens the cap the way the teacher's Search loop widens nLearnts
// between rounds (numLearnts += numLearnts/20); called once per restart.
func (l *learnedClauses) grow() {
	l.cap += l.cap / 20
}

// locked reports whether id is currently the reason clause of one of its
// own literals' variables (spec.md §9: a clause still explaining an
// assignment on the trail must never be removed, or partialAssignment and
// future conflict analysis could dereference a dangling antecedent).
func locked(e *engine, id ClauseID) bool {
	for _, cl := range e.clauses.Literals(id) {
		if e.vars.Assignment(cl.varID) != Unassigned && e.vars.Reason(cl.varID) == id {
			return true
		}
	}
	return false
}

// reduceLearnedClauses evicts learned clauses past the cap, oldest first,
// skipping any that are currently locked (which are pushed back to the
// tail so they are reconsidered on the next reduction). It must only be
// called at decision level 0 (spec.md §4.I: the driver calls it right
// after a restart backjumps to level 0), so almost nothing is locked.
func (e *engine) reduceLearnedClauses(l *learnedClauses) int {
	removed := 0
	requeued := 0
	for l.ids.Len() > l.cap && l.ids.Len() > requeued {
		id := l.ids.Pop()
		if !e.clauses.Has(id) {
			continue // already removed by an earlier reduction pass
		}
		if locked(e, id) {
			l.ids.Push(id)
			requeued++
			continue
		}
		e.removeClause(id)
		removed++
	}
	return removed
}
