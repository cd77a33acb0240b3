package sat

// backtrack undoes the trail down to the end of level (spec.md §4.G): every
// variable assigned at a level deeper than level is unassigned and its
// decision mark dropped, and the propagation queue is rewound so the next
// propagate call resumes from the preserved prefix. Non-chronological
// backjumping (jumping more than one level at a time) is the normal case
// after conflict analysis, not an edge case.
//
// It returns the variables it unassigned together with the value each held
// just before being undone (most recent first), so the caller can reinsert
// them into the decision heuristic's candidate set with phase information
// intact (spec.md §4.H).
func (e *engine) backtrack(level int) []undoneVar {
	var undone []undoneVar
	for e.trail.decisionLevel() > level {
		start := e.trail.popDecisionMark()
		for i := e.trail.len() - 1; i >= start; i-- {
			v := e.trail.at(i)
			undone = append(undone, undoneVar{id: v, lastValue: e.vars.Assignment(v)})
			e.vars.unassign(v)
		}
		e.trail.truncate(start)
	}
	if e.qhead > e.trail.len() {
		e.qhead = e.trail.len()
	}
	return undone
}

// undoneVar pairs a variable unassigned by backtrack with the value it held
// immediately before being undone.
type undoneVar struct {
	id        VarID
	lastValue Assignment
}
