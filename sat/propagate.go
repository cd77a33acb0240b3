package sat

// propagate runs unit propagation to fixpoint (spec.md §4.E): it drains the
// trail from qhead onward, and for every newly assigned variable walks only
// the clauses watching the literal that assignment just falsified. The
// two-watched-literal scheme (Watcher.replace) means propagation never
// rescans the full clause set, only the clauses registered against the
// variable that changed.
//
// It returns the conflicting clause and true on conflict; otherwise the
// zero ClauseID and false once the propagation queue empties.
func (e *engine) propagate(stats *Stats) (ClauseID, bool) {
	for e.qhead < e.trail.len() {
		v := e.trail.at(e.qhead)
		e.qhead++

		off := e.vars.offset(v)
		list := e.watch.triggered(off, e.vars.Assignment(v))

		i := 0
		for i < len(*list) {
			cid := (*list)[i]
			w := e.clauses.Watcher(cid)
			lits := e.clauses.Literals(cid)

			outcome, other := w.replace(e.vars, lits, v)
			if outcome == replaceNoop || outcome == replaceSatisfied {
				// v stays watched: either replace found nothing to do with
				// it (replaceNoop), or the clause's other watch already
				// satisfies it and both watches are kept (replaceSatisfied,
				// spec.md §4.D) so a later backjump still trips unit
				// propagation through v.
				i++
				continue
			}

			// The clause no longer watches v; drop it from v's list
			// in place (order does not matter here).
			n := len(*list)
			(*list)[i] = (*list)[n-1]
			*list = (*list)[:n-1]

			switch outcome {
			case replaceInstalled:
				newLit := lookup(lits, other).literal
				e.watch.add(e.vars.offset(other), newLit, cid)
			case replaceUnit:
				unitLit := lookup(lits, other).literal
				stats.Propagations++
				e.enqueue(other, FromBool(unitLit.IsPositive()), cid)
			case replaceConflict:
				return cid, true
			}
		}
	}
	return ClauseID{}, false
}
