package sat

// litStatus classifies a clause literal under the current assignment
// (spec.md §3: satisfied / falsified / free).
type litStatus int8

const (
	litFree litStatus = iota
	litSatisfied
	litFalsified
)

func statusOf(vs *variableStore, cl clauseLit) litStatus {
	a := vs.Assignment(cl.varID)
	switch {
	case a == Unassigned:
		return litFree
	case a.Satisfies(cl.literal):
		return litSatisfied
	default:
		return litFalsified
	}
}

// Watcher is the per-clause two-watched-literal structure (spec.md §4.D):
// up to two variable-ids designating the clause's currently watched
// literals. While the clause is neither satisfied nor conflicting, the
// invariant is that neither watched literal is falsified.
type Watcher struct {
	vars [2]VarID
	n    int8
}

// newWatcher installs the initial watcher for a clause given its literals,
// per spec.md §4.D: watch the first two free literals (or fewer, if the
// clause has 0 or 1 free literals at construction time).
func newWatcher(vs *variableStore, lits []clauseLit) Watcher {
	var w Watcher
	for _, cl := range lits {
		if statusOf(vs, cl) == litFree {
			w.vars[w.n] = cl.varID
			w.n++
			if w.n == 2 {
				break
			}
		}
	}
	return w
}

// Size returns the number of currently watched literals (0, 1, or 2).
func (w *Watcher) Size() int { return int(w.n) }

// WatchedIDs returns the variable-ids currently watched.
func (w *Watcher) WatchedIDs() []VarID { return w.vars[:w.n] }

func (w *Watcher) isWatching(v VarID) int {
	for i := 0; i < int(w.n); i++ {
		if w.vars[i] == v {
			return i
		}
	}
	return -1
}

// replaceOutcome reports what happened when a watched literal was
// falsified and the watcher tried to replace it (spec.md §4.D).
type replaceOutcome int8

const (
	replaceNoop      replaceOutcome = iota // v was not watched
	replaceInstalled                       // a new literal is now watched in v's place
	replaceUnit                            // no replacement found; the other watched literal is free: clause is unit
	replaceConflict                        // no replacement found; the other watched literal is falsified: conflict
	replaceSatisfied                       // no replacement found, but the other watched literal is already satisfied
)

// replace implements the watcher's replace(store, clause, v) operation: v's
// variable was just falsified. It scans the clause for another literal that
// is not falsified (free or satisfied) whose variable differs from the
// remaining watched slot and installs it;
// otherwise it reports whether the clause became unit or conflicting.
func (w *Watcher) replace(vs *variableStore, lits []clauseLit, v VarID) (replaceOutcome, VarID) {
	slot := w.isWatching(v)
	if slot < 0 {
		return replaceNoop, VarID{}
	}
	other := 1 - slot
	var otherVar VarID
	if w.n == 2 {
		otherVar = w.vars[other]
	}

	for _, cl := range lits {
		if cl.varID == v {
			continue
		}
		if w.n == 2 && cl.varID == otherVar {
			continue
		}
		if statusOf(vs, cl) != litFalsified {
			w.vars[slot] = cl.varID
			return replaceInstalled, cl.varID
		}
	}

	// No replacement found. If the clause still has two watches and the
	// other one already satisfies the clause, both stay watched: the
	// two-watched-literal scheme (spec.md §4.D) requires a satisfied clause
	// to keep both its watches so that a later backjump that unassigns v
	// again still trips unit propagation instead of silently being missed.
	if w.n == 2 {
		if statusOf(vs, lookup(lits, otherVar)) == litSatisfied {
			return replaceSatisfied, otherVar
		}
		w.vars[0] = otherVar
	}
	w.n--

	if w.n == 0 {
		return replaceConflict, VarID{}
	}

	switch statusOf(vs, lookup(lits, otherVar)) {
	case litFree:
		return replaceUnit, otherVar
	default:
		return replaceConflict, otherVar
	}
}

func lookup(lits []clauseLit, v VarID) clauseLit {
	for _, cl := range lits {
		if cl.varID == v {
			return cl
		}
	}
	panic("sat: watched variable not found in its own clause")
}
