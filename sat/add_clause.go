package sat

// addClauseResult reports what inserting a new clause implied immediately,
// mirroring the watcher's own edge cases (spec.md §4.D) applied at clause
// construction time rather than during propagation.
type addClauseResult int8

const (
	addClauseOK       addClauseResult = iota // two free literals, or one and the clause is already satisfied
	addClauseUnit                            // exactly one free literal; caller must enqueue it
	addClauseConflict                        // no free literal, and none satisfied
)

// addClause installs a new clause, initial or learned, into the engine: it
// builds the clause's watcher over its literals (spec.md §4.D), inserts the
// clause into the store (§4.C), and registers it on its watched variables'
// watch lists. The returned VarID is only meaningful for addClauseUnit.
func (e *engine) addClause(lits []clauseLit, learnt bool, meta Metadata) (ClauseID, VarID, addClauseResult) {
	w := newWatcher(e.vars, lits)

	id := e.clauses.insert(lits, w, learnt, meta)
	watcher := e.clauses.Watcher(id)

	for _, v := range watcher.WatchedIDs() {
		off := e.vars.offset(v)
		lit := lookup(lits, v).literal
		e.watch.add(off, lit, id)
	}

	switch watcher.Size() {
	case 2:
		return id, VarID{}, addClauseOK
	case 1:
		v := watcher.WatchedIDs()[0]
		for _, cl := range lits {
			if statusOf(e.vars, cl) == litSatisfied {
				return id, VarID{}, addClauseOK
			}
		}
		return id, v, addClauseUnit
	default:
		// No watched literal: every literal is falsified, unless one
		// happens to already be satisfied despite not being watched (can
		// arise when a clause is added against a store that already has
		// assignments, e.g. the initial model).
		for _, cl := range lits {
			if statusOf(e.vars, cl) == litSatisfied {
				return id, VarID{}, addClauseOK
			}
		}
		return id, VarID{}, addClauseConflict
	}
}
