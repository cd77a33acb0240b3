package sat

// watchLists is the per-variable index used by two-watched-literal
// propagation (spec.md §4.D). For each variable (identified by its
// variableStore dense offset) it tracks the clauses currently watching that
// variable's positive literal (triggered when the variable is set Off,
// which falsifies a positive literal) and the clauses watching its negative
// literal (triggered when the variable is set On).
type watchLists struct {
	on  [][]ClauseID // clauses watching this variable's negative literal
	off [][]ClauseID // clauses watching this variable's positive literal
}

func newWatchLists(n int) *watchLists {
	return &watchLists{on: make([][]ClauseID, n), off: make([][]ClauseID, n)}
}

// add registers id as watching lit, whose variable sits at dense offset
// off, against whichever assignment would falsify it.
func (wl *watchLists) add(off int, lit Literal, id ClauseID) {
	if lit.IsPositive() {
		wl.off[off] = append(wl.off[off], id)
	} else {
		wl.on[off] = append(wl.on[off], id)
	}
}

// triggered returns a pointer to the list of clauses to re-check when the
// variable at dense offset off is assigned a. Callers mutate the returned
// slice in place (removing entries whose clause stopped watching the
// variable) via the pointer.
func (wl *watchLists) triggered(off int, a Assignment) *[]ClauseID {
	if a == On {
		return &wl.on[off]
	}
	return &wl.off[off]
}
