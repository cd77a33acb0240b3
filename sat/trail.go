package sat

// trail is the ordered sequence of assigned variables (spec.md §3): a
// decision pushes at a new level, propagations push at the current level
// with a reason clause. levelStart[i] is the trail length when decision
// level i+1 began, mirroring the teacher's trailLim — so the current
// decision level is simply len(levelStart).
type trail struct {
	entries    []VarID
	levelStart []int
}

func (t *trail) decisionLevel() int { return len(t.levelStart) }

func (t *trail) len() int { return len(t.entries) }

func (t *trail) push(id VarID) { t.entries = append(t.entries, id) }

// pushDecisionMark records that a new decision level is starting at the
// current trail length.
func (t *trail) pushDecisionMark() { t.levelStart = append(t.levelStart, len(t.entries)) }

// popDecisionMark removes the most recent decision level mark, returning
// the trail length it started at.
func (t *trail) popDecisionMark() int {
	n := len(t.levelStart) - 1
	start := t.levelStart[n]
	t.levelStart = t.levelStart[:n]
	return start
}

// truncate drops all trail entries at or past position i.
func (t *trail) truncate(i int) { t.entries = t.entries[:i] }

// at returns the variable at trail position i.
func (t *trail) at(i int) VarID { return t.entries[i] }
