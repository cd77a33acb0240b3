package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacktrack_UnassignsPastLevelAndReturnsUndone(t *testing.T) {
	e := newEngine()
	e.vars.reserve(2)
	a := e.vars.insert(PositiveLiteral(1), nil)
	b := e.vars.insert(PositiveLiteral(2), nil)

	e.trail.pushDecisionMark() // level 1
	e.enqueue(a, On, ClauseID{})
	e.trail.pushDecisionMark() // level 2
	e.enqueue(b, Off, ClauseID{})

	undone := e.backtrack(1)

	require.Len(t, undone, 1)
	assert.Equal(t, b, undone[0].id)
	assert.Equal(t, Off, undone[0].lastValue)
	assert.Equal(t, Unassigned, e.vars.Assignment(b))
	assert.Equal(t, On, e.vars.Assignment(a), "level 1 must survive a backtrack to level 1")
	assert.Equal(t, 1, e.trail.decisionLevel())
	assert.Equal(t, 1, e.trail.len())
}

func TestBacktrack_ToZeroUnwindsEverything(t *testing.T) {
	e := newEngine()
	e.vars.reserve(2)
	a := e.vars.insert(PositiveLiteral(1), nil)
	b := e.vars.insert(PositiveLiteral(2), nil)

	e.trail.pushDecisionMark()
	e.enqueue(a, On, ClauseID{})
	e.trail.pushDecisionMark()
	e.enqueue(b, On, ClauseID{})

	undone := e.backtrack(0)

	assert.Len(t, undone, 2)
	assert.Equal(t, 0, e.trail.decisionLevel())
	assert.Equal(t, 0, e.trail.len())
	assert.Equal(t, Unassigned, e.vars.Assignment(a))
	assert.Equal(t, Unassigned, e.vars.Assignment(b))
}

func TestBacktrack_ClampsQheadToNewTrailLength(t *testing.T) {
	e := newEngine()
	e.vars.reserve(1)
	a := e.vars.insert(PositiveLiteral(1), nil)

	e.trail.pushDecisionMark()
	e.enqueue(a, On, ClauseID{})
	e.qhead = 1

	e.backtrack(0)

	assert.Equal(t, 0, e.qhead, "qhead must never point past the truncated trail")
}

// TestSolver_BacktrackToReinsertsFreedVariables is a regression test for the
// decision heuristic wiring: every variable a backtrack unassigns must
// become a decision candidate again, not be stranded out of the heap.
func TestSolver_BacktrackToReinsertsFreedVariables(t *testing.T) {
	e := newEngine()
	e.vars.reserve(1)
	a := e.vars.insert(PositiveLiteral(1), nil)
	e.watch = newWatchLists(1)

	h := newVSIDS(10, false)
	h.addVar()

	s := &Solver{engine: e, vsids: h}

	e.trail.pushDecisionMark()
	e.enqueue(a, On, ClauseID{})

	_, _, ok := h.next(e.vars)
	assert.False(t, ok, "the only variable is assigned, so the heap must report no candidate")

	s.backtrackTo(0)

	id, _, ok := h.next(e.vars)
	require.True(t, ok, "backtrackTo must reinsert the freed variable into the decision heuristic")
	assert.Equal(t, a, id)
}
