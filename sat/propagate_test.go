package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagate_UnitChainsToFixpoint(t *testing.T) {
	// (a) and (-a or b): propagating a=on must force b=on too.
	e := newEngine()
	e.vars.reserve(2)
	a := e.vars.insert(PositiveLiteral(1), nil)
	b := e.vars.insert(PositiveLiteral(2), nil)
	e.watch = newWatchLists(2)

	_, _, r1 := e.addClause([]clauseLit{litOf(e.vars, a, Positive)}, false, nil)
	require.Equal(t, addClauseUnit, r1)

	_, _, r2 := e.addClause([]clauseLit{litOf(e.vars, a, Negative), litOf(e.vars, b, Positive)}, false, nil)
	require.Equal(t, addClauseOK, r2)
	e.enqueue(a, On, ClauseID{})

	var stats Stats
	conflict, hasConflict := e.propagate(&stats)
	assert.False(t, hasConflict)
	assert.False(t, conflict.Valid())
	assert.Equal(t, On, e.vars.Assignment(b))
	assert.EqualValues(t, 1, stats.Propagations)
}

func TestPropagate_ReportsConflict(t *testing.T) {
	e := newEngine()
	e.vars.reserve(1)
	a := e.vars.insert(PositiveLiteral(1), nil)
	e.watch = newWatchLists(1)

	_, _, r1 := e.addClause([]clauseLit{litOf(e.vars, a, Positive)}, false, nil)
	require.Equal(t, addClauseUnit, r1)

	_, _, r2 := e.addClause([]clauseLit{litOf(e.vars, a, Negative)}, false, nil)
	require.Equal(t, addClauseUnit, r2)

	e.enqueue(a, On, ClauseID{})
	e.enqueue(a, Off, ClauseID{}) // deliberately contradicts the unit above

	var stats Stats
	_, hasConflict := e.propagate(&stats)
	assert.True(t, hasConflict)
}

// TestPropagate_KeepsBothWatchesAcrossBackjumpWhenBlockerWasSatisfied is a
// regression test for the two-watched-literal invariant (spec.md §4.D): a
// clause whose other watch happened to be satisfied when its first watch
// was falsified must keep watching both literals, or a later backjump that
// revisits the same variable in a different order can silently miss the
// clause's unit propagation.
func TestPropagate_KeepsBothWatchesAcrossBackjumpWhenBlockerWasSatisfied(t *testing.T) {
	e := newEngine()
	e.vars.reserve(2)
	a := e.vars.insert(PositiveLiteral(1), nil)
	b := e.vars.insert(PositiveLiteral(2), nil)
	e.watch = newWatchLists(2)

	_, _, r := e.addClause([]clauseLit{litOf(e.vars, a, Positive), litOf(e.vars, b, Positive)}, false, nil)
	require.Equal(t, addClauseOK, r)

	var stats Stats
	e.trail.pushDecisionMark()
	e.enqueue(b, On, ClauseID{}) // satisfies b, clause not yet revisited
	_, hasConflict := e.propagate(&stats)
	require.False(t, hasConflict)

	e.trail.pushDecisionMark()
	e.enqueue(a, Off, ClauseID{}) // falsifies a; clause's other watch (b) is satisfied
	_, hasConflict = e.propagate(&stats)
	require.False(t, hasConflict)

	e.backtrack(0) // unassigns both a and b

	// This time only a is assigned, left Off, with b still unassigned: the
	// clause is unit over b and must force it On.
	e.trail.pushDecisionMark()
	e.enqueue(a, Off, ClauseID{})
	_, hasConflict = e.propagate(&stats)
	require.False(t, hasConflict)

	assert.Equal(t, On, e.vars.Assignment(b), "a watched clause must still trip unit propagation after the backjump")
}

func TestPropagate_QheadResumesWherePreviousCallLeftOff(t *testing.T) {
	e := newEngine()
	e.vars.reserve(1)
	a := e.vars.insert(PositiveLiteral(1), nil)
	e.watch = newWatchLists(1)

	var stats Stats
	_, hasConflict := e.propagate(&stats)
	require.False(t, hasConflict)
	assert.Equal(t, 0, e.qhead)

	e.enqueue(a, On, ClauseID{})
	_, hasConflict = e.propagate(&stats)
	require.False(t, hasConflict)
	assert.Equal(t, 1, e.qhead)
}
