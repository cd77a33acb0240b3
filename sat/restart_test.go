package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestartPolicy_DueAtThreshold(t *testing.T) {
	r := newRestartPolicy(Config{RestartThreshold: 10, RestartMultiplier: 2})

	assert.False(t, r.due(9))
	assert.True(t, r.due(10))
	assert.True(t, r.due(11))
}

func TestRestartPolicy_GeometricGrowthAfterReset(t *testing.T) {
	r := newRestartPolicy(Config{RestartThreshold: 10, RestartMultiplier: 2})

	r.reset()
	assert.True(t, r.due(20))
	assert.False(t, r.due(19))

	r.reset()
	assert.True(t, r.due(40))
	assert.False(t, r.due(39))
}

func TestRestartPolicy_IdempotentAtLevelZero(t *testing.T) {
	// spec.md §8's "idempotent restart" law: restarting at level 0 twice in
	// a row behaves as restarting once, since there is nothing left on the
	// trail to unwind the second time. The policy itself has no notion of
	// "already at level 0"; this is exercised through Solver.backtrackTo,
	// which is a no-op when called again at level 0.
	e := newEngine()
	e.vars.reserve(1)
	e.watch = newWatchLists(0)

	v := e.vars.insert(PositiveLiteral(1), nil)
	e.trail.pushDecisionMark()
	e.enqueue(v, On, ClauseID{})

	s := &Solver{engine: e, vsids: newVSIDS(10, false)}
	s.vsids.addVar()

	s.backtrackTo(0)
	first := e.vars.Assignment(v)
	s.backtrackTo(0)
	second := e.vars.Assignment(v)

	assert.Equal(t, Unassigned, first)
	assert.Equal(t, first, second)
}
