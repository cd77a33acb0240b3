package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddClause_TwoFreeLiteralsIsOK(t *testing.T) {
	e := newEngine()
	e.vars.reserve(2)
	ids := make([]VarID, 2)
	for i := range ids {
		ids[i] = e.vars.insert(PositiveLiteral(i+1), nil)
	}
	e.watch = newWatchLists(2)

	_, _, result := e.addClause([]clauseLit{litOf(e.vars, ids[0], Positive), litOf(e.vars, ids[1], Positive)}, false, nil)
	assert.Equal(t, addClauseOK, result)
}

func TestAddClause_UnitClauseReportsItsVariable(t *testing.T) {
	e := newEngine()
	e.vars.reserve(1)
	id := e.vars.insert(PositiveLiteral(1), nil)
	e.watch = newWatchLists(1)

	_, unitVar, result := e.addClause([]clauseLit{litOf(e.vars, id, Positive)}, false, nil)
	require.Equal(t, addClauseUnit, result)
	assert.Equal(t, id, unitVar)
}

func TestAddClause_EmptyClauseIsConflict(t *testing.T) {
	e := newEngine()
	e.watch = newWatchLists(0)

	_, _, result := e.addClause(nil, false, nil)
	assert.Equal(t, addClauseConflict, result)
}

func TestAddClause_AlreadySatisfiedSingleLiteralIsOK(t *testing.T) {
	e := newEngine()
	e.vars.reserve(1)
	id := e.vars.insert(PositiveLiteral(1), nil)
	e.watch = newWatchLists(1)
	e.vars.SetAssignment(id, On)

	_, _, result := e.addClause([]clauseLit{litOf(e.vars, id, Positive)}, false, nil)
	assert.Equal(t, addClauseOK, result, "a clause whose only literal is already satisfied is not unit")
}

func TestAddClause_RegistersOnWatchLists(t *testing.T) {
	e := newEngine()
	e.vars.reserve(2)
	ids := make([]VarID, 2)
	for i := range ids {
		ids[i] = e.vars.insert(PositiveLiteral(i+1), nil)
	}
	e.watch = newWatchLists(2)

	cid, _, _ := e.addClause([]clauseLit{litOf(e.vars, ids[0], Positive), litOf(e.vars, ids[1], Positive)}, false, nil)

	list := e.watch.triggered(e.vars.offset(ids[0]), Off)
	require.Len(t, *list, 1)
	assert.Equal(t, cid, (*list)[0])
}
