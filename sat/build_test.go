package sat

import (
	"strings"
	"testing"

	"github.com/fabsolve/cdclsat/cnf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromModel_UnitClauseEnqueuedAtConstruction(t *testing.T) {
	m, err := cnf.ParseReader(strings.NewReader("p cnf 2 1\n1 0\n"))
	require.NoError(t, err)

	e, _, varIDs, rootUnsat := buildFromModel(m, DefaultConfig)

	assert.False(t, rootUnsat)
	assert.Equal(t, On, e.vars.Assignment(varIDs[1]))
	assert.Equal(t, Unassigned, e.vars.Assignment(varIDs[2]))
}

func TestBuildFromModel_ConflictingUnitClausesAreRootUnsat(t *testing.T) {
	m, err := cnf.ParseReader(strings.NewReader("p cnf 1 2\n1 0\n-1 0\n"))
	require.NoError(t, err)

	_, _, _, rootUnsat := buildFromModel(m, DefaultConfig)

	assert.True(t, rootUnsat)
}

func TestBuildFromModel_WarmStartsActivityByOccurrenceCount(t *testing.T) {
	m, err := cnf.ParseReader(strings.NewReader("p cnf 2 2\n1 2 0\n1 -2 0\n"))
	require.NoError(t, err)

	e, _, varIDs, rootUnsat := buildFromModel(m, DefaultConfig)
	require.False(t, rootUnsat)

	assert.Equal(t, float64(2), e.vars.Activity(varIDs[1]), "variable 1 occurs in both clauses")
	assert.Equal(t, float64(1), e.vars.Activity(varIDs[2]), "variable 2 occurs in one clause")
}

func TestBuildFromModel_VariableWithNoOccurrencesIsNotWarmStarted(t *testing.T) {
	m, err := cnf.ParseReader(strings.NewReader("p cnf 2 1\n1 0\n"))
	require.NoError(t, err)

	e, _, varIDs, _ := buildFromModel(m, DefaultConfig)

	assert.Equal(t, float64(0), e.vars.Activity(varIDs[2]))
}

func TestBuildFromModel_VariableAndClauseMetadataRoundTrip(t *testing.T) {
	m, err := cnf.ParseReader(strings.NewReader("p cnf 2 2\n1 2 0\n-1 2 0\n"))
	require.NoError(t, err)
	m.VariableMetadata = map[int]any{1: "from-compiler-var-1"}
	m.ClauseMetadata = []any{"clause-a", "clause-b"}

	e, _, varIDs, rootUnsat := buildFromModel(m, DefaultConfig)
	require.False(t, rootUnsat)

	assert.Equal(t, "from-compiler-var-1", e.vars.Metadata(varIDs[1]))
	assert.Nil(t, e.vars.Metadata(varIDs[2]), "variable 2 has no entry in VariableMetadata")

	ids := e.clauses.Ids()
	require.Len(t, ids, 2)
	gotMeta := make(map[any]bool, 2)
	for _, cid := range ids {
		gotMeta[e.clauses.Metadata(cid)] = true
	}
	assert.True(t, gotMeta["clause-a"])
	assert.True(t, gotMeta["clause-b"])
}

func TestBuildFromModel_ClauseMetadataShorterThanClausesLeavesRestNil(t *testing.T) {
	m, err := cnf.ParseReader(strings.NewReader("p cnf 2 2\n1 2 0\n-1 2 0\n"))
	require.NoError(t, err)
	m.ClauseMetadata = []any{"only-clause-a"}

	e, _, _, rootUnsat := buildFromModel(m, DefaultConfig)
	require.False(t, rootUnsat)

	found := 0
	for _, cid := range e.clauses.Ids() {
		if e.clauses.Metadata(cid) == "only-clause-a" {
			found++
		}
	}
	assert.Equal(t, 1, found)
}
