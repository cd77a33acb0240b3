package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_InsertLookup(t *testing.T) {
	ix := NewIndex()

	id0, off0 := ix.Insert()
	id1, off1 := ix.Insert()
	id2, off2 := ix.Insert()

	assert.Equal(t, 0, off0)
	assert.Equal(t, 1, off1)
	assert.Equal(t, 2, off2)
	assert.Equal(t, 3, ix.Len())

	for _, tc := range []struct {
		id   ID
		want int
	}{{id0, 0}, {id1, 1}, {id2, 2}} {
		got, ok := ix.DenseOffset(tc.id)
		require.True(t, ok)
		assert.Equal(t, tc.want, got)
	}
}

func TestIndex_EraseSwapPop(t *testing.T) {
	ix := NewIndex()
	id0, _ := ix.Insert()
	id1, _ := ix.Insert()
	id2, _ := ix.Insert()

	removed, ok := ix.Erase(id1)
	require.True(t, ok)
	assert.Equal(t, 1, removed) // offset 1 was removed and backfilled by last

	assert.Equal(t, 2, ix.Len())
	assert.False(t, ix.Has(id1))

	off0, ok := ix.DenseOffset(id0)
	require.True(t, ok)
	assert.Equal(t, 0, off0)

	// id2 used to be at dense offset 2; after the swap-pop it must now
	// resolve to offset 1 (where id1 used to live).
	off2, ok := ix.DenseOffset(id2)
	require.True(t, ok)
	assert.Equal(t, 1, off2)
}

func TestIndex_GenerationInvalidatesStaleID(t *testing.T) {
	ix := NewIndex()
	id0, _ := ix.Insert()

	_, ok := ix.Erase(id0)
	require.True(t, ok)

	newID, _ := ix.Insert()
	assert.Equal(t, id0.offset, newID.offset, "freed sparse slot should be reused")
	assert.NotEqual(t, id0.generation, newID.generation, "reused slot must bump generation")

	assert.False(t, ix.Has(id0), "stale id from before the erase must not resolve")
	assert.True(t, ix.Has(newID))
}

func TestIndex_EraseLastElement(t *testing.T) {
	ix := NewIndex()
	id0, _ := ix.Insert()
	id1, _ := ix.Insert()

	removed, ok := ix.Erase(id1)
	require.True(t, ok)
	assert.Equal(t, 1, removed)
	assert.True(t, ix.Has(id0))
	assert.False(t, ix.Has(id1))
}

func TestIndex_EraseUnknownID(t *testing.T) {
	ix := NewIndex()
	_, ok := ix.Erase(ID{offset: 7, generation: 0})
	assert.False(t, ok)
}

func TestIndex_IdsDenseOrder(t *testing.T) {
	ix := NewIndex()
	var ids []ID
	for i := 0; i < 5; i++ {
		id, _ := ix.Insert()
		ids = append(ids, id)
	}
	assert.Equal(t, ids, ix.Ids())
}

func TestID_ZeroValueInvalid(t *testing.T) {
	var zero ID
	assert.False(t, zero.Valid())

	ix := NewIndex()
	id, _ := ix.Insert()
	assert.True(t, id.Valid())
}
