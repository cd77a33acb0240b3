package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingQueue_FIFOOrder(t *testing.T) {
	q := newRingQueue[int](4)
	q.Push(1)
	q.Push(2)
	q.Push(3)

	assert.Equal(t, 1, q.Pop())
	assert.Equal(t, 2, q.Pop())
	assert.Equal(t, 3, q.Pop())
}

func TestRingQueue_GrowsPastInitialCapacity(t *testing.T) {
	q := newRingQueue[int](2)
	for i := 0; i < 10; i++ {
		q.Push(i)
	}
	require.Equal(t, 10, q.Len())
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, q.Pop())
	}
	assert.Equal(t, 0, q.Len())
}

func TestRingQueue_WrapsAroundBeforeGrowing(t *testing.T) {
	q := newRingQueue[int](4)
	q.Push(1)
	q.Push(2)
	q.Pop()
	q.Pop()
	q.Push(3)
	q.Push(4)
	q.Push(5) // wraps: start has advanced past 0, end wraps to the front

	assert.Equal(t, 3, q.Pop())
	assert.Equal(t, 4, q.Pop())
	assert.Equal(t, 5, q.Pop())
}

func TestRingQueue_PopOnEmptyPanics(t *testing.T) {
	q := newRingQueue[int](4)
	assert.Panics(t, func() { q.Pop() })
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 100: 128}
	for in, want := range cases {
		assert.Equal(t, want, nextPow2(in), "nextPow2(%d)", in)
	}
}
