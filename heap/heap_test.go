package heap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxHeapOrdering(t *testing.T) {
	h := New()
	for _, k := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
		h.Add(k)
	}
	assert.Equal(t, 8, h.Count())

	got := make([]int, 0, 8)
	for h.Count() > 0 {
		k, ok := h.PopMax()
		assert.True(t, ok)
		got = append(got, k)
	}
	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, got)
}

func TestMaxHeapPeekDoesNotRemove(t *testing.T) {
	h := New()
	h.Add(7)
	h.Add(2)
	k, ok := h.PeekMax()
	assert.True(t, ok)
	assert.Equal(t, 7, k)
	assert.Equal(t, 2, h.Count())
}

func TestMaxHeapEmpty(t *testing.T) {
	h := New()
	_, ok := h.PopMax()
	assert.False(t, ok)
	_, ok = h.PeekMax()
	assert.False(t, ok)
}

func TestMaxHeapClear(t *testing.T) {
	h := New()
	h.Add(1)
	h.Add(2)
	h.Clear()
	assert.Equal(t, 0, h.Count())
}
