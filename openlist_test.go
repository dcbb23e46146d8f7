package jps3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenListPopsMinF(t *testing.T) {
	pool := NewNodePool()
	ol := NewOpenList(pool)

	fs := []int32{30, 10, 20, 5, 25}
	ids := make([]NodeID, len(fs))
	for i, f := range fs {
		id := pool.GetOrCreate(Position{X: int32(i), Y: 0, Z: 0})
		pool.Get(id).F = f
		ids[i] = id
		ol.Push(id)
	}

	var popped []int32
	for ol.Len() > 0 {
		id := ol.PopMin()
		popped = append(popped, pool.Get(id).F)
	}
	assert.Equal(t, []int32{5, 10, 20, 25, 30}, popped)
}

func TestOpenListPushSetsOpenFlag(t *testing.T) {
	pool := NewNodePool()
	ol := NewOpenList(pool)
	id := pool.GetOrCreate(Position{X: 0, Y: 0, Z: 0})

	ol.Push(id)
	assert.True(t, pool.Get(id).isOpen())

	ol.PopMin()
	assert.False(t, pool.Get(id).isOpen())
}

func TestOpenListFixAfterDecrease(t *testing.T) {
	pool := NewNodePool()
	ol := NewOpenList(pool)

	id1 := pool.GetOrCreate(Position{X: 1, Y: 0, Z: 0})
	pool.Get(id1).F = 100
	ol.Push(id1)

	id2 := pool.GetOrCreate(Position{X: 2, Y: 0, Z: 0})
	pool.Get(id2).F = 50
	ol.Push(id2)

	pool.Get(id1).F = 1
	ol.Fix(id1)

	assert.Equal(t, id1, ol.PopMin())
}

func TestOpenListClear(t *testing.T) {
	pool := NewNodePool()
	ol := NewOpenList(pool)
	id := pool.GetOrCreate(Position{X: 0, Y: 0, Z: 0})
	ol.Push(id)

	ol.Clear()
	assert.Equal(t, 0, ol.Len())
}
