package model

import "testing"

func TestChangePoolReturnsEmptyBuffers(t *testing.T) {
	pool := NewChangePool()
	buf := pool.Get()
	buf = append(buf, CellChange{Row: 1, Col: 2, State: Alive})
	pool.Put(buf)

	if got := pool.Get(); len(got) != 0 {
		t.Fatalf("pool returned a buffer with %d stale changes", len(got))
	}
}

func TestNilChangePool(t *testing.T) {
	var pool *ChangePool
	if buf := pool.Get(); buf != nil {
		t.Fatalf("nil pool returned %v", buf)
	}
	pool.Put([]CellChange{{Row: 0, Col: 0, State: Dead}})
}
