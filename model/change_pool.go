package model

import "sync"

// ChangePool recycles change-list buffers between generations.
// A nil *ChangePool is valid and allocates fresh buffers.
type ChangePool struct {
	pool sync.Pool
}

func NewChangePool() *ChangePool {
	return &ChangePool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]CellChange, 0, 64)
				return &buf
			},
		},
	}
}

// Get retrieves an empty change list from the pool
func (p *ChangePool) Get() []CellChange {
	if p == nil {
		return nil
	}
	return (*p.pool.Get().(*[]CellChange))[:0]
}

// Put returns a change list to the pool, dropping its contents
func (p *ChangePool) Put(changes []CellChange) {
	if p == nil || changes == nil {
		return
	}
	changes = changes[:0]
	p.pool.Put(&changes)
}
