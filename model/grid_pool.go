package model

import "sync"

// BufferPool recycles generation buffers between steps
type BufferPool struct {
	pool sync.Pool
}

func NewBufferPool() *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &[][]bool{}
			},
		},
	}
}

// Get retrieves a buffer of the given dimension. Its contents are unspecified;
// Step overwrites every cell before reading it back.
func (p *BufferPool) Get(dimension int) [][]bool {
	if p == nil {
		return newCells(dimension)
	}
	buf := *p.pool.Get().(*[][]bool)
	if len(buf) != dimension {
		return newCells(dimension)
	}
	return buf
}

// Put returns a buffer to the pool for reuse
func (p *BufferPool) Put(buf [][]bool) {
	if p == nil {
		return
	}
	p.pool.Put(&buf)
}
