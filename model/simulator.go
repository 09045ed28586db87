package model

import (
	"github.com/sheikhrachel/torus-gol/rules"
	"github.com/sheikhrachel/torus-gol/utils"
)

// Simulator advances a Grid one generation at a time.
// It is not safe for concurrent use; callers serialize steps and cell edits.
type Simulator struct {
	pool       *BufferPool
	generation int
}

// NewSimulator returns a Simulator that draws next-generation buffers from pool.
// A nil pool allocates a fresh buffer on every step.
func NewSimulator(pool *BufferPool) *Simulator {
	return &Simulator{pool: pool}
}

// Generation returns how many steps this simulator has committed
func (s *Simulator) Generation() int {
	return s.generation
}

// ResetGeneration sets the generation counter back to zero
func (s *Simulator) ResetGeneration() {
	s.generation = 0
}

// Step computes the next generation of g under v and commits it.
// Every cell is evaluated against the current generation before any cell is written.
func (s *Simulator) Step(g *Grid, v rules.Variant) {
	dim := g.Dimension()
	next := s.pool.Get(dim)

	for r := range dim {
		for c := range dim {
			next[r][c] = rules.NextState(g.Get(r, c), g.LiveNeighborCount(r, c), v)
		}
	}

	for r := range dim {
		for c := range dim {
			g.Set(r, c, next[r][c])
		}
	}

	s.pool.Put(next)
	s.generation++

	utils.Logger().Debug("generation committed",
		"generation", s.generation,
		"variant", v.String(),
	)
}

// Step advances g by one generation without buffer reuse
func Step(g *Grid, v rules.Variant) {
	NewSimulator(nil).Step(g, v)
}
