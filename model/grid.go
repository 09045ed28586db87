package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
)

// DefaultDimension is the side length of the board used by the game
const DefaultDimension = 32

// RandSource is the subset of *rand.Rand that Randomize needs
type RandSource interface {
	IntN(n int) int
}

// NewRand returns a deterministic PCG source for Randomize
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Grid is a fixed-size square board whose edges wrap around (a torus).
// It holds only alive/dead state; rendering lives elsewhere.
type Grid struct {
	dimension int
	cells     [][]bool
}

// NewGrid creates an all-dead grid; non-positive dimensions fall back to DefaultDimension
func NewGrid(dimension int) *Grid {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Grid{
		dimension: dimension,
		cells:     newCells(dimension),
	}
}

func newCells(dimension int) [][]bool {
	cells := make([][]bool, dimension)
	for i := range cells {
		cells[i] = make([]bool, dimension)
	}
	return cells
}

// Dimension returns the side length of the grid
func (g *Grid) Dimension() int {
	return g.dimension
}

// wrap normalizes any index onto [0, dimension)
func (g *Grid) wrap(i int) int {
	return ((i % g.dimension) + g.dimension) % g.dimension
}

// Get returns the state of a cell, wrapping the coordinates
func (g *Grid) Get(row, col int) bool {
	return g.cells[g.wrap(row)][g.wrap(col)]
}

// Set sets a cell to alive (true) or dead (false), wrapping the coordinates
func (g *Grid) Set(row, col int, alive bool) {
	g.cells[g.wrap(row)][g.wrap(col)] = alive
}

// Toggle flips a single cell
func (g *Grid) Toggle(row, col int) {
	r, c := g.wrap(row), g.wrap(col)
	g.cells[r][c] = !g.cells[r][c]
}

// LiveNeighborCount counts living cells among the 8 wrapped neighbors
func (g *Grid) LiveNeighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue // Skip the cell itself
			}
			if g.Get(row+dr, col+dc) {
				count++
			}
		}
	}
	return count
}

// Reset kills every cell in place
func (g *Grid) Reset() {
	for r := range g.dimension {
		for c := range g.dimension {
			g.cells[r][c] = false
		}
	}
}

// Randomize sets each cell alive with probability 1/2
func (g *Grid) Randomize(rng RandSource) {
	for r := range g.dimension {
		for c := range g.dimension {
			g.cells[r][c] = rng.IntN(2) == 1
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.dimension {
		for c := range g.dimension {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.dimension != other.dimension {
		return false
	}
	for r := range g.dimension {
		for c := range g.dimension {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	for r := range g.dimension {
		for c := range g.dimension {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
