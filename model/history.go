package model

// DefaultHistorySize keeps enough hashes to spot period 1-3 cycles
const DefaultHistorySize = 5

// History stores recent grid hashes for cycle detection
type History struct {
	size   int
	hashes []string
}

func NewHistory(size int) *History {
	if size < 3 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// UpdateHistory adds the current state of g and trims to size
func (h *History) UpdateHistory(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the last three recorded states
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	currentHash := g.GetGridHash()
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == currentHash {
			return true
		}
	}
	return false
}

// Clear forgets all recorded states
func (h *History) Clear() {
	h.hashes = nil
}

// Len returns the number of recorded states
func (h *History) Len() int {
	return len(h.hashes)
}
