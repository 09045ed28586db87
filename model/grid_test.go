package model

import "testing"

func TestNewGridDefaults(t *testing.T) {
	g := NewGrid(0)
	if got := g.Dimension(); got != DefaultDimension {
		t.Fatalf("Dimension() = %d, want %d", got, DefaultDimension)
	}
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("CountLivingCells() = %d, want 0", got)
	}
}

func TestGetSetWrap(t *testing.T) {
	g := NewGrid(32)
	g.Set(-1, -1, true)
	if !g.Get(31, 31) {
		t.Fatal("Set(-1,-1) should write (31,31)")
	}
	if !g.Get(63, -33) {
		t.Fatal("Get(63,-33) should read (31,31)")
	}

	g.Set(32, 64, true)
	if !g.Get(0, 0) {
		t.Fatal("Set(32,64) should write (0,0)")
	}
	if got := g.CountLivingCells(); got != 2 {
		t.Fatalf("CountLivingCells() = %d, want 2", got)
	}
}

func TestToggle(t *testing.T) {
	g := NewGrid(8)
	g.Toggle(3, 4)
	if !g.Get(3, 4) {
		t.Fatal("first toggle should make the cell alive")
	}
	g.Toggle(11, -4)
	if g.Get(3, 4) {
		t.Fatal("wrapped toggle should kill the cell")
	}
}

func TestLiveNeighborCountAllDead(t *testing.T) {
	g := NewGrid(32)
	for r := range 32 {
		for c := range 32 {
			if n := g.LiveNeighborCount(r, c); n != 0 {
				t.Fatalf("LiveNeighborCount(%d,%d) = %d, want 0", r, c, n)
			}
		}
	}
}

func TestLiveNeighborCountWrapsAroundCorner(t *testing.T) {
	g := NewGrid(32)
	g.Set(0, 0, true)

	neighbors := map[[2]int]bool{
		{31, 31}: true, {31, 0}: true, {31, 1}: true,
		{0, 31}: true, {0, 1}: true,
		{1, 31}: true, {1, 0}: true, {1, 1}: true,
	}

	for r := range 32 {
		for c := range 32 {
			want := 0
			if neighbors[[2]int{r, c}] {
				want = 1
			}
			if got := g.LiveNeighborCount(r, c); got != want {
				t.Errorf("LiveNeighborCount(%d,%d) = %d, want %d", r, c, got, want)
			}
		}
	}
}

func TestLiveNeighborCountExcludesSelf(t *testing.T) {
	g := NewGrid(5)
	for r := range 5 {
		for c := range 5 {
			g.Set(r, c, true)
		}
	}
	if got := g.LiveNeighborCount(2, 2); got != 8 {
		t.Fatalf("LiveNeighborCount on full grid = %d, want 8", got)
	}
}

func TestLiveNeighborCountTinyTorus(t *testing.T) {
	// On a 2x2 torus every offset lands on one of the three other cells, some twice.
	g := NewGrid(2)
	g.Set(0, 1, true)
	if got := g.LiveNeighborCount(0, 0); got != 2 {
		t.Fatalf("LiveNeighborCount(0,0) = %d, want 2", got)
	}
	if got := g.LiveNeighborCount(0, 1); got != 0 {
		t.Fatalf("LiveNeighborCount(0,1) = %d, want 0", got)
	}
}

func TestReset(t *testing.T) {
	g := NewGrid(16)
	g.Randomize(NewRand(1))
	if g.CountLivingCells() == 0 {
		t.Fatal("Randomize produced an empty grid")
	}
	g.Reset()
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("CountLivingCells() after Reset = %d, want 0", got)
	}
	if got := g.Dimension(); got != 16 {
		t.Fatalf("Dimension() after Reset = %d, want 16", got)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	a := NewGrid(32)
	b := NewGrid(32)
	a.Randomize(NewRand(42))
	b.Randomize(NewRand(42))
	if !a.Equal(b) {
		t.Fatal("same seed should produce the same grid")
	}

	// 1024 fair coin flips land far inside these bounds.
	if n := a.CountLivingCells(); n < 400 || n > 624 {
		t.Fatalf("CountLivingCells() = %d, expected roughly half of 1024", n)
	}
}

type fixedRand int

func (f fixedRand) IntN(int) int { return int(f) }

func TestRandomizeUsesSource(t *testing.T) {
	g := NewGrid(4)
	g.Randomize(fixedRand(1))
	if got := g.CountLivingCells(); got != 16 {
		t.Fatalf("all-ones source: CountLivingCells() = %d, want 16", got)
	}
	g.Randomize(fixedRand(0))
	if got := g.CountLivingCells(); got != 0 {
		t.Fatalf("all-zeros source: CountLivingCells() = %d, want 0", got)
	}
}

func TestEqualAndHash(t *testing.T) {
	a := NewGrid(8)
	b := NewGrid(8)
	if !a.Equal(b) || a.GetGridHash() != b.GetGridHash() {
		t.Fatal("empty grids should be equal")
	}
	a.Set(1, 2, true)
	if a.Equal(b) || a.GetGridHash() == b.GetGridHash() {
		t.Fatal("grids differing in one cell should not be equal")
	}
	if a.Equal(NewGrid(9)) || a.Equal(nil) {
		t.Fatal("grids of different shape should not be equal")
	}
}
