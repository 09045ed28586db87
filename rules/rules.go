package rules

import (
	"strings"

	"github.com/pkg/errors"
)

// Variant selects the rule family used to derive the next generation
type Variant int

const (
	// Life is Conway's B3/S23
	Life Variant = iota
	// HighLife is B36/S23
	HighLife
)

// ErrUnknownVariant is returned by ParseVariant for names outside the closed set
var ErrUnknownVariant = errors.New("unknown rule variant")

// Variants returns every supported variant in display order
func Variants() []Variant {
	return []Variant{Life, HighLife}
}

func (v Variant) String() string {
	switch v {
	case HighLife:
		return "highlife"
	default:
		return "life"
	}
}

// ParseVariant maps a user supplied name onto a Variant
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "life", "conway", "b3/s23":
		return Life, nil
	case "highlife", "high-life", "high life", "b36/s23":
		return HighLife, nil
	}
	return Life, errors.Wrapf(ErrUnknownVariant, "[ParseVariant] %q", name)
}

/*
ApplyLifeRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: neighbors == 3 || (alive && neighbors == 2)
*/
func ApplyLifeRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (alive && neighbors == 2)
}

/*
ApplyHighLifeRules applies the HighLife variant: Life plus birth on exactly 6 neighbors.

HighLife rules: neighbors == 3 || (!alive && neighbors == 6) || (alive && neighbors == 2)
*/
func ApplyHighLifeRules(neighbors int, alive bool) bool {
	return neighbors == 3 || (!alive && neighbors == 6) || (alive && neighbors == 2)
}

// NextState returns whether a cell is alive in the next generation.
// Unknown variants are evaluated as Life.
func NextState(alive bool, neighbors int, v Variant) bool {
	if v == HighLife {
		return ApplyHighLifeRules(neighbors, alive)
	}
	return ApplyLifeRules(neighbors, alive)
}
