// Package snapshot converts grids to and from their persisted form.
//
// A snapshot file is exactly dimension*dimension bytes in row-major order,
// one byte per cell: 0x00 for dead and 0x01 for alive. There is no header;
// the reader supplies the expected dimension and inputs of any other length
// are rejected.
package snapshot

import (
	"io"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
)

const (
	deadByte  byte = 0x00
	aliveByte byte = 0x01
)

var (
	// ErrMalformedSnapshot means the bytes cannot be read as dimension x dimension cells
	ErrMalformedSnapshot = errors.New("malformed snapshot")
	// ErrDimensionMismatch means the snapshot shape differs from the grid shape
	ErrDimensionMismatch = errors.New("snapshot dimension mismatch")
)

// Snapshot is a row-major copy of a grid's cells
type Snapshot [][]bool

// Dimension returns the number of rows
func (s Snapshot) Dimension() int {
	return len(s)
}

// IsSquare reports whether every row has as many cells as there are rows
func (s Snapshot) IsSquare() bool {
	for _, row := range s {
		if len(row) != len(s) {
			return false
		}
	}
	return len(s) > 0
}

// Encode copies the full cell matrix of g
func Encode(g *model.Grid) Snapshot {
	dim := g.Dimension()
	s := make(Snapshot, dim)
	for r := range dim {
		s[r] = make([]bool, dim)
		for c := range dim {
			s[r][c] = g.Get(r, c)
		}
	}
	return s
}

// Marshal serializes a square snapshot into its byte form
func Marshal(s Snapshot) ([]byte, error) {
	if !s.IsSquare() {
		return nil, errors.Wrapf(ErrDimensionMismatch, "[Marshal] snapshot with %d rows is not square", len(s))
	}
	data := make([]byte, 0, len(s)*len(s))
	for _, row := range s {
		for _, alive := range row {
			if alive {
				data = append(data, aliveByte)
			} else {
				data = append(data, deadByte)
			}
		}
	}
	return data, nil
}

// Decode parses data as a dimension x dimension snapshot
func Decode(data []byte, dimension int) (Snapshot, error) {
	if dimension <= 0 {
		return nil, errors.Wrapf(ErrMalformedSnapshot, "[Decode] invalid dimension %d", dimension)
	}
	if len(data)%dimension != 0 {
		return nil, errors.Wrapf(ErrMalformedSnapshot,
			"[Decode] %d bytes is not a multiple of row length %d", len(data), dimension)
	}
	if len(data) != dimension*dimension {
		return nil, errors.Wrapf(ErrMalformedSnapshot,
			"[Decode] got %d rows, want %d", len(data)/dimension, dimension)
	}

	s := make(Snapshot, dimension)
	for r := range dimension {
		s[r] = make([]bool, dimension)
		for c := range dimension {
			switch b := data[r*dimension+c]; b {
			case aliveByte:
				s[r][c] = true
			case deadByte:
			default:
				return nil, errors.Wrapf(ErrMalformedSnapshot,
					"[Decode] invalid cell value 0x%02x at (%d,%d)", b, r, c)
			}
		}
	}
	return s, nil
}

// ApplyTo overwrites every cell of g with s.
// The shape is checked before any cell is written, so g is untouched on error.
func ApplyTo(g *model.Grid, s Snapshot) error {
	dim := g.Dimension()
	if len(s) != dim {
		return errors.Wrapf(ErrDimensionMismatch, "[ApplyTo] snapshot has %d rows, grid has %d", len(s), dim)
	}
	for r, row := range s {
		if len(row) != dim {
			return errors.Wrapf(ErrDimensionMismatch, "[ApplyTo] row %d has %d cells, grid has %d", r, len(row), dim)
		}
	}

	for r, row := range s {
		for c, alive := range row {
			g.Set(r, c, alive)
		}
	}
	return nil
}

// Read consumes a whole snapshot from r.
// At most dimension*dimension+1 bytes are read, enough to reject oversized input.
func Read(r io.Reader, dimension int) (Snapshot, error) {
	if dimension <= 0 {
		return nil, errors.Wrapf(ErrMalformedSnapshot, "[Read] invalid dimension %d", dimension)
	}
	data, err := io.ReadAll(io.LimitReader(r, int64(dimension*dimension)+1))
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	return Decode(data, dimension)
}

// Write serializes s to w
func Write(w io.Writer, s Snapshot) error {
	data, err := Marshal(s)
	if err != nil {
		return err
	}
	if _, err = w.Write(data); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}
