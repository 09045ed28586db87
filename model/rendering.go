package model

import (
	"bufio"
	"io"
	"os"
	"os/exec"

	"github.com/sheikhrachel/torus-gol/utils"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// CellReader is the read-only view of a grid that a renderer needs
type CellReader interface {
	Dimension() int
	Get(row, col int) bool
}

// TerminalRenderer draws a grid as text blocks
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the grid, one text line per row
func (r *TerminalRenderer) Display(g CellReader) {
	w := bufio.NewWriter(r.out())
	dim := g.Dimension()
	for row := range dim {
		for col := range dim {
			if g.Get(row, col) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		utils.Logger().Warn("render flush failed", "error", err)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		utils.Logger().Warn("clearing terminal failed", "error", err)
	}
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}
