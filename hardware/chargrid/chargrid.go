// Package chargrid implements the character buffer for the display. storage
// is a single backing array with explicit row/col arithmetic, standing in for
// the dual-port RAM of the original hardware.
package chargrid

import (
	"fmt"
	"strings"
)

const (
	Rows   = 30
	Cols40 = 40
	Cols80 = 80

	// the character code a blank cell holds
	Space = 0x20
)

// Grid is the 2D character store. the topLine field implements circular
// scrolling: logical row r lives at storage row (topLine+r) mod Rows, so a
// scroll is a single increment and a row blank rather than a copy.
//
// the grid has a single writer (the register domain) and a single reader (the
// pixel domain). neither performs read-modify-write so no locking is needed
type Grid struct {
	cells   [Rows * Cols80]uint8
	cols    int
	topLine int
}

func Create() *Grid {
	g := &Grid{}
	g.SetMode(Cols40)
	return g
}

func (g *Grid) Cols() int {
	return g.cols
}

// index maps a logical (row, col) to the backing array, applying the topLine
// rotation
func (g *Grid) index(row int, col int) int {
	return ((g.topLine+row)%Rows)*g.cols + col
}

// Write stores a character code at (row, col). out of range coordinates are
// clamped to the nearest valid cell, mirroring the saturating cursor of the
// hardware. this is intentional behaviour and not an error
func (g *Grid) Write(row int, col int, code uint8) {
	row = clamp(row, Rows-1)
	col = clamp(col, g.cols-1)
	g.cells[g.index(row, col)] = code
}

// Read returns the character code at the logical (row, col)
func (g *Grid) Read(row int, col int) uint8 {
	row = clamp(row, Rows-1)
	col = clamp(col, g.cols-1)
	return g.cells[g.index(row, col)]
}

// Scroll moves the logical top of the screen down one row and blanks the row
// that rotates into view at the bottom. O(1) apart from the row blank
func (g *Grid) Scroll() {
	g.topLine = (g.topLine + 1) % Rows
	g.blankRow(Rows - 1)
}

// SetMode selects the 40 or 80 column layout. the change of column count
// invalidates the row arithmetic of existing content so the whole grid is
// cleared and the rotation reset. the data loss is documented behaviour
func (g *Grid) SetMode(cols int) {
	if cols != Cols40 && cols != Cols80 {
		cols = Cols40
	}
	g.cols = cols
	g.topLine = 0
	g.Clear()
}

// Clear fills every cell with the space character
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Space
	}
}

func (g *Grid) blankRow(row int) {
	for col := range g.cols {
		g.cells[g.index(row, col)] = Space
	}
}

func (g *Grid) String() string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%dx%d topline=%d", g.cols, Rows, g.topLine))
	for row := range Rows {
		s.WriteString("\n")
		for col := range g.cols {
			c := g.Read(row, col)
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			s.WriteByte(c)
		}
	}
	return s.String()
}

func clamp(v int, maximum int) int {
	if v < 0 {
		return 0
	}
	if v > maximum {
		return maximum
	}
	return v
}
