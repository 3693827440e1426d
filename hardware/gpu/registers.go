package gpu

import (
	"fmt"

	"github.com/retrocpu/chardvi/hardware/chargrid"
)

// the register file, as seen by the CPU side of the system. indexes are
// relative to the base address of the display (0xC010 in the reference
// memory map)
const (
	RegCharData = iota
	RegCursorRow
	RegCursorCol
	RegControl
	RegFgColor
	RegBgColor
	RegStatus
)

// CONTROL register bits
const (
	CtrlClear    = 0x01
	CtrlMode80   = 0x02
	CtrlCursorEn = 0x04
)

type registers struct {
	cursorRow     int
	cursorCol     int
	cursorEnabled bool
	fg            uint8
	bg            uint8
}

// reset values from the reference hardware: cursor at the origin and enabled,
// white on black, 40 column mode (the column mode itself lives in the grid)
func (r *registers) reset() {
	r.cursorRow = 0
	r.cursorCol = 0
	r.cursorEnabled = true
	r.fg = 0x07
	r.bg = 0x00
}

func (g *GPU) Access(write bool, idx uint16, data uint8) (uint8, error) {
	if write {
		return data, g.Write(idx, data)
	}
	return g.Read(idx)
}

func (g *GPU) Read(idx uint16) (uint8, error) {
	switch idx {
	case RegCharData:
		// write only
	case RegCursorRow:
		return uint8(g.regs.cursorRow), nil
	case RegCursorCol:
		return uint8(g.regs.cursorCol), nil
	case RegControl:
		// write only
	case RegFgColor:
		return g.regs.fg, nil
	case RegBgColor:
		return g.regs.bg, nil
	case RegStatus:
		var status uint8
		ready, vsync := g.Status()
		if ready {
			status |= 0x01
		}
		if vsync {
			status |= 0x02
		}
		return status, nil
	default:
		return 0, fmt.Errorf("not a display register (%#04x)", idx)
	}
	return 0, nil
}

func (g *GPU) Write(idx uint16, data uint8) error {
	switch idx {
	case RegCharData:
		g.WriteChar(data)
	case RegCursorRow:
		g.regs.cursorRow = clamp(int(data), chargrid.Rows-1)
	case RegCursorCol:
		g.regs.cursorCol = clamp(int(data), g.Grid.Cols()-1)
	case RegControl:
		g.regs.cursorEnabled = data&CtrlCursorEn == CtrlCursorEn
		cols := chargrid.Cols40
		if data&CtrlMode80 == CtrlMode80 {
			cols = chargrid.Cols80
		}
		if cols != g.Grid.Cols() {
			g.SetMode(cols)
		} else if data&CtrlClear == CtrlClear {
			g.ClearScreen()
		}
	case RegFgColor:
		g.regs.fg = data & 0x07
	case RegBgColor:
		g.regs.bg = data & 0x07
	case RegStatus:
		// read only
	default:
		return fmt.Errorf("not a display register (%#04x)", idx)
	}
	return nil
}

// WriteChar stores a character at the cursor and advances the cursor,
// wrapping at the end of the line. advancing past the last cell of the screen
// scrolls rather than overflowing
func (g *GPU) WriteChar(code uint8) {
	g.Grid.Write(g.regs.cursorRow, g.regs.cursorCol, code)
	g.regs.cursorCol++
	if g.regs.cursorCol >= g.Grid.Cols() {
		g.regs.cursorCol = 0
		g.regs.cursorRow++
		if g.regs.cursorRow >= chargrid.Rows {
			g.regs.cursorRow = chargrid.Rows - 1
			g.Grid.Scroll()
		}
	}
}

// SetCursor moves the cursor. out of range values clamp
func (g *GPU) SetCursor(row int, col int) {
	g.regs.cursorRow = clamp(row, chargrid.Rows-1)
	g.regs.cursorCol = clamp(col, g.Grid.Cols()-1)
}

func (g *GPU) Cursor() (row int, col int) {
	return g.regs.cursorRow, g.regs.cursorCol
}

// SetMode switches between the 40 and 80 column layouts. the grid is cleared
// and the cursor returned to the origin. prior content is discarded
func (g *GPU) SetMode(cols int) {
	g.Grid.SetMode(cols)
	g.regs.cursorRow = 0
	g.regs.cursorCol = 0
}

func (g *GPU) SetForeground(rgb uint8) {
	g.regs.fg = rgb & 0x07
}

func (g *GPU) SetBackground(rgb uint8) {
	g.regs.bg = rgb & 0x07
}

func (g *GPU) Colors() (fg uint8, bg uint8) {
	return g.regs.fg, g.regs.bg
}

// ClearScreen blanks the grid without affecting mode, colours or cursor
// position
func (g *GPU) ClearScreen() {
	g.Grid.Clear()
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
