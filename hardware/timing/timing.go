package timing

import (
	"fmt"
)

// Position is the current location of the raster beam. H counts pixel ticks
// across the scanline, including the blanking period. V counts scanlines,
// including the vertical blanking period
type Position struct {
	Frame int
	H     int
	V     int
}

func (p Position) String() string {
	return fmt.Sprintf("frame: %d, scanline: %d, dot: %d", p.Frame, p.V, p.H)
}

func (p Position) ShortString() string {
	return fmt.Sprintf("%d/%03d/%03d", p.Frame, p.V, p.H)
}

// Generator is a free-running pair of counters advanced once per pixel tick.
// all derived signals (sync, visible, frame start) are functions of the
// counter values and the Spec
type Generator struct {
	spec Spec
	pos  Position
}

func NewGenerator(spec Spec) *Generator {
	g := &Generator{spec: spec}
	g.Reset()
	return g
}

// Reset restarts the counters such that the first Tick() returns position
// (0,0) of frame zero
func (g *Generator) Reset() {
	g.pos = Position{H: -1}
}

func (g *Generator) Spec() Spec {
	return g.spec
}

// SetSpec changes the display mode. counters restart from the top of the frame
func (g *Generator) SetSpec(spec Spec) {
	g.spec = spec
	g.pos.H = -1
	g.pos.V = 0
}

// Tick advances the counters by one pixel tick and returns the new position.
// exactly one position is current per tick
func (g *Generator) Tick() Position {
	g.pos.H++
	if g.pos.H >= g.spec.HTotal {
		g.pos.H = 0
		g.pos.V++
		if g.pos.V >= g.spec.VTotal {
			g.pos.V = 0
			g.pos.Frame++
		}
	}
	return g.pos
}

func (g *Generator) Pos() Position {
	return g.pos
}

// Visible is true when the position is inside the active video region
func (g *Generator) Visible(pos Position) bool {
	return pos.H < g.spec.HVisible && pos.V < g.spec.VVisible
}

// HSync returns the level of the horizontal sync signal at the position
func (g *Generator) HSync(pos Position) bool {
	inside := pos.H >= g.spec.HSyncStart && pos.H < g.spec.HSyncEnd
	return inside == g.spec.HSyncHigh
}

// VSync returns the level of the vertical sync signal at the position
func (g *Generator) VSync(pos Position) bool {
	inside := pos.V >= g.spec.VSyncStart && pos.V < g.spec.VSyncEnd
	return inside == g.spec.VSyncHigh
}

// FrameStart is true for the single tick at the top-left of the frame
func (g *Generator) FrameStart(pos Position) bool {
	return pos.H == 0 && pos.V == 0
}
