package gpu

import (
	"github.com/retrocpu/chardvi/hardware/chargrid"
	"github.com/retrocpu/chardvi/hardware/font"
	"github.com/retrocpu/chardvi/hardware/timing"
)

// the number of ticks between a position being current and the colour for
// that position leaving the pipeline. every delay register in the pipeline is
// sized from this one constant: a stage cannot be added or removed without
// the position delay line changing to match
const pipelineDepth = 2

type sample struct {
	red   uint8
	green uint8
	blue  uint8
}

// pipeline is the three stage render path.
//
//	stage A: character code fetch from the grid
//	stage B: glyph row fetch from the font table, one tick later
//	stage C: bit extraction and colour resolution, one tick after that
//
// the code and glyph registers are the equivalents of the hardware pipeline
// registers between stages. each stage exclusively owns the register it
// writes; values only cross stages through the shift at the top of tick()
type pipeline struct {
	// stage A output, consumed by stage B on the following tick
	code uint8

	// stage B output, consumed by stage C on the following tick
	glyph uint8

	// the position delay line. pos[0] is the current position, pos[k] the
	// position from k ticks ago. stage B reads pos[1], stage C reads
	// pos[pipelineDepth]. keeping the position in lock-step with the data is
	// the central correctness invariant of the pipeline
	pos [pipelineDepth + 1]timing.Position
}

// cellWidth returns the width of a character cell in pixel ticks for the
// current column mode
func cellWidth(cols int) int {
	if cols == chargrid.Cols80 {
		return 8
	}
	return 16
}

// tick advances all three stages by one pixel tick. the returned sample is
// the stage C output and belongs to the returned (delayed) position
func (p *pipeline) tick(g *GPU, pos timing.Position) (sample, timing.Position) {
	// shift the position delay line, oldest first
	for i := len(p.pos) - 1; i > 0; i-- {
		p.pos[i] = p.pos[i-1]
	}
	p.pos[0] = pos

	cw := cellWidth(g.Grid.Cols())

	// stage C: consume the glyph row fetched on the previous tick. the bit
	// index and the colour selection use the position delayed to match
	out := p.stageC(g, p.pos[pipelineDepth], cw)

	// stage B: consume the code fetched on the previous tick. the scanline
	// within the character cell comes from the one-tick-delayed position
	p.glyph = font.Row(p.code, p.pos[1].V%font.GlyphHeight)

	// stage A: fetch the character code for the current position
	p.code = g.Grid.Read(pos.V/font.GlyphHeight, pos.H/cw)

	return out, p.pos[pipelineDepth]
}

func (p *pipeline) stageC(g *GPU, pos timing.Position, cw int) sample {
	// outside the visible region the output is fixed black regardless of
	// whatever the pipeline registers hold
	if !g.Gen.Visible(pos) {
		return sample{}
	}

	// bit 7 is the leftmost pixel. in 40 column mode each glyph bit covers
	// two pixel ticks
	bit := pos.H % cw
	if cw == 16 {
		bit /= 2
	}
	on := p.glyph&(0x80>>bit) != 0x00

	fg := g.latched.fg
	bg := g.latched.bg

	// cursor overlay: invert the cell colours when the blink phase is on
	if g.latched.cursorEnabled && g.blinkPhase &&
		pos.V/font.GlyphHeight == g.latched.cursorRow &&
		pos.H/cw == g.latched.cursorCol {
		fg, bg = bg, fg
	}

	if on {
		return expand(fg)
	}
	return expand(bg)
}

// expand converts a 3-bit RGB value to a 24-bit sample by replicating each
// bit across its channel
func expand(rgb uint8) sample {
	var s sample
	if rgb&0x04 == 0x04 {
		s.red = 0xff
	}
	if rgb&0x02 == 0x02 {
		s.green = 0xff
	}
	if rgb&0x01 == 0x01 {
		s.blue = 0xff
	}
	return s
}
