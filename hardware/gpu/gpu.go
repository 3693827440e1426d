// Package gpu is the character display processor: it owns the display
// registers, the character grid and the render pipeline, and produces one
// encoder-ready pixel per tick of the pixel domain.
package gpu

import (
	"fmt"

	"github.com/retrocpu/chardvi/hardware/chargrid"
	"github.com/retrocpu/chardvi/hardware/dvi"
	"github.com/retrocpu/chardvi/hardware/timing"
	"github.com/retrocpu/chardvi/ui"
)

// number of frame starts between cursor blink phase changes. half a second at
// the 60Hz refresh rate
const blinkFrames = 30

type GPU struct {
	Grid *chargrid.Grid
	Gen  *timing.Generator

	// the registers as most recently written by the register domain
	regs registers

	// the register values the pixel domain is working from. refreshed from
	// regs at the start of every pixel tick. within a tick the pixel domain
	// only ever sees this copy, so a register write can never be observed
	// half-applied
	latched registers

	pipe pipeline

	// cursor blink phase, toggled every blinkFrames frame starts
	blinkPhase bool
	blinkCount int

	// frame assembly for the user interface
	frame   frame
	render  chan<- *ui.Frame
	overlay bool
}

// Create initialises the GPU. render may be nil if no user interface is
// attached
func Create(spec timing.Spec, render chan<- *ui.Frame) *GPU {
	g := &GPU{
		Grid:   chargrid.Create(),
		Gen:    timing.NewGenerator(spec),
		render: render,
	}
	g.regs.reset()
	g.latched = g.regs
	g.newFrame()
	return g
}

func (g *GPU) Reset() {
	g.regs.reset()
	g.latched = g.regs
	g.Grid.SetMode(chargrid.Cols40)
	g.Gen.Reset()
	g.pipe = pipeline{}
	g.blinkPhase = false
	g.blinkCount = 0
	g.newFrame()
}

func (g *GPU) Label() string {
	return "GPU"
}

func (g *GPU) String() string {
	return fmt.Sprintf("%s: %s cursor=(%d,%d,en=%v) fg=%#03b bg=%#03b cols=%d\n%s",
		g.Label(), g.Gen.Spec().ID,
		g.regs.cursorRow, g.regs.cursorCol, g.regs.cursorEnabled,
		g.regs.fg, g.regs.bg, g.Grid.Cols(),
		g.Gen.Pos().String(),
	)
}

// UseOverlay enables the blanking/sync debugging overlay on rendered frames
func (g *GPU) UseOverlay(use bool) {
	g.overlay = use
}

// Tick advances the pixel domain by one tick and returns the encoder input
// for it. the colour carried by the pixel corresponds to the position that
// was current pipelineDepth ticks ago; the sync and DE flags are taken from
// the delayed position so that the serialised stream stays self-consistent
func (g *GPU) Tick() dvi.Pixel {
	// register writes take effect at the tick boundary
	g.latched = g.regs

	pos := g.Gen.Tick()

	if g.Gen.FrameStart(pos) {
		g.blinkCount++
		if g.blinkCount >= blinkFrames {
			g.blinkCount = 0
			g.blinkPhase = !g.blinkPhase
		}
		g.pushRender()
		g.newFrame()
	}

	sample, delayed := g.pipe.tick(g, pos)

	px := dvi.Pixel{
		Red:   sample.red,
		Green: sample.green,
		Blue:  sample.blue,
		DE:    g.Gen.Visible(delayed),
		HSync: g.Gen.HSync(delayed),
		VSync: g.Gen.VSync(delayed),
	}

	g.plot(delayed, px)

	return px
}

// Status implements the read side of the STATUS register. the ready bit is
// hardwired high: the display never inserts wait states
func (g *GPU) Status() (ready bool, vsync bool) {
	return true, g.Gen.VSync(g.Gen.Pos())
}
