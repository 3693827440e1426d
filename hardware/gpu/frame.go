package gpu

import (
	"image"
	"image/color"

	"github.com/retrocpu/chardvi/hardware/dvi"
	"github.com/retrocpu/chardvi/hardware/timing"
	"github.com/retrocpu/chardvi/ui"
)

// frame is the image being assembled for the user interface. when the debug
// overlay is enabled the image covers the entire scan including the blanking
// periods, otherwise just the visible region
type frame struct {
	debug  bool
	right  int
	bottom int
	img    *image.RGBA
}

func (g *GPU) newFrame() {
	spec := g.Gen.Spec()

	g.frame.debug = g.overlay
	if g.frame.debug {
		g.frame.right = spec.HTotal
		g.frame.bottom = spec.VTotal
	} else {
		g.frame.right = spec.HVisible
		g.frame.bottom = spec.VVisible
	}

	g.frame.img = image.NewRGBA(image.Rect(0, 0, g.frame.right, g.frame.bottom))
}

// plot writes one pixel of the assembling frame. in overlay mode the blanking
// periods are painted according to the sync signals so that the timing
// structure of the frame is visible
func (g *GPU) plot(pos timing.Position, px dvi.Pixel) {
	if pos.H < 0 || pos.H >= g.frame.right || pos.V < 0 || pos.V >= g.frame.bottom {
		return
	}

	var col color.RGBA
	if px.DE {
		col = color.RGBA{R: px.Red, G: px.Green, B: px.Blue, A: 255}
	} else if g.frame.debug {
		// sync pulses stand out against the rest of the blanking period
		spec := g.Gen.Spec()
		hPulse := pos.H >= spec.HSyncStart && pos.H < spec.HSyncEnd
		vPulse := pos.V >= spec.VSyncStart && pos.V < spec.VSyncEnd
		switch {
		case hPulse && vPulse:
			col = color.RGBA{R: 175, G: 175, A: 255}
		case hPulse:
			col = color.RGBA{R: 175, A: 255}
		case vPulse:
			col = color.RGBA{G: 175, A: 255}
		default:
			col = color.RGBA{R: 40, G: 40, B: 40, A: 255}
		}
	} else {
		return
	}

	g.frame.img.SetRGBA(pos.H, pos.V, col)
}

// pushRender sends the completed frame to the user interface. the send never
// blocks: if the interface is not keeping up the frame is dropped
func (g *GPU) pushRender() {
	if g.render == nil {
		return
	}
	select {
	case g.render <- &ui.Frame{
		Image: g.frame.img,
		ID:    g.Gen.Pos().ShortString(),
	}:
	default:
	}
}
