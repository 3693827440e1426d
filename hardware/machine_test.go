package hardware_test

import (
	"testing"

	"github.com/retrocpu/chardvi/hardware"
	"github.com/retrocpu/chardvi/hardware/dvi"
	"github.com/retrocpu/chardvi/hardware/gpu"
	"github.com/retrocpu/chardvi/hardware/timing"
	"github.com/retrocpu/chardvi/test"
)

// captureSink records the full serial stream of the transmitter
type captureSink struct {
	out []dvi.SerialOut
}

func (s *captureSink) SerialTick(o dvi.SerialOut) {
	s.out = append(s.out, o)
}

// symbol reassembles the ten bit symbol for one channel from the five serial
// ticks of a pixel group
func (s *captureSink) symbol(t *testing.T, group int, channel int) dvi.Symbol {
	t.Helper()
	var d dvi.Deserializer
	var sym dvi.Symbol
	var ok bool
	for i := 0; i < 5; i++ {
		sym, ok = d.Tick(s.out[group*5+i].Pairs[channel])
	}
	test.ExpectSuccess(t, ok)
	return sym
}

// groupFor returns the serial group index carrying the colour for the given
// visible position. the colour for a position leaves the pixel pipeline two
// ticks after the position was current; the pixel of machine tick n fills
// serial group n-1
func groupFor(h int, v int) int {
	return v*timing.VGA60.HTotal + h + 2
}

func TestSerialStream(t *testing.T) {
	sink := &captureSink{}
	m := hardware.Create(timing.VGA60, nil, sink)

	// 80 column mode with the cursor disabled, then type a word at the home
	// position
	test.ExpectSuccess(t, m.Write(gpu.RegControl, gpu.CtrlMode80))
	for _, c := range "HELLO" {
		test.ExpectSuccess(t, m.Write(gpu.RegCharData, uint8(c)))
	}

	// run the pixel domain past scanline 2 of the glyphs
	m.TickScanline()
	m.TickScanline()
	m.TickScanline()

	test.ExpectEquality(t, len(sink.out), 3*timing.VGA60.HTotal*5)

	// the clock channel carries the fixed pattern on every pixel group
	for i := 0; i < 5; i++ {
		test.ExpectEquality(t, sink.out[i].Pairs[dvi.ChannelClock], uint8(dvi.ClockSymbol>>(i*2))&0x03)
	}
	sym := sink.symbol(t, 100, dvi.ChannelClock)
	test.ExpectEquality(t, sym, dvi.ClockSymbol)

	// scanline 2 of 'L' is 0xF0: pixel (16,2) is the leftmost pixel of the
	// third character cell and is foreground white
	g := groupFor(16, 2)
	test.ExpectEquality(t, dvi.Decode(sink.symbol(t, g, dvi.ChannelBlue)), uint8(0xff))
	test.ExpectEquality(t, dvi.Decode(sink.symbol(t, g, dvi.ChannelGreen)), uint8(0xff))
	test.ExpectEquality(t, dvi.Decode(sink.symbol(t, g, dvi.ChannelRed)), uint8(0xff))

	// pixel (20,2) is past the set bits of the glyph row and is background
	// black
	g = groupFor(20, 2)
	test.ExpectEquality(t, dvi.Decode(sink.symbol(t, g, dvi.ChannelBlue)), uint8(0x00))
	test.ExpectEquality(t, dvi.Decode(sink.symbol(t, g, dvi.ChannelRed)), uint8(0x00))

	// inside the horizontal sync pulse the blue channel carries the control
	// symbol for hsync low, vsync high
	g = groupFor(700, 0)
	ctl, ok := dvi.DecodeControl(sink.symbol(t, g, dvi.ChannelBlue))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ctl, uint8(0x02))

	// green and red channels idle at control 00 during blanking
	ctl, ok = dvi.DecodeControl(sink.symbol(t, g, dvi.ChannelGreen))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ctl, uint8(0x00))
	ctl, ok = dvi.DecodeControl(sink.symbol(t, g, dvi.ChannelRed))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ctl, uint8(0x00))
}

func TestTickFrame(t *testing.T) {
	sink := &captureSink{}
	m := hardware.Create(timing.VGA60, nil, sink)

	m.TickFrame()

	// the frame loop runs one tick into the new frame
	pos := m.GPU.Gen.Pos()
	test.ExpectEquality(t, pos.Frame, 1)
	test.ExpectEquality(t, pos.H, 0)
	test.ExpectEquality(t, pos.V, 0)
	test.ExpectEquality(t, len(sink.out), (timing.VGA60.HTotal*timing.VGA60.VTotal+1)*5)
}

func TestReset(t *testing.T) {
	m := hardware.Create(timing.VGA60, nil, nil)

	test.ExpectSuccess(t, m.Write(gpu.RegCharData, 'A'))
	m.TickScanline()
	m.Reset()

	test.ExpectEquality(t, m.GPU.Gen.Pos().Frame, 0)
	row, col := m.GPU.Cursor()
	test.ExpectEquality(t, row, 0)
	test.ExpectEquality(t, col, 0)
	test.ExpectEquality(t, m.TX.Disparity(dvi.ChannelBlue), 0)

	v, err := m.Read(gpu.RegStatus)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v&0x01, uint8(0x01))
}
