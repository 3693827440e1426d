package dvi

import (
	"github.com/retrocpu/chardvi/hardware/clocks"
)

// the four output channels of the link
const (
	ChannelBlue = iota
	ChannelGreen
	ChannelRed
	ChannelClock
	NumChannels
)

// ClockSymbol is the fixed pattern carried on the clock channel. serialised
// LSB first it produces five low bits followed by five high bits: one pixel
// clock period per symbol
const ClockSymbol = Symbol(0b1111100000)

// SerialOut is a single serialisation tick of output: two bits per channel,
// DDR style. bit 0 of each value is transmitted first
type SerialOut struct {
	// Pairs[channel] & 0b11
	Pairs [NumChannels]uint8
}

// Serializer shifts loaded 10-bit symbols out as five 2-bit sub-ticks per
// pixel tick. the serial domain runs at exactly five times the pixel tick
// rate and is phase-locked to it: symbols only load at sub-tick zero
type Serializer struct {
	shift   [NumChannels]uint16
	subTick int
}

func (ser *Serializer) Reset() {
	ser.shift = [NumChannels]uint16{}
	ser.subTick = 0
}

// Load sets the symbols for the next five sub-ticks. Load is only honoured at
// sub-tick zero; a mid-symbol load would mean the serial domain had drifted
// with respect to the pixel domain, which the coordinator never allows
func (ser *Serializer) Load(blue Symbol, green Symbol, red Symbol) bool {
	if ser.subTick != 0 {
		return false
	}
	ser.shift[ChannelBlue] = uint16(blue) & SymbolMask
	ser.shift[ChannelGreen] = uint16(green) & SymbolMask
	ser.shift[ChannelRed] = uint16(red) & SymbolMask
	ser.shift[ChannelClock] = uint16(ClockSymbol)
	return true
}

// Tick emits the next two bits of every channel, lowest bits first
func (ser *Serializer) Tick() SerialOut {
	var out SerialOut
	for ch := range ser.shift {
		out.Pairs[ch] = uint8(ser.shift[ch] & 0x03)
		ser.shift[ch] >>= clocks.BitsPerSerialTick
	}
	ser.subTick = (ser.subTick + 1) % clocks.SerialTicksPerPixel
	return out
}
