package dvi

import (
	"github.com/retrocpu/chardvi/hardware/clocks"
	"github.com/retrocpu/chardvi/logger"
)

// SerialSink receives the serialised output of the transmitter, one call per
// serialisation tick. implementations must not block: the transmitter is
// cycle-driven and has nowhere to buffer
type SerialSink interface {
	SerialTick(SerialOut)
}

// NullSink discards the serial stream
type NullSink struct{}

func (NullSink) SerialTick(SerialOut) {}

// Pixel is the encoder input for one pixel tick. during blanking the colour
// values are ignored and the control bits are transmitted on the blue channel
type Pixel struct {
	Red   uint8
	Green uint8
	Blue  uint8

	// active video. false during any blanking period
	DE bool

	// sync levels, encoded as control bits on the blue channel when DE is low
	HSync bool
	VSync bool
}

// Transmitter combines the three channel encoders and the serializer into the
// full video-only DVI transmit path
type Transmitter struct {
	enc  [3]Encoder
	ser  Serializer
	sink SerialSink

	// symbols encoded on the most recent pixel tick, retained for inspection
	last [3]Symbol
}

func NewTransmitter(sink SerialSink) *Transmitter {
	if sink == nil {
		sink = NullSink{}
	}
	return &Transmitter{sink: sink}
}

func (tx *Transmitter) Reset() {
	for i := range tx.enc {
		tx.enc[i].Reset()
	}
	tx.ser.Reset()
	tx.last = [3]Symbol{}
}

// Symbols returns the three colour channel symbols from the most recent pixel
// tick, in blue/green/red order
func (tx *Transmitter) Symbols() [3]Symbol {
	return tx.last
}

// Disparity returns the running disparity of the given colour channel
func (tx *Transmitter) Disparity(channel int) int {
	return tx.enc[channel].Disparity()
}

// Tick encodes one pixel and runs the serializer for the five serialisation
// sub-ticks that make up the pixel tick
func (tx *Transmitter) Tick(px Pixel) {
	if px.DE {
		tx.last[ChannelBlue] = tx.enc[ChannelBlue].Encode(px.Blue)
		tx.last[ChannelGreen] = tx.enc[ChannelGreen].Encode(px.Green)
		tx.last[ChannelRed] = tx.enc[ChannelRed].Encode(px.Red)
	} else {
		var ctl uint8
		if px.HSync {
			ctl |= 0x01
		}
		if px.VSync {
			ctl |= 0x02
		}
		tx.last[ChannelBlue] = tx.enc[ChannelBlue].EncodeControl(ctl)
		tx.last[ChannelGreen] = tx.enc[ChannelGreen].EncodeControl(0)
		tx.last[ChannelRed] = tx.enc[ChannelRed].EncodeControl(0)
	}

	// a refused load means the serial domain has drifted out of phase with
	// the pixel domain. the tick schedule never allows that, so the stale
	// symbol that would result is worth shouting about
	if !tx.ser.Load(tx.last[ChannelBlue], tx.last[ChannelGreen], tx.last[ChannelRed]) {
		logger.Log("dvi", "tmds symbol load refused: serial domain out of phase")
	}
	for range clocks.SerialTicksPerPixel {
		tx.sink.SerialTick(tx.ser.Tick())
	}
}
