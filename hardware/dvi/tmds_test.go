package dvi

import (
	"testing"

	"github.com/retrocpu/chardvi/test"
)

func TestEncodeKnownVectorsAtZeroDisparity(t *testing.T) {
	var e Encoder

	// all-zero byte. XOR chaining gives a set marker bit and the balanced
	// branch clears bit 9
	test.ExpectEquality(t, e.Encode(0x00), Symbol(0b0100000000))
	test.ExpectEquality(t, e.Disparity(), -8)

	// all-one byte. XNOR chaining gives a clear marker bit; the data bits are
	// transmitted inverted
	e.Reset()
	test.ExpectEquality(t, e.Encode(0xff), Symbol(0b1000000000))
	test.ExpectEquality(t, e.Disparity(), -8)

	// alternating bytes produce balanced words and leave the disparity at
	// zero
	e.Reset()
	test.ExpectEquality(t, e.Encode(0xaa), Symbol(0b1000110011))
	test.ExpectEquality(t, e.Disparity(), 0)

	e.Reset()
	test.ExpectEquality(t, e.Encode(0x55), Symbol(0b0100110011))
	test.ExpectEquality(t, e.Disparity(), 0)
}

func TestEncodeKnownVectorsAtForcedDisparity(t *testing.T) {
	var e Encoder

	// drive the disparity to -8 and encode an all-ones byte. the word pulls
	// the disparity back towards zero so it passes through uninverted
	test.ExpectEquality(t, e.Encode(0x00), Symbol(0b0100000000))
	test.ExpectEquality(t, e.Encode(0xff), Symbol(0b0011111111))
	test.ExpectEquality(t, e.Disparity(), -2)

	// drive the disparity to +8. a second one-heavy word pushes it further
	// so the correction inverts the data bits
	e.Reset()
	test.ExpectEquality(t, e.Encode(0x01), Symbol(0b0111111111))
	test.ExpectEquality(t, e.Disparity(), 8)
	test.ExpectEquality(t, e.Encode(0x01), Symbol(0b1100000000))
	test.ExpectEquality(t, e.Disparity(), 2)
}

func TestDisparityBound(t *testing.T) {
	var e Encoder

	// a cheap deterministic byte sequence with a bias towards one-heavy
	// values. the running disparity must never leave the ±8 range however the
	// input is distributed
	v := uint8(0x01)
	for i := range 10000 {
		v = v*197 + 43
		e.Encode(v | uint8(i&0x0f))
		d := e.Disparity()
		test.ExpectSuccess(t, d >= -8 && d <= 8)
	}
}

func TestControlSymbols(t *testing.T) {
	var e Encoder

	test.ExpectEquality(t, e.EncodeControl(0), Symbol(0b1101010100))
	test.ExpectEquality(t, e.EncodeControl(1), Symbol(0b0010101011))
	test.ExpectEquality(t, e.EncodeControl(2), Symbol(0b0101010100))
	test.ExpectEquality(t, e.EncodeControl(3), Symbol(0b1010101011))
}

func TestBlankingResetsDisparity(t *testing.T) {
	var e Encoder

	e.Encode(0x00)
	test.ExpectInequality(t, e.Disparity(), 0)

	// any blanking symbol is a DC-balance restart point
	e.EncodeControl(1)
	test.ExpectEquality(t, e.Disparity(), 0)
}

func TestDecodeRoundTrip(t *testing.T) {
	var e Encoder

	// every byte value, encoded at whatever disparity the sequence has
	// reached, must decode to itself. repeating the sweep exercises different
	// disparity states for the same input byte
	for range 4 {
		for b := range 256 {
			sym := e.Encode(uint8(b))
			test.ExpectEquality(t, Decode(sym), uint8(b))
		}
	}
}

func TestDecodeControl(t *testing.T) {
	for ctl := range uint8(4) {
		var e Encoder
		sym := e.EncodeControl(ctl)
		decoded, ok := DecodeControl(sym)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, decoded, ctl)
	}

	// an active video symbol is not a control symbol
	var e Encoder
	_, ok := DecodeControl(e.Encode(0x80))
	test.ExpectFailure(t, ok)
}
