// Package dvi implements the encoding half of a DVI video-only link: TMDS
// 8b/10b encoding of the three colour channels and the 10:1 DDR serialisation
// of the resulting symbols.
package dvi

import (
	"math/bits"
)

// Symbol is a 10-bit TMDS output symbol. bit 0 is transmitted first
type Symbol uint16

const SymbolMask = 0x03ff

// the four fixed symbols transmitted during blanking, indexed by the 2-bit
// control value. these are the out-of-band symbols a receiver synchronises on
var controlSymbols = [4]Symbol{
	0b1101010100,
	0b0010101011,
	0b0101010100,
	0b1010101011,
}

// Encoder is the TMDS encoder for a single channel. the only state is the
// running disparity: the cumulative excess of transmitted 1 bits over 0 bits
type Encoder struct {
	disparity int
}

func (e *Encoder) Reset() {
	e.disparity = 0
}

// Disparity returns the current running disparity
func (e *Encoder) Disparity() int {
	return e.disparity
}

// EncodeControl returns the blanking symbol for the 2-bit control value. the
// running disparity resets to zero: every blanking period is a DC-balance
// restart point for the channel
func (e *Encoder) EncodeControl(ctl uint8) Symbol {
	e.disparity = 0
	return controlSymbols[ctl&0x03]
}

// Encode converts an 8-bit pixel sample to a 10-bit symbol and updates the
// running disparity.
//
// stage one minimises transitions: the byte is re-expressed as a chain of
// XORs (marker bit 8 set) or XNORs (marker bit 8 clear) of adjacent bits,
// choosing XNOR when the byte has more than four 1s, or exactly four with an
// even low bit. stage two corrects for DC bias by conditionally inverting the
// eight data bits (recorded in bit 9) according to the running disparity.
// the branch conditions below follow the reference algorithm exactly; a
// receiver tracks disparity with the same rules and any deviation would
// desynchronise it over time
func (e *Encoder) Encode(data uint8) Symbol {
	n1 := bits.OnesCount8(data)

	var qm uint16
	if n1 > 4 || (n1 == 4 && data&0x01 == 0x00) {
		// XNOR chain. marker bit remains clear
		qm = uint16(data & 0x01)
		for i := 1; i < 8; i++ {
			prev := (qm >> (i - 1)) & 0x01
			d := uint16(data>>i) & 0x01
			qm |= (1 ^ prev ^ d) << i
		}
	} else {
		// XOR chain. marker bit set
		qm = uint16(data & 0x01)
		for i := 1; i < 8; i++ {
			prev := (qm >> (i - 1)) & 0x01
			d := uint16(data>>i) & 0x01
			qm |= (prev ^ d) << i
		}
		qm |= 0x100
	}

	marker := qm&0x100 == 0x100
	ones := bits.OnesCount16(qm & 0xff)
	zeros := 8 - ones

	var sym uint16
	if e.disparity == 0 || ones == zeros {
		// bit 9 takes the inverse of the marker. data bits are passed through
		// when the marker is set, inverted when clear
		if marker {
			sym = qm & 0x1ff
			e.disparity += ones - zeros
		} else {
			sym = 0x200 | (qm & 0x100) | (^qm & 0xff)
			e.disparity += zeros - ones
		}
	} else if (e.disparity > 0 && ones > zeros) || (e.disparity < 0 && zeros > ones) {
		// the new word would push the disparity further from zero: invert
		sym = 0x200 | (qm & 0x100) | (^qm & 0xff)
		if marker {
			e.disparity += 2
		}
		e.disparity += zeros - ones
	} else {
		// the new word pulls the disparity back towards zero: pass through
		sym = qm & 0x1ff
		if !marker {
			e.disparity -= 2
		}
		e.disparity += ones - zeros
	}

	return Symbol(sym)
}
