package dvi

// the functions in this file are the receiving end of the link. the core only
// ever transmits; decoding exists so that tests and debugging views can check
// the serialised stream without reimplementing the encoding rules

// DecodeControl returns the control value for a blanking symbol. ok is false
// if the symbol is not one of the four control symbols
func DecodeControl(sym Symbol) (uint8, bool) {
	for ctl, s := range controlSymbols {
		if sym == s {
			return uint8(ctl), true
		}
	}
	return 0, false
}

// Decode recovers the 8-bit pixel sample from an active video symbol.
// decoding is stateless: bit 9 says whether the data bits were inverted and
// bit 8 whether the chaining was XOR or XNOR
func Decode(sym Symbol) uint8 {
	qm := uint16(sym)
	if qm&0x200 == 0x200 {
		qm ^= 0xff
	}

	var data uint8
	data = uint8(qm & 0x01)
	for i := 1; i < 8; i++ {
		b := uint8(qm>>i)&0x01 ^ uint8(qm>>(i-1))&0x01
		if qm&0x100 == 0x000 {
			b ^= 0x01
		}
		data |= b << i
	}
	return data
}

// Deserializer reassembles 10-bit symbols from the 2-bit stream of a single
// channel. a new symbol is completed every five serial ticks
type Deserializer struct {
	shift uint16
	n     int
}

// Tick shifts in the next bit pair. the returned symbol is valid only when
// complete is true
func (des *Deserializer) Tick(pair uint8) (Symbol, bool) {
	des.shift |= uint16(pair&0x03) << des.n
	des.n += 2
	if des.n < 10 {
		return 0, false
	}
	sym := Symbol(des.shift & SymbolMask)
	des.shift = 0
	des.n = 0
	return sym, true
}
