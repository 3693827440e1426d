package font_test

import (
	"testing"

	"github.com/retrocpu/chardvi/hardware/font"
	"github.com/retrocpu/chardvi/test"
)

func TestKnownGlyphs(t *testing.T) {
	// space is blank on every scanline
	for row := range font.GlyphHeight {
		test.ExpectEquality(t, font.Row(' ', row), uint8(0x00))
	}

	// spot checks against the glyph table
	test.ExpectEquality(t, font.Row('A', 2), uint8(0x10))
	test.ExpectEquality(t, font.Row('A', 7), uint8(0xfe))
	test.ExpectEquality(t, font.Row('H', 6), uint8(0xfe))
	test.ExpectEquality(t, font.Row('H', 2), uint8(0xc6))
	test.ExpectEquality(t, font.Row('0', 2), uint8(0x7c))
	test.ExpectEquality(t, font.Row('@', 3), uint8(0x7c))
	test.ExpectEquality(t, font.Row('!', 2), uint8(0x18))
	test.ExpectEquality(t, font.Row('L', 2), uint8(0xf0))
	test.ExpectEquality(t, font.Row('L', 10), uint8(0xfe))
	test.ExpectEquality(t, font.Row('O', 2), uint8(0x7c))

	// every glyph has blank leading rows
	test.ExpectEquality(t, font.Row('A', 0), uint8(0x00))
	test.ExpectEquality(t, font.Row('A', 15), uint8(0x00))
}

func TestBlockGlyph(t *testing.T) {
	// the 0x7F slot stores a solid block
	for row := 2; row <= 11; row++ {
		test.ExpectEquality(t, font.Row(0x7f, row), uint8(0xff))
	}
	test.ExpectEquality(t, font.Row(0x7f, 0), uint8(0x00))
	test.ExpectEquality(t, font.Row(0x7f, 15), uint8(0x00))
}

func TestOutOfRange(t *testing.T) {
	// codes outside the printable range return the all-on placeholder on every
	// scanline
	for _, code := range []uint8{0x00, 0x1f, 0x80, 0xa0, 0xff} {
		for row := range font.GlyphHeight {
			test.ExpectEquality(t, font.Row(code, row), uint8(font.Placeholder))
		}
	}
}
