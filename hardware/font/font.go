// Package font is the read-only glyph store for the character display. the
// glyph table is the classic PC ROM format: 8x16 pixel bitmaps, one byte per
// scanline with the most significant bit being the leftmost pixel.
package font

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed "font8x16.hex"
var fontRaw string

const (
	// the printable range covered by the glyph table. the final entry (0x7F)
	// holds the block glyph the original ROM stores in that slot
	CodeBase = 0x20
	NumChars = 96

	GlyphHeight = 16
	GlyphWidth  = 8
)

// Placeholder is the row value returned for every scanline of a character
// code outside the table range
const Placeholder = 0xff

var table [NumChars * GlyphHeight]uint8

func init() {
	var n int
	for _, line := range strings.Split(fontRaw, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		for _, f := range strings.Fields(line) {
			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				panic(fmt.Sprintf("font: bad value in font8x16.hex: %s", f))
			}
			if n >= len(table) {
				panic("font: too many values in font8x16.hex")
			}
			table[n] = uint8(v)
			n++
		}
	}
	if n != len(table) {
		panic(fmt.Sprintf("font: font8x16.hex is incorrect length. should be %d bytes (96 glyphs * 16 rows)", len(table)))
	}
}

// Row returns one scanline of the glyph for the character code. codes outside
// the table range return the all-on placeholder row, never an error
func Row(code uint8, scanline int) uint8 {
	if code < CodeBase || code >= CodeBase+NumChars {
		return Placeholder
	}
	return table[(int(code)-CodeBase)*GlyphHeight+(scanline&0x0f)]
}
