package chargrid_test

import (
	"testing"

	"github.com/retrocpu/chardvi/hardware/chargrid"
	"github.com/retrocpu/chardvi/test"
)

func TestWriteRead(t *testing.T) {
	g := chargrid.Create()
	test.ExpectEquality(t, g.Cols(), chargrid.Cols40)

	// a fresh grid is all spaces
	test.ExpectEquality(t, g.Read(0, 0), uint8(chargrid.Space))
	test.ExpectEquality(t, g.Read(29, 39), uint8(chargrid.Space))

	g.Write(5, 10, 'A')
	test.ExpectEquality(t, g.Read(5, 10), uint8('A'))
	test.ExpectEquality(t, g.Read(5, 11), uint8(chargrid.Space))
}

func TestClamping(t *testing.T) {
	g := chargrid.Create()

	// out of range coordinates saturate rather than wrap
	g.Write(100, 100, 'X')
	test.ExpectEquality(t, g.Read(29, 39), uint8('X'))

	g.Write(-1, -1, 'Y')
	test.ExpectEquality(t, g.Read(0, 0), uint8('Y'))

	// reads clamp the same way
	test.ExpectEquality(t, g.Read(30, 40), uint8('X'))
}

func TestScroll(t *testing.T) {
	g := chargrid.Create()

	g.Write(0, 0, 'T')
	g.Write(1, 0, 'U')
	g.Write(29, 0, 'B')

	g.Scroll()

	// every row moves up one and the bottom row is blanked
	test.ExpectEquality(t, g.Read(0, 0), uint8('U'))
	test.ExpectEquality(t, g.Read(28, 0), uint8('B'))
	test.ExpectEquality(t, g.Read(29, 0), uint8(chargrid.Space))
}

func TestScrollFullRotation(t *testing.T) {
	g := chargrid.Create()

	for row := range chargrid.Rows {
		g.Write(row, 0, uint8('A'+row))
	}

	// scrolling a full screen height blanks everything
	for range chargrid.Rows {
		g.Scroll()
	}
	for row := range chargrid.Rows {
		test.ExpectEquality(t, g.Read(row, 0), uint8(chargrid.Space))
	}

	// and content written after the rotation reads back at the logical
	// coordinates it was written to
	g.Write(3, 7, 'Z')
	test.ExpectEquality(t, g.Read(3, 7), uint8('Z'))
}

func TestSetMode(t *testing.T) {
	g := chargrid.Create()

	g.Write(0, 0, 'A')
	g.Scroll()

	g.SetMode(chargrid.Cols80)
	test.ExpectEquality(t, g.Cols(), chargrid.Cols80)

	// a mode change clears the grid and resets the scroll rotation
	for row := range chargrid.Rows {
		for col := range chargrid.Cols80 {
			test.ExpectEquality(t, g.Read(row, col), uint8(chargrid.Space))
		}
	}

	g.Write(0, 79, 'W')
	test.ExpectEquality(t, g.Read(0, 79), uint8('W'))

	// an unrecognised column count falls back to 40 columns
	g.SetMode(13)
	test.ExpectEquality(t, g.Cols(), chargrid.Cols40)
}
