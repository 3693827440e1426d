package clocks

const Mhz = 1000000

// pixel clocks for the two supported display modes. the 640x480 mode uses the
// standard VESA 25.175MHz dot clock. the 640x400 mode runs at a round 25MHz
const (
	Pixel_640x480 = 25.175 * Mhz
	Pixel_640x400 = 25.000 * Mhz
)

// the TMDS bit clock is ten times the pixel clock. two bits are emitted per
// serial tick (DDR) so the serial tick rate is five times the pixel tick rate
const (
	SerialTicksPerPixel = 5
	BitsPerSerialTick   = 2
)

const (
	Serial_640x480 = Pixel_640x480 * SerialTicksPerPixel
	Serial_640x400 = Pixel_640x400 * SerialTicksPerPixel
)

// the CPU clock of the reference system. register writes arrive at most this
// often, asynchronously with respect to the pixel domain
const CPU = 1 * Mhz
