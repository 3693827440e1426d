package timing

// Spec collects the timing parameters for a display mode. all values are in
// pixel ticks (horizontal) or scanlines (vertical)
type Spec struct {
	ID string

	HVisible   int
	HSyncStart int
	HSyncEnd   int
	HTotal     int

	VVisible   int
	VSyncStart int
	VSyncEnd   int
	VTotal     int

	// a sync signal is "inside its window" when the counter is in
	// [SyncStart, SyncEnd). the polarity fields give the level of the signal
	// when inside the window
	HSyncHigh bool
	VSyncHigh bool

	// nominal refresh rate. informational only
	RefreshRate float64
}

var VGA60 Spec
var VGA70 Spec

func init() {
	// VESA 640x480@60Hz. both sync pulses are active low
	VGA60 = Spec{
		ID:          "640x480@60",
		HVisible:    640,
		HSyncStart:  640 + 16,
		HSyncEnd:    640 + 16 + 96,
		HTotal:      800,
		VVisible:    480,
		VSyncStart:  480 + 10,
		VSyncEnd:    480 + 10 + 2,
		VTotal:      525,
		HSyncHigh:   false,
		VSyncHigh:   false,
		RefreshRate: 59.94,
	}

	// VGA 640x400@70Hz. the positive vertical sync is how a multisync monitor
	// distinguishes the 400 line mode from the 480 line mode
	VGA70 = Spec{
		ID:          "640x400@70",
		HVisible:    640,
		HSyncStart:  640 + 16,
		HSyncEnd:    640 + 16 + 96,
		HTotal:      800,
		VVisible:    400,
		VSyncStart:  400 + 12,
		VSyncEnd:    400 + 12 + 2,
		VTotal:      449,
		HSyncHigh:   false,
		VSyncHigh:   true,
		RefreshRate: 70.08,
	}
}
