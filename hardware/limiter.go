package hardware

import (
	"time"

	"github.com/retrocpu/chardvi/hardware/timing"
)

// Limiter paces frame generation to the refresh rate of the display mode.
// used by the monitor when the machine is free-running
type Limiter struct {
	tick  *time.Ticker
	nudge chan bool
}

func NewLimiter(spec timing.Spec) *Limiter {
	d := time.Duration(float64(time.Second) / spec.RefreshRate)
	return &Limiter{
		tick:  time.NewTicker(d),
		nudge: make(chan bool, 1),
	}
}

func (l *Limiter) Wait() {
	select {
	case <-l.tick.C:
	case <-l.nudge:
	}
}

// Nudge releases a pending Wait() without waiting for the ticker
func (l *Limiter) Nudge() {
	select {
	case l.nudge <- true:
	default:
	}
}
