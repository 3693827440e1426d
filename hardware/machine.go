// Package hardware assembles the display core and coordinates its tick
// domains.
package hardware

import (
	"github.com/retrocpu/chardvi/hardware/dvi"
	"github.com/retrocpu/chardvi/hardware/gpu"
	"github.com/retrocpu/chardvi/hardware/timing"
	"github.com/retrocpu/chardvi/ui"
)

// Machine connects the GPU to the DVI transmitter and advances the three
// tick domains of the system at their fixed ratios:
//
//	register domain  :  asynchronous, driven by Write()/Read() calls
//	pixel domain     :  one Tick() per pixel
//	serial domain    :  exactly five sub-ticks per pixel tick
//
// the physical clock domain crossings of the original hardware reduce to this
// deterministic schedule. there is no uncontrolled asynchronous boundary in
// the software model so the synchroniser circuits of the hardware have no
// counterpart here; they are non-issues rather than omissions
type Machine struct {
	GPU *gpu.GPU
	TX  *dvi.Transmitter
}

// Create builds the machine. render and sink may be nil when no user
// interface or serial capture is attached
func Create(spec timing.Spec, render chan<- *ui.Frame, sink dvi.SerialSink) *Machine {
	return &Machine{
		GPU: gpu.Create(spec, render),
		TX:  dvi.NewTransmitter(sink),
	}
}

func (m *Machine) Reset() {
	m.GPU.Reset()
	m.TX.Reset()
}

// Tick advances the pixel domain by one tick, carrying the resulting pixel
// through encoding and serialisation
func (m *Machine) Tick() {
	m.TX.Tick(m.GPU.Tick())
}

// TickScanline advances by one complete scanline
func (m *Machine) TickScanline() {
	for range m.GPU.Gen.Spec().HTotal {
		m.Tick()
	}
}

// TickFrame advances to the start of the next frame
func (m *Machine) TickFrame() {
	frame := m.GPU.Gen.Pos().Frame
	for m.GPU.Gen.Pos().Frame == frame {
		m.Tick()
	}
}

// Write is the register domain entry point. the written value is visible to
// the pixel domain from the next tick boundary
func (m *Machine) Write(idx uint16, data uint8) error {
	return m.GPU.Write(idx, data)
}

// Read is the register domain read entry point
func (m *Machine) Read(idx uint16) (uint8, error) {
	return m.GPU.Read(idx)
}
