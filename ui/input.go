package ui

type Action int

type Input struct {
	Action Action
}

const (
	Nothing Action = iota
	ToggleOverlay
	Pause
	Quit
)
