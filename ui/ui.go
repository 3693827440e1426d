package ui

import (
	"image"
)

// Frame is a completed display frame sent from the hardware to the user
// interface
type Frame struct {
	Image *image.RGBA

	// identifies the position at which the frame was completed
	ID string
}

type UI struct {
	SetImage  chan *Frame
	UserInput chan Input
}

func NewUI() *UI {
	return &UI{
		SetImage:  make(chan *Frame, 1),
		UserInput: make(chan Input, 1),
	}
}
