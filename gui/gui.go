// Package gui is the ebiten viewer for frames produced by the display core.
package gui

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/retrocpu/chardvi/logger"
	"github.com/retrocpu/chardvi/ui"
	"github.com/retrocpu/chardvi/version"
)

type gui struct {
	started bool

	endGui chan bool
	frames chan *ui.Frame
	inp    chan ui.Input

	image  *ebiten.Image
	width  int
	height int

	inputHandler *input.Handler
	inputSystem  input.System
}

const (
	ActionOverlay = input.Action(ui.ToggleOverlay)
	ActionPause   = input.Action(ui.Pause)
	ActionQuit    = input.Action(ui.Quit)
)

func (g *gui) initialise() {
	keymap := input.Keymap{
		ActionOverlay: {input.KeyO},
		ActionPause:   {input.KeyP, input.KeySpace},
		ActionQuit:    {input.KeyEscape, input.KeyQ},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.started = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var inp ui.Input

	if g.inputHandler.ActionIsJustPressed(ActionOverlay) {
		inp = ui.Input{Action: ui.ToggleOverlay}
	}
	if g.inputHandler.ActionIsJustPressed(ActionPause) {
		inp = ui.Input{Action: ui.Pause}
	}
	if g.inputHandler.ActionIsJustPressed(ActionQuit) {
		inp = ui.Input{Action: ui.Quit}
	}

	if inp.Action != ui.Nothing {
		select {
		case g.inp <- inp:
		default:
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	g.input()

	select {
	case <-g.endGui:
		return ebiten.Termination
	case frame := <-g.frames:
		dim := frame.Image.Bounds()
		if g.image == nil || g.width != dim.Dx() || g.height != dim.Dy() {
			g.width = dim.Dx()
			g.height = dim.Dy()
			g.image = ebiten.NewImage(g.width, g.height)
		}
		g.image.WritePixels(frame.Image.Pix)
	default:
	}
	return nil
}

func (g *gui) Draw(screen *ebiten.Image) {
	if g.image != nil {
		screen.DrawImage(g.image, nil)
	}
}

func (g *gui) Layout(width, height int) (int, int) {
	if g.image != nil {
		return g.width, g.height
	}
	return width, height
}

func Launch(endGui chan bool, u *ui.UI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	// restore window geometry from the previous run. a missing file is the
	// normal first-run case and not worth logging
	if err := onWindowOpen(); err != nil && !os.IsNotExist(err) {
		logger.Logf("gui", "window geometry not restored: %v", err)
	}

	g := &gui{
		endGui: endGui,
		frames: u.SetImage,
		inp:    u.UserInput,
	}

	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	err := ebiten.RunGame(g)

	if werr := onWindowClose(); werr != nil {
		logger.Logf("gui", "window geometry not saved: %v", werr)
	}

	return err
}
