package gui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
)

const configDir = "chardvi"

// windowPath returns the file used to persist window geometry between runs
func windowPath() (string, error) {
	pth, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(pth, configDir, "window"), nil
}

func onWindowOpen() error {
	pth, err := windowPath()
	if err != nil {
		return err
	}

	f, err := os.Open(pth)
	if err != nil {
		return err
	}
	defer f.Close()

	var x, y, w, h int

	n, err := fmt.Fscanf(f, "%d %d %d %d", &x, &y, &w, &h)
	if err != nil {
		return err
	}
	if n != 4 {
		return fmt.Errorf("%s is malformed", pth)
	}

	ebiten.SetWindowPosition(x, y)
	ebiten.SetWindowSize(w, h)

	return nil
}

func onWindowClose() error {
	pth, err := windowPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(pth), 0700); err != nil {
		return err
	}

	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	defer f.Close()

	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	fmt.Fprintf(f, "%d %d %d %d", x, y, w, h)

	return nil
}
