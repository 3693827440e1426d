package main

import (
	"fmt"
	"os"

	"github.com/retrocpu/chardvi/gui"
	"github.com/retrocpu/chardvi/monitor"
	"github.com/retrocpu/chardvi/ui"
)

func main() {
	var endGui chan bool
	var endMonitor chan bool
	var resultGui chan error
	var resultMonitor chan error

	// buffered channels. this means we don't have to worry about the gui
	// closing before the monitor and vice versa
	endGui = make(chan bool, 1)
	endMonitor = make(chan bool, 1)

	// similarly, the result channels are buffered because we don't know the
	// order in which the gui and monitor will end
	resultGui = make(chan error, 1)
	resultMonitor = make(chan error, 1)

	u := ui.NewUI()

	go func() {
		resultGui <- gui.Launch(endGui, u)
		endMonitor <- true
	}()

	go func() {
		resultMonitor <- monitor.Launch(endMonitor, u, os.Args[1:])
		endGui <- true
	}()

	if err := <-resultGui; err != nil {
		fmt.Printf("*** %s\n", err)
	}
	if err := <-resultMonitor; err != nil {
		fmt.Printf("*** %s\n", err)
	}
}
