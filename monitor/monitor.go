// Package monitor is the interactive front-end to the display core. it plays
// the role of the CPU side of the reference system: register pokes arrive
// from the terminal rather than from an executing program.
package monitor

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/retrocpu/chardvi/hardware"
	"github.com/retrocpu/chardvi/hardware/timing"
	"github.com/retrocpu/chardvi/logger"
	"github.com/retrocpu/chardvi/ui"
	"github.com/retrocpu/chardvi/version"
)

type input struct {
	s   string
	err error
}

type monitor struct {
	machine *hardware.Machine
	limiter *hardware.Limiter

	endMonitor chan bool
	sig        chan os.Signal
	input      chan input

	// user input forwarded from the gui
	userInput chan ui.Input

	// whether stdin is an interactive terminal. when it isn't, commands are
	// being piped in and the prompt is suppressed
	interactive bool

	overlay bool
	styles  styles
}

// the read loop runs in its own goroutine for the lifetime of the monitor.
// lines arrive on the input channel
func (m *monitor) read() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		m.input <- input{s: scanner.Text()}
	}
	if err := scanner.Err(); err != nil {
		m.input <- input{err: err}
		return
	}
	m.input <- input{err: io.EOF}
}

func (m *monitor) prompt() {
	if m.interactive {
		fmt.Printf("[%s] ", m.machine.GPU.Gen.Pos().ShortString())
	}
}

// run free-runs the machine frame by frame until interrupted by the user
func (m *monitor) run() bool {
	fmt.Println(m.styles.monitor.Render("running. ctrl-c to stop"))
	for {
		m.machine.TickFrame()
		m.limiter.Wait()

		select {
		case <-m.sig:
			return false
		case <-m.endMonitor:
			return true
		case inp := <-m.userInput:
			switch inp.Action {
			case ui.ToggleOverlay:
				m.overlay = !m.overlay
				m.machine.GPU.UseOverlay(m.overlay)
			case ui.Pause:
				return false
			case ui.Quit:
				return true
			}
		default:
		}
	}
}

func Launch(endMonitor chan bool, u *ui.UI, args []string) error {
	flags := flag.NewFlagSet("monitor", flag.ContinueOnError)
	mode := flags.String("mode", "480", "display mode: 480 (640x480@60) or 400 (640x400@70)")
	overlay := flags.Bool("overlay", false, "enable the blanking/sync overlay on rendered frames")
	echo := flags.Bool("log", false, "echo log entries as they happen")

	err := flags.Parse(args)
	if err != nil {
		return fmt.Errorf("monitor: %w", err)
	}

	if *echo {
		logger.SetEcho(os.Stderr)
	}

	var spec timing.Spec
	switch *mode {
	case "480":
		spec = timing.VGA60
	case "400":
		spec = timing.VGA70
	default:
		return fmt.Errorf("monitor: unsupported display mode: %s", *mode)
	}

	m := &monitor{
		machine:     hardware.Create(spec, u.SetImage, nil),
		limiter:     hardware.NewLimiter(spec),
		endMonitor:  endMonitor,
		sig:         make(chan os.Signal, 1),
		input:       make(chan input),
		userInput:   u.UserInput,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
		overlay:     *overlay,
		styles:      newStyles(),
	}
	m.machine.GPU.UseOverlay(m.overlay)

	signal.Notify(m.sig, syscall.SIGINT)
	defer signal.Stop(m.sig)

	logger.Logf("monitor", "%s %s", version.ApplicationName, spec.ID)

	if m.interactive {
		fmt.Println(m.styles.monitor.Render(version.Title()))
	}

	// render the first frame so the gui has something to show
	m.machine.TickFrame()

	go m.read()

	for {
		m.prompt()

		select {
		case <-m.endMonitor:
			return nil

		case inp := <-m.userInput:
			switch inp.Action {
			case ui.ToggleOverlay:
				m.overlay = !m.overlay
				m.machine.GPU.UseOverlay(m.overlay)
				m.machine.TickFrame()
			case ui.Quit:
				return nil
			}

		case <-m.sig:
			if m.interactive {
				fmt.Println("")
				continue
			}
			return nil

		case inp := <-m.input:
			if errors.Is(inp.err, io.EOF) {
				// a piped script has finished. free-run so that whatever the
				// script put on screen stays visible
				if !m.interactive {
					if m.run() {
						return nil
					}
					continue
				}
				return nil
			}
			if inp.err != nil {
				return fmt.Errorf("monitor: %w", inp.err)
			}
			if m.commands(strings.Fields(inp.s)) {
				return nil
			}
		}
	}
}
