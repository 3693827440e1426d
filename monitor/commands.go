package monitor

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retrocpu/chardvi/hardware/chargrid"
	"github.com/retrocpu/chardvi/hardware/dvi"
	"github.com/retrocpu/chardvi/logger"
)

// returns true if monitor is to quit
func (m *monitor) commands(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "HELP":
		fmt.Println(m.styles.monitor.Render(
			"TYPE POKE PEEK CURSOR MODE FG BG CLEAR STATUS GRID SYMBOLS FRAME SCANLINE RUN RESET LOG [LAST|CLEAR] QUIT",
		))

	case "TYPE":
		// everything after the command word is written to the screen through
		// the auto-advancing data register
		s := strings.Join(cmd[1:], " ")
		for _, c := range []byte(s) {
			m.machine.GPU.WriteChar(c)
		}
		m.machine.TickFrame()

	case "POKE":
		if len(cmd) != 3 {
			fmt.Println(m.styles.err.Render("POKE requires a register index and a value"))
			break // switch
		}
		idx, err := strconv.ParseUint(cmd[1], 0, 16)
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("poke: %s", err.Error())))
			break // switch
		}
		val, err := strconv.ParseUint(cmd[2], 0, 8)
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("poke: %s", err.Error())))
			break // switch
		}
		if err := m.machine.Write(uint16(idx), uint8(val)); err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}
		m.machine.TickFrame()

	case "PEEK":
		if len(cmd) != 2 {
			fmt.Println(m.styles.err.Render("PEEK requires a register index"))
			break // switch
		}
		idx, err := strconv.ParseUint(cmd[1], 0, 16)
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("peek: %s", err.Error())))
			break // switch
		}
		val, err := m.machine.Read(uint16(idx))
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}
		fmt.Println(m.styles.mem.Render(fmt.Sprintf("%#04x = %#02x", idx, val)))

	case "CURSOR":
		if len(cmd) != 3 {
			fmt.Println(m.styles.err.Render("CURSOR requires a row and a column"))
			break // switch
		}
		row, err := strconv.Atoi(cmd[1])
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("cursor: %s", err.Error())))
			break // switch
		}
		col, err := strconv.Atoi(cmd[2])
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("cursor: %s", err.Error())))
			break // switch
		}
		m.machine.GPU.SetCursor(row, col)

	case "MODE":
		if len(cmd) != 2 {
			fmt.Println(m.styles.err.Render("MODE requires a column count (40 or 80)"))
			break // switch
		}
		switch cmd[1] {
		case "40":
			m.machine.GPU.SetMode(chargrid.Cols40)
			m.machine.TickFrame()
		case "80":
			m.machine.GPU.SetMode(chargrid.Cols80)
			m.machine.TickFrame()
		default:
			fmt.Println(m.styles.err.Render(fmt.Sprintf("unsupported column count: %s", cmd[1])))
		}

	case "FG", "BG":
		if len(cmd) != 2 {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("%s requires a 3-bit colour value", strings.ToUpper(cmd[0]))))
			break // switch
		}
		val, err := strconv.ParseUint(cmd[1], 0, 8)
		if err != nil {
			fmt.Println(m.styles.err.Render(fmt.Sprintf("colour: %s", err.Error())))
			break // switch
		}
		if strings.ToUpper(cmd[0]) == "FG" {
			m.machine.GPU.SetForeground(uint8(val))
		} else {
			m.machine.GPU.SetBackground(uint8(val))
		}
		m.machine.TickFrame()

	case "CLEAR":
		m.machine.GPU.ClearScreen()
		m.machine.TickFrame()

	case "STATUS":
		ready, vsync := m.machine.GPU.Status()
		fg, bg := m.machine.GPU.Colors()
		row, col := m.machine.GPU.Cursor()
		fmt.Println(m.styles.status.Render(
			fmt.Sprintf("ready=%v vsync=%v cursor=(%d,%d) fg=%#03b bg=%#03b", ready, vsync, row, col, fg, bg),
		))

	case "GRID":
		fmt.Println(m.styles.mem.Render(m.machine.GPU.Grid.String()))

	case "SYMBOLS":
		// the TMDS symbols and running disparities from the most recent pixel
		// tick
		syms := m.machine.TX.Symbols()
		fmt.Println(m.styles.video.Render(fmt.Sprintf(
			"blue=%010b (disp %+d) green=%010b (disp %+d) red=%010b (disp %+d)",
			syms[dvi.ChannelBlue], m.machine.TX.Disparity(dvi.ChannelBlue),
			syms[dvi.ChannelGreen], m.machine.TX.Disparity(dvi.ChannelGreen),
			syms[dvi.ChannelRed], m.machine.TX.Disparity(dvi.ChannelRed),
		)))

	case "FRAME":
		n := 1
		if len(cmd) == 2 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(fmt.Sprintf("frame: %s", err.Error())))
				break // switch
			}
		}
		for range n {
			m.machine.TickFrame()
		}
		fmt.Println(m.styles.video.Render(m.machine.GPU.Gen.Pos().String()))

	case "SCANLINE":
		m.machine.TickScanline()
		fmt.Println(m.styles.video.Render(m.machine.GPU.Gen.Pos().String()))

	case "R", "RUN":
		return m.run()

	case "RESET":
		m.machine.Reset()
		m.machine.GPU.UseOverlay(m.overlay)
		m.machine.TickFrame()

	case "GPU":
		fmt.Println(m.styles.video.Render(m.machine.GPU.String()))

	case "LOG":
		if len(cmd) == 2 {
			switch strings.ToUpper(cmd[1]) {
			case "LAST":
				logger.Tail(os.Stdout, 1)
			case "CLEAR":
				logger.Clear()
			default:
				fmt.Println(m.styles.err.Render(fmt.Sprintf("unrecognised LOG argument: %s", cmd[1])))
			}
			break // switch
		}
		m.printLog()

	case "Q", "QUIT":
		return true

	default:
		fmt.Println(m.styles.err.Render(fmt.Sprintf("unrecognised command: %s", cmd[0])))
	}

	return false
}

func (m *monitor) printLog() {
	if !logger.Write(os.Stdout) {
		fmt.Println(m.styles.monitor.Render("log is empty"))
	}
}
