// Package logger is the central log for the application. packages log through
// the package level functions; the monitor decides when and how entries are
// shown.
package logger

import (
	"fmt"
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log
var central *logger

// maximum number of entries in the central logger
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger
func Logf(tag, detail string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(detail, args...))
}

// Clear all entries from the central logger
func Clear() {
	central.clear()
}

// Write contents of central logger to io.Writer. returns false if log is
// empty and nothing was written
func Write(output io.Writer) bool {
	return central.write(output)
}

// Tail writes the last N entries to io.Writer
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho to echo new entries to io.Writer as they arrive. a nil writer
// disables the echo
func SetEcho(output io.Writer) {
	central.echo = output
}
