// Package terminal - CLI output writer
// Colored terminal output for the estimate CLI.
package terminal

import (
	"fmt"
	"io"
	"os"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the CLI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a writer; nil out defaults to stdout
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Println writes a formatted line
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// Row prints a labeled value line
func (w *Writer) Row(label, value string) {
	w.Println("  %-34s %s", label, w.color(Bold, value))
}

// Note prints a dimmed annotation line
func (w *Writer) Note(format string, args ...interface{}) {
	w.Println(w.color(Dim, "  "+fmt.Sprintf(format, args...)))
}

// Success prints a success line
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println(w.color(Green, "✓ ") + fmt.Sprintf(format, args...))
}
