// Package ui provides consistent styled output for the create-component CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Writer provides styled output methods that respect color settings.
type Writer struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
}

// NewWriter creates a Writer over out and errOut. Callers pass
// color.NoColor along with their own setting to honour NO_COLOR and
// non-terminal output.
func NewWriter(out, errOut io.Writer, noColor bool) *Writer {
	return &Writer{
		out:     out,
		errOut:  errOut,
		noColor: noColor,
	}
}

// Success prints a success message with a green checkmark prefix.
func (w *Writer) Success(msg string) {
	writeLine(w.out, w.styled(color.FgGreen, "✓"), w.styled(color.FgGreen, msg))
}

// Warning prints a warning message to stderr with a yellow prefix.
func (w *Writer) Warning(msg string) {
	writeLine(w.errOut, w.styled(color.FgYellow, "warning:"), msg)
}

// Error prints an error message to stderr with a red prefix.
func (w *Writer) Error(msg string) {
	writeLine(w.errOut, w.styled(color.FgRed, "error:"), msg)
}

// Info prints an informational message with a cyan prefix.
func (w *Writer) Info(msg string) {
	writeLine(w.out, w.styled(color.FgCyan, "info:"), msg)
}

// Println prints an unprefixed line to stdout. Call with no arguments for a blank line.
func (w *Writer) Println(parts ...string) {
	if _, err := fmt.Fprintln(w.out, strings.Join(parts, " ")); err != nil {
		return
	}
}

// Eprintln prints an unprefixed line to stderr.
func (w *Writer) Eprintln(parts ...string) {
	if _, err := fmt.Fprintln(w.errOut, strings.Join(parts, " ")); err != nil {
		return
	}
}

// Command returns text styled as a command name.
func (w *Writer) Command(msg string) string {
	return w.styled(color.FgCyan, msg)
}

// Argument returns text styled as a command argument.
func (w *Writer) Argument(msg string) string {
	return w.styled(color.FgGreen, msg)
}

// Successf prints a formatted success message.
func (w *Writer) Successf(format string, args ...any) {
	w.Success(fmt.Sprintf(format, args...))
}

// Warningf prints a formatted warning message.
func (w *Writer) Warningf(format string, args ...any) {
	w.Warning(fmt.Sprintf(format, args...))
}

// Infof prints a formatted informational message.
func (w *Writer) Infof(format string, args ...any) {
	w.Info(fmt.Sprintf(format, args...))
}

func (w *Writer) styled(attr color.Attribute, text string) string {
	c := color.New(attr)
	if w.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}

	return c.Sprint(text)
}

func writeLine(out io.Writer, prefix, msg string) {
	if _, err := fmt.Fprintf(out, "%s %s\n", prefix, msg); err != nil {
		// Best-effort output; if stderr fails there's nothing useful to do.
		return
	}
}
