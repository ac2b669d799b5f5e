// Package ui renders validation reports for the terminal.
package ui

import (
	"io"

	"github.com/mattn/go-isatty"
)

// fdWriter is implemented by *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// ColorEnabled reports whether w is a terminal. Writers that are not files
// never get color.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
