package menu

import (
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
)

// Terminal clears a terminal by writing erase-screen and cursor-home
// sequences. Clearing is skipped when the output is not a terminal.
type Terminal struct {
	w       io.Writer
	enabled bool
}

// NewTerminal returns a Terminal for f, enabled only if f is a TTY.
func NewTerminal(f *os.File) *Terminal {
	fd := f.Fd()
	return &Terminal{
		w:       f,
		enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// Clear erases the display and moves the cursor to the top-left corner.
func (t *Terminal) Clear() {
	if !t.enabled {
		return
	}
	_, _ = io.WriteString(t.w, ansi.EraseEntireScreen+ansi.CursorHomePosition)
}
