package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsInteractiveTerminal reports whether forms and menus can run: stdin and
// stdout must both be terminals and no CI runner may be driving scour.
func IsInteractiveTerminal() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	if term := os.Getenv("TERM"); term == "" || term == "dumb" {
		return false
	}
	return tty(os.Stdin) && tty(os.Stdout)
}

func tty(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Banner writes a title bar to w, clearing the screen first when scour owns
// the terminal.
func Banner(w io.Writer, title, subtitle string) {
	if f, ok := w.(*os.File); ok && tty(f) && IsInteractiveTerminal() {
		fmt.Fprint(w, "\033[2J\033[H")
	}
	fmt.Fprintln(w, Header(title))
	if subtitle != "" {
		fmt.Fprintln(w, Tagline.Render(subtitle))
	}
	if !CurrentPreferences.Dense {
		fmt.Fprintln(w)
	}
}
