// Package terminal answers the questions a text host asks about the
// terminal it draws into: how big it is, whether it is one at all, and
// which color profile its canvas should render with.
package terminal

import (
	"github.com/mattn/go-isatty"
)

// IsTTY reports whether fd refers to a terminal, including Cygwin and
// MSYS pseudo terminals.
func IsTTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
