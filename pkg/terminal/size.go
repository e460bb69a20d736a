package terminal

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// Size is a terminal area in character cells.
type Size struct {
	Cols int
	Rows int
}

// Reserve returns s with n rows taken off the bottom, keeping at least
// one row.
func (s Size) Reserve(n int) Size {
	return Size{Cols: s.Cols, Rows: max(s.Rows-n, 1)}
}

// GetSize returns the size of the terminal on stdout, or on stderr when
// stdout is redirected. Without a terminal it reads COLUMNS and LINES and
// finally falls back to 80x24.
func GetSize() Size {
	for _, fd := range []int{int(os.Stdout.Fd()), int(os.Stderr.Fd())} {
		if s, ok := winsize(fd); ok {
			return s
		}
	}
	return sizeFromEnv()
}

// winsize asks the tty behind fd for its size via TIOCGWINSZ.
func winsize(fd int) (Size, bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Size{}, false
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, true
}

func sizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the named variable, or fallback.
func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
