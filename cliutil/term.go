//go:build !no_term
// +build !no_term

package cliutil

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// IsTerminal reports if this file descriptor is an interactive terminal.
var IsTerminal = func(fd uintptr) bool { return term.IsTerminal(int(fd)) }

// TerminalSize gets the dimensions of the given terminal.
var TerminalSize = func(fd uintptr) (width, height int, err error) { return term.GetSize(int(fd)) }

// WantColor indicates if the program should output any colors. This is
// automatically set from the output terminal and the NO_COLOR environment
// variable.
var WantColor = func() bool {
	_, noColor := os.LookupEnv("NO_COLOR")
	return os.Getenv("TERM") != "dumb" && term.IsTerminal(int(os.Stdout.Fd())) && !noColor
}()

// RawTerminal sets the terminal to "raw" mode, which is what cmd/unibi's
// play subcommand needs: it writes a capability string straight to the tty
// and must not have the line discipline buffer input or echo control
// characters back.
//
// The returned function restores the terminal to its previous state.
func RawTerminal() (func() error, error) {
	fd := int(os.Stdout.Fd())
	old, err := term.MakeRaw(fd)
	return func() error { return term.Restore(fd, old) }, err
}

const ioctlReadTermios = unix.TCGETS

// IsRawTerminal reports whether stdout is currently in raw (non-canonical)
// mode.
func IsRawTerminal() bool {
	fd := int(os.Stdout.Fd())
	termios, _ := unix.IoctlGetTermios(fd, ioctlReadTermios)
	return termios.Lflag&unix.ICANON == 0
}
