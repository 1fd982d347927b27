package cliutil_test

import (
	"testing"

	"zgo.at/unibi/cliutil"
)

func TestColorize(t *testing.T) {
	orig := cliutil.WantColor
	defer func() { cliutil.WantColor = orig }()

	cliutil.WantColor = true
	if got, want := cliutil.Colorize("hi", cliutil.Bold), "\x1b[1mhi\x1b[0m"; got != want {
		t.Errorf("Colorize(bold) = %q, want %q", got, want)
	}
	if got, want := cliutil.Colorize("hi", cliutil.Underline), "\x1b[4mhi\x1b[0m"; got != want {
		t.Errorf("Colorize(underline) = %q, want %q", got, want)
	}
	if got, want := cliutil.Colorize("hi", cliutil.Reset), "hi"; got != want {
		t.Errorf("Colorize(reset) = %q, want %q", got, want)
	}

	cliutil.WantColor = false
	if got, want := cliutil.Colorize("hi", cliutil.Bold), "hi"; got != want {
		t.Errorf("Colorize with WantColor=false = %q, want %q", got, want)
	}
}
