package cliutil_test

import (
	"strings"
	"testing"

	"zgo.at/unibi/cliutil"
)

func TestUsageTrim(t *testing.T) {
	got := cliutil.Usage(cliutil.UsageTrim, "\n  hello\n\n")
	if want := "hello\n"; got != want {
		t.Errorf("Usage(trim) = %q, want %q", got, want)
	}
}

func TestUsageHeaders(t *testing.T) {
	orig := cliutil.WantColor
	defer func() { cliutil.WantColor = orig }()
	cliutil.WantColor = true

	text := "unibi: test\n\nUsage:\n\n    unibi dump\n"
	got := cliutil.Usage(cliutil.UsageHeaders, text)

	if !strings.Contains(got, "\x1b[1mUsage:\x1b[0m") {
		t.Errorf("Usage(headers) did not colorize header, got %q", got)
	}
	if strings.Contains(got, "\x1b[1munibi: test\x1b[0m") {
		t.Errorf("Usage(headers) colorized a line that does not end with a colon, got %q", got)
	}
}

func TestUsageFlags(t *testing.T) {
	orig := cliutil.WantColor
	defer func() { cliutil.WantColor = orig }()
	cliutil.WantColor = true

	got := cliutil.Usage(cliutil.UsageFlags, "    -netbsd    do the thing\n")
	if want := "    \x1b[4m-netbsd\x1b[0m    do the thing\n"; got != want {
		t.Errorf("Usage(flags) = %q, want %q", got, want)
	}
}

func TestUsageNoOpts(t *testing.T) {
	text := "unchanged\n"
	if got := cliutil.Usage(0, text); got != text {
		t.Errorf("Usage(0) = %q, want %q", got, text)
	}
}
