// Package cliutil carries the ambient CLI tooling (argument/flag parsing,
// exit-code handling, colorized output, raw-terminal control) that
// cmd/unibi is built on. None of it is terminfo-specific; it is the same
// general-purpose CLI layer used across zgo.at's command-line tools,
// trimmed to the parts cmd/unibi actually exercises.
package cliutil

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
)

var (
	Exit   func(int) = os.Exit
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// Program gets the program name from argv.
func Program() string {
	if len(os.Args) == 0 {
		return ""
	}
	return filepath.Base(os.Args[0])
}

// Errorf prints an error message to stderr prepended with the program name
// and with a newline appended.
func Errorf(s interface{}, args ...interface{}) {
	prog := Program()
	if prog != "" {
		prog += ": "
	}

	switch ss := s.(type) {
	case string:
		fmt.Fprintf(Stderr, prog+ss+"\n", args...)
	case []byte:
		fmt.Fprintf(Stderr, prog+string(ss)+"\n", args...)
	case error:
		if len(args) > 0 {
			fmt.Fprintf(Stderr, "%s%s %v\n", prog, ss.Error(), args)
		} else {
			fmt.Fprintln(Stderr, prog+ss.Error())
		}
	default:
		if len(args) > 0 {
			fmt.Fprintf(Stderr, prog+"%v %v\n", ss, args)
		} else {
			fmt.Fprintf(Stderr, prog+"%v\n", ss)
		}
	}
}

// ExitCode is the exit code to use for Fatalf() and F().
var ExitCode = 1

// Fatalf is like Errorf, but will exit with ExitCode.
func Fatalf(s interface{}, args ...interface{}) {
	Errorf(s, args...)
	Exit(ExitCode)
}

// F prints err.Error() with Errorf and exits, unless err is nil.
func F(err error) {
	if err != nil {
		Fatalf(err)
	}
}

// InputOrFile returns a reader connected to stdin if path is "" or "-", or
// opens path otherwise. Compiled terminfo entries are binary, so this reads
// as raw bytes rather than splitting on lines the way a text-oriented CLI
// input helper would.
func InputOrFile(path string, quiet bool) (io.ReadCloser, error) {
	if path != "" && path != "-" {
		fp, err := os.Open(path)
		if err != nil {
			err = fmt.Errorf("cliutil.InputOrFile: %w", err)
		}
		return fp, err
	}

	if !quiet && IsTerminal(os.Stdin.Fd()) {
		fmt.Fprintf(Stderr, "%s: reading from stdin...\r", Program())
	}
	return ioutil.NopCloser(Stdin), nil
}
