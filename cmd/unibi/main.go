// Command unibi inspects and edits compiled terminfo entries.
package main

import (
	"fmt"
	"io"
	"os"

	"zgo.at/unibi"
	"zgo.at/unibi/cliutil"
	"zgo.at/unibi/termsrc"
)

const usage = `unibi: inspect and edit compiled terminfo entries

Usage:

    unibi dump [-netbsd] [file]
        Print every set capability in a compiled terminfo entry, read from
        file, from stdin if file is "-", or looked up by $TERM if file is
        omitted.

    unibi get [-netbsd] <capability-index> <file>
        Print the value of one standard string/numeric/bool capability, by
        its ordinal index.

    unibi run <format> [param...]
        Run a parameterized-string format directive against the given
        parameters (as plain integers) and print the result.

    unibi play [-netbsd] <str-index> <file> [param...]
        Interpret string capability <str-index> from file and write the
        resulting escape sequence straight to the terminal in raw mode, so
        control characters reach the tty unmangled.

    unibi version [-verbose]
        Print the build version.

Flags:
    -netbsd    Select the NetBSD curses binary format instead of the
               standard ncurses format. This tool has no NetBSD capability
               remap table, so with this flag dump, get and play report an
               error instead of decoding.
    -verbose   For "version": also print detailed build information.
`

func main() {
	cliutil.Exit = os.Exit
	f := cliutil.NewFlags(os.Args)
	cmd, err := f.ShiftCommand("dump", "get", "run", "play", "version")
	if err != nil {
		fmt.Fprint(cliutil.Stderr, cliutil.Usage(cliutil.UsageHeaders|cliutil.UsageFlags, usage))
		cliutil.F(err)
	}

	switch cmd {
	case "dump":
		cmdDump(&f)
	case "get":
		cmdGet(&f)
	case "run":
		cmdRun(&f)
	case "play":
		cmdPlay(&f)
	case "version":
		verbose := f.Bool(false, "verbose", "v")
		cliutil.F(f.Parse())
		cliutil.PrintVersion(verbose.Bool())
	}
}

func cmdDump(f *cliutil.Flags) {
	netbsd := f.Bool(false, "netbsd")
	cliutil.F(f.Parse())

	path := f.Shift()
	buf, err := readEntry(path)
	cliutil.F(err)

	t, err := decode(buf, netbsd.Bool())
	cliutil.F(err)

	fmt.Fprintf(cliutil.Stdout, "%s %s\n", label("name:"), t.Name)
	if len(t.Aliases) > 0 {
		fmt.Fprintf(cliutil.Stdout, "%s %v\n", label("aliases:"), t.Aliases)
	}
	for i := 0; i < len(t.Bools); i++ {
		if t.Bool(i) {
			fmt.Fprintf(cliutil.Stdout, "bool[%d] = true\n", i)
		}
	}
	for i := 0; i < len(t.Nums); i++ {
		if v := t.Num(i); v != -1 {
			fmt.Fprintf(cliutil.Stdout, "num[%d] = %d\n", i, v)
		}
	}
	for i := 0; i < len(t.Strs); i++ {
		if s := t.Str(i); s != nil {
			fmt.Fprintf(cliutil.Stdout, "str[%d] = %q\n", i, *s)
		}
	}
	for i := range t.ExtBools {
		fmt.Fprintf(cliutil.Stdout, "ext bool %s = %v\n", t.ExtBoolName(i), t.ExtBool(i))
	}
	for i := range t.ExtNums {
		fmt.Fprintf(cliutil.Stdout, "ext num %s = %d\n", t.ExtNumName(i), t.ExtNum(i))
	}
	for i := range t.ExtStrs {
		if s := t.ExtStr(i); s != nil {
			fmt.Fprintf(cliutil.Stdout, "ext str %s = %q\n", t.ExtStrName(i), *s)
		}
	}
}

func cmdGet(f *cliutil.Flags) {
	netbsd := f.Bool(false, "netbsd")
	cliutil.F(f.Parse())

	idxStr := f.Shift()
	path := f.Shift()
	if idxStr == "" || path == "" {
		cliutil.F(fmt.Errorf("usage: unibi get <index> <file>"))
	}
	var idx int
	if _, err := fmt.Sscanf(idxStr, "%d", &idx); err != nil {
		cliutil.F(fmt.Errorf("bad index %q: %w", idxStr, err))
	}

	buf, err := readEntry(path)
	cliutil.F(err)
	t, err := decode(buf, netbsd.Bool())
	cliutil.F(err)

	if s := t.Str(idx); s != nil {
		fmt.Fprintln(cliutil.Stdout, *s)
		return
	}
	if v := t.Num(idx); v != -1 {
		fmt.Fprintln(cliutil.Stdout, v)
		return
	}
	fmt.Fprintln(cliutil.Stdout, t.Bool(idx))
}

func cmdRun(f *cliutil.Flags) {
	cliutil.F(f.Parse())

	format := f.Shift()
	if format == "" {
		cliutil.F(fmt.Errorf("usage: unibi run <format> [param...]"))
	}

	var params [9]unibi.Variant
	for i := 0; i < 9 && len(f.Args) > 0; i++ {
		var n int32
		if _, err := fmt.Sscanf(f.Shift(), "%d", &n); err != nil {
			cliutil.F(fmt.Errorf("bad parameter: %w", err))
		}
		params[i] = unibi.NumVar(n)
	}

	fmt.Fprintln(cliutil.Stdout, unibi.Run(format, params))
}

func cmdPlay(f *cliutil.Flags) {
	netbsd := f.Bool(false, "netbsd")
	cliutil.F(f.Parse())

	idxStr := f.Shift()
	path := f.Shift()
	if idxStr == "" || path == "" {
		cliutil.F(fmt.Errorf("usage: unibi play <str-index> <file> [param...]"))
	}
	var idx int
	if _, err := fmt.Sscanf(idxStr, "%d", &idx); err != nil {
		cliutil.F(fmt.Errorf("bad index %q: %w", idxStr, err))
	}

	buf, err := readEntry(path)
	cliutil.F(err)
	t, err := decode(buf, netbsd.Bool())
	cliutil.F(err)

	s := t.Str(idx)
	if s == nil {
		cliutil.F(fmt.Errorf("str[%d] is absent in %s", idx, t.Name))
	}

	var params [9]unibi.Variant
	for i := 0; i < 9 && len(f.Args) > 0; i++ {
		var n int32
		if _, err := fmt.Sscanf(f.Shift(), "%d", &n); err != nil {
			cliutil.F(fmt.Errorf("bad parameter: %w", err))
		}
		params[i] = unibi.NumVar(n)
	}
	out := unibi.Run(*s, params)

	restore, err := cliutil.RawTerminal()
	cliutil.F(err)
	defer restore()

	fmt.Fprint(cliutil.Stdout, out)
}

// label bolds s when stdout is an interactive terminal that wants color,
// and returns it unchanged otherwise (e.g. when piped to a file).
func label(s string) string {
	if !cliutil.WantColor {
		return s
	}
	return cliutil.Colorize(s, cliutil.Bold)
}

// readEntry reads a compiled terminfo entry from path (stdin if path is
// "-"), or, if path is "", looks it up by $TERM via termsrc.
func readEntry(path string) ([]byte, error) {
	if path != "" {
		fp, err := cliutil.InputOrFile(path, false)
		if err != nil {
			return nil, err
		}
		defer fp.Close()
		return io.ReadAll(fp)
	}

	term := os.Getenv("TERM")
	if term == "" {
		return nil, fmt.Errorf("no file given and $TERM is not set")
	}
	return termsrc.Find(term)
}

func decode(buf []byte, netbsd bool) (*unibi.Term, error) {
	if netbsd {
		return nil, fmt.Errorf("unibi: NetBSD decode needs a capability remap table; use the unibi package directly")
	}
	t, _, err := unibi.DecodeStandard(buf)
	return t, err
}
