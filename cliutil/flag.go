package cliutil

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
)

// Sentinel errors for Flags.Parse().
type (
	// ErrFlagUnknown is used when the flag parsing encounters unknown flags.
	ErrFlagUnknown struct{ flag string }

	// ErrFlagDouble is used when a flag is given more than once.
	ErrFlagDouble struct{ flag string }
)

func (e ErrFlagUnknown) Error() string { return fmt.Sprintf("unknown flag: %q", e.flag) }
func (e ErrFlagDouble) Error() string  { return fmt.Sprintf("flag given more than once: %q", e.flag) }

// Flags is a set of parsed command-line flags and positional arguments.
//
// unibi's subcommands only ever need boolean and string flags plus a handful
// of positional arguments, so this carries a fraction of the general-purpose
// parser cmd/unibi is built on: no flag grouping ("-ab"), no repeated-flag
// or environment-variable overrides, no numeric/list flag kinds. Those are
// real features of the parser this was adapted from; they just have no
// caller here.
//
// The rules for parsing are:
//
//   - Flags start with one or more '-'s; '-a' and '--a' are identical.
//   - Flags are separated from their value by one space or '='.
//   - Anything that doesn't start with a '-', or follows '--', is a
//     positional argument; these can be freely interspersed with flags.
type Flags struct {
	Program string   // Program name.
	Args    []string // List of arguments; reduced to positionals after Parse().

	flags            []flagValue
	cpuProf, memProf flagString
}

type flagValue struct {
	names []string
	value any
}

// NewFlags creates a new Flags from os.Args.
func NewFlags(args []string) Flags {
	f := Flags{}
	if len(args) > 0 {
		f.Program = filepath.Base(args[0])
	}
	if len(args) > 1 {
		f.Args = args[1:]
	}
	return f
}

// Shift a value from the argument list.
func (f *Flags) Shift() string {
	if len(f.Args) == 0 {
		return ""
	}
	a := f.Args[0]
	f.Args = f.Args[1:]
	return a
}

// Sentinel return values for ShiftCommand().
type (
	ErrCommandNoneGiven struct{}
	ErrCommandUnknown   string
	ErrCommandAmbiguous struct {
		Cmd  string
		Opts []string
	}
)

func (e ErrCommandNoneGiven) Error() string { return "no command given" }
func (e ErrCommandUnknown) Error() string   { return fmt.Sprintf("unknown command: %q", string(e)) }
func (e ErrCommandAmbiguous) Error() string {
	return fmt.Sprintf(`ambigious command: %q; matches: "%s"`, e.Cmd, strings.Join(e.Opts, `", "`))
}

// ShiftCommand shifts the first non-flag value from the argument list.
//
// This works both before or after f.Parse(); this is useful if you want
// different flags for different subcommands, and both of these will work:
//
//	$ unibi -netbsd dump file
//	$ unibi dump -netbsd file
//
// If cmds is given then it matches commands by unambiguous abbreviation: if
// you have "dump" and "get" then "d" unambiguously means "dump", but with
// "get" and "get2" an abbreviation of "g" would be ambiguous.
//
// Returns [ErrCommandNoneGiven] if there is no command, and
// [ErrCommandUnknown] if the command doesn't match anything in cmds.
func (f *Flags) ShiftCommand(cmds ...string) (string, error) {
	var (
		pushback []string
		cmd      string
	)
	for {
		cmd = f.Shift()
		if cmd == "" {
			return "", ErrCommandNoneGiven{}
		}
		if cmd[0] == '-' || strings.ContainsRune(cmd, '=') {
			pushback = append(pushback, cmd)
			continue
		}
		break
	}
	f.Args = append(pushback, f.Args...)
	cmd = strings.ToLower(cmd)

	if len(cmds) == 0 {
		return cmd, nil
	}

	var found []string
	for _, c := range cmds {
		if c == cmd {
			return cmd, nil
		}
		if strings.HasPrefix(c, cmd) {
			found = append(found, c)
		}
	}

	switch len(found) {
	case 0:
		return "", ErrCommandUnknown(cmd)
	case 1:
		return found[0], nil
	default:
		return "", ErrCommandAmbiguous{Cmd: cmd, Opts: found}
	}
}

// Parse the set of flags in f.Args, leaving the remaining positional
// arguments in f.Args.
func (f *Flags) Parse() error {
	// Always include CPU/memory profile flags; they don't do anything until
	// Flags.Profile() is called.
	f.cpuProf = f.String("", "cpuprofile", "cpu-profile")
	f.memProf = f.String("", "memprofile", "mem-profile")

	var p []string
	skip := false
	for i, a := range f.Args {
		if skip {
			skip = false
			continue
		}
		if a == "" || a == "-" || a[0] != '-' {
			p = append(p, a)
			continue
		}
		if a == "--" {
			p = append(p, f.Args[i+1:]...)
			break
		}

		flag, ok := f.match(a)
		if !ok {
			return ErrFlagUnknown{a}
		}

		next := func() (string, bool) {
			if j := strings.IndexByte(a, '='); j > -1 {
				return a[j+1:], true
			}
			if i >= len(f.Args)-1 {
				return "", false
			}
			v := f.Args[i+1]
			if len(v) > 1 && v[0] == '-' {
				return "", false
			}
			skip = true
			return v, true
		}

		switch v := flag.value.(type) {
		case flagBool:
			if *v.s {
				// Repeating a bool flag is harmless; ignore it rather
				// than erroring like a value flag would.
				continue
			}
			*v.s, *v.v = true, true
		case flagString:
			if *v.s {
				return ErrFlagDouble{a}
			}
			val, hasValue := next()
			*v.s = true
			if hasValue {
				*v.v = val
			}
		}
	}
	f.Args = p
	return nil
}

func (f *Flags) match(arg string) (flagValue, bool) {
	arg = strings.ToLower(strings.TrimLeft(arg, "-"))
	if j := strings.IndexByte(arg, '='); j > -1 {
		arg = arg[:j]
	}
	for _, flag := range f.flags {
		for _, name := range flag.names {
			if name == arg {
				return flag, true
			}
		}
	}
	return flagValue{}, false
}

type (
	flagBool struct {
		v *bool
		s *bool
	}
	flagString struct {
		v *string
		s *bool
	}
)

func (f flagBool) Bool() bool       { return *f.v }
func (f flagString) String() string { return *f.v }

func (f flagBool) Set() bool   { return *f.s }
func (f flagString) Set() bool { return *f.s }

func (f *Flags) append(v any, n string, a ...string) {
	for i := range a {
		a[i] = strings.ToLower(strings.TrimLeft(a[i], "-"))
	}
	f.flags = append(f.flags, flagValue{
		value: v,
		names: append([]string{strings.ToLower(strings.TrimLeft(n, "-"))}, a...),
	})
}

// Bool registers a boolean flag; it's true if given, def otherwise.
func (f *Flags) Bool(def bool, name string, aliases ...string) flagBool {
	v := flagBool{v: &def, s: new(bool)}
	f.append(v, name, aliases...)
	return v
}

// String registers a string flag with the given default.
func (f *Flags) String(def, name string, aliases ...string) flagString {
	v := flagString{v: &def, s: new(bool)}
	f.append(v, name, aliases...)
	return v
}

// Profile enables CPU and memory profiling via the -cpuprofile and
// -memprofile flags.
//
//	f := cliutil.NewFlags(os.Args)
//	cliutil.F(f.Parse())
//	defer f.Profile()()
func (f *Flags) Profile() func() {
	var stop []func()
	go func() { // Make sure it gets written on ^C.
		s := make(chan os.Signal, 1)
		signal.Notify(s, exitSignals...)
		<-s
		for _, f := range stop {
			f()
		}
		os.Exit(0)
	}()

	if f.cpuProf.Set() {
		fp, err := os.Create(f.cpuProf.String())
		F(err)

		err = pprof.StartCPUProfile(fp)
		F(err)
		stop = append(stop, func() {
			defer fp.Close()
			pprof.StopCPUProfile()
		})
	}
	if f.memProf.Set() {
		fp, err := os.Create(f.memProf.String())
		F(err)
		stop = append(stop, func() {
			defer fp.Close()
			F(pprof.WriteHeapProfile(fp))
		})
	}
	return func() {
		for _, f := range stop {
			f()
		}
	}
}
