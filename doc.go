// Package unibi decodes, mutates, and re-encodes compiled terminfo entries.
//
// It understands two on-disk dialects: the standard terminfo binary format
// used by ncurses (both the legacy 16-bit-number and the newer 32-bit-number
// variant), and the NetBSD curses alternate format. Both dialects decode into
// the same in-memory Term, so callers don't need to care which one a given
// file happens to use.
//
// The package also implements the parameterized-string interpreter
// ("terminfo strings" such as cursor-addressing escapes with embedded %-
// directives), following the same stack-machine semantics as the classic
// tparm/tputs family.
//
// unibi does not talk to a terminfo database: locating a compiled entry by
// terminal name, reading it from disk, and applying capability strings to a
// live tty are all external concerns left to callers (see zgo.at/unibi/termsrc
// and the cmd/unibi tool for thin examples of that glue).
package unibi
