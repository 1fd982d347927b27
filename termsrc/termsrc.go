// Package termsrc locates a compiled terminfo entry on disk, following the
// directory search order terminfo(5) describes: $TERMINFO, then
// $HOME/.terminfo, then each directory in $TERMINFO_DIRS, then the
// compiled-in fallback directories.
//
// This is deliberately separate from package unibi: unibi only knows how
// to decode and encode the bytes of an entry, not where those bytes live
// on a particular system.
package termsrc

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

// fallbackDirs are searched after $TERMINFO, $HOME/.terminfo and
// $TERMINFO_DIRS all come up empty, matching ncurses' compiled-in default.
var fallbackDirs = []string{"/lib/terminfo", "/usr/share/terminfo"}

// Find locates and reads the compiled terminfo entry for term, searching
// the standard directory order. It returns the raw bytes unparsed; decode
// them with unibi.DecodeStandard or unibi.DecodeNetBSD as appropriate.
func Find(term string) ([]byte, error) {
	if term == "" {
		return nil, fmt.Errorf("termsrc: TERM is empty")
	}

	if ti := os.Getenv("TERMINFO"); ti != "" {
		// Per terminfo(5), $TERMINFO overrides every other directory; if the
		// entry isn't there, the search stops rather than falling through.
		return fromDir(term, ti)
	}

	if h := os.Getenv("HOME"); h != "" {
		if data, err := fromDir(term, h+"/.terminfo"); err == nil {
			return data, nil
		}
	}

	if dirs := os.Getenv("TERMINFO_DIRS"); dirs != "" {
		for _, dir := range strings.Split(dirs, ":") {
			if dir == "" {
				dir = "/usr/share/terminfo"
			}
			if data, err := fromDir(term, dir); err == nil {
				return data, nil
			}
		}
	}

	var lastErr error
	for _, dir := range fallbackDirs {
		data, err := fromDir(term, dir)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("termsrc: %q not found in any terminfo directory: %w", term, lastErr)
}

// fromDir reads term's entry from dir, trying both the usual *nix layout
// (dir/first-letter/name) and the macOS layout (dir/hex-of-first-byte/name).
func fromDir(term, dir string) ([]byte, error) {
	path := dir + "/" + term[:1] + "/" + term
	if data, err := os.ReadFile(path); err == nil {
		return data, nil
	}

	path = dir + "/" + hex.EncodeToString([]byte(term[:1])) + "/" + term
	return os.ReadFile(path)
}
