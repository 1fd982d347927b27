package cliutil

import "strconv"

// Attr is a set of terminal text attributes (bold, underline, etc.) to
// apply to a string.
//
// This is trimmed from the fg/bg/256-color/true-color scheme the parser it
// was adapted from supports: cmd/unibi only ever highlights plain-text usage
// labels, so there's no caller for color codes here, just attributes.
type Attr uint16

// Terminal text attributes.
const (
	Reset Attr = 0
	Bold  Attr = 1 << (iota - 1)
	Dim
	Italic
	Underline
)

var allAttrs = []Attr{Bold, Dim, Italic, Underline}

// String gets the escape sequence for this attribute set.
//
// Returns an empty string if WantColor is false.
func (a Attr) String() string {
	if !WantColor {
		return ""
	}
	if a == Reset {
		return "\x1b[0m"
	}

	var b []byte
	b = append(b, "\x1b["...)
	first := true
	for i, attr := range allAttrs {
		if a&attr == 0 {
			continue
		}
		if !first {
			b = append(b, ';')
		}
		first = false
		b = strconv.AppendInt(b, int64(i+1), 10)
	}
	b = append(b, 'm')
	return string(b)
}

// Colorize the text with the given attributes, if WantColor is true.
//
// The text will end with the reset code.
func Colorize(text string, a Attr) string {
	attrs := a.String()
	if attrs == "" {
		return text
	}
	return attrs + text + Reset.String()
}
