package unibi

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (possibly wrapped with fmt.Errorf's %w) by the
// decoders and encoders in this package. Use errors.Is to test for them.
var (
	// ErrInvalid means the input bytes are structurally well-formed enough
	// to be measured, but contain values that violate the format's
	// invariants (a bad magic number, an offset that doesn't add up, a
	// value that overflows the dialect's integer width, and so on).
	ErrInvalid = errors.New("unibi: invalid terminfo data")

	// ErrTruncated means the input ends before a length the header (or a
	// nested section header) promised was there.
	ErrTruncated = errors.New("unibi: truncated terminfo data")

	// ErrAlloc is the allocation-failure kind of the error taxonomy. No
	// function in this package returns it: Go's slice growth does not
	// report failure the way C's malloc does, so the add operations in
	// mutation.go have no failure path.
	ErrAlloc = errors.New("unibi: allocation failure")

	// ErrBufferTooSmall is returned by encoders, never by decoders. It is
	// not fatal: the encoder also returns the number of bytes the output
	// would have required, exactly like a short write, so callers can
	// retry with a bigger buffer.
	ErrBufferTooSmall = errors.New("unibi: destination buffer too small")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalid)...)
}

func truncatedf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrTruncated)...)
}
