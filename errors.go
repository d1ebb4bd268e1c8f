package huffcodes

import (
	"errors"
	"fmt"
	"io"
)

// ErrFormat is returned (wrapped) when an encoded stream is truncated or
// structurally invalid.
var ErrFormat = errors.New("huffcodes: malformed stream")

// ErrConstruction is returned (wrapped) when a code tree does not yield a
// one-to-one mapping between Symbols and Codes.
var ErrConstruction = errors.New("huffcodes: inconsistent code table")

// ErrTooLarge is returned (wrapped) when the encoded payload would not fit
// in the 32-bit header.
var ErrTooLarge = errors.New("huffcodes: input too large")

// truncated converts end-of-input from a BitReader into ErrFormat.  Any
// other error is returned unchanged.
func truncated(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: stream ends inside %s", ErrFormat, what)
	}
	return err
}
