package huffcodes

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest Code this package will produce or accept.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit, which is also the first bit
	// written to the stream.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns the Code extended by one trailing bit.
func (hc Code) Append(bit bool) Code {
	hc.Bits <<= 1
	if bit {
		hc.Bits |= 1
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of the Code, counting from the first bit.
func (hc Code) Bit(i byte) bool {
	return (hc.Bits>>(hc.Size-1-i))&1 != 0
}

// HasPrefix reports whether prefix is a (not necessarily proper) prefix of
// this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
