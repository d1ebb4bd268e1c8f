package huffcodes

import (
	"io"

	"github.com/icza/bitio"
)

// BitWriter is the bit-level sink used by Encode and WriteTree.  Bits are
// written MSB-first.
type BitWriter interface {
	// WriteBit writes a single bit: true for 1, false for 0.
	WriteBit(bit bool) error

	// WriteBits writes the n lowest bits of value, most significant first.
	WriteBits(value uint64, n uint8) error

	// WriteByte writes 8 bits.
	WriteByte(b byte) error

	// BitsWritten reports the number of bits written so far.
	BitsWritten() uint64
}

// BitReader is the bit-level source used by Decode and ReadTree.  Running
// out of input is reported as io.EOF or io.ErrUnexpectedEOF.
type BitReader interface {
	// ReadBit reads a single bit.
	ReadBit() (bool, error)

	// ReadBits reads n bits into the low bits of the result, most
	// significant first.
	ReadBits(n uint8) (uint64, error)

	// ReadByte reads 8 bits.
	ReadByte() (byte, error)

	// BitsRead reports the number of bits consumed so far.
	BitsRead() uint64
}

// StreamWriter is a BitWriter on top of an io.Writer.  Close must be called
// to zero-pad and flush the final partial byte.
type StreamWriter struct {
	w *bitio.Writer
	n uint64
}

// NewBitWriter returns a StreamWriter that writes to out.
func NewBitWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{w: bitio.NewWriter(out)}
}

// WriteBit writes a single bit.
func (sw *StreamWriter) WriteBit(bit bool) error {
	if err := sw.w.WriteBool(bit); err != nil {
		return err
	}
	sw.n++
	return nil
}

// WriteBits writes the n lowest bits of value.
func (sw *StreamWriter) WriteBits(value uint64, n uint8) error {
	if n == 0 {
		return nil
	}
	if n < 64 {
		value &= (uint64(1) << n) - 1
	}
	if err := sw.w.WriteBits(value, n); err != nil {
		return err
	}
	sw.n += uint64(n)
	return nil
}

// WriteByte writes 8 bits.
func (sw *StreamWriter) WriteByte(b byte) error {
	if err := sw.w.WriteByte(b); err != nil {
		return err
	}
	sw.n += 8
	return nil
}

// BitsWritten reports the number of bits written so far, not counting
// padding.
func (sw *StreamWriter) BitsWritten() uint64 {
	return sw.n
}

// Close pads the final byte with zero bits and flushes it.  It does not
// close the underlying io.Writer.
func (sw *StreamWriter) Close() error {
	return sw.w.Close()
}

// StreamReader is a BitReader on top of an io.Reader.
type StreamReader struct {
	r *bitio.Reader
	n uint64
}

// NewBitReader returns a StreamReader that reads from in.
func NewBitReader(in io.Reader) *StreamReader {
	return &StreamReader{r: bitio.NewReader(in)}
}

// ReadBit reads a single bit.
func (sr *StreamReader) ReadBit() (bool, error) {
	bit, err := sr.r.ReadBool()
	if err != nil {
		return false, err
	}
	sr.n++
	return bit, nil
}

// ReadBits reads n bits.
func (sr *StreamReader) ReadBits(n uint8) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	value, err := sr.r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	sr.n += uint64(n)
	return value, nil
}

// ReadByte reads 8 bits.
func (sr *StreamReader) ReadByte() (byte, error) {
	b, err := sr.r.ReadByte()
	if err != nil {
		return 0, err
	}
	sr.n += 8
	return b, nil
}

// BitsRead reports the number of bits consumed so far.
func (sr *StreamReader) BitsRead() uint64 {
	return sr.n
}

var (
	_ BitWriter = (*StreamWriter)(nil)
	_ BitReader = (*StreamReader)(nil)
	_ io.Closer = (*StreamWriter)(nil)
)
