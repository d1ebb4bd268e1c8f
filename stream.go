package huffcodes

import (
	"bytes"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// HeaderBits is the size of the payload-length header.
const HeaderBits = 32

// maxInitialCapacity bounds the output buffer preallocated by Decode, so
// that a hostile header cannot force a huge allocation up front.
const maxInitialCapacity = 1 << 20

// Header describes the part of an encoded stream that precedes the payload.
type Header struct {
	// PayloadBits is N, the number of meaningful payload bits.
	PayloadBits uint32

	// TreeBits is the size of the serialized code tree.  It is 0 iff
	// PayloadBits is 0.
	TreeBits uint64

	// Tree is the code tree.  It is empty iff PayloadBits is 0.
	Tree *Tree
}

// Encode writes the complete encoded form of data to w: the 32-bit payload
// length, the code tree, and one Code per input byte.  Padding the final
// byte is left to w (see StreamWriter.Close).
//
// Identical input always produces identical output.
//
func Encode(w BitWriter, data []byte) error {
	freq := CountFrequencies(data)

	// Every byte costs at least one bit, so this also bounds the tree
	// depth well below MaxCodeSize.
	if freq.Total() > math.MaxUint32 {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, freq.Total())
	}

	t := BuildTree(freq)

	var e Encoder
	e.Init(t)

	var d Decoder
	if err := d.Init(t); err != nil {
		return err
	}

	payloadBits := e.PayloadBits(freq)
	if payloadBits > math.MaxUint32 {
		return fmt.Errorf("%w: payload of %d bits does not fit the header", ErrTooLarge, payloadBits)
	}

	start := w.BitsWritten()

	if err := w.WriteBits(payloadBits, HeaderBits); err != nil {
		return err
	}
	if err := WriteTree(w, t); err != nil {
		return err
	}
	for _, b := range data {
		hc := e.Encode(Symbol(b))
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return err
		}
	}

	written := w.BitsWritten() - start
	expected := HeaderBits + TreeBits(t) + payloadBits
	assert.Assertf(written == expected, "wrote %d bits, expected %d", written, expected)
	return nil
}

// EncodeBytes encodes data into a new byte slice, zero-padded to a whole
// number of bytes.
func EncodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	sw := NewBitWriter(&buf)
	if err := Encode(sw, data); err != nil {
		return nil, err
	}
	if err := sw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Inspect reads the header and code tree of an encoded stream, leaving r
// positioned at the first payload bit.
func Inspect(r BitReader) (Header, error) {
	n, err := r.ReadBits(HeaderBits)
	if err != nil {
		return Header{}, truncated(err, "header")
	}

	h := Header{PayloadBits: uint32(n)}
	if h.PayloadBits == 0 {
		h.Tree = newTree(0)
		return h, nil
	}

	t, treeBits, err := ReadTree(r)
	if err != nil {
		return Header{}, err
	}
	h.TreeBits = treeBits
	h.Tree = t
	return h, nil
}

// Decode reads an encoded stream from r and returns the original bytes.
//
// Decoding stops after exactly N payload bits, where N comes from the
// header; anything after that, such as padding, is never read.  A stream
// that ends early, or whose payload does not split into whole Codes, is
// reported as ErrFormat and no output is returned.
//
func Decode(r BitReader) ([]byte, error) {
	h, err := Inspect(r)
	if err != nil {
		return nil, err
	}
	if h.PayloadBits == 0 {
		return []byte{}, nil
	}

	var d Decoder
	if err := d.Init(h.Tree); err != nil {
		return nil, err
	}

	capacity := uint64(h.PayloadBits) / uint64(d.MaxSize())
	if capacity > maxInitialCapacity {
		capacity = maxInitialCapacity
	}
	out := make([]byte, 0, capacity)

	var hc Code
	for remaining := h.PayloadBits; remaining > 0; remaining-- {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, truncated(err, "payload")
		}

		hc = hc.Append(bit)
		if symbol, found := d.Decode(hc); found {
			out = append(out, byte(symbol))
			hc = Code{}
		} else if hc.Size >= d.MaxSize() {
			return nil, fmt.Errorf("%w: bit sequence %s matches no code", ErrFormat, hc)
		}
	}
	if hc.Size != 0 {
		return nil, fmt.Errorf("%w: payload ends inside code %s", ErrFormat, hc)
	}
	return out, nil
}

// DecodeBytes decodes a byte slice produced by EncodeBytes.
func DecodeBytes(src []byte) ([]byte, error) {
	return Decode(NewBitReader(bytes.NewReader(src)))
}
