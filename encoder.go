package huffcodes

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps Symbols to their Codes for one Tree.
type Encoder struct {
	codes   [NumSymbols]Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from a code tree.  Each leaf's Code is the
// path from the root, "0" for left and "1" for right.  A root that is
// itself a leaf has an empty path, so its Symbol gets the reserved
// one-bit Code "0" instead.
//
// The tree must be no deeper than MaxCodeSize.
//
func (e *Encoder) Init(t *Tree) {
	*e = Encoder{}

	root := t.Root()
	if root == NoNode {
		return
	}
	if t.IsLeaf(root) {
		e.codes[t.Symbol(root)] = MakeCode(1, 0)
		e.minSize, e.maxSize = 1, 1
		return
	}

	// Walk the tree with an explicit stack.  stackItem.x tracks where we
	// are in the walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id   NodeID
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, MaxCodeSize)
	var hasMinMax bool

	processChild := func(child NodeID, code Code) {
		assert.Assertf(code.Size <= MaxCodeSize, "tree is deeper than %d bits", MaxCodeSize)
		if !t.IsLeaf(child) {
			stack = append(stack, stackItem{id: child, code: code})
			return
		}

		e.codes[t.Symbol(child)] = code
		size := code.Size
		if !hasMinMax {
			hasMinMax = true
			e.minSize = size
			e.maxSize = size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
	}

	stack = append(stack, stackItem{id: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		left, right := t.Children(top.id)
		switch x {
		case 0:
			processChild(left, top.code.Append(false))
		case 1:
			processChild(right, top.code.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// Encode returns the Code for a Symbol.  The Code is empty (Size 0) if the
// Symbol does not appear in the tree.
func (e *Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// Has returns true iff the Symbol has a Code.
func (e *Encoder) Has(symbol Symbol) bool {
	return e.codes[symbol].Size != 0
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol
// in the alphabet, 0 for Symbols without a Code.
func (e *Encoder) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol := range e.codes {
		out[symbol] = e.codes[symbol].Size
	}
	return out
}

// PayloadBits returns the number of payload bits needed to encode input
// with the given frequencies, i.e. the sum of count × code size.
func (e *Encoder) PayloadBits(freq FrequencyTable) uint64 {
	var total uint64
	for _, symbol := range freq.Symbols() {
		total += freq.Count(symbol) * uint64(e.codes[symbol].Size)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols without a Code are omitted.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := range e.codes {
		if hc := e.codes[symbol]; hc.Size != 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
