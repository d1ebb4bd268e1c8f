package huffcodes

import (
	"fmt"
)

// WriteTree writes the tree in preorder.  An internal node is written as a
// "0" bit followed by its left and right subtrees; a leaf is written as a
// "1" bit followed by its Symbol as 8 bits.  An empty tree writes nothing.
func WriteTree(w BitWriter, t *Tree) error {
	if t.Root() == NoNode {
		return nil
	}
	return writeNode(w, t, t.Root())
}

func writeNode(w BitWriter, t *Tree, id NodeID) error {
	if t.IsLeaf(id) {
		if err := w.WriteBit(true); err != nil {
			return err
		}
		return w.WriteByte(byte(t.Symbol(id)))
	}

	if err := w.WriteBit(false); err != nil {
		return err
	}
	left, right := t.Children(id)
	if err := writeNode(w, t, left); err != nil {
		return err
	}
	return writeNode(w, t, right)
}

// TreeBits returns the number of bits WriteTree will write for t.
func TreeBits(t *Tree) uint64 {
	if t.Root() == NoNode {
		return 0
	}
	leaves := uint64(t.NumLeaves())
	return 9*leaves + (leaves - 1)
}

// ReadTree reads a tree written by WriteTree and returns it along with the
// exact number of bits consumed.  The stream must hold a non-empty tree.
//
// Running out of input, a Symbol appearing on more than one leaf, or a
// tree deeper than MaxCodeSize is reported as ErrFormat.
//
func ReadTree(r BitReader) (*Tree, uint64, error) {
	tr := treeReader{
		r: r,
		t: newTree(2*NumSymbols - 1),
	}
	root, err := tr.readNode(0)
	if err != nil {
		return nil, tr.consumed, err
	}
	tr.t.root = root
	return tr.t, tr.consumed, nil
}

type treeReader struct {
	r        BitReader
	t        *Tree
	seen     [NumSymbols]bool
	consumed uint64
}

func (tr *treeReader) readNode(depth int) (NodeID, error) {
	if depth > MaxCodeSize {
		return NoNode, fmt.Errorf("%w: code tree deeper than %d bits", ErrFormat, MaxCodeSize)
	}

	isLeaf, err := tr.r.ReadBit()
	if err != nil {
		return NoNode, truncated(err, "code tree")
	}
	tr.consumed++

	if isLeaf {
		b, err := tr.r.ReadByte()
		if err != nil {
			return NoNode, truncated(err, "code tree leaf")
		}
		tr.consumed += 8

		if tr.seen[b] {
			return NoNode, fmt.Errorf("%w: symbol %d appears on more than one leaf", ErrFormat, b)
		}
		tr.seen[b] = true
		return tr.t.addLeaf(Symbol(b), 0), nil
	}

	left, err := tr.readNode(depth + 1)
	if err != nil {
		return NoNode, err
	}
	right, err := tr.readNode(depth + 1)
	if err != nil {
		return NoNode, err
	}
	return tr.t.addInternal(left, right), nil
}
