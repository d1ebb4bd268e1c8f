package huffcodes

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder maps Codes back to Symbols for one Tree.
type Decoder struct {
	table   map[Code]Symbol
	minSize byte
	maxSize byte
}

// Init initializes this Decoder from a code tree by inverting the Codes an
// Encoder would assign.  Trees deeper than MaxCodeSize are rejected with
// ErrFormat.  Two Codes mapping to one Symbol, or one Code mapping to two
// Symbols, is rejected with ErrConstruction.
//
func (d *Decoder) Init(t *Tree) error {
	*d = Decoder{}

	if t.Root() == NoNode {
		return nil
	}
	if depth := t.Depth(); depth > MaxCodeSize {
		return fmt.Errorf("%w: tree depth %d exceeds %d bits", ErrFormat, depth, MaxCodeSize)
	}

	var e Encoder
	e.Init(t)

	table := make(map[Code]Symbol, t.NumLeaves())
	for symbol := range e.codes {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		if prev, found := table[hc]; found {
			return fmt.Errorf("%w: code %s assigned to both %d and %d", ErrConstruction, hc, prev, symbol)
		}
		table[hc] = Symbol(symbol)
	}
	if len(table) != t.NumLeaves() {
		return fmt.Errorf("%w: tree has %d leaves but only %d distinct symbols", ErrConstruction, t.NumLeaves(), len(table))
	}

	*d = Decoder{
		table:   table,
		minSize: e.minSize,
		maxSize: e.maxSize,
	}
	return nil
}

// Decode attempts to decode a Code into a Symbol.  It returns false if hc
// is not the complete Code of any Symbol.
func (d *Decoder) Decode(hc Code) (Symbol, bool) {
	symbol, found := d.table[hc]
	return symbol, found
}

// MinSize is the bit length of the shortest legal code.
func (d *Decoder) MinSize() byte {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d *Decoder) MaxSize() byte {
	return d.maxSize
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %d\n", hc, d.table[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ab := a.Size, a.Bits
	bs, bb := b.Size, b.Bits
	if as != bs {
		return as < bs
	}
	return ab < bb
}

var _ sort.Interface = byCode(nil)

// }}}
