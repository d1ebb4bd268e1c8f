package huffcodes

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies one node of a Tree.  IDs are indices into the Tree's
// node arena, so they are only meaningful for the Tree that issued them.
type NodeID int32

// NoNode is returned by some methods to clearly indicate that no node is
// being returned.
const NoNode = NodeID(-1)

// Tree is a binary prefix-code tree.  Leaves carry Symbols; the path from
// the root to a leaf, reading "0" for left and "1" for right, is that
// Symbol's Code.
//
// Nodes are stored in an arena and refer to their children by NodeID.
// Every node except the root is the child of exactly one internal node.
type Tree struct {
	nodes  []treeNode
	root   NodeID
	leaves int
}

type treeNode struct {
	leaf   bool
	symbol Symbol
	left   NodeID
	right  NodeID

	// weight is only meaningful for trees built from frequencies.
	weight uint64
}

func newTree(capacity int) *Tree {
	return &Tree{
		nodes: make([]treeNode, 0, capacity),
		root:  NoNode,
	}
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		leaf:   true,
		symbol: symbol,
		left:   NoNode,
		right:  NoNode,
		weight: weight,
	})
	t.leaves++
	return id
}

func (t *Tree) addInternal(left NodeID, right NodeID) NodeID {
	a, b := t.nodes[left].weight, t.nodes[right].weight
	sum := a + b
	assert.Assertf(sum >= a, "weight overflow: %d + %d", a, b)

	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		left:   left,
		right:  right,
		weight: sum,
	})
	return id
}

// Root returns the root node, or NoNode if the tree is empty.
func (t *Tree) Root() NodeID {
	return t.root
}

// Empty returns true iff the tree has no nodes.
func (t *Tree) Empty() bool {
	return t.root == NoNode
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaf nodes, i.e. the number of Symbols
// with a Code.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// IsLeaf returns true iff id is a leaf node.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].leaf
}

// Symbol returns the Symbol of a leaf node.
func (t *Tree) Symbol(id NodeID) Symbol {
	node := t.nodes[id]
	assert.Assertf(node.leaf, "Symbol(%d) called on an internal node", id)
	return node.symbol
}

// Children returns the left and right children of an internal node, or
// (NoNode, NoNode) for a leaf.
func (t *Tree) Children(id NodeID) (left NodeID, right NodeID) {
	node := t.nodes[id]
	return node.left, node.right
}

// Weight returns the weight of a node.  Trees read from a stream carry no
// weights, so every node reports 0.
func (t *Tree) Weight(id NodeID) uint64 {
	return t.nodes[id].weight
}

// Depth returns the length of the longest root-to-leaf path.  An empty
// tree and a tree whose root is a leaf both have depth 0.
func (t *Tree) Depth() int {
	if t.root == NoNode {
		return 0
	}
	return t.depth(t.root)
}

func (t *Tree) depth(id NodeID) int {
	node := t.nodes[id]
	if node.leaf {
		return 0
	}
	l, r := t.depth(node.left), t.depth(node.right)
	if l < r {
		l = r
	}
	return l + 1
}

// Equal returns true iff both trees have the same shape and the same
// Symbol at each leaf.  Weights are not compared.
func (t *Tree) Equal(other *Tree) bool {
	if t.root == NoNode || other.root == NoNode {
		return t.root == other.root
	}
	return nodesEqual(t, t.root, other, other.root)
}

func nodesEqual(t *Tree, a NodeID, u *Tree, b NodeID) bool {
	x, y := t.nodes[a], u.nodes[b]
	if x.leaf != y.leaf {
		return false
	}
	if x.leaf {
		return x.symbol == y.symbol
	}
	return nodesEqual(t, x.left, u, y.left) && nodesEqual(t, x.right, u, y.right)
}

// String returns a compact representation of the tree's shape: a leaf is
// its Symbol in decimal, and an internal node is "(left right)".
func (t *Tree) String() string {
	if t.root == NoNode {
		return "()"
	}
	var sb strings.Builder
	t.writeString(&sb, t.root)
	return sb.String()
}

func (t *Tree) writeString(sb *strings.Builder, id NodeID) {
	node := t.nodes[id]
	if node.leaf {
		sb.WriteString(strconv.Itoa(int(node.symbol)))
		return
	}
	sb.WriteByte('(')
	t.writeString(sb, node.left)
	sb.WriteByte(' ')
	t.writeString(sb, node.right)
	sb.WriteByte(')')
}

// Dump writes a programmer-readable debugging dump of the Tree to the
// given writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	for index, node := range t.nodes {
		if node.leaf {
			fmt.Fprintf(&buf, "\tNode(%d) = leaf %d, weight %d\n", index, node.symbol, node.weight)
		} else {
			fmt.Fprintf(&buf, "\tNode(%d) = internal %d %d, weight %d\n", index, node.left, node.right, node.weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Tree)(nil)
