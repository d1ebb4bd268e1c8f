package huffcodes

import (
	"strings"
	"testing"
)

func makeTestFrequencies() FrequencyTable {
	var freq FrequencyTable
	for symbol, count := range []int{5, 9, 12, 13, 16, 45} {
		freq.Add([]byte(strings.Repeat(string(rune(symbol)), count)))
	}
	return freq
}

func TestBuildTree(t *testing.T) {
	tree := BuildTree(makeTestFrequencies())

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tRoot() = 10\n",
		"\tNode(0) = leaf 0, weight 5\n",
		"\tNode(1) = leaf 1, weight 9\n",
		"\tNode(2) = leaf 2, weight 12\n",
		"\tNode(3) = leaf 3, weight 13\n",
		"\tNode(4) = leaf 4, weight 16\n",
		"\tNode(5) = leaf 5, weight 45\n",
		"\tNode(6) = internal 0 1, weight 14\n",
		"\tNode(7) = internal 2 3, weight 25\n",
		"\tNode(8) = internal 6 4, weight 30\n",
		"\tNode(9) = internal 7 8, weight 55\n",
		"\tNode(10) = internal 5 9, weight 100\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectString := "(5 ((2 3) ((0 1) 4)))"
	if actual := tree.String(); actual != expectString {
		t.Errorf("wrong shape:\n\texpect: %s\n\tactual: %s", expectString, actual)
	}
	if tree.Depth() != 4 {
		t.Errorf("expected depth 4, got %d", tree.Depth())
	}
	if tree.NumLeaves() != 6 || tree.Len() != 11 {
		t.Errorf("expected 6 leaves and 11 nodes, got %d and %d", tree.NumLeaves(), tree.Len())
	}
}

func TestBuildTree_Shapes(t *testing.T) {
	type testRow struct {
		name   string
		input  []byte
		expect string
	}

	testData := [...]testRow{
		{name: "empty", input: nil, expect: "()"},
		{name: "single", input: []byte{7, 7, 7}, expect: "7"},
		{name: "pair", input: []byte{9, 4, 4}, expect: "(9 4)"},
		{name: "tie-by-symbol", input: []byte{2, 1}, expect: "(1 2)"},
		{name: "scenario", input: []byte{1, 1, 2, 2, 2, 3, 3, 3, 3}, expect: "(3 (1 2))"},

		// All four weights tie; leaves pair up in symbol order, and
		// the older internal node goes left.
		{name: "all-ties", input: []byte{4, 3, 2, 1}, expect: "((1 2) (3 4))"},

		// Leaf 3 (weight 2) ties with internal (1 2) (weight 2); the
		// leaf is taken first.
		{name: "leaf-before-internal", input: []byte{1, 2, 3, 3}, expect: "(3 (1 2))"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := BuildTree(CountFrequencies(row.input)).String()
			if actual != row.expect {
				t.Errorf("wrong shape:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestBuildTree_Weights(t *testing.T) {
	tree := BuildTree(CountFrequencies([]byte("abracadabra, said the magician")))
	var walk func(id NodeID)
	walk = func(id NodeID) {
		if tree.IsLeaf(id) {
			return
		}
		left, right := tree.Children(id)
		if tree.Weight(id) != tree.Weight(left)+tree.Weight(right) {
			t.Errorf("node %d: weight %d != %d + %d", id, tree.Weight(id), tree.Weight(left), tree.Weight(right))
		}
		walk(left)
		walk(right)
	}
	walk(tree.Root())

	if tree.Weight(tree.Root()) != 30 {
		t.Errorf("root weight: expected 30, got %d", tree.Weight(tree.Root()))
	}
}

func TestBuildTree_Deterministic(t *testing.T) {
	input := []byte("the quick brown fox jumps over the lazy dog")
	a := BuildTree(CountFrequencies(input))
	b := BuildTree(CountFrequencies(input))
	if !a.Equal(b) || a.String() != b.String() {
		t.Errorf("trees differ:\n\t%s\n\t%s", a, b)
	}
}

func TestTree_Equal(t *testing.T) {
	a := BuildTree(CountFrequencies([]byte{1, 1, 2, 2, 2, 3, 3, 3, 3}))
	b := BuildTree(CountFrequencies([]byte{1, 2, 2, 3, 3, 3}))
	c := BuildTree(CountFrequencies([]byte{1, 1, 2, 2, 2, 4, 4, 4, 4}))
	empty := BuildTree(FrequencyTable{})

	if !a.Equal(b) {
		t.Errorf("expected %s == %s (weights are ignored)", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %s != %s", a, c)
	}
	if a.Equal(empty) || empty.Equal(a) {
		t.Errorf("expected non-empty tree != empty tree")
	}
	if !empty.Equal(BuildTree(FrequencyTable{})) {
		t.Errorf("expected empty trees to be equal")
	}
}
