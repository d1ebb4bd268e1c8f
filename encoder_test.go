package huffcodes

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestEncoder(t *testing.T) {
	var e Encoder
	e.Init(BuildTree(makeTestFrequencies()))

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()[:8]
	expectSizes := []byte{4, 4, 3, 3, 3, 1, 0, 0}
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}

	// 5×4 + 9×4 + 12×3 + 13×3 + 16×3 + 45×1
	if actual := e.PayloadBits(makeTestFrequencies()); actual != 224 {
		t.Errorf("PayloadBits: expected 224, got %d", actual)
	}
}

func TestEncoder_Scenario(t *testing.T) {
	input := []byte{1, 1, 2, 2, 2, 3, 3, 3, 3}
	freq := CountFrequencies(input)

	var e Encoder
	e.Init(BuildTree(freq))

	expect := map[Symbol]Code{
		3: MakeCode(1, 0),
		1: MakeCode(2, 2),
		2: MakeCode(2, 3),
	}
	for symbol, hc := range expect {
		if actual := e.Encode(symbol); actual != hc {
			t.Errorf("Encode(%d): expected %s, got %s", symbol, hc, actual)
		}
	}
	if e.Has(0) || e.Encode(0).Size != 0 {
		t.Errorf("symbol 0 should have no code")
	}
	if actual := e.PayloadBits(freq); actual != 14 {
		t.Errorf("PayloadBits: expected 14, got %d", actual)
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var e Encoder
	e.Init(BuildTree(CountFrequencies([]byte("zzzz"))))

	if actual := e.Encode('z'); actual != MakeCode(1, 0) {
		t.Errorf("expected reserved code \"0\", got %s", actual)
	}
	if e.MinSize() != 1 || e.MaxSize() != 1 {
		t.Errorf("expected sizes 1 .. 1, got %d .. %d", e.MinSize(), e.MaxSize())
	}
}

func TestEncoder_Empty(t *testing.T) {
	var e Encoder
	e.Init(BuildTree(FrequencyTable{}))
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if e.Has(Symbol(symbol)) {
			t.Errorf("symbol %d should have no code", symbol)
		}
	}
}

func TestEncoder_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		data := make([]byte, 1+rng.Intn(4096))
		alphabet := 1 + rng.Intn(NumSymbols)
		for i := range data {
			// Skew the distribution so code lengths vary.
			data[i] = byte(rng.Intn(1 + rng.Intn(alphabet)))
		}

		var e Encoder
		e.Init(BuildTree(CountFrequencies(data)))

		var codes []Code
		for symbol := 0; symbol < NumSymbols; symbol++ {
			if e.Has(Symbol(symbol)) {
				codes = append(codes, e.Encode(Symbol(symbol)))
			}
		}
		for i, a := range codes {
			for j, b := range codes {
				if i != j && a.HasPrefix(b) {
					t.Fatalf("trial %d: %s has prefix %s", trial, a, b)
				}
			}
		}
	}
}
