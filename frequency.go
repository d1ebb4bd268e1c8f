package huffcodes

// FrequencyTable counts the occurrences of each Symbol in some input.
// The zero value is an empty table.
type FrequencyTable struct {
	counts   [NumSymbols]uint64
	distinct int
	total    uint64
}

// CountFrequencies builds a FrequencyTable from data in a single pass.
func CountFrequencies(data []byte) FrequencyTable {
	var freq FrequencyTable
	freq.Add(data)
	return freq
}

// Add counts every byte of data into the table.
func (freq *FrequencyTable) Add(data []byte) {
	for _, b := range data {
		if freq.counts[b] == 0 {
			freq.distinct++
		}
		freq.counts[b]++
	}
	freq.total += uint64(len(data))
}

// Count returns the number of occurrences of symbol.
func (freq FrequencyTable) Count(symbol Symbol) uint64 {
	return freq.counts[symbol]
}

// Len returns the number of distinct symbols with a non-zero count.
func (freq FrequencyTable) Len() int {
	return freq.distinct
}

// Total returns the sum of all counts.
func (freq FrequencyTable) Total() uint64 {
	return freq.total
}

// Symbols returns the symbols with a non-zero count, in ascending order.
func (freq FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, freq.distinct)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq.counts[symbol] != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}
