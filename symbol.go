package huffcodes

// Symbol represents one byte value of the input alphabet.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
