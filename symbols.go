package lz77

import "encoding/binary"

// A Symbol is the 16-bit code unit the codec works on.
type Symbol uint16

// Symbols converts src to symbols, pairing consecutive bytes big-endian.
// If len(src) is odd, the last byte becomes the high byte of the final symbol
// and the low byte is zero.
func Symbols(src []byte) []Symbol {
	return appendSymbols(make([]Symbol, 0, (len(src)+1)/2), src)
}

// appendSymbols is shared by the input side (symbols) and the container side
// (words), so both follow the same odd-tail rule.
func appendSymbols[S ~uint16](dst []S, src []byte) []S {
	n := len(src) &^ 1
	for i := 0; i < n; i += 2 {
		dst = append(dst, S(binary.BigEndian.Uint16(src[i:])))
	}
	if n < len(src) {
		dst = append(dst, S(src[n])<<8)
	}
	return dst
}

// SymbolBytes appends the two bytes of each symbol in src to dst, high byte
// first, and returns dst.
func SymbolBytes(dst []byte, src []Symbol) []byte {
	for _, s := range src {
		dst = binary.BigEndian.AppendUint16(dst, uint16(s))
	}
	return dst
}
