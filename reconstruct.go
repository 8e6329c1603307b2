package lz77

import (
	"fmt"
	"slices"
)

// Reconstruct replays tokens in order, appending the symbols they describe
// to dst, and returns dst. Back-references may reach into symbols already in
// dst when it is called.
//
// Copies go one symbol at a time, so a token whose Offset is smaller than its
// Length repeats the symbols it has just written (Offset 1 repeats a single
// symbol Length times).
func Reconstruct(dst []Symbol, tokens []Token) ([]Symbol, error) {
	n := 0
	for _, t := range tokens {
		n += max(t.Length, 0) + 1
	}
	dst = slices.Grow(dst, n)

	for i, t := range tokens {
		if t.IsLiteral() {
			dst = append(dst, t.Literal)
			continue
		}
		start := len(dst) - t.Offset
		if t.Offset <= 0 || t.Length < 0 || start < 0 {
			return nil, fmt.Errorf("token %d: offset %d, length %d with %d symbols of output: %w", i, t.Offset, t.Length, len(dst), ErrInvalidBackReference)
		}
		for j := 0; j < t.Length; j++ {
			dst = append(dst, dst[start+j])
		}
		dst = append(dst, t.Literal)
	}
	return dst, nil
}
