// Package lz77 is an LZ77 codec that works on 16-bit symbols.
//
// Compression has two steps:
//   - A MatchFinder turns the input symbols into Tokens, each of which copies
//     a run of earlier output and then adds one literal symbol.
//   - An Encoder writes those Tokens in their final format.
//
// The container written by WordEncoder is a flat sequence of big-endian
// 16-bit words, three per Token (offset, length, literal), with no header.
// Decompression reads the words back, groups them into Tokens on several
// goroutines, and replays the Tokens in order.
//
// Symbols are formed from pairs of input bytes. An input with an odd number
// of bytes is padded with one zero byte, and the raw container has no room to
// record that, so Decode returns one extra trailing zero byte for odd-length
// inputs. Use package frame when the exact length matters.
package lz77

// A MatchFinder performs the LZ77 stage of compression, turning symbols into
// tokens.
type MatchFinder interface {
	// FindTokens finds the tokens covering src, appends them to dst, and
	// returns dst.
	FindTokens(dst []Token, src []Symbol) ([]Token, error)

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// a new stream.
	Reset()
}

// An Encoder encodes tokens in their final format.
type Encoder interface {
	// Encode appends the encoded form of tokens to dst.
	Encode(dst []byte, tokens []Token) ([]byte, error)

	// Reset clears any internal state, preparing the Encoder to be used with
	// a new stream.
	Reset()
}

// Encode compresses src with a WindowMatcher using the default window and
// returns the container.
func Encode(src []byte) ([]byte, error) {
	var m WindowMatcher
	tokens, err := m.FindTokens(nil, Symbols(src))
	if err != nil {
		return nil, err
	}
	return AppendWords(make([]byte, 0, 6*len(tokens)), tokens)
}

// Decode decompresses a container produced by Encode.
// An empty container decodes to empty output.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	tokens, err := ParseWords(src)
	if err != nil {
		return nil, err
	}
	symbols, err := Reconstruct(nil, tokens)
	if err != nil {
		return nil, err
	}
	return SymbolBytes(make([]byte, 0, 2*len(symbols)), symbols), nil
}
