package lz77

import (
	"encoding/binary"
	"fmt"
)

// A Token is the basic unit of the container: copy Length symbols from
// Offset symbols back in the output, then append Literal.
//
// A Token with Offset and Length both zero is a literal-only token: nothing
// is copied and Literal is simply the next symbol.
type Token struct {
	Offset  int    // how far back in the output to copy from
	Length  int    // the number of symbols to copy
	Literal Symbol // the symbol that follows the copied run
}

// IsLiteral reports whether t is a literal-only token.
func (t Token) IsLiteral() bool {
	return t.Offset == 0 && t.Length == 0
}

// maxWord is the largest value a container word can hold.
const maxWord = 1<<16 - 1

// check returns ErrEncodingOverflow if t cannot be written to a container
// without truncation.
func (t Token) check() error {
	if t.Offset < 0 || t.Offset > maxWord {
		return fmt.Errorf("offset %d: %w", t.Offset, ErrEncodingOverflow)
	}
	if t.Length < 0 || t.Length > maxWord {
		return fmt.Errorf("length %d: %w", t.Length, ErrEncodingOverflow)
	}
	return nil
}

// AppendWords appends the container form of tokens to dst: three big-endian
// 16-bit words per token, in the order offset, length, literal.
func AppendWords(dst []byte, tokens []Token) ([]byte, error) {
	for i, t := range tokens {
		if err := t.check(); err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		dst = binary.BigEndian.AppendUint16(dst, uint16(t.Offset))
		dst = binary.BigEndian.AppendUint16(dst, uint16(t.Length))
		dst = binary.BigEndian.AppendUint16(dst, uint16(t.Literal))
	}
	return dst, nil
}

// ParseWords reads a container and returns its tokens. The container is read
// as 16-bit words with the same odd-tail rule as Symbols, and the words are
// grouped into tokens by a Degrouper with the default worker limit.
func ParseWords(src []byte) ([]Token, error) {
	words := appendSymbols(make([]uint16, 0, (len(src)+1)/2), src)
	if len(words)%3 != 0 {
		return nil, fmt.Errorf("%d words: %w", len(words), ErrMalformedContainer)
	}
	var d Degrouper
	return d.Degroup(words)
}

// WordEncoder is an Encoder that writes the binary container format.
type WordEncoder struct{}

func (WordEncoder) Reset() {}

func (WordEncoder) Encode(dst []byte, tokens []Token) ([]byte, error) {
	return AppendWords(dst, tokens)
}
