package lz77

import "fmt"

// A TextEncoder is an Encoder that produces a human-readable listing of the
// tokens, one per line. A literal-only token is written as [llll], and any
// other token as <offset,length>llll, where llll is the literal in hex.
type TextEncoder struct{}

func (t TextEncoder) Reset() {}

func (t TextEncoder) Encode(dst []byte, tokens []Token) ([]byte, error) {
	for _, tok := range tokens {
		if tok.IsLiteral() {
			dst = fmt.Appendf(dst, "[%04x]\n", uint16(tok.Literal))
			continue
		}
		dst = fmt.Appendf(dst, "<%d,%d>%04x\n", tok.Offset, tok.Length, uint16(tok.Literal))
	}
	return dst, nil
}
