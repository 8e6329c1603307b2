// Package frame wraps the lz77 container in a small self-describing frame
// that records the original length and a checksum of the content, so that
// every input, including one with an odd number of bytes, decodes exactly.
//
// A frame is laid out as:
//
//	magic     4 bytes, "LZ7W"
//	length    uvarint, the number of bytes in the original input
//	body      the lz77 container
//	checksum  4 bytes, little-endian xxHash32 (seed 0) of the original input
package frame

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/xxHash/xxHash32"
	"github.com/zleyyij/lz77"
)

var magic = []byte("LZ7W")

var (
	ErrBadMagic       = errors.New("frame: bad magic number")
	ErrTruncated      = errors.New("frame: truncated frame")
	ErrLengthMismatch = errors.New("frame: decoded length does not match header")
	ErrChecksum       = errors.New("frame: content checksum mismatch")
)

// Encode compresses src with the default window and returns it as a frame.
func Encode(src []byte) ([]byte, error) {
	return EncodeWindow(src, lz77.Window)
}

// EncodeWindow is like Encode, but looks back at most window symbols for a
// match.
func EncodeWindow(src []byte, window int) ([]byte, error) {
	m := lz77.WindowMatcher{MaxDistance: window}
	tokens, err := m.FindTokens(nil, lz77.Symbols(src))
	if err != nil {
		return nil, err
	}
	body, err := lz77.AppendWords(make([]byte, 0, 6*len(tokens)), tokens)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, 0, len(magic)+binary.MaxVarintLen64+len(body)+4)
	dst = append(dst, magic...)
	dst = binary.AppendUvarint(dst, uint64(len(src)))
	dst = append(dst, body...)

	h := xxHash32.New(0)
	h.Write(src)
	return binary.LittleEndian.AppendUint32(dst, h.Sum32()), nil
}

// Decode decompresses a frame produced by Encode.
func Decode(src []byte) ([]byte, error) {
	if !bytes.HasPrefix(src, magic) {
		return nil, ErrBadMagic
	}
	src = src[len(magic):]

	n, k := binary.Uvarint(src)
	if k <= 0 {
		return nil, ErrTruncated
	}
	src = src[k:]
	if len(src) < 4 {
		return nil, ErrTruncated
	}
	body, sum := src[:len(src)-4], binary.LittleEndian.Uint32(src[len(src)-4:])

	out, err := lz77.Decode(body)
	if err != nil {
		return nil, err
	}

	// An odd-length input comes back with one padding byte.
	if n > uint64(len(out)) || uint64(len(out)) != n+n%2 || (n%2 == 1 && out[n] != 0) {
		return nil, fmt.Errorf("%w: header says %d bytes, got %d", ErrLengthMismatch, n, len(out))
	}
	out = out[:n]

	h := xxHash32.New(0)
	h.Write(out)
	if h.Sum32() != sum {
		return nil, ErrChecksum
	}
	return out, nil
}
