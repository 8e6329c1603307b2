package lz77

import (
	"errors"
	"fmt"
	"io"
)

// A Writer compresses the data written to it and writes the result to Dest.
//
// With BlockSize set, each full block is compressed on its own as soon as it
// is written. Tokens never refer outside their block, so the containers of
// consecutive blocks concatenate into one valid container.
type Writer struct {
	Dest        io.Writer
	MatchFinder MatchFinder
	Encoder     Encoder

	// BlockSize is the number of input bytes to compress at a time. It must
	// be even, so that only the last block can need padding. If it is zero,
	// all input is buffered and compressed when Close is called.
	BlockSize int

	inBuf   []byte
	symbols []Symbol
	tokens  []Token
	outBuf  []byte
	err     error
}

var errWriterClosed = errors.New("lz77: write to closed Writer")

// NewWriter returns a Writer that writes the binary container to dst,
// using a WindowMatcher with the default window.
func NewWriter(dst io.Writer) *Writer {
	return &Writer{
		Dest:        dst,
		MatchFinder: &WindowMatcher{},
		Encoder:     WordEncoder{},
	}
}

func (w *Writer) init() {
	if w.MatchFinder == nil {
		w.MatchFinder = &WindowMatcher{}
	}
	if w.Encoder == nil {
		w.Encoder = WordEncoder{}
	}
	if w.err == nil && (w.BlockSize < 0 || w.BlockSize%2 != 0) {
		w.err = fmt.Errorf("lz77: invalid BlockSize %d", w.BlockSize)
	}
}

func (w *Writer) Write(p []byte) (n int, err error) {
	w.init()
	if w.err != nil {
		return 0, w.err
	}

	buffered := len(w.inBuf)
	w.inBuf = append(w.inBuf, p...)
	if w.BlockSize > 0 {
		var done int
		for len(w.inBuf)-done >= w.BlockSize {
			if err := w.encodeBlock(w.inBuf[done : done+w.BlockSize]); err != nil {
				// Only the blocks already written count as consumed.
				return max(done-buffered, 0), err
			}
			done += w.BlockSize
		}
		rest := copy(w.inBuf, w.inBuf[done:])
		w.inBuf = w.inBuf[:rest]
	}
	return len(p), nil
}

func (w *Writer) encodeBlock(b []byte) error {
	w.symbols = appendSymbols(w.symbols[:0], b)
	w.MatchFinder.Reset()

	var err error
	w.tokens, err = w.MatchFinder.FindTokens(w.tokens[:0], w.symbols)
	if err != nil {
		w.err = err
		return err
	}
	w.outBuf, err = w.Encoder.Encode(w.outBuf[:0], w.tokens)
	if err != nil {
		w.err = err
		return err
	}
	if _, err := w.Dest.Write(w.outBuf); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Close compresses any buffered input and writes it to Dest.
// It does not close Dest.
func (w *Writer) Close() error {
	w.init()
	if w.err != nil {
		return w.err
	}
	if len(w.inBuf) > 0 {
		if err := w.encodeBlock(w.inBuf); err != nil {
			return err
		}
		w.inBuf = w.inBuf[:0]
	}
	w.err = errWriterClosed
	return nil
}

// Reset discards the Writer's state and makes it write to dst,
// keeping its settings.
func (w *Writer) Reset(dst io.Writer) {
	w.init()
	w.Dest = dst
	w.inBuf = w.inBuf[:0]
	w.err = nil
	w.MatchFinder.Reset()
	w.Encoder.Reset()
}
