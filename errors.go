package lz77

import "errors"

// Errors returned by Encode, Decode and the stages they are built from.
// They are wrapped with positional context; test for them with errors.Is.
var (
	// ErrEncodingOverflow is returned when a token's offset or length does not
	// fit in a 16-bit container word.
	ErrEncodingOverflow = errors.New("lz77: value does not fit in a container word")
	// ErrMalformedContainer is returned when a container does not hold a whole
	// number of tokens.
	ErrMalformedContainer = errors.New("lz77: word count is not a multiple of 3")
	// ErrIrregularTokenStream is returned when a word stream cannot be split
	// into equal chunks of whole tokens.
	ErrIrregularTokenStream = errors.New("lz77: irregular token stream")
	// ErrInvalidBackReference is returned when a token refers to output that
	// does not exist yet.
	ErrInvalidBackReference = errors.New("lz77: invalid back-reference")
)
