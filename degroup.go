package lz77

import (
	"fmt"
	"sync"
)

// MaxWorkers is the default limit on the number of goroutines a Degrouper
// uses.
const MaxWorkers = 100

// A Degrouper groups a flat word stream into tokens, three words per token.
// The words are split into equal chunks of whole tokens, and each chunk is
// grouped on its own goroutine into its own section of the result, so the
// tokens come out in stream order no matter which goroutine finishes first.
type Degrouper struct {
	// MaxWorkers is the maximum number of goroutines to use.
	// The default is MaxWorkers.
	MaxWorkers int
}

// Degroup converts words into tokens.
func (d *Degrouper) Degroup(words []uint16) ([]Token, error) {
	if len(words) == 0 || len(words)%3 != 0 {
		return nil, fmt.Errorf("%d words: %w", len(words), ErrIrregularTokenStream)
	}
	limit := d.MaxWorkers
	if limit <= 0 {
		limit = MaxWorkers
	}
	return degroup(words, Workers(len(words)/3, limit))
}

// Workers returns the largest divisor of m that is no more than limit,
// or 1 if there is none.
func Workers(m, limit int) int {
	for t := min(m, limit); t > 1; t-- {
		if m%t == 0 {
			return t
		}
	}
	return 1
}

// degroup splits words into the given number of chunks and groups them
// concurrently. workers must divide the token count.
func degroup(words []uint16, workers int) ([]Token, error) {
	m := len(words) / 3
	if m == 0 || len(words)%3 != 0 || workers < 1 || m%workers != 0 {
		return nil, fmt.Errorf("%d tokens in %d chunks: %w", m, workers, ErrIrregularTokenStream)
	}

	chunkLen := len(words) / workers
	tokens := make([]Token, m)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		chunk := words[i*chunkLen : (i+1)*chunkLen]
		out := tokens[i*chunkLen/3 : (i+1)*chunkLen/3]
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = groupChunk(out, chunk)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", i, err)
		}
	}
	return tokens, nil
}

// groupChunk fills dst with the tokens in chunk.
func groupChunk(dst []Token, chunk []uint16) error {
	if len(chunk) != 3*len(dst) {
		return fmt.Errorf("%d words for %d tokens: %w", len(chunk), len(dst), ErrIrregularTokenStream)
	}
	for i := range dst {
		w := chunk[3*i : 3*i+3]
		dst[i] = Token{
			Offset:  int(w[0]),
			Length:  int(w[1]),
			Literal: Symbol(w[2]),
		}
	}
	return nil
}
