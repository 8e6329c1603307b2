package lz77

import "fmt"

// Window is the default maximum distance, in symbols, that a WindowMatcher
// looks back for a match.
const Window = 4000

// An AbsoluteMatch stores indexes into the symbol stream instead of lengths.
type AbsoluteMatch struct {
	// Start is the index of the first symbol.
	Start int

	// End is the index of the symbol after the last symbol
	// (so that End - Start = Length).
	End int

	// Match is the index of the previous data that matches
	// (Start - Match = Offset).
	Match int
}

// WindowMatcher is an implementation of the MatchFinder interface that scans
// the window from its oldest symbol forward and takes the first candidate
// that matches, extending it greedily. A closer candidate is never preferred,
// even when it would give a longer match, so the output depends only on the
// input and MaxDistance.
type WindowMatcher struct {
	// MaxDistance is the maximum distance (in symbols) to look back for
	// a match. The default is Window.
	MaxDistance int
}

func (q *WindowMatcher) Reset() {}

// FindTokens looks for matches in src, appends the resulting tokens to dst,
// and returns dst. Every symbol of src is covered: a final symbol with
// nothing after it is emitted as a literal-only token.
func (q *WindowMatcher) FindTokens(dst []Token, src []Symbol) ([]Token, error) {
	if q.MaxDistance == 0 {
		q.MaxDistance = Window
	}

	pos := 0
	for pos < len(src) {
		m := q.search(src, pos)
		if m.End == m.Start {
			dst = append(dst, Token{Literal: src[pos]})
			pos++
			continue
		}

		t := Token{
			Offset:  m.Start - m.Match,
			Length:  m.End - m.Start,
			Literal: src[m.End],
		}
		if err := t.check(); err != nil {
			return nil, fmt.Errorf("match at symbol %d: %w", pos, err)
		}
		printf("pos %d: match at %d, offset %d, length %d, literal %#04x", pos, m.Match, t.Offset, t.Length, t.Literal)
		dst = append(dst, t)
		pos = m.End + 1
	}
	return dst, nil
}

// search returns the earliest match for the symbol at pos. If there is none,
// Start and End are both pos.
//
// A match never extends past the second-to-last symbol, since a literal must
// follow it, and the run it copies from always ends before pos.
func (q *WindowMatcher) search(src []Symbol, pos int) AbsoluteMatch {
	last := len(src) - 1
	if pos >= last {
		return AbsoluteMatch{Start: pos, End: pos}
	}

	lo := pos - q.MaxDistance
	if lo < 0 {
		lo = 0
	}
	for c := lo; c < pos; c++ {
		if src[c] != src[pos] {
			continue
		}
		n := 1
		for c+n < pos && pos+n < last && src[pos+n] == src[c+n] {
			n++
		}
		return AbsoluteMatch{
			Start: pos,
			End:   pos + n,
			Match: c,
		}
	}
	return AbsoluteMatch{Start: pos, End: pos}
}
