package lz77

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestFindTokens(t *testing.T) {
	tests := []struct {
		name string
		src  []Symbol
		want []Token
	}{
		{"empty", nil, nil},
		{"single", []Symbol{0x7A00}, []Token{{Literal: 0x7A00}}},
		{"two-equal", []Symbol{9, 9}, []Token{{Literal: 9}, {Literal: 9}}},
		{"three-equal", []Symbol{9, 9, 9}, []Token{{Literal: 9}, {Offset: 1, Length: 1, Literal: 9}}},
		{
			"repeat-then-dangling",
			[]Symbol{0x6162, 0x6364, 0x6162, 0x6364, 0x6162, 0x6364},
			[]Token{{Literal: 0x6162}, {Literal: 0x6364}, {Offset: 2, Length: 2, Literal: 0x6162}, {Literal: 0x6364}},
		},
		{
			// The second 1 at index 6 could copy 1,2,3 from index 2, but the
			// candidate at index 0 comes first.
			"earliest-candidate",
			[]Symbol{1, 5, 1, 2, 3, 7, 1, 2, 3, 8},
			[]Token{
				{Literal: 1},
				{Literal: 5},
				{Offset: 2, Length: 1, Literal: 2},
				{Literal: 3},
				{Literal: 7},
				{Offset: 6, Length: 1, Literal: 2},
				{Offset: 4, Length: 1, Literal: 8},
			},
		},
		{
			// A match stops before the last symbol so that it can be the literal.
			"stop-before-last",
			[]Symbol{4, 5, 6, 4, 5, 6},
			[]Token{{Literal: 4}, {Literal: 5}, {Literal: 6}, {Offset: 3, Length: 2, Literal: 6}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m WindowMatcher
			got, err := m.FindTokens(nil, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			out, err := Reconstruct(nil, got)
			if err != nil {
				t.Fatal(err)
			}
			if len(out) != len(tt.src) || (len(out) > 0 && !reflect.DeepEqual(out, tt.src)) {
				t.Fatalf("tokens reconstruct to %v, want %v", out, tt.src)
			}
		})
	}
}

func TestFindTokensValid(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			for _, window := range []int{1, 7, 100, Window} {
				m := WindowMatcher{MaxDistance: window}
				src := Symbols(in.data)
				tokens, err := m.FindTokens(nil, src)
				if err != nil {
					t.Fatal(err)
				}
				pos := 0
				for i, tok := range tokens {
					if !tok.IsLiteral() {
						if tok.Offset <= 0 || tok.Offset > window || tok.Offset > pos {
							t.Fatalf("window %d, token %d at %d: bad offset %d", window, i, pos, tok.Offset)
						}
						if tok.Length < 1 || tok.Length > tok.Offset {
							t.Fatalf("window %d, token %d at %d: bad length %d", window, i, pos, tok.Length)
						}
					}
					pos += tok.Length + 1
				}
				if pos != len(src) {
					t.Fatalf("window %d: tokens cover %d symbols, want %d", window, pos, len(src))
				}
			}
		})
	}
}

func TestFindTokensWindowLimit(t *testing.T) {
	// The symbol at the end only occurs once before it, just out of reach.
	src := make([]Symbol, 12)
	for i := range src {
		src[i] = Symbol(100 + i)
	}
	src[0] = 1
	src[10] = 1

	m := WindowMatcher{MaxDistance: 9}
	tokens, err := m.FindTokens(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	for _, tok := range tokens {
		if !tok.IsLiteral() {
			t.Fatalf("found match %v outside the window", tok)
		}
	}

	m = WindowMatcher{MaxDistance: 10}
	tokens, err = m.FindTokens(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	want := Token{Offset: 10, Length: 1, Literal: 111}
	if tokens[len(tokens)-1] != want {
		t.Fatalf("last token is %v, want %v", tokens[len(tokens)-1], want)
	}
}

func TestFindTokensOverflow(t *testing.T) {
	// With runs of one symbol every match doubles in length, and with a
	// window this wide the length eventually passes 65535.
	src := Symbols(bytes.Repeat([]byte{0}, 1<<19))
	m := WindowMatcher{MaxDistance: 1 << 18}
	tokens, err := m.FindTokens(nil, src)
	if !errors.Is(err, ErrEncodingOverflow) {
		t.Fatalf("got error %v, want ErrEncodingOverflow", err)
	}
	if tokens != nil {
		t.Fatalf("got %d tokens along with the error", len(tokens))
	}

	// The default window keeps every offset and length in range.
	m = WindowMatcher{}
	if _, err := m.FindTokens(nil, src); err != nil {
		t.Fatal(err)
	}
	if m.MaxDistance != Window {
		t.Fatalf("MaxDistance defaulted to %d, want %d", m.MaxDistance, Window)
	}
}
