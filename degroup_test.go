package lz77

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestWorkers(t *testing.T) {
	tests := []struct {
		m, limit, want int
	}{
		{0, 100, 1},
		{1, 100, 1},
		{7, 100, 7},
		{100, 100, 100},
		{101, 100, 1},
		{120, 100, 60},
		{200, 100, 100},
		{202, 100, 2},
		{1 << 20, 100, 64},
		{12, 5, 4},
	}
	for _, tt := range tests {
		if got := Workers(tt.m, tt.limit); got != tt.want {
			t.Errorf("Workers(%d, %d) = %d, want %d", tt.m, tt.limit, got, tt.want)
		}
	}
}

func testWords(m int) []uint16 {
	words := make([]uint16, 3*m)
	for i := range words {
		words[i] = uint16(i * 7919)
	}
	return words
}

func TestDegroupOrder(t *testing.T) {
	for _, m := range []int{1, 2, 101, 120, 4096, 6000} {
		t.Run(fmt.Sprint(m), func(t *testing.T) {
			words := testWords(m)

			want := make([]Token, m)
			for i := range want {
				want[i] = Token{Offset: int(words[3*i]), Length: int(words[3*i+1]), Literal: Symbol(words[3*i+2])}
			}

			counts := []int{1, Workers(m, MaxWorkers)}
			if m%2 == 0 {
				counts = append(counts, 2)
			}
			for _, n := range counts {
				got, err := degroup(words, n)
				if err != nil {
					t.Fatalf("%d workers: %v", n, err)
				}
				if !reflect.DeepEqual(got, want) {
					t.Fatalf("%d workers: tokens out of order", n)
				}
			}

			var d Degrouper
			got, err := d.Degroup(words)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatal("Degroup: tokens out of order")
			}
		})
	}
}

func TestDegroupErrors(t *testing.T) {
	tests := []struct {
		name    string
		words   []uint16
		workers int
	}{
		{"empty", nil, 1},
		{"partial-token", make([]uint16, 4), 1},
		{"uneven-chunks", make([]uint16, 9), 2},
		{"no-workers", make([]uint16, 9), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := degroup(tt.words, tt.workers); !errors.Is(err, ErrIrregularTokenStream) {
				t.Fatalf("got error %v, want ErrIrregularTokenStream", err)
			}
		})
	}

	var d Degrouper
	if _, err := d.Degroup(nil); !errors.Is(err, ErrIrregularTokenStream) {
		t.Fatalf("Degroup(nil): got error %v, want ErrIrregularTokenStream", err)
	}
}

func TestGroupChunkMismatch(t *testing.T) {
	dst := make([]Token, 2)
	if err := groupChunk(dst, make([]uint16, 5)); !errors.Is(err, ErrIrregularTokenStream) {
		t.Fatalf("got error %v, want ErrIrregularTokenStream", err)
	}
}

func TestDegrouperMaxWorkers(t *testing.T) {
	words := testWords(120)
	d := Degrouper{MaxWorkers: 7}
	got, err := d.Degroup(words)
	if err != nil {
		t.Fatal(err)
	}
	want, err := degroup(words, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatal("tokens differ from single-worker result")
	}
}

func BenchmarkDegroup(b *testing.B) {
	words := testWords(1 << 16)
	b.SetBytes(int64(2 * len(words)))
	var d Degrouper
	for i := 0; i < b.N; i++ {
		d.Degroup(words)
	}
}
