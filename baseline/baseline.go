// Package baseline measures the lz77 codec against established compressors
// on the same input.
package baseline

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zleyyij/lz77"
	"github.com/zleyyij/lz77/frame"
)

// A Codec is a compressor paired with its decompressor.
type Codec struct {
	Name       string
	Compress   func(src []byte) ([]byte, error)
	Decompress func(src []byte) ([]byte, error)

	// PadsOddLength is set for codecs that return one extra zero byte
	// for odd-length input.
	PadsOddLength bool
}

// A Result is the outcome of running one Codec over an input.
type Result struct {
	Name  string
	Size  int     // compressed size in bytes
	Ratio float64 // input size divided by compressed size
}

// All returns the codecs Compare runs, lz77 first.
func All() []Codec {
	return []Codec{
		{Name: "lz77", Compress: lz77.Encode, Decompress: lz77.Decode, PadsOddLength: true},
		{Name: "lz77-framed", Compress: frame.Encode, Decompress: frame.Decode},
		{Name: "snappy", Compress: snappyCompress, Decompress: snappyDecompress},
		{Name: "lz4", Compress: lz4Compress, Decompress: lz4Decompress},
		{Name: "gzip", Compress: gzipCompress, Decompress: gzipDecompress},
		{Name: "zstd", Compress: zstdCompress, Decompress: zstdDecompress},
		{Name: "brotli", Compress: brotliCompress, Decompress: brotliDecompress},
	}
}

// Compare compresses data with each codec, checks that it decompresses back
// to data, and reports the sizes.
func Compare(data []byte, codecs []Codec) ([]Result, error) {
	results := make([]Result, 0, len(codecs))
	for _, c := range codecs {
		compressed, err := c.Compress(data)
		if err != nil {
			return nil, fmt.Errorf("%s: compress: %w", c.Name, err)
		}
		decompressed, err := c.Decompress(compressed)
		if err != nil {
			return nil, fmt.Errorf("%s: decompress: %w", c.Name, err)
		}
		want := data
		if c.PadsOddLength && len(data)%2 == 1 {
			want = append(data[:len(data):len(data)], 0)
		}
		if !bytes.Equal(decompressed, want) {
			return nil, fmt.Errorf("%s: decompressed output doesn't match", c.Name)
		}

		r := Result{Name: c.Name, Size: len(compressed)}
		if len(compressed) > 0 {
			r.Ratio = float64(len(data)) / float64(len(compressed))
		}
		results = append(results, r)
	}
	return results, nil
}

func snappyCompress(src []byte) ([]byte, error) {
	return snappy.Encode(nil, src), nil
}

func snappyDecompress(src []byte) ([]byte, error) {
	return snappy.Decode(nil, src)
}

func lz4Compress(src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := lz4.NewWriter(buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func lz4Decompress(src []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(src)))
}

func gzipCompress(src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := gzip.NewWriter(buf)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gzipDecompress(src []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func zstdCompress(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(src, nil), nil
}

func zstdDecompress(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, nil)
}

func brotliCompress(src []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := brotli.NewWriterLevel(buf, brotli.DefaultCompression)
	if _, err := w.Write(src); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func brotliDecompress(src []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(src)))
}
