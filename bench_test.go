package saltsum_test

import (
	"bytes"
	"testing"

	"github.com/codahale/saltsum"
	"github.com/codahale/saltsum/internal/testdata"
)

func BenchmarkHash(b *testing.B) {
	h := saltsum.NewSalted("bench")

	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			input := make([]byte, size.N)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				h.Hash(input)
			}
		})
	}
}

func BenchmarkHashReader(b *testing.B) {
	h := saltsum.NewSalted("bench")

	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			input := make([]byte, size.N)
			r := bytes.NewReader(input)
			b.ReportAllocs()
			b.SetBytes(int64(len(input)))
			for b.Loop() {
				r.Reset(input)
				if _, err := h.HashReader(r); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNewSalted(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		saltsum.NewSalted("bench")
	}
}
