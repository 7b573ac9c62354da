package lce

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkNewIndex(b *testing.B) {
	sizes := []int{1 << 12, 1 << 16}
	for _, size := range sizes {
		b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
			text := randomText(rand.New(rand.NewSource(71)), size, 26)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := NewIndex(text); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAccess(b *testing.B) {
	text := randomText(rand.New(rand.NewSource(72)), 1<<16, 26)
	idx, err := NewIndex(text)
	require.NoError(b, err)

	r := rand.New(rand.NewSource(73))
	positions := make([]uint64, 1024)
	for i := range positions {
		positions[i] = uint64(r.Int63n(int64(idx.Length())))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := idx.Access(positions[i&1023]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLCE(b *testing.B) {
	text := randomText(rand.New(rand.NewSource(74)), 1<<16, 4)
	idx, err := NewIndex(text)
	require.NoError(b, err)

	w, err := NewWorkload(idx, 9001, 4096, 256)
	require.NoError(b, err)
	pairs := w.Pairs()
	require.NotEmpty(b, pairs)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pairs[i%len(pairs)]
		if _, err := idx.LCE(q.I, q.J); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLCENaive(b *testing.B) {
	text := randomText(rand.New(rand.NewSource(75)), 1<<16, 26)
	idx, err := NewIndex(text)
	require.NoError(b, err)

	w, err := NewWorkload(idx, 9001, 4096, 256)
	require.NoError(b, err)
	pairs := w.Pairs()
	require.NotEmpty(b, pairs)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pairs[i%len(pairs)]
		if _, err := idx.LCENaive(q.I, q.J); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsSmallerSuffix(b *testing.B) {
	text := randomText(rand.New(rand.NewSource(76)), 1<<16, 4)
	idx, err := NewIndex(text)
	require.NoError(b, err)

	r := rand.New(rand.NewSource(77))
	pairs := make([]QueryPair, 1024)
	for i := range pairs {
		pairs[i] = QueryPair{
			I: uint64(r.Int63n(int64(idx.Length()))),
			J: uint64(r.Int63n(int64(idx.Length()))),
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := pairs[i&1023]
		if _, err := idx.IsSmallerSuffix(q.I, q.J); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSortSuffixes(b *testing.B) {
	sizes := []int{1 << 8, 1 << 12}
	text := randomText(rand.New(rand.NewSource(78)), 1<<16, 4)
	idx, err := NewIndex(text)
	require.NoError(b, err)

	for _, size := range sizes {
		b.Run("positions="+strconv.Itoa(size), func(b *testing.B) {
			r := rand.New(rand.NewSource(79))
			original := make([]uint64, size)
			for i := range original {
				original[i] = uint64(r.Int63n(int64(idx.Length())))
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				positions := make([]uint64, len(original))
				copy(positions, original)
				if err := idx.SortSuffixes(positions); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
