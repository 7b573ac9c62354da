package lce

import (
	"encoding/binary"
	"errors"
	"math/bits"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"

	"github.com/abhillman/lce-test/internal"
)

// MaxLceExp caps the workload buckets: pairs whose answer needs more
// than MaxLceExp bits all land in the last bucket.
const MaxLceExp = 20

// QueryPair is one LCE query, a pair of text positions.
type QueryPair struct {
	I uint64
	J uint64
}

// Workload is a reproducible set of LCE queries stratified by answer
// magnitude. Bucket x holds pairs whose LCE has bit width x: bucket 0
// holds answers of zero, bucket 0 < x < MaxLceExp answers in
// [2^(x-1), 2^x), and the last bucket everything wider. Pairs come from
// adjacent positions of a suffix-sorted sample, which makes the large
// buckets reachable even on texts where random pairs almost never share
// a long prefix.
type Workload struct {
	// TextChecksum ties the workload to the text it was generated for.
	TextChecksum uint64
	Buckets      [MaxLceExp + 1][]QueryPair
}

// NewWorkload builds a workload from sampleCount positions drawn
// deterministically from seed, keeping at most perBucket pairs per
// bucket. The same index, seed, and limits always produce the same
// workload.
func NewWorkload(idx *Index, seed uint64, sampleCount, perBucket int) (*Workload, error) {
	if sampleCount < 2 {
		return nil, errors.New("sample count must be at least 2")
	}
	if perBucket < 1 {
		return nil, errors.New("per-bucket limit must be at least 1")
	}

	positions := samplePositions(idx.Length(), seed, sampleCount)
	if err := idx.SortSuffixes(positions); err != nil {
		return nil, err
	}

	w := &Workload{TextChecksum: Checksum(idx)}
	prev := positions[0]
	for _, cur := range positions[1:] {
		if cur == prev {
			continue
		}
		l, err := idx.LCE(prev, cur)
		if err != nil {
			return nil, err
		}
		x := internal.Min(uint64(bits.Len64(l)), MaxLceExp)
		if len(w.Buckets[x]) < perBucket {
			w.Buckets[x] = append(w.Buckets[x], QueryPair{I: prev, J: cur})
		}
		prev = cur
	}
	return w, nil
}

// Size returns the total number of queries across all buckets.
func (w *Workload) Size() int {
	total := 0
	for _, b := range w.Buckets {
		total += len(b)
	}
	return total
}

// Pairs returns all queries of the workload in bucket order.
func (w *Workload) Pairs() []QueryPair {
	out := make([]QueryPair, 0, w.Size())
	for _, b := range w.Buckets {
		out = append(out, b...)
	}
	return out
}

// AnswerDigest runs every query of the workload against the index and
// folds the answers into a single value. Equal digests across runs or
// machines mean every query got the same answer.
func (w *Workload) AnswerDigest(idx *Index, seed uint64) (uint64, error) {
	d := xxhash.NewWithSeed(seed)
	var buf [8]byte
	for _, q := range w.Pairs() {
		l, err := idx.LCE(q.I, q.J)
		if err != nil {
			return 0, err
		}
		binary.LittleEndian.PutUint64(buf[:], l)
		if _, err := d.Write(buf[:]); err != nil {
			return 0, err
		}
	}
	return d.Sum64(), nil
}

// Checksum hashes the decoded text of an index. A workload only replays
// meaningfully against an index whose checksum matches.
func Checksum(idx *Index) uint64 {
	raw := make([]byte, idx.Length())
	for i := range raw {
		c, err := idx.Access(uint64(i))
		if err != nil {
			panic("unexpected error: " + err.Error())
		}
		raw[i] = c
	}
	return xxhash.Sum64(raw)
}

// samplePositions derives count positions in [0, n) from seed using a
// counter-mode hash, so the sample is stable across platforms and runs.
func samplePositions(n uint64, seed uint64, count int) []uint64 {
	positions := make([]uint64, 0, count)
	var buf [8]byte
	for c := uint64(0); len(positions) < count; c++ {
		binary.LittleEndian.PutUint64(buf[:], c)
		h1, h2 := murmur3.SeedSum128(seed, seed, buf[:])
		positions = append(positions, h1%n)
		if len(positions) < count {
			positions = append(positions, h2%n)
		}
	}
	return positions
}
