/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package lce provides a succinct longest-common-extension index.
//
// The index stores a text in ceil(log2(sigma)) bits per character plus a
// small table of Rabin-Karp fingerprint checkpoints modulo the Mersenne
// prime 2^127-1. It answers random-access queries in constant time and
// longest-common-extension and suffix-order queries in logarithmic time.
// Answers involving fingerprint comparisons are correct with very high
// probability rather than with certainty: two distinct ranges of m bits
// share a fingerprint with probability at most m/2^126 per comparison.
package lce

import (
	"errors"
	"math"
	"math/bits"
	"sort"

	"github.com/abhillman/lce-test/internal"
)

const maxAlphabet = 256

var (
	ErrEmptyInput       = errors.New("text must not be empty")
	ErrOutOfRange       = errors.New("position is out of range")
	ErrAlphabetTooLarge = errors.New("alphabet does not fit the packed code width")
)

// Index is a succinct longest-common-extension index over a fixed text.
// It is immutable after construction and safe for concurrent readers.
type Index struct {
	alph *alphabet
	text *bitText
	fp   *fingerprinter
	eng  *engine
	n    uint64
}

// NewIndex builds the index for the given text in O(n) time. The text is
// copied into the packed representation; the input slice is not retained.
func NewIndex(text []byte) (*Index, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	alph := newAlphabet(text)
	if alph.distinct() > maxAlphabet {
		return nil, ErrAlphabetTooLarge
	}
	bt := newBitText(text, alph)
	fp := newFingerprinter(bt)
	return &Index{
		alph: alph,
		text: bt,
		fp:   fp,
		eng:  &engine{text: bt, fp: fp},
		n:    uint64(len(text)),
	}, nil
}

// Length returns the number of characters in the indexed text.
func (x *Index) Length() uint64 {
	return x.n
}

// AlphabetSize returns the effective alphabet size, the number of
// distinct characters rounded up to a power of two.
func (x *Index) AlphabetSize() int {
	return x.alph.sigma
}

// SizeInBits returns the storage held by this index: the packed text,
// the fingerprint checkpoints, and the alphabet maps. The power table is
// shared by all indexes and not counted.
func (x *Index) SizeInBits() uint64 {
	alphabetBits := uint64(len(x.alph.codeOf))*8 + uint64(len(x.alph.byteOf))*8
	return x.text.sizeInBits() + x.fp.sizeInBits() + alphabetBits
}

// ErrorBound returns an upper bound on the probability that a single LCE
// query answers incorrectly: a query makes at most ceil(log2(bits))
// fingerprint comparisons, each over a range of at most bits bits, and a
// comparison of m bits collides with probability at most m/2^126.
func (x *Index) ErrorBound() float64 {
	comparisons := float64(bits.Len64(x.text.bits - 1))
	return math.Ldexp(comparisons*float64(x.text.bits), -126)
}

// Access returns the character at position i in O(1) time.
func (x *Index) Access(i uint64) (byte, error) {
	if i >= x.n {
		return 0, ErrOutOfRange
	}
	return x.at(i), nil
}

// LCE returns the length of the longest common prefix of the suffixes
// starting at positions i and j, in O(log n) time. The result is exact
// except with negligible probability; see the package comment.
func (x *Index) LCE(i, j uint64) (uint64, error) {
	if i >= x.n || j >= x.n {
		return 0, ErrOutOfRange
	}
	if i == j {
		return x.n - i, nil
	}
	matched := x.eng.lceBits(x.bitOffset(i), x.bitOffset(j))
	return matched / uint64(x.alph.codeBits), nil
}

// LCENaive returns the same quantity as LCE by direct character
// comparison in O(result) time. It exists as a deterministic reference;
// queries should use LCE.
func (x *Index) LCENaive(i, j uint64) (uint64, error) {
	if i >= x.n || j >= x.n {
		return 0, ErrOutOfRange
	}
	lce := uint64(0)
	for i+lce < x.n && j+lce < x.n && x.at(i+lce) == x.at(j+lce) {
		lce++
	}
	return lce, nil
}

// IsSmallerSuffix reports whether the suffix starting at position i is
// lexicographically smaller than the suffix starting at position j, in
// O(log n) time.
func (x *Index) IsSmallerSuffix(i, j uint64) (bool, error) {
	if i >= x.n || j >= x.n {
		return false, ErrOutOfRange
	}
	if i == j {
		return false, nil
	}
	l, err := x.LCE(i, j)
	if err != nil {
		return false, err
	}
	m := internal.Max(i, j)
	if l == x.n-m {
		// The shorter suffix is a prefix of the longer one.
		return i == m, nil
	}
	return x.at(i+l) < x.at(j+l), nil
}

// SortSuffixes sorts a set of text positions in place into the
// lexicographic order of the suffixes starting there, in O(k log k log n)
// time for k positions.
func (x *Index) SortSuffixes(positions []uint64) error {
	for _, p := range positions {
		if p >= x.n {
			return ErrOutOfRange
		}
	}
	sort.Slice(positions, func(a, b int) bool {
		less, err := x.IsSmallerSuffix(positions[a], positions[b])
		if err != nil {
			panic("unexpected error: " + err.Error())
		}
		return less
	})
	return nil
}

// at reads the character at a position already known to be in range.
func (x *Index) at(i uint64) byte {
	code := x.text.window(x.bitOffset(i), x.alph.codeBits)
	return x.alph.decode(code.Lo)
}

// bitOffset maps a character position to its bit position in the packed
// text.
func (x *Index) bitOffset(i uint64) uint64 {
	return x.text.pad + i*uint64(x.alph.codeBits)
}
