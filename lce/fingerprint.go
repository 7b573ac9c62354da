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

package lce

import (
	"github.com/abhillman/lce-test/internal"
)

// fingerprinter computes Rabin-Karp fingerprints of the packed text
// modulo 2^127-1. The fingerprint of a bit string b_0..b_{k-1} is the
// value sum(b_i * 2^(k-1-i)) mod p, so appending a bit doubles the
// fingerprint and adds the bit. One checkpoint per blockBits-sized block
// makes any prefix fingerprint an O(1) lookup plus at most one window
// read; because 2^127 is congruent to 1 modulo p, extending a checkpoint
// by a whole block is a single modular addition.
type fingerprinter struct {
	text        *bitText
	checkpoints []internal.Uint128
}

func newFingerprinter(text *bitText) *fingerprinter {
	blocks := text.bits / blockBits
	f := &fingerprinter{
		text:        text,
		checkpoints: make([]internal.Uint128, blocks),
	}
	acc := internal.Uint128{}
	for k := uint64(0); k < blocks; k++ {
		block := internal.Reduce(text.window(k*blockBits, blockBits))
		acc = internal.AddMod(acc, block)
		f.checkpoints[k] = acc
	}
	return f
}

// prefix returns the fingerprint of the first off bits of the packed
// text.
func (f *fingerprinter) prefix(off uint64) internal.Uint128 {
	k := off / blockBits
	r := off % blockBits
	var base internal.Uint128
	if k > 0 {
		base = f.checkpoints[k-1]
	}
	if r == 0 {
		return base
	}
	partial := f.text.window(k*blockBits, uint(r))
	return internal.AddMod(internal.MulMod(base, internal.Pow2(r)), partial)
}

// rangeFP returns the fingerprint of the bits in [lo, hi).
func (f *fingerprinter) rangeFP(lo, hi uint64) internal.Uint128 {
	if lo > hi {
		panic("range fingerprint bounds are inverted")
	}
	return internal.SubMod(f.prefix(hi), internal.MulMod(f.prefix(lo), internal.Pow2(hi-lo)))
}

// sizeInBits reports the storage of the checkpoint table.
func (f *fingerprinter) sizeInBits() uint64 {
	return uint64(len(f.checkpoints)) * 128
}
