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
	"fmt"

	"github.com/abhillman/lce-test/internal"
)

// blockBits is the width of one fingerprint block, the exponent of the
// Mersenne modulus.
const blockBits = internal.MersenneExponent

// bitText is the packed encoding of a text: codeBits bits per character,
// most significant bit first, preceded by just enough zero bits to make
// the total a multiple of blockBits. Two guard words follow the payload
// so any window of up to blockBits bits can be read without bounds
// branches.
type bitText struct {
	words []uint64
	bits  uint64
	pad   uint64
}

func newBitText(text []byte, alph *alphabet) *bitText {
	contentBits := uint64(len(text)) * uint64(alph.codeBits)
	pad := (blockBits - contentBits%blockBits) % blockBits
	bits := contentBits + pad

	b := &bitText{
		words: make([]uint64, (bits+63)/64+2),
		bits:  bits,
		pad:   pad,
	}
	off := pad
	for _, c := range text {
		b.setBits(off, alph.codeBits, alph.code(c))
		off += uint64(alph.codeBits)
	}
	return b
}

// setBits places the width low bits of v into the stream so that the most
// significant bit of the field lands at bit position off. Fields never
// overlap during construction, so writes can simply OR into the zeroed
// words.
func (b *bitText) setBits(off uint64, width uint, v uint64) {
	w := off >> 6
	r := off & 63
	if r+uint64(width) <= 64 {
		b.words[w] |= v << (64 - r - uint64(width))
		return
	}
	spill := r + uint64(width) - 64
	b.words[w] |= v >> spill
	b.words[w+1] |= v << (64 - spill)
}

// window returns the length bits starting at bit position off,
// right-aligned. Windows are at most blockBits wide and may straddle up
// to three storage words.
func (b *bitText) window(off uint64, length uint) internal.Uint128 {
	if length == 0 {
		return internal.Uint128{}
	}
	if uint64(length) > blockBits || off+uint64(length) > b.bits {
		panic(fmt.Sprintf("window [%d, %d+%d) outside packed text of %d bits", off, off, length, b.bits))
	}
	w := off >> 6
	r := uint(off & 63)
	x := internal.Uint128{Hi: b.words[w], Lo: b.words[w+1]}
	if r+length <= 128 {
		return x.Rsh(128 - r - length).And(lowMask(length))
	}
	spill := r + length - 128
	head := x.And(lowMask(128 - r))
	tail := b.words[w+2] >> (64 - spill)
	return head.Lsh(spill).Or(internal.Uint128From64(tail))
}

// sizeInBits reports the allocated storage of the packed text.
func (b *bitText) sizeInBits() uint64 {
	return uint64(len(b.words)) * 64
}

// lowMask returns a mask of the k lowest bits, for k up to 128.
func lowMask(k uint) internal.Uint128 {
	return internal.Uint128From64(1).Lsh(k).Sub(internal.Uint128From64(1))
}
