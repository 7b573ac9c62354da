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

// engine answers longest-common-extension queries on the packed bit
// stream. The first blockBits bits of the two suffixes are compared
// exactly with one XOR, so any short mismatch is found without hashing;
// only longer matches fall back to a binary search over range
// fingerprints, where equal fingerprints are taken as equal bits. A
// fingerprint comparison of a range of m bits errs with probability less
// than m/2^126, so even across the O(log n) probes of a query the chance
// of a wrong answer stays negligible.
type engine struct {
	text *bitText
	fp   *fingerprinter
}

// lceBits returns the number of leading bits shared by the bit-suffixes
// starting at offsets i and j of the packed text.
func (e *engine) lceBits(i, j uint64) uint64 {
	if i == j {
		return e.text.bits - i
	}
	bound := internal.Min(e.text.bits-i, e.text.bits-j)

	probe := uint(internal.Min(blockBits, bound))
	wi := e.text.window(i, probe)
	wj := e.text.window(j, probe)
	if x := wi.Xor(wj); !x.IsZero() {
		return uint64(x.LeadingZeros() - (128 - int(probe)))
	}
	if uint64(probe) == bound {
		return bound
	}

	// The first probe bits are verified; grow the verified prefix by
	// halving the unverified remainder until it is empty.
	lo, hi := uint64(probe), bound
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if e.fp.rangeFP(i, i+mid) == e.fp.rangeFP(j, j+mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
