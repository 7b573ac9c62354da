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

package internal

// Arithmetic modulo the Mersenne prime 2^127-1. The special shape of the
// modulus (all ones) turns division into shifts and masks: any 128-bit
// value v is congruent to (v & P) + (v >> 127), and 2^127 is congruent
// to 1, so powers of two repeat with period 127.

// MersenneExponent is the exponent of the modulus 2^127-1.
const MersenneExponent = 127

// MersenneP is the Mersenne prime 2^127-1.
var MersenneP = Uint128{Hi: 0x7fffffffffffffff, Lo: 0xffffffffffffffff}

var pow2Table = buildPow2Table()

func buildPow2Table() [MersenneExponent]Uint128 {
	var t [MersenneExponent]Uint128
	t[0] = Uint128From64(1)
	for i := 1; i < MersenneExponent; i++ {
		t[i] = AddMod(t[i-1], t[i-1])
	}
	return t
}

// AddMod returns (a+b) mod 2^127-1. Operands must already be reduced.
func AddMod(a, b Uint128) Uint128 {
	checkReduced(a)
	checkReduced(b)
	s := a.Add(b)
	if !s.Less(MersenneP) {
		s = s.Sub(MersenneP)
	}
	return s
}

// SubMod returns (a-b) mod 2^127-1. Operands must already be reduced.
func SubMod(a, b Uint128) Uint128 {
	if b.IsZero() {
		checkReduced(a)
		return a
	}
	return AddMod(a, MersenneP.Sub(b))
}

// MulMod returns (a*b) mod 2^127-1. Operands must already be reduced.
// The 256-bit product hi*2^128 + lo is folded once at bit 127, leaving a
// value below 2^128 that Reduce finishes off.
func MulMod(a, b Uint128) Uint128 {
	checkReduced(a)
	checkReduced(b)
	hi, lo := a.Mul(b)
	folded := lo.And(MersenneP).Add(hi.Lsh(1).Or(lo.Rsh(127)))
	return Reduce(folded)
}

// Reduce returns v mod 2^127-1 for any 128-bit v.
func Reduce(v Uint128) Uint128 {
	v = v.And(MersenneP).Add(v.Rsh(127))
	if !v.Less(MersenneP) {
		v = v.Sub(MersenneP)
	}
	return v
}

// Pow2 returns 2^e mod 2^127-1 for any exponent e. Because 2^127 is
// congruent to 1 modulo the prime, the result depends only on e mod 127
// and comes from a precomputed table.
func Pow2(e uint64) Uint128 {
	return pow2Table[e%MersenneExponent]
}

func checkReduced(v Uint128) {
	if !v.Less(MersenneP) {
		panic("operand must be reduced modulo 2^127-1, got " + v.String())
	}
}
