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

import (
	"fmt"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer held as two 64-bit limbs.
// The zero value is the number zero.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128From64 returns v widened to 128 bits.
func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Add returns x+y, wrapping at 2^128.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// Sub returns x-y, wrapping at 2^128.
func (x Uint128) Sub(y Uint128) Uint128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul64 returns the full 128-bit product of two 64-bit values.
func Mul64(x, y uint64) Uint128 {
	hi, lo := bits.Mul64(x, y)
	return Uint128{Hi: hi, Lo: lo}
}

// Mul returns the full 256-bit product x*y as a pair of 128-bit halves:
// the product equals hi*2^128 + lo.
func (x Uint128) Mul(y Uint128) (hi, lo Uint128) {
	p0h, p0l := bits.Mul64(x.Lo, y.Lo)
	p1h, p1l := bits.Mul64(x.Lo, y.Hi)
	p2h, p2l := bits.Mul64(x.Hi, y.Lo)
	p3h, p3l := bits.Mul64(x.Hi, y.Hi)

	r1, c1 := bits.Add64(p0h, p1l, 0)
	r1, c2 := bits.Add64(r1, p2l, 0)
	r2, c3 := bits.Add64(p1h, p2h, 0)
	r2, c4 := bits.Add64(r2, p3l, 0)
	r2, c5 := bits.Add64(r2, c1+c2, 0)
	r3 := p3h + c3 + c4 + c5

	return Uint128{Hi: r3, Lo: r2}, Uint128{Hi: r1, Lo: p0l}
}

// Lsh returns x<<n. Shift counts of 128 or more return zero.
func (x Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: x.Lo << (n - 64)}
	default:
		return Uint128{Hi: x.Hi<<n | x.Lo>>(64-n), Lo: x.Lo << n}
	}
}

// Rsh returns x>>n. Shift counts of 128 or more return zero.
func (x Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: x.Hi >> (n - 64)}
	default:
		return Uint128{Hi: x.Hi >> n, Lo: x.Lo>>n | x.Hi<<(64-n)}
	}
}

func (x Uint128) And(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo}
}

func (x Uint128) Or(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo}
}

func (x Uint128) Xor(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo}
}

// Cmp returns -1 if x < y, 0 if x == y, and +1 if x > y.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi < y.Hi || (x.Hi == y.Hi && x.Lo < y.Lo):
		return -1
	case x == y:
		return 0
	default:
		return 1
	}
}

func (x Uint128) Less(y Uint128) bool {
	return x.Hi < y.Hi || (x.Hi == y.Hi && x.Lo < y.Lo)
}

// BitLen returns the number of bits required to represent x; the bit
// length of zero is zero.
func (x Uint128) BitLen() int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}
	return bits.Len64(x.Lo)
}

// LeadingZeros returns the number of leading zero bits in x; the result
// is 128 for zero.
func (x Uint128) LeadingZeros() int {
	return 128 - x.BitLen()
}

func (x Uint128) String() string {
	if x.Hi == 0 {
		return fmt.Sprintf("0x%x", x.Lo)
	}
	return fmt.Sprintf("0x%x%016x", x.Hi, x.Lo)
}
