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

// alphabet maps the distinct byte values of a text onto dense codes so
// the text packs into ceil(log2(sigma)) bits per character. Codes are
// assigned in order of first occurrence; lexicographic comparisons always
// go through the decoded byte values, so the assignment order never shows.
type alphabet struct {
	codeOf   [256]uint8
	byteOf   []byte
	sigma    int
	codeBits uint
}

func newAlphabet(text []byte) *alphabet {
	var seen [256]bool
	a := &alphabet{}
	for _, c := range text {
		if !seen[c] {
			seen[c] = true
			a.codeOf[c] = uint8(len(a.byteOf))
			a.byteOf = append(a.byteOf, c)
		}
	}
	a.sigma = internal.CeilPowerOf2(len(a.byteOf))
	bitsPerCode, err := internal.ExactLog2(a.sigma)
	if err != nil {
		panic("unexpected error: " + err.Error())
	}
	a.codeBits = uint(internal.Max(bitsPerCode, 1))
	return a
}

// distinct returns the number of byte values that actually occur in the
// text, before rounding up to a power of two.
func (a *alphabet) distinct() int {
	return len(a.byteOf)
}

func (a *alphabet) code(c byte) uint64 {
	return uint64(a.codeOf[c])
}

func (a *alphabet) decode(code uint64) byte {
	return a.byteOf[code]
}
