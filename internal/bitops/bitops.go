/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package bitops implements the raw 64-bit bitwise primitives the rest of
// the engine builds on: population count, least-significant-bit scanning,
// bit reversal. Everything here treats its argument as an unsigned 64-bit
// word; shifts are logical, never arithmetic, and subtraction/negation wrap
// modulo 2^64 the way the real hardware instruction does - there is no
// "mask back to 64 bits" step required because Go's uint64 already is one.
package bitops

import "math/bits"

// Popcount returns the number of set bits.
func Popcount(b uint64) int {
	return bits.OnesCount64(b)
}

// LsbIndex returns the bit index (0=LSB..63=MSB) of the lowest set bit.
// Undefined (returns 64) when b is zero.
func LsbIndex(b uint64) int {
	return bits.TrailingZeros64(b)
}

// IsolateLsb returns a word with only the lowest set bit of b retained.
func IsolateLsb(b uint64) uint64 {
	return b & (-b)
}

// ClearLsb returns b with its lowest set bit cleared.
func ClearLsb(b uint64) uint64 {
	return b & (b - 1)
}

// Reverse reverses the bit order of a 64-bit word: bit 0 becomes bit 63.
func Reverse(b uint64) uint64 {
	return bits.Reverse64(b)
}

// PopLsb clears and returns the index of the lowest set bit in *b.
func PopLsb(b *uint64) int {
	i := LsbIndex(*b)
	*b = ClearLsb(*b)
	return i
}
