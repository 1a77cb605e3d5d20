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

package movegen

import (
	"github.com/kopp/chessgo/internal/bitops"
	"github.com/kopp/chessgo/internal/masks"
	. "github.com/kopp/chessgo/internal/types"
)

// lineAttacks computes sliding attacks along one line (rank, file, diagonal
// or anti-diagonal) through sq, given the full board occupancy, using the
// "o minus 2s" Hyperbola Quintessence trick spec.md §4.4.1 prescribes
// instead of the magic-bitboard lookup the teacher itself uses. occupancy
// is masked to the line first (not only for file/diag/antidiag as the
// spec's shorthand literally reads, but uniformly for the rank case too) -
// this is the well-known, carry-safe form of the algorithm and yields the
// exact same final result once the spec's own closing "masked back to the
// piece's line" step is applied, while being far less error-prone to derive
// by hand than relying on accidental non-propagation of rank-local borrows.
func lineAttacks(sq Square, occ Bitboard, lineMask Bitboard) Bitboard {
	s := uint64(sq.Bb())
	o := uint64(occ) & uint64(lineMask)

	forward := o - 2*s
	reverseOcc := bitops.Reverse(o)
	reverseS := bitops.Reverse(s)
	reverseForward := reverseOcc - 2*reverseS
	reverse := bitops.Reverse(reverseForward)

	return Bitboard(forward^reverse) & lineMask
}

// bishopAttacks returns the full diagonal + anti-diagonal attack set.
func bishopAttacks(sq Square, occ Bitboard) Bitboard {
	return lineAttacks(sq, occ, masks.DiagOf[sq]) | lineAttacks(sq, occ, masks.ADiagOf[sq])
}

// rookAttacks returns the full rank + file attack set.
func rookAttacks(sq Square, occ Bitboard) Bitboard {
	return lineAttacks(sq, occ, masks.RankOf[sq]) | lineAttacks(sq, occ, masks.FileOf[sq])
}

// queenAttacks returns the union of bishop and rook attacks.
func queenAttacks(sq Square, occ Bitboard) Bitboard {
	return bishopAttacks(sq, occ) | rookAttacks(sq, occ)
}
