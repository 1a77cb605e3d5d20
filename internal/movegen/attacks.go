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
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

// popSquares calls fn for every set square in b, lowest bit first.
func popSquares(b Bitboard, fn func(Square)) {
	v := uint64(b)
	for v != 0 {
		i := bitops.PopLsb(&v)
		fn(SquareFromBitIndex(i))
	}
}

// pawnAttacksOf returns the diagonal capture squares of every pawn of color
// c in pawns, regardless of whether anything actually occupies them -
// exactly the template unsafeFor needs (spec.md §4.4.3): a square is unsafe
// if a pawn could capture there, whether or not it is presently occupied.
func pawnAttacksOf(pawns Bitboard, c Color) Bitboard {
	if c == White {
		return shiftNE(pawns) | shiftNW(pawns)
	}
	return shiftSE(pawns) | shiftSW(pawns)
}

func shiftNE(b Bitboard) Bitboard { return (b &^ masks.FileMask[7]) << 7 }
func shiftNW(b Bitboard) Bitboard { return (b &^ masks.FileMask[0]) << 9 }
func shiftSE(b Bitboard) Bitboard { return (b &^ masks.FileMask[7]) >> 9 }
func shiftSW(b Bitboard) Bitboard { return (b &^ masks.FileMask[0]) >> 7 }
func shiftNorth(b Bitboard) Bitboard { return b << 8 }
func shiftSouth(b Bitboard) Bitboard { return b >> 8 }

// UnsafeFor returns every square attacked by the opponent of side - the
// "unsafe squares" routine spec.md §4.4.3 describes, used both for king
// safety legality filtering and for castle-path checks. It is computed
// exactly like pseudo-move generation but without masking out the
// attacker's own pieces: a slider's first blocker in each direction is
// still a square it "covers", whoever stands there.
func UnsafeFor(pos *position.Position, side Color) Bitboard {
	attacker := side.Flip()
	occ := pos.Occupied()
	var att Bitboard

	att |= pawnAttacksOf(pos.Board(MakePiece(attacker, Pawn)), attacker)

	popSquares(pos.Board(MakePiece(attacker, Knight)), func(sq Square) {
		att |= masks.KnightAttacks[sq]
	})
	popSquares(pos.Board(MakePiece(attacker, Bishop)), func(sq Square) {
		att |= bishopAttacks(sq, occ)
	})
	popSquares(pos.Board(MakePiece(attacker, Rook)), func(sq Square) {
		att |= rookAttacks(sq, occ)
	})
	popSquares(pos.Board(MakePiece(attacker, Queen)), func(sq Square) {
		att |= queenAttacks(sq, occ)
	})
	popSquares(pos.Board(MakePiece(attacker, King)), func(sq Square) {
		att |= masks.KingAttacks[sq]
	})

	return att
}

// InCheck reports whether side's king currently sits on an attacked square.
func InCheck(pos *position.Position, side Color) bool {
	kingSq := pos.KingSquare(side)
	if kingSq == NoSquare {
		return false
	}
	return UnsafeFor(pos, side)&kingSq.Bb() != 0
}
