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
	"github.com/kopp/chessgo/internal/masks"
	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

var promoLetters = map[Color][4]byte{
	White: {'Q', 'R', 'B', 'N'},
	Black: {'q', 'r', 'b', 'n'},
}

// emitPawnMove appends a Normal move, or all four Promotion variants when to
// lands on the mover's back rank (spec.md §6.1's promoted-piece codes).
func emitPawnMove(side Color, from, to Square, out *[]move.Move) {
	backRank := 0
	if side == Black {
		backRank = 7
	}
	if to.Row() == backRank {
		for _, letter := range promoLetters[side] {
			*out = append(*out, move.NewPromotion(side, from.Col(), to.Col(), letter))
		}
		return
	}
	*out = append(*out, move.NewNormal(from, to))
}

// generatePawnMoves implements spec.md §4.4.1's pawn pseudo-move recipe:
// single/double pushes, diagonal captures, promotions and en-passant. White
// and black are handled by separate, explicit row arithmetic rather than a
// shared shift abstraction - the row deltas mirror but the promotion/home
// ranks don't, and keeping them apart reads far more plainly than threading
// direction through higher-order functions.
func generatePawnMoves(pos *position.Position, side Color, out *[]move.Move) {
	pawns := pos.Board(MakePiece(side, Pawn))
	empty := ^pos.Occupied()
	enemy := pos.OccupiedBy(side.Flip())

	if side == White {
		single := shiftNorth(pawns) & empty
		double := shiftNorth(single) & empty & masks.Rank4Mask
		capNE := shiftNE(pawns) & enemy
		capNW := shiftNW(pawns) & enemy

		popSquares(single, func(to Square) { emitPawnMove(side, NewSquare(to.Row()+1, to.Col()), to, out) })
		popSquares(double, func(to Square) { *out = append(*out, move.NewNormal(NewSquare(to.Row()+2, to.Col()), to)) })
		popSquares(capNE, func(to Square) { emitPawnMove(side, NewSquare(to.Row()+1, to.Col()-1), to, out) })
		popSquares(capNW, func(to Square) { emitPawnMove(side, NewSquare(to.Row()+1, to.Col()+1), to, out) })
	} else {
		single := shiftSouth(pawns) & empty
		double := shiftSouth(single) & empty & masks.Rank5Mask
		capSE := shiftSE(pawns) & enemy
		capSW := shiftSW(pawns) & enemy

		popSquares(single, func(to Square) { emitPawnMove(side, NewSquare(to.Row()-1, to.Col()), to, out) })
		popSquares(double, func(to Square) { *out = append(*out, move.NewNormal(NewSquare(to.Row()-2, to.Col()), to)) })
		popSquares(capSE, func(to Square) { emitPawnMove(side, NewSquare(to.Row()-1, to.Col()-1), to, out) })
		popSquares(capSW, func(to Square) { emitPawnMove(side, NewSquare(to.Row()-1, to.Col()+1), to, out) })
	}

	generateEnPassant(pos, side, out)
}

// generateEnPassant looks directly at the position's stored en-passant file
// mask rather than the raw shift-and-intersect formula spec.md §4.4.1
// spells out: given the target file, any pawn of side sitting on the
// en-passant rank in an adjacent file can capture onto that file on the
// rank behind it. This is mathematically equivalent to the shift formula
// but reads as plain adjacency, which is far easier to get right by hand
// than re-deriving another pair of shift masks.
func generateEnPassant(pos *position.Position, side Color, out *[]move.Move) {
	epFile := pos.EnPassant()
	if epFile == 0 {
		return
	}
	fromRow := 3
	if side == Black {
		fromRow = 4
	}
	pawns := pos.Board(MakePiece(side, Pawn))
	for col := 0; col < 8; col++ {
		if epFile&masks.FileMask[col] == 0 {
			continue
		}
		for _, fromCol := range []int{col - 1, col + 1} {
			if fromCol < 0 || fromCol > 7 {
				continue
			}
			from := NewSquare(fromRow, fromCol)
			if pawns&from.Bb() == 0 {
				continue
			}
			*out = append(*out, move.NewEnPassant(side, fromCol, col))
		}
	}
}
