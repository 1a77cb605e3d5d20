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

// emitTargets appends one Normal move per set bit in targets, from -> each.
func emitTargets(from Square, targets Bitboard, out *[]move.Move) {
	popSquares(targets, func(to Square) {
		*out = append(*out, move.NewNormal(from, to))
	})
}

// allies returns the set of squares a piece may not land on: its own side's
// pieces plus the enemy king, which can never legally be captured (spec.md
// §4.4.1's generation rule for knights/kings/sliders).
func allies(pos *position.Position, side Color) Bitboard {
	return pos.OccupiedBy(side) | pos.Board(MakePiece(side.Flip(), King))
}

func generateKnightMoves(pos *position.Position, side Color, out *[]move.Move) {
	notOwn := ^allies(pos, side)
	popSquares(pos.Board(MakePiece(side, Knight)), func(from Square) {
		emitTargets(from, masks.KnightAttacks[from]&notOwn, out)
	})
}

func generateBishopMoves(pos *position.Position, side Color, out *[]move.Move) {
	occ := pos.Occupied()
	notOwn := ^allies(pos, side)
	popSquares(pos.Board(MakePiece(side, Bishop)), func(from Square) {
		emitTargets(from, bishopAttacks(from, occ)&notOwn, out)
	})
}

func generateRookMoves(pos *position.Position, side Color, out *[]move.Move) {
	occ := pos.Occupied()
	notOwn := ^allies(pos, side)
	popSquares(pos.Board(MakePiece(side, Rook)), func(from Square) {
		emitTargets(from, rookAttacks(from, occ)&notOwn, out)
	})
}

func generateQueenMoves(pos *position.Position, side Color, out *[]move.Move) {
	occ := pos.Occupied()
	notOwn := ^allies(pos, side)
	popSquares(pos.Board(MakePiece(side, Queen)), func(from Square) {
		emitTargets(from, queenAttacks(from, occ)&notOwn, out)
	})
}

func generateKingMoves(pos *position.Position, side Color, out *[]move.Move) {
	notOwn := ^allies(pos, side)
	kingSq := pos.KingSquare(side)
	if kingSq == NoSquare {
		return
	}
	emitTargets(kingSq, masks.KingAttacks[kingSq]&notOwn, out)
}
