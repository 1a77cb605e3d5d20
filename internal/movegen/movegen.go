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

// Package movegen generates pseudo-legal and legal moves for a position
// (spec.md §4.4): bitboard attack tables for every piece type, castle
// generation, and the make/check/undo legality filter. It takes a
// *position.Position as a parameter rather than a receiver, mirroring the
// teacher's own movegen/position split, so the two packages never import
// each other.
package movegen

import (
	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

// GenMode selects which subset of moves Generate produces, mirroring the
// teacher's GenAll/GenCapture/GenNonCapture split. GenCapturesOnly keeps
// captures only (en passant and capturing promotions included; promotions
// onto an empty square are left out) and backs the quiescence search.
type GenMode int

const (
	GenAll GenMode = iota
	GenCapturesOnly
)

// pseudoMoves appends every pseudo-legal move for side to out, without any
// king-safety filtering, per spec.md §4.4.1.
func pseudoMoves(pos *position.Position, side Color, out *[]move.Move) {
	generatePawnMoves(pos, side, out)
	generateKnightMoves(pos, side, out)
	generateBishopMoves(pos, side, out)
	generateRookMoves(pos, side, out)
	generateQueenMoves(pos, side, out)
	generateKingMoves(pos, side, out)
	generateCastleMoves(pos, side, out)
}

// isCapture reports whether m, played from the position's current state,
// lands on an occupied enemy square or is an en-passant capture - used to
// restrict generation to the quiescence search's capture-only mode.
func isCapture(pos *position.Position, m move.Move, side Color) bool {
	if m.Kind() == move.EnPassant {
		return true
	}
	var to Square
	if m.Kind() == move.Promotion {
		_, to, _ = m.DecodePromotion(side)
	} else {
		_, to = m.Decode()
	}
	return pos.OccupiedBy(side.Flip())&to.Bb() != 0
}

// Generate returns every legal move available to the side to move in pos
// (spec.md §4.4): pseudo-moves and castles are generated first, then each
// is made, checked for leaving its own king attacked, and undone - only
// moves that pass survive.
func Generate(pos *position.Position, mode GenMode) []move.Move {
	side := pos.Side()
	pseudo := make([]move.Move, 0, 48)
	pseudoMoves(pos, side, &pseudo)

	legal := make([]move.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if mode == GenCapturesOnly && !isCapture(pos, m, side) {
			continue
		}
		pos.Make(m)
		if !InCheck(pos, side) {
			legal = append(legal, m)
		}
		pos.Undo()
	}
	return legal
}

// HasLegalMoves reports whether side to move has at least one legal move,
// short-circuiting as soon as one is found - used by search/eval to detect
// checkmate and stalemate (spec.md §5.3) without building the full list.
func HasLegalMoves(pos *position.Position) bool {
	side := pos.Side()
	pseudo := make([]move.Move, 0, 48)
	pseudoMoves(pos, side, &pseudo)
	for _, m := range pseudo {
		pos.Make(m)
		ok := !InCheck(pos, side)
		pos.Undo()
		if ok {
			return true
		}
	}
	return false
}
