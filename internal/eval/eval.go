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

// Package eval implements the static position evaluation spec.md §4.7
// describes: signed material + piece-square scoring from white's
// perspective, negated for the side to move, plus terminal checkmate/
// stalemate detection. Weights are read from internal/config so
// config.toml's [Eval] section has a real consumer, the way the teacher's
// evalConfiguration knobs feed internal/evaluator.
package eval

import (
	"github.com/kopp/chessgo/internal/config"
	"github.com/kopp/chessgo/internal/movegen"
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

func pieceValue(pt PieceType) Value {
	switch pt {
	case Pawn:
		return Value(config.Settings.Eval.PawnValue)
	case Knight:
		return Value(config.Settings.Eval.KnightValue)
	case Bishop:
		return Value(config.Settings.Eval.BishopValue)
	case Rook:
		return Value(config.Settings.Eval.RookValue)
	case Queen:
		return Value(config.Settings.Eval.QueenValue)
	default:
		return 0
	}
}

// Evaluate scores pos from the side-to-move's perspective (spec.md §4.7):
// material plus piece-square bonuses computed from white's point of view,
// negated for black, terminal checkmate/stalemate scoring when side to
// move has no legal move.
func Evaluate(pos *position.Position) Value {
	if !movegen.HasLegalMoves(pos) {
		if movegen.InCheck(pos, pos.Side()) {
			return -CheckmateValue
		}
		return StalemateValue
	}

	var value Value
	for pt := Pawn; pt < King; pt++ {
		value += Value(popcount(pos.Board(MakePiece(White, pt)))) * pieceValue(pt)
		value -= Value(popcount(pos.Board(MakePiece(Black, pt)))) * pieceValue(pt)
	}

	if config.Settings.Eval.UsePSQT {
		value += psqtScore(pos)
	}

	if pos.Side() == Black {
		value = -value
	}
	value += Value(config.Settings.Eval.Tempo)

	return value
}

func psqtScore(pos *position.Position) Value {
	var score Value
	grid := pos.Mailbox()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pc := grid[row][col]
			if pc == Empty {
				continue
			}
			pt := pc.Type()
			idx := psqtIndex(row, col, pc.Color() == Black)
			bonus := Value(psqt[pt][idx])
			if pc.Color() == White {
				score += bonus
			} else {
				score -= bonus
			}
		}
	}
	return score
}

func popcount(b Bitboard) int {
	n := 0
	for b != 0 {
		n++
		b &= b - 1
	}
	return n
}
