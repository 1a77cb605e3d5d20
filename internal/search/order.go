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

package search

import (
	"sort"

	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

// pieceRank approximates material value for MVV-LVA scoring; only the
// relative ordering between piece types matters here, not the exact
// centipawn weight (that lives in internal/eval and is config-driven).
var pieceRank = [6]int{1, 3, 3, 5, 9, 20}

// isCaptureMove reports whether m, played by side from pos's current state,
// removes an enemy piece - en-passant always does, a promotion or normal
// move does when its destination holds an enemy piece.
func isCaptureMove(pos *position.Position, m move.Move, side Color) bool {
	if m.Kind() == move.EnPassant {
		return true
	}
	_, to := m.Endpoints(side)
	return pos.OccupiedBy(side.Flip())&to.Bb() != 0
}

// victimAndAttacker returns the piece types involved in a capture move, for
// MVV-LVA scoring. For en-passant the victim is always a pawn.
func victimAndAttacker(pos *position.Position, m move.Move, side Color) (victim, attacker PieceType) {
	from, to := m.Endpoints(side)
	attacker = pos.PieceAt(from).Type()
	if m.Kind() == move.EnPassant {
		return Pawn, attacker
	}
	return pos.PieceAt(to).Type(), attacker
}

// orderMoves sorts legal in place per spec.md §4.8 step 4: PV/TT move
// first, then captures by MVV-LVA, then killer moves at this ply, then the
// rest by history score - all in one descending sort over a single combined
// score so the four tiers never need separate slices.
func (s *Search) orderMoves(pos *position.Position, legal []move.Move, ply int, ttMove move.Move) {
	side := pos.Side()
	k0, k1 := s.killers[ply][0], s.killers[ply][1]

	type scored struct {
		m     move.Move
		score int
	}
	list := make([]scored, len(legal))
	for i, m := range legal {
		var sc int
		switch {
		case ttMove != (move.Move{}) && m == ttMove:
			sc = 1_000_000
		case isCaptureMove(pos, m, side):
			victim, attacker := victimAndAttacker(pos, m, side)
			sc = 100_000 + pieceRank[victim]*10 - pieceRank[attacker]
		case m == k0:
			sc = 90_001
		case m == k1:
			sc = 90_000
		default:
			from, to := m.Endpoints(side)
			sc = int(s.history[from][to])
			if sc >= 90_000 { // keep history scores below the killer tier
				sc = 89_999
			}
		}
		list[i] = scored{m, sc}
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})
	for i, e := range list {
		legal[i] = e.m
	}
}
