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
	"github.com/kopp/chessgo/internal/config"
	"github.com/kopp/chessgo/internal/eval"
	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/movegen"
	"github.com/kopp/chessgo/internal/position"
	"github.com/kopp/chessgo/internal/tt"
	. "github.com/kopp/chessgo/internal/types"
)

// mateThreshold marks scores close enough to CheckmateValue that they must
// be ply-adjusted on the way into and out of the transposition table
// (spec.md §4.8's "mate scores are adjusted by ply").
const mateThreshold = CheckmateValue - Value(maxPly)

func isMateScore(v Value) bool {
	return v > mateThreshold || v < -mateThreshold
}

// valueToTT shifts a mate score found at ply plies from the search root so
// it is stored relative to the position itself, not the path that found it.
func valueToTT(v Value, ply int) Value {
	if !isMateScore(v) {
		return v
	}
	if v > 0 {
		return v + Value(ply)
	}
	return v - Value(ply)
}

// valueFromTT reverses valueToTT when an entry is read back at a possibly
// different ply than it was stored at.
func valueFromTT(v Value, ply int) Value {
	if !isMateScore(v) {
		return v
	}
	if v > 0 {
		return v - Value(ply)
	}
	return v + Value(ply)
}

// terminalValue scores a position with no legal moves (spec.md §4.7): mate
// if the side to move is in check, adjusted so shallower mates score
// higher in magnitude than deeper ones; stalemate otherwise.
func terminalValue(pos *position.Position, ply int) Value {
	if movegen.InCheck(pos, pos.Side()) {
		return -(CheckmateValue - Value(ply))
	}
	return StalemateValue
}

// negaMaxAB is the core routine spec.md §4.8 describes: TT probe, leaf
// dispatch to quiescence, legal move generation, ordered move loop with
// alpha-beta pruning, killer/history updates on cutoff, TT store and PV
// propagation.
func (s *Search) negaMaxAB(pos *position.Position, alpha, beta Value, depth, ply int) Value {
	s.nodes++
	if s.nodes&2047 == 0 && s.stopFlag.Load() {
		return alpha
	}

	origAlpha := alpha

	// 1. TT probe.
	var ttMove move.Move
	if config.Settings.Search.UseTT {
		if e := s.tt.Probe(pos.Hash()); e != nil {
			ttMove = e.Move
			if int(e.Depth) >= depth {
				v := valueFromTT(e.Value, ply)
				switch e.Flag {
				case tt.Exact:
					return v
				case tt.Lower:
					if v > alpha {
						alpha = v
					}
				case tt.Upper:
					if v < beta {
						beta = v
					}
				}
				if alpha >= beta {
					return v
				}
			}
		}
	}

	// 2. Leaf: hand off to quiescence search, or a plain static eval when
	// config.Settings.Search.Quiescence disables it.
	if depth == 0 {
		if config.Settings.Search.Quiescence {
			return s.quiescence(pos, alpha, beta, ply)
		}
		return eval.Evaluate(pos)
	}

	// 3. Legal moves; terminal if none.
	legal := movegen.Generate(pos, movegen.GenAll)
	if len(legal) == 0 {
		return terminalValue(pos, ply)
	}

	// 4. Order moves: PV/TT, captures by MVV-LVA, killers, history.
	s.orderMoves(pos, legal, ply, ttMove)

	bestValue := -Infinity
	bestMove := legal[0]

	// 5. Move loop.
	for _, m := range legal {
		pos.Make(m)
		value := -s.negaMaxAB(pos, -beta, -alpha, depth-1, ply+1)
		pos.Undo()

		if s.stopFlag.Load() && s.nodes&2047 == 0 {
			return alpha
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
		}
		if value > alpha {
			alpha = value
			s.updatePV(ply, m)
		}
		if alpha >= beta {
			s.stats.BetaCutoffs++
			if config.Settings.Search.UseTT {
				s.tt.Put(pos.Hash(), m, valueToTT(bestValue, ply), int8(depth), tt.Lower)
			}
			if config.Settings.Search.UseKillers && !isCaptureMove(pos, m, pos.Side()) {
				s.recordKiller(ply, m)
			}
			if config.Settings.Search.UseHistory && !isCaptureMove(pos, m, pos.Side()) {
				from, to := m.Endpoints(pos.Side())
				s.history[from][to] += int32(depth * depth)
			}
			// fail-soft: return the actual value found, not beta, matching
			// the unconditional bestValue return when the loop exhausts
			// without a cutoff (spec.md §4.8 step 5's "must be consistent").
			return bestValue
		}
	}

	// 6. Store in TT: exact if alpha improved within the original window,
	// upper bound if it never did.
	if config.Settings.Search.UseTT {
		flag := tt.Upper
		if alpha > origAlpha {
			flag = tt.Exact
		}
		s.tt.Put(pos.Hash(), bestMove, valueToTT(bestValue, ply), int8(depth), flag)
	}

	return bestValue
}

// quiescence extends the search along captures only, using a stand-pat
// evaluation as a lower bound (spec.md §4.8 step 2).
func (s *Search) quiescence(pos *position.Position, alpha, beta Value, ply int) Value {
	s.nodes++

	standPat := eval.Evaluate(pos)
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	if ply >= maxPly-1 {
		return standPat
	}

	captures := movegen.Generate(pos, movegen.GenCapturesOnly)
	if len(captures) == 0 {
		if movegen.HasLegalMoves(pos) {
			return standPat
		}
		return terminalValue(pos, ply)
	}

	s.orderMoves(pos, captures, ply, move.Move{})

	for _, m := range captures {
		pos.Make(m)
		value := -s.quiescence(pos, -beta, -alpha, ply+1)
		pos.Undo()

		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			return alpha
		}
	}
	return alpha
}

// recordKiller stores m as the most recent killer at ply, keeping the
// previous slot-0 killer in slot 1 (spec.md §4.8 step 5), skipping if m is
// already the top killer.
func (s *Search) recordKiller(ply int, m move.Move) {
	if s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

// updatePV stores m as the best move at ply and appends the child's PV
// line (spec.md §4.8 step 7): pvTable[ply][0] = m, pvTable[ply][1:] =
// pvTable[ply+1][:].
func (s *Search) updatePV(ply int, m move.Move) {
	line := make([]move.Move, 0, 1+len(s.pv[ply+1]))
	line = append(line, m)
	line = append(line, s.pv[ply+1]...)
	s.pv[ply] = line
}
