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

// Package search implements the engine's move search (spec.md §4.8):
// iterative deepening over a negamax/alpha-beta core with a transposition
// table, killer and history move ordering and a capture-only quiescence
// search at the leaves. The asynchronous StartSearch/StopSearch/IsSearching
// surface is grounded on search/search.go's semaphore-gated run loop, but
// the core recursion is the plain 7-step recipe spec.md §4.8 describes -
// unlike the teacher, it has no PVS and no null-move pruning, neither of
// which the spec calls for.
package search

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/kopp/chessgo/internal/config"
	"github.com/kopp/chessgo/internal/eval"
	"github.com/kopp/chessgo/internal/logging"
	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/movegen"
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
	"github.com/kopp/chessgo/internal/tt"
	"github.com/kopp/chessgo/internal/util"
)

var log = logging.GetLog("search")

// Infinity bounds the initial alpha-beta window; kept well under Value's
// int32 range so negating it never overflows.
const Infinity Value = 1 << 20

// Limits bounds one search call. MaxDepth <= 0 falls back to
// config.Settings.Search.MaxDepth (spec.md §4.8's DEPTH).
type Limits struct {
	MaxDepth int
}

// Result is what a completed (or stopped) search reports.
type Result struct {
	BestMove    move.Move
	Value       Value
	Depth       int
	Nodes       int64
	SearchTime  time.Duration
}

// Statistics holds search counters beyond the node count, which is reported
// in Result.Nodes; it records only the number of beta cutoffs. TT probe and
// hit counts are kept by the transposition table itself (tt.Table.Stats).
type Statistics struct {
	BetaCutoffs int64
}

// Search holds one instance's transposition table, killer/history tables
// and PV line; none of it is shared across concurrent searches (spec.md §5
// Concurrency & Resource Model).
type Search struct {
	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	tt *tt.Table

	killers [maxPly][2]move.Move
	history [64][64]int32
	pv      [maxPly][]move.Move

	// stopFlag is written by StopSearch on the host goroutine and read by
	// run/negaMaxAB on the search goroutine (spec.md §5's async contract),
	// so it needs an atomic, not a plain bool.
	stopFlag util.Bool
	nodes    int64
	stats    Statistics

	lastResult *Result
}

// maxPly bounds the killer/PV tables; iterative deepening never exceeds
// config.Settings.Search.MaxDepth plus quiescence's extra plies, and this
// is comfortably larger than any sane configured value.
const maxPly = 128

// NewSearch builds a Search with its own transposition table, sized from
// config.Settings.Search.TTSizeMB.
func NewSearch() *Search {
	return &Search{
		initSemaphore: semaphore.NewWeighted(1),
		isRunning:     semaphore.NewWeighted(1),
		tt:            tt.New(config.Settings.Search.TTSizeMB),
	}
}

// NewGame clears state that must not leak between games: the transposition
// table and the history heuristic. Killers are cleared per-search already.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.history = [64][64]int32{}
}

// StartSearch runs a search on a copy of pos in a new goroutine and returns
// once the goroutine has taken ownership (mirroring the teacher's
// initSemaphore handshake in search/search.go's StartSearch/run). Use
// WaitWhileSearching or IsSearching to observe completion.
func (s *Search) StartSearch(pos *position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	posCopy := *pos
	go s.run(&posCopy, sl)
	// run releases initSemaphore once it holds isRunning and has reset its
	// state; wait for that before returning.
	_ = s.initSemaphore.Acquire(context.Background(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch requests the running search to stop at its next safe point.
func (s *Search) StopSearch() {
	s.stopFlag.Store(true)
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if s.isRunning.TryAcquire(1) {
		s.isRunning.Release(1)
		return false
	}
	return true
}

// WaitWhileSearching blocks until the current (or next-started) search
// finishes, the way the teacher's WaitWhileSearching grabs and releases
// the running semaphore.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.Background(), 1)
	s.isRunning.Release(1)
}

// LastResult returns the most recently completed search's result.
func (s *Search) LastResult() *Result {
	return s.lastResult
}

func (s *Search) run(pos *position.Position, sl Limits) {
	if !s.isRunning.TryAcquire(1) {
		log.Error("search already running")
		s.initSemaphore.Release(1)
		return
	}
	defer s.isRunning.Release(1)

	s.stopFlag.Store(false)
	s.nodes = 0
	s.stats = Statistics{}
	s.killers = [maxPly][2]move.Move{}

	s.initSemaphore.Release(1)

	start := time.Now()
	result := s.IterativeDeepening(pos, sl)
	result.SearchTime = time.Since(start)
	s.lastResult = result

	log.Infof("search finished depth %d nodes %d in %s, best move %s",
		result.Depth, result.Nodes, result.SearchTime, result.BestMove)
}

// FindBestMove runs a synchronous search to completion (or until Limits'
// depth is reached) and returns its result directly - the entry point used
// by tests and by the CLI's console game loop for the engine's moves.
func (s *Search) FindBestMove(pos *position.Position, sl Limits) *Result {
	s.stopFlag.Store(false)
	s.nodes = 0
	s.stats = Statistics{}
	s.killers = [maxPly][2]move.Move{}
	start := time.Now()
	result := s.IterativeDeepening(pos, sl)
	result.SearchTime = time.Since(start)
	s.lastResult = result
	return result
}

// IterativeDeepening is searchPosition(pos) from spec.md §4.8: search depth
// 1, 2, 3, ... up to MaxDepth, keeping the deepest completed iteration's
// best move. A partially-searched deeper iteration (stopped mid-way) never
// overwrites the previous, fully-searched result.
func (s *Search) IterativeDeepening(pos *position.Position, sl Limits) *Result {
	maxDepth := sl.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.Settings.Search.MaxDepth
	}
	if maxDepth <= 0 {
		maxDepth = 1
	}

	legal := movegen.Generate(pos, movegen.GenAll)
	result := &Result{}
	if len(legal) > 0 {
		result.BestMove = legal[rand.Intn(len(legal))]
	}
	result.Value = eval.Evaluate(pos)

	for depth := 1; depth <= maxDepth; depth++ {
		s.pv[0] = nil
		value := s.negaMaxAB(pos, -Infinity, Infinity, depth, 0)
		if s.stopFlag.Load() && depth > 1 {
			break
		}
		result.Value = value
		result.Depth = depth
		if len(s.pv[0]) > 0 {
			result.BestMove = s.pv[0][0]
		}
	}
	result.Nodes = s.nodes
	return result
}
