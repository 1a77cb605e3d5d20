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

// Package perft counts leaf nodes of the legal move tree to a fixed depth,
// the standard move-generator correctness and performance harness spec.md
// §8.4 requires.
package perft

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/movegen"
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

var out = message.NewPrinter(language.English)

// Perft accumulates leaf-node and move-category counters across a run.
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnPassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	stopFlag         bool
}

// New creates an empty Perft counter.
func New() *Perft {
	return &Perft{}
}

// Stop requests an in-progress Run (started in a goroutine) to abort.
func (pf *Perft) Stop() {
	pf.stopFlag = true
}

// Run performs a perft search to depth from the given position and returns
// the leaf count, also populating the category counters.
func (pf *Perft) Run(pos *position.Position, depth int) uint64 {
	pf.stopFlag = false
	pf.resetCounters()
	if depth <= 0 {
		depth = 1
	}
	return pf.search(pos, depth)
}

// RunReport is Run plus a human-readable summary printed in the teacher's
// own report format (spec.md §8.4's perft harness output).
func (pf *Perft) RunReport(pos *position.Position, depth int) uint64 {
	out.Printf("Performing PERFT Test for Depth %d\n", depth)
	out.Printf("-----------------------------------------\n")

	start := time.Now()
	result := pf.Run(pos, depth)
	elapsed := time.Since(start)

	out.Printf("Time         : %s\n", elapsed)
	nanos := elapsed.Nanoseconds()
	if nanos == 0 {
		nanos = 1
	}
	out.Printf("NPS          : %d nps\n", (result*uint64(time.Second.Nanoseconds()))/uint64(nanos))
	out.Printf("Results:\n")
	out.Printf("   Nodes     : %d\n", pf.Nodes)
	out.Printf("   Captures  : %d\n", pf.CaptureCounter)
	out.Printf("   EnPassant : %d\n", pf.EnPassantCounter)
	out.Printf("   Castles   : %d\n", pf.CastleCounter)
	out.Printf("   Promotions: %d\n", pf.PromotionCounter)
	out.Printf("   Checks    : %d\n", pf.CheckCounter)
	out.Printf("-----------------------------------------\n")
	return result
}

func (pf *Perft) resetCounters() {
	*pf = Perft{}
}

func (pf *Perft) search(pos *position.Position, depth int) uint64 {
	if pf.stopFlag {
		return pf.Nodes
	}
	moves := movegen.Generate(pos, movegen.GenAll)
	if depth == 1 {
		pf.tallyLeaf(pos, moves)
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		pos.Make(m)
		nodes += pf.search(pos, depth-1)
		pos.Undo()
	}
	return nodes
}

// tallyLeaf classifies each leaf move into the category counters; only
// called at depth 1 so every move here is an actual leaf of the search.
func (pf *Perft) tallyLeaf(pos *position.Position, moves []move.Move) {
	side := pos.Side()
	for _, m := range moves {
		pf.Nodes++
		switch m.Kind() {
		case move.EnPassant:
			pf.EnPassantCounter++
			pf.CaptureCounter++
		case move.Promotion:
			pf.PromotionCounter++
			_, to, _ := m.DecodePromotion(side)
			if pos.OccupiedBy(side.Flip())&to.Bb() != 0 {
				pf.CaptureCounter++
			}
		default:
			from, to := m.Decode()
			if pos.OccupiedBy(side.Flip())&to.Bb() != 0 {
				pf.CaptureCounter++
			}
			if isCastle(from, to) {
				pf.CastleCounter++
			}
		}
		pos.Make(m)
		if movegen.InCheck(pos, pos.Side()) {
			pf.CheckCounter++
		}
		pos.Undo()
	}
}

func isCastle(from, to Square) bool {
	switch {
	case from == NewSquare(7, 4) && (to == NewSquare(7, 6) || to == NewSquare(7, 2)):
		return true
	case from == NewSquare(0, 4) && (to == NewSquare(0, 6) || to == NewSquare(0, 2)):
		return true
	default:
		return false
	}
}

// Divide runs perft one ply deep and returns the leaf count contributed by
// each root move, the standard debugging aid for isolating a movegen bug
// against a reference implementation (spec.md §8.4).
func Divide(pos *position.Position, depth int) map[string]uint64 {
	result := make(map[string]uint64)
	side := pos.Side()
	moves := movegen.Generate(pos, movegen.GenAll)
	for _, m := range moves {
		pos.Make(m)
		var nodes uint64
		if depth <= 1 {
			nodes = 1
		} else {
			nodes = New().Run(pos, depth-1)
		}
		pos.Undo()
		result[m.Algebra(side)] = nodes
	}
	return result
}
