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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/movegen"
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

func TestFindBestMoveReturnsLegalMoveFromStart(t *testing.T) {
	pos := position.NewPosition()
	s := NewSearch()
	result := s.FindBestMove(pos, Limits{MaxDepth: 2})

	legal := movegen.Generate(pos, movegen.GenAll)
	found := false
	for _, m := range legal {
		if m == result.BestMove {
			found = true
			break
		}
	}
	assert.True(t, found, "best move %s not among legal moves", result.BestMove)
	assert.Equal(t, 2, result.Depth)
	assert.Greater(t, result.Nodes, int64(0))
}

func TestFindBestMoveFindsMateInOne(t *testing.T) {
	// white rook a2, black king g8 boxed in by its own pawns, white king
	// far away: Ra8 delivers back-rank mate.
	pos, err := position.NewPositionFromFEN("6k1/5ppp/8/8/8/8/R7/6K1 w - - 0 1")
	require.NoError(t, err)

	s := NewSearch()
	result := s.FindBestMove(pos, Limits{MaxDepth: 3})
	assert.Greater(t, result.Value, Value(CheckmateValue-100))
}

func TestFindBestMoveAtDepthOneReturnsAMove(t *testing.T) {
	// same mate-in-one position, searched only one ply deep: the search
	// must still return a move.
	pos, err := position.NewPositionFromFEN("6k1/5ppp/8/8/8/8/R7/6K1 w - - 0 1")
	require.NoError(t, err)
	s := NewSearch()
	result := s.FindBestMove(pos, Limits{MaxDepth: 1})
	assert.NotEqual(t, move.Move{}, result.BestMove)
}

func TestStartSearchCanBeStoppedAndWaitedOn(t *testing.T) {
	pos := position.NewPosition()
	s := NewSearch()
	s.StartSearch(pos, Limits{MaxDepth: 6})
	s.StopSearch()
	s.WaitWhileSearching()
	assert.False(t, s.IsSearching())
	assert.NotNil(t, s.LastResult())
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	pos := position.NewPosition()
	s := NewSearch()
	s.FindBestMove(pos, Limits{MaxDepth: 2})
	s.NewGame()
	assert.Equal(t, 0, s.tt.Hashfull())
}
