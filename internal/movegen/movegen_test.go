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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp/chessgo/internal/position"
)

func TestGenerateStartPositionHas20Moves(t *testing.T) {
	pos := position.NewPosition()
	moves := Generate(pos, GenAll)
	assert.Len(t, moves, 20)
}

func TestGenerateCastlingKingSideWhenClear(t *testing.T) {
	pos, err := position.NewPositionFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	moves := Generate(pos, GenAll)
	found := false
	for _, m := range moves {
		if m.Algebra(pos.Side()) == "O-O" {
			found = true
		}
	}
	assert.True(t, found, "expected white kingside castle to be generated")
}

func TestGenerateExcludesCastleThroughCheck(t *testing.T) {
	// black rook on f7 attacks f1, a square the king crosses castling O-O.
	pos, err := position.NewPositionFromFEN("4k3/5r2/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	moves := Generate(pos, GenAll)
	for _, m := range moves {
		assert.NotEqual(t, "O-O", m.Algebra(pos.Side()), "rook on f7 attacks f1, castling through it must be illegal")
	}
}

func TestInCheckDetectsRookCheck(t *testing.T) {
	pos, err := position.NewPositionFromFEN("4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, InCheck(pos, pos.Side()))
}

func TestHasLegalMovesFalseOnCheckmate(t *testing.T) {
	// classic back-rank mate: black king g8 boxed in by its own pawns, white
	// rook on a8 checks along the open 8th rank.
	pos, err := position.NewPositionFromFEN("R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.True(t, InCheck(pos, pos.Side()))
	assert.False(t, HasLegalMoves(pos))
}

func TestGenerateEnPassantCapture(t *testing.T) {
	pos, err := position.NewPositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	moves := Generate(pos, GenAll)
	found := false
	for _, m := range moves {
		if m.Algebra(pos.Side()) == "e5d6" {
			found = true
		}
	}
	assert.True(t, found, "expected en passant capture e5xd6")
}

func TestGeneratePromotions(t *testing.T) {
	pos, err := position.NewPositionFromFEN("4k3/7P/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	moves := Generate(pos, GenAll)
	count := 0
	for _, m := range moves {
		if m.Algebra(pos.Side())[:4] == "h7h8" {
			count++
		}
	}
	assert.Equal(t, 4, count, "expected 4 promotion variants")
}
