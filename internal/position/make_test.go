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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp/chessgo/internal/move"
	. "github.com/kopp/chessgo/internal/types"
)

func TestMakeUndoNormalMoveRestoresState(t *testing.T) {
	p := NewPosition()
	before := p.String()
	beforeHash := p.Hash()

	m := move.NewNormal(NewSquare(6, 4), NewSquare(4, 4)) // e2e4
	p.Make(m)
	assert.Equal(t, Black, p.Side())
	assert.NotZero(t, p.EnPassant())
	assert.NotEqual(t, beforeHash, p.Hash())

	p.Undo()
	assert.Equal(t, before, p.String())
	assert.Equal(t, beforeHash, p.Hash())
	assert.Equal(t, White, p.Side())
}

func TestMakeCaptureRestoresCapturedPiece(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/3p4/4N3/4K3 w - - 0 1")
	require.NoError(t, err)
	before := p.String()

	m := move.NewNormal(NewSquare(6, 4), NewSquare(5, 3)) // Ne2xd3
	p.Make(m)
	assert.Equal(t, WN, p.PieceAt(NewSquare(5, 3)))
	assert.Equal(t, Empty, p.PieceAt(NewSquare(6, 4)))

	p.Undo()
	assert.Equal(t, before, p.String())
	assert.Equal(t, BP, p.PieceAt(NewSquare(5, 3)))
}

func TestMakeEnPassantRemovesCapturedPawn(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	before := p.String()

	m := move.NewEnPassant(White, 4, 3) // e5xd6 e.p.
	p.Make(m)
	assert.Equal(t, WP, p.PieceAt(NewSquare(2, 3)))
	assert.Equal(t, Empty, p.PieceAt(NewSquare(3, 3))) // captured black pawn gone
	assert.Equal(t, Empty, p.PieceAt(NewSquare(3, 4))) // origin square empty

	p.Undo()
	assert.Equal(t, before, p.String())
}

func TestMakePromotionLeavesNoPhantomPawn(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/7P/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	before := p.String()

	m := move.NewPromotion(White, 7, 7, 'Q')
	p.Make(m)
	assert.Equal(t, WQ, p.PieceAt(NewSquare(0, 7)))
	assert.Equal(t, Bitboard(0), p.Board(WP), "no phantom pawn should remain")

	p.Undo()
	assert.Equal(t, before, p.String())
	assert.Equal(t, WP, p.PieceAt(NewSquare(1, 7)))
}

func TestMakeCastleMovesRookToo(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	before := p.String()

	m := move.NewNormal(NewSquare(7, 4), NewSquare(7, 6)) // O-O
	p.Make(m)
	assert.Equal(t, WK, p.PieceAt(NewSquare(7, 6)))
	assert.Equal(t, WR, p.PieceAt(NewSquare(7, 5)))
	assert.Equal(t, Empty, p.PieceAt(NewSquare(7, 7)))
	assert.False(t, p.Castling().Has(WhiteKingSide))
	assert.False(t, p.Castling().Has(WhiteQueenSide))

	p.Undo()
	assert.Equal(t, before, p.String())
	assert.True(t, p.Castling().Has(WhiteKingSide))
}

func TestRookMoveRevokesOnlyItsSideCastling(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	m := move.NewNormal(NewSquare(7, 0), NewSquare(7, 1)) // Ra1-b1
	p.Make(m)
	assert.False(t, p.Castling().Has(WhiteQueenSide))
	assert.True(t, p.Castling().Has(WhiteKingSide))
}
