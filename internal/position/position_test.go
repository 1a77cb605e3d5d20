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

	. "github.com/kopp/chessgo/internal/types"
)

func TestNewPositionStandardSetup(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, White, p.Side())
	assert.Equal(t, AllCastling, p.Castling())
	assert.Equal(t, Bitboard(0), p.EnPassant())
	assert.Equal(t, NewSquare(7, 4), p.KingSquare(White))
	assert.Equal(t, NewSquare(0, 4), p.KingSquare(Black))
	assert.Equal(t, 16, popcount(p.OccupiedBy(White)))
	assert.Equal(t, 16, popcount(p.OccupiedBy(Black)))
}

func TestFromFENRejectsGarbage(t *testing.T) {
	_, err := NewPositionFromFEN("not a fen")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFEN)
}

func TestFromFENParsesEnPassantFile(t *testing.T) {
	p, err := NewPositionFromFEN("4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1")
	require.NoError(t, err)
	assert.NotZero(t, p.EnPassant())
}

func TestHashFromScratchMatchesIncrementalAfterFEN(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, p.hashFromScratch(), p.Hash())
}

func TestPieceAtAndMailbox(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, WR, p.PieceAt(NewSquare(7, 0)))
	assert.Equal(t, BK, p.PieceAt(NewSquare(0, 4)))
	assert.Equal(t, Empty, p.PieceAt(NewSquare(4, 4)))
	grid := p.Mailbox()
	assert.Equal(t, WK, grid[7][4])
}

func popcount(b Bitboard) int {
	n := 0
	for b != 0 {
		n++
		b &= b - 1
	}
	return n
}
