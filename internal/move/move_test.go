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

package move

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopp/chessgo/internal/types"
)

func TestNormalRoundTrip(t *testing.T) {
	from, to := NewSquare(6, 4), NewSquare(4, 4)
	m := NewNormal(from, to)
	gotFrom, gotTo := m.Decode()
	assert.Equal(t, from, gotFrom)
	assert.Equal(t, to, gotTo)
	assert.Equal(t, Normal, m.Kind())
	assert.Equal(t, "e2e4", m.Algebra(White))
}

func TestPromotionRoundTrip(t *testing.T) {
	m := NewPromotion(White, 7, 7, 'Q')
	from, to, promoted := m.DecodePromotion(White)
	assert.Equal(t, NewSquare(1, 7), from)
	assert.Equal(t, NewSquare(0, 7), to)
	assert.Equal(t, byte('Q'), promoted)
	assert.Equal(t, Promotion, m.Kind())
	assert.Equal(t, "h7h8q", m.Algebra(White))
}

func TestPromotionRoundTripBlack(t *testing.T) {
	m := NewPromotion(Black, 0, 0, 'q')
	from, to, _ := m.DecodePromotion(Black)
	assert.Equal(t, NewSquare(6, 0), from)
	assert.Equal(t, NewSquare(7, 0), to)
}

func TestEnPassantRoundTrip(t *testing.T) {
	m := NewEnPassant(White, 4, 3)
	from, to, side := m.DecodeEnPassant()
	assert.Equal(t, White, side)
	assert.Equal(t, NewSquare(3, 4), from)
	assert.Equal(t, NewSquare(2, 3), to)
	assert.Equal(t, NewSquare(3, 3), m.CapturedSquare())
	assert.Equal(t, EnPassant, m.Kind())
}

func TestCastleNotation(t *testing.T) {
	m := NewNormal(NewSquare(7, 4), NewSquare(7, 6))
	assert.Equal(t, "O-O", m.Algebra(White))
	m2 := NewNormal(NewSquare(0, 4), NewSquare(0, 2))
	assert.Equal(t, "O-O-O", m2.Algebra(Black))
}
