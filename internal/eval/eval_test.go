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

package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

func TestStartPositionIsRoughlyBalanced(t *testing.T) {
	pos := position.NewPosition()
	score := Evaluate(pos)
	assert.Less(t, score, Value(50))
	assert.Greater(t, score, Value(-50))
}

func TestMaterialAdvantageFavorsSideUp(t *testing.T) {
	pos, err := position.NewPositionFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	require.NoError(t, err)
	score := Evaluate(pos)
	assert.Greater(t, score, Value(800))
}

func TestCheckmateScoresMinusCheckmate(t *testing.T) {
	pos, err := position.NewPositionFromFEN("R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, -CheckmateValue, Evaluate(pos))
}

func TestStalemateScoresZero(t *testing.T) {
	// classic stalemate: black king a8 has no move, no check.
	pos, err := position.NewPositionFromFEN("k7/2Q5/2K5/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, StalemateValue, Evaluate(pos))
}
