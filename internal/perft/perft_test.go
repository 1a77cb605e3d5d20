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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kopp/chessgo/internal/position"
)

// https://www.chessprogramming.org/Perft_Results
func TestStandardPerft(t *testing.T) {
	var nodesByDepth = map[int]uint64{
		1: 20,
		2: 400,
		3: 8_902,
		4: 197_281,
	}
	for depth, want := range nodesByDepth {
		pos, err := position.NewPositionFromFEN(position.StartFen)
		require.NoError(t, err)
		pf := New()
		assert.Equal(t, want, pf.Run(pos, depth), "depth %d", depth)
	}
}

func TestKiwipetePerft(t *testing.T) {
	const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	var nodesByDepth = map[int]uint64{
		1: 48,
		2: 2_039,
		3: 97_862,
	}
	for depth, want := range nodesByDepth {
		pos, err := position.NewPositionFromFEN(kiwipete)
		require.NoError(t, err)
		pf := New()
		assert.Equal(t, want, pf.Run(pos, depth), "depth %d", depth)
	}
}

func TestDivideSumsToTotal(t *testing.T) {
	pos, err := position.NewPositionFromFEN(position.StartFen)
	require.NoError(t, err)
	div := Divide(pos, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	assert.Equal(t, uint64(8_902), sum)
	assert.Len(t, div, 20)
}
