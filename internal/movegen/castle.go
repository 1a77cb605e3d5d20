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
	"github.com/kopp/chessgo/internal/move"
	"github.com/kopp/chessgo/internal/position"
	. "github.com/kopp/chessgo/internal/types"
)

type castleCase struct {
	right            CastlingRights
	kingFrom, kingTo Square
	pathEmpty        []Square
	kingPath         []Square // squares the king passes through or lands on, including origin
}

var castleCases = map[Color][2]castleCase{
	White: {
		{WhiteKingSide, NewSquare(7, 4), NewSquare(7, 6),
			[]Square{NewSquare(7, 5), NewSquare(7, 6)},
			[]Square{NewSquare(7, 4), NewSquare(7, 5), NewSquare(7, 6)}},
		{WhiteQueenSide, NewSquare(7, 4), NewSquare(7, 2),
			[]Square{NewSquare(7, 1), NewSquare(7, 2), NewSquare(7, 3)},
			[]Square{NewSquare(7, 4), NewSquare(7, 3), NewSquare(7, 2)}},
	},
	Black: {
		{BlackKingSide, NewSquare(0, 4), NewSquare(0, 6),
			[]Square{NewSquare(0, 5), NewSquare(0, 6)},
			[]Square{NewSquare(0, 4), NewSquare(0, 5), NewSquare(0, 6)}},
		{BlackQueenSide, NewSquare(0, 4), NewSquare(0, 2),
			[]Square{NewSquare(0, 1), NewSquare(0, 2), NewSquare(0, 3)},
			[]Square{NewSquare(0, 4), NewSquare(0, 3), NewSquare(0, 2)}},
	},
}

// generateCastleMoves implements spec.md §4.4.2: a castle is pseudo-legal
// when the side retains the right, every square between king and rook is
// empty, the king is not presently in check, and none of the squares it
// crosses (including its destination) is attacked.
func generateCastleMoves(pos *position.Position, side Color, out *[]move.Move) {
	if InCheck(pos, side) {
		return
	}
	occ := pos.Occupied()
	unsafe := UnsafeFor(pos, side)
	for _, c := range castleCases[side] {
		if !pos.Castling().Has(c.right) {
			continue
		}
		blocked := false
		for _, sq := range c.pathEmpty {
			if occ&sq.Bb() != 0 {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		attacked := false
		for _, sq := range c.kingPath {
			if unsafe&sq.Bb() != 0 {
				attacked = true
				break
			}
		}
		if attacked {
			continue
		}
		*out = append(*out, move.NewNormal(c.kingFrom, c.kingTo))
	}
}
