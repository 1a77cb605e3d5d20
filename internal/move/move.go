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

// Package move implements the wire-format move encoding between the move
// generator, the search and the host (spec.md §6.1): a compact 4-character
// code, plus the "e2e4"/"O-O" algebraic rendering a UI would display
// (spec.md §6.3).
package move

import (
	"fmt"

	. "github.com/kopp/chessgo/internal/types"
)

// Kind classifies a decoded Move.
type Kind int8

const (
	Normal Kind = iota
	Promotion
	EnPassant
)

// Move is the 4-character wire code defined by spec.md §6.1.
type Move [4]byte

// String returns the raw 4-character wire code.
func (m Move) String() string {
	return string(m[:])
}

// Kind classifies the move by inspecting its trailing tag byte.
func (m Move) Kind() Kind {
	switch m[3] {
	case 'P':
		return Promotion
	case 'E':
		return EnPassant
	default:
		return Normal
	}
}

// NewNormal encodes a plain (or castle) move "r1 c1 r2 c2".
func NewNormal(from, to Square) Move {
	return Move{digit(from.Row()), digit(from.Col()), digit(to.Row()), digit(to.Col())}
}

// Decode splits a Normal move back into its from/to squares.
func (m Move) Decode() (from, to Square) {
	r1, c1 := int(m[0]-'0'), int(m[1]-'0')
	r2, c2 := int(m[2]-'0'), int(m[3]-'0')
	return NewSquare(r1, c1), NewSquare(r2, c2)
}

// NewPromotion encodes a promotion move "c1 c2 P p" for the given side; the
// start/end rows are implied by side, not stored in the code (spec.md §6.1).
func NewPromotion(side Color, fromCol, toCol int, promoted byte) Move {
	return Move{digit(fromCol), digit(toCol), promoted, 'P'}
}

// DecodePromotion returns the from/to squares and promoted-piece letter for
// a Promotion move. side must be the mover (white pawns promote row 1->0,
// i.e. rank 7 to rank 8; black promote row 6->7, rank 2 to rank 1).
func (m Move) DecodePromotion(side Color) (from, to Square, promoted byte) {
	fromCol, toCol := int(m[0]-'0'), int(m[1]-'0')
	fromRow, toRow := 1, 0
	if side == Black {
		fromRow, toRow = 6, 7
	}
	return NewSquare(fromRow, fromCol), NewSquare(toRow, toCol), m[2]
}

// NewEnPassant encodes an en-passant capture "c1 c2 X E" for the given side.
func NewEnPassant(side Color, fromCol, toCol int) Move {
	x := byte('w')
	if side == Black {
		x = 'b'
	}
	return Move{digit(fromCol), digit(toCol), x, 'E'}
}

// DecodeEnPassant returns the from/to squares and mover color for an
// EnPassant move. Per spec.md §6.1 the start/end rows are implied by side:
// row 3/row 2 (ranks 5/6) for white, row 4/row 5 (ranks 4/3) for black.
func (m Move) DecodeEnPassant() (from, to Square, side Color) {
	fromCol, toCol := int(m[0]-'0'), int(m[1]-'0')
	side = White
	fromRow, toRow := 3, 2
	if m[2] == 'b' {
		side = Black
		fromRow, toRow = 4, 5
	}
	return NewSquare(fromRow, fromCol), NewSquare(toRow, toCol), side
}

// CapturedSquare returns the square of the pawn actually removed by an
// en-passant capture: same row as the mover's start square, same column as
// its destination (spec.md §4.5 step 2).
func (m Move) CapturedSquare() Square {
	from, to, _ := m.DecodeEnPassant()
	return NewSquare(from.Row(), to.Col())
}

// Endpoints returns the from/to squares of m irrespective of its kind; side
// must be the mover, needed to resolve the implied ranks of promotions and
// en-passant captures (spec.md §6.1).
func (m Move) Endpoints(side Color) (from, to Square) {
	switch m.Kind() {
	case Promotion:
		from, to, _ = m.DecodePromotion(side)
	case EnPassant:
		from, to, _ = m.DecodeEnPassant()
	default:
		from, to = m.Decode()
	}
	return
}

func digit(v int) byte {
	return byte('0' + v)
}

// Algebra renders the two-square form a UI shows, e.g. "e2e4", with a
// trailing promotion letter on promotions, and "O-O"/"O-O-O" for castles.
func (m Move) Algebra(side Color) string {
	switch m.Kind() {
	case Promotion:
		from, to, promoted := m.DecodePromotion(side)
		return fmt.Sprintf("%s%s%c", from, to, lower(promoted))
	case EnPassant:
		from, to, _ := m.DecodeEnPassant()
		return fmt.Sprintf("%s%s", from, to)
	default:
		from, to := m.Decode()
		if castleName := castleNotation(from, to); castleName != "" {
			return castleName
		}
		return fmt.Sprintf("%s%s", from, to)
	}
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// castleNotation recognizes the four fixed castling codes (spec.md §6.1) and
// renders "O-O"/"O-O-O"; returns "" for any other king move.
func castleNotation(from, to Square) string {
	switch {
	case from == NewSquare(7, 4) && to == NewSquare(7, 6):
		return "O-O"
	case from == NewSquare(7, 4) && to == NewSquare(7, 2):
		return "O-O-O"
	case from == NewSquare(0, 4) && to == NewSquare(0, 6):
		return "O-O"
	case from == NewSquare(0, 4) && to == NewSquare(0, 2):
		return "O-O-O"
	default:
		return ""
	}
}
