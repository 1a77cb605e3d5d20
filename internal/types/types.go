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

// Package types holds the small, dependency-free value types shared by every
// other package in the engine: bitboards, squares, pieces, colors and
// castling rights. Nothing in here allocates and nothing here depends on
// position or move generation.
package types

import "fmt"

// Bitboard is a 64-bit word, one bit per square. Bit 63 is a8, bit 0 is h1;
// a square at mailbox row r (0 = rank 8) and column c (0 = file a) sits at
// bit index 63-(r*8+c).
type Bitboard uint64

// Square is a mailbox index 0..63, row-major with row 0 = rank 8, col 0 = file a.
type Square int8

// NoSquare marks "no square" (e.g. no en-passant target).
const NoSquare Square = -1

// SqLength is the number of squares on the board.
const SqLength = 64

// NewSquare builds a Square from a row (0=rank8) and column (0=fileA).
func NewSquare(row, col int) Square {
	return Square(row*8 + col)
}

// Row returns the mailbox row, 0 = rank 8.
func (s Square) Row() int { return int(s) / 8 }

// Col returns the mailbox column, 0 = file a.
func (s Square) Col() int { return int(s) % 8 }

// BitIndex returns the bit index (0..63) of this square within a Bitboard.
func (s Square) BitIndex() int { return 63 - int(s) }

// Bb returns the single-bit Bitboard for this square.
func (s Square) Bb() Bitboard {
	return Bitboard(1) << uint(s.BitIndex())
}

// String renders algebraic coordinates, e.g. "e2".
func (s Square) String() string {
	if s < 0 || s >= SqLength {
		return "-"
	}
	file := byte('a' + s.Col())
	rank := byte('8' - s.Row())
	return string([]byte{file, rank})
}

// SquareFromBitIndex recovers the Square owning a given bit index.
func SquareFromBitIndex(bit int) Square {
	return Square(63 - bit)
}

// Color identifies the side to move / the owner of a piece.
type Color int8

const (
	White Color = iota
	Black
	ColorLength
)

// Flip returns the opposing color.
func (c Color) Flip() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// PieceType identifies a piece irrespective of color.
type PieceType int8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	PtLength
)

// Piece is one of the twelve colored pieces, or Empty. It is the "small
// enumerated tag with 12 variants plus empty" spec.md §9 calls for, in place
// of the original's string tags ("wP", "bK", ...).
type Piece int8

const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	Empty
	PieceLength = 12
)

var pieceChars = [PieceLength]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// MakePiece composes a Piece from a color and a piece type.
func MakePiece(c Color, pt PieceType) Piece {
	if c == White {
		return Piece(pt)
	}
	return Piece(int(pt) + 6)
}

// Color returns the owning color of a piece. Undefined on Empty.
func (p Piece) Color() Color {
	if p < BP {
		return White
	}
	return Black
}

// Type returns the piece type, irrespective of color. Undefined on Empty.
func (p Piece) Type() PieceType {
	if p < BP {
		return PieceType(p)
	}
	return PieceType(p - BP)
}

// Char renders the piece as a single FEN-style letter, '.' for Empty.
func (p Piece) Char() byte {
	if p == Empty {
		return '.'
	}
	return pieceChars[p]
}

func (p Piece) String() string {
	return string(p.Char())
}

// CastlingRights packs the four castling flags into 4 bits.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether all bits of mask are set.
func (cr CastlingRights) Has(mask CastlingRights) bool {
	return cr&mask == mask
}

func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr.Has(WhiteKingSide) {
		s += "K"
	}
	if cr.Has(WhiteQueenSide) {
		s += "Q"
	}
	if cr.Has(BlackKingSide) {
		s += "k"
	}
	if cr.Has(BlackQueenSide) {
		s += "q"
	}
	return s
}

// Value is a centipawn evaluation score; positive favors White.
type Value int32

func (v Value) String() string {
	return fmt.Sprintf("%d", int32(v))
}

const (
	// CheckmateValue is the sentinel score for a mating position, larger
	// than any evaluation can otherwise reach. Search adjusts this by ply
	// so shorter mates score higher than longer ones.
	CheckmateValue Value = 10000
	// StalemateValue is the score returned for a drawn terminal node.
	StalemateValue Value = 0
)
