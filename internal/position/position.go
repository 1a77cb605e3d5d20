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

// Package position represents the mutable chess game state: twelve piece
// bitboards, side to move, castling rights, en-passant target, a move log
// and undo stacks, and the incrementally maintained Zobrist hash. It is
// mutated only through Make/Undo - neither allocates new piece boards, bit
// operations rewrite the existing bitboards in place, the way
// internal/position/position.go's DoMove/UndoMove do in the teacher.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kopp/chessgo/internal/bitops"
	"github.com/kopp/chessgo/internal/logging"
	"github.com/kopp/chessgo/internal/masks"
	"github.com/kopp/chessgo/internal/move"
	. "github.com/kopp/chessgo/internal/types"
	"github.com/kopp/chessgo/internal/util"
	"github.com/kopp/chessgo/internal/zobrist"
)

var log = logging.GetLog("position")

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Errors surfaced to the host, per spec.md §7.
var (
	ErrInvalidFEN = errors.New("position: invalid FEN")
)

// undoEntry captures everything Undo needs to reverse one Make call.
type undoEntry struct {
	move            move.Move
	capturedPiece   Piece
	capturedSquare  Square
	prevCastling    CastlingRights
	prevEnPassant   Bitboard
	prevHash        zobrist.Key
	prevHalfmove    int
}

// Position is the mutable game state described by spec.md §3.1.
type Position struct {
	boards     [PieceLength]Bitboard // one bitboard per colored piece
	side       Color
	castling   CastlingRights
	enPassant  Bitboard // file mask of the target square, 0 if none
	hash       zobrist.Key
	halfmove   int
	fullmove   int

	log  []move.Move
	undo []undoEntry

	lastMoved    Piece
	lastCaptured Piece
}

// NewPosition returns the standard initial position.
func NewPosition() *Position {
	p := &Position{}
	p.initStandard()
	return p
}

// NewPositionFromFEN parses fen (spec.md §6.2) into a new Position.
func NewPositionFromFEN(fen string) (*Position, error) {
	p := &Position{}
	if err := p.fromFEN(fen); err != nil {
		return nil, err
	}
	return p, nil
}

// initStandard sets up the standard chess opening position.
func (p *Position) initStandard() {
	if err := p.fromFEN(StartFen); err != nil {
		panic(fmt.Sprintf("position: invalid embedded start FEN: %v", err))
	}
}

// Board returns the bitboard for a given colored piece.
func (p *Position) Board(pc Piece) Bitboard { return p.boards[pc] }

// Side returns the side to move.
func (p *Position) Side() Color { return p.side }

// Castling returns the current castling-rights bits.
func (p *Position) Castling() CastlingRights { return p.castling }

// EnPassant returns the en-passant target file mask, 0 if none.
func (p *Position) EnPassant() Bitboard { return p.enPassant }

// Hash returns the incrementally maintained Zobrist key.
func (p *Position) Hash() zobrist.Key { return p.hash }

// MoveLog returns the ordered sequence of moves made so far.
func (p *Position) MoveLog() []move.Move { return p.log }

// LastMoved / LastCaptured report the piece tags of the most recent Make,
// used by a host for move-log/animation display (spec.md §3.1).
func (p *Position) LastMoved() Piece    { return p.lastMoved }
func (p *Position) LastCaptured() Piece { return p.lastCaptured }

// Occupied returns the union of all pieces of both colors.
func (p *Position) Occupied() Bitboard {
	var occ Bitboard
	for _, b := range p.boards {
		occ |= b
	}
	return occ
}

// OccupiedBy returns the union of all pieces of one color.
func (p *Position) OccupiedBy(c Color) Bitboard {
	var occ Bitboard
	start, end := WP, WK
	if c == Black {
		start, end = BP, BK
	}
	for pc := start; pc <= end; pc++ {
		occ |= p.boards[pc]
	}
	return occ
}

// PieceAt returns the piece occupying sq, or Empty.
func (p *Position) PieceAt(sq Square) Piece {
	bit := sq.Bb()
	for pc := WP; pc < Empty; pc++ {
		if p.boards[pc]&bit != 0 {
			return pc
		}
	}
	return Empty
}

// KingSquare returns the square of the side's king.
func (p *Position) KingSquare(c Color) Square {
	kingBoard := p.boards[MakePiece(c, King)]
	if kingBoard == 0 {
		return NoSquare
	}
	return SquareOfLsb(kingBoard)
}

// SquareOfLsb returns the Square whose bit is the lowest set bit of b.
// Undefined (returns NoSquare) when b is zero.
func SquareOfLsb(b Bitboard) Square {
	if b == 0 {
		return NoSquare
	}
	return SquareFromBitIndex(bitops.LsbIndex(uint64(b)))
}

// Mailbox derives the 8x8 display grid on demand, never stored.
func (p *Position) Mailbox() [8][8]Piece {
	var grid [8][8]Piece
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			grid[row][col] = p.PieceAt(NewSquare(row, col))
		}
	}
	return grid
}

// String renders the board as 8 ranks of FEN-style letters, for debugging.
func (p *Position) String() string {
	var sb strings.Builder
	grid := p.Mailbox()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sb.WriteByte(grid[row][col].Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// fromFEN parses the placement, side, castling and en-passant fields of a
// FEN string (spec.md §6.2); halfmove/fullmove counters are read if present
// but otherwise default to 0/1, mirroring the teacher's own tolerant
// setupBoard(fen string).
func (p *Position) fromFEN(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 2 {
		return fmt.Errorf("%w: expected at least placement and side fields, got %q", ErrInvalidFEN, fen)
	}

	for i := range p.boards {
		p.boards[i] = 0
	}
	p.log = nil
	p.undo = nil

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for row, rankStr := range ranks {
		col := 0
		for _, ch := range rankStr {
			switch {
			case util.IsDigit(byte(ch)):
				n := int(ch - '0')
				if n < 1 || n > 8 {
					return fmt.Errorf("%w: invalid empty-square count %q in rank %d", ErrInvalidFEN, ch, row+1)
				}
				col += n
			case util.IsAlpha(byte(ch)):
				pc, err := pieceFromChar(byte(ch))
				if err != nil {
					return err
				}
				if col > 7 {
					return fmt.Errorf("%w: rank %d overflows 8 files", ErrInvalidFEN, row+1)
				}
				sq := NewSquare(row, col)
				p.boards[pc] |= sq.Bb()
				col++
			default:
				return fmt.Errorf("%w: unexpected character %q in rank %d", ErrInvalidFEN, ch, row+1)
			}
		}
		if col != 8 {
			return fmt.Errorf("%w: rank %d does not sum to 8 files", ErrInvalidFEN, row+1)
		}
	}

	switch fields[1] {
	case "w":
		p.side = White
	case "b":
		p.side = Black
	default:
		return fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, fields[1])
	}

	p.castling = NoCastling
	if len(fields) >= 3 && fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castling |= WhiteKingSide
			case 'Q':
				p.castling |= WhiteQueenSide
			case 'k':
				p.castling |= BlackKingSide
			case 'q':
				p.castling |= BlackQueenSide
			default:
				return fmt.Errorf("%w: invalid castling field %q", ErrInvalidFEN, fields[2])
			}
		}
	}

	p.enPassant = 0
	if len(fields) >= 4 && fields[3] != "-" {
		if len(fields[3]) < 1 || fields[3][0] < 'a' || fields[3][0] > 'h' {
			return fmt.Errorf("%w: invalid en-passant field %q", ErrInvalidFEN, fields[3])
		}
		file := int(fields[3][0] - 'a')
		p.enPassant = masks.FileMask[file]
	}

	p.halfmove = 0
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil {
			p.halfmove = n
		}
	}
	p.fullmove = 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			p.fullmove = n
		}
	}

	p.hash = p.hashFromScratch()
	return nil
}

func pieceFromChar(ch byte) (Piece, error) {
	switch ch {
	case 'P':
		return WP, nil
	case 'N':
		return WN, nil
	case 'B':
		return WB, nil
	case 'R':
		return WR, nil
	case 'Q':
		return WQ, nil
	case 'K':
		return WK, nil
	case 'p':
		return BP, nil
	case 'n':
		return BN, nil
	case 'b':
		return BB, nil
	case 'r':
		return BR, nil
	case 'q':
		return BQ, nil
	case 'k':
		return BK, nil
	default:
		return Empty, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidFEN, string(ch))
	}
}

// hashFromScratch recomputes the Zobrist key from the current board state;
// used after FEN import and by the hash-consistency test (spec.md §8.3).
func (p *Position) hashFromScratch() zobrist.Key {
	var h zobrist.Key
	for pc := WP; pc < Empty; pc++ {
		b := p.boards[pc]
		for b != 0 {
			sq := SquareOfLsb(b)
			h ^= zobrist.Piece[pc][sq]
			b &= b - 1
		}
	}
	if p.side == Black {
		h ^= zobrist.Side
	}
	h ^= zobrist.Castle[p.castling]
	h ^= zobrist.EpKeyForTarget(p.enPassant)
	return h
}
