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
	"github.com/kopp/chessgo/internal/masks"
	"github.com/kopp/chessgo/internal/move"
	. "github.com/kopp/chessgo/internal/types"
	"github.com/kopp/chessgo/internal/zobrist"
)

// applyBoards implements spec.md §4.5 step 2's uniform per-piece mutation:
// the mover's own board clears its start bit and sets its end bit; every
// other board just clears its end bit. This handles captures without a
// color/piece-type switch - a capture is simply "some other board happened
// to have a bit at the destination".
func (p *Position) applyBoards(mover Piece, from, to Square) {
	fromBit, toBit := from.Bb(), to.Bb()
	for pc := WP; pc < Empty; pc++ {
		if pc == mover {
			p.boards[pc] = (p.boards[pc] &^ fromBit) | toBit
		} else {
			p.boards[pc] = p.boards[pc] &^ toBit
		}
	}
}

// applyPromotion implements the corrected asymmetric mutation spec.md §9
// prescribes: clear the pawn at its start square, set the promoted piece at
// the destination, and clear the destination on every other board - never
// leaving the "phantom pawn" the design notes call out as an observed bug
// in some source variants.
func (p *Position) applyPromotion(pawn, promoted Piece, from, to Square) {
	fromBit, toBit := from.Bb(), to.Bb()
	for pc := WP; pc < Empty; pc++ {
		switch pc {
		case pawn:
			p.boards[pc] &^= fromBit
		case promoted:
			p.boards[pc] |= toBit
		default:
			p.boards[pc] &^= toBit
		}
	}
}

func promotedPiece(side Color, letter byte) Piece {
	var pt PieceType
	switch letter & ^byte(0x20) { // normalize to uppercase
	case 'Q':
		pt = Queen
	case 'R':
		pt = Rook
	case 'B':
		pt = Bishop
	case 'N':
		pt = Knight
	}
	return MakePiece(side, pt)
}

// castleRookSquares returns the rook's from/to squares for a castling king
// move, or NoSquare,NoSquare if this is not a castle.
func castleRookSquares(from, to Square) (rookFrom, rookTo Square) {
	switch {
	case from == NewSquare(7, 4) && to == NewSquare(7, 6): // white O-O
		return NewSquare(7, 7), NewSquare(7, 5)
	case from == NewSquare(7, 4) && to == NewSquare(7, 2): // white O-O-O
		return NewSquare(7, 0), NewSquare(7, 3)
	case from == NewSquare(0, 4) && to == NewSquare(0, 6): // black O-O
		return NewSquare(0, 7), NewSquare(0, 5)
	case from == NewSquare(0, 4) && to == NewSquare(0, 2): // black O-O-O
		return NewSquare(0, 0), NewSquare(0, 3)
	default:
		return NoSquare, NoSquare
	}
}

// rightsLostBy returns the castling-rights bits that a move touching square
// sq (as a mover or as a captured-on square) permanently revokes.
func rightsLostBy(sq Square) CastlingRights {
	switch sq {
	case NewSquare(7, 4):
		return WhiteKingSide | WhiteQueenSide
	case NewSquare(0, 4):
		return BlackKingSide | BlackQueenSide
	case NewSquare(7, 7):
		return WhiteKingSide
	case NewSquare(7, 0):
		return WhiteQueenSide
	case NewSquare(0, 7):
		return BlackKingSide
	case NewSquare(0, 0):
		return BlackQueenSide
	default:
		return NoCastling
	}
}

// Make applies m to the position (spec.md §4.5). It never allocates a new
// piece board - every bitboard is rewritten in place.
func (p *Position) Make(m move.Move) {
	side := p.side
	var capturedPiece Piece = Empty
	var capturedSquare Square = NoSquare
	var movedPiece Piece

	switch m.Kind() {
	case move.Promotion:
		from, to, letter := m.DecodePromotion(side)
		pawn := MakePiece(side, Pawn)
		promoted := promotedPiece(side, letter)
		capturedPiece = p.PieceAt(to)
		capturedSquare = to
		p.applyPromotion(pawn, promoted, from, to)
		movedPiece = pawn

	case move.EnPassant:
		from, to, _ := m.DecodeEnPassant()
		pawn := MakePiece(side, Pawn)
		capturedSquare = m.CapturedSquare()
		capturedPiece = p.PieceAt(capturedSquare)
		p.applyBoards(pawn, from, to)
		// the captured pawn never sits on `to`; remove it from its actual
		// square explicitly (spec.md §4.5 step 2).
		p.boards[capturedPiece] &^= capturedSquare.Bb()
		movedPiece = pawn

	default: // Normal, possibly a castle
		from, to := m.Decode()
		movedPiece = p.PieceAt(from)
		capturedPiece = p.PieceAt(to)
		if capturedPiece != Empty {
			capturedSquare = to
		}
		p.applyBoards(movedPiece, from, to)
		if movedPiece.Type() == King {
			if rookFrom, rookTo := castleRookSquares(from, to); rookFrom != NoSquare {
				rook := MakePiece(side, Rook)
				p.applyBoards(rook, rookFrom, rookTo)
			}
		}
	}

	prevCastling := p.castling
	prevEnPassant := p.enPassant
	prevHash := p.hash
	prevHalfmove := p.halfmove

	// recompute en-passant target (spec.md §4.5 step 3).
	newEnPassant := Bitboard(0)
	if movedPiece.Type() == Pawn {
		from, to := moveEndpoints(m, side)
		if abs(from.Row()-to.Row()) == 2 {
			newEnPassant = masks.FileMask[from.Col()]
		}
	}

	// update castling rights (spec.md §4.5 step 4). rightsLostBy is zero
	// for every square that isn't a king or rook home square, so it is safe
	// to apply unconditionally to both the mover's start square and any
	// captured-on square - a king move clears both its side's bits (it
	// left the king's home square), a rook move or rook capture clears
	// only the matching bit.
	newCastling := p.castling
	{
		from, _ := moveEndpoints(m, side)
		newCastling &^= rightsLostBy(from)
	}
	if capturedSquare != NoSquare {
		newCastling &^= rightsLostBy(capturedSquare)
	}

	// incremental Zobrist update (spec.md §4.5 step 5).
	newHash := p.hash
	from, to := moveEndpoints(m, side)
	newHash ^= zobrist.Piece[movedPiece][from]
	newHash ^= zobrist.Piece[movedPiece][to]
	if capturedPiece != Empty {
		newHash ^= zobrist.Piece[capturedPiece][capturedSquare]
	}
	if m.Kind() == move.Normal && movedPiece.Type() == King {
		if rookFrom, rookTo := castleRookSquares(from, to); rookFrom != NoSquare {
			rook := MakePiece(side, Rook)
			newHash ^= zobrist.Piece[rook][rookFrom]
			newHash ^= zobrist.Piece[rook][rookTo]
		}
	}
	if m.Kind() == move.Promotion {
		_, toSq, letter := m.DecodePromotion(side)
		promoted := promotedPiece(side, letter)
		newHash ^= zobrist.Piece[movedPiece][toSq] // undo the plain "pawn arrives" key
		newHash ^= zobrist.Piece[promoted][toSq]
	}
	newHash ^= zobrist.Castle[prevCastling]
	newHash ^= zobrist.Castle[newCastling]
	newHash ^= zobrist.EpKeyForTarget(prevEnPassant)
	newHash ^= zobrist.EpKeyForTarget(newEnPassant)
	newHash ^= zobrist.Side

	p.castling = newCastling
	p.enPassant = newEnPassant
	p.hash = newHash
	p.halfmove++
	if movedPiece.Type() == Pawn || capturedPiece != Empty {
		p.halfmove = 0
	}
	p.side = side.Flip()
	p.lastMoved = movedPiece
	p.lastCaptured = capturedPiece
	p.log = append(p.log, m)
	p.undo = append(p.undo, undoEntry{
		move:           m,
		capturedPiece:  capturedPiece,
		capturedSquare: capturedSquare,
		prevCastling:   prevCastling,
		prevEnPassant:  prevEnPassant,
		prevHash:       prevHash,
		prevHalfmove:   prevHalfmove,
	})
}

// Undo reverses the last Make call (spec.md §4.5 Position.undo()). Kings'
// location is re-derived from the bitboards on demand; no extra field is
// authoritative.
func (p *Position) Undo() {
	n := len(p.undo)
	if n == 0 {
		return
	}
	u := p.undo[n-1]
	p.undo = p.undo[:n-1]
	p.log = p.log[:len(p.log)-1]

	p.side = p.side.Flip()
	side := p.side
	m := u.move

	switch m.Kind() {
	case move.Promotion:
		from, to, letter := m.DecodePromotion(side)
		pawn := MakePiece(side, Pawn)
		promoted := promotedPiece(side, letter)
		p.boards[promoted] &^= to.Bb()
		p.boards[pawn] |= from.Bb()
		if u.capturedPiece != Empty {
			p.boards[u.capturedPiece] |= u.capturedSquare.Bb()
		}

	case move.EnPassant:
		from, to, _ := m.DecodeEnPassant()
		pawn := MakePiece(side, Pawn)
		p.boards[pawn] = (p.boards[pawn] &^ to.Bb()) | from.Bb()
		if u.capturedPiece != Empty {
			p.boards[u.capturedPiece] |= u.capturedSquare.Bb()
		}

	default:
		from, to := m.Decode()
		movedPiece := p.PieceAt(to)
		p.boards[movedPiece] = (p.boards[movedPiece] &^ to.Bb()) | from.Bb()
		if u.capturedPiece != Empty {
			p.boards[u.capturedPiece] |= u.capturedSquare.Bb()
		}
		if movedPiece.Type() == King {
			if rookFrom, rookTo := castleRookSquares(from, to); rookFrom != NoSquare {
				rook := MakePiece(side, Rook)
				p.boards[rook] = (p.boards[rook] &^ rookTo.Bb()) | rookFrom.Bb()
			}
		}
	}

	p.castling = u.prevCastling
	p.enPassant = u.prevEnPassant
	p.hash = u.prevHash
	p.halfmove = u.prevHalfmove
	if len(p.log) > 0 {
		p.lastMoved = p.PieceAt(moveToEndSquare(p.log[len(p.log)-1], p.side))
	} else {
		p.lastMoved = Empty
	}
	p.lastCaptured = Empty
}

// moveEndpoints returns the from/to squares of m irrespective of its kind.
func moveEndpoints(m move.Move, side Color) (from, to Square) {
	switch m.Kind() {
	case move.Promotion:
		from, to, _ = m.DecodePromotion(side)
	case move.EnPassant:
		from, to, _ = m.DecodeEnPassant()
	default:
		from, to = m.Decode()
	}
	return
}

func moveToEndSquare(m move.Move, side Color) Square {
	_, to := moveEndpoints(m, side)
	return to
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
