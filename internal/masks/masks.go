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

// Package masks precomputes every constant bitboard the move generator
// needs: files, ranks, diagonals, anti-diagonals, the knight and king attack
// tables, and the two wrap-guards fileAB/fileGH. Everything here is a
// package-level var filled once from init(), the way
// internal/types/bitboard.go precomputes sqBb and friends at package init
// instead of recomputing them on every call.
package masks

import (
	. "github.com/kopp/chessgo/internal/types"
)

var (
	// FileMask[0..7] = files a..h.
	FileMask [8]Bitboard
	// RankMask[0..7] = ranks 8..1 (index 0 is rank 8, matching row 0).
	RankMask [8]Bitboard
	// DiagMask[0..14] indexed by (row+col), top-left to bottom-right.
	DiagMask [15]Bitboard
	// AntiDiagMask[0..14] indexed by (row-col+7), top-right to bottom-left.
	AntiDiagMask [15]Bitboard

	// FileAB is the union of files a and b.
	FileAB Bitboard
	// FileGH is the union of files g and h.
	FileGH Bitboard
	// NotFileA / NotFileH guard single-file wraps for pawn captures.
	NotFileA Bitboard
	NotFileH Bitboard
	// Rank8Mask / Rank1Mask / Rank4Mask / Rank5Mask are used by pawn pushes,
	// double-pushes and en-passant.
	Rank8Mask Bitboard
	Rank1Mask Bitboard
	Rank4Mask Bitboard
	Rank5Mask Bitboard

	// CentreMask is the classic d4/d5/e4/e5 centre square set.
	CentreMask Bitboard

	// KnightAttacks[sq] / KingAttacks[sq] are precomputed per-square attack
	// sets (no occupancy dependency - knights and kings don't slide).
	KnightAttacks [SqLength]Bitboard
	KingAttacks   [SqLength]Bitboard

	// line masks per square, used by the sliding-piece o-2s generator.
	RankOf [SqLength]Bitboard
	FileOf [SqLength]Bitboard
	DiagOf [SqLength]Bitboard
	ADiagOf [SqLength]Bitboard
)

func init() {
	for col := 0; col < 8; col++ {
		var m Bitboard
		for row := 0; row < 8; row++ {
			m |= NewSquare(row, col).Bb()
		}
		FileMask[col] = m
	}
	for row := 0; row < 8; row++ {
		var m Bitboard
		for col := 0; col < 8; col++ {
			m |= NewSquare(row, col).Bb()
		}
		RankMask[row] = m
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			DiagMask[row+col] |= NewSquare(row, col).Bb()
			AntiDiagMask[row-col+7] |= NewSquare(row, col).Bb()
		}
	}

	FileAB = FileMask[0] | FileMask[1]
	FileGH = FileMask[6] | FileMask[7]
	NotFileA = ^FileMask[0]
	NotFileH = ^FileMask[7]

	Rank8Mask = RankMask[0]
	Rank1Mask = RankMask[7]
	Rank4Mask = RankMask[4]
	Rank5Mask = RankMask[3]

	CentreMask = NewSquare(3, 3).Bb() | NewSquare(3, 4).Bb() | NewSquare(4, 3).Bb() | NewSquare(4, 4).Bb()

	knightDeltas := [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingDeltas := [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := NewSquare(row, col)
			RankOf[sq] = RankMask[row]
			FileOf[sq] = FileMask[col]
			DiagOf[sq] = DiagMask[row+col]
			ADiagOf[sq] = AntiDiagMask[row-col+7]

			var kn, kg Bitboard
			for _, d := range knightDeltas {
				r, c := row+d[0], col+d[1]
				if r >= 0 && r < 8 && c >= 0 && c < 8 {
					kn |= NewSquare(r, c).Bb()
				}
			}
			for _, d := range kingDeltas {
				r, c := row+d[0], col+d[1]
				if r >= 0 && r < 8 && c >= 0 && c < 8 {
					kg |= NewSquare(r, c).Bb()
				}
			}
			KnightAttacks[sq] = kn
			KingAttacks[sq] = kg
		}
	}
}
