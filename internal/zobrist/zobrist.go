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

// Package zobrist holds the random 64-bit key tables used to fingerprint a
// chess position, and the small XOR helpers that let Position update its
// hash incrementally inside make/undo instead of recomputing it from
// scratch on every move. Keys come from a fixed PRNG seed - the same seed
// FrankyGo's own internal/position.initZobrist() style package-init uses -
// so perft and hash-consistency runs are reproducible across processes.
package zobrist

import (
	"math/rand"

	"github.com/kopp/chessgo/internal/masks"
	"github.com/kopp/chessgo/internal/types"
)

// Key is a 64-bit Zobrist fingerprint of a position.
type Key uint64

// fixedSeed keeps key generation reproducible across runs and machines.
const fixedSeed = 0x5DEECE66D

var (
	// Piece[piece][square] keys, piece indexed by types.Piece (0..11).
	Piece [types.PieceLength][types.SqLength]Key
	// Side is XORed in whenever it is Black to move.
	Side Key
	// Castle[castlingRights] - one key per combination of the 4 rights bits.
	Castle [16]Key
	// EpFile[file] keys, file 0..7 = a..h.
	EpFile [8]Key
)

func init() {
	r := rand.New(rand.NewSource(fixedSeed))
	for p := 0; p < types.PieceLength; p++ {
		for s := 0; s < types.SqLength; s++ {
			Piece[p][s] = Key(r.Uint64())
		}
	}
	Side = Key(r.Uint64())
	for i := range Castle {
		Castle[i] = Key(r.Uint64())
	}
	for i := range EpFile {
		EpFile[i] = Key(r.Uint64())
	}
}

// EpKeyForTarget returns the en-passant key contribution for an en-passant
// target bitboard (the file mask of the destination square, or 0 if none).
func EpKeyForTarget(epTarget types.Bitboard) Key {
	if epTarget == 0 {
		return 0
	}
	for f := 0; f < 8; f++ {
		if epTarget&masks.FileMask[f] != 0 {
			return EpFile[f]
		}
	}
	return 0
}
