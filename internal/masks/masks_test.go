package masks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/kopp/chessgo/internal/types"
)

func TestFileAndRankMasks(t *testing.T) {
	assert.Equal(t, 8, popcount(FileMask[0]))
	assert.Equal(t, 8, popcount(RankMask[0]))
	assert.True(t, FileMask[0]&NewSquare(0, 0).Bb() != 0)
	assert.True(t, RankMask[0]&NewSquare(0, 5).Bb() != 0)
}

func TestKnightAttacksC6(t *testing.T) {
	c6 := NewSquare(2, 2)
	att := KnightAttacks[c6]
	assert.Equal(t, 8, popcount(att))
	// a5, a7, b4, b8, d4, d8, e5, e7 all reachable with no wrap.
	for _, sq := range []Square{NewSquare(3, 0), NewSquare(1, 0), NewSquare(4, 1), NewSquare(0, 1),
		NewSquare(4, 3), NewSquare(0, 3), NewSquare(3, 4), NewSquare(1, 4)} {
		assert.True(t, att&sq.Bb() != 0, "expected %s reachable from c6", sq)
	}
}

func TestKingAttacksCorner(t *testing.T) {
	a8 := NewSquare(0, 0)
	assert.Equal(t, 3, popcount(KingAttacks[a8]))
}

func popcount(b Bitboard) int {
	n := 0
	for b != 0 {
		b &= b - 1
		n++
	}
	return n
}
