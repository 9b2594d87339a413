/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacementMoveRoundTrip(t *testing.T) {
	for _, kind := range []PieceType{Flat, Wall, Capstone} {
		for sq := Square(0); sq < SquareCount; sq++ {
			mv := PlacementMove(kind, sq)
			assert.False(t, mv.IsSpread())
			assert.Equal(t, kind, mv.Kind())
			assert.Equal(t, sq, mv.Square())

			raw := mv.Raw()
			assert.Equal(t, mv, MoveFromRaw(raw))
		}
	}
}

func TestSpreadMoveRoundTrip(t *testing.T) {
	for _, dir := range Directions {
		for sq := Square(0); sq < SquareCount; sq++ {
			var pattern uint8 = 0b0010101
			mv := SpreadMove(sq, dir, pattern)
			assert.True(t, mv.IsSpread())
			assert.Equal(t, dir, mv.Dir())
			assert.Equal(t, sq, mv.Square())
			assert.Equal(t, pattern, mv.Pattern())

			raw := mv.Raw()
			assert.Equal(t, mv, MoveFromRaw(raw))
		}
	}
}

func TestDropCountsSumsToMaxCarry(t *testing.T) {
	// pattern 0b0010101 with maxCarry 6: drops start at bits 0, 2, 4 and
	// each runs to the next set bit (the last to bit 6) -> groups of 2, 2, 2
	// carrying all 6 tiles.
	drops := DropCounts(0b0010101, 6)
	total := 0
	for _, d := range drops {
		total += d
	}
	assert.Equal(t, 6, total)
	assert.Equal(t, []int{2, 2, 2}, drops)
}

func TestMoveStringPlacements(t *testing.T) {
	assert.Equal(t, "b3", PlacementMove(Flat, MakeSquare(1, 2)).String())
	assert.Equal(t, "Sb3", PlacementMove(Wall, MakeSquare(1, 2)).String())
	assert.Equal(t, "Ca1", PlacementMove(Capstone, MakeSquare(0, 0)).String())
}
