/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/moveslice"
	"github.com/Ciekce/syntaks/types"
)

// TestEveryGeneratedMoveIsLegal is spec §8 property 5: the generator must
// never emit a move pos.IsLegal rejects.
func TestEveryGeneratedMoveIsLegal(t *testing.T) {
	for _, f := range perftFixtures {
		pos, err := board.ParseTPS(f.tps)
		assert.NoError(t, err, f.tps)

		list := moveslice.NewMoveList()
		Generate(pos, list)
		for _, mv := range list.Moves {
			assert.True(t, pos.IsLegal(mv), "tps %q move %s flagged illegal", f.tps, mv)
		}
	}
}

func TestFirstPlyOnlyPlacesFlats(t *testing.T) {
	pos := board.NewStartPosition()
	list := moveslice.NewMoveList()
	Generate(pos, list)

	assert.NotEmpty(t, list.Moves)
	for _, mv := range list.Moves {
		assert.False(t, mv.IsSpread())
		assert.Equal(t, types.Flat, mv.Kind())
	}
}

func TestFirstPlyCoversEveryEmptySquare(t *testing.T) {
	pos := board.NewStartPosition()
	list := moveslice.NewMoveList()
	Generate(pos, list)
	assert.Equal(t, types.SquareCount, list.Len())
}

func TestNoCapstonePlacementsWhenReserveEmpty(t *testing.T) {
	pos, err := board.ParseTPS("1C,x5/x6/x6/x6/x6/x6 1 3")
	assert.NoError(t, err)
	assert.Zero(t, pos.CapsInHand[types.P1])
	assert.Equal(t, types.P1, pos.Stm)

	list := moveslice.NewMoveList()
	Generate(pos, list)
	for _, mv := range list.Moves {
		if !mv.IsSpread() {
			assert.NotEqual(t, types.Capstone, mv.Kind())
		}
	}
}
