/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package movepick

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/history"
	"github.com/Ciekce/syntaks/movegen"
	"github.com/Ciekce/syntaks/moveslice"
	"github.com/Ciekce/syntaks/types"
)

func legalMoves(pos *board.Position) *moveslice.MoveList {
	list := moveslice.NewMoveList()
	movegen.Generate(pos, list)
	return list
}

func TestTtMoveReturnedFirstWhenLegal(t *testing.T) {
	pos := board.NewStartPosition()
	all := legalMoves(pos)
	ttMove := all.Moves[0]

	mp := New(pos, moveslice.NewMoveList(), history.New(), ttMove)
	assert.Equal(t, ttMove, mp.Next())
}

func TestTtMoveNotReturnedTwice(t *testing.T) {
	pos := board.NewStartPosition()
	all := legalMoves(pos)
	ttMove := all.Moves[0]

	mp := New(pos, moveslice.NewMoveList(), history.New(), ttMove)
	seen := map[types.Move]int{}
	for {
		mv := mp.Next()
		if mv == types.NoMove {
			break
		}
		seen[mv]++
	}
	assert.Equal(t, 1, seen[ttMove])
}

func TestPickerYieldsEveryLegalMoveExactlyOnce(t *testing.T) {
	pos := board.NewStartPosition()
	all := legalMoves(pos)

	mp := New(pos, moveslice.NewMoveList(), history.New(), types.NoMove)
	seen := map[types.Move]bool{}
	count := 0
	for {
		mv := mp.Next()
		if mv == types.NoMove {
			break
		}
		assert.False(t, seen[mv], "move %s yielded twice", mv)
		seen[mv] = true
		count++
	}
	assert.Equal(t, all.Len(), count)
}

func TestIllegalTtMoveSkipped(t *testing.T) {
	pos := board.NewStartPosition()
	bogus := types.PlacementMove(types.Capstone, types.MakeSquare(0, 0))

	mp := New(pos, moveslice.NewMoveList(), history.New(), bogus)
	first := mp.Next()
	assert.NotEqual(t, bogus, first)
}

func TestCapstonePlacementOrderedAheadOfWall(t *testing.T) {
	pos := board.NewStartPosition()
	// Past the two opening plies, so walls and capstones can be placed.
	pos.Ply = 2
	hist := history.New()

	list := legalMoves(pos)
	cap, wall := types.NoMove, types.NoMove
	for _, mv := range list.Moves {
		if mv.IsSpread() {
			continue
		}
		switch mv.Kind() {
		case types.Capstone:
			cap = mv
		case types.Wall:
			wall = mv
		}
	}

	if cap == types.NoMove || wall == types.NoMove {
		t.Skip("position does not expose both a capstone and wall placement")
	}

	mp := New(pos, moveslice.NewMoveList(), hist, types.NoMove)
	var capIdx, wallIdx = -1, -1
	idx := 0
	for {
		mv := mp.Next()
		if mv == types.NoMove {
			break
		}
		if mv == cap {
			capIdx = idx
		}
		if mv == wall {
			wallIdx = idx
		}
		idx++
	}
	assert.Less(t, capIdx, wallIdx)
}
