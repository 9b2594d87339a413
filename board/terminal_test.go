/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ciekce/syntaks/types"
)

func spreadStub() types.Move {
	return types.SpreadMove(types.MakeSquare(0, 0), types.Up, 0b1)
}

func placementStub() types.Move {
	return types.PlacementMove(types.Flat, types.MakeSquare(0, 0))
}

// TestOpponentRoadTakesPriorityOverMoversOwnRoad is the "suicide" case: the
// opponent (pos.Stm, about to move next) already has a road, which loses
// for the mover even though the same spread also completed the mover's own
// road on a different line.
func TestOpponentRoadTakesPriorityOverMoversOwnRoad(t *testing.T) {
	pos, err := ParseTPS("2,2,2,2,2,2/1,1,1,1,1,1/x6/x6/x6/x6 2 10")
	assert.NoError(t, err)

	outcome, terminal := Terminal(pos, spreadStub(), false)
	assert.True(t, terminal)
	assert.Equal(t, OutcomeLoss, outcome)
}

func TestMoverOwnRoadWinsViaSpreadWhenOpponentHasNone(t *testing.T) {
	pos, err := ParseTPS("x6/1,1,1,1,1,1/x6/x6/x6/x6 2 10")
	assert.NoError(t, err)

	outcome, terminal := Terminal(pos, spreadStub(), false)
	assert.True(t, terminal)
	assert.Equal(t, OutcomeWin, outcome)
}

func TestPlacementNeverCompletesRoadByItself(t *testing.T) {
	// A bare placement can never complete a road (spec §4.8); Terminal must
	// report non-terminal here even though a full road sits on the board,
	// since mv.IsSpread() gates the mover's-own-road win.
	pos, err := ParseTPS("x6/1,1,1,1,1,1/x6/x6/x6/x6 2 10")
	assert.NoError(t, err)

	_, terminal := Terminal(pos, placementStub(), false)
	assert.False(t, terminal)
}

// fullBoardNoRoadTPS is a checkerboard-filled board (no orthogonal run of
// same-colour tiles longer than one, so neither side has a road) with P1's
// a6 tile standing as a wall, which is not a flat, so the flat counts are
// unequal.
const fullBoardNoRoadTPS = "1S,2,1,2,1,2/2,1,2,1,2,1/1,2,1,2,1,2/2,1,2,1,2,1/1,2,1,2,1,2/2,1,2,1,2,1 2 19"

func TestFlatCountDecidesOnBoardFullAfterPlacement(t *testing.T) {
	pos, err := ParseTPS(fullBoardNoRoadTPS)
	assert.NoError(t, err)
	assert.True(t, pos.IsBoardFull())
	assert.False(t, pos.HasRoad(types.P1))
	assert.False(t, pos.HasRoad(types.P2))

	p1 := pos.FlatCountWithKomi(types.P1)
	p2 := pos.FlatCountWithKomi(types.P2)
	assert.NotEqual(t, p1, p2, "fixture must not be a tied flat count")

	outcome, terminal := Terminal(pos, placementStub(), false)
	assert.True(t, terminal)
	if p1 > p2 {
		assert.Equal(t, OutcomeWin, outcome)
	} else {
		assert.Equal(t, OutcomeLoss, outcome)
	}
}

func TestSpreadIgnoresFlatCountEvenOnFullBoard(t *testing.T) {
	pos, err := ParseTPS(fullBoardNoRoadTPS)
	assert.NoError(t, err)
	assert.True(t, pos.IsBoardFull())

	_, terminal := Terminal(pos, spreadStub(), false)
	assert.False(t, terminal)
}

func TestSpreadRepetitionDraws(t *testing.T) {
	pos := NewStartPosition()
	outcome, terminal := Terminal(pos, spreadStub(), true)
	assert.True(t, terminal)
	assert.Equal(t, OutcomeDraw, outcome)
}

func TestPlacementRepetitionNeverDraws(t *testing.T) {
	// Repetition can only occur via a spread (spec §9 resolution 2); a
	// placement always changes the set of occupied squares.
	pos := NewStartPosition()
	_, terminal := Terminal(pos, placementStub(), true)
	assert.False(t, terminal)
}

func TestNonTerminalPositionReportsNotTerminal(t *testing.T) {
	pos := NewStartPosition()
	outcome, terminal := Terminal(pos, placementStub(), false)
	assert.False(t, terminal)
	assert.Equal(t, OutcomeNone, outcome)
}
