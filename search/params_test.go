/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ciekce/syntaks/board"
)

func TestFoldToFromTTRoundTrips(t *testing.T) {
	score := ScoreWin - 3
	stored := foldToTT(score, 5)
	assert.Equal(t, score, foldFromTT(stored, 5))
}

func TestFoldLeavesNonDecisiveScoresUntouched(t *testing.T) {
	assert.EqualValues(t, 42, foldToTT(42, 7))
	assert.EqualValues(t, 42, foldFromTT(42, 7))
}

func TestIsDecisiveOnlyNearScoreWin(t *testing.T) {
	assert.False(t, isDecisive(100))
	assert.True(t, isDecisive(ScoreWin))
	assert.True(t, isDecisive(-ScoreWin))
}

func TestOutcomeScoreFoldsByPly(t *testing.T) {
	assert.Equal(t, ScoreWin-2, outcomeScore(board.OutcomeWin, 2))
	assert.Equal(t, -(ScoreWin - 2), outcomeScore(board.OutcomeLoss, 2))
	assert.EqualValues(t, 0, outcomeScore(board.OutcomeDraw, 2))
}
