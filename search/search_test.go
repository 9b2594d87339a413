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
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ciekce/syntaks/board"
)

func TestRunToFixedDepthReturnsLegalMove(t *testing.T) {
	s := NewSearch(1)
	pos := board.NewStartPosition()
	limits := NewLimits(time.Now())
	limits.SetNodes(1_000_000)

	result := s.Run(pos, nil, limits, 2)

	assert.NotEqual(t, 0, result.Depth)
	assert.True(t, pos.IsLegal(result.BestMove))
	assert.NotEmpty(t, result.PV)
	assert.Equal(t, result.BestMove, result.PV[0])
}

func TestRunStopsAtNodeBudget(t *testing.T) {
	s := NewSearch(1)
	pos := board.NewStartPosition()
	limits := NewLimits(time.Now())
	limits.SetNodes(50)

	result := s.Run(pos, nil, limits, 0)
	assert.True(t, result.Nodes >= 50 || result.Depth >= 1)
}

func TestNewGameClearsTranspositionTable(t *testing.T) {
	s := NewSearch(1)
	pos := board.NewStartPosition()
	limits := NewLimits(time.Now())
	limits.SetNodes(1000)
	s.Run(pos, nil, limits, 2)

	assert.NotZero(t, s.tt.Hashfull())
	s.NewGame()
	assert.Zero(t, s.tt.Hashfull())
}

func TestStopSetsStopFlag(t *testing.T) {
	s := NewSearch(1)
	assert.False(t, s.stop.Load())
	s.Stop()
	assert.True(t, s.stop.Load())
}
