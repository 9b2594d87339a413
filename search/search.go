/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package search implements iterative-deepening negamax over a
// transposition table and history-ordered move picker (spec §4.12).
package search

import (
	"sync/atomic"
	"time"

	golog "github.com/op/go-logging"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/config"
	"github.com/Ciekce/syntaks/history"
	"github.com/Ciekce/syntaks/logging"
	"github.com/Ciekce/syntaks/movepick"
	"github.com/Ciekce/syntaks/moveslice"
	"github.com/Ciekce/syntaks/transpositiontable"
	"github.com/Ciekce/syntaks/types"
)

var maxPly = config.Settings.Search.MaxPly

// Search holds everything one search needs across iterations: the
// transposition table and history tables persist across calls to Run,
// matching the teacher's long-lived Search struct reused move after move.
type Search struct {
	log *golog.Logger

	tt      *transpositiontable.Table
	history *history.Tables

	limits *Limits
	stop   atomic.Bool

	nodes uint64
	stats Statistics

	moveLists [256]*moveslice.MoveList
	pv        [256][]types.Move

	keyHistory []uint64
}

// NewSearch returns a search engine with a freshly sized transposition
// table and empty history tables.
func NewSearch(ttSizeMb int) *Search {
	s := &Search{
		log:     logging.GetLog("search"),
		tt:      transpositiontable.NewTable(ttSizeMb),
		history: history.New(),
	}
	for i := range s.moveLists {
		s.moveLists[i] = moveslice.NewMoveList()
	}
	return s
}

// NewGame clears all search state that must not leak between games.
func (s *Search) NewGame() {
	s.tt.Clear()
	s.history.Clear()
}

// Stop requests that any in-progress Run return as soon as it next checks,
// for the TEI "stop" command.
func (s *Search) Stop() {
	s.stop.Store(true)
}

// Run performs iterative deepening from depth 1 until limits signals a
// stop, returning the last fully-completed iteration's result. priorKeys
// is the real game's key history up to pos, used for repetition detection
// inside the search tree (spec's twofold rule, §4.8/§4.14 resolution).
// maxDepth caps the number of iterative-deepening iterations; pass 0 to
// search to the engine's full configured MaxPly (used by datagen's
// opening verification search to stop at VerifDepth instead).
func (s *Search) Run(pos *board.Position, priorKeys []uint64, limits *Limits, maxDepth int) Result {
	s.limits = limits
	s.stop.Store(false)
	s.nodes = 0
	s.stats.Clear()
	s.tt.NewSearch()

	s.keyHistory = append(s.keyHistory[:0], priorKeys...)

	if maxDepth <= 0 || maxDepth > maxPly {
		maxDepth = maxPly
	}

	var best Result

	for depth := 1; depth <= maxDepth; depth++ {
		score := s.negamax(pos, types.NoMove, depth, 0, -ScoreWin, ScoreWin)

		if s.stop.Load() && depth > 1 {
			break
		}

		best = Result{
			BestMove: s.pv[0][0],
			Score:    score,
			Depth:    depth,
			Nodes:    s.nodes,
			PV:       append([]types.Move(nil), s.pv[0]...),
		}

		if limits.ShouldStopSoft(s.nodes) {
			break
		}
	}

	return best
}

// Stats returns a copy of the last Run's statistics.
func (s *Search) Stats() Statistics {
	return s.stats
}

// elapsedSince is a tiny helper used by callers reporting nodes-per-second.
func elapsedSince(start time.Time) time.Duration {
	return time.Since(start)
}
