/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package search

import (
	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/config"
	"github.com/Ciekce/syntaks/evaluator"
	"github.com/Ciekce/syntaks/movepick"
	"github.com/Ciekce/syntaks/transpositiontable"
	"github.com/Ciekce/syntaks/types"
)

// repeated reports whether key has occurred at least once already among
// the positions searched so far on this line (the twofold rule, §9/§4
// resolution 2).
func (s *Search) repeated(key uint64) bool {
	for _, k := range s.keyHistory {
		if k == key {
			return true
		}
	}
	return false
}

// negamax searches pos to depth plies, returning a score from the side to
// move's point of view. lastMove is the move that produced pos (NoMove at
// the root), used for the terminal check; ply is distance from the root,
// used for mate-score folding and PV bookkeeping.
func (s *Search) negamax(pos *board.Position, lastMove types.Move, depth, ply int, alpha, beta int32) int32 {
	s.pv[ply] = s.pv[ply][:0]

	if ply > 0 {
		if outcome, terminal := board.Terminal(pos, lastMove, s.repeated(pos.Key)); terminal {
			return -outcomeScore(outcome, ply)
		}
	}

	s.nodes++
	if s.nodes&1023 == 0 && s.limits.ShouldStopHard(s.nodes) {
		s.stop.Store(true)
	}
	if s.stop.Load() {
		return 0
	}

	if depth <= 0 {
		return int32(evaluator.Evaluate(pos))
	}

	origAlpha := alpha

	var ttMove types.Move = types.NoMove
	if entry, found := s.tt.Probe(pos.Key); found {
		s.stats.TtHits++
		ttMove = entry.Move()

		if ply > 0 && int(entry.Depth8) >= depth {
			score := foldFromTT(int32(entry.Score16), ply)
			switch entry.Bound() {
			case transpositiontable.BoundExact:
				return score
			case transpositiontable.BoundLower:
				if score >= beta {
					s.stats.TtCutoffs++
					return score
				}
			case transpositiontable.BoundUpper:
				if score <= alpha {
					s.stats.TtCutoffs++
					return score
				}
			}
		}
	}

	s.keyHistory = append(s.keyHistory, pos.Key)
	defer func() { s.keyHistory = s.keyHistory[:len(s.keyHistory)-1] }()

	list := s.moveLists[ply]
	picker := movepick.New(pos, list, s.history, ttMove)

	bestScore := ScoreNone
	bestMove := types.NoMove
	played := 0
	var triedQuiet []types.Move

	for {
		mv := picker.Next()
		if mv == types.NoMove {
			break
		}
		played++

		child := pos.ApplyMove(mv)
		score := -s.negamax(&child, mv, depth-1, ply+1, -beta, -alpha)

		if s.stop.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = mv

			if score > alpha {
				alpha = score
				s.pv[ply] = append(s.pv[ply][:0], mv)
				s.pv[ply] = append(s.pv[ply], s.pv[ply+1]...)
			}
		}

		if alpha >= beta {
			s.stats.BetaCuts++
			if played == 1 {
				s.stats.BetaCuts1st++
			}

			bonus := config.Settings.Search.HistoryBonusMul*int32(depth) - config.Settings.Search.HistoryBonusSub
			s.history.Update(pos, mv, bonus)
			for _, prev := range triedQuiet {
				s.history.Update(pos, prev, -bonus)
			}
			break
		}

		triedQuiet = append(triedQuiet, mv)
	}

	if played == 0 {
		// No legal moves: Tak has no pass, and the flat-count/full-board
		// terminal check above already catches an empty-reserve position,
		// so this can only be reached by a bug upstream. Score it as a
		// draw rather than panicking mid-search.
		return 0
	}

	bound := transpositiontable.BoundExact
	switch {
	case bestScore <= origAlpha:
		bound = transpositiontable.BoundUpper
	case bestScore >= beta:
		bound = transpositiontable.BoundLower
	}
	s.tt.Put(pos.Key, depth, bestMove, foldToTT(bestScore, ply), bound)

	return bestScore
}
