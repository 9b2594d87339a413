/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package search

import (
	"math"

	"github.com/Ciekce/syntaks/board"
)

// Score constants (spec §4.13). Scores are centi-flat, side-relative, with
// forced wins/losses folded in near +-ScoreWin by distance from the root so
// that shorter mates are always preferred over longer ones.
const (
	ScoreWin  int32 = 30000
	ScoreNone int32 = math.MinInt32
)

// isDecisive reports whether score represents a forced win or loss rather
// than a positional evaluation.
func isDecisive(score int32) bool {
	return score >= ScoreWin-int32(maxPly) || score <= -(ScoreWin - int32(maxPly))
}

// foldToTT converts a score computed at ply (distance from the search
// root) into one relative to the node itself, so it remains meaningful
// when later probed from a different ply.
func foldToTT(score int32, ply int) int32 {
	switch {
	case score >= ScoreWin-int32(maxPly):
		return score + int32(ply)
	case score <= -(ScoreWin - int32(maxPly)):
		return score - int32(ply)
	default:
		return score
	}
}

// foldFromTT is the inverse of foldToTT, reattaching the probing node's ply
// to a stored node-relative mate score.
func foldFromTT(score int32, ply int) int32 {
	switch {
	case score >= ScoreWin-int32(maxPly):
		return score - int32(ply)
	case score <= -(ScoreWin - int32(maxPly)):
		return score + int32(ply)
	default:
		return score
	}
}

// outcomeScore turns a terminal board.Outcome into a mate-distance score
// from the mover's point of view, folded by how deep into the tree ply is.
func outcomeScore(outcome board.Outcome, ply int) int32 {
	switch outcome {
	case board.OutcomeWin:
		return ScoreWin - int32(ply)
	case board.OutcomeLoss:
		return -(ScoreWin - int32(ply))
	default:
		return 0
	}
}
