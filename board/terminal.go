/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package board

import "github.com/Ciekce/syntaks/types"

// Outcome is a game result, always expressed from the mover's point of
// view (the player who played the move Terminal was called with).
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeDraw
)

// Terminal decides whether mv ended the game, given pos as it stands
// immediately after mv was applied (so pos.Stm is the mover's opponent)
// and whether pos's key has now occurred once before in the current game
// (spec §4.8; repeated is the search/datagen caller's repetition check).
//
// Road priority matches datagen/mod.rs's check_terminal: the opponent
// already having a road takes priority over everything else, because a
// spread carrying the opponent's own buried tiles onto their last empty
// square can hand them a road the mover never intended — this "suicide"
// case loses outright even if the same spread also completed the mover's
// own road. Only once that is ruled out does the mover's own road (checked
// only when mv is a spread) win.
func Terminal(pos *Position, mv types.Move, repeated bool) (Outcome, bool) {
	mover := pos.Stm.Flip()

	if pos.HasRoad(pos.Stm) {
		return OutcomeLoss, true
	}
	if mv.IsSpread() && pos.HasRoad(mover) {
		return OutcomeWin, true
	}

	if !mv.IsSpread() && (pos.IsBoardFull() || pos.IsReserveEmpty(types.P1) || pos.IsReserveEmpty(types.P2)) {
		p1 := pos.FlatCountWithKomi(types.P1)
		p2 := pos.FlatCountWithKomi(types.P2)

		switch {
		case p1 == p2:
			return OutcomeDraw, true
		case (mover == types.P1) == (p1 > p2):
			return OutcomeWin, true
		default:
			return OutcomeLoss, true
		}
	}

	if mv.IsSpread() && repeated {
		return OutcomeDraw, true
	}

	return OutcomeNone, false
}
