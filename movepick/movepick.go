/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package movepick implements the staged move picker search draws from:
// the TT move first, then generated moves in score order (spec §4.11).
package movepick

import (
	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/history"
	"github.com/Ciekce/syntaks/movegen"
	"github.com/Ciekce/syntaks/moveslice"
	"github.com/Ciekce/syntaks/types"
)

type stage int

const (
	stageTtMove stage = iota
	stageGenMoves
	stageMoves
	stageEnd
)

// placementBias gives a small static nudge to placements by piece kind,
// capstones first, then flats, then walls, ahead of any history score.
var placementBias = [types.PieceTypeCount]int32{
	types.Flat:     1 << 20,
	types.Wall:     0,
	types.Capstone: 2 << 20,
}

// Movepicker yields pos's legal moves one at a time: the transposition
// table move (if legal) first, skipped on the later generated pass, then
// every other generated move in descending score order.
type Movepicker struct {
	pos     *board.Position
	hist    *history.Tables
	moves   *moveslice.MoveList
	idx     int
	ttMove  types.Move
	stage   stage
}

// New returns a picker over pos's moves, using dst as scratch storage for
// the generated move list and hist for spread move ordering.
func New(pos *board.Position, dst *moveslice.MoveList, hist *history.Tables, ttMove types.Move) *Movepicker {
	return &Movepicker{
		pos:    pos,
		hist:   hist,
		moves:  dst,
		ttMove: ttMove,
		stage:  stageTtMove,
	}
}

// Next returns the next move to try, or NoMove once exhausted.
func (mp *Movepicker) Next() types.Move {
	for mp.stage != stageEnd {
		switch mp.stage {
		case stageTtMove:
			if mp.ttMove != types.NoMove && mp.pos.IsLegal(mp.ttMove) {
				mp.stage = stageGenMoves
				return mp.ttMove
			}
		case stageGenMoves:
			mp.moves.Reset()
			movegen.Generate(mp.pos, mp.moves)
			mp.scoreMoves()
		case stageMoves:
			if mp.idx < mp.moves.Len() {
				mv := mp.moves.SwapToFront(mp.idx)
				mp.idx++
				if mp.ttMove == types.NoMove || mv != mp.ttMove {
					return mv
				}
				continue
			}
		}
		mp.stage++
	}
	return types.NoMove
}

// scoreMoves assigns each generated move an ordering score: placements get
// a fixed per-kind bias, spreads are scored purely from history.
func (mp *Movepicker) scoreMoves() {
	for i, mv := range mp.moves.Moves {
		if mv.IsSpread() {
			mp.moves.Scores[i] = mp.hist.Score(mp.pos, mv)
		} else {
			mp.moves.Scores[i] = placementBias[mv.Kind()]
		}
	}
}
