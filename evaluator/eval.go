/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package evaluator computes the side-relative static evaluation used at
// search leaves (spec §4.14).
package evaluator

import (
	"math/bits"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/config"
	"github.com/Ciekce/syntaks/types"
	"github.com/Ciekce/syntaks/util"
)

// Score is a centi-flat evaluation, positive favouring the side to move.
type Score int32

// supportCaptiveWeights holds the per-top-type (support, captive) weight
// pairs for the shallow (nearest 6 buried tiles below the top) and deep
// (everything below that) bands of a stack.
type supportCaptiveWeights struct {
	shallowSupport, shallowCaptive Score
	deepSupport, deepCaptive       Score
}

var weightsByTop = [types.PieceTypeCount]supportCaptiveWeights{
	types.Flat:     {shallowSupport: 30, shallowCaptive: -40, deepSupport: 6, deepCaptive: 8},
	types.Wall:     {shallowSupport: 35, shallowCaptive: -15, deepSupport: 7, deepCaptive: -3},
	types.Capstone: {shallowSupport: 40, shallowCaptive: -20, deepSupport: 8, deepCaptive: -4},
}

// shallowBand is how many tiles at the top of a stack, the top tile
// included, form the "shallow" band: the shallowBand-1 buried tiles under
// the top are scored at the shallow rate; anything deeper uses the flatter
// deep rate.
const shallowBand = 7

// ringWeights are applied to the five concentric rings RINGS radiates
// outward from the central 2x2, most-central first (eval.rs).
var ringWeights = [5]int32{2, 8, -5, -15, -40}

// rings[i] is the set of squares exactly i rings away from the central
// 2x2 square block (spec §4.14).
var rings [5]types.Bitboard

func init() {
	covered := types.FromRaw(1<<14 | 1<<15 | 1<<20 | 1<<21)
	cur := covered
	for i := range rings {
		rings[i] = cur
		next := cur.Shl(types.Size).Or(cur.Shr(types.Size)).Or(cur.Shl(1)).Or(cur.Shr(1))
		next = next.And(covered.Cmpl())
		covered = covered.Or(next)
		cur = next
	}
}

// capstonePsqt scores a Capstone by board position, most central squares
// highest, corners penalised (spec §4.14). Not present in the reference
// this was ported from; weights are a modest, clearly-separated addition
// tuned only for sane ordering, not measured strength.
var capstonePsqt = [types.SquareCount]Score{
	-10, -4, -2, -2, -4, -10,
	-4, 4, 8, 8, 4, -4,
	-2, 8, 12, 12, 8, -2,
	-2, 8, 12, 12, 8, -2,
	-4, 4, 8, 8, 4, -4,
	-10, -4, -2, -2, -4, -10,
}

const isolatedCapstonePenalty Score = -15
const vulnerabilityBonus Score = 10

// Evaluate returns pos's evaluation from stm's point of view, including the
// fixed tempo bonus.
func Evaluate(pos *board.Position) Score {
	p1Score := staticEvalPlayer(pos, types.P1, 0)
	p2Score := staticEvalPlayer(pos, types.P2, int32(board.Komi))

	p1Flats := pos.PlayerPieceBB(types.P1, types.Flat)
	p2Flats := pos.PlayerPieceBB(types.P2, types.Flat)

	var ringDiff Score
	for i, ring := range rings {
		w := Score(ringWeights[i])
		ringDiff += Score(p1Flats.And(ring).Popcount())*w - Score(p2Flats.And(ring).Popcount())*w
	}

	eval := p1Score - p2Score + ringDiff
	return eval*Score(pos.Stm.Sign()) + Score(config.Settings.Eval.Tempo)
}

func staticEvalPlayer(pos *board.Position, player types.Player, komi int32) Score {
	flats := Score(pos.PlayerPieceBB(player, types.Flat).Popcount()) + Score(komi)
	flats *= Score(config.Settings.Eval.FlatWeight)

	flatsInHand := Score(pos.FlatsInHand[player]) * Score(config.Settings.Eval.FlatsInHandWeight)
	capsInHand := Score(pos.CapsInHand[player]) * Score(config.Settings.Eval.CapsInHandWeight)

	roads := pos.Roads(player)
	adjHorz := roads.And(roads.Shift(types.Left))
	adjVert := roads.And(roads.Shift(types.Down))
	lineHorz := adjHorz.And(adjHorz.Shift(types.Left))
	lineVert := adjVert.And(adjVert.Shift(types.Down))

	adjValue := Score(adjHorz.Popcount()+adjVert.Popcount()) * Score(config.Settings.Eval.RoadAdjWeight)
	lineValue := Score(lineHorz.Popcount()+lineVert.Popcount()) * Score(config.Settings.Eval.RoadLineWeight)

	support, captive, psqt := stackScore(pos, player)

	return flats + flatsInHand + capsInHand + adjValue + lineValue + support + captive + psqt
}

func stackScore(pos *board.Position, player types.Player) (support, captive, psqt Score) {
	playerFlip := uint32(0)
	if player == types.P2 {
		playerFlip = 0xFFFFFFFF
	}

	for _, sq := range pos.PlayerBB[player].Squares() {
		st := &pos.Stacks[sq]
		height := st.Height
		if height == 1 {
			if st.Top == types.Capstone {
				psqt += capstoneTerms(pos, player, sq)
			}
			continue
		}

		shallowPlayers := st.Players ^ playerFlip
		var deepPlayers, deepMask uint32

		if height > shallowBand {
			deepMask = (uint32(1) << uint(height-shallowBand)) - 1
			deepPlayers = shallowPlayers & deepMask
			shallowPlayers >>= uint(height - shallowBand)
			height = shallowBand
		}

		shallowMask := (uint32(1) << uint(height-1)) - 1

		shallowSupportCount := Score(bits.OnesCount32(^shallowPlayers & shallowMask))
		shallowCaptiveCount := Score(bits.OnesCount32(shallowPlayers & shallowMask))
		deepSupportCount := Score(bits.OnesCount32(^deepPlayers & deepMask))
		deepCaptiveCount := Score(bits.OnesCount32(deepPlayers & deepMask))

		w := weightsByTop[st.Top]
		support += shallowSupportCount*w.shallowSupport + deepSupportCount*w.deepSupport
		captive += shallowCaptiveCount*w.shallowCaptive + deepCaptiveCount*w.deepCaptive

		if st.Top == types.Capstone {
			psqt += capstoneTerms(pos, player, sq)
		}
	}
	return support, captive, psqt
}

// capstoneTerms scores a single owned capstone by board position, isolation
// from friendly support, and threats against vulnerable enemy flat stacks.
func capstoneTerms(pos *board.Position, player types.Player, sq types.Square) Score {
	score := capstonePsqt[sq]

	isolated := true
	for _, dir := range types.Directions {
		adj, ok := sq.Shifted(dir)
		if !ok {
			continue
		}
		if pos.PlayerBB[player].Has(adj) {
			isolated = false
		}
		if pos.Roads(player.Flip()).Has(adj) {
			continue
		}
		enemySt := &pos.Stacks[adj]
		if enemySt.IsEmpty() || enemySt.TopOwner() != player.Flip() || enemySt.Top != types.Flat {
			continue
		}
		if enemySt.Height < 2 {
			continue
		}
		shallowMask := (uint32(1) << uint(util.Min(enemySt.Height-1, shallowBand))) - 1
		friendlyBuried := (^enemySt.Players) & shallowMask
		if player == types.P2 {
			friendlyBuried = enemySt.Players & shallowMask
		}
		if friendlyBuried != 0 {
			score += vulnerabilityBonus
		}
	}
	if isolated {
		score += isolatedCapstonePenalty
	}
	return score
}

