/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package movegen enumerates legal moves for a Position: placements and
// carry-limit respecting spreads, driven by the hits package's first-
// blocker lookup (spec §4.6).
package movegen

import (
	"math/bits"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/hits"
	"github.com/Ciekce/syntaks/moveslice"
	"github.com/Ciekce/syntaks/types"
)

// Generate appends every legal move from pos into dst.
func Generate(pos *board.Position, dst *moveslice.MoveList) {
	if pos.Ply < types.PlayerCount {
		generateStartingMoves(pos, dst)
		return
	}
	generatePlacements(pos, dst)
	generateSpreads(pos, dst)
}

func generateStartingMoves(pos *board.Position, dst *moveslice.MoveList) {
	for _, sq := range pos.Occ.Cmpl().Squares() {
		dst.Push(types.PlacementMove(types.Flat, sq))
	}
}

func generatePlacements(pos *board.Position, dst *moveslice.MoveList) {
	flats := pos.FlatsInHand[pos.Stm]
	caps := pos.CapsInHand[pos.Stm]
	if flats == 0 && caps == 0 {
		return
	}

	for _, sq := range pos.Occ.Cmpl().Squares() {
		if caps > 0 {
			dst.Push(types.PlacementMove(types.Capstone, sq))
		}
		if flats > 0 {
			dst.Push(types.PlacementMove(types.Flat, sq))
			dst.Push(types.PlacementMove(types.Wall, sq))
		}
	}
}

// doSpreads emits every pattern value the reference move generator would,
// for a single (square, direction) ray of usable length dist: starting at
// pattern, repeatedly emitting and then either climbing by lsb (still
// building toward dist touched squares) or advancing to the next
// lexicographic combination of dist squares once that count is reached
// (spec §4.5).
func doSpreads(sq types.Square, dir types.Direction, lsb, pattern uint8, dist int, limit uint8, emit func(types.Move)) {
	for pattern < limit {
		emit(types.SpreadMove(sq, dir, pattern))
		if bits.OnesCount8(pattern) == dist {
			pattern += pattern & -pattern
		} else {
			pattern += lsb
		}
	}
}

func generateSpreads(pos *board.Position, dst *moveslice.MoveList) {
	for _, sq := range pos.PlayerBB[pos.Stm].Squares() {
		st := &pos.Stacks[sq]
		top := st.Top
		maxCarry := st.Height
		if maxCarry > types.CarryLimit {
			maxCarry = types.CarryLimit
		}
		startBit := uint8(uint16(1)<<types.CarryLimit) >> uint(maxCarry)

		rayHits := hits.FindHits(pos.AllBlockers, sq)

		for _, dir := range types.Directions {
			hit := rayHits[dir.Idx()]
			dist := hit.Distance
			if dist == 0 {
				continue
			}

			limit := uint8(1 << types.CarryLimit)

			if hit.Stopper.IsValid() {
				stopperStack := &pos.Stacks[hit.Stopper]
				switch {
				case !stopperStack.IsEmpty() && stopperStack.Top == types.Wall:
					if top == types.Capstone {
						doSpreads(sq, dir, startBit, uint8(1<<(types.CarryLimit-1)), dist, limit, func(mv types.Move) {
							dst.Push(mv)
						})
						limit >>= 1
					}
					dist--
				case !stopperStack.IsEmpty() && stopperStack.Top == types.Capstone:
					dist--
				}
			}

			if dist == 0 {
				continue
			}
			doSpreads(sq, dir, startBit, startBit, dist, limit, func(mv types.Move) {
				dst.Push(mv)
			})
		}
	}
}
