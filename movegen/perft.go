/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package movegen

import (
	"fmt"
	"io"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/moveslice"
)

// Perft counts the number of legal move sequences of length depth from pos,
// the standard move-generator correctness check (spec §8 property 4, §6.4).
func Perft(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := moveslice.NewMoveList()
	Generate(pos, moves)

	if depth == 1 {
		return uint64(moves.Len())
	}

	var total uint64
	for _, mv := range moves.Moves {
		child := pos.ApplyMove(mv)
		total += Perft(&child, depth-1)
	}
	return total
}

// SplitPerft prints, for each legal root move, the perft count of the
// subtree below it, followed by the grand total — the per-move breakdown
// used to localise a move-generator bug against a reference implementation.
func SplitPerft(w io.Writer, pos *board.Position, depth int) uint64 {
	moves := moveslice.NewMoveList()
	Generate(pos, moves)

	var total uint64
	for _, mv := range moves.Moves {
		var count uint64
		if depth <= 1 {
			count = 1
		} else {
			child := pos.ApplyMove(mv)
			count = Perft(&child, depth-1)
		}
		fmt.Fprintf(w, "%s: %d\n", mv.String(), count)
		total += count
	}
	fmt.Fprintf(w, "\ntotal: %d\n", total)
	return total
}
