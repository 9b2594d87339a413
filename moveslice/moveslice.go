/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package moveslice holds the move-list type shared by the generator, move
// picker and perft harness.
package moveslice

import "github.com/Ciekce/syntaks/types"

// MoveList is a growable list of moves paired with an ordering score,
// scored and partially sorted in place by the move picker (spec §4.11)
// instead of being fully sorted up front.
type MoveList struct {
	Moves  []types.Move
	Scores []int32
}

// NewMoveList returns an empty list with capacity for a typical Tak node's
// move count.
func NewMoveList() *MoveList {
	return &MoveList{
		Moves:  make([]types.Move, 0, 64),
		Scores: make([]int32, 0, 64),
	}
}

// Push appends mv with a zero score.
func (l *MoveList) Push(mv types.Move) {
	l.Moves = append(l.Moves, mv)
	l.Scores = append(l.Scores, 0)
}

// Len returns the number of moves in the list.
func (l *MoveList) Len() int {
	return len(l.Moves)
}

// Reset empties the list without releasing its backing array.
func (l *MoveList) Reset() {
	l.Moves = l.Moves[:0]
	l.Scores = l.Scores[:0]
}

// SwapToFront finds the highest-scored move at index >= from and swaps it
// into position from, returning that move. Used by the move picker's
// selection-sort-style iteration (spec §4.11).
func (l *MoveList) SwapToFront(from int) types.Move {
	best := from
	for i := from + 1; i < len(l.Moves); i++ {
		if l.Scores[i] > l.Scores[best] {
			best = i
		}
	}
	l.Moves[from], l.Moves[best] = l.Moves[best], l.Moves[from]
	l.Scores[from], l.Scores[best] = l.Scores[best], l.Scores[from]
	return l.Moves[from]
}
