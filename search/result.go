/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package search

import "github.com/Ciekce/syntaks/types"

// Result is one completed iterative-deepening iteration's outcome, enough
// to print a TEI `info`/`bestmove` line or feed datagen's move selection.
type Result struct {
	BestMove types.Move
	Score    int32
	Depth    int
	Nodes    uint64
	PV       []types.Move
}
