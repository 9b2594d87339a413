/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package search

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var out = message.NewPrinter(language.German)

// Statistics are extra counters not essential to a functioning search, kept
// around for TEI `info` lines and tuning, the way the teacher's own
// Statistics struct tracks cutoff and pruning counts beyond the bare result.
type Statistics struct {
	Nodes           uint64
	TtHits          uint64
	TtCutoffs       uint64
	BetaCuts        uint64
	BetaCuts1st     uint64
	BestMoveChanges uint64
}

// Clear resets every counter to zero, called at the start of each Run.
func (s *Statistics) Clear() {
	*s = Statistics{}
}

// String renders the counters with thousands separators, the same
// message.NewPrinter(language.German) convention the teacher uses for its
// own search statistics dump.
func (s Statistics) String() string {
	return out.Sprintf("nodes %d tthits %d ttcutoffs %d betacuts %d (%d 1st) bestmovechanges %d",
		s.Nodes, s.TtHits, s.TtCutoffs, s.BetaCuts, s.BetaCuts1st, s.BestMoveChanges)
}
