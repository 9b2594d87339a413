/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package history implements the per-side butterfly and blocker-hashed
// history tables used to order quiet moves during search (spec §4.10).
package history

import (
	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/types"
)

// entryLimit bounds a single entry's magnitude; gravity pulls every update
// toward it so the table self-normalises instead of overflowing.
const entryLimit = 16384

// MaxBonus is the largest magnitude a caller may pass to Update; larger
// bonuses are clamped so no single cutoff can dominate the table.
const MaxBonus = entryLimit / 4

// entry is one history slot: a signed, gravity-updated score.
type entry struct {
	value int16
}

// update applies a gravity-weighted bonus: the entry moves toward bonus,
// with the step shrinking as the entry approaches +-entryLimit.
func (e *entry) update(bonus int32) {
	value := int32(e.value)
	value += bonus - value*abs32(bonus)/entryLimit
	e.value = int16(value)
}

func (e entry) get() int32 {
	return int32(e.value)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// combinedHist is a flat butterfly table indexed by every possible packed
// move value.
type combinedHist struct {
	entries [1 << 16]entry
}

func (h *combinedHist) clear() {
	h.entries = [1 << 16]entry{}
}

// blockerBuckets is how many buckets the blocker-key-hashed table uses;
// the key is reduced modulo this count rather than kept in full, trading a
// little index collision for a much smaller table.
const blockerBuckets = 512

type hashedTable struct {
	entries [blockerBuckets]combinedHist
}

func (h *hashedTable) clear() {
	for i := range h.entries {
		h.entries[i].clear()
	}
}

func (h *hashedTable) at(key uint64) *combinedHist {
	return &h.entries[key%blockerBuckets]
}

type sidedTables struct {
	hist    combinedHist
	blocker hashedTable
}

func (s *sidedTables) clear() {
	s.hist.clear()
	s.blocker.clear()
}

// Tables holds both players' history tables.
type Tables struct {
	sides [types.PlayerCount]sidedTables
}

// New returns a freshly zeroed set of history tables.
func New() *Tables {
	return &Tables{}
}

// Clear resets every entry to zero, used when a new game starts.
func (t *Tables) Clear() {
	for i := range t.sides {
		t.sides[i].clear()
	}
}

// Update applies bonus (clamped to +-MaxBonus) to mv's entry in both the
// plain butterfly table and the blocker-key bucket for pos's side to move.
func (t *Tables) Update(pos *board.Position, mv types.Move, bonus int32) {
	if bonus > MaxBonus {
		bonus = MaxBonus
	} else if bonus < -MaxBonus {
		bonus = -MaxBonus
	}

	sided := &t.sides[pos.Stm]
	sided.hist.entries[mv.Raw()].update(bonus)
	sided.blocker.at(pos.BlockerKey).entries[mv.Raw()].update(bonus)
}

// Score returns mv's combined history score for pos's side to move: the
// plain butterfly score plus the blocker-bucketed score.
func (t *Tables) Score(pos *board.Position, mv types.Move) int32 {
	sided := &t.sides[pos.Stm]
	score := sided.hist.entries[mv.Raw()].get()
	score += sided.blocker.at(pos.BlockerKey).entries[mv.Raw()].get()
	return score
}
