/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package transpositiontable implements the fixed-size, lock-free
// transposition table (spec §4.9).
package transpositiontable

import (
	"math/bits"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Ciekce/syntaks/types"
)

var out = message.NewPrinter(language.German)

// Bound records which side of the search window a stored score came from.
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// entrySize approximates an Entry's footprint for the MiB->slot-count
// conversion; it does not need to be exact.
const entrySize = 12

// Entry is one transposition table slot: a 32-bit key fragment, a packed
// move, a signed score, search depth, and a byte combining a 2-bit bound
// with a 6-bit generation counter (spec §4.9).
type Entry struct {
	Key32    uint32
	Move16   uint16
	Score16  int16
	Depth8   uint8
	boundGen uint8
}

// Bound returns the entry's stored bound type.
func (e Entry) Bound() Bound {
	return Bound(e.boundGen & 0x3)
}

// Generation returns the entry's stored generation.
func (e Entry) Generation() uint8 {
	return e.boundGen >> 2
}

// Move returns the entry's stored move.
func (e Entry) Move() types.Move {
	return types.MoveFromRaw(e.Move16)
}

// Table is the fixed-size bucket array. It is written without locks: a
// torn write can corrupt a single entry, but that entry's key32 will almost
// certainly no longer match on the next probe, so it is silently discarded
// rather than trusted (spec §4.9).
type Table struct {
	entries   []Entry
	generation uint8
}

// NewTable allocates a table sized to sizeMb mebibytes.
func NewTable(sizeMb int) *Table {
	t := &Table{}
	t.Resize(sizeMb)
	return t
}

// Resize reallocates the table to sizeMb mebibytes, discarding all entries.
func (t *Table) Resize(sizeMb int) {
	count := sizeMb * 1024 * 1024 / entrySize
	if count < 1 {
		count = 1
	}
	t.entries = make([]Entry, count)
	t.generation = 0
}

// Clear empties the table without reallocating.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.generation = 0
}

// NewSearch advances the generation counter, used so Put's replacement
// policy favours fresh entries over ones from earlier searches.
func (t *Table) NewSearch() {
	t.generation = (t.generation + 1) & 0x3f
}

// index maps a 64-bit key uniformly onto [0, len(entries)) via a
// multiply-high reduction, avoiding both a division and the power-of-two
// size restriction a plain mask would impose.
func (t *Table) index(key uint64) uint64 {
	hi, _ := bits.Mul64(key, uint64(len(t.entries)))
	return hi
}

// Probe returns the slot for key if its key32 fragment matches, regardless
// of stored depth: the caller uses the move for ordering even when the
// depth is insufficient to trust the score (spec §4.9).
func (t *Table) Probe(key uint64) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.Key32 != uint32(key>>32) || e.Bound() == BoundNone {
		return Entry{}, false
	}
	return e, true
}

// Put stores a search result, replacing the existing slot when the new
// entry is exact (always keep PV lines), when the slot holds a different
// key, or when its depth, boosted by how much fresher its generation is, is
// at least as large as what is there.
func (t *Table) Put(key uint64, depth int, move types.Move, score int32, bound Bound) {
	idx := t.index(key)
	e := &t.entries[idx]
	key32 := uint32(key >> 32)

	genBonus := int(t.generation-e.Generation()) & 0x3f
	replace := bound == BoundExact || e.Key32 != key32 || depth+2*genBonus >= int(e.Depth8)
	if !replace {
		return
	}

	e.Key32 = key32
	e.Move16 = move.Raw()
	e.Score16 = int16(score)
	e.Depth8 = uint8(depth)
	e.boundGen = uint8(bound) | t.generation<<2
}

// Hashfull estimates table occupancy in permille, sampling the first 1000
// slots, matching the conventional UCI/TEI `info hashfull` statistic.
func (t *Table) Hashfull() int {
	sample := 1000
	if sample > len(t.entries) {
		sample = len(t.entries)
	}
	used := 0
	for i := 0; i < sample; i++ {
		if t.entries[i].Bound() != BoundNone && t.entries[i].Generation() == t.generation {
			used++
		}
	}
	return used * 1000 / sample
}

// String reports the table's size and occupancy with thousands separators,
// the same message.NewPrinter(language.German) convention the teacher uses
// for its own TT size-report logging.
func (t *Table) String() string {
	return out.Sprintf("TT: %d entries (%d Byte each), hashfull %d/1000", len(t.entries), entrySize, t.Hashfull())
}
