/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package datagen

import (
	"encoding/binary"
	"io"

	"github.com/Ciekce/syntaks/types"
)

// Outcome is a finished game's result, from P1's point of view (the
// Synpack format always stores WDL relative to P1, spec §6.3).
type Outcome uint8

const (
	OutcomeLoss Outcome = 0
	OutcomeDraw Outcome = 1
	OutcomeWin  Outcome = 2
)

// standardType is the record-type nibble packed alongside the outcome in
// Synpack's header byte; syntaks only ever writes the standard type.
const standardType = 0

// scoredMove is a move paired with the search score it was played with,
// the wire format written verbatim as 2 bytes + 2 bytes little-endian.
type scoredMove struct {
	mv    uint16
	score int16
}

// synpackWriter accumulates one game's moves (spec §6.3): a handful of
// unscored opening moves followed by the scored moves, then serializes the
// whole game as a single Synpack record on request.
type synpackWriter struct {
	unscoredMoves []uint16
	moves         []scoredMove
}

func newSynpackWriter() *synpackWriter {
	return &synpackWriter{
		unscoredMoves: make([]uint16, 0, 16),
		moves:         make([]scoredMove, 0, 1024),
	}
}

// start clears the writer for a new game.
func (w *synpackWriter) start() {
	w.unscoredMoves = w.unscoredMoves[:0]
	w.moves = w.moves[:0]
}

// pushUnscored records one of the random opening moves played before the
// verification search, which datagen never attaches a score to.
func (w *synpackWriter) pushUnscored(mv types.Move) {
	w.unscoredMoves = append(w.unscoredMoves, mv.Raw())
}

// push records a searched move together with its score.
func (w *synpackWriter) push(mv types.Move, score int32) {
	w.moves = append(w.moves, scoredMove{mv: mv.Raw(), score: int16(score)})
}

// writeAllWithOutcome serializes the accumulated game to w as a single
// Synpack record: a header byte `(outcome << 6) | standardType`, a
// little-endian u16 unscored-move count, the unscored moves, the scored
// moves (u16 move + i16 score pairs), and a four-zero-byte terminator. It
// returns the number of scored positions written.
func (w *synpackWriter) writeAllWithOutcome(dst io.Writer, outcome Outcome) (int, error) {
	header := byte(outcome)<<6 | standardType
	if _, err := dst.Write([]byte{header}); err != nil {
		return 0, err
	}

	var u16buf [2]byte
	binary.LittleEndian.PutUint16(u16buf[:], uint16(len(w.unscoredMoves)))
	if _, err := dst.Write(u16buf[:]); err != nil {
		return 0, err
	}

	for _, mv := range w.unscoredMoves {
		binary.LittleEndian.PutUint16(u16buf[:], mv)
		if _, err := dst.Write(u16buf[:]); err != nil {
			return 0, err
		}
	}

	var recBuf [4]byte
	for _, sm := range w.moves {
		binary.LittleEndian.PutUint16(recBuf[0:2], sm.mv)
		binary.LittleEndian.PutUint16(recBuf[2:4], uint16(sm.score))
		if _, err := dst.Write(recBuf[:]); err != nil {
			return 0, err
		}
	}

	if _, err := dst.Write([]byte{0, 0, 0, 0}); err != nil {
		return 0, err
	}

	return len(w.moves), nil
}
