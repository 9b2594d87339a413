/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package types holds the small, copyable value types shared across the
// whole engine: squares, players, piece kinds, directions and the packed
// move encoding.
package types

import (
	"fmt"

	"github.com/Ciekce/syntaks/assert"
)

// Size is the board edge length. 6x6 Tak only; see spec Non-goals.
const Size = 6

// SquareCount is the number of squares on the board.
const SquareCount = Size * Size

// Square identifies one of the 36 squares, numbered in row-major order with
// square 0 = file A, rank 1.
type Square uint8

// SqNone is the sentinel for "no square".
const SqNone Square = SquareCount

// MakeSquare builds a Square from zero-based file/rank.
func MakeSquare(file, rank int) Square {
	if assert.DEBUG {
		assert.Assert(file >= 0 && file < Size && rank >= 0 && rank < Size, "square out of range")
	}
	return Square(rank*Size + file)
}

// IsValid reports whether sq is one of the 36 board squares.
func (sq Square) IsValid() bool {
	return sq < SquareCount
}

// File returns the zero-based file (column) of sq.
func (sq Square) File() int {
	return int(sq) % Size
}

// Rank returns the zero-based rank (row) of sq.
func (sq Square) Rank() int {
	return int(sq) / Size
}

// Idx returns sq as a plain array index. Present for symmetry with the
// reference implementation's sq.idx() calls.
func (sq Square) Idx() int {
	return int(sq)
}

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	return Bitboard(uint64(1) << uint(sq))
}

// ParseSquare parses algebraic notation ("a1".."f6") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return SqNone, fmt.Errorf("malformed square %q", s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	if file < 0 || file >= Size || rank < 0 || rank >= Size {
		return SqNone, fmt.Errorf("malformed square %q", s)
	}
	return MakeSquare(file, rank), nil
}

// String renders sq as algebraic notation, or "-" if invalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string(rune('a'+sq.File())) + string(rune('1'+sq.Rank()))
}

// Shifted returns the square one step in dir from sq, and whether that step
// stayed on the board.
func (sq Square) Shifted(dir Direction) (Square, bool) {
	bb := sq.Bb().Shift(dir)
	if bb.IsEmpty() {
		return SqNone, false
	}
	return bb.Lsb(), true
}

// All returns every valid square in LSB-first (row-major) order.
func All() []Square {
	squares := make([]Square, SquareCount)
	for i := range squares {
		squares[i] = Square(i)
	}
	return squares
}
