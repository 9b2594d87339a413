/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftNeverWrapsEdges(t *testing.T) {
	// a1 shifted left/down should vanish rather than wrap to the opposite edge.
	a1 := MakeSquare(0, 0).Bb()
	assert.True(t, a1.Shift(Left).IsEmpty())
	assert.True(t, a1.Shift(Down).IsEmpty())

	f6 := MakeSquare(Size-1, Size-1).Bb()
	assert.True(t, f6.Shift(Right).IsEmpty())
	assert.True(t, f6.Shift(Up).IsEmpty())
}

func TestShiftMovesOneStep(t *testing.T) {
	b3 := MakeSquare(1, 2).Bb()
	assert.Equal(t, MakeSquare(1, 3).Bb(), b3.Shift(Up))
	assert.Equal(t, MakeSquare(1, 1).Bb(), b3.Shift(Down))
	assert.Equal(t, MakeSquare(0, 2).Bb(), b3.Shift(Left))
	assert.Equal(t, MakeSquare(2, 2).Bb(), b3.Shift(Right))
}

func TestPopLsbVisitsEverySquareOnce(t *testing.T) {
	var b Bitboard
	for sq := Square(0); sq < SquareCount; sq += 2 {
		b.Set(sq)
	}
	count := 0
	for !b.IsEmpty() {
		sq := b.PopLsb()
		assert.Zero(t, int(sq)%2)
		count++
	}
	assert.Equal(t, SquareCount/2, count)
}

func TestLsbMsbOfEmptyIsSqNone(t *testing.T) {
	var b Bitboard
	assert.Equal(t, SqNone, b.Lsb())
	assert.Equal(t, SqNone, b.Msb())
}
