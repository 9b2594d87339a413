/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package board

import (
	"github.com/Ciekce/syntaks/assert"
	"github.com/Ciekce/syntaks/types"
)

// Stack is the pile of tiles occupying one square. players is a colour
// bitmap with LSB = bottom tile, so the top tile's owner is
// (players >> (height-1)) & 1 (spec §4.3). Only the top tile may be a Wall
// or Capstone; every buried tile is implicitly a Flat.
type Stack struct {
	Height  int
	Players uint32
	Top     types.PieceType
}

// IsEmpty reports whether the square is bare.
func (s *Stack) IsEmpty() bool {
	return s.Height == 0
}

// TopOwner returns the owner of the top tile. Undefined if the stack is
// empty.
func (s *Stack) TopOwner() types.Player {
	return types.Player((s.Players >> uint(s.Height-1)) & 1)
}

// Place sets an empty square to a single tile of (owner, kind).
func (s *Stack) Place(owner types.Player, kind types.PieceType) {
	if assert.DEBUG {
		assert.Assert(s.IsEmpty(), "place on non-empty stack")
	}
	s.Height = 1
	s.Players = uint32(owner.Idx())
	s.Top = kind
}

// Pickup removes the top n tiles, returning their colour bitmap (LSB =
// deepest tile of the picked-up group) so the caller can redistribute them
// along a spread. The stack's new top is derived from whatever tile is now
// exposed (always a Flat, since only the previous top could have been a
// Wall/Capstone and that tile is necessarily part of the picked-up group
// when n >= 1).
func (s *Stack) Pickup(n int) uint32 {
	if assert.DEBUG {
		assert.Assert(n >= 1 && n <= s.Height, "pickup count out of range")
	}
	carried := (s.Players >> uint(s.Height-n)) & ((uint32(1) << uint(n)) - 1)
	s.Height -= n
	if s.Height == 0 {
		s.Top = types.Flat
	} else {
		s.Top = types.Flat
	}
	return carried
}

// Drop extends the stack by n tiles whose colour bits are ownerBits (LSB =
// deepest of the dropped group), setting the new top to flavour.
func (s *Stack) Drop(n int, flavour types.PieceType, ownerBits uint32) {
	if assert.DEBUG {
		assert.Assert(s.Height+n <= MaxHeight, "stack overflow")
	}
	s.Players |= ownerBits << uint(s.Height)
	s.Height += n
	s.Top = flavour
}

// Smash flattens a Wall top to Flat. Only ever called when a Capstone
// spreads onto a Wall.
func (s *Stack) Smash() {
	if assert.DEBUG {
		assert.Assert(s.Top == types.Wall, "smash on non-wall top")
	}
	s.Top = types.Flat
}
