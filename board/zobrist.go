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
	"github.com/Ciekce/syntaks/prng"
	"github.com/Ciekce/syntaks/types"
)

// MaxHeight bounds how many tiles a single stack may hold. 16 comfortably
// exceeds anything reachable on a 6x6 board (62 total pieces, but no single
// square can ever absorb more than a handful of carries) while keeping the
// player_key table small (spec §3.2/§4.2).
const MaxHeight = 16

const (
	p2KeyCount     = 1
	topKeyCount    = types.PieceTypeCount * types.SquareCount
	playerKeyCount = MaxHeight * types.PlayerCount * types.SquareCount

	totalKeyCount = p2KeyCount + topKeyCount + playerKeyCount

	p2KeyOffset     = 0
	topKeyOffset    = p2KeyOffset + p2KeyCount
	playerKeyOffset = topKeyOffset + topKeyCount
)

// zobristSeed is the fixed seed the key table is derived from. Matches the
// reference so that two independent implementations built to the spec's
// "replicate the PRNG identically" note would produce identical keys.
const zobristSeed = 0x75e83deec533723c

var keys [totalKeyCount]uint64

func init() {
	rng := prng.NewSfc64(zobristSeed)
	rng.Fill(keys[:])
}

// p2Key is XORed into Position.Key whenever side-to-move is P2.
func p2Key() uint64 {
	return keys[p2KeyOffset]
}

// topKey is XORed in/out when the top piece type at sq changes.
func topKey(pt types.PieceType, sq types.Square) uint64 {
	return keys[topKeyOffset+sq.Idx()*types.PieceTypeCount+pt.Idx()]
}

// playerKey is XORed in/out when the tile at the given 0-based height on sq
// changes owner.
func playerKey(height int, player types.Player, sq types.Square) uint64 {
	if assert.DEBUG {
		assert.Assert(height >= 0 && height < MaxHeight, "zobrist height out of range")
	}
	return keys[playerKeyOffset+sq.Idx()*MaxHeight*types.PlayerCount+height*types.PlayerCount+player.Idx()]
}
