/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package types

// Player is one of the two sides.
type Player uint8

const (
	P1 Player = iota
	P2
)

// PlayerCount is the number of players.
const PlayerCount = 2

// Idx returns p's stable array index.
func (p Player) Idx() int {
	return int(p)
}

// Flip returns the other player.
func (p Player) Flip() Player {
	return p ^ 1
}

// Sign returns +1 for P1 and -1 for P2, used to fold a side-relative
// evaluation into a signed score (spec §4.14).
func (p Player) Sign() int32 {
	if p == P1 {
		return 1
	}
	return -1
}

// String renders p as "1" or "2", matching TPS's side-to-move token.
func (p Player) String() string {
	if p == P1 {
		return "1"
	}
	return "2"
}

// PieceType is the kind of a tile: Flat, Wall or Capstone.
type PieceType uint8

const (
	Flat PieceType = iota
	Wall
	Capstone
)

// PieceTypeCount is the number of piece kinds.
const PieceTypeCount = 3

// Idx returns pt's stable array index.
func (pt PieceType) Idx() int {
	return int(pt)
}

// IsRoadPiece reports whether pt counts toward a road (Flat and Capstone do,
// Wall does not).
func (pt PieceType) IsRoadPiece() bool {
	return pt != Wall
}

// Piece is a (Player, PieceType) pair, enumerated 0..5.
type Piece uint8

const (
	P1Flat Piece = iota
	P1Wall
	P1Capstone
	P2Flat
	P2Wall
	P2Capstone
)

// PieceCount is the number of distinct pieces.
const PieceCount = 6

// MakePiece builds the Piece for (player, kind).
func MakePiece(player Player, kind PieceType) Piece {
	return Piece(player.Idx()*PieceTypeCount + kind.Idx())
}

// Player returns the owning player of pc.
func (pc Piece) Player() Player {
	return Player(pc / PieceTypeCount)
}

// Type returns the kind of pc.
func (pc Piece) Type() PieceType {
	return PieceType(pc % PieceTypeCount)
}

// WithPlayer returns the Piece of kind pt owned by player, so callers can
// write pt.WithPlayer(player) when already holding a PieceType.
func (pt PieceType) WithPlayer(player Player) Piece {
	return MakePiece(player, pt)
}
