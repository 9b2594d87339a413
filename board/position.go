/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

// Package board holds the canonical Tak position representation: stacks,
// incrementally-maintained bitboards and Zobrist keys, move application,
// road detection and flat counting (spec §3.3, §4.2, §4.7, §4.8).
package board

import (
	"fmt"

	"github.com/Ciekce/syntaks/assert"
	"github.com/Ciekce/syntaks/types"
	"github.com/Ciekce/syntaks/util"
)

// StartFlats and StartCaps are each player's initial reserve on 6x6.
const (
	StartFlats = 30
	StartCaps  = 1
)

// Komi is the fixed flat-count bonus given to P2 (spec §9, open question 4).
const Komi = 4

// Position is the canonical, mutable game state.
type Position struct {
	Stm types.Player
	Ply int

	Stacks [types.SquareCount]Stack

	PlayerBB [types.PlayerCount]types.Bitboard
	TypeBB   [types.PieceTypeCount]types.Bitboard
	Occ      types.Bitboard

	AllBlockers types.Bitboard

	FlatsInHand [types.PlayerCount]int
	CapsInHand  [types.PlayerCount]int

	Key        uint64
	BlockerKey uint64
}

// NewStartPosition returns the initial empty-board position.
func NewStartPosition() *Position {
	p := &Position{Stm: types.P1}
	p.FlatsInHand[types.P1] = StartFlats
	p.FlatsInHand[types.P2] = StartFlats
	p.CapsInHand[types.P1] = StartCaps
	p.CapsInHand[types.P2] = StartCaps
	return p
}

// PlayerPieceBB returns the squares whose top tile is (player, kind).
func (p *Position) PlayerPieceBB(player types.Player, kind types.PieceType) types.Bitboard {
	return p.PlayerBB[player].And(p.TypeBB[kind])
}

// Roads returns the squares that count toward player's road: owned Flats
// and Capstones (Walls never contribute).
func (p *Position) Roads(player types.Player) types.Bitboard {
	return p.PlayerPieceBB(player, types.Flat).Or(p.PlayerPieceBB(player, types.Capstone))
}

// removeTop un-registers the current top tile of sq from every derived
// bitboard and key, given its (owner, kind). Must be called before the
// Stack itself is mutated.
func (p *Position) removeTop(sq types.Square, owner types.Player, kind types.PieceType) {
	p.PlayerBB[owner] = p.PlayerBB[owner].Without(sq)
	p.TypeBB[kind] = p.TypeBB[kind].Without(sq)
	p.Key ^= topKey(kind, sq)
	if kind != types.Flat {
		p.AllBlockers = p.AllBlockers.Without(sq)
		p.BlockerKey ^= topKey(kind, sq)
	}
	p.Occ = p.PlayerBB[types.P1].Or(p.PlayerBB[types.P2])
}

// addTop registers a new top tile of (owner, kind) at sq.
func (p *Position) addTop(sq types.Square, owner types.Player, kind types.PieceType) {
	p.PlayerBB[owner] = p.PlayerBB[owner].With(sq)
	p.TypeBB[kind] = p.TypeBB[kind].With(sq)
	p.Key ^= topKey(kind, sq)
	if kind != types.Flat {
		p.AllBlockers = p.AllBlockers.With(sq)
		p.BlockerKey ^= topKey(kind, sq)
	}
	p.Occ = p.PlayerBB[types.P1].Or(p.PlayerBB[types.P2])
}

// xorPlayerTiles XORs the per-tile player_key for n tiles at sq, starting at
// 0-based height startHeight, whose colour bits are ownerBits (LSB =
// deepest tile of this run, at startHeight). Used symmetrically for both depositing and
// lifting tiles, since XOR is its own inverse.
func (p *Position) xorPlayerTiles(sq types.Square, startHeight int, ownerBits uint32, n int) {
	for i := 0; i < n; i++ {
		owner := types.Player((ownerBits >> uint(i)) & 1)
		p.Key ^= playerKey(startHeight+i, owner, sq)
	}
}

// pickupFrom lifts the top n tiles from sq, returning their colour bitmap
// (LSB = deepest tile of the lifted group), and keeps every derived
// bitboard/key consistent.
func (p *Position) pickupFrom(sq types.Square, n int) uint32 {
	st := &p.Stacks[sq]
	oldHeight := st.Height
	oldOwner := st.TopOwner()
	oldTop := st.Top

	p.removeTop(sq, oldOwner, oldTop)
	carried := st.Pickup(n)
	p.xorPlayerTiles(sq, oldHeight-n, carried, n)

	if !st.IsEmpty() {
		p.addTop(sq, st.TopOwner(), st.Top)
	}
	return carried
}

// smashAt flattens the Wall top at sq to Flat, keeping derived state
// consistent. Only ever called immediately before a Capstone's terminal
// drop onto a Wall.
func (p *Position) smashAt(sq types.Square) {
	st := &p.Stacks[sq]
	owner := st.TopOwner()
	p.removeTop(sq, owner, types.Wall)
	st.Smash()
	p.addTop(sq, owner, types.Flat)
}

// dropAt deposits n tiles with colour bits ownerBits onto sq, setting the
// new top to flavour.
func (p *Position) dropAt(sq types.Square, n int, flavour types.PieceType, ownerBits uint32) {
	st := &p.Stacks[sq]
	if !st.IsEmpty() {
		p.removeTop(sq, st.TopOwner(), st.Top)
	}
	startHeight := st.Height
	st.Drop(n, flavour, ownerBits)
	p.xorPlayerTiles(sq, startHeight, ownerBits, n)
	p.addTop(sq, st.TopOwner(), st.Top)
}

// placeAt places a single fresh tile of (owner, kind) on an empty square.
func (p *Position) placeAt(sq types.Square, owner types.Player, kind types.PieceType) {
	st := &p.Stacks[sq]
	if assert.DEBUG {
		assert.Assert(st.IsEmpty(), "placement on occupied square")
	}
	st.Place(owner, kind)
	p.Key ^= playerKey(0, owner, sq)
	p.addTop(sq, owner, kind)
}

// ApplyMove returns the position resulting from playing mv, leaving p
// untouched.
func (p Position) ApplyMove(mv types.Move) Position {
	np := p
	np.ApplyMoveInPlace(mv)
	return np
}

// ApplyMoveInPlace mutates p by playing mv (spec §4.7). mv is assumed
// legal; IsLegal exists separately to re-validate a stale TT move.
func (p *Position) ApplyMoveInPlace(mv types.Move) {
	if !mv.IsSpread() {
		sq := mv.Square()
		if p.Ply < types.PlayerCount {
			// First-two-plies swap rule: the placement is always a Flat and
			// belongs to the opponent of stm, whose reserve is debited
			// (spec §9, open question 1).
			owner := p.Stm.Flip()
			p.placeAt(sq, owner, types.Flat)
			p.FlatsInHand[owner]--
		} else {
			owner := p.Stm
			kind := mv.Kind()
			p.placeAt(sq, owner, kind)
			if kind == types.Capstone {
				p.CapsInHand[owner]--
			} else {
				p.FlatsInHand[owner]--
			}
		}
	} else {
		p.applySpread(mv)
	}

	p.Stm = p.Stm.Flip()
	p.Ply++
	p.Key ^= p2Key()
}

func (p *Position) applySpread(mv types.Move) {
	origin := mv.Square()
	dir := mv.Dir()

	st := &p.Stacks[origin]
	maxCarry := util.Min(st.Height, types.CarryLimit)
	originTop := st.Top

	drops := types.DropCounts(mv.Pattern(), maxCarry)
	total := 0
	for _, d := range drops {
		total += d
	}

	carried := p.pickupFrom(origin, total)

	cur := origin
	for i, n := range drops {
		next, ok := cur.Shifted(dir)
		if assert.DEBUG {
			assert.Assert(ok, "spread ran off the board")
		}
		cur = next

		group := carried & ((uint32(1) << uint(n)) - 1)
		carried >>= uint(n)

		flavour := types.Flat
		if i == len(drops)-1 {
			flavour = originTop
			if flavour == types.Capstone && !p.Stacks[cur].IsEmpty() && p.Stacks[cur].Top == types.Wall {
				p.smashAt(cur)
			}
		}
		p.dropAt(cur, n, flavour, group)
	}
}

// IsLegal re-validates a move that may be stale (e.g. a TT move from a
// different position with the same key prefix). It does not need to be
// fast; it is only ever called once per node.
func (p *Position) IsLegal(mv types.Move) bool {
	if p.Ply < types.PlayerCount {
		return !mv.IsSpread() && mv.Kind() == types.Flat && p.Stacks[mv.Square()].IsEmpty()
	}

	if !mv.IsSpread() {
		sq := mv.Square()
		if !p.Stacks[sq].IsEmpty() {
			return false
		}
		switch mv.Kind() {
		case types.Capstone:
			return p.CapsInHand[p.Stm] > 0
		default:
			return p.FlatsInHand[p.Stm] > 0
		}
	}

	origin := mv.Square()
	st := &p.Stacks[origin]
	if st.IsEmpty() || st.TopOwner() != p.Stm {
		return false
	}

	maxCarry := util.Min(st.Height, types.CarryLimit)
	drops := types.DropCounts(mv.Pattern(), maxCarry)

	cur := origin
	for i := range drops {
		next, ok := cur.Shifted(mv.Dir())
		if !ok {
			return false
		}
		cur = next

		dest := &p.Stacks[cur]
		isTerminal := i == len(drops)-1
		if !dest.IsEmpty() {
			switch dest.Top {
			case types.Capstone:
				return false
			case types.Wall:
				if !(isTerminal && st.Top == types.Capstone) {
					return false
				}
			}
		}
	}
	return true
}

// HasRoad reports whether player has a 4-connected chain of Flats/Capstones
// linking opposite edges (spec §4.8).
func (p *Position) HasRoad(player types.Player) bool {
	roads := p.Roads(player)
	if roads.IsEmpty() {
		return false
	}
	if floodConnects(roads, types.UpperEdge, types.LowerEdge) {
		return true
	}
	return floodConnects(roads, types.LeftEdge, types.RightEdge)
}

// floodConnects reports whether any square in from is 4-connected, entirely
// within within, to any square in to.
func floodConnects(within, from, to types.Bitboard) bool {
	frontier := within.And(from)
	if frontier.IsEmpty() {
		return false
	}
	visited := frontier
	for !frontier.IsEmpty() {
		if !frontier.And(to).IsEmpty() {
			return true
		}
		next := types.Empty
		for _, dir := range types.Directions {
			next = next.Or(frontier.Shift(dir))
		}
		next = next.And(within).And(visited.Cmpl())
		visited = visited.Or(next)
		frontier = next
	}
	return false
}

// FlatCount returns the number of squares whose top tile is player's Flat.
func (p *Position) FlatCount(player types.Player) int {
	return p.PlayerPieceBB(player, types.Flat).Popcount()
}

// FlatCountWithKomi returns FlatCount plus the fixed komi bonus for P2.
func (p *Position) FlatCountWithKomi(player types.Player) int {
	count := p.FlatCount(player)
	if player == types.P2 {
		count += Komi
	}
	return count
}

// IsBoardFull reports whether every square is occupied.
func (p *Position) IsBoardFull() bool {
	return p.Occ.Popcount() == types.SquareCount
}

// IsReserveEmpty reports whether player has no flats or capstones left to
// place.
func (p *Position) IsReserveEmpty(player types.Player) bool {
	return p.FlatsInHand[player] == 0 && p.CapsInHand[player] == 0
}

// RecomputeKeys rebuilds Key and BlockerKey from scratch, for verification
// (spec invariant #2/#6) and TPS loading.
func (p *Position) RecomputeKeys() {
	p.Key = 0
	p.BlockerKey = 0
	if p.Stm == types.P2 {
		p.Key ^= p2Key()
	}
	for sq := types.Square(0); sq < types.SquareCount; sq++ {
		st := &p.Stacks[sq]
		if st.IsEmpty() {
			continue
		}
		p.Key ^= topKey(st.Top, sq)
		if st.Top != types.Flat {
			p.BlockerKey ^= topKey(st.Top, sq)
		}
		for h := 0; h < st.Height; h++ {
			owner := types.Player((st.Players >> uint(h)) & 1)
			p.Key ^= playerKey(h, owner, sq)
		}
	}
}

// RecomputeBitboards rebuilds every derived bitboard from Stacks, for use
// right after TPS parsing.
func (p *Position) RecomputeBitboards() {
	p.PlayerBB = [types.PlayerCount]types.Bitboard{}
	p.TypeBB = [types.PieceTypeCount]types.Bitboard{}
	p.AllBlockers = types.Empty
	for sq := types.Square(0); sq < types.SquareCount; sq++ {
		st := &p.Stacks[sq]
		if st.IsEmpty() {
			continue
		}
		owner := st.TopOwner()
		p.PlayerBB[owner] = p.PlayerBB[owner].With(sq)
		p.TypeBB[st.Top] = p.TypeBB[st.Top].With(sq)
		if st.Top != types.Flat {
			p.AllBlockers = p.AllBlockers.With(sq)
		}
	}
	p.Occ = p.PlayerBB[types.P1].Or(p.PlayerBB[types.P2])
}

// String renders p as a TPS string.
func (p *Position) String() string {
	return ToTPS(p)
}

// Verify checks the invariants of spec §3.3, returning an error describing
// the first violation found. Used by tests and debug-mode assertions, not
// on the hot path.
func (p *Position) Verify() error {
	if p.PlayerBB[types.P1].And(p.PlayerBB[types.P2]) != types.Empty {
		return fmt.Errorf("player_bb overlap")
	}
	if p.Occ != p.PlayerBB[types.P1].Or(p.PlayerBB[types.P2]) {
		return fmt.Errorf("occ does not match union of player_bb")
	}
	if p.AllBlockers != p.TypeBB[types.Wall].Or(p.TypeBB[types.Capstone]) {
		return fmt.Errorf("all_blockers mismatch")
	}
	// A buried tile's original kind is lost (buried tiles function as
	// Flats forever, spec §3.2), so reserves are only verifiable in
	// aggregate: every tile a player has ever placed, of any kind, stays on
	// the board at some depth until the game ends.
	onBoard := [types.PlayerCount]int{}
	for sq := types.Square(0); sq < types.SquareCount; sq++ {
		st := &p.Stacks[sq]
		for h := 0; h < st.Height; h++ {
			owner := types.Player((st.Players >> uint(h)) & 1)
			onBoard[owner]++
		}
	}
	for pl := types.Player(0); pl < types.PlayerCount; pl++ {
		if p.FlatsInHand[pl]+p.CapsInHand[pl]+onBoard[pl] != StartFlats+StartCaps {
			return fmt.Errorf("reserve invariant violated for player %d", pl)
		}
	}
	wantKey, wantBlocker := p.Key, p.BlockerKey
	cp := *p
	cp.RecomputeKeys()
	if cp.Key != wantKey || cp.BlockerKey != wantBlocker {
		return fmt.Errorf("key mismatch: incremental %x/%x vs recomputed %x/%x", wantKey, wantBlocker, cp.Key, cp.BlockerKey)
	}
	return nil
}
