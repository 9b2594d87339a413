/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ciekce/syntaks/types"
)

// ParseTPS parses a TPS string into a fresh Position (spec §6.1).
//
// A buried Wall/Capstone is indistinguishable from a Flat once covered
// (spec §3.2), so a capstone reserve cannot be reconstructed from a TPS
// string if that player's capstone is currently buried; ParseTPS assumes
// every placed capstone is still visible at some top, which holds for
// every position this engine itself ever produces.
func ParseTPS(tps string) (*Position, error) {
	fields := strings.Fields(tps)
	if len(fields) != 3 {
		return nil, fmt.Errorf("malformed TPS %q: expected 3 fields", tps)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != types.Size {
		return nil, fmt.Errorf("malformed TPS %q: expected %d ranks", tps, types.Size)
	}

	p := &Position{}

	for i, rankStr := range ranks {
		rank := types.Size - 1 - i
		file := 0
		for _, cell := range strings.Split(rankStr, ",") {
			if cell == "" {
				return nil, fmt.Errorf("malformed TPS %q: empty cell", tps)
			}
			if cell[0] == 'x' {
				n := 1
				if len(cell) > 1 {
					parsed, err := strconv.Atoi(cell[1:])
					if err != nil {
						return nil, fmt.Errorf("malformed TPS %q: bad empty run %q", tps, cell)
					}
					n = parsed
				}
				file += n
				continue
			}

			top := types.Flat
			tiles := cell
			switch cell[len(cell)-1] {
			case 'S':
				top = types.Wall
				tiles = cell[:len(cell)-1]
			case 'C':
				top = types.Capstone
				tiles = cell[:len(cell)-1]
			}
			if tiles == "" {
				return nil, fmt.Errorf("malformed TPS %q: empty stack %q", tps, cell)
			}

			if file >= types.Size {
				return nil, fmt.Errorf("malformed TPS %q: rank overflow", tps)
			}
			sq := types.MakeSquare(file, rank)
			st := &p.Stacks[sq]
			for _, c := range tiles {
				var owner types.Player
				switch c {
				case '1':
					owner = types.P1
				case '2':
					owner = types.P2
				default:
					return nil, fmt.Errorf("malformed TPS %q: bad tile %q", tps, string(c))
				}
				st.Players |= uint32(owner.Idx()) << uint(st.Height)
				st.Height++
			}
			st.Top = top
			file++
		}
		if file != types.Size {
			return nil, fmt.Errorf("malformed TPS %q: rank %d has %d squares, want %d", tps, i, file, types.Size)
		}
	}

	switch fields[1] {
	case "1":
		p.Stm = types.P1
	case "2":
		p.Stm = types.P2
	default:
		return nil, fmt.Errorf("malformed TPS %q: bad side to move %q", tps, fields[1])
	}

	moveNumber, err := strconv.Atoi(fields[2])
	if err != nil || moveNumber < 1 {
		return nil, fmt.Errorf("malformed TPS %q: bad move number %q", tps, fields[2])
	}
	p.Ply = 2 * (moveNumber - 1)
	if p.Stm == types.P2 {
		p.Ply++
	}

	p.RecomputeBitboards()
	p.RecomputeKeys()

	totalTiles := [types.PlayerCount]int{}
	for sq := types.Square(0); sq < types.SquareCount; sq++ {
		st := &p.Stacks[sq]
		for h := 0; h < st.Height; h++ {
			totalTiles[(st.Players>>uint(h))&1]++
		}
	}
	for pl := types.Player(0); pl < types.PlayerCount; pl++ {
		capPlaced := !p.PlayerPieceBB(pl, types.Capstone).IsEmpty()
		caps := 0
		if capPlaced {
			caps = 1
		}
		p.CapsInHand[pl] = StartCaps - caps
		p.FlatsInHand[pl] = StartFlats - (totalTiles[pl] - caps)
	}

	return p, nil
}

// ToTPS renders p as a TPS string.
func ToTPS(p *Position) string {
	var sb strings.Builder
	for i := 0; i < types.Size; i++ {
		rank := types.Size - 1 - i
		if i > 0 {
			sb.WriteByte('/')
		}

		var tokens []string
		for file := 0; file < types.Size; {
			st := &p.Stacks[types.MakeSquare(file, rank)]
			if st.IsEmpty() {
				run := 0
				for file < types.Size && p.Stacks[types.MakeSquare(file, rank)].IsEmpty() {
					run++
					file++
				}
				if run == 1 {
					tokens = append(tokens, "x")
				} else {
					tokens = append(tokens, fmt.Sprintf("x%d", run))
				}
				continue
			}

			var cell strings.Builder
			for h := 0; h < st.Height; h++ {
				if (st.Players>>uint(h))&1 == 0 {
					cell.WriteByte('1')
				} else {
					cell.WriteByte('2')
				}
			}
			switch st.Top {
			case types.Wall:
				cell.WriteByte('S')
			case types.Capstone:
				cell.WriteByte('C')
			}
			tokens = append(tokens, cell.String())
			file++
		}
		sb.WriteString(strings.Join(tokens, ","))
	}

	moveNumber := p.Ply/2 + 1
	fmt.Fprintf(&sb, " %s %d", p.Stm.String(), moveNumber)
	return sb.String()
}
