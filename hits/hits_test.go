/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package hits

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ciekce/syntaks/types"
)

// TestFindHitsMatchesNaive is spec §8 property 3: FindHits must agree with
// a plain step-by-step ray walk for every blocker set and origin square.
func TestFindHitsMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 500; trial++ {
		var blockers types.Bitboard
		for sq := types.Square(0); sq < types.SquareCount; sq++ {
			if rng.Intn(3) == 0 {
				blockers.Set(sq)
			}
		}

		for sq := types.Square(0); sq < types.SquareCount; sq++ {
			want := NaiveFindHits(blockers, sq)
			got := FindHits(blockers, sq)
			assert.Equal(t, want, got, "mismatch at square %s with blockers %v", sq, blockers)
		}
	}
}

func TestFindHitsEmptyBoardReachesEdge(t *testing.T) {
	hit := FindHits(types.Empty, types.MakeSquare(0, 0))
	up := hit[types.Up.Idx()]
	assert.Equal(t, types.Size-1, up.Distance)
	assert.Equal(t, types.MakeSquare(0, types.Size-1), up.Stopper)
}
