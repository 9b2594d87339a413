/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ciekce/syntaks/board"
)

// perftFixtures are recovered from the original implementation's perft
// harness (original_source/src/main.rs): a TPS position and, for each
// depth starting at 1, the expected node count. Only the first two depths
// are listed and checked here, to keep the suite fast.
var perftFixtures = []struct {
	tps    string
	counts []uint64
}{
	{"x6/x6/x6/x6/x6/x6 1 1", []uint64{36, 1260}},
	{
		"x,2,2,22S,2,111S/21S,22C,112,x,1112S,11S/x,2,112212,2,2S,2/x,2,121122,x,1112,211/21C,x,1,2S,21S,x/2S,x,212,1S,12S,1S 1 33",
		[]uint64{56, 17322},
	},
	{
		"x2,2,22,2C,1/21221S,1112,x,2211,1,2/x2,111S,x,11S,12S/11S,1S,2S,2,12S,1211C/x,12S,2,122S,x,212S/12,x2,1S,22222S,21121 2 31",
		[]uint64{108, 13586},
	},
	{
		"2,x,2,111S,2,12/2,122S,2122,1S,x,1/x,111,1,11S,x2/21122112C,x,212S,2S,2,1212S/1,112S,21221S,2S,x2/21,222,x,12S,x2 2 30",
		[]uint64{197, 16949},
	},
	{
		"x6/x6/x6/x3,111222111222111222111222111222111222111222111222111222111222C,x2/x6/x6 2 31",
		[]uint64{194, 13714},
	},
	{"x6/x4,1S,x/x2,21111S,1C,22122C,x/x6/x6/x6 2 11", []uint64{95, 11683}},
}

func TestPerftFixtures(t *testing.T) {
	for _, f := range perftFixtures {
		pos, err := board.ParseTPS(f.tps)
		assert.NoError(t, err, f.tps)

		for i, want := range f.counts {
			depth := i + 1
			got := Perft(pos, depth)
			assert.Equal(t, want, got, "tps %q depth %d", f.tps, depth)
		}
	}
}
