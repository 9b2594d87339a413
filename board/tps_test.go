/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixtureTPS are the six perft reference positions recovered from the
// original implementation's perft harness (original_source/src/main.rs),
// reused here and in movegen's perft tests.
var fixtureTPS = []string{
	"x6/x6/x6/x6/x6/x6 1 1",
	"x,2,2,22S,2,111S/21S,22C,112,x,1112S,11S/x,2,112212,2,2S,2/x,2,121122,x,1112,211/21C,x,1,2S,21S,x/2S,x,212,1S,12S,1S 1 33",
	"x2,2,22,2C,1/21221S,1112,x,2211,1,2/x2,111S,x,11S,12S/11S,1S,2S,2,12S,1211C/x,12S,2,122S,x,212S/12,x2,1S,22222S,21121 2 31",
	"2,x,2,111S,2,12/2,122S,2122,1S,x,1/x,111,1,11S,x2/21122112C,x,212S,2S,2,1212S/1,112S,21221S,2S,x2/21,222,x,12S,x2 2 30",
	"x6/x6/x6/x3,111222111222111222111222111222111222111222111222111222111222C,x2/x6/x6 2 31",
	"x6/x4,1S,x/x2,21111S,1C,22122C,x/x6/x6/x6 2 11",
}

func TestParseTPSRoundTrip(t *testing.T) {
	for _, tps := range fixtureTPS {
		pos, err := ParseTPS(tps)
		assert.NoError(t, err, tps)
		assert.Equal(t, tps, ToTPS(pos))
	}
}

func TestParseTPSRejectsMalformed(t *testing.T) {
	_, err := ParseTPS("x6/x6/x6/x6/x6 1 1")
	assert.Error(t, err)

	_, err = ParseTPS("x6/x6/x6/x6/x6/x6 3 1")
	assert.Error(t, err)
}

func TestStartPositionMatchesStartposTPS(t *testing.T) {
	pos, err := ParseTPS("x6/x6/x6/x6/x6/x6 1 1")
	assert.NoError(t, err)

	fresh := NewStartPosition()
	assert.Equal(t, fresh.Stm, pos.Stm)
	assert.Equal(t, fresh.FlatsInHand, pos.FlatsInHand)
	assert.Equal(t, fresh.CapsInHand, pos.CapsInHand)
	assert.Equal(t, fresh.Key, pos.Key)
}
