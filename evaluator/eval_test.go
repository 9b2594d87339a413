/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ciekce/syntaks/board"
	"github.com/Ciekce/syntaks/config"
)

func TestStartPositionIsKomiMinusTempoFromP1(t *testing.T) {
	pos := board.NewStartPosition()
	got := Evaluate(pos)

	want := Score(-board.Komi*config.Settings.Eval.FlatWeight + config.Settings.Eval.Tempo)
	assert.Equal(t, want, got)
}

func TestFlippingSideToMoveNegatesNonTempoTerm(t *testing.T) {
	p1 := board.NewStartPosition()
	p2 := board.NewStartPosition()
	p2.Stm = p1.Stm.Flip()

	evalP1 := Evaluate(p1)
	evalP2 := Evaluate(p2)

	tempo := Score(config.Settings.Eval.Tempo)
	assert.Equal(t, evalP1-tempo, -(evalP2 - tempo))
}

func TestMoreFlatsInHandLowersStaticEval(t *testing.T) {
	pos := board.NewStartPosition()
	baseline := Evaluate(pos)

	pos.FlatsInHand[pos.Stm]++
	boosted := Evaluate(pos)

	if config.Settings.Eval.FlatsInHandWeight < 0 {
		assert.Less(t, boosted, baseline)
	} else {
		assert.Greater(t, boosted, baseline)
	}
}
