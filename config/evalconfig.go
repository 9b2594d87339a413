/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package config

// evalConfiguration holds the static-evaluation weights from spec §4.14,
// exposed as config so they can be retuned without recompiling, the way the
// teacher exposes its evaluation bonuses.
type evalConfiguration struct {
	Tempo int

	FlatWeight         int
	FlatsInHandWeight  int
	CapsInHandWeight   int
	RoadAdjWeight      int
	RoadLineWeight     int
}

func init() {
	Settings.Eval.Tempo = 30

	Settings.Eval.FlatWeight = 75
	Settings.Eval.FlatsInHandWeight = -13
	Settings.Eval.CapsInHandWeight = -25
	Settings.Eval.RoadAdjWeight = 9
	Settings.Eval.RoadLineWeight = 7
}
