/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package config

// datagenConfiguration holds the self-play data generation knobs from
// spec §4.12/§4.13 and the original Rust reference's datagen/mod.rs.
type datagenConfiguration struct {
	TtSizeMb int

	RandomMoves int
	VerifDepth  int
	VerifMaxScore int32

	SoftNodes uint64
	HardNodes uint64

	ReportInterval int
}

func init() {
	Settings.Datagen.TtSizeMb = 8

	Settings.Datagen.RandomMoves = 6
	Settings.Datagen.VerifDepth = 6
	Settings.Datagen.VerifMaxScore = 1000

	Settings.Datagen.SoftNodes = 5000
	Settings.Datagen.HardNodes = 8388608

	Settings.Datagen.ReportInterval = 512
}
