/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package search

import (
	"time"

	"github.com/Ciekce/syntaks/config"
)

// timeManager allocates a soft time budget from remaining clock time and
// increment, the way the teacher's reference engine does (limit.rs).
type timeManager struct {
	maxTime time.Duration
}

func newTimeManager(remaining, increment time.Duration) timeManager {
	t := remaining/20 + increment
	if ceiling := time.Duration(float64(remaining) * 0.8); t > ceiling {
		t = ceiling
	}
	return timeManager{maxTime: t}
}

func (tm timeManager) shouldStop(elapsed time.Duration) bool {
	return elapsed >= tm.maxTime
}

// Limits tracks the active search's stopping conditions: any combination
// of a node cap, a fixed movetime, and/or a clock-derived time manager.
// Each may be set at most once per search, matching the one-shot Option
// fields of the reference engine's Limits (spec §4.13/§6.2).
type Limits struct {
	startTime time.Time

	nodes       *uint64
	softNodes   *uint64
	hardNodes   *uint64
	movetime    *time.Duration
	timeManager *timeManager
}

// NewLimits returns limits with no stopping condition set and start_time
// recorded as now; the caller sets whichever bounds apply before searching.
func NewLimits(startTime time.Time) *Limits {
	return &Limits{startTime: startTime}
}

// StartTime returns when the search began, for elapsed-time reporting.
func (l *Limits) StartTime() time.Time {
	return l.startTime
}

// SetNodes installs a node cap. Returns false if one was already set.
func (l *Limits) SetNodes(nodes uint64) bool {
	if l.nodes != nil {
		return false
	}
	l.nodes = &nodes
	return true
}

// SetMovetime installs a fixed search duration. Returns false if one was
// already set.
func (l *Limits) SetMovetime(movetime time.Duration) bool {
	if l.movetime != nil {
		return false
	}
	l.movetime = &movetime
	return true
}

// SetSoftNodes installs a per-move soft node budget, used by datagen in
// place of a time manager (mod.rs's SOFT_NODES). Returns false if one was
// already set.
func (l *Limits) SetSoftNodes(nodes uint64) bool {
	if l.softNodes != nil {
		return false
	}
	l.softNodes = &nodes
	return true
}

// SetHardNodes installs a per-move hard node budget, used by datagen
// alongside SetSoftNodes (mod.rs's HARD_NODES). Returns false if one was
// already set.
func (l *Limits) SetHardNodes(nodes uint64) bool {
	if l.hardNodes != nil {
		return false
	}
	l.hardNodes = &nodes
	return true
}

// SetTimeManager derives a soft time budget from remaining clock time and
// increment. Returns false if one was already set.
func (l *Limits) SetTimeManager(remaining, increment time.Duration) bool {
	if l.timeManager != nil {
		return false
	}
	tm := newTimeManager(remaining, increment)
	l.timeManager = &tm
	return true
}

// ShouldStopSoft reports whether the search should not begin another
// iterative-deepening iteration, checked once per completed depth.
func (l *Limits) ShouldStopSoft(nodes uint64) bool {
	if l.nodes != nil && nodes >= *l.nodes {
		return true
	}
	if l.softNodes != nil && nodes >= *l.softNodes {
		return true
	}

	elapsed := time.Since(l.startTime)

	if l.movetime != nil && elapsed >= *l.movetime {
		return true
	}
	if l.timeManager != nil && l.timeManager.shouldStop(elapsed) {
		return true
	}

	return false
}

// ShouldStopHard reports whether the search must abort mid-iteration,
// checked every TimeCheckInterval nodes to keep the clock read cheap.
func (l *Limits) ShouldStopHard(nodes uint64) bool {
	if l.nodes != nil && nodes >= *l.nodes {
		return true
	}
	if l.hardNodes != nil && nodes >= *l.hardNodes {
		return true
	}

	interval := uint64(config.Settings.Search.TimeCheckInterval)
	if nodes > 0 && nodes%interval == 0 && (l.movetime != nil || l.timeManager != nil) {
		elapsed := time.Since(l.startTime)

		if l.movetime != nil && elapsed >= *l.movetime {
			return true
		}
		if l.timeManager != nil && l.timeManager.shouldStop(elapsed) {
			return true
		}
	}

	return false
}
