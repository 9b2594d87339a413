/*
 * syntaks, a TEI Tak engine
 *
 * MIT License
 *
 * Copyright (c) 2026
 */

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetNodesRejectsSecondCall(t *testing.T) {
	l := NewLimits(time.Now())
	assert.True(t, l.SetNodes(100))
	assert.False(t, l.SetNodes(200))
}

func TestSetMovetimeRejectsSecondCall(t *testing.T) {
	l := NewLimits(time.Now())
	assert.True(t, l.SetMovetime(time.Second))
	assert.False(t, l.SetMovetime(2*time.Second))
}

func TestSetTimeManagerRejectsSecondCall(t *testing.T) {
	l := NewLimits(time.Now())
	assert.True(t, l.SetTimeManager(time.Second, 0))
	assert.False(t, l.SetTimeManager(time.Second, 0))
}

func TestShouldStopSoftOnNodeCap(t *testing.T) {
	l := NewLimits(time.Now())
	l.SetNodes(1000)
	assert.False(t, l.ShouldStopSoft(999))
	assert.True(t, l.ShouldStopSoft(1000))
}

func TestShouldStopHardOnHardNodeCapIndependentOfSoft(t *testing.T) {
	l := NewLimits(time.Now())
	l.SetSoftNodes(100)
	l.SetHardNodes(1000)

	assert.False(t, l.ShouldStopHard(500))
	assert.True(t, l.ShouldStopHard(1000))
	assert.True(t, l.ShouldStopSoft(100))
}

func TestShouldStopSoftOnMovetimeElapsed(t *testing.T) {
	l := NewLimits(time.Now().Add(-time.Hour))
	l.SetMovetime(time.Millisecond)
	assert.True(t, l.ShouldStopSoft(0))
}

func TestTimeManagerCapsAtEightyPercentOfRemaining(t *testing.T) {
	tm := newTimeManager(1000*time.Millisecond, 10*time.Second)
	assert.Equal(t, 800*time.Millisecond, tm.maxTime)
}

func TestTimeManagerUsesTwentiethPlusIncrement(t *testing.T) {
	tm := newTimeManager(20*time.Second, 100*time.Millisecond)
	assert.Equal(t, 1100*time.Millisecond, tm.maxTime)
}

func TestStartTimeRecordedAtConstruction(t *testing.T) {
	now := time.Now()
	l := NewLimits(now)
	assert.Equal(t, now, l.StartTime())
}
