package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorAdvanceMarksStages(t *testing.T) {
	s := NewSimulator(time.Millisecond)

	for i := 0; i < 25; i++ {
		s.advance()
	}
	percent, stages := s.Snapshot()
	assert.Equal(t, 25, percent)
	assert.Equal(t, [4]bool{true, false, false, false}, stages)

	for i := 0; i < 75; i++ {
		s.advance()
	}
	percent, stages = s.Snapshot()
	assert.Equal(t, 100, percent)
	assert.Equal(t, [4]bool{true, true, true, true}, stages)

	// the counter never passes 100
	assert.False(t, s.advance())
	percent, _ = s.Snapshot()
	assert.Equal(t, 100, percent)
}

func TestSimulatorStopFreezesState(t *testing.T) {
	s := NewSimulator(time.Millisecond)
	s.Start()

	require.Eventually(t, func() bool {
		percent, _ := s.Snapshot()
		return percent > 0
	}, time.Second, time.Millisecond)

	s.Stop()
	frozenPercent, frozenStages := s.Snapshot()

	time.Sleep(20 * time.Millisecond)
	percent, stages := s.Snapshot()
	assert.Equal(t, frozenPercent, percent)
	assert.Equal(t, frozenStages, stages)

	// no mutation path reopens after Stop
	assert.False(t, s.advance())
	s.Start()
	time.Sleep(10 * time.Millisecond)
	percent, _ = s.Snapshot()
	assert.Equal(t, frozenPercent, percent)
}

func TestSimulatorStopIdempotent(t *testing.T) {
	s := NewSimulator(time.Millisecond)
	s.Stop()
	s.Stop()

	percent, _ := s.Snapshot()
	assert.Equal(t, 0, percent)
}
