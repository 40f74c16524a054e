package session

import (
	"sync"
	"time"
)

// stageThresholds are the percentages at which the four analysis stage
// milestones are marked complete.
var stageThresholds = [4]int{25, 50, 75, 100}

// Simulator drives the cosmetic analysis progress indicator. It advances
// a monotonic percentage on a fixed tick, independently of the real
// request, and freezes permanently once stopped: no tick may mutate the
// state after Stop returns.
type Simulator struct {
	interval time.Duration

	mu      sync.Mutex
	percent int
	stages  [4]bool
	running bool
	stopped bool

	stopChan chan struct{}
}

func NewSimulator(interval time.Duration) *Simulator {
	return &Simulator{
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start launches the ticking goroutine. Starting twice, or after Stop,
// is a no-op.
func (s *Simulator) Start() {
	s.mu.Lock()
	if s.running || s.stopped {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go s.run()
}

func (s *Simulator) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			if !s.advance() {
				return
			}
		}
	}
}

// advance moves the counter one step; it returns false once the counter
// has finished or the simulator was stopped.
func (s *Simulator) advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.percent >= 100 {
		return false
	}
	s.percent++
	for i, threshold := range stageThresholds {
		if s.percent >= threshold {
			s.stages[i] = true
		}
	}
	return s.percent < 100
}

// Stop halts the simulation. It is idempotent and safe to call whether
// or not Start ever ran; afterwards Snapshot values never change again.
func (s *Simulator) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	close(s.stopChan)
}

// Snapshot returns the current percentage and stage completion flags.
func (s *Simulator) Snapshot() (int, [4]bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.percent, s.stages
}
