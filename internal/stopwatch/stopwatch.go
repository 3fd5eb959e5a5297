// Package stopwatch measures wall-clock duration around a single call, the
// way the original benchmark harness's Watch collaborator did, but built on
// time.Now/time.Since instead of a raw clock_gettime wrapper.
package stopwatch

import "time"

// Stopwatch accumulates elapsed time across start/stop pairs. The zero
// value is ready to use.
type Stopwatch struct {
	start   time.Time
	elapsed time.Duration
}

// Start begins timing. Calling Start while already running resets the
// running interval's start point.
func (s *Stopwatch) Start() { s.start = time.Now() }

// Stop ends the current timing interval and adds it to the accumulated
// elapsed time.
func (s *Stopwatch) Stop() { s.elapsed += time.Since(s.start) }

// Reset clears all accumulated elapsed time.
func (s *Stopwatch) Reset() { s.elapsed = 0 }

// ElapsedSeconds reports the accumulated elapsed time in seconds.
func (s *Stopwatch) ElapsedSeconds() float64 { return s.elapsed.Seconds() }

// Time runs fn once, returning the seconds it took.
func Time(fn func()) float64 {
	var s Stopwatch
	s.Start()
	fn()
	s.Stop()
	return s.ElapsedSeconds()
}
