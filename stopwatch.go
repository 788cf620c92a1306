// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

// Package lapwatch measures wall-clock time between named checkpoints
// ("laps") and renders the recorded intervals as a tabular report.
//
// A Stopwatch is a single timing session: Start it, record any number
// of laps, Stop it, then query TotalTime or Summary. It performs no
// I/O and no logging; all failures are returned as errors.
package lapwatch

import (
	"errors"
	"time"
)

// Clock returns the current time. A Stopwatch reads its Clock once per
// Start, Stop and Lap call. Implementations must be non-blocking and
// side-effect free. The zero time.Time marks an unset timestamp, so a
// Clock must not return it.
type Clock func() time.Time

var (
	// ErrNotStarted is returned when TotalTime or Summary is called
	// before Start.
	ErrNotStarted = errors.New("lapwatch: stopwatch not started")

	// ErrNotStopped is returned when TotalTime or Summary is called
	// before Stop.
	ErrNotStopped = errors.New("lapwatch: stopwatch not stopped")

	// ErrZeroTotalTime is returned by Summary when no time elapsed
	// between Start and Stop, so percentages cannot be computed.
	ErrZeroTotalTime = errors.New("lapwatch: total time is zero")
)

// LapEvent is a single named checkpoint. Names need not be unique;
// each lap is an independent event.
type LapEvent struct {
	Name string
	Time time.Time
}

// Stopwatch records a start time, a stop time and an ordered sequence
// of laps. It is not safe for concurrent use; callers timing
// concurrent work should keep one Stopwatch per goroutine.
type Stopwatch struct {
	clock  Clock
	start  time.Time
	stop   time.Time
	events []LapEvent
}

// New returns an empty Stopwatch reading the system wall clock.
func New() *Stopwatch {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty Stopwatch reading time from clock.
// A nil clock falls back to the system wall clock. The injection point
// exists to make tests deterministic.
func NewWithClock(clock Clock) *Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	return &Stopwatch{clock: clock}
}

// Start records the current time as the session start and returns the
// Stopwatch to allow chaining. A repeated Start silently overwrites
// the previous start time.
func (s *Stopwatch) Start() *Stopwatch {
	s.start = s.clock()
	return s
}

// Lap appends a checkpoint recorded at the current time. Laps recorded
// before Start or after Stop are not rejected; they produce a
// nonsensical report and are a caller error.
func (s *Stopwatch) Lap(name string) *Stopwatch {
	s.events = append(s.events, LapEvent{Name: name, Time: s.clock()})
	return s
}

// Stop records the current time as the session end and returns the
// Stopwatch to allow chaining.
func (s *Stopwatch) Stop() *Stopwatch {
	s.stop = s.clock()
	return s
}

// TotalTime returns the time elapsed between Start and Stop. It
// returns ErrNotStarted or ErrNotStopped when the corresponding call
// has not been made yet.
func (s *Stopwatch) TotalTime() (time.Duration, error) {
	if s.start.IsZero() {
		return 0, ErrNotStarted
	}
	if s.stop.IsZero() {
		return 0, ErrNotStopped
	}
	return s.stop.Sub(s.start), nil
}

// Events returns a copy of the recorded laps in insertion order.
func (s *Stopwatch) Events() []LapEvent {
	events := make([]LapEvent, len(s.events))
	copy(events, s.events)
	return events
}
