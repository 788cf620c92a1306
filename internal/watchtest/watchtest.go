// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

// Package watchtest provides a scripted clock for deterministic
// stopwatch tests.
package watchtest

import "time"

// Epoch is the instant scripted clocks start from. It is deliberately
// not the zero time.Time, which a Stopwatch treats as "unset".
var Epoch = time.Unix(0, 0)

// Clock produces scripted readings: every call to Now returns the
// current scripted time and advances it by a fixed step. Set pins the
// next reading to an offset from Epoch, which lets a test lay out an
// exact timeline.
type Clock struct {
	now  time.Time
	step time.Duration
}

// NewClock returns a Clock whose first reading is Epoch and which
// advances by step on every reading. A zero step clock only moves via
// Set.
func NewClock(step time.Duration) *Clock {
	return &Clock{now: Epoch, step: step}
}

// Now returns the current scripted time and advances the clock.
func (c *Clock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Set pins the next reading to Epoch plus offset.
func (c *Clock) Set(offset time.Duration) {
	c.now = Epoch.Add(offset)
}
