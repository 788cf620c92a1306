// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

package lapwatch

import (
	"fmt"
	"strings"
)

// Name of the synthetic record that closes every report.
const stopMarker = "_stop_"

// Names longer than this are truncated in the rendered table.
const maxNameLen = 26

// Summary renders the recorded laps as a fixed-width table. Each row
// shows the time elapsed since the previous checkpoint, the cumulative
// time since Start and the interval's percentage share of the total,
// all in seconds with three fractional digits. A synthetic "_stop_"
// row closes the table; it exists only in the rendered output and is
// never added to the stored laps, so repeated calls return identical
// strings.
//
// Summary returns ErrNotStarted or ErrNotStopped when the session is
// incomplete and ErrZeroTotalTime when no time elapsed between Start
// and Stop.
func (s *Stopwatch) Summary() (string, error) {
	total, err := s.TotalTime()
	if err != nil {
		return "", err
	}
	totalSec := total.Seconds()
	if totalSec == 0 {
		return "", ErrZeroTotalTime
	}

	records := make([]LapEvent, 0, len(s.events)+1)
	records = append(records, s.events...)
	records = append(records, LapEvent{Name: stopMarker, Time: s.stop})

	var b strings.Builder
	fmt.Fprintf(&b, "%-27s %-11s %-15s %s\n",
		"NAME", "TIME", "CUMULATIVE", "PERCENTAGE")
	prev := s.start
	for _, rec := range records {
		name := rec.Name
		if len(name) > maxNameLen {
			name = name[:maxNameLen]
		}
		duration := rec.Time.Sub(prev).Seconds()
		cumulative := rec.Time.Sub(s.start).Seconds()
		percentage := duration / totalSec * 100
		fmt.Fprintf(&b, " %-27s %-11.3f %-15.3f %.3f%%\n",
			name, duration, cumulative, percentage)
		prev = rec.Time
	}
	return b.String(), nil
}
