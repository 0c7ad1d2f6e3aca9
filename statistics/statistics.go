// Package statistics accumulates per-attempt outcomes into the
// running count/average/min/max/lost figures printed on exit.
package statistics

import (
	"strconv"
	"time"
)

// MinSentinel is printed as the minimum until an attempt succeeds. It is
// the largest unsigned 128-bit value, the "infinity" the summary line has
// always shown for runs without a successful connection.
const MinSentinel = "340282366920938463463374607431768211455"

// Outcome is the result of a single connection attempt.
type Outcome struct {
	Success bool
	RTT     uint64 // milliseconds, only meaningful on success
}

// Success returns a successful outcome that took rtt milliseconds.
func Success(rtt uint64) Outcome {
	return Outcome{Success: true, RTT: rtt}
}

// Failure returns a failed outcome.
func Failure() Outcome {
	return Outcome{}
}

// Statistics holds the aggregate figures for a run. Create it with New;
// the zero value has no attempt in progress and cannot record outcomes.
//
// Seq is the 1-based number of the attempt in progress. It is advanced
// after each attempt, so between iterations Seq-1 attempts have been made
// and Lost+Successful() == Seq-1.
type Statistics struct {
	Seq     uint64
	Average uint64 // milliseconds, integer running mean
	Max     uint64 // milliseconds
	Lost    uint64

	min    uint64
	hasMin bool
}

// New returns statistics for a run that has not made any attempt yet.
func New() Statistics {
	return Statistics{Seq: 1}
}

// Record folds the outcome of attempt number Seq into the figures.
//
// The average is an integer mean updated in place, and a lost attempt
// counts as a zero sample. Both truncate, so the result drifts from the
// true mean; callers rely on these exact numbers.
func (s *Statistics) Record(o Outcome) {
	seq := s.Seq

	if !o.Success {
		s.Lost++
		s.Average = s.Average * (seq - 1) / seq
		return
	}

	s.Average = (s.Average*(seq-1) + o.RTT) / seq

	if !s.hasMin || o.RTT < s.min {
		s.min = o.RTT
		s.hasMin = true
	}

	s.Max = max(s.Max, o.RTT)
}

// Next advances the sequence number once an attempt has been recorded.
func (s *Statistics) Next() {
	s.Seq++
}

// Attempts returns how many attempts have been recorded.
func (s *Statistics) Attempts() uint64 {
	if s.Seq == 0 {
		return 0
	}
	return s.Seq - 1
}

// Successful returns how many attempts succeeded.
func (s *Statistics) Successful() uint64 {
	return s.Attempts() - s.Lost
}

// Min returns the smallest successful RTT and whether there was one.
func (s *Statistics) Min() (uint64, bool) {
	return s.min, s.hasMin
}

// MinStr returns the minimum formatted for output, or MinSentinel when
// nothing succeeded.
func (s *Statistics) MinStr() string {
	if !s.hasMin {
		return MinSentinel
	}
	return strconv.FormatUint(s.min, 10)
}

// DurationToMilliseconds truncates d to whole milliseconds. Negative
// durations, which a monotonic clock should never produce, clamp to 0.
func DurationToMilliseconds(d time.Duration) uint64 {
	if d < 0 {
		return 0
	}
	return uint64(d.Milliseconds())
}
