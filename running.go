package tcpt

import "sync/atomic"

// RunningFlag tells the probe loop whether to start another iteration.
// It is written by the interrupt handler and read by the loop once per
// iteration; nothing else is shared between them.
type RunningFlag struct {
	running atomic.Bool
}

// NewRunningFlag returns a flag in the running state.
func NewRunningFlag() *RunningFlag {
	f := &RunningFlag{}
	f.running.Store(true)
	return f
}

// Running reports whether the loop should keep going.
func (f *RunningFlag) Running() bool {
	return f.running.Load()
}

// Stop clears the flag. It does no I/O and is safe to call from a signal
// handling goroutine at any time, any number of times.
func (f *RunningFlag) Stop() {
	f.running.Store(false)
}
