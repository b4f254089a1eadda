// Package timer measures the wall-clock duration of a single operation.
//
// RuntimeClock reads runtime.nanotime, the monotonic clock behind time.Now.
// Other Clock implementations can be injected through MeasureWith.
//
// Measure binds nothing itself: callers wrap the operation and its arguments
// in a closure so that argument setup happens outside the timed region.
package timer

import "time"

// Clock reports monotonic time in nanoseconds.
//
// Only differences between two readings are meaningful.
type Clock interface {
	Now() int64
}

// Timer records a start and stop reading from a Clock.
//
// A Timer is not safe for concurrent use.
type Timer struct {
	clock Clock
	start int64
	stop  int64
}

// New creates a Timer reading from c.
// A nil Clock selects RuntimeClock.
func New(c Clock) *Timer {
	if c == nil {
		c = RuntimeClock{}
	}
	return &Timer{clock: c}
}

// Start records the start reading.
func (t *Timer) Start() {
	t.start = t.clock.Now()
	t.stop = t.start
}

// Stop records the stop reading.
func (t *Timer) Stop() {
	t.stop = t.clock.Now()
}

// Elapsed returns the time between Start and Stop.
// A clock that went backwards reports zero.
func (t *Timer) Elapsed() time.Duration {
	if t.stop < t.start {
		return 0
	}
	return time.Duration(t.stop - t.start)
}

// Microseconds returns Elapsed truncated to whole microseconds.
func (t *Timer) Microseconds() int64 {
	return t.Elapsed().Microseconds()
}

// Measure runs op once and returns its duration in microseconds,
// read from RuntimeClock.
func Measure(op func()) int64 {
	return MeasureWith(RuntimeClock{}, op)
}

// MeasureWith runs op once and returns its duration in microseconds.
//
// A panic in op is not recovered.
func MeasureWith(c Clock, op func()) int64 {
	t := New(c)
	t.Start()
	op()
	t.Stop()
	return t.Microseconds()
}
