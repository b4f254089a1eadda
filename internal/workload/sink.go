package workload

import "sync/atomic"

// Sink is the observable destination for workload results.
//
// Writing through a pointer the caller can read back keeps the compiler
// from eliminating loop bodies whose results are otherwise unused. Only
// the last write is meaningful.
//
// Reads go through an atomic load, which the compiler cannot fold into an
// earlier store. Stores are plain, so a Store followed by Add costs a store,
// a reload and a second store, with no fence.
//
// A Sink is owned by one goroutine; it is not safe for concurrent use.
type Sink struct {
	v int64 // first field: 64-bit aligned for the atomic load
}

// Store replaces the sink value.
func (s *Sink) Store(v int) {
	s.v = int64(v)
}

// Add reloads the sink value and stores it plus v.
func (s *Sink) Add(v int) {
	s.v = atomic.LoadInt64(&s.v) + int64(v)
}

// Load returns the last value written.
func (s *Sink) Load() int {
	return int(atomic.LoadInt64(&s.v))
}
