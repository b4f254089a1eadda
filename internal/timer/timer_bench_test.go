package timer_test

import (
	"testing"

	"github.com/randomizedcoder/rob-benchmarks/internal/timer"
)

// Sink variable to prevent compiler from eliminating benchmark loops
var sinkNow int64

// Direct type benchmarks (true performance floor)

func BenchmarkClock_Runtime_Direct(b *testing.B) {
	c := timer.RuntimeClock{}
	b.ReportAllocs()
	b.ResetTimer()

	var result int64
	for i := 0; i < b.N; i++ {
		result = c.Now()
	}
	sinkNow = result
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkClock_Runtime_Interface(b *testing.B) {
	var c timer.Clock = timer.RuntimeClock{}
	b.ReportAllocs()
	b.ResetTimer()

	var result int64
	for i := 0; i < b.N; i++ {
		result = c.Now()
	}
	sinkNow = result
}

// Overhead of an empty measured region

func BenchmarkMeasure_Empty(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	var result int64
	for i := 0; i < b.N; i++ {
		result = timer.Measure(func() {})
	}
	sinkNow = result
}
