// Package runner measures each workload once, in report order.
package runner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/randomizedcoder/rob-benchmarks/internal/timer"
	"github.com/randomizedcoder/rob-benchmarks/internal/workload"
)

// ErrInvalidIterations is returned when the iteration count is not positive.
var ErrInvalidIterations = errors.New("runner: iterations must be positive")

// Result is the measurement of one workload.
type Result struct {
	Case   workload.Case
	Micros int64
	Sink   int
}

// Runner times workloads against a Clock.
type Runner struct {
	clock  timer.Clock
	logger *slog.Logger
	cases  []workload.Case
}

// Option configures a Runner.
type Option func(*Runner)

// withClock sets the clock used for timing.
func withClock(c timer.Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithLogger sets the logger for per-case debug records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// withCases overrides the workloads to run.
func withCases(cs []workload.Case) Option {
	return func(r *Runner) { r.cases = cs }
}

// New creates a Runner over workload.Cases.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		cases:  workload.Cases(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run measures every case once with the given iteration count.
//
// Each case receives its own copy of buf and its own Sink. The copy is
// made before the timer starts; the timed closure only passes pointers.
func (r *Runner) Run(iterations int, buf workload.Buffer) ([]Result, error) {
	if iterations <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}

	results := make([]Result, 0, len(r.cases))
	for _, c := range r.cases {
		var s workload.Sink
		local := buf
		run := c.Run
		micros := r.measure(func() {
			run(iterations, &local, &s)
		})

		r.logger.Debug("measured workload",
			"case", c.Label(),
			"iterations", iterations,
			"elapsed_us", micros,
			"sink", s.Load())

		results = append(results, Result{Case: c, Micros: micros, Sink: s.Load()})
	}
	return results, nil
}

// measure times op on the runtime clock unless a clock was injected.
func (r *Runner) measure(op func()) int64 {
	if r.clock == nil {
		return timer.Measure(op)
	}
	return timer.MeasureWith(r.clock, op)
}
