// Package workload provides synthetic loops that expose instruction-level
// parallelism.
//
// This package offers four workloads, in report order:
//   - IndependentArithmetic: three running sums with no cross dependency
//   - IndependentMemory: three buffer reads whose addresses need no prior load
//   - MixedLatency: a register chain interleaved with a buffer read
//   - SequentialDependent: each address depends on the previous load
//
// The first three let an out-of-order core keep its reorder buffer full.
// SequentialDependent serializes every iteration behind a load and is the
// baseline the others are compared against.
//
// Every workload writes its results to a caller-owned Sink so the compiler
// cannot discard the loop body.
package workload

import "strconv"

// Func is the uniform signature used to drive a workload.
//
// The buffer is read-only. Workloads that do not read it ignore it.
type Func func(iterations int, buf *Buffer, s *Sink)

// Status is the expected reorder-buffer behaviour of a workload.
//
// The status is a static annotation about the hardware, not a measurement.
type Status string

const (
	Triggered    Status = "Triggered"
	NotTriggered Status = "Not Triggered"
)

// Case describes one workload in the report.
type Case struct {
	Ordinal int
	Name    string
	Status  Status
	Run     Func
}

// Label returns the report label, e.g. "1. Independent Arithmetic".
func (c Case) Label() string {
	return strconv.Itoa(c.Ordinal) + ". " + c.Name
}

// Cases returns the four workloads in the order they are measured.
func Cases() []Case {
	return []Case{
		{
			Ordinal: 1,
			Name:    "Independent Arithmetic",
			Status:  Triggered,
			Run: func(iterations int, _ *Buffer, s *Sink) {
				IndependentArithmetic(iterations, s)
			},
		},
		{Ordinal: 2, Name: "Independent Memory", Status: Triggered, Run: IndependentMemory},
		{Ordinal: 3, Name: "Mixed Latency", Status: Triggered, Run: MixedLatency},
		{Ordinal: 4, Name: "Sequential Dependent", Status: NotTriggered, Run: SequentialDependent},
	}
}

// Baseline returns the sequential dependent case, the one the others are
// compared against.
func Baseline() Case {
	cs := Cases()
	return cs[len(cs)-1]
}
