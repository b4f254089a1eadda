package workload

import "math/rand/v2"

// BufferLen is the number of elements in a sample buffer.
const BufferLen = 100

// MaxValue bounds the values NewBuffer generates: [0, MaxValue).
const MaxValue = 1000

// Buffer is the sample data read by the memory workloads.
//
// It is an array, so assigning it copies it. Workloads take a pointer and
// only read through it; callers that need isolation copy before calling.
type Buffer [BufferLen]int

// NewBuffer fills a Buffer with pseudo-random values from r.
func NewBuffer(r *rand.Rand) Buffer {
	var b Buffer
	for i := range b {
		b[i] = r.IntN(MaxValue)
	}
	return b
}

// RandomBuffer fills a Buffer from a generator seeded by the runtime's
// random source.
func RandomBuffer() Buffer {
	return NewBuffer(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// wrap reduces n into [0, BufferLen).
//
// Go's % keeps the sign of the dividend, so a negative running total
// would otherwise produce a negative index.
func wrap(n int) int {
	m := n % BufferLen
	if m < 0 {
		m += BufferLen
	}
	return m
}
