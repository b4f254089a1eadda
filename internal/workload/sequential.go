package workload

// SequentialDependent builds a dependency chain through memory.
//
// Each step adds the loop counter to the running result and then replaces
// the result with the buffer value at result mod BufferLen. The next address
// cannot be computed until this load completes, so no step can run ahead.
// This is the baseline the other workloads are compared against.
func SequentialDependent(iterations int, buf *Buffer, s *Sink) {
	result := 0
	for i := 0; i < iterations; i++ {
		result += i
		result = buf[wrap(result)]
		s.Store(result * 2)
	}
}
