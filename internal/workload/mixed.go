package workload

// MixedLatency interleaves a register-resident sum with a buffer read.
//
// The running sum a never touches memory, the read address depends only on
// the loop counter, and the add reloads the value just stored to the sink.
// The three chains partially overlap. The sum is added to the sink once
// after the loop; with iterations <= 0 the sink is not written.
func MixedLatency(iterations int, buf *Buffer, s *Sink) {
	if iterations <= 0 {
		return
	}
	a := 0
	for i := 0; i < iterations; i++ {
		a += i
		s.Store(buf[uint(i)%BufferLen])
		s.Add(i * 2)
	}
	s.Add(a)
}
