package workload

// IndependentMemory performs three buffer reads per step.
//
// Every address is a function of the loop counter alone, so the loads can
// be issued before earlier loads complete. Each read is stored to the sink.
func IndependentMemory(iterations int, buf *Buffer, s *Sink) {
	for i := 0; i < iterations; i++ {
		s.Store(buf[uint(i)%BufferLen])
		s.Store(buf[uint(i+1)%BufferLen])
		s.Store(buf[uint(i+2)%BufferLen])
	}
}
