package workload

// IndependentArithmetic keeps three running sums that never read each other.
//
// Each step's three additions can issue in the same cycle; only the
// loop-carried accumulation links one step to the next. The combined total
// is stored once after the loop. With iterations <= 0 the sink is not written.
func IndependentArithmetic(iterations int, s *Sink) {
	if iterations <= 0 {
		return
	}
	a, b, c := 0, 0, 0
	for i := 0; i < iterations; i++ {
		a += i
		b += i * 2
		c += i - 1
	}
	s.Store(a + b + c)
}
