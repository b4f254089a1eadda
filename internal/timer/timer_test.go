package timer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/rob-benchmarks/internal/timer"
)

// stepClock advances by a fixed step on every reading.
type stepClock struct {
	now  int64
	step int64
}

func (c *stepClock) Now() int64 {
	v := c.now
	c.now += c.step
	return v
}

// seqClock returns readings from a fixed list.
type seqClock struct {
	readings []int64
}

func (c *seqClock) Now() int64 {
	v := c.readings[0]
	c.readings = c.readings[1:]
	return v
}

func TestMeasureWith_Microseconds(t *testing.T) {
	c := &stepClock{step: int64(1500 * time.Microsecond)}

	calls := 0
	got := timer.MeasureWith(c, func() { calls++ })

	assert.Equal(t, 1, calls, "operation should run exactly once")
	assert.Equal(t, int64(1500), got)
}

func TestMeasureWith_TruncatesToMicroseconds(t *testing.T) {
	c := &seqClock{readings: []int64{1_000, 2_999}}

	got := timer.MeasureWith(c, func() {})

	assert.Equal(t, int64(1), got)
}

func TestMeasureWith_NeverNegative(t *testing.T) {
	c := &seqClock{readings: []int64{5_000_000, 1_000_000}}

	got := timer.MeasureWith(c, func() {})

	assert.Equal(t, int64(0), got)
}

func TestMeasureWith_RunsInsideTimedRegion(t *testing.T) {
	c := &stepClock{step: 1000}

	var during int64
	timer.MeasureWith(c, func() { during = c.now })

	// One reading taken before op, none during.
	assert.Equal(t, int64(1000), during)
}

func TestMeasure_PanicPropagates(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		timer.Measure(func() { panic("boom") })
	})
}

func TestMeasure_Sleep(t *testing.T) {
	got := timer.Measure(func() { time.Sleep(2 * time.Millisecond) })

	assert.GreaterOrEqual(t, got, int64(2000))
}

func TestMeasure_NoStateBetweenCalls(t *testing.T) {
	c := &stepClock{step: 10_000}

	first := timer.MeasureWith(c, func() {})
	second := timer.MeasureWith(c, func() {})

	assert.Equal(t, first, second)
}

func TestTimer_StartStop(t *testing.T) {
	c := &seqClock{readings: []int64{100, 350_100}}
	tm := timer.New(c)

	tm.Start()
	tm.Stop()

	assert.Equal(t, 350*time.Microsecond, tm.Elapsed())
	assert.Equal(t, int64(350), tm.Microseconds())
}

func TestTimer_ElapsedBeforeStop(t *testing.T) {
	c := &seqClock{readings: []int64{100}}
	tm := timer.New(c)

	tm.Start()

	assert.Zero(t, tm.Elapsed())
}

func TestTimer_NilClockDefaultsToRuntime(t *testing.T) {
	tm := timer.New(nil)

	tm.Start()
	time.Sleep(time.Millisecond)
	tm.Stop()

	assert.GreaterOrEqual(t, tm.Elapsed(), time.Millisecond)
}

func TestRuntimeClock_Monotonic(t *testing.T) {
	var c timer.Clock = timer.RuntimeClock{}

	start := time.Now()
	a := c.Now()
	time.Sleep(5 * time.Millisecond)
	b := c.Now()
	wall := time.Since(start)

	require.GreaterOrEqual(t, b, a, "clock went backwards")
	assert.GreaterOrEqual(t, time.Duration(b-a), 5*time.Millisecond)
	assert.LessOrEqual(t, time.Duration(b-a), wall)
}
