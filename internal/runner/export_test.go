package runner

// Test-only options.
var (
	WithClock = withClock
	WithCases = withCases
)
