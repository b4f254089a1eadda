// Package config resolves the benchmark run configuration from flags.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultIterations is used when --iters is not supplied.
const DefaultIterations = 5_000_000

// ItersFlag is the name of the iteration count flag.
const ItersFlag = "iters"

// ErrNonPositiveIterations is returned when the iteration count is zero or negative.
var ErrNonPositiveIterations = errors.New("config: --iters must be a positive integer")

// Config is the resolved run configuration.
type Config struct {
	Iterations int

	// Defaulted is true when --iters was not supplied and
	// DefaultIterations is in effect.
	Defaulted bool
}

// BindFlags registers --iters on fs.
//
// The flag has no default of its own; Load supplies DefaultIterations
// so that an omitted flag can be told apart from an explicit value.
func BindFlags(fs *pflag.FlagSet) {
	fs.Int(ItersFlag, 0, fmt.Sprintf("number of loop iterations per workload (default %d)", DefaultIterations))
}

// Load resolves the configuration from an already parsed flag set.
//
// A malformed --iters value never reaches Load: pflag rejects it
// during parsing.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetDefault(ItersFlag, DefaultIterations)

	f := fs.Lookup(ItersFlag)
	if f == nil {
		return Config{}, fmt.Errorf("config: flag --%s not registered", ItersFlag)
	}
	if err := v.BindPFlag(ItersFlag, f); err != nil {
		return Config{}, fmt.Errorf("config: bind --%s: %w", ItersFlag, err)
	}

	cfg := Config{
		Iterations: v.GetInt(ItersFlag),
		Defaulted:  !f.Changed,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether c can drive a run.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveIterations, c.Iterations)
	}
	return nil
}
