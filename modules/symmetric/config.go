package symmetric

import "fmt"

// Config fixes the shape of a sponge: Width cells of state, the first Rate of
// them overwritten by input, the first Out of them returned as the digest.
//
// Out <= Rate is the usual security requirement but left to the caller.
type Config struct {
	Width int
	Rate  int
	Out   int
}

// ConfigError reports a sponge that cannot be built with the given
// parameters. It is only ever returned by constructors.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "symmetric: invalid sponge configuration: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// Validate checks the shape invariants of the configuration against the
// width of the permutation that is going to drive it.
func (c Config) Validate(permWidth int) error {
	switch {
	case c.Width < 1:
		return configErrorf("width %d must be positive", c.Width)
	case c.Rate < 1 || c.Rate > c.Width:
		return configErrorf("rate %d must be within [1, %d]", c.Rate, c.Width)
	case c.Out < 1 || c.Out > c.Width:
		return configErrorf("output length %d must be within [1, %d]", c.Out, c.Width)
	case permWidth != c.Width:
		return configErrorf("permutation width %d does not match sponge width %d", permWidth, c.Width)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("width=%d,rate=%d,out=%d", c.Width, c.Rate, c.Out)
}
