package regexp

import (
	"fmt"
	"time"
)

// Option configures a Compile call.
//
// Returning an error aborts compilation; the first failing option wins.
type Option func(*config) error

type config struct {
	flags   Flags
	noCache bool
	timeout time.Duration
}

func defaultConfig() config {
	return config{}
}

// WithFlags parses s with [ParseFlags] and adds the result to the flag set.
func WithFlags(s string) Option {
	return func(c *config) error {
		f, err := ParseFlags(s)
		if err != nil {
			return err
		}

		c.flags |= f
		return nil
	}
}

// WithFlagSet adds f to the flag set.
func WithFlagSet(f Flags) Option {
	return func(c *config) error {
		c.flags |= f
		return nil
	}
}

// WithoutCache compiles a fresh Regexp instead of consulting or filling the
// compile cache.
func WithoutCache() Option {
	return func(c *config) error {
		c.noCache = true
		return nil
	}
}

// WithMatchTimeout bounds a single match attempt on the regexp2 engine. It has
// no effect on patterns compiled with coregex, which run in linear time.
func WithMatchTimeout(d time.Duration) Option {
	return func(c *config) error {
		if d <= 0 {
			return fmt.Errorf("%w: match timeout must be positive, got %s", ErrInvalidOption, d)
		}

		c.timeout = d
		return nil
	}
}

func (c config) cacheKey(pattern string) string {
	return fmt.Sprintf("%s|%d|%s", c.flags, c.timeout, pattern)
}
