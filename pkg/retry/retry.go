package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// ErrMaxAttemptsExceeded is returned when the operation keeps failing
// after all retry attempts are spent.
var ErrMaxAttemptsExceeded = errors.New("max retry attempts exceeded")

// Config controls the backoff schedule.
type Config struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// InitialInterval is the first backoff interval.
	InitialInterval time.Duration
	// MaxInterval caps the backoff interval.
	MaxInterval time.Duration
	// Multiplier grows the interval after each retry.
	Multiplier float64
	// JitterFactor (0-1) randomizes the interval to avoid synchronized retries.
	JitterFactor float64
}

// DefaultConfig retries up to 5 times with exponential backoff: 1s, 2s, 4s, 8s, 16s.
func DefaultConfig() *Config {
	return &Config{
		MaxRetries:      5,
		InitialInterval: 1 * time.Second,
		MaxInterval:     30 * time.Second,
		Multiplier:      2.0,
		JitterFactor:    0.1,
	}
}

// Operation is the function to be retried.
type Operation func(ctx context.Context) error

// PermanentError wraps an error that should stop the retry loop immediately.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent marks an error as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// Do runs op until it succeeds, returns a permanent error, the context is
// canceled, or the attempts are spent. On exhaustion the last error is
// returned wrapped so callers can still inspect it with errors.Is/As.
func Do(ctx context.Context, cfg *Config, op Operation) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		var permErr *PermanentError
		if errors.As(err, &permErr) {
			return permErr.Err
		}

		if attempt == cfg.MaxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(cfg.interval(attempt)):
		}
	}

	return errors.Join(ErrMaxAttemptsExceeded, lastErr)
}

func (c *Config) interval(attempt int) time.Duration {
	initial := c.InitialInterval
	if initial <= 0 {
		initial = time.Second
	}
	multiplier := c.Multiplier
	if multiplier <= 0 {
		multiplier = 2.0
	}

	interval := float64(initial) * math.Pow(multiplier, float64(attempt))

	if c.JitterFactor > 0 {
		jitter := interval * c.JitterFactor
		interval += (rand.Float64()*2 - 1) * jitter
	}

	if max := float64(c.MaxInterval); max > 0 && interval > max {
		interval = max
	}
	if interval < 0 {
		interval = float64(initial)
	}

	return time.Duration(interval)
}
