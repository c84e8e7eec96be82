package services

import (
	"math"
	"time"
)

// MaxDefault is the default cap applied to a computed backoff delay
var MaxDefault = time.Duration(math.MaxInt64)

// MaxAttemptsExceeded defines the error raised when the backoff runs out of attempts
type MaxAttemptsExceeded struct{}

func (e *MaxAttemptsExceeded) Error() string {
	return "Max attempts exceeded"
}

// Backoff computes an exponentially growing delay between attempts
type Backoff struct {
	maxAttempts int
	scale       time.Duration
	max         time.Duration
	attempt     int
}

func NewBackoff(maxAttempts int, scale time.Duration, max time.Duration) *Backoff {
	return &Backoff{
		maxAttempts: maxAttempts,
		scale:       scale,
		max:         max,
	}
}

// Delay returns the delay to wait before the next attempt, raising
// MaxAttemptsExceeded once the configured attempts are used up
func (b *Backoff) Delay() (time.Duration, error) {
	if b.attempt >= b.maxAttempts {
		return 0, &MaxAttemptsExceeded{}
	}
	delay := time.Duration(math.Min(float64(b.scale)*math.Pow(2, float64(b.attempt)), float64(b.max)))
	b.attempt++
	return delay, nil
}
