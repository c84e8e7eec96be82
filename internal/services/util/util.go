package util

import "time"

// ErrNoDataSamples defines the error raised when a ring has no samples to
// compute a delta from
type ErrNoDataSamples struct{}

func (e *ErrNoDataSamples) Error() string {
	return "No data samples available"
}

// TimeWindowRing is a ring buffer of counter samples taken over a sliding
// time window. Head is the newest sample, Tail the oldest still inside the
// window; Head minus Tail is the counter delta across the window.
type TimeWindowRing struct {
	buffer []uint64
	head   int
	tail   int
	count  int
}

// NewTimeWindowRing returns a ring sized to hold timeWindow/sampling samples.
func NewTimeWindowRing(timeWindow time.Duration, sampling time.Duration) *TimeWindowRing {
	size := 1
	if sampling > 0 && timeWindow > sampling {
		size = int(timeWindow / sampling)
	}
	return &TimeWindowRing{
		buffer: make([]uint64, size),
		head:   -1,
		tail:   -1,
	}
}

// PutValue stores a sample, overwriting the oldest one when the window is full
func (tw *TimeWindowRing) PutValue(value uint64) {
	tw.head = (tw.head + 1) % len(tw.buffer)
	tw.buffer[tw.head] = value

	if tw.count == len(tw.buffer) {
		tw.tail = (tw.tail + 1) % len(tw.buffer)
	} else {
		tw.count++
		if tw.tail == -1 {
			tw.tail = 0
		}
	}
}

func (tw *TimeWindowRing) Head() uint64 {
	if tw.count == 0 {
		return 0
	}
	return tw.buffer[tw.head]
}

func (tw *TimeWindowRing) Tail() uint64 {
	if tw.count == 0 {
		return 0
	}
	return tw.buffer[tw.tail]
}

func (tw *TimeWindowRing) Count() int {
	return tw.count
}

func (tw *TimeWindowRing) IsEmpty() bool {
	return tw.count == 0
}
