package util

import (
	"testing"
	"time"
)

func TestTimeWindowRingFilling(t *testing.T) {
	ring := NewTimeWindowRing(5*time.Minute, time.Minute)

	if !ring.IsEmpty() {
		t.Errorf("new ring should be empty")
	}

	for i := uint64(1); i <= 3; i++ {
		ring.PutValue(i * 10)
	}

	if ring.Count() != 3 {
		t.Errorf("unexpected count: %d (expecting 3)", ring.Count())
	}
	if ring.Head() != 30 {
		t.Errorf("unexpected head: %d (expecting 30)", ring.Head())
	}
	if ring.Tail() != 10 {
		t.Errorf("unexpected tail: %d (expecting 10)", ring.Tail())
	}
}

func TestTimeWindowRingOverwrite(t *testing.T) {
	ring := NewTimeWindowRing(3*time.Minute, time.Minute)

	for i := uint64(1); i <= 5; i++ {
		ring.PutValue(i * 10)
	}

	// window holds 3 samples, the two oldest were overwritten
	if ring.Count() != 3 {
		t.Errorf("unexpected count: %d (expecting 3)", ring.Count())
	}
	if ring.Head() != 50 {
		t.Errorf("unexpected head: %d (expecting 50)", ring.Head())
	}
	if ring.Tail() != 30 {
		t.Errorf("unexpected tail: %d (expecting 30)", ring.Tail())
	}
}

func TestTimeWindowRingSingleSlot(t *testing.T) {
	ring := NewTimeWindowRing(time.Minute, time.Minute)

	ring.PutValue(7)
	ring.PutValue(9)

	if ring.Count() != 1 {
		t.Errorf("unexpected count: %d (expecting 1)", ring.Count())
	}
	if ring.Head() != ring.Tail() {
		t.Errorf("head and tail should match in a single slot ring: %d != %d", ring.Head(), ring.Tail())
	}
}
