package harness

import "fmt"

// ResolveOp names the resolution direction a ResolveError aborted.
type ResolveOp string

const (
	ResolveOpEarliest ResolveOp = "earliest"
	ResolveOpLatest   ResolveOp = "latest"
)

// PublishError reports a publish batch that failed partway through. Index is
// the position of the failing value and Published holds the records
// acknowledged before it, in send order.
type PublishError struct {
	Topic     string
	Index     int
	Published []ProducedRecord
	Err       error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish to %s failed at value %d after %d acknowledged: %v",
		e.Topic, e.Index, len(e.Published), e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }

// ResolveError aborts a whole resolution batch. No partial mapping is
// returned once one topic fails.
type ResolveError struct {
	Op    ResolveOp
	Topic string
	Err   error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s position for %s: %v", e.Op, e.Topic, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// RegistrationError reports a schema registration the broker rejected for a
// reason other than a missing topic.
type RegistrationError struct {
	Topic string
	Err   error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("register schema on %s: %v", e.Topic, e.Err)
}

func (e *RegistrationError) Unwrap() error { return e.Err }
