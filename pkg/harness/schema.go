package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/afire007/pulsar-probe/pkg/client"
)

// RegistrationResult reports what a RegisterSchema call did.
type RegistrationResult int

const (
	// SchemaRegistered means the registry accepted the descriptor.
	SchemaRegistered RegistrationResult = iota + 1
	// SchemaSkipped means the topic does not exist and the registration was
	// logged and dropped.
	SchemaSkipped
)

func (r RegistrationResult) String() string {
	switch r {
	case SchemaRegistered:
		return "registered"
	case SchemaSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// RegisterSchema uploads the descriptor for the topic. Registration is
// idempotent, so re-registering an identical descriptor succeeds. A topic
// the broker does not know is tolerated and reported as SchemaSkipped,
// which lets suites register schemas ahead of topic creation.
func (h *Harness) RegisterSchema(ctx context.Context, topic string, schema client.SchemaDescriptor) (RegistrationResult, error) {
	if err := schema.Validate(); err != nil {
		return 0, err
	}

	admin, err := h.connector.ConnectAdmin(ctx)
	if err != nil {
		return 0, fmt.Errorf("connect admin: %w", err)
	}
	defer admin.Close()

	if err := admin.RegisterSchema(ctx, topic, schema); err != nil {
		if errors.Is(err, client.ErrTopicNotFound) {
			h.logger.Warn().
				Str("topic", topic).
				Str("type", string(schema.Type)).
				Msg("Topic not found, skipping schema registration")
			return SchemaSkipped, nil
		}
		return 0, &RegistrationError{Topic: topic, Err: err}
	}

	h.logger.Debug().
		Str("topic", topic).
		Str("type", string(schema.Type)).
		Msg("Schema registered")
	return SchemaRegistered, nil
}
