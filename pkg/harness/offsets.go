package harness

import (
	"context"
	"fmt"
	"sort"

	"github.com/afire007/pulsar-probe/pkg/client"
)

// TopicSize pairs a topic with its normalized latest position.
type TopicSize struct {
	Topic  string           `json:"topic"`
	Latest client.MessageID `json:"latest"`
}

// ResolveEarliest returns, per topic, the position of the first record still
// present. Each topic is read through its own reader starting at the
// reserved earliest position; the read blocks until the topic has at least
// one record or ctx is done. One failing topic aborts the whole batch and no
// partial mapping is returned.
func (h *Harness) ResolveEarliest(ctx context.Context, topics ...string) (map[string]client.MessageID, error) {
	connection, err := h.connector.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer connection.Close()

	positions := make(map[string]client.MessageID, len(topics))
	for _, topic := range topics {
		id, err := h.firstPosition(ctx, connection, topic)
		if err != nil {
			return nil, &ResolveError{Op: ResolveOpEarliest, Topic: topic, Err: err}
		}
		h.logger.Debug().
			Str("topic", topic).
			Stringer("id", id).
			Msg("Resolved earliest position")
		positions[topic] = id
	}

	return positions, nil
}

// ResolveLatest returns, per topic, the normalized latest position reported
// by the admin plane. For an empty topic that is the position the next
// record will take, so the result never carries the broker's -1 entry
// sentinel. One failing topic aborts the whole batch.
func (h *Harness) ResolveLatest(ctx context.Context, topics ...string) (map[string]client.MessageID, error) {
	admin, err := h.connector.ConnectAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect admin: %w", err)
	}
	defer admin.Close()

	positions := make(map[string]client.MessageID, len(topics))
	for _, topic := range topics {
		raw, err := admin.LastMessageID(ctx, topic)
		if err != nil {
			return nil, &ResolveError{Op: ResolveOpLatest, Topic: topic, Err: err}
		}
		id := client.SeekableLatest(raw)
		h.logger.Debug().
			Str("topic", topic).
			Stringer("id", id).
			Msg("Resolved latest position")
		positions[topic] = id
	}

	return positions, nil
}

// TopicSizes resolves the normalized latest position of every topic in the
// namespace, sorted by topic name.
func (h *Harness) TopicSizes(ctx context.Context, namespace string) ([]TopicSize, error) {
	admin, err := h.connector.ConnectAdmin(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect admin: %w", err)
	}
	defer admin.Close()

	topics, err := admin.ListTopics(ctx, namespace)
	if err != nil {
		return nil, fmt.Errorf("list topics in %s: %w", namespace, err)
	}
	sort.Strings(topics)

	sizes := make([]TopicSize, 0, len(topics))
	for _, topic := range topics {
		raw, err := admin.LastMessageID(ctx, topic)
		if err != nil {
			return nil, &ResolveError{Op: ResolveOpLatest, Topic: topic, Err: err}
		}
		sizes = append(sizes, TopicSize{Topic: topic, Latest: client.SeekableLatest(raw)})
	}

	return sizes, nil
}

// firstPosition attaches a reader at the earliest position and reads a
// single record. The reader is released before the next topic is resolved.
func (h *Harness) firstPosition(ctx context.Context, connection client.Connection, topic string) (client.MessageID, error) {
	reader, err := connection.CreateReader(ctx, client.ReaderOptions{
		Topic:          topic,
		Start:          client.Earliest,
		StartInclusive: true,
	})
	if err != nil {
		return client.MessageID{}, err
	}
	defer reader.Close()

	message, err := reader.Next(ctx)
	if err != nil {
		return client.MessageID{}, err
	}
	return message.ID, nil
}
