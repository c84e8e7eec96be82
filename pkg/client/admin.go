package client

import (
	"context"
	"fmt"

	"github.com/apache/pulsar-client-go/pulsaradmin"
	"github.com/apache/pulsar-client-go/pulsaradmin/pkg/utils"
)

var _ AdminSession = (*pulsarAdminSession)(nil)

type pulsarAdminSession struct {
	admin pulsaradmin.Client
}

// LastMessageID returns the raw position of the last entry the broker wrote
// to the topic. Callers normalize it with SeekableLatest before seeking.
func (s *pulsarAdminSession) LastMessageID(_ context.Context, topic string) (MessageID, error) {
	name, err := utils.GetTopicName(topic)
	if err != nil {
		return MessageID{}, fmt.Errorf("invalid topic name %q: %w", topic, err)
	}

	id, err := s.admin.Topics().GetLastMessageID(*name)
	if err != nil {
		return MessageID{}, wrapNotFound(err, topic)
	}

	return fromAdminMessageID(id), nil
}

// fromAdminMessageID maps the admin REST payload onto the shared position
// type.
func fromAdminMessageID(id utils.MessageID) MessageID {
	return MessageID{
		LedgerID:  id.LedgerID,
		EntryID:   id.EntryID,
		Partition: int32(id.PartitionIndex),
		BatchIdx:  int32(id.BatchIndex),
	}
}

// ListTopics returns every partitioned and non-partitioned topic in the
// namespace. The namespace uses the tenant/namespace form.
func (s *pulsarAdminSession) ListTopics(_ context.Context, namespace string) ([]string, error) {
	name, err := utils.GetNamespaceName(namespace)
	if err != nil {
		return nil, fmt.Errorf("invalid namespace %q: %w", namespace, err)
	}

	partitioned, nonPartitioned, err := s.admin.Topics().List(*name)
	if err != nil {
		return nil, err
	}

	return append(partitioned, nonPartitioned...), nil
}

// RegisterSchema uploads the descriptor to the registry under the topic's
// canonical name. A missing topic maps to ErrTopicNotFound.
func (s *pulsarAdminSession) RegisterSchema(_ context.Context, topic string, schema SchemaDescriptor) error {
	name, err := utils.GetTopicName(topic)
	if err != nil {
		return fmt.Errorf("invalid topic name %q: %w", topic, err)
	}

	payload := utils.PostSchemaPayload{
		SchemaType: string(schema.Type),
		Schema:     string(schema.Definition),
		Properties: schema.Properties,
	}

	if err := s.admin.Schemas().CreateSchemaByPayload(name.String(), payload); err != nil {
		return wrapNotFound(err, topic)
	}
	return nil
}

// Close releases the session. The admin plane is plain REST, so there is no
// connection state to tear down.
func (s *pulsarAdminSession) Close() {}

func wrapNotFound(err error, topic string) error {
	if IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrTopicNotFound, topic)
	}
	return err
}
