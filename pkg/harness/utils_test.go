package harness

import (
	"github.com/rs/zerolog"

	"github.com/afire007/pulsar-probe/pkg/client"
)

const mockTopicName = "persistent://public/default/fake-topic"

func mockLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func mockMessageID(entry int64) client.MessageID {
	return client.MessageID{LedgerID: 12, EntryID: entry, Partition: -1, BatchIdx: -1}
}

func mockStringDescriptor() client.SchemaDescriptor {
	return client.SchemaDescriptor{Type: client.SchemaString}
}
