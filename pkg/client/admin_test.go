package client

import (
	"testing"

	"github.com/apache/pulsar-client-go/pulsaradmin/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestFromAdminMessageID(t *testing.T) {
	tests := []struct {
		name string
		raw  utils.MessageID
		want MessageID
	}{
		{
			name: "Unbatched",
			raw:  utils.MessageID{LedgerID: 31, EntryID: 9, PartitionIndex: -1, BatchIndex: -1},
			want: MessageID{LedgerID: 31, EntryID: 9, Partition: -1, BatchIdx: -1},
		},
		{
			name: "Batched",
			raw:  utils.MessageID{LedgerID: 31, EntryID: 9, PartitionIndex: 2, BatchIndex: 4},
			want: MessageID{LedgerID: 31, EntryID: 9, Partition: 2, BatchIdx: 4},
		},
		{
			name: "EmptyTopic",
			raw:  utils.MessageID{LedgerID: 42, EntryID: -1, PartitionIndex: -1, BatchIndex: -1},
			want: MessageID{LedgerID: 42, EntryID: -1, Partition: -1, BatchIdx: -1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fromAdminMessageID(tt.raw))
		})
	}
}
