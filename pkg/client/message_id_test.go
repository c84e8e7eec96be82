package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageID_Compare(t *testing.T) {
	base := mockGetMessageID()

	tests := []struct {
		name  string
		id    MessageID
		other MessageID
		want  int
	}{
		{
			name:  "Equal",
			id:    base,
			other: base,
			want:  0,
		},
		{
			name:  "EarlierLedger",
			id:    MessageID{LedgerID: 30, EntryID: 999, Partition: -1, BatchIdx: -1},
			other: base,
			want:  -1,
		},
		{
			name:  "LaterLedger",
			id:    MessageID{LedgerID: 32, EntryID: 0, Partition: -1, BatchIdx: -1},
			other: base,
			want:  1,
		},
		{
			name:  "EarlierEntry",
			id:    MessageID{LedgerID: 31, EntryID: 8, Partition: -1, BatchIdx: -1},
			other: base,
			want:  -1,
		},
		{
			name:  "LaterBatch",
			id:    MessageID{LedgerID: 31, EntryID: 9, Partition: -1, BatchIdx: 2},
			other: base,
			want:  1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.Compare(tt.other))
		})
	}
}

func TestMessageID_String(t *testing.T) {
	tests := []struct {
		name string
		id   MessageID
		want string
	}{
		{
			name: "Unbatched",
			id:   mockGetMessageID(),
			want: "31:9:-1",
		},
		{
			name: "Batched",
			id:   MessageID{LedgerID: 31, EntryID: 9, Partition: 0, BatchIdx: 4},
			want: "31:9:0:4",
		},
		{
			name: "Earliest",
			id:   Earliest,
			want: "-1:-1:-1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.id.String())
		})
	}
}

func TestSeekableLatest(t *testing.T) {
	tests := []struct {
		name string
		raw  MessageID
		want MessageID
	}{
		{
			name: "EmptyTopic",
			raw:  MessageID{LedgerID: 42, EntryID: -1, Partition: -1, BatchIdx: -1},
			want: MessageID{LedgerID: 42, EntryID: 0, Partition: -1, BatchIdx: -1},
		},
		{
			name: "EmptyPartition",
			raw:  MessageID{LedgerID: 42, EntryID: -1, Partition: 3, BatchIdx: -1},
			want: MessageID{LedgerID: 42, EntryID: 0, Partition: 3, BatchIdx: -1},
		},
		{
			name: "NonEmptyTopic",
			raw:  MessageID{LedgerID: 42, EntryID: 17, Partition: -1, BatchIdx: -1},
			want: MessageID{LedgerID: 42, EntryID: 17, Partition: -1, BatchIdx: -1},
		},
		{
			name: "BatchedLastEntry",
			raw:  MessageID{LedgerID: 42, EntryID: 17, Partition: 0, BatchIdx: 5},
			want: MessageID{LedgerID: 42, EntryID: 17, Partition: 0, BatchIdx: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeekableLatest(tt.raw))
		})
	}
}

func TestSeekableLatest_DetachedFromInput(t *testing.T) {
	raw := MessageID{LedgerID: 7, EntryID: -1, Partition: -1, BatchIdx: 3}
	normalized := SeekableLatest(raw)

	assert.Equal(t, int64(0), normalized.EntryID)
	assert.Equal(t, int32(-1), normalized.BatchIdx)
	// the input keeps the broker's raw form
	assert.Equal(t, int64(-1), raw.EntryID)
}
