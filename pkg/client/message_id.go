package client

import "fmt"

// MessageID locates a single entry within a topic. It mirrors the broker
// addressing scheme of ledger id, entry id, partition index and batch index
// and is totally ordered within a partition.
type MessageID struct {
	LedgerID  int64
	EntryID   int64
	Partition int32
	BatchIdx  int32
}

// Earliest is the reserved position a reader starts from to observe every
// entry still present in a topic.
var Earliest = MessageID{LedgerID: -1, EntryID: -1, Partition: -1, BatchIdx: -1}

// Compare orders two positions within the same partition. It returns -1 if
// id precedes other, 0 if they are equal and 1 if id follows other.
func (id MessageID) Compare(other MessageID) int {
	if c := compareInt64(id.LedgerID, other.LedgerID); c != 0 {
		return c
	}
	if c := compareInt64(id.EntryID, other.EntryID); c != 0 {
		return c
	}
	return compareInt64(int64(id.BatchIdx), int64(other.BatchIdx))
}

// String renders the position in the ledger:entry:partition form used by the
// broker tooling, with the batch index appended for batched entries.
func (id MessageID) String() string {
	if id.BatchIdx >= 0 {
		return fmt.Sprintf("%d:%d:%d:%d", id.LedgerID, id.EntryID, id.Partition, id.BatchIdx)
	}
	return fmt.Sprintf("%d:%d:%d", id.LedgerID, id.EntryID, id.Partition)
}

// SeekableLatest normalizes a last-entry position reported by the broker into
// a position a reader can seek to. On a topic with no entries the broker
// reports entry id -1 in the current ledger; the normalized form points at
// the next entry the broker will write instead.
func SeekableLatest(raw MessageID) MessageID {
	if raw.EntryID == -1 {
		return MessageID{
			LedgerID:  raw.LedgerID,
			EntryID:   raw.EntryID + 1,
			Partition: raw.Partition,
			BatchIdx:  -1,
		}
	}
	return raw
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
