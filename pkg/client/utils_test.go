package client

const (
	mockTopicName = "persistent://public/default/fake-topic"

	mockAvroDefinition = `{
		"type": "record",
		"name": "ProbeRecord",
		"namespace": "probe",
		"fields": [
			{"name": "id", "type": "int"},
			{"name": "label", "type": "string"}
		]
	}`
)

func mockGetMessageID() MessageID {
	return MessageID{LedgerID: 31, EntryID: 9, Partition: -1, BatchIdx: -1}
}
