package harness

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/afire007/pulsar-probe/pkg/client"
	"github.com/afire007/pulsar-probe/pkg/client/mocks"
)

func TestHarness_ResolveEarliest(t *testing.T) {
	connector := mocks.NewConnector(t)
	connection := mocks.NewConnection(t)
	readerA := mocks.NewReader(t)
	readerB := mocks.NewReader(t)

	connector.EXPECT().Connect(mock.Anything).Return(connection, nil).Once()
	connection.EXPECT().CreateReader(mock.Anything, client.ReaderOptions{
		Topic:          "topic-a",
		Start:          client.Earliest,
		StartInclusive: true,
	}).Return(readerA, nil).Once()
	connection.EXPECT().CreateReader(mock.Anything, client.ReaderOptions{
		Topic:          "topic-b",
		Start:          client.Earliest,
		StartInclusive: true,
	}).Return(readerB, nil).Once()

	readerA.EXPECT().Next(mock.Anything).Return(client.Message{ID: mockMessageID(4), Topic: "topic-a"}, nil).Once()
	readerA.EXPECT().Close().Once()
	readerB.EXPECT().Next(mock.Anything).Return(client.Message{ID: mockMessageID(9), Topic: "topic-b"}, nil).Once()
	readerB.EXPECT().Close().Once()
	connection.EXPECT().Close().Once()

	h := New(connector, mockLogger())
	positions, err := h.ResolveEarliest(context.Background(), "topic-a", "topic-b")

	assert.NoError(t, err)
	assert.Equal(t, map[string]client.MessageID{
		"topic-a": mockMessageID(4),
		"topic-b": mockMessageID(9),
	}, positions)
}

func TestHarness_ResolveEarliest_Aborts(t *testing.T) {
	connector := mocks.NewConnector(t)
	connection := mocks.NewConnection(t)
	readerA := mocks.NewReader(t)
	readerB := mocks.NewReader(t)
	errRead := errors.New("reader disconnected")

	connector.EXPECT().Connect(mock.Anything).Return(connection, nil).Once()
	connection.EXPECT().CreateReader(mock.Anything, mock.Anything).Return(readerA, nil).Once()
	connection.EXPECT().CreateReader(mock.Anything, mock.Anything).Return(readerB, nil).Once()

	readerA.EXPECT().Next(mock.Anything).Return(client.Message{ID: mockMessageID(4)}, nil).Once()
	readerA.EXPECT().Close().Once()
	readerB.EXPECT().Next(mock.Anything).Return(client.Message{}, errRead).Once()
	readerB.EXPECT().Close().Once()
	connection.EXPECT().Close().Once()

	h := New(connector, mockLogger())
	positions, err := h.ResolveEarliest(context.Background(), "topic-a", "topic-b")

	assert.Nil(t, positions)
	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, ResolveOpEarliest, resolveErr.Op)
	assert.Equal(t, "topic-b", resolveErr.Topic)
	assert.ErrorIs(t, err, errRead)
}

func TestHarness_ResolveEarliest_ConnectError(t *testing.T) {
	connector := mocks.NewConnector(t)
	errConnect := errors.New("no route to broker")

	connector.EXPECT().Connect(mock.Anything).Return(nil, errConnect).Once()

	h := New(connector, mockLogger())
	positions, err := h.ResolveEarliest(context.Background(), "topic-a")

	assert.Nil(t, positions)
	assert.ErrorIs(t, err, errConnect)
}

func TestHarness_ResolveLatest(t *testing.T) {
	connector := mocks.NewConnector(t)
	admin := mocks.NewAdminSession(t)

	connector.EXPECT().ConnectAdmin(mock.Anything).Return(admin, nil).Once()
	admin.EXPECT().LastMessageID(mock.Anything, "empty-topic").
		Return(client.MessageID{LedgerID: 7, EntryID: -1, Partition: -1, BatchIdx: -1}, nil).Once()
	admin.EXPECT().LastMessageID(mock.Anything, "active-topic").
		Return(mockMessageID(41), nil).Once()
	admin.EXPECT().Close().Once()

	h := New(connector, mockLogger())
	positions, err := h.ResolveLatest(context.Background(), "empty-topic", "active-topic")

	assert.NoError(t, err)
	assert.Equal(t, map[string]client.MessageID{
		"empty-topic":  {LedgerID: 7, EntryID: 0, Partition: -1, BatchIdx: -1},
		"active-topic": mockMessageID(41),
	}, positions)
}

func TestHarness_ResolveLatest_Aborts(t *testing.T) {
	connector := mocks.NewConnector(t)
	admin := mocks.NewAdminSession(t)
	errAdmin := errors.New("admin unavailable")

	connector.EXPECT().ConnectAdmin(mock.Anything).Return(admin, nil).Once()
	admin.EXPECT().LastMessageID(mock.Anything, "topic-a").Return(mockMessageID(3), nil).Once()
	admin.EXPECT().LastMessageID(mock.Anything, "topic-b").Return(client.MessageID{}, errAdmin).Once()
	admin.EXPECT().Close().Once()

	h := New(connector, mockLogger())
	positions, err := h.ResolveLatest(context.Background(), "topic-a", "topic-b")

	assert.Nil(t, positions)
	var resolveErr *ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, ResolveOpLatest, resolveErr.Op)
	assert.Equal(t, "topic-b", resolveErr.Topic)
	assert.ErrorIs(t, err, errAdmin)
}

func TestHarness_TopicSizes(t *testing.T) {
	connector := mocks.NewConnector(t)
	admin := mocks.NewAdminSession(t)

	connector.EXPECT().ConnectAdmin(mock.Anything).Return(admin, nil).Once()
	admin.EXPECT().ListTopics(mock.Anything, "public/default").
		Return([]string{"persistent://public/default/zulu", "persistent://public/default/alpha"}, nil).Once()
	admin.EXPECT().LastMessageID(mock.Anything, "persistent://public/default/alpha").
		Return(mockMessageID(5), nil).Once()
	admin.EXPECT().LastMessageID(mock.Anything, "persistent://public/default/zulu").
		Return(client.MessageID{LedgerID: 9, EntryID: -1, Partition: -1, BatchIdx: -1}, nil).Once()
	admin.EXPECT().Close().Once()

	h := New(connector, mockLogger())
	sizes, err := h.TopicSizes(context.Background(), "public/default")

	assert.NoError(t, err)
	assert.Equal(t, []TopicSize{
		{Topic: "persistent://public/default/alpha", Latest: mockMessageID(5)},
		{Topic: "persistent://public/default/zulu", Latest: client.MessageID{LedgerID: 9, EntryID: 0, Partition: -1, BatchIdx: -1}},
	}, sizes)
}

func TestHarness_TopicSizes_ListError(t *testing.T) {
	connector := mocks.NewConnector(t)
	admin := mocks.NewAdminSession(t)
	errAdmin := errors.New("namespace missing")

	connector.EXPECT().ConnectAdmin(mock.Anything).Return(admin, nil).Once()
	admin.EXPECT().ListTopics(mock.Anything, "public/missing").Return(nil, errAdmin).Once()
	admin.EXPECT().Close().Once()

	h := New(connector, mockLogger())
	sizes, err := h.TopicSizes(context.Background(), "public/missing")

	assert.Nil(t, sizes)
	assert.ErrorIs(t, err, errAdmin)
}
