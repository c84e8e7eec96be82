package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"syscall"
	"testing"

	"github.com/apache/pulsar-client-go/pulsaradmin/pkg/rest"
	"github.com/stretchr/testify/assert"
)

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "RestNotFound",
			err:  rest.Error{Code: http.StatusNotFound, Reason: "Topic not found"},
			want: true,
		},
		{
			name: "RestNotFoundPointer",
			err:  &rest.Error{Code: http.StatusNotFound, Reason: "Topic not found"},
			want: true,
		},
		{
			name: "WrappedRestNotFound",
			err:  fmt.Errorf("registering schema: %w", rest.Error{Code: http.StatusNotFound, Reason: "Topic not found"}),
			want: true,
		},
		{
			name: "RestServerError",
			err:  rest.Error{Code: http.StatusInternalServerError, Reason: "boom"},
			want: false,
		},
		{
			name: "PlainError",
			err:  errors.New("not a rest error"),
			want: false,
		},
		{
			name: "Nil",
			err:  nil,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}

func TestIsTransientNetworkError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "UnexpectedEOF",
			err:  io.ErrUnexpectedEOF,
			want: true,
		},
		{
			name: "ConnectionRefused",
			err:  syscall.ECONNREFUSED,
			want: true,
		},
		{
			name: "ConnectionReset",
			err:  fmt.Errorf("send failed: %w", syscall.ECONNRESET),
			want: true,
		},
		{
			name: "BrokenPipe",
			err:  syscall.EPIPE,
			want: true,
		},
		{
			name: "Other",
			err:  errors.New("schema incompatible"),
			want: false,
		},
		{
			name: "Nil",
			err:  nil,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransientNetworkError(tt.err))
		})
	}
}

func TestIsDisconnection(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "EOF",
			err:  io.EOF,
			want: true,
		},
		{
			name: "ConnectionReset",
			err:  syscall.ECONNRESET,
			want: true,
		},
		{
			name: "Timeout",
			err:  fmt.Errorf("read: %w", syscall.ETIMEDOUT),
			want: true,
		},
		{
			name: "DeadlineExceeded",
			err:  os.ErrDeadlineExceeded,
			want: true,
		},
		{
			name: "Other",
			err:  errors.New("authorization failed"),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDisconnection(tt.err))
		})
	}
}

func TestWrapNotFound(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		err := wrapNotFound(rest.Error{Code: http.StatusNotFound, Reason: "Topic not found"}, mockTopicName)
		assert.ErrorIs(t, err, ErrTopicNotFound)
		assert.Contains(t, err.Error(), mockTopicName)
	})

	t.Run("Passthrough", func(t *testing.T) {
		cause := rest.Error{Code: http.StatusInternalServerError, Reason: "boom"}
		err := wrapNotFound(cause, mockTopicName)
		assert.NotErrorIs(t, err, ErrTopicNotFound)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, wrapNotFound(nil, mockTopicName))
	})
}
