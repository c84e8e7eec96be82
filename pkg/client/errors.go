package client

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"syscall"

	"github.com/apache/pulsar-client-go/pulsaradmin/pkg/rest"
)

var (
	// ErrEmptyDescriptor is returned when an operation receives a schema
	// descriptor with no type set.
	ErrEmptyDescriptor = errors.New("schema descriptor is empty")

	// ErrMissingAvroDefinition is returned when an Avro descriptor carries no
	// record schema.
	ErrMissingAvroDefinition = errors.New("avro schema requires a record definition")

	// ErrInvalidAvroDefinition is returned when an Avro record schema does
	// not parse.
	ErrInvalidAvroDefinition = errors.New("invalid avro definition")

	// ErrTopicNotFound is returned by admin operations against a topic the
	// broker does not know.
	ErrTopicNotFound = errors.New("topic not found")
)

// UnknownSchemaTypeError is returned when a descriptor names a schema type
// the producer has no codec for.
type UnknownSchemaTypeError struct {
	Type SchemaType
}

func (e *UnknownSchemaTypeError) Error() string {
	return fmt.Sprintf("unknown schema type: %s", e.Type)
}

// IsNotFound returns true if the err provided is an admin REST error with a
// 404 status code.
func IsNotFound(err error) bool {
	var restErr rest.Error
	if errors.As(err, &restErr) {
		return restErr.Code == http.StatusNotFound
	}
	var restErrPtr *rest.Error
	if errors.As(err, &restErrPtr) {
		return restErrPtr.Code == http.StatusNotFound
	}
	return false
}

func IsTransientNetworkError(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}

// IsDisconnection returns true if the err provided represents a TCP disconnection
func IsDisconnection(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ETIMEDOUT) || errors.Is(err, os.ErrDeadlineExceeded)
}
