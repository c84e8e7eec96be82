package client

import (
	"fmt"

	"github.com/linkedin/goavro/v2"
)

// SchemaType is the name of a registry schema type as stored by the broker.
type SchemaType string

const (
	SchemaBoolean   SchemaType = "BOOLEAN"
	SchemaBytes     SchemaType = "BYTES"
	SchemaDate      SchemaType = "DATE"
	SchemaString    SchemaType = "STRING"
	SchemaTimestamp SchemaType = "TIMESTAMP"
	SchemaInt8      SchemaType = "INT8"
	SchemaInt16     SchemaType = "INT16"
	SchemaInt32     SchemaType = "INT32"
	SchemaInt64     SchemaType = "INT64"
	SchemaFloat     SchemaType = "FLOAT"
	SchemaDouble    SchemaType = "DOUBLE"
	SchemaAvro      SchemaType = "AVRO"
)

// SchemaDescriptor selects the codec a producer encodes values with and the
// payload a schema registration carries. Definition is only meaningful for
// Avro, where it holds the record schema JSON.
type SchemaDescriptor struct {
	Type       SchemaType
	Definition []byte
	Properties map[string]string
}

// Validate checks the descriptor before any connection is opened. Avro
// definitions are parsed so that a malformed record schema surfaces here
// instead of inside the producer.
func (d SchemaDescriptor) Validate() error {
	switch d.Type {
	case "":
		return ErrEmptyDescriptor
	case SchemaAvro:
		if len(d.Definition) == 0 {
			return ErrMissingAvroDefinition
		}
		if _, err := goavro.NewCodec(string(d.Definition)); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAvroDefinition, err)
		}
		return nil
	case SchemaBoolean, SchemaBytes, SchemaDate, SchemaString, SchemaTimestamp,
		SchemaInt8, SchemaInt16, SchemaInt32, SchemaInt64,
		SchemaFloat, SchemaDouble:
		return nil
	default:
		return &UnknownSchemaTypeError{Type: d.Type}
	}
}
