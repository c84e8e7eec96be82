package client

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/apache/pulsar-client-go/pulsar"
)

// buildSchema maps a validated descriptor onto the codec the producer encodes
// values with.
func buildSchema(descriptor SchemaDescriptor) (pulsar.Schema, error) {
	if err := descriptor.Validate(); err != nil {
		return nil, err
	}

	properties := descriptor.Properties
	switch descriptor.Type {
	case SchemaBoolean:
		return newBooleanSchema(properties), nil
	case SchemaBytes:
		return pulsar.NewBytesSchema(properties), nil
	case SchemaString:
		return pulsar.NewStringSchema(properties), nil
	case SchemaInt8:
		return pulsar.NewInt8Schema(properties), nil
	case SchemaInt16:
		return pulsar.NewInt16Schema(properties), nil
	case SchemaInt32:
		return pulsar.NewInt32Schema(properties), nil
	case SchemaInt64:
		return pulsar.NewInt64Schema(properties), nil
	case SchemaFloat:
		return pulsar.NewFloatSchema(properties), nil
	case SchemaDouble:
		return pulsar.NewDoubleSchema(properties), nil
	case SchemaDate:
		return newMillisSchema("Date", properties), nil
	case SchemaTimestamp:
		return newMillisSchema("Timestamp", properties), nil
	case SchemaAvro:
		return pulsar.NewAvroSchema(string(descriptor.Definition), properties), nil
	default:
		return nil, &UnknownSchemaTypeError{Type: descriptor.Type}
	}
}

var _ pulsar.Schema = (*millisSchema)(nil)

// millisSchema carries time values as epoch milliseconds in a big-endian
// int64, the registry encoding for the DATE and TIMESTAMP types the client
// library ships no codec for.
type millisSchema struct {
	info pulsar.SchemaInfo
}

func newMillisSchema(name string, properties map[string]string) *millisSchema {
	return &millisSchema{
		info: pulsar.SchemaInfo{
			Name:       name,
			Type:       pulsar.INT64,
			Schema:     "",
			Properties: properties,
		},
	}
}

func (s *millisSchema) Encode(value any) ([]byte, error) {
	var millis int64
	switch v := value.(type) {
	case time.Time:
		millis = v.UnixMilli()
	case int64:
		millis = v
	default:
		return nil, fmt.Errorf("%s schema cannot encode %T", s.info.Name, value)
	}

	encoded := make([]byte, 8)
	binary.BigEndian.PutUint64(encoded, uint64(millis))
	return encoded, nil
}

func (s *millisSchema) Decode(data []byte, value any) error {
	if err := s.Validate(data); err != nil {
		return err
	}
	millis := int64(binary.BigEndian.Uint64(data))

	switch v := value.(type) {
	case *time.Time:
		*v = time.UnixMilli(millis).UTC()
	case *int64:
		*v = millis
	default:
		return fmt.Errorf("%s schema cannot decode into %T", s.info.Name, value)
	}
	return nil
}

func (s *millisSchema) Validate(message []byte) error {
	if len(message) != 8 {
		return fmt.Errorf("%s payload must be 8 bytes, got %d", s.info.Name, len(message))
	}
	return nil
}

func (s *millisSchema) GetSchemaInfo() *pulsar.SchemaInfo {
	return &s.info
}

var _ pulsar.Schema = (*booleanSchema)(nil)

// booleanSchema carries boolean values as a single 0x00/0x01 byte, the
// registry encoding for the BOOLEAN type the client library declares but
// ships no codec for.
type booleanSchema struct {
	info pulsar.SchemaInfo
}

func newBooleanSchema(properties map[string]string) *booleanSchema {
	return &booleanSchema{
		info: pulsar.SchemaInfo{
			Name:       "Boolean",
			Type:       pulsar.BOOLEAN,
			Schema:     "",
			Properties: properties,
		},
	}
}

func (s *booleanSchema) Encode(value any) ([]byte, error) {
	v, ok := value.(bool)
	if !ok {
		return nil, fmt.Errorf("%s schema cannot encode %T", s.info.Name, value)
	}
	if v {
		return []byte{0x01}, nil
	}
	return []byte{0x00}, nil
}

func (s *booleanSchema) Decode(data []byte, value any) error {
	if err := s.Validate(data); err != nil {
		return err
	}
	target, ok := value.(*bool)
	if !ok {
		return fmt.Errorf("%s schema cannot decode into %T", s.info.Name, value)
	}
	*target = data[0] != 0x00
	return nil
}

func (s *booleanSchema) Validate(message []byte) error {
	if len(message) != 1 {
		return fmt.Errorf("%s payload must be 1 byte, got %d", s.info.Name, len(message))
	}
	return nil
}

func (s *booleanSchema) GetSchemaInfo() *pulsar.SchemaInfo {
	return &s.info
}
