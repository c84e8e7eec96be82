// Package services defines an interface for probe services and related implementations
package services

import (
	"encoding/json"
	"fmt"

	"github.com/afire007/pulsar-probe/pkg/client"
)

// ProbeMessage defines the payload of a probe message
type ProbeMessage struct {
	ProducerID string `json:"producerId"`
	MessageID  int    `json:"messageId"`
	Timestamp  int64  `json:"timestamp"`
}

func NewProbeMessage(bytes []byte) (ProbeMessage, error) {
	var pm ProbeMessage
	err := json.Unmarshal(bytes, &pm)
	return pm, err
}

func (pm ProbeMessage) JSON() string {
	json, _ := json.Marshal(pm)
	return string(json)
}

func (pm ProbeMessage) String() string {
	return fmt.Sprintf("{ProducerID:%s, MessageID:%d, Timestamp:%d}",
		pm.ProducerID, pm.MessageID, pm.Timestamp)
}

// probeSchema is the registry descriptor probe messages are published with.
// The payload is the JSON form of a ProbeMessage.
func probeSchema() client.SchemaDescriptor {
	return client.SchemaDescriptor{Type: client.SchemaString}
}
