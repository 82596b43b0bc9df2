// Package apiconnect wires the roomsplit.v1 services to Connect handlers and
// clients.
package apiconnect

import "encoding/json"

// codecName matches the "application/json" content type Connect negotiates.
const codecName = "json"

// jsonCodec replaces Connect's protojson codec so plain Go structs can be
// used as messages.
type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
