package service

import (
	"encoding/json"
	"fmt"

	"connectrpc.com/connect"
)

// jsonCodec lets Connect carry plain Go structs. It replaces the default protojson
// codec registered under the same name.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("invalid JSON message: %w", err)
	}
	return nil
}

// JSONCodec returns the codec clients must use to talk to the service.
func JSONCodec() connect.Codec {
	return jsonCodec{}
}
