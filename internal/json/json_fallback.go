//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import "encoding/json"

// Marshal encodes a Go value as JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
