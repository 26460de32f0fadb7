//go:build (linux || darwin || windows) && (amd64 || arm64)

package json

import "github.com/bytedance/sonic"

var api = sonic.ConfigStd

// Marshal encodes a Go value as JSON.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes a JSON payload into the provided destination.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
