// cache/codec.go
package cache

import (
	"encoding/json"
	"fmt"
)

// Codec serializes one entity kind in and out of its cache payload.
// Implementations must round-trip losslessly for every cached field.
type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// JSONCodec is the default Codec. Cache payloads are plain JSON so they stay
// inspectable from redis-cli.
type JSONCodec[T any] struct{}

func NewJSONCodec[T any]() JSONCodec[T] {
	return JSONCodec[T]{}
}

func (JSONCodec[T]) Encode(value T) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cache payload: %w", err)
	}
	return data, nil
}

func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return value, nil
}
