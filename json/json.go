// Package json provides the JSON wire adapter for enumeration values.
package json

import (
	"encoding/json"

	"github.com/enumkit/enum"
)

// Codec implements enum.Codec for JSON. Values travel as bare JSON strings
// holding the object name; absence travels as JSON null.
type Codec[T enum.Enumerated] struct{}

// New returns a JSON codec for T.
func New[T enum.Enumerated]() *Codec[T] {
	return &Codec[T]{}
}

// ContentType returns the MIME type for JSON.
func (c *Codec[T]) ContentType() string {
	return "application/json"
}

// Marshal encodes v as a bare JSON string. A nil v encodes as null.
func (c *Codec[T]) Marshal(v *T) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	data, err := json.Marshal(enum.Encode(*v))
	if err != nil {
		return nil, &enum.CodecError{Err: enum.ErrMarshal, Cause: err}
	}
	return data, nil
}

// Unmarshal decodes a JSON string token into the matching member of T.
// JSON null yields (nil, nil); an empty string yields the unknown sentinel.
func (c *Codec[T]) Unmarshal(data []byte) (*T, error) {
	var token *string
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, &enum.CodecError{Err: enum.ErrUnmarshal, Cause: err}
	}
	if token == nil {
		return nil, nil
	}
	m, err := enum.Decode[T](*token)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
