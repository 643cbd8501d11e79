// Package msgpack provides the MessagePack wire adapter for enumeration values.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/enumkit/enum"
)

// Codec implements enum.Codec for MessagePack. Values travel as str-typed
// tokens holding the object name; absence travels as nil.
type Codec[T enum.Enumerated] struct{}

// New returns a MessagePack codec for T.
func New[T enum.Enumerated]() *Codec[T] {
	return &Codec[T]{}
}

// ContentType returns the MIME type for MessagePack.
func (c *Codec[T]) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as a MessagePack string. A nil v encodes as nil.
func (c *Codec[T]) Marshal(v *T) ([]byte, error) {
	var token any
	if v != nil {
		token = enum.Encode(*v)
	}
	data, err := msgpack.Marshal(token)
	if err != nil {
		return nil, &enum.CodecError{Err: enum.ErrMarshal, Cause: err}
	}
	return data, nil
}

// Unmarshal decodes a MessagePack string token into the matching member of T.
// A nil token yields (nil, nil); an empty string yields the unknown sentinel.
func (c *Codec[T]) Unmarshal(data []byte) (*T, error) {
	var token *string
	if err := msgpack.Unmarshal(data, &token); err != nil {
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
