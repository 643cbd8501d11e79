// Package yaml provides the YAML wire adapter for enumeration values.
package yaml

import (
	"github.com/enumkit/enum"
	"gopkg.in/yaml.v3"
)

// Codec implements enum.Codec for YAML. Values travel as bare YAML scalars
// holding the object name; absence travels as a null scalar.
type Codec[T enum.Enumerated] struct{}

// New returns a YAML codec for T.
func New[T enum.Enumerated]() *Codec[T] {
	return &Codec[T]{}
}

// ContentType returns the MIME type for YAML.
func (c *Codec[T]) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as a bare YAML scalar. A nil v encodes as null.
func (c *Codec[T]) Marshal(v *T) ([]byte, error) {
	var token any
	if v != nil {
		token = enum.Encode(*v)
	}
	data, err := yaml.Marshal(token)
	if err != nil {
		return nil, &enum.CodecError{Err: enum.ErrMarshal, Cause: err}
	}
	return data, nil
}

// Unmarshal decodes a YAML scalar token into the matching member of T.
// A null scalar or empty document yields (nil, nil); an empty (quoted)
// string yields the unknown sentinel.
func (c *Codec[T]) Unmarshal(data []byte) (*T, error) {
	var token *string
	if err := yaml.Unmarshal(data, &token); err != nil {
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
