// Package bson provides the BSON wire adapter for enumeration values.
package bson

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/enumkit/enum"
)

// Codec translates enumeration values to BSON string values. BSON has no
// standalone scalar document form, so this adapter does not implement the
// byte-slice enum.Codec contract; instead MarshalValue and UnmarshalValue
// match the shapes of the driver's bson.ValueMarshaler and
// bson.ValueUnmarshaler hooks, for use in struct fields and raw values.
type Codec[T enum.Enumerated] struct{}

// New returns a BSON codec for T.
func New[T enum.Enumerated]() *Codec[T] {
	return &Codec[T]{}
}

// ContentType returns the MIME type for BSON.
func (c *Codec[T]) ContentType() string {
	return "application/bson"
}

// MarshalValue encodes v as a BSON string value holding the object name.
// A nil v encodes as BSON null.
func (c *Codec[T]) MarshalValue(v *T) (bsontype.Type, []byte, error) {
	if v == nil {
		return bson.MarshalValue(primitive.Null{})
	}
	t, data, err := bson.MarshalValue(enum.Encode(*v))
	if err != nil {
		return t, nil, &enum.CodecError{Err: enum.ErrMarshal, Cause: err}
	}
	return t, data, nil
}

// UnmarshalValue decodes a BSON string value into the matching member of T.
// BSON null yields (nil, nil); an empty string yields the unknown sentinel.
func (c *Codec[T]) UnmarshalValue(t bsontype.Type, data []byte) (*T, error) {
	if t == bsontype.Null {
		return nil, nil
	}
	var token string
	if err := bson.UnmarshalValue(t, data, &token); err != nil {
		return nil, &enum.CodecError{Err: enum.ErrUnmarshal, Cause: err}
	}
	m, err := enum.Decode[T](token)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
