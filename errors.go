package enum

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidDeclaration indicates a member set declaration is malformed,
	// typically because two members share a value or string key.
	ErrInvalidDeclaration = errors.New("invalid enumeration declaration")

	// ErrAlreadyDeclared indicates a set was already declared for the type.
	ErrAlreadyDeclared = errors.New("enumeration already declared")

	// ErrNotDeclared indicates no set has been declared for the type.
	ErrNotDeclared = errors.New("enumeration not declared")

	// ErrTypeMismatch indicates the registry held a set of a different
	// concrete type than the one requested.
	ErrTypeMismatch = errors.New("enumeration type mismatch")

	// ErrNoMatch indicates a token matched no declared member.
	ErrNoMatch = errors.New("no matching member")

	// ErrMarshal indicates the wire codec failed to marshal the token.
	ErrMarshal = errors.New("marshal failed")

	// ErrUnmarshal indicates the wire codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")
)

// DeclarationError represents a set declaration failure.
// It wraps a sentinel error with the type name and, for duplicate-key
// rejections, the offending key kind and key value.
type DeclarationError struct {
	Err      error  // Underlying sentinel error (ErrInvalidDeclaration, ErrAlreadyDeclared)
	TypeName string // Concrete enumeration type being declared
	Key      string // Key kind that collided ("value", "object name", ...)
	KeyValue string // Colliding key value
}

func (e *DeclarationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s: duplicate %s %q (type %s)", e.Err.Error(), e.Key, e.KeyValue, e.TypeName)
	}
	return fmt.Sprintf("%s (type %s)", e.Err.Error(), e.TypeName)
}

func (e *DeclarationError) Unwrap() error {
	return e.Err
}

// DecodeError represents a token that could not be resolved to a member.
type DecodeError struct {
	Err      error  // Underlying sentinel error (ErrNoMatch, ErrNotDeclared)
	TypeName string // Concrete enumeration type being decoded
	Token    string // Token that failed to resolve
}

func (e *DecodeError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %q (type %s)", e.Err.Error(), e.Token, e.TypeName)
	}
	return fmt.Sprintf("%s (type %s)", e.Err.Error(), e.TypeName)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// CodecError represents a wire-level marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the serialization library
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newDeclarationError creates a DeclarationError for duplicate-key rejections.
func newDeclarationError(sentinel error, typeName, key, keyValue string) error {
	return &DeclarationError{
		Err:      sentinel,
		TypeName: typeName,
		Key:      key,
		KeyValue: keyValue,
	}
}

// newDecodeError creates a DecodeError for token resolution failures.
func newDecodeError(sentinel error, typeName, token string) error {
	return &DecodeError{
		Err:      sentinel,
		TypeName: typeName,
		Token:    token,
	}
}
