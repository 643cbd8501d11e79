package enum

import (
	"context"
	"reflect"
	"strconv"
)

// Set is the declared, closed member set of one concrete enumeration type.
// It is immutable after construction and safe for concurrent readers.
type Set[T Enumerated] struct {
	typeName string
	unknown  T
	members  []T

	byValue       map[int]T
	byObjectName  map[string]T
	byURIName     map[string]T
	byDisplayName map[string]T
}

// NewSet builds and validates a member set without touching the process
// registry. The unknown sentinel is the instance produced when decoding an
// empty token; it is not itself a member unless also listed in members.
//
// Members must carry pairwise-distinct values, object names, URI names, and
// display names. Any collision is rejected with a DeclarationError wrapping
// ErrInvalidDeclaration. An empty member list is legal.
func NewSet[T Enumerated](unknown T, members ...T) (*Set[T], error) {
	typeName := reflect.TypeFor[T]().Name()

	s := &Set[T]{
		typeName:      typeName,
		unknown:       unknown,
		members:       make([]T, len(members)),
		byValue:       make(map[int]T, len(members)),
		byObjectName:  make(map[string]T, len(members)),
		byURIName:     make(map[string]T, len(members)),
		byDisplayName: make(map[string]T, len(members)),
	}
	copy(s.members, members)

	for _, m := range members {
		if _, dup := s.byValue[m.Value()]; dup {
			return nil, newDeclarationError(ErrInvalidDeclaration, typeName, "value", strconv.Itoa(m.Value()))
		}
		if _, dup := s.byObjectName[m.ObjectName()]; dup {
			return nil, newDeclarationError(ErrInvalidDeclaration, typeName, "object name", m.ObjectName())
		}
		if _, dup := s.byURIName[m.URIName()]; dup {
			return nil, newDeclarationError(ErrInvalidDeclaration, typeName, "URI name", m.URIName())
		}
		if _, dup := s.byDisplayName[m.DisplayName()]; dup {
			return nil, newDeclarationError(ErrInvalidDeclaration, typeName, "display name", m.DisplayName())
		}
		s.byValue[m.Value()] = m
		s.byObjectName[m.ObjectName()] = m
		s.byURIName[m.URIName()] = m
		s.byDisplayName[m.DisplayName()] = m
	}

	return s, nil
}

// TypeName returns the concrete enumeration type name.
func (s *Set[T]) TypeName() string { return s.typeName }

// Unknown returns the declared sentinel instance.
func (s *Set[T]) Unknown() T { return s.unknown }

// Len returns the number of declared members.
func (s *Set[T]) Len() int { return len(s.members) }

// Members returns the declared members in declaration order.
// The returned slice is a fresh copy on every call.
func (s *Set[T]) Members() []T {
	out := make([]T, len(s.members))
	copy(out, s.members)
	return out
}

// FromValue returns the member with the given numeric value.
func (s *Set[T]) FromValue(value int) (T, bool) {
	m, ok := s.byValue[value]
	return m, ok
}

// FromObjectName returns the member with the given object name.
// Matching is exact; no normalization is applied.
func (s *Set[T]) FromObjectName(name string) (T, bool) {
	m, ok := s.byObjectName[name]
	return m, ok
}

// FromURIName returns the member with the given URI name.
func (s *Set[T]) FromURIName(name string) (T, bool) {
	m, ok := s.byURIName[name]
	return m, ok
}

// FromDisplayName returns the member with the given display name.
func (s *Set[T]) FromDisplayName(name string) (T, bool) {
	m, ok := s.byDisplayName[name]
	return m, ok
}

// Decode resolves a string token to a member. An empty token yields the
// unknown sentinel; otherwise the token is matched against object names.
// A token matching no member yields a DecodeError wrapping ErrNoMatch.
func (s *Set[T]) Decode(token string) (T, error) {
	if token == "" {
		return s.unknown, nil
	}
	if m, ok := s.byObjectName[token]; ok {
		return m, nil
	}
	emitDecodeMiss(context.Background(), s.typeName, token)
	var zero T
	return zero, newDecodeError(ErrNoMatch, s.typeName, token)
}
