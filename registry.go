package enum

import (
	"context"
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Declare validates and registers the member set for type T.
// The set is registered process-wide, keyed by the concrete type; a second
// declaration for the same type fails with ErrAlreadyDeclared. Declaration
// normally happens once, during package initialization.
func Declare[T Enumerated](unknown T, members ...T) (*Set[T], error) {
	set, err := NewSet(unknown, members...)
	if err != nil {
		return nil, err
	}

	typ := reflect.TypeFor[T]()

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[typ]; ok {
		return nil, &DeclarationError{Err: ErrAlreadyDeclared, TypeName: set.typeName}
	}
	registry[typ] = set

	emitSetDeclared(context.Background(), set.typeName, set.Len())
	return set, nil
}

// MustDeclare is Declare panicking on error, for package-var initialization:
//
//	var Colors = enum.MustDeclare(ColorUnknown, Red, Blue)
func MustDeclare[T Enumerated](unknown T, members ...T) *Set[T] {
	set, err := Declare(unknown, members...)
	if err != nil {
		panic(err)
	}
	return set
}

// SetFor returns the declared set for type T.
// It fails with ErrNotDeclared when no set was declared, and with
// ErrTypeMismatch when the registry entry is not a *Set[T] (unreachable
// through Declare, which keys entries by T itself; the check keeps the
// any-typed registry boundary honest).
func SetFor[T Enumerated]() (*Set[T], error) {
	typ := reflect.TypeFor[T]()

	registryMu.RLock()
	cached, ok := registry[typ]
	registryMu.RUnlock()

	if !ok {
		return nil, &DeclarationError{Err: ErrNotDeclared, TypeName: typ.Name()}
	}
	set, ok := cached.(*Set[T])
	if !ok {
		return nil, &DeclarationError{Err: ErrTypeMismatch, TypeName: typ.Name()}
	}
	return set, nil
}

// All returns the declared members of T in declaration order, as a fresh
// copy. It returns nil when no set has been declared for T.
func All[T Enumerated]() []T {
	set, err := SetFor[T]()
	if err != nil {
		return nil
	}
	return set.Members()
}

// FromValue returns the member of T with the given numeric value.
// Lookups never fail: a miss, or an undeclared T, yields (zero, false).
func FromValue[T Enumerated](value int) (T, bool) {
	set, err := SetFor[T]()
	if err != nil {
		var zero T
		return zero, false
	}
	return set.FromValue(value)
}

// FromObjectName returns the member of T with the given object name.
func FromObjectName[T Enumerated](name string) (T, bool) {
	set, err := SetFor[T]()
	if err != nil {
		var zero T
		return zero, false
	}
	return set.FromObjectName(name)
}

// FromURIName returns the member of T with the given URI name.
func FromURIName[T Enumerated](name string) (T, bool) {
	set, err := SetFor[T]()
	if err != nil {
		var zero T
		return zero, false
	}
	return set.FromURIName(name)
}

// FromDisplayName returns the member of T with the given display name.
func FromDisplayName[T Enumerated](name string) (T, bool) {
	set, err := SetFor[T]()
	if err != nil {
		var zero T
		return zero, false
	}
	return set.FromDisplayName(name)
}

// Decode resolves a string token to a member of T through the declared set.
// See Set.Decode for token semantics.
func Decode[T Enumerated](token string) (T, error) {
	set, err := SetFor[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return set.Decode(token)
}

// Reset clears the process registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
	emitRegistryReset(context.Background())
}
