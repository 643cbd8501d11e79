package enum

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for enumeration registry events.
var (
	SignalSetDeclared   = capitan.NewSignal("enum.set.declared", "Enumeration set registered")
	SignalRegistryReset = capitan.NewSignal("enum.registry.reset", "Enumeration registry cleared")
	SignalDecodeMiss    = capitan.NewSignal("enum.decode.miss", "Token matched no member")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyMemberCount = capitan.NewIntKey("member_count")
	KeyToken       = capitan.NewStringKey("token")
)

// emitSetDeclared emits an event when a member set is registered.
func emitSetDeclared(ctx context.Context, typeName string, count int) {
	capitan.Emit(ctx, SignalSetDeclared,
		KeyTypeName.Field(typeName),
		KeyMemberCount.Field(count),
	)
}

// emitRegistryReset emits an event when the registry is cleared.
func emitRegistryReset(ctx context.Context) {
	capitan.Emit(ctx, SignalRegistryReset)
}

// emitDecodeMiss emits an event when a token resolves to no member.
// A miss is reported to the caller as a DecodeError; the signal exists for
// observability, not error handling.
func emitDecodeMiss(ctx context.Context, typeName, token string) {
	capitan.Emit(ctx, SignalDecodeMiss,
		KeyTypeName.Field(typeName),
		KeyToken.Field(token),
	)
}
