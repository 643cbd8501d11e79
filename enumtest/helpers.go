// Package enumtest provides shared enumeration fixtures for tests.
package enumtest

import (
	"testing"

	"github.com/enumkit/enum"
)

// Color is the reference fixture type: three members plus an unknown sentinel.
type Color struct{ enum.Member }

var (
	ColorUnknown = Color{enum.Unknown()}
	Red          = Color{enum.New(1, "red", "red", "Red")}
	Green        = Color{enum.New(2, "green", "green", "Green")}
	Blue         = Color{enum.New(3, "blue", "blue", "Blue")}
)

// MarshalText forwards to enum.MarshalText so Color struct fields serialize
// as bare string tokens.
func (c Color) MarshalText() ([]byte, error) { return enum.MarshalText(c) }

// UnmarshalText forwards to enum.UnmarshalText.
func (c *Color) UnmarshalText(b []byte) error { return enum.UnmarshalText(c, b) }

// Status is a second fixture type. Active shares its numeric value with Red
// to exercise cross-type identity and hash collisions.
type Status struct{ enum.Member }

var (
	StatusUnknown = Status{enum.Unknown()}
	Active        = Status{enum.New(1, "active", "active", "Active")}
	Archived      = Status{enum.New(2, "archived", "archived", "Archived")}
)

// Declare resets the process registry and declares both fixture sets.
// Call it at the top of any test that touches the registry.
func Declare(t *testing.T) {
	t.Helper()
	enum.Reset()
	if _, err := enum.Declare(ColorUnknown, Red, Green, Blue); err != nil {
		t.Fatalf("declare Color set: %v", err)
	}
	if _, err := enum.Declare(StatusUnknown, Active, Archived); err != nil {
		t.Fatalf("declare Status set: %v", err)
	}
}
