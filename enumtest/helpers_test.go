package enumtest

import (
	"testing"

	"github.com/enumkit/enum"
)

func TestFixtureMembers(t *testing.T) {
	if Red.Value() != 1 || Red.ObjectName() != "red" || Red.DisplayName() != "Red" {
		t.Errorf("Red = %v/%q/%q, unexpected fixture shape", Red.Value(), Red.ObjectName(), Red.DisplayName())
	}
	if ColorUnknown.DisplayName() != enum.UnknownDisplayName {
		t.Errorf("ColorUnknown.DisplayName() = %q, want %q", ColorUnknown.DisplayName(), enum.UnknownDisplayName)
	}
}

func TestDeclare(t *testing.T) {
	Declare(t)

	colors, err := enum.SetFor[Color]()
	if err != nil {
		t.Fatalf("SetFor[Color]() error: %v", err)
	}
	if colors.Len() != 3 {
		t.Errorf("Color set Len() = %d, want 3", colors.Len())
	}

	statuses, err := enum.SetFor[Status]()
	if err != nil {
		t.Fatalf("SetFor[Status]() error: %v", err)
	}
	if statuses.Len() != 2 {
		t.Errorf("Status set Len() = %d, want 2", statuses.Len())
	}
}

func TestDeclare_Repeatable(t *testing.T) {
	// Declare resets the registry first, so repeated calls are safe.
	Declare(t)
	Declare(t)
}
