package enum_test

import (
	"errors"
	"testing"

	"github.com/enumkit/enum"
	"github.com/enumkit/enum/enumtest"
)

func newColorSet(t *testing.T) *enum.Set[enumtest.Color] {
	t.Helper()
	set, err := enum.NewSet(enumtest.ColorUnknown, enumtest.Red, enumtest.Green, enumtest.Blue)
	if err != nil {
		t.Fatalf("NewSet() error: %v", err)
	}
	return set
}

func TestNewSet_Lookups(t *testing.T) {
	set := newColorSet(t)

	for _, m := range set.Members() {
		if got, ok := set.FromValue(m.Value()); !ok || got != m {
			t.Errorf("FromValue(%d) = %v, %v; want %v, true", m.Value(), got, ok, m)
		}
		if got, ok := set.FromObjectName(m.ObjectName()); !ok || got != m {
			t.Errorf("FromObjectName(%q) = %v, %v; want %v, true", m.ObjectName(), got, ok, m)
		}
		if got, ok := set.FromURIName(m.URIName()); !ok || got != m {
			t.Errorf("FromURIName(%q) = %v, %v; want %v, true", m.URIName(), got, ok, m)
		}
		if got, ok := set.FromDisplayName(m.DisplayName()); !ok || got != m {
			t.Errorf("FromDisplayName(%q) = %v, %v; want %v, true", m.DisplayName(), got, ok, m)
		}
	}
}

func TestNewSet_Misses(t *testing.T) {
	set := newColorSet(t)

	if _, ok := set.FromValue(99); ok {
		t.Error("FromValue(99) should miss")
	}
	if _, ok := set.FromObjectName("crimson"); ok {
		t.Error("FromObjectName(crimson) should miss")
	}
	if _, ok := set.FromURIName("crimson"); ok {
		t.Error("FromURIName(crimson) should miss")
	}
	if _, ok := set.FromDisplayName("Crimson"); ok {
		t.Error("FromDisplayName(Crimson) should miss")
	}
}

func TestNewSet_ExactMatchOnly(t *testing.T) {
	set := newColorSet(t)

	// No case folding, trimming, or partial matching.
	if _, ok := set.FromObjectName("Red"); ok {
		t.Error("FromObjectName should be case-sensitive")
	}
	if _, ok := set.FromDisplayName("red"); ok {
		t.Error("FromDisplayName should be case-sensitive")
	}
	if _, ok := set.FromObjectName("red "); ok {
		t.Error("FromObjectName should not trim input")
	}
}

func TestNewSet_DuplicateRejected(t *testing.T) {
	tests := []struct {
		name    string
		second  enumtest.Color
		wantKey string
	}{
		{
			name:    "duplicate value",
			second:  enumtest.Color{Member: enum.New(1, "crimson", "crimson", "Crimson")},
			wantKey: "value",
		},
		{
			name:    "duplicate object name",
			second:  enumtest.Color{Member: enum.New(9, "red", "crimson", "Crimson")},
			wantKey: "object name",
		},
		{
			name:    "duplicate URI name",
			second:  enumtest.Color{Member: enum.New(9, "crimson", "red", "Crimson")},
			wantKey: "URI name",
		},
		{
			name:    "duplicate display name",
			second:  enumtest.Color{Member: enum.New(9, "crimson", "crimson", "Red")},
			wantKey: "display name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := enum.NewSet(enumtest.ColorUnknown, enumtest.Red, tt.second)
			if err == nil {
				t.Fatal("NewSet() should reject the declaration")
			}
			if !errors.Is(err, enum.ErrInvalidDeclaration) {
				t.Errorf("error should be ErrInvalidDeclaration, got %v", err)
			}
			var declErr *enum.DeclarationError
			if !errors.As(err, &declErr) {
				t.Fatalf("error should be *DeclarationError, got %T", err)
			}
			if declErr.Key != tt.wantKey {
				t.Errorf("DeclarationError.Key = %q, want %q", declErr.Key, tt.wantKey)
			}
			if declErr.TypeName != "Color" {
				t.Errorf("DeclarationError.TypeName = %q, want %q", declErr.TypeName, "Color")
			}
		})
	}
}

func TestNewSet_Empty(t *testing.T) {
	set, err := enum.NewSet(enumtest.ColorUnknown)
	if err != nil {
		t.Fatalf("NewSet() with no members should succeed, got %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
	if got := set.Members(); len(got) != 0 {
		t.Errorf("Members() = %v, want empty", got)
	}
	if _, ok := set.FromValue(1); ok {
		t.Error("empty set lookups should miss")
	}
}

func TestSet_MembersCopy(t *testing.T) {
	set := newColorSet(t)

	got := set.Members()
	got[0] = enumtest.Blue

	if again := set.Members(); again[0] != enumtest.Red {
		t.Error("Members() should return a fresh copy each call")
	}
}

func TestSet_DeclarationOrder(t *testing.T) {
	set := newColorSet(t)

	want := []enumtest.Color{enumtest.Red, enumtest.Green, enumtest.Blue}
	got := set.Members()
	if len(got) != len(want) {
		t.Fatalf("Members() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Members()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSet_UnknownIsNotAMember(t *testing.T) {
	set := newColorSet(t)

	if set.Unknown() != enumtest.ColorUnknown {
		t.Errorf("Unknown() = %v, want %v", set.Unknown(), enumtest.ColorUnknown)
	}
	// The sentinel carries value 0 but is outside the declared set.
	if _, ok := set.FromValue(0); ok {
		t.Error("FromValue(0) should miss; the sentinel is not a member")
	}
}

func TestSet_Decode(t *testing.T) {
	set := newColorSet(t)

	got, err := set.Decode("red")
	if err != nil {
		t.Fatalf("Decode(red) error: %v", err)
	}
	if got != enumtest.Red {
		t.Errorf("Decode(red) = %v, want %v", got, enumtest.Red)
	}
}

func TestSet_Decode_EmptyToken(t *testing.T) {
	set := newColorSet(t)

	got, err := set.Decode("")
	if err != nil {
		t.Fatalf("Decode(\"\") error: %v", err)
	}
	if got != enumtest.ColorUnknown {
		t.Errorf("Decode(\"\") = %v, want the unknown sentinel", got)
	}
	if got.DisplayName() != enum.UnknownDisplayName {
		t.Errorf("sentinel DisplayName() = %q, want %q", got.DisplayName(), enum.UnknownDisplayName)
	}
}

func TestSet_Decode_Miss(t *testing.T) {
	set := newColorSet(t)

	_, err := set.Decode("crimson")
	if err == nil {
		t.Fatal("Decode(crimson) should fail")
	}
	if !errors.Is(err, enum.ErrNoMatch) {
		t.Errorf("error should be ErrNoMatch, got %v", err)
	}
	var decErr *enum.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("error should be *DecodeError, got %T", err)
	}
	if decErr.Token != "crimson" {
		t.Errorf("DecodeError.Token = %q, want %q", decErr.Token, "crimson")
	}
}

func TestSet_RoundTrip(t *testing.T) {
	set := newColorSet(t)

	for _, m := range set.Members() {
		got, err := set.Decode(enum.Encode(m))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)) error: %v", m, err)
		}
		if got != m {
			t.Errorf("Decode(Encode(%v)) = %v", m, got)
		}
	}
}
