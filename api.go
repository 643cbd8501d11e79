// Package enum provides strongly-typed, extensible enumeration values with
// comparison, reverse lookup, and string-token serialization.
//
// An enumeration member carries a numeric value and three string keys: an
// object name (serialized-property identity), a URI name (path-segment
// identity), and a display name (human-readable label). Concrete enumeration
// types embed Member and declare a closed set of members up front:
//
//	type Color struct{ enum.Member }
//
//	var (
//	    ColorUnknown = Color{enum.Unknown()}
//	    Red          = Color{enum.New(1, "red", "red", "Red")}
//	    Blue         = Color{enum.New(2, "blue", "blue", "Blue")}
//	)
//
//	var Colors = enum.MustDeclare(ColorUnknown, Red, Blue)
//
// Declaration validates the set (duplicate values or keys are rejected) and
// registers it process-wide. After that, lookups work either through the
// returned set or through the package-level generic helpers:
//
//	blue, ok := enum.FromObjectName[Color]("blue")
//	all := enum.All[Color]()
//
// # Serialization
//
// On the wire an enumeration value is a bare string equal to its object
// name, never an object or number. The codec subpackages (json, yaml,
// msgpack, bson) each provide a generic adapter over that token form. An
// absent value is carried as a nil pointer and serializes to the format's
// null token; decoding a null token yields nil; decoding an empty string
// token yields the declared unknown sentinel.
//
// Types that should serialize transparently inside larger structures can
// forward encoding.TextMarshaler and encoding.TextUnmarshaler to
// MarshalText and UnmarshalText:
//
//	func (c Color) MarshalText() ([]byte, error)  { return enum.MarshalText(c) }
//	func (c *Color) UnmarshalText(b []byte) error { return enum.UnmarshalText(c, b) }
//
// # Concurrency
//
// Declared sets are immutable. The process registry is write-once per type
// and safe for concurrent readers; declaration should happen during package
// initialization, before lookups begin.
package enum

// Enumerated is the capability implemented by enumeration members.
// Embedding Member satisfies it.
type Enumerated interface {
	// Value returns the numeric code, unique within the declared set.
	Value() int

	// ObjectName returns the key used for serialized-property identity.
	ObjectName() string

	// URIName returns the key used in URI path segments.
	URIName() string

	// DisplayName returns the human-readable label.
	DisplayName() string
}

// Codec translates between enumeration values and their wire form.
// A nil pointer carries absence on both sides: marshaling nil emits the
// format's null token, and unmarshaling a null token returns nil.
type Codec[T Enumerated] interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v as a bare string token equal to its object name.
	Marshal(v *T) ([]byte, error)

	// Unmarshal decodes a string token back into the matching member.
	// An empty token yields the declared unknown sentinel; a token matching
	// no member yields a DecodeError.
	Unmarshal(data []byte) (*T, error)
}
