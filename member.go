package enum

import (
	"encoding/binary"
	"hash/fnv"
	"reflect"
)

// UnknownDisplayName is the display name carried by the Unknown sentinel.
const UnknownDisplayName = "Unknown"

// Member is the base value type embedded by concrete enumeration types.
// It is immutable after construction and comparable.
type Member struct {
	value       int
	objectName  string
	uriName     string
	displayName string
}

// New returns a member binding all four fields.
func New(value int, objectName, uriName, displayName string) Member {
	return Member{
		value:       value,
		objectName:  objectName,
		uriName:     uriName,
		displayName: displayName,
	}
}

// Unknown returns the sentinel member: value zero, empty object and URI
// names, display name "Unknown". It is the default produced when decoding
// an empty string token. The sentinel is not part of any declared set
// unless explicitly listed as a member.
func Unknown() Member {
	return Member{displayName: UnknownDisplayName}
}

// Value returns the numeric code.
func (m Member) Value() int { return m.value }

// ObjectName returns the serialized-property key.
func (m Member) ObjectName() string { return m.objectName }

// URIName returns the URI path-segment key.
func (m Member) URIName() string { return m.uriName }

// DisplayName returns the human-readable label.
func (m Member) DisplayName() string { return m.displayName }

// String returns the display name.
func (m Member) String() string { return m.displayName }

// Compare orders two members of the same type purely by numeric value.
// It returns a negative number when a < b, zero when the values match,
// and a positive number when a > b.
func Compare[T Enumerated](a, b T) int {
	switch av, bv := a.Value(), b.Value(); {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b are the same member: identical dynamic
// type and equal numeric value. It is false when either operand is nil.
// Cross-type comparison is always false even when values coincide.
func Equal(a, b Enumerated) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.Value() == b.Value()
}

// Hash returns a stable hash derived from the numeric value alone, so
// equal members hash equally. Members of different types sharing a value
// collide; that is acceptable for hash-based containers.
func Hash(v Enumerated) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(v.Value())))
	h := fnv.New64a()
	h.Write(buf[:])
	return h.Sum64()
}

// AbsoluteDifference returns |a.Value() - b.Value()|.
func AbsoluteDifference(a, b Enumerated) int {
	d := a.Value() - b.Value()
	if d < 0 {
		return -d
	}
	return d
}
