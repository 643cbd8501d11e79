package enum

// Encode returns the string token for v: its object name.
func Encode[T Enumerated](v T) string {
	return v.ObjectName()
}

// MarshalText returns the object name of v as text. Concrete types forward
// their encoding.TextMarshaler implementation here so struct fields of the
// type serialize as bare string tokens under encoding/json, yaml.v3, and
// any other framework honoring the interface.
func MarshalText[T Enumerated](v T) ([]byte, error) {
	return []byte(v.ObjectName()), nil
}

// UnmarshalText resolves text as a string token and stores the matching
// member in v. Empty text yields the declared unknown sentinel. The
// counterpart of MarshalText for encoding.TextUnmarshaler forwarding.
func UnmarshalText[T Enumerated](v *T, text []byte) error {
	m, err := Decode[T](string(text))
	if err != nil {
		return err
	}
	*v = m
	return nil
}
