package strict

// missingValue is unexported so no other package can construct a value that
// compares equal to the sentinel.
type missingValue struct{}

func (missingValue) String() string { return "<missing>" }

// MarshalJSON renders the sentinel as null so a tree containing Missing
// leaves can still be serialized for display.
func (missingValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Missing marks a field whose value is required but has not been supplied
// yet. It is a process-wide singleton: compare with `v == Missing` or
// IsMissing. It never collides with a legitimate value, including nil.
var Missing any = missingValue{}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missingValue)
	return ok
}
