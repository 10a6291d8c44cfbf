package model

// FieldState describes the outcome of reading an optional track field.
type FieldState int

const (
	// FieldAbsent means the key is not in the track record.
	FieldAbsent FieldState = iota

	// FieldPresent means the key exists and has the expected type.
	FieldPresent

	// FieldMalformed means the key exists but its value has the wrong type.
	FieldMalformed
)

// String returns the state name, for log messages.
func (s FieldState) String() string {
	switch s {
	case FieldPresent:
		return "present"
	case FieldMalformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Field is an optional value together with how it was read.
type Field[T any] struct {
	Value T
	State FieldState
}

// Present wraps a value read successfully.
func Present[T any](v T) Field[T] {
	return Field[T]{Value: v, State: FieldPresent}
}

// Malformed marks a field whose value could not be used.
func Malformed[T any]() Field[T] {
	return Field[T]{State: FieldMalformed}
}

// Get returns the value and whether it is present.
func (f Field[T]) Get() (T, bool) {
	return f.Value, f.State == FieldPresent
}
