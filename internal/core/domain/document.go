package domain

// Descriptor identifies a persisted document type without runtime reflection.
// Name is the stable file name (without suffix). Default builds the value
// returned when no document exists yet; a nil Default yields the zero value.
type Descriptor[T any] struct {
	Name    string
	Default func() T
}

// New returns a default-initialized value for the descriptor.
func (d Descriptor[T]) New() T {
	if d.Default == nil {
		var zero T
		return zero
	}
	return d.Default()
}
