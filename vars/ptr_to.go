package vars

// PtrTo returns a pointer to value.
func PtrTo[T any](value T) *T {
	return &value
}
