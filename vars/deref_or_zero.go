package vars

// DerefOrZero returns *ptr, or the zero T when ptr is nil.
func DerefOrZero[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
