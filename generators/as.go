package generators

// As walks the decorator stack looking for a state of type T.
func As[T State](state State) (T, bool) {
	for state != nil {
		if t, ok := state.(T); ok {
			return t, true
		}
		state = state.Unwrap()
	}
	var zero T
	return zero, false
}
