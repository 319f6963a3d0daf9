package configs

import "errors"

// First decodes the first definition of path, or returns the zero T
// when no config file defines it. Malformed config panics.
func First[T any](loader Loader, path string) T {
	var value T
	err := loader.AssignFirst(path, &value)
	if err == nil || errors.Is(err, ErrValueNotFound) {
		return value
	}
	panic(err)
}
