package cmds

// Var defines a command setting a value of type T, plus a "name."
// variant resetting it to zero. The returned pointer reads the
// current value.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines a boolean command taking no argument: the name turns
// it on, "!name" turns it back off.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines a repeatable command, appending each occurrence.
func Collect[T any](name string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}))
	return &values
}
