package protocols

import "strings"

const idPrefix = "screen-"

// Slug folds a display name into an identifier: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading
// and trailing hyphens trimmed.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingHyphen := false
	wrote := false
	for _, r := range strings.ToLower(name) {
		isAlnum := r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		if !isAlnum {
			pendingHyphen = true
			continue
		}
		if pendingHyphen && wrote {
			b.WriteByte('-')
		}
		pendingHyphen = false
		wrote = true
		b.WriteRune(r)
	}
	return b.String()
}

// DeriveID maps a display name to a stable identifier usable as an
// HTML id and an anchor target, namespaced with the screen- prefix.
func DeriveID(name string) string {
	return idPrefix + Slug(name)
}
