package vars

import "strings"

// StrToBool parses common spellings of true. Anything unrecognized is
// false.
func StrToBool(str string) bool {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y":
		return true
	}
	return false
}
