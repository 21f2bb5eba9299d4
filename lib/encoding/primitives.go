package encoding

import (
	"fmt"
	"strconv"

	"github.com/pthm/hxbundle"
)

// Bool encodes a flag as 1 or 0 with a readable comment.
func Bool(v bool) string {
	if v {
		return "1 /* true **/"
	}
	return "0 /* false */"
}

// ModeName encodes a normalized mode name. Names the loader knows become
// their number; any other name, the empty one included, is emitted as a
// quoted string.
func ModeName(name string) string {
	if code, ok := hxbundle.LookupMode(name); ok {
		return strconv.Itoa(int(code))
	}
	return quote(name)
}

// ModeNameStrict is ModeName without the string fallback: a non-empty name
// the loader has no number for is an error. The empty name is the unnamed
// mode and still encodes as ''.
func ModeNameStrict(name string) (string, error) {
	if _, ok := hxbundle.LookupMode(name); !ok && name != "" {
		return "", fmt.Errorf("%w: %q", hxbundle.ErrUnknownMode, name)
	}
	return ModeName(name), nil
}

// Priority encodes a bundle priority. Only low is 0; everything else is 1.
func Priority(p hxbundle.Priority) string {
	if p.IsLow() {
		return "0"
	}
	return "1"
}

// quote wraps s in single quotes as the loader's string literal.
func quote(s string) string {
	return "'" + s + "'"
}
