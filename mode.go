package hxbundle

// Code is a small enumeration value emitted to the loader as a bare number.
type Code uint8

// ModeCode identifies one of the modes the runtime loader knows by number.
type ModeCode Code

// Known modes. Any other mode name has no code and travels as a string.
const (
	ModeDefault ModeCode = 0
	ModeIOS     ModeCode = 1
	ModeMD      ModeCode = 2
	ModeWP      ModeCode = 3
)

var modeCodes = map[string]ModeCode{
	"default": ModeDefault,
	"ios":     ModeIOS,
	"md":      ModeMD,
	"wp":      ModeWP,
}

// LookupMode resolves a normalized mode name to its code. ok is false for
// names the loader has no number for, including the empty name; the caller
// decides whether that is an error or a string fallback.
func LookupMode(name string) (code ModeCode, ok bool) {
	code, ok = modeCodes[name]
	return code, ok
}

// PropType is the primitive kind of a component prop.
type PropType string

const (
	PropBoolean PropType = "boolean"
	PropNumber  PropType = "number"
	PropString  PropType = "string"
	PropAny     PropType = "any"
)

// Code returns the registry code for the prop kind. Only boolean and number
// kinds carry one; ok is false for every other kind, known or not.
func (t PropType) Code() (code Code, ok bool) {
	switch t {
	case PropBoolean:
		return 0, true
	case PropNumber:
		return 1, true
	}
	return 0, false
}

// Known reports whether t is one of the declared prop kinds.
func (t PropType) Known() bool {
	switch t {
	case PropBoolean, PropNumber, PropString, PropAny:
		return true
	}
	return false
}

// Priority controls how eagerly a bundle is fetched.
type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityHigh Priority = "high"
)

// IsLow reports whether p is the low priority. Every other value, including
// the empty one, is treated as high.
func (p Priority) IsLow() bool {
	return p == PriorityLow
}
