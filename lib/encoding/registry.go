package encoding

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pthm/hxbundle"
)

// numericStrings unquotes the registry's small enumeration values.
var numericStrings = strings.NewReplacer(
	`"0"`, `0`,
	`"1"`, `1`,
	`"2"`, `2`,
	`"3"`, `3`,
)

// Registry serializes a registry as JSON and then unquotes every "0", "1",
// "2" and "3" so mode and priority codes reach the loader as numbers.
//
// The unquoting is a text substitution over the whole document. Any string
// value (or key) that is exactly one of those digits is turned into a
// number as well, whatever field it belongs to. Callers that can type their
// numeric fields should use RegistryTyped instead.
func Registry(registry any) (string, error) {
	data, err := marshalJSON(registry)
	if err != nil {
		return "", err
	}
	return numericStrings.Replace(data), nil
}

// RegistryTyped serializes a registry as JSON without any substitution.
// Numeric fields must already be numbers in the data, for example
// hxbundle.Code or hxbundle.ModeCode values.
func RegistryTyped(registry any) (string, error) {
	return marshalJSON(registry)
}

// RegistryProps formats a component's props for the registry: one entry per
// prop in declaration order, [name] followed by the prop's code when its
// kind has one.
//
// The registry itself is assembled by the compiler front end, which calls
// this for each component's props entry before handing the Registry to
// Registry or RegistryTyped.
func RegistryProps(props hxbundle.Props) [][]any {
	p := make([][]any, 0, props.Len())
	for name, prop := range props.All() {
		entry := []any{name}
		if code, ok := prop.Type.Code(); ok {
			entry = append(entry, code)
		}
		p = append(p, entry)
	}
	return p
}

func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
