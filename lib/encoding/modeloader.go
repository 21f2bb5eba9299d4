package encoding

import (
	"fmt"
	"strings"

	"github.com/pthm/hxbundle"
)

// ModeLoader encodes one component in one mode as the loader's seven slot
// record. Tag and mode name are trimmed and lower-cased first. The label
// (tag, or tag.mode) only appears in comments.
//
// Slot order is shared with the runtime loader and must not change on its
// own.
func ModeLoader(c hxbundle.Component, mode hxbundle.ComponentMode) string {
	tag := Normalize(c.Tag)
	modeName := Normalize(mode.Name)

	label := tag
	if modeName != "" {
		label += "." + modeName
	}

	slots := []struct {
		name  string
		value string
	}{
		{"tagName", quote(tag)},
		{"component class name", quote(c.ComponentClass)},
		{"listeners", Listeners(label, c.Listeners)},
		{"watchers", Watchers(label, c.Watchers)},
		{"shadow", Bool(c.Shadow)},
		{"modeName", fmt.Sprintf("/* %s */ %s", modeName, ModeName(modeName))},
		{"styles", Styles(mode.Styles)},
	}

	t := make([]string, len(slots))
	for i, s := range slots {
		t[i] = fmt.Sprintf("/** %s: [%d] %s **/\n%s", label, i, s.name, s.value)
	}

	return fmt.Sprintf("\n/***************** %s *****************/\n[\n", label) +
		strings.Join(t, ",\n\n") + "\n\n]"
}

// ModeLoaders encodes every member of a bundle in order and joins the
// records into one argument list. Members without a selected mode use the
// unnamed mode.
func ModeLoaders(b hxbundle.Bundle) string {
	t := make([]string, len(b.Components))
	for i, bc := range b.Components {
		t[i] = ModeLoader(bc.Component, bc.ModeOrDefault())
	}
	return strings.Join(t, ",\n")
}

// Normalize trims and lower-cases a tag or mode name.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
