package encoding

import (
	"slices"
	"strings"
	"unicode/utf16"

	"github.com/pthm/hxbundle"
)

// BundleModulesID returns the canonical id of the set of component classes
// in a bundle: the class names sorted ascending and joined with dots.
// Member order does not matter. Duplicate class names are kept, so a class
// listed twice appears twice.
//
// Names are ordered by UTF-16 code units, the order the loader's own
// tooling sorts strings in. It differs from byte order only when names mix
// characters above U+FFFF with characters in U+E000..U+FFFF.
func BundleModulesID(b hxbundle.Bundle) string {
	names := make([]string, len(b.Components))
	for i, bc := range b.Components {
		names[i] = bc.Component.ComponentClass
	}
	slices.SortStableFunc(names, compareUTF16)
	return strings.Join(names, ".")
}

// BundleContent wraps bundled module code and mode loader records in the
// loader invocation. All three values are inserted verbatim.
func BundleContent(bundleID, bundledModules, modeLoader string) string {
	return strings.Join([]string{
		"Ionic.loadComponents(\n",
		"/**** bundleId ****/",
		bundleID + ",\n",
		"/**** bundled modules ****/",
		bundledModules + ",\n",
		modeLoader,
		")",
	}, "\n")
}

// compareUTF16 compares two strings by their UTF-16 code units.
func compareUTF16(a, b string) int {
	return slices.Compare(utf16.Encode([]rune(a)), utf16.Encode([]rune(b)))
}
