// Package hxbundle describes UI components for the runtime component loader
// and the bundles they ship in.
//
// The compiler front end produces a Component for every custom element it
// finds: its tag, implementation class, props, event listeners and prop
// watchers. Each component has one or more modes (platform themes such as
// ios or md) carrying their own styles. Components are grouped into Bundles
// that the runtime loads together, and a Registry catalogs all of them.
//
// The values in this package are plain data. Encoding them into the
// loader's positional text format lives in lib/encoding; reading descriptor
// files and writing bundle artifacts lives in lib/generator.
//
// # Ordering
//
// The loader indexes listeners and watchers by position, not by name, so
// declaration order is part of the contract. Listeners, Watchers and Props
// are Ordered maps: they iterate in insertion order and keep document order
// when decoded from JSON or msgpack.
//
//	var l hxbundle.Listeners
//	l.Set("onClick", hxbundle.ListenOpts{EventName: "click", Enabled: true})
//	l.Set("onKeyUp", hxbundle.ListenOpts{EventName: "keyup", Enabled: true})
//
// # Modes
//
// The loader knows four modes by number (default, ios, md, wp). LookupMode
// is the only way to resolve a name to a code; for any other name it
// reports ok == false and the caller chooses between a string fallback and
// an error.
//
// # Markup
//
// BundleScript and BundlePrefetch are templ components that reference a
// generated bundle file from a page, chosen by bundle Priority.
package hxbundle
