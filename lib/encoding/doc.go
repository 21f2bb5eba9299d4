// Package encoding turns component descriptors into the positional text
// format read by the runtime component loader.
//
// Every function here is pure: it reads its arguments, returns a string and
// touches no shared state, so identical input always yields identical text
// and identical bundle ids.
//
// A mode loader record is a seven slot array, consumed by index:
//
//	[0] tag name
//	[1] component class name
//	[2] listeners, each [methodName, eventName, capture, passive, enabled]
//	[3] watchers, each [methodName, fn]
//	[4] shadow, 0 or 1
//	[5] mode code, a number or a quoted name
//	[6] styles, 0 or a concatenated string expression
//
// The comments embedded in the output are for people reading generated
// bundles; the loader ignores them.
package encoding
