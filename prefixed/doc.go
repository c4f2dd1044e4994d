// Package prefixed resolves a property or method on a host object whose
// name may be vendor-prefixed in some environments, transparently as either
// a value accessor or a callable.
//
// Candidate names are tried in a fixed order: the bare property first, then
// each vendor prefix joined with the capitalized property
// ("requestFullscreen" → "webkitRequestFullscreen", "mozRequestFullscreen",
// "msRequestFullscreen", "oRequestFullscreen"). The first candidate present
// on the host wins; nothing present means "capability not supported",
// reported as ok == false, never as an error.
//
// Hosts may be string-keyed maps, structs, or struct pointers. For struct
// hosts, methods and fields count — including those promoted from embedded
// structs, which are the inherited members of a Go value. Because Go only
// exports capitalized identifiers, a candidate also matches its exported
// spelling (candidate "webkitRequestFullscreen" matches a field named
// WebkitRequestFullscreen); the exact spelling is consulted first.
//
//	m, ok := prefixed.Resolve(host, "requestFullscreen")
//	if !ok {
//	    // not supported in this environment
//	}
//	if m.Callable() {
//	    m.Call()
//	}
//
// [Apply] bundles the resolve-then-use dance into the classic dual
// value/function contract; see its documentation for the get/set/call
// rules, including the preserved truthiness edge.
//
// Resolution is recomputed on every call; nothing is cached.
package prefixed
