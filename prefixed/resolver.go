package prefixed

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// vendorPrefixes is the fixed candidate order: unprefixed first, then the
// known vendor prefixes.
var vendorPrefixes = []string{"", "webkit", "moz", "ms", "o"}

// Prefixes returns a copy of the default candidate prefix order. The empty
// string stands for the unprefixed name.
func Prefixes() []string {
	out := make([]string, len(vendorPrefixes))
	copy(out, vendorPrefixes)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Resolver
// ─────────────────────────────────────────────────────────────────────────────

// Resolver searches host objects for capability names using an immutable,
// ordered prefix list. The zero Resolver matches nothing; use [NewResolver]
// or the package-level functions, which resolve against the default list.
type Resolver struct {
	prefixes []string
}

// NewResolver returns a Resolver with the given prefix search order.
// An empty-string prefix stands for the unprefixed name. The list is
// copied; a Resolver's order never changes after construction.
func NewResolver(prefixes ...string) *Resolver {
	cp := make([]string, len(prefixes))
	copy(cp, prefixes)
	return &Resolver{prefixes: cp}
}

var defaultResolver = NewResolver(vendorPrefixes...)

// Candidates returns the member names r would probe for property, in probe
// order.
func (r *Resolver) Candidates(property string) []string {
	out := make([]string, 0, len(r.prefixes))
	for _, p := range r.prefixes {
		if p == "" {
			out = append(out, property)
			continue
		}
		out = append(out, p+capitalize(property))
	}
	return out
}

// Resolve searches host for the first candidate name present and returns
// the resolved member. ok is false when no candidate exists on host —
// "capability not supported" — or when host is not a map, struct, or
// struct pointer.
//
// The search stops at the first present name; later candidates are never
// consulted, even if the match turns out unsuitable for the operation the
// caller had in mind.
func (r *Resolver) Resolve(host any, property string) (Member, bool) {
	if host == nil {
		return Member{}, false
	}
	for _, name := range r.Candidates(property) {
		if m, ok := lookup(host, name); ok {
			return m, true
		}
	}
	return Member{}, false
}

// Apply resolves property on host and applies the dual value/function
// contract:
//
//   - callable member, no val   → returns the bound wrapper (func(...any) any)
//   - callable member, val...   → invokes immediately with val as the
//     argument list; returns the call's result
//   - non-callable, val[0] truthy → assigns val[0]; returns val[0]
//   - non-callable, otherwise     → returns the member's current value
//
// ok is false when no candidate name exists on host. When the member
// refuses the write — a field of a non-pointer host, or a val of the wrong
// type (see [Member.Set]) — Apply falls through to a get and returns the
// member's current value rather than claiming the assignment happened.
//
// Truthiness is the classic dynamic notion: nil, false, numeric zero, the
// empty string, and NaN are falsy. Consequently a falsy val on a
// non-callable member performs a get, indistinguishable from omitting val.
// That sharp edge is part of the contract; callers who need to store falsy
// values use [Member.Set] directly.
func (r *Resolver) Apply(host any, property string, val ...any) (any, bool) {
	m, ok := r.Resolve(host, property)
	if !ok {
		return nil, false
	}
	if m.Callable() {
		if len(val) == 0 {
			return m.Func(), true
		}
		return m.Call(val...), true
	}
	if len(val) > 0 && truthy(val[0]) && m.Set(val[0]) {
		return val[0], true
	}
	return m.Get(), true
}

// Resolve resolves property on host using the default prefix order.
func Resolve(host any, property string) (Member, bool) {
	return defaultResolver.Resolve(host, property)
}

// Apply applies the dual value/function contract using the default prefix
// order; see [Resolver.Apply].
func Apply(host any, property string, val ...any) (any, bool) {
	return defaultResolver.Apply(host, property, val...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Host lookup
// ─────────────────────────────────────────────────────────────────────────────

// lookup finds a member named name on host: a key of a string-keyed map,
// or a method/exported field of a struct (promoted members included).
func lookup(host any, name string) (Member, bool) {
	hv := reflect.ValueOf(host)
	switch hv.Kind() {
	case reflect.Map:
		if hv.Type().Key().Kind() != reflect.String {
			return Member{}, false
		}
		mv := hv.MapIndex(reflect.ValueOf(name).Convert(hv.Type().Key()))
		if !mv.IsValid() {
			return Member{}, false
		}
		return Member{kind: kindMapKey, name: name, host: hv, val: mv}, true
	case reflect.Struct, reflect.Pointer:
		return lookupStruct(hv, name)
	}
	return Member{}, false
}

func lookupStruct(hv reflect.Value, name string) (Member, bool) {
	if hv.Kind() == reflect.Pointer && hv.IsNil() {
		return Member{}, false
	}
	sv := hv
	if sv.Kind() == reflect.Pointer {
		sv = sv.Elem()
	}
	if sv.Kind() != reflect.Struct {
		return Member{}, false
	}
	for _, n := range nameForms(name) {
		if m := hv.MethodByName(n); m.IsValid() {
			return Member{kind: kindMethod, name: n, host: hv, val: m}, true
		}
		if sf, ok := sv.Type().FieldByName(n); ok && sf.IsExported() {
			return Member{kind: kindField, name: n, host: hv, val: sv.FieldByIndex(sf.Index)}, true
		}
	}
	return Member{}, false
}

// nameForms lists the spellings a candidate can take on a struct host: the
// exact name, then its exported form when they differ.
func nameForms(name string) []string {
	ex := capitalize(name)
	if ex == name {
		return []string{name}
	}
	return []string{name, ex}
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
