package coll

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Capability interfaces
// ─────────────────────────────────────────────────────────────────────────────

// Visitor is invoked once per element with (value, indexOrKey, collection).
// The third argument is always the collection value passed to [Each], so a
// single visitor can be shared across collections.
type Visitor func(value, key, collection any)

// Iterable is the native "for each element" capability. A value implementing
// it controls its own traversal; [Each] delegates to ForEach directly.
type Iterable interface {
	ForEach(fn func(value, key any))
}

// IndexedSequence is an array-like: integer-indexed elements and a length.
// [Each] visits indices 0..Len()-1 in ascending order.
type IndexedSequence interface {
	Len() int
	At(i int) any
}

// KeyedMapping exposes own keys and per-key values. [Each] visits the keys
// it reports, in the order it reports them.
type KeyedMapping interface {
	Keys() []any
	Value(key any) (any, bool)
}

// ─────────────────────────────────────────────────────────────────────────────
// Each
// ─────────────────────────────────────────────────────────────────────────────

// Each invokes fn once per element of collection.
//
// Dispatch order:
//
//  1. [Iterable] — delegate to the value's own ForEach.
//  2. [IndexedSequence] — ascending index iteration.
//  3. [KeyedMapping] — iterate the reported keys.
//  4. Reflection fallback: slices and arrays by ascending index; maps by own
//     key (enumeration order unspecified — callers must not rely on it);
//     structs and struct pointers by own exported field. Embedded struct
//     fields are inherited members, not own keys, and are skipped.
//
// A nil or non-collection value yields zero invocations; Each never fails.
func Each(collection any, fn Visitor) {
	if collection == nil {
		return
	}
	switch c := collection.(type) {
	case Iterable:
		c.ForEach(func(v, k any) { fn(v, k, collection) })
	case IndexedSequence:
		for i := 0; i < c.Len(); i++ {
			fn(c.At(i), i, collection)
		}
	case KeyedMapping:
		for _, k := range c.Keys() {
			if v, ok := c.Value(k); ok {
				fn(v, k, collection)
			}
		}
	default:
		eachReflect(collection, fn)
	}
}

// eachReflect traverses native Go collection shapes.
func eachReflect(collection any, fn Visitor) {
	rv := reflect.ValueOf(collection)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			fn(rv.Index(i).Interface(), i, collection)
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			fn(iter.Value().Interface(), iter.Key().Interface(), collection)
		}
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !f.IsExported() || f.Anonymous {
				continue
			}
			fn(rv.Field(i).Interface(), f.Name, collection)
		}
	}
}

// ToSlice collects every value [Each] would visit into a new []any, in
// visit order. Useful for converting array-likes and custom iterables into
// a plain slice.
func ToSlice(collection any) []any {
	var out []any
	Each(collection, func(v, _, _ any) { out = append(out, v) })
	return out
}
