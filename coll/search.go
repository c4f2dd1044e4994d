package coll

import "reflect"

// ─────────────────────────────────────────────────────────────────────────────
// Membership
// ─────────────────────────────────────────────────────────────────────────────

// IndexOf returns the index of the first element strictly equal to find,
// or -1 when absent.
func IndexOf[T comparable](items []T, find T) int {
	for i, item := range items {
		if item == find {
			return i
		}
	}
	return -1
}

// IndexOfKey returns the index of the first element whose value under key
// loosely equals find, or -1. The key is read from each element as a map
// index (string-keyed maps) or an exported struct field, including fields
// promoted from embedded structs. Elements that do not carry the key never
// match.
//
// Loose equality compares numeric values across integer and float widths
// (so an int 3 matches a float64 3); all other values compare by interface
// equality.
func IndexOfKey[T any](items []T, key string, find any) int {
	for i, item := range items {
		v, ok := keyValue(item, key)
		if ok && looseEqual(v, find) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// De-duplication
// ─────────────────────────────────────────────────────────────────────────────

// UniqueBy returns the elements of items with duplicates removed, keyed by
// fn, preserving first-occurrence order.
func UniqueBy[T any, K comparable](items []T, fn func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := fn(item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

// UniqueByKey returns the elements of items keeping only the first element
// seen for each distinct value of item's key, in first-occurrence order.
// Key values are compared by strict identity; elements missing the key all
// share the "absent" key, so only the first of them survives.
func UniqueByKey[T any](items []T, key string) []T {
	out := make([]T, 0, len(items))
	var seen []any
	for _, item := range items {
		v, _ := keyValue(item, key)
		dup := false
		for _, s := range seen {
			if sameValue(s, v) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, item)
		}
		seen = append(seen, v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Key access & equality helpers
// ─────────────────────────────────────────────────────────────────────────────

// keyValue reads item's member named key: a map index for string-keyed
// maps, or an exported (possibly promoted) struct field.
func keyValue(item any, key string) (any, bool) {
	rv := reflect.ValueOf(item)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		sf, ok := rv.Type().FieldByName(key)
		if !ok || !sf.IsExported() {
			return nil, false
		}
		return rv.FieldByIndex(sf.Index).Interface(), true
	}
	return nil, false
}

// looseEqual compares numeric values across kinds; everything else falls
// back to sameValue.
func looseEqual(a, b any) bool {
	if an, ok := numericValue(a); ok {
		if bn, ok := numericValue(b); ok {
			return an == bn
		}
		return false
	}
	return sameValue(a, b)
}

func numericValue(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// sameValue is strict identity over interface values. Non-comparable kinds
// (slices, maps, funcs) compare by reference; slices must also agree on
// length, since reslicing shares the backing array's data pointer.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
		switch ta.Kind() {
		case reflect.Slice:
			return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
		case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return av.Pointer() == bv.Pointer()
		}
		return false
	}
	return a == b
}
