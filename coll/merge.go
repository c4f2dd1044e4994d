package coll

// ─────────────────────────────────────────────────────────────────────────────
// Merge & Extend
// ─────────────────────────────────────────────────────────────────────────────

// Merge copies each key of src into dst only when dst does not already
// define that key. Presence is what matters, not the value: a key held by
// dst with a zero value (0, "", false, nil) is kept as-is.
//
// dst is mutated in place and returned. A nil dst with a non-empty src is a
// caller contract violation (it panics like any nil-map write).
func Merge[M ~map[K]V, K comparable, V any](dst, src M) M {
	for k, v := range src {
		if _, exists := dst[k]; !exists {
			dst[k] = v
		}
	}
	return dst
}

// Extend copies every key of src into dst, unconditionally overwriting any
// existing value under the same key. dst is mutated in place and returned.
func Extend[M ~map[K]V, K comparable, V any](dst, src M) M {
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
