// Package coll provides uniform traversal and composition primitives for
// heterogeneous collection-like values: ordered sequences, array-likes, and
// plain key/value mappings.
//
// # Uniform traversal
//
// [Each] visits every element of a collection with a single visitor
// signature, regardless of the collection's shape:
//
//	coll.Each([]string{"a", "b"}, func(v, i, _ any) { fmt.Println(i, v) })
//	coll.Each(map[string]int{"x": 1}, func(v, k, _ any) { fmt.Println(k, v) })
//
// Dispatch prefers capability interfaces over reflection: a value that
// implements [Iterable], [IndexedSequence], or [KeyedMapping] is traversed
// through that interface; native Go slices, arrays, maps, and structs fall
// back to reflection. Anything else yields zero visits — never an error.
//
// # Merge and extend
//
// [Merge] copies keys from src into dst only where dst does not already
// define the key (presence is tested, not the zero value); [Extend] copies
// unconditionally. Both mutate dst in place and return it:
//
//	defaults := map[string]int{"retries": 3, "timeout": 30}
//	coll.Merge(opts, defaults) // fills in whatever the caller left out
//
// # Membership and de-duplication
//
// [IndexOf] is a strict-equality index search with a -1 sentinel.
// [IndexOfKey] searches by a named key of each element (map index or
// exported struct field) using loose numeric equality. [UniqueByKey] and
// [UniqueBy] drop later elements whose key value was already seen,
// preserving first-occurrence order.
package coll
