// Package dict defines a map keyed by fixed-length sequences of values
// rather than single scalars.
//
// A native Go map keyed by an array or a joined string either restricts the
// element type or loses the structure of the key. Here a key is an ordered
// []K slice and two keys address the same entry iff they have the same
// length and equal elements at every position. The element type only has to
// be comparable; values are opaque.
//
// # Structure
//
// A Map is recursive: each level maps one key element to either a stored
// value (at the last key position) or a nested Map holding the rest of the
// key. Levels remember the order in which their elements were first seen,
// so iteration is deterministic.
//
// A container with the entries {eu,de}->83, {eu,fr}->67, {us,ca}->39 looks
// like this (key length 2):
//
//	                 ,-- "de": 83
//	  "eu" -- [Map] -+
//	                 `-- "fr": 67
//	  "us" -- [Map] ---- "ca": 39
//
// The key length is fixed by the first insertion: every later key must have
// exactly that many elements, and Set fails with ErrKeyLength otherwise.
//
// Lookups come in two statically distinct forms: Get resolves a full-length
// key to its value, and Sub resolves a shorter prefix to the live nested
// Map scoped to that prefix. A Sub view shares memory with its root, so
// mutations on either side are visible through the other.
//
// Keys, Values and All are lazy range-over-func iterators over the live
// structure; each call yields a fresh sequence in depth-first, first-seen
// insertion order.
//
// A Map is not safe for concurrent use; callers have to serialize access
// themselves.
package dict
