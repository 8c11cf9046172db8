// Package registry maps entities to dense, monotonically increasing integer
// identities and carries a string-keyed attribute map per identity.
//
// A Registry is keyed by any comparable type, so callers use structural keys
// (e.g. a packed sorted node list) instead of formatted strings. Identities
// are allocated from an owned counter and are never reused: removing an
// object drops both direction mappings and its attributes, but the counter
// keeps moving forward.
//
// Every registered object carries two reserved attributes:
//
//	type: the entity kind passed to Register ("node", "edge", ...)
//	name: the human-readable name passed to Register
//
// Reserved attributes are seeded on Register and survive MergeAttrs/SetAttrs;
// caller-supplied values for these keys are ignored.
//
// Complexity: every operation is O(1) amortized, except Clone (O(n)) and the
// attribute copies returned by Attrs (O(len(attrs))).
//
// A Registry is not safe for concurrent mutation; callers serialize writers.
package registry
