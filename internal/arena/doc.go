// Package arena provides index-addressed storage for tree nodes.
//
// A Slab hands out runs of contiguous slots addressed by uint32 indices
// instead of pointers. Trees built on top of it hold child indices, so the
// whole structure lives in one backing slice, has no cycles and can be
// dropped in one step with Reset.
//
// # Safety
//
// Pointers returned by At are only valid until the next Alloc, which may
// grow (and move) the backing slice. Callers must re-fetch after allocating.
// A Slab is not safe for concurrent mutation.
package arena
