// Package algoreg implements the algorithm construction core: a generic,
// process-wide registry per algorithm family that maps a parsed textual
// specification and an optional provider hint to a concrete implementation.
//
// Each family (hash, MAC, cipher, ...) gets an independent registry, created
// lazily on first use and populated by the implementation packages through
// registration handles. Lookup is thread-safe; a selected maker runs outside
// the registry lock, so construction of one algorithm may recursively resolve
// another family's registry without deadlock.
//
// Callers distinguish two failure kinds: ErrNotAvailable means nothing
// implements the request, while a ConstructionError means a registered
// implementation was found but could not be built from the given arguments.
package algoreg
