// Package anybox provides a type-erased value container with small-buffer
// optimization.
//
// A Box holds at most one value of any concrete Go type behind a uniform,
// non-generic handle. The concrete type is chosen at the call site of the
// typed entry points; the container itself never branches on it. Everything
// type-specific (placement, destruction, copying, moving, identity) lives
// in a per-type dispatcher generated once per distinct held type and shared
// by every Box and goroutine.
//
// # Architecture Overview
//
//	anybox/              Box container, typed entry points, dispatchers, tokens
//	├── internal/layout/ Size, alignment, and pointer-freeness probing
//	├── errors/          Structured error types for access failures
//	└── cmd/inspect/     Interactive raw-layout inspector
//
// # Storage
//
// Each Box carries a fixed storage region: one heap word plus a 24-byte
// inline buffer (three machine words, 8-byte aligned). Where a value lives is
// a property of its type, decided once when the type's dispatcher is
// generated:
//
//	Placement   Condition
//	─────────────────────────────────────────────────────────
//	inline      size <= 24 && align <= 8 && no pointers in
//	            the type's representation
//	heap        everything else
//
// The pointer-freeness condition exists because the inline buffer is untyped
// memory the garbage collector does not scan; it is also what makes moving an
// inline value a plain byte copy. Strings, slices, maps, and anything else
// carrying a pointer always takes the heap path, no matter how small.
//
// # Quick Start
//
//	b := anybox.Of(42)
//	b.Type()                           // token for int
//	v, ok := anybox.TryGet[int](&b)    // &42, true
//	_, ok = anybox.TryGet[float64](&b) // nil, false
//
//	var c anybox.Box
//	c.CopyFrom(&b) // independent copy
//	b.Reset()      // c still holds 42
//
// Large or pointer-bearing values are constructed in place to skip the extra
// move:
//
//	p := anybox.Emplace[Payload](&b, func(p *Payload) {
//		p.Name = "hello"
//	})
//
// # Ownership
//
// A Box is a plain value type with single-owner semantics and no internal
// locking. Plain Go assignment copies the handle, not the value: the copies
// alias the same storage. Use Clone or CopyFrom to duplicate the held value
// and MoveFrom to transfer it; after MoveFrom the source is empty. Heap-held
// values move by pointer transfer, so a move never allocates or copies the
// value itself.
//
// Dispatchers are immutable and process-wide; concurrent first use of the
// same type from many goroutines is safe. Concurrent mutation of one Box is
// not, exactly as for any other Go value.
//
// # Optional Hooks
//
// A held type may implement Disposer to run cleanup when its value is
// destroyed, and Cloner[T] to give CopyFrom deep-copy semantics. Both are
// detected once, when the type's dispatcher is generated.
//
// # Error Handling
//
// TryGet reports failure by (nil, false). Get and Ref return structured
// errors from the errors package:
//
//	[access] type_mismatch: want float64, have int
//	[access] empty_value: want int
//
// # Inspection
//
// Inspect returns a read-only snapshot of a Box's raw layout (storage mode,
// dispatcher address, leading payload bytes) for debuggers and the
// cmd/inspect tool. The container field order, dispatcher reference first and
// storage region second, is part of that contract.
package anybox
