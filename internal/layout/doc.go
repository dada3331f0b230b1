// Package layout probes the storage-relevant properties of Go types.
//
// The container's inline-versus-heap placement decision needs three facts
// about a type: size, alignment, and whether its representation contains
// pointers. Size and alignment come straight from the runtime; pointer
// presence is computed by a recursive walk over the type's kind structure.
//
// # Usage
//
//	info := layout.Probe(reflect.TypeFor[T]())
//	// info.Size, info.Align, info.HasPointers
//
// Probe results are cached and safe for concurrent use. This package is
// internal to anybox.
package layout
