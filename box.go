package anybox

import (
	"unsafe"
)

// inlineWords sizes the inline buffer at three machine words, enough for the
// small handle-shaped types programs tend to box (coordinate pairs, fixed-size
// IDs, option-style structs) without growing the container.
const inlineWords = 3

// inlineStore is the inline storage region. uint64 words keep the buffer
// 8-byte aligned, which covers every scalar alignment Go produces.
type inlineStore [inlineWords]uint64

const (
	// InlineCapacity is the number of payload bytes a Box can hold without
	// allocating a heap block.
	InlineCapacity = unsafe.Sizeof(inlineStore{})

	// InlineAlign is the alignment of the inline storage region. Types with
	// stricter alignment take the heap path.
	InlineAlign = unsafe.Alignof(inlineStore{})
)

// Box is a type-erased value container. It holds at most one value of any
// concrete Go type behind a single non-generic handle: the typed entry points
// (Store, Emplace, TryGet, Get, Ref) bind or check the concrete type, while
// CopyFrom, MoveFrom and Reset operate through the dispatcher installed when
// the value was stored.
//
// The zero value of Box is an empty container, ready for use.
//
// Field order is a layout contract for inspection tooling: the dispatcher
// reference comes first, followed by the storage region (heap word plus
// inline buffer). Small pointer-free values live in the inline buffer;
// everything else lives in a dedicated heap block owned by the Box.
//
// A Box has single-owner semantics like any Go value type and carries no
// internal locking. Note that plain Go assignment of a Box copies the handle,
// not the held value: both copies then alias the same heap block or carry the
// same inline bytes. Use Clone or CopyFrom to duplicate the held value, and
// MoveFrom to transfer it.
type Box struct {
	disp *dispatcher
	heap unsafe.Pointer
	buf  inlineStore
}

// Disposer is an optional hook for held types that own external resources.
// When a Box destroys its value (Reset, or overwrite by Store/Emplace/
// CopyFrom/MoveFrom), a held value implementing Disposer has Dispose called
// exactly once before the storage is released. Moving a value between boxes
// does not dispose it; the value stays live in the destination.
type Disposer interface {
	Dispose()
}

// Cloner customizes the Copy action for a held type. Plain Go assignment is
// a shallow copy; a type whose values share underlying state can implement
// Clone to give CopyFrom deep-copy semantics. A panic from Clone propagates
// to the CopyFrom caller and leaves the destination empty.
type Cloner[T any] interface {
	Clone() T
}

// HasValue reports whether the container currently holds a value.
func (b *Box) HasValue() bool {
	return b.disp != nil
}

// Type returns the identity token of the held type, or the zero Token when
// the container is empty.
func (b *Box) Type() Token {
	if b.disp == nil {
		return Token{}
	}
	return Token{rt: b.disp.rtype}
}

// TypeName returns the Go name of the held type, or "" when empty. This is
// the human-readable tag inspection tooling renders next to the raw bytes.
func (b *Box) TypeName() string {
	if b.disp == nil {
		return ""
	}
	return b.disp.name
}

// Reset destroys the held value, if any, and returns the container to the
// empty state. Safe to call on an empty container.
//
// The dispatcher is detached before the destroy action runs, so the box
// observes as empty even if a Disposer hook panics.
func (b *Box) Reset() {
	d := b.disp
	if d == nil {
		return
	}
	b.disp = nil
	d.fn(actionDestroy, b, nil)
}

// CopyFrom replaces the held value with a copy of src's value. An empty src
// leaves b empty. The copy is constructed by the held type's own copy
// semantics (assignment, or Clone when implemented) into b's own storage;
// for heap-stored types the two boxes end up owning distinct blocks.
//
// b is bound to the new value only after construction succeeds: if a Clone
// implementation panics, b is left empty, and src is never modified.
func (b *Box) CopyFrom(src *Box) {
	if b == src {
		return
	}
	b.Reset()
	if src == nil || src.disp == nil {
		return
	}
	d := src.disp
	d.fn(actionCopy, src, b)
	b.disp = d
}

// MoveFrom transfers src's value into b, leaving src empty. An empty src
// leaves b empty. Inline values move by buffer copy (inline types are
// pointer-free, so a raw byte move is exact); heap values move by pointer
// transfer with no allocation and no value copy. Self-move is a no-op.
//
// Pointer transfer assumes the held value keeps no interior pointers into
// its own storage slot, which holds for ordinary Go values.
func (b *Box) MoveFrom(src *Box) {
	if b == src {
		return
	}
	b.Reset()
	if src == nil || src.disp == nil {
		return
	}
	d := src.disp
	d.fn(actionMove, src, b)
	b.disp = d
}

// Clone returns a new Box holding a copy of the held value, constructed with
// the same semantics as CopyFrom. Cloning an empty Box yields an empty Box.
func (b *Box) Clone() Box {
	var out Box
	out.CopyFrom(b)
	return out
}

// slot returns the address of the held value's storage. Callers must know
// from the dispatcher whether the value is inline or heap-stored.
func (b *Box) slot(inline bool) unsafe.Pointer {
	if inline {
		return unsafe.Pointer(&b.buf)
	}
	return b.heap
}
