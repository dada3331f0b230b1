package anybox

import (
	"reflect"
	"unsafe"

	"github.com/wippyai/anybox/errors"
)

// Of returns a new Box holding v.
func Of[T any](v T) Box {
	var b Box
	Store(&b, v)
	return b
}

// Store destroys b's current value, if any, then places v and binds the
// dispatcher for T. The dispatcher is bound strictly after placement, so a
// failure during placement (a panicking Disposer on the old value, say)
// leaves b empty rather than half-constructed.
func Store[T any](b *Box, v T) {
	d := dispatcherFor[T]()
	b.Reset()
	if d.inline {
		*(*T)(unsafe.Pointer(&b.buf)) = v
	} else {
		p := new(T)
		*p = v
		b.heap = unsafe.Pointer(p)
	}
	b.disp = d
}

// Emplace constructs a T directly in its final storage location, the inline
// buffer or a fresh heap block, with no intermediate value. The new T starts
// at its zero value; init, when non-nil, populates it in place. This is the
// preferred construction path for large types, since Store moves the value
// once more than Emplace does.
//
// The dispatcher is bound only after init returns: a panicking init leaves b
// empty. The returned pointer stays valid until the value is destroyed or
// moved out.
func Emplace[T any](b *Box, init func(*T)) *T {
	d := dispatcherFor[T]()
	b.Reset()
	var p *T
	if d.inline {
		p = (*T)(unsafe.Pointer(&b.buf))
	} else {
		p = new(T)
	}
	if init != nil {
		init(p)
	}
	if !d.inline {
		b.heap = unsafe.Pointer(p)
	}
	b.disp = d
	return p
}

// TryGet returns a pointer to the held value if b holds exactly a T.
// An empty container or a type mismatch yields (nil, false). The type check
// compares identity tokens; no coincidental layout overlap between types can
// make it pass.
func TryGet[T any](b *Box) (*T, bool) {
	if b == nil || b.disp == nil {
		return nil, false
	}
	if b.disp.rtype != reflect.TypeOf((*T)(nil)).Elem() {
		return nil, false
	}
	return (*T)(b.disp.fn(actionGet, b, nil)), true
}

// Holds reports whether b currently holds a value of exactly type T.
func Holds[T any](b *Box) bool {
	return b != nil && b.disp != nil && b.disp.rtype == reflect.TypeOf((*T)(nil)).Elem()
}

// Ref returns a pointer to the held value, or a structured access error when
// the container is empty or holds a different type. The container state is
// never affected by a failed access.
func Ref[T any](b *Box) (*T, error) {
	if p, ok := TryGet[T](b); ok {
		return p, nil
	}
	want := reflect.TypeOf((*T)(nil)).Elem().String()
	if b == nil || b.disp == nil {
		return nil, errors.Empty(errors.PhaseAccess, want)
	}
	return nil, errors.Mismatch(errors.PhaseAccess, want, b.disp.name)
}

// Get returns a copy of the held value, with the same failure semantics as
// Ref.
func Get[T any](b *Box) (T, error) {
	p, err := Ref[T](b)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}
