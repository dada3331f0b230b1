package anybox

import (
	"reflect"
	"sync"
	"unsafe"

	"go.uber.org/zap"

	"github.com/wippyai/anybox/internal/layout"
)

// action selects the operation a dispatcher performs on behalf of a Box.
type action uint8

const (
	actionDestroy action = iota
	actionCopy
	actionMove
	actionGet
)

// dispatchFunc is the single per-type entry point behind every container
// operation. src is the box holding the value; dst is the destination for
// copy and move, nil otherwise. Only actionGet returns a non-nil pointer.
type dispatchFunc func(op action, src, dst *Box) unsafe.Pointer

// dispatcher carries everything the container needs to operate on one
// concrete held type: the action closure plus the type's identity and
// storage placement. One dispatcher exists per distinct type, is created on
// first use, and is shared read-only by every Box and goroutine holding that
// type. It has no per-instance state.
type dispatcher struct {
	fn     dispatchFunc
	rtype  reflect.Type
	name   string
	size   uintptr
	align  uintptr
	inline bool
}

// dispatchers caches one dispatcher per distinct held type for the process
// lifetime. reflect.Type values are canonical, so the map key doubles as the
// type identity.
var dispatchers sync.Map // reflect.Type -> *dispatcher

func dispatcherFor[T any]() *dispatcher {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if d, ok := dispatchers.Load(rt); ok {
		return d.(*dispatcher)
	}
	d := makeDispatcher[T](rt)
	actual, loaded := dispatchers.LoadOrStore(rt, d)
	if !loaded {
		Logger().Debug("dispatcher generated",
			zap.String("type", d.name),
			zap.Uint64("size", uint64(d.size)),
			zap.Uint64("align", uint64(d.align)),
			zap.Bool("inline", d.inline))
	}
	return actual.(*dispatcher)
}

var disposerType = reflect.TypeOf((*Disposer)(nil)).Elem()

// makeDispatcher resolves the placement decision for T and builds the action
// closure. Placement and the Disposer/Cloner capabilities are properties of
// the type, decided here once: inline requires the value to fit the buffer,
// respect its alignment, and contain no pointers. The last condition is what
// makes raw byte moves of the inline buffer safe, and keeps GC-visible
// pointers out of untyped storage.
func makeDispatcher[T any](rt reflect.Type) *dispatcher {
	info := layout.Probe(rt)
	d := &dispatcher{
		rtype:  rt,
		name:   rt.String(),
		size:   info.Size,
		align:  info.Align,
		inline: !info.HasPointers && info.Size <= InlineCapacity && info.Align <= InlineAlign,
	}
	inline := d.inline
	// The pointer method set covers value receivers too; the value check
	// catches pointer-typed T, whose pointer-to-pointer has no methods.
	disposeViaPtr := reflect.PointerTo(rt).Implements(disposerType)
	disposeViaValue := rt.Implements(disposerType)
	clonerType := reflect.TypeOf((*Cloner[T])(nil)).Elem()
	cloneViaPtr := reflect.PointerTo(rt).Implements(clonerType)
	cloneViaValue := rt.Implements(clonerType)

	d.fn = func(op action, src, dst *Box) unsafe.Pointer {
		switch op {
		case actionGet:
			return src.slot(inline)

		case actionDestroy:
			p := (*T)(src.slot(inline))
			switch {
			case disposeViaPtr:
				any(p).(Disposer).Dispose()
			case disposeViaValue:
				any(*p).(Disposer).Dispose()
			}
			src.heap = nil
			src.buf = inlineStore{}

		case actionCopy:
			v := *(*T)(src.slot(inline))
			switch {
			case cloneViaPtr:
				v = any(&v).(Cloner[T]).Clone()
			case cloneViaValue:
				v = any(v).(Cloner[T]).Clone()
			}
			if inline {
				*(*T)(unsafe.Pointer(&dst.buf)) = v
			} else {
				p := new(T)
				*p = v
				dst.heap = unsafe.Pointer(p)
			}

		case actionMove:
			if inline {
				dst.buf = src.buf
				src.buf = inlineStore{}
			} else {
				dst.heap = src.heap
				src.heap = nil
			}
			src.disp = nil
		}
		return nil
	}
	return d
}
