package anybox

import "unsafe"

// StorageMode identifies which storage variant a Box currently uses.
type StorageMode uint8

const (
	ModeEmpty StorageMode = iota
	ModeInline
	ModeHeap
)

func (m StorageMode) String() string {
	switch m {
	case ModeInline:
		return "inline"
	case ModeHeap:
		return "heap"
	default:
		return "empty"
	}
}

// maxViewBytes bounds the payload snapshot for heap-stored values so
// inspecting a large value stays cheap.
const maxViewBytes = 64

// View is a read-only snapshot of a Box's raw layout, the surface consumed
// by debuggers and visualization tooling: the dispatcher address locates the
// per-type metadata, TypeName is the human-readable tag, and Bytes holds a
// copy of the leading payload bytes.
//
// Addresses are reported as uintptr and must not be turned back into
// pointers; Bytes is a copy and does not alias the container.
type View struct {
	TypeName   string
	Mode       StorageMode
	Dispatcher uintptr
	Heap       uintptr
	Size       uintptr
	Align      uintptr
	Bytes      []byte
}

// Inspect captures the raw layout of b. An empty or nil Box yields the zero
// View. Inspect never modifies the container.
func Inspect(b *Box) View {
	var v View
	if b == nil || b.disp == nil {
		return v
	}
	d := b.disp
	v.TypeName = d.name
	v.Dispatcher = uintptr(unsafe.Pointer(d))
	v.Size = d.size
	v.Align = d.align

	n := d.size
	if d.inline {
		v.Mode = ModeInline
	} else {
		v.Mode = ModeHeap
		v.Heap = uintptr(b.heap)
		if n > maxViewBytes {
			n = maxViewBytes
		}
	}
	if n > 0 {
		src := unsafe.Slice((*byte)(b.slot(d.inline)), n)
		v.Bytes = append([]byte(nil), src...)
	}
	return v
}
