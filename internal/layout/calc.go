package layout

import (
	"reflect"
	"sync"
)

// Info describes the storage-relevant properties of a Go type: its size and
// alignment, and whether its representation contains pointers the garbage
// collector must see.
type Info struct {
	Size        uintptr
	Align       uintptr
	HasPointers bool
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[reflect.Type]Info)
)

// Probe returns layout info for t. Results are cached for the process
// lifetime; the set of distinct probed types is bounded by the program's
// instantiations, so the cache never needs eviction.
func Probe(t reflect.Type) Info {
	cacheMu.RLock()
	info, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		return info
	}

	info = Info{
		Size:        t.Size(),
		Align:       uintptr(t.Align()),
		HasPointers: hasPointers(t),
	}

	cacheMu.Lock()
	cache[t] = info
	cacheMu.Unlock()
	return info
}

// hasPointers walks the type's representation. Only scalars are pointer-free
// directly; arrays and structs are pointer-free when their elements are.
// Every other kind (pointer, slice, string, map, chan, func, interface,
// unsafe.Pointer) embeds at least one pointer word.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		if t.Len() == 0 {
			return false
		}
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
