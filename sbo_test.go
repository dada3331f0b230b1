package anybox

import (
	"testing"
	"unsafe"
)

func TestInlineThreshold(t *testing.T) {
	type threeWords struct{ a, b, c uint64 }
	type withPointer struct{ p *int }

	tests := []struct {
		name string
		mode StorageMode
		size uintptr
	}{
		{"bool", ModeInline, 1},
		{"int", ModeInline, unsafe.Sizeof(int(0))},
		{"float64", ModeInline, 8},
		{"exact capacity array", ModeInline, 24},
		{"exact capacity struct", ModeInline, 24},
		{"one over capacity", ModeHeap, 25},
		{"large array", ModeHeap, 64},
		{"small but pointer-bearing", ModeHeap, unsafe.Sizeof(withPointer{})},
		{"string", ModeHeap, unsafe.Sizeof("")},
		{"slice", ModeHeap, unsafe.Sizeof([]int(nil))},
	}

	boxes := []Box{
		Of(true),
		Of(1),
		Of(1.5),
		Of([24]byte{}),
		Of(threeWords{1, 2, 3}),
		Of([25]byte{}),
		Of([64]byte{}),
		Of(withPointer{}),
		Of("s"),
		Of([]int{1}),
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := Inspect(&boxes[i])
			if v.Mode != tc.mode {
				t.Errorf("mode = %v, want %v", v.Mode, tc.mode)
			}
			if v.Size != tc.size {
				t.Errorf("size = %d, want %d", v.Size, tc.size)
			}
		})
	}
}

func TestInlineStoreDoesNotAllocate(t *testing.T) {
	var b Box
	v := [24]byte{1, 2, 3}
	Store(&b, v) // warm the dispatcher cache

	allocs := testing.AllocsPerRun(100, func() {
		Store(&b, v)
	})
	if allocs != 0 {
		t.Errorf("inline store allocated %.1f times per op, want 0", allocs)
	}

	allocs = testing.AllocsPerRun(100, func() {
		if _, ok := TryGet[[24]byte](&b); !ok {
			t.Fatal("TryGet failed")
		}
	})
	if allocs != 0 {
		t.Errorf("inline get allocated %.1f times per op, want 0", allocs)
	}
}

func TestHeapStoreAllocates(t *testing.T) {
	var b Box
	v := [25]byte{1}
	Store(&b, v) // warm the dispatcher cache

	allocs := testing.AllocsPerRun(100, func() {
		Store(&b, v)
	})
	if allocs < 1 {
		t.Errorf("heap store allocated %.1f times per op, want at least 1", allocs)
	}
}

func TestHeapMoveDoesNotAllocate(t *testing.T) {
	a := Of([64]byte{1})
	var b Box

	allocs := testing.AllocsPerRun(100, func() {
		b.MoveFrom(&a)
		a.MoveFrom(&b)
	})
	if allocs != 0 {
		t.Errorf("heap move allocated %.1f times per op, want 0", allocs)
	}
}

func TestInlineBufferReusedAcrossStores(t *testing.T) {
	var b Box
	Store(&b, int64(1))
	p1, _ := TryGet[int64](&b)
	Store(&b, int64(2))
	p2, _ := TryGet[int64](&b)
	if p1 != p2 {
		t.Error("inline values should live in the container's own buffer")
	}
}
