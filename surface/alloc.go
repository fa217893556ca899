package surface

import "fmt"

// Allocator abstracts byte-slice allocation so that owning types never reach
// for a process-wide heap directly. It is injected explicitly by callers —
// there is no package-level default allocator singleton.
//
// Alloc must return a zero-length slice (not an error) for a size of 0.
// Free releases bytes previously returned by Alloc from the same Allocator;
// it must tolerate being called with a nil or zero-length slice.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte)
}

// GoAllocator allocates from the Go heap and relies on the garbage collector
// for reclamation; Free is a no-op. Use it when no external allocator is
// available — most callers can pass GoAllocator{} where an Allocator is
// required.
type GoAllocator struct{}

// Alloc implements Allocator.
func (GoAllocator) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("surface: negative allocation size %d", size)
	}
	return make([]byte, size), nil
}

// Free implements Allocator.
func (GoAllocator) Free([]byte) {}

var _ Allocator = GoAllocator{}
