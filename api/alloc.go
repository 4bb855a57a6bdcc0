package api

import "unsafe"

// Mallocer interface for allocators serving fixed size blocks by
// address.
type Mallocer interface {
	// Allocchunk allocate the next block, nil once exhausted.
	Allocchunk() unsafe.Pointer

	// Free a block previously returned by Allocchunk.
	Free(ptr unsafe.Pointer)

	// Blocksize effective size of the blocks served, after
	// alignment widening.
	Blocksize() int64

	// Info of memory accounting for this allocator.
	Info() (capacity, heap, alloc, overhead int64)
}

// SlotPooler interface for pools serving fixed size slots by
// integer handle. Handles stay stable across storage relocation.
type SlotPooler interface {
	// Alloc a slot, returns a negative sentinel once exhausted.
	Alloc() int64

	// Free a slot previously returned by Alloc.
	Free(h int64)

	// At return the address of slot storage for handle h.
	At(h int64) unsafe.Pointer

	// Grow provision n more slots up front.
	Grow(n int64) error

	// Capacity number of slots currently backed by storage.
	Capacity() int64

	// Release backing storage and reset the pool to empty.
	Release()

	// Info of memory accounting for this pool.
	Info() (capacity, heap, alloc, overhead int64)
}
