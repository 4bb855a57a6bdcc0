// Functions and methods are not thread safe.

package malloc

import "unsafe"

import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/gomem/lib"

const ptrsize = int64(unsafe.Sizeof(uintptr(0)))
const ptralign = int64(unsafe.Alignof(uintptr(0)))

// Fixarena a fixed capacity block allocator emplaced into caller
// supplied memory. The control structure and the block arena are both
// carved out of the same region, the allocator itself never allocates
// or frees memory, it only computes offsets within the region. The
// caller owns the region for the arena's entire lifetime.
type Fixarena struct {
	heapbegin uintptr // start of the block arena
	freebegin uintptr // bump cursor into the never allocated tail
	freeend   uintptr
	blocksize int64   // effective block size, multiple of the widened alignment
	freelist  uintptr // head of intrusive list of freed blocks, 0 when empty
}

// EmplaceFixarena construct a Fixarena inside `block`, whatever
// memory remains after placing the control structure is sliced up
// into fixed size chunks. Returns the arena and the maximum number of
// blocks that can be allocated at once, (nil, 0) if block is nil or
// too small to hold the control structure. Settings: "blocksize" and
// "blockalign", refer Defaultsettings().
func EmplaceFixarena(block []byte, setts s.Settings) (*Fixarena, int64) {
	if len(block) == 0 {
		return nil, 0
	}
	blocksize := setts.Int64("blocksize")
	blockalign := setts.Int64("blockalign")
	if blocksize <= 0 || blockalign <= 0 {
		panicerr("blocksize %v, blockalign %v should be positive", blocksize, blockalign)
	}
	base := uintptr(unsafe.Pointer(&block[0]))
	// place the control structure at the first aligned address.
	arenaptr := lib.Alignup(base, unsafe.Alignof(Fixarena{}))
	// blocks must be aligned at least as strictly as pointers, a
	// freed block's storage doubles as the free-list link.
	blockalign = lib.LCM(blockalign, ptralign)
	// blocks must be large enough to hold the link.
	if blocksize < ptrsize {
		blocksize = ptrsize
	}
	blocksize = lib.Roundup(blocksize, blockalign)
	// block memory begins at the first aligned address after the
	// control structure.
	heapbegin := lib.Alignup(arenaptr+unsafe.Sizeof(Fixarena{}), uintptr(blockalign))
	memused := int64(heapbegin - base)
	if memused > int64(len(block)) {
		return nil, 0
	}
	// correct the remaining memory down to its effective size.
	memsize := lib.Rounddown(int64(len(block))-memused, blocksize)

	arena := (*Fixarena)(unsafe.Pointer(arenaptr))
	arena.heapbegin = heapbegin
	arena.freebegin, arena.freeend = heapbegin, heapbegin+uintptr(memsize)
	arena.blocksize, arena.freelist = blocksize, 0
	return arena, memsize / blocksize
}

// Allocchunk allocate the next block in O(1). Pops the free-list when
// non empty, else bumps into the never allocated tail. Returns nil
// once the arena is exhausted, a Fixarena never grows.
func (arena *Fixarena) Allocchunk() unsafe.Pointer {
	if ptr := arena.freelist; ptr != 0 {
		arena.freelist = *(*uintptr)(unsafe.Pointer(ptr))
		initblock(ptr, arena.blocksize)
		return unsafe.Pointer(ptr)
	}
	if arena.freebegin >= arena.freeend {
		return nil
	}
	ptr := arena.freebegin
	arena.freebegin += uintptr(arena.blocksize)
	initblock(ptr, arena.blocksize)
	return unsafe.Pointer(ptr)
}

// Free a block previously returned by Allocchunk on this same arena.
// Freeing nil is a no-op. Double free silently corrupts the
// free-list, the contract is trust based.
func (arena *Fixarena) Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	*(*uintptr)(ptr) = arena.freelist
	arena.freelist = uintptr(ptr)
}

// Blocksize implement api.Mallocer{} interface. Effective per-block
// size after alignment widening.
func (arena *Fixarena) Blocksize() int64 {
	return arena.blocksize
}

// Info implement api.Mallocer{} interface. Walks the free-list to
// account freed blocks, can be a costly operation.
func (arena *Fixarena) Info() (capacity, heap, alloc, overhead int64) {
	capacity = int64(arena.freeend - arena.heapbegin)
	heap = int64(arena.freebegin - arena.heapbegin)
	alloc = heap
	for ptr := arena.freelist; ptr != 0; ptr = *(*uintptr)(unsafe.Pointer(ptr)) {
		alloc -= arena.blocksize
	}
	overhead = int64(unsafe.Sizeof(*arena))
	return
}

// FixarenaSize size of the control structure. Callers sizing the
// memory region up front can account for it, along with
// FixarenaAlignment() worth of placement padding.
func FixarenaSize() int64 {
	return int64(unsafe.Sizeof(Fixarena{}))
}

// FixarenaAlignment alignment requirement of the control structure.
func FixarenaAlignment() int64 {
	return int64(unsafe.Alignof(Fixarena{}))
}
