// Functions and methods are not thread safe.

package malloc

import "unsafe"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/gomem/lib"

// Invalidhandle sentinel returned by Alloc when backing allocation
// fails, never identifies a slot.
const Invalidhandle = int64(-1)

const maxint64 = int64(^uint64(0) >> 1)

// Handlepool a growable pool of fixed size slots addressed by int64
// handles. Handles stay stable across growth even though the backing
// storage relocates, the pool exclusively owns that storage. Every
// handle below the bump boundary is either owned by the caller or
// threaded exactly once on the free-list.
type Handlepool struct {
	// 64-bit aligned stats
	mallocated int64

	slots    []byte // relocatable backing storage, capacity*slotsize bytes
	slotsize int64  // fixed per-slot size, immutable after construction
	capacity int64  // number of slots currently backed by storage
	freearr  int64  // slots < freearr were handed out at least once
	freelist int64  // head of intrusive list of freed slots
	relocate func(old []byte, size int64) ([]byte, bool)
}

// NewHandlepool create a pool of fixed size slots. Settings:
// "slotsize" and "capacity", refer Defaultsettings(). The pool starts
// empty unless "capacity" slots are asked to be provisioned up front.
func NewHandlepool(setts s.Settings) *Handlepool {
	slotsize, capacity := setts.Int64("slotsize"), setts.Int64("capacity")
	if slotsize <= 0 {
		panicerr("slotsize %v should be positive", slotsize)
	}
	// slots must hold the free-list link and stay 64-bit aligned.
	if slotsize < ptrsize {
		slotsize = ptrsize
	}
	slotsize = lib.Roundup(slotsize, Alignment)
	pool := &Handlepool{
		slotsize: slotsize,
		freelist: Invalidhandle,
		relocate: relocatebuf,
	}
	if capacity > 0 {
		if err := pool.Grow(capacity); err != nil {
			panic(err)
		}
	}
	return pool
}

// Alloc implement api.SlotPooler{} interface. Serve one slot in
// amortized O(1). Pops the free-list when non empty, else bumps into
// never used capacity, else grows the backing storage by 3/2. Returns
// Invalidhandle when backing allocation fails or growth would
// overflow, the pool is left exactly as it was in that case.
func (pool *Handlepool) Alloc() int64 {
	if h := pool.freelist; h != Invalidhandle {
		pool.freelist = pool.link(h)
		pool.mallocated += pool.slotsize
		initblock(uintptr(unsafe.Pointer(&pool.slots[h*pool.slotsize])), pool.slotsize)
		return h
	}
	if pool.freearr >= pool.capacity {
		newcap := pool.capacity + pool.capacity/2
		// 3/2 stalls below a capacity of two and wraps past maxint64.
		if newcap <= pool.capacity {
			if pool.capacity == maxint64 {
				return Invalidhandle
			}
			newcap = pool.capacity + 1
		}
		if pool.resize(newcap) != nil {
			return Invalidhandle
		}
	}
	h := pool.freearr
	pool.freearr++
	pool.mallocated += pool.slotsize
	initblock(uintptr(unsafe.Pointer(&pool.slots[h*pool.slotsize])), pool.slotsize)
	return h
}

// Free implement api.SlotPooler{} interface. Return slot h to the
// pool, freeing Invalidhandle is a no-op. h shall have been returned
// by Alloc on this pool after its last Release, double free silently
// corrupts the free-list.
func (pool *Handlepool) Free(h int64) {
	if h == Invalidhandle {
		return
	}
	pool.setlink(h, pool.freelist)
	pool.freelist = h
	pool.mallocated -= pool.slotsize
}

// At implement api.SlotPooler{} interface. Address of the slot
// storage for handle h, no liveness checking, h shall be a currently
// allocated handle.
func (pool *Handlepool) At(h int64) unsafe.Pointer {
	return unsafe.Pointer(&pool.slots[h*pool.slotsize])
}

// Bytes slot storage for handle h as a byte slice, same contract as
// At. The slice aliases the backing storage and goes stale once the
// pool grows or is released.
func (pool *Handlepool) Bytes(h int64) []byte {
	off := h * pool.slotsize
	return pool.slots[off : off+pool.slotsize]
}

// Grow implement api.SlotPooler{} interface. Provision n more slots
// up front, handles and slot contents survive the relocation. Callers
// that know their demand can avoid incremental reallocations. On
// overflow or backing-allocation failure the pool is left unchanged
// and ErrorOutofMemory returned.
func (pool *Handlepool) Grow(n int64) error {
	if n <= 0 {
		panicerr("grow count %v should be positive", n)
	}
	newcap := pool.capacity + n
	if newcap < pool.capacity {
		return ErrorOutofMemory
	}
	return pool.resize(newcap)
}

// Release implement api.SlotPooler{} interface. Drop the backing
// storage and reset the pool to empty, all previously issued handles
// become invalid. The pool remains usable and behaves as newly
// constructed.
func (pool *Handlepool) Release() {
	pool.slots, pool.capacity = nil, 0
	pool.freearr, pool.freelist = 0, Invalidhandle
	pool.mallocated = 0
}

// Capacity implement api.SlotPooler{} interface. Number of slots
// currently backed by storage.
func (pool *Handlepool) Capacity() int64 {
	return pool.capacity
}

// Slotsize effective per-slot size after alignment widening.
func (pool *Handlepool) Slotsize() int64 {
	return pool.slotsize
}

// Info implement api.SlotPooler{} interface.
func (pool *Handlepool) Info() (capacity, heap, alloc, overhead int64) {
	self := int64(unsafe.Sizeof(*pool))
	return pool.capacity * pool.slotsize, int64(len(pool.slots)), pool.mallocated, self
}

// Logstatistics dump pool accounting in human readable form.
func (pool *Handlepool) Logstatistics(logprefix string) {
	capacity, heap, alloc, overhead := pool.Info()
	fmsg := "%v capacity: %v heap: %v alloc: %v overhead: %v\n"
	log.Infof(
		fmsg, logprefix,
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(heap)),
		humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)))
}

//---- local functions

func (pool *Handlepool) resize(newcap int64) error {
	if newcap > maxint64/pool.slotsize {
		return ErrorOutofMemory
	}
	slots, ok := pool.relocate(pool.slots, newcap*pool.slotsize)
	if !ok {
		return ErrorOutofMemory
	}
	pool.slots, pool.capacity = slots, newcap
	return nil
}

// a freed slot holds no live value, its first 8 bytes double as the
// handle of the next freed slot.
func (pool *Handlepool) link(h int64) int64 {
	return *(*int64)(unsafe.Pointer(&pool.slots[h*pool.slotsize]))
}

func (pool *Handlepool) setlink(h, next int64) {
	*(*int64)(unsafe.Pointer(&pool.slots[h*pool.slotsize])) = next
}

func relocatebuf(old []byte, size int64) ([]byte, bool) {
	buf := make([]byte, size)
	copy(buf, old)
	return buf, true
}

// can be costly operation, walks the free-list.
func (pool *Handlepool) checkallocated() int64 {
	alloc := pool.freearr * pool.slotsize
	for h := pool.freelist; h != Invalidhandle; h = pool.link(h) {
		alloc -= pool.slotsize
	}
	return alloc
}
