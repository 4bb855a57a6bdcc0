// Command mallocbench measures allocate/free throughput and memory
// utilization for the gomem allocators.
package main

import "flag"
import "time"
import "unsafe"

import "github.com/bnclabs/golog"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

import "github.com/bnclabs/gomem/api"
import "github.com/bnclabs/gomem/malloc"

var options struct {
	blocksize int
	capacity  int
	repeat    int
}

func argParse() {
	flag.IntVar(&options.blocksize, "blocksize", 64,
		"fixed size of blocks and slots, in bytes")
	flag.IntVar(&options.capacity, "capacity", 64*1024*1024,
		"arena capacity, in bytes")
	flag.IntVar(&options.repeat, "repeat", 4,
		"number of fill/drain rounds")
	flag.Parse()
}

func main() {
	argParse()
	benchfixarena()
	benchhandlepool()
}

func benchfixarena() {
	setts := malloc.Defaultsettings().Mixin(s.Settings{
		"blocksize": int64(options.blocksize),
	})
	block := make([]byte, options.capacity)
	arena, maxblocks := malloc.EmplaceFixarena(block, setts)
	if arena == nil {
		log.Fatalf("mallocbench: %v bytes too small for a fixarena\n", options.capacity)
	}
	var mallocer api.Mallocer = arena

	ptrs := make([]unsafe.Pointer, 0, maxblocks)
	ops, now := 0, time.Now()
	for i := 0; i < options.repeat; i++ {
		ptrs = ptrs[:0]
		for {
			ptr := mallocer.Allocchunk()
			if ptr == nil {
				break
			}
			ptrs = append(ptrs, ptr)
		}
		for _, ptr := range ptrs {
			mallocer.Free(ptr)
		}
		ops += len(ptrs) * 2
	}
	elapsed := time.Since(now)
	log.Infof(
		"fixarena: %v blocks of %v, %v alloc+free in %v (%v/op)\n",
		maxblocks, mallocer.Blocksize(), ops, elapsed, perop(elapsed, ops))
	capacity, heap, alloc, overhead := mallocer.Info()
	logutilization("fixarena", capacity, heap, alloc, overhead)
}

func benchhandlepool() {
	setts := malloc.Defaultsettings().Mixin(s.Settings{
		"slotsize": int64(options.blocksize),
	})
	var pooler api.SlotPooler = malloc.NewHandlepool(setts)

	nslots := int64(options.capacity) / int64(options.blocksize)
	handles := make([]int64, 0, nslots)
	ops, now := 0, time.Now()
	for i := 0; i < options.repeat; i++ {
		handles = handles[:0]
		for j := int64(0); j < nslots; j++ {
			h := pooler.Alloc()
			if h == malloc.Invalidhandle {
				log.Fatalf("mallocbench: handlepool exhausted at %v\n", j)
			}
			handles = append(handles, h)
		}
		for _, h := range handles {
			pooler.Free(h)
		}
		ops += len(handles) * 2
	}
	elapsed := time.Since(now)
	log.Infof(
		"handlepool: %v slots over %v capacity, %v alloc+free in %v (%v/op)\n",
		nslots, pooler.Capacity(), ops, elapsed, perop(elapsed, ops))
	capacity, heap, alloc, overhead := pooler.Info()
	logutilization("handlepool", capacity, heap, alloc, overhead)
	pooler.Release()
}

func perop(elapsed time.Duration, ops int) time.Duration {
	if ops == 0 {
		return 0
	}
	return elapsed / time.Duration(ops)
}

func logutilization(name string, capacity, heap, alloc, overhead int64) {
	fmsg := "%v: capacity %v heap %v alloc %v overhead %v\n"
	log.Infof(
		fmsg, name,
		humanize.Bytes(uint64(capacity)), humanize.Bytes(uint64(heap)),
		humanize.Bytes(uint64(alloc)), humanize.Bytes(uint64(overhead)))
}
