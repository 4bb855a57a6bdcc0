//go:build debug

package malloc

import "unsafe"

import "github.com/bnclabs/gomem/lib"

// debug builds fill fresh blocks with 0xff, reads through a stale
// pointer or handle then show up as poison instead of silence.
func initblock(block uintptr, size int64) {
	initsz := int64(len(poolblkinit))
	src := unsafe.Pointer(&poolblkinit[0])
	for size > initsz {
		lib.Memcpy(unsafe.Pointer(block), src, int(initsz))
		block, size = block+uintptr(initsz), size-initsz
	}
	lib.Memcpy(unsafe.Pointer(block), src, int(size))
}
