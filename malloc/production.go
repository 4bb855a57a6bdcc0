//go:build !debug

package malloc

import "unsafe"

import "github.com/bnclabs/gomem/lib"

func initblock(block uintptr, size int64) {
	initsz := int64(len(zeroblkinit))
	src := unsafe.Pointer(&zeroblkinit[0])
	for size > initsz {
		lib.Memcpy(unsafe.Pointer(block), src, int(initsz))
		block, size = block+uintptr(initsz), size-initsz
	}
	lib.Memcpy(unsafe.Pointer(block), src, int(size))
}
