// Package malloc supplies custom memory management for in-memory data
// structures. Note that Types and Functions exported by this package are not
// thread safe, if an allocator must be shared between goroutines the
// application shall supply the mutual exclusion.
//
// Two allocators are supplied, both serve fixed sized blocks in O(1)
// time by threading an intrusive free-list through the freed blocks
// themselves, a freed block holds no live value and its first
// pointer-sized bytes double as the link to the next free block:
//
//  * Fixarena is emplaced into caller supplied memory, along with its
//    own control structure, and serves blocks by address. Its capacity
//    is fixed at construction and it never grows. The caller owns the
//    memory region for the arena's entire lifetime, there is no
//    teardown operation.
//  * Handlepool owns a relocatable backing array of fixed sized slots
//    and serves slots by integer handle. It starts empty, grows on
//    demand by 3/2 and can be Released back to empty and reused.
//
// Caller contracts are trust based, by the same token as the O(1)
// promise: double free, use after free and dereferencing handles that
// were never allocated go undetected and corrupt the free-list.
// Building with `-tags debug` fills freshly allocated blocks with
// 0xff so that stale links surface early.
//
// Memory-chunks allocated by this package will always be 64-bit
// aligned.
package malloc
