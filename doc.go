// Package gomem implement a collection of memory allocators and
// necessary tools and libraries.
//
// api:
//
// Interface specification to access gomem allocators.
//
// intern:
//
// Deduplicate equal valued objects behind reference counted cells,
// a caching concern layered on top of allocation.
//
// lib:
//
// Convinience functions that can be used by other packages. Package shall
// not import packages other than golang's standard packages.
//
// malloc:
//
// Custom memory management, fixed sized blocks served in O(1) via
// intrusive free-lists. Supplies an allocator emplaced into caller
// owned memory and a growable pool addressed by integer handles.
package gomem
