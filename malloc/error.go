package malloc

import "errors"

// ErrorOutofMemory backing allocation failed, or growth would
// overflow. The allocator is left exactly as it was before the call.
var ErrorOutofMemory = errors.New("malloc.outofmemory")
