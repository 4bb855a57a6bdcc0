package lib

// Alignment arithmetic for allocators. Round-up is computed in the
// modular form, which is well defined at the boundary: values that
// are already aligned are returned unchanged, without the underflow
// that the subtract-and-mask form suffers.

// Alignup return the first address >= ptr that is a multiple of
// align. align shall be positive.
func Alignup(ptr, align uintptr) uintptr {
	return ptr + (align - (((ptr - 1) % align) + 1))
}

// Roundup return the first multiple of `multiple` >= num. num and
// multiple shall be positive.
func Roundup(num, multiple int64) int64 {
	return num + (multiple - (((num - 1) % multiple) + 1))
}

// Rounddown return the last multiple of `multiple` <= num.
func Rounddown(num, multiple int64) int64 {
	return num - (num % multiple)
}

// GCD greatest common divisor of a and b.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM least common multiple of a and b.
func LCM(a, b int64) int64 {
	return (a * b) / GCD(a, b)
}
