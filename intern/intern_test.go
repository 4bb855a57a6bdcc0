package intern

import "strings"
import "testing"
import "unsafe"

func TestInternAcquire(t *testing.T) {
	table := NewIntern()
	one := table.Acquire(strings.Repeat("x", 64))
	two := table.Acquire(strings.Repeat("x", 64))
	if table.Len() != 1 {
		t.Errorf("expected %v, got %v", 1, table.Len())
	} else if table.Refcount(one) != 2 {
		t.Errorf("expected %v, got %v", 2, table.Refcount(one))
	}
	// equal values share one canonical copy.
	if unsafe.StringData(one) != unsafe.StringData(two) {
		t.Errorf("expected one canonical copy, got two")
	}
	table.Acquire("y")
	if table.Len() != 2 {
		t.Errorf("expected %v, got %v", 2, table.Len())
	}
}

func TestInternRelease(t *testing.T) {
	table := NewIntern()
	value := table.Acquire("hello")
	table.Acquire("hello")
	table.Release(value)
	if table.Refcount(value) != 1 {
		t.Errorf("expected %v, got %v", 1, table.Refcount(value))
	}
	// erased at zero.
	table.Release(value)
	if table.Len() != 0 {
		t.Errorf("expected %v, got %v", 0, table.Len())
	} else if table.Refcount(value) != 0 {
		t.Errorf("expected %v, got %v", 0, table.Refcount(value))
	}
	// a fresh acquire after erasure starts over at one.
	table.Acquire("hello")
	if table.Refcount("hello") != 1 {
		t.Errorf("expected %v, got %v", 1, table.Refcount("hello"))
	}
	table.Release("never-acquired") // no-op
}

func BenchmarkInternAcquire(b *testing.B) {
	table := NewIntern()
	table.Acquire("benchmark-value")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Acquire("benchmark-value")
	}
}

func BenchmarkInternRelease(b *testing.B) {
	table := NewIntern()
	for i := 0; i < b.N+1; i++ {
		table.Acquire("benchmark-value")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		table.Release("benchmark-value")
	}
}
