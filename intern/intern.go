// Package intern deduplicates equal valued strings behind reference
// counted cells. Acquiring a value returns its canonical copy, all
// equal values acquired from the same table share one copy in memory,
// which makes held references cheap to compare and store. This is a
// caching concern layered on top of allocation, not an allocator.
//
// Reference counting is manual, every Acquire shall be paired with
// exactly one Release. Types and Functions exported by this package
// are not thread safe.
package intern

// Intern table of canonical values with manual reference counting.
// Cells are erased as soon as their count drops to zero.
type Intern struct {
	cells map[string]*cell
}

type cell struct {
	value string
	refs  int64
}

// NewIntern create an empty intern table.
func NewIntern() *Intern {
	return &Intern{cells: make(map[string]*cell)}
}

// Acquire the canonical copy of value, creating a cell with a
// reference count of one if value was not interned yet, else
// incrementing the count.
func (in *Intern) Acquire(value string) string {
	c, ok := in.cells[value]
	if !ok {
		c = &cell{value: value}
		in.cells[value] = c
	}
	c.refs++
	return c.value
}

// Release one reference on value, the cell is erased once its count
// drops to zero. Value shall have been acquired on this table and
// not released more times than acquired, the contract is trust based
// like the allocator contracts.
func (in *Intern) Release(value string) {
	c, ok := in.cells[value]
	if !ok {
		return
	}
	if c.refs <= 1 {
		delete(in.cells, value)
		return
	}
	c.refs--
}

// Refcount current reference count for value, zero if not interned.
func (in *Intern) Refcount(value string) int64 {
	if c, ok := in.cells[value]; ok {
		return c.refs
	}
	return 0
}

// Len number of canonical values currently interned.
func (in *Intern) Len() int64 {
	return int64(len(in.cells))
}
