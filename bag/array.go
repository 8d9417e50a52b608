package bag

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// ArrayBag is a bag backed by a contiguous slice of fixed capacity. Entries
// in [0, n) are live; the rest of the backing slice holds zero values.
type ArrayBag[T comparable] struct {
	entries   []T
	n         int
	resizable bool
	ok        bool
}

// Ensure ArrayBag satisfies bag.Interface at compile-time.
var _ Interface[string] = (*ArrayBag[string])(nil)

// NewArrayBag returns an empty array bag. The bag holds DefaultCapacity
// entries unless WithCapacity says otherwise.
func NewArrayBag[T comparable](opts ...Option) *ArrayBag[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &ArrayBag[T]{
		entries:   make([]T, o.capacity),
		resizable: o.resizable,
		ok:        true,
	}
}

// Add stores entry after the last live entry. It returns an error wrapping
// ErrCapacityExceeded if the bag is full and cannot grow.
func (b *ArrayBag[T]) Add(entry T) error {
	b.checkIntegrity()

	if b.IsFull() && !b.grow() {
		return fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, len(b.entries))
	}

	b.entries[b.n] = entry
	b.n++

	return nil
}

// RemoveAny removes and returns the last live entry.
func (b *ArrayBag[T]) RemoveAny() (T, bool) {
	b.checkIntegrity()

	return b.removeAt(b.n - 1)
}

// Remove removes the first occurrence of entry by moving the last live entry
// into its slot.
func (b *ArrayBag[T]) Remove(entry T) bool {
	b.checkIntegrity()

	_, ok := b.removeAt(b.indexOf(entry))

	return ok
}

// Clear does nothing; an array bag is only emptied through removals. It
// reports whether the bag is empty.
func (b *ArrayBag[T]) Clear() bool {
	b.checkIntegrity()

	return b.IsEmpty()
}

// Contains determines whether entry is in the bag.
func (b *ArrayBag[T]) Contains(entry T) bool {
	b.checkIntegrity()

	return b.indexOf(entry) > -1
}

// Frequency returns the number of times entry appears in the bag.
func (b *ArrayBag[T]) Frequency(entry T) int {
	b.checkIntegrity()

	count := 0

	for _, e := range b.entries[:b.n] {
		if e == entry {
			count++
		}
	}

	return count
}

// Length returns the number of live entries.
func (b *ArrayBag[T]) Length() int {
	return b.n
}

// Capacity returns the number of entries the bag can hold before it has to
// grow or fail.
func (b *ArrayBag[T]) Capacity() int {
	return len(b.entries)
}

// IsEmpty determines whether the bag has no entries.
func (b *ArrayBag[T]) IsEmpty() bool {
	return b.n == 0
}

// IsFull determines whether every slot of the backing slice is live.
func (b *ArrayBag[T]) IsFull() bool {
	return b.n >= len(b.entries)
}

// ForEach iterates over entries in storage order and executes the provided
// function against each entry.
func (b *ArrayBag[T]) ForEach(fn func(T) bool) {
	b.checkIntegrity()

	for _, entry := range b.entries[:b.n] {
		if fn(entry) {
			break
		}
	}
}

// String provides a string representation of the bag.
func (b *ArrayBag[T]) String() string {
	var sb strings.Builder

	sb.WriteString("ArrayBag")
	sb.WriteString(Format(b.ToSlice()))

	return sb.String()
}

// ToSlice returns the live entries in storage order, oldest first.
func (b *ArrayBag[T]) ToSlice() []T {
	b.checkIntegrity()

	return slices.Clone(b.entries[:b.n])
}

func (b *ArrayBag[T]) Union(other Interface[T]) Interface[T] {
	return Union[T](b, other)
}

func (b *ArrayBag[T]) Intersection(other Interface[T]) Interface[T] {
	return Intersection[T](b, other)
}

func (b *ArrayBag[T]) Difference(other Interface[T]) Interface[T] {
	return Difference[T](b, other)
}

func (b *ArrayBag[T]) indexOf(entry T) int {
	return slices.Index(b.entries[:b.n], entry)
}

func (b *ArrayBag[T]) removeAt(i int) (entry T, ok bool) {
	if b.IsEmpty() || i < 0 {
		return entry, false
	}

	var zero T

	last := b.n - 1
	entry = b.entries[i]
	b.entries[i] = b.entries[last]
	b.entries[last] = zero
	b.n--

	return entry, true
}

// grow doubles the backing slice of a resizing bag, capped at MaxCapacity.
func (b *ArrayBag[T]) grow() bool {
	if !b.resizable || len(b.entries) >= MaxCapacity {
		return false
	}

	size := len(b.entries) * 2
	if size == 0 {
		size = 1
	}

	if size > MaxCapacity {
		size = MaxCapacity
	}

	entries := make([]T, size)
	copy(entries, b.entries[:b.n])
	b.entries = entries

	return true
}

func (b *ArrayBag[T]) checkIntegrity() {
	if !b.ok {
		panic(fmt.Errorf("%w: ArrayBag must be created with NewArrayBag", ErrCorruptedState))
	}
}
