package bag

import "strings"

// LinkedBag is a bag backed by a singly linked chain of nodes. New entries
// are prepended, so enumeration runs from the most recent entry to the
// oldest.
//
// The zero value is an empty bag ready to use.
type LinkedBag[T comparable] struct {
	head *node[T]
	n    int
}

type node[T comparable] struct {
	entry T
	next  *node[T]
}

// Ensure LinkedBag satisfies bag.Interface at compile-time.
var _ Interface[string] = (*LinkedBag[string])(nil)

// NewLinkedBag returns a linked bag initialized with the provided entries.
func NewLinkedBag[T comparable](entries ...T) *LinkedBag[T] {
	b := &LinkedBag[T]{}

	for _, entry := range entries {
		_ = b.Add(entry)
	}

	return b
}

// Add links entry in as the new head. It never fails.
func (b *LinkedBag[T]) Add(entry T) error {
	b.head = &node[T]{entry: entry, next: b.head}
	b.n++

	return nil
}

// RemoveAny removes and returns the head entry.
func (b *LinkedBag[T]) RemoveAny() (entry T, ok bool) {
	if b.head == nil {
		return entry, false
	}

	entry = b.head.entry
	b.detachHead()

	return entry, true
}

// Remove removes one occurrence of entry. The head's entry is copied over the
// matching node and the head node is the one unlinked.
func (b *LinkedBag[T]) Remove(entry T) bool {
	match := b.find(entry)
	if match == nil {
		return false
	}

	match.entry = b.head.entry
	b.detachHead()

	return true
}

// Clear removes entries until the bag is empty.
func (b *LinkedBag[T]) Clear() bool {
	for !b.IsEmpty() {
		b.RemoveAny()
	}

	return true
}

// Contains determines whether entry is in the bag.
func (b *LinkedBag[T]) Contains(entry T) bool {
	return b.find(entry) != nil
}

// Frequency returns the number of times entry appears in the bag.
func (b *LinkedBag[T]) Frequency(entry T) int {
	count := 0

	for cur := b.head; cur != nil; cur = cur.next {
		if cur.entry == entry {
			count++
		}
	}

	return count
}

// Length returns the number of entries in the bag.
func (b *LinkedBag[T]) Length() int {
	return b.n
}

// IsEmpty determines whether the bag has no entries.
func (b *LinkedBag[T]) IsEmpty() bool {
	return b.n == 0
}

// IsFull is always false; a linked bag grows until memory runs out.
func (b *LinkedBag[T]) IsFull() bool {
	return false
}

// ForEach iterates over entries from the head and executes the provided
// function against each entry.
func (b *LinkedBag[T]) ForEach(fn func(T) bool) {
	for cur := b.head; cur != nil; cur = cur.next {
		if fn(cur.entry) {
			break
		}
	}
}

// String provides a string representation of the bag.
func (b *LinkedBag[T]) String() string {
	var sb strings.Builder

	sb.WriteString("LinkedBag")
	sb.WriteString(Format(b.ToSlice()))

	return sb.String()
}

// ToSlice returns the entries from the head, most recent first.
func (b *LinkedBag[T]) ToSlice() []T {
	entries := make([]T, 0, b.n)

	for cur := b.head; cur != nil; cur = cur.next {
		entries = append(entries, cur.entry)
	}

	return entries
}

func (b *LinkedBag[T]) Union(other Interface[T]) Interface[T] {
	return Union[T](b, other)
}

func (b *LinkedBag[T]) Intersection(other Interface[T]) Interface[T] {
	return Intersection[T](b, other)
}

func (b *LinkedBag[T]) Difference(other Interface[T]) Interface[T] {
	return Difference[T](b, other)
}

func (b *LinkedBag[T]) find(entry T) *node[T] {
	for cur := b.head; cur != nil; cur = cur.next {
		if cur.entry == entry {
			return cur
		}
	}

	return nil
}

// detachHead unlinks the head node. The caller ensures the bag is not empty.
func (b *LinkedBag[T]) detachHead() {
	old := b.head
	b.head = old.next
	old.next = nil
	b.n--
}
