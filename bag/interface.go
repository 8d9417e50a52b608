// Package bag implements a multiset (bag) in two backings, a fixed-capacity
// array and a singly linked list, behind a single contract.
//
// Union, intersection and difference are built only from the contract's
// primitives and always produce a new array-backed bag.
package bag

type Interface[T comparable] interface {
	// Adds an entry to the bag.
	Add(T) error

	// Removes one unspecified entry from the bag and returns it. Reports
	// false if the bag is empty.
	RemoveAny() (T, bool)

	// Removes one occurrence of the provided entry.
	Remove(T) bool

	// Removes all entries from the bag, reporting whether the bag is empty
	// afterwards.
	Clear() bool

	// Returns whether the provided entry is in the bag.
	Contains(T) bool

	// Returns the number of times the provided entry appears in the bag.
	Frequency(T) int

	// Returns the number of entries in the bag.
	Length() int

	// Returns whether the bag has no entries.
	IsEmpty() bool

	// Returns whether the bag cannot accept another entry.
	IsFull() bool

	// Iterates over entries in enumeration order and executes the provided
	// function against each entry. Returning true stops the iteration.
	ForEach(func(T) bool)

	// Provides a string representation of the bag.
	String() string

	// Returns the entries as a newly allocated slice in enumeration order.
	ToSlice() []T

	// Returns a new bag holding every entry of the provided bag followed by
	// every entry of this bag.
	Union(Interface[T]) Interface[T]

	// Returns a new bag holding each entry of the provided bag that is
	// contained in this bag.
	//
	// Note: containment is checked per occurrence, so multiplicities come from
	// the provided bag rather than the minimum of both.
	Intersection(Interface[T]) Interface[T]

	// Returns a new bag built from the union of both bags, with two copies
	// removed for every entry of the provided bag that this bag contains.
	Difference(Interface[T]) Interface[T]
}
