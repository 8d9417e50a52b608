package bag

// Union returns a new array bag holding every entry of other followed by
// every entry of b. Duplicates from both sides are kept, so each value's
// multiplicity is the sum of its multiplicities in b and other.
func Union[T comparable](b, other Interface[T]) *ArrayBag[T] {
	result := newResult(b, other)

	fill(result, other.ToSlice())
	fill(result, b.ToSlice())

	return result
}

// Intersection returns a new array bag holding, in order, each entry of other
// for which b.Contains reports true.
//
// Every occurrence in other is gated independently: if other holds three
// copies of a value and b holds one, the result holds three.
func Intersection[T comparable](b, other Interface[T]) *ArrayBag[T] {
	result := newResult(b, other)

	for _, entry := range other.ToSlice() {
		if b.Contains(entry) {
			mustAdd(result, entry)
		}
	}

	return result
}

// Difference returns the union of b and other with two copies removed for
// every entry of other that b contains: one for the copy contributed by other
// and one for the copy contributed by b. Removals beyond the copies still
// present are no-ops.
//
// The resulting multiplicity of a value v is max(b(v)-other(v), 0) when b
// holds v and other(v) otherwise.
func Difference[T comparable](b, other Interface[T]) *ArrayBag[T] {
	result := Union(b, other)

	for _, entry := range other.ToSlice() {
		if b.Contains(entry) {
			result.Remove(entry)
			result.Remove(entry)
		}
	}

	return result
}

// newResult returns a fixed-capacity bag large enough for both operands.
func newResult[T comparable](b, other Interface[T]) *ArrayBag[T] {
	return NewArrayBag[T](WithCapacity(b.Length() + other.Length()))
}

func fill[T comparable](b *ArrayBag[T], entries []T) {
	for _, entry := range entries {
		mustAdd(b, entry)
	}
}

// mustAdd panics if the result bag overflows. Results are sized to hold both
// operands, so an overflow means an operand's Length disagrees with its
// contents.
func mustAdd[T comparable](b *ArrayBag[T], entry T) {
	if err := b.Add(entry); err != nil {
		panic(err)
	}
}
