package bag

import "fmt"

//go:generate go run ../tools/gen-enum -type=Kind -generate-flag -text

// Kind selects the backing of a bag built with New.
type Kind uint8

const (
	_          Kind = iota
	KindArray       // name=array
	KindLinked      // name=linked
)

// New returns an empty bag with the backing named by kind. Options only apply
// to array bags.
func New[T comparable](kind Kind, opts ...Option) (Interface[T], error) {
	switch kind {
	case KindArray:
		return NewArrayBag[T](opts...), nil
	case KindLinked:
		return NewLinkedBag[T](), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
}
