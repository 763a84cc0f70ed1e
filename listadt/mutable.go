package listadt

import "github.com/hasbyte1/go-listadt/internal/sequence"

// Mutable is a list that can be changed in place.
//
// A Mutable exclusively owns its storage: lists derived from it through
// [MapMutable] or [Mutable.ToImmutable] never share storage with it.
// The zero value is an empty list ready to use.
type Mutable[T comparable] struct {
	seq sequence.Store[T]
}

// NewMutable returns an empty Mutable.
func NewMutable[T comparable]() *Mutable[T] {
	return &Mutable[T]{}
}

// MutableOf returns a Mutable holding a copy of elems, in order.
func MutableOf[T comparable](elems ...T) *Mutable[T] {
	return &Mutable[T]{seq: sequence.From(elems)}
}

// Size returns the number of elements.
func (l *Mutable[T]) Size() int { return l.seq.Size() }

// Get returns the element at index.
func (l *Mutable[T]) Get(index int) (T, error) {
	v, ok := l.seq.Get(index)
	if !ok {
		return v, outOfRange(index, l.seq.Size())
	}
	return v, nil
}

// IndexOf returns the index of the first element equal to elem, or -1.
func (l *Mutable[T]) IndexOf(elem T) int { return l.seq.IndexOf(elem) }

// Contains reports whether some element equals elem.
func (l *Mutable[T]) Contains(elem T) bool { return l.seq.IndexOf(elem) >= 0 }

// AddFront inserts elem before the first element.
func (l *Mutable[T]) AddFront(elem T) { l.seq.AddFront(elem) }

// AddBack appends elem after the last element.
func (l *Mutable[T]) AddBack(elem T) { l.seq.AddBack(elem) }

// Add inserts elem at index. index == Size() appends.
func (l *Mutable[T]) Add(index int, elem T) error {
	if !l.seq.Add(index, elem) {
		return outOfRange(index, l.seq.Size())
	}
	return nil
}

// Remove deletes the first element equal to elem and reports whether one
// was found.
func (l *Mutable[T]) Remove(elem T) bool { return l.seq.Remove(elem) }

// ToImmutable returns an Immutable holding a copy of the current elements.
// Later changes to l are not visible through the result.
func (l *Mutable[T]) ToImmutable() *Immutable[T] {
	return wrapImmutable(l.seq.Clone())
}
