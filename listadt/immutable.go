package listadt

import "github.com/hasbyte1/go-listadt/internal/sequence"

// Immutable is a read-only list. Its elements are fixed when it is
// constructed: for any valid index, Get always returns the same value.
//
// Build one with [NewBuilder], [ImmutableOf] or [Mutable.ToImmutable].
// The zero value is an empty list.
type Immutable[T comparable] struct {
	seq sequence.Store[T]
}

// NewImmutable returns an empty Immutable.
func NewImmutable[T comparable]() *Immutable[T] {
	return &Immutable[T]{}
}

// ImmutableOf returns an Immutable holding elems, in order.
func ImmutableOf[T comparable](elems ...T) *Immutable[T] {
	return NewBuilder[T]().AddAll(elems...).Build()
}

// wrapImmutable takes ownership of seq without copying. Callers must not
// keep any other reference to seq.
func wrapImmutable[T comparable](seq sequence.Store[T]) *Immutable[T] {
	return &Immutable[T]{seq: seq}
}

// Size returns the number of elements.
func (l *Immutable[T]) Size() int { return l.seq.Size() }

// Get returns the element at index.
func (l *Immutable[T]) Get(index int) (T, error) {
	v, ok := l.seq.Get(index)
	if !ok {
		return v, outOfRange(index, l.seq.Size())
	}
	return v, nil
}

// IndexOf returns the index of the first element equal to elem, or -1.
func (l *Immutable[T]) IndexOf(elem T) int { return l.seq.IndexOf(elem) }

// Contains reports whether some element equals elem.
func (l *Immutable[T]) Contains(elem T) bool { return l.seq.IndexOf(elem) >= 0 }

// ToMutable returns a Mutable holding a copy of the elements. Changes to the
// result are never visible through l.
func (l *Immutable[T]) ToMutable() *Mutable[T] {
	return &Mutable[T]{seq: l.seq.Clone()}
}

// Fingerprint returns the content digest of l. See the package-level
// [Fingerprint].
func (l *Immutable[T]) Fingerprint() (string, error) {
	return Fingerprint[T](l)
}
