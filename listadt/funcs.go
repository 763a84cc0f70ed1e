package listadt

import (
	"golang.org/x/exp/slices"

	"github.com/hasbyte1/go-listadt/internal/sequence"
)

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

// MapMutable returns a new Mutable holding fn(e) for every element e of l,
// in index order. The result and l do not share storage.
func MapMutable[T, R comparable](l *Mutable[T], fn func(T) R) *Mutable[R] {
	return &Mutable[R]{seq: sequence.Map(&l.seq, fn)}
}

// MapImmutable returns a new Immutable holding fn(e) for every element e of
// l, in index order.
func MapImmutable[T, R comparable](l *Immutable[T], fn func(T) R) *Immutable[R] {
	return wrapImmutable(sequence.Map(&l.seq, fn))
}

// Map applies fn to every element of r and returns a list of the same
// flavour: a *Mutable for a *Mutable and a *Immutable for a *Immutable.
// Any other Reader implementation is mapped into a *Immutable.
//
//	var r listadt.Reader[int] = listadt.MutableOf(1, 2, 3)
//	s := listadt.Map(r, strconv.Itoa) // s is a *Mutable[string]
func Map[T, R comparable](r Reader[T], fn func(T) R) Reader[R] {
	switch l := r.(type) {
	case *Mutable[T]:
		return MapMutable(l, fn)
	case *Immutable[T]:
		return MapImmutable(l, fn)
	}
	b := NewBuilder[R]()
	for _, v := range values(r) {
		b.Add(fn(v))
	}
	return b.Build()
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether a and b hold the same elements in the same order.
// The flavour of the lists is not compared.
func Equal[T comparable](a, b Reader[T]) bool {
	if a.Size() != b.Size() {
		return false
	}
	return slices.Equal(values(a), values(b))
}

// values returns a fresh slice with the elements of r in index order.
func values[T comparable](r Reader[T]) []T {
	switch l := r.(type) {
	case *Mutable[T]:
		return l.seq.Values()
	case *Immutable[T]:
		return l.seq.Values()
	}
	out := make([]T, 0, r.Size())
	for i := 0; i < r.Size(); i++ {
		v, err := r.Get(i)
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}
