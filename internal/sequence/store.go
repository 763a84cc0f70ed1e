// Package sequence implements the ordered, index-addressable backing store
// shared by the list types in package listadt.
//
// A [Store] is a growable ring buffer: inserting at either end is O(1)
// amortized, positional reads are O(1), and inserting or removing in the
// middle shifts whichever side of the buffer is shorter.
//
// The store never hands out its internal buffer. Every operation that
// produces another store ([Store.Clone], [Map], [From]) allocates new storage.
package sequence

import "golang.org/x/exp/slices"

const minCapacity = 4

// Store is an ordered sequence of T. The zero value is an empty store ready
// to use.
type Store[T comparable] struct {
	buf  []T
	head int
	n    int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// WithCapacity returns an empty store with room for n elements.
func WithCapacity[T comparable](n int) Store[T] {
	if n < 0 {
		n = 0
	}
	return Store[T]{buf: make([]T, n)}
}

// From returns a store holding a copy of values, in order.
func From[T comparable](values []T) Store[T] {
	return Store[T]{buf: slices.Clone(values), n: len(values)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Size returns the number of elements held.
func (s *Store[T]) Size() int { return s.n }

// Get returns the element at index. It returns the zero value and false when
// index is outside [0, Size()-1].
func (s *Store[T]) Get(index int) (T, bool) {
	if index < 0 || index >= s.n {
		var zero T
		return zero, false
	}
	return s.buf[s.at(index)], true
}

// IndexOf returns the index of the first element equal to v, or -1.
func (s *Store[T]) IndexOf(v T) int {
	for i := 0; i < s.n; i++ {
		if s.buf[s.at(i)] == v {
			return i
		}
	}
	return -1
}

// Values returns a new slice with every element in index order.
func (s *Store[T]) Values() []T {
	out := make([]T, s.n)
	s.copyTo(out)
	return out
}

// Clone returns an independent copy of s.
func (s *Store[T]) Clone() Store[T] {
	return Store[T]{buf: s.Values(), n: s.n}
}

// Map returns a new store holding fn(v) for every element v of s, in index
// order. s is left unchanged.
func Map[T, R comparable](s *Store[T], fn func(T) R) Store[R] {
	out := WithCapacity[R](s.n)
	for i := 0; i < s.n; i++ {
		out.buf[i] = fn(s.buf[s.at(i)])
	}
	out.n = s.n
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Writes
// ─────────────────────────────────────────────────────────────────────────────

// AddFront inserts v before the first element.
func (s *Store[T]) AddFront(v T) {
	s.ensureRoom()
	s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
	s.buf[s.head] = v
	s.n++
}

// AddBack appends v after the last element.
func (s *Store[T]) AddBack(v T) {
	s.ensureRoom()
	s.buf[s.at(s.n)] = v
	s.n++
}

// Add inserts v so that it occupies index, shifting later elements back by
// one. index may equal Size(). It returns false, leaving s unchanged, when
// index is outside [0, Size()].
func (s *Store[T]) Add(index int, v T) bool {
	switch {
	case index < 0 || index > s.n:
		return false
	case index == 0:
		s.AddFront(v)
		return true
	case index == s.n:
		s.AddBack(v)
		return true
	}

	s.ensureRoom()
	if index < s.n/2 {
		// Open a slot at the front and slide the leading elements down.
		s.head = (s.head - 1 + len(s.buf)) % len(s.buf)
		s.n++
		for j := 0; j < index; j++ {
			s.buf[s.at(j)] = s.buf[s.at(j+1)]
		}
	} else {
		s.n++
		for j := s.n - 1; j > index; j-- {
			s.buf[s.at(j)] = s.buf[s.at(j-1)]
		}
	}
	s.buf[s.at(index)] = v
	return true
}

// Remove deletes the first element equal to v and reports whether one was
// found. A store without a match is left unchanged.
func (s *Store[T]) Remove(v T) bool {
	i := s.IndexOf(v)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Buffer management
// ─────────────────────────────────────────────────────────────────────────────

// at maps a logical index to a position in buf.
func (s *Store[T]) at(i int) int {
	return (s.head + i) % len(s.buf)
}

func (s *Store[T]) removeAt(i int) {
	var zero T
	if i < s.n/2 {
		for j := i; j > 0; j-- {
			s.buf[s.at(j)] = s.buf[s.at(j-1)]
		}
		s.buf[s.head] = zero
		s.head = (s.head + 1) % len(s.buf)
	} else {
		for j := i; j < s.n-1; j++ {
			s.buf[s.at(j)] = s.buf[s.at(j+1)]
		}
		s.buf[s.at(s.n-1)] = zero
	}
	s.n--
	if s.n == 0 {
		s.head = 0
	}
}

// ensureRoom grows buf so that at least one more element fits.
func (s *Store[T]) ensureRoom() {
	if s.n < len(s.buf) {
		return
	}
	size := 2 * len(s.buf)
	if size < minCapacity {
		size = minCapacity
	}
	grown := make([]T, size)
	s.copyTo(grown)
	s.buf = grown
	s.head = 0
}

// copyTo copies the elements in index order into dst, which must have room
// for Size() elements.
func (s *Store[T]) copyTo(dst []T) {
	if s.n == 0 {
		return
	}
	if end := s.head + s.n; end <= len(s.buf) {
		copy(dst, s.buf[s.head:end])
		return
	}
	k := copy(dst, s.buf[s.head:])
	copy(dst[k:], s.buf[:s.n-k])
}
