package listadt

// Reader is the read-only capability shared by every list.
//
// Accept Reader in your own functions when they only inspect a list, so that
// callers can pass either flavour.
type Reader[T comparable] interface {
	// Size returns the number of elements.
	Size() int

	// Get returns the element at index, or an error wrapping
	// [ErrIndexOutOfRange] when index is outside [0, Size()-1].
	Get(index int) (T, error)
}

// List is the read-write capability. It extends [Reader] with in-place
// mutators.
type List[T comparable] interface {
	Reader[T]

	// AddFront inserts elem before the first element.
	AddFront(elem T)

	// AddBack appends elem after the last element.
	AddBack(elem T)

	// Add inserts elem so that it occupies index, shifting later elements
	// back by one. index may equal Size(). Returns an error wrapping
	// [ErrIndexOutOfRange] when index is outside [0, Size()].
	Add(index int, elem T) error

	// Remove deletes the first element equal to elem and reports whether
	// one was found. Removing an absent element is a no-op.
	Remove(elem T) bool
}

// Freezer is implemented by lists that can produce an immutable copy of
// themselves.
type Freezer[T comparable] interface {
	ToImmutable() *Immutable[T]
}

// Thawer is implemented by lists that can produce a mutable copy of
// themselves.
type Thawer[T comparable] interface {
	ToMutable() *Mutable[T]
}

var (
	_ List[int]    = (*Mutable[int])(nil)
	_ Freezer[int] = (*Mutable[int])(nil)
	_ Reader[int]  = (*Immutable[int])(nil)
	_ Thawer[int]  = (*Immutable[int])(nil)
)
