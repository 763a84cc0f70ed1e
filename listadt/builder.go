package listadt

// Builder accumulates elements for an [Immutable].
//
// Build snapshots the elements added so far. A Builder can keep accepting
// elements after Build; lists it already produced are unaffected:
//
//	b := listadt.NewBuilder[int]().Add(1).Add(2)
//	l1 := b.Build()        // [1,2]
//	l2 := b.Add(3).Build() // [1,2,3]; l1 is still [1,2]
//
// The zero value is an empty Builder ready to use.
type Builder[T comparable] struct {
	buf Mutable[T]
}

// NewBuilder returns an empty Builder.
func NewBuilder[T comparable]() *Builder[T] {
	return &Builder[T]{}
}

// Add appends elem and returns b for chaining.
func (b *Builder[T]) Add(elem T) *Builder[T] {
	b.buf.AddBack(elem)
	return b
}

// AddAll appends every element of elems, in order, and returns b.
func (b *Builder[T]) AddAll(elems ...T) *Builder[T] {
	for _, e := range elems {
		b.buf.AddBack(e)
	}
	return b
}

// Size returns the number of elements added so far.
func (b *Builder[T]) Size() int { return b.buf.Size() }

// Build returns a new Immutable holding a copy of the elements added so far.
func (b *Builder[T]) Build() *Immutable[T] {
	return wrapImmutable(b.buf.seq.Clone())
}
