// Package listadt provides a positionally indexed list in two flavours,
// [Mutable] and [Immutable], built on one private sequence store.
//
// # Capabilities
//
// The read-only capability is [Reader] (Size, Get). [List] extends it with
// the mutators AddFront, AddBack, Add and Remove. Conversions between the two
// flavours are separate interfaces, [Freezer] and [Thawer], implemented only
// by the flavour they convert from:
//
//	l := listadt.NewMutable[int]()
//	l.AddBack(1)
//	l.AddBack(2)
//	l.AddFront(0)             // [0,1,2]
//	frozen := l.ToImmutable() // independent copy
//	l.Remove(1)               // [0,2]; frozen is still [0,1,2]
//
// # Immutability
//
// An [Immutable] has no mutating methods, and no reference to its storage
// ever leaves the package. Every bridge between flavours copies:
// [Mutable.ToImmutable], [Immutable.ToMutable], [Builder.Build], and the map
// functions all allocate a new store. Changing a Mutable or reusing a Builder
// after a conversion is never visible through an Immutable built earlier.
//
// # Building immutable lists
//
//	b := listadt.NewBuilder[string]().Add("a").Add("b")
//	first := b.Build()  // [a b]
//	second := b.Add("c").Build()
//	// first.Size() == 2, second.Size() == 3
//
// # Type-transforming operations
//
// Go methods cannot introduce type parameters, so map is a package-level
// function. [MapMutable] and [MapImmutable] are fully typed; [Map] accepts
// any [Reader] and returns a list of the same flavour:
//
//	names := listadt.MapImmutable(ids, strconv.Itoa)
//
// # Equality and concurrency
//
// Elements must be comparable; Remove, IndexOf and Contains use ==.
// Lists are not safe for concurrent mutation. An Immutable may be read from
// several goroutines at once.
package listadt
