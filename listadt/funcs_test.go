package listadt_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-listadt/listadt"
)

// fixedReader is a Reader that is neither a Mutable nor an Immutable.
type fixedReader []int

func (f fixedReader) Size() int { return len(f) }

func (f fixedReader) Get(i int) (int, error) {
	if i < 0 || i >= len(f) {
		return 0, listadt.ErrIndexOutOfRange
	}
	return f[i], nil
}

func TestMapMutable(t *testing.T) {
	src := listadt.MutableOf(1, 2, 3)
	mapped := listadt.MapMutable(src, func(n int) string { return strconv.Itoa(n * 10) })

	assert.Equal(t, src.Size(), mapped.Size())
	assert.Equal(t, []string{"10", "20", "30"}, elems[string](t, mapped))

	src.AddBack(4)
	mapped.Remove("10")
	assert.Equal(t, []int{1, 2, 3, 4}, elems[int](t, src))
	assert.Equal(t, []string{"20", "30"}, elems[string](t, mapped))
}

func TestMapImmutable(t *testing.T) {
	src := listadt.ImmutableOf(1, 2, 3, 4)
	mapped := listadt.MapImmutable(src, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []bool{false, true, false, true}, elems[bool](t, mapped))
	for i := 0; i < src.Size(); i++ {
		v, err := src.Get(i)
		require.NoError(t, err)
		w, err := mapped.Get(i)
		require.NoError(t, err)
		assert.Equal(t, v%2 == 0, w)
	}
}

func TestMapCallsConverterOncePerElementInOrder(t *testing.T) {
	var seen []int
	listadt.MapImmutable(listadt.ImmutableOf(3, 1, 2), func(n int) int {
		seen = append(seen, n)
		return n
	})
	assert.Equal(t, []int{3, 1, 2}, seen)
}

func TestMapEmpty(t *testing.T) {
	m := listadt.MapMutable(listadt.NewMutable[int](), strconv.Itoa)
	assert.Equal(t, 0, m.Size())
	m.AddBack("ok")
	assert.Equal(t, 1, m.Size())
}

func TestMapPreservesFlavour(t *testing.T) {
	t.Run("mutable stays mutable", func(t *testing.T) {
		var r listadt.Reader[int] = listadt.MutableOf(1, 2)
		out := listadt.Map(r, strconv.Itoa)
		m, ok := out.(*listadt.Mutable[string])
		require.True(t, ok, "got %T", out)
		assert.Equal(t, []string{"1", "2"}, elems[string](t, m))
	})

	t.Run("immutable stays immutable", func(t *testing.T) {
		var r listadt.Reader[int] = listadt.ImmutableOf(1, 2)
		out := listadt.Map(r, strconv.Itoa)
		_, ok := out.(*listadt.Immutable[string])
		assert.True(t, ok, "got %T", out)
	})

	t.Run("foreign reader becomes immutable", func(t *testing.T) {
		out := listadt.Map[int, int](fixedReader{1, 2, 3}, func(n int) int { return n * n })
		_, ok := out.(*listadt.Immutable[int])
		require.True(t, ok, "got %T", out)
		assert.Equal(t, []int{1, 4, 9}, elems[int](t, out))
	})
}

func TestMapIsDeterministic(t *testing.T) {
	src := listadt.ImmutableOf("a", "bb", "ccc")
	length := func(s string) int { return len(s) }
	assert.True(t, listadt.Equal[int](listadt.MapImmutable(src, length), listadt.MapImmutable(src, length)))
}

func TestEqual(t *testing.T) {
	m := listadt.MutableOf(1, 2, 3)
	i := listadt.ImmutableOf(1, 2, 3)
	assert.True(t, listadt.Equal[int](m, i))
	assert.True(t, listadt.Equal[int](fixedReader{1, 2, 3}, i))
	assert.False(t, listadt.Equal[int](m, listadt.ImmutableOf(1, 2)))
	assert.False(t, listadt.Equal[int](m, listadt.ImmutableOf(1, 3, 2)))
	assert.True(t, listadt.Equal[int](listadt.NewMutable[int](), listadt.NewImmutable[int]()))
}
