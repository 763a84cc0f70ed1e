package listadt_test

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-listadt/listadt"
)

func TestString(t *testing.T) {
	assert.Equal(t, "[0,1,2]", listadt.MutableOf(0, 1, 2).String())
	assert.Equal(t, `["a","b"]`, listadt.ImmutableOf("a", "b").String())
	assert.Equal(t, "[]", listadt.NewMutable[int]().String())
}

func TestJSON(t *testing.T) {
	type doc struct {
		Draft  *listadt.Mutable[int]   `json:"draft"`
		Frozen *listadt.Immutable[int] `json:"frozen"`
	}
	in := doc{Draft: listadt.MutableOf(1, 2), Frozen: listadt.ImmutableOf(3)}
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"draft":[1,2],"frozen":[3]}`, string(b))

	l := listadt.MutableOf(9)
	require.NoError(t, json.Unmarshal([]byte(`[4,5,6]`), l))
	assert.Equal(t, []int{4, 5, 6}, elems[int](t, l))

	err = json.Unmarshal([]byte(`{"x":1}`), l)
	assert.Error(t, err)
	assert.Equal(t, []int{4, 5, 6}, elems[int](t, l))
}

func TestYAML(t *testing.T) {
	type doc struct {
		Draft  *listadt.Mutable[string]   `yaml:"draft"`
		Frozen *listadt.Immutable[string] `yaml:"frozen"`
	}
	b, err := yaml.Marshal(doc{
		Draft:  listadt.MutableOf("a"),
		Frozen: listadt.ImmutableOf("b", "c"),
	})
	require.NoError(t, err)
	assert.Equal(t, "draft:\n    - a\nfrozen:\n    - b\n    - c\n", string(b))

	var out struct {
		Draft listadt.Mutable[string] `yaml:"draft"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("draft: [x, y]\n"), &out))
	assert.Equal(t, []string{"x", "y"}, elems[string](t, &out.Draft))

	err = yaml.Unmarshal([]byte("draft: {a: 1}\n"), &out)
	assert.Error(t, err)
	assert.Equal(t, 2, out.Draft.Size())
}

func TestRenderTree(t *testing.T) {
	out := listadt.RenderTree[string]("names", listadt.ImmutableOf("ann", "bob"))
	assert.Contains(t, out, "names")
	assert.Contains(t, out, "size: 2")
	assert.Contains(t, out, "[0] ann")
	assert.Contains(t, out, "[1] bob")
	assert.Less(t, strings.Index(out, "[0] ann"), strings.Index(out, "[1] bob"))
}

func TestFingerprint(t *testing.T) {
	a, err := listadt.ImmutableOf(1, 2, 3).Fingerprint()
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := listadt.Fingerprint[int](listadt.MutableOf(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, a, b, "flavour must not affect the fingerprint")

	c, err := listadt.ImmutableOf(1, 2, 4).Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	// Length prefixes keep element boundaries distinct.
	d, err := listadt.ImmutableOf("ab", "c").Fingerprint()
	require.NoError(t, err)
	e, err := listadt.ImmutableOf("a", "bc").Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, d, e)
}

func TestFingerprintStableAfterSourceChanges(t *testing.T) {
	m := listadt.MutableOf("x")
	frozen := m.ToImmutable()
	before, err := frozen.Fingerprint()
	require.NoError(t, err)
	m.AddBack("y")
	after, err := frozen.Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
