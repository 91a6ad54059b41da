package pompeii_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perlw/soda/pompeii"
)

func TestPropertySetZeroValue(t *testing.T) {
	var p pompeii.PropertySet

	require.True(t, p.Empty())
	require.Equal(t, 0, p.Count())
	require.Nil(t, p.Names())
	require.Equal(t, "[]", p.String())
	require.Equal(t, p, pompeii.NewPropertySet())
}

func TestPropertySetCopiesInput(t *testing.T) {
	names := []string{"a", "b"}
	p := pompeii.NewPropertySet(names...)
	names[0] = "z"

	require.Equal(t, []string{"a", "b"}, p.Names())

	out := p.Names()
	out[1] = "z"
	require.Equal(t, "b", p.At(1))
}

func TestConcatPropertySetsKeepsOrder(t *testing.T) {
	p := pompeii.ConcatPropertySets(
		pompeii.NewPropertySet("a", "b"),
		pompeii.PropertySet{},
		pompeii.NewPropertySet("c", "a"),
	)

	require.Equal(t, 4, p.Count())
	require.Equal(t, []string{"a", "b", "c", "a"}, p.Names())
	require.True(t, p.Contains("c"))
	require.False(t, p.Contains("d"))
	require.Equal(t, "[a b c a]", p.String())
}

func TestConcatPropertySetsEmpty(t *testing.T) {
	require.True(t, pompeii.ConcatPropertySets().Empty())
	require.True(t, pompeii.ConcatPropertySets(pompeii.PropertySet{}, pompeii.NewPropertySet()).Empty())
}

func TestPropertySetDedup(t *testing.T) {
	p := pompeii.NewPropertySet("b", "a", "b", "c", "a").Dedup()
	require.Equal(t, []string{"b", "a", "c"}, p.Names())
	require.True(t, pompeii.PropertySet{}.Dedup().Empty())
}
