package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/step"
)

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	a, err := r.Get("bubble")
	require.NoError(t, err)
	assert.Equal(t, "bubble", a.Producer().Name())

	_, err = r.Get("bogo")
	assert.EqualError(t, err, "unknown algorithm: bogo")
}

func TestRegistry_Names(t *testing.T) {
	names := NewRegistry().Names()
	assert.Equal(t, []string{
		"binary", "bubble", "dijkstra", "insertion", "interpolation", "jump",
		"kruskal", "linear", "linkedlist", "merge", "quick", "selection", "swap",
	}, names)
}

func TestRegistry_ByLevel(t *testing.T) {
	r := NewRegistry()
	var total int
	for _, l := range Levels {
		for _, a := range r.ByLevel(l) {
			assert.Equal(t, l, a.Level)
			total++
		}
	}
	assert.Equal(t, len(r.Names()), total)
	assert.Len(t, r.ByLevel(Advanced), 2)
}

func TestRegistry_DefaultsSatisfyProducers(t *testing.T) {
	r := NewRegistry()
	rng := rand.New(rand.NewSource(1))

	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			a, err := r.Get(name)
			require.NoError(t, err)
			assert.Equal(t, name, a.Producer().Name())
			assert.NotZero(t, a.Speed)

			in, err := a.Default(rng).Load()
			require.NoError(t, err)
			require.False(t, in.Empty())

			params := a.Params
			if a.NeedsTarget {
				params = params.WithTarget(firstValue(in))
			}
			require.NoError(t, a.Producer().Validate(in, params))

			var last step.Step
			for s := range a.Producer().Steps(in, params, nil) {
				last = s
			}
			assert.True(t, last.Terminal)
		})
	}
}

func TestRegistry_LinkedListDefaultIsEditable(t *testing.T) {
	a, err := NewRegistry().Get("linkedlist")
	require.NoError(t, err)

	src, ok := a.Default(rand.New(rand.NewSource(5))).(*input.ListSource)
	require.True(t, ok, "linked list default must be a list source")
	assert.Len(t, src.Values(), 6)

	src.Append(1)
	in, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, in.List.Len())
}

func firstValue(in step.Input) int {
	if in.List != nil {
		return in.List.Head.Value
	}
	return in.Values[0]
}
