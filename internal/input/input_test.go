package input

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/step"
)

func TestParseValues(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"5,1,4,2,8", []int{5, 1, 4, 2, 8}},
		{" 3 , x, 7,,-2 ", []int{3, 7, -2}},
		{"a,b", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValues(tt.in))
		})
	}
}

func TestFormatValues(t *testing.T) {
	assert.Equal(t, "5,1,4", FormatValues([]int{5, 1, 4}))
	assert.Equal(t, []int{5, 1, 4}, ParseValues(FormatValues([]int{5, 1, 4})))
}

func TestParseEdges(t *testing.T) {
	edges, err := ParseEdges("0-1:2, 1-2:1,")
	require.NoError(t, err)
	assert.Equal(t, []step.Edge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 1}}, edges)
	assert.Equal(t, "0-1:2,1-2:1", FormatEdges(edges))

	for _, bad := range []string{"0-1", "01:2", "a-1:2", "0-b:2", "0-1:w"} {
		_, err := ParseEdges(bad)
		assert.ErrorIs(t, err, ErrBadEdge, bad)
	}
}

func TestRandomArray(t *testing.T) {
	src := RandomArray{Size: 50, Min: 10, Max: 109, Rand: rand.New(rand.NewSource(1))}

	first, err := src.Load()
	require.NoError(t, err)
	require.Len(t, first.Values, 50)
	for _, v := range first.Values {
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 109)
	}

	second, err := src.Load()
	require.NoError(t, err)
	assert.NotEqual(t, first.Values, second.Values, "reload should draw new data")

	sorted, err := RandomArray{Size: 16, Min: 0, Max: 99, Sorted: true, Rand: rand.New(rand.NewSource(2))}.Load()
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(sorted.Values))

	_, err = RandomArray{Size: 3, Min: 5, Max: 1}.Load()
	assert.ErrorIs(t, err, ErrBadRange)
}

func TestStepped(t *testing.T) {
	in, err := Stepped{Size: 4, Start: 10, Step: 10}.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40}, in.Values)
}

func TestFixed(t *testing.T) {
	vals := []int{3, 1, 2}
	in, err := Fixed{Values: vals, Sorted: true}.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, in.Values)
	assert.Equal(t, []int{3, 1, 2}, vals)
}

func TestListSource(t *testing.T) {
	src := NewListSource([]int{15, 42})
	src.Append(8)
	require.NoError(t, src.Delete(0))
	assert.ErrorIs(t, src.Delete(5), step.ErrInvalidIndex)

	in, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, []int{42, 8}, in.List.Values())

	in.List.Append(1)
	assert.Equal(t, []int{42, 8}, src.Values())
}

func TestRandomList(t *testing.T) {
	src := RandomList(6, 10, 99, rand.New(rand.NewSource(2)))
	in, err := src.Load()
	require.NoError(t, err)
	require.Equal(t, 6, in.List.Len())
	for _, v := range in.List.Values() {
		assert.GreaterOrEqual(t, v, 10)
		assert.LessOrEqual(t, v, 99)
	}

	src.Append(5)
	assert.Len(t, src.Values(), 7)

	assert.Equal(t, []int{4, 4}, RandomList(2, 4, 1, nil).Values())
	assert.Empty(t, RandomList(-1, 0, 9, nil).Values())
}

func TestRandomGraph(t *testing.T) {
	src := RandomGraph{Nodes: 6, Extra: 4, MaxWeight: 9, Rand: rand.New(rand.NewSource(4))}

	in, err := src.Load()
	require.NoError(t, err)
	require.NoError(t, in.Graph.Validate())
	assert.Len(t, in.Graph.Edges, 5+4)
	for _, e := range in.Graph.Edges {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Weight, 1)
		assert.LessOrEqual(t, e.Weight, 9)
	}

	_, err = RandomGraph{Nodes: 0, MaxWeight: 3}.Load()
	assert.ErrorIs(t, err, ErrBadRange)
}

func TestGraphSource(t *testing.T) {
	g := DemoGraph()
	in, err := GraphSource{Graph: g}.Load()
	require.NoError(t, err)

	in.Graph.Edges[0].Weight = 99
	assert.Equal(t, 2, g.Edges[0].Weight)

	_, err = GraphSource{}.Load()
	assert.ErrorIs(t, err, step.ErrEmptyInput)
}

func TestClampSpeed(t *testing.T) {
	tests := []struct {
		in, want time.Duration
	}{
		{0, MinSpeed},
		{50 * time.Millisecond, MinSpeed},
		{400 * time.Millisecond, 400 * time.Millisecond},
		{2 * time.Second, MaxSpeed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampSpeed(tt.in))
	}
}
