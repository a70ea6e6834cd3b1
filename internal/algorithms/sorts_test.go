package algorithms

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/algoviz/internal/step"
)

func collect(p step.Producer, in step.Input, params step.Params, tok *step.Token) []step.Step {
	var out []step.Step
	for s := range p.Steps(in, params, tok) {
		out = append(out, s)
	}
	return out
}

var sorters = []step.Producer{Bubble{}, Selection{}, Insertion{}, Merge{}, Quick{}}

func TestSorters_ScenarioA(t *testing.T) {
	in := step.Input{Values: []int{5, 1, 4, 2, 8}}

	for _, p := range sorters {
		t.Run(p.Name(), func(t *testing.T) {
			steps := collect(p, in, step.Params{}, nil)
			require.NotEmpty(t, steps)

			last := steps[len(steps)-1]
			assert.True(t, last.Terminal)
			assert.Equal(t, []int{1, 2, 4, 5, 8}, last.Values())
			for _, e := range last.Array {
				assert.Equal(t, step.RoleSorted, e.Role)
			}
			assert.Equal(t, []int{5, 1, 4, 2, 8}, in.Values, "input modified")
		})
	}
}

func TestSorters_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, p := range sorters {
		t.Run(p.Name(), func(t *testing.T) {
			for trial := 0; trial < 40; trial++ {
				n := 1 + rng.Intn(14)
				vals := make([]int, n)
				for i := range vals {
					vals[i] = rng.Intn(20)
				}
				want := slices.Clone(vals)
				slices.Sort(want)

				steps := collect(p, step.Input{Values: vals}, step.Params{}, nil)
				require.NotEmpty(t, steps)

				for i, s := range steps {
					require.Len(t, s.Array, n)
					got := s.Values()
					slices.Sort(got)
					require.Equal(t, want, got, "step %d is not a permutation of %v", i, vals)
					for _, e := range s.Array {
						require.True(t, e.Role.Valid(step.KindArray), "role %q", e.Role)
					}
					require.Equal(t, i == len(steps)-1, s.Terminal)
				}
				assert.Equal(t, want, steps[len(steps)-1].Values())
			}
		})
	}
}

func TestSorters_SingleElement(t *testing.T) {
	for _, p := range sorters {
		t.Run(p.Name(), func(t *testing.T) {
			steps := collect(p, step.Input{Values: []int{42}}, step.Params{}, nil)
			require.Len(t, steps, 1)
			assert.True(t, steps[0].Terminal)
			assert.Equal(t, step.RoleSorted, steps[0].Array[0].Role)
		})
	}
}

func TestSorters_EmptyInput(t *testing.T) {
	for _, p := range sorters {
		t.Run(p.Name(), func(t *testing.T) {
			assert.ErrorIs(t, p.Validate(step.Input{}, step.Params{}), step.ErrEmptyInput)
			assert.Empty(t, collect(p, step.Input{}, step.Params{}, nil))
		})
	}
}

func TestSorters_Cancellation(t *testing.T) {
	in := step.Input{Values: []int{9, 3, 7, 1, 8, 2, 6}}

	for _, p := range sorters {
		t.Run(p.Name(), func(t *testing.T) {
			for k := 1; k <= 4; k++ {
				tok := step.NewToken()
				var got []step.Step
				for s := range p.Steps(in, step.Params{}, tok) {
					got = append(got, s)
					if len(got) == k {
						tok.Cancel()
					}
				}
				require.Len(t, got, k)
				for _, s := range got {
					assert.False(t, s.Terminal)
				}
			}
		})
	}
}

func TestBubble_StableCounters(t *testing.T) {
	steps := collect(Bubble{}, step.Input{Values: []int{3, 2, 1}}, step.Params{}, nil)
	last := steps[len(steps)-1]

	assert.Equal(t, 3, last.Stats.Comparisons)
	assert.Equal(t, 3, last.Stats.Swaps)
}

func TestBubble_EqualElementsNotSwapped(t *testing.T) {
	steps := collect(Bubble{}, step.Input{Values: []int{4, 4, 4}}, step.Params{}, nil)
	for _, s := range steps {
		assert.False(t, s.Has(step.RoleSwapped))
	}
}

func TestQuick_PivotPlacement(t *testing.T) {
	steps := collect(Quick{}, step.Input{Values: []int{3, 1, 2}}, step.Params{}, nil)

	var placed bool
	for _, s := range steps {
		if s.Annotation == "Pivot 2 placed at index 1" {
			placed = true
			assert.Equal(t, step.RoleSorted, s.Array[1].Role)
		}
	}
	assert.True(t, placed)
}

func TestSwap(t *testing.T) {
	in := step.Input{Values: []int{5, 3, 8, 1, 6}}
	p := step.Params{Swap: [2]int{1, 3}}

	steps := collect(Swap{}, in, p, nil)
	require.Len(t, steps, 3)

	assert.Equal(t, "Swapping index 1 and 3", steps[0].Annotation)
	assert.Equal(t, step.RoleComparing, steps[0].Array[1].Role)
	assert.Equal(t, []int{5, 3, 8, 1, 6}, steps[0].Values())

	assert.Equal(t, "Swapped index 1 and 3", steps[1].Annotation)
	assert.Equal(t, step.RoleSwapped, steps[1].Array[3].Role)
	assert.Equal(t, []int{5, 1, 8, 3, 6}, steps[1].Values())

	assert.True(t, steps[2].Terminal)
	for _, e := range steps[2].Array {
		assert.Equal(t, step.RoleDefault, e.Role)
	}
}

func TestSwap_Validate(t *testing.T) {
	in := step.Input{Values: []int{1, 2, 3}}
	tests := []struct {
		name string
		pair [2]int
		err  error
	}{
		{"ok", [2]int{0, 2}, nil},
		{"same", [2]int{1, 1}, step.ErrInvalidIndex},
		{"negative", [2]int{-1, 1}, step.ErrInvalidIndex},
		{"past end", [2]int{0, 3}, step.ErrInvalidIndex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Swap{}.Validate(in, step.Params{Swap: tt.pair})
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
