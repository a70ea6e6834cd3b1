package catalog

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/san-kum/algoviz/internal/algorithms"
	"github.com/san-kum/algoviz/internal/input"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

// Level groups algorithms the way the menu lists them.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

var Levels = []Level{Beginner, Intermediate, Advanced}

type Algorithm struct {
	Name  string
	Title string
	Level Level
	Info  string

	NeedsTarget bool
	NeedsSorted bool

	// Speed is the delay the algorithm's page starts with.
	Speed time.Duration
	// Params are the arguments used when the caller supplies none.
	Params step.Params

	Default func(rng *rand.Rand) input.Source
	New     func() step.Producer
}

// Producer returns a fresh producer for the algorithm.
func (a *Algorithm) Producer() step.Producer { return a.New() }

// Controller builds a playback controller that starts at the algorithm's
// speed and parameters. opts are applied after them.
func (a *Algorithm) Controller(src input.Source, opts ...playback.Option) *playback.Controller {
	base := []playback.Option{
		playback.WithName(a.Name),
		playback.WithSpeed(a.Speed),
		playback.WithParams(a.Params),
	}
	return playback.New(a.Producer(), src, append(base, opts...)...)
}

type Registry struct {
	algorithms map[string]*Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{algorithms: make(map[string]*Algorithm)}

	randomArray := func(size, lo, hi int) func(*rand.Rand) input.Source {
		return func(rng *rand.Rand) input.Source {
			return input.RandomArray{Size: size, Min: lo, Max: hi, Rand: rng}
		}
	}
	demoGraph := func(*rand.Rand) input.Source {
		return input.GraphSource{Graph: input.DemoGraph()}
	}

	r.add(&Algorithm{
		Name: "swap", Title: "Swapping Numbers", Level: Beginner,
		Info:    "Exchange two elements of an array in place.",
		Params:  step.Params{Swap: [2]int{0, 1}},
		Default: func(*rand.Rand) input.Source { return input.Fixed{Values: []int{5, 3, 8, 1, 6}} },
		New:     func() step.Producer { return algorithms.Swap{} },
	})

	r.add(&Algorithm{
		Name: "bubble", Title: "Bubble Sort", Level: Intermediate,
		Info:    "Repeatedly swaps adjacent out-of-order elements. O(n^2) time, O(1) space, stable.",
		Default: randomArray(10, 10, 109),
		New:     func() step.Producer { return algorithms.Bubble{} },
	})
	r.add(&Algorithm{
		Name: "selection", Title: "Selection Sort", Level: Intermediate,
		Info:    "Selects the smallest remaining element and moves it to the front. O(n^2) time, O(1) space.",
		Default: randomArray(10, 10, 109),
		New:     func() step.Producer { return algorithms.Selection{} },
	})
	r.add(&Algorithm{
		Name: "insertion", Title: "Insertion Sort", Level: Intermediate,
		Info:    "Grows a sorted prefix by inserting one element at a time. O(n^2) time, O(1) space, stable.",
		Default: randomArray(10, 10, 109),
		New:     func() step.Producer { return algorithms.Insertion{} },
	})
	r.add(&Algorithm{
		Name: "merge", Title: "Merge Sort", Level: Intermediate,
		Info:    "Splits the array in halves and merges the sorted halves. O(n log n) time, stable.",
		Default: randomArray(10, 10, 109),
		New:     func() step.Producer { return algorithms.Merge{} },
	})
	r.add(&Algorithm{
		Name: "quick", Title: "Quick Sort", Level: Intermediate,
		Info:    "Partitions around the last element and sorts both sides. O(n log n) average, O(n^2) worst.",
		Default: randomArray(12, 10, 109),
		New:     func() step.Producer { return algorithms.Quick{} },
	})

	r.add(&Algorithm{
		Name: "linear", Title: "Linear Search", Level: Intermediate,
		Info:        "Checks every element in order. O(n) time, works on unsorted data.",
		NeedsTarget: true,
		Speed:       400 * time.Millisecond,
		Default:     randomArray(10, 10, 99),
		New:         func() step.Producer { return algorithms.Linear{} },
	})
	r.add(&Algorithm{
		Name: "binary", Title: "Binary Search", Level: Intermediate,
		Info:        "Halves a sorted search window on every probe. O(log n) time.",
		NeedsTarget: true, NeedsSorted: true,
		Default: func(*rand.Rand) input.Source { return input.Stepped{Size: 10, Start: 10, Step: 10} },
		New:     func() step.Producer { return algorithms.Binary{} },
	})
	r.add(&Algorithm{
		Name: "jump", Title: "Jump Search", Level: Intermediate,
		Info:        "Jumps ahead by sqrt(n) and scans the block that may hold the target. O(sqrt n) time.",
		NeedsTarget: true, NeedsSorted: true,
		Default: func(rng *rand.Rand) input.Source {
			return input.RandomArray{Size: 16, Min: 1, Max: 99, Sorted: true, Rand: rng}
		},
		New: func() step.Producer { return algorithms.Jump{} },
	})
	r.add(&Algorithm{
		Name: "interpolation", Title: "Interpolation Search", Level: Intermediate,
		Info:        "Estimates the probe position from the values at the window ends. O(log log n) on uniform data.",
		NeedsTarget: true, NeedsSorted: true,
		Default: func(*rand.Rand) input.Source { return input.Stepped{Size: 16, Start: 5, Step: 5} },
		New:     func() step.Producer { return algorithms.Interpolation{} },
	})
	r.add(&Algorithm{
		Name: "linkedlist", Title: "Linked List Operations", Level: Intermediate,
		Info:        "Traverses a singly linked list node by node. O(n) time.",
		NeedsTarget: true,
		Default: func(rng *rand.Rand) input.Source {
			return input.RandomList(6, 10, 99, rng)
		},
		New: func() step.Producer { return algorithms.LinkedList{} },
	})

	r.add(&Algorithm{
		Name: "dijkstra", Title: "Dijkstra's Algorithm", Level: Advanced,
		Info:    "Finalises the closest unvisited node and relaxes its outgoing edges. O((V+E) log V) with a heap.",
		Default: demoGraph,
		New:     func() step.Producer { return algorithms.Dijkstra{} },
	})
	r.add(&Algorithm{
		Name: "kruskal", Title: "Kruskal's Algorithm", Level: Advanced,
		Info:    "Adds the lightest edge that joins two components until one tree remains. O(E log E) time.",
		Default: demoGraph,
		New:     func() step.Producer { return algorithms.Kruskal{} },
	})

	return r
}

func (r *Registry) add(a *Algorithm) {
	if a.Speed == 0 {
		a.Speed = input.DefaultSpeed
	}
	r.algorithms[a.Name] = a
}

func (r *Registry) Get(name string) (*Algorithm, error) {
	a, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("unknown algorithm: %s", name)
	}
	return a, nil
}

// Names lists every registered algorithm in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByLevel lists the algorithms of one level in alphabetical order.
func (r *Registry) ByLevel(l Level) []*Algorithm {
	var out []*Algorithm
	for _, name := range r.Names() {
		if a := r.algorithms[name]; a.Level == l {
			out = append(out, a)
		}
	}
	return out
}
