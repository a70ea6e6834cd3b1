package input

import (
	"math/rand"

	"github.com/san-kum/algoviz/internal/step"
)

// GraphSource always loads the same graph.
type GraphSource struct {
	Graph *step.Graph
}

func (g GraphSource) Load() (step.Input, error) {
	if err := g.Graph.Validate(); err != nil {
		return step.Input{}, err
	}
	return step.Input{Graph: g.Graph.Clone()}, nil
}

// RandomGraph links node i to a random earlier node so every node is
// connected, then adds Extra random edges between distinct nodes.
type RandomGraph struct {
	Nodes     int
	Extra     int
	MaxWeight int
	Rand      *rand.Rand
}

func (r RandomGraph) Load() (step.Input, error) {
	if r.Nodes <= 0 || r.MaxWeight <= 0 {
		return step.Input{}, ErrBadRange
	}
	rng := r.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	g := &step.Graph{Nodes: r.Nodes}
	weight := func() int { return 1 + rng.Intn(r.MaxWeight) }
	for i := 1; i < r.Nodes; i++ {
		g.Edges = append(g.Edges, step.Edge{From: rng.Intn(i), To: i, Weight: weight()})
	}
	if r.Nodes > 1 {
		for range r.Extra {
			from := rng.Intn(r.Nodes)
			to := rng.Intn(r.Nodes - 1)
			if to >= from {
				to++
			}
			g.Edges = append(g.Edges, step.Edge{From: from, To: to, Weight: weight()})
		}
	}
	return step.Input{Graph: g}, nil
}

// DemoGraph is the five node graph both graph pages open with.
func DemoGraph() *step.Graph {
	return &step.Graph{
		Nodes: 5,
		Edges: []step.Edge{
			{From: 0, To: 1, Weight: 2},
			{From: 0, To: 2, Weight: 4},
			{From: 1, To: 2, Weight: 1},
			{From: 1, To: 3, Weight: 7},
			{From: 2, To: 4, Weight: 3},
			{From: 3, To: 4, Weight: 1},
		},
	}
}
