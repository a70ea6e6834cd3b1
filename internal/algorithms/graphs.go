package algorithms

import (
	"fmt"
	"iter"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

type graphRun struct {
	emitter
	snap *step.GraphSnapshot
}

func newGraphRun(g *step.Graph, tok *step.Token, yield func(step.Step) bool) *graphRun {
	return &graphRun{emitter: emitter{tok: tok, yield: yield}, snap: g.Snapshot()}
}

func (r *graphRun) emit(terminal bool, format string, args ...any) bool {
	s := step.Step{
		Graph:      r.snap,
		Annotation: fmt.Sprintf(format, args...),
		Terminal:   terminal,
		Index:      -1,
	}
	return r.send(s.Clone())
}

// Dijkstra finalises one node per step, relaxing the outgoing edges of each
// finalised node. Edges are directed from From to To.
type Dijkstra struct{}

func (Dijkstra) Name() string    { return "dijkstra" }
func (Dijkstra) Kind() step.Kind { return step.KindGraph }

func (Dijkstra) Validate(in step.Input, p step.Params) error { return requireGraph(in, p) }

func (d Dijkstra) Steps(in step.Input, p step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		if d.Validate(in, p) != nil {
			return
		}
		g := in.Graph
		r := newGraphRun(g, tok, yield)
		nodes := r.snap.Nodes

		visited := make([]bool, g.Nodes)
		pred := make([]int, g.Nodes)
		for i := range pred {
			pred[i] = -1
		}
		nodes[p.Source].Distance = 0

		for {
			u := -1
			for i, n := range nodes {
				if !visited[i] && n.Distance != step.Unreachable && (u < 0 || n.Distance < nodes[u].Distance) {
					u = i
				}
			}
			if u < 0 {
				return
			}

			visited[u] = true
			nodes[u].Role = step.RoleVisited
			if pred[u] >= 0 {
				r.snap.Edges[pred[u]].Role = step.RoleVisited
			}

			for i, e := range g.Edges {
				if e.From != u || visited[e.To] {
					continue
				}
				// a path this long cannot be told apart from Unreachable
				if e.Weight >= step.Unreachable-nodes[u].Distance {
					continue
				}
				if alt := nodes[u].Distance + e.Weight; alt < nodes[e.To].Distance {
					nodes[e.To].Distance = alt
					nodes[e.To].Role = step.RoleCandidate
					pred[e.To] = i
				}
			}

			last := true
			for i, n := range nodes {
				if !visited[i] && n.Distance != step.Unreachable {
					last = false
					break
				}
			}
			if !r.emit(last, "Visited node %d (distance %d)", u, nodes[u].Distance) || last {
				return
			}
		}
	}
}

// Kruskal accepts edges in ascending weight order, ties in input order,
// whenever they join two components.
type Kruskal struct{}

func (Kruskal) Name() string    { return "kruskal" }
func (Kruskal) Kind() step.Kind { return step.KindGraph }

func (Kruskal) Validate(in step.Input, _ step.Params) error {
	return in.Graph.Validate()
}

func (k Kruskal) Steps(in step.Input, p step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		if k.Validate(in, p) != nil {
			return
		}
		g := in.Graph
		r := newGraphRun(g, tok, yield)
		for i := range r.snap.Nodes {
			r.snap.Nodes[i].Distance = 0
		}

		order := make([]int, len(g.Edges))
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(a, b int) int {
			return g.Edges[a].Weight - g.Edges[b].Weight
		})

		uf := newUnionFind(g.Nodes)
		for _, i := range order {
			e := g.Edges[i]
			if !uf.union(e.From, e.To) {
				continue
			}
			r.snap.Edges[i].Role = step.RoleInMST
			r.snap.Nodes[e.From].Role = step.RoleInMST
			r.snap.Nodes[e.To].Role = step.RoleInMST
			r.snap.TotalWeight += e.Weight
			if !r.emit(false, "Added edge %d-%d (weight %d)", e.From, e.To, e.Weight) {
				return
			}
		}

		r.emit(true, "Minimum spanning tree complete, total weight %d", r.snap.TotalWeight)
	}
}
