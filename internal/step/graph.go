package step

import "fmt"

type Edge struct {
	From   int `json:"from" yaml:"from"`
	To     int `json:"to" yaml:"to"`
	Weight int `json:"weight" yaml:"weight"`
}

// Graph is a weighted graph over nodes 0..Nodes-1. Edge order is
// significant: producers break weight ties by it.
type Graph struct {
	Nodes int    `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	c := &Graph{Nodes: g.Nodes, Edges: make([]Edge, len(g.Edges))}
	copy(c.Edges, g.Edges)
	return c
}

func (g *Graph) Validate() error {
	if g == nil || g.Nodes == 0 {
		return ErrEmptyInput
	}
	for i, e := range g.Edges {
		if e.From < 0 || e.From >= g.Nodes || e.To < 0 || e.To >= g.Nodes {
			return fmt.Errorf("%w: edge %d (%d-%d)", ErrInvalidGraph, i, e.From, e.To)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d (%d-%d) weight=%d", ErrNegativeWeight, i, e.From, e.To, e.Weight)
		}
	}
	return nil
}

// Snapshot returns the graph with every node unreachable and every record
// in the default role.
func (g *Graph) Snapshot() *GraphSnapshot {
	s := &GraphSnapshot{
		Nodes: make([]Node, g.Nodes),
		Edges: make([]EdgeState, len(g.Edges)),
	}
	for i := range s.Nodes {
		s.Nodes[i] = Node{ID: i, Distance: Unreachable, Role: RoleDefault}
	}
	for i, e := range g.Edges {
		s.Edges[i] = EdgeState{From: e.From, To: e.To, Weight: e.Weight, Role: RoleDefault}
	}
	return s
}
