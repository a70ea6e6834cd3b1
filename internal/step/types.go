package step

import (
	"iter"
	"math"
)

// Kind is the shape of structure a producer animates.
type Kind int

const (
	KindArray Kind = iota
	KindList
	KindGraph
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindGraph:
		return "graph"
	default:
		return "array"
	}
}

// Role is the sole styling hint a renderer receives for a record.
type Role string

const (
	RoleDefault Role = "default"

	RoleComparing  Role = "comparing"
	RoleSwapped    Role = "swapped"
	RoleSorted     Role = "sorted"
	RoleExamining  Role = "examining"
	RoleFound      Role = "found"
	RoleEliminated Role = "eliminated"

	RoleVisited   Role = "visited"
	RoleInMST     Role = "in-mst"
	RoleCandidate Role = "candidate"
)

var (
	arrayRoles = []Role{RoleDefault, RoleComparing, RoleSwapped, RoleSorted, RoleExamining, RoleFound, RoleEliminated}
	graphRoles = []Role{RoleDefault, RoleVisited, RoleInMST, RoleCandidate}
)

// Roles returns the closed role set for a structure kind.
func Roles(k Kind) []Role {
	if k == KindGraph {
		return graphRoles
	}
	return arrayRoles
}

// Valid reports whether r belongs to the role set of k.
func (r Role) Valid(k Kind) bool {
	for _, v := range Roles(k) {
		if v == r {
			return true
		}
	}
	return false
}

// Unreachable is the distance of a node no path has reached yet.
const Unreachable = math.MaxInt

type Element struct {
	Value int  `json:"value"`
	Role  Role `json:"role"`
}

type Node struct {
	ID       int  `json:"id"`
	Distance int  `json:"distance"`
	Role     Role `json:"role"`
}

type EdgeState struct {
	From   int  `json:"from"`
	To     int  `json:"to"`
	Weight int  `json:"weight"`
	Role   Role `json:"role"`
}

type GraphSnapshot struct {
	Nodes       []Node      `json:"nodes"`
	Edges       []EdgeState `json:"edges"`
	TotalWeight int         `json:"total_weight"`
}

// Stats are the running counters shown next to a sort or search.
type Stats struct {
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
}

// Step is one observable moment of an algorithm's execution. Array and list
// producers fill Array; graph producers fill Graph.
type Step struct {
	Array      []Element      `json:"array,omitempty"`
	Graph      *GraphSnapshot `json:"graph,omitempty"`
	Annotation string         `json:"annotation,omitempty"`
	// Terminal marks the final step of a run that was not cancelled.
	Terminal bool `json:"terminal"`
	// Index is the position a search reports, -1 when there is none.
	Index int   `json:"index"`
	Stats Stats `json:"stats"`
}

func (s Step) Clone() Step {
	c := s
	if s.Array != nil {
		c.Array = make([]Element, len(s.Array))
		copy(c.Array, s.Array)
	}
	if s.Graph != nil {
		g := *s.Graph
		g.Nodes = make([]Node, len(s.Graph.Nodes))
		copy(g.Nodes, s.Graph.Nodes)
		g.Edges = make([]EdgeState, len(s.Graph.Edges))
		copy(g.Edges, s.Graph.Edges)
		c.Graph = &g
	}
	return c
}

// Values returns the array values in snapshot order.
func (s Step) Values() []int {
	vals := make([]int, len(s.Array))
	for i, e := range s.Array {
		vals[i] = e.Value
	}
	return vals
}

// Has reports whether any array element carries role r.
func (s Step) Has(r Role) bool {
	for _, e := range s.Array {
		if e.Role == r {
			return true
		}
	}
	return false
}

// Input is the initial structure of a run. Producers copy what they use and
// never modify it.
type Input struct {
	Values []int
	List   *List
	Graph  *Graph
}

// Empty reports whether the input holds nothing to animate.
func (in Input) Empty() bool {
	switch {
	case in.Graph != nil:
		return in.Graph.Nodes == 0
	case in.List != nil:
		return in.List.Len() == 0
	default:
		return len(in.Values) == 0
	}
}

// Params carries algorithm specific arguments.
type Params struct {
	Target *int
	Source int
	Swap   [2]int
}

// WithTarget returns a copy of p with the search target set.
func (p Params) WithTarget(v int) Params {
	p.Target = &v
	return p
}

// Producer generates the step sequence of one algorithm. Each call to Steps
// returns a fresh sequence; the producer checks tok before every step it
// yields and stops without a terminal step once it is cancelled.
type Producer interface {
	Name() string
	Kind() Kind
	Validate(in Input, p Params) error
	Steps(in Input, p Params, tok *Token) iter.Seq[Step]
}
