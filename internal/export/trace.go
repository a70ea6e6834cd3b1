package export

import (
	"encoding/json"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/algoviz/internal/step"
)

// Trace is a complete recorded run: the input it started from and every
// step it produced.
type Trace struct {
	ID        string      `json:"id"`
	Algorithm string      `json:"algorithm"`
	Kind      string      `json:"kind"`
	Created   time.Time   `json:"created"`
	Input     TraceInput  `json:"input"`
	Params    TraceParams `json:"params"`
	Steps     []step.Step `json:"steps"`
}

type TraceInput struct {
	Values []int       `json:"values,omitempty"`
	Graph  *step.Graph `json:"graph,omitempty"`
}

type TraceParams struct {
	Target *int   `json:"target,omitempty"`
	Source int    `json:"source"`
	Swap   [2]int `json:"swap"`
}

func NewTrace(algorithm string, kind step.Kind, in step.Input, p step.Params, steps []step.Step) *Trace {
	t := &Trace{
		ID:        uuid.NewString(),
		Algorithm: algorithm,
		Kind:      kind.String(),
		Created:   time.Now().UTC(),
		Params:    TraceParams{Target: p.Target, Source: p.Source, Swap: p.Swap},
		Steps:     steps,
	}
	switch {
	case in.Graph != nil:
		t.Input.Graph = in.Graph.Clone()
	case in.List != nil:
		t.Input.Values = in.List.Values()
	default:
		t.Input.Values = slices.Clone(in.Values)
	}
	return t
}

// Final returns the last step, or false for a trace without steps.
func (t *Trace) Final() (step.Step, bool) {
	if len(t.Steps) == 0 {
		return step.Step{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}

func WriteJSON(w io.Writer, t *Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

func ReadJSON(r io.Reader) (*Trace, error) {
	var t Trace
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, err
	}
	return &t, nil
}
