package algorithms

import (
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

func requireValues(in step.Input) error {
	if len(in.Values) == 0 {
		return step.ErrEmptyInput
	}
	return nil
}

func requireSearch(in step.Input, p step.Params) error {
	if err := requireValues(in); err != nil {
		return err
	}
	if p.Target == nil {
		return step.ErrMissingTarget
	}
	return nil
}

func requireSortedSearch(in step.Input, p step.Params) error {
	if err := requireSearch(in, p); err != nil {
		return err
	}
	if !slices.IsSorted(in.Values) {
		return step.ErrUnsortedInput
	}
	return nil
}

func requireGraph(in step.Input, p step.Params) error {
	if err := in.Graph.Validate(); err != nil {
		return err
	}
	if p.Source < 0 || p.Source >= in.Graph.Nodes {
		return step.ErrInvalidSource
	}
	return nil
}
