package step

import "errors"

// Precondition errors reported by Producer.Validate.
var (
	// ErrEmptyInput indicates there is nothing to visualize.
	ErrEmptyInput = errors.New("algoviz: empty input")

	// ErrMissingTarget indicates a search was requested without a target value.
	ErrMissingTarget = errors.New("algoviz: search target is required")

	// ErrUnsortedInput indicates a search that needs ascending input got unsorted values.
	ErrUnsortedInput = errors.New("algoviz: input must be sorted ascending")

	// ErrInvalidSource indicates the start node is not part of the graph.
	ErrInvalidSource = errors.New("algoviz: source node out of range")

	// ErrInvalidIndex indicates an element index outside the array.
	ErrInvalidIndex = errors.New("algoviz: index out of range")

	// ErrInvalidGraph indicates an edge referencing an unknown node.
	ErrInvalidGraph = errors.New("algoviz: edge endpoint out of range")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("algoviz: negative edge weight")
)
