package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/algoviz/internal/step"
)

var ErrBadEdge = errors.New("algoviz: edge must be written from-to:weight")

// ParseValues splits s on commas and keeps every token that parses as an
// integer. Tokens that do not parse are dropped.
func ParseValues(s string) []int {
	var vals []int
	for _, tok := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		vals = append(vals, v)
	}
	return vals
}

// FormatValues is the inverse of ParseValues.
func FormatValues(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// ParseEdges reads comma separated "from-to:weight" tokens.
func ParseEdges(s string) ([]step.Edge, error) {
	var edges []step.Edge
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		e, err := parseEdge(tok)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return edges, nil
}

func parseEdge(tok string) (step.Edge, error) {
	ends, weight, ok := strings.Cut(tok, ":")
	if !ok {
		return step.Edge{}, fmt.Errorf("%w: %q", ErrBadEdge, tok)
	}
	from, to, ok := strings.Cut(ends, "-")
	if !ok {
		return step.Edge{}, fmt.Errorf("%w: %q", ErrBadEdge, tok)
	}

	var e step.Edge
	var err error
	if e.From, err = strconv.Atoi(strings.TrimSpace(from)); err != nil {
		return step.Edge{}, fmt.Errorf("%w: %q: %v", ErrBadEdge, tok, err)
	}
	if e.To, err = strconv.Atoi(strings.TrimSpace(to)); err != nil {
		return step.Edge{}, fmt.Errorf("%w: %q: %v", ErrBadEdge, tok, err)
	}
	if e.Weight, err = strconv.Atoi(strings.TrimSpace(weight)); err != nil {
		return step.Edge{}, fmt.Errorf("%w: %q: %v", ErrBadEdge, tok, err)
	}
	return e, nil
}

// FormatEdges renders edges in the form ParseEdges reads.
func FormatEdges(edges []step.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("%d-%d:%d", e.From, e.To, e.Weight)
	}
	return strings.Join(parts, ",")
}
