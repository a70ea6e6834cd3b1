package algorithms

import (
	"iter"
	"math"

	"github.com/san-kum/algoviz/internal/step"
)

// searchRun reports probe positions; Comparisons counts probes.
type searchRun struct {
	*arrayRun
	target int
}

func newSearchRun(vals []int, target int, tok *step.Token, yield func(step.Step) bool) *searchRun {
	return &searchRun{arrayRun: newArrayRun(vals, tok, yield), target: target}
}

func (s *searchRun) examine(i int, format string, args ...any) bool {
	s.stats.Comparisons++
	s.mark(step.RoleExamining, i)
	return s.emit(format, args...)
}

func (s *searchRun) found(i int) {
	s.mark(step.RoleFound, i)
	s.conclude(i, "Found %d at index %d", s.target, i)
}

func (s *searchRun) notFound() {
	for i, r := range s.roles {
		if r == step.RoleExamining {
			s.roles[i] = step.RoleEliminated
		}
	}
	s.conclude(-1, "%d not found", s.target)
}

func (s *searchRun) eliminate(lo, hi int) {
	for i := range s.roles {
		if i < lo || i > hi {
			s.roles[i] = step.RoleEliminated
		}
	}
}

// Linear probes every index left to right.
type Linear struct{}

func (Linear) Name() string    { return "linear" }
func (Linear) Kind() step.Kind { return step.KindArray }

func (Linear) Validate(in step.Input, p step.Params) error { return requireSearch(in, p) }

func (l Linear) Steps(in step.Input, p step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		if l.Validate(in, p) != nil {
			return
		}
		s := newSearchRun(in.Values, *p.Target, tok, yield)

		for i, v := range s.vals {
			if !s.examine(i, "Checking index %d", i) {
				return
			}
			if v == s.target {
				s.found(i)
				return
			}
			s.mark(step.RoleEliminated, i)
		}
		s.notFound()
	}
}

// Binary halves the window [low, high] around mid = (low+high)/2.
type Binary struct{}

func (Binary) Name() string    { return "binary" }
func (Binary) Kind() step.Kind { return step.KindArray }

func (Binary) Validate(in step.Input, p step.Params) error { return requireSortedSearch(in, p) }

func (b Binary) Steps(in step.Input, p step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		if b.Validate(in, p) != nil {
			return
		}
		s := newSearchRun(in.Values, *p.Target, tok, yield)

		low, high := 0, len(s.vals)-1
		for low <= high {
			mid := (low + high) / 2
			s.eliminate(low, high)
			if !s.examine(mid, "Checking middle index %d (low=%d, high=%d)", mid, low, high) {
				return
			}
			switch {
			case s.vals[mid] == s.target:
				s.found(mid)
				return
			case s.vals[mid] < s.target:
				low = mid + 1
			default:
				high = mid - 1
			}
			s.mark(step.RoleEliminated, mid)
		}
		s.markAll(step.RoleEliminated)
		s.notFound()
	}
}

// Jump probes the last element of each sqrt(n) block, then scans the block
// that may hold the target.
type Jump struct{}

func (Jump) Name() string    { return "jump" }
func (Jump) Kind() step.Kind { return step.KindArray }

func (Jump) Validate(in step.Input, p step.Params) error { return requireSortedSearch(in, p) }

func (j Jump) Steps(in step.Input, p step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		if j.Validate(in, p) != nil {
			return
		}
		s := newSearchRun(in.Values, *p.Target, tok, yield)
		n := len(s.vals)
		block := max(int(math.Sqrt(float64(n))), 1)

		prev := 0
		for {
			end := min(prev+block, n) - 1
			if !s.examine(end, "Jumping to index %d", end) {
				return
			}
			if s.vals[end] >= s.target {
				break
			}
			s.markRange(step.RoleEliminated, prev, end)
			prev += block
			if prev >= n {
				s.notFound()
				return
			}
		}

		end := min(prev+block, n) - 1
		for i := prev; i <= end; i++ {
			if !s.examine(i, "Scanning index %d", i) {
				return
			}
			if s.vals[i] == s.target {
				s.found(i)
				return
			}
			if s.vals[i] > s.target {
				break
			}
			s.mark(step.RoleEliminated, i)
		}
		s.notFound()
	}
}

// Interpolation estimates the probe position from the values at both ends
// of the window. A window with equal endpoints is probed at low.
type Interpolation struct{}

func (Interpolation) Name() string    { return "interpolation" }
func (Interpolation) Kind() step.Kind { return step.KindArray }

func (Interpolation) Validate(in step.Input, p step.Params) error {
	return requireSortedSearch(in, p)
}

func (ip Interpolation) Steps(in step.Input, p step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		if ip.Validate(in, p) != nil {
			return
		}
		s := newSearchRun(in.Values, *p.Target, tok, yield)
		a, t := s.vals, s.target

		low, high := 0, len(a)-1
		for low <= high && a[low] <= t && t <= a[high] {
			pos := interpolate(a, low, high, t)
			s.eliminate(low, high)
			if !s.examine(pos, "Probing index %d (low=%d, high=%d)", pos, low, high) {
				return
			}
			switch {
			case a[pos] == t:
				s.found(pos)
				return
			case a[pos] < t:
				low = pos + 1
			default:
				high = pos - 1
			}
			s.mark(step.RoleEliminated, pos)
		}
		s.markAll(step.RoleEliminated)
		s.notFound()
	}
}

// interpolate estimates where t sits in a[low..high] and clamps the result
// to the window. The estimate runs in float64 so values near the int limits
// cannot overflow.
func interpolate(a []int, low, high, t int) int {
	span := float64(a[high]) - float64(a[low])
	if span == 0 {
		return low
	}
	pos := low + int(float64(high-low)*(float64(t)-float64(a[low]))/span)
	return min(max(pos, low), high)
}

// LinkedList walks the list through successor links only.
type LinkedList struct{}

func (LinkedList) Name() string    { return "linkedlist" }
func (LinkedList) Kind() step.Kind { return step.KindList }

func (LinkedList) Validate(in step.Input, p step.Params) error {
	if in.List.Len() == 0 {
		return step.ErrEmptyInput
	}
	if p.Target == nil {
		return step.ErrMissingTarget
	}
	return nil
}

func (l LinkedList) Steps(in step.Input, p step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		if l.Validate(in, p) != nil {
			return
		}
		s := newSearchRun(in.List.Values(), *p.Target, tok, yield)

		i := 0
		for n := range in.List.All() {
			if !s.examine(i, "Visiting node %d", i) {
				return
			}
			if n.Value == s.target {
				s.found(i)
				return
			}
			s.mark(step.RoleEliminated, i)
			i++
		}
		s.notFound()
	}
}
