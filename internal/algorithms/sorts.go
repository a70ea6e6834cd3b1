package algorithms

import (
	"iter"

	"github.com/san-kum/algoviz/internal/step"
)

// Bubble swaps adjacent elements on a strict greater-than, so equal
// elements keep their order.
type Bubble struct{}

func (Bubble) Name() string    { return "bubble" }
func (Bubble) Kind() step.Kind { return step.KindArray }

func (Bubble) Validate(in step.Input, _ step.Params) error { return requireValues(in) }

func (Bubble) Steps(in step.Input, _ step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		r := newArrayRun(in.Values, tok, yield)
		n := len(r.vals)
		if n == 0 {
			return
		}

		for i := 0; i < n-1; i++ {
			for j := 0; j < n-i-1; j++ {
				if !r.compare(j, j+1) {
					return
				}
				if r.vals[j] > r.vals[j+1] {
					if !r.swap(j, j+1) {
						return
					}
				}
				r.mark(step.RoleDefault, j, j+1)
			}
			r.mark(step.RoleSorted, n-i-1)
			if !r.emit("Index %d is in its final position", n-i-1) {
				return
			}
		}

		r.markAll(step.RoleSorted)
		r.conclude(-1, "Sorted")
	}
}

type Selection struct{}

func (Selection) Name() string    { return "selection" }
func (Selection) Kind() step.Kind { return step.KindArray }

func (Selection) Validate(in step.Input, _ step.Params) error { return requireValues(in) }

func (Selection) Steps(in step.Input, _ step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		r := newArrayRun(in.Values, tok, yield)
		n := len(r.vals)
		if n == 0 {
			return
		}

		for i := 0; i < n-1; i++ {
			minIdx := i
			for j := i + 1; j < n; j++ {
				if !r.compare(minIdx, j) {
					return
				}
				r.mark(step.RoleDefault, minIdx, j)
				if r.vals[j] < r.vals[minIdx] {
					minIdx = j
				}
			}
			if minIdx != i {
				if !r.swap(i, minIdx) {
					return
				}
				r.mark(step.RoleDefault, minIdx)
			}
			r.mark(step.RoleSorted, i)
			if !r.emit("Index %d is in its final position", i) {
				return
			}
		}

		r.markAll(step.RoleSorted)
		r.conclude(-1, "Sorted")
	}
}

// Insertion walks each key left by adjacent swaps while its left neighbour
// is strictly greater. Every snapshot is a permutation of the input.
type Insertion struct{}

func (Insertion) Name() string    { return "insertion" }
func (Insertion) Kind() step.Kind { return step.KindArray }

func (Insertion) Validate(in step.Input, _ step.Params) error { return requireValues(in) }

func (Insertion) Steps(in step.Input, _ step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		r := newArrayRun(in.Values, tok, yield)
		n := len(r.vals)
		if n == 0 {
			return
		}

		r.mark(step.RoleSorted, 0)
		for i := 1; i < n; i++ {
			for j := i; j > 0; j-- {
				if !r.compare(j-1, j) {
					return
				}
				if r.vals[j-1] <= r.vals[j] {
					break
				}
				if !r.swap(j-1, j) {
					return
				}
				r.mark(step.RoleSorted, j-1, j)
			}
			r.markRange(step.RoleSorted, 0, i)
			if !r.emit("Indices 0..%d are sorted", i) {
				return
			}
		}

		r.markAll(step.RoleSorted)
		r.conclude(-1, "Sorted")
	}
}

// Merge sorts recursively and merges in place by rotation, taking from the
// left run on ties.
type Merge struct{}

func (Merge) Name() string    { return "merge" }
func (Merge) Kind() step.Kind { return step.KindArray }

func (Merge) Validate(in step.Input, _ step.Params) error { return requireValues(in) }

func (Merge) Steps(in step.Input, _ step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		r := newArrayRun(in.Values, tok, yield)
		if len(r.vals) == 0 {
			return
		}

		var sortRange func(lo, hi int) bool
		sortRange = func(lo, hi int) bool {
			if !r.live() {
				return false
			}
			if lo >= hi {
				return true
			}
			mid := (lo + hi) / 2
			return sortRange(lo, mid) && sortRange(mid+1, hi) && mergeRuns(r, lo, mid, hi)
		}

		if !sortRange(0, len(r.vals)-1) {
			return
		}
		r.markAll(step.RoleSorted)
		r.conclude(-1, "Sorted")
	}
}

func mergeRuns(r *arrayRun, lo, mid, hi int) bool {
	i, j := lo, mid+1
	for i <= mid && j <= hi {
		if !r.compare(i, j) {
			return false
		}
		r.mark(step.RoleDefault, i, j)
		if r.vals[i] <= r.vals[j] {
			i++
			continue
		}

		r.rotate(i, j)
		r.stats.Swaps++
		r.mark(step.RoleSwapped, i)
		if !r.emit("Moved %d to index %d", r.vals[i], i) {
			return false
		}
		r.mark(step.RoleDefault, i)
		i++
		mid++
		j++
	}
	return true
}

// Quick uses the Lomuto partition with the last element as pivot.
type Quick struct{}

func (Quick) Name() string    { return "quick" }
func (Quick) Kind() step.Kind { return step.KindArray }

func (Quick) Validate(in step.Input, _ step.Params) error { return requireValues(in) }

func (Quick) Steps(in step.Input, _ step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		r := newArrayRun(in.Values, tok, yield)
		if len(r.vals) == 0 {
			return
		}

		var sortRange func(lo, hi int) bool
		sortRange = func(lo, hi int) bool {
			if !r.live() {
				return false
			}
			if lo > hi {
				return true
			}
			if lo == hi {
				r.mark(step.RoleSorted, lo)
				return true
			}
			p, ok := partition(r, lo, hi)
			if !ok {
				return false
			}
			return sortRange(lo, p-1) && sortRange(p+1, hi)
		}

		if !sortRange(0, len(r.vals)-1) {
			return
		}
		r.markAll(step.RoleSorted)
		r.conclude(-1, "Sorted")
	}
}

func partition(r *arrayRun, lo, hi int) (int, bool) {
	pivot := r.vals[hi]
	i := lo - 1
	for j := lo; j < hi; j++ {
		if !r.compare(j, hi) {
			return 0, false
		}
		r.mark(step.RoleDefault, j, hi)
		if r.vals[j] < pivot {
			i++
			if i != j {
				if !r.swap(i, j) {
					return 0, false
				}
				r.mark(step.RoleDefault, i, j)
			}
		}
	}

	p := i + 1
	if p != hi {
		r.vals[p], r.vals[hi] = r.vals[hi], r.vals[p]
		r.stats.Swaps++
	}
	r.mark(step.RoleDefault, hi)
	r.mark(step.RoleSorted, p)
	if !r.emit("Pivot %d placed at index %d", pivot, p) {
		return 0, false
	}
	return p, true
}

// Swap exchanges Params.Swap[0] and Params.Swap[1] in three steps:
// highlight, swapped, reset.
type Swap struct{}

func (Swap) Name() string    { return "swap" }
func (Swap) Kind() step.Kind { return step.KindArray }

func (Swap) Validate(in step.Input, p step.Params) error {
	if err := requireValues(in); err != nil {
		return err
	}
	i, j := p.Swap[0], p.Swap[1]
	if i < 0 || j < 0 || i >= len(in.Values) || j >= len(in.Values) || i == j {
		return step.ErrInvalidIndex
	}
	return nil
}

func (s Swap) Steps(in step.Input, p step.Params, tok *step.Token) iter.Seq[step.Step] {
	return func(yield func(step.Step) bool) {
		if s.Validate(in, p) != nil {
			return
		}
		r := newArrayRun(in.Values, tok, yield)
		i, j := p.Swap[0], p.Swap[1]

		r.mark(step.RoleComparing, i, j)
		if !r.emit("Swapping index %d and %d", i, j) {
			return
		}
		r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
		r.stats.Swaps++
		r.mark(step.RoleSwapped, i, j)
		if !r.emit("Swapped index %d and %d", i, j) {
			return
		}
		r.markAll(step.RoleDefault)
		r.conclude(-1, "")
	}
}
