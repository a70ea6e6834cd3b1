package algorithms

import (
	"fmt"
	"slices"

	"github.com/san-kum/algoviz/internal/step"
)

// emitter forwards steps to a consumer until the token is cancelled or the
// consumer stops pulling. Once it refuses a step it refuses all later ones.
type emitter struct {
	tok     *step.Token
	yield   func(step.Step) bool
	stopped bool
}

func (e *emitter) live() bool {
	if !e.stopped && e.tok.Cancelled() {
		e.stopped = true
	}
	return !e.stopped
}

func (e *emitter) send(s step.Step) bool {
	if !e.live() {
		return false
	}
	if !e.yield(s) {
		e.stopped = true
	}
	return !e.stopped
}

// arrayRun is the mutable working copy of an array producer.
type arrayRun struct {
	emitter
	vals  []int
	roles []step.Role
	stats step.Stats
}

func newArrayRun(vals []int, tok *step.Token, yield func(step.Step) bool) *arrayRun {
	r := &arrayRun{
		emitter: emitter{tok: tok, yield: yield},
		vals:    slices.Clone(vals),
		roles:   make([]step.Role, len(vals)),
	}
	for i := range r.roles {
		r.roles[i] = step.RoleDefault
	}
	return r
}

func (r *arrayRun) snapshot() []step.Element {
	els := make([]step.Element, len(r.vals))
	for i, v := range r.vals {
		els[i] = step.Element{Value: v, Role: r.roles[i]}
	}
	return els
}

func (r *arrayRun) mark(role step.Role, idx ...int) {
	for _, i := range idx {
		r.roles[i] = role
	}
}

func (r *arrayRun) markRange(role step.Role, lo, hi int) {
	for i := lo; i <= hi; i++ {
		r.roles[i] = role
	}
}

func (r *arrayRun) markAll(role step.Role) { r.markRange(role, 0, len(r.vals)-1) }

func (r *arrayRun) emit(format string, args ...any) bool {
	return r.send(step.Step{
		Array:      r.snapshot(),
		Annotation: fmt.Sprintf(format, args...),
		Index:      -1,
		Stats:      r.stats,
	})
}

// conclude emits the terminal step. index is the reported search position.
func (r *arrayRun) conclude(index int, format string, args ...any) {
	r.send(step.Step{
		Array:      r.snapshot(),
		Annotation: fmt.Sprintf(format, args...),
		Terminal:   true,
		Index:      index,
		Stats:      r.stats,
	})
}

func (r *arrayRun) compare(i, j int) bool {
	r.stats.Comparisons++
	r.mark(step.RoleComparing, i, j)
	return r.emit("Comparing index %d and %d", i, j)
}

func (r *arrayRun) swap(i, j int) bool {
	r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
	r.stats.Swaps++
	r.mark(step.RoleSwapped, i, j)
	return r.emit("Swapped index %d and %d", i, j)
}

// rotate moves vals[j] to position i, shifting vals[i:j] one to the right.
func (r *arrayRun) rotate(i, j int) {
	v := r.vals[j]
	copy(r.vals[i+1:j+1], r.vals[i:j])
	r.vals[i] = v
}
