package input

import (
	"errors"
	"math/rand"
	"slices"
	"sync"

	"github.com/san-kum/algoviz/internal/step"
)

var ErrBadRange = errors.New("algoviz: invalid value range")

// Source produces the initial structure of a run. Load is called on every
// start from idle and on every reset; random sources draw new data each time.
type Source interface {
	Load() (step.Input, error)
}

// RandomArray draws Size values uniformly from [Min, Max].
type RandomArray struct {
	Size   int
	Min    int
	Max    int
	Sorted bool
	Rand   *rand.Rand
}

func (r RandomArray) Load() (step.Input, error) {
	if r.Size < 0 || r.Max < r.Min {
		return step.Input{}, ErrBadRange
	}
	rng := r.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	vals := make([]int, r.Size)
	for i := range vals {
		vals[i] = r.Min + rng.Intn(r.Max-r.Min+1)
	}
	if r.Sorted {
		slices.Sort(vals)
	}
	return step.Input{Values: vals}, nil
}

// Stepped is the ascending sequence Start, Start+Step, ...
type Stepped struct {
	Size  int
	Start int
	Step  int
}

func (s Stepped) Load() (step.Input, error) {
	vals := make([]int, max(s.Size, 0))
	for i := range vals {
		vals[i] = s.Start + i*s.Step
	}
	return step.Input{Values: vals}, nil
}

// Fixed returns a copy of Values, sorted ascending when Sorted is set.
type Fixed struct {
	Values []int
	Sorted bool
}

func (f Fixed) Load() (step.Input, error) {
	vals := slices.Clone(f.Values)
	if f.Sorted {
		slices.Sort(vals)
	}
	return step.Input{Values: vals}, nil
}

// ListSource owns a linked list that the user edits between runs. Each Load
// hands out a copy so a running producer never sees an edit.
type ListSource struct {
	mu   sync.Mutex
	list *step.List
}

func NewListSource(vals []int) *ListSource {
	return &ListSource{list: step.FromValues(vals)}
}

func (l *ListSource) Load() (step.Input, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return step.Input{List: l.list.Clone()}, nil
}

func (l *ListSource) Append(v int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.list.Append(v)
}

func (l *ListSource) Delete(i int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.DeleteAt(i)
}

func (l *ListSource) Values() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.list.Values()
}

// RandomList fills a list source with size values drawn from [lo, hi]. A
// reversed range is read as the single value lo.
func RandomList(size, lo, hi int, rng *rand.Rand) *ListSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	hi = max(hi, lo)
	vals := make([]int, max(size, 0))
	for i := range vals {
		vals[i] = lo + rng.Intn(hi-lo+1)
	}
	return NewListSource(vals)
}
