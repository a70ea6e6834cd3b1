package playback

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/algoviz/internal/step"
)

// Summary is the outcome of one unpaced run.
type Summary struct {
	Algorithm string
	Steps     int
	Final     step.Step
	Elapsed   time.Duration
}

// Compare runs every producer on the same input concurrently and returns
// their summaries in producer order. Each producer gets its own copy of the
// input; the first error cancels the remaining runs.
func Compare(ctx context.Context, producers []step.Producer, in step.Input, params step.Params) ([]Summary, error) {
	out := make([]Summary, len(producers))
	g, ctx := errgroup.WithContext(ctx)

	for i, p := range producers {
		local := copyInput(in)
		g.Go(func() error {
			start := time.Now()
			steps, err := Collect(ctx, p, local, params, nil)
			if err != nil {
				return err
			}
			out[i] = Summary{Algorithm: p.Name(), Steps: len(steps), Elapsed: time.Since(start)}
			if len(steps) > 0 {
				out[i].Final = steps[len(steps)-1]
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func copyInput(in step.Input) step.Input {
	c := in
	if in.Values != nil {
		c.Values = append([]int(nil), in.Values...)
	}
	c.List = in.List.Clone()
	c.Graph = in.Graph.Clone()
	return c
}
