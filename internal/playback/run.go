package playback

import (
	"context"
	"time"

	"github.com/san-kum/algoviz/internal/step"
)

type run struct {
	gen    uint64
	tok    *step.Token
	in     step.Input
	params step.Params
	done   chan struct{}
	ev     Event
}

// play pulls steps from the producer and paces them. The first step is
// delivered at once; every later one after the current speed has elapsed.
func (c *Controller) play(ctx context.Context, r run) {
	defer close(r.done)
	stop := context.AfterFunc(ctx, r.tok.Cancel)
	defer stop()

	started := time.Now()
	c.log.Info("playback started", "run_id", r.ev.RunID, "algorithm", r.ev.Algorithm)
	if c.hooks.OnStart != nil {
		c.hooks.OnStart(r.ev)
	}

	delivered := 0
	for s := range c.producer.Steps(r.in, r.params, r.tok) {
		if delivered > 0 {
			if err := c.sleep(ctx, c.Speed()); err != nil {
				r.tok.Cancel()
				break
			}
		}
		if !c.deliver(r, delivered, s) {
			break
		}
		delivered++
	}

	r.ev.Index = delivered
	r.ev.Elapsed = time.Since(started)
	r.ev.Outcome = c.finish(r)

	c.log.Info("playback finished",
		"run_id", r.ev.RunID,
		"algorithm", r.ev.Algorithm,
		"steps", delivered,
		"outcome", string(r.ev.Outcome),
		"elapsed", r.ev.Elapsed,
	)
	if c.hooks.OnFinish != nil {
		c.hooks.OnFinish(r.ev)
	}
}

// deliver hands s to the sink unless the run was cancelled or superseded
// while the step was being paced.
func (c *Controller) deliver(r run, index int, s step.Step) bool {
	c.deliverMu.Lock()
	defer c.deliverMu.Unlock()

	c.mu.Lock()
	if c.gen != r.gen || r.tok.Cancelled() {
		c.mu.Unlock()
		return false
	}
	c.index = index
	c.current = s
	c.mu.Unlock()

	if c.sink != nil {
		c.sink.Render(s)
	}
	ev := r.ev
	ev.Index = index
	if c.hooks.OnStep != nil {
		c.hooks.OnStep(ev, s)
	}
	c.log.Debug("step delivered", "run_id", r.ev.RunID, "index", index, "terminal", s.Terminal)
	return true
}

// finish records how the run ended. A superseded run leaves the
// controller's state to its successor; it still reports Halted when Stop
// ended it before Reset or Start moved on.
func (c *Controller) finish(r run) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != r.gen {
		if c.halted == r.gen {
			return Halted
		}
		return Discarded
	}
	if r.tok.Cancelled() {
		c.status = Stopped
		c.outcome = Halted
		return Halted
	}
	c.status = Idle
	c.outcome = Completed
	return Completed
}
