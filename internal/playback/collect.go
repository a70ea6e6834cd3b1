package playback

import (
	"context"

	"github.com/san-kum/algoviz/internal/step"
)

// Collect runs producer to completion without pacing and returns every
// step. It checks preconditions first and stops early, cancelling tok, when
// ctx is done.
func Collect(ctx context.Context, producer step.Producer, in step.Input, params step.Params, tok *step.Token) ([]step.Step, error) {
	if err := producer.Validate(in, params); err != nil {
		return nil, err
	}
	if tok == nil {
		tok = step.NewToken()
	}

	var steps []step.Step
	for s := range producer.Steps(in, params, tok) {
		if err := ctx.Err(); err != nil {
			tok.Cancel()
			return steps, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}
