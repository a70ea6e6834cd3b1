// Package playback drives a step producer at a user controlled speed.
//
// A [Controller] moves between three states:
//
//   - idle: input is loaded and nothing is playing
//   - running: one goroutine pulls steps from the producer and hands them
//     to the [Sink], waiting the current speed between steps
//   - stopped: the run was cancelled; Start replays from the first step
//
// Stop cancels the run's token, so the producer yields no further steps and
// never reports a terminal step. Reset cancels as well, loads fresh input
// and returns to idle. Renderers that cannot receive steps on the playback
// goroutine poll [Controller.Snapshot] instead of installing a sink.
//
// # Example
//
//	c := playback.New(algorithms.Bubble{}, input.RandomArray{Size: 10, Min: 10, Max: 109},
//	    playback.WithSink(playback.SinkFunc(func(s step.Step) {
//	        fmt.Println(s.Values(), s.Annotation)
//	    })))
//	if err := c.Start(ctx); err != nil {
//	    return err
//	}
//	c.Wait(ctx)
package playback
