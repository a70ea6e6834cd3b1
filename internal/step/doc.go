// Package step provides the core playback primitives shared by every
// algorithm page.
//
// The package defines the data exchanged between an algorithm and the
// renderer that animates it:
//
//   - [Step]: one immutable snapshot of the visualized structure plus roles
//   - [Role]: closed set of styling hints for array and graph records
//   - [Producer]: algorithm that yields an ordered, lazy sequence of steps
//   - [Token]: one-way cancellation flag shared by a producer and its player
//   - [Input] / [Params]: the structure and arguments handed to a producer
//
// # Example
//
//	tok := step.NewToken()
//	for s := range algorithms.Bubble{}.Steps(in, step.Params{}, tok) {
//		render(s)
//	}
//
// # Thread Safety
//
// Steps are independent copies and may be retained by renderers. A [Token]
// may be cancelled from any goroutine; everything else belongs to the run
// that created it.
package step
