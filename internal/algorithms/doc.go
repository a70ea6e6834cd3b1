// Package algorithms provides the step producers animated by the catalog.
//
// Each producer implements [step.Producer] and reports every observable
// transition of its algorithm as a [step.Step]:
//
//   - sorts: [Bubble], [Selection], [Insertion], [Merge], [Quick]
//   - searches: [Linear], [Binary], [Jump], [Interpolation], [LinkedList]
//   - graphs: [Dijkstra], [Kruskal]
//   - basics: [Swap], the two-phase swap shown on the beginner page
//
// Producers work on private copies of their input, check the cancellation
// token before every step and at each recursive call, and never report a
// terminal step for a cancelled run.
//
//	tok := step.NewToken()
//	for s := range (Quick{}).Steps(in, step.Params{}, tok) {
//	    fmt.Println(s.Values(), s.Annotation)
//	}
package algorithms
