// Package input turns user supplied or generated data into the initial
// structure of a run.
//
// A [Source] is asked for fresh input on every start from idle and on every
// reset. [RandomArray] and [RandomGraph] draw new data each time; [Fixed],
// [Stepped] and [GraphSource] always return the same structure;
// [ListSource] holds the linked list the user edits between runs.
package input
