// Package viz renders playback steps in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: algorithm menu grouped by level
//   - [Model]: live view of one algorithm driven by a playback controller
//   - [Canvas]: Braille canvas used to draw graphs
//   - [TextSink]: plain text sink for headless runs
//
// Renderers see only a step's values and roles; a [Theme] maps each role
// to a colour.
//
// # Key Bindings
//
//	S, Enter - Start from the first step
//	X        - Stop
//	R        - Reset with fresh input
//	+ / -    - Faster / slower
//	E        - Edit the input
//	/        - Set the search target
//	A / D    - Add / delete a linked list node
//	T        - Cycle color themes
//	?        - Show help overlay
package viz
