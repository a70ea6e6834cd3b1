// Package export writes recorded runs as JSON traces, CSV tables and SVG
// frames.
package export
