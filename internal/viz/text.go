package viz

import (
	"fmt"
	"io"
	"sync"

	"github.com/san-kum/algoviz/internal/step"
)

// TextSink writes each delivered step as a numbered line of plain text. It
// satisfies playback.Sink.
type TextSink struct {
	mu  sync.Mutex
	w   io.Writer
	n   int
	err error
}

func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

func (t *TextSink) Render(s step.Step) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, "%4d  %s\n", t.n, FormatStep(s))
	t.n++
}

// Count is the number of steps rendered so far.
func (t *TextSink) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.n
}

// Err returns the first write error; later steps are dropped after one.
func (t *TextSink) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
