package step

import "sync/atomic"

// Token is a one-way cancellation flag for a single run. Once cancelled it
// stays cancelled; a new run allocates a fresh token.
type Token struct {
	cancelled atomic.Bool
}

func NewToken() *Token { return &Token{} }

// Cancel sets the flag. Safe to call more than once and from any goroutine.
func (t *Token) Cancel() {
	if t != nil {
		t.cancelled.Store(true)
	}
}

// Cancelled reports whether Cancel was called. A nil token is never cancelled.
func (t *Token) Cancelled() bool {
	return t != nil && t.cancelled.Load()
}
