package lesson

import (
	"github.com/abhisek/lingo/internal/session"
)

// completionMsg is sent once when the session reaches its terminal
// state, carrying the one-shot completion event.
type completionMsg struct {
	Event session.CompletionEvent
}

// persistFailedMsg is sent when a best-effort write to the event log
// fails. The lesson keeps going; the error is only surfaced on stderr.
type persistFailedMsg struct {
	Err error
}
