// Package feedback plays short terminal cues for grading outcomes. Cues
// are a side channel: they run off the session's forward path, and a
// failed cue is logged and forgotten, never surfaced to grading.
package feedback

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Kind selects which cue to play.
type Kind int

const (
	Correct Kind = iota
	Incorrect
	Complete
)

// Emitter plays a cue per kind, fire-and-forget.
type Emitter interface {
	Emit(kind Kind)
}

// TerminalEmitter signals through the terminal bell: one ring for a
// correct answer, two for incorrect, three for session completion.
type TerminalEmitter struct {
	w io.Writer
}

// NewTerminalEmitter creates an emitter writing to w (normally the
// controlling terminal).
func NewTerminalEmitter(w io.Writer) *TerminalEmitter {
	return &TerminalEmitter{w: w}
}

// Emit plays the cue on its own goroutine and returns immediately.
func (e *TerminalEmitter) Emit(kind Kind) {
	go func() {
		if err := e.play(kind); err != nil {
			fmt.Fprintf(os.Stderr, "warning: feedback cue failed: %v\n", err)
		}
	}()
}

const bellGap = 90 * time.Millisecond

func (e *TerminalEmitter) play(kind Kind) error {
	rings := 1
	switch kind {
	case Incorrect:
		rings = 2
	case Complete:
		rings = 3
	}
	for i := 0; i < rings; i++ {
		if i > 0 {
			time.Sleep(bellGap)
		}
		if _, err := e.w.Write([]byte("\a")); err != nil {
			return err
		}
	}
	return nil
}

// Nop is an Emitter that plays nothing, for tests and --quiet.
type Nop struct{}

func (Nop) Emit(Kind) {}
