package feedback

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPlay_DistinctCuePerKind(t *testing.T) {
	cases := []struct {
		kind  Kind
		rings int
	}{
		{Correct, 1},
		{Incorrect, 2},
		{Complete, 3},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		e := NewTerminalEmitter(&buf)
		if err := e.play(tc.kind); err != nil {
			t.Fatalf("play(%v): %v", tc.kind, err)
		}
		if got := strings.Count(buf.String(), "\a"); got != tc.rings {
			t.Errorf("play(%v) rang %d times, want %d", tc.kind, got, tc.rings)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("tty gone")
}

func TestPlay_WriteFailureIsReturnedNotPanicked(t *testing.T) {
	e := NewTerminalEmitter(failingWriter{})
	if err := e.play(Correct); err == nil {
		t.Error("expected an error from a failing writer")
	}
}

func TestEmit_DoesNotBlock(t *testing.T) {
	// Emit must return without waiting for the cue to finish, even when
	// the writer fails.
	e := NewTerminalEmitter(failingWriter{})
	done := make(chan struct{})
	go func() {
		e.Emit(Complete)
		close(done)
	}()
	<-done
}
