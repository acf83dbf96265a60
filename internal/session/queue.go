package session

import (
	"github.com/abhisek/lingo/internal/curriculum"
)

// Queue is the ordered challenge sequence for one lesson attempt: an
// append-only list plus a forward-only cursor. It grows when missed
// challenges are requeued and never shrinks; the cursor never moves
// backwards.
type Queue struct {
	challenges []curriculum.Challenge
	cursor     int
}

// NewQueue builds a queue from a lesson's challenge list. True/false
// challenges without authored options get the canonical two-option set
// here, before anything is served, because the grader's slot logic
// depends on it.
func NewQueue(challenges []curriculum.Challenge) *Queue {
	qs := make([]curriculum.Challenge, len(challenges))
	for i, c := range challenges {
		qs[i] = curriculum.SynthesizeTrueFalseOptions(c)
	}
	return &Queue{challenges: qs}
}

// Current returns the challenge under the cursor. ok is false once the
// cursor has advanced past the end.
func (q *Queue) Current() (curriculum.Challenge, bool) {
	if q.cursor >= len(q.challenges) {
		return curriculum.Challenge{}, false
	}
	return q.challenges[q.cursor], true
}

// Len returns the current queue length, including appended retries.
func (q *Queue) Len() int {
	return len(q.challenges)
}

// Cursor returns the index of the challenge being served.
func (q *Queue) Cursor() int {
	return q.cursor
}

// AppendRetry adds a retry copy of the given challenge to the tail.
// Every missed question recurs exactly once, after all already-scheduled
// work — FIFO remediation, not spaced repetition.
func (q *Queue) AppendRetry(c curriculum.Challenge) {
	q.challenges = append(q.challenges, c.Retry())
}

// advance moves the cursor forward one position and reports whether a
// challenge remains. The cursor is clamped to the length so the
// cursor <= length invariant holds across every transition.
func (q *Queue) advance() bool {
	if q.cursor < len(q.challenges) {
		q.cursor++
	}
	return q.cursor < len(q.challenges)
}
