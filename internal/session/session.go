// Package session drives a single lesson attempt from first challenge to
// completion. State lives in an explicit State value owned by the caller;
// transitions are package functions that mutate it, after the reducer
// pattern — there is no hidden singleton. The surrounding application
// holds the State, renders from it, and persists the completion event.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/grader"
)

// Rewards granted once per completed session, folded into UserProgress by
// the owning application.
const (
	XPReward     = 10
	HeartsReward = 1
)

// Status is the submission status of the challenge under the cursor.
type Status int

const (
	StatusUnanswered Status = iota
	StatusCorrect
	StatusIncorrect
)

func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusIncorrect:
		return "incorrect"
	}
	return "unanswered"
}

// State is the runtime state of one lesson attempt. Created when a lesson
// opens, discarded on exit-without-completion, and turned into a
// CompletionEvent when the queue is exhausted.
type State struct {
	SessionID string
	LessonID  string
	Queue     *Queue

	// Status of the current challenge: unanswered until submit, then
	// correct/incorrect while feedback shows, back to unanswered on
	// advance.
	Status Status

	// Synonyms configures the grader's true/false fallback tier.
	Synonyms grader.Synonyms

	// ContentErr is set when the current challenge is malformed. The
	// challenge is unanswerable: submit is ignored and the UI offers
	// Skip instead. Never treated as correct, never a crash.
	ContentErr error

	// LastSubmission is the submission that produced the current Status,
	// kept for feedback rendering and event persistence.
	LastSubmission grader.Submission

	// Completed marks the terminal state. No transition leaves it.
	Completed bool

	StartTime time.Time

	// Counters for the summary screen.
	Presented int // challenges answered or skipped, including retries
	Correct   int
	Incorrect int
	Skipped   int

	completionEmitted bool
}

// New creates the state for a fresh attempt at the given lesson.
func New(lesson curriculum.Lesson, syn grader.Synonyms) *State {
	s := &State{
		SessionID: uuid.NewString(),
		LessonID:  lesson.ID,
		Queue:     NewQueue(lesson.Challenges),
		Synonyms:  syn,
		StartTime: time.Now(),
	}
	if len(lesson.Challenges) == 0 {
		// Empty lesson: nothing to serve, complete immediately.
		s.Completed = true
		return s
	}
	s.checkCurrent()
	return s
}

// Submit grades the learner's submission against the current challenge
// and returns the resulting status.
//
// It is a no-op while feedback for an earlier submit is still showing
// (the controller is not reentrant mid-transition), after completion,
// when the challenge is unanswerable, or when the submission is
// incomplete for its type (the disabled-submit rule).
func Submit(s *State, sub grader.Submission) Status {
	if s.Completed || s.Status != StatusUnanswered || s.ContentErr != nil {
		return s.Status
	}
	cur, ok := s.Queue.Current()
	if !ok {
		return s.Status
	}
	if !grader.CanSubmit(cur, sub) {
		return StatusUnanswered
	}

	s.LastSubmission = sub
	s.Presented++
	if grader.IsCorrect(cur, sub, s.Synonyms) {
		s.Status = StatusCorrect
		s.Correct++
	} else {
		s.Status = StatusIncorrect
		s.Incorrect++
	}
	return s.Status
}

// Advance moves past an evaluated challenge. On an incorrect answer it
// first appends a retry copy to the queue tail, so the session cannot
// exhaust on a miss — the retry is always still ahead of the cursor.
// Returns true when the session reached Completed.
func Advance(s *State) bool {
	if s.Completed {
		return true
	}
	if s.Status == StatusUnanswered {
		return false // nothing evaluated; submit or skip first
	}

	cur, ok := s.Queue.Current()
	if !ok {
		return false
	}
	if s.Status == StatusIncorrect {
		s.Queue.AppendRetry(cur)
	}
	s.Status = StatusUnanswered
	s.step()
	return s.Completed
}

// Skip moves past an unanswerable challenge without grading it and
// without queueing a retry. It only applies to content-error challenges.
func Skip(s *State) bool {
	if s.Completed || s.ContentErr == nil {
		return s.Completed
	}
	s.Presented++
	s.Skipped++
	s.Status = StatusUnanswered
	s.step()
	return s.Completed
}

func (s *State) step() {
	if !s.Queue.advance() {
		s.Completed = true
		s.ContentErr = nil
		return
	}
	s.checkCurrent()
}

// checkCurrent records whether the challenge under the cursor is
// servable. Malformed content becomes a skippable error state for that
// one challenge.
func (s *State) checkCurrent() {
	s.ContentErr = nil
	if cur, ok := s.Queue.Current(); ok {
		s.ContentErr = curriculum.ValidateChallenge(cur)
	}
}

// CompletionEvent is the one-shot payload emitted when a session reaches
// Completed, for the owning application to fold into UserProgress and
// write through.
type CompletionEvent struct {
	SessionID   string
	LessonID    string
	XPDelta     int
	HeartsDelta int
	CompletedAt time.Time
	Duration    time.Duration
}

// Completion returns the completion event exactly once. Subsequent calls
// (and calls before completion) return ok=false, so replayed UI messages
// can't double-award.
func Completion(s *State, now time.Time) (CompletionEvent, bool) {
	if !s.Completed || s.completionEmitted {
		return CompletionEvent{}, false
	}
	s.completionEmitted = true
	return CompletionEvent{
		SessionID:   s.SessionID,
		LessonID:    s.LessonID,
		XPDelta:     XPReward,
		HeartsDelta: HeartsReward,
		CompletedAt: now,
		Duration:    now.Sub(s.StartTime),
	}, true
}

// Progress is the continuous output consumed by the progress bar.
type Progress struct {
	CurrentIndex int
	QueueLength  int
	Status       Status
}

// Snapshot returns the current progress view. Percent can drop in
// relative terms as retries grow the queue; that reflects real remaining
// work and is intended.
func Snapshot(s *State) Progress {
	return Progress{
		CurrentIndex: s.Queue.Cursor(),
		QueueLength:  s.Queue.Len(),
		Status:       s.Status,
	}
}

// Percent returns cursor/length for display, in [0, 1].
func Percent(s *State) float64 {
	if s.Queue.Len() == 0 {
		return 1
	}
	return float64(s.Queue.Cursor()) / float64(s.Queue.Len())
}
