package session

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/abhisek/lingo/internal/grader"
)

func testLesson() curriculum.Lesson {
	return curriculum.Lesson{
		ID: "lesson-test",
		Challenges: []curriculum.Challenge{
			{
				ID: "c1", Type: curriculum.TypeMultipleChoice, Question: "q1",
				Options: []curriculum.Option{
					{ID: "a", Text: "right"},
					{ID: "b", Text: "wrong"},
				},
				CorrectAnswer: "a",
			},
			{
				ID: "c2", Type: curriculum.TypeTrueFalse, Question: "q2",
				CorrectAnswer: "True",
			},
			{
				ID: "c3", Type: curriculum.TypeFillBlank, Question: "q3",
				CorrectAnswer: "5||7",
			},
		},
	}
}

func testState() *State {
	return New(testLesson(), grader.DefaultSynonyms(language.Spanish))
}

func TestSubmit_CorrectKeepsQueueLength(t *testing.T) {
	s := testState()

	lenBefore := s.Queue.Len()
	if got := Submit(s, grader.Submission{OptionID: "a"}); got != StatusCorrect {
		t.Fatalf("Submit = %v, want correct", got)
	}
	if s.Queue.Len() != lenBefore {
		t.Errorf("queue length = %d, want %d (unchanged on correct)", s.Queue.Len(), lenBefore)
	}
	Advance(s)
	if s.Queue.Len() != lenBefore {
		t.Errorf("queue length after advance = %d, want %d", s.Queue.Len(), lenBefore)
	}
}

func TestAdvance_IncorrectAppendsRetryCopy(t *testing.T) {
	s := testState()

	lenBefore := s.Queue.Len()
	if got := Submit(s, grader.Submission{OptionID: "b"}); got != StatusIncorrect {
		t.Fatalf("Submit = %v, want incorrect", got)
	}
	Advance(s)

	if s.Queue.Len() != lenBefore+1 {
		t.Fatalf("queue length = %d, want %d (+1 on incorrect)", s.Queue.Len(), lenBefore+1)
	}

	retry := s.Queue.challenges[s.Queue.Len()-1]
	orig := s.Queue.challenges[0]
	if !retry.IsRetry {
		t.Error("appended copy must have IsRetry = true")
	}
	if orig.IsRetry {
		t.Error("original challenge must not be mutated")
	}
	if retry.ID != orig.ID || retry.Question != orig.Question || retry.CorrectAnswer != orig.CorrectAnswer {
		t.Error("retry copy must carry identical id/question/answer")
	}
	if len(retry.Options) != len(orig.Options) {
		t.Error("retry copy must carry identical options")
	}
}

func TestSubmit_IgnoredWhileFeedbackShowing(t *testing.T) {
	s := testState()

	Submit(s, grader.Submission{OptionID: "b"})
	// A second submit before advance must not interleave.
	if got := Submit(s, grader.Submission{OptionID: "a"}); got != StatusIncorrect {
		t.Errorf("second submit changed status to %v", got)
	}
	if s.Presented != 1 || s.Incorrect != 1 || s.Correct != 0 {
		t.Errorf("counters moved on ignored submit: %+v", s)
	}
}

func TestSubmit_IncompleteInputIsNotGraded(t *testing.T) {
	s := testState()

	if got := Submit(s, grader.Submission{}); got != StatusUnanswered {
		t.Errorf("empty choice submission graded as %v", got)
	}
	if s.Presented != 0 {
		t.Error("incomplete submission must not count as presented")
	}
}

func TestAdvance_FromUnansweredIsNoOp(t *testing.T) {
	s := testState()

	if Advance(s) {
		t.Error("advance before submit must not complete")
	}
	if s.Queue.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Queue.Cursor())
	}
}

// The end-to-end remediation scenario: answer 1 correct, 2 incorrect,
// 3 correct, then the requeued 2 correct. Four challenges presented,
// one completion event, rewards granted exactly once.
func TestSession_EndToEndWithRetry(t *testing.T) {
	s := testState()

	// c1 correct.
	if got := Submit(s, grader.Submission{OptionID: "a"}); got != StatusCorrect {
		t.Fatalf("c1: %v", got)
	}
	if Advance(s) {
		t.Fatal("completed after c1")
	}

	// c2 (true/false) incorrect: key "True", pick the false slot.
	if got := Submit(s, grader.Submission{OptionID: curriculum.FalseSlot}); got != StatusIncorrect {
		t.Fatalf("c2: %v", got)
	}
	if Advance(s) {
		t.Fatal("completed after c2")
	}

	// c3 correct.
	if got := Submit(s, grader.Submission{Blanks: []string{"5", "7"}}); got != StatusCorrect {
		t.Fatalf("c3: %v", got)
	}
	if Advance(s) {
		t.Fatal("completed before the retry was served")
	}

	// The retry of c2 is now under the cursor.
	cur, ok := s.Queue.Current()
	if !ok || cur.ID != "c2" || !cur.IsRetry {
		t.Fatalf("current = %+v, want retry of c2", cur)
	}
	if got := Submit(s, grader.Submission{OptionID: curriculum.TrueSlot}); got != StatusCorrect {
		t.Fatalf("retry: %v", got)
	}
	if !Advance(s) {
		t.Fatal("session should complete after the retry")
	}

	if s.Presented != 4 {
		t.Errorf("presented = %d, want 4", s.Presented)
	}

	now := time.Now()
	ev, ok := Completion(s, now)
	if !ok {
		t.Fatal("expected a completion event")
	}
	if ev.XPDelta != 10 || ev.HeartsDelta != 1 {
		t.Errorf("deltas = %d xp, %d hearts; want 10, 1", ev.XPDelta, ev.HeartsDelta)
	}
	if ev.LessonID != "lesson-test" || ev.CompletedAt != now {
		t.Errorf("event = %+v", ev)
	}

	// Exactly once.
	if _, ok := Completion(s, now); ok {
		t.Error("completion event must not be emitted twice")
	}
}

func TestCompletion_NotEmittedBeforeCompleted(t *testing.T) {
	s := testState()
	if _, ok := Completion(s, time.Now()); ok {
		t.Error("no completion event before the queue is exhausted")
	}
}

func TestCompleted_IsTerminal(t *testing.T) {
	s := New(curriculum.Lesson{
		ID: "one",
		Challenges: []curriculum.Challenge{
			{ID: "c", Type: curriculum.TypeFillBlank, Question: "q", CorrectAnswer: "x"},
		},
	}, grader.DefaultSynonyms(language.English))

	Submit(s, grader.Submission{Blanks: []string{"x"}})
	if !Advance(s) {
		t.Fatal("expected completion")
	}

	// No transition leaves Completed.
	if got := Submit(s, grader.Submission{Blanks: []string{"x"}}); got != StatusUnanswered {
		t.Errorf("submit after completion: %v", got)
	}
	if !Advance(s) {
		t.Error("advance after completion should stay completed")
	}
	if s.Presented != 1 {
		t.Errorf("presented = %d, want 1", s.Presented)
	}
}

func TestSkip_ContentErrorChallenge(t *testing.T) {
	s := New(curriculum.Lesson{
		ID: "broken",
		Challenges: []curriculum.Challenge{
			{ID: "bad", Type: "matching", Question: "q", CorrectAnswer: "x"},
			{ID: "good", Type: curriculum.TypeFillBlank, Question: "q", CorrectAnswer: "x"},
		},
	}, grader.DefaultSynonyms(language.English))

	if s.ContentErr == nil {
		t.Fatal("malformed first challenge should set ContentErr")
	}

	// Submit is ignored while unanswerable.
	if got := Submit(s, grader.Submission{OptionID: "x"}); got != StatusUnanswered {
		t.Errorf("submit on unanswerable challenge graded as %v", got)
	}

	lenBefore := s.Queue.Len()
	if Skip(s) {
		t.Fatal("skip of first challenge should not complete")
	}
	if s.Queue.Len() != lenBefore {
		t.Error("skip must not queue a retry")
	}
	if s.ContentErr != nil {
		t.Error("ContentErr should clear on a valid next challenge")
	}
	if s.Skipped != 1 || s.Correct != 0 || s.Incorrect != 0 {
		t.Errorf("skip counted wrong: %+v", s)
	}

	// Skip on a healthy challenge is a no-op.
	if Skip(s) {
		t.Error("skip must not apply to a servable challenge")
	}
	if s.Skipped != 1 {
		t.Error("skip on a servable challenge must not count")
	}
}

func TestProgress_PercentReflectsGrowingQueue(t *testing.T) {
	s := testState()

	Submit(s, grader.Submission{OptionID: "a"})
	Advance(s)
	p := Snapshot(s)
	if p.CurrentIndex != 1 || p.QueueLength != 3 {
		t.Fatalf("progress = %+v", p)
	}
	before := Percent(s)

	// Miss c2: the queue grows, so relative progress drops even though
	// the cursor advanced.
	Submit(s, grader.Submission{OptionID: curriculum.FalseSlot})
	Advance(s)
	after := Percent(s)
	if Snapshot(s).QueueLength != 4 {
		t.Fatalf("queue length = %d, want 4", Snapshot(s).QueueLength)
	}
	if after >= before+1.0/3 {
		t.Errorf("percent = %v after miss, %v before; expected growth to dampen it", after, before)
	}
}

func TestCursorNeverRegresses(t *testing.T) {
	s := testState()
	prev := 0
	answers := []grader.Submission{
		{OptionID: "b"},                    // c1 wrong
		{OptionID: curriculum.FalseSlot},   // c2 wrong
		{Blanks: []string{"7", "5"}},       // c3 wrong
		{OptionID: "a"},                    // retry c1
		{OptionID: curriculum.TrueSlot},    // retry c2
		{Blanks: []string{"5", "7"}},       // retry c3
	}
	for _, sub := range answers {
		Submit(s, sub)
		Advance(s)
		cur := s.Queue.Cursor()
		if cur < prev {
			t.Fatalf("cursor regressed: %d -> %d", prev, cur)
		}
		if cur > s.Queue.Len() {
			t.Fatalf("cursor %d past queue length %d", cur, s.Queue.Len())
		}
		prev = cur
	}
	if !s.Completed {
		t.Error("all retries answered correctly; session should be complete")
	}
	if s.Presented != 6 {
		t.Errorf("presented = %d, want 6", s.Presented)
	}
}

func TestNew_EmptyLessonCompletesImmediately(t *testing.T) {
	s := New(curriculum.Lesson{ID: "empty"}, grader.DefaultSynonyms(language.English))
	if !s.Completed {
		t.Error("lesson with no challenges should complete immediately")
	}
	if _, ok := Completion(s, time.Now()); !ok {
		t.Error("empty lesson should still emit its completion event")
	}
}

func TestBuildSummary(t *testing.T) {
	s := testState()
	Submit(s, grader.Submission{OptionID: "a"})
	Advance(s)
	Submit(s, grader.Submission{OptionID: curriculum.FalseSlot})
	Advance(s)

	sum := BuildSummary(s, time.Now())
	if sum.Presented != 2 || sum.Correct != 1 || sum.Incorrect != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Accuracy != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", sum.Accuracy)
	}
	if sum.XPEarned != 0 {
		t.Error("no xp before completion")
	}
}
