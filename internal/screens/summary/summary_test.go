package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lingo/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		LessonID:  "lesson-greetings",
		Duration:  95 * time.Second,
		Presented: 5,
		Correct:   4,
		Incorrect: 1,
		Accuracy:  0.8,
		XPEarned:  10,
		Hearts:    1,
	}
}

func TestViewShowsRewards(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)

	if !strings.Contains(view, "+10") {
		t.Error("expected XP reward in view")
	}
	if !strings.Contains(view, "80%") {
		t.Error("expected accuracy in view")
	}
	if !strings.Contains(view, "1:35") {
		t.Error("expected duration in view")
	}
}

func TestEnterPops(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a pop command on enter")
	}
}

func TestNilSummaryRendersEmpty(t *testing.T) {
	s := New(nil)
	if s.View(80, 24) != "" {
		t.Error("expected empty view for nil summary")
	}
}
