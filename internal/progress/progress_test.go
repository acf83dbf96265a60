package progress

import (
	"testing"
	"time"

	"github.com/abhisek/lingo/internal/session"
)

func completionAt(lessonID string, at time.Time) session.CompletionEvent {
	return session.CompletionEvent{
		SessionID:   "s",
		LessonID:    lessonID,
		XPDelta:     session.XPReward,
		HeartsDelta: session.HeartsReward,
		CompletedAt: at,
	}
}

func TestApply_AwardsAndRecords(t *testing.T) {
	p := New()
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	p.Apply(completionAt("l1", now))

	if p.XP != 10 || p.Hearts != 1 {
		t.Errorf("xp=%d hearts=%d, want 10, 1", p.XP, p.Hearts)
	}
	if !p.Completed("l1") {
		t.Error("l1 should be in the completed set")
	}
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1", p.Streak)
	}
}

func TestApply_ReplayAccruesButSetIsIdempotent(t *testing.T) {
	p := New()
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	p.Apply(completionAt("l1", now))
	p.Apply(completionAt("l1", now.Add(time.Hour)))

	if p.XP != 20 {
		t.Errorf("xp = %d, want 20 (replays accrue)", p.XP)
	}
	if p.CompletedCount() != 1 {
		t.Errorf("completed count = %d, want 1", p.CompletedCount())
	}
}

func TestStreak(t *testing.T) {
	day1 := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	day5 := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	p := New()
	p.Apply(completionAt("l1", day1))
	p.Apply(completionAt("l2", day1))
	if p.Streak != 1 {
		t.Errorf("same-day streak = %d, want 1", p.Streak)
	}

	p.Apply(completionAt("l3", day2))
	if p.Streak != 2 {
		t.Errorf("next-day streak = %d, want 2", p.Streak)
	}

	p.Apply(completionAt("l4", day5))
	if p.Streak != 1 {
		t.Errorf("streak after gap = %d, want 1", p.Streak)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	p := New()
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	p.Apply(completionAt("b", now))
	p.Apply(completionAt("a", now))

	data := p.Snapshot()
	if len(data.CompletedIDs) != 2 || data.CompletedIDs[0] != "a" {
		t.Errorf("completed ids = %v, want sorted [a b]", data.CompletedIDs)
	}

	restored := FromData(data)
	if restored.XP != p.XP || restored.Hearts != p.Hearts || restored.Streak != p.Streak {
		t.Errorf("restored = %+v, want %+v", restored, p)
	}
	if !restored.Completed("a") || !restored.Completed("b") {
		t.Error("restored completed set is missing entries")
	}
}

func TestFromData_EmptyStreakFloorsAtOne(t *testing.T) {
	p := FromData(Data{})
	if p.Streak != 1 {
		t.Errorf("streak = %d, want 1", p.Streak)
	}
}
