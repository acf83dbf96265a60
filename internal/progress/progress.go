// Package progress holds the learner's authoritative gamification state.
// Lesson Completed/Locked flags elsewhere are a derived view; the
// completed-lesson set here is the single source of truth.
package progress

import (
	"sort"
	"time"

	"github.com/abhisek/lingo/internal/session"
)

// UserProgress is the learner's persistent state. Mutated only by lesson
// completion (Apply) and by explicit reset.
type UserProgress struct {
	XP     int
	Hearts int

	// Streak is the consecutive-day learning streak, always >= 1 once
	// the learner has completed anything.
	Streak     int
	LastActive time.Time // date of the most recent completion

	CompletedLessonIDs map[string]bool
}

// New returns an empty progress record.
func New() *UserProgress {
	return &UserProgress{
		Streak:             1,
		CompletedLessonIDs: make(map[string]bool),
	}
}

// Apply folds a session completion event into the progress record.
// XP and hearts accrue on every completion, replays included; the
// completed-set add is idempotent.
func (p *UserProgress) Apply(ev session.CompletionEvent) {
	p.XP += ev.XPDelta
	p.Hearts += ev.HeartsDelta
	p.CompletedLessonIDs[ev.LessonID] = true
	p.touchStreak(ev.CompletedAt)
}

// touchStreak updates the day streak: activity on the same calendar day
// keeps it, the next day extends it, a longer gap resets it to 1.
func (p *UserProgress) touchStreak(now time.Time) {
	today := dateOf(now)
	switch {
	case p.LastActive.IsZero():
		p.Streak = 1
	case today.Equal(dateOf(p.LastActive)):
		// Same day, streak unchanged.
	case today.Equal(dateOf(p.LastActive).AddDate(0, 0, 1)):
		p.Streak++
	default:
		p.Streak = 1
	}
	p.LastActive = now
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Completed reports whether the lesson has ever been completed.
func (p *UserProgress) Completed(lessonID string) bool {
	return p.CompletedLessonIDs[lessonID]
}

// CompletedCount returns the number of distinct completed lessons.
func (p *UserProgress) CompletedCount() int {
	return len(p.CompletedLessonIDs)
}

// Data is the serialized form persisted in snapshots.
type Data struct {
	XP           int       `json:"xp"`
	Hearts       int       `json:"hearts"`
	Streak       int       `json:"streak"`
	LastActive   time.Time `json:"last_active"`
	CompletedIDs []string  `json:"completed_lesson_ids"`
}

// Snapshot serializes the progress record. The completed set is sorted
// for stable snapshots.
func (p *UserProgress) Snapshot() Data {
	ids := make([]string, 0, len(p.CompletedLessonIDs))
	for id := range p.CompletedLessonIDs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return Data{
		XP:           p.XP,
		Hearts:       p.Hearts,
		Streak:       p.Streak,
		LastActive:   p.LastActive,
		CompletedIDs: ids,
	}
}

// FromData restores a progress record from its serialized form.
func FromData(d Data) *UserProgress {
	p := New()
	p.XP = d.XP
	p.Hearts = d.Hearts
	if d.Streak > 0 {
		p.Streak = d.Streak
	}
	p.LastActive = d.LastActive
	for _, id := range d.CompletedIDs {
		p.CompletedLessonIDs[id] = true
	}
	return p
}
