package store

import (
	"context"
	"time"

	"github.com/abhisek/lingo/internal/progress"
)

// AnswerEventData captures one graded submission.
type AnswerEventData struct {
	SessionID     string
	LessonID      string
	ChallengeID   string
	ChallengeType string
	Submission    string // blanks joined by ||
	Correct       bool
	IsRetry       bool
	TimeMs        int
}

// CompletionEventData captures one completed lesson session.
type CompletionEventData struct {
	SessionID    string
	LessonID     string
	XPDelta      int
	HeartsDelta  int
	DurationSecs int
}

// CompletionRecord is a completion event read back for display.
type CompletionRecord struct {
	Sequence  int64
	Timestamp time.Time
	LessonID  string
	XPDelta   int
}

// EventRepo provides append and query access to domain events.
// Writes from the session flow are best-effort side channels: callers
// log failures and move on, they never block grading.
type EventRepo interface {
	// AppendAnswer records a graded submission.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendCompletion records a completed session.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// AnswerStats returns lifetime totals of graded submissions.
	AnswerStats(ctx context.Context) (total, correct int, err error)

	// RecentCompletions returns the most recent completion events,
	// newest first.
	RecentCompletions(ctx context.Context, limit int) ([]CompletionRecord, error)
}

// SnapshotData is the JSON payload of a snapshot row.
type SnapshotData struct {
	Version  int           `json:"version"`
	Progress progress.Data `json:"progress"`
}

// SnapshotVersion is the current snapshot payload version.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner progress snapshots. Latest-wins: loading
// reads only the most recent row, which is the engine's last-write-wins
// boundary.
type SnapshotRepo interface {
	// Save stores a new snapshot stamped with the current sequence.
	Save(ctx context.Context, data SnapshotData) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
