package store

import (
	"context"
	"testing"

	"github.com/abhisek/lingo/internal/progress"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAnswerAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "sess-1", LessonID: "lesson-greetings", ChallengeID: "ch-1", ChallengeType: "multiple_choice", Submission: "a", Correct: true, TimeMs: 1200},
		{SessionID: "sess-1", LessonID: "lesson-greetings", ChallengeID: "ch-2", ChallengeType: "fill_blank", Submission: "hola", Correct: false, TimeMs: 3400},
		{SessionID: "sess-1", LessonID: "lesson-greetings", ChallengeID: "ch-2", ChallengeType: "fill_blank", Submission: "hola", Correct: true, IsRetry: true, TimeMs: 900},
	}
	for i, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	total, correct, err := repo.AnswerStats(ctx)
	if err != nil {
		t.Fatalf("answer stats: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if correct != 2 {
		t.Errorf("correct = %d, want 2", correct)
	}
}

func TestAppendCompletionAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	lessons := []string{"lesson-greetings", "lesson-numbers", "lesson-courtesy"}
	for i, id := range lessons {
		err := repo.AppendCompletion(ctx, CompletionEventData{
			SessionID:    "sess-" + id,
			LessonID:     id,
			XPDelta:      10,
			HeartsDelta:  1,
			DurationSecs: 60 + i,
		})
		if err != nil {
			t.Fatalf("append completion %d: %v", i, err)
		}
	}

	records, err := repo.RecentCompletions(ctx, 2)
	if err != nil {
		t.Fatalf("recent completions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].LessonID != "lesson-courtesy" {
		t.Errorf("records[0].LessonID = %q, want 'lesson-courtesy'", records[0].LessonID)
	}
	if records[1].LessonID != "lesson-numbers" {
		t.Errorf("records[1].LessonID = %q, want 'lesson-numbers'", records[1].LessonID)
	}
	if records[0].XPDelta != 10 {
		t.Errorf("records[0].XPDelta = %d, want 10", records[0].XPDelta)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswer(ctx, AnswerEventData{
		SessionID: "sess-1", LessonID: "l1", ChallengeID: "c1",
		ChallengeType: "true_false", Submission: "a", Correct: true,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}
	err = repo.AppendCompletion(ctx, CompletionEventData{
		SessionID: "sess-1", LessonID: "l1", XPDelta: 10, HeartsDelta: 1,
	})
	if err != nil {
		t.Fatalf("append completion: %v", err)
	}

	ae, err := s.Client().AnswerEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query answer event: %v", err)
	}
	ce, err := s.Client().CompletionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query completion event: %v", err)
	}
	if ce.Sequence <= ae.Sequence {
		t.Errorf("completion sequence %d not after answer sequence %d", ce.Sequence, ae.Sequence)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	err = repo.Save(ctx, SnapshotData{
		Version: SnapshotVersion,
		Progress: progress.Data{
			XP:           30,
			Hearts:       3,
			Streak:       2,
			CompletedIDs: []string{"lesson-greetings", "lesson-numbers"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Data.Version != SnapshotVersion {
		t.Errorf("data.version = %d, want %d", snap.Data.Version, SnapshotVersion)
	}
	if snap.Data.Progress.XP != 30 {
		t.Errorf("progress.xp = %d, want 30", snap.Data.Progress.XP)
	}
	if len(snap.Data.Progress.CompletedIDs) != 2 {
		t.Errorf("len(completed) = %d, want 2", len(snap.Data.Progress.CompletedIDs))
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, SnapshotData{
			Version:  SnapshotVersion,
			Progress: progress.Data{XP: (i + 1) * 10},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Progress.XP != 30 {
		t.Errorf("progress.xp = %d, want 30", snap.Data.Progress.XP)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, SnapshotData{
			Version:  SnapshotVersion,
			Progress: progress.Data{XP: (i + 1) * 10},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be the newest save.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Progress.XP != 70 {
		t.Errorf("latest progress.xp = %d, want 70", snap.Data.Progress.XP)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, SnapshotData{Version: SnapshotVersion})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"answer_events", "completion_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
