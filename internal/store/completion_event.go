package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingo/ent"
	"github.com/abhisek/lingo/ent/completionevent"
)

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.CompletionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetXpDelta(data.XPDelta).
		SetHeartsDelta(data.HeartsDelta).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentCompletions(ctx context.Context, limit int) ([]CompletionRecord, error) {
	events, err := r.client.CompletionEvent.Query().
		Order(ent.Desc(completionevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent completions: %w", err)
	}

	records := make([]CompletionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, CompletionRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			LessonID:  e.LessonID,
			XPDelta:   e.XpDelta,
		})
	}
	return records, nil
}
