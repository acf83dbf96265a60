package store

import (
	"context"
	"fmt"

	"github.com/abhisek/lingo/ent"
	"github.com/abhisek/lingo/ent/answerevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLessonID(data.LessonID).
		SetChallengeID(data.ChallengeID).
		SetChallengeType(data.ChallengeType).
		SetSubmission(data.Submission).
		SetCorrect(data.Correct).
		SetIsRetry(data.IsRetry).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) (int, int, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count answer events: %w", err)
	}

	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct answers: %w", err)
	}
	return total, correct, nil
}
