package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded submission within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session this answer belongs to"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson being attempted"),
		field.String("challenge_id").
			NotEmpty().
			Comment("Challenge that was answered"),
		field.String("challenge_type").
			NotEmpty().
			Comment("multiple_choice, true_false, or fill_blank"),
		field.String("submission").
			Comment("What the learner submitted, blanks joined by ||"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Bool("is_retry").
			Comment("True when this was a requeued retry copy"),
		field.Int("time_ms").
			Comment("Milliseconds from display to submit"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("lesson_id"),
		index.Fields("correct"),
	}
}
