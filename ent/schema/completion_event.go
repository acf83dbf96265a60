package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records one completed lesson session and the rewards
// it granted.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session that completed"),
		field.String("lesson_id").
			NotEmpty().
			Comment("Lesson that was completed"),
		field.Int("xp_delta").
			Comment("XP granted by this completion"),
		field.Int("hearts_delta").
			Comment("Hearts granted by this completion"),
		field.Int("duration_secs").
			Comment("Session length in seconds"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lesson_id"),
	}
}
