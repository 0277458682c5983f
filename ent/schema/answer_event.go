package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded selection within a session.
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
			Comment("Session the selection belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Topic ID of the graded round"),
		field.String("category").
			NotEmpty().
			Comment("Grammar error category ID of the graded round"),
		field.Int("chosen_index").
			Comment("Option index the learner picked (0-2)"),
		field.Bool("correct").
			Comment("Whether the picked option was the correct sentence"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
	}
}
