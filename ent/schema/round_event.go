package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records one produced practice round.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the round belongs to"),
		field.String("topic").
			NotEmpty().
			Comment("Topic ID the sentences were generated around"),
		field.String("category").
			NotEmpty().
			Comment("Grammar error category ID"),
		field.String("source").
			NotEmpty().
			Comment("generator or fallback"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("source"),
	}
}
