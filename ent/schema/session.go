package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity: one persona
// attempting one task in one browser context.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.String("persona_id").
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "complete", "failed", "gave_up").
			Default("pending"),
		field.Int("total_steps").
			Default(0).
			Comment("Equals the count of owned steps once terminal"),
		field.Bool("task_completed").
			Default(false),
		field.Text("summary").
			Optional().
			Nillable().
			Comment("For gave_up, carries the reason"),
		field.JSON("emotional_arc", []string{}).
			Optional().
			Comment("Per-step emotional states in order"),
		field.Int("ux_score").
			Range(0, 100).
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("sessions").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
		edge.From("persona", Persona.Type).
			Ref("sessions").
			Field("persona_id").
			Unique().
			Required().
			Immutable(),
		edge.From("task", Task.Type).
			Ref("sessions").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.To("steps", Step.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("issues", Issue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		// One session per (persona, task) pair.
		index.Fields("persona_id", "task_id").
			Unique(),
		index.Fields("study_id", "status"),
	}
}
