package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: one natural-language
// goal a persona attempts. Immutable after study creation.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.Text("description").
			Immutable().
			Comment("e.g. 'Find the pricing page and start a trial'"),
		field.Int("order_index").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("tasks").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
		// Cascade keeps the study-level cascade safe regardless of the
		// order Postgres visits tasks and sessions.
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("study_id", "order_index").
			Unique(),
	}
}
