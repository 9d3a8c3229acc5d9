package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Study holds the schema definition for the Study entity: one usability study
// of a target site, owning its tasks, personas, sessions, and findings.
type Study struct {
	ent.Schema
}

// Fields of the Study.
func (Study) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("study_id").
			Unique().
			Immutable(),
		field.String("url").
			Comment("Target site root, e.g. https://example.com"),
		field.String("starting_path").
			Default("/"),
		field.Enum("status").
			Values("setup", "running", "analyzing", "complete", "failed").
			Default("setup").
			Comment("Monotone lifecycle; complete and failed are terminal"),
		field.Enum("browser_mode").
			Values("local", "cloud").
			Optional().
			Nillable().
			Comment("Owner preference; overridable per run"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Int("duration_seconds").
			Optional().
			Nillable(),
		field.Int("overall_score").
			Range(0, 100).
			Optional().
			Nillable(),
		field.Text("executive_summary").
			Optional().
			Nillable(),
		field.JSON("cost_breakdown", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Study.
func (Study) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("personas", Persona.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("issues", Issue.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("insights", Insight.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("schedules", Schedule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("jobs", StudyJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Study.
func (Study) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}
