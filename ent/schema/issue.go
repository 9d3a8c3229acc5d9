package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Issue holds the schema definition for the Issue entity: one usability
// finding, created inline during navigation or by the analysis pass.
type Issue struct {
	ent.Schema
}

// Fields of the Issue.
func (Issue) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("issue_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("step_id").
			Optional().
			Nillable(),
		field.String("element").
			Optional().
			Comment("CSS selector or human description of the element"),
		field.Text("description"),
		field.Enum("severity").
			Values("critical", "major", "minor", "enhancement").
			Default("minor"),
		field.Enum("issue_type").
			Values("ux", "accessibility", "error", "performance").
			Default("ux"),
		field.String("heuristic").
			Optional().
			Nillable().
			Comment("Nielsen heuristic, when the model names one"),
		field.String("wcag_criterion").
			Optional().
			Nillable(),
		field.Text("recommendation").
			Optional().
			Nillable(),
		field.String("page_url").
			Optional(),
		field.Int("times_seen").
			Default(1).
			Min(1),
		field.Bool("is_regression").
			Default(false),
		field.Float("priority_score").
			Default(0).
			Min(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Issue.
func (Issue) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("issues").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
		edge.From("session", Session.Type).
			Ref("issues").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step", Step.Type).
			Ref("issues").
			Field("step_id").
			Unique(),
	}
}

// Indexes of the Issue.
func (Issue) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("study_id", "severity"),
		index.Fields("study_id", "priority_score"),
		index.Fields("page_url"),
	}
}
