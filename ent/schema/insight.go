package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Insight holds the schema definition for the Insight entity: one study-level
// synthesis finding. The synthesizer replaces all insights for a study.
type Insight struct {
	ent.Schema
}

// Fields of the Insight.
func (Insight) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("insight_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.Enum("type").
			Values("universal", "persona_specific", "comparative", "recommendation"),
		field.String("title"),
		field.Text("description"),
		field.String("severity").
			Optional().
			Nillable(),
		field.String("impact").
			Optional().
			Nillable(),
		field.String("effort").
			Optional().
			Nillable(),
		field.JSON("personas_affected", []string{}).
			Optional(),
		field.Text("evidence").
			Optional().
			Nillable(),
		field.Int("rank").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Insight.
func (Insight) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("insights").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Insight.
func (Insight) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("study_id", "rank"),
	}
}
