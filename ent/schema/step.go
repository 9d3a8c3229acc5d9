package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Step holds the schema definition for the Step entity: one decide-act-observe
// iteration. Append-only; step_number is strictly increasing per session.
type Step struct {
	ent.Schema
}

// Fields of the Step.
func (Step) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Int("step_number").
			Min(1).
			Immutable(),

		// Page observation
		field.String("page_url"),
		field.String("page_title").
			Optional(),
		field.String("screenshot_ref").
			Optional().
			Comment("Blob path of the step screenshot"),

		// Decision
		field.Text("think_aloud").
			Optional(),
		field.JSON("action", map[string]interface{}{}).
			Comment("models.Action: tagged variant with selector/value"),
		field.Float("confidence").
			Default(0).
			Comment("[0,1]"),
		field.Int("task_progress").
			Default(0).
			Comment("[0,100]"),
		field.Enum("emotional_state").
			Values("curious", "confident", "confused", "frustrated", "anxious", "satisfied", "neutral").
			Default("neutral"),

		// Interaction metrics
		field.Int("click_x").
			Optional().
			Nillable(),
		field.Int("click_y").
			Optional().
			Nillable(),
		field.Int("viewport_w").
			Optional().
			Nillable(),
		field.Int("viewport_h").
			Optional().
			Nillable(),
		field.Int("scroll_y").
			Optional().
			Nillable(),
		field.Int("max_scroll_y").
			Optional().
			Nillable(),
		field.Int("load_time_ms").
			Optional().
			Nillable(),
		field.Int("first_paint_ms").
			Optional().
			Nillable(),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Step.
func (Step) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("steps").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		// Issues weakly reference their step; deleting a step orphans the
		// reference instead of the issue.
		edge.To("issues", Issue.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Step.
func (Step) Indexes() []ent.Index {
	return []ent.Index{
		// At-most-once insertion per (session, step_number).
		index.Fields("session_id", "step_number").
			Unique(),
	}
}
