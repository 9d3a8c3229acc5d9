package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Persona holds the schema definition for the Persona entity: one simulated
// user profile. Created at study setup, immutable thereafter.
type Persona struct {
	ent.Schema
}

// Fields of the Persona.
func (Persona) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("persona_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.String("template_id").
			Optional().
			Nillable().
			Comment("Registry template this persona was derived from"),
		field.JSON("profile", map[string]interface{}{}).
			Comment("models.PersonaProfile: traits, goals, frustrations, device"),
		field.String("model_choice").
			Optional().
			Nillable().
			Comment("Decision model override for this persona"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Persona.
func (Persona) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("personas").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
		edge.To("sessions", Session.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Persona.
func (Persona) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("study_id"),
	}
}
