package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudyJob holds the schema definition for the StudyJob entity: the claimable
// unit workers pull to execute one study run.
type StudyJob struct {
	ent.Schema
}

// Fields of the StudyJob.
func (StudyJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("study_id").
			Immutable(),
		field.Enum("browser_mode").
			Values("local", "cloud").
			Optional().
			Nillable().
			Comment("Per-run override; empty means resolve from study preference"),
		field.Enum("status").
			Values("pending", "claimed", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Int("attempts").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.Int("timeout_seconds").
			Default(600),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
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

// Edges of the StudyJob.
func (StudyJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("study", Study.Type).
			Ref("jobs").
			Field("study_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StudyJob.
func (StudyJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		// Partial index keeps the claim scan cheap.
		index.Fields("created_at").
			Annotations(entsql.IndexWhere("status = 'pending'")),
		// One live job per study: concurrent enqueues must not race two runs.
		index.Fields("study_id").
			Unique().
			Annotations(entsql.IndexWhere("status IN ('pending', 'claimed', 'running')")),
	}
}
