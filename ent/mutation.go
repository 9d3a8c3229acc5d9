// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/predicate"
	"github.com/wanderlens/wanderlens/ent/schedule"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeInsight  = "Insight"
	TypeIssue    = "Issue"
	TypePersona  = "Persona"
	TypeSchedule = "Schedule"
	TypeSession  = "Session"
	TypeStep     = "Step"
	TypeStudy    = "Study"
	TypeStudyJob = "StudyJob"
	TypeTask     = "Task"
)

// InsightMutation represents an operation that mutates the Insight nodes in the graph.
type InsightMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	_type                   *insight.Type
	title                   *string
	description             *string
	severity                *string
	impact                  *string
	effort                  *string
	personas_affected       *[]string
	appendpersonas_affected []string
	evidence                *string
	rank                    *int
	addrank                 *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	study                   *string
	clearedstudy            bool
	done                    bool
	oldValue                func(context.Context) (*Insight, error)
	predicates              []predicate.Insight
}

var _ ent.Mutation = (*InsightMutation)(nil)

// insightOption allows management of the mutation configuration using functional options.
type insightOption func(*InsightMutation)

// newInsightMutation creates new mutation for the Insight entity.
func newInsightMutation(c config, op Op, opts ...insightOption) *InsightMutation {
	m := &InsightMutation{
		config:        c,
		op:            op,
		typ:           TypeInsight,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInsightID sets the ID field of the mutation.
func withInsightID(id string) insightOption {
	return func(m *InsightMutation) {
		var (
			err   error
			once  sync.Once
			value *Insight
		)
		m.oldValue = func(ctx context.Context) (*Insight, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Insight.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInsight sets the old Insight of the mutation.
func withInsight(node *Insight) insightOption {
	return func(m *InsightMutation) {
		m.oldValue = func(context.Context) (*Insight, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InsightMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InsightMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Insight entities.
func (m *InsightMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InsightMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InsightMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Insight.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *InsightMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *InsightMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *InsightMutation) ResetStudyID() {
	m.study = nil
}

// SetType sets the "type" field.
func (m *InsightMutation) SetType(i insight.Type) {
	m._type = &i
}

// GetType returns the value of the "type" field in the mutation.
func (m *InsightMutation) GetType() (r insight.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldType(ctx context.Context) (v insight.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *InsightMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *InsightMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *InsightMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *InsightMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *InsightMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InsightMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *InsightMutation) ResetDescription() {
	m.description = nil
}

// SetSeverity sets the "severity" field.
func (m *InsightMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *InsightMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldSeverity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *InsightMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[insight.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *InsightMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[insight.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *InsightMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, insight.FieldSeverity)
}

// SetImpact sets the "impact" field.
func (m *InsightMutation) SetImpact(s string) {
	m.impact = &s
}

// Impact returns the value of the "impact" field in the mutation.
func (m *InsightMutation) Impact() (r string, exists bool) {
	v := m.impact
	if v == nil {
		return
	}
	return *v, true
}

// OldImpact returns the old "impact" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldImpact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImpact: %w", err)
	}
	return oldValue.Impact, nil
}

// ClearImpact clears the value of the "impact" field.
func (m *InsightMutation) ClearImpact() {
	m.impact = nil
	m.clearedFields[insight.FieldImpact] = struct{}{}
}

// ImpactCleared returns if the "impact" field was cleared in this mutation.
func (m *InsightMutation) ImpactCleared() bool {
	_, ok := m.clearedFields[insight.FieldImpact]
	return ok
}

// ResetImpact resets all changes to the "impact" field.
func (m *InsightMutation) ResetImpact() {
	m.impact = nil
	delete(m.clearedFields, insight.FieldImpact)
}

// SetEffort sets the "effort" field.
func (m *InsightMutation) SetEffort(s string) {
	m.effort = &s
}

// Effort returns the value of the "effort" field in the mutation.
func (m *InsightMutation) Effort() (r string, exists bool) {
	v := m.effort
	if v == nil {
		return
	}
	return *v, true
}

// OldEffort returns the old "effort" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldEffort(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffort: %w", err)
	}
	return oldValue.Effort, nil
}

// ClearEffort clears the value of the "effort" field.
func (m *InsightMutation) ClearEffort() {
	m.effort = nil
	m.clearedFields[insight.FieldEffort] = struct{}{}
}

// EffortCleared returns if the "effort" field was cleared in this mutation.
func (m *InsightMutation) EffortCleared() bool {
	_, ok := m.clearedFields[insight.FieldEffort]
	return ok
}

// ResetEffort resets all changes to the "effort" field.
func (m *InsightMutation) ResetEffort() {
	m.effort = nil
	delete(m.clearedFields, insight.FieldEffort)
}

// SetPersonasAffected sets the "personas_affected" field.
func (m *InsightMutation) SetPersonasAffected(s []string) {
	m.personas_affected = &s
	m.appendpersonas_affected = nil
}

// PersonasAffected returns the value of the "personas_affected" field in the mutation.
func (m *InsightMutation) PersonasAffected() (r []string, exists bool) {
	v := m.personas_affected
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonasAffected returns the old "personas_affected" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldPersonasAffected(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonasAffected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonasAffected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonasAffected: %w", err)
	}
	return oldValue.PersonasAffected, nil
}

// AppendPersonasAffected adds s to the "personas_affected" field.
func (m *InsightMutation) AppendPersonasAffected(s []string) {
	m.appendpersonas_affected = append(m.appendpersonas_affected, s...)
}

// AppendedPersonasAffected returns the list of values that were appended to the "personas_affected" field in this mutation.
func (m *InsightMutation) AppendedPersonasAffected() ([]string, bool) {
	if len(m.appendpersonas_affected) == 0 {
		return nil, false
	}
	return m.appendpersonas_affected, true
}

// ClearPersonasAffected clears the value of the "personas_affected" field.
func (m *InsightMutation) ClearPersonasAffected() {
	m.personas_affected = nil
	m.appendpersonas_affected = nil
	m.clearedFields[insight.FieldPersonasAffected] = struct{}{}
}

// PersonasAffectedCleared returns if the "personas_affected" field was cleared in this mutation.
func (m *InsightMutation) PersonasAffectedCleared() bool {
	_, ok := m.clearedFields[insight.FieldPersonasAffected]
	return ok
}

// ResetPersonasAffected resets all changes to the "personas_affected" field.
func (m *InsightMutation) ResetPersonasAffected() {
	m.personas_affected = nil
	m.appendpersonas_affected = nil
	delete(m.clearedFields, insight.FieldPersonasAffected)
}

// SetEvidence sets the "evidence" field.
func (m *InsightMutation) SetEvidence(s string) {
	m.evidence = &s
}

// Evidence returns the value of the "evidence" field in the mutation.
func (m *InsightMutation) Evidence() (r string, exists bool) {
	v := m.evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidence returns the old "evidence" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldEvidence(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidence: %w", err)
	}
	return oldValue.Evidence, nil
}

// ClearEvidence clears the value of the "evidence" field.
func (m *InsightMutation) ClearEvidence() {
	m.evidence = nil
	m.clearedFields[insight.FieldEvidence] = struct{}{}
}

// EvidenceCleared returns if the "evidence" field was cleared in this mutation.
func (m *InsightMutation) EvidenceCleared() bool {
	_, ok := m.clearedFields[insight.FieldEvidence]
	return ok
}

// ResetEvidence resets all changes to the "evidence" field.
func (m *InsightMutation) ResetEvidence() {
	m.evidence = nil
	delete(m.clearedFields, insight.FieldEvidence)
}

// SetRank sets the "rank" field.
func (m *InsightMutation) SetRank(i int) {
	m.rank = &i
	m.addrank = nil
}

// Rank returns the value of the "rank" field in the mutation.
func (m *InsightMutation) Rank() (r int, exists bool) {
	v := m.rank
	if v == nil {
		return
	}
	return *v, true
}

// OldRank returns the old "rank" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRank: %w", err)
	}
	return oldValue.Rank, nil
}

// AddRank adds i to the "rank" field.
func (m *InsightMutation) AddRank(i int) {
	if m.addrank != nil {
		*m.addrank += i
	} else {
		m.addrank = &i
	}
}

// AddedRank returns the value that was added to the "rank" field in this mutation.
func (m *InsightMutation) AddedRank() (r int, exists bool) {
	v := m.addrank
	if v == nil {
		return
	}
	return *v, true
}

// ResetRank resets all changes to the "rank" field.
func (m *InsightMutation) ResetRank() {
	m.rank = nil
	m.addrank = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InsightMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InsightMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Insight entity.
// If the Insight object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InsightMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InsightMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *InsightMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[insight.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *InsightMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *InsightMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *InsightMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// Where appends a list predicates to the InsightMutation builder.
func (m *InsightMutation) Where(ps ...predicate.Insight) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InsightMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InsightMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Insight, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InsightMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InsightMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Insight).
func (m *InsightMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InsightMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.study != nil {
		fields = append(fields, insight.FieldStudyID)
	}
	if m._type != nil {
		fields = append(fields, insight.FieldType)
	}
	if m.title != nil {
		fields = append(fields, insight.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, insight.FieldDescription)
	}
	if m.severity != nil {
		fields = append(fields, insight.FieldSeverity)
	}
	if m.impact != nil {
		fields = append(fields, insight.FieldImpact)
	}
	if m.effort != nil {
		fields = append(fields, insight.FieldEffort)
	}
	if m.personas_affected != nil {
		fields = append(fields, insight.FieldPersonasAffected)
	}
	if m.evidence != nil {
		fields = append(fields, insight.FieldEvidence)
	}
	if m.rank != nil {
		fields = append(fields, insight.FieldRank)
	}
	if m.created_at != nil {
		fields = append(fields, insight.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InsightMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldStudyID:
		return m.StudyID()
	case insight.FieldType:
		return m.GetType()
	case insight.FieldTitle:
		return m.Title()
	case insight.FieldDescription:
		return m.Description()
	case insight.FieldSeverity:
		return m.Severity()
	case insight.FieldImpact:
		return m.Impact()
	case insight.FieldEffort:
		return m.Effort()
	case insight.FieldPersonasAffected:
		return m.PersonasAffected()
	case insight.FieldEvidence:
		return m.Evidence()
	case insight.FieldRank:
		return m.Rank()
	case insight.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InsightMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case insight.FieldStudyID:
		return m.OldStudyID(ctx)
	case insight.FieldType:
		return m.OldType(ctx)
	case insight.FieldTitle:
		return m.OldTitle(ctx)
	case insight.FieldDescription:
		return m.OldDescription(ctx)
	case insight.FieldSeverity:
		return m.OldSeverity(ctx)
	case insight.FieldImpact:
		return m.OldImpact(ctx)
	case insight.FieldEffort:
		return m.OldEffort(ctx)
	case insight.FieldPersonasAffected:
		return m.OldPersonasAffected(ctx)
	case insight.FieldEvidence:
		return m.OldEvidence(ctx)
	case insight.FieldRank:
		return m.OldRank(ctx)
	case insight.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Insight field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) SetField(name string, value ent.Value) error {
	switch name {
	case insight.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case insight.FieldType:
		v, ok := value.(insight.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case insight.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case insight.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case insight.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case insight.FieldImpact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImpact(v)
		return nil
	case insight.FieldEffort:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffort(v)
		return nil
	case insight.FieldPersonasAffected:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonasAffected(v)
		return nil
	case insight.FieldEvidence:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidence(v)
		return nil
	case insight.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRank(v)
		return nil
	case insight.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InsightMutation) AddedFields() []string {
	var fields []string
	if m.addrank != nil {
		fields = append(fields, insight.FieldRank)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InsightMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case insight.FieldRank:
		return m.AddedRank()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InsightMutation) AddField(name string, value ent.Value) error {
	switch name {
	case insight.FieldRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRank(v)
		return nil
	}
	return fmt.Errorf("unknown Insight numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InsightMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(insight.FieldSeverity) {
		fields = append(fields, insight.FieldSeverity)
	}
	if m.FieldCleared(insight.FieldImpact) {
		fields = append(fields, insight.FieldImpact)
	}
	if m.FieldCleared(insight.FieldEffort) {
		fields = append(fields, insight.FieldEffort)
	}
	if m.FieldCleared(insight.FieldPersonasAffected) {
		fields = append(fields, insight.FieldPersonasAffected)
	}
	if m.FieldCleared(insight.FieldEvidence) {
		fields = append(fields, insight.FieldEvidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InsightMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InsightMutation) ClearField(name string) error {
	switch name {
	case insight.FieldSeverity:
		m.ClearSeverity()
		return nil
	case insight.FieldImpact:
		m.ClearImpact()
		return nil
	case insight.FieldEffort:
		m.ClearEffort()
		return nil
	case insight.FieldPersonasAffected:
		m.ClearPersonasAffected()
		return nil
	case insight.FieldEvidence:
		m.ClearEvidence()
		return nil
	}
	return fmt.Errorf("unknown Insight nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InsightMutation) ResetField(name string) error {
	switch name {
	case insight.FieldStudyID:
		m.ResetStudyID()
		return nil
	case insight.FieldType:
		m.ResetType()
		return nil
	case insight.FieldTitle:
		m.ResetTitle()
		return nil
	case insight.FieldDescription:
		m.ResetDescription()
		return nil
	case insight.FieldSeverity:
		m.ResetSeverity()
		return nil
	case insight.FieldImpact:
		m.ResetImpact()
		return nil
	case insight.FieldEffort:
		m.ResetEffort()
		return nil
	case insight.FieldPersonasAffected:
		m.ResetPersonasAffected()
		return nil
	case insight.FieldEvidence:
		m.ResetEvidence()
		return nil
	case insight.FieldRank:
		m.ResetRank()
		return nil
	case insight.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Insight field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InsightMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.study != nil {
		edges = append(edges, insight.EdgeStudy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InsightMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case insight.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InsightMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InsightMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InsightMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstudy {
		edges = append(edges, insight.EdgeStudy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InsightMutation) EdgeCleared(name string) bool {
	switch name {
	case insight.EdgeStudy:
		return m.clearedstudy
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InsightMutation) ClearEdge(name string) error {
	switch name {
	case insight.EdgeStudy:
		m.ClearStudy()
		return nil
	}
	return fmt.Errorf("unknown Insight unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InsightMutation) ResetEdge(name string) error {
	switch name {
	case insight.EdgeStudy:
		m.ResetStudy()
		return nil
	}
	return fmt.Errorf("unknown Insight edge %s", name)
}

// IssueMutation represents an operation that mutates the Issue nodes in the graph.
type IssueMutation struct {
	config
	op                Op
	typ               string
	id                *string
	element           *string
	description       *string
	severity          *issue.Severity
	issue_type        *issue.IssueType
	heuristic         *string
	wcag_criterion    *string
	recommendation    *string
	page_url          *string
	times_seen        *int
	addtimes_seen     *int
	is_regression     *bool
	priority_score    *float64
	addpriority_score *float64
	created_at        *time.Time
	clearedFields     map[string]struct{}
	study             *string
	clearedstudy      bool
	session           *string
	clearedsession    bool
	step              *string
	clearedstep       bool
	done              bool
	oldValue          func(context.Context) (*Issue, error)
	predicates        []predicate.Issue
}

var _ ent.Mutation = (*IssueMutation)(nil)

// issueOption allows management of the mutation configuration using functional options.
type issueOption func(*IssueMutation)

// newIssueMutation creates new mutation for the Issue entity.
func newIssueMutation(c config, op Op, opts ...issueOption) *IssueMutation {
	m := &IssueMutation{
		config:        c,
		op:            op,
		typ:           TypeIssue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIssueID sets the ID field of the mutation.
func withIssueID(id string) issueOption {
	return func(m *IssueMutation) {
		var (
			err   error
			once  sync.Once
			value *Issue
		)
		m.oldValue = func(ctx context.Context) (*Issue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Issue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIssue sets the old Issue of the mutation.
func withIssue(node *Issue) issueOption {
	return func(m *IssueMutation) {
		m.oldValue = func(context.Context) (*Issue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IssueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IssueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Issue entities.
func (m *IssueMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IssueMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IssueMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Issue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *IssueMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *IssueMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *IssueMutation) ResetStudyID() {
	m.study = nil
}

// SetSessionID sets the "session_id" field.
func (m *IssueMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *IssueMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *IssueMutation) ResetSessionID() {
	m.session = nil
}

// SetStepID sets the "step_id" field.
func (m *IssueMutation) SetStepID(s string) {
	m.step = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *IssueMutation) StepID() (r string, exists bool) {
	v := m.step
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *IssueMutation) ClearStepID() {
	m.step = nil
	m.clearedFields[issue.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *IssueMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[issue.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *IssueMutation) ResetStepID() {
	m.step = nil
	delete(m.clearedFields, issue.FieldStepID)
}

// SetElement sets the "element" field.
func (m *IssueMutation) SetElement(s string) {
	m.element = &s
}

// Element returns the value of the "element" field in the mutation.
func (m *IssueMutation) Element() (r string, exists bool) {
	v := m.element
	if v == nil {
		return
	}
	return *v, true
}

// OldElement returns the old "element" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldElement(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElement is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElement requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElement: %w", err)
	}
	return oldValue.Element, nil
}

// ClearElement clears the value of the "element" field.
func (m *IssueMutation) ClearElement() {
	m.element = nil
	m.clearedFields[issue.FieldElement] = struct{}{}
}

// ElementCleared returns if the "element" field was cleared in this mutation.
func (m *IssueMutation) ElementCleared() bool {
	_, ok := m.clearedFields[issue.FieldElement]
	return ok
}

// ResetElement resets all changes to the "element" field.
func (m *IssueMutation) ResetElement() {
	m.element = nil
	delete(m.clearedFields, issue.FieldElement)
}

// SetDescription sets the "description" field.
func (m *IssueMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *IssueMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *IssueMutation) ResetDescription() {
	m.description = nil
}

// SetSeverity sets the "severity" field.
func (m *IssueMutation) SetSeverity(i issue.Severity) {
	m.severity = &i
}

// Severity returns the value of the "severity" field in the mutation.
func (m *IssueMutation) Severity() (r issue.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldSeverity(ctx context.Context) (v issue.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *IssueMutation) ResetSeverity() {
	m.severity = nil
}

// SetIssueType sets the "issue_type" field.
func (m *IssueMutation) SetIssueType(it issue.IssueType) {
	m.issue_type = &it
}

// IssueType returns the value of the "issue_type" field in the mutation.
func (m *IssueMutation) IssueType() (r issue.IssueType, exists bool) {
	v := m.issue_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueType returns the old "issue_type" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldIssueType(ctx context.Context) (v issue.IssueType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueType: %w", err)
	}
	return oldValue.IssueType, nil
}

// ResetIssueType resets all changes to the "issue_type" field.
func (m *IssueMutation) ResetIssueType() {
	m.issue_type = nil
}

// SetHeuristic sets the "heuristic" field.
func (m *IssueMutation) SetHeuristic(s string) {
	m.heuristic = &s
}

// Heuristic returns the value of the "heuristic" field in the mutation.
func (m *IssueMutation) Heuristic() (r string, exists bool) {
	v := m.heuristic
	if v == nil {
		return
	}
	return *v, true
}

// OldHeuristic returns the old "heuristic" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldHeuristic(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeuristic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeuristic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeuristic: %w", err)
	}
	return oldValue.Heuristic, nil
}

// ClearHeuristic clears the value of the "heuristic" field.
func (m *IssueMutation) ClearHeuristic() {
	m.heuristic = nil
	m.clearedFields[issue.FieldHeuristic] = struct{}{}
}

// HeuristicCleared returns if the "heuristic" field was cleared in this mutation.
func (m *IssueMutation) HeuristicCleared() bool {
	_, ok := m.clearedFields[issue.FieldHeuristic]
	return ok
}

// ResetHeuristic resets all changes to the "heuristic" field.
func (m *IssueMutation) ResetHeuristic() {
	m.heuristic = nil
	delete(m.clearedFields, issue.FieldHeuristic)
}

// SetWcagCriterion sets the "wcag_criterion" field.
func (m *IssueMutation) SetWcagCriterion(s string) {
	m.wcag_criterion = &s
}

// WcagCriterion returns the value of the "wcag_criterion" field in the mutation.
func (m *IssueMutation) WcagCriterion() (r string, exists bool) {
	v := m.wcag_criterion
	if v == nil {
		return
	}
	return *v, true
}

// OldWcagCriterion returns the old "wcag_criterion" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldWcagCriterion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWcagCriterion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWcagCriterion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWcagCriterion: %w", err)
	}
	return oldValue.WcagCriterion, nil
}

// ClearWcagCriterion clears the value of the "wcag_criterion" field.
func (m *IssueMutation) ClearWcagCriterion() {
	m.wcag_criterion = nil
	m.clearedFields[issue.FieldWcagCriterion] = struct{}{}
}

// WcagCriterionCleared returns if the "wcag_criterion" field was cleared in this mutation.
func (m *IssueMutation) WcagCriterionCleared() bool {
	_, ok := m.clearedFields[issue.FieldWcagCriterion]
	return ok
}

// ResetWcagCriterion resets all changes to the "wcag_criterion" field.
func (m *IssueMutation) ResetWcagCriterion() {
	m.wcag_criterion = nil
	delete(m.clearedFields, issue.FieldWcagCriterion)
}

// SetRecommendation sets the "recommendation" field.
func (m *IssueMutation) SetRecommendation(s string) {
	m.recommendation = &s
}

// Recommendation returns the value of the "recommendation" field in the mutation.
func (m *IssueMutation) Recommendation() (r string, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendation returns the old "recommendation" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldRecommendation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendation: %w", err)
	}
	return oldValue.Recommendation, nil
}

// ClearRecommendation clears the value of the "recommendation" field.
func (m *IssueMutation) ClearRecommendation() {
	m.recommendation = nil
	m.clearedFields[issue.FieldRecommendation] = struct{}{}
}

// RecommendationCleared returns if the "recommendation" field was cleared in this mutation.
func (m *IssueMutation) RecommendationCleared() bool {
	_, ok := m.clearedFields[issue.FieldRecommendation]
	return ok
}

// ResetRecommendation resets all changes to the "recommendation" field.
func (m *IssueMutation) ResetRecommendation() {
	m.recommendation = nil
	delete(m.clearedFields, issue.FieldRecommendation)
}

// SetPageURL sets the "page_url" field.
func (m *IssueMutation) SetPageURL(s string) {
	m.page_url = &s
}

// PageURL returns the value of the "page_url" field in the mutation.
func (m *IssueMutation) PageURL() (r string, exists bool) {
	v := m.page_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPageURL returns the old "page_url" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldPageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageURL: %w", err)
	}
	return oldValue.PageURL, nil
}

// ClearPageURL clears the value of the "page_url" field.
func (m *IssueMutation) ClearPageURL() {
	m.page_url = nil
	m.clearedFields[issue.FieldPageURL] = struct{}{}
}

// PageURLCleared returns if the "page_url" field was cleared in this mutation.
func (m *IssueMutation) PageURLCleared() bool {
	_, ok := m.clearedFields[issue.FieldPageURL]
	return ok
}

// ResetPageURL resets all changes to the "page_url" field.
func (m *IssueMutation) ResetPageURL() {
	m.page_url = nil
	delete(m.clearedFields, issue.FieldPageURL)
}

// SetTimesSeen sets the "times_seen" field.
func (m *IssueMutation) SetTimesSeen(i int) {
	m.times_seen = &i
	m.addtimes_seen = nil
}

// TimesSeen returns the value of the "times_seen" field in the mutation.
func (m *IssueMutation) TimesSeen() (r int, exists bool) {
	v := m.times_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldTimesSeen returns the old "times_seen" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldTimesSeen(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimesSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimesSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimesSeen: %w", err)
	}
	return oldValue.TimesSeen, nil
}

// AddTimesSeen adds i to the "times_seen" field.
func (m *IssueMutation) AddTimesSeen(i int) {
	if m.addtimes_seen != nil {
		*m.addtimes_seen += i
	} else {
		m.addtimes_seen = &i
	}
}

// AddedTimesSeen returns the value that was added to the "times_seen" field in this mutation.
func (m *IssueMutation) AddedTimesSeen() (r int, exists bool) {
	v := m.addtimes_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimesSeen resets all changes to the "times_seen" field.
func (m *IssueMutation) ResetTimesSeen() {
	m.times_seen = nil
	m.addtimes_seen = nil
}

// SetIsRegression sets the "is_regression" field.
func (m *IssueMutation) SetIsRegression(b bool) {
	m.is_regression = &b
}

// IsRegression returns the value of the "is_regression" field in the mutation.
func (m *IssueMutation) IsRegression() (r bool, exists bool) {
	v := m.is_regression
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRegression returns the old "is_regression" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldIsRegression(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRegression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRegression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRegression: %w", err)
	}
	return oldValue.IsRegression, nil
}

// ResetIsRegression resets all changes to the "is_regression" field.
func (m *IssueMutation) ResetIsRegression() {
	m.is_regression = nil
}

// SetPriorityScore sets the "priority_score" field.
func (m *IssueMutation) SetPriorityScore(f float64) {
	m.priority_score = &f
	m.addpriority_score = nil
}

// PriorityScore returns the value of the "priority_score" field in the mutation.
func (m *IssueMutation) PriorityScore() (r float64, exists bool) {
	v := m.priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityScore returns the old "priority_score" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldPriorityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityScore: %w", err)
	}
	return oldValue.PriorityScore, nil
}

// AddPriorityScore adds f to the "priority_score" field.
func (m *IssueMutation) AddPriorityScore(f float64) {
	if m.addpriority_score != nil {
		*m.addpriority_score += f
	} else {
		m.addpriority_score = &f
	}
}

// AddedPriorityScore returns the value that was added to the "priority_score" field in this mutation.
func (m *IssueMutation) AddedPriorityScore() (r float64, exists bool) {
	v := m.addpriority_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityScore resets all changes to the "priority_score" field.
func (m *IssueMutation) ResetPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IssueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IssueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Issue entity.
// If the Issue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IssueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IssueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *IssueMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[issue.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *IssueMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *IssueMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *IssueMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// ClearSession clears the "session" edge to the Session entity.
func (m *IssueMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[issue.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *IssueMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *IssueMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *IssueMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearStep clears the "step" edge to the Step entity.
func (m *IssueMutation) ClearStep() {
	m.clearedstep = true
	m.clearedFields[issue.FieldStepID] = struct{}{}
}

// StepCleared reports if the "step" edge to the Step entity was cleared.
func (m *IssueMutation) StepCleared() bool {
	return m.StepIDCleared() || m.clearedstep
}

// StepIDs returns the "step" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StepID instead. It exists only for internal usage by the builders.
func (m *IssueMutation) StepIDs() (ids []string) {
	if id := m.step; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStep resets all changes to the "step" edge.
func (m *IssueMutation) ResetStep() {
	m.step = nil
	m.clearedstep = false
}

// Where appends a list predicates to the IssueMutation builder.
func (m *IssueMutation) Where(ps ...predicate.Issue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IssueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IssueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Issue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IssueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IssueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Issue).
func (m *IssueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IssueMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.study != nil {
		fields = append(fields, issue.FieldStudyID)
	}
	if m.session != nil {
		fields = append(fields, issue.FieldSessionID)
	}
	if m.step != nil {
		fields = append(fields, issue.FieldStepID)
	}
	if m.element != nil {
		fields = append(fields, issue.FieldElement)
	}
	if m.description != nil {
		fields = append(fields, issue.FieldDescription)
	}
	if m.severity != nil {
		fields = append(fields, issue.FieldSeverity)
	}
	if m.issue_type != nil {
		fields = append(fields, issue.FieldIssueType)
	}
	if m.heuristic != nil {
		fields = append(fields, issue.FieldHeuristic)
	}
	if m.wcag_criterion != nil {
		fields = append(fields, issue.FieldWcagCriterion)
	}
	if m.recommendation != nil {
		fields = append(fields, issue.FieldRecommendation)
	}
	if m.page_url != nil {
		fields = append(fields, issue.FieldPageURL)
	}
	if m.times_seen != nil {
		fields = append(fields, issue.FieldTimesSeen)
	}
	if m.is_regression != nil {
		fields = append(fields, issue.FieldIsRegression)
	}
	if m.priority_score != nil {
		fields = append(fields, issue.FieldPriorityScore)
	}
	if m.created_at != nil {
		fields = append(fields, issue.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IssueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case issue.FieldStudyID:
		return m.StudyID()
	case issue.FieldSessionID:
		return m.SessionID()
	case issue.FieldStepID:
		return m.StepID()
	case issue.FieldElement:
		return m.Element()
	case issue.FieldDescription:
		return m.Description()
	case issue.FieldSeverity:
		return m.Severity()
	case issue.FieldIssueType:
		return m.IssueType()
	case issue.FieldHeuristic:
		return m.Heuristic()
	case issue.FieldWcagCriterion:
		return m.WcagCriterion()
	case issue.FieldRecommendation:
		return m.Recommendation()
	case issue.FieldPageURL:
		return m.PageURL()
	case issue.FieldTimesSeen:
		return m.TimesSeen()
	case issue.FieldIsRegression:
		return m.IsRegression()
	case issue.FieldPriorityScore:
		return m.PriorityScore()
	case issue.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IssueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case issue.FieldStudyID:
		return m.OldStudyID(ctx)
	case issue.FieldSessionID:
		return m.OldSessionID(ctx)
	case issue.FieldStepID:
		return m.OldStepID(ctx)
	case issue.FieldElement:
		return m.OldElement(ctx)
	case issue.FieldDescription:
		return m.OldDescription(ctx)
	case issue.FieldSeverity:
		return m.OldSeverity(ctx)
	case issue.FieldIssueType:
		return m.OldIssueType(ctx)
	case issue.FieldHeuristic:
		return m.OldHeuristic(ctx)
	case issue.FieldWcagCriterion:
		return m.OldWcagCriterion(ctx)
	case issue.FieldRecommendation:
		return m.OldRecommendation(ctx)
	case issue.FieldPageURL:
		return m.OldPageURL(ctx)
	case issue.FieldTimesSeen:
		return m.OldTimesSeen(ctx)
	case issue.FieldIsRegression:
		return m.OldIsRegression(ctx)
	case issue.FieldPriorityScore:
		return m.OldPriorityScore(ctx)
	case issue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Issue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IssueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case issue.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case issue.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case issue.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case issue.FieldElement:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElement(v)
		return nil
	case issue.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case issue.FieldSeverity:
		v, ok := value.(issue.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case issue.FieldIssueType:
		v, ok := value.(issue.IssueType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueType(v)
		return nil
	case issue.FieldHeuristic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeuristic(v)
		return nil
	case issue.FieldWcagCriterion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWcagCriterion(v)
		return nil
	case issue.FieldRecommendation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendation(v)
		return nil
	case issue.FieldPageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageURL(v)
		return nil
	case issue.FieldTimesSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimesSeen(v)
		return nil
	case issue.FieldIsRegression:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRegression(v)
		return nil
	case issue.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityScore(v)
		return nil
	case issue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Issue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IssueMutation) AddedFields() []string {
	var fields []string
	if m.addtimes_seen != nil {
		fields = append(fields, issue.FieldTimesSeen)
	}
	if m.addpriority_score != nil {
		fields = append(fields, issue.FieldPriorityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IssueMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case issue.FieldTimesSeen:
		return m.AddedTimesSeen()
	case issue.FieldPriorityScore:
		return m.AddedPriorityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IssueMutation) AddField(name string, value ent.Value) error {
	switch name {
	case issue.FieldTimesSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimesSeen(v)
		return nil
	case issue.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Issue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IssueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(issue.FieldStepID) {
		fields = append(fields, issue.FieldStepID)
	}
	if m.FieldCleared(issue.FieldElement) {
		fields = append(fields, issue.FieldElement)
	}
	if m.FieldCleared(issue.FieldHeuristic) {
		fields = append(fields, issue.FieldHeuristic)
	}
	if m.FieldCleared(issue.FieldWcagCriterion) {
		fields = append(fields, issue.FieldWcagCriterion)
	}
	if m.FieldCleared(issue.FieldRecommendation) {
		fields = append(fields, issue.FieldRecommendation)
	}
	if m.FieldCleared(issue.FieldPageURL) {
		fields = append(fields, issue.FieldPageURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IssueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IssueMutation) ClearField(name string) error {
	switch name {
	case issue.FieldStepID:
		m.ClearStepID()
		return nil
	case issue.FieldElement:
		m.ClearElement()
		return nil
	case issue.FieldHeuristic:
		m.ClearHeuristic()
		return nil
	case issue.FieldWcagCriterion:
		m.ClearWcagCriterion()
		return nil
	case issue.FieldRecommendation:
		m.ClearRecommendation()
		return nil
	case issue.FieldPageURL:
		m.ClearPageURL()
		return nil
	}
	return fmt.Errorf("unknown Issue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IssueMutation) ResetField(name string) error {
	switch name {
	case issue.FieldStudyID:
		m.ResetStudyID()
		return nil
	case issue.FieldSessionID:
		m.ResetSessionID()
		return nil
	case issue.FieldStepID:
		m.ResetStepID()
		return nil
	case issue.FieldElement:
		m.ResetElement()
		return nil
	case issue.FieldDescription:
		m.ResetDescription()
		return nil
	case issue.FieldSeverity:
		m.ResetSeverity()
		return nil
	case issue.FieldIssueType:
		m.ResetIssueType()
		return nil
	case issue.FieldHeuristic:
		m.ResetHeuristic()
		return nil
	case issue.FieldWcagCriterion:
		m.ResetWcagCriterion()
		return nil
	case issue.FieldRecommendation:
		m.ResetRecommendation()
		return nil
	case issue.FieldPageURL:
		m.ResetPageURL()
		return nil
	case issue.FieldTimesSeen:
		m.ResetTimesSeen()
		return nil
	case issue.FieldIsRegression:
		m.ResetIsRegression()
		return nil
	case issue.FieldPriorityScore:
		m.ResetPriorityScore()
		return nil
	case issue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Issue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IssueMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.study != nil {
		edges = append(edges, issue.EdgeStudy)
	}
	if m.session != nil {
		edges = append(edges, issue.EdgeSession)
	}
	if m.step != nil {
		edges = append(edges, issue.EdgeStep)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IssueMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case issue.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	case issue.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case issue.EdgeStep:
		if id := m.step; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IssueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IssueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IssueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedstudy {
		edges = append(edges, issue.EdgeStudy)
	}
	if m.clearedsession {
		edges = append(edges, issue.EdgeSession)
	}
	if m.clearedstep {
		edges = append(edges, issue.EdgeStep)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IssueMutation) EdgeCleared(name string) bool {
	switch name {
	case issue.EdgeStudy:
		return m.clearedstudy
	case issue.EdgeSession:
		return m.clearedsession
	case issue.EdgeStep:
		return m.clearedstep
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IssueMutation) ClearEdge(name string) error {
	switch name {
	case issue.EdgeStudy:
		m.ClearStudy()
		return nil
	case issue.EdgeSession:
		m.ClearSession()
		return nil
	case issue.EdgeStep:
		m.ClearStep()
		return nil
	}
	return fmt.Errorf("unknown Issue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IssueMutation) ResetEdge(name string) error {
	switch name {
	case issue.EdgeStudy:
		m.ResetStudy()
		return nil
	case issue.EdgeSession:
		m.ResetSession()
		return nil
	case issue.EdgeStep:
		m.ResetStep()
		return nil
	}
	return fmt.Errorf("unknown Issue edge %s", name)
}

// PersonaMutation represents an operation that mutates the Persona nodes in the graph.
type PersonaMutation struct {
	config
	op              Op
	typ             string
	id              *string
	template_id     *string
	profile         *map[string]interface{}
	model_choice    *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	study           *string
	clearedstudy    bool
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*Persona, error)
	predicates      []predicate.Persona
}

var _ ent.Mutation = (*PersonaMutation)(nil)

// personaOption allows management of the mutation configuration using functional options.
type personaOption func(*PersonaMutation)

// newPersonaMutation creates new mutation for the Persona entity.
func newPersonaMutation(c config, op Op, opts ...personaOption) *PersonaMutation {
	m := &PersonaMutation{
		config:        c,
		op:            op,
		typ:           TypePersona,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPersonaID sets the ID field of the mutation.
func withPersonaID(id string) personaOption {
	return func(m *PersonaMutation) {
		var (
			err   error
			once  sync.Once
			value *Persona
		)
		m.oldValue = func(ctx context.Context) (*Persona, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Persona.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPersona sets the old Persona of the mutation.
func withPersona(node *Persona) personaOption {
	return func(m *PersonaMutation) {
		m.oldValue = func(context.Context) (*Persona, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PersonaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PersonaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Persona entities.
func (m *PersonaMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PersonaMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PersonaMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Persona.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *PersonaMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *PersonaMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *PersonaMutation) ResetStudyID() {
	m.study = nil
}

// SetTemplateID sets the "template_id" field.
func (m *PersonaMutation) SetTemplateID(s string) {
	m.template_id = &s
}

// TemplateID returns the value of the "template_id" field in the mutation.
func (m *PersonaMutation) TemplateID() (r string, exists bool) {
	v := m.template_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateID returns the old "template_id" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldTemplateID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateID: %w", err)
	}
	return oldValue.TemplateID, nil
}

// ClearTemplateID clears the value of the "template_id" field.
func (m *PersonaMutation) ClearTemplateID() {
	m.template_id = nil
	m.clearedFields[persona.FieldTemplateID] = struct{}{}
}

// TemplateIDCleared returns if the "template_id" field was cleared in this mutation.
func (m *PersonaMutation) TemplateIDCleared() bool {
	_, ok := m.clearedFields[persona.FieldTemplateID]
	return ok
}

// ResetTemplateID resets all changes to the "template_id" field.
func (m *PersonaMutation) ResetTemplateID() {
	m.template_id = nil
	delete(m.clearedFields, persona.FieldTemplateID)
}

// SetProfile sets the "profile" field.
func (m *PersonaMutation) SetProfile(value map[string]interface{}) {
	m.profile = &value
}

// Profile returns the value of the "profile" field in the mutation.
func (m *PersonaMutation) Profile() (r map[string]interface{}, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfile returns the old "profile" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldProfile(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfile: %w", err)
	}
	return oldValue.Profile, nil
}

// ResetProfile resets all changes to the "profile" field.
func (m *PersonaMutation) ResetProfile() {
	m.profile = nil
}

// SetModelChoice sets the "model_choice" field.
func (m *PersonaMutation) SetModelChoice(s string) {
	m.model_choice = &s
}

// ModelChoice returns the value of the "model_choice" field in the mutation.
func (m *PersonaMutation) ModelChoice() (r string, exists bool) {
	v := m.model_choice
	if v == nil {
		return
	}
	return *v, true
}

// OldModelChoice returns the old "model_choice" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldModelChoice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelChoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelChoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelChoice: %w", err)
	}
	return oldValue.ModelChoice, nil
}

// ClearModelChoice clears the value of the "model_choice" field.
func (m *PersonaMutation) ClearModelChoice() {
	m.model_choice = nil
	m.clearedFields[persona.FieldModelChoice] = struct{}{}
}

// ModelChoiceCleared returns if the "model_choice" field was cleared in this mutation.
func (m *PersonaMutation) ModelChoiceCleared() bool {
	_, ok := m.clearedFields[persona.FieldModelChoice]
	return ok
}

// ResetModelChoice resets all changes to the "model_choice" field.
func (m *PersonaMutation) ResetModelChoice() {
	m.model_choice = nil
	delete(m.clearedFields, persona.FieldModelChoice)
}

// SetCreatedAt sets the "created_at" field.
func (m *PersonaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PersonaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Persona entity.
// If the Persona object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PersonaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PersonaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *PersonaMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[persona.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *PersonaMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *PersonaMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *PersonaMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *PersonaMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *PersonaMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *PersonaMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *PersonaMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *PersonaMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *PersonaMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *PersonaMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the PersonaMutation builder.
func (m *PersonaMutation) Where(ps ...predicate.Persona) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PersonaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PersonaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Persona, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PersonaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PersonaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Persona).
func (m *PersonaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PersonaMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.study != nil {
		fields = append(fields, persona.FieldStudyID)
	}
	if m.template_id != nil {
		fields = append(fields, persona.FieldTemplateID)
	}
	if m.profile != nil {
		fields = append(fields, persona.FieldProfile)
	}
	if m.model_choice != nil {
		fields = append(fields, persona.FieldModelChoice)
	}
	if m.created_at != nil {
		fields = append(fields, persona.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PersonaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case persona.FieldStudyID:
		return m.StudyID()
	case persona.FieldTemplateID:
		return m.TemplateID()
	case persona.FieldProfile:
		return m.Profile()
	case persona.FieldModelChoice:
		return m.ModelChoice()
	case persona.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PersonaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case persona.FieldStudyID:
		return m.OldStudyID(ctx)
	case persona.FieldTemplateID:
		return m.OldTemplateID(ctx)
	case persona.FieldProfile:
		return m.OldProfile(ctx)
	case persona.FieldModelChoice:
		return m.OldModelChoice(ctx)
	case persona.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Persona field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case persona.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case persona.FieldTemplateID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateID(v)
		return nil
	case persona.FieldProfile:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfile(v)
		return nil
	case persona.FieldModelChoice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelChoice(v)
		return nil
	case persona.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Persona field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PersonaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PersonaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PersonaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Persona numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PersonaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(persona.FieldTemplateID) {
		fields = append(fields, persona.FieldTemplateID)
	}
	if m.FieldCleared(persona.FieldModelChoice) {
		fields = append(fields, persona.FieldModelChoice)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PersonaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PersonaMutation) ClearField(name string) error {
	switch name {
	case persona.FieldTemplateID:
		m.ClearTemplateID()
		return nil
	case persona.FieldModelChoice:
		m.ClearModelChoice()
		return nil
	}
	return fmt.Errorf("unknown Persona nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PersonaMutation) ResetField(name string) error {
	switch name {
	case persona.FieldStudyID:
		m.ResetStudyID()
		return nil
	case persona.FieldTemplateID:
		m.ResetTemplateID()
		return nil
	case persona.FieldProfile:
		m.ResetProfile()
		return nil
	case persona.FieldModelChoice:
		m.ResetModelChoice()
		return nil
	case persona.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Persona field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PersonaMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.study != nil {
		edges = append(edges, persona.EdgeStudy)
	}
	if m.sessions != nil {
		edges = append(edges, persona.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PersonaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case persona.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	case persona.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PersonaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, persona.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PersonaMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case persona.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PersonaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstudy {
		edges = append(edges, persona.EdgeStudy)
	}
	if m.clearedsessions {
		edges = append(edges, persona.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PersonaMutation) EdgeCleared(name string) bool {
	switch name {
	case persona.EdgeStudy:
		return m.clearedstudy
	case persona.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PersonaMutation) ClearEdge(name string) error {
	switch name {
	case persona.EdgeStudy:
		m.ClearStudy()
		return nil
	}
	return fmt.Errorf("unknown Persona unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PersonaMutation) ResetEdge(name string) error {
	switch name {
	case persona.EdgeStudy:
		m.ResetStudy()
		return nil
	case persona.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Persona edge %s", name)
}

// ScheduleMutation represents an operation that mutates the Schedule nodes in the graph.
type ScheduleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	cron_expr     *string
	status        *schedule.Status
	next_run_at   *time.Time
	last_run_at   *time.Time
	run_count     *int
	addrun_count  *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	study         *string
	clearedstudy  bool
	done          bool
	oldValue      func(context.Context) (*Schedule, error)
	predicates    []predicate.Schedule
}

var _ ent.Mutation = (*ScheduleMutation)(nil)

// scheduleOption allows management of the mutation configuration using functional options.
type scheduleOption func(*ScheduleMutation)

// newScheduleMutation creates new mutation for the Schedule entity.
func newScheduleMutation(c config, op Op, opts ...scheduleOption) *ScheduleMutation {
	m := &ScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleID sets the ID field of the mutation.
func withScheduleID(id string) scheduleOption {
	return func(m *ScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *Schedule
		)
		m.oldValue = func(ctx context.Context) (*Schedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Schedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedule sets the old Schedule of the mutation.
func withSchedule(node *Schedule) scheduleOption {
	return func(m *ScheduleMutation) {
		m.oldValue = func(context.Context) (*Schedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Schedule entities.
func (m *ScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Schedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *ScheduleMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *ScheduleMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *ScheduleMutation) ResetStudyID() {
	m.study = nil
}

// SetCronExpr sets the "cron_expr" field.
func (m *ScheduleMutation) SetCronExpr(s string) {
	m.cron_expr = &s
}

// CronExpr returns the value of the "cron_expr" field in the mutation.
func (m *ScheduleMutation) CronExpr() (r string, exists bool) {
	v := m.cron_expr
	if v == nil {
		return
	}
	return *v, true
}

// OldCronExpr returns the old "cron_expr" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCronExpr(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronExpr is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronExpr requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronExpr: %w", err)
	}
	return oldValue.CronExpr, nil
}

// ResetCronExpr resets all changes to the "cron_expr" field.
func (m *ScheduleMutation) ResetCronExpr() {
	m.cron_expr = nil
}

// SetStatus sets the "status" field.
func (m *ScheduleMutation) SetStatus(s schedule.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduleMutation) Status() (r schedule.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldStatus(ctx context.Context) (v schedule.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduleMutation) ResetStatus() {
	m.status = nil
}

// SetNextRunAt sets the "next_run_at" field.
func (m *ScheduleMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *ScheduleMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldNextRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (m *ScheduleMutation) ClearNextRunAt() {
	m.next_run_at = nil
	m.clearedFields[schedule.FieldNextRunAt] = struct{}{}
}

// NextRunAtCleared returns if the "next_run_at" field was cleared in this mutation.
func (m *ScheduleMutation) NextRunAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldNextRunAt]
	return ok
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *ScheduleMutation) ResetNextRunAt() {
	m.next_run_at = nil
	delete(m.clearedFields, schedule.FieldNextRunAt)
}

// SetLastRunAt sets the "last_run_at" field.
func (m *ScheduleMutation) SetLastRunAt(t time.Time) {
	m.last_run_at = &t
}

// LastRunAt returns the value of the "last_run_at" field in the mutation.
func (m *ScheduleMutation) LastRunAt() (r time.Time, exists bool) {
	v := m.last_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunAt returns the old "last_run_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLastRunAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunAt: %w", err)
	}
	return oldValue.LastRunAt, nil
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (m *ScheduleMutation) ClearLastRunAt() {
	m.last_run_at = nil
	m.clearedFields[schedule.FieldLastRunAt] = struct{}{}
}

// LastRunAtCleared returns if the "last_run_at" field was cleared in this mutation.
func (m *ScheduleMutation) LastRunAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldLastRunAt]
	return ok
}

// ResetLastRunAt resets all changes to the "last_run_at" field.
func (m *ScheduleMutation) ResetLastRunAt() {
	m.last_run_at = nil
	delete(m.clearedFields, schedule.FieldLastRunAt)
}

// SetRunCount sets the "run_count" field.
func (m *ScheduleMutation) SetRunCount(i int) {
	m.run_count = &i
	m.addrun_count = nil
}

// RunCount returns the value of the "run_count" field in the mutation.
func (m *ScheduleMutation) RunCount() (r int, exists bool) {
	v := m.run_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRunCount returns the old "run_count" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldRunCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunCount: %w", err)
	}
	return oldValue.RunCount, nil
}

// AddRunCount adds i to the "run_count" field.
func (m *ScheduleMutation) AddRunCount(i int) {
	if m.addrun_count != nil {
		*m.addrun_count += i
	} else {
		m.addrun_count = &i
	}
}

// AddedRunCount returns the value that was added to the "run_count" field in this mutation.
func (m *ScheduleMutation) AddedRunCount() (r int, exists bool) {
	v := m.addrun_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRunCount resets all changes to the "run_count" field.
func (m *ScheduleMutation) ResetRunCount() {
	m.run_count = nil
	m.addrun_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *ScheduleMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[schedule.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *ScheduleMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *ScheduleMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *ScheduleMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// Where appends a list predicates to the ScheduleMutation builder.
func (m *ScheduleMutation) Where(ps ...predicate.Schedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Schedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Schedule).
func (m *ScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.study != nil {
		fields = append(fields, schedule.FieldStudyID)
	}
	if m.cron_expr != nil {
		fields = append(fields, schedule.FieldCronExpr)
	}
	if m.status != nil {
		fields = append(fields, schedule.FieldStatus)
	}
	if m.next_run_at != nil {
		fields = append(fields, schedule.FieldNextRunAt)
	}
	if m.last_run_at != nil {
		fields = append(fields, schedule.FieldLastRunAt)
	}
	if m.run_count != nil {
		fields = append(fields, schedule.FieldRunCount)
	}
	if m.created_at != nil {
		fields = append(fields, schedule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, schedule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldStudyID:
		return m.StudyID()
	case schedule.FieldCronExpr:
		return m.CronExpr()
	case schedule.FieldStatus:
		return m.Status()
	case schedule.FieldNextRunAt:
		return m.NextRunAt()
	case schedule.FieldLastRunAt:
		return m.LastRunAt()
	case schedule.FieldRunCount:
		return m.RunCount()
	case schedule.FieldCreatedAt:
		return m.CreatedAt()
	case schedule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedule.FieldStudyID:
		return m.OldStudyID(ctx)
	case schedule.FieldCronExpr:
		return m.OldCronExpr(ctx)
	case schedule.FieldStatus:
		return m.OldStatus(ctx)
	case schedule.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case schedule.FieldLastRunAt:
		return m.OldLastRunAt(ctx)
	case schedule.FieldRunCount:
		return m.OldRunCount(ctx)
	case schedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case schedule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Schedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case schedule.FieldCronExpr:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronExpr(v)
		return nil
	case schedule.FieldStatus:
		v, ok := value.(schedule.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case schedule.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case schedule.FieldLastRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunAt(v)
		return nil
	case schedule.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunCount(v)
		return nil
	case schedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case schedule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleMutation) AddedFields() []string {
	var fields []string
	if m.addrun_count != nil {
		fields = append(fields, schedule.FieldRunCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldRunCount:
		return m.AddedRunCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldRunCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRunCount(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedule.FieldNextRunAt) {
		fields = append(fields, schedule.FieldNextRunAt)
	}
	if m.FieldCleared(schedule.FieldLastRunAt) {
		fields = append(fields, schedule.FieldLastRunAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleMutation) ClearField(name string) error {
	switch name {
	case schedule.FieldNextRunAt:
		m.ClearNextRunAt()
		return nil
	case schedule.FieldLastRunAt:
		m.ClearLastRunAt()
		return nil
	}
	return fmt.Errorf("unknown Schedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleMutation) ResetField(name string) error {
	switch name {
	case schedule.FieldStudyID:
		m.ResetStudyID()
		return nil
	case schedule.FieldCronExpr:
		m.ResetCronExpr()
		return nil
	case schedule.FieldStatus:
		m.ResetStatus()
		return nil
	case schedule.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case schedule.FieldLastRunAt:
		m.ResetLastRunAt()
		return nil
	case schedule.FieldRunCount:
		m.ResetRunCount()
		return nil
	case schedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case schedule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.study != nil {
		edges = append(edges, schedule.EdgeStudy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case schedule.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstudy {
		edges = append(edges, schedule.EdgeStudy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleMutation) EdgeCleared(name string) bool {
	switch name {
	case schedule.EdgeStudy:
		return m.clearedstudy
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleMutation) ClearEdge(name string) error {
	switch name {
	case schedule.EdgeStudy:
		m.ClearStudy()
		return nil
	}
	return fmt.Errorf("unknown Schedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleMutation) ResetEdge(name string) error {
	switch name {
	case schedule.EdgeStudy:
		m.ResetStudy()
		return nil
	}
	return fmt.Errorf("unknown Schedule edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *session.Status
	total_steps         *int
	addtotal_steps      *int
	task_completed      *bool
	summary             *string
	emotional_arc       *[]string
	appendemotional_arc []string
	ux_score            *int
	addux_score         *int
	error_message       *string
	started_at          *time.Time
	completed_at        *time.Time
	created_at          *time.Time
	clearedFields       map[string]struct{}
	study               *string
	clearedstudy        bool
	persona             *string
	clearedpersona      bool
	task                *string
	clearedtask         bool
	steps               map[string]struct{}
	removedsteps        map[string]struct{}
	clearedsteps        bool
	issues              map[string]struct{}
	removedissues       map[string]struct{}
	clearedissues       bool
	done                bool
	oldValue            func(context.Context) (*Session, error)
	predicates          []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *SessionMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *SessionMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *SessionMutation) ResetStudyID() {
	m.study = nil
}

// SetPersonaID sets the "persona_id" field.
func (m *SessionMutation) SetPersonaID(s string) {
	m.persona = &s
}

// PersonaID returns the value of the "persona_id" field in the mutation.
func (m *SessionMutation) PersonaID() (r string, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonaID returns the old "persona_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPersonaID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonaID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonaID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonaID: %w", err)
	}
	return oldValue.PersonaID, nil
}

// ResetPersonaID resets all changes to the "persona_id" field.
func (m *SessionMutation) ResetPersonaID() {
	m.persona = nil
}

// SetTaskID sets the "task_id" field.
func (m *SessionMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *SessionMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *SessionMutation) ResetTaskID() {
	m.task = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetTotalSteps sets the "total_steps" field.
func (m *SessionMutation) SetTotalSteps(i int) {
	m.total_steps = &i
	m.addtotal_steps = nil
}

// TotalSteps returns the value of the "total_steps" field in the mutation.
func (m *SessionMutation) TotalSteps() (r int, exists bool) {
	v := m.total_steps
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSteps returns the old "total_steps" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTotalSteps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSteps: %w", err)
	}
	return oldValue.TotalSteps, nil
}

// AddTotalSteps adds i to the "total_steps" field.
func (m *SessionMutation) AddTotalSteps(i int) {
	if m.addtotal_steps != nil {
		*m.addtotal_steps += i
	} else {
		m.addtotal_steps = &i
	}
}

// AddedTotalSteps returns the value that was added to the "total_steps" field in this mutation.
func (m *SessionMutation) AddedTotalSteps() (r int, exists bool) {
	v := m.addtotal_steps
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSteps resets all changes to the "total_steps" field.
func (m *SessionMutation) ResetTotalSteps() {
	m.total_steps = nil
	m.addtotal_steps = nil
}

// SetTaskCompleted sets the "task_completed" field.
func (m *SessionMutation) SetTaskCompleted(b bool) {
	m.task_completed = &b
}

// TaskCompleted returns the value of the "task_completed" field in the mutation.
func (m *SessionMutation) TaskCompleted() (r bool, exists bool) {
	v := m.task_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskCompleted returns the old "task_completed" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTaskCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskCompleted: %w", err)
	}
	return oldValue.TaskCompleted, nil
}

// ResetTaskCompleted resets all changes to the "task_completed" field.
func (m *SessionMutation) ResetTaskCompleted() {
	m.task_completed = nil
}

// SetSummary sets the "summary" field.
func (m *SessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[session.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, session.FieldSummary)
}

// SetEmotionalArc sets the "emotional_arc" field.
func (m *SessionMutation) SetEmotionalArc(s []string) {
	m.emotional_arc = &s
	m.appendemotional_arc = nil
}

// EmotionalArc returns the value of the "emotional_arc" field in the mutation.
func (m *SessionMutation) EmotionalArc() (r []string, exists bool) {
	v := m.emotional_arc
	if v == nil {
		return
	}
	return *v, true
}

// OldEmotionalArc returns the old "emotional_arc" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEmotionalArc(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmotionalArc is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmotionalArc requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmotionalArc: %w", err)
	}
	return oldValue.EmotionalArc, nil
}

// AppendEmotionalArc adds s to the "emotional_arc" field.
func (m *SessionMutation) AppendEmotionalArc(s []string) {
	m.appendemotional_arc = append(m.appendemotional_arc, s...)
}

// AppendedEmotionalArc returns the list of values that were appended to the "emotional_arc" field in this mutation.
func (m *SessionMutation) AppendedEmotionalArc() ([]string, bool) {
	if len(m.appendemotional_arc) == 0 {
		return nil, false
	}
	return m.appendemotional_arc, true
}

// ClearEmotionalArc clears the value of the "emotional_arc" field.
func (m *SessionMutation) ClearEmotionalArc() {
	m.emotional_arc = nil
	m.appendemotional_arc = nil
	m.clearedFields[session.FieldEmotionalArc] = struct{}{}
}

// EmotionalArcCleared returns if the "emotional_arc" field was cleared in this mutation.
func (m *SessionMutation) EmotionalArcCleared() bool {
	_, ok := m.clearedFields[session.FieldEmotionalArc]
	return ok
}

// ResetEmotionalArc resets all changes to the "emotional_arc" field.
func (m *SessionMutation) ResetEmotionalArc() {
	m.emotional_arc = nil
	m.appendemotional_arc = nil
	delete(m.clearedFields, session.FieldEmotionalArc)
}

// SetUxScore sets the "ux_score" field.
func (m *SessionMutation) SetUxScore(i int) {
	m.ux_score = &i
	m.addux_score = nil
}

// UxScore returns the value of the "ux_score" field in the mutation.
func (m *SessionMutation) UxScore() (r int, exists bool) {
	v := m.ux_score
	if v == nil {
		return
	}
	return *v, true
}

// OldUxScore returns the old "ux_score" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUxScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUxScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUxScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUxScore: %w", err)
	}
	return oldValue.UxScore, nil
}

// AddUxScore adds i to the "ux_score" field.
func (m *SessionMutation) AddUxScore(i int) {
	if m.addux_score != nil {
		*m.addux_score += i
	} else {
		m.addux_score = &i
	}
}

// AddedUxScore returns the value that was added to the "ux_score" field in this mutation.
func (m *SessionMutation) AddedUxScore() (r int, exists bool) {
	v := m.addux_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearUxScore clears the value of the "ux_score" field.
func (m *SessionMutation) ClearUxScore() {
	m.ux_score = nil
	m.addux_score = nil
	m.clearedFields[session.FieldUxScore] = struct{}{}
}

// UxScoreCleared returns if the "ux_score" field was cleared in this mutation.
func (m *SessionMutation) UxScoreCleared() bool {
	_, ok := m.clearedFields[session.FieldUxScore]
	return ok
}

// ResetUxScore resets all changes to the "ux_score" field.
func (m *SessionMutation) ResetUxScore() {
	m.ux_score = nil
	m.addux_score = nil
	delete(m.clearedFields, session.FieldUxScore)
}

// SetErrorMessage sets the "error_message" field.
func (m *SessionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *SessionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *SessionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[session.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *SessionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[session.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *SessionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, session.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[session.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, session.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[session.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, session.FieldCompletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *SessionMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[session.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *SessionMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *SessionMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// ClearPersona clears the "persona" edge to the Persona entity.
func (m *SessionMutation) ClearPersona() {
	m.clearedpersona = true
	m.clearedFields[session.FieldPersonaID] = struct{}{}
}

// PersonaCleared reports if the "persona" edge to the Persona entity was cleared.
func (m *SessionMutation) PersonaCleared() bool {
	return m.clearedpersona
}

// PersonaIDs returns the "persona" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PersonaID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) PersonaIDs() (ids []string) {
	if id := m.persona; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPersona resets all changes to the "persona" edge.
func (m *SessionMutation) ResetPersona() {
	m.persona = nil
	m.clearedpersona = false
}

// ClearTask clears the "task" edge to the Task entity.
func (m *SessionMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[session.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *SessionMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *SessionMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *SessionMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddStepIDs adds the "steps" edge to the Step entity by ids.
func (m *SessionMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the Step entity.
func (m *SessionMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the Step entity was cleared.
func (m *SessionMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the Step entity by IDs.
func (m *SessionMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the Step entity.
func (m *SessionMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *SessionMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *SessionMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddIssueIDs adds the "issues" edge to the Issue entity by ids.
func (m *SessionMutation) AddIssueIDs(ids ...string) {
	if m.issues == nil {
		m.issues = make(map[string]struct{})
	}
	for i := range ids {
		m.issues[ids[i]] = struct{}{}
	}
}

// ClearIssues clears the "issues" edge to the Issue entity.
func (m *SessionMutation) ClearIssues() {
	m.clearedissues = true
}

// IssuesCleared reports if the "issues" edge to the Issue entity was cleared.
func (m *SessionMutation) IssuesCleared() bool {
	return m.clearedissues
}

// RemoveIssueIDs removes the "issues" edge to the Issue entity by IDs.
func (m *SessionMutation) RemoveIssueIDs(ids ...string) {
	if m.removedissues == nil {
		m.removedissues = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.issues, ids[i])
		m.removedissues[ids[i]] = struct{}{}
	}
}

// RemovedIssues returns the removed IDs of the "issues" edge to the Issue entity.
func (m *SessionMutation) RemovedIssuesIDs() (ids []string) {
	for id := range m.removedissues {
		ids = append(ids, id)
	}
	return
}

// IssuesIDs returns the "issues" edge IDs in the mutation.
func (m *SessionMutation) IssuesIDs() (ids []string) {
	for id := range m.issues {
		ids = append(ids, id)
	}
	return
}

// ResetIssues resets all changes to the "issues" edge.
func (m *SessionMutation) ResetIssues() {
	m.issues = nil
	m.clearedissues = false
	m.removedissues = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.study != nil {
		fields = append(fields, session.FieldStudyID)
	}
	if m.persona != nil {
		fields = append(fields, session.FieldPersonaID)
	}
	if m.task != nil {
		fields = append(fields, session.FieldTaskID)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.total_steps != nil {
		fields = append(fields, session.FieldTotalSteps)
	}
	if m.task_completed != nil {
		fields = append(fields, session.FieldTaskCompleted)
	}
	if m.summary != nil {
		fields = append(fields, session.FieldSummary)
	}
	if m.emotional_arc != nil {
		fields = append(fields, session.FieldEmotionalArc)
	}
	if m.ux_score != nil {
		fields = append(fields, session.FieldUxScore)
	}
	if m.error_message != nil {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, session.FieldCompletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldStudyID:
		return m.StudyID()
	case session.FieldPersonaID:
		return m.PersonaID()
	case session.FieldTaskID:
		return m.TaskID()
	case session.FieldStatus:
		return m.Status()
	case session.FieldTotalSteps:
		return m.TotalSteps()
	case session.FieldTaskCompleted:
		return m.TaskCompleted()
	case session.FieldSummary:
		return m.Summary()
	case session.FieldEmotionalArc:
		return m.EmotionalArc()
	case session.FieldUxScore:
		return m.UxScore()
	case session.FieldErrorMessage:
		return m.ErrorMessage()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldCompletedAt:
		return m.CompletedAt()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldStudyID:
		return m.OldStudyID(ctx)
	case session.FieldPersonaID:
		return m.OldPersonaID(ctx)
	case session.FieldTaskID:
		return m.OldTaskID(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldTotalSteps:
		return m.OldTotalSteps(ctx)
	case session.FieldTaskCompleted:
		return m.OldTaskCompleted(ctx)
	case session.FieldSummary:
		return m.OldSummary(ctx)
	case session.FieldEmotionalArc:
		return m.OldEmotionalArc(ctx)
	case session.FieldUxScore:
		return m.OldUxScore(ctx)
	case session.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case session.FieldPersonaID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonaID(v)
		return nil
	case session.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldTotalSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSteps(v)
		return nil
	case session.FieldTaskCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskCompleted(v)
		return nil
	case session.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case session.FieldEmotionalArc:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmotionalArc(v)
		return nil
	case session.FieldUxScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUxScore(v)
		return nil
	case session.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_steps != nil {
		fields = append(fields, session.FieldTotalSteps)
	}
	if m.addux_score != nil {
		fields = append(fields, session.FieldUxScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case session.FieldTotalSteps:
		return m.AddedTotalSteps()
	case session.FieldUxScore:
		return m.AddedUxScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case session.FieldTotalSteps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSteps(v)
		return nil
	case session.FieldUxScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUxScore(v)
		return nil
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldSummary) {
		fields = append(fields, session.FieldSummary)
	}
	if m.FieldCleared(session.FieldEmotionalArc) {
		fields = append(fields, session.FieldEmotionalArc)
	}
	if m.FieldCleared(session.FieldUxScore) {
		fields = append(fields, session.FieldUxScore)
	}
	if m.FieldCleared(session.FieldErrorMessage) {
		fields = append(fields, session.FieldErrorMessage)
	}
	if m.FieldCleared(session.FieldStartedAt) {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.FieldCleared(session.FieldCompletedAt) {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldSummary:
		m.ClearSummary()
		return nil
	case session.FieldEmotionalArc:
		m.ClearEmotionalArc()
		return nil
	case session.FieldUxScore:
		m.ClearUxScore()
		return nil
	case session.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case session.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case session.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldStudyID:
		m.ResetStudyID()
		return nil
	case session.FieldPersonaID:
		m.ResetPersonaID()
		return nil
	case session.FieldTaskID:
		m.ResetTaskID()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldTotalSteps:
		m.ResetTotalSteps()
		return nil
	case session.FieldTaskCompleted:
		m.ResetTaskCompleted()
		return nil
	case session.FieldSummary:
		m.ResetSummary()
		return nil
	case session.FieldEmotionalArc:
		m.ResetEmotionalArc()
		return nil
	case session.FieldUxScore:
		m.ResetUxScore()
		return nil
	case session.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.study != nil {
		edges = append(edges, session.EdgeStudy)
	}
	if m.persona != nil {
		edges = append(edges, session.EdgePersona)
	}
	if m.task != nil {
		edges = append(edges, session.EdgeTask)
	}
	if m.steps != nil {
		edges = append(edges, session.EdgeSteps)
	}
	if m.issues != nil {
		edges = append(edges, session.EdgeIssues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgePersona:
		if id := m.persona; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case session.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.issues))
		for id := range m.issues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedsteps != nil {
		edges = append(edges, session.EdgeSteps)
	}
	if m.removedissues != nil {
		edges = append(edges, session.EdgeIssues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.removedissues))
		for id := range m.removedissues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedstudy {
		edges = append(edges, session.EdgeStudy)
	}
	if m.clearedpersona {
		edges = append(edges, session.EdgePersona)
	}
	if m.clearedtask {
		edges = append(edges, session.EdgeTask)
	}
	if m.clearedsteps {
		edges = append(edges, session.EdgeSteps)
	}
	if m.clearedissues {
		edges = append(edges, session.EdgeIssues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeStudy:
		return m.clearedstudy
	case session.EdgePersona:
		return m.clearedpersona
	case session.EdgeTask:
		return m.clearedtask
	case session.EdgeSteps:
		return m.clearedsteps
	case session.EdgeIssues:
		return m.clearedissues
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	case session.EdgeStudy:
		m.ClearStudy()
		return nil
	case session.EdgePersona:
		m.ClearPersona()
		return nil
	case session.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeStudy:
		m.ResetStudy()
		return nil
	case session.EdgePersona:
		m.ResetPersona()
		return nil
	case session.EdgeTask:
		m.ResetTask()
		return nil
	case session.EdgeSteps:
		m.ResetSteps()
		return nil
	case session.EdgeIssues:
		m.ResetIssues()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// StepMutation represents an operation that mutates the Step nodes in the graph.
type StepMutation struct {
	config
	op                Op
	typ               string
	id                *string
	step_number       *int
	addstep_number    *int
	page_url          *string
	page_title        *string
	screenshot_ref    *string
	think_aloud       *string
	action            *map[string]interface{}
	confidence        *float64
	addconfidence     *float64
	task_progress     *int
	addtask_progress  *int
	emotional_state   *step.EmotionalState
	click_x           *int
	addclick_x        *int
	click_y           *int
	addclick_y        *int
	viewport_w        *int
	addviewport_w     *int
	viewport_h        *int
	addviewport_h     *int
	scroll_y          *int
	addscroll_y       *int
	max_scroll_y      *int
	addmax_scroll_y   *int
	load_time_ms      *int
	addload_time_ms   *int
	first_paint_ms    *int
	addfirst_paint_ms *int
	created_at        *time.Time
	clearedFields     map[string]struct{}
	session           *string
	clearedsession    bool
	issues            map[string]struct{}
	removedissues     map[string]struct{}
	clearedissues     bool
	done              bool
	oldValue          func(context.Context) (*Step, error)
	predicates        []predicate.Step
}

var _ ent.Mutation = (*StepMutation)(nil)

// stepOption allows management of the mutation configuration using functional options.
type stepOption func(*StepMutation)

// newStepMutation creates new mutation for the Step entity.
func newStepMutation(c config, op Op, opts ...stepOption) *StepMutation {
	m := &StepMutation{
		config:        c,
		op:            op,
		typ:           TypeStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStepID sets the ID field of the mutation.
func withStepID(id string) stepOption {
	return func(m *StepMutation) {
		var (
			err   error
			once  sync.Once
			value *Step
		)
		m.oldValue = func(ctx context.Context) (*Step, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Step.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStep sets the old Step of the mutation.
func withStep(node *Step) stepOption {
	return func(m *StepMutation) {
		m.oldValue = func(context.Context) (*Step, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Step entities.
func (m *StepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Step.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StepMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StepMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StepMutation) ResetSessionID() {
	m.session = nil
}

// SetStepNumber sets the "step_number" field.
func (m *StepMutation) SetStepNumber(i int) {
	m.step_number = &i
	m.addstep_number = nil
}

// StepNumber returns the value of the "step_number" field in the mutation.
func (m *StepMutation) StepNumber() (r int, exists bool) {
	v := m.step_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStepNumber returns the old "step_number" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldStepNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepNumber: %w", err)
	}
	return oldValue.StepNumber, nil
}

// AddStepNumber adds i to the "step_number" field.
func (m *StepMutation) AddStepNumber(i int) {
	if m.addstep_number != nil {
		*m.addstep_number += i
	} else {
		m.addstep_number = &i
	}
}

// AddedStepNumber returns the value that was added to the "step_number" field in this mutation.
func (m *StepMutation) AddedStepNumber() (r int, exists bool) {
	v := m.addstep_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepNumber resets all changes to the "step_number" field.
func (m *StepMutation) ResetStepNumber() {
	m.step_number = nil
	m.addstep_number = nil
}

// SetPageURL sets the "page_url" field.
func (m *StepMutation) SetPageURL(s string) {
	m.page_url = &s
}

// PageURL returns the value of the "page_url" field in the mutation.
func (m *StepMutation) PageURL() (r string, exists bool) {
	v := m.page_url
	if v == nil {
		return
	}
	return *v, true
}

// OldPageURL returns the old "page_url" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldPageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageURL: %w", err)
	}
	return oldValue.PageURL, nil
}

// ResetPageURL resets all changes to the "page_url" field.
func (m *StepMutation) ResetPageURL() {
	m.page_url = nil
}

// SetPageTitle sets the "page_title" field.
func (m *StepMutation) SetPageTitle(s string) {
	m.page_title = &s
}

// PageTitle returns the value of the "page_title" field in the mutation.
func (m *StepMutation) PageTitle() (r string, exists bool) {
	v := m.page_title
	if v == nil {
		return
	}
	return *v, true
}

// OldPageTitle returns the old "page_title" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldPageTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageTitle: %w", err)
	}
	return oldValue.PageTitle, nil
}

// ClearPageTitle clears the value of the "page_title" field.
func (m *StepMutation) ClearPageTitle() {
	m.page_title = nil
	m.clearedFields[step.FieldPageTitle] = struct{}{}
}

// PageTitleCleared returns if the "page_title" field was cleared in this mutation.
func (m *StepMutation) PageTitleCleared() bool {
	_, ok := m.clearedFields[step.FieldPageTitle]
	return ok
}

// ResetPageTitle resets all changes to the "page_title" field.
func (m *StepMutation) ResetPageTitle() {
	m.page_title = nil
	delete(m.clearedFields, step.FieldPageTitle)
}

// SetScreenshotRef sets the "screenshot_ref" field.
func (m *StepMutation) SetScreenshotRef(s string) {
	m.screenshot_ref = &s
}

// ScreenshotRef returns the value of the "screenshot_ref" field in the mutation.
func (m *StepMutation) ScreenshotRef() (r string, exists bool) {
	v := m.screenshot_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldScreenshotRef returns the old "screenshot_ref" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldScreenshotRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScreenshotRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScreenshotRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScreenshotRef: %w", err)
	}
	return oldValue.ScreenshotRef, nil
}

// ClearScreenshotRef clears the value of the "screenshot_ref" field.
func (m *StepMutation) ClearScreenshotRef() {
	m.screenshot_ref = nil
	m.clearedFields[step.FieldScreenshotRef] = struct{}{}
}

// ScreenshotRefCleared returns if the "screenshot_ref" field was cleared in this mutation.
func (m *StepMutation) ScreenshotRefCleared() bool {
	_, ok := m.clearedFields[step.FieldScreenshotRef]
	return ok
}

// ResetScreenshotRef resets all changes to the "screenshot_ref" field.
func (m *StepMutation) ResetScreenshotRef() {
	m.screenshot_ref = nil
	delete(m.clearedFields, step.FieldScreenshotRef)
}

// SetThinkAloud sets the "think_aloud" field.
func (m *StepMutation) SetThinkAloud(s string) {
	m.think_aloud = &s
}

// ThinkAloud returns the value of the "think_aloud" field in the mutation.
func (m *StepMutation) ThinkAloud() (r string, exists bool) {
	v := m.think_aloud
	if v == nil {
		return
	}
	return *v, true
}

// OldThinkAloud returns the old "think_aloud" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldThinkAloud(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThinkAloud is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThinkAloud requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThinkAloud: %w", err)
	}
	return oldValue.ThinkAloud, nil
}

// ClearThinkAloud clears the value of the "think_aloud" field.
func (m *StepMutation) ClearThinkAloud() {
	m.think_aloud = nil
	m.clearedFields[step.FieldThinkAloud] = struct{}{}
}

// ThinkAloudCleared returns if the "think_aloud" field was cleared in this mutation.
func (m *StepMutation) ThinkAloudCleared() bool {
	_, ok := m.clearedFields[step.FieldThinkAloud]
	return ok
}

// ResetThinkAloud resets all changes to the "think_aloud" field.
func (m *StepMutation) ResetThinkAloud() {
	m.think_aloud = nil
	delete(m.clearedFields, step.FieldThinkAloud)
}

// SetAction sets the "action" field.
func (m *StepMutation) SetAction(value map[string]interface{}) {
	m.action = &value
}

// Action returns the value of the "action" field in the mutation.
func (m *StepMutation) Action() (r map[string]interface{}, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldAction(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *StepMutation) ResetAction() {
	m.action = nil
}

// SetConfidence sets the "confidence" field.
func (m *StepMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *StepMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *StepMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *StepMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *StepMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetTaskProgress sets the "task_progress" field.
func (m *StepMutation) SetTaskProgress(i int) {
	m.task_progress = &i
	m.addtask_progress = nil
}

// TaskProgress returns the value of the "task_progress" field in the mutation.
func (m *StepMutation) TaskProgress() (r int, exists bool) {
	v := m.task_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskProgress returns the old "task_progress" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldTaskProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskProgress: %w", err)
	}
	return oldValue.TaskProgress, nil
}

// AddTaskProgress adds i to the "task_progress" field.
func (m *StepMutation) AddTaskProgress(i int) {
	if m.addtask_progress != nil {
		*m.addtask_progress += i
	} else {
		m.addtask_progress = &i
	}
}

// AddedTaskProgress returns the value that was added to the "task_progress" field in this mutation.
func (m *StepMutation) AddedTaskProgress() (r int, exists bool) {
	v := m.addtask_progress
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskProgress resets all changes to the "task_progress" field.
func (m *StepMutation) ResetTaskProgress() {
	m.task_progress = nil
	m.addtask_progress = nil
}

// SetEmotionalState sets the "emotional_state" field.
func (m *StepMutation) SetEmotionalState(ss step.EmotionalState) {
	m.emotional_state = &ss
}

// EmotionalState returns the value of the "emotional_state" field in the mutation.
func (m *StepMutation) EmotionalState() (r step.EmotionalState, exists bool) {
	v := m.emotional_state
	if v == nil {
		return
	}
	return *v, true
}

// OldEmotionalState returns the old "emotional_state" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldEmotionalState(ctx context.Context) (v step.EmotionalState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmotionalState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmotionalState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmotionalState: %w", err)
	}
	return oldValue.EmotionalState, nil
}

// ResetEmotionalState resets all changes to the "emotional_state" field.
func (m *StepMutation) ResetEmotionalState() {
	m.emotional_state = nil
}

// SetClickX sets the "click_x" field.
func (m *StepMutation) SetClickX(i int) {
	m.click_x = &i
	m.addclick_x = nil
}

// ClickX returns the value of the "click_x" field in the mutation.
func (m *StepMutation) ClickX() (r int, exists bool) {
	v := m.click_x
	if v == nil {
		return
	}
	return *v, true
}

// OldClickX returns the old "click_x" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldClickX(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickX: %w", err)
	}
	return oldValue.ClickX, nil
}

// AddClickX adds i to the "click_x" field.
func (m *StepMutation) AddClickX(i int) {
	if m.addclick_x != nil {
		*m.addclick_x += i
	} else {
		m.addclick_x = &i
	}
}

// AddedClickX returns the value that was added to the "click_x" field in this mutation.
func (m *StepMutation) AddedClickX() (r int, exists bool) {
	v := m.addclick_x
	if v == nil {
		return
	}
	return *v, true
}

// ClearClickX clears the value of the "click_x" field.
func (m *StepMutation) ClearClickX() {
	m.click_x = nil
	m.addclick_x = nil
	m.clearedFields[step.FieldClickX] = struct{}{}
}

// ClickXCleared returns if the "click_x" field was cleared in this mutation.
func (m *StepMutation) ClickXCleared() bool {
	_, ok := m.clearedFields[step.FieldClickX]
	return ok
}

// ResetClickX resets all changes to the "click_x" field.
func (m *StepMutation) ResetClickX() {
	m.click_x = nil
	m.addclick_x = nil
	delete(m.clearedFields, step.FieldClickX)
}

// SetClickY sets the "click_y" field.
func (m *StepMutation) SetClickY(i int) {
	m.click_y = &i
	m.addclick_y = nil
}

// ClickY returns the value of the "click_y" field in the mutation.
func (m *StepMutation) ClickY() (r int, exists bool) {
	v := m.click_y
	if v == nil {
		return
	}
	return *v, true
}

// OldClickY returns the old "click_y" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldClickY(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickY: %w", err)
	}
	return oldValue.ClickY, nil
}

// AddClickY adds i to the "click_y" field.
func (m *StepMutation) AddClickY(i int) {
	if m.addclick_y != nil {
		*m.addclick_y += i
	} else {
		m.addclick_y = &i
	}
}

// AddedClickY returns the value that was added to the "click_y" field in this mutation.
func (m *StepMutation) AddedClickY() (r int, exists bool) {
	v := m.addclick_y
	if v == nil {
		return
	}
	return *v, true
}

// ClearClickY clears the value of the "click_y" field.
func (m *StepMutation) ClearClickY() {
	m.click_y = nil
	m.addclick_y = nil
	m.clearedFields[step.FieldClickY] = struct{}{}
}

// ClickYCleared returns if the "click_y" field was cleared in this mutation.
func (m *StepMutation) ClickYCleared() bool {
	_, ok := m.clearedFields[step.FieldClickY]
	return ok
}

// ResetClickY resets all changes to the "click_y" field.
func (m *StepMutation) ResetClickY() {
	m.click_y = nil
	m.addclick_y = nil
	delete(m.clearedFields, step.FieldClickY)
}

// SetViewportW sets the "viewport_w" field.
func (m *StepMutation) SetViewportW(i int) {
	m.viewport_w = &i
	m.addviewport_w = nil
}

// ViewportW returns the value of the "viewport_w" field in the mutation.
func (m *StepMutation) ViewportW() (r int, exists bool) {
	v := m.viewport_w
	if v == nil {
		return
	}
	return *v, true
}

// OldViewportW returns the old "viewport_w" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldViewportW(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewportW is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewportW requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewportW: %w", err)
	}
	return oldValue.ViewportW, nil
}

// AddViewportW adds i to the "viewport_w" field.
func (m *StepMutation) AddViewportW(i int) {
	if m.addviewport_w != nil {
		*m.addviewport_w += i
	} else {
		m.addviewport_w = &i
	}
}

// AddedViewportW returns the value that was added to the "viewport_w" field in this mutation.
func (m *StepMutation) AddedViewportW() (r int, exists bool) {
	v := m.addviewport_w
	if v == nil {
		return
	}
	return *v, true
}

// ClearViewportW clears the value of the "viewport_w" field.
func (m *StepMutation) ClearViewportW() {
	m.viewport_w = nil
	m.addviewport_w = nil
	m.clearedFields[step.FieldViewportW] = struct{}{}
}

// ViewportWCleared returns if the "viewport_w" field was cleared in this mutation.
func (m *StepMutation) ViewportWCleared() bool {
	_, ok := m.clearedFields[step.FieldViewportW]
	return ok
}

// ResetViewportW resets all changes to the "viewport_w" field.
func (m *StepMutation) ResetViewportW() {
	m.viewport_w = nil
	m.addviewport_w = nil
	delete(m.clearedFields, step.FieldViewportW)
}

// SetViewportH sets the "viewport_h" field.
func (m *StepMutation) SetViewportH(i int) {
	m.viewport_h = &i
	m.addviewport_h = nil
}

// ViewportH returns the value of the "viewport_h" field in the mutation.
func (m *StepMutation) ViewportH() (r int, exists bool) {
	v := m.viewport_h
	if v == nil {
		return
	}
	return *v, true
}

// OldViewportH returns the old "viewport_h" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldViewportH(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewportH is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewportH requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewportH: %w", err)
	}
	return oldValue.ViewportH, nil
}

// AddViewportH adds i to the "viewport_h" field.
func (m *StepMutation) AddViewportH(i int) {
	if m.addviewport_h != nil {
		*m.addviewport_h += i
	} else {
		m.addviewport_h = &i
	}
}

// AddedViewportH returns the value that was added to the "viewport_h" field in this mutation.
func (m *StepMutation) AddedViewportH() (r int, exists bool) {
	v := m.addviewport_h
	if v == nil {
		return
	}
	return *v, true
}

// ClearViewportH clears the value of the "viewport_h" field.
func (m *StepMutation) ClearViewportH() {
	m.viewport_h = nil
	m.addviewport_h = nil
	m.clearedFields[step.FieldViewportH] = struct{}{}
}

// ViewportHCleared returns if the "viewport_h" field was cleared in this mutation.
func (m *StepMutation) ViewportHCleared() bool {
	_, ok := m.clearedFields[step.FieldViewportH]
	return ok
}

// ResetViewportH resets all changes to the "viewport_h" field.
func (m *StepMutation) ResetViewportH() {
	m.viewport_h = nil
	m.addviewport_h = nil
	delete(m.clearedFields, step.FieldViewportH)
}

// SetScrollY sets the "scroll_y" field.
func (m *StepMutation) SetScrollY(i int) {
	m.scroll_y = &i
	m.addscroll_y = nil
}

// ScrollY returns the value of the "scroll_y" field in the mutation.
func (m *StepMutation) ScrollY() (r int, exists bool) {
	v := m.scroll_y
	if v == nil {
		return
	}
	return *v, true
}

// OldScrollY returns the old "scroll_y" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldScrollY(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScrollY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScrollY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScrollY: %w", err)
	}
	return oldValue.ScrollY, nil
}

// AddScrollY adds i to the "scroll_y" field.
func (m *StepMutation) AddScrollY(i int) {
	if m.addscroll_y != nil {
		*m.addscroll_y += i
	} else {
		m.addscroll_y = &i
	}
}

// AddedScrollY returns the value that was added to the "scroll_y" field in this mutation.
func (m *StepMutation) AddedScrollY() (r int, exists bool) {
	v := m.addscroll_y
	if v == nil {
		return
	}
	return *v, true
}

// ClearScrollY clears the value of the "scroll_y" field.
func (m *StepMutation) ClearScrollY() {
	m.scroll_y = nil
	m.addscroll_y = nil
	m.clearedFields[step.FieldScrollY] = struct{}{}
}

// ScrollYCleared returns if the "scroll_y" field was cleared in this mutation.
func (m *StepMutation) ScrollYCleared() bool {
	_, ok := m.clearedFields[step.FieldScrollY]
	return ok
}

// ResetScrollY resets all changes to the "scroll_y" field.
func (m *StepMutation) ResetScrollY() {
	m.scroll_y = nil
	m.addscroll_y = nil
	delete(m.clearedFields, step.FieldScrollY)
}

// SetMaxScrollY sets the "max_scroll_y" field.
func (m *StepMutation) SetMaxScrollY(i int) {
	m.max_scroll_y = &i
	m.addmax_scroll_y = nil
}

// MaxScrollY returns the value of the "max_scroll_y" field in the mutation.
func (m *StepMutation) MaxScrollY() (r int, exists bool) {
	v := m.max_scroll_y
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxScrollY returns the old "max_scroll_y" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldMaxScrollY(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxScrollY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxScrollY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxScrollY: %w", err)
	}
	return oldValue.MaxScrollY, nil
}

// AddMaxScrollY adds i to the "max_scroll_y" field.
func (m *StepMutation) AddMaxScrollY(i int) {
	if m.addmax_scroll_y != nil {
		*m.addmax_scroll_y += i
	} else {
		m.addmax_scroll_y = &i
	}
}

// AddedMaxScrollY returns the value that was added to the "max_scroll_y" field in this mutation.
func (m *StepMutation) AddedMaxScrollY() (r int, exists bool) {
	v := m.addmax_scroll_y
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxScrollY clears the value of the "max_scroll_y" field.
func (m *StepMutation) ClearMaxScrollY() {
	m.max_scroll_y = nil
	m.addmax_scroll_y = nil
	m.clearedFields[step.FieldMaxScrollY] = struct{}{}
}

// MaxScrollYCleared returns if the "max_scroll_y" field was cleared in this mutation.
func (m *StepMutation) MaxScrollYCleared() bool {
	_, ok := m.clearedFields[step.FieldMaxScrollY]
	return ok
}

// ResetMaxScrollY resets all changes to the "max_scroll_y" field.
func (m *StepMutation) ResetMaxScrollY() {
	m.max_scroll_y = nil
	m.addmax_scroll_y = nil
	delete(m.clearedFields, step.FieldMaxScrollY)
}

// SetLoadTimeMs sets the "load_time_ms" field.
func (m *StepMutation) SetLoadTimeMs(i int) {
	m.load_time_ms = &i
	m.addload_time_ms = nil
}

// LoadTimeMs returns the value of the "load_time_ms" field in the mutation.
func (m *StepMutation) LoadTimeMs() (r int, exists bool) {
	v := m.load_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLoadTimeMs returns the old "load_time_ms" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldLoadTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoadTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoadTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoadTimeMs: %w", err)
	}
	return oldValue.LoadTimeMs, nil
}

// AddLoadTimeMs adds i to the "load_time_ms" field.
func (m *StepMutation) AddLoadTimeMs(i int) {
	if m.addload_time_ms != nil {
		*m.addload_time_ms += i
	} else {
		m.addload_time_ms = &i
	}
}

// AddedLoadTimeMs returns the value that was added to the "load_time_ms" field in this mutation.
func (m *StepMutation) AddedLoadTimeMs() (r int, exists bool) {
	v := m.addload_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLoadTimeMs clears the value of the "load_time_ms" field.
func (m *StepMutation) ClearLoadTimeMs() {
	m.load_time_ms = nil
	m.addload_time_ms = nil
	m.clearedFields[step.FieldLoadTimeMs] = struct{}{}
}

// LoadTimeMsCleared returns if the "load_time_ms" field was cleared in this mutation.
func (m *StepMutation) LoadTimeMsCleared() bool {
	_, ok := m.clearedFields[step.FieldLoadTimeMs]
	return ok
}

// ResetLoadTimeMs resets all changes to the "load_time_ms" field.
func (m *StepMutation) ResetLoadTimeMs() {
	m.load_time_ms = nil
	m.addload_time_ms = nil
	delete(m.clearedFields, step.FieldLoadTimeMs)
}

// SetFirstPaintMs sets the "first_paint_ms" field.
func (m *StepMutation) SetFirstPaintMs(i int) {
	m.first_paint_ms = &i
	m.addfirst_paint_ms = nil
}

// FirstPaintMs returns the value of the "first_paint_ms" field in the mutation.
func (m *StepMutation) FirstPaintMs() (r int, exists bool) {
	v := m.first_paint_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstPaintMs returns the old "first_paint_ms" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldFirstPaintMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstPaintMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstPaintMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstPaintMs: %w", err)
	}
	return oldValue.FirstPaintMs, nil
}

// AddFirstPaintMs adds i to the "first_paint_ms" field.
func (m *StepMutation) AddFirstPaintMs(i int) {
	if m.addfirst_paint_ms != nil {
		*m.addfirst_paint_ms += i
	} else {
		m.addfirst_paint_ms = &i
	}
}

// AddedFirstPaintMs returns the value that was added to the "first_paint_ms" field in this mutation.
func (m *StepMutation) AddedFirstPaintMs() (r int, exists bool) {
	v := m.addfirst_paint_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearFirstPaintMs clears the value of the "first_paint_ms" field.
func (m *StepMutation) ClearFirstPaintMs() {
	m.first_paint_ms = nil
	m.addfirst_paint_ms = nil
	m.clearedFields[step.FieldFirstPaintMs] = struct{}{}
}

// FirstPaintMsCleared returns if the "first_paint_ms" field was cleared in this mutation.
func (m *StepMutation) FirstPaintMsCleared() bool {
	_, ok := m.clearedFields[step.FieldFirstPaintMs]
	return ok
}

// ResetFirstPaintMs resets all changes to the "first_paint_ms" field.
func (m *StepMutation) ResetFirstPaintMs() {
	m.first_paint_ms = nil
	m.addfirst_paint_ms = nil
	delete(m.clearedFields, step.FieldFirstPaintMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *StepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Step entity.
// If the Step object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *StepMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[step.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *StepMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *StepMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *StepMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// AddIssueIDs adds the "issues" edge to the Issue entity by ids.
func (m *StepMutation) AddIssueIDs(ids ...string) {
	if m.issues == nil {
		m.issues = make(map[string]struct{})
	}
	for i := range ids {
		m.issues[ids[i]] = struct{}{}
	}
}

// ClearIssues clears the "issues" edge to the Issue entity.
func (m *StepMutation) ClearIssues() {
	m.clearedissues = true
}

// IssuesCleared reports if the "issues" edge to the Issue entity was cleared.
func (m *StepMutation) IssuesCleared() bool {
	return m.clearedissues
}

// RemoveIssueIDs removes the "issues" edge to the Issue entity by IDs.
func (m *StepMutation) RemoveIssueIDs(ids ...string) {
	if m.removedissues == nil {
		m.removedissues = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.issues, ids[i])
		m.removedissues[ids[i]] = struct{}{}
	}
}

// RemovedIssues returns the removed IDs of the "issues" edge to the Issue entity.
func (m *StepMutation) RemovedIssuesIDs() (ids []string) {
	for id := range m.removedissues {
		ids = append(ids, id)
	}
	return
}

// IssuesIDs returns the "issues" edge IDs in the mutation.
func (m *StepMutation) IssuesIDs() (ids []string) {
	for id := range m.issues {
		ids = append(ids, id)
	}
	return
}

// ResetIssues resets all changes to the "issues" edge.
func (m *StepMutation) ResetIssues() {
	m.issues = nil
	m.clearedissues = false
	m.removedissues = nil
}

// Where appends a list predicates to the StepMutation builder.
func (m *StepMutation) Where(ps ...predicate.Step) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Step, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Step).
func (m *StepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StepMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.session != nil {
		fields = append(fields, step.FieldSessionID)
	}
	if m.step_number != nil {
		fields = append(fields, step.FieldStepNumber)
	}
	if m.page_url != nil {
		fields = append(fields, step.FieldPageURL)
	}
	if m.page_title != nil {
		fields = append(fields, step.FieldPageTitle)
	}
	if m.screenshot_ref != nil {
		fields = append(fields, step.FieldScreenshotRef)
	}
	if m.think_aloud != nil {
		fields = append(fields, step.FieldThinkAloud)
	}
	if m.action != nil {
		fields = append(fields, step.FieldAction)
	}
	if m.confidence != nil {
		fields = append(fields, step.FieldConfidence)
	}
	if m.task_progress != nil {
		fields = append(fields, step.FieldTaskProgress)
	}
	if m.emotional_state != nil {
		fields = append(fields, step.FieldEmotionalState)
	}
	if m.click_x != nil {
		fields = append(fields, step.FieldClickX)
	}
	if m.click_y != nil {
		fields = append(fields, step.FieldClickY)
	}
	if m.viewport_w != nil {
		fields = append(fields, step.FieldViewportW)
	}
	if m.viewport_h != nil {
		fields = append(fields, step.FieldViewportH)
	}
	if m.scroll_y != nil {
		fields = append(fields, step.FieldScrollY)
	}
	if m.max_scroll_y != nil {
		fields = append(fields, step.FieldMaxScrollY)
	}
	if m.load_time_ms != nil {
		fields = append(fields, step.FieldLoadTimeMs)
	}
	if m.first_paint_ms != nil {
		fields = append(fields, step.FieldFirstPaintMs)
	}
	if m.created_at != nil {
		fields = append(fields, step.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case step.FieldSessionID:
		return m.SessionID()
	case step.FieldStepNumber:
		return m.StepNumber()
	case step.FieldPageURL:
		return m.PageURL()
	case step.FieldPageTitle:
		return m.PageTitle()
	case step.FieldScreenshotRef:
		return m.ScreenshotRef()
	case step.FieldThinkAloud:
		return m.ThinkAloud()
	case step.FieldAction:
		return m.Action()
	case step.FieldConfidence:
		return m.Confidence()
	case step.FieldTaskProgress:
		return m.TaskProgress()
	case step.FieldEmotionalState:
		return m.EmotionalState()
	case step.FieldClickX:
		return m.ClickX()
	case step.FieldClickY:
		return m.ClickY()
	case step.FieldViewportW:
		return m.ViewportW()
	case step.FieldViewportH:
		return m.ViewportH()
	case step.FieldScrollY:
		return m.ScrollY()
	case step.FieldMaxScrollY:
		return m.MaxScrollY()
	case step.FieldLoadTimeMs:
		return m.LoadTimeMs()
	case step.FieldFirstPaintMs:
		return m.FirstPaintMs()
	case step.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case step.FieldSessionID:
		return m.OldSessionID(ctx)
	case step.FieldStepNumber:
		return m.OldStepNumber(ctx)
	case step.FieldPageURL:
		return m.OldPageURL(ctx)
	case step.FieldPageTitle:
		return m.OldPageTitle(ctx)
	case step.FieldScreenshotRef:
		return m.OldScreenshotRef(ctx)
	case step.FieldThinkAloud:
		return m.OldThinkAloud(ctx)
	case step.FieldAction:
		return m.OldAction(ctx)
	case step.FieldConfidence:
		return m.OldConfidence(ctx)
	case step.FieldTaskProgress:
		return m.OldTaskProgress(ctx)
	case step.FieldEmotionalState:
		return m.OldEmotionalState(ctx)
	case step.FieldClickX:
		return m.OldClickX(ctx)
	case step.FieldClickY:
		return m.OldClickY(ctx)
	case step.FieldViewportW:
		return m.OldViewportW(ctx)
	case step.FieldViewportH:
		return m.OldViewportH(ctx)
	case step.FieldScrollY:
		return m.OldScrollY(ctx)
	case step.FieldMaxScrollY:
		return m.OldMaxScrollY(ctx)
	case step.FieldLoadTimeMs:
		return m.OldLoadTimeMs(ctx)
	case step.FieldFirstPaintMs:
		return m.OldFirstPaintMs(ctx)
	case step.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Step field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case step.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case step.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepNumber(v)
		return nil
	case step.FieldPageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageURL(v)
		return nil
	case step.FieldPageTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageTitle(v)
		return nil
	case step.FieldScreenshotRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScreenshotRef(v)
		return nil
	case step.FieldThinkAloud:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThinkAloud(v)
		return nil
	case step.FieldAction:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case step.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case step.FieldTaskProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskProgress(v)
		return nil
	case step.FieldEmotionalState:
		v, ok := value.(step.EmotionalState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmotionalState(v)
		return nil
	case step.FieldClickX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickX(v)
		return nil
	case step.FieldClickY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickY(v)
		return nil
	case step.FieldViewportW:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewportW(v)
		return nil
	case step.FieldViewportH:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewportH(v)
		return nil
	case step.FieldScrollY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScrollY(v)
		return nil
	case step.FieldMaxScrollY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxScrollY(v)
		return nil
	case step.FieldLoadTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoadTimeMs(v)
		return nil
	case step.FieldFirstPaintMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstPaintMs(v)
		return nil
	case step.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_number != nil {
		fields = append(fields, step.FieldStepNumber)
	}
	if m.addconfidence != nil {
		fields = append(fields, step.FieldConfidence)
	}
	if m.addtask_progress != nil {
		fields = append(fields, step.FieldTaskProgress)
	}
	if m.addclick_x != nil {
		fields = append(fields, step.FieldClickX)
	}
	if m.addclick_y != nil {
		fields = append(fields, step.FieldClickY)
	}
	if m.addviewport_w != nil {
		fields = append(fields, step.FieldViewportW)
	}
	if m.addviewport_h != nil {
		fields = append(fields, step.FieldViewportH)
	}
	if m.addscroll_y != nil {
		fields = append(fields, step.FieldScrollY)
	}
	if m.addmax_scroll_y != nil {
		fields = append(fields, step.FieldMaxScrollY)
	}
	if m.addload_time_ms != nil {
		fields = append(fields, step.FieldLoadTimeMs)
	}
	if m.addfirst_paint_ms != nil {
		fields = append(fields, step.FieldFirstPaintMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case step.FieldStepNumber:
		return m.AddedStepNumber()
	case step.FieldConfidence:
		return m.AddedConfidence()
	case step.FieldTaskProgress:
		return m.AddedTaskProgress()
	case step.FieldClickX:
		return m.AddedClickX()
	case step.FieldClickY:
		return m.AddedClickY()
	case step.FieldViewportW:
		return m.AddedViewportW()
	case step.FieldViewportH:
		return m.AddedViewportH()
	case step.FieldScrollY:
		return m.AddedScrollY()
	case step.FieldMaxScrollY:
		return m.AddedMaxScrollY()
	case step.FieldLoadTimeMs:
		return m.AddedLoadTimeMs()
	case step.FieldFirstPaintMs:
		return m.AddedFirstPaintMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case step.FieldStepNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepNumber(v)
		return nil
	case step.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case step.FieldTaskProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskProgress(v)
		return nil
	case step.FieldClickX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClickX(v)
		return nil
	case step.FieldClickY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClickY(v)
		return nil
	case step.FieldViewportW:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViewportW(v)
		return nil
	case step.FieldViewportH:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViewportH(v)
		return nil
	case step.FieldScrollY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScrollY(v)
		return nil
	case step.FieldMaxScrollY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxScrollY(v)
		return nil
	case step.FieldLoadTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoadTimeMs(v)
		return nil
	case step.FieldFirstPaintMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstPaintMs(v)
		return nil
	}
	return fmt.Errorf("unknown Step numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(step.FieldPageTitle) {
		fields = append(fields, step.FieldPageTitle)
	}
	if m.FieldCleared(step.FieldScreenshotRef) {
		fields = append(fields, step.FieldScreenshotRef)
	}
	if m.FieldCleared(step.FieldThinkAloud) {
		fields = append(fields, step.FieldThinkAloud)
	}
	if m.FieldCleared(step.FieldClickX) {
		fields = append(fields, step.FieldClickX)
	}
	if m.FieldCleared(step.FieldClickY) {
		fields = append(fields, step.FieldClickY)
	}
	if m.FieldCleared(step.FieldViewportW) {
		fields = append(fields, step.FieldViewportW)
	}
	if m.FieldCleared(step.FieldViewportH) {
		fields = append(fields, step.FieldViewportH)
	}
	if m.FieldCleared(step.FieldScrollY) {
		fields = append(fields, step.FieldScrollY)
	}
	if m.FieldCleared(step.FieldMaxScrollY) {
		fields = append(fields, step.FieldMaxScrollY)
	}
	if m.FieldCleared(step.FieldLoadTimeMs) {
		fields = append(fields, step.FieldLoadTimeMs)
	}
	if m.FieldCleared(step.FieldFirstPaintMs) {
		fields = append(fields, step.FieldFirstPaintMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StepMutation) ClearField(name string) error {
	switch name {
	case step.FieldPageTitle:
		m.ClearPageTitle()
		return nil
	case step.FieldScreenshotRef:
		m.ClearScreenshotRef()
		return nil
	case step.FieldThinkAloud:
		m.ClearThinkAloud()
		return nil
	case step.FieldClickX:
		m.ClearClickX()
		return nil
	case step.FieldClickY:
		m.ClearClickY()
		return nil
	case step.FieldViewportW:
		m.ClearViewportW()
		return nil
	case step.FieldViewportH:
		m.ClearViewportH()
		return nil
	case step.FieldScrollY:
		m.ClearScrollY()
		return nil
	case step.FieldMaxScrollY:
		m.ClearMaxScrollY()
		return nil
	case step.FieldLoadTimeMs:
		m.ClearLoadTimeMs()
		return nil
	case step.FieldFirstPaintMs:
		m.ClearFirstPaintMs()
		return nil
	}
	return fmt.Errorf("unknown Step nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StepMutation) ResetField(name string) error {
	switch name {
	case step.FieldSessionID:
		m.ResetSessionID()
		return nil
	case step.FieldStepNumber:
		m.ResetStepNumber()
		return nil
	case step.FieldPageURL:
		m.ResetPageURL()
		return nil
	case step.FieldPageTitle:
		m.ResetPageTitle()
		return nil
	case step.FieldScreenshotRef:
		m.ResetScreenshotRef()
		return nil
	case step.FieldThinkAloud:
		m.ResetThinkAloud()
		return nil
	case step.FieldAction:
		m.ResetAction()
		return nil
	case step.FieldConfidence:
		m.ResetConfidence()
		return nil
	case step.FieldTaskProgress:
		m.ResetTaskProgress()
		return nil
	case step.FieldEmotionalState:
		m.ResetEmotionalState()
		return nil
	case step.FieldClickX:
		m.ResetClickX()
		return nil
	case step.FieldClickY:
		m.ResetClickY()
		return nil
	case step.FieldViewportW:
		m.ResetViewportW()
		return nil
	case step.FieldViewportH:
		m.ResetViewportH()
		return nil
	case step.FieldScrollY:
		m.ResetScrollY()
		return nil
	case step.FieldMaxScrollY:
		m.ResetMaxScrollY()
		return nil
	case step.FieldLoadTimeMs:
		m.ResetLoadTimeMs()
		return nil
	case step.FieldFirstPaintMs:
		m.ResetFirstPaintMs()
		return nil
	case step.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Step field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StepMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, step.EdgeSession)
	}
	if m.issues != nil {
		edges = append(edges, step.EdgeIssues)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case step.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.issues))
		for id := range m.issues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedissues != nil {
		edges = append(edges, step.EdgeIssues)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StepMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case step.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.removedissues))
		for id := range m.removedissues {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, step.EdgeSession)
	}
	if m.clearedissues {
		edges = append(edges, step.EdgeIssues)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StepMutation) EdgeCleared(name string) bool {
	switch name {
	case step.EdgeSession:
		return m.clearedsession
	case step.EdgeIssues:
		return m.clearedissues
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StepMutation) ClearEdge(name string) error {
	switch name {
	case step.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Step unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StepMutation) ResetEdge(name string) error {
	switch name {
	case step.EdgeSession:
		m.ResetSession()
		return nil
	case step.EdgeIssues:
		m.ResetIssues()
		return nil
	}
	return fmt.Errorf("unknown Step edge %s", name)
}

// StudyMutation represents an operation that mutates the Study nodes in the graph.
type StudyMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	url                 *string
	starting_path       *string
	status              *study.Status
	browser_mode        *study.BrowserMode
	started_at          *time.Time
	duration_seconds    *int
	addduration_seconds *int
	overall_score       *int
	addoverall_score    *int
	executive_summary   *string
	cost_breakdown      *map[string]interface{}
	error_message       *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	tasks               map[string]struct{}
	removedtasks        map[string]struct{}
	clearedtasks        bool
	personas            map[string]struct{}
	removedpersonas     map[string]struct{}
	clearedpersonas     bool
	sessions            map[string]struct{}
	removedsessions     map[string]struct{}
	clearedsessions     bool
	issues              map[string]struct{}
	removedissues       map[string]struct{}
	clearedissues       bool
	insights            map[string]struct{}
	removedinsights     map[string]struct{}
	clearedinsights     bool
	schedules           map[string]struct{}
	removedschedules    map[string]struct{}
	clearedschedules    bool
	jobs                map[string]struct{}
	removedjobs         map[string]struct{}
	clearedjobs         bool
	done                bool
	oldValue            func(context.Context) (*Study, error)
	predicates          []predicate.Study
}

var _ ent.Mutation = (*StudyMutation)(nil)

// studyOption allows management of the mutation configuration using functional options.
type studyOption func(*StudyMutation)

// newStudyMutation creates new mutation for the Study entity.
func newStudyMutation(c config, op Op, opts ...studyOption) *StudyMutation {
	m := &StudyMutation{
		config:        c,
		op:            op,
		typ:           TypeStudy,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyID sets the ID field of the mutation.
func withStudyID(id string) studyOption {
	return func(m *StudyMutation) {
		var (
			err   error
			once  sync.Once
			value *Study
		)
		m.oldValue = func(ctx context.Context) (*Study, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Study.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudy sets the old Study of the mutation.
func withStudy(node *Study) studyOption {
	return func(m *StudyMutation) {
		m.oldValue = func(context.Context) (*Study, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Study entities.
func (m *StudyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Study.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *StudyMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *StudyMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *StudyMutation) ResetURL() {
	m.url = nil
}

// SetStartingPath sets the "starting_path" field.
func (m *StudyMutation) SetStartingPath(s string) {
	m.starting_path = &s
}

// StartingPath returns the value of the "starting_path" field in the mutation.
func (m *StudyMutation) StartingPath() (r string, exists bool) {
	v := m.starting_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStartingPath returns the old "starting_path" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldStartingPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartingPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartingPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartingPath: %w", err)
	}
	return oldValue.StartingPath, nil
}

// ResetStartingPath resets all changes to the "starting_path" field.
func (m *StudyMutation) ResetStartingPath() {
	m.starting_path = nil
}

// SetStatus sets the "status" field.
func (m *StudyMutation) SetStatus(s study.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudyMutation) Status() (r study.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldStatus(ctx context.Context) (v study.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StudyMutation) ResetStatus() {
	m.status = nil
}

// SetBrowserMode sets the "browser_mode" field.
func (m *StudyMutation) SetBrowserMode(sm study.BrowserMode) {
	m.browser_mode = &sm
}

// BrowserMode returns the value of the "browser_mode" field in the mutation.
func (m *StudyMutation) BrowserMode() (r study.BrowserMode, exists bool) {
	v := m.browser_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldBrowserMode returns the old "browser_mode" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldBrowserMode(ctx context.Context) (v *study.BrowserMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrowserMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrowserMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrowserMode: %w", err)
	}
	return oldValue.BrowserMode, nil
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (m *StudyMutation) ClearBrowserMode() {
	m.browser_mode = nil
	m.clearedFields[study.FieldBrowserMode] = struct{}{}
}

// BrowserModeCleared returns if the "browser_mode" field was cleared in this mutation.
func (m *StudyMutation) BrowserModeCleared() bool {
	_, ok := m.clearedFields[study.FieldBrowserMode]
	return ok
}

// ResetBrowserMode resets all changes to the "browser_mode" field.
func (m *StudyMutation) ResetBrowserMode() {
	m.browser_mode = nil
	delete(m.clearedFields, study.FieldBrowserMode)
}

// SetStartedAt sets the "started_at" field.
func (m *StudyMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StudyMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StudyMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[study.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StudyMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[study.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StudyMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, study.FieldStartedAt)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *StudyMutation) SetDurationSeconds(i int) {
	m.duration_seconds = &i
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *StudyMutation) DurationSeconds() (r int, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldDurationSeconds(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds i to the "duration_seconds" field.
func (m *StudyMutation) AddDurationSeconds(i int) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += i
	} else {
		m.addduration_seconds = &i
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *StudyMutation) AddedDurationSeconds() (r int, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *StudyMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[study.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *StudyMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[study.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *StudyMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, study.FieldDurationSeconds)
}

// SetOverallScore sets the "overall_score" field.
func (m *StudyMutation) SetOverallScore(i int) {
	m.overall_score = &i
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *StudyMutation) OverallScore() (r int, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldOverallScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds i to the "overall_score" field.
func (m *StudyMutation) AddOverallScore(i int) {
	if m.addoverall_score != nil {
		*m.addoverall_score += i
	} else {
		m.addoverall_score = &i
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *StudyMutation) AddedOverallScore() (r int, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallScore clears the value of the "overall_score" field.
func (m *StudyMutation) ClearOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
	m.clearedFields[study.FieldOverallScore] = struct{}{}
}

// OverallScoreCleared returns if the "overall_score" field was cleared in this mutation.
func (m *StudyMutation) OverallScoreCleared() bool {
	_, ok := m.clearedFields[study.FieldOverallScore]
	return ok
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *StudyMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
	delete(m.clearedFields, study.FieldOverallScore)
}

// SetExecutiveSummary sets the "executive_summary" field.
func (m *StudyMutation) SetExecutiveSummary(s string) {
	m.executive_summary = &s
}

// ExecutiveSummary returns the value of the "executive_summary" field in the mutation.
func (m *StudyMutation) ExecutiveSummary() (r string, exists bool) {
	v := m.executive_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutiveSummary returns the old "executive_summary" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldExecutiveSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutiveSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutiveSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutiveSummary: %w", err)
	}
	return oldValue.ExecutiveSummary, nil
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (m *StudyMutation) ClearExecutiveSummary() {
	m.executive_summary = nil
	m.clearedFields[study.FieldExecutiveSummary] = struct{}{}
}

// ExecutiveSummaryCleared returns if the "executive_summary" field was cleared in this mutation.
func (m *StudyMutation) ExecutiveSummaryCleared() bool {
	_, ok := m.clearedFields[study.FieldExecutiveSummary]
	return ok
}

// ResetExecutiveSummary resets all changes to the "executive_summary" field.
func (m *StudyMutation) ResetExecutiveSummary() {
	m.executive_summary = nil
	delete(m.clearedFields, study.FieldExecutiveSummary)
}

// SetCostBreakdown sets the "cost_breakdown" field.
func (m *StudyMutation) SetCostBreakdown(value map[string]interface{}) {
	m.cost_breakdown = &value
}

// CostBreakdown returns the value of the "cost_breakdown" field in the mutation.
func (m *StudyMutation) CostBreakdown() (r map[string]interface{}, exists bool) {
	v := m.cost_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldCostBreakdown returns the old "cost_breakdown" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldCostBreakdown(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostBreakdown: %w", err)
	}
	return oldValue.CostBreakdown, nil
}

// ClearCostBreakdown clears the value of the "cost_breakdown" field.
func (m *StudyMutation) ClearCostBreakdown() {
	m.cost_breakdown = nil
	m.clearedFields[study.FieldCostBreakdown] = struct{}{}
}

// CostBreakdownCleared returns if the "cost_breakdown" field was cleared in this mutation.
func (m *StudyMutation) CostBreakdownCleared() bool {
	_, ok := m.clearedFields[study.FieldCostBreakdown]
	return ok
}

// ResetCostBreakdown resets all changes to the "cost_breakdown" field.
func (m *StudyMutation) ResetCostBreakdown() {
	m.cost_breakdown = nil
	delete(m.clearedFields, study.FieldCostBreakdown)
}

// SetErrorMessage sets the "error_message" field.
func (m *StudyMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StudyMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StudyMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[study.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StudyMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[study.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StudyMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, study.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *StudyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Study entity.
// If the Study object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *StudyMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *StudyMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *StudyMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *StudyMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *StudyMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *StudyMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *StudyMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddPersonaIDs adds the "personas" edge to the Persona entity by ids.
func (m *StudyMutation) AddPersonaIDs(ids ...string) {
	if m.personas == nil {
		m.personas = make(map[string]struct{})
	}
	for i := range ids {
		m.personas[ids[i]] = struct{}{}
	}
}

// ClearPersonas clears the "personas" edge to the Persona entity.
func (m *StudyMutation) ClearPersonas() {
	m.clearedpersonas = true
}

// PersonasCleared reports if the "personas" edge to the Persona entity was cleared.
func (m *StudyMutation) PersonasCleared() bool {
	return m.clearedpersonas
}

// RemovePersonaIDs removes the "personas" edge to the Persona entity by IDs.
func (m *StudyMutation) RemovePersonaIDs(ids ...string) {
	if m.removedpersonas == nil {
		m.removedpersonas = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.personas, ids[i])
		m.removedpersonas[ids[i]] = struct{}{}
	}
}

// RemovedPersonas returns the removed IDs of the "personas" edge to the Persona entity.
func (m *StudyMutation) RemovedPersonasIDs() (ids []string) {
	for id := range m.removedpersonas {
		ids = append(ids, id)
	}
	return
}

// PersonasIDs returns the "personas" edge IDs in the mutation.
func (m *StudyMutation) PersonasIDs() (ids []string) {
	for id := range m.personas {
		ids = append(ids, id)
	}
	return
}

// ResetPersonas resets all changes to the "personas" edge.
func (m *StudyMutation) ResetPersonas() {
	m.personas = nil
	m.clearedpersonas = false
	m.removedpersonas = nil
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *StudyMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *StudyMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *StudyMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *StudyMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *StudyMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *StudyMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *StudyMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddIssueIDs adds the "issues" edge to the Issue entity by ids.
func (m *StudyMutation) AddIssueIDs(ids ...string) {
	if m.issues == nil {
		m.issues = make(map[string]struct{})
	}
	for i := range ids {
		m.issues[ids[i]] = struct{}{}
	}
}

// ClearIssues clears the "issues" edge to the Issue entity.
func (m *StudyMutation) ClearIssues() {
	m.clearedissues = true
}

// IssuesCleared reports if the "issues" edge to the Issue entity was cleared.
func (m *StudyMutation) IssuesCleared() bool {
	return m.clearedissues
}

// RemoveIssueIDs removes the "issues" edge to the Issue entity by IDs.
func (m *StudyMutation) RemoveIssueIDs(ids ...string) {
	if m.removedissues == nil {
		m.removedissues = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.issues, ids[i])
		m.removedissues[ids[i]] = struct{}{}
	}
}

// RemovedIssues returns the removed IDs of the "issues" edge to the Issue entity.
func (m *StudyMutation) RemovedIssuesIDs() (ids []string) {
	for id := range m.removedissues {
		ids = append(ids, id)
	}
	return
}

// IssuesIDs returns the "issues" edge IDs in the mutation.
func (m *StudyMutation) IssuesIDs() (ids []string) {
	for id := range m.issues {
		ids = append(ids, id)
	}
	return
}

// ResetIssues resets all changes to the "issues" edge.
func (m *StudyMutation) ResetIssues() {
	m.issues = nil
	m.clearedissues = false
	m.removedissues = nil
}

// AddInsightIDs adds the "insights" edge to the Insight entity by ids.
func (m *StudyMutation) AddInsightIDs(ids ...string) {
	if m.insights == nil {
		m.insights = make(map[string]struct{})
	}
	for i := range ids {
		m.insights[ids[i]] = struct{}{}
	}
}

// ClearInsights clears the "insights" edge to the Insight entity.
func (m *StudyMutation) ClearInsights() {
	m.clearedinsights = true
}

// InsightsCleared reports if the "insights" edge to the Insight entity was cleared.
func (m *StudyMutation) InsightsCleared() bool {
	return m.clearedinsights
}

// RemoveInsightIDs removes the "insights" edge to the Insight entity by IDs.
func (m *StudyMutation) RemoveInsightIDs(ids ...string) {
	if m.removedinsights == nil {
		m.removedinsights = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.insights, ids[i])
		m.removedinsights[ids[i]] = struct{}{}
	}
}

// RemovedInsights returns the removed IDs of the "insights" edge to the Insight entity.
func (m *StudyMutation) RemovedInsightsIDs() (ids []string) {
	for id := range m.removedinsights {
		ids = append(ids, id)
	}
	return
}

// InsightsIDs returns the "insights" edge IDs in the mutation.
func (m *StudyMutation) InsightsIDs() (ids []string) {
	for id := range m.insights {
		ids = append(ids, id)
	}
	return
}

// ResetInsights resets all changes to the "insights" edge.
func (m *StudyMutation) ResetInsights() {
	m.insights = nil
	m.clearedinsights = false
	m.removedinsights = nil
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by ids.
func (m *StudyMutation) AddScheduleIDs(ids ...string) {
	if m.schedules == nil {
		m.schedules = make(map[string]struct{})
	}
	for i := range ids {
		m.schedules[ids[i]] = struct{}{}
	}
}

// ClearSchedules clears the "schedules" edge to the Schedule entity.
func (m *StudyMutation) ClearSchedules() {
	m.clearedschedules = true
}

// SchedulesCleared reports if the "schedules" edge to the Schedule entity was cleared.
func (m *StudyMutation) SchedulesCleared() bool {
	return m.clearedschedules
}

// RemoveScheduleIDs removes the "schedules" edge to the Schedule entity by IDs.
func (m *StudyMutation) RemoveScheduleIDs(ids ...string) {
	if m.removedschedules == nil {
		m.removedschedules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.schedules, ids[i])
		m.removedschedules[ids[i]] = struct{}{}
	}
}

// RemovedSchedules returns the removed IDs of the "schedules" edge to the Schedule entity.
func (m *StudyMutation) RemovedSchedulesIDs() (ids []string) {
	for id := range m.removedschedules {
		ids = append(ids, id)
	}
	return
}

// SchedulesIDs returns the "schedules" edge IDs in the mutation.
func (m *StudyMutation) SchedulesIDs() (ids []string) {
	for id := range m.schedules {
		ids = append(ids, id)
	}
	return
}

// ResetSchedules resets all changes to the "schedules" edge.
func (m *StudyMutation) ResetSchedules() {
	m.schedules = nil
	m.clearedschedules = false
	m.removedschedules = nil
}

// AddJobIDs adds the "jobs" edge to the StudyJob entity by ids.
func (m *StudyMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the StudyJob entity.
func (m *StudyMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the StudyJob entity was cleared.
func (m *StudyMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the StudyJob entity by IDs.
func (m *StudyMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the StudyJob entity.
func (m *StudyMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *StudyMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *StudyMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the StudyMutation builder.
func (m *StudyMutation) Where(ps ...predicate.Study) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Study, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Study).
func (m *StudyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.url != nil {
		fields = append(fields, study.FieldURL)
	}
	if m.starting_path != nil {
		fields = append(fields, study.FieldStartingPath)
	}
	if m.status != nil {
		fields = append(fields, study.FieldStatus)
	}
	if m.browser_mode != nil {
		fields = append(fields, study.FieldBrowserMode)
	}
	if m.started_at != nil {
		fields = append(fields, study.FieldStartedAt)
	}
	if m.duration_seconds != nil {
		fields = append(fields, study.FieldDurationSeconds)
	}
	if m.overall_score != nil {
		fields = append(fields, study.FieldOverallScore)
	}
	if m.executive_summary != nil {
		fields = append(fields, study.FieldExecutiveSummary)
	}
	if m.cost_breakdown != nil {
		fields = append(fields, study.FieldCostBreakdown)
	}
	if m.error_message != nil {
		fields = append(fields, study.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, study.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, study.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case study.FieldURL:
		return m.URL()
	case study.FieldStartingPath:
		return m.StartingPath()
	case study.FieldStatus:
		return m.Status()
	case study.FieldBrowserMode:
		return m.BrowserMode()
	case study.FieldStartedAt:
		return m.StartedAt()
	case study.FieldDurationSeconds:
		return m.DurationSeconds()
	case study.FieldOverallScore:
		return m.OverallScore()
	case study.FieldExecutiveSummary:
		return m.ExecutiveSummary()
	case study.FieldCostBreakdown:
		return m.CostBreakdown()
	case study.FieldErrorMessage:
		return m.ErrorMessage()
	case study.FieldCreatedAt:
		return m.CreatedAt()
	case study.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case study.FieldURL:
		return m.OldURL(ctx)
	case study.FieldStartingPath:
		return m.OldStartingPath(ctx)
	case study.FieldStatus:
		return m.OldStatus(ctx)
	case study.FieldBrowserMode:
		return m.OldBrowserMode(ctx)
	case study.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case study.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case study.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case study.FieldExecutiveSummary:
		return m.OldExecutiveSummary(ctx)
	case study.FieldCostBreakdown:
		return m.OldCostBreakdown(ctx)
	case study.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case study.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case study.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Study field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case study.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case study.FieldStartingPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartingPath(v)
		return nil
	case study.FieldStatus:
		v, ok := value.(study.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case study.FieldBrowserMode:
		v, ok := value.(study.BrowserMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrowserMode(v)
		return nil
	case study.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case study.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case study.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case study.FieldExecutiveSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutiveSummary(v)
		return nil
	case study.FieldCostBreakdown:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostBreakdown(v)
		return nil
	case study.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case study.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case study.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Study field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, study.FieldDurationSeconds)
	}
	if m.addoverall_score != nil {
		fields = append(fields, study.FieldOverallScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case study.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	case study.FieldOverallScore:
		return m.AddedOverallScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case study.FieldDurationSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	case study.FieldOverallScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	}
	return fmt.Errorf("unknown Study numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(study.FieldBrowserMode) {
		fields = append(fields, study.FieldBrowserMode)
	}
	if m.FieldCleared(study.FieldStartedAt) {
		fields = append(fields, study.FieldStartedAt)
	}
	if m.FieldCleared(study.FieldDurationSeconds) {
		fields = append(fields, study.FieldDurationSeconds)
	}
	if m.FieldCleared(study.FieldOverallScore) {
		fields = append(fields, study.FieldOverallScore)
	}
	if m.FieldCleared(study.FieldExecutiveSummary) {
		fields = append(fields, study.FieldExecutiveSummary)
	}
	if m.FieldCleared(study.FieldCostBreakdown) {
		fields = append(fields, study.FieldCostBreakdown)
	}
	if m.FieldCleared(study.FieldErrorMessage) {
		fields = append(fields, study.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyMutation) ClearField(name string) error {
	switch name {
	case study.FieldBrowserMode:
		m.ClearBrowserMode()
		return nil
	case study.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case study.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case study.FieldOverallScore:
		m.ClearOverallScore()
		return nil
	case study.FieldExecutiveSummary:
		m.ClearExecutiveSummary()
		return nil
	case study.FieldCostBreakdown:
		m.ClearCostBreakdown()
		return nil
	case study.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Study nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyMutation) ResetField(name string) error {
	switch name {
	case study.FieldURL:
		m.ResetURL()
		return nil
	case study.FieldStartingPath:
		m.ResetStartingPath()
		return nil
	case study.FieldStatus:
		m.ResetStatus()
		return nil
	case study.FieldBrowserMode:
		m.ResetBrowserMode()
		return nil
	case study.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case study.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case study.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case study.FieldExecutiveSummary:
		m.ResetExecutiveSummary()
		return nil
	case study.FieldCostBreakdown:
		m.ResetCostBreakdown()
		return nil
	case study.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case study.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case study.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Study field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.tasks != nil {
		edges = append(edges, study.EdgeTasks)
	}
	if m.personas != nil {
		edges = append(edges, study.EdgePersonas)
	}
	if m.sessions != nil {
		edges = append(edges, study.EdgeSessions)
	}
	if m.issues != nil {
		edges = append(edges, study.EdgeIssues)
	}
	if m.insights != nil {
		edges = append(edges, study.EdgeInsights)
	}
	if m.schedules != nil {
		edges = append(edges, study.EdgeSchedules)
	}
	if m.jobs != nil {
		edges = append(edges, study.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case study.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case study.EdgePersonas:
		ids := make([]ent.Value, 0, len(m.personas))
		for id := range m.personas {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.issues))
		for id := range m.issues {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeInsights:
		ids := make([]ent.Value, 0, len(m.insights))
		for id := range m.insights {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.schedules))
		for id := range m.schedules {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedtasks != nil {
		edges = append(edges, study.EdgeTasks)
	}
	if m.removedpersonas != nil {
		edges = append(edges, study.EdgePersonas)
	}
	if m.removedsessions != nil {
		edges = append(edges, study.EdgeSessions)
	}
	if m.removedissues != nil {
		edges = append(edges, study.EdgeIssues)
	}
	if m.removedinsights != nil {
		edges = append(edges, study.EdgeInsights)
	}
	if m.removedschedules != nil {
		edges = append(edges, study.EdgeSchedules)
	}
	if m.removedjobs != nil {
		edges = append(edges, study.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case study.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case study.EdgePersonas:
		ids := make([]ent.Value, 0, len(m.removedpersonas))
		for id := range m.removedpersonas {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeIssues:
		ids := make([]ent.Value, 0, len(m.removedissues))
		for id := range m.removedissues {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeInsights:
		ids := make([]ent.Value, 0, len(m.removedinsights))
		for id := range m.removedinsights {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.removedschedules))
		for id := range m.removedschedules {
			ids = append(ids, id)
		}
		return ids
	case study.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedtasks {
		edges = append(edges, study.EdgeTasks)
	}
	if m.clearedpersonas {
		edges = append(edges, study.EdgePersonas)
	}
	if m.clearedsessions {
		edges = append(edges, study.EdgeSessions)
	}
	if m.clearedissues {
		edges = append(edges, study.EdgeIssues)
	}
	if m.clearedinsights {
		edges = append(edges, study.EdgeInsights)
	}
	if m.clearedschedules {
		edges = append(edges, study.EdgeSchedules)
	}
	if m.clearedjobs {
		edges = append(edges, study.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyMutation) EdgeCleared(name string) bool {
	switch name {
	case study.EdgeTasks:
		return m.clearedtasks
	case study.EdgePersonas:
		return m.clearedpersonas
	case study.EdgeSessions:
		return m.clearedsessions
	case study.EdgeIssues:
		return m.clearedissues
	case study.EdgeInsights:
		return m.clearedinsights
	case study.EdgeSchedules:
		return m.clearedschedules
	case study.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Study unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyMutation) ResetEdge(name string) error {
	switch name {
	case study.EdgeTasks:
		m.ResetTasks()
		return nil
	case study.EdgePersonas:
		m.ResetPersonas()
		return nil
	case study.EdgeSessions:
		m.ResetSessions()
		return nil
	case study.EdgeIssues:
		m.ResetIssues()
		return nil
	case study.EdgeInsights:
		m.ResetInsights()
		return nil
	case study.EdgeSchedules:
		m.ResetSchedules()
		return nil
	case study.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Study edge %s", name)
}

// StudyJobMutation represents an operation that mutates the StudyJob nodes in the graph.
type StudyJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	browser_mode       *studyjob.BrowserMode
	status             *studyjob.Status
	attempts           *int
	addattempts        *int
	max_attempts       *int
	addmax_attempts    *int
	timeout_seconds    *int
	addtimeout_seconds *int
	pod_id             *string
	claimed_at         *time.Time
	last_heartbeat_at  *time.Time
	error_message      *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	study              *string
	clearedstudy       bool
	done               bool
	oldValue           func(context.Context) (*StudyJob, error)
	predicates         []predicate.StudyJob
}

var _ ent.Mutation = (*StudyJobMutation)(nil)

// studyjobOption allows management of the mutation configuration using functional options.
type studyjobOption func(*StudyJobMutation)

// newStudyJobMutation creates new mutation for the StudyJob entity.
func newStudyJobMutation(c config, op Op, opts ...studyjobOption) *StudyJobMutation {
	m := &StudyJobMutation{
		config:        c,
		op:            op,
		typ:           TypeStudyJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudyJobID sets the ID field of the mutation.
func withStudyJobID(id string) studyjobOption {
	return func(m *StudyJobMutation) {
		var (
			err   error
			once  sync.Once
			value *StudyJob
		)
		m.oldValue = func(ctx context.Context) (*StudyJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudyJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudyJob sets the old StudyJob of the mutation.
func withStudyJob(node *StudyJob) studyjobOption {
	return func(m *StudyJobMutation) {
		m.oldValue = func(context.Context) (*StudyJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudyJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudyJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudyJob entities.
func (m *StudyJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudyJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudyJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudyJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *StudyJobMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *StudyJobMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *StudyJobMutation) ResetStudyID() {
	m.study = nil
}

// SetBrowserMode sets the "browser_mode" field.
func (m *StudyJobMutation) SetBrowserMode(sm studyjob.BrowserMode) {
	m.browser_mode = &sm
}

// BrowserMode returns the value of the "browser_mode" field in the mutation.
func (m *StudyJobMutation) BrowserMode() (r studyjob.BrowserMode, exists bool) {
	v := m.browser_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldBrowserMode returns the old "browser_mode" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldBrowserMode(ctx context.Context) (v *studyjob.BrowserMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrowserMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrowserMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrowserMode: %w", err)
	}
	return oldValue.BrowserMode, nil
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (m *StudyJobMutation) ClearBrowserMode() {
	m.browser_mode = nil
	m.clearedFields[studyjob.FieldBrowserMode] = struct{}{}
}

// BrowserModeCleared returns if the "browser_mode" field was cleared in this mutation.
func (m *StudyJobMutation) BrowserModeCleared() bool {
	_, ok := m.clearedFields[studyjob.FieldBrowserMode]
	return ok
}

// ResetBrowserMode resets all changes to the "browser_mode" field.
func (m *StudyJobMutation) ResetBrowserMode() {
	m.browser_mode = nil
	delete(m.clearedFields, studyjob.FieldBrowserMode)
}

// SetStatus sets the "status" field.
func (m *StudyJobMutation) SetStatus(s studyjob.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudyJobMutation) Status() (r studyjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldStatus(ctx context.Context) (v studyjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StudyJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempts sets the "attempts" field.
func (m *StudyJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *StudyJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *StudyJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *StudyJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *StudyJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *StudyJobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *StudyJobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *StudyJobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *StudyJobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *StudyJobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *StudyJobMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *StudyJobMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *StudyJobMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *StudyJobMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *StudyJobMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetPodID sets the "pod_id" field.
func (m *StudyJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *StudyJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *StudyJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[studyjob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *StudyJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[studyjob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *StudyJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, studyjob.FieldPodID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *StudyJobMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *StudyJobMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *StudyJobMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[studyjob.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *StudyJobMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[studyjob.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *StudyJobMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, studyjob.FieldClaimedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *StudyJobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *StudyJobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *StudyJobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[studyjob.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *StudyJobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[studyjob.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *StudyJobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, studyjob.FieldLastHeartbeatAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *StudyJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *StudyJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *StudyJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[studyjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *StudyJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[studyjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *StudyJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, studyjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *StudyJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudyJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudyJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudyJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudyJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StudyJob entity.
// If the StudyJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudyJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudyJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *StudyJobMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[studyjob.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *StudyJobMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *StudyJobMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *StudyJobMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// Where appends a list predicates to the StudyJobMutation builder.
func (m *StudyJobMutation) Where(ps ...predicate.StudyJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudyJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudyJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudyJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudyJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudyJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudyJob).
func (m *StudyJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudyJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.study != nil {
		fields = append(fields, studyjob.FieldStudyID)
	}
	if m.browser_mode != nil {
		fields = append(fields, studyjob.FieldBrowserMode)
	}
	if m.status != nil {
		fields = append(fields, studyjob.FieldStatus)
	}
	if m.attempts != nil {
		fields = append(fields, studyjob.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, studyjob.FieldMaxAttempts)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, studyjob.FieldTimeoutSeconds)
	}
	if m.pod_id != nil {
		fields = append(fields, studyjob.FieldPodID)
	}
	if m.claimed_at != nil {
		fields = append(fields, studyjob.FieldClaimedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, studyjob.FieldLastHeartbeatAt)
	}
	if m.error_message != nil {
		fields = append(fields, studyjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, studyjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, studyjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudyJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studyjob.FieldStudyID:
		return m.StudyID()
	case studyjob.FieldBrowserMode:
		return m.BrowserMode()
	case studyjob.FieldStatus:
		return m.Status()
	case studyjob.FieldAttempts:
		return m.Attempts()
	case studyjob.FieldMaxAttempts:
		return m.MaxAttempts()
	case studyjob.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case studyjob.FieldPodID:
		return m.PodID()
	case studyjob.FieldClaimedAt:
		return m.ClaimedAt()
	case studyjob.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case studyjob.FieldErrorMessage:
		return m.ErrorMessage()
	case studyjob.FieldCreatedAt:
		return m.CreatedAt()
	case studyjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudyJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studyjob.FieldStudyID:
		return m.OldStudyID(ctx)
	case studyjob.FieldBrowserMode:
		return m.OldBrowserMode(ctx)
	case studyjob.FieldStatus:
		return m.OldStatus(ctx)
	case studyjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case studyjob.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case studyjob.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case studyjob.FieldPodID:
		return m.OldPodID(ctx)
	case studyjob.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	case studyjob.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case studyjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case studyjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case studyjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudyJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studyjob.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case studyjob.FieldBrowserMode:
		v, ok := value.(studyjob.BrowserMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrowserMode(v)
		return nil
	case studyjob.FieldStatus:
		v, ok := value.(studyjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case studyjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case studyjob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case studyjob.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case studyjob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case studyjob.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	case studyjob.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case studyjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case studyjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case studyjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudyJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudyJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, studyjob.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, studyjob.FieldMaxAttempts)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, studyjob.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudyJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studyjob.FieldAttempts:
		return m.AddedAttempts()
	case studyjob.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case studyjob.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudyJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studyjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case studyjob.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case studyjob.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown StudyJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudyJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studyjob.FieldBrowserMode) {
		fields = append(fields, studyjob.FieldBrowserMode)
	}
	if m.FieldCleared(studyjob.FieldPodID) {
		fields = append(fields, studyjob.FieldPodID)
	}
	if m.FieldCleared(studyjob.FieldClaimedAt) {
		fields = append(fields, studyjob.FieldClaimedAt)
	}
	if m.FieldCleared(studyjob.FieldLastHeartbeatAt) {
		fields = append(fields, studyjob.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(studyjob.FieldErrorMessage) {
		fields = append(fields, studyjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudyJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudyJobMutation) ClearField(name string) error {
	switch name {
	case studyjob.FieldBrowserMode:
		m.ClearBrowserMode()
		return nil
	case studyjob.FieldPodID:
		m.ClearPodID()
		return nil
	case studyjob.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	case studyjob.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case studyjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown StudyJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudyJobMutation) ResetField(name string) error {
	switch name {
	case studyjob.FieldStudyID:
		m.ResetStudyID()
		return nil
	case studyjob.FieldBrowserMode:
		m.ResetBrowserMode()
		return nil
	case studyjob.FieldStatus:
		m.ResetStatus()
		return nil
	case studyjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case studyjob.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case studyjob.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case studyjob.FieldPodID:
		m.ResetPodID()
		return nil
	case studyjob.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	case studyjob.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case studyjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case studyjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case studyjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudyJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudyJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.study != nil {
		edges = append(edges, studyjob.EdgeStudy)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudyJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studyjob.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudyJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudyJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudyJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedstudy {
		edges = append(edges, studyjob.EdgeStudy)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudyJobMutation) EdgeCleared(name string) bool {
	switch name {
	case studyjob.EdgeStudy:
		return m.clearedstudy
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudyJobMutation) ClearEdge(name string) error {
	switch name {
	case studyjob.EdgeStudy:
		m.ClearStudy()
		return nil
	}
	return fmt.Errorf("unknown StudyJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudyJobMutation) ResetEdge(name string) error {
	switch name {
	case studyjob.EdgeStudy:
		m.ResetStudy()
		return nil
	}
	return fmt.Errorf("unknown StudyJob edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op              Op
	typ             string
	id              *string
	description     *string
	order_index     *int
	addorder_index  *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	study           *string
	clearedstudy    bool
	sessions        map[string]struct{}
	removedsessions map[string]struct{}
	clearedsessions bool
	done            bool
	oldValue        func(context.Context) (*Task, error)
	predicates      []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudyID sets the "study_id" field.
func (m *TaskMutation) SetStudyID(s string) {
	m.study = &s
}

// StudyID returns the value of the "study_id" field in the mutation.
func (m *TaskMutation) StudyID() (r string, exists bool) {
	v := m.study
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyID returns the old "study_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStudyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyID: %w", err)
	}
	return oldValue.StudyID, nil
}

// ResetStudyID resets all changes to the "study_id" field.
func (m *TaskMutation) ResetStudyID() {
	m.study = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetOrderIndex sets the "order_index" field.
func (m *TaskMutation) SetOrderIndex(i int) {
	m.order_index = &i
	m.addorder_index = nil
}

// OrderIndex returns the value of the "order_index" field in the mutation.
func (m *TaskMutation) OrderIndex() (r int, exists bool) {
	v := m.order_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderIndex returns the old "order_index" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldOrderIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderIndex: %w", err)
	}
	return oldValue.OrderIndex, nil
}

// AddOrderIndex adds i to the "order_index" field.
func (m *TaskMutation) AddOrderIndex(i int) {
	if m.addorder_index != nil {
		*m.addorder_index += i
	} else {
		m.addorder_index = &i
	}
}

// AddedOrderIndex returns the value that was added to the "order_index" field in this mutation.
func (m *TaskMutation) AddedOrderIndex() (r int, exists bool) {
	v := m.addorder_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrderIndex resets all changes to the "order_index" field.
func (m *TaskMutation) ResetOrderIndex() {
	m.order_index = nil
	m.addorder_index = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearStudy clears the "study" edge to the Study entity.
func (m *TaskMutation) ClearStudy() {
	m.clearedstudy = true
	m.clearedFields[task.FieldStudyID] = struct{}{}
}

// StudyCleared reports if the "study" edge to the Study entity was cleared.
func (m *TaskMutation) StudyCleared() bool {
	return m.clearedstudy
}

// StudyIDs returns the "study" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudyID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) StudyIDs() (ids []string) {
	if id := m.study; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudy resets all changes to the "study" edge.
func (m *TaskMutation) ResetStudy() {
	m.study = nil
	m.clearedstudy = false
}

// AddSessionIDs adds the "sessions" edge to the Session entity by ids.
func (m *TaskMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the Session entity.
func (m *TaskMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the Session entity was cleared.
func (m *TaskMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the Session entity by IDs.
func (m *TaskMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the Session entity.
func (m *TaskMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *TaskMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *TaskMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.study != nil {
		fields = append(fields, task.FieldStudyID)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m.order_index != nil {
		fields = append(fields, task.FieldOrderIndex)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldStudyID:
		return m.StudyID()
	case task.FieldDescription:
		return m.Description()
	case task.FieldOrderIndex:
		return m.OrderIndex()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldStudyID:
		return m.OldStudyID(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldOrderIndex:
		return m.OldOrderIndex(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldStudyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyID(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderIndex(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addorder_index != nil {
		fields = append(fields, task.FieldOrderIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldOrderIndex:
		return m.AddedOrderIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldOrderIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrderIndex(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldStudyID:
		m.ResetStudyID()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldOrderIndex:
		m.ResetOrderIndex()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.study != nil {
		edges = append(edges, task.EdgeStudy)
	}
	if m.sessions != nil {
		edges = append(edges, task.EdgeSessions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeStudy:
		if id := m.study; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsessions != nil {
		edges = append(edges, task.EdgeSessions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstudy {
		edges = append(edges, task.EdgeStudy)
	}
	if m.clearedsessions {
		edges = append(edges, task.EdgeSessions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeStudy:
		return m.clearedstudy
	case task.EdgeSessions:
		return m.clearedsessions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeStudy:
		m.ClearStudy()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeStudy:
		m.ResetStudy()
		return nil
	case task.EdgeSessions:
		m.ResetSessions()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
