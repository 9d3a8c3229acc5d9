// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/task"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *SessionCreate) SetStudyID(v string) *SessionCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetPersonaID sets the "persona_id" field.
func (_c *SessionCreate) SetPersonaID(v string) *SessionCreate {
	_c.mutation.SetPersonaID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *SessionCreate) SetTaskID(v string) *SessionCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalSteps sets the "total_steps" field.
func (_c *SessionCreate) SetTotalSteps(v int) *SessionCreate {
	_c.mutation.SetTotalSteps(v)
	return _c
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTotalSteps(v *int) *SessionCreate {
	if v != nil {
		_c.SetTotalSteps(*v)
	}
	return _c
}

// SetTaskCompleted sets the "task_completed" field.
func (_c *SessionCreate) SetTaskCompleted(v bool) *SessionCreate {
	_c.mutation.SetTaskCompleted(v)
	return _c
}

// SetNillableTaskCompleted sets the "task_completed" field if the given value is not nil.
func (_c *SessionCreate) SetNillableTaskCompleted(v *bool) *SessionCreate {
	if v != nil {
		_c.SetTaskCompleted(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SessionCreate) SetSummary(v string) *SessionCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *SessionCreate) SetNillableSummary(v *string) *SessionCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetEmotionalArc sets the "emotional_arc" field.
func (_c *SessionCreate) SetEmotionalArc(v []string) *SessionCreate {
	_c.mutation.SetEmotionalArc(v)
	return _c
}

// SetUxScore sets the "ux_score" field.
func (_c *SessionCreate) SetUxScore(v int) *SessionCreate {
	_c.mutation.SetUxScore(v)
	return _c
}

// SetNillableUxScore sets the "ux_score" field if the given value is not nil.
func (_c *SessionCreate) SetNillableUxScore(v *int) *SessionCreate {
	if v != nil {
		_c.SetUxScore(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SessionCreate) SetErrorMessage(v string) *SessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SessionCreate) SetNillableErrorMessage(v *string) *SessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SessionCreate) SetStartedAt(v time.Time) *SessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStartedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SessionCreate) SetCompletedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCompletedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v string) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *SessionCreate) SetStudy(v *Study) *SessionCreate {
	return _c.SetStudyID(v.ID)
}

// SetPersona sets the "persona" edge to the Persona entity.
func (_c *SessionCreate) SetPersona(v *Persona) *SessionCreate {
	return _c.SetPersonaID(v.ID)
}

// SetTask sets the "task" edge to the Task entity.
func (_c *SessionCreate) SetTask(v *Task) *SessionCreate {
	return _c.SetTaskID(v.ID)
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_c *SessionCreate) AddStepIDs(ids ...string) *SessionCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the Step entity.
func (_c *SessionCreate) AddSteps(v ...*Step) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_c *SessionCreate) AddIssueIDs(ids ...string) *SessionCreate {
	_c.mutation.AddIssueIDs(ids...)
	return _c
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_c *SessionCreate) AddIssues(v ...*Issue) *SessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIssueIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalSteps(); !ok {
		v := session.DefaultTotalSteps
		_c.mutation.SetTotalSteps(v)
	}
	if _, ok := _c.mutation.TaskCompleted(); !ok {
		v := session.DefaultTaskCompleted
		_c.mutation.SetTaskCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Session.study_id"`)}
	}
	if _, ok := _c.mutation.PersonaID(); !ok {
		return &ValidationError{Name: "persona_id", err: errors.New(`ent: missing required field "Session.persona_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Session.task_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalSteps(); !ok {
		return &ValidationError{Name: "total_steps", err: errors.New(`ent: missing required field "Session.total_steps"`)}
	}
	if _, ok := _c.mutation.TaskCompleted(); !ok {
		return &ValidationError{Name: "task_completed", err: errors.New(`ent: missing required field "Session.task_completed"`)}
	}
	if v, ok := _c.mutation.UxScore(); ok {
		if err := session.UxScoreValidator(v); err != nil {
			return &ValidationError{Name: "ux_score", err: fmt.Errorf(`ent: validator failed for field "Session.ux_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Session.created_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Session.study"`)}
	}
	if len(_c.mutation.PersonaIDs()) == 0 {
		return &ValidationError{Name: "persona", err: errors.New(`ent: missing required edge "Session.persona"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Session.task"`)}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Session.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalSteps(); ok {
		_spec.SetField(session.FieldTotalSteps, field.TypeInt, value)
		_node.TotalSteps = value
	}
	if value, ok := _c.mutation.TaskCompleted(); ok {
		_spec.SetField(session.FieldTaskCompleted, field.TypeBool, value)
		_node.TaskCompleted = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.EmotionalArc(); ok {
		_spec.SetField(session.FieldEmotionalArc, field.TypeJSON, value)
		_node.EmotionalArc = value
	}
	if value, ok := _c.mutation.UxScore(); ok {
		_spec.SetField(session.FieldUxScore, field.TypeInt, value)
		_node.UxScore = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.StudyTable,
			Columns: []string{session.StudyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(study.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StudyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PersonaIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.PersonaTable,
			Columns: []string{session.PersonaColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PersonaID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   session.TaskTable,
			Columns: []string{session.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.StepsTable,
			Columns: []string{session.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IssuesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   session.IssuesTable,
			Columns: []string{session.IssuesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreate) OnConflict(opts ...sql.ConflictOption) *SessionUpsertOne {
	_c.conflict = opts
	return &SessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreate) OnConflictColumns(columns ...string) *SessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertOne{
		create: _c,
	}
}

type (
	// SessionUpsertOne is the builder for "upsert"-ing
	//  one Session node.
	SessionUpsertOne struct {
		create *SessionCreate
	}

	// SessionUpsert is the "OnConflict" setter.
	SessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *SessionUpsert) SetStatus(v session.Status) *SessionUpsert {
	u.Set(session.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStatus() *SessionUpsert {
	u.SetExcluded(session.FieldStatus)
	return u
}

// SetTotalSteps sets the "total_steps" field.
func (u *SessionUpsert) SetTotalSteps(v int) *SessionUpsert {
	u.Set(session.FieldTotalSteps, v)
	return u
}

// UpdateTotalSteps sets the "total_steps" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTotalSteps() *SessionUpsert {
	u.SetExcluded(session.FieldTotalSteps)
	return u
}

// AddTotalSteps adds v to the "total_steps" field.
func (u *SessionUpsert) AddTotalSteps(v int) *SessionUpsert {
	u.Add(session.FieldTotalSteps, v)
	return u
}

// SetTaskCompleted sets the "task_completed" field.
func (u *SessionUpsert) SetTaskCompleted(v bool) *SessionUpsert {
	u.Set(session.FieldTaskCompleted, v)
	return u
}

// UpdateTaskCompleted sets the "task_completed" field to the value that was provided on create.
func (u *SessionUpsert) UpdateTaskCompleted() *SessionUpsert {
	u.SetExcluded(session.FieldTaskCompleted)
	return u
}

// SetSummary sets the "summary" field.
func (u *SessionUpsert) SetSummary(v string) *SessionUpsert {
	u.Set(session.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SessionUpsert) UpdateSummary() *SessionUpsert {
	u.SetExcluded(session.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *SessionUpsert) ClearSummary() *SessionUpsert {
	u.SetNull(session.FieldSummary)
	return u
}

// SetEmotionalArc sets the "emotional_arc" field.
func (u *SessionUpsert) SetEmotionalArc(v []string) *SessionUpsert {
	u.Set(session.FieldEmotionalArc, v)
	return u
}

// UpdateEmotionalArc sets the "emotional_arc" field to the value that was provided on create.
func (u *SessionUpsert) UpdateEmotionalArc() *SessionUpsert {
	u.SetExcluded(session.FieldEmotionalArc)
	return u
}

// ClearEmotionalArc clears the value of the "emotional_arc" field.
func (u *SessionUpsert) ClearEmotionalArc() *SessionUpsert {
	u.SetNull(session.FieldEmotionalArc)
	return u
}

// SetUxScore sets the "ux_score" field.
func (u *SessionUpsert) SetUxScore(v int) *SessionUpsert {
	u.Set(session.FieldUxScore, v)
	return u
}

// UpdateUxScore sets the "ux_score" field to the value that was provided on create.
func (u *SessionUpsert) UpdateUxScore() *SessionUpsert {
	u.SetExcluded(session.FieldUxScore)
	return u
}

// AddUxScore adds v to the "ux_score" field.
func (u *SessionUpsert) AddUxScore(v int) *SessionUpsert {
	u.Add(session.FieldUxScore, v)
	return u
}

// ClearUxScore clears the value of the "ux_score" field.
func (u *SessionUpsert) ClearUxScore() *SessionUpsert {
	u.SetNull(session.FieldUxScore)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsert) SetErrorMessage(v string) *SessionUpsert {
	u.Set(session.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsert) UpdateErrorMessage() *SessionUpsert {
	u.SetExcluded(session.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsert) ClearErrorMessage() *SessionUpsert {
	u.SetNull(session.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *SessionUpsert) SetStartedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateStartedAt() *SessionUpsert {
	u.SetExcluded(session.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SessionUpsert) ClearStartedAt() *SessionUpsert {
	u.SetNull(session.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsert) SetCompletedAt(v time.Time) *SessionUpsert {
	u.Set(session.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsert) UpdateCompletedAt() *SessionUpsert {
	u.SetExcluded(session.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsert) ClearCompletedAt() *SessionUpsert {
	u.SetNull(session.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertOne) UpdateNewValues() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(session.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(session.FieldStudyID)
		}
		if _, exists := u.create.mutation.PersonaID(); exists {
			s.SetIgnore(session.FieldPersonaID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(session.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(session.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SessionUpsertOne) Ignore() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertOne) DoNothing() *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreate.OnConflict
// documentation for more info.
func (u *SessionUpsertOne) Update(set func(*SessionUpsert)) *SessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsertOne) SetStatus(v session.Status) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStatus() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetTotalSteps sets the "total_steps" field.
func (u *SessionUpsertOne) SetTotalSteps(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTotalSteps(v)
	})
}

// AddTotalSteps adds v to the "total_steps" field.
func (u *SessionUpsertOne) AddTotalSteps(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddTotalSteps(v)
	})
}

// UpdateTotalSteps sets the "total_steps" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTotalSteps() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTotalSteps()
	})
}

// SetTaskCompleted sets the "task_completed" field.
func (u *SessionUpsertOne) SetTaskCompleted(v bool) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetTaskCompleted(v)
	})
}

// UpdateTaskCompleted sets the "task_completed" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateTaskCompleted() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTaskCompleted()
	})
}

// SetSummary sets the "summary" field.
func (u *SessionUpsertOne) SetSummary(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateSummary() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *SessionUpsertOne) ClearSummary() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSummary()
	})
}

// SetEmotionalArc sets the "emotional_arc" field.
func (u *SessionUpsertOne) SetEmotionalArc(v []string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetEmotionalArc(v)
	})
}

// UpdateEmotionalArc sets the "emotional_arc" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateEmotionalArc() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEmotionalArc()
	})
}

// ClearEmotionalArc clears the value of the "emotional_arc" field.
func (u *SessionUpsertOne) ClearEmotionalArc() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearEmotionalArc()
	})
}

// SetUxScore sets the "ux_score" field.
func (u *SessionUpsertOne) SetUxScore(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetUxScore(v)
	})
}

// AddUxScore adds v to the "ux_score" field.
func (u *SessionUpsertOne) AddUxScore(v int) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.AddUxScore(v)
	})
}

// UpdateUxScore sets the "ux_score" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateUxScore() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUxScore()
	})
}

// ClearUxScore clears the value of the "ux_score" field.
func (u *SessionUpsertOne) ClearUxScore() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearUxScore()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsertOne) SetErrorMessage(v string) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateErrorMessage() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsertOne) ClearErrorMessage() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SessionUpsertOne) SetStartedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateStartedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SessionUpsertOne) ClearStartedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsertOne) SetCompletedAt(v time.Time) *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsertOne) UpdateCompletedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsertOne) ClearCompletedAt() *SessionUpsertOne {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SessionUpsertOne.ID is not supported by MySQL driver. Use SessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
	conflict []sql.ConflictOption
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Session.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SessionUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *SessionUpsertBulk {
	_c.conflict = opts
	return &SessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SessionCreateBulk) OnConflictColumns(columns ...string) *SessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SessionUpsertBulk{
		create: _c,
	}
}

// SessionUpsertBulk is the builder for "upsert"-ing
// a bulk of Session nodes.
type SessionUpsertBulk struct {
	create *SessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(session.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SessionUpsertBulk) UpdateNewValues() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(session.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(session.FieldStudyID)
			}
			if _, exists := b.mutation.PersonaID(); exists {
				s.SetIgnore(session.FieldPersonaID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(session.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(session.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Session.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SessionUpsertBulk) Ignore() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SessionUpsertBulk) DoNothing() *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SessionCreateBulk.OnConflict
// documentation for more info.
func (u *SessionUpsertBulk) Update(set func(*SessionUpsert)) *SessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *SessionUpsertBulk) SetStatus(v session.Status) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStatus() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStatus()
	})
}

// SetTotalSteps sets the "total_steps" field.
func (u *SessionUpsertBulk) SetTotalSteps(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTotalSteps(v)
	})
}

// AddTotalSteps adds v to the "total_steps" field.
func (u *SessionUpsertBulk) AddTotalSteps(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddTotalSteps(v)
	})
}

// UpdateTotalSteps sets the "total_steps" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTotalSteps() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTotalSteps()
	})
}

// SetTaskCompleted sets the "task_completed" field.
func (u *SessionUpsertBulk) SetTaskCompleted(v bool) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetTaskCompleted(v)
	})
}

// UpdateTaskCompleted sets the "task_completed" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateTaskCompleted() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateTaskCompleted()
	})
}

// SetSummary sets the "summary" field.
func (u *SessionUpsertBulk) SetSummary(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateSummary() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *SessionUpsertBulk) ClearSummary() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearSummary()
	})
}

// SetEmotionalArc sets the "emotional_arc" field.
func (u *SessionUpsertBulk) SetEmotionalArc(v []string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetEmotionalArc(v)
	})
}

// UpdateEmotionalArc sets the "emotional_arc" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateEmotionalArc() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateEmotionalArc()
	})
}

// ClearEmotionalArc clears the value of the "emotional_arc" field.
func (u *SessionUpsertBulk) ClearEmotionalArc() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearEmotionalArc()
	})
}

// SetUxScore sets the "ux_score" field.
func (u *SessionUpsertBulk) SetUxScore(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetUxScore(v)
	})
}

// AddUxScore adds v to the "ux_score" field.
func (u *SessionUpsertBulk) AddUxScore(v int) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.AddUxScore(v)
	})
}

// UpdateUxScore sets the "ux_score" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateUxScore() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateUxScore()
	})
}

// ClearUxScore clears the value of the "ux_score" field.
func (u *SessionUpsertBulk) ClearUxScore() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearUxScore()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SessionUpsertBulk) SetErrorMessage(v string) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateErrorMessage() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SessionUpsertBulk) ClearErrorMessage() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *SessionUpsertBulk) SetStartedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateStartedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *SessionUpsertBulk) ClearStartedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *SessionUpsertBulk) SetCompletedAt(v time.Time) *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *SessionUpsertBulk) UpdateCompletedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *SessionUpsertBulk) ClearCompletedAt() *SessionUpsertBulk {
	return u.Update(func(s *SessionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *SessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
