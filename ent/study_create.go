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
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/schedule"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/ent/task"
)

// StudyCreate is the builder for creating a Study entity.
type StudyCreate struct {
	config
	mutation *StudyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetURL sets the "url" field.
func (_c *StudyCreate) SetURL(v string) *StudyCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetStartingPath sets the "starting_path" field.
func (_c *StudyCreate) SetStartingPath(v string) *StudyCreate {
	_c.mutation.SetStartingPath(v)
	return _c
}

// SetNillableStartingPath sets the "starting_path" field if the given value is not nil.
func (_c *StudyCreate) SetNillableStartingPath(v *string) *StudyCreate {
	if v != nil {
		_c.SetStartingPath(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudyCreate) SetStatus(v study.Status) *StudyCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudyCreate) SetNillableStatus(v *study.Status) *StudyCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetBrowserMode sets the "browser_mode" field.
func (_c *StudyCreate) SetBrowserMode(v study.BrowserMode) *StudyCreate {
	_c.mutation.SetBrowserMode(v)
	return _c
}

// SetNillableBrowserMode sets the "browser_mode" field if the given value is not nil.
func (_c *StudyCreate) SetNillableBrowserMode(v *study.BrowserMode) *StudyCreate {
	if v != nil {
		_c.SetBrowserMode(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StudyCreate) SetStartedAt(v time.Time) *StudyCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StudyCreate) SetNillableStartedAt(v *time.Time) *StudyCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_c *StudyCreate) SetDurationSeconds(v int) *StudyCreate {
	_c.mutation.SetDurationSeconds(v)
	return _c
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_c *StudyCreate) SetNillableDurationSeconds(v *int) *StudyCreate {
	if v != nil {
		_c.SetDurationSeconds(*v)
	}
	return _c
}

// SetOverallScore sets the "overall_score" field.
func (_c *StudyCreate) SetOverallScore(v int) *StudyCreate {
	_c.mutation.SetOverallScore(v)
	return _c
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_c *StudyCreate) SetNillableOverallScore(v *int) *StudyCreate {
	if v != nil {
		_c.SetOverallScore(*v)
	}
	return _c
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_c *StudyCreate) SetExecutiveSummary(v string) *StudyCreate {
	_c.mutation.SetExecutiveSummary(v)
	return _c
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_c *StudyCreate) SetNillableExecutiveSummary(v *string) *StudyCreate {
	if v != nil {
		_c.SetExecutiveSummary(*v)
	}
	return _c
}

// SetCostBreakdown sets the "cost_breakdown" field.
func (_c *StudyCreate) SetCostBreakdown(v map[string]interface{}) *StudyCreate {
	_c.mutation.SetCostBreakdown(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StudyCreate) SetErrorMessage(v string) *StudyCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StudyCreate) SetNillableErrorMessage(v *string) *StudyCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyCreate) SetCreatedAt(v time.Time) *StudyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyCreate) SetNillableCreatedAt(v *time.Time) *StudyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudyCreate) SetUpdatedAt(v time.Time) *StudyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudyCreate) SetNillableUpdatedAt(v *time.Time) *StudyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudyCreate) SetID(v string) *StudyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *StudyCreate) AddTaskIDs(ids ...string) *StudyCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *StudyCreate) AddTasks(v ...*Task) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddPersonaIDs adds the "personas" edge to the Persona entity by IDs.
func (_c *StudyCreate) AddPersonaIDs(ids ...string) *StudyCreate {
	_c.mutation.AddPersonaIDs(ids...)
	return _c
}

// AddPersonas adds the "personas" edges to the Persona entity.
func (_c *StudyCreate) AddPersonas(v ...*Persona) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPersonaIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_c *StudyCreate) AddSessionIDs(ids ...string) *StudyCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_c *StudyCreate) AddSessions(v ...*Session) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_c *StudyCreate) AddIssueIDs(ids ...string) *StudyCreate {
	_c.mutation.AddIssueIDs(ids...)
	return _c
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_c *StudyCreate) AddIssues(v ...*Issue) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIssueIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_c *StudyCreate) AddInsightIDs(ids ...string) *StudyCreate {
	_c.mutation.AddInsightIDs(ids...)
	return _c
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_c *StudyCreate) AddInsights(v ...*Insight) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInsightIDs(ids...)
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_c *StudyCreate) AddScheduleIDs(ids ...string) *StudyCreate {
	_c.mutation.AddScheduleIDs(ids...)
	return _c
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_c *StudyCreate) AddSchedules(v ...*Schedule) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScheduleIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the StudyJob entity by IDs.
func (_c *StudyCreate) AddJobIDs(ids ...string) *StudyCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the StudyJob entity.
func (_c *StudyCreate) AddJobs(v ...*StudyJob) *StudyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the StudyMutation object of the builder.
func (_c *StudyCreate) Mutation() *StudyMutation {
	return _c.mutation
}

// Save creates the Study in the database.
func (_c *StudyCreate) Save(ctx context.Context) (*Study, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyCreate) SaveX(ctx context.Context) *Study {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyCreate) defaults() {
	if _, ok := _c.mutation.StartingPath(); !ok {
		v := study.DefaultStartingPath
		_c.mutation.SetStartingPath(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := study.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := study.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := study.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "Study.url"`)}
	}
	if _, ok := _c.mutation.StartingPath(); !ok {
		return &ValidationError{Name: "starting_path", err: errors.New(`ent: missing required field "Study.starting_path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Study.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := study.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Study.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BrowserMode(); ok {
		if err := study.BrowserModeValidator(v); err != nil {
			return &ValidationError{Name: "browser_mode", err: fmt.Errorf(`ent: validator failed for field "Study.browser_mode": %w`, err)}
		}
	}
	if v, ok := _c.mutation.OverallScore(); ok {
		if err := study.OverallScoreValidator(v); err != nil {
			return &ValidationError{Name: "overall_score", err: fmt.Errorf(`ent: validator failed for field "Study.overall_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Study.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Study.updated_at"`)}
	}
	return nil
}

func (_c *StudyCreate) sqlSave(ctx context.Context) (*Study, error) {
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
			return nil, fmt.Errorf("unexpected Study.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudyCreate) createSpec() (*Study, *sqlgraph.CreateSpec) {
	var (
		_node = &Study{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(study.Table, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(study.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.StartingPath(); ok {
		_spec.SetField(study.FieldStartingPath, field.TypeString, value)
		_node.StartingPath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.BrowserMode(); ok {
		_spec.SetField(study.FieldBrowserMode, field.TypeEnum, value)
		_node.BrowserMode = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(study.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.DurationSeconds(); ok {
		_spec.SetField(study.FieldDurationSeconds, field.TypeInt, value)
		_node.DurationSeconds = &value
	}
	if value, ok := _c.mutation.OverallScore(); ok {
		_spec.SetField(study.FieldOverallScore, field.TypeInt, value)
		_node.OverallScore = &value
	}
	if value, ok := _c.mutation.ExecutiveSummary(); ok {
		_spec.SetField(study.FieldExecutiveSummary, field.TypeString, value)
		_node.ExecutiveSummary = &value
	}
	if value, ok := _c.mutation.CostBreakdown(); ok {
		_spec.SetField(study.FieldCostBreakdown, field.TypeJSON, value)
		_node.CostBreakdown = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(study.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(study.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.TasksTable,
			Columns: []string{study.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PersonasIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.PersonasTable,
			Columns: []string{study.PersonasColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.SessionsTable,
			Columns: []string{study.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
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
			Table:   study.IssuesTable,
			Columns: []string{study.IssuesColumn},
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
	if nodes := _c.mutation.InsightsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.InsightsTable,
			Columns: []string{study.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SchedulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.SchedulesTable,
			Columns: []string{study.SchedulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   study.JobsTable,
			Columns: []string{study.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(studyjob.FieldID, field.TypeString),
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
//	client.Study.Create().
//		SetURL(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyUpsert) {
//			SetURL(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyCreate) OnConflict(opts ...sql.ConflictOption) *StudyUpsertOne {
	_c.conflict = opts
	return &StudyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyCreate) OnConflictColumns(columns ...string) *StudyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyUpsertOne{
		create: _c,
	}
}

type (
	// StudyUpsertOne is the builder for "upsert"-ing
	//  one Study node.
	StudyUpsertOne struct {
		create *StudyCreate
	}

	// StudyUpsert is the "OnConflict" setter.
	StudyUpsert struct {
		*sql.UpdateSet
	}
)

// SetURL sets the "url" field.
func (u *StudyUpsert) SetURL(v string) *StudyUpsert {
	u.Set(study.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *StudyUpsert) UpdateURL() *StudyUpsert {
	u.SetExcluded(study.FieldURL)
	return u
}

// SetStartingPath sets the "starting_path" field.
func (u *StudyUpsert) SetStartingPath(v string) *StudyUpsert {
	u.Set(study.FieldStartingPath, v)
	return u
}

// UpdateStartingPath sets the "starting_path" field to the value that was provided on create.
func (u *StudyUpsert) UpdateStartingPath() *StudyUpsert {
	u.SetExcluded(study.FieldStartingPath)
	return u
}

// SetStatus sets the "status" field.
func (u *StudyUpsert) SetStatus(v study.Status) *StudyUpsert {
	u.Set(study.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsert) UpdateStatus() *StudyUpsert {
	u.SetExcluded(study.FieldStatus)
	return u
}

// SetBrowserMode sets the "browser_mode" field.
func (u *StudyUpsert) SetBrowserMode(v study.BrowserMode) *StudyUpsert {
	u.Set(study.FieldBrowserMode, v)
	return u
}

// UpdateBrowserMode sets the "browser_mode" field to the value that was provided on create.
func (u *StudyUpsert) UpdateBrowserMode() *StudyUpsert {
	u.SetExcluded(study.FieldBrowserMode)
	return u
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (u *StudyUpsert) ClearBrowserMode() *StudyUpsert {
	u.SetNull(study.FieldBrowserMode)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *StudyUpsert) SetStartedAt(v time.Time) *StudyUpsert {
	u.Set(study.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StudyUpsert) UpdateStartedAt() *StudyUpsert {
	u.SetExcluded(study.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StudyUpsert) ClearStartedAt() *StudyUpsert {
	u.SetNull(study.FieldStartedAt)
	return u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *StudyUpsert) SetDurationSeconds(v int) *StudyUpsert {
	u.Set(study.FieldDurationSeconds, v)
	return u
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *StudyUpsert) UpdateDurationSeconds() *StudyUpsert {
	u.SetExcluded(study.FieldDurationSeconds)
	return u
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *StudyUpsert) AddDurationSeconds(v int) *StudyUpsert {
	u.Add(study.FieldDurationSeconds, v)
	return u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (u *StudyUpsert) ClearDurationSeconds() *StudyUpsert {
	u.SetNull(study.FieldDurationSeconds)
	return u
}

// SetOverallScore sets the "overall_score" field.
func (u *StudyUpsert) SetOverallScore(v int) *StudyUpsert {
	u.Set(study.FieldOverallScore, v)
	return u
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *StudyUpsert) UpdateOverallScore() *StudyUpsert {
	u.SetExcluded(study.FieldOverallScore)
	return u
}

// AddOverallScore adds v to the "overall_score" field.
func (u *StudyUpsert) AddOverallScore(v int) *StudyUpsert {
	u.Add(study.FieldOverallScore, v)
	return u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (u *StudyUpsert) ClearOverallScore() *StudyUpsert {
	u.SetNull(study.FieldOverallScore)
	return u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *StudyUpsert) SetExecutiveSummary(v string) *StudyUpsert {
	u.Set(study.FieldExecutiveSummary, v)
	return u
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *StudyUpsert) UpdateExecutiveSummary() *StudyUpsert {
	u.SetExcluded(study.FieldExecutiveSummary)
	return u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *StudyUpsert) ClearExecutiveSummary() *StudyUpsert {
	u.SetNull(study.FieldExecutiveSummary)
	return u
}

// SetCostBreakdown sets the "cost_breakdown" field.
func (u *StudyUpsert) SetCostBreakdown(v map[string]interface{}) *StudyUpsert {
	u.Set(study.FieldCostBreakdown, v)
	return u
}

// UpdateCostBreakdown sets the "cost_breakdown" field to the value that was provided on create.
func (u *StudyUpsert) UpdateCostBreakdown() *StudyUpsert {
	u.SetExcluded(study.FieldCostBreakdown)
	return u
}

// ClearCostBreakdown clears the value of the "cost_breakdown" field.
func (u *StudyUpsert) ClearCostBreakdown() *StudyUpsert {
	u.SetNull(study.FieldCostBreakdown)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StudyUpsert) SetErrorMessage(v string) *StudyUpsert {
	u.Set(study.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StudyUpsert) UpdateErrorMessage() *StudyUpsert {
	u.SetExcluded(study.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StudyUpsert) ClearErrorMessage() *StudyUpsert {
	u.SetNull(study.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsert) SetUpdatedAt(v time.Time) *StudyUpsert {
	u.Set(study.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsert) UpdateUpdatedAt() *StudyUpsert {
	u.SetExcluded(study.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(study.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyUpsertOne) UpdateNewValues() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(study.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(study.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudyUpsertOne) Ignore() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyUpsertOne) DoNothing() *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyCreate.OnConflict
// documentation for more info.
func (u *StudyUpsertOne) Update(set func(*StudyUpsert)) *StudyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *StudyUpsertOne) SetURL(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateURL() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateURL()
	})
}

// SetStartingPath sets the "starting_path" field.
func (u *StudyUpsertOne) SetStartingPath(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetStartingPath(v)
	})
}

// UpdateStartingPath sets the "starting_path" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateStartingPath() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStartingPath()
	})
}

// SetStatus sets the "status" field.
func (u *StudyUpsertOne) SetStatus(v study.Status) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateStatus() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStatus()
	})
}

// SetBrowserMode sets the "browser_mode" field.
func (u *StudyUpsertOne) SetBrowserMode(v study.BrowserMode) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetBrowserMode(v)
	})
}

// UpdateBrowserMode sets the "browser_mode" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateBrowserMode() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateBrowserMode()
	})
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (u *StudyUpsertOne) ClearBrowserMode() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearBrowserMode()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StudyUpsertOne) SetStartedAt(v time.Time) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateStartedAt() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StudyUpsertOne) ClearStartedAt() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearStartedAt()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *StudyUpsertOne) SetDurationSeconds(v int) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *StudyUpsertOne) AddDurationSeconds(v int) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateDurationSeconds() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateDurationSeconds()
	})
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (u *StudyUpsertOne) ClearDurationSeconds() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearDurationSeconds()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *StudyUpsertOne) SetOverallScore(v int) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *StudyUpsertOne) AddOverallScore(v int) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateOverallScore() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateOverallScore()
	})
}

// ClearOverallScore clears the value of the "overall_score" field.
func (u *StudyUpsertOne) ClearOverallScore() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearOverallScore()
	})
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *StudyUpsertOne) SetExecutiveSummary(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateExecutiveSummary() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *StudyUpsertOne) ClearExecutiveSummary() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearExecutiveSummary()
	})
}

// SetCostBreakdown sets the "cost_breakdown" field.
func (u *StudyUpsertOne) SetCostBreakdown(v map[string]interface{}) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetCostBreakdown(v)
	})
}

// UpdateCostBreakdown sets the "cost_breakdown" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateCostBreakdown() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateCostBreakdown()
	})
}

// ClearCostBreakdown clears the value of the "cost_breakdown" field.
func (u *StudyUpsertOne) ClearCostBreakdown() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearCostBreakdown()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StudyUpsertOne) SetErrorMessage(v string) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateErrorMessage() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StudyUpsertOne) ClearErrorMessage() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsertOne) SetUpdatedAt(v time.Time) *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsertOne) UpdateUpdatedAt() *StudyUpsertOne {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudyUpsertOne.ID is not supported by MySQL driver. Use StudyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudyCreateBulk is the builder for creating many Study entities in bulk.
type StudyCreateBulk struct {
	config
	err      error
	builders []*StudyCreate
	conflict []sql.ConflictOption
}

// Save creates the Study entities in the database.
func (_c *StudyCreateBulk) Save(ctx context.Context) ([]*Study, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Study, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyMutation)
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
func (_c *StudyCreateBulk) SaveX(ctx context.Context) []*Study {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Study.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyUpsert) {
//			SetURL(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudyUpsertBulk {
	_c.conflict = opts
	return &StudyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyCreateBulk) OnConflictColumns(columns ...string) *StudyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyUpsertBulk{
		create: _c,
	}
}

// StudyUpsertBulk is the builder for "upsert"-ing
// a bulk of Study nodes.
type StudyUpsertBulk struct {
	create *StudyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(study.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyUpsertBulk) UpdateNewValues() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(study.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(study.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Study.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudyUpsertBulk) Ignore() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyUpsertBulk) DoNothing() *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyCreateBulk.OnConflict
// documentation for more info.
func (u *StudyUpsertBulk) Update(set func(*StudyUpsert)) *StudyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *StudyUpsertBulk) SetURL(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateURL() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateURL()
	})
}

// SetStartingPath sets the "starting_path" field.
func (u *StudyUpsertBulk) SetStartingPath(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetStartingPath(v)
	})
}

// UpdateStartingPath sets the "starting_path" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateStartingPath() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStartingPath()
	})
}

// SetStatus sets the "status" field.
func (u *StudyUpsertBulk) SetStatus(v study.Status) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateStatus() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStatus()
	})
}

// SetBrowserMode sets the "browser_mode" field.
func (u *StudyUpsertBulk) SetBrowserMode(v study.BrowserMode) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetBrowserMode(v)
	})
}

// UpdateBrowserMode sets the "browser_mode" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateBrowserMode() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateBrowserMode()
	})
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (u *StudyUpsertBulk) ClearBrowserMode() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearBrowserMode()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *StudyUpsertBulk) SetStartedAt(v time.Time) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateStartedAt() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *StudyUpsertBulk) ClearStartedAt() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearStartedAt()
	})
}

// SetDurationSeconds sets the "duration_seconds" field.
func (u *StudyUpsertBulk) SetDurationSeconds(v int) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetDurationSeconds(v)
	})
}

// AddDurationSeconds adds v to the "duration_seconds" field.
func (u *StudyUpsertBulk) AddDurationSeconds(v int) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.AddDurationSeconds(v)
	})
}

// UpdateDurationSeconds sets the "duration_seconds" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateDurationSeconds() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateDurationSeconds()
	})
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (u *StudyUpsertBulk) ClearDurationSeconds() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearDurationSeconds()
	})
}

// SetOverallScore sets the "overall_score" field.
func (u *StudyUpsertBulk) SetOverallScore(v int) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetOverallScore(v)
	})
}

// AddOverallScore adds v to the "overall_score" field.
func (u *StudyUpsertBulk) AddOverallScore(v int) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.AddOverallScore(v)
	})
}

// UpdateOverallScore sets the "overall_score" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateOverallScore() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateOverallScore()
	})
}

// ClearOverallScore clears the value of the "overall_score" field.
func (u *StudyUpsertBulk) ClearOverallScore() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearOverallScore()
	})
}

// SetExecutiveSummary sets the "executive_summary" field.
func (u *StudyUpsertBulk) SetExecutiveSummary(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetExecutiveSummary(v)
	})
}

// UpdateExecutiveSummary sets the "executive_summary" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateExecutiveSummary() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateExecutiveSummary()
	})
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (u *StudyUpsertBulk) ClearExecutiveSummary() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearExecutiveSummary()
	})
}

// SetCostBreakdown sets the "cost_breakdown" field.
func (u *StudyUpsertBulk) SetCostBreakdown(v map[string]interface{}) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetCostBreakdown(v)
	})
}

// UpdateCostBreakdown sets the "cost_breakdown" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateCostBreakdown() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateCostBreakdown()
	})
}

// ClearCostBreakdown clears the value of the "cost_breakdown" field.
func (u *StudyUpsertBulk) ClearCostBreakdown() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearCostBreakdown()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StudyUpsertBulk) SetErrorMessage(v string) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateErrorMessage() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StudyUpsertBulk) ClearErrorMessage() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyUpsertBulk) SetUpdatedAt(v time.Time) *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyUpsertBulk) UpdateUpdatedAt() *StudyUpsertBulk {
	return u.Update(func(s *StudyUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
