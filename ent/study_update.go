// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/predicate"
	"github.com/wanderlens/wanderlens/ent/schedule"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/studyjob"
	"github.com/wanderlens/wanderlens/ent/task"
)

// StudyUpdate is the builder for updating Study entities.
type StudyUpdate struct {
	config
	hooks    []Hook
	mutation *StudyMutation
}

// Where appends a list predicates to the StudyUpdate builder.
func (_u *StudyUpdate) Where(ps ...predicate.Study) *StudyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *StudyUpdate) SetURL(v string) *StudyUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableURL(v *string) *StudyUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStartingPath sets the "starting_path" field.
func (_u *StudyUpdate) SetStartingPath(v string) *StudyUpdate {
	_u.mutation.SetStartingPath(v)
	return _u
}

// SetNillableStartingPath sets the "starting_path" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableStartingPath(v *string) *StudyUpdate {
	if v != nil {
		_u.SetStartingPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyUpdate) SetStatus(v study.Status) *StudyUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableStatus(v *study.Status) *StudyUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBrowserMode sets the "browser_mode" field.
func (_u *StudyUpdate) SetBrowserMode(v study.BrowserMode) *StudyUpdate {
	_u.mutation.SetBrowserMode(v)
	return _u
}

// SetNillableBrowserMode sets the "browser_mode" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableBrowserMode(v *study.BrowserMode) *StudyUpdate {
	if v != nil {
		_u.SetBrowserMode(*v)
	}
	return _u
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (_u *StudyUpdate) ClearBrowserMode() *StudyUpdate {
	_u.mutation.ClearBrowserMode()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StudyUpdate) SetStartedAt(v time.Time) *StudyUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableStartedAt(v *time.Time) *StudyUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StudyUpdate) ClearStartedAt() *StudyUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *StudyUpdate) SetDurationSeconds(v int) *StudyUpdate {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableDurationSeconds(v *int) *StudyUpdate {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *StudyUpdate) AddDurationSeconds(v int) *StudyUpdate {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *StudyUpdate) ClearDurationSeconds() *StudyUpdate {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *StudyUpdate) SetOverallScore(v int) *StudyUpdate {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableOverallScore(v *int) *StudyUpdate {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *StudyUpdate) AddOverallScore(v int) *StudyUpdate {
	_u.mutation.AddOverallScore(v)
	return _u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (_u *StudyUpdate) ClearOverallScore() *StudyUpdate {
	_u.mutation.ClearOverallScore()
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *StudyUpdate) SetExecutiveSummary(v string) *StudyUpdate {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableExecutiveSummary(v *string) *StudyUpdate {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (_u *StudyUpdate) ClearExecutiveSummary() *StudyUpdate {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// SetCostBreakdown sets the "cost_breakdown" field.
func (_u *StudyUpdate) SetCostBreakdown(v map[string]interface{}) *StudyUpdate {
	_u.mutation.SetCostBreakdown(v)
	return _u
}

// ClearCostBreakdown clears the value of the "cost_breakdown" field.
func (_u *StudyUpdate) ClearCostBreakdown() *StudyUpdate {
	_u.mutation.ClearCostBreakdown()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StudyUpdate) SetErrorMessage(v string) *StudyUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StudyUpdate) SetNillableErrorMessage(v *string) *StudyUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StudyUpdate) ClearErrorMessage() *StudyUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyUpdate) SetUpdatedAt(v time.Time) *StudyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *StudyUpdate) AddTaskIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *StudyUpdate) AddTasks(v ...*Task) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddPersonaIDs adds the "personas" edge to the Persona entity by IDs.
func (_u *StudyUpdate) AddPersonaIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddPersonaIDs(ids...)
	return _u
}

// AddPersonas adds the "personas" edges to the Persona entity.
func (_u *StudyUpdate) AddPersonas(v ...*Persona) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPersonaIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *StudyUpdate) AddSessionIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *StudyUpdate) AddSessions(v ...*Session) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_u *StudyUpdate) AddIssueIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_u *StudyUpdate) AddIssues(v ...*Issue) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_u *StudyUpdate) AddInsightIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddInsightIDs(ids...)
	return _u
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_u *StudyUpdate) AddInsights(v ...*Insight) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInsightIDs(ids...)
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_u *StudyUpdate) AddScheduleIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddScheduleIDs(ids...)
	return _u
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_u *StudyUpdate) AddSchedules(v ...*Schedule) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduleIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the StudyJob entity by IDs.
func (_u *StudyUpdate) AddJobIDs(ids ...string) *StudyUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the StudyJob entity.
func (_u *StudyUpdate) AddJobs(v ...*StudyJob) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the StudyMutation object of the builder.
func (_u *StudyUpdate) Mutation() *StudyMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *StudyUpdate) ClearTasks() *StudyUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *StudyUpdate) RemoveTaskIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *StudyUpdate) RemoveTasks(v ...*Task) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearPersonas clears all "personas" edges to the Persona entity.
func (_u *StudyUpdate) ClearPersonas() *StudyUpdate {
	_u.mutation.ClearPersonas()
	return _u
}

// RemovePersonaIDs removes the "personas" edge to Persona entities by IDs.
func (_u *StudyUpdate) RemovePersonaIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemovePersonaIDs(ids...)
	return _u
}

// RemovePersonas removes "personas" edges to Persona entities.
func (_u *StudyUpdate) RemovePersonas(v ...*Persona) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePersonaIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *StudyUpdate) ClearSessions() *StudyUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *StudyUpdate) RemoveSessionIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *StudyUpdate) RemoveSessions(v ...*Session) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearIssues clears all "issues" edges to the Issue entity.
func (_u *StudyUpdate) ClearIssues() *StudyUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to Issue entities by IDs.
func (_u *StudyUpdate) RemoveIssueIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to Issue entities.
func (_u *StudyUpdate) RemoveIssues(v ...*Issue) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// ClearInsights clears all "insights" edges to the Insight entity.
func (_u *StudyUpdate) ClearInsights() *StudyUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// RemoveInsightIDs removes the "insights" edge to Insight entities by IDs.
func (_u *StudyUpdate) RemoveInsightIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveInsightIDs(ids...)
	return _u
}

// RemoveInsights removes "insights" edges to Insight entities.
func (_u *StudyUpdate) RemoveInsights(v ...*Insight) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInsightIDs(ids...)
}

// ClearSchedules clears all "schedules" edges to the Schedule entity.
func (_u *StudyUpdate) ClearSchedules() *StudyUpdate {
	_u.mutation.ClearSchedules()
	return _u
}

// RemoveScheduleIDs removes the "schedules" edge to Schedule entities by IDs.
func (_u *StudyUpdate) RemoveScheduleIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveScheduleIDs(ids...)
	return _u
}

// RemoveSchedules removes "schedules" edges to Schedule entities.
func (_u *StudyUpdate) RemoveSchedules(v ...*Schedule) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduleIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the StudyJob entity.
func (_u *StudyUpdate) ClearJobs() *StudyUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to StudyJob entities by IDs.
func (_u *StudyUpdate) RemoveJobIDs(ids ...string) *StudyUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to StudyJob entities.
func (_u *StudyUpdate) RemoveJobs(v ...*StudyJob) *StudyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := study.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := study.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Study.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrowserMode(); ok {
		if err := study.BrowserModeValidator(v); err != nil {
			return &ValidationError{Name: "browser_mode", err: fmt.Errorf(`ent: validator failed for field "Study.browser_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallScore(); ok {
		if err := study.OverallScoreValidator(v); err != nil {
			return &ValidationError{Name: "overall_score", err: fmt.Errorf(`ent: validator failed for field "Study.overall_score": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(study.Table, study.Columns, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(study.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartingPath(); ok {
		_spec.SetField(study.FieldStartingPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BrowserMode(); ok {
		_spec.SetField(study.FieldBrowserMode, field.TypeEnum, value)
	}
	if _u.mutation.BrowserModeCleared() {
		_spec.ClearField(study.FieldBrowserMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(study.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(study.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(study.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(study.FieldDurationSeconds, field.TypeInt, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(study.FieldDurationSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(study.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(study.FieldOverallScore, field.TypeInt, value)
	}
	if _u.mutation.OverallScoreCleared() {
		_spec.ClearField(study.FieldOverallScore, field.TypeInt)
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(study.FieldExecutiveSummary, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(study.FieldExecutiveSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CostBreakdown(); ok {
		_spec.SetField(study.FieldCostBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.CostBreakdownCleared() {
		_spec.ClearField(study.FieldCostBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(study.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(study.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PersonasCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPersonasIDs(); len(nodes) > 0 && !_u.mutation.PersonasCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonasIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIssuesIDs(); len(nodes) > 0 && !_u.mutation.IssuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInsightsIDs(); len(nodes) > 0 && !_u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SchedulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSchedulesIDs(); len(nodes) > 0 && !_u.mutation.SchedulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchedulesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{study.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyUpdateOne is the builder for updating a single Study entity.
type StudyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyMutation
}

// SetURL sets the "url" field.
func (_u *StudyUpdateOne) SetURL(v string) *StudyUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableURL(v *string) *StudyUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStartingPath sets the "starting_path" field.
func (_u *StudyUpdateOne) SetStartingPath(v string) *StudyUpdateOne {
	_u.mutation.SetStartingPath(v)
	return _u
}

// SetNillableStartingPath sets the "starting_path" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableStartingPath(v *string) *StudyUpdateOne {
	if v != nil {
		_u.SetStartingPath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyUpdateOne) SetStatus(v study.Status) *StudyUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableStatus(v *study.Status) *StudyUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetBrowserMode sets the "browser_mode" field.
func (_u *StudyUpdateOne) SetBrowserMode(v study.BrowserMode) *StudyUpdateOne {
	_u.mutation.SetBrowserMode(v)
	return _u
}

// SetNillableBrowserMode sets the "browser_mode" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableBrowserMode(v *study.BrowserMode) *StudyUpdateOne {
	if v != nil {
		_u.SetBrowserMode(*v)
	}
	return _u
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (_u *StudyUpdateOne) ClearBrowserMode() *StudyUpdateOne {
	_u.mutation.ClearBrowserMode()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StudyUpdateOne) SetStartedAt(v time.Time) *StudyUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableStartedAt(v *time.Time) *StudyUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StudyUpdateOne) ClearStartedAt() *StudyUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetDurationSeconds sets the "duration_seconds" field.
func (_u *StudyUpdateOne) SetDurationSeconds(v int) *StudyUpdateOne {
	_u.mutation.ResetDurationSeconds()
	_u.mutation.SetDurationSeconds(v)
	return _u
}

// SetNillableDurationSeconds sets the "duration_seconds" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableDurationSeconds(v *int) *StudyUpdateOne {
	if v != nil {
		_u.SetDurationSeconds(*v)
	}
	return _u
}

// AddDurationSeconds adds value to the "duration_seconds" field.
func (_u *StudyUpdateOne) AddDurationSeconds(v int) *StudyUpdateOne {
	_u.mutation.AddDurationSeconds(v)
	return _u
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (_u *StudyUpdateOne) ClearDurationSeconds() *StudyUpdateOne {
	_u.mutation.ClearDurationSeconds()
	return _u
}

// SetOverallScore sets the "overall_score" field.
func (_u *StudyUpdateOne) SetOverallScore(v int) *StudyUpdateOne {
	_u.mutation.ResetOverallScore()
	_u.mutation.SetOverallScore(v)
	return _u
}

// SetNillableOverallScore sets the "overall_score" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableOverallScore(v *int) *StudyUpdateOne {
	if v != nil {
		_u.SetOverallScore(*v)
	}
	return _u
}

// AddOverallScore adds value to the "overall_score" field.
func (_u *StudyUpdateOne) AddOverallScore(v int) *StudyUpdateOne {
	_u.mutation.AddOverallScore(v)
	return _u
}

// ClearOverallScore clears the value of the "overall_score" field.
func (_u *StudyUpdateOne) ClearOverallScore() *StudyUpdateOne {
	_u.mutation.ClearOverallScore()
	return _u
}

// SetExecutiveSummary sets the "executive_summary" field.
func (_u *StudyUpdateOne) SetExecutiveSummary(v string) *StudyUpdateOne {
	_u.mutation.SetExecutiveSummary(v)
	return _u
}

// SetNillableExecutiveSummary sets the "executive_summary" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableExecutiveSummary(v *string) *StudyUpdateOne {
	if v != nil {
		_u.SetExecutiveSummary(*v)
	}
	return _u
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (_u *StudyUpdateOne) ClearExecutiveSummary() *StudyUpdateOne {
	_u.mutation.ClearExecutiveSummary()
	return _u
}

// SetCostBreakdown sets the "cost_breakdown" field.
func (_u *StudyUpdateOne) SetCostBreakdown(v map[string]interface{}) *StudyUpdateOne {
	_u.mutation.SetCostBreakdown(v)
	return _u
}

// ClearCostBreakdown clears the value of the "cost_breakdown" field.
func (_u *StudyUpdateOne) ClearCostBreakdown() *StudyUpdateOne {
	_u.mutation.ClearCostBreakdown()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StudyUpdateOne) SetErrorMessage(v string) *StudyUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StudyUpdateOne) SetNillableErrorMessage(v *string) *StudyUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StudyUpdateOne) ClearErrorMessage() *StudyUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyUpdateOne) SetUpdatedAt(v time.Time) *StudyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *StudyUpdateOne) AddTaskIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *StudyUpdateOne) AddTasks(v ...*Task) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// AddPersonaIDs adds the "personas" edge to the Persona entity by IDs.
func (_u *StudyUpdateOne) AddPersonaIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddPersonaIDs(ids...)
	return _u
}

// AddPersonas adds the "personas" edges to the Persona entity.
func (_u *StudyUpdateOne) AddPersonas(v ...*Persona) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPersonaIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *StudyUpdateOne) AddSessionIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *StudyUpdateOne) AddSessions(v ...*Session) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_u *StudyUpdateOne) AddIssueIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_u *StudyUpdateOne) AddIssues(v ...*Issue) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_u *StudyUpdateOne) AddInsightIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddInsightIDs(ids...)
	return _u
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_u *StudyUpdateOne) AddInsights(v ...*Insight) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInsightIDs(ids...)
}

// AddScheduleIDs adds the "schedules" edge to the Schedule entity by IDs.
func (_u *StudyUpdateOne) AddScheduleIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddScheduleIDs(ids...)
	return _u
}

// AddSchedules adds the "schedules" edges to the Schedule entity.
func (_u *StudyUpdateOne) AddSchedules(v ...*Schedule) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduleIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the StudyJob entity by IDs.
func (_u *StudyUpdateOne) AddJobIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the StudyJob entity.
func (_u *StudyUpdateOne) AddJobs(v ...*StudyJob) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the StudyMutation object of the builder.
func (_u *StudyUpdateOne) Mutation() *StudyMutation {
	return _u.mutation
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *StudyUpdateOne) ClearTasks() *StudyUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *StudyUpdateOne) RemoveTaskIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *StudyUpdateOne) RemoveTasks(v ...*Task) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// ClearPersonas clears all "personas" edges to the Persona entity.
func (_u *StudyUpdateOne) ClearPersonas() *StudyUpdateOne {
	_u.mutation.ClearPersonas()
	return _u
}

// RemovePersonaIDs removes the "personas" edge to Persona entities by IDs.
func (_u *StudyUpdateOne) RemovePersonaIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemovePersonaIDs(ids...)
	return _u
}

// RemovePersonas removes "personas" edges to Persona entities.
func (_u *StudyUpdateOne) RemovePersonas(v ...*Persona) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePersonaIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *StudyUpdateOne) ClearSessions() *StudyUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *StudyUpdateOne) RemoveSessionIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *StudyUpdateOne) RemoveSessions(v ...*Session) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearIssues clears all "issues" edges to the Issue entity.
func (_u *StudyUpdateOne) ClearIssues() *StudyUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to Issue entities by IDs.
func (_u *StudyUpdateOne) RemoveIssueIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to Issue entities.
func (_u *StudyUpdateOne) RemoveIssues(v ...*Issue) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// ClearInsights clears all "insights" edges to the Insight entity.
func (_u *StudyUpdateOne) ClearInsights() *StudyUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// RemoveInsightIDs removes the "insights" edge to Insight entities by IDs.
func (_u *StudyUpdateOne) RemoveInsightIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveInsightIDs(ids...)
	return _u
}

// RemoveInsights removes "insights" edges to Insight entities.
func (_u *StudyUpdateOne) RemoveInsights(v ...*Insight) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInsightIDs(ids...)
}

// ClearSchedules clears all "schedules" edges to the Schedule entity.
func (_u *StudyUpdateOne) ClearSchedules() *StudyUpdateOne {
	_u.mutation.ClearSchedules()
	return _u
}

// RemoveScheduleIDs removes the "schedules" edge to Schedule entities by IDs.
func (_u *StudyUpdateOne) RemoveScheduleIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveScheduleIDs(ids...)
	return _u
}

// RemoveSchedules removes "schedules" edges to Schedule entities.
func (_u *StudyUpdateOne) RemoveSchedules(v ...*Schedule) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduleIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the StudyJob entity.
func (_u *StudyUpdateOne) ClearJobs() *StudyUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to StudyJob entities by IDs.
func (_u *StudyUpdateOne) RemoveJobIDs(ids ...string) *StudyUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to StudyJob entities.
func (_u *StudyUpdateOne) RemoveJobs(v ...*StudyJob) *StudyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the StudyUpdate builder.
func (_u *StudyUpdateOne) Where(ps ...predicate.Study) *StudyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyUpdateOne) Select(field string, fields ...string) *StudyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Study entity.
func (_u *StudyUpdateOne) Save(ctx context.Context) (*Study, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyUpdateOne) SaveX(ctx context.Context) *Study {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := study.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := study.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Study.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BrowserMode(); ok {
		if err := study.BrowserModeValidator(v); err != nil {
			return &ValidationError{Name: "browser_mode", err: fmt.Errorf(`ent: validator failed for field "Study.browser_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OverallScore(); ok {
		if err := study.OverallScoreValidator(v); err != nil {
			return &ValidationError{Name: "overall_score", err: fmt.Errorf(`ent: validator failed for field "Study.overall_score": %w`, err)}
		}
	}
	return nil
}

func (_u *StudyUpdateOne) sqlSave(ctx context.Context) (_node *Study, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(study.Table, study.Columns, sqlgraph.NewFieldSpec(study.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Study.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, study.FieldID)
		for _, f := range fields {
			if !study.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != study.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(study.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartingPath(); ok {
		_spec.SetField(study.FieldStartingPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(study.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BrowserMode(); ok {
		_spec.SetField(study.FieldBrowserMode, field.TypeEnum, value)
	}
	if _u.mutation.BrowserModeCleared() {
		_spec.ClearField(study.FieldBrowserMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(study.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(study.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationSeconds(); ok {
		_spec.SetField(study.FieldDurationSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSeconds(); ok {
		_spec.AddField(study.FieldDurationSeconds, field.TypeInt, value)
	}
	if _u.mutation.DurationSecondsCleared() {
		_spec.ClearField(study.FieldDurationSeconds, field.TypeInt)
	}
	if value, ok := _u.mutation.OverallScore(); ok {
		_spec.SetField(study.FieldOverallScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallScore(); ok {
		_spec.AddField(study.FieldOverallScore, field.TypeInt, value)
	}
	if _u.mutation.OverallScoreCleared() {
		_spec.ClearField(study.FieldOverallScore, field.TypeInt)
	}
	if value, ok := _u.mutation.ExecutiveSummary(); ok {
		_spec.SetField(study.FieldExecutiveSummary, field.TypeString, value)
	}
	if _u.mutation.ExecutiveSummaryCleared() {
		_spec.ClearField(study.FieldExecutiveSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CostBreakdown(); ok {
		_spec.SetField(study.FieldCostBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.CostBreakdownCleared() {
		_spec.ClearField(study.FieldCostBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(study.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(study.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(study.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PersonasCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPersonasIDs(); len(nodes) > 0 && !_u.mutation.PersonasCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PersonasIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIssuesIDs(); len(nodes) > 0 && !_u.mutation.IssuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInsightsIDs(); len(nodes) > 0 && !_u.mutation.InsightsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SchedulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSchedulesIDs(); len(nodes) > 0 && !_u.mutation.SchedulesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SchedulesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Study{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{study.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
