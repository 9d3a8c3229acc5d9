// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/predicate"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *SessionUpdate) SetTotalSteps(v int) *SessionUpdate {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTotalSteps(v *int) *SessionUpdate {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *SessionUpdate) AddTotalSteps(v int) *SessionUpdate {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// SetTaskCompleted sets the "task_completed" field.
func (_u *SessionUpdate) SetTaskCompleted(v bool) *SessionUpdate {
	_u.mutation.SetTaskCompleted(v)
	return _u
}

// SetNillableTaskCompleted sets the "task_completed" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTaskCompleted(v *bool) *SessionUpdate {
	if v != nil {
		_u.SetTaskCompleted(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionUpdate) SetSummary(v string) *SessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSummary(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionUpdate) ClearSummary() *SessionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetEmotionalArc sets the "emotional_arc" field.
func (_u *SessionUpdate) SetEmotionalArc(v []string) *SessionUpdate {
	_u.mutation.SetEmotionalArc(v)
	return _u
}

// AppendEmotionalArc appends value to the "emotional_arc" field.
func (_u *SessionUpdate) AppendEmotionalArc(v []string) *SessionUpdate {
	_u.mutation.AppendEmotionalArc(v)
	return _u
}

// ClearEmotionalArc clears the value of the "emotional_arc" field.
func (_u *SessionUpdate) ClearEmotionalArc() *SessionUpdate {
	_u.mutation.ClearEmotionalArc()
	return _u
}

// SetUxScore sets the "ux_score" field.
func (_u *SessionUpdate) SetUxScore(v int) *SessionUpdate {
	_u.mutation.ResetUxScore()
	_u.mutation.SetUxScore(v)
	return _u
}

// SetNillableUxScore sets the "ux_score" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableUxScore(v *int) *SessionUpdate {
	if v != nil {
		_u.SetUxScore(*v)
	}
	return _u
}

// AddUxScore adds value to the "ux_score" field.
func (_u *SessionUpdate) AddUxScore(v int) *SessionUpdate {
	_u.mutation.AddUxScore(v)
	return _u
}

// ClearUxScore clears the value of the "ux_score" field.
func (_u *SessionUpdate) ClearUxScore() *SessionUpdate {
	_u.mutation.ClearUxScore()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdate) SetErrorMessage(v string) *SessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableErrorMessage(v *string) *SessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdate) ClearErrorMessage() *SessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionUpdate) SetStartedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStartedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionUpdate) ClearStartedAt() *SessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdate) SetCompletedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableCompletedAt(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdate) ClearCompletedAt() *SessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *SessionUpdate) AddStepIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *SessionUpdate) AddSteps(v ...*Step) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_u *SessionUpdate) AddIssueIDs(ids ...string) *SessionUpdate {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_u *SessionUpdate) AddIssues(v ...*Issue) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *SessionUpdate) ClearSteps() *SessionUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *SessionUpdate) RemoveStepIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *SessionUpdate) RemoveSteps(v ...*Step) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearIssues clears all "issues" edges to the Issue entity.
func (_u *SessionUpdate) ClearIssues() *SessionUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to Issue entities by IDs.
func (_u *SessionUpdate) RemoveIssueIDs(ids ...string) *SessionUpdate {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to Issue entities.
func (_u *SessionUpdate) RemoveIssues(v ...*Issue) *SessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UxScore(); ok {
		if err := session.UxScoreValidator(v); err != nil {
			return &ValidationError{Name: "ux_score", err: fmt.Errorf(`ent: validator failed for field "Session.ux_score": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.study"`)
	}
	if _u.mutation.PersonaCleared() && len(_u.mutation.PersonaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.persona"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.task"`)
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(session.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(session.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskCompleted(); ok {
		_spec.SetField(session.FieldTaskCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(session.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EmotionalArc(); ok {
		_spec.SetField(session.FieldEmotionalArc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmotionalArc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldEmotionalArc, value)
		})
	}
	if _u.mutation.EmotionalArcCleared() {
		_spec.ClearField(session.FieldEmotionalArc, field.TypeJSON)
	}
	if value, ok := _u.mutation.UxScore(); ok {
		_spec.SetField(session.FieldUxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUxScore(); ok {
		_spec.AddField(session.FieldUxScore, field.TypeInt, value)
	}
	if _u.mutation.UxScoreCleared() {
		_spec.ClearField(session.FieldUxScore, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(session.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIssuesIDs(); len(nodes) > 0 && !_u.mutation.IssuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalSteps sets the "total_steps" field.
func (_u *SessionUpdateOne) SetTotalSteps(v int) *SessionUpdateOne {
	_u.mutation.ResetTotalSteps()
	_u.mutation.SetTotalSteps(v)
	return _u
}

// SetNillableTotalSteps sets the "total_steps" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTotalSteps(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetTotalSteps(*v)
	}
	return _u
}

// AddTotalSteps adds value to the "total_steps" field.
func (_u *SessionUpdateOne) AddTotalSteps(v int) *SessionUpdateOne {
	_u.mutation.AddTotalSteps(v)
	return _u
}

// SetTaskCompleted sets the "task_completed" field.
func (_u *SessionUpdateOne) SetTaskCompleted(v bool) *SessionUpdateOne {
	_u.mutation.SetTaskCompleted(v)
	return _u
}

// SetNillableTaskCompleted sets the "task_completed" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTaskCompleted(v *bool) *SessionUpdateOne {
	if v != nil {
		_u.SetTaskCompleted(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionUpdateOne) SetSummary(v string) *SessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSummary(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionUpdateOne) ClearSummary() *SessionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetEmotionalArc sets the "emotional_arc" field.
func (_u *SessionUpdateOne) SetEmotionalArc(v []string) *SessionUpdateOne {
	_u.mutation.SetEmotionalArc(v)
	return _u
}

// AppendEmotionalArc appends value to the "emotional_arc" field.
func (_u *SessionUpdateOne) AppendEmotionalArc(v []string) *SessionUpdateOne {
	_u.mutation.AppendEmotionalArc(v)
	return _u
}

// ClearEmotionalArc clears the value of the "emotional_arc" field.
func (_u *SessionUpdateOne) ClearEmotionalArc() *SessionUpdateOne {
	_u.mutation.ClearEmotionalArc()
	return _u
}

// SetUxScore sets the "ux_score" field.
func (_u *SessionUpdateOne) SetUxScore(v int) *SessionUpdateOne {
	_u.mutation.ResetUxScore()
	_u.mutation.SetUxScore(v)
	return _u
}

// SetNillableUxScore sets the "ux_score" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableUxScore(v *int) *SessionUpdateOne {
	if v != nil {
		_u.SetUxScore(*v)
	}
	return _u
}

// AddUxScore adds value to the "ux_score" field.
func (_u *SessionUpdateOne) AddUxScore(v int) *SessionUpdateOne {
	_u.mutation.AddUxScore(v)
	return _u
}

// ClearUxScore clears the value of the "ux_score" field.
func (_u *SessionUpdateOne) ClearUxScore() *SessionUpdateOne {
	_u.mutation.ClearUxScore()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SessionUpdateOne) SetErrorMessage(v string) *SessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableErrorMessage(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SessionUpdateOne) ClearErrorMessage() *SessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *SessionUpdateOne) SetStartedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStartedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *SessionUpdateOne) ClearStartedAt() *SessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SessionUpdateOne) SetCompletedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableCompletedAt(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SessionUpdateOne) ClearCompletedAt() *SessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the Step entity by IDs.
func (_u *SessionUpdateOne) AddStepIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the Step entity.
func (_u *SessionUpdateOne) AddSteps(v ...*Step) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_u *SessionUpdateOne) AddIssueIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_u *SessionUpdateOne) AddIssues(v ...*Issue) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the Step entity.
func (_u *SessionUpdateOne) ClearSteps() *SessionUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to Step entities by IDs.
func (_u *SessionUpdateOne) RemoveStepIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to Step entities.
func (_u *SessionUpdateOne) RemoveSteps(v ...*Step) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearIssues clears all "issues" edges to the Issue entity.
func (_u *SessionUpdateOne) ClearIssues() *SessionUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to Issue entities by IDs.
func (_u *SessionUpdateOne) RemoveIssueIDs(ids ...string) *SessionUpdateOne {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to Issue entities.
func (_u *SessionUpdateOne) RemoveIssues(v ...*Issue) *SessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Session.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UxScore(); ok {
		if err := session.UxScoreValidator(v); err != nil {
			return &ValidationError{Name: "ux_score", err: fmt.Errorf(`ent: validator failed for field "Session.ux_score": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.study"`)
	}
	if _u.mutation.PersonaCleared() && len(_u.mutation.PersonaIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.persona"`)
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Session.task"`)
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TotalSteps(); ok {
		_spec.SetField(session.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSteps(); ok {
		_spec.AddField(session.FieldTotalSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskCompleted(); ok {
		_spec.SetField(session.FieldTaskCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(session.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EmotionalArc(); ok {
		_spec.SetField(session.FieldEmotionalArc, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmotionalArc(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, session.FieldEmotionalArc, value)
		})
	}
	if _u.mutation.EmotionalArcCleared() {
		_spec.ClearField(session.FieldEmotionalArc, field.TypeJSON)
	}
	if value, ok := _u.mutation.UxScore(); ok {
		_spec.SetField(session.FieldUxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUxScore(); ok {
		_spec.AddField(session.FieldUxScore, field.TypeInt, value)
	}
	if _u.mutation.UxScoreCleared() {
		_spec.ClearField(session.FieldUxScore, field.TypeInt)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(session.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(session.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(session.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(session.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(session.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(session.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.IssuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedIssuesIDs(); len(nodes) > 0 && !_u.mutation.IssuesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.IssuesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
