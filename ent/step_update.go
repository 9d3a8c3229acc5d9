// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wanderlens/wanderlens/ent/issue"
	"github.com/wanderlens/wanderlens/ent/predicate"
	"github.com/wanderlens/wanderlens/ent/step"
)

// StepUpdate is the builder for updating Step entities.
type StepUpdate struct {
	config
	hooks    []Hook
	mutation *StepMutation
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdate) Where(ps ...predicate.Step) *StepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPageURL sets the "page_url" field.
func (_u *StepUpdate) SetPageURL(v string) *StepUpdate {
	_u.mutation.SetPageURL(v)
	return _u
}

// SetNillablePageURL sets the "page_url" field if the given value is not nil.
func (_u *StepUpdate) SetNillablePageURL(v *string) *StepUpdate {
	if v != nil {
		_u.SetPageURL(*v)
	}
	return _u
}

// SetPageTitle sets the "page_title" field.
func (_u *StepUpdate) SetPageTitle(v string) *StepUpdate {
	_u.mutation.SetPageTitle(v)
	return _u
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_u *StepUpdate) SetNillablePageTitle(v *string) *StepUpdate {
	if v != nil {
		_u.SetPageTitle(*v)
	}
	return _u
}

// ClearPageTitle clears the value of the "page_title" field.
func (_u *StepUpdate) ClearPageTitle() *StepUpdate {
	_u.mutation.ClearPageTitle()
	return _u
}

// SetScreenshotRef sets the "screenshot_ref" field.
func (_u *StepUpdate) SetScreenshotRef(v string) *StepUpdate {
	_u.mutation.SetScreenshotRef(v)
	return _u
}

// SetNillableScreenshotRef sets the "screenshot_ref" field if the given value is not nil.
func (_u *StepUpdate) SetNillableScreenshotRef(v *string) *StepUpdate {
	if v != nil {
		_u.SetScreenshotRef(*v)
	}
	return _u
}

// ClearScreenshotRef clears the value of the "screenshot_ref" field.
func (_u *StepUpdate) ClearScreenshotRef() *StepUpdate {
	_u.mutation.ClearScreenshotRef()
	return _u
}

// SetThinkAloud sets the "think_aloud" field.
func (_u *StepUpdate) SetThinkAloud(v string) *StepUpdate {
	_u.mutation.SetThinkAloud(v)
	return _u
}

// SetNillableThinkAloud sets the "think_aloud" field if the given value is not nil.
func (_u *StepUpdate) SetNillableThinkAloud(v *string) *StepUpdate {
	if v != nil {
		_u.SetThinkAloud(*v)
	}
	return _u
}

// ClearThinkAloud clears the value of the "think_aloud" field.
func (_u *StepUpdate) ClearThinkAloud() *StepUpdate {
	_u.mutation.ClearThinkAloud()
	return _u
}

// SetAction sets the "action" field.
func (_u *StepUpdate) SetAction(v map[string]interface{}) *StepUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *StepUpdate) SetConfidence(v float64) *StepUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *StepUpdate) SetNillableConfidence(v *float64) *StepUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *StepUpdate) AddConfidence(v float64) *StepUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTaskProgress sets the "task_progress" field.
func (_u *StepUpdate) SetTaskProgress(v int) *StepUpdate {
	_u.mutation.ResetTaskProgress()
	_u.mutation.SetTaskProgress(v)
	return _u
}

// SetNillableTaskProgress sets the "task_progress" field if the given value is not nil.
func (_u *StepUpdate) SetNillableTaskProgress(v *int) *StepUpdate {
	if v != nil {
		_u.SetTaskProgress(*v)
	}
	return _u
}

// AddTaskProgress adds value to the "task_progress" field.
func (_u *StepUpdate) AddTaskProgress(v int) *StepUpdate {
	_u.mutation.AddTaskProgress(v)
	return _u
}

// SetEmotionalState sets the "emotional_state" field.
func (_u *StepUpdate) SetEmotionalState(v step.EmotionalState) *StepUpdate {
	_u.mutation.SetEmotionalState(v)
	return _u
}

// SetNillableEmotionalState sets the "emotional_state" field if the given value is not nil.
func (_u *StepUpdate) SetNillableEmotionalState(v *step.EmotionalState) *StepUpdate {
	if v != nil {
		_u.SetEmotionalState(*v)
	}
	return _u
}

// SetClickX sets the "click_x" field.
func (_u *StepUpdate) SetClickX(v int) *StepUpdate {
	_u.mutation.ResetClickX()
	_u.mutation.SetClickX(v)
	return _u
}

// SetNillableClickX sets the "click_x" field if the given value is not nil.
func (_u *StepUpdate) SetNillableClickX(v *int) *StepUpdate {
	if v != nil {
		_u.SetClickX(*v)
	}
	return _u
}

// AddClickX adds value to the "click_x" field.
func (_u *StepUpdate) AddClickX(v int) *StepUpdate {
	_u.mutation.AddClickX(v)
	return _u
}

// ClearClickX clears the value of the "click_x" field.
func (_u *StepUpdate) ClearClickX() *StepUpdate {
	_u.mutation.ClearClickX()
	return _u
}

// SetClickY sets the "click_y" field.
func (_u *StepUpdate) SetClickY(v int) *StepUpdate {
	_u.mutation.ResetClickY()
	_u.mutation.SetClickY(v)
	return _u
}

// SetNillableClickY sets the "click_y" field if the given value is not nil.
func (_u *StepUpdate) SetNillableClickY(v *int) *StepUpdate {
	if v != nil {
		_u.SetClickY(*v)
	}
	return _u
}

// AddClickY adds value to the "click_y" field.
func (_u *StepUpdate) AddClickY(v int) *StepUpdate {
	_u.mutation.AddClickY(v)
	return _u
}

// ClearClickY clears the value of the "click_y" field.
func (_u *StepUpdate) ClearClickY() *StepUpdate {
	_u.mutation.ClearClickY()
	return _u
}

// SetViewportW sets the "viewport_w" field.
func (_u *StepUpdate) SetViewportW(v int) *StepUpdate {
	_u.mutation.ResetViewportW()
	_u.mutation.SetViewportW(v)
	return _u
}

// SetNillableViewportW sets the "viewport_w" field if the given value is not nil.
func (_u *StepUpdate) SetNillableViewportW(v *int) *StepUpdate {
	if v != nil {
		_u.SetViewportW(*v)
	}
	return _u
}

// AddViewportW adds value to the "viewport_w" field.
func (_u *StepUpdate) AddViewportW(v int) *StepUpdate {
	_u.mutation.AddViewportW(v)
	return _u
}

// ClearViewportW clears the value of the "viewport_w" field.
func (_u *StepUpdate) ClearViewportW() *StepUpdate {
	_u.mutation.ClearViewportW()
	return _u
}

// SetViewportH sets the "viewport_h" field.
func (_u *StepUpdate) SetViewportH(v int) *StepUpdate {
	_u.mutation.ResetViewportH()
	_u.mutation.SetViewportH(v)
	return _u
}

// SetNillableViewportH sets the "viewport_h" field if the given value is not nil.
func (_u *StepUpdate) SetNillableViewportH(v *int) *StepUpdate {
	if v != nil {
		_u.SetViewportH(*v)
	}
	return _u
}

// AddViewportH adds value to the "viewport_h" field.
func (_u *StepUpdate) AddViewportH(v int) *StepUpdate {
	_u.mutation.AddViewportH(v)
	return _u
}

// ClearViewportH clears the value of the "viewport_h" field.
func (_u *StepUpdate) ClearViewportH() *StepUpdate {
	_u.mutation.ClearViewportH()
	return _u
}

// SetScrollY sets the "scroll_y" field.
func (_u *StepUpdate) SetScrollY(v int) *StepUpdate {
	_u.mutation.ResetScrollY()
	_u.mutation.SetScrollY(v)
	return _u
}

// SetNillableScrollY sets the "scroll_y" field if the given value is not nil.
func (_u *StepUpdate) SetNillableScrollY(v *int) *StepUpdate {
	if v != nil {
		_u.SetScrollY(*v)
	}
	return _u
}

// AddScrollY adds value to the "scroll_y" field.
func (_u *StepUpdate) AddScrollY(v int) *StepUpdate {
	_u.mutation.AddScrollY(v)
	return _u
}

// ClearScrollY clears the value of the "scroll_y" field.
func (_u *StepUpdate) ClearScrollY() *StepUpdate {
	_u.mutation.ClearScrollY()
	return _u
}

// SetMaxScrollY sets the "max_scroll_y" field.
func (_u *StepUpdate) SetMaxScrollY(v int) *StepUpdate {
	_u.mutation.ResetMaxScrollY()
	_u.mutation.SetMaxScrollY(v)
	return _u
}

// SetNillableMaxScrollY sets the "max_scroll_y" field if the given value is not nil.
func (_u *StepUpdate) SetNillableMaxScrollY(v *int) *StepUpdate {
	if v != nil {
		_u.SetMaxScrollY(*v)
	}
	return _u
}

// AddMaxScrollY adds value to the "max_scroll_y" field.
func (_u *StepUpdate) AddMaxScrollY(v int) *StepUpdate {
	_u.mutation.AddMaxScrollY(v)
	return _u
}

// ClearMaxScrollY clears the value of the "max_scroll_y" field.
func (_u *StepUpdate) ClearMaxScrollY() *StepUpdate {
	_u.mutation.ClearMaxScrollY()
	return _u
}

// SetLoadTimeMs sets the "load_time_ms" field.
func (_u *StepUpdate) SetLoadTimeMs(v int) *StepUpdate {
	_u.mutation.ResetLoadTimeMs()
	_u.mutation.SetLoadTimeMs(v)
	return _u
}

// SetNillableLoadTimeMs sets the "load_time_ms" field if the given value is not nil.
func (_u *StepUpdate) SetNillableLoadTimeMs(v *int) *StepUpdate {
	if v != nil {
		_u.SetLoadTimeMs(*v)
	}
	return _u
}

// AddLoadTimeMs adds value to the "load_time_ms" field.
func (_u *StepUpdate) AddLoadTimeMs(v int) *StepUpdate {
	_u.mutation.AddLoadTimeMs(v)
	return _u
}

// ClearLoadTimeMs clears the value of the "load_time_ms" field.
func (_u *StepUpdate) ClearLoadTimeMs() *StepUpdate {
	_u.mutation.ClearLoadTimeMs()
	return _u
}

// SetFirstPaintMs sets the "first_paint_ms" field.
func (_u *StepUpdate) SetFirstPaintMs(v int) *StepUpdate {
	_u.mutation.ResetFirstPaintMs()
	_u.mutation.SetFirstPaintMs(v)
	return _u
}

// SetNillableFirstPaintMs sets the "first_paint_ms" field if the given value is not nil.
func (_u *StepUpdate) SetNillableFirstPaintMs(v *int) *StepUpdate {
	if v != nil {
		_u.SetFirstPaintMs(*v)
	}
	return _u
}

// AddFirstPaintMs adds value to the "first_paint_ms" field.
func (_u *StepUpdate) AddFirstPaintMs(v int) *StepUpdate {
	_u.mutation.AddFirstPaintMs(v)
	return _u
}

// ClearFirstPaintMs clears the value of the "first_paint_ms" field.
func (_u *StepUpdate) ClearFirstPaintMs() *StepUpdate {
	_u.mutation.ClearFirstPaintMs()
	return _u
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_u *StepUpdate) AddIssueIDs(ids ...string) *StepUpdate {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_u *StepUpdate) AddIssues(v ...*Issue) *StepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdate) Mutation() *StepMutation {
	return _u.mutation
}

// ClearIssues clears all "issues" edges to the Issue entity.
func (_u *StepUpdate) ClearIssues() *StepUpdate {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to Issue entities by IDs.
func (_u *StepUpdate) RemoveIssueIDs(ids ...string) *StepUpdate {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to Issue entities.
func (_u *StepUpdate) RemoveIssues(v ...*Issue) *StepUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdate) check() error {
	if v, ok := _u.mutation.EmotionalState(); ok {
		if err := step.EmotionalStateValidator(v); err != nil {
			return &ValidationError{Name: "emotional_state", err: fmt.Errorf(`ent: validator failed for field "Step.emotional_state": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.session"`)
	}
	return nil
}

func (_u *StepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageURL(); ok {
		_spec.SetField(step.FieldPageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageTitle(); ok {
		_spec.SetField(step.FieldPageTitle, field.TypeString, value)
	}
	if _u.mutation.PageTitleCleared() {
		_spec.ClearField(step.FieldPageTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ScreenshotRef(); ok {
		_spec.SetField(step.FieldScreenshotRef, field.TypeString, value)
	}
	if _u.mutation.ScreenshotRefCleared() {
		_spec.ClearField(step.FieldScreenshotRef, field.TypeString)
	}
	if value, ok := _u.mutation.ThinkAloud(); ok {
		_spec.SetField(step.FieldThinkAloud, field.TypeString, value)
	}
	if _u.mutation.ThinkAloudCleared() {
		_spec.ClearField(step.FieldThinkAloud, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(step.FieldAction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(step.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(step.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaskProgress(); ok {
		_spec.SetField(step.FieldTaskProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskProgress(); ok {
		_spec.AddField(step.FieldTaskProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmotionalState(); ok {
		_spec.SetField(step.FieldEmotionalState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClickX(); ok {
		_spec.SetField(step.FieldClickX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickX(); ok {
		_spec.AddField(step.FieldClickX, field.TypeInt, value)
	}
	if _u.mutation.ClickXCleared() {
		_spec.ClearField(step.FieldClickX, field.TypeInt)
	}
	if value, ok := _u.mutation.ClickY(); ok {
		_spec.SetField(step.FieldClickY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickY(); ok {
		_spec.AddField(step.FieldClickY, field.TypeInt, value)
	}
	if _u.mutation.ClickYCleared() {
		_spec.ClearField(step.FieldClickY, field.TypeInt)
	}
	if value, ok := _u.mutation.ViewportW(); ok {
		_spec.SetField(step.FieldViewportW, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViewportW(); ok {
		_spec.AddField(step.FieldViewportW, field.TypeInt, value)
	}
	if _u.mutation.ViewportWCleared() {
		_spec.ClearField(step.FieldViewportW, field.TypeInt)
	}
	if value, ok := _u.mutation.ViewportH(); ok {
		_spec.SetField(step.FieldViewportH, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViewportH(); ok {
		_spec.AddField(step.FieldViewportH, field.TypeInt, value)
	}
	if _u.mutation.ViewportHCleared() {
		_spec.ClearField(step.FieldViewportH, field.TypeInt)
	}
	if value, ok := _u.mutation.ScrollY(); ok {
		_spec.SetField(step.FieldScrollY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScrollY(); ok {
		_spec.AddField(step.FieldScrollY, field.TypeInt, value)
	}
	if _u.mutation.ScrollYCleared() {
		_spec.ClearField(step.FieldScrollY, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxScrollY(); ok {
		_spec.SetField(step.FieldMaxScrollY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScrollY(); ok {
		_spec.AddField(step.FieldMaxScrollY, field.TypeInt, value)
	}
	if _u.mutation.MaxScrollYCleared() {
		_spec.ClearField(step.FieldMaxScrollY, field.TypeInt)
	}
	if value, ok := _u.mutation.LoadTimeMs(); ok {
		_spec.SetField(step.FieldLoadTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoadTimeMs(); ok {
		_spec.AddField(step.FieldLoadTimeMs, field.TypeInt, value)
	}
	if _u.mutation.LoadTimeMsCleared() {
		_spec.ClearField(step.FieldLoadTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.FirstPaintMs(); ok {
		_spec.SetField(step.FieldFirstPaintMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstPaintMs(); ok {
		_spec.AddField(step.FieldFirstPaintMs, field.TypeInt, value)
	}
	if _u.mutation.FirstPaintMsCleared() {
		_spec.ClearField(step.FieldFirstPaintMs, field.TypeInt)
	}
	if _u.mutation.IssuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.IssuesTable,
			Columns: []string{step.IssuesColumn},
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
			Table:   step.IssuesTable,
			Columns: []string{step.IssuesColumn},
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
			Table:   step.IssuesTable,
			Columns: []string{step.IssuesColumn},
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
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StepUpdateOne is the builder for updating a single Step entity.
type StepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StepMutation
}

// SetPageURL sets the "page_url" field.
func (_u *StepUpdateOne) SetPageURL(v string) *StepUpdateOne {
	_u.mutation.SetPageURL(v)
	return _u
}

// SetNillablePageURL sets the "page_url" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillablePageURL(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetPageURL(*v)
	}
	return _u
}

// SetPageTitle sets the "page_title" field.
func (_u *StepUpdateOne) SetPageTitle(v string) *StepUpdateOne {
	_u.mutation.SetPageTitle(v)
	return _u
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillablePageTitle(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetPageTitle(*v)
	}
	return _u
}

// ClearPageTitle clears the value of the "page_title" field.
func (_u *StepUpdateOne) ClearPageTitle() *StepUpdateOne {
	_u.mutation.ClearPageTitle()
	return _u
}

// SetScreenshotRef sets the "screenshot_ref" field.
func (_u *StepUpdateOne) SetScreenshotRef(v string) *StepUpdateOne {
	_u.mutation.SetScreenshotRef(v)
	return _u
}

// SetNillableScreenshotRef sets the "screenshot_ref" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableScreenshotRef(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetScreenshotRef(*v)
	}
	return _u
}

// ClearScreenshotRef clears the value of the "screenshot_ref" field.
func (_u *StepUpdateOne) ClearScreenshotRef() *StepUpdateOne {
	_u.mutation.ClearScreenshotRef()
	return _u
}

// SetThinkAloud sets the "think_aloud" field.
func (_u *StepUpdateOne) SetThinkAloud(v string) *StepUpdateOne {
	_u.mutation.SetThinkAloud(v)
	return _u
}

// SetNillableThinkAloud sets the "think_aloud" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableThinkAloud(v *string) *StepUpdateOne {
	if v != nil {
		_u.SetThinkAloud(*v)
	}
	return _u
}

// ClearThinkAloud clears the value of the "think_aloud" field.
func (_u *StepUpdateOne) ClearThinkAloud() *StepUpdateOne {
	_u.mutation.ClearThinkAloud()
	return _u
}

// SetAction sets the "action" field.
func (_u *StepUpdateOne) SetAction(v map[string]interface{}) *StepUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *StepUpdateOne) SetConfidence(v float64) *StepUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableConfidence(v *float64) *StepUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *StepUpdateOne) AddConfidence(v float64) *StepUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetTaskProgress sets the "task_progress" field.
func (_u *StepUpdateOne) SetTaskProgress(v int) *StepUpdateOne {
	_u.mutation.ResetTaskProgress()
	_u.mutation.SetTaskProgress(v)
	return _u
}

// SetNillableTaskProgress sets the "task_progress" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableTaskProgress(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetTaskProgress(*v)
	}
	return _u
}

// AddTaskProgress adds value to the "task_progress" field.
func (_u *StepUpdateOne) AddTaskProgress(v int) *StepUpdateOne {
	_u.mutation.AddTaskProgress(v)
	return _u
}

// SetEmotionalState sets the "emotional_state" field.
func (_u *StepUpdateOne) SetEmotionalState(v step.EmotionalState) *StepUpdateOne {
	_u.mutation.SetEmotionalState(v)
	return _u
}

// SetNillableEmotionalState sets the "emotional_state" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableEmotionalState(v *step.EmotionalState) *StepUpdateOne {
	if v != nil {
		_u.SetEmotionalState(*v)
	}
	return _u
}

// SetClickX sets the "click_x" field.
func (_u *StepUpdateOne) SetClickX(v int) *StepUpdateOne {
	_u.mutation.ResetClickX()
	_u.mutation.SetClickX(v)
	return _u
}

// SetNillableClickX sets the "click_x" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableClickX(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetClickX(*v)
	}
	return _u
}

// AddClickX adds value to the "click_x" field.
func (_u *StepUpdateOne) AddClickX(v int) *StepUpdateOne {
	_u.mutation.AddClickX(v)
	return _u
}

// ClearClickX clears the value of the "click_x" field.
func (_u *StepUpdateOne) ClearClickX() *StepUpdateOne {
	_u.mutation.ClearClickX()
	return _u
}

// SetClickY sets the "click_y" field.
func (_u *StepUpdateOne) SetClickY(v int) *StepUpdateOne {
	_u.mutation.ResetClickY()
	_u.mutation.SetClickY(v)
	return _u
}

// SetNillableClickY sets the "click_y" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableClickY(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetClickY(*v)
	}
	return _u
}

// AddClickY adds value to the "click_y" field.
func (_u *StepUpdateOne) AddClickY(v int) *StepUpdateOne {
	_u.mutation.AddClickY(v)
	return _u
}

// ClearClickY clears the value of the "click_y" field.
func (_u *StepUpdateOne) ClearClickY() *StepUpdateOne {
	_u.mutation.ClearClickY()
	return _u
}

// SetViewportW sets the "viewport_w" field.
func (_u *StepUpdateOne) SetViewportW(v int) *StepUpdateOne {
	_u.mutation.ResetViewportW()
	_u.mutation.SetViewportW(v)
	return _u
}

// SetNillableViewportW sets the "viewport_w" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableViewportW(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetViewportW(*v)
	}
	return _u
}

// AddViewportW adds value to the "viewport_w" field.
func (_u *StepUpdateOne) AddViewportW(v int) *StepUpdateOne {
	_u.mutation.AddViewportW(v)
	return _u
}

// ClearViewportW clears the value of the "viewport_w" field.
func (_u *StepUpdateOne) ClearViewportW() *StepUpdateOne {
	_u.mutation.ClearViewportW()
	return _u
}

// SetViewportH sets the "viewport_h" field.
func (_u *StepUpdateOne) SetViewportH(v int) *StepUpdateOne {
	_u.mutation.ResetViewportH()
	_u.mutation.SetViewportH(v)
	return _u
}

// SetNillableViewportH sets the "viewport_h" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableViewportH(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetViewportH(*v)
	}
	return _u
}

// AddViewportH adds value to the "viewport_h" field.
func (_u *StepUpdateOne) AddViewportH(v int) *StepUpdateOne {
	_u.mutation.AddViewportH(v)
	return _u
}

// ClearViewportH clears the value of the "viewport_h" field.
func (_u *StepUpdateOne) ClearViewportH() *StepUpdateOne {
	_u.mutation.ClearViewportH()
	return _u
}

// SetScrollY sets the "scroll_y" field.
func (_u *StepUpdateOne) SetScrollY(v int) *StepUpdateOne {
	_u.mutation.ResetScrollY()
	_u.mutation.SetScrollY(v)
	return _u
}

// SetNillableScrollY sets the "scroll_y" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableScrollY(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetScrollY(*v)
	}
	return _u
}

// AddScrollY adds value to the "scroll_y" field.
func (_u *StepUpdateOne) AddScrollY(v int) *StepUpdateOne {
	_u.mutation.AddScrollY(v)
	return _u
}

// ClearScrollY clears the value of the "scroll_y" field.
func (_u *StepUpdateOne) ClearScrollY() *StepUpdateOne {
	_u.mutation.ClearScrollY()
	return _u
}

// SetMaxScrollY sets the "max_scroll_y" field.
func (_u *StepUpdateOne) SetMaxScrollY(v int) *StepUpdateOne {
	_u.mutation.ResetMaxScrollY()
	_u.mutation.SetMaxScrollY(v)
	return _u
}

// SetNillableMaxScrollY sets the "max_scroll_y" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableMaxScrollY(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetMaxScrollY(*v)
	}
	return _u
}

// AddMaxScrollY adds value to the "max_scroll_y" field.
func (_u *StepUpdateOne) AddMaxScrollY(v int) *StepUpdateOne {
	_u.mutation.AddMaxScrollY(v)
	return _u
}

// ClearMaxScrollY clears the value of the "max_scroll_y" field.
func (_u *StepUpdateOne) ClearMaxScrollY() *StepUpdateOne {
	_u.mutation.ClearMaxScrollY()
	return _u
}

// SetLoadTimeMs sets the "load_time_ms" field.
func (_u *StepUpdateOne) SetLoadTimeMs(v int) *StepUpdateOne {
	_u.mutation.ResetLoadTimeMs()
	_u.mutation.SetLoadTimeMs(v)
	return _u
}

// SetNillableLoadTimeMs sets the "load_time_ms" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableLoadTimeMs(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetLoadTimeMs(*v)
	}
	return _u
}

// AddLoadTimeMs adds value to the "load_time_ms" field.
func (_u *StepUpdateOne) AddLoadTimeMs(v int) *StepUpdateOne {
	_u.mutation.AddLoadTimeMs(v)
	return _u
}

// ClearLoadTimeMs clears the value of the "load_time_ms" field.
func (_u *StepUpdateOne) ClearLoadTimeMs() *StepUpdateOne {
	_u.mutation.ClearLoadTimeMs()
	return _u
}

// SetFirstPaintMs sets the "first_paint_ms" field.
func (_u *StepUpdateOne) SetFirstPaintMs(v int) *StepUpdateOne {
	_u.mutation.ResetFirstPaintMs()
	_u.mutation.SetFirstPaintMs(v)
	return _u
}

// SetNillableFirstPaintMs sets the "first_paint_ms" field if the given value is not nil.
func (_u *StepUpdateOne) SetNillableFirstPaintMs(v *int) *StepUpdateOne {
	if v != nil {
		_u.SetFirstPaintMs(*v)
	}
	return _u
}

// AddFirstPaintMs adds value to the "first_paint_ms" field.
func (_u *StepUpdateOne) AddFirstPaintMs(v int) *StepUpdateOne {
	_u.mutation.AddFirstPaintMs(v)
	return _u
}

// ClearFirstPaintMs clears the value of the "first_paint_ms" field.
func (_u *StepUpdateOne) ClearFirstPaintMs() *StepUpdateOne {
	_u.mutation.ClearFirstPaintMs()
	return _u
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_u *StepUpdateOne) AddIssueIDs(ids ...string) *StepUpdateOne {
	_u.mutation.AddIssueIDs(ids...)
	return _u
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_u *StepUpdateOne) AddIssues(v ...*Issue) *StepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddIssueIDs(ids...)
}

// Mutation returns the StepMutation object of the builder.
func (_u *StepUpdateOne) Mutation() *StepMutation {
	return _u.mutation
}

// ClearIssues clears all "issues" edges to the Issue entity.
func (_u *StepUpdateOne) ClearIssues() *StepUpdateOne {
	_u.mutation.ClearIssues()
	return _u
}

// RemoveIssueIDs removes the "issues" edge to Issue entities by IDs.
func (_u *StepUpdateOne) RemoveIssueIDs(ids ...string) *StepUpdateOne {
	_u.mutation.RemoveIssueIDs(ids...)
	return _u
}

// RemoveIssues removes "issues" edges to Issue entities.
func (_u *StepUpdateOne) RemoveIssues(v ...*Issue) *StepUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveIssueIDs(ids...)
}

// Where appends a list predicates to the StepUpdate builder.
func (_u *StepUpdateOne) Where(ps ...predicate.Step) *StepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StepUpdateOne) Select(field string, fields ...string) *StepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Step entity.
func (_u *StepUpdateOne) Save(ctx context.Context) (*Step, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StepUpdateOne) SaveX(ctx context.Context) *Step {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StepUpdateOne) check() error {
	if v, ok := _u.mutation.EmotionalState(); ok {
		if err := step.EmotionalStateValidator(v); err != nil {
			return &ValidationError{Name: "emotional_state", err: fmt.Errorf(`ent: validator failed for field "Step.emotional_state": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Step.session"`)
	}
	return nil
}

func (_u *StepUpdateOne) sqlSave(ctx context.Context) (_node *Step, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(step.Table, step.Columns, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Step.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, step.FieldID)
		for _, f := range fields {
			if !step.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != step.FieldID {
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
	if value, ok := _u.mutation.PageURL(); ok {
		_spec.SetField(step.FieldPageURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.PageTitle(); ok {
		_spec.SetField(step.FieldPageTitle, field.TypeString, value)
	}
	if _u.mutation.PageTitleCleared() {
		_spec.ClearField(step.FieldPageTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ScreenshotRef(); ok {
		_spec.SetField(step.FieldScreenshotRef, field.TypeString, value)
	}
	if _u.mutation.ScreenshotRefCleared() {
		_spec.ClearField(step.FieldScreenshotRef, field.TypeString)
	}
	if value, ok := _u.mutation.ThinkAloud(); ok {
		_spec.SetField(step.FieldThinkAloud, field.TypeString, value)
	}
	if _u.mutation.ThinkAloudCleared() {
		_spec.ClearField(step.FieldThinkAloud, field.TypeString)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(step.FieldAction, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(step.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(step.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaskProgress(); ok {
		_spec.SetField(step.FieldTaskProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskProgress(); ok {
		_spec.AddField(step.FieldTaskProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmotionalState(); ok {
		_spec.SetField(step.FieldEmotionalState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ClickX(); ok {
		_spec.SetField(step.FieldClickX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickX(); ok {
		_spec.AddField(step.FieldClickX, field.TypeInt, value)
	}
	if _u.mutation.ClickXCleared() {
		_spec.ClearField(step.FieldClickX, field.TypeInt)
	}
	if value, ok := _u.mutation.ClickY(); ok {
		_spec.SetField(step.FieldClickY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickY(); ok {
		_spec.AddField(step.FieldClickY, field.TypeInt, value)
	}
	if _u.mutation.ClickYCleared() {
		_spec.ClearField(step.FieldClickY, field.TypeInt)
	}
	if value, ok := _u.mutation.ViewportW(); ok {
		_spec.SetField(step.FieldViewportW, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViewportW(); ok {
		_spec.AddField(step.FieldViewportW, field.TypeInt, value)
	}
	if _u.mutation.ViewportWCleared() {
		_spec.ClearField(step.FieldViewportW, field.TypeInt)
	}
	if value, ok := _u.mutation.ViewportH(); ok {
		_spec.SetField(step.FieldViewportH, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedViewportH(); ok {
		_spec.AddField(step.FieldViewportH, field.TypeInt, value)
	}
	if _u.mutation.ViewportHCleared() {
		_spec.ClearField(step.FieldViewportH, field.TypeInt)
	}
	if value, ok := _u.mutation.ScrollY(); ok {
		_spec.SetField(step.FieldScrollY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScrollY(); ok {
		_spec.AddField(step.FieldScrollY, field.TypeInt, value)
	}
	if _u.mutation.ScrollYCleared() {
		_spec.ClearField(step.FieldScrollY, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxScrollY(); ok {
		_spec.SetField(step.FieldMaxScrollY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScrollY(); ok {
		_spec.AddField(step.FieldMaxScrollY, field.TypeInt, value)
	}
	if _u.mutation.MaxScrollYCleared() {
		_spec.ClearField(step.FieldMaxScrollY, field.TypeInt)
	}
	if value, ok := _u.mutation.LoadTimeMs(); ok {
		_spec.SetField(step.FieldLoadTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoadTimeMs(); ok {
		_spec.AddField(step.FieldLoadTimeMs, field.TypeInt, value)
	}
	if _u.mutation.LoadTimeMsCleared() {
		_spec.ClearField(step.FieldLoadTimeMs, field.TypeInt)
	}
	if value, ok := _u.mutation.FirstPaintMs(); ok {
		_spec.SetField(step.FieldFirstPaintMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstPaintMs(); ok {
		_spec.AddField(step.FieldFirstPaintMs, field.TypeInt, value)
	}
	if _u.mutation.FirstPaintMsCleared() {
		_spec.ClearField(step.FieldFirstPaintMs, field.TypeInt)
	}
	if _u.mutation.IssuesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   step.IssuesTable,
			Columns: []string{step.IssuesColumn},
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
			Table:   step.IssuesTable,
			Columns: []string{step.IssuesColumn},
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
			Table:   step.IssuesTable,
			Columns: []string{step.IssuesColumn},
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
	_node = &Step{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{step.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
