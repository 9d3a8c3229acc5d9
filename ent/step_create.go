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
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/step"
)

// StepCreate is the builder for creating a Step entity.
type StepCreate struct {
	config
	mutation *StepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *StepCreate) SetSessionID(v string) *StepCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *StepCreate) SetStepNumber(v int) *StepCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetPageURL sets the "page_url" field.
func (_c *StepCreate) SetPageURL(v string) *StepCreate {
	_c.mutation.SetPageURL(v)
	return _c
}

// SetPageTitle sets the "page_title" field.
func (_c *StepCreate) SetPageTitle(v string) *StepCreate {
	_c.mutation.SetPageTitle(v)
	return _c
}

// SetNillablePageTitle sets the "page_title" field if the given value is not nil.
func (_c *StepCreate) SetNillablePageTitle(v *string) *StepCreate {
	if v != nil {
		_c.SetPageTitle(*v)
	}
	return _c
}

// SetScreenshotRef sets the "screenshot_ref" field.
func (_c *StepCreate) SetScreenshotRef(v string) *StepCreate {
	_c.mutation.SetScreenshotRef(v)
	return _c
}

// SetNillableScreenshotRef sets the "screenshot_ref" field if the given value is not nil.
func (_c *StepCreate) SetNillableScreenshotRef(v *string) *StepCreate {
	if v != nil {
		_c.SetScreenshotRef(*v)
	}
	return _c
}

// SetThinkAloud sets the "think_aloud" field.
func (_c *StepCreate) SetThinkAloud(v string) *StepCreate {
	_c.mutation.SetThinkAloud(v)
	return _c
}

// SetNillableThinkAloud sets the "think_aloud" field if the given value is not nil.
func (_c *StepCreate) SetNillableThinkAloud(v *string) *StepCreate {
	if v != nil {
		_c.SetThinkAloud(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *StepCreate) SetAction(v map[string]interface{}) *StepCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *StepCreate) SetConfidence(v float64) *StepCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *StepCreate) SetNillableConfidence(v *float64) *StepCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetTaskProgress sets the "task_progress" field.
func (_c *StepCreate) SetTaskProgress(v int) *StepCreate {
	_c.mutation.SetTaskProgress(v)
	return _c
}

// SetNillableTaskProgress sets the "task_progress" field if the given value is not nil.
func (_c *StepCreate) SetNillableTaskProgress(v *int) *StepCreate {
	if v != nil {
		_c.SetTaskProgress(*v)
	}
	return _c
}

// SetEmotionalState sets the "emotional_state" field.
func (_c *StepCreate) SetEmotionalState(v step.EmotionalState) *StepCreate {
	_c.mutation.SetEmotionalState(v)
	return _c
}

// SetNillableEmotionalState sets the "emotional_state" field if the given value is not nil.
func (_c *StepCreate) SetNillableEmotionalState(v *step.EmotionalState) *StepCreate {
	if v != nil {
		_c.SetEmotionalState(*v)
	}
	return _c
}

// SetClickX sets the "click_x" field.
func (_c *StepCreate) SetClickX(v int) *StepCreate {
	_c.mutation.SetClickX(v)
	return _c
}

// SetNillableClickX sets the "click_x" field if the given value is not nil.
func (_c *StepCreate) SetNillableClickX(v *int) *StepCreate {
	if v != nil {
		_c.SetClickX(*v)
	}
	return _c
}

// SetClickY sets the "click_y" field.
func (_c *StepCreate) SetClickY(v int) *StepCreate {
	_c.mutation.SetClickY(v)
	return _c
}

// SetNillableClickY sets the "click_y" field if the given value is not nil.
func (_c *StepCreate) SetNillableClickY(v *int) *StepCreate {
	if v != nil {
		_c.SetClickY(*v)
	}
	return _c
}

// SetViewportW sets the "viewport_w" field.
func (_c *StepCreate) SetViewportW(v int) *StepCreate {
	_c.mutation.SetViewportW(v)
	return _c
}

// SetNillableViewportW sets the "viewport_w" field if the given value is not nil.
func (_c *StepCreate) SetNillableViewportW(v *int) *StepCreate {
	if v != nil {
		_c.SetViewportW(*v)
	}
	return _c
}

// SetViewportH sets the "viewport_h" field.
func (_c *StepCreate) SetViewportH(v int) *StepCreate {
	_c.mutation.SetViewportH(v)
	return _c
}

// SetNillableViewportH sets the "viewport_h" field if the given value is not nil.
func (_c *StepCreate) SetNillableViewportH(v *int) *StepCreate {
	if v != nil {
		_c.SetViewportH(*v)
	}
	return _c
}

// SetScrollY sets the "scroll_y" field.
func (_c *StepCreate) SetScrollY(v int) *StepCreate {
	_c.mutation.SetScrollY(v)
	return _c
}

// SetNillableScrollY sets the "scroll_y" field if the given value is not nil.
func (_c *StepCreate) SetNillableScrollY(v *int) *StepCreate {
	if v != nil {
		_c.SetScrollY(*v)
	}
	return _c
}

// SetMaxScrollY sets the "max_scroll_y" field.
func (_c *StepCreate) SetMaxScrollY(v int) *StepCreate {
	_c.mutation.SetMaxScrollY(v)
	return _c
}

// SetNillableMaxScrollY sets the "max_scroll_y" field if the given value is not nil.
func (_c *StepCreate) SetNillableMaxScrollY(v *int) *StepCreate {
	if v != nil {
		_c.SetMaxScrollY(*v)
	}
	return _c
}

// SetLoadTimeMs sets the "load_time_ms" field.
func (_c *StepCreate) SetLoadTimeMs(v int) *StepCreate {
	_c.mutation.SetLoadTimeMs(v)
	return _c
}

// SetNillableLoadTimeMs sets the "load_time_ms" field if the given value is not nil.
func (_c *StepCreate) SetNillableLoadTimeMs(v *int) *StepCreate {
	if v != nil {
		_c.SetLoadTimeMs(*v)
	}
	return _c
}

// SetFirstPaintMs sets the "first_paint_ms" field.
func (_c *StepCreate) SetFirstPaintMs(v int) *StepCreate {
	_c.mutation.SetFirstPaintMs(v)
	return _c
}

// SetNillableFirstPaintMs sets the "first_paint_ms" field if the given value is not nil.
func (_c *StepCreate) SetNillableFirstPaintMs(v *int) *StepCreate {
	if v != nil {
		_c.SetFirstPaintMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StepCreate) SetCreatedAt(v time.Time) *StepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StepCreate) SetNillableCreatedAt(v *time.Time) *StepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StepCreate) SetID(v string) *StepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *StepCreate) SetSession(v *Session) *StepCreate {
	return _c.SetSessionID(v.ID)
}

// AddIssueIDs adds the "issues" edge to the Issue entity by IDs.
func (_c *StepCreate) AddIssueIDs(ids ...string) *StepCreate {
	_c.mutation.AddIssueIDs(ids...)
	return _c
}

// AddIssues adds the "issues" edges to the Issue entity.
func (_c *StepCreate) AddIssues(v ...*Issue) *StepCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddIssueIDs(ids...)
}

// Mutation returns the StepMutation object of the builder.
func (_c *StepCreate) Mutation() *StepMutation {
	return _c.mutation
}

// Save creates the Step in the database.
func (_c *StepCreate) Save(ctx context.Context) (*Step, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StepCreate) SaveX(ctx context.Context) *Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StepCreate) defaults() {
	if _, ok := _c.mutation.Confidence(); !ok {
		v := step.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.TaskProgress(); !ok {
		v := step.DefaultTaskProgress
		_c.mutation.SetTaskProgress(v)
	}
	if _, ok := _c.mutation.EmotionalState(); !ok {
		v := step.DefaultEmotionalState
		_c.mutation.SetEmotionalState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := step.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StepCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Step.session_id"`)}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "Step.step_number"`)}
	}
	if v, ok := _c.mutation.StepNumber(); ok {
		if err := step.StepNumberValidator(v); err != nil {
			return &ValidationError{Name: "step_number", err: fmt.Errorf(`ent: validator failed for field "Step.step_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageURL(); !ok {
		return &ValidationError{Name: "page_url", err: errors.New(`ent: missing required field "Step.page_url"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "Step.action"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Step.confidence"`)}
	}
	if _, ok := _c.mutation.TaskProgress(); !ok {
		return &ValidationError{Name: "task_progress", err: errors.New(`ent: missing required field "Step.task_progress"`)}
	}
	if _, ok := _c.mutation.EmotionalState(); !ok {
		return &ValidationError{Name: "emotional_state", err: errors.New(`ent: missing required field "Step.emotional_state"`)}
	}
	if v, ok := _c.mutation.EmotionalState(); ok {
		if err := step.EmotionalStateValidator(v); err != nil {
			return &ValidationError{Name: "emotional_state", err: fmt.Errorf(`ent: validator failed for field "Step.emotional_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Step.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Step.session"`)}
	}
	return nil
}

func (_c *StepCreate) sqlSave(ctx context.Context) (*Step, error) {
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
			return nil, fmt.Errorf("unexpected Step.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StepCreate) createSpec() (*Step, *sqlgraph.CreateSpec) {
	var (
		_node = &Step{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(step.Table, sqlgraph.NewFieldSpec(step.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(step.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.PageURL(); ok {
		_spec.SetField(step.FieldPageURL, field.TypeString, value)
		_node.PageURL = value
	}
	if value, ok := _c.mutation.PageTitle(); ok {
		_spec.SetField(step.FieldPageTitle, field.TypeString, value)
		_node.PageTitle = value
	}
	if value, ok := _c.mutation.ScreenshotRef(); ok {
		_spec.SetField(step.FieldScreenshotRef, field.TypeString, value)
		_node.ScreenshotRef = value
	}
	if value, ok := _c.mutation.ThinkAloud(); ok {
		_spec.SetField(step.FieldThinkAloud, field.TypeString, value)
		_node.ThinkAloud = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(step.FieldAction, field.TypeJSON, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(step.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.TaskProgress(); ok {
		_spec.SetField(step.FieldTaskProgress, field.TypeInt, value)
		_node.TaskProgress = value
	}
	if value, ok := _c.mutation.EmotionalState(); ok {
		_spec.SetField(step.FieldEmotionalState, field.TypeEnum, value)
		_node.EmotionalState = value
	}
	if value, ok := _c.mutation.ClickX(); ok {
		_spec.SetField(step.FieldClickX, field.TypeInt, value)
		_node.ClickX = &value
	}
	if value, ok := _c.mutation.ClickY(); ok {
		_spec.SetField(step.FieldClickY, field.TypeInt, value)
		_node.ClickY = &value
	}
	if value, ok := _c.mutation.ViewportW(); ok {
		_spec.SetField(step.FieldViewportW, field.TypeInt, value)
		_node.ViewportW = &value
	}
	if value, ok := _c.mutation.ViewportH(); ok {
		_spec.SetField(step.FieldViewportH, field.TypeInt, value)
		_node.ViewportH = &value
	}
	if value, ok := _c.mutation.ScrollY(); ok {
		_spec.SetField(step.FieldScrollY, field.TypeInt, value)
		_node.ScrollY = &value
	}
	if value, ok := _c.mutation.MaxScrollY(); ok {
		_spec.SetField(step.FieldMaxScrollY, field.TypeInt, value)
		_node.MaxScrollY = &value
	}
	if value, ok := _c.mutation.LoadTimeMs(); ok {
		_spec.SetField(step.FieldLoadTimeMs, field.TypeInt, value)
		_node.LoadTimeMs = &value
	}
	if value, ok := _c.mutation.FirstPaintMs(); ok {
		_spec.SetField(step.FieldFirstPaintMs, field.TypeInt, value)
		_node.FirstPaintMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(step.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   step.SessionTable,
			Columns: []string{step.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.IssuesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreate) OnConflict(opts ...sql.ConflictOption) *StepUpsertOne {
	_c.conflict = opts
	return &StepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreate) OnConflictColumns(columns ...string) *StepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertOne{
		create: _c,
	}
}

type (
	// StepUpsertOne is the builder for "upsert"-ing
	//  one Step node.
	StepUpsertOne struct {
		create *StepCreate
	}

	// StepUpsert is the "OnConflict" setter.
	StepUpsert struct {
		*sql.UpdateSet
	}
)

// SetPageURL sets the "page_url" field.
func (u *StepUpsert) SetPageURL(v string) *StepUpsert {
	u.Set(step.FieldPageURL, v)
	return u
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *StepUpsert) UpdatePageURL() *StepUpsert {
	u.SetExcluded(step.FieldPageURL)
	return u
}

// SetPageTitle sets the "page_title" field.
func (u *StepUpsert) SetPageTitle(v string) *StepUpsert {
	u.Set(step.FieldPageTitle, v)
	return u
}

// UpdatePageTitle sets the "page_title" field to the value that was provided on create.
func (u *StepUpsert) UpdatePageTitle() *StepUpsert {
	u.SetExcluded(step.FieldPageTitle)
	return u
}

// ClearPageTitle clears the value of the "page_title" field.
func (u *StepUpsert) ClearPageTitle() *StepUpsert {
	u.SetNull(step.FieldPageTitle)
	return u
}

// SetScreenshotRef sets the "screenshot_ref" field.
func (u *StepUpsert) SetScreenshotRef(v string) *StepUpsert {
	u.Set(step.FieldScreenshotRef, v)
	return u
}

// UpdateScreenshotRef sets the "screenshot_ref" field to the value that was provided on create.
func (u *StepUpsert) UpdateScreenshotRef() *StepUpsert {
	u.SetExcluded(step.FieldScreenshotRef)
	return u
}

// ClearScreenshotRef clears the value of the "screenshot_ref" field.
func (u *StepUpsert) ClearScreenshotRef() *StepUpsert {
	u.SetNull(step.FieldScreenshotRef)
	return u
}

// SetThinkAloud sets the "think_aloud" field.
func (u *StepUpsert) SetThinkAloud(v string) *StepUpsert {
	u.Set(step.FieldThinkAloud, v)
	return u
}

// UpdateThinkAloud sets the "think_aloud" field to the value that was provided on create.
func (u *StepUpsert) UpdateThinkAloud() *StepUpsert {
	u.SetExcluded(step.FieldThinkAloud)
	return u
}

// ClearThinkAloud clears the value of the "think_aloud" field.
func (u *StepUpsert) ClearThinkAloud() *StepUpsert {
	u.SetNull(step.FieldThinkAloud)
	return u
}

// SetAction sets the "action" field.
func (u *StepUpsert) SetAction(v map[string]interface{}) *StepUpsert {
	u.Set(step.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *StepUpsert) UpdateAction() *StepUpsert {
	u.SetExcluded(step.FieldAction)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *StepUpsert) SetConfidence(v float64) *StepUpsert {
	u.Set(step.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *StepUpsert) UpdateConfidence() *StepUpsert {
	u.SetExcluded(step.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *StepUpsert) AddConfidence(v float64) *StepUpsert {
	u.Add(step.FieldConfidence, v)
	return u
}

// SetTaskProgress sets the "task_progress" field.
func (u *StepUpsert) SetTaskProgress(v int) *StepUpsert {
	u.Set(step.FieldTaskProgress, v)
	return u
}

// UpdateTaskProgress sets the "task_progress" field to the value that was provided on create.
func (u *StepUpsert) UpdateTaskProgress() *StepUpsert {
	u.SetExcluded(step.FieldTaskProgress)
	return u
}

// AddTaskProgress adds v to the "task_progress" field.
func (u *StepUpsert) AddTaskProgress(v int) *StepUpsert {
	u.Add(step.FieldTaskProgress, v)
	return u
}

// SetEmotionalState sets the "emotional_state" field.
func (u *StepUpsert) SetEmotionalState(v step.EmotionalState) *StepUpsert {
	u.Set(step.FieldEmotionalState, v)
	return u
}

// UpdateEmotionalState sets the "emotional_state" field to the value that was provided on create.
func (u *StepUpsert) UpdateEmotionalState() *StepUpsert {
	u.SetExcluded(step.FieldEmotionalState)
	return u
}

// SetClickX sets the "click_x" field.
func (u *StepUpsert) SetClickX(v int) *StepUpsert {
	u.Set(step.FieldClickX, v)
	return u
}

// UpdateClickX sets the "click_x" field to the value that was provided on create.
func (u *StepUpsert) UpdateClickX() *StepUpsert {
	u.SetExcluded(step.FieldClickX)
	return u
}

// AddClickX adds v to the "click_x" field.
func (u *StepUpsert) AddClickX(v int) *StepUpsert {
	u.Add(step.FieldClickX, v)
	return u
}

// ClearClickX clears the value of the "click_x" field.
func (u *StepUpsert) ClearClickX() *StepUpsert {
	u.SetNull(step.FieldClickX)
	return u
}

// SetClickY sets the "click_y" field.
func (u *StepUpsert) SetClickY(v int) *StepUpsert {
	u.Set(step.FieldClickY, v)
	return u
}

// UpdateClickY sets the "click_y" field to the value that was provided on create.
func (u *StepUpsert) UpdateClickY() *StepUpsert {
	u.SetExcluded(step.FieldClickY)
	return u
}

// AddClickY adds v to the "click_y" field.
func (u *StepUpsert) AddClickY(v int) *StepUpsert {
	u.Add(step.FieldClickY, v)
	return u
}

// ClearClickY clears the value of the "click_y" field.
func (u *StepUpsert) ClearClickY() *StepUpsert {
	u.SetNull(step.FieldClickY)
	return u
}

// SetViewportW sets the "viewport_w" field.
func (u *StepUpsert) SetViewportW(v int) *StepUpsert {
	u.Set(step.FieldViewportW, v)
	return u
}

// UpdateViewportW sets the "viewport_w" field to the value that was provided on create.
func (u *StepUpsert) UpdateViewportW() *StepUpsert {
	u.SetExcluded(step.FieldViewportW)
	return u
}

// AddViewportW adds v to the "viewport_w" field.
func (u *StepUpsert) AddViewportW(v int) *StepUpsert {
	u.Add(step.FieldViewportW, v)
	return u
}

// ClearViewportW clears the value of the "viewport_w" field.
func (u *StepUpsert) ClearViewportW() *StepUpsert {
	u.SetNull(step.FieldViewportW)
	return u
}

// SetViewportH sets the "viewport_h" field.
func (u *StepUpsert) SetViewportH(v int) *StepUpsert {
	u.Set(step.FieldViewportH, v)
	return u
}

// UpdateViewportH sets the "viewport_h" field to the value that was provided on create.
func (u *StepUpsert) UpdateViewportH() *StepUpsert {
	u.SetExcluded(step.FieldViewportH)
	return u
}

// AddViewportH adds v to the "viewport_h" field.
func (u *StepUpsert) AddViewportH(v int) *StepUpsert {
	u.Add(step.FieldViewportH, v)
	return u
}

// ClearViewportH clears the value of the "viewport_h" field.
func (u *StepUpsert) ClearViewportH() *StepUpsert {
	u.SetNull(step.FieldViewportH)
	return u
}

// SetScrollY sets the "scroll_y" field.
func (u *StepUpsert) SetScrollY(v int) *StepUpsert {
	u.Set(step.FieldScrollY, v)
	return u
}

// UpdateScrollY sets the "scroll_y" field to the value that was provided on create.
func (u *StepUpsert) UpdateScrollY() *StepUpsert {
	u.SetExcluded(step.FieldScrollY)
	return u
}

// AddScrollY adds v to the "scroll_y" field.
func (u *StepUpsert) AddScrollY(v int) *StepUpsert {
	u.Add(step.FieldScrollY, v)
	return u
}

// ClearScrollY clears the value of the "scroll_y" field.
func (u *StepUpsert) ClearScrollY() *StepUpsert {
	u.SetNull(step.FieldScrollY)
	return u
}

// SetMaxScrollY sets the "max_scroll_y" field.
func (u *StepUpsert) SetMaxScrollY(v int) *StepUpsert {
	u.Set(step.FieldMaxScrollY, v)
	return u
}

// UpdateMaxScrollY sets the "max_scroll_y" field to the value that was provided on create.
func (u *StepUpsert) UpdateMaxScrollY() *StepUpsert {
	u.SetExcluded(step.FieldMaxScrollY)
	return u
}

// AddMaxScrollY adds v to the "max_scroll_y" field.
func (u *StepUpsert) AddMaxScrollY(v int) *StepUpsert {
	u.Add(step.FieldMaxScrollY, v)
	return u
}

// ClearMaxScrollY clears the value of the "max_scroll_y" field.
func (u *StepUpsert) ClearMaxScrollY() *StepUpsert {
	u.SetNull(step.FieldMaxScrollY)
	return u
}

// SetLoadTimeMs sets the "load_time_ms" field.
func (u *StepUpsert) SetLoadTimeMs(v int) *StepUpsert {
	u.Set(step.FieldLoadTimeMs, v)
	return u
}

// UpdateLoadTimeMs sets the "load_time_ms" field to the value that was provided on create.
func (u *StepUpsert) UpdateLoadTimeMs() *StepUpsert {
	u.SetExcluded(step.FieldLoadTimeMs)
	return u
}

// AddLoadTimeMs adds v to the "load_time_ms" field.
func (u *StepUpsert) AddLoadTimeMs(v int) *StepUpsert {
	u.Add(step.FieldLoadTimeMs, v)
	return u
}

// ClearLoadTimeMs clears the value of the "load_time_ms" field.
func (u *StepUpsert) ClearLoadTimeMs() *StepUpsert {
	u.SetNull(step.FieldLoadTimeMs)
	return u
}

// SetFirstPaintMs sets the "first_paint_ms" field.
func (u *StepUpsert) SetFirstPaintMs(v int) *StepUpsert {
	u.Set(step.FieldFirstPaintMs, v)
	return u
}

// UpdateFirstPaintMs sets the "first_paint_ms" field to the value that was provided on create.
func (u *StepUpsert) UpdateFirstPaintMs() *StepUpsert {
	u.SetExcluded(step.FieldFirstPaintMs)
	return u
}

// AddFirstPaintMs adds v to the "first_paint_ms" field.
func (u *StepUpsert) AddFirstPaintMs(v int) *StepUpsert {
	u.Add(step.FieldFirstPaintMs, v)
	return u
}

// ClearFirstPaintMs clears the value of the "first_paint_ms" field.
func (u *StepUpsert) ClearFirstPaintMs() *StepUpsert {
	u.SetNull(step.FieldFirstPaintMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertOne) UpdateNewValues() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(step.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(step.FieldSessionID)
		}
		if _, exists := u.create.mutation.StepNumber(); exists {
			s.SetIgnore(step.FieldStepNumber)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(step.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StepUpsertOne) Ignore() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertOne) DoNothing() *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreate.OnConflict
// documentation for more info.
func (u *StepUpsertOne) Update(set func(*StepUpsert)) *StepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetPageURL sets the "page_url" field.
func (u *StepUpsertOne) SetPageURL(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetPageURL(v)
	})
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *StepUpsertOne) UpdatePageURL() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdatePageURL()
	})
}

// SetPageTitle sets the "page_title" field.
func (u *StepUpsertOne) SetPageTitle(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetPageTitle(v)
	})
}

// UpdatePageTitle sets the "page_title" field to the value that was provided on create.
func (u *StepUpsertOne) UpdatePageTitle() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdatePageTitle()
	})
}

// ClearPageTitle clears the value of the "page_title" field.
func (u *StepUpsertOne) ClearPageTitle() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearPageTitle()
	})
}

// SetScreenshotRef sets the "screenshot_ref" field.
func (u *StepUpsertOne) SetScreenshotRef(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetScreenshotRef(v)
	})
}

// UpdateScreenshotRef sets the "screenshot_ref" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateScreenshotRef() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateScreenshotRef()
	})
}

// ClearScreenshotRef clears the value of the "screenshot_ref" field.
func (u *StepUpsertOne) ClearScreenshotRef() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearScreenshotRef()
	})
}

// SetThinkAloud sets the "think_aloud" field.
func (u *StepUpsertOne) SetThinkAloud(v string) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetThinkAloud(v)
	})
}

// UpdateThinkAloud sets the "think_aloud" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateThinkAloud() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateThinkAloud()
	})
}

// ClearThinkAloud clears the value of the "think_aloud" field.
func (u *StepUpsertOne) ClearThinkAloud() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearThinkAloud()
	})
}

// SetAction sets the "action" field.
func (u *StepUpsertOne) SetAction(v map[string]interface{}) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateAction() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateAction()
	})
}

// SetConfidence sets the "confidence" field.
func (u *StepUpsertOne) SetConfidence(v float64) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *StepUpsertOne) AddConfidence(v float64) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateConfidence() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateConfidence()
	})
}

// SetTaskProgress sets the "task_progress" field.
func (u *StepUpsertOne) SetTaskProgress(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetTaskProgress(v)
	})
}

// AddTaskProgress adds v to the "task_progress" field.
func (u *StepUpsertOne) AddTaskProgress(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddTaskProgress(v)
	})
}

// UpdateTaskProgress sets the "task_progress" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateTaskProgress() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTaskProgress()
	})
}

// SetEmotionalState sets the "emotional_state" field.
func (u *StepUpsertOne) SetEmotionalState(v step.EmotionalState) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetEmotionalState(v)
	})
}

// UpdateEmotionalState sets the "emotional_state" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateEmotionalState() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateEmotionalState()
	})
}

// SetClickX sets the "click_x" field.
func (u *StepUpsertOne) SetClickX(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetClickX(v)
	})
}

// AddClickX adds v to the "click_x" field.
func (u *StepUpsertOne) AddClickX(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddClickX(v)
	})
}

// UpdateClickX sets the "click_x" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateClickX() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateClickX()
	})
}

// ClearClickX clears the value of the "click_x" field.
func (u *StepUpsertOne) ClearClickX() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearClickX()
	})
}

// SetClickY sets the "click_y" field.
func (u *StepUpsertOne) SetClickY(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetClickY(v)
	})
}

// AddClickY adds v to the "click_y" field.
func (u *StepUpsertOne) AddClickY(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddClickY(v)
	})
}

// UpdateClickY sets the "click_y" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateClickY() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateClickY()
	})
}

// ClearClickY clears the value of the "click_y" field.
func (u *StepUpsertOne) ClearClickY() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearClickY()
	})
}

// SetViewportW sets the "viewport_w" field.
func (u *StepUpsertOne) SetViewportW(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetViewportW(v)
	})
}

// AddViewportW adds v to the "viewport_w" field.
func (u *StepUpsertOne) AddViewportW(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddViewportW(v)
	})
}

// UpdateViewportW sets the "viewport_w" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateViewportW() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateViewportW()
	})
}

// ClearViewportW clears the value of the "viewport_w" field.
func (u *StepUpsertOne) ClearViewportW() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearViewportW()
	})
}

// SetViewportH sets the "viewport_h" field.
func (u *StepUpsertOne) SetViewportH(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetViewportH(v)
	})
}

// AddViewportH adds v to the "viewport_h" field.
func (u *StepUpsertOne) AddViewportH(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddViewportH(v)
	})
}

// UpdateViewportH sets the "viewport_h" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateViewportH() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateViewportH()
	})
}

// ClearViewportH clears the value of the "viewport_h" field.
func (u *StepUpsertOne) ClearViewportH() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearViewportH()
	})
}

// SetScrollY sets the "scroll_y" field.
func (u *StepUpsertOne) SetScrollY(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetScrollY(v)
	})
}

// AddScrollY adds v to the "scroll_y" field.
func (u *StepUpsertOne) AddScrollY(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddScrollY(v)
	})
}

// UpdateScrollY sets the "scroll_y" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateScrollY() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateScrollY()
	})
}

// ClearScrollY clears the value of the "scroll_y" field.
func (u *StepUpsertOne) ClearScrollY() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearScrollY()
	})
}

// SetMaxScrollY sets the "max_scroll_y" field.
func (u *StepUpsertOne) SetMaxScrollY(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetMaxScrollY(v)
	})
}

// AddMaxScrollY adds v to the "max_scroll_y" field.
func (u *StepUpsertOne) AddMaxScrollY(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddMaxScrollY(v)
	})
}

// UpdateMaxScrollY sets the "max_scroll_y" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateMaxScrollY() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateMaxScrollY()
	})
}

// ClearMaxScrollY clears the value of the "max_scroll_y" field.
func (u *StepUpsertOne) ClearMaxScrollY() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearMaxScrollY()
	})
}

// SetLoadTimeMs sets the "load_time_ms" field.
func (u *StepUpsertOne) SetLoadTimeMs(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetLoadTimeMs(v)
	})
}

// AddLoadTimeMs adds v to the "load_time_ms" field.
func (u *StepUpsertOne) AddLoadTimeMs(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddLoadTimeMs(v)
	})
}

// UpdateLoadTimeMs sets the "load_time_ms" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateLoadTimeMs() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateLoadTimeMs()
	})
}

// ClearLoadTimeMs clears the value of the "load_time_ms" field.
func (u *StepUpsertOne) ClearLoadTimeMs() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearLoadTimeMs()
	})
}

// SetFirstPaintMs sets the "first_paint_ms" field.
func (u *StepUpsertOne) SetFirstPaintMs(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.SetFirstPaintMs(v)
	})
}

// AddFirstPaintMs adds v to the "first_paint_ms" field.
func (u *StepUpsertOne) AddFirstPaintMs(v int) *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.AddFirstPaintMs(v)
	})
}

// UpdateFirstPaintMs sets the "first_paint_ms" field to the value that was provided on create.
func (u *StepUpsertOne) UpdateFirstPaintMs() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.UpdateFirstPaintMs()
	})
}

// ClearFirstPaintMs clears the value of the "first_paint_ms" field.
func (u *StepUpsertOne) ClearFirstPaintMs() *StepUpsertOne {
	return u.Update(func(s *StepUpsert) {
		s.ClearFirstPaintMs()
	})
}

// Exec executes the query.
func (u *StepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StepUpsertOne.ID is not supported by MySQL driver. Use StepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StepCreateBulk is the builder for creating many Step entities in bulk.
type StepCreateBulk struct {
	config
	err      error
	builders []*StepCreate
	conflict []sql.ConflictOption
}

// Save creates the Step entities in the database.
func (_c *StepCreateBulk) Save(ctx context.Context) ([]*Step, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Step, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StepMutation)
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
func (_c *StepCreateBulk) SaveX(ctx context.Context) []*Step {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Step.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StepUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflict(opts ...sql.ConflictOption) *StepUpsertBulk {
	_c.conflict = opts
	return &StepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StepCreateBulk) OnConflictColumns(columns ...string) *StepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StepUpsertBulk{
		create: _c,
	}
}

// StepUpsertBulk is the builder for "upsert"-ing
// a bulk of Step nodes.
type StepUpsertBulk struct {
	create *StepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(step.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StepUpsertBulk) UpdateNewValues() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(step.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(step.FieldSessionID)
			}
			if _, exists := b.mutation.StepNumber(); exists {
				s.SetIgnore(step.FieldStepNumber)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(step.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Step.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StepUpsertBulk) Ignore() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StepUpsertBulk) DoNothing() *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StepCreateBulk.OnConflict
// documentation for more info.
func (u *StepUpsertBulk) Update(set func(*StepUpsert)) *StepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StepUpsert{UpdateSet: update})
	}))
	return u
}

// SetPageURL sets the "page_url" field.
func (u *StepUpsertBulk) SetPageURL(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetPageURL(v)
	})
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdatePageURL() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdatePageURL()
	})
}

// SetPageTitle sets the "page_title" field.
func (u *StepUpsertBulk) SetPageTitle(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetPageTitle(v)
	})
}

// UpdatePageTitle sets the "page_title" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdatePageTitle() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdatePageTitle()
	})
}

// ClearPageTitle clears the value of the "page_title" field.
func (u *StepUpsertBulk) ClearPageTitle() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearPageTitle()
	})
}

// SetScreenshotRef sets the "screenshot_ref" field.
func (u *StepUpsertBulk) SetScreenshotRef(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetScreenshotRef(v)
	})
}

// UpdateScreenshotRef sets the "screenshot_ref" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateScreenshotRef() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateScreenshotRef()
	})
}

// ClearScreenshotRef clears the value of the "screenshot_ref" field.
func (u *StepUpsertBulk) ClearScreenshotRef() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearScreenshotRef()
	})
}

// SetThinkAloud sets the "think_aloud" field.
func (u *StepUpsertBulk) SetThinkAloud(v string) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetThinkAloud(v)
	})
}

// UpdateThinkAloud sets the "think_aloud" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateThinkAloud() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateThinkAloud()
	})
}

// ClearThinkAloud clears the value of the "think_aloud" field.
func (u *StepUpsertBulk) ClearThinkAloud() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearThinkAloud()
	})
}

// SetAction sets the "action" field.
func (u *StepUpsertBulk) SetAction(v map[string]interface{}) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateAction() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateAction()
	})
}

// SetConfidence sets the "confidence" field.
func (u *StepUpsertBulk) SetConfidence(v float64) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *StepUpsertBulk) AddConfidence(v float64) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateConfidence() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateConfidence()
	})
}

// SetTaskProgress sets the "task_progress" field.
func (u *StepUpsertBulk) SetTaskProgress(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetTaskProgress(v)
	})
}

// AddTaskProgress adds v to the "task_progress" field.
func (u *StepUpsertBulk) AddTaskProgress(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddTaskProgress(v)
	})
}

// UpdateTaskProgress sets the "task_progress" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateTaskProgress() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateTaskProgress()
	})
}

// SetEmotionalState sets the "emotional_state" field.
func (u *StepUpsertBulk) SetEmotionalState(v step.EmotionalState) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetEmotionalState(v)
	})
}

// UpdateEmotionalState sets the "emotional_state" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateEmotionalState() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateEmotionalState()
	})
}

// SetClickX sets the "click_x" field.
func (u *StepUpsertBulk) SetClickX(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetClickX(v)
	})
}

// AddClickX adds v to the "click_x" field.
func (u *StepUpsertBulk) AddClickX(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddClickX(v)
	})
}

// UpdateClickX sets the "click_x" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateClickX() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateClickX()
	})
}

// ClearClickX clears the value of the "click_x" field.
func (u *StepUpsertBulk) ClearClickX() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearClickX()
	})
}

// SetClickY sets the "click_y" field.
func (u *StepUpsertBulk) SetClickY(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetClickY(v)
	})
}

// AddClickY adds v to the "click_y" field.
func (u *StepUpsertBulk) AddClickY(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddClickY(v)
	})
}

// UpdateClickY sets the "click_y" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateClickY() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateClickY()
	})
}

// ClearClickY clears the value of the "click_y" field.
func (u *StepUpsertBulk) ClearClickY() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearClickY()
	})
}

// SetViewportW sets the "viewport_w" field.
func (u *StepUpsertBulk) SetViewportW(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetViewportW(v)
	})
}

// AddViewportW adds v to the "viewport_w" field.
func (u *StepUpsertBulk) AddViewportW(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddViewportW(v)
	})
}

// UpdateViewportW sets the "viewport_w" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateViewportW() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateViewportW()
	})
}

// ClearViewportW clears the value of the "viewport_w" field.
func (u *StepUpsertBulk) ClearViewportW() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearViewportW()
	})
}

// SetViewportH sets the "viewport_h" field.
func (u *StepUpsertBulk) SetViewportH(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetViewportH(v)
	})
}

// AddViewportH adds v to the "viewport_h" field.
func (u *StepUpsertBulk) AddViewportH(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddViewportH(v)
	})
}

// UpdateViewportH sets the "viewport_h" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateViewportH() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateViewportH()
	})
}

// ClearViewportH clears the value of the "viewport_h" field.
func (u *StepUpsertBulk) ClearViewportH() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearViewportH()
	})
}

// SetScrollY sets the "scroll_y" field.
func (u *StepUpsertBulk) SetScrollY(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetScrollY(v)
	})
}

// AddScrollY adds v to the "scroll_y" field.
func (u *StepUpsertBulk) AddScrollY(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddScrollY(v)
	})
}

// UpdateScrollY sets the "scroll_y" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateScrollY() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateScrollY()
	})
}

// ClearScrollY clears the value of the "scroll_y" field.
func (u *StepUpsertBulk) ClearScrollY() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearScrollY()
	})
}

// SetMaxScrollY sets the "max_scroll_y" field.
func (u *StepUpsertBulk) SetMaxScrollY(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetMaxScrollY(v)
	})
}

// AddMaxScrollY adds v to the "max_scroll_y" field.
func (u *StepUpsertBulk) AddMaxScrollY(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddMaxScrollY(v)
	})
}

// UpdateMaxScrollY sets the "max_scroll_y" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateMaxScrollY() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateMaxScrollY()
	})
}

// ClearMaxScrollY clears the value of the "max_scroll_y" field.
func (u *StepUpsertBulk) ClearMaxScrollY() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearMaxScrollY()
	})
}

// SetLoadTimeMs sets the "load_time_ms" field.
func (u *StepUpsertBulk) SetLoadTimeMs(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetLoadTimeMs(v)
	})
}

// AddLoadTimeMs adds v to the "load_time_ms" field.
func (u *StepUpsertBulk) AddLoadTimeMs(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddLoadTimeMs(v)
	})
}

// UpdateLoadTimeMs sets the "load_time_ms" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateLoadTimeMs() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateLoadTimeMs()
	})
}

// ClearLoadTimeMs clears the value of the "load_time_ms" field.
func (u *StepUpsertBulk) ClearLoadTimeMs() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearLoadTimeMs()
	})
}

// SetFirstPaintMs sets the "first_paint_ms" field.
func (u *StepUpsertBulk) SetFirstPaintMs(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.SetFirstPaintMs(v)
	})
}

// AddFirstPaintMs adds v to the "first_paint_ms" field.
func (u *StepUpsertBulk) AddFirstPaintMs(v int) *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.AddFirstPaintMs(v)
	})
}

// UpdateFirstPaintMs sets the "first_paint_ms" field to the value that was provided on create.
func (u *StepUpsertBulk) UpdateFirstPaintMs() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.UpdateFirstPaintMs()
	})
}

// ClearFirstPaintMs clears the value of the "first_paint_ms" field.
func (u *StepUpsertBulk) ClearFirstPaintMs() *StepUpsertBulk {
	return u.Update(func(s *StepUpsert) {
		s.ClearFirstPaintMs()
	})
}

// Exec executes the query.
func (u *StepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
