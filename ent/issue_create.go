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
	"github.com/wanderlens/wanderlens/ent/study"
)

// IssueCreate is the builder for creating a Issue entity.
type IssueCreate struct {
	config
	mutation *IssueMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *IssueCreate) SetStudyID(v string) *IssueCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *IssueCreate) SetSessionID(v string) *IssueCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *IssueCreate) SetStepID(v string) *IssueCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *IssueCreate) SetNillableStepID(v *string) *IssueCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetElement sets the "element" field.
func (_c *IssueCreate) SetElement(v string) *IssueCreate {
	_c.mutation.SetElement(v)
	return _c
}

// SetNillableElement sets the "element" field if the given value is not nil.
func (_c *IssueCreate) SetNillableElement(v *string) *IssueCreate {
	if v != nil {
		_c.SetElement(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *IssueCreate) SetDescription(v string) *IssueCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *IssueCreate) SetSeverity(v issue.Severity) *IssueCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *IssueCreate) SetNillableSeverity(v *issue.Severity) *IssueCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetIssueType sets the "issue_type" field.
func (_c *IssueCreate) SetIssueType(v issue.IssueType) *IssueCreate {
	_c.mutation.SetIssueType(v)
	return _c
}

// SetNillableIssueType sets the "issue_type" field if the given value is not nil.
func (_c *IssueCreate) SetNillableIssueType(v *issue.IssueType) *IssueCreate {
	if v != nil {
		_c.SetIssueType(*v)
	}
	return _c
}

// SetHeuristic sets the "heuristic" field.
func (_c *IssueCreate) SetHeuristic(v string) *IssueCreate {
	_c.mutation.SetHeuristic(v)
	return _c
}

// SetNillableHeuristic sets the "heuristic" field if the given value is not nil.
func (_c *IssueCreate) SetNillableHeuristic(v *string) *IssueCreate {
	if v != nil {
		_c.SetHeuristic(*v)
	}
	return _c
}

// SetWcagCriterion sets the "wcag_criterion" field.
func (_c *IssueCreate) SetWcagCriterion(v string) *IssueCreate {
	_c.mutation.SetWcagCriterion(v)
	return _c
}

// SetNillableWcagCriterion sets the "wcag_criterion" field if the given value is not nil.
func (_c *IssueCreate) SetNillableWcagCriterion(v *string) *IssueCreate {
	if v != nil {
		_c.SetWcagCriterion(*v)
	}
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *IssueCreate) SetRecommendation(v string) *IssueCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_c *IssueCreate) SetNillableRecommendation(v *string) *IssueCreate {
	if v != nil {
		_c.SetRecommendation(*v)
	}
	return _c
}

// SetPageURL sets the "page_url" field.
func (_c *IssueCreate) SetPageURL(v string) *IssueCreate {
	_c.mutation.SetPageURL(v)
	return _c
}

// SetNillablePageURL sets the "page_url" field if the given value is not nil.
func (_c *IssueCreate) SetNillablePageURL(v *string) *IssueCreate {
	if v != nil {
		_c.SetPageURL(*v)
	}
	return _c
}

// SetTimesSeen sets the "times_seen" field.
func (_c *IssueCreate) SetTimesSeen(v int) *IssueCreate {
	_c.mutation.SetTimesSeen(v)
	return _c
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_c *IssueCreate) SetNillableTimesSeen(v *int) *IssueCreate {
	if v != nil {
		_c.SetTimesSeen(*v)
	}
	return _c
}

// SetIsRegression sets the "is_regression" field.
func (_c *IssueCreate) SetIsRegression(v bool) *IssueCreate {
	_c.mutation.SetIsRegression(v)
	return _c
}

// SetNillableIsRegression sets the "is_regression" field if the given value is not nil.
func (_c *IssueCreate) SetNillableIsRegression(v *bool) *IssueCreate {
	if v != nil {
		_c.SetIsRegression(*v)
	}
	return _c
}

// SetPriorityScore sets the "priority_score" field.
func (_c *IssueCreate) SetPriorityScore(v float64) *IssueCreate {
	_c.mutation.SetPriorityScore(v)
	return _c
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_c *IssueCreate) SetNillablePriorityScore(v *float64) *IssueCreate {
	if v != nil {
		_c.SetPriorityScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IssueCreate) SetCreatedAt(v time.Time) *IssueCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IssueCreate) SetNillableCreatedAt(v *time.Time) *IssueCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IssueCreate) SetID(v string) *IssueCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *IssueCreate) SetStudy(v *Study) *IssueCreate {
	return _c.SetStudyID(v.ID)
}

// SetSession sets the "session" edge to the Session entity.
func (_c *IssueCreate) SetSession(v *Session) *IssueCreate {
	return _c.SetSessionID(v.ID)
}

// SetStep sets the "step" edge to the Step entity.
func (_c *IssueCreate) SetStep(v *Step) *IssueCreate {
	return _c.SetStepID(v.ID)
}

// Mutation returns the IssueMutation object of the builder.
func (_c *IssueCreate) Mutation() *IssueMutation {
	return _c.mutation
}

// Save creates the Issue in the database.
func (_c *IssueCreate) Save(ctx context.Context) (*Issue, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IssueCreate) SaveX(ctx context.Context) *Issue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IssueCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IssueCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IssueCreate) defaults() {
	if _, ok := _c.mutation.Severity(); !ok {
		v := issue.DefaultSeverity
		_c.mutation.SetSeverity(v)
	}
	if _, ok := _c.mutation.IssueType(); !ok {
		v := issue.DefaultIssueType
		_c.mutation.SetIssueType(v)
	}
	if _, ok := _c.mutation.TimesSeen(); !ok {
		v := issue.DefaultTimesSeen
		_c.mutation.SetTimesSeen(v)
	}
	if _, ok := _c.mutation.IsRegression(); !ok {
		v := issue.DefaultIsRegression
		_c.mutation.SetIsRegression(v)
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		v := issue.DefaultPriorityScore
		_c.mutation.SetPriorityScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := issue.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IssueCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Issue.study_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Issue.session_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Issue.description"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Issue.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := issue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Issue.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssueType(); !ok {
		return &ValidationError{Name: "issue_type", err: errors.New(`ent: missing required field "Issue.issue_type"`)}
	}
	if v, ok := _c.mutation.IssueType(); ok {
		if err := issue.IssueTypeValidator(v); err != nil {
			return &ValidationError{Name: "issue_type", err: fmt.Errorf(`ent: validator failed for field "Issue.issue_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimesSeen(); !ok {
		return &ValidationError{Name: "times_seen", err: errors.New(`ent: missing required field "Issue.times_seen"`)}
	}
	if v, ok := _c.mutation.TimesSeen(); ok {
		if err := issue.TimesSeenValidator(v); err != nil {
			return &ValidationError{Name: "times_seen", err: fmt.Errorf(`ent: validator failed for field "Issue.times_seen": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsRegression(); !ok {
		return &ValidationError{Name: "is_regression", err: errors.New(`ent: missing required field "Issue.is_regression"`)}
	}
	if _, ok := _c.mutation.PriorityScore(); !ok {
		return &ValidationError{Name: "priority_score", err: errors.New(`ent: missing required field "Issue.priority_score"`)}
	}
	if v, ok := _c.mutation.PriorityScore(); ok {
		if err := issue.PriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "priority_score", err: fmt.Errorf(`ent: validator failed for field "Issue.priority_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Issue.created_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Issue.study"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Issue.session"`)}
	}
	return nil
}

func (_c *IssueCreate) sqlSave(ctx context.Context) (*Issue, error) {
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
			return nil, fmt.Errorf("unexpected Issue.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IssueCreate) createSpec() (*Issue, *sqlgraph.CreateSpec) {
	var (
		_node = &Issue{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(issue.Table, sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Element(); ok {
		_spec.SetField(issue.FieldElement, field.TypeString, value)
		_node.Element = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(issue.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(issue.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.IssueType(); ok {
		_spec.SetField(issue.FieldIssueType, field.TypeEnum, value)
		_node.IssueType = value
	}
	if value, ok := _c.mutation.Heuristic(); ok {
		_spec.SetField(issue.FieldHeuristic, field.TypeString, value)
		_node.Heuristic = &value
	}
	if value, ok := _c.mutation.WcagCriterion(); ok {
		_spec.SetField(issue.FieldWcagCriterion, field.TypeString, value)
		_node.WcagCriterion = &value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(issue.FieldRecommendation, field.TypeString, value)
		_node.Recommendation = &value
	}
	if value, ok := _c.mutation.PageURL(); ok {
		_spec.SetField(issue.FieldPageURL, field.TypeString, value)
		_node.PageURL = value
	}
	if value, ok := _c.mutation.TimesSeen(); ok {
		_spec.SetField(issue.FieldTimesSeen, field.TypeInt, value)
		_node.TimesSeen = value
	}
	if value, ok := _c.mutation.IsRegression(); ok {
		_spec.SetField(issue.FieldIsRegression, field.TypeBool, value)
		_node.IsRegression = value
	}
	if value, ok := _c.mutation.PriorityScore(); ok {
		_spec.SetField(issue.FieldPriorityScore, field.TypeFloat64, value)
		_node.PriorityScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(issue.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   issue.StudyTable,
			Columns: []string{issue.StudyColumn},
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
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   issue.SessionTable,
			Columns: []string{issue.SessionColumn},
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
	if nodes := _c.mutation.StepIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   issue.StepTable,
			Columns: []string{issue.StepColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(step.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StepID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Issue.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IssueUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *IssueCreate) OnConflict(opts ...sql.ConflictOption) *IssueUpsertOne {
	_c.conflict = opts
	return &IssueUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IssueCreate) OnConflictColumns(columns ...string) *IssueUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IssueUpsertOne{
		create: _c,
	}
}

type (
	// IssueUpsertOne is the builder for "upsert"-ing
	//  one Issue node.
	IssueUpsertOne struct {
		create *IssueCreate
	}

	// IssueUpsert is the "OnConflict" setter.
	IssueUpsert struct {
		*sql.UpdateSet
	}
)

// SetStepID sets the "step_id" field.
func (u *IssueUpsert) SetStepID(v string) *IssueUpsert {
	u.Set(issue.FieldStepID, v)
	return u
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *IssueUpsert) UpdateStepID() *IssueUpsert {
	u.SetExcluded(issue.FieldStepID)
	return u
}

// ClearStepID clears the value of the "step_id" field.
func (u *IssueUpsert) ClearStepID() *IssueUpsert {
	u.SetNull(issue.FieldStepID)
	return u
}

// SetElement sets the "element" field.
func (u *IssueUpsert) SetElement(v string) *IssueUpsert {
	u.Set(issue.FieldElement, v)
	return u
}

// UpdateElement sets the "element" field to the value that was provided on create.
func (u *IssueUpsert) UpdateElement() *IssueUpsert {
	u.SetExcluded(issue.FieldElement)
	return u
}

// ClearElement clears the value of the "element" field.
func (u *IssueUpsert) ClearElement() *IssueUpsert {
	u.SetNull(issue.FieldElement)
	return u
}

// SetDescription sets the "description" field.
func (u *IssueUpsert) SetDescription(v string) *IssueUpsert {
	u.Set(issue.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IssueUpsert) UpdateDescription() *IssueUpsert {
	u.SetExcluded(issue.FieldDescription)
	return u
}

// SetSeverity sets the "severity" field.
func (u *IssueUpsert) SetSeverity(v issue.Severity) *IssueUpsert {
	u.Set(issue.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *IssueUpsert) UpdateSeverity() *IssueUpsert {
	u.SetExcluded(issue.FieldSeverity)
	return u
}

// SetIssueType sets the "issue_type" field.
func (u *IssueUpsert) SetIssueType(v issue.IssueType) *IssueUpsert {
	u.Set(issue.FieldIssueType, v)
	return u
}

// UpdateIssueType sets the "issue_type" field to the value that was provided on create.
func (u *IssueUpsert) UpdateIssueType() *IssueUpsert {
	u.SetExcluded(issue.FieldIssueType)
	return u
}

// SetHeuristic sets the "heuristic" field.
func (u *IssueUpsert) SetHeuristic(v string) *IssueUpsert {
	u.Set(issue.FieldHeuristic, v)
	return u
}

// UpdateHeuristic sets the "heuristic" field to the value that was provided on create.
func (u *IssueUpsert) UpdateHeuristic() *IssueUpsert {
	u.SetExcluded(issue.FieldHeuristic)
	return u
}

// ClearHeuristic clears the value of the "heuristic" field.
func (u *IssueUpsert) ClearHeuristic() *IssueUpsert {
	u.SetNull(issue.FieldHeuristic)
	return u
}

// SetWcagCriterion sets the "wcag_criterion" field.
func (u *IssueUpsert) SetWcagCriterion(v string) *IssueUpsert {
	u.Set(issue.FieldWcagCriterion, v)
	return u
}

// UpdateWcagCriterion sets the "wcag_criterion" field to the value that was provided on create.
func (u *IssueUpsert) UpdateWcagCriterion() *IssueUpsert {
	u.SetExcluded(issue.FieldWcagCriterion)
	return u
}

// ClearWcagCriterion clears the value of the "wcag_criterion" field.
func (u *IssueUpsert) ClearWcagCriterion() *IssueUpsert {
	u.SetNull(issue.FieldWcagCriterion)
	return u
}

// SetRecommendation sets the "recommendation" field.
func (u *IssueUpsert) SetRecommendation(v string) *IssueUpsert {
	u.Set(issue.FieldRecommendation, v)
	return u
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *IssueUpsert) UpdateRecommendation() *IssueUpsert {
	u.SetExcluded(issue.FieldRecommendation)
	return u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (u *IssueUpsert) ClearRecommendation() *IssueUpsert {
	u.SetNull(issue.FieldRecommendation)
	return u
}

// SetPageURL sets the "page_url" field.
func (u *IssueUpsert) SetPageURL(v string) *IssueUpsert {
	u.Set(issue.FieldPageURL, v)
	return u
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *IssueUpsert) UpdatePageURL() *IssueUpsert {
	u.SetExcluded(issue.FieldPageURL)
	return u
}

// ClearPageURL clears the value of the "page_url" field.
func (u *IssueUpsert) ClearPageURL() *IssueUpsert {
	u.SetNull(issue.FieldPageURL)
	return u
}

// SetTimesSeen sets the "times_seen" field.
func (u *IssueUpsert) SetTimesSeen(v int) *IssueUpsert {
	u.Set(issue.FieldTimesSeen, v)
	return u
}

// UpdateTimesSeen sets the "times_seen" field to the value that was provided on create.
func (u *IssueUpsert) UpdateTimesSeen() *IssueUpsert {
	u.SetExcluded(issue.FieldTimesSeen)
	return u
}

// AddTimesSeen adds v to the "times_seen" field.
func (u *IssueUpsert) AddTimesSeen(v int) *IssueUpsert {
	u.Add(issue.FieldTimesSeen, v)
	return u
}

// SetIsRegression sets the "is_regression" field.
func (u *IssueUpsert) SetIsRegression(v bool) *IssueUpsert {
	u.Set(issue.FieldIsRegression, v)
	return u
}

// UpdateIsRegression sets the "is_regression" field to the value that was provided on create.
func (u *IssueUpsert) UpdateIsRegression() *IssueUpsert {
	u.SetExcluded(issue.FieldIsRegression)
	return u
}

// SetPriorityScore sets the "priority_score" field.
func (u *IssueUpsert) SetPriorityScore(v float64) *IssueUpsert {
	u.Set(issue.FieldPriorityScore, v)
	return u
}

// UpdatePriorityScore sets the "priority_score" field to the value that was provided on create.
func (u *IssueUpsert) UpdatePriorityScore() *IssueUpsert {
	u.SetExcluded(issue.FieldPriorityScore)
	return u
}

// AddPriorityScore adds v to the "priority_score" field.
func (u *IssueUpsert) AddPriorityScore(v float64) *IssueUpsert {
	u.Add(issue.FieldPriorityScore, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(issue.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IssueUpsertOne) UpdateNewValues() *IssueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(issue.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(issue.FieldStudyID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(issue.FieldSessionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(issue.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Issue.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *IssueUpsertOne) Ignore() *IssueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IssueUpsertOne) DoNothing() *IssueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IssueCreate.OnConflict
// documentation for more info.
func (u *IssueUpsertOne) Update(set func(*IssueUpsert)) *IssueUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IssueUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *IssueUpsertOne) SetStepID(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateStepID() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *IssueUpsertOne) ClearStepID() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.ClearStepID()
	})
}

// SetElement sets the "element" field.
func (u *IssueUpsertOne) SetElement(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetElement(v)
	})
}

// UpdateElement sets the "element" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateElement() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateElement()
	})
}

// ClearElement clears the value of the "element" field.
func (u *IssueUpsertOne) ClearElement() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.ClearElement()
	})
}

// SetDescription sets the "description" field.
func (u *IssueUpsertOne) SetDescription(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateDescription() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateDescription()
	})
}

// SetSeverity sets the "severity" field.
func (u *IssueUpsertOne) SetSeverity(v issue.Severity) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateSeverity() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateSeverity()
	})
}

// SetIssueType sets the "issue_type" field.
func (u *IssueUpsertOne) SetIssueType(v issue.IssueType) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetIssueType(v)
	})
}

// UpdateIssueType sets the "issue_type" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateIssueType() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateIssueType()
	})
}

// SetHeuristic sets the "heuristic" field.
func (u *IssueUpsertOne) SetHeuristic(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetHeuristic(v)
	})
}

// UpdateHeuristic sets the "heuristic" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateHeuristic() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateHeuristic()
	})
}

// ClearHeuristic clears the value of the "heuristic" field.
func (u *IssueUpsertOne) ClearHeuristic() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.ClearHeuristic()
	})
}

// SetWcagCriterion sets the "wcag_criterion" field.
func (u *IssueUpsertOne) SetWcagCriterion(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetWcagCriterion(v)
	})
}

// UpdateWcagCriterion sets the "wcag_criterion" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateWcagCriterion() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateWcagCriterion()
	})
}

// ClearWcagCriterion clears the value of the "wcag_criterion" field.
func (u *IssueUpsertOne) ClearWcagCriterion() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.ClearWcagCriterion()
	})
}

// SetRecommendation sets the "recommendation" field.
func (u *IssueUpsertOne) SetRecommendation(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetRecommendation(v)
	})
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateRecommendation() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateRecommendation()
	})
}

// ClearRecommendation clears the value of the "recommendation" field.
func (u *IssueUpsertOne) ClearRecommendation() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.ClearRecommendation()
	})
}

// SetPageURL sets the "page_url" field.
func (u *IssueUpsertOne) SetPageURL(v string) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetPageURL(v)
	})
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdatePageURL() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdatePageURL()
	})
}

// ClearPageURL clears the value of the "page_url" field.
func (u *IssueUpsertOne) ClearPageURL() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.ClearPageURL()
	})
}

// SetTimesSeen sets the "times_seen" field.
func (u *IssueUpsertOne) SetTimesSeen(v int) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetTimesSeen(v)
	})
}

// AddTimesSeen adds v to the "times_seen" field.
func (u *IssueUpsertOne) AddTimesSeen(v int) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.AddTimesSeen(v)
	})
}

// UpdateTimesSeen sets the "times_seen" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateTimesSeen() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateTimesSeen()
	})
}

// SetIsRegression sets the "is_regression" field.
func (u *IssueUpsertOne) SetIsRegression(v bool) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetIsRegression(v)
	})
}

// UpdateIsRegression sets the "is_regression" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdateIsRegression() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateIsRegression()
	})
}

// SetPriorityScore sets the "priority_score" field.
func (u *IssueUpsertOne) SetPriorityScore(v float64) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.SetPriorityScore(v)
	})
}

// AddPriorityScore adds v to the "priority_score" field.
func (u *IssueUpsertOne) AddPriorityScore(v float64) *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.AddPriorityScore(v)
	})
}

// UpdatePriorityScore sets the "priority_score" field to the value that was provided on create.
func (u *IssueUpsertOne) UpdatePriorityScore() *IssueUpsertOne {
	return u.Update(func(s *IssueUpsert) {
		s.UpdatePriorityScore()
	})
}

// Exec executes the query.
func (u *IssueUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IssueCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IssueUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *IssueUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: IssueUpsertOne.ID is not supported by MySQL driver. Use IssueUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *IssueUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// IssueCreateBulk is the builder for creating many Issue entities in bulk.
type IssueCreateBulk struct {
	config
	err      error
	builders []*IssueCreate
	conflict []sql.ConflictOption
}

// Save creates the Issue entities in the database.
func (_c *IssueCreateBulk) Save(ctx context.Context) ([]*Issue, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Issue, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IssueMutation)
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
func (_c *IssueCreateBulk) SaveX(ctx context.Context) []*Issue {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IssueCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IssueCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Issue.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.IssueUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *IssueCreateBulk) OnConflict(opts ...sql.ConflictOption) *IssueUpsertBulk {
	_c.conflict = opts
	return &IssueUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *IssueCreateBulk) OnConflictColumns(columns ...string) *IssueUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &IssueUpsertBulk{
		create: _c,
	}
}

// IssueUpsertBulk is the builder for "upsert"-ing
// a bulk of Issue nodes.
type IssueUpsertBulk struct {
	create *IssueCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(issue.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *IssueUpsertBulk) UpdateNewValues() *IssueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(issue.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(issue.FieldStudyID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(issue.FieldSessionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(issue.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Issue.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *IssueUpsertBulk) Ignore() *IssueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *IssueUpsertBulk) DoNothing() *IssueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the IssueCreateBulk.OnConflict
// documentation for more info.
func (u *IssueUpsertBulk) Update(set func(*IssueUpsert)) *IssueUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&IssueUpsert{UpdateSet: update})
	}))
	return u
}

// SetStepID sets the "step_id" field.
func (u *IssueUpsertBulk) SetStepID(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetStepID(v)
	})
}

// UpdateStepID sets the "step_id" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateStepID() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateStepID()
	})
}

// ClearStepID clears the value of the "step_id" field.
func (u *IssueUpsertBulk) ClearStepID() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.ClearStepID()
	})
}

// SetElement sets the "element" field.
func (u *IssueUpsertBulk) SetElement(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetElement(v)
	})
}

// UpdateElement sets the "element" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateElement() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateElement()
	})
}

// ClearElement clears the value of the "element" field.
func (u *IssueUpsertBulk) ClearElement() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.ClearElement()
	})
}

// SetDescription sets the "description" field.
func (u *IssueUpsertBulk) SetDescription(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateDescription() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateDescription()
	})
}

// SetSeverity sets the "severity" field.
func (u *IssueUpsertBulk) SetSeverity(v issue.Severity) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateSeverity() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateSeverity()
	})
}

// SetIssueType sets the "issue_type" field.
func (u *IssueUpsertBulk) SetIssueType(v issue.IssueType) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetIssueType(v)
	})
}

// UpdateIssueType sets the "issue_type" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateIssueType() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateIssueType()
	})
}

// SetHeuristic sets the "heuristic" field.
func (u *IssueUpsertBulk) SetHeuristic(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetHeuristic(v)
	})
}

// UpdateHeuristic sets the "heuristic" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateHeuristic() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateHeuristic()
	})
}

// ClearHeuristic clears the value of the "heuristic" field.
func (u *IssueUpsertBulk) ClearHeuristic() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.ClearHeuristic()
	})
}

// SetWcagCriterion sets the "wcag_criterion" field.
func (u *IssueUpsertBulk) SetWcagCriterion(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetWcagCriterion(v)
	})
}

// UpdateWcagCriterion sets the "wcag_criterion" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateWcagCriterion() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateWcagCriterion()
	})
}

// ClearWcagCriterion clears the value of the "wcag_criterion" field.
func (u *IssueUpsertBulk) ClearWcagCriterion() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.ClearWcagCriterion()
	})
}

// SetRecommendation sets the "recommendation" field.
func (u *IssueUpsertBulk) SetRecommendation(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetRecommendation(v)
	})
}

// UpdateRecommendation sets the "recommendation" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateRecommendation() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateRecommendation()
	})
}

// ClearRecommendation clears the value of the "recommendation" field.
func (u *IssueUpsertBulk) ClearRecommendation() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.ClearRecommendation()
	})
}

// SetPageURL sets the "page_url" field.
func (u *IssueUpsertBulk) SetPageURL(v string) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetPageURL(v)
	})
}

// UpdatePageURL sets the "page_url" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdatePageURL() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdatePageURL()
	})
}

// ClearPageURL clears the value of the "page_url" field.
func (u *IssueUpsertBulk) ClearPageURL() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.ClearPageURL()
	})
}

// SetTimesSeen sets the "times_seen" field.
func (u *IssueUpsertBulk) SetTimesSeen(v int) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetTimesSeen(v)
	})
}

// AddTimesSeen adds v to the "times_seen" field.
func (u *IssueUpsertBulk) AddTimesSeen(v int) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.AddTimesSeen(v)
	})
}

// UpdateTimesSeen sets the "times_seen" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateTimesSeen() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateTimesSeen()
	})
}

// SetIsRegression sets the "is_regression" field.
func (u *IssueUpsertBulk) SetIsRegression(v bool) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetIsRegression(v)
	})
}

// UpdateIsRegression sets the "is_regression" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdateIsRegression() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdateIsRegression()
	})
}

// SetPriorityScore sets the "priority_score" field.
func (u *IssueUpsertBulk) SetPriorityScore(v float64) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.SetPriorityScore(v)
	})
}

// AddPriorityScore adds v to the "priority_score" field.
func (u *IssueUpsertBulk) AddPriorityScore(v float64) *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.AddPriorityScore(v)
	})
}

// UpdatePriorityScore sets the "priority_score" field to the value that was provided on create.
func (u *IssueUpsertBulk) UpdatePriorityScore() *IssueUpsertBulk {
	return u.Update(func(s *IssueUpsert) {
		s.UpdatePriorityScore()
	})
}

// Exec executes the query.
func (u *IssueUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the IssueCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for IssueCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *IssueUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
