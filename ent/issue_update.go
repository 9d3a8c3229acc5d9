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

// IssueUpdate is the builder for updating Issue entities.
type IssueUpdate struct {
	config
	hooks    []Hook
	mutation *IssueMutation
}

// Where appends a list predicates to the IssueUpdate builder.
func (_u *IssueUpdate) Where(ps ...predicate.Issue) *IssueUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepID sets the "step_id" field.
func (_u *IssueUpdate) SetStepID(v string) *IssueUpdate {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableStepID(v *string) *IssueUpdate {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *IssueUpdate) ClearStepID() *IssueUpdate {
	_u.mutation.ClearStepID()
	return _u
}

// SetElement sets the "element" field.
func (_u *IssueUpdate) SetElement(v string) *IssueUpdate {
	_u.mutation.SetElement(v)
	return _u
}

// SetNillableElement sets the "element" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableElement(v *string) *IssueUpdate {
	if v != nil {
		_u.SetElement(*v)
	}
	return _u
}

// ClearElement clears the value of the "element" field.
func (_u *IssueUpdate) ClearElement() *IssueUpdate {
	_u.mutation.ClearElement()
	return _u
}

// SetDescription sets the "description" field.
func (_u *IssueUpdate) SetDescription(v string) *IssueUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableDescription(v *string) *IssueUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IssueUpdate) SetSeverity(v issue.Severity) *IssueUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableSeverity(v *issue.Severity) *IssueUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetIssueType sets the "issue_type" field.
func (_u *IssueUpdate) SetIssueType(v issue.IssueType) *IssueUpdate {
	_u.mutation.SetIssueType(v)
	return _u
}

// SetNillableIssueType sets the "issue_type" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableIssueType(v *issue.IssueType) *IssueUpdate {
	if v != nil {
		_u.SetIssueType(*v)
	}
	return _u
}

// SetHeuristic sets the "heuristic" field.
func (_u *IssueUpdate) SetHeuristic(v string) *IssueUpdate {
	_u.mutation.SetHeuristic(v)
	return _u
}

// SetNillableHeuristic sets the "heuristic" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableHeuristic(v *string) *IssueUpdate {
	if v != nil {
		_u.SetHeuristic(*v)
	}
	return _u
}

// ClearHeuristic clears the value of the "heuristic" field.
func (_u *IssueUpdate) ClearHeuristic() *IssueUpdate {
	_u.mutation.ClearHeuristic()
	return _u
}

// SetWcagCriterion sets the "wcag_criterion" field.
func (_u *IssueUpdate) SetWcagCriterion(v string) *IssueUpdate {
	_u.mutation.SetWcagCriterion(v)
	return _u
}

// SetNillableWcagCriterion sets the "wcag_criterion" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableWcagCriterion(v *string) *IssueUpdate {
	if v != nil {
		_u.SetWcagCriterion(*v)
	}
	return _u
}

// ClearWcagCriterion clears the value of the "wcag_criterion" field.
func (_u *IssueUpdate) ClearWcagCriterion() *IssueUpdate {
	_u.mutation.ClearWcagCriterion()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *IssueUpdate) SetRecommendation(v string) *IssueUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableRecommendation(v *string) *IssueUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (_u *IssueUpdate) ClearRecommendation() *IssueUpdate {
	_u.mutation.ClearRecommendation()
	return _u
}

// SetPageURL sets the "page_url" field.
func (_u *IssueUpdate) SetPageURL(v string) *IssueUpdate {
	_u.mutation.SetPageURL(v)
	return _u
}

// SetNillablePageURL sets the "page_url" field if the given value is not nil.
func (_u *IssueUpdate) SetNillablePageURL(v *string) *IssueUpdate {
	if v != nil {
		_u.SetPageURL(*v)
	}
	return _u
}

// ClearPageURL clears the value of the "page_url" field.
func (_u *IssueUpdate) ClearPageURL() *IssueUpdate {
	_u.mutation.ClearPageURL()
	return _u
}

// SetTimesSeen sets the "times_seen" field.
func (_u *IssueUpdate) SetTimesSeen(v int) *IssueUpdate {
	_u.mutation.ResetTimesSeen()
	_u.mutation.SetTimesSeen(v)
	return _u
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableTimesSeen(v *int) *IssueUpdate {
	if v != nil {
		_u.SetTimesSeen(*v)
	}
	return _u
}

// AddTimesSeen adds value to the "times_seen" field.
func (_u *IssueUpdate) AddTimesSeen(v int) *IssueUpdate {
	_u.mutation.AddTimesSeen(v)
	return _u
}

// SetIsRegression sets the "is_regression" field.
func (_u *IssueUpdate) SetIsRegression(v bool) *IssueUpdate {
	_u.mutation.SetIsRegression(v)
	return _u
}

// SetNillableIsRegression sets the "is_regression" field if the given value is not nil.
func (_u *IssueUpdate) SetNillableIsRegression(v *bool) *IssueUpdate {
	if v != nil {
		_u.SetIsRegression(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *IssueUpdate) SetPriorityScore(v float64) *IssueUpdate {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *IssueUpdate) SetNillablePriorityScore(v *float64) *IssueUpdate {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *IssueUpdate) AddPriorityScore(v float64) *IssueUpdate {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetStep sets the "step" edge to the Step entity.
func (_u *IssueUpdate) SetStep(v *Step) *IssueUpdate {
	return _u.SetStepID(v.ID)
}

// Mutation returns the IssueMutation object of the builder.
func (_u *IssueUpdate) Mutation() *IssueMutation {
	return _u.mutation
}

// ClearStep clears the "step" edge to the Step entity.
func (_u *IssueUpdate) ClearStep() *IssueUpdate {
	_u.mutation.ClearStep()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IssueUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IssueUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IssueUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IssueUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IssueUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := issue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Issue.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssueType(); ok {
		if err := issue.IssueTypeValidator(v); err != nil {
			return &ValidationError{Name: "issue_type", err: fmt.Errorf(`ent: validator failed for field "Issue.issue_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimesSeen(); ok {
		if err := issue.TimesSeenValidator(v); err != nil {
			return &ValidationError{Name: "times_seen", err: fmt.Errorf(`ent: validator failed for field "Issue.times_seen": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriorityScore(); ok {
		if err := issue.PriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "priority_score", err: fmt.Errorf(`ent: validator failed for field "Issue.priority_score": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Issue.study"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Issue.session"`)
	}
	return nil
}

func (_u *IssueUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(issue.Table, issue.Columns, sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Element(); ok {
		_spec.SetField(issue.FieldElement, field.TypeString, value)
	}
	if _u.mutation.ElementCleared() {
		_spec.ClearField(issue.FieldElement, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(issue.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(issue.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IssueType(); ok {
		_spec.SetField(issue.FieldIssueType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Heuristic(); ok {
		_spec.SetField(issue.FieldHeuristic, field.TypeString, value)
	}
	if _u.mutation.HeuristicCleared() {
		_spec.ClearField(issue.FieldHeuristic, field.TypeString)
	}
	if value, ok := _u.mutation.WcagCriterion(); ok {
		_spec.SetField(issue.FieldWcagCriterion, field.TypeString, value)
	}
	if _u.mutation.WcagCriterionCleared() {
		_spec.ClearField(issue.FieldWcagCriterion, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(issue.FieldRecommendation, field.TypeString, value)
	}
	if _u.mutation.RecommendationCleared() {
		_spec.ClearField(issue.FieldRecommendation, field.TypeString)
	}
	if value, ok := _u.mutation.PageURL(); ok {
		_spec.SetField(issue.FieldPageURL, field.TypeString, value)
	}
	if _u.mutation.PageURLCleared() {
		_spec.ClearField(issue.FieldPageURL, field.TypeString)
	}
	if value, ok := _u.mutation.TimesSeen(); ok {
		_spec.SetField(issue.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSeen(); ok {
		_spec.AddField(issue.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRegression(); ok {
		_spec.SetField(issue.FieldIsRegression, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(issue.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(issue.FieldPriorityScore, field.TypeFloat64, value)
	}
	if _u.mutation.StepCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{issue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IssueUpdateOne is the builder for updating a single Issue entity.
type IssueUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IssueMutation
}

// SetStepID sets the "step_id" field.
func (_u *IssueUpdateOne) SetStepID(v string) *IssueUpdateOne {
	_u.mutation.SetStepID(v)
	return _u
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableStepID(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetStepID(*v)
	}
	return _u
}

// ClearStepID clears the value of the "step_id" field.
func (_u *IssueUpdateOne) ClearStepID() *IssueUpdateOne {
	_u.mutation.ClearStepID()
	return _u
}

// SetElement sets the "element" field.
func (_u *IssueUpdateOne) SetElement(v string) *IssueUpdateOne {
	_u.mutation.SetElement(v)
	return _u
}

// SetNillableElement sets the "element" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableElement(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetElement(*v)
	}
	return _u
}

// ClearElement clears the value of the "element" field.
func (_u *IssueUpdateOne) ClearElement() *IssueUpdateOne {
	_u.mutation.ClearElement()
	return _u
}

// SetDescription sets the "description" field.
func (_u *IssueUpdateOne) SetDescription(v string) *IssueUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableDescription(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *IssueUpdateOne) SetSeverity(v issue.Severity) *IssueUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableSeverity(v *issue.Severity) *IssueUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetIssueType sets the "issue_type" field.
func (_u *IssueUpdateOne) SetIssueType(v issue.IssueType) *IssueUpdateOne {
	_u.mutation.SetIssueType(v)
	return _u
}

// SetNillableIssueType sets the "issue_type" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableIssueType(v *issue.IssueType) *IssueUpdateOne {
	if v != nil {
		_u.SetIssueType(*v)
	}
	return _u
}

// SetHeuristic sets the "heuristic" field.
func (_u *IssueUpdateOne) SetHeuristic(v string) *IssueUpdateOne {
	_u.mutation.SetHeuristic(v)
	return _u
}

// SetNillableHeuristic sets the "heuristic" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableHeuristic(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetHeuristic(*v)
	}
	return _u
}

// ClearHeuristic clears the value of the "heuristic" field.
func (_u *IssueUpdateOne) ClearHeuristic() *IssueUpdateOne {
	_u.mutation.ClearHeuristic()
	return _u
}

// SetWcagCriterion sets the "wcag_criterion" field.
func (_u *IssueUpdateOne) SetWcagCriterion(v string) *IssueUpdateOne {
	_u.mutation.SetWcagCriterion(v)
	return _u
}

// SetNillableWcagCriterion sets the "wcag_criterion" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableWcagCriterion(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetWcagCriterion(*v)
	}
	return _u
}

// ClearWcagCriterion clears the value of the "wcag_criterion" field.
func (_u *IssueUpdateOne) ClearWcagCriterion() *IssueUpdateOne {
	_u.mutation.ClearWcagCriterion()
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *IssueUpdateOne) SetRecommendation(v string) *IssueUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableRecommendation(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// ClearRecommendation clears the value of the "recommendation" field.
func (_u *IssueUpdateOne) ClearRecommendation() *IssueUpdateOne {
	_u.mutation.ClearRecommendation()
	return _u
}

// SetPageURL sets the "page_url" field.
func (_u *IssueUpdateOne) SetPageURL(v string) *IssueUpdateOne {
	_u.mutation.SetPageURL(v)
	return _u
}

// SetNillablePageURL sets the "page_url" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillablePageURL(v *string) *IssueUpdateOne {
	if v != nil {
		_u.SetPageURL(*v)
	}
	return _u
}

// ClearPageURL clears the value of the "page_url" field.
func (_u *IssueUpdateOne) ClearPageURL() *IssueUpdateOne {
	_u.mutation.ClearPageURL()
	return _u
}

// SetTimesSeen sets the "times_seen" field.
func (_u *IssueUpdateOne) SetTimesSeen(v int) *IssueUpdateOne {
	_u.mutation.ResetTimesSeen()
	_u.mutation.SetTimesSeen(v)
	return _u
}

// SetNillableTimesSeen sets the "times_seen" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableTimesSeen(v *int) *IssueUpdateOne {
	if v != nil {
		_u.SetTimesSeen(*v)
	}
	return _u
}

// AddTimesSeen adds value to the "times_seen" field.
func (_u *IssueUpdateOne) AddTimesSeen(v int) *IssueUpdateOne {
	_u.mutation.AddTimesSeen(v)
	return _u
}

// SetIsRegression sets the "is_regression" field.
func (_u *IssueUpdateOne) SetIsRegression(v bool) *IssueUpdateOne {
	_u.mutation.SetIsRegression(v)
	return _u
}

// SetNillableIsRegression sets the "is_regression" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillableIsRegression(v *bool) *IssueUpdateOne {
	if v != nil {
		_u.SetIsRegression(*v)
	}
	return _u
}

// SetPriorityScore sets the "priority_score" field.
func (_u *IssueUpdateOne) SetPriorityScore(v float64) *IssueUpdateOne {
	_u.mutation.ResetPriorityScore()
	_u.mutation.SetPriorityScore(v)
	return _u
}

// SetNillablePriorityScore sets the "priority_score" field if the given value is not nil.
func (_u *IssueUpdateOne) SetNillablePriorityScore(v *float64) *IssueUpdateOne {
	if v != nil {
		_u.SetPriorityScore(*v)
	}
	return _u
}

// AddPriorityScore adds value to the "priority_score" field.
func (_u *IssueUpdateOne) AddPriorityScore(v float64) *IssueUpdateOne {
	_u.mutation.AddPriorityScore(v)
	return _u
}

// SetStep sets the "step" edge to the Step entity.
func (_u *IssueUpdateOne) SetStep(v *Step) *IssueUpdateOne {
	return _u.SetStepID(v.ID)
}

// Mutation returns the IssueMutation object of the builder.
func (_u *IssueUpdateOne) Mutation() *IssueMutation {
	return _u.mutation
}

// ClearStep clears the "step" edge to the Step entity.
func (_u *IssueUpdateOne) ClearStep() *IssueUpdateOne {
	_u.mutation.ClearStep()
	return _u
}

// Where appends a list predicates to the IssueUpdate builder.
func (_u *IssueUpdateOne) Where(ps ...predicate.Issue) *IssueUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IssueUpdateOne) Select(field string, fields ...string) *IssueUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Issue entity.
func (_u *IssueUpdateOne) Save(ctx context.Context) (*Issue, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IssueUpdateOne) SaveX(ctx context.Context) *Issue {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IssueUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IssueUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IssueUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := issue.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Issue.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IssueType(); ok {
		if err := issue.IssueTypeValidator(v); err != nil {
			return &ValidationError{Name: "issue_type", err: fmt.Errorf(`ent: validator failed for field "Issue.issue_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimesSeen(); ok {
		if err := issue.TimesSeenValidator(v); err != nil {
			return &ValidationError{Name: "times_seen", err: fmt.Errorf(`ent: validator failed for field "Issue.times_seen": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PriorityScore(); ok {
		if err := issue.PriorityScoreValidator(v); err != nil {
			return &ValidationError{Name: "priority_score", err: fmt.Errorf(`ent: validator failed for field "Issue.priority_score": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Issue.study"`)
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Issue.session"`)
	}
	return nil
}

func (_u *IssueUpdateOne) sqlSave(ctx context.Context) (_node *Issue, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(issue.Table, issue.Columns, sqlgraph.NewFieldSpec(issue.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Issue.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, issue.FieldID)
		for _, f := range fields {
			if !issue.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != issue.FieldID {
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
	if value, ok := _u.mutation.Element(); ok {
		_spec.SetField(issue.FieldElement, field.TypeString, value)
	}
	if _u.mutation.ElementCleared() {
		_spec.ClearField(issue.FieldElement, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(issue.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(issue.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IssueType(); ok {
		_spec.SetField(issue.FieldIssueType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Heuristic(); ok {
		_spec.SetField(issue.FieldHeuristic, field.TypeString, value)
	}
	if _u.mutation.HeuristicCleared() {
		_spec.ClearField(issue.FieldHeuristic, field.TypeString)
	}
	if value, ok := _u.mutation.WcagCriterion(); ok {
		_spec.SetField(issue.FieldWcagCriterion, field.TypeString, value)
	}
	if _u.mutation.WcagCriterionCleared() {
		_spec.ClearField(issue.FieldWcagCriterion, field.TypeString)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(issue.FieldRecommendation, field.TypeString, value)
	}
	if _u.mutation.RecommendationCleared() {
		_spec.ClearField(issue.FieldRecommendation, field.TypeString)
	}
	if value, ok := _u.mutation.PageURL(); ok {
		_spec.SetField(issue.FieldPageURL, field.TypeString, value)
	}
	if _u.mutation.PageURLCleared() {
		_spec.ClearField(issue.FieldPageURL, field.TypeString)
	}
	if value, ok := _u.mutation.TimesSeen(); ok {
		_spec.SetField(issue.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimesSeen(); ok {
		_spec.AddField(issue.FieldTimesSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsRegression(); ok {
		_spec.SetField(issue.FieldIsRegression, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PriorityScore(); ok {
		_spec.SetField(issue.FieldPriorityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPriorityScore(); ok {
		_spec.AddField(issue.FieldPriorityScore, field.TypeFloat64, value)
	}
	if _u.mutation.StepCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Issue{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{issue.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
