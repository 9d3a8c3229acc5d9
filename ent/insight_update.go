// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/wanderlens/wanderlens/ent/insight"
	"github.com/wanderlens/wanderlens/ent/predicate"
)

// InsightUpdate is the builder for updating Insight entities.
type InsightUpdate struct {
	config
	hooks    []Hook
	mutation *InsightMutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdate) Where(ps ...predicate.Insight) *InsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *InsightUpdate) SetType(v insight.Type) *InsightUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableType(v *insight.Type) *InsightUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InsightUpdate) SetTitle(v string) *InsightUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableTitle(v *string) *InsightUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InsightUpdate) SetDescription(v string) *InsightUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableDescription(v *string) *InsightUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *InsightUpdate) SetSeverity(v string) *InsightUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableSeverity(v *string) *InsightUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *InsightUpdate) ClearSeverity() *InsightUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetImpact sets the "impact" field.
func (_u *InsightUpdate) SetImpact(v string) *InsightUpdate {
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableImpact(v *string) *InsightUpdate {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// ClearImpact clears the value of the "impact" field.
func (_u *InsightUpdate) ClearImpact() *InsightUpdate {
	_u.mutation.ClearImpact()
	return _u
}

// SetEffort sets the "effort" field.
func (_u *InsightUpdate) SetEffort(v string) *InsightUpdate {
	_u.mutation.SetEffort(v)
	return _u
}

// SetNillableEffort sets the "effort" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableEffort(v *string) *InsightUpdate {
	if v != nil {
		_u.SetEffort(*v)
	}
	return _u
}

// ClearEffort clears the value of the "effort" field.
func (_u *InsightUpdate) ClearEffort() *InsightUpdate {
	_u.mutation.ClearEffort()
	return _u
}

// SetPersonasAffected sets the "personas_affected" field.
func (_u *InsightUpdate) SetPersonasAffected(v []string) *InsightUpdate {
	_u.mutation.SetPersonasAffected(v)
	return _u
}

// AppendPersonasAffected appends value to the "personas_affected" field.
func (_u *InsightUpdate) AppendPersonasAffected(v []string) *InsightUpdate {
	_u.mutation.AppendPersonasAffected(v)
	return _u
}

// ClearPersonasAffected clears the value of the "personas_affected" field.
func (_u *InsightUpdate) ClearPersonasAffected() *InsightUpdate {
	_u.mutation.ClearPersonasAffected()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *InsightUpdate) SetEvidence(v string) *InsightUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableEvidence(v *string) *InsightUpdate {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *InsightUpdate) ClearEvidence() *InsightUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetRank sets the "rank" field.
func (_u *InsightUpdate) SetRank(v int) *InsightUpdate {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableRank(v *int) *InsightUpdate {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *InsightUpdate) AddRank(v int) *InsightUpdate {
	_u.mutation.AddRank(v)
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdate) Mutation() *InsightMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := insight.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Insight.type": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Insight.study"`)
	}
	return nil
}

func (_u *InsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(insight.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(insight.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(insight.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(insight.FieldImpact, field.TypeString, value)
	}
	if _u.mutation.ImpactCleared() {
		_spec.ClearField(insight.FieldImpact, field.TypeString)
	}
	if value, ok := _u.mutation.Effort(); ok {
		_spec.SetField(insight.FieldEffort, field.TypeString, value)
	}
	if _u.mutation.EffortCleared() {
		_spec.ClearField(insight.FieldEffort, field.TypeString)
	}
	if value, ok := _u.mutation.PersonasAffected(); ok {
		_spec.SetField(insight.FieldPersonasAffected, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPersonasAffected(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldPersonasAffected, value)
		})
	}
	if _u.mutation.PersonasAffectedCleared() {
		_spec.ClearField(insight.FieldPersonasAffected, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(insight.FieldEvidence, field.TypeString, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(insight.FieldEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(insight.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(insight.FieldRank, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightUpdateOne is the builder for updating a single Insight entity.
type InsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightMutation
}

// SetType sets the "type" field.
func (_u *InsightUpdateOne) SetType(v insight.Type) *InsightUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableType(v *insight.Type) *InsightUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *InsightUpdateOne) SetTitle(v string) *InsightUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableTitle(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *InsightUpdateOne) SetDescription(v string) *InsightUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableDescription(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *InsightUpdateOne) SetSeverity(v string) *InsightUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableSeverity(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *InsightUpdateOne) ClearSeverity() *InsightUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetImpact sets the "impact" field.
func (_u *InsightUpdateOne) SetImpact(v string) *InsightUpdateOne {
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableImpact(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// ClearImpact clears the value of the "impact" field.
func (_u *InsightUpdateOne) ClearImpact() *InsightUpdateOne {
	_u.mutation.ClearImpact()
	return _u
}

// SetEffort sets the "effort" field.
func (_u *InsightUpdateOne) SetEffort(v string) *InsightUpdateOne {
	_u.mutation.SetEffort(v)
	return _u
}

// SetNillableEffort sets the "effort" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableEffort(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetEffort(*v)
	}
	return _u
}

// ClearEffort clears the value of the "effort" field.
func (_u *InsightUpdateOne) ClearEffort() *InsightUpdateOne {
	_u.mutation.ClearEffort()
	return _u
}

// SetPersonasAffected sets the "personas_affected" field.
func (_u *InsightUpdateOne) SetPersonasAffected(v []string) *InsightUpdateOne {
	_u.mutation.SetPersonasAffected(v)
	return _u
}

// AppendPersonasAffected appends value to the "personas_affected" field.
func (_u *InsightUpdateOne) AppendPersonasAffected(v []string) *InsightUpdateOne {
	_u.mutation.AppendPersonasAffected(v)
	return _u
}

// ClearPersonasAffected clears the value of the "personas_affected" field.
func (_u *InsightUpdateOne) ClearPersonasAffected() *InsightUpdateOne {
	_u.mutation.ClearPersonasAffected()
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *InsightUpdateOne) SetEvidence(v string) *InsightUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableEvidence(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetEvidence(*v)
	}
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *InsightUpdateOne) ClearEvidence() *InsightUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetRank sets the "rank" field.
func (_u *InsightUpdateOne) SetRank(v int) *InsightUpdateOne {
	_u.mutation.ResetRank()
	_u.mutation.SetRank(v)
	return _u
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableRank(v *int) *InsightUpdateOne {
	if v != nil {
		_u.SetRank(*v)
	}
	return _u
}

// AddRank adds value to the "rank" field.
func (_u *InsightUpdateOne) AddRank(v int) *InsightUpdateOne {
	_u.mutation.AddRank(v)
	return _u
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdateOne) Mutation() *InsightMutation {
	return _u.mutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdateOne) Where(ps ...predicate.Insight) *InsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightUpdateOne) Select(field string, fields ...string) *InsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Insight entity.
func (_u *InsightUpdateOne) Save(ctx context.Context) (*Insight, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdateOne) SaveX(ctx context.Context) *Insight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := insight.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Insight.type": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Insight.study"`)
	}
	return nil
}

func (_u *InsightUpdateOne) sqlSave(ctx context.Context) (_node *Insight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for _, f := range fields {
			if !insight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insight.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(insight.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(insight.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(insight.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(insight.FieldImpact, field.TypeString, value)
	}
	if _u.mutation.ImpactCleared() {
		_spec.ClearField(insight.FieldImpact, field.TypeString)
	}
	if value, ok := _u.mutation.Effort(); ok {
		_spec.SetField(insight.FieldEffort, field.TypeString, value)
	}
	if _u.mutation.EffortCleared() {
		_spec.ClearField(insight.FieldEffort, field.TypeString)
	}
	if value, ok := _u.mutation.PersonasAffected(); ok {
		_spec.SetField(insight.FieldPersonasAffected, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPersonasAffected(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, insight.FieldPersonasAffected, value)
		})
	}
	if _u.mutation.PersonasAffectedCleared() {
		_spec.ClearField(insight.FieldPersonasAffected, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(insight.FieldEvidence, field.TypeString, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(insight.FieldEvidence, field.TypeString)
	}
	if value, ok := _u.mutation.Rank(); ok {
		_spec.SetField(insight.FieldRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRank(); ok {
		_spec.AddField(insight.FieldRank, field.TypeInt, value)
	}
	_node = &Insight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
