// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/predicate"
	"github.com/wanderlens/wanderlens/ent/session"
)

// PersonaUpdate is the builder for updating Persona entities.
type PersonaUpdate struct {
	config
	hooks    []Hook
	mutation *PersonaMutation
}

// Where appends a list predicates to the PersonaUpdate builder.
func (_u *PersonaUpdate) Where(ps ...predicate.Persona) *PersonaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *PersonaUpdate) SetTemplateID(v string) *PersonaUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableTemplateID(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *PersonaUpdate) ClearTemplateID() *PersonaUpdate {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetProfile sets the "profile" field.
func (_u *PersonaUpdate) SetProfile(v map[string]interface{}) *PersonaUpdate {
	_u.mutation.SetProfile(v)
	return _u
}

// SetModelChoice sets the "model_choice" field.
func (_u *PersonaUpdate) SetModelChoice(v string) *PersonaUpdate {
	_u.mutation.SetModelChoice(v)
	return _u
}

// SetNillableModelChoice sets the "model_choice" field if the given value is not nil.
func (_u *PersonaUpdate) SetNillableModelChoice(v *string) *PersonaUpdate {
	if v != nil {
		_u.SetModelChoice(*v)
	}
	return _u
}

// ClearModelChoice clears the value of the "model_choice" field.
func (_u *PersonaUpdate) ClearModelChoice() *PersonaUpdate {
	_u.mutation.ClearModelChoice()
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *PersonaUpdate) AddSessionIDs(ids ...string) *PersonaUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *PersonaUpdate) AddSessions(v ...*Session) *PersonaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the PersonaMutation object of the builder.
func (_u *PersonaUpdate) Mutation() *PersonaMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *PersonaUpdate) ClearSessions() *PersonaUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *PersonaUpdate) RemoveSessionIDs(ids ...string) *PersonaUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *PersonaUpdate) RemoveSessions(v ...*Session) *PersonaUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonaUpdate) check() error {
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Persona.study"`)
	}
	return nil
}

func (_u *PersonaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(persona.Table, persona.Columns, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(persona.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(persona.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(persona.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ModelChoice(); ok {
		_spec.SetField(persona.FieldModelChoice, field.TypeString, value)
	}
	if _u.mutation.ModelChoiceCleared() {
		_spec.ClearField(persona.FieldModelChoice, field.TypeString)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   persona.SessionsTable,
			Columns: []string{persona.SessionsColumn},
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
			Table:   persona.SessionsTable,
			Columns: []string{persona.SessionsColumn},
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
			Table:   persona.SessionsTable,
			Columns: []string{persona.SessionsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{persona.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonaUpdateOne is the builder for updating a single Persona entity.
type PersonaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonaMutation
}

// SetTemplateID sets the "template_id" field.
func (_u *PersonaUpdateOne) SetTemplateID(v string) *PersonaUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableTemplateID(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// ClearTemplateID clears the value of the "template_id" field.
func (_u *PersonaUpdateOne) ClearTemplateID() *PersonaUpdateOne {
	_u.mutation.ClearTemplateID()
	return _u
}

// SetProfile sets the "profile" field.
func (_u *PersonaUpdateOne) SetProfile(v map[string]interface{}) *PersonaUpdateOne {
	_u.mutation.SetProfile(v)
	return _u
}

// SetModelChoice sets the "model_choice" field.
func (_u *PersonaUpdateOne) SetModelChoice(v string) *PersonaUpdateOne {
	_u.mutation.SetModelChoice(v)
	return _u
}

// SetNillableModelChoice sets the "model_choice" field if the given value is not nil.
func (_u *PersonaUpdateOne) SetNillableModelChoice(v *string) *PersonaUpdateOne {
	if v != nil {
		_u.SetModelChoice(*v)
	}
	return _u
}

// ClearModelChoice clears the value of the "model_choice" field.
func (_u *PersonaUpdateOne) ClearModelChoice() *PersonaUpdateOne {
	_u.mutation.ClearModelChoice()
	return _u
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_u *PersonaUpdateOne) AddSessionIDs(ids ...string) *PersonaUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_u *PersonaUpdateOne) AddSessions(v ...*Session) *PersonaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the PersonaMutation object of the builder.
func (_u *PersonaUpdateOne) Mutation() *PersonaMutation {
	return _u.mutation
}

// ClearSessions clears all "sessions" edges to the Session entity.
func (_u *PersonaUpdateOne) ClearSessions() *PersonaUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to Session entities by IDs.
func (_u *PersonaUpdateOne) RemoveSessionIDs(ids ...string) *PersonaUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to Session entities.
func (_u *PersonaUpdateOne) RemoveSessions(v ...*Session) *PersonaUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the PersonaUpdate builder.
func (_u *PersonaUpdateOne) Where(ps ...predicate.Persona) *PersonaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonaUpdateOne) Select(field string, fields ...string) *PersonaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Persona entity.
func (_u *PersonaUpdateOne) Save(ctx context.Context) (*Persona, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonaUpdateOne) SaveX(ctx context.Context) *Persona {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonaUpdateOne) check() error {
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Persona.study"`)
	}
	return nil
}

func (_u *PersonaUpdateOne) sqlSave(ctx context.Context) (_node *Persona, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(persona.Table, persona.Columns, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Persona.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, persona.FieldID)
		for _, f := range fields {
			if !persona.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != persona.FieldID {
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
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(persona.FieldTemplateID, field.TypeString, value)
	}
	if _u.mutation.TemplateIDCleared() {
		_spec.ClearField(persona.FieldTemplateID, field.TypeString)
	}
	if value, ok := _u.mutation.Profile(); ok {
		_spec.SetField(persona.FieldProfile, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ModelChoice(); ok {
		_spec.SetField(persona.FieldModelChoice, field.TypeString, value)
	}
	if _u.mutation.ModelChoiceCleared() {
		_spec.ClearField(persona.FieldModelChoice, field.TypeString)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   persona.SessionsTable,
			Columns: []string{persona.SessionsColumn},
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
			Table:   persona.SessionsTable,
			Columns: []string{persona.SessionsColumn},
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
			Table:   persona.SessionsTable,
			Columns: []string{persona.SessionsColumn},
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
	_node = &Persona{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{persona.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
