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
	"github.com/wanderlens/wanderlens/ent/persona"
	"github.com/wanderlens/wanderlens/ent/session"
	"github.com/wanderlens/wanderlens/ent/study"
)

// PersonaCreate is the builder for creating a Persona entity.
type PersonaCreate struct {
	config
	mutation *PersonaMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *PersonaCreate) SetStudyID(v string) *PersonaCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *PersonaCreate) SetTemplateID(v string) *PersonaCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableTemplateID(v *string) *PersonaCreate {
	if v != nil {
		_c.SetTemplateID(*v)
	}
	return _c
}

// SetProfile sets the "profile" field.
func (_c *PersonaCreate) SetProfile(v map[string]interface{}) *PersonaCreate {
	_c.mutation.SetProfile(v)
	return _c
}

// SetModelChoice sets the "model_choice" field.
func (_c *PersonaCreate) SetModelChoice(v string) *PersonaCreate {
	_c.mutation.SetModelChoice(v)
	return _c
}

// SetNillableModelChoice sets the "model_choice" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableModelChoice(v *string) *PersonaCreate {
	if v != nil {
		_c.SetModelChoice(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonaCreate) SetCreatedAt(v time.Time) *PersonaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonaCreate) SetNillableCreatedAt(v *time.Time) *PersonaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonaCreate) SetID(v string) *PersonaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *PersonaCreate) SetStudy(v *Study) *PersonaCreate {
	return _c.SetStudyID(v.ID)
}

// AddSessionIDs adds the "sessions" edge to the Session entity by IDs.
func (_c *PersonaCreate) AddSessionIDs(ids ...string) *PersonaCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the Session entity.
func (_c *PersonaCreate) AddSessions(v ...*Session) *PersonaCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the PersonaMutation object of the builder.
func (_c *PersonaCreate) Mutation() *PersonaMutation {
	return _c.mutation
}

// Save creates the Persona in the database.
func (_c *PersonaCreate) Save(ctx context.Context) (*Persona, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonaCreate) SaveX(ctx context.Context) *Persona {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonaCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := persona.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonaCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Persona.study_id"`)}
	}
	if _, ok := _c.mutation.Profile(); !ok {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required field "Persona.profile"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Persona.created_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Persona.study"`)}
	}
	return nil
}

func (_c *PersonaCreate) sqlSave(ctx context.Context) (*Persona, error) {
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
			return nil, fmt.Errorf("unexpected Persona.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PersonaCreate) createSpec() (*Persona, *sqlgraph.CreateSpec) {
	var (
		_node = &Persona{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(persona.Table, sqlgraph.NewFieldSpec(persona.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(persona.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = &value
	}
	if value, ok := _c.mutation.Profile(); ok {
		_spec.SetField(persona.FieldProfile, field.TypeJSON, value)
		_node.Profile = value
	}
	if value, ok := _c.mutation.ModelChoice(); ok {
		_spec.SetField(persona.FieldModelChoice, field.TypeString, value)
		_node.ModelChoice = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(persona.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   persona.StudyTable,
			Columns: []string{persona.StudyColumn},
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
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Persona.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PersonaUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *PersonaCreate) OnConflict(opts ...sql.ConflictOption) *PersonaUpsertOne {
	_c.conflict = opts
	return &PersonaUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PersonaCreate) OnConflictColumns(columns ...string) *PersonaUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PersonaUpsertOne{
		create: _c,
	}
}

type (
	// PersonaUpsertOne is the builder for "upsert"-ing
	//  one Persona node.
	PersonaUpsertOne struct {
		create *PersonaCreate
	}

	// PersonaUpsert is the "OnConflict" setter.
	PersonaUpsert struct {
		*sql.UpdateSet
	}
)

// SetTemplateID sets the "template_id" field.
func (u *PersonaUpsert) SetTemplateID(v string) *PersonaUpsert {
	u.Set(persona.FieldTemplateID, v)
	return u
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateTemplateID() *PersonaUpsert {
	u.SetExcluded(persona.FieldTemplateID)
	return u
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *PersonaUpsert) ClearTemplateID() *PersonaUpsert {
	u.SetNull(persona.FieldTemplateID)
	return u
}

// SetProfile sets the "profile" field.
func (u *PersonaUpsert) SetProfile(v map[string]interface{}) *PersonaUpsert {
	u.Set(persona.FieldProfile, v)
	return u
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateProfile() *PersonaUpsert {
	u.SetExcluded(persona.FieldProfile)
	return u
}

// SetModelChoice sets the "model_choice" field.
func (u *PersonaUpsert) SetModelChoice(v string) *PersonaUpsert {
	u.Set(persona.FieldModelChoice, v)
	return u
}

// UpdateModelChoice sets the "model_choice" field to the value that was provided on create.
func (u *PersonaUpsert) UpdateModelChoice() *PersonaUpsert {
	u.SetExcluded(persona.FieldModelChoice)
	return u
}

// ClearModelChoice clears the value of the "model_choice" field.
func (u *PersonaUpsert) ClearModelChoice() *PersonaUpsert {
	u.SetNull(persona.FieldModelChoice)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(persona.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PersonaUpsertOne) UpdateNewValues() *PersonaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(persona.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(persona.FieldStudyID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(persona.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Persona.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PersonaUpsertOne) Ignore() *PersonaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PersonaUpsertOne) DoNothing() *PersonaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PersonaCreate.OnConflict
// documentation for more info.
func (u *PersonaUpsertOne) Update(set func(*PersonaUpsert)) *PersonaUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PersonaUpsert{UpdateSet: update})
	}))
	return u
}

// SetTemplateID sets the "template_id" field.
func (u *PersonaUpsertOne) SetTemplateID(v string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetTemplateID(v)
	})
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateTemplateID() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateTemplateID()
	})
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *PersonaUpsertOne) ClearTemplateID() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearTemplateID()
	})
}

// SetProfile sets the "profile" field.
func (u *PersonaUpsertOne) SetProfile(v map[string]interface{}) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetProfile(v)
	})
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateProfile() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateProfile()
	})
}

// SetModelChoice sets the "model_choice" field.
func (u *PersonaUpsertOne) SetModelChoice(v string) *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.SetModelChoice(v)
	})
}

// UpdateModelChoice sets the "model_choice" field to the value that was provided on create.
func (u *PersonaUpsertOne) UpdateModelChoice() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateModelChoice()
	})
}

// ClearModelChoice clears the value of the "model_choice" field.
func (u *PersonaUpsertOne) ClearModelChoice() *PersonaUpsertOne {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearModelChoice()
	})
}

// Exec executes the query.
func (u *PersonaUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PersonaCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PersonaUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PersonaUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PersonaUpsertOne.ID is not supported by MySQL driver. Use PersonaUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PersonaUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PersonaCreateBulk is the builder for creating many Persona entities in bulk.
type PersonaCreateBulk struct {
	config
	err      error
	builders []*PersonaCreate
	conflict []sql.ConflictOption
}

// Save creates the Persona entities in the database.
func (_c *PersonaCreateBulk) Save(ctx context.Context) ([]*Persona, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Persona, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonaMutation)
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
func (_c *PersonaCreateBulk) SaveX(ctx context.Context) []*Persona {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Persona.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PersonaUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *PersonaCreateBulk) OnConflict(opts ...sql.ConflictOption) *PersonaUpsertBulk {
	_c.conflict = opts
	return &PersonaUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PersonaCreateBulk) OnConflictColumns(columns ...string) *PersonaUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PersonaUpsertBulk{
		create: _c,
	}
}

// PersonaUpsertBulk is the builder for "upsert"-ing
// a bulk of Persona nodes.
type PersonaUpsertBulk struct {
	create *PersonaCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(persona.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PersonaUpsertBulk) UpdateNewValues() *PersonaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(persona.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(persona.FieldStudyID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(persona.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Persona.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PersonaUpsertBulk) Ignore() *PersonaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PersonaUpsertBulk) DoNothing() *PersonaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PersonaCreateBulk.OnConflict
// documentation for more info.
func (u *PersonaUpsertBulk) Update(set func(*PersonaUpsert)) *PersonaUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PersonaUpsert{UpdateSet: update})
	}))
	return u
}

// SetTemplateID sets the "template_id" field.
func (u *PersonaUpsertBulk) SetTemplateID(v string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetTemplateID(v)
	})
}

// UpdateTemplateID sets the "template_id" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateTemplateID() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateTemplateID()
	})
}

// ClearTemplateID clears the value of the "template_id" field.
func (u *PersonaUpsertBulk) ClearTemplateID() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearTemplateID()
	})
}

// SetProfile sets the "profile" field.
func (u *PersonaUpsertBulk) SetProfile(v map[string]interface{}) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetProfile(v)
	})
}

// UpdateProfile sets the "profile" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateProfile() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateProfile()
	})
}

// SetModelChoice sets the "model_choice" field.
func (u *PersonaUpsertBulk) SetModelChoice(v string) *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.SetModelChoice(v)
	})
}

// UpdateModelChoice sets the "model_choice" field to the value that was provided on create.
func (u *PersonaUpsertBulk) UpdateModelChoice() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.UpdateModelChoice()
	})
}

// ClearModelChoice clears the value of the "model_choice" field.
func (u *PersonaUpsertBulk) ClearModelChoice() *PersonaUpsertBulk {
	return u.Update(func(s *PersonaUpsert) {
		s.ClearModelChoice()
	})
}

// Exec executes the query.
func (u *PersonaUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PersonaCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PersonaCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PersonaUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
