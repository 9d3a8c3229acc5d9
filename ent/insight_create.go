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
	"github.com/wanderlens/wanderlens/ent/study"
)

// InsightCreate is the builder for creating a Insight entity.
type InsightCreate struct {
	config
	mutation *InsightMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *InsightCreate) SetStudyID(v string) *InsightCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *InsightCreate) SetType(v insight.Type) *InsightCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *InsightCreate) SetTitle(v string) *InsightCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *InsightCreate) SetDescription(v string) *InsightCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *InsightCreate) SetSeverity(v string) *InsightCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *InsightCreate) SetNillableSeverity(v *string) *InsightCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetImpact sets the "impact" field.
func (_c *InsightCreate) SetImpact(v string) *InsightCreate {
	_c.mutation.SetImpact(v)
	return _c
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_c *InsightCreate) SetNillableImpact(v *string) *InsightCreate {
	if v != nil {
		_c.SetImpact(*v)
	}
	return _c
}

// SetEffort sets the "effort" field.
func (_c *InsightCreate) SetEffort(v string) *InsightCreate {
	_c.mutation.SetEffort(v)
	return _c
}

// SetNillableEffort sets the "effort" field if the given value is not nil.
func (_c *InsightCreate) SetNillableEffort(v *string) *InsightCreate {
	if v != nil {
		_c.SetEffort(*v)
	}
	return _c
}

// SetPersonasAffected sets the "personas_affected" field.
func (_c *InsightCreate) SetPersonasAffected(v []string) *InsightCreate {
	_c.mutation.SetPersonasAffected(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *InsightCreate) SetEvidence(v string) *InsightCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetNillableEvidence sets the "evidence" field if the given value is not nil.
func (_c *InsightCreate) SetNillableEvidence(v *string) *InsightCreate {
	if v != nil {
		_c.SetEvidence(*v)
	}
	return _c
}

// SetRank sets the "rank" field.
func (_c *InsightCreate) SetRank(v int) *InsightCreate {
	_c.mutation.SetRank(v)
	return _c
}

// SetNillableRank sets the "rank" field if the given value is not nil.
func (_c *InsightCreate) SetNillableRank(v *int) *InsightCreate {
	if v != nil {
		_c.SetRank(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightCreate) SetCreatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableCreatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightCreate) SetID(v string) *InsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *InsightCreate) SetStudy(v *Study) *InsightCreate {
	return _c.SetStudyID(v.ID)
}

// Mutation returns the InsightMutation object of the builder.
func (_c *InsightCreate) Mutation() *InsightMutation {
	return _c.mutation
}

// Save creates the Insight in the database.
func (_c *InsightCreate) Save(ctx context.Context) (*Insight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightCreate) SaveX(ctx context.Context) *Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightCreate) defaults() {
	if _, ok := _c.mutation.Rank(); !ok {
		v := insight.DefaultRank
		_c.mutation.SetRank(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Insight.study_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Insight.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := insight.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Insight.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Insight.title"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Insight.description"`)}
	}
	if _, ok := _c.mutation.Rank(); !ok {
		return &ValidationError{Name: "rank", err: errors.New(`ent: missing required field "Insight.rank"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Insight.created_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Insight.study"`)}
	}
	return nil
}

func (_c *InsightCreate) sqlSave(ctx context.Context) (*Insight, error) {
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
			return nil, fmt.Errorf("unexpected Insight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightCreate) createSpec() (*Insight, *sqlgraph.CreateSpec) {
	var (
		_node = &Insight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insight.Table, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(insight.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(insight.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(insight.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(insight.FieldSeverity, field.TypeString, value)
		_node.Severity = &value
	}
	if value, ok := _c.mutation.Impact(); ok {
		_spec.SetField(insight.FieldImpact, field.TypeString, value)
		_node.Impact = &value
	}
	if value, ok := _c.mutation.Effort(); ok {
		_spec.SetField(insight.FieldEffort, field.TypeString, value)
		_node.Effort = &value
	}
	if value, ok := _c.mutation.PersonasAffected(); ok {
		_spec.SetField(insight.FieldPersonasAffected, field.TypeJSON, value)
		_node.PersonasAffected = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(insight.FieldEvidence, field.TypeString, value)
		_node.Evidence = &value
	}
	if value, ok := _c.mutation.Rank(); ok {
		_spec.SetField(insight.FieldRank, field.TypeInt, value)
		_node.Rank = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insight.StudyTable,
			Columns: []string{insight.StudyColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Insight.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightCreate) OnConflict(opts ...sql.ConflictOption) *InsightUpsertOne {
	_c.conflict = opts
	return &InsightUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightCreate) OnConflictColumns(columns ...string) *InsightUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightUpsertOne{
		create: _c,
	}
}

type (
	// InsightUpsertOne is the builder for "upsert"-ing
	//  one Insight node.
	InsightUpsertOne struct {
		create *InsightCreate
	}

	// InsightUpsert is the "OnConflict" setter.
	InsightUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *InsightUpsert) SetType(v insight.Type) *InsightUpsert {
	u.Set(insight.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *InsightUpsert) UpdateType() *InsightUpsert {
	u.SetExcluded(insight.FieldType)
	return u
}

// SetTitle sets the "title" field.
func (u *InsightUpsert) SetTitle(v string) *InsightUpsert {
	u.Set(insight.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InsightUpsert) UpdateTitle() *InsightUpsert {
	u.SetExcluded(insight.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *InsightUpsert) SetDescription(v string) *InsightUpsert {
	u.Set(insight.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InsightUpsert) UpdateDescription() *InsightUpsert {
	u.SetExcluded(insight.FieldDescription)
	return u
}

// SetSeverity sets the "severity" field.
func (u *InsightUpsert) SetSeverity(v string) *InsightUpsert {
	u.Set(insight.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InsightUpsert) UpdateSeverity() *InsightUpsert {
	u.SetExcluded(insight.FieldSeverity)
	return u
}

// ClearSeverity clears the value of the "severity" field.
func (u *InsightUpsert) ClearSeverity() *InsightUpsert {
	u.SetNull(insight.FieldSeverity)
	return u
}

// SetImpact sets the "impact" field.
func (u *InsightUpsert) SetImpact(v string) *InsightUpsert {
	u.Set(insight.FieldImpact, v)
	return u
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *InsightUpsert) UpdateImpact() *InsightUpsert {
	u.SetExcluded(insight.FieldImpact)
	return u
}

// ClearImpact clears the value of the "impact" field.
func (u *InsightUpsert) ClearImpact() *InsightUpsert {
	u.SetNull(insight.FieldImpact)
	return u
}

// SetEffort sets the "effort" field.
func (u *InsightUpsert) SetEffort(v string) *InsightUpsert {
	u.Set(insight.FieldEffort, v)
	return u
}

// UpdateEffort sets the "effort" field to the value that was provided on create.
func (u *InsightUpsert) UpdateEffort() *InsightUpsert {
	u.SetExcluded(insight.FieldEffort)
	return u
}

// ClearEffort clears the value of the "effort" field.
func (u *InsightUpsert) ClearEffort() *InsightUpsert {
	u.SetNull(insight.FieldEffort)
	return u
}

// SetPersonasAffected sets the "personas_affected" field.
func (u *InsightUpsert) SetPersonasAffected(v []string) *InsightUpsert {
	u.Set(insight.FieldPersonasAffected, v)
	return u
}

// UpdatePersonasAffected sets the "personas_affected" field to the value that was provided on create.
func (u *InsightUpsert) UpdatePersonasAffected() *InsightUpsert {
	u.SetExcluded(insight.FieldPersonasAffected)
	return u
}

// ClearPersonasAffected clears the value of the "personas_affected" field.
func (u *InsightUpsert) ClearPersonasAffected() *InsightUpsert {
	u.SetNull(insight.FieldPersonasAffected)
	return u
}

// SetEvidence sets the "evidence" field.
func (u *InsightUpsert) SetEvidence(v string) *InsightUpsert {
	u.Set(insight.FieldEvidence, v)
	return u
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *InsightUpsert) UpdateEvidence() *InsightUpsert {
	u.SetExcluded(insight.FieldEvidence)
	return u
}

// ClearEvidence clears the value of the "evidence" field.
func (u *InsightUpsert) ClearEvidence() *InsightUpsert {
	u.SetNull(insight.FieldEvidence)
	return u
}

// SetRank sets the "rank" field.
func (u *InsightUpsert) SetRank(v int) *InsightUpsert {
	u.Set(insight.FieldRank, v)
	return u
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *InsightUpsert) UpdateRank() *InsightUpsert {
	u.SetExcluded(insight.FieldRank)
	return u
}

// AddRank adds v to the "rank" field.
func (u *InsightUpsert) AddRank(v int) *InsightUpsert {
	u.Add(insight.FieldRank, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insight.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightUpsertOne) UpdateNewValues() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(insight.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(insight.FieldStudyID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(insight.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InsightUpsertOne) Ignore() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightUpsertOne) DoNothing() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightCreate.OnConflict
// documentation for more info.
func (u *InsightUpsertOne) Update(set func(*InsightUpsert)) *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *InsightUpsertOne) SetType(v insight.Type) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateType() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateType()
	})
}

// SetTitle sets the "title" field.
func (u *InsightUpsertOne) SetTitle(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateTitle() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *InsightUpsertOne) SetDescription(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateDescription() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateDescription()
	})
}

// SetSeverity sets the "severity" field.
func (u *InsightUpsertOne) SetSeverity(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateSeverity() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *InsightUpsertOne) ClearSeverity() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearSeverity()
	})
}

// SetImpact sets the "impact" field.
func (u *InsightUpsertOne) SetImpact(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetImpact(v)
	})
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateImpact() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateImpact()
	})
}

// ClearImpact clears the value of the "impact" field.
func (u *InsightUpsertOne) ClearImpact() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearImpact()
	})
}

// SetEffort sets the "effort" field.
func (u *InsightUpsertOne) SetEffort(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetEffort(v)
	})
}

// UpdateEffort sets the "effort" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateEffort() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEffort()
	})
}

// ClearEffort clears the value of the "effort" field.
func (u *InsightUpsertOne) ClearEffort() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearEffort()
	})
}

// SetPersonasAffected sets the "personas_affected" field.
func (u *InsightUpsertOne) SetPersonasAffected(v []string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetPersonasAffected(v)
	})
}

// UpdatePersonasAffected sets the "personas_affected" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdatePersonasAffected() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdatePersonasAffected()
	})
}

// ClearPersonasAffected clears the value of the "personas_affected" field.
func (u *InsightUpsertOne) ClearPersonasAffected() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearPersonasAffected()
	})
}

// SetEvidence sets the "evidence" field.
func (u *InsightUpsertOne) SetEvidence(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateEvidence() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *InsightUpsertOne) ClearEvidence() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.ClearEvidence()
	})
}

// SetRank sets the "rank" field.
func (u *InsightUpsertOne) SetRank(v int) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *InsightUpsertOne) AddRank(v int) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateRank() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateRank()
	})
}

// Exec executes the query.
func (u *InsightUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InsightUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InsightUpsertOne.ID is not supported by MySQL driver. Use InsightUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InsightUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InsightCreateBulk is the builder for creating many Insight entities in bulk.
type InsightCreateBulk struct {
	config
	err      error
	builders []*InsightCreate
	conflict []sql.ConflictOption
}

// Save creates the Insight entities in the database.
func (_c *InsightCreateBulk) Save(ctx context.Context) ([]*Insight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Insight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightMutation)
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
func (_c *InsightCreateBulk) SaveX(ctx context.Context) []*Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Insight.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightCreateBulk) OnConflict(opts ...sql.ConflictOption) *InsightUpsertBulk {
	_c.conflict = opts
	return &InsightUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightCreateBulk) OnConflictColumns(columns ...string) *InsightUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightUpsertBulk{
		create: _c,
	}
}

// InsightUpsertBulk is the builder for "upsert"-ing
// a bulk of Insight nodes.
type InsightUpsertBulk struct {
	create *InsightCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insight.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightUpsertBulk) UpdateNewValues() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(insight.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(insight.FieldStudyID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(insight.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InsightUpsertBulk) Ignore() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightUpsertBulk) DoNothing() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightCreateBulk.OnConflict
// documentation for more info.
func (u *InsightUpsertBulk) Update(set func(*InsightUpsert)) *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *InsightUpsertBulk) SetType(v insight.Type) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateType() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateType()
	})
}

// SetTitle sets the "title" field.
func (u *InsightUpsertBulk) SetTitle(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateTitle() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *InsightUpsertBulk) SetDescription(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateDescription() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateDescription()
	})
}

// SetSeverity sets the "severity" field.
func (u *InsightUpsertBulk) SetSeverity(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateSeverity() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *InsightUpsertBulk) ClearSeverity() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearSeverity()
	})
}

// SetImpact sets the "impact" field.
func (u *InsightUpsertBulk) SetImpact(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetImpact(v)
	})
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateImpact() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateImpact()
	})
}

// ClearImpact clears the value of the "impact" field.
func (u *InsightUpsertBulk) ClearImpact() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearImpact()
	})
}

// SetEffort sets the "effort" field.
func (u *InsightUpsertBulk) SetEffort(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetEffort(v)
	})
}

// UpdateEffort sets the "effort" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateEffort() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEffort()
	})
}

// ClearEffort clears the value of the "effort" field.
func (u *InsightUpsertBulk) ClearEffort() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearEffort()
	})
}

// SetPersonasAffected sets the "personas_affected" field.
func (u *InsightUpsertBulk) SetPersonasAffected(v []string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetPersonasAffected(v)
	})
}

// UpdatePersonasAffected sets the "personas_affected" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdatePersonasAffected() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdatePersonasAffected()
	})
}

// ClearPersonasAffected clears the value of the "personas_affected" field.
func (u *InsightUpsertBulk) ClearPersonasAffected() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearPersonasAffected()
	})
}

// SetEvidence sets the "evidence" field.
func (u *InsightUpsertBulk) SetEvidence(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateEvidence() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *InsightUpsertBulk) ClearEvidence() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.ClearEvidence()
	})
}

// SetRank sets the "rank" field.
func (u *InsightUpsertBulk) SetRank(v int) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetRank(v)
	})
}

// AddRank adds v to the "rank" field.
func (u *InsightUpsertBulk) AddRank(v int) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.AddRank(v)
	})
}

// UpdateRank sets the "rank" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateRank() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateRank()
	})
}

// Exec executes the query.
func (u *InsightUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InsightCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
