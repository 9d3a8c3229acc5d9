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
	"github.com/wanderlens/wanderlens/ent/schedule"
	"github.com/wanderlens/wanderlens/ent/study"
)

// ScheduleCreate is the builder for creating a Schedule entity.
type ScheduleCreate struct {
	config
	mutation *ScheduleMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *ScheduleCreate) SetStudyID(v string) *ScheduleCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetCronExpr sets the "cron_expr" field.
func (_c *ScheduleCreate) SetCronExpr(v string) *ScheduleCreate {
	_c.mutation.SetCronExpr(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduleCreate) SetStatus(v schedule.Status) *ScheduleCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableStatus(v *schedule.Status) *ScheduleCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNextRunAt sets the "next_run_at" field.
func (_c *ScheduleCreate) SetNextRunAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetNextRunAt(v)
	return _c
}

// SetNillableNextRunAt sets the "next_run_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableNextRunAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetNextRunAt(*v)
	}
	return _c
}

// SetLastRunAt sets the "last_run_at" field.
func (_c *ScheduleCreate) SetLastRunAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetLastRunAt(v)
	return _c
}

// SetNillableLastRunAt sets the "last_run_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableLastRunAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetLastRunAt(*v)
	}
	return _c
}

// SetRunCount sets the "run_count" field.
func (_c *ScheduleCreate) SetRunCount(v int) *ScheduleCreate {
	_c.mutation.SetRunCount(v)
	return _c
}

// SetNillableRunCount sets the "run_count" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableRunCount(v *int) *ScheduleCreate {
	if v != nil {
		_c.SetRunCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduleCreate) SetCreatedAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableCreatedAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduleCreate) SetUpdatedAt(v time.Time) *ScheduleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduleCreate) SetNillableUpdatedAt(v *time.Time) *ScheduleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleCreate) SetID(v string) *ScheduleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *ScheduleCreate) SetStudy(v *Study) *ScheduleCreate {
	return _c.SetStudyID(v.ID)
}

// Mutation returns the ScheduleMutation object of the builder.
func (_c *ScheduleCreate) Mutation() *ScheduleMutation {
	return _c.mutation
}

// Save creates the Schedule in the database.
func (_c *ScheduleCreate) Save(ctx context.Context) (*Schedule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleCreate) SaveX(ctx context.Context) *Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := schedule.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		v := schedule.DefaultRunCount
		_c.mutation.SetRunCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := schedule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := schedule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "Schedule.study_id"`)}
	}
	if _, ok := _c.mutation.CronExpr(); !ok {
		return &ValidationError{Name: "cron_expr", err: errors.New(`ent: missing required field "Schedule.cron_expr"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Schedule.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := schedule.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Schedule.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RunCount(); !ok {
		return &ValidationError{Name: "run_count", err: errors.New(`ent: missing required field "Schedule.run_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Schedule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Schedule.updated_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "Schedule.study"`)}
	}
	return nil
}

func (_c *ScheduleCreate) sqlSave(ctx context.Context) (*Schedule, error) {
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
			return nil, fmt.Errorf("unexpected Schedule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleCreate) createSpec() (*Schedule, *sqlgraph.CreateSpec) {
	var (
		_node = &Schedule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(schedule.Table, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CronExpr(); ok {
		_spec.SetField(schedule.FieldCronExpr, field.TypeString, value)
		_node.CronExpr = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(schedule.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.NextRunAt(); ok {
		_spec.SetField(schedule.FieldNextRunAt, field.TypeTime, value)
		_node.NextRunAt = &value
	}
	if value, ok := _c.mutation.LastRunAt(); ok {
		_spec.SetField(schedule.FieldLastRunAt, field.TypeTime, value)
		_node.LastRunAt = &value
	}
	if value, ok := _c.mutation.RunCount(); ok {
		_spec.SetField(schedule.FieldRunCount, field.TypeInt, value)
		_node.RunCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(schedule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   schedule.StudyTable,
			Columns: []string{schedule.StudyColumn},
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
//	client.Schedule.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleCreate) OnConflict(opts ...sql.ConflictOption) *ScheduleUpsertOne {
	_c.conflict = opts
	return &ScheduleUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleCreate) OnConflictColumns(columns ...string) *ScheduleUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleUpsertOne{
		create: _c,
	}
}

type (
	// ScheduleUpsertOne is the builder for "upsert"-ing
	//  one Schedule node.
	ScheduleUpsertOne struct {
		create *ScheduleCreate
	}

	// ScheduleUpsert is the "OnConflict" setter.
	ScheduleUpsert struct {
		*sql.UpdateSet
	}
)

// SetCronExpr sets the "cron_expr" field.
func (u *ScheduleUpsert) SetCronExpr(v string) *ScheduleUpsert {
	u.Set(schedule.FieldCronExpr, v)
	return u
}

// UpdateCronExpr sets the "cron_expr" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateCronExpr() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldCronExpr)
	return u
}

// SetStatus sets the "status" field.
func (u *ScheduleUpsert) SetStatus(v schedule.Status) *ScheduleUpsert {
	u.Set(schedule.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateStatus() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldStatus)
	return u
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduleUpsert) SetNextRunAt(v time.Time) *ScheduleUpsert {
	u.Set(schedule.FieldNextRunAt, v)
	return u
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateNextRunAt() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldNextRunAt)
	return u
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ScheduleUpsert) ClearNextRunAt() *ScheduleUpsert {
	u.SetNull(schedule.FieldNextRunAt)
	return u
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduleUpsert) SetLastRunAt(v time.Time) *ScheduleUpsert {
	u.Set(schedule.FieldLastRunAt, v)
	return u
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateLastRunAt() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldLastRunAt)
	return u
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduleUpsert) ClearLastRunAt() *ScheduleUpsert {
	u.SetNull(schedule.FieldLastRunAt)
	return u
}

// SetRunCount sets the "run_count" field.
func (u *ScheduleUpsert) SetRunCount(v int) *ScheduleUpsert {
	u.Set(schedule.FieldRunCount, v)
	return u
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateRunCount() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldRunCount)
	return u
}

// AddRunCount adds v to the "run_count" field.
func (u *ScheduleUpsert) AddRunCount(v int) *ScheduleUpsert {
	u.Add(schedule.FieldRunCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleUpsert) SetUpdatedAt(v time.Time) *ScheduleUpsert {
	u.Set(schedule.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleUpsert) UpdateUpdatedAt() *ScheduleUpsert {
	u.SetExcluded(schedule.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleUpsertOne) UpdateNewValues() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(schedule.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(schedule.FieldStudyID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(schedule.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduleUpsertOne) Ignore() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleUpsertOne) DoNothing() *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleCreate.OnConflict
// documentation for more info.
func (u *ScheduleUpsertOne) Update(set func(*ScheduleUpsert)) *ScheduleUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetCronExpr sets the "cron_expr" field.
func (u *ScheduleUpsertOne) SetCronExpr(v string) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetCronExpr(v)
	})
}

// UpdateCronExpr sets the "cron_expr" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateCronExpr() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateCronExpr()
	})
}

// SetStatus sets the "status" field.
func (u *ScheduleUpsertOne) SetStatus(v schedule.Status) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateStatus() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateStatus()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduleUpsertOne) SetNextRunAt(v time.Time) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateNextRunAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ScheduleUpsertOne) ClearNextRunAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduleUpsertOne) SetLastRunAt(v time.Time) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateLastRunAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduleUpsertOne) ClearLastRunAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearLastRunAt()
	})
}

// SetRunCount sets the "run_count" field.
func (u *ScheduleUpsertOne) SetRunCount(v int) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetRunCount(v)
	})
}

// AddRunCount adds v to the "run_count" field.
func (u *ScheduleUpsertOne) AddRunCount(v int) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.AddRunCount(v)
	})
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateRunCount() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateRunCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleUpsertOne) SetUpdatedAt(v time.Time) *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleUpsertOne) UpdateUpdatedAt() *ScheduleUpsertOne {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScheduleUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduleCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduleUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduleUpsertOne.ID is not supported by MySQL driver. Use ScheduleUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduleUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduleCreateBulk is the builder for creating many Schedule entities in bulk.
type ScheduleCreateBulk struct {
	config
	err      error
	builders []*ScheduleCreate
	conflict []sql.ConflictOption
}

// Save creates the Schedule entities in the database.
func (_c *ScheduleCreateBulk) Save(ctx context.Context) ([]*Schedule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Schedule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleMutation)
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
func (_c *ScheduleCreateBulk) SaveX(ctx context.Context) []*Schedule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Schedule.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduleUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduleCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduleUpsertBulk {
	_c.conflict = opts
	return &ScheduleUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduleCreateBulk) OnConflictColumns(columns ...string) *ScheduleUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduleUpsertBulk{
		create: _c,
	}
}

// ScheduleUpsertBulk is the builder for "upsert"-ing
// a bulk of Schedule nodes.
type ScheduleUpsertBulk struct {
	create *ScheduleCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(schedule.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduleUpsertBulk) UpdateNewValues() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(schedule.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(schedule.FieldStudyID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(schedule.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Schedule.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduleUpsertBulk) Ignore() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduleUpsertBulk) DoNothing() *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduleCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduleUpsertBulk) Update(set func(*ScheduleUpsert)) *ScheduleUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduleUpsert{UpdateSet: update})
	}))
	return u
}

// SetCronExpr sets the "cron_expr" field.
func (u *ScheduleUpsertBulk) SetCronExpr(v string) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetCronExpr(v)
	})
}

// UpdateCronExpr sets the "cron_expr" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateCronExpr() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateCronExpr()
	})
}

// SetStatus sets the "status" field.
func (u *ScheduleUpsertBulk) SetStatus(v schedule.Status) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateStatus() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateStatus()
	})
}

// SetNextRunAt sets the "next_run_at" field.
func (u *ScheduleUpsertBulk) SetNextRunAt(v time.Time) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetNextRunAt(v)
	})
}

// UpdateNextRunAt sets the "next_run_at" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateNextRunAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateNextRunAt()
	})
}

// ClearNextRunAt clears the value of the "next_run_at" field.
func (u *ScheduleUpsertBulk) ClearNextRunAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearNextRunAt()
	})
}

// SetLastRunAt sets the "last_run_at" field.
func (u *ScheduleUpsertBulk) SetLastRunAt(v time.Time) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetLastRunAt(v)
	})
}

// UpdateLastRunAt sets the "last_run_at" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateLastRunAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateLastRunAt()
	})
}

// ClearLastRunAt clears the value of the "last_run_at" field.
func (u *ScheduleUpsertBulk) ClearLastRunAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.ClearLastRunAt()
	})
}

// SetRunCount sets the "run_count" field.
func (u *ScheduleUpsertBulk) SetRunCount(v int) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetRunCount(v)
	})
}

// AddRunCount adds v to the "run_count" field.
func (u *ScheduleUpsertBulk) AddRunCount(v int) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.AddRunCount(v)
	})
}

// UpdateRunCount sets the "run_count" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateRunCount() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateRunCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduleUpsertBulk) SetUpdatedAt(v time.Time) *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduleUpsertBulk) UpdateUpdatedAt() *ScheduleUpsertBulk {
	return u.Update(func(s *ScheduleUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScheduleUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduleCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduleCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduleUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
