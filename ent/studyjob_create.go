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
	"github.com/wanderlens/wanderlens/ent/study"
	"github.com/wanderlens/wanderlens/ent/studyjob"
)

// StudyJobCreate is the builder for creating a StudyJob entity.
type StudyJobCreate struct {
	config
	mutation *StudyJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStudyID sets the "study_id" field.
func (_c *StudyJobCreate) SetStudyID(v string) *StudyJobCreate {
	_c.mutation.SetStudyID(v)
	return _c
}

// SetBrowserMode sets the "browser_mode" field.
func (_c *StudyJobCreate) SetBrowserMode(v studyjob.BrowserMode) *StudyJobCreate {
	_c.mutation.SetBrowserMode(v)
	return _c
}

// SetNillableBrowserMode sets the "browser_mode" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableBrowserMode(v *studyjob.BrowserMode) *StudyJobCreate {
	if v != nil {
		_c.SetBrowserMode(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudyJobCreate) SetStatus(v studyjob.Status) *StudyJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableStatus(v *studyjob.Status) *StudyJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *StudyJobCreate) SetAttempts(v int) *StudyJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableAttempts(v *int) *StudyJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *StudyJobCreate) SetMaxAttempts(v int) *StudyJobCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableMaxAttempts(v *int) *StudyJobCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *StudyJobCreate) SetTimeoutSeconds(v int) *StudyJobCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableTimeoutSeconds(v *int) *StudyJobCreate {
	if v != nil {
		_c.SetTimeoutSeconds(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *StudyJobCreate) SetPodID(v string) *StudyJobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillablePodID(v *string) *StudyJobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *StudyJobCreate) SetClaimedAt(v time.Time) *StudyJobCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableClaimedAt(v *time.Time) *StudyJobCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *StudyJobCreate) SetLastHeartbeatAt(v time.Time) *StudyJobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableLastHeartbeatAt(v *time.Time) *StudyJobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *StudyJobCreate) SetErrorMessage(v string) *StudyJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableErrorMessage(v *string) *StudyJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudyJobCreate) SetCreatedAt(v time.Time) *StudyJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableCreatedAt(v *time.Time) *StudyJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudyJobCreate) SetUpdatedAt(v time.Time) *StudyJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudyJobCreate) SetNillableUpdatedAt(v *time.Time) *StudyJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudyJobCreate) SetID(v string) *StudyJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetStudy sets the "study" edge to the Study entity.
func (_c *StudyJobCreate) SetStudy(v *Study) *StudyJobCreate {
	return _c.SetStudyID(v.ID)
}

// Mutation returns the StudyJobMutation object of the builder.
func (_c *StudyJobCreate) Mutation() *StudyJobMutation {
	return _c.mutation
}

// Save creates the StudyJob in the database.
func (_c *StudyJobCreate) Save(ctx context.Context) (*StudyJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudyJobCreate) SaveX(ctx context.Context) *StudyJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudyJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := studyjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := studyjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := studyjob.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		v := studyjob.DefaultTimeoutSeconds
		_c.mutation.SetTimeoutSeconds(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studyjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studyjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudyJobCreate) check() error {
	if _, ok := _c.mutation.StudyID(); !ok {
		return &ValidationError{Name: "study_id", err: errors.New(`ent: missing required field "StudyJob.study_id"`)}
	}
	if v, ok := _c.mutation.BrowserMode(); ok {
		if err := studyjob.BrowserModeValidator(v); err != nil {
			return &ValidationError{Name: "browser_mode", err: fmt.Errorf(`ent: validator failed for field "StudyJob.browser_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StudyJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := studyjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudyJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "StudyJob.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "StudyJob.max_attempts"`)}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "StudyJob.timeout_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudyJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StudyJob.updated_at"`)}
	}
	if len(_c.mutation.StudyIDs()) == 0 {
		return &ValidationError{Name: "study", err: errors.New(`ent: missing required edge "StudyJob.study"`)}
	}
	return nil
}

func (_c *StudyJobCreate) sqlSave(ctx context.Context) (*StudyJob, error) {
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
			return nil, fmt.Errorf("unexpected StudyJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StudyJobCreate) createSpec() (*StudyJob, *sqlgraph.CreateSpec) {
	var (
		_node = &StudyJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studyjob.Table, sqlgraph.NewFieldSpec(studyjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BrowserMode(); ok {
		_spec.SetField(studyjob.FieldBrowserMode, field.TypeEnum, value)
		_node.BrowserMode = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(studyjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(studyjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(studyjob.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(studyjob.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(studyjob.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(studyjob.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(studyjob.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(studyjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studyjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studyjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.StudyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   studyjob.StudyTable,
			Columns: []string{studyjob.StudyColumn},
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
//	client.StudyJob.Create().
//		SetStudyID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyJobUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyJobCreate) OnConflict(opts ...sql.ConflictOption) *StudyJobUpsertOne {
	_c.conflict = opts
	return &StudyJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyJobCreate) OnConflictColumns(columns ...string) *StudyJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyJobUpsertOne{
		create: _c,
	}
}

type (
	// StudyJobUpsertOne is the builder for "upsert"-ing
	//  one StudyJob node.
	StudyJobUpsertOne struct {
		create *StudyJobCreate
	}

	// StudyJobUpsert is the "OnConflict" setter.
	StudyJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetBrowserMode sets the "browser_mode" field.
func (u *StudyJobUpsert) SetBrowserMode(v studyjob.BrowserMode) *StudyJobUpsert {
	u.Set(studyjob.FieldBrowserMode, v)
	return u
}

// UpdateBrowserMode sets the "browser_mode" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateBrowserMode() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldBrowserMode)
	return u
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (u *StudyJobUpsert) ClearBrowserMode() *StudyJobUpsert {
	u.SetNull(studyjob.FieldBrowserMode)
	return u
}

// SetStatus sets the "status" field.
func (u *StudyJobUpsert) SetStatus(v studyjob.Status) *StudyJobUpsert {
	u.Set(studyjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateStatus() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldStatus)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *StudyJobUpsert) SetAttempts(v int) *StudyJobUpsert {
	u.Set(studyjob.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateAttempts() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *StudyJobUpsert) AddAttempts(v int) *StudyJobUpsert {
	u.Add(studyjob.FieldAttempts, v)
	return u
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *StudyJobUpsert) SetMaxAttempts(v int) *StudyJobUpsert {
	u.Set(studyjob.FieldMaxAttempts, v)
	return u
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateMaxAttempts() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldMaxAttempts)
	return u
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *StudyJobUpsert) AddMaxAttempts(v int) *StudyJobUpsert {
	u.Add(studyjob.FieldMaxAttempts, v)
	return u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *StudyJobUpsert) SetTimeoutSeconds(v int) *StudyJobUpsert {
	u.Set(studyjob.FieldTimeoutSeconds, v)
	return u
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateTimeoutSeconds() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldTimeoutSeconds)
	return u
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *StudyJobUpsert) AddTimeoutSeconds(v int) *StudyJobUpsert {
	u.Add(studyjob.FieldTimeoutSeconds, v)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *StudyJobUpsert) SetPodID(v string) *StudyJobUpsert {
	u.Set(studyjob.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdatePodID() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *StudyJobUpsert) ClearPodID() *StudyJobUpsert {
	u.SetNull(studyjob.FieldPodID)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *StudyJobUpsert) SetClaimedAt(v time.Time) *StudyJobUpsert {
	u.Set(studyjob.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateClaimedAt() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *StudyJobUpsert) ClearClaimedAt() *StudyJobUpsert {
	u.SetNull(studyjob.FieldClaimedAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *StudyJobUpsert) SetLastHeartbeatAt(v time.Time) *StudyJobUpsert {
	u.Set(studyjob.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateLastHeartbeatAt() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *StudyJobUpsert) ClearLastHeartbeatAt() *StudyJobUpsert {
	u.SetNull(studyjob.FieldLastHeartbeatAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *StudyJobUpsert) SetErrorMessage(v string) *StudyJobUpsert {
	u.Set(studyjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateErrorMessage() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StudyJobUpsert) ClearErrorMessage() *StudyJobUpsert {
	u.SetNull(studyjob.FieldErrorMessage)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyJobUpsert) SetUpdatedAt(v time.Time) *StudyJobUpsert {
	u.Set(studyjob.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyJobUpsert) UpdateUpdatedAt() *StudyJobUpsert {
	u.SetExcluded(studyjob.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudyJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studyjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyJobUpsertOne) UpdateNewValues() *StudyJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studyjob.FieldID)
		}
		if _, exists := u.create.mutation.StudyID(); exists {
			s.SetIgnore(studyjob.FieldStudyID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(studyjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudyJobUpsertOne) Ignore() *StudyJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyJobUpsertOne) DoNothing() *StudyJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyJobCreate.OnConflict
// documentation for more info.
func (u *StudyJobUpsertOne) Update(set func(*StudyJobUpsert)) *StudyJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetBrowserMode sets the "browser_mode" field.
func (u *StudyJobUpsertOne) SetBrowserMode(v studyjob.BrowserMode) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetBrowserMode(v)
	})
}

// UpdateBrowserMode sets the "browser_mode" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateBrowserMode() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateBrowserMode()
	})
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (u *StudyJobUpsertOne) ClearBrowserMode() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearBrowserMode()
	})
}

// SetStatus sets the "status" field.
func (u *StudyJobUpsertOne) SetStatus(v studyjob.Status) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateStatus() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *StudyJobUpsertOne) SetAttempts(v int) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *StudyJobUpsertOne) AddAttempts(v int) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateAttempts() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *StudyJobUpsertOne) SetMaxAttempts(v int) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *StudyJobUpsertOne) AddMaxAttempts(v int) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateMaxAttempts() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *StudyJobUpsertOne) SetTimeoutSeconds(v int) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *StudyJobUpsertOne) AddTimeoutSeconds(v int) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateTimeoutSeconds() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// SetPodID sets the "pod_id" field.
func (u *StudyJobUpsertOne) SetPodID(v string) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdatePodID() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *StudyJobUpsertOne) ClearPodID() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearPodID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *StudyJobUpsertOne) SetClaimedAt(v time.Time) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateClaimedAt() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *StudyJobUpsertOne) ClearClaimedAt() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearClaimedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *StudyJobUpsertOne) SetLastHeartbeatAt(v time.Time) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateLastHeartbeatAt() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *StudyJobUpsertOne) ClearLastHeartbeatAt() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StudyJobUpsertOne) SetErrorMessage(v string) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateErrorMessage() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StudyJobUpsertOne) ClearErrorMessage() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyJobUpsertOne) SetUpdatedAt(v time.Time) *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyJobUpsertOne) UpdateUpdatedAt() *StudyJobUpsertOne {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudyJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudyJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StudyJobUpsertOne.ID is not supported by MySQL driver. Use StudyJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudyJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudyJobCreateBulk is the builder for creating many StudyJob entities in bulk.
type StudyJobCreateBulk struct {
	config
	err      error
	builders []*StudyJobCreate
	conflict []sql.ConflictOption
}

// Save creates the StudyJob entities in the database.
func (_c *StudyJobCreateBulk) Save(ctx context.Context) ([]*StudyJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudyJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudyJobMutation)
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
func (_c *StudyJobCreateBulk) SaveX(ctx context.Context) []*StudyJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudyJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudyJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudyJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudyJobUpsert) {
//			SetStudyID(v+v).
//		}).
//		Exec(ctx)
func (_c *StudyJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudyJobUpsertBulk {
	_c.conflict = opts
	return &StudyJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudyJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudyJobCreateBulk) OnConflictColumns(columns ...string) *StudyJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudyJobUpsertBulk{
		create: _c,
	}
}

// StudyJobUpsertBulk is the builder for "upsert"-ing
// a bulk of StudyJob nodes.
type StudyJobUpsertBulk struct {
	create *StudyJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudyJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studyjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudyJobUpsertBulk) UpdateNewValues() *StudyJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studyjob.FieldID)
			}
			if _, exists := b.mutation.StudyID(); exists {
				s.SetIgnore(studyjob.FieldStudyID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(studyjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudyJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudyJobUpsertBulk) Ignore() *StudyJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudyJobUpsertBulk) DoNothing() *StudyJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudyJobCreateBulk.OnConflict
// documentation for more info.
func (u *StudyJobUpsertBulk) Update(set func(*StudyJobUpsert)) *StudyJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudyJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetBrowserMode sets the "browser_mode" field.
func (u *StudyJobUpsertBulk) SetBrowserMode(v studyjob.BrowserMode) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetBrowserMode(v)
	})
}

// UpdateBrowserMode sets the "browser_mode" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateBrowserMode() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateBrowserMode()
	})
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (u *StudyJobUpsertBulk) ClearBrowserMode() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearBrowserMode()
	})
}

// SetStatus sets the "status" field.
func (u *StudyJobUpsertBulk) SetStatus(v studyjob.Status) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateStatus() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateStatus()
	})
}

// SetAttempts sets the "attempts" field.
func (u *StudyJobUpsertBulk) SetAttempts(v int) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *StudyJobUpsertBulk) AddAttempts(v int) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateAttempts() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetMaxAttempts sets the "max_attempts" field.
func (u *StudyJobUpsertBulk) SetMaxAttempts(v int) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetMaxAttempts(v)
	})
}

// AddMaxAttempts adds v to the "max_attempts" field.
func (u *StudyJobUpsertBulk) AddMaxAttempts(v int) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.AddMaxAttempts(v)
	})
}

// UpdateMaxAttempts sets the "max_attempts" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateMaxAttempts() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateMaxAttempts()
	})
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (u *StudyJobUpsertBulk) SetTimeoutSeconds(v int) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetTimeoutSeconds(v)
	})
}

// AddTimeoutSeconds adds v to the "timeout_seconds" field.
func (u *StudyJobUpsertBulk) AddTimeoutSeconds(v int) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.AddTimeoutSeconds(v)
	})
}

// UpdateTimeoutSeconds sets the "timeout_seconds" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateTimeoutSeconds() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateTimeoutSeconds()
	})
}

// SetPodID sets the "pod_id" field.
func (u *StudyJobUpsertBulk) SetPodID(v string) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdatePodID() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *StudyJobUpsertBulk) ClearPodID() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearPodID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *StudyJobUpsertBulk) SetClaimedAt(v time.Time) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateClaimedAt() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *StudyJobUpsertBulk) ClearClaimedAt() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearClaimedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *StudyJobUpsertBulk) SetLastHeartbeatAt(v time.Time) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateLastHeartbeatAt() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *StudyJobUpsertBulk) ClearLastHeartbeatAt() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *StudyJobUpsertBulk) SetErrorMessage(v string) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateErrorMessage() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *StudyJobUpsertBulk) ClearErrorMessage() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudyJobUpsertBulk) SetUpdatedAt(v time.Time) *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudyJobUpsertBulk) UpdateUpdatedAt() *StudyJobUpsertBulk {
	return u.Update(func(s *StudyJobUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StudyJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StudyJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StudyJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudyJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
