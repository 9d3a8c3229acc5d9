// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/wanderlens/wanderlens/ent/predicate"
	"github.com/wanderlens/wanderlens/ent/studyjob"
)

// StudyJobUpdate is the builder for updating StudyJob entities.
type StudyJobUpdate struct {
	config
	hooks    []Hook
	mutation *StudyJobMutation
}

// Where appends a list predicates to the StudyJobUpdate builder.
func (_u *StudyJobUpdate) Where(ps ...predicate.StudyJob) *StudyJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBrowserMode sets the "browser_mode" field.
func (_u *StudyJobUpdate) SetBrowserMode(v studyjob.BrowserMode) *StudyJobUpdate {
	_u.mutation.SetBrowserMode(v)
	return _u
}

// SetNillableBrowserMode sets the "browser_mode" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillableBrowserMode(v *studyjob.BrowserMode) *StudyJobUpdate {
	if v != nil {
		_u.SetBrowserMode(*v)
	}
	return _u
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (_u *StudyJobUpdate) ClearBrowserMode() *StudyJobUpdate {
	_u.mutation.ClearBrowserMode()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyJobUpdate) SetStatus(v studyjob.Status) *StudyJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillableStatus(v *studyjob.Status) *StudyJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StudyJobUpdate) SetAttempts(v int) *StudyJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillableAttempts(v *int) *StudyJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StudyJobUpdate) AddAttempts(v int) *StudyJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *StudyJobUpdate) SetMaxAttempts(v int) *StudyJobUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillableMaxAttempts(v *int) *StudyJobUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *StudyJobUpdate) AddMaxAttempts(v int) *StudyJobUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *StudyJobUpdate) SetTimeoutSeconds(v int) *StudyJobUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillableTimeoutSeconds(v *int) *StudyJobUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *StudyJobUpdate) AddTimeoutSeconds(v int) *StudyJobUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *StudyJobUpdate) SetPodID(v string) *StudyJobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillablePodID(v *string) *StudyJobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *StudyJobUpdate) ClearPodID() *StudyJobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *StudyJobUpdate) SetClaimedAt(v time.Time) *StudyJobUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillableClaimedAt(v *time.Time) *StudyJobUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *StudyJobUpdate) ClearClaimedAt() *StudyJobUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *StudyJobUpdate) SetLastHeartbeatAt(v time.Time) *StudyJobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *StudyJobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *StudyJobUpdate) ClearLastHeartbeatAt() *StudyJobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StudyJobUpdate) SetErrorMessage(v string) *StudyJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StudyJobUpdate) SetNillableErrorMessage(v *string) *StudyJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StudyJobUpdate) ClearErrorMessage() *StudyJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyJobUpdate) SetUpdatedAt(v time.Time) *StudyJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudyJobMutation object of the builder.
func (_u *StudyJobUpdate) Mutation() *StudyJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudyJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudyJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studyjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyJobUpdate) check() error {
	if v, ok := _u.mutation.BrowserMode(); ok {
		if err := studyjob.BrowserModeValidator(v); err != nil {
			return &ValidationError{Name: "browser_mode", err: fmt.Errorf(`ent: validator failed for field "StudyJob.browser_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := studyjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudyJob.status": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StudyJob.study"`)
	}
	return nil
}

func (_u *StudyJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyjob.Table, studyjob.Columns, sqlgraph.NewFieldSpec(studyjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BrowserMode(); ok {
		_spec.SetField(studyjob.FieldBrowserMode, field.TypeEnum, value)
	}
	if _u.mutation.BrowserModeCleared() {
		_spec.ClearField(studyjob.FieldBrowserMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studyjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(studyjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(studyjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(studyjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(studyjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(studyjob.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(studyjob.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(studyjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(studyjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(studyjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(studyjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(studyjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(studyjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(studyjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(studyjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studyjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudyJobUpdateOne is the builder for updating a single StudyJob entity.
type StudyJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudyJobMutation
}

// SetBrowserMode sets the "browser_mode" field.
func (_u *StudyJobUpdateOne) SetBrowserMode(v studyjob.BrowserMode) *StudyJobUpdateOne {
	_u.mutation.SetBrowserMode(v)
	return _u
}

// SetNillableBrowserMode sets the "browser_mode" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillableBrowserMode(v *studyjob.BrowserMode) *StudyJobUpdateOne {
	if v != nil {
		_u.SetBrowserMode(*v)
	}
	return _u
}

// ClearBrowserMode clears the value of the "browser_mode" field.
func (_u *StudyJobUpdateOne) ClearBrowserMode() *StudyJobUpdateOne {
	_u.mutation.ClearBrowserMode()
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudyJobUpdateOne) SetStatus(v studyjob.Status) *StudyJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillableStatus(v *studyjob.Status) *StudyJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *StudyJobUpdateOne) SetAttempts(v int) *StudyJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillableAttempts(v *int) *StudyJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *StudyJobUpdateOne) AddAttempts(v int) *StudyJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *StudyJobUpdateOne) SetMaxAttempts(v int) *StudyJobUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillableMaxAttempts(v *int) *StudyJobUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *StudyJobUpdateOne) AddMaxAttempts(v int) *StudyJobUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *StudyJobUpdateOne) SetTimeoutSeconds(v int) *StudyJobUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillableTimeoutSeconds(v *int) *StudyJobUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *StudyJobUpdateOne) AddTimeoutSeconds(v int) *StudyJobUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *StudyJobUpdateOne) SetPodID(v string) *StudyJobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillablePodID(v *string) *StudyJobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *StudyJobUpdateOne) ClearPodID() *StudyJobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *StudyJobUpdateOne) SetClaimedAt(v time.Time) *StudyJobUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillableClaimedAt(v *time.Time) *StudyJobUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *StudyJobUpdateOne) ClearClaimedAt() *StudyJobUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *StudyJobUpdateOne) SetLastHeartbeatAt(v time.Time) *StudyJobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *StudyJobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *StudyJobUpdateOne) ClearLastHeartbeatAt() *StudyJobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *StudyJobUpdateOne) SetErrorMessage(v string) *StudyJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *StudyJobUpdateOne) SetNillableErrorMessage(v *string) *StudyJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *StudyJobUpdateOne) ClearErrorMessage() *StudyJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudyJobUpdateOne) SetUpdatedAt(v time.Time) *StudyJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the StudyJobMutation object of the builder.
func (_u *StudyJobUpdateOne) Mutation() *StudyJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudyJobUpdate builder.
func (_u *StudyJobUpdateOne) Where(ps ...predicate.StudyJob) *StudyJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudyJobUpdateOne) Select(field string, fields ...string) *StudyJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudyJob entity.
func (_u *StudyJobUpdateOne) Save(ctx context.Context) (*StudyJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudyJobUpdateOne) SaveX(ctx context.Context) *StudyJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudyJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudyJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudyJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studyjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudyJobUpdateOne) check() error {
	if v, ok := _u.mutation.BrowserMode(); ok {
		if err := studyjob.BrowserModeValidator(v); err != nil {
			return &ValidationError{Name: "browser_mode", err: fmt.Errorf(`ent: validator failed for field "StudyJob.browser_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := studyjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "StudyJob.status": %w`, err)}
		}
	}
	if _u.mutation.StudyCleared() && len(_u.mutation.StudyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StudyJob.study"`)
	}
	return nil
}

func (_u *StudyJobUpdateOne) sqlSave(ctx context.Context) (_node *StudyJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studyjob.Table, studyjob.Columns, sqlgraph.NewFieldSpec(studyjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudyJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studyjob.FieldID)
		for _, f := range fields {
			if !studyjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studyjob.FieldID {
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
	if value, ok := _u.mutation.BrowserMode(); ok {
		_spec.SetField(studyjob.FieldBrowserMode, field.TypeEnum, value)
	}
	if _u.mutation.BrowserModeCleared() {
		_spec.ClearField(studyjob.FieldBrowserMode, field.TypeEnum)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studyjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(studyjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(studyjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(studyjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(studyjob.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(studyjob.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(studyjob.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(studyjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(studyjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(studyjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(studyjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(studyjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(studyjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(studyjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(studyjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studyjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudyJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studyjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
