// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingo/ent/completionevent"
	"github.com/abhisek/lingo/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CompletionEventUpdate) SetSessionID(v string) *CompletionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableSessionID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *CompletionEventUpdate) SetLessonID(v string) *CompletionEventUpdate {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableLessonID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetXpDelta sets the "xp_delta" field.
func (_u *CompletionEventUpdate) SetXpDelta(v int) *CompletionEventUpdate {
	_u.mutation.ResetXpDelta()
	_u.mutation.SetXpDelta(v)
	return _u
}

// SetNillableXpDelta sets the "xp_delta" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableXpDelta(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetXpDelta(*v)
	}
	return _u
}

// AddXpDelta adds value to the "xp_delta" field.
func (_u *CompletionEventUpdate) AddXpDelta(v int) *CompletionEventUpdate {
	_u.mutation.AddXpDelta(v)
	return _u
}

// SetHeartsDelta sets the "hearts_delta" field.
func (_u *CompletionEventUpdate) SetHeartsDelta(v int) *CompletionEventUpdate {
	_u.mutation.ResetHeartsDelta()
	_u.mutation.SetHeartsDelta(v)
	return _u
}

// SetNillableHeartsDelta sets the "hearts_delta" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableHeartsDelta(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetHeartsDelta(*v)
	}
	return _u
}

// AddHeartsDelta adds value to the "hearts_delta" field.
func (_u *CompletionEventUpdate) AddHeartsDelta(v int) *CompletionEventUpdate {
	_u.mutation.AddHeartsDelta(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *CompletionEventUpdate) SetDurationSecs(v int) *CompletionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableDurationSecs(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *CompletionEventUpdate) AddDurationSecs(v int) *CompletionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := completionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := completionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(completionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpDelta(); ok {
		_spec.SetField(completionevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpDelta(); ok {
		_spec.AddField(completionevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HeartsDelta(); ok {
		_spec.SetField(completionevent.FieldHeartsDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartsDelta(); ok {
		_spec.AddField(completionevent.FieldHeartsDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(completionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(completionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CompletionEventUpdateOne) SetSessionID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableSessionID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLessonID sets the "lesson_id" field.
func (_u *CompletionEventUpdateOne) SetLessonID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetLessonID(v)
	return _u
}

// SetNillableLessonID sets the "lesson_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableLessonID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetLessonID(*v)
	}
	return _u
}

// SetXpDelta sets the "xp_delta" field.
func (_u *CompletionEventUpdateOne) SetXpDelta(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetXpDelta()
	_u.mutation.SetXpDelta(v)
	return _u
}

// SetNillableXpDelta sets the "xp_delta" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableXpDelta(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetXpDelta(*v)
	}
	return _u
}

// AddXpDelta adds value to the "xp_delta" field.
func (_u *CompletionEventUpdateOne) AddXpDelta(v int) *CompletionEventUpdateOne {
	_u.mutation.AddXpDelta(v)
	return _u
}

// SetHeartsDelta sets the "hearts_delta" field.
func (_u *CompletionEventUpdateOne) SetHeartsDelta(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetHeartsDelta()
	_u.mutation.SetHeartsDelta(v)
	return _u
}

// SetNillableHeartsDelta sets the "hearts_delta" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableHeartsDelta(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetHeartsDelta(*v)
	}
	return _u
}

// AddHeartsDelta adds value to the "hearts_delta" field.
func (_u *CompletionEventUpdateOne) AddHeartsDelta(v int) *CompletionEventUpdateOne {
	_u.mutation.AddHeartsDelta(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *CompletionEventUpdateOne) SetDurationSecs(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableDurationSecs(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *CompletionEventUpdateOne) AddDurationSecs(v int) *CompletionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := completionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LessonID(); ok {
		if err := completionevent.LessonIDValidator(v); err != nil {
			return &ValidationError{Name: "lesson_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.lesson_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(completionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonID(); ok {
		_spec.SetField(completionevent.FieldLessonID, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpDelta(); ok {
		_spec.SetField(completionevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpDelta(); ok {
		_spec.AddField(completionevent.FieldXpDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HeartsDelta(); ok {
		_spec.SetField(completionevent.FieldHeartsDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeartsDelta(); ok {
		_spec.AddField(completionevent.FieldHeartsDelta, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(completionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(completionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
