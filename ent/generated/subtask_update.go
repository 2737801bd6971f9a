// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/ent/generated/predicate"
	"github.com/taskdeck/taskdeck/ent/generated/subtask"
	"github.com/taskdeck/taskdeck/ent/generated/task"
)

// SubtaskUpdate is the builder for updating Subtask entities.
type SubtaskUpdate struct {
	config
	hooks    []Hook
	mutation *SubtaskMutation
}

// Where appends a list predicates to the SubtaskUpdate builder.
func (_u *SubtaskUpdate) Where(ps ...predicate.Subtask) *SubtaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SubtaskUpdate) SetTaskID(v uuid.UUID) *SubtaskUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableTaskID(v *uuid.UUID) *SubtaskUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubtaskUpdate) SetTitle(v string) *SubtaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableTitle(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubtaskUpdate) SetDescription(v string) *SubtaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableDescription(v *string) *SubtaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubtaskUpdate) ClearDescription() *SubtaskUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubtaskUpdate) SetStatus(v subtask.Status) *SubtaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableStatus(v *subtask.Status) *SubtaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *SubtaskUpdate) SetOrderIndex(v int) *SubtaskUpdate {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableOrderIndex(v *int) *SubtaskUpdate {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *SubtaskUpdate) AddOrderIndex(v int) *SubtaskUpdate {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *SubtaskUpdate) SetDeleted(v bool) *SubtaskUpdate {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *SubtaskUpdate) SetNillableDeleted(v *bool) *SubtaskUpdate {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubtaskUpdate) SetUpdatedAt(v time.Time) *SubtaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *SubtaskUpdate) SetTask(v *Task) *SubtaskUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the SubtaskMutation object of the builder.
func (_u *SubtaskUpdate) Mutation() *SubtaskMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *SubtaskUpdate) ClearTask() *SubtaskUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubtaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtaskUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := subtask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "Subtask.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Subtask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Subtask.task"`)
	}
	return nil
}

func (_u *SubtaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subtask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(subtask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(subtask.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(subtask.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(subtask.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtaskUpdateOne is the builder for updating a single Subtask entity.
type SubtaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtaskMutation
}

// SetTaskID sets the "task_id" field.
func (_u *SubtaskUpdateOne) SetTaskID(v uuid.UUID) *SubtaskUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableTaskID(v *uuid.UUID) *SubtaskUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubtaskUpdateOne) SetTitle(v string) *SubtaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableTitle(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *SubtaskUpdateOne) SetDescription(v string) *SubtaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableDescription(v *string) *SubtaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *SubtaskUpdateOne) ClearDescription() *SubtaskUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubtaskUpdateOne) SetStatus(v subtask.Status) *SubtaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableStatus(v *subtask.Status) *SubtaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetOrderIndex sets the "order_index" field.
func (_u *SubtaskUpdateOne) SetOrderIndex(v int) *SubtaskUpdateOne {
	_u.mutation.ResetOrderIndex()
	_u.mutation.SetOrderIndex(v)
	return _u
}

// SetNillableOrderIndex sets the "order_index" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableOrderIndex(v *int) *SubtaskUpdateOne {
	if v != nil {
		_u.SetOrderIndex(*v)
	}
	return _u
}

// AddOrderIndex adds value to the "order_index" field.
func (_u *SubtaskUpdateOne) AddOrderIndex(v int) *SubtaskUpdateOne {
	_u.mutation.AddOrderIndex(v)
	return _u
}

// SetDeleted sets the "deleted" field.
func (_u *SubtaskUpdateOne) SetDeleted(v bool) *SubtaskUpdateOne {
	_u.mutation.SetDeleted(v)
	return _u
}

// SetNillableDeleted sets the "deleted" field if the given value is not nil.
func (_u *SubtaskUpdateOne) SetNillableDeleted(v *bool) *SubtaskUpdateOne {
	if v != nil {
		_u.SetDeleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubtaskUpdateOne) SetUpdatedAt(v time.Time) *SubtaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *SubtaskUpdateOne) SetTask(v *Task) *SubtaskUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the SubtaskMutation object of the builder.
func (_u *SubtaskUpdateOne) Mutation() *SubtaskMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *SubtaskUpdateOne) ClearTask() *SubtaskUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the SubtaskUpdate builder.
func (_u *SubtaskUpdateOne) Where(ps ...predicate.Subtask) *SubtaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtaskUpdateOne) Select(field string, fields ...string) *SubtaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subtask entity.
func (_u *SubtaskUpdateOne) Save(ctx context.Context) (*Subtask, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtaskUpdateOne) SaveX(ctx context.Context) *Subtask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubtaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := subtask.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtaskUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := subtask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`generated: validator failed for field "Subtask.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := subtask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "Subtask.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "Subtask.task"`)
	}
	return nil
}

func (_u *SubtaskUpdateOne) sqlSave(ctx context.Context) (_node *Subtask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtask.Table, subtask.Columns, sqlgraph.NewFieldSpec(subtask.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Subtask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtask.FieldID)
		for _, f := range fields {
			if !subtask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != subtask.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subtask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(subtask.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(subtask.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(subtask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OrderIndex(); ok {
		_spec.SetField(subtask.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrderIndex(); ok {
		_spec.AddField(subtask.FieldOrderIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Deleted(); ok {
		_spec.SetField(subtask.FieldDeleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(subtask.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Subtask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
