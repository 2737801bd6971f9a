// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/ent/generated/predicate"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/ent/generated/taskattachment"
)

// TaskAttachmentUpdate is the builder for updating TaskAttachment entities.
type TaskAttachmentUpdate struct {
	config
	hooks    []Hook
	mutation *TaskAttachmentMutation
}

// Where appends a list predicates to the TaskAttachmentUpdate builder.
func (_u *TaskAttachmentUpdate) Where(ps ...predicate.TaskAttachment) *TaskAttachmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskAttachmentUpdate) SetTaskID(v uuid.UUID) *TaskAttachmentUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskAttachmentUpdate) SetNillableTaskID(v *uuid.UUID) *TaskAttachmentUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *TaskAttachmentUpdate) SetFileName(v string) *TaskAttachmentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *TaskAttachmentUpdate) SetNillableFileName(v *string) *TaskAttachmentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *TaskAttachmentUpdate) SetFileSize(v int64) *TaskAttachmentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *TaskAttachmentUpdate) SetNillableFileSize(v *int64) *TaskAttachmentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *TaskAttachmentUpdate) AddFileSize(v int64) *TaskAttachmentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *TaskAttachmentUpdate) SetFileType(v taskattachment.FileType) *TaskAttachmentUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *TaskAttachmentUpdate) SetNillableFileType(v *taskattachment.FileType) *TaskAttachmentUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStorageURL sets the "storage_url" field.
func (_u *TaskAttachmentUpdate) SetStorageURL(v string) *TaskAttachmentUpdate {
	_u.mutation.SetStorageURL(v)
	return _u
}

// SetNillableStorageURL sets the "storage_url" field if the given value is not nil.
func (_u *TaskAttachmentUpdate) SetNillableStorageURL(v *string) *TaskAttachmentUpdate {
	if v != nil {
		_u.SetStorageURL(*v)
	}
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskAttachmentUpdate) SetTask(v *Task) *TaskAttachmentUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskAttachmentMutation object of the builder.
func (_u *TaskAttachmentUpdate) Mutation() *TaskAttachmentMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskAttachmentUpdate) ClearTask() *TaskAttachmentUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskAttachmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskAttachmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskAttachmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskAttachmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskAttachmentUpdate) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := taskattachment.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := taskattachment.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := taskattachment.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageURL(); ok {
		if err := taskattachment.StorageURLValidator(v); err != nil {
			return &ValidationError{Name: "storage_url", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.storage_url": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TaskAttachment.task"`)
	}
	return nil
}

func (_u *TaskAttachmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskattachment.Table, taskattachment.Columns, sqlgraph.NewFieldSpec(taskattachment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(taskattachment.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(taskattachment.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(taskattachment.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(taskattachment.FieldFileType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StorageURL(); ok {
		_spec.SetField(taskattachment.FieldStorageURL, field.TypeString, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskattachment.TaskTable,
			Columns: []string{taskattachment.TaskColumn},
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
			Table:   taskattachment.TaskTable,
			Columns: []string{taskattachment.TaskColumn},
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
			err = &NotFoundError{taskattachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskAttachmentUpdateOne is the builder for updating a single TaskAttachment entity.
type TaskAttachmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskAttachmentMutation
}

// SetTaskID sets the "task_id" field.
func (_u *TaskAttachmentUpdateOne) SetTaskID(v uuid.UUID) *TaskAttachmentUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskAttachmentUpdateOne) SetNillableTaskID(v *uuid.UUID) *TaskAttachmentUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *TaskAttachmentUpdateOne) SetFileName(v string) *TaskAttachmentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *TaskAttachmentUpdateOne) SetNillableFileName(v *string) *TaskAttachmentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *TaskAttachmentUpdateOne) SetFileSize(v int64) *TaskAttachmentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *TaskAttachmentUpdateOne) SetNillableFileSize(v *int64) *TaskAttachmentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *TaskAttachmentUpdateOne) AddFileSize(v int64) *TaskAttachmentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *TaskAttachmentUpdateOne) SetFileType(v taskattachment.FileType) *TaskAttachmentUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *TaskAttachmentUpdateOne) SetNillableFileType(v *taskattachment.FileType) *TaskAttachmentUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetStorageURL sets the "storage_url" field.
func (_u *TaskAttachmentUpdateOne) SetStorageURL(v string) *TaskAttachmentUpdateOne {
	_u.mutation.SetStorageURL(v)
	return _u
}

// SetNillableStorageURL sets the "storage_url" field if the given value is not nil.
func (_u *TaskAttachmentUpdateOne) SetNillableStorageURL(v *string) *TaskAttachmentUpdateOne {
	if v != nil {
		_u.SetStorageURL(*v)
	}
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *TaskAttachmentUpdateOne) SetTask(v *Task) *TaskAttachmentUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the TaskAttachmentMutation object of the builder.
func (_u *TaskAttachmentUpdateOne) Mutation() *TaskAttachmentMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *TaskAttachmentUpdateOne) ClearTask() *TaskAttachmentUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the TaskAttachmentUpdate builder.
func (_u *TaskAttachmentUpdateOne) Where(ps ...predicate.TaskAttachment) *TaskAttachmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskAttachmentUpdateOne) Select(field string, fields ...string) *TaskAttachmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskAttachment entity.
func (_u *TaskAttachmentUpdateOne) Save(ctx context.Context) (*TaskAttachment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskAttachmentUpdateOne) SaveX(ctx context.Context) *TaskAttachment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskAttachmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskAttachmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskAttachmentUpdateOne) check() error {
	if v, ok := _u.mutation.FileName(); ok {
		if err := taskattachment.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := taskattachment.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileType(); ok {
		if err := taskattachment.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageURL(); ok {
		if err := taskattachment.StorageURLValidator(v); err != nil {
			return &ValidationError{Name: "storage_url", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.storage_url": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TaskAttachment.task"`)
	}
	return nil
}

func (_u *TaskAttachmentUpdateOne) sqlSave(ctx context.Context) (_node *TaskAttachment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskattachment.Table, taskattachment.Columns, sqlgraph.NewFieldSpec(taskattachment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "TaskAttachment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskattachment.FieldID)
		for _, f := range fields {
			if !taskattachment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != taskattachment.FieldID {
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
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(taskattachment.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(taskattachment.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(taskattachment.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(taskattachment.FieldFileType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StorageURL(); ok {
		_spec.SetField(taskattachment.FieldStorageURL, field.TypeString, value)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskattachment.TaskTable,
			Columns: []string{taskattachment.TaskColumn},
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
			Table:   taskattachment.TaskTable,
			Columns: []string{taskattachment.TaskColumn},
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
	_node = &TaskAttachment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskattachment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
