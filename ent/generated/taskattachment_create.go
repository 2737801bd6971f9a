// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/ent/generated/taskattachment"
)

// TaskAttachmentCreate is the builder for creating a TaskAttachment entity.
type TaskAttachmentCreate struct {
	config
	mutation *TaskAttachmentMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *TaskAttachmentCreate) SetAccountID(v uuid.UUID) *TaskAttachmentCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TaskAttachmentCreate) SetTaskID(v uuid.UUID) *TaskAttachmentCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *TaskAttachmentCreate) SetFileName(v string) *TaskAttachmentCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *TaskAttachmentCreate) SetFileSize(v int64) *TaskAttachmentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *TaskAttachmentCreate) SetFileType(v taskattachment.FileType) *TaskAttachmentCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetStorageURL sets the "storage_url" field.
func (_c *TaskAttachmentCreate) SetStorageURL(v string) *TaskAttachmentCreate {
	_c.mutation.SetStorageURL(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskAttachmentCreate) SetCreatedAt(v time.Time) *TaskAttachmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskAttachmentCreate) SetNillableCreatedAt(v *time.Time) *TaskAttachmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskAttachmentCreate) SetID(v uuid.UUID) *TaskAttachmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TaskAttachmentCreate) SetNillableID(v *uuid.UUID) *TaskAttachmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskAttachmentCreate) SetTask(v *Task) *TaskAttachmentCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskAttachmentMutation object of the builder.
func (_c *TaskAttachmentCreate) Mutation() *TaskAttachmentMutation {
	return _c.mutation
}

// Save creates the TaskAttachment in the database.
func (_c *TaskAttachmentCreate) Save(ctx context.Context) (*TaskAttachment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskAttachmentCreate) SaveX(ctx context.Context) *TaskAttachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskAttachmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskAttachmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskAttachmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := taskattachment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := taskattachment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskAttachmentCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`generated: missing required field "TaskAttachment.account_id"`)}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`generated: missing required field "TaskAttachment.task_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`generated: missing required field "TaskAttachment.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := taskattachment.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`generated: missing required field "TaskAttachment.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := taskattachment.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`generated: missing required field "TaskAttachment.file_type"`)}
	}
	if v, ok := _c.mutation.FileType(); ok {
		if err := taskattachment.FileTypeValidator(v); err != nil {
			return &ValidationError{Name: "file_type", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.file_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageURL(); !ok {
		return &ValidationError{Name: "storage_url", err: errors.New(`generated: missing required field "TaskAttachment.storage_url"`)}
	}
	if v, ok := _c.mutation.StorageURL(); ok {
		if err := taskattachment.StorageURLValidator(v); err != nil {
			return &ValidationError{Name: "storage_url", err: fmt.Errorf(`generated: validator failed for field "TaskAttachment.storage_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "TaskAttachment.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`generated: missing required edge "TaskAttachment.task"`)}
	}
	return nil
}

func (_c *TaskAttachmentCreate) sqlSave(ctx context.Context) (*TaskAttachment, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskAttachmentCreate) createSpec() (*TaskAttachment, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskAttachment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskattachment.Table, sqlgraph.NewFieldSpec(taskattachment.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(taskattachment.FieldAccountID, field.TypeUUID, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(taskattachment.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(taskattachment.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(taskattachment.FieldFileType, field.TypeEnum, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.StorageURL(); ok {
		_spec.SetField(taskattachment.FieldStorageURL, field.TypeString, value)
		_node.StorageURL = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(taskattachment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
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
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TaskAttachmentCreateBulk is the builder for creating many TaskAttachment entities in bulk.
type TaskAttachmentCreateBulk struct {
	config
	err      error
	builders []*TaskAttachmentCreate
}

// Save creates the TaskAttachment entities in the database.
func (_c *TaskAttachmentCreateBulk) Save(ctx context.Context) ([]*TaskAttachment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskAttachment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskAttachmentMutation)
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
func (_c *TaskAttachmentCreateBulk) SaveX(ctx context.Context) []*TaskAttachment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskAttachmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskAttachmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
