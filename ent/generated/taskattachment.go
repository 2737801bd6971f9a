// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/ent/generated/taskattachment"
)

// TaskAttachment is the model entity for the TaskAttachment schema.
type TaskAttachment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Denormalized tenant scope, same account as the parent task
	AccountID uuid.UUID `json:"account_id,omitempty"`
	// Parent task
	TaskID uuid.UUID `json:"task_id,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// Size in bytes
	FileSize int64 `json:"file_size,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType taskattachment.FileType `json:"file_type,omitempty"`
	// Opaque reference assigned by the object store
	StorageURL string `json:"storage_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskAttachmentQuery when eager-loading is set.
	Edges        TaskAttachmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskAttachmentEdges holds the relations/edges for other nodes in the graph.
type TaskAttachmentEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskAttachmentEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskAttachment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskattachment.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case taskattachment.FieldFileName, taskattachment.FieldFileType, taskattachment.FieldStorageURL:
			values[i] = new(sql.NullString)
		case taskattachment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case taskattachment.FieldID, taskattachment.FieldAccountID, taskattachment.FieldTaskID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskAttachment fields.
func (_m *TaskAttachment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskattachment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case taskattachment.FieldAccountID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value != nil {
				_m.AccountID = *value
			}
		case taskattachment.FieldTaskID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value != nil {
				_m.TaskID = *value
			}
		case taskattachment.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case taskattachment.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case taskattachment.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = taskattachment.FileType(value.String)
			}
		case taskattachment.FieldStorageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_url", values[i])
			} else if value.Valid {
				_m.StorageURL = value.String
			}
		case taskattachment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskAttachment.
// This includes values selected through modifiers, order, etc.
func (_m *TaskAttachment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskAttachment entity.
func (_m *TaskAttachment) QueryTask() *TaskQuery {
	return NewTaskAttachmentClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskAttachment.
// Note that you need to call TaskAttachment.Unwrap() before calling this method if this TaskAttachment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskAttachment) Update() *TaskAttachmentUpdateOne {
	return NewTaskAttachmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskAttachment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskAttachment) Unwrap() *TaskAttachment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("generated: TaskAttachment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskAttachment) String() string {
	var builder strings.Builder
	builder.WriteString("TaskAttachment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AccountID))
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileType))
	builder.WriteString(", ")
	builder.WriteString("storage_url=")
	builder.WriteString(_m.StorageURL)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskAttachments is a parsable slice of TaskAttachment.
type TaskAttachments []*TaskAttachment
