// Code generated by ent, DO NOT EDIT.

package generated

import (
	"time"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/ent/generated/subtask"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/ent/generated/taskattachment"
	"github.com/taskdeck/taskdeck/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	subtaskFields := schema.Subtask{}.Fields()
	_ = subtaskFields
	// subtaskDescTitle is the schema descriptor for title field.
	subtaskDescTitle := subtaskFields[3].Descriptor()
	// subtask.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	subtask.TitleValidator = subtaskDescTitle.Validators[0].(func(string) error)
	// subtaskDescOrderIndex is the schema descriptor for order_index field.
	subtaskDescOrderIndex := subtaskFields[6].Descriptor()
	// subtask.DefaultOrderIndex holds the default value on creation for the order_index field.
	subtask.DefaultOrderIndex = subtaskDescOrderIndex.Default.(int)
	// subtaskDescDeleted is the schema descriptor for deleted field.
	subtaskDescDeleted := subtaskFields[7].Descriptor()
	// subtask.DefaultDeleted holds the default value on creation for the deleted field.
	subtask.DefaultDeleted = subtaskDescDeleted.Default.(bool)
	// subtaskDescCreatedAt is the schema descriptor for created_at field.
	subtaskDescCreatedAt := subtaskFields[8].Descriptor()
	// subtask.DefaultCreatedAt holds the default value on creation for the created_at field.
	subtask.DefaultCreatedAt = subtaskDescCreatedAt.Default.(func() time.Time)
	// subtaskDescUpdatedAt is the schema descriptor for updated_at field.
	subtaskDescUpdatedAt := subtaskFields[9].Descriptor()
	// subtask.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subtask.DefaultUpdatedAt = subtaskDescUpdatedAt.Default.(func() time.Time)
	// subtask.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subtask.UpdateDefaultUpdatedAt = subtaskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subtaskDescID is the schema descriptor for id field.
	subtaskDescID := subtaskFields[0].Descriptor()
	// subtask.DefaultID holds the default value on creation for the id field.
	subtask.DefaultID = subtaskDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[3].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescIsRecurring is the schema descriptor for is_recurring field.
	taskDescIsRecurring := taskFields[8].Descriptor()
	// task.DefaultIsRecurring holds the default value on creation for the is_recurring field.
	task.DefaultIsRecurring = taskDescIsRecurring.Default.(bool)
	// taskDescIsDraft is the schema descriptor for is_draft field.
	taskDescIsDraft := taskFields[10].Descriptor()
	// task.DefaultIsDraft holds the default value on creation for the is_draft field.
	task.DefaultIsDraft = taskDescIsDraft.Default.(bool)
	// taskDescDeleted is the schema descriptor for deleted field.
	taskDescDeleted := taskFields[11].Descriptor()
	// task.DefaultDeleted holds the default value on creation for the deleted field.
	task.DefaultDeleted = taskDescDeleted.Default.(bool)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[12].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[13].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	taskattachmentFields := schema.TaskAttachment{}.Fields()
	_ = taskattachmentFields
	// taskattachmentDescFileName is the schema descriptor for file_name field.
	taskattachmentDescFileName := taskattachmentFields[3].Descriptor()
	// taskattachment.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	taskattachment.FileNameValidator = func() func(string) error {
		validators := taskattachmentDescFileName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(file_name string) error {
			for _, fn := range fns {
				if err := fn(file_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskattachmentDescFileSize is the schema descriptor for file_size field.
	taskattachmentDescFileSize := taskattachmentFields[4].Descriptor()
	// taskattachment.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	taskattachment.FileSizeValidator = taskattachmentDescFileSize.Validators[0].(func(int64) error)
	// taskattachmentDescStorageURL is the schema descriptor for storage_url field.
	taskattachmentDescStorageURL := taskattachmentFields[6].Descriptor()
	// taskattachment.StorageURLValidator is a validator for the "storage_url" field. It is called by the builders before save.
	taskattachment.StorageURLValidator = taskattachmentDescStorageURL.Validators[0].(func(string) error)
	// taskattachmentDescCreatedAt is the schema descriptor for created_at field.
	taskattachmentDescCreatedAt := taskattachmentFields[7].Descriptor()
	// taskattachment.DefaultCreatedAt holds the default value on creation for the created_at field.
	taskattachment.DefaultCreatedAt = taskattachmentDescCreatedAt.Default.(func() time.Time)
	// taskattachmentDescID is the schema descriptor for id field.
	taskattachmentDescID := taskattachmentFields[0].Descriptor()
	// taskattachment.DefaultID holds the default value on creation for the id field.
	taskattachment.DefaultID = taskattachmentDescID.Default.(func() uuid.UUID)
}
