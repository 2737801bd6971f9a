// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SubtasksColumns holds the columns for the "subtasks" table.
	SubtasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "completed"}, Default: "pending"},
		{Name: "order_index", Type: field.TypeInt, Default: 0},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// SubtasksTable holds the schema information for the "subtasks" table.
	SubtasksTable = &schema.Table{
		Name:       "subtasks",
		Columns:    SubtasksColumns,
		PrimaryKey: []*schema.Column{SubtasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subtasks_tasks_subtasks",
				Columns:    []*schema.Column{SubtasksColumns[9]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subtask_account_id_task_id",
				Unique:  false,
				Columns: []*schema.Column{SubtasksColumns[1], SubtasksColumns[9]},
			},
			{
				Name:    "subtask_task_id_order_index",
				Unique:  false,
				Columns: []*schema.Column{SubtasksColumns[9], SubtasksColumns[5]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "due_date", Type: field.TypeTime, Nullable: true},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"low", "medium", "high"}, Default: "medium"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "pending", "in_progress", "completed", "cancelled"}, Default: "pending"},
		{Name: "is_recurring", Type: field.TypeBool, Default: false},
		{Name: "recurrence_config", Type: field.TypeJSON, Nullable: true},
		{Name: "is_draft", Type: field.TypeBool, Default: false},
		{Name: "deleted", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_account_id_deleted",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[11]},
			},
			{
				Name:    "task_account_id_user_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1], TasksColumns[2]},
			},
			{
				Name:    "task_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
			{
				Name:    "task_priority",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
			{
				Name:    "task_created_at",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[12]},
			},
		},
	}
	// TaskAttachmentsColumns holds the columns for the "task_attachments" table.
	TaskAttachmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString, Size: 255},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "file_type", Type: field.TypeEnum, Enums: []string{"pdf", "doc", "docx", "jpg", "png"}},
		{Name: "storage_url", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeUUID},
	}
	// TaskAttachmentsTable holds the schema information for the "task_attachments" table.
	TaskAttachmentsTable = &schema.Table{
		Name:       "task_attachments",
		Columns:    TaskAttachmentsColumns,
		PrimaryKey: []*schema.Column{TaskAttachmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "task_attachments_tasks_attachments",
				Columns:    []*schema.Column{TaskAttachmentsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "taskattachment_account_id_task_id",
				Unique:  false,
				Columns: []*schema.Column{TaskAttachmentsColumns[1], TaskAttachmentsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SubtasksTable,
		TasksTable,
		TaskAttachmentsTable,
	}
)

func init() {
	SubtasksTable.ForeignKeys[0].RefTable = TasksTable
	TaskAttachmentsTable.ForeignKeys[0].RefTable = TasksTable
}
