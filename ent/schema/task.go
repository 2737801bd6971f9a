// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck/internal/models"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("account_id", uuid.UUID{}).
			Immutable().
			Comment("Tenant scope; every query must filter on it"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("Owning user within the account"),

		field.String("title").
			NotEmpty().
			Comment("Task title"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the task"),

		field.Time("due_date").
			Optional().
			Nillable().
			Comment("When the task should be completed"),

		field.Enum("priority").
			Values("low", "medium", "high").
			Default("medium").
			Comment("Priority level of the task"),

		field.Enum("status").
			Values("draft", "pending", "in_progress", "completed", "cancelled").
			Default("pending").
			Comment("Current status of the task"),

		field.Bool("is_recurring").
			Default(false).
			Comment("True when a recurrence config is present"),

		field.JSON("recurrence_config", &models.RecurrenceConfig{}).
			Optional().
			Comment("Optional repeat schedule, written atomically with the task"),

		field.Bool("is_draft").
			Default(false).
			Comment("Draft tasks have not entered the active workflow"),

		field.Bool("deleted").
			Default(false).
			Comment("Soft-delete flag; deleted rows are kept but never read"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the task was last updated"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subtasks", Subtask.Type),
		edge.To("attachments", TaskAttachment.Type),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Every read path filters on tenant + soft-delete flag
		index.Fields("account_id", "deleted"),

		// Per-user listing within an account
		index.Fields("account_id", "user_id"),

		index.Fields("status"),

		index.Fields("priority"),

		// Index on created_at for sorting
		index.Fields("created_at"),
	}
}
