// ent/schema/taskattachment.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// TaskAttachment holds the schema definition for the TaskAttachment
// entity. Attachments are hard-deleted, so there is no deleted flag.
type TaskAttachment struct {
	ent.Schema
}

// Fields of the TaskAttachment.
func (TaskAttachment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("account_id", uuid.UUID{}).
			Immutable().
			Comment("Denormalized tenant scope, same account as the parent task"),

		field.UUID("task_id", uuid.UUID{}).
			Comment("Parent task"),

		field.String("file_name").
			NotEmpty().
			MaxLen(255),

		field.Int64("file_size").
			Positive().
			Comment("Size in bytes"),

		field.Enum("file_type").
			Values("pdf", "doc", "docx", "jpg", "png"),

		field.String("storage_url").
			NotEmpty().
			Comment("Opaque reference assigned by the object store"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskAttachment.
func (TaskAttachment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("attachments").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the TaskAttachment.
func (TaskAttachment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "task_id"),
	}
}
