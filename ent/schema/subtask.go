// ent/schema/subtask.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Subtask holds the schema definition for the Subtask entity.
type Subtask struct {
	ent.Schema
}

// Fields of the Subtask.
func (Subtask) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("account_id", uuid.UUID{}).
			Immutable().
			Comment("Denormalized tenant scope, same account as the parent task"),

		field.UUID("task_id", uuid.UUID{}).
			Comment("Parent task"),

		field.String("title").
			NotEmpty().
			Comment("Subtask title"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the subtask"),

		field.Enum("status").
			Values("pending", "completed").
			Default("pending").
			Comment("Current status of the subtask"),

		field.Int("order_index").
			Default(0).
			Comment("Display order within the parent task"),

		field.Bool("deleted").
			Default(false).
			Comment("Soft-delete flag, cascaded from the parent task"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Subtask.
func (Subtask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("subtasks").
			Field("task_id").
			Unique().
			Required(),
	}
}

// Indexes of the Subtask.
func (Subtask) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "task_id"),
		index.Fields("task_id", "order_index"),
	}
}
