// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Subtask is the predicate function for subtask builders.
type Subtask func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TaskAttachment is the predicate function for taskattachment builders.
type TaskAttachment func(*sql.Selector)
