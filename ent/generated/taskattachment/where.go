// Code generated by ent, DO NOT EDIT.

package taskattachment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLTE(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldAccountID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldTaskID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldFileName, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldFileSize, v))
}

// StorageURL applies equality check predicate on the "storage_url" field. It's identical to StorageURLEQ.
func StorageURL(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldStorageURL, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldCreatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLTE(FieldAccountID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...uuid.UUID) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNotIn(FieldTaskID, vs...))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldContainsFold(FieldFileName, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLTE(FieldFileSize, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v FileType) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v FileType) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...FileType) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...FileType) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNotIn(FieldFileType, vs...))
}

// StorageURLEQ applies the EQ predicate on the "storage_url" field.
func StorageURLEQ(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldStorageURL, v))
}

// StorageURLNEQ applies the NEQ predicate on the "storage_url" field.
func StorageURLNEQ(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNEQ(FieldStorageURL, v))
}

// StorageURLIn applies the In predicate on the "storage_url" field.
func StorageURLIn(vs ...string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldIn(FieldStorageURL, vs...))
}

// StorageURLNotIn applies the NotIn predicate on the "storage_url" field.
func StorageURLNotIn(vs ...string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNotIn(FieldStorageURL, vs...))
}

// StorageURLGT applies the GT predicate on the "storage_url" field.
func StorageURLGT(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGT(FieldStorageURL, v))
}

// StorageURLGTE applies the GTE predicate on the "storage_url" field.
func StorageURLGTE(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGTE(FieldStorageURL, v))
}

// StorageURLLT applies the LT predicate on the "storage_url" field.
func StorageURLLT(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLT(FieldStorageURL, v))
}

// StorageURLLTE applies the LTE predicate on the "storage_url" field.
func StorageURLLTE(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLTE(FieldStorageURL, v))
}

// StorageURLContains applies the Contains predicate on the "storage_url" field.
func StorageURLContains(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldContains(FieldStorageURL, v))
}

// StorageURLHasPrefix applies the HasPrefix predicate on the "storage_url" field.
func StorageURLHasPrefix(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldHasPrefix(FieldStorageURL, v))
}

// StorageURLHasSuffix applies the HasSuffix predicate on the "storage_url" field.
func StorageURLHasSuffix(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldHasSuffix(FieldStorageURL, v))
}

// StorageURLEqualFold applies the EqualFold predicate on the "storage_url" field.
func StorageURLEqualFold(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEqualFold(FieldStorageURL, v))
}

// StorageURLContainsFold applies the ContainsFold predicate on the "storage_url" field.
func StorageURLContainsFold(v string) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldContainsFold(FieldStorageURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskAttachment {
	return predicate.TaskAttachment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskAttachment {
	return predicate.TaskAttachment(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskAttachment) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskAttachment) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskAttachment) predicate.TaskAttachment {
	return predicate.TaskAttachment(sql.NotPredicates(p))
}
