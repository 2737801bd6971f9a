// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/taskdeck/taskdeck/ent/generated/predicate"
	"github.com/taskdeck/taskdeck/ent/generated/subtask"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/ent/generated/taskattachment"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 3)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   subtask.Table,
			Columns: subtask.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: subtask.FieldID,
			},
		},
		Type: "Subtask",
		Fields: map[string]*sqlgraph.FieldSpec{
			subtask.FieldAccountID:   {Type: field.TypeUUID, Column: subtask.FieldAccountID},
			subtask.FieldTaskID:      {Type: field.TypeUUID, Column: subtask.FieldTaskID},
			subtask.FieldTitle:       {Type: field.TypeString, Column: subtask.FieldTitle},
			subtask.FieldDescription: {Type: field.TypeString, Column: subtask.FieldDescription},
			subtask.FieldStatus:      {Type: field.TypeEnum, Column: subtask.FieldStatus},
			subtask.FieldOrderIndex:  {Type: field.TypeInt, Column: subtask.FieldOrderIndex},
			subtask.FieldDeleted:     {Type: field.TypeBool, Column: subtask.FieldDeleted},
			subtask.FieldCreatedAt:   {Type: field.TypeTime, Column: subtask.FieldCreatedAt},
			subtask.FieldUpdatedAt:   {Type: field.TypeTime, Column: subtask.FieldUpdatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldAccountID:        {Type: field.TypeUUID, Column: task.FieldAccountID},
			task.FieldUserID:           {Type: field.TypeUUID, Column: task.FieldUserID},
			task.FieldTitle:            {Type: field.TypeString, Column: task.FieldTitle},
			task.FieldDescription:      {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldDueDate:          {Type: field.TypeTime, Column: task.FieldDueDate},
			task.FieldPriority:         {Type: field.TypeEnum, Column: task.FieldPriority},
			task.FieldStatus:           {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldIsRecurring:      {Type: field.TypeBool, Column: task.FieldIsRecurring},
			task.FieldRecurrenceConfig: {Type: field.TypeJSON, Column: task.FieldRecurrenceConfig},
			task.FieldIsDraft:          {Type: field.TypeBool, Column: task.FieldIsDraft},
			task.FieldDeleted:          {Type: field.TypeBool, Column: task.FieldDeleted},
			task.FieldCreatedAt:        {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:        {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   taskattachment.Table,
			Columns: taskattachment.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: taskattachment.FieldID,
			},
		},
		Type: "TaskAttachment",
		Fields: map[string]*sqlgraph.FieldSpec{
			taskattachment.FieldAccountID:  {Type: field.TypeUUID, Column: taskattachment.FieldAccountID},
			taskattachment.FieldTaskID:     {Type: field.TypeUUID, Column: taskattachment.FieldTaskID},
			taskattachment.FieldFileName:   {Type: field.TypeString, Column: taskattachment.FieldFileName},
			taskattachment.FieldFileSize:   {Type: field.TypeInt64, Column: taskattachment.FieldFileSize},
			taskattachment.FieldFileType:   {Type: field.TypeEnum, Column: taskattachment.FieldFileType},
			taskattachment.FieldStorageURL: {Type: field.TypeString, Column: taskattachment.FieldStorageURL},
			taskattachment.FieldCreatedAt:  {Type: field.TypeTime, Column: taskattachment.FieldCreatedAt},
		},
	}
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subtask.TaskTable,
			Columns: []string{subtask.TaskColumn},
			Bidi:    false,
		},
		"Subtask",
		"Task",
	)
	graph.MustAddE(
		"subtasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.SubtasksTable,
			Columns: []string{task.SubtasksColumn},
			Bidi:    false,
		},
		"Task",
		"Subtask",
	)
	graph.MustAddE(
		"attachments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AttachmentsTable,
			Columns: []string{task.AttachmentsColumn},
			Bidi:    false,
		},
		"Task",
		"TaskAttachment",
	)
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskattachment.TaskTable,
			Columns: []string{taskattachment.TaskColumn},
			Bidi:    false,
		},
		"TaskAttachment",
		"Task",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (_q *SubtaskQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the SubtaskQuery builder.
func (_q *SubtaskQuery) Filter() *SubtaskFilter {
	return &SubtaskFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *SubtaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the SubtaskMutation builder.
func (m *SubtaskMutation) Filter() *SubtaskFilter {
	return &SubtaskFilter{config: m.config, predicateAdder: m}
}

// SubtaskFilter provides a generic filtering capability at runtime for SubtaskQuery.
type SubtaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *SubtaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *SubtaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(subtask.FieldID))
}

// WhereAccountID applies the entql [16]byte predicate on the account_id field.
func (f *SubtaskFilter) WhereAccountID(p entql.ValueP) {
	f.Where(p.Field(subtask.FieldAccountID))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *SubtaskFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(subtask.FieldTaskID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *SubtaskFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(subtask.FieldTitle))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *SubtaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(subtask.FieldDescription))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *SubtaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(subtask.FieldStatus))
}

// WhereOrderIndex applies the entql int predicate on the order_index field.
func (f *SubtaskFilter) WhereOrderIndex(p entql.IntP) {
	f.Where(p.Field(subtask.FieldOrderIndex))
}

// WhereDeleted applies the entql bool predicate on the deleted field.
func (f *SubtaskFilter) WhereDeleted(p entql.BoolP) {
	f.Where(p.Field(subtask.FieldDeleted))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *SubtaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(subtask.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *SubtaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(subtask.FieldUpdatedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *SubtaskFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *SubtaskFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (_q *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereAccountID applies the entql [16]byte predicate on the account_id field.
func (f *TaskFilter) WhereAccountID(p entql.ValueP) {
	f.Where(p.Field(task.FieldAccountID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *TaskFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(task.FieldUserID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *TaskFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(task.FieldTitle))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereDueDate applies the entql time.Time predicate on the due_date field.
func (f *TaskFilter) WhereDueDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldDueDate))
}

// WherePriority applies the entql string predicate on the priority field.
func (f *TaskFilter) WherePriority(p entql.StringP) {
	f.Where(p.Field(task.FieldPriority))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WhereIsRecurring applies the entql bool predicate on the is_recurring field.
func (f *TaskFilter) WhereIsRecurring(p entql.BoolP) {
	f.Where(p.Field(task.FieldIsRecurring))
}

// WhereRecurrenceConfig applies the entql json.RawMessage predicate on the recurrence_config field.
func (f *TaskFilter) WhereRecurrenceConfig(p entql.BytesP) {
	f.Where(p.Field(task.FieldRecurrenceConfig))
}

// WhereIsDraft applies the entql bool predicate on the is_draft field.
func (f *TaskFilter) WhereIsDraft(p entql.BoolP) {
	f.Where(p.Field(task.FieldIsDraft))
}

// WhereDeleted applies the entql bool predicate on the deleted field.
func (f *TaskFilter) WhereDeleted(p entql.BoolP) {
	f.Where(p.Field(task.FieldDeleted))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasSubtasks applies a predicate to check if query has an edge subtasks.
func (f *TaskFilter) WhereHasSubtasks() {
	f.Where(entql.HasEdge("subtasks"))
}

// WhereHasSubtasksWith applies a predicate to check if query has an edge subtasks with a given conditions (other predicates).
func (f *TaskFilter) WhereHasSubtasksWith(preds ...predicate.Subtask) {
	f.Where(entql.HasEdgeWith("subtasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAttachments applies a predicate to check if query has an edge attachments.
func (f *TaskFilter) WhereHasAttachments() {
	f.Where(entql.HasEdge("attachments"))
}

// WhereHasAttachmentsWith applies a predicate to check if query has an edge attachments with a given conditions (other predicates).
func (f *TaskFilter) WhereHasAttachmentsWith(preds ...predicate.TaskAttachment) {
	f.Where(entql.HasEdgeWith("attachments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (_q *TaskAttachmentQuery) addPredicate(pred func(s *sql.Selector)) {
	_q.predicates = append(_q.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskAttachmentQuery builder.
func (_q *TaskAttachmentQuery) Filter() *TaskAttachmentFilter {
	return &TaskAttachmentFilter{config: _q.config, predicateAdder: _q}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskAttachmentMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskAttachmentMutation builder.
func (m *TaskAttachmentMutation) Filter() *TaskAttachmentFilter {
	return &TaskAttachmentFilter{config: m.config, predicateAdder: m}
}

// TaskAttachmentFilter provides a generic filtering capability at runtime for TaskAttachmentQuery.
type TaskAttachmentFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskAttachmentFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskAttachmentFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(taskattachment.FieldID))
}

// WhereAccountID applies the entql [16]byte predicate on the account_id field.
func (f *TaskAttachmentFilter) WhereAccountID(p entql.ValueP) {
	f.Where(p.Field(taskattachment.FieldAccountID))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *TaskAttachmentFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(taskattachment.FieldTaskID))
}

// WhereFileName applies the entql string predicate on the file_name field.
func (f *TaskAttachmentFilter) WhereFileName(p entql.StringP) {
	f.Where(p.Field(taskattachment.FieldFileName))
}

// WhereFileSize applies the entql int64 predicate on the file_size field.
func (f *TaskAttachmentFilter) WhereFileSize(p entql.Int64P) {
	f.Where(p.Field(taskattachment.FieldFileSize))
}

// WhereFileType applies the entql string predicate on the file_type field.
func (f *TaskAttachmentFilter) WhereFileType(p entql.StringP) {
	f.Where(p.Field(taskattachment.FieldFileType))
}

// WhereStorageURL applies the entql string predicate on the storage_url field.
func (f *TaskAttachmentFilter) WhereStorageURL(p entql.StringP) {
	f.Where(p.Field(taskattachment.FieldStorageURL))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskAttachmentFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(taskattachment.FieldCreatedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *TaskAttachmentFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *TaskAttachmentFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
