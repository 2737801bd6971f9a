// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck/ent/generated/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/taskdeck/taskdeck/ent/generated/subtask"
	"github.com/taskdeck/taskdeck/ent/generated/task"
	"github.com/taskdeck/taskdeck/ent/generated/taskattachment"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Subtask is the client for interacting with the Subtask builders.
	Subtask *SubtaskClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TaskAttachment is the client for interacting with the TaskAttachment builders.
	TaskAttachment *TaskAttachmentClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Subtask = NewSubtaskClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TaskAttachment = NewTaskAttachmentClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("generated: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("generated: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Subtask:        NewSubtaskClient(cfg),
		Task:           NewTaskClient(cfg),
		TaskAttachment: NewTaskAttachmentClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:            ctx,
		config:         cfg,
		Subtask:        NewSubtaskClient(cfg),
		Task:           NewTaskClient(cfg),
		TaskAttachment: NewTaskAttachmentClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Subtask.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Subtask.Use(hooks...)
	c.Task.Use(hooks...)
	c.TaskAttachment.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Subtask.Intercept(interceptors...)
	c.Task.Intercept(interceptors...)
	c.TaskAttachment.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SubtaskMutation:
		return c.Subtask.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TaskAttachmentMutation:
		return c.TaskAttachment.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("generated: unknown mutation type %T", m)
	}
}

// SubtaskClient is a client for the Subtask schema.
type SubtaskClient struct {
	config
}

// NewSubtaskClient returns a client for the Subtask from the given config.
func NewSubtaskClient(c config) *SubtaskClient {
	return &SubtaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subtask.Hooks(f(g(h())))`.
func (c *SubtaskClient) Use(hooks ...Hook) {
	c.hooks.Subtask = append(c.hooks.Subtask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subtask.Intercept(f(g(h())))`.
func (c *SubtaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subtask = append(c.inters.Subtask, interceptors...)
}

// Create returns a builder for creating a Subtask entity.
func (c *SubtaskClient) Create() *SubtaskCreate {
	mutation := newSubtaskMutation(c.config, OpCreate)
	return &SubtaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subtask entities.
func (c *SubtaskClient) CreateBulk(builders ...*SubtaskCreate) *SubtaskCreateBulk {
	return &SubtaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubtaskClient) MapCreateBulk(slice any, setFunc func(*SubtaskCreate, int)) *SubtaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubtaskCreateBulk{err: fmt.Errorf("calling to SubtaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubtaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubtaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subtask.
func (c *SubtaskClient) Update() *SubtaskUpdate {
	mutation := newSubtaskMutation(c.config, OpUpdate)
	return &SubtaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubtaskClient) UpdateOne(_m *Subtask) *SubtaskUpdateOne {
	mutation := newSubtaskMutation(c.config, OpUpdateOne, withSubtask(_m))
	return &SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubtaskClient) UpdateOneID(id uuid.UUID) *SubtaskUpdateOne {
	mutation := newSubtaskMutation(c.config, OpUpdateOne, withSubtaskID(id))
	return &SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subtask.
func (c *SubtaskClient) Delete() *SubtaskDelete {
	mutation := newSubtaskMutation(c.config, OpDelete)
	return &SubtaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubtaskClient) DeleteOne(_m *Subtask) *SubtaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubtaskClient) DeleteOneID(id uuid.UUID) *SubtaskDeleteOne {
	builder := c.Delete().Where(subtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubtaskDeleteOne{builder}
}

// Query returns a query builder for Subtask.
func (c *SubtaskClient) Query() *SubtaskQuery {
	return &SubtaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubtask},
		inters: c.Interceptors(),
	}
}

// Get returns a Subtask entity by its id.
func (c *SubtaskClient) Get(ctx context.Context, id uuid.UUID) (*Subtask, error) {
	return c.Query().Where(subtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubtaskClient) GetX(ctx context.Context, id uuid.UUID) *Subtask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Subtask.
func (c *SubtaskClient) QueryTask(_m *Subtask) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subtask.Table, subtask.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subtask.TaskTable, subtask.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubtaskClient) Hooks() []Hook {
	return c.hooks.Subtask
}

// Interceptors returns the client interceptors.
func (c *SubtaskClient) Interceptors() []Interceptor {
	return c.inters.Subtask
}

func (c *SubtaskClient) mutate(ctx context.Context, m *SubtaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubtaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubtaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubtaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubtaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Subtask mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id uuid.UUID) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id uuid.UUID) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id uuid.UUID) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id uuid.UUID) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubtasks queries the subtasks edge of a Task.
func (c *TaskClient) QuerySubtasks(_m *Task) *SubtaskQuery {
	query := (&SubtaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(subtask.Table, subtask.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.SubtasksTable, task.SubtasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttachments queries the attachments edge of a Task.
func (c *TaskClient) QueryAttachments(_m *Task) *TaskAttachmentQuery {
	query := (&TaskAttachmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(taskattachment.Table, taskattachment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.AttachmentsTable, task.AttachmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown Task mutation op: %q", m.Op())
	}
}

// TaskAttachmentClient is a client for the TaskAttachment schema.
type TaskAttachmentClient struct {
	config
}

// NewTaskAttachmentClient returns a client for the TaskAttachment from the given config.
func NewTaskAttachmentClient(c config) *TaskAttachmentClient {
	return &TaskAttachmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskattachment.Hooks(f(g(h())))`.
func (c *TaskAttachmentClient) Use(hooks ...Hook) {
	c.hooks.TaskAttachment = append(c.hooks.TaskAttachment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskattachment.Intercept(f(g(h())))`.
func (c *TaskAttachmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskAttachment = append(c.inters.TaskAttachment, interceptors...)
}

// Create returns a builder for creating a TaskAttachment entity.
func (c *TaskAttachmentClient) Create() *TaskAttachmentCreate {
	mutation := newTaskAttachmentMutation(c.config, OpCreate)
	return &TaskAttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskAttachment entities.
func (c *TaskAttachmentClient) CreateBulk(builders ...*TaskAttachmentCreate) *TaskAttachmentCreateBulk {
	return &TaskAttachmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskAttachmentClient) MapCreateBulk(slice any, setFunc func(*TaskAttachmentCreate, int)) *TaskAttachmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskAttachmentCreateBulk{err: fmt.Errorf("calling to TaskAttachmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskAttachmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskAttachmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskAttachment.
func (c *TaskAttachmentClient) Update() *TaskAttachmentUpdate {
	mutation := newTaskAttachmentMutation(c.config, OpUpdate)
	return &TaskAttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskAttachmentClient) UpdateOne(_m *TaskAttachment) *TaskAttachmentUpdateOne {
	mutation := newTaskAttachmentMutation(c.config, OpUpdateOne, withTaskAttachment(_m))
	return &TaskAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskAttachmentClient) UpdateOneID(id uuid.UUID) *TaskAttachmentUpdateOne {
	mutation := newTaskAttachmentMutation(c.config, OpUpdateOne, withTaskAttachmentID(id))
	return &TaskAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskAttachment.
func (c *TaskAttachmentClient) Delete() *TaskAttachmentDelete {
	mutation := newTaskAttachmentMutation(c.config, OpDelete)
	return &TaskAttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskAttachmentClient) DeleteOne(_m *TaskAttachment) *TaskAttachmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskAttachmentClient) DeleteOneID(id uuid.UUID) *TaskAttachmentDeleteOne {
	builder := c.Delete().Where(taskattachment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskAttachmentDeleteOne{builder}
}

// Query returns a query builder for TaskAttachment.
func (c *TaskAttachmentClient) Query() *TaskAttachmentQuery {
	return &TaskAttachmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskAttachment},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskAttachment entity by its id.
func (c *TaskAttachmentClient) Get(ctx context.Context, id uuid.UUID) (*TaskAttachment, error) {
	return c.Query().Where(taskattachment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskAttachmentClient) GetX(ctx context.Context, id uuid.UUID) *TaskAttachment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskAttachment.
func (c *TaskAttachmentClient) QueryTask(_m *TaskAttachment) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskattachment.Table, taskattachment.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskattachment.TaskTable, taskattachment.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskAttachmentClient) Hooks() []Hook {
	return c.hooks.TaskAttachment
}

// Interceptors returns the client interceptors.
func (c *TaskAttachmentClient) Interceptors() []Interceptor {
	return c.inters.TaskAttachment
}

func (c *TaskAttachmentClient) mutate(ctx context.Context, m *TaskAttachmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskAttachmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskAttachmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskAttachmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskAttachmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("generated: unknown TaskAttachment mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Subtask, Task, TaskAttachment []ent.Hook
	}
	inters struct {
		Subtask, Task, TaskAttachment []ent.Interceptor
	}
)
